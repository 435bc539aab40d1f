package prompt

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/goliatone/go-onboarding/pkg/mask"
	"github.com/goliatone/go-onboarding/pkg/model"
	"github.com/goliatone/go-onboarding/pkg/reference"
	"github.com/goliatone/go-onboarding/pkg/validation"
)

type textField struct {
	message  string
	help     string
	mask     mask.Spec
	secret   bool
	optional bool
	check    func(string) bool
	invalid  string
	value    func(*model.PersonalInfo) *string
}

func (f textField) validator() func(string) error {
	return func(raw string) error {
		value := strings.TrimSpace(raw)
		if value == "" {
			if f.optional {
				return nil
			}
			return errors.New("this field is required")
		}
		if f.mask != "" {
			value = mask.Apply(f.mask, value)
		}
		if f.check != nil && !f.check(value) {
			return errors.New(f.invalid)
		}
		return nil
	}
}

func (f textField) normalize(raw string) string {
	value := strings.TrimSpace(raw)
	if f.mask != "" && value != "" {
		value = mask.Apply(f.mask, value)
	}
	return value
}

var identityFields = []textField{
	{message: "First name", value: func(p *model.PersonalInfo) *string { return &p.FirstName }},
	{message: "Last name", value: func(p *model.PersonalInfo) *string { return &p.LastName }},
	{message: "Date of birth", help: "YYYY-MM-DD", value: func(p *model.PersonalInfo) *string { return &p.DateOfBirth }},
	{message: "Phone", help: "Digits only is fine, e.g. 5551234567", mask: mask.Phone,
		check: validation.ValidatePhone, invalid: "enter a 10 digit phone number",
		value: func(p *model.PersonalInfo) *string { return &p.Phone }},
	{message: "Email", check: validation.ValidateEmail, invalid: "enter a valid email address",
		value: func(p *model.PersonalInfo) *string { return &p.Email }},
	{message: "Street address", value: func(p *model.PersonalInfo) *string { return &p.Street }},
	{message: "City", value: func(p *model.PersonalInfo) *string { return &p.City }},
}

var afterStateFields = []textField{
	{message: "ZIP code", mask: mask.Zipcode, check: validation.ValidateZipCode, invalid: "ZIP code must be 5 digits",
		value: func(p *model.PersonalInfo) *string { return &p.ZipCode }},
	{message: "Social Security number", mask: mask.SSN, secret: true,
		check: validation.ValidateSSN, invalid: "enter 9 digits",
		value: func(p *model.PersonalInfo) *string { return &p.SSN }},
	{message: "National Producer Number", help: "Optional, 8 to 10 digits", optional: true,
		check: validation.ValidateNPN, invalid: "NPN must be 8 to 10 digits",
		value: func(p *model.PersonalInfo) *string { return &p.NPN }},
	{message: "Bank account number", secret: true,
		value: func(p *model.PersonalInfo) *string { return &p.AccountNumber }},
	{message: "Routing number", check: validation.ValidateRoutingNumber, invalid: "enter a valid 9 digit routing number",
		value: func(p *model.PersonalInfo) *string { return &p.RoutingNumber }},
	{message: "Bank name", value: func(p *model.PersonalInfo) *string { return &p.BankName }},
	{message: "Upline name", value: func(p *model.PersonalInfo) *string { return &p.UplineName }},
	{message: "Upline email", check: validation.ValidateEmail, invalid: "enter a valid email address",
		value: func(p *model.PersonalInfo) *string { return &p.UplineEmail }},
}

// Collect walks the agent through the personal information form. Values in
// current are offered as defaults. The returned form is masked and has passed
// validation.ValidatePersonalInfo.
func Collect(ctx context.Context, d Driver, current model.PersonalInfo) (model.PersonalInfo, error) {
	if d == nil {
		return current, fmt.Errorf("prompt: driver is nil")
	}
	info := current

	if err := d.Info(ctx, "Agent onboarding: personal information"); err != nil {
		return info, err
	}
	if err := askFields(ctx, d, &info, identityFields); err != nil {
		return info, err
	}

	states := reference.USStates()
	labels := make([]string, len(states))
	defaultState := -1
	var licensed []int
	for i, state := range states {
		labels[i] = state.Label + " (" + state.Value + ")"
		if state.Value == info.State {
			defaultState = i
		}
		if slices.Contains(info.LicensedStates, state.Value) {
			licensed = append(licensed, i)
		}
	}

	idx, err := d.Select(ctx, SelectConfig{Message: "State", Options: labels, DefaultIndex: defaultState, PageSize: 10})
	if err != nil {
		return info, err
	}
	if idx < 0 || idx >= len(states) {
		return info, fmt.Errorf("prompt: state selection %d out of range", idx)
	}
	info.State = states[idx].Value

	if err := askFields(ctx, d, &info, afterStateFields); err != nil {
		return info, err
	}

	picked, err := d.MultiSelect(ctx, SelectConfig{
		Message:  "Licensed states",
		Options:  labels,
		Defaults: licensed,
		PageSize: 10,
	})
	if err != nil {
		return info, err
	}
	info.LicensedStates = info.LicensedStates[:0:0]
	for _, i := range picked {
		if i >= 0 && i < len(states) {
			info.LicensedStates = append(info.LicensedStates, states[i].Value)
		}
	}

	if err := validation.ValidatePersonalInfo(info).Err(); err != nil {
		return info, fmt.Errorf("prompt: %w", err)
	}
	return info, d.Info(ctx, "Personal information is complete.")
}

func askFields(ctx context.Context, d Driver, info *model.PersonalInfo, fields []textField) error {
	for _, field := range fields {
		target := field.value(info)
		cfg := InputConfig{
			Message:   field.message,
			Default:   *target,
			Help:      field.help,
			Validator: field.validator(),
		}
		ask := d.Input
		if field.secret {
			ask = d.Password
		}
		raw, err := ask(ctx, cfg)
		if err != nil {
			return err
		}
		if strings.TrimSpace(raw) == "" {
			raw = *target
		}
		*target = field.normalize(raw)
	}
	return nil
}
