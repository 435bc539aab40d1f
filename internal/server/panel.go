package server

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/goliatone/go-onboarding/pkg/mask"
	"github.com/goliatone/go-onboarding/pkg/model"
	"github.com/goliatone/go-onboarding/pkg/ui"
	"github.com/goliatone/go-onboarding/pkg/validation"
)

const componentStepPanel = "step-panel"

const stepPanelTemplate = `<section class="ob-step-panel{% if completed %} ob-step-panel--complete{% endif %}" data-step="{{ step }}">
<h2 class="ob-step-panel__title">{{ title }}</h2>
{% if description %}<p class="ob-step-panel__description">{{ description }}</p>{% endif %}
{% if completed %}<p class="ob-step-panel__status">This step is complete.</p>{% endif %}
{% if fields %}<div class="ob-step-panel__fields">{{ fields|safe }}</div>{% endif %}
</section>`

// stepPanelDescriptor renders the step body from an inline template so the
// panel does not need a file in the template tree.
func stepPanelDescriptor() ui.Descriptor {
	return ui.Descriptor{
		Stylesheets: []string{ui.StylesheetName},
		Renderer: func(buf *bytes.Buffer, view map[string]any, data ui.ComponentData) error {
			_, err := data.Template.RenderString(stepPanelTemplate, view, buf)
			return err
		},
	}
}

// stepPanel is the body of one onboarding step.
type stepPanel struct {
	Step   model.OnboardingStep
	Fields []ui.Field
}

func (stepPanel) ComponentName() string { return componentStepPanel }

func (p stepPanel) View(r *ui.Renderer) (map[string]any, error) {
	var fields strings.Builder
	for _, field := range p.Fields {
		html, err := r.Render(field)
		if err != nil {
			return nil, err
		}
		fields.WriteString(html)
	}
	return map[string]any{
		"step":        p.Step.ID,
		"title":       p.Step.Title,
		"description": p.Step.Description,
		"completed":   p.Step.IsComplete,
		"fields":      fields.String(),
	}, nil
}

type personalField struct {
	name         string
	label        string
	typ          string
	mask         mask.Spec
	placeholder  string
	hint         string
	autocomplete string
	optional     bool
	get          func(*model.PersonalInfo) string
	set          func(*model.PersonalInfo, string)
}

var personalFields = []personalField{
	{name: "firstName", label: "First Name", autocomplete: "given-name",
		get: func(p *model.PersonalInfo) string { return p.FirstName },
		set: func(p *model.PersonalInfo, v string) { p.FirstName = v }},
	{name: "lastName", label: "Last Name", autocomplete: "family-name",
		get: func(p *model.PersonalInfo) string { return p.LastName },
		set: func(p *model.PersonalInfo, v string) { p.LastName = v }},
	{name: "dateOfBirth", label: "Date of Birth", typ: "date", autocomplete: "bday",
		get: func(p *model.PersonalInfo) string { return p.DateOfBirth },
		set: func(p *model.PersonalInfo, v string) { p.DateOfBirth = v }},
	{name: "phone", label: "Phone", typ: "tel", mask: mask.Phone, placeholder: "(555) 123-4567", autocomplete: "tel",
		get: func(p *model.PersonalInfo) string { return p.Phone },
		set: func(p *model.PersonalInfo, v string) { p.Phone = v }},
	{name: "email", label: "Email", typ: "email", autocomplete: "email",
		get: func(p *model.PersonalInfo) string { return p.Email },
		set: func(p *model.PersonalInfo, v string) { p.Email = v }},
	{name: "street", label: "Street Address", autocomplete: "street-address",
		get: func(p *model.PersonalInfo) string { return p.Street },
		set: func(p *model.PersonalInfo, v string) { p.Street = v }},
	{name: "city", label: "City", autocomplete: "address-level2",
		get: func(p *model.PersonalInfo) string { return p.City },
		set: func(p *model.PersonalInfo, v string) { p.City = v }},
	{name: "state", label: "State", placeholder: "TX", hint: "Two letter state code",
		get: func(p *model.PersonalInfo) string { return p.State },
		set: func(p *model.PersonalInfo, v string) { p.State = strings.ToUpper(v) }},
	{name: "zipCode", label: "ZIP Code", mask: mask.Zipcode, placeholder: "12345", autocomplete: "postal-code",
		get: func(p *model.PersonalInfo) string { return p.ZipCode },
		set: func(p *model.PersonalInfo, v string) { p.ZipCode = v }},
	{name: "ssn", label: "Social Security Number", typ: "password", mask: mask.SSN, placeholder: "123-45-6789",
		get: func(p *model.PersonalInfo) string { return p.SSN },
		set: func(p *model.PersonalInfo, v string) { p.SSN = v }},
	{name: "npn", label: "National Producer Number", placeholder: "12345678", optional: true,
		get: func(p *model.PersonalInfo) string { return p.NPN },
		set: func(p *model.PersonalInfo, v string) { p.NPN = v }},
	{name: "accountNumber", label: "Account Number", typ: "password",
		get: func(p *model.PersonalInfo) string { return p.AccountNumber },
		set: func(p *model.PersonalInfo, v string) { p.AccountNumber = v }},
	{name: "routingNumber", label: "Routing Number", mask: mask.Spec("XXXXXXXXX"), placeholder: "021000021",
		get: func(p *model.PersonalInfo) string { return p.RoutingNumber },
		set: func(p *model.PersonalInfo, v string) { p.RoutingNumber = v }},
	{name: "bankName", label: "Bank Name",
		get: func(p *model.PersonalInfo) string { return p.BankName },
		set: func(p *model.PersonalInfo, v string) { p.BankName = v }},
	{name: "licensedStates", label: "Licensed States", placeholder: "TX, OK", hint: "Comma separated state codes",
		get: func(p *model.PersonalInfo) string { return strings.Join(p.LicensedStates, ", ") },
		set: func(p *model.PersonalInfo, v string) { p.LicensedStates = splitStates(v) }},
	{name: "uplineName", label: "Upline Name",
		get: func(p *model.PersonalInfo) string { return p.UplineName },
		set: func(p *model.PersonalInfo, v string) { p.UplineName = v }},
	{name: "uplineEmail", label: "Upline Email", typ: "email",
		get: func(p *model.PersonalInfo) string { return p.UplineEmail },
		set: func(p *model.PersonalInfo, v string) { p.UplineEmail = v }},
}

// personalInfoFields builds the step one form with any errors inline.
func personalInfoFields(info model.PersonalInfo, issues validation.Issues) []ui.Field {
	fields := make([]ui.Field, 0, len(personalFields))
	for _, spec := range personalFields {
		fields = append(fields, ui.Field{
			Label:    spec.label,
			Hint:     spec.hint,
			Error:    issues.First(spec.name),
			Required: !spec.optional,
			Input: ui.MaskedInput{
				Name:         spec.name,
				Type:         spec.typ,
				Value:        spec.get(&info),
				Mask:         spec.mask,
				Placeholder:  spec.placeholder,
				AutoComplete: spec.autocomplete,
			},
		})
	}
	return fields
}

// personalInfoFromForm reads the step one form, re-applying masks so values
// typed without the runtime script still match the stored format.
func personalInfoFromForm(values url.Values) model.PersonalInfo {
	var info model.PersonalInfo
	for _, spec := range personalFields {
		value := strings.TrimSpace(values.Get(spec.name))
		if spec.mask != "" && value != "" {
			value = mask.Apply(spec.mask, value)
		}
		spec.set(&info, value)
	}
	return info
}

func splitStates(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if code := strings.ToUpper(strings.TrimSpace(part)); code != "" {
			out = append(out, code)
		}
	}
	return out
}
