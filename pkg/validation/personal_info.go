package validation

import (
	"strings"

	"github.com/goliatone/go-onboarding/pkg/model"
)

// ValidatePersonalInfo checks the first onboarding form. Phone, SSN and zip
// code are expected in their masked display form.
func ValidatePersonalInfo(info model.PersonalInfo) Issues {
	var issues Issues

	required := []struct {
		field string
		label string
		value string
	}{
		{"firstName", "First name", info.FirstName},
		{"lastName", "Last name", info.LastName},
		{"dateOfBirth", "Date of birth", info.DateOfBirth},
		{"phone", "Phone number", info.Phone},
		{"email", "Email", info.Email},
		{"street", "Street address", info.Street},
		{"city", "City", info.City},
		{"state", "State", info.State},
		{"zipCode", "ZIP code", info.ZipCode},
		{"ssn", "Social Security number", info.SSN},
		{"accountNumber", "Account number", info.AccountNumber},
		{"routingNumber", "Routing number", info.RoutingNumber},
		{"bankName", "Bank name", info.BankName},
		{"uplineName", "Upline name", info.UplineName},
		{"uplineEmail", "Upline email", info.UplineEmail},
	}
	missing := make(map[string]bool, len(required))
	for _, entry := range required {
		if strings.TrimSpace(entry.value) == "" {
			issues.Add(entry.field, entry.label+" is required")
			missing[entry.field] = true
		}
	}

	check := func(field string, ok bool, message string) {
		if missing[field] || ok {
			return
		}
		issues.Add(field, message)
	}

	check("phone", ValidatePhone(info.Phone), "Enter a phone number as (555) 123-4567")
	check("email", ValidateEmail(info.Email), "Enter a valid email address")
	check("state", ValidateState(info.State), "Select a US state")
	check("zipCode", ValidateZipCode(info.ZipCode), "ZIP code must be 5 digits")
	check("ssn", ValidateSSN(info.SSN), "Enter a Social Security number as 123-45-6789")
	check("routingNumber", ValidateRoutingNumber(info.RoutingNumber), "Enter a valid 9 digit routing number")
	check("uplineEmail", ValidateEmail(info.UplineEmail), "Enter a valid upline email address")

	if strings.TrimSpace(info.NPN) != "" && !ValidateNPN(info.NPN) {
		issues.Add("npn", "NPN must be 8 to 10 digits")
	}
	if len(info.LicensedStates) == 0 {
		issues.Add("licensedStates", "Select at least one licensed state")
	}
	for _, code := range info.LicensedStates {
		if !ValidateState(code) {
			issues.Add("licensedStates", "Unknown state "+code)
		}
	}

	return issues
}
