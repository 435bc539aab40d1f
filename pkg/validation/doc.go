// Package validation holds the field validators used by the onboarding forms
// and a form-level validator for personal information.
//
// Validators are pure predicates over the formatted value the user sees, not
// the raw digits. A failed validation is data: callers branch on the boolean
// or on the returned Issues to render inline feedback.
package validation
