package testsupport

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-onboarding/pkg/model"
)

// SamplePersonalInfo returns a personal information form that passes every
// validator. Tests mutate a copy to exercise individual failures.
func SamplePersonalInfo() model.PersonalInfo {
	return model.PersonalInfo{
		FirstName:      "Jane",
		LastName:       "Doe",
		DateOfBirth:    "1985-04-12",
		Phone:          "(555) 123-4567",
		Email:          "jane.doe@example.com",
		Street:         "1 Main St",
		City:           "Austin",
		State:          "TX",
		ZipCode:        "73301",
		SSN:            "123-45-6789",
		NPN:            "12345678",
		AccountNumber:  "1234-5678",
		RoutingNumber:  "021000021",
		BankName:       "First Bank",
		LicensedStates: []string{"TX", "OK"},
		UplineName:     "Sam Upline",
		UplineEmail:    "sam@example.com",
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
