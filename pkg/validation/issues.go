package validation

import (
	"errors"
	"strings"

	"github.com/goliatone/go-onboarding/pkg/model"
)

// Issue is a single field-level validation failure.
type Issue = model.ValidationError

// Issues collects validation failures in the order they were found.
type Issues []Issue

// Add appends an issue for field.
func (is *Issues) Add(field, message string) {
	*is = append(*is, Issue{Field: field, Message: message})
}

// Valid reports whether no issues were recorded.
func (is Issues) Valid() bool {
	return len(is) == 0
}

// ByField groups messages by field. Messages are trimmed and de-duplicated
// while keeping their first-seen order; blank messages are dropped.
func (is Issues) ByField() map[string][]string {
	if len(is) == 0 {
		return nil
	}
	out := make(map[string][]string)
	for _, issue := range is {
		out[issue.Field] = append(out[issue.Field], issue.Message)
	}
	for field, messages := range out {
		normalized := normalizeMessages(messages)
		if len(normalized) == 0 {
			delete(out, field)
			continue
		}
		out[field] = normalized
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// First returns the first message recorded for field, if any.
func (is Issues) First(field string) string {
	for _, issue := range is {
		if issue.Field == field && strings.TrimSpace(issue.Message) != "" {
			return strings.TrimSpace(issue.Message)
		}
	}
	return ""
}

// Err joins the issues into a single error, or nil when valid.
func (is Issues) Err() error {
	if len(is) == 0 {
		return nil
	}
	errs := make([]error, 0, len(is))
	for _, issue := range is {
		errs = append(errs, errors.New(issue.Field+": "+issue.Message))
	}
	return errors.Join(errs...)
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
