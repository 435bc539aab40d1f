package toast

import (
	"time"
)

// DefaultDuration applies when a Message leaves Duration unset.
const DefaultDuration = 5 * time.Second

// Variant selects the visual treatment of a toast.
type Variant string

const (
	VariantDefault Variant = "default"
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantWarning Variant = "warning"
	VariantInfo    Variant = "info"
)

// Variants lists every supported variant.
func Variants() []Variant {
	return []Variant{VariantDefault, VariantSuccess, VariantError, VariantWarning, VariantInfo}
}

// Normalize maps unknown or empty variants to VariantDefault.
func (v Variant) Normalize() Variant {
	switch v {
	case VariantSuccess, VariantError, VariantWarning, VariantInfo:
		return v
	default:
		return VariantDefault
	}
}

// Message is the caller supplied content of a toast. A nil Duration means
// DefaultDuration, a zero Duration keeps the toast until it is removed, and a
// negative Duration dismisses it as soon as the clock fires.
type Message struct {
	Title       string         `json:"title,omitempty"`
	Description string         `json:"description,omitempty"`
	Variant     Variant        `json:"variant,omitempty"`
	Duration    *time.Duration `json:"duration,omitempty"`
}

// Toast is a message admitted to a Provider.
type Toast struct {
	ID          string        `json:"id"`
	Title       string        `json:"title,omitempty"`
	Description string        `json:"description,omitempty"`
	Variant     Variant       `json:"variant"`
	Duration    time.Duration `json:"duration"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// Persistent reports whether the toast stays until explicitly removed.
func (t Toast) Persistent() bool {
	return t.Duration == 0
}

// Duration is a helper for building Message.Duration literals.
func Duration(d time.Duration) *time.Duration {
	return &d
}

func (m Message) effectiveDuration() time.Duration {
	if m.Duration == nil {
		return DefaultDuration
	}
	return *m.Duration
}
