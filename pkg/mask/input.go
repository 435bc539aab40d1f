package mask

// ChangeFunc receives the masked display value and the digit string it was
// derived from.
type ChangeFunc func(masked, raw string)

// Input models a masked text field. Every Change call recomputes the digit
// string from scratch; nothing but the last display value is kept between
// calls.
type Input struct {
	Name string
	// Mask selects the preset or custom pattern. Empty disables masking.
	Mask Spec
	// Type is the HTML input type. Password inputs can be revealed.
	Type string

	// OnMaskedChange is invoked on every change when Mask is set.
	OnMaskedChange ChangeFunc
	// OnChange receives the untouched value when the input is not masked.
	OnChange func(value string)

	display  string
	revealed bool
}

// Change processes a new raw value as typed by the user.
func (in *Input) Change(value string) {
	if in == nil {
		return
	}
	if in.Mask == "" || in.OnMaskedChange == nil {
		in.display = value
		if in.OnChange != nil {
			in.OnChange(value)
		}
		return
	}

	raw := Digits(value)
	masked := Apply(in.Mask, raw)
	in.display = masked
	in.OnMaskedChange(masked, raw)
}

// Value returns the current display value.
func (in *Input) Value() string {
	if in == nil {
		return ""
	}
	return in.display
}

// Masked reports whether Change will apply a mask.
func (in *Input) Masked() bool {
	return in != nil && in.Mask != "" && in.OnMaskedChange != nil
}

// ToggleReveal flips password visibility and returns the new state. It is a
// no-op for non-password inputs.
func (in *Input) ToggleReveal() bool {
	if in == nil || in.Type != "password" {
		return false
	}
	in.revealed = !in.revealed
	return in.revealed
}

// Revealed reports whether a password input currently shows its value.
func (in *Input) Revealed() bool {
	return in != nil && in.revealed
}

// InputType is the type attribute to render, taking password reveal into
// account.
func (in *Input) InputType() string {
	if in == nil || in.Type == "" {
		return "text"
	}
	if in.Type == "password" && in.revealed {
		return "text"
	}
	return in.Type
}
