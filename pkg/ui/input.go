package ui

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-onboarding/pkg/mask"
)

// MaskedInput renders a text control. When Mask is set the value is shown in
// its masked form and the runtime script re-applies the mask on every
// keystroke from the data-mask attribute.
type MaskedInput struct {
	ID           string
	Name         string
	Type         string
	Value        string
	Placeholder  string
	Mask         mask.Spec
	Icon         string
	Error        bool
	Revealed     bool
	Required     bool
	Disabled     bool
	AutoComplete string
	DescribedBy  string
	Class        string
}

// InputFromControl builds the markup model for a mask.Input, carrying over its
// current display value and reveal state.
func InputFromControl(in *mask.Input) MaskedInput {
	if in == nil {
		return MaskedInput{}
	}
	return MaskedInput{
		Name:     in.Name,
		Type:     in.Type,
		Value:    in.Value(),
		Mask:     in.Mask,
		Revealed: in.Revealed(),
	}
}

func (MaskedInput) ComponentName() string { return ComponentInput }

func (in MaskedInput) controlID() string {
	if id := strings.TrimSpace(in.ID); id != "" {
		return id
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		return "ob-" + name
	}
	return ""
}

func (in MaskedInput) View(*Renderer) (map[string]any, error) {
	typ := strings.TrimSpace(in.Type)
	if typ == "" {
		typ = "text"
	}
	password := typ == "password"
	rendered := typ
	if password && in.Revealed {
		rendered = "text"
	}

	value := in.Value
	if in.Mask != "" {
		value = mask.Apply(in.Mask, value)
	}

	view := map[string]any{
		"class": ClassNames(
			"ob-input",
			when(in.Icon != "", "ob-input--with-icon"),
			when(password, "ob-input--password"),
			when(in.Error, "ob-input--error"),
			in.Class,
		),
		"id":           in.controlID(),
		"name":         in.Name,
		"type":         rendered,
		"value":        value,
		"placeholder":  in.Placeholder,
		"mask":         string(in.Mask),
		"icon":         resolveIcon(in.Icon),
		"error":        in.Error,
		"required":     in.Required,
		"disabled":     in.Disabled,
		"autocomplete": in.AutoComplete,
		"describedBy":  in.DescribedBy,
		"password":     password,
	}
	if in.Mask != "" {
		view["inputmode"] = "numeric"
		if !in.Mask.Preset() {
			view["maxlength"] = strconv.Itoa(utf8.RuneCountInString(string(in.Mask)))
		}
	}
	if password {
		if in.Revealed {
			view["revealIcon"] = Icon(IconEyeOff)
			view["revealLabel"] = "Hide password"
		} else {
			view["revealIcon"] = Icon(IconEye)
			view["revealLabel"] = "Show password"
		}
	}
	return view, nil
}
