package ui

import "strings"

// Field wraps a MaskedInput with its label, hint and inline error message.
type Field struct {
	Label    string
	Hint     string
	Error    string
	Required bool
	Input    MaskedInput
	Class    string
}

func (Field) ComponentName() string { return ComponentField }

func (f Field) View(r *Renderer) (map[string]any, error) {
	input := f.Input
	input.Required = input.Required || f.Required
	errText := strings.TrimSpace(f.Error)
	id := input.controlID()

	var describedBy []string
	if errText != "" {
		input.Error = true
		describedBy = append(describedBy, id+"-error")
	}
	if f.Hint != "" {
		describedBy = append(describedBy, id+"-hint")
	}
	if len(describedBy) > 0 && id != "" {
		input.DescribedBy = strings.Join(describedBy, " ")
	}

	control, err := r.Render(input)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"class":    ClassNames("ob-field", when(errText != "", "ob-field--invalid"), f.Class),
		"id":       id,
		"label":    f.Label,
		"hint":     f.Hint,
		"error":    errText,
		"required": input.Required,
		"control":  control,
	}, nil
}
