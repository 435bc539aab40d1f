package ui

import "strings"

// ButtonVariant selects the button color scheme.
type ButtonVariant string

const (
	ButtonDefault     ButtonVariant = "default"
	ButtonDestructive ButtonVariant = "destructive"
	ButtonOutline     ButtonVariant = "outline"
	ButtonSecondary   ButtonVariant = "secondary"
	ButtonGhost       ButtonVariant = "ghost"
	ButtonLink        ButtonVariant = "link"
)

func (v ButtonVariant) normalize() ButtonVariant {
	switch v {
	case ButtonDestructive, ButtonOutline, ButtonSecondary, ButtonGhost, ButtonLink:
		return v
	default:
		return ButtonDefault
	}
}

// ButtonSize selects the button dimensions.
type ButtonSize string

const (
	ButtonSizeDefault ButtonSize = "default"
	ButtonSizeSmall   ButtonSize = "sm"
	ButtonSizeLarge   ButtonSize = "lg"
	ButtonSizeIcon    ButtonSize = "icon"
)

func (s ButtonSize) normalize() ButtonSize {
	switch s {
	case ButtonSizeSmall, ButtonSizeLarge, ButtonSizeIcon:
		return s
	default:
		return ButtonSizeDefault
	}
}

// LoadingLabel replaces the button text while Loading is set.
const LoadingLabel = "Loading..."

// Button is a clickable action. Loading disables the button and swaps its
// content for a spinner.
type Button struct {
	Label     string
	Variant   ButtonVariant
	Size      ButtonSize
	Type      string
	Name      string
	Value     string
	Icon      string
	Loading   bool
	Disabled  bool
	FullWidth bool
	Class     string
	Attrs     map[string]string
}

func (Button) ComponentName() string { return ComponentButton }

// IsDisabled reports whether the rendered button will be disabled.
func (b Button) IsDisabled() bool {
	return b.Disabled || b.Loading
}

func (b Button) View(*Renderer) (map[string]any, error) {
	variant := b.Variant.normalize()
	size := b.Size.normalize()

	typ := strings.TrimSpace(b.Type)
	if typ == "" {
		typ = "button"
	}

	view := map[string]any{
		"class": ClassNames(
			"ob-button",
			"ob-button--"+string(variant),
			"ob-button--size-"+string(size),
			when(b.FullWidth, "ob-button--full"),
			when(b.Loading, "ob-button--loading"),
			b.Class,
		),
		"type":     typ,
		"name":     b.Name,
		"value":    b.Value,
		"label":    b.Label,
		"disabled": b.IsDisabled(),
		"loading":  b.Loading,
		"attrs":    attrList(b.Attrs),
	}
	if b.Loading {
		view["label"] = LoadingLabel
		view["spinner"] = Icon(IconLoader)
	} else {
		view["icon"] = resolveIcon(b.Icon)
	}
	return view, nil
}
