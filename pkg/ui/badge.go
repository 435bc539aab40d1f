package ui

// BadgeVariant selects the badge color scheme.
type BadgeVariant string

const (
	BadgeDefault     BadgeVariant = "default"
	BadgeSecondary   BadgeVariant = "secondary"
	BadgeDestructive BadgeVariant = "destructive"
	BadgeSuccess     BadgeVariant = "success"
	BadgeWarning     BadgeVariant = "warning"
	BadgeInfo        BadgeVariant = "info"
	BadgeOutline     BadgeVariant = "outline"
)

func (v BadgeVariant) normalize() BadgeVariant {
	switch v {
	case BadgeSecondary, BadgeDestructive, BadgeSuccess, BadgeWarning, BadgeInfo, BadgeOutline:
		return v
	default:
		return BadgeDefault
	}
}

// BadgeSize selects the badge padding and text size.
type BadgeSize string

const (
	BadgeSizeDefault BadgeSize = "default"
	BadgeSizeSmall   BadgeSize = "sm"
	BadgeSizeLarge   BadgeSize = "lg"
)

func (s BadgeSize) normalize() BadgeSize {
	switch s {
	case BadgeSizeSmall, BadgeSizeLarge:
		return s
	default:
		return BadgeSizeDefault
	}
}

// Badge is a small status label.
type Badge struct {
	Label   string
	Variant BadgeVariant
	Size    BadgeSize
	Icon    string
	Pulse   bool
	Class   string
}

func (Badge) ComponentName() string { return ComponentBadge }

func (b Badge) View(*Renderer) (map[string]any, error) {
	return map[string]any{
		"class": ClassNames(
			"ob-badge",
			"ob-badge--"+string(b.Variant.normalize()),
			"ob-badge--size-"+string(b.Size.normalize()),
			when(b.Pulse, "ob-badge--pulse"),
			b.Class,
		),
		"label": b.Label,
		"icon":  resolveIcon(b.Icon),
	}, nil
}
