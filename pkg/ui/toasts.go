package ui

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-onboarding/pkg/toast"
)

// ToastViewport renders a snapshot of a toast.Provider. The runtime script
// removes each toast after its duration and, when DismissURL is set, sends a
// DELETE to DismissURL + id on close.
type ToastViewport struct {
	Toasts     []toast.Toast
	DismissURL string
	Class      string
}

// ViewportFor snapshots p.
func ViewportFor(p *toast.Provider, dismissURL string) ToastViewport {
	if p == nil {
		return ToastViewport{DismissURL: dismissURL}
	}
	return ToastViewport{Toasts: p.Toasts(), DismissURL: dismissURL}
}

func toastIcon(v toast.Variant) string {
	switch v {
	case toast.VariantSuccess:
		return Icon(IconCheckCircle)
	case toast.VariantError:
		return Icon(IconAlertCircle)
	case toast.VariantWarning:
		return Icon(IconAlertTriangle)
	case toast.VariantInfo:
		return Icon(IconInfo)
	default:
		return ""
	}
}

func (ToastViewport) ComponentName() string { return ComponentToasts }

func (v ToastViewport) View(*Renderer) (map[string]any, error) {
	items := make([]map[string]any, 0, len(v.Toasts))
	closeIcon := Icon(IconClose)
	for _, t := range v.Toasts {
		variant := t.Variant.Normalize()
		items = append(items, map[string]any{
			"id":          t.ID,
			"title":       t.Title,
			"description": t.Description,
			"variant":     string(variant),
			"class":       ClassNames("ob-toast", "ob-toast--"+string(variant)),
			"icon":        toastIcon(variant),
			"closeIcon":   closeIcon,
			"duration":    strconv.FormatInt(t.Duration.Milliseconds(), 10),
		})
	}
	return map[string]any{
		"class":      ClassNames("ob-toasts", v.Class),
		"toasts":     items,
		"dismissURL": strings.TrimSpace(v.DismissURL),
	}, nil
}
