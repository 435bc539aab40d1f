package ui

import (
	"strconv"

	"github.com/goliatone/go-onboarding/pkg/format"
	"github.com/goliatone/go-onboarding/pkg/model"
)

// Header is the top bar with company details and overall progress. Zero
// CurrentStep and TotalSteps default to 1 and 10.
type Header struct {
	CurrentStep  int
	TotalSteps   int
	HideProgress bool
	Brand        Brand
	Class        string
}

func (Header) ComponentName() string { return ComponentHeader }

func (h Header) View(r *Renderer) (map[string]any, error) {
	current := h.CurrentStep
	if current <= 0 {
		current = 1
	}
	total := h.TotalSteps
	if total <= 0 {
		total = model.TotalSteps
	}
	brand := h.Brand.withDefaults()

	view := map[string]any{
		"class":        ClassNames("ob-header", h.Class),
		"brand":        brand,
		"logo":         Icon(IconBuilding),
		"phoneIcon":    Icon(IconPhone),
		"mailIcon":     Icon(IconMail),
		"showProgress": !h.HideProgress,
	}
	if h.HideProgress {
		return view, nil
	}

	stepText := "Step " + strconv.Itoa(current) + " of " + strconv.Itoa(total)
	badge, err := r.Render(Badge{Label: stepText, Variant: BadgeInfo, Size: BadgeSizeLarge})
	if err != nil {
		return nil, err
	}
	bar, err := r.Render(Progress{
		Value: float64(current) / float64(total) * 100,
		Class: "ob-progress--thin",
		Label: "Onboarding Progress",
	})
	if err != nil {
		return nil, err
	}
	view["badge"] = badge
	view["progress"] = bar
	view["percentText"] = strconv.Itoa(format.CalculateProgress(current, total)) + "% Complete"
	return view, nil
}
