package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrActionDisabled is returned by Dispatch for actions that are hidden or
	// disabled in the current navigation state.
	ErrActionDisabled = errors.New("ui: navigation action disabled")
	// ErrUnknownAction is returned for action names other than next, back and
	// save.
	ErrUnknownAction = errors.New("ui: unknown navigation action")
)

// Action identifies a step navigation button.
type Action string

const (
	ActionNext Action = "next"
	ActionBack Action = "back"
	ActionSave Action = "save"
)

// ParseAction maps a submitted button value to an Action.
func ParseAction(value string) (Action, error) {
	switch action := Action(strings.ToLower(strings.TrimSpace(value))); action {
	case ActionNext, ActionBack, ActionSave:
		return action, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, value)
	}
}

// Default navigation labels.
const (
	DefaultBackLabel     = "Back"
	DefaultNextLabel     = "Save & Continue"
	DefaultCompleteLabel = "Complete Onboarding"
	SaveDraftLabel       = "Save Draft"
)

// ActionFunc handles a navigation action.
type ActionFunc func(ctx context.Context) error

// StepNavigation is the back / save draft / next bar under each step form.
// Buttons submit name="action" with the Action as value, so the same struct
// can be rebuilt on POST and fed to Dispatch.
type StepNavigation struct {
	CurrentStep  int
	TotalSteps   int
	OnNext       ActionFunc
	OnBack       ActionFunc
	OnSave       ActionFunc
	NextDisabled bool
	Loading      bool
	NextLabel    string
	BackLabel    string
	HideSave     bool
	Class        string
}

func (StepNavigation) ComponentName() string { return ComponentStepNavigation }

func (n StepNavigation) IsFirstStep() bool { return n.CurrentStep <= 1 }

func (n StepNavigation) IsLastStep() bool { return n.CurrentStep == n.TotalSteps }

// ShowBack reports whether the back button is rendered.
func (n StepNavigation) ShowBack() bool { return !n.IsFirstStep() }

// ShowSave reports whether the save draft button is rendered. It needs both a
// handler and HideSave unset.
func (n StepNavigation) ShowSave() bool { return !n.HideSave && n.OnSave != nil }

// NextText is the label on the primary button.
func (n StepNavigation) NextText() string {
	if label := strings.TrimSpace(n.NextLabel); label != "" {
		return label
	}
	if n.IsLastStep() {
		return DefaultCompleteLabel
	}
	return DefaultNextLabel
}

// BackText is the label on the back button.
func (n StepNavigation) BackText() string {
	if label := strings.TrimSpace(n.BackLabel); label != "" {
		return label
	}
	return DefaultBackLabel
}

// NextEnabled reports whether the primary button accepts clicks.
func (n StepNavigation) NextEnabled() bool {
	return !n.NextDisabled && !n.Loading
}

// Dispatch invokes the handler behind action, enforcing the same rules the
// rendered buttons follow.
func (n StepNavigation) Dispatch(ctx context.Context, action Action) error {
	var fn ActionFunc
	switch action {
	case ActionNext:
		if !n.NextEnabled() {
			return fmt.Errorf("%w: %s", ErrActionDisabled, action)
		}
		fn = n.OnNext
	case ActionBack:
		if !n.ShowBack() || n.Loading {
			return fmt.Errorf("%w: %s", ErrActionDisabled, action)
		}
		fn = n.OnBack
	case ActionSave:
		if !n.ShowSave() || n.Loading {
			return fmt.Errorf("%w: %s", ErrActionDisabled, action)
		}
		fn = n.OnSave
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	if fn == nil {
		return fmt.Errorf("%w: %s has no handler", ErrActionDisabled, action)
	}
	return fn(ctx)
}

func (n StepNavigation) View(r *Renderer) (map[string]any, error) {
	view := map[string]any{
		"class":     ClassNames("ob-step-nav", n.Class),
		"indicator": "Step " + strconv.Itoa(n.CurrentStep) + " of " + strconv.Itoa(n.TotalSteps),
	}

	if n.ShowBack() {
		back, err := r.Render(Button{
			Label:    n.BackText(),
			Variant:  ButtonOutline,
			Type:     "submit",
			Name:     "action",
			Value:    string(ActionBack),
			Icon:     IconArrowLeft,
			Disabled: n.Loading,
			Class:    "ob-step-nav__back",
			Attrs:    map[string]string{"formnovalidate": "", "data-nav-action": string(ActionBack)},
		})
		if err != nil {
			return nil, err
		}
		view["back"] = back
	}

	if n.ShowSave() {
		save, err := r.Render(Button{
			Label:    SaveDraftLabel,
			Variant:  ButtonSecondary,
			Type:     "submit",
			Name:     "action",
			Value:    string(ActionSave),
			Icon:     IconSave,
			Disabled: n.Loading,
			Class:    "ob-step-nav__save",
			Attrs:    map[string]string{"data-nav-action": string(ActionSave)},
		})
		if err != nil {
			return nil, err
		}
		view["save"] = save
	}

	nextIcon := IconArrowRight
	if n.IsLastStep() {
		nextIcon = ""
	}
	next, err := r.Render(Button{
		Label:    n.NextText(),
		Variant:  ButtonDefault,
		Type:     "submit",
		Name:     "action",
		Value:    string(ActionNext),
		Icon:     nextIcon,
		Loading:  n.Loading,
		Disabled: n.NextDisabled,
		Class:    "ob-step-nav__next",
		Attrs:    map[string]string{"data-nav-action": string(ActionNext)},
	})
	if err != nil {
		return nil, err
	}
	view["next"] = next
	if n.Loading {
		view["busy"] = true
	}
	return view, nil
}
