package ui

import (
	"strconv"

	"github.com/goliatone/go-onboarding/pkg/format"
)

// Progress is a horizontal bar with an optional numbered step list below it.
type Progress struct {
	// Value is a percentage and is clamped to 0..100.
	Value       float64
	ShowSteps   bool
	CurrentStep int
	TotalSteps  int
	StepLabels  []string
	Class       string
	Label       string
}

// StepState is the visual state of one step in the list.
type StepState string

const (
	StepCompleted StepState = "completed"
	StepCurrent   StepState = "current"
	StepUpcoming  StepState = "upcoming"
)

// StepStateFor classifies step relative to current.
func StepStateFor(step, current int) StepState {
	switch {
	case step < current:
		return StepCompleted
	case step == current:
		return StepCurrent
	default:
		return StepUpcoming
	}
}

func (Progress) ComponentName() string { return ComponentProgress }

func (p Progress) View(*Renderer) (map[string]any, error) {
	value := min(max(p.Value, 0), 100)

	view := map[string]any{
		"class":  ClassNames("ob-progress", p.Class),
		"value":  strconv.FormatFloat(value, 'f', -1, 64),
		"offset": strconv.FormatFloat(100-value, 'f', -1, 64),
		"label":  p.Label,
	}

	if p.ShowSteps && p.CurrentStep > 0 && p.TotalSteps > 0 {
		steps := make([]map[string]any, 0, p.TotalSteps)
		check := Icon(IconCheckCircle)
		for i := 0; i < p.TotalSteps; i++ {
			number := i + 1
			state := StepStateFor(number, p.CurrentStep)
			item := map[string]any{
				"number": strconv.Itoa(number),
				"state":  string(state),
				"class":  ClassNames("ob-progress__step", "ob-progress__step--"+string(state)),
			}
			if state == StepCompleted {
				item["icon"] = check
			}
			if i < len(p.StepLabels) && p.StepLabels[i] != "" {
				item["label"] = p.StepLabels[i]
			}
			steps = append(steps, item)
		}
		view["steps"] = steps
		view["stepText"] = "Step " + strconv.Itoa(p.CurrentStep) + " of " + strconv.Itoa(p.TotalSteps)
		view["percentText"] = strconv.Itoa(format.CalculateProgress(p.CurrentStep, p.TotalSteps)) + "% Complete"
	}
	return view, nil
}
