// Package reference exposes the static data shared by the onboarding forms:
// the list of US states and the fixed onboarding step sequence.
package reference

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// State is a selectable US state option.
type State struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// Step describes one stage of the onboarding sequence.
type Step struct {
	ID          int    `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Component   string `yaml:"component" json:"component"`
}

var (
	loadOnce sync.Once
	states   []State
	steps    []Step
	byCode   map[string]int
)

func load() {
	loadOnce.Do(func() {
		if err := decode("data/us_states.yaml", &states); err != nil {
			panic(err)
		}
		if err := decode("data/steps.yaml", &steps); err != nil {
			panic(err)
		}
		byCode = make(map[string]int, len(states))
		for i, state := range states {
			byCode[state.Value] = i
		}
		for i, step := range steps {
			if step.ID != i+1 {
				panic(fmt.Sprintf("reference: step %q has id %d, want %d", step.Title, step.ID, i+1))
			}
		}
	})
}

func decode(name string, target any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("reference: read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("reference: decode %s: %w", name, err)
	}
	return nil
}

// USStates returns the fifty states ordered by name.
func USStates() []State {
	load()
	return append([]State(nil), states...)
}

// StateByCode looks up a state by its two-letter code, ignoring case.
func StateByCode(code string) (State, bool) {
	load()
	idx, ok := byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return State{}, false
	}
	return states[idx], true
}

// OnboardingSteps returns the onboarding sequence in order.
func OnboardingSteps() []Step {
	load()
	return append([]Step(nil), steps...)
}

// StepByID returns the step with the given id.
func StepByID(id int) (Step, bool) {
	load()
	if id < 1 || id > len(steps) {
		return Step{}, false
	}
	return steps[id-1], true
}

// TotalSteps reports the length of the onboarding sequence.
func TotalSteps() int {
	load()
	return len(steps)
}
