// Package onboarding ties the presentation packages together into the
// ten step agent onboarding flow. Flow holds one agent's progress in memory;
// the HTTP server and the CLI drive it and render it through pkg/ui.
package onboarding

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/goliatone/go-onboarding/pkg/model"
	"github.com/goliatone/go-onboarding/pkg/reference"
	"github.com/goliatone/go-onboarding/pkg/validation"
)

var (
	// ErrUnknownStep is returned for step ids outside the onboarding sequence.
	ErrUnknownStep = errors.New("onboarding: unknown step")
	// ErrStepLocked is returned when a step ahead of the current one is
	// requested.
	ErrStepLocked = errors.New("onboarding: step is locked")
	// ErrInvalidPersonalInfo wraps the field issues of a rejected submission.
	ErrInvalidPersonalInfo = errors.New("onboarding: personal information is invalid")
)

// Option configures a Flow.
type Option func(*Flow)

// WithNow replaces the clock used for LastActiveAt.
func WithNow(now func() time.Time) Option {
	return func(f *Flow) {
		if now != nil {
			f.now = now
		}
	}
}

// WithStatus resumes a flow from an existing status.
func WithStatus(status model.OnboardingStatus) Option {
	return func(f *Flow) {
		f.status = cloneStatus(status)
	}
}

// WithPersonalInfo preloads the personal information form.
func WithPersonalInfo(info model.PersonalInfo) Option {
	return func(f *Flow) {
		f.form.PersonalInfo = info
	}
}

// Flow tracks one agent through the onboarding steps. It is safe for
// concurrent use.
type Flow struct {
	mu     sync.RWMutex
	now    func() time.Time
	status model.OnboardingStatus
	form   model.FormData
}

// NewFlow returns a flow positioned on the first step.
func NewFlow(opts ...Option) *Flow {
	f := &Flow{now: time.Now}
	f.status = model.NewOnboardingStatus(time.Time{})
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	if f.status.CurrentStep == 0 {
		f.status.CurrentStep = model.StepPersonalInfo
	}
	if f.status.LastActiveAt.IsZero() {
		f.status.LastActiveAt = f.now()
	}
	return f
}

// Status returns a copy of the current status.
func (f *Flow) Status() model.OnboardingStatus {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return cloneStatus(f.status)
}

// FormData returns a copy of the collected form data.
func (f *Flow) FormData() model.FormData {
	f.mu.RLock()
	defer f.mu.RUnlock()
	form := f.form
	form.PersonalInfo.LicensedStates = slices.Clone(form.PersonalInfo.LicensedStates)
	form.Documents = slices.Clone(form.Documents)
	form.Signatures = maps.Clone(form.Signatures)
	return form
}

// Steps lists every step with its completion and access flags.
func (f *Flow) Steps() []model.OnboardingStep {
	f.mu.RLock()
	defer f.mu.RUnlock()
	steps := reference.OnboardingSteps()
	out := make([]model.OnboardingStep, 0, len(steps))
	for _, step := range steps {
		out = append(out, f.stepLocked(step))
	}
	return out
}

// Step returns one step, or ErrUnknownStep.
func (f *Flow) Step(id int) (model.OnboardingStep, error) {
	step, ok := reference.StepByID(id)
	if !ok {
		return model.OnboardingStep{}, fmt.Errorf("%w: %d", ErrUnknownStep, id)
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.stepLocked(step), nil
}

func (f *Flow) stepLocked(step reference.Step) model.OnboardingStep {
	return model.OnboardingStep{
		ID:          step.ID,
		Title:       step.Title,
		Description: step.Description,
		Component:   step.Component,
		IsComplete:  f.status.IsStepComplete(step.ID),
		IsActive:    f.status.CurrentStep == step.ID,
		CanAccess:   f.status.CanAccess(step.ID),
	}
}

// Open checks that id can be shown and returns the step.
func (f *Flow) Open(id int) (model.OnboardingStep, error) {
	step, err := f.Step(id)
	if err != nil {
		return step, err
	}
	if !step.CanAccess {
		return step, fmt.Errorf("%w: %d", ErrStepLocked, id)
	}
	return step, nil
}

// SavePersonalInfo stores a draft without validating it.
func (f *Flow) SavePersonalInfo(info model.PersonalInfo) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.form.PersonalInfo = info
	f.status.LastActiveAt = f.now()
}

// SubmitPersonalInfo validates info, stores it and completes the personal
// information step when it is valid. The issues are returned either way.
func (f *Flow) SubmitPersonalInfo(info model.PersonalInfo) validation.Issues {
	issues := validation.ValidatePersonalInfo(info)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.form.PersonalInfo = info
	now := f.now()
	f.status.LastActiveAt = now
	if issues.Valid() {
		f.status.MarkStepComplete(model.StepPersonalInfo, now)
	}
	return issues
}

// Complete marks step done and returns the step to show next. The personal
// information step only completes through SubmitPersonalInfo data that
// validates.
func (f *Flow) Complete(id int) (int, error) {
	if _, ok := reference.StepByID(id); !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownStep, id)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.status.CanAccess(id) {
		return 0, fmt.Errorf("%w: %d", ErrStepLocked, id)
	}
	if id == model.StepPersonalInfo {
		if err := validation.ValidatePersonalInfo(f.form.PersonalInfo).Err(); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidPersonalInfo, err)
		}
	}
	f.status.MarkStepComplete(id, f.now())
	return min(id+1, model.TotalSteps), nil
}

// Previous returns the step before id, never going below the first step.
func (f *Flow) Previous(id int) int {
	return max(id-1, model.StepPersonalInfo)
}

// Progress is the rounded share of completed steps.
func (f *Flow) Progress() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.status.Progress()
}

func cloneStatus(s model.OnboardingStatus) model.OnboardingStatus {
	s.CompletedSteps = slices.Clone(s.CompletedSteps)
	if s.CompletedSteps == nil {
		s.CompletedSteps = []int{}
	}
	return s
}
