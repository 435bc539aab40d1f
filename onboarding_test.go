package onboarding

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-onboarding/pkg/model"
	"github.com/goliatone/go-onboarding/pkg/testsupport"
)

func fixedNow() time.Time {
	return time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)
}

func TestNewFlowStartsOnFirstStep(t *testing.T) {
	flow := NewFlow(WithNow(fixedNow))
	status := flow.Status()
	if status.CurrentStep != model.StepPersonalInfo {
		t.Fatalf("expected first step, got %d", status.CurrentStep)
	}
	if !status.LastActiveAt.Equal(fixedNow()) {
		t.Fatalf("expected LastActiveAt from clock, got %v", status.LastActiveAt)
	}

	steps := flow.Steps()
	if len(steps) != model.TotalSteps {
		t.Fatalf("expected %d steps, got %d", model.TotalSteps, len(steps))
	}
	if !steps[0].IsActive || !steps[0].CanAccess || steps[0].IsComplete {
		t.Fatalf("unexpected first step flags %+v", steps[0])
	}
	if steps[1].CanAccess {
		t.Fatalf("expected second step to be locked")
	}
}

func TestOpenRejectsLockedAndUnknownSteps(t *testing.T) {
	flow := NewFlow()
	if _, err := flow.Open(3); !errors.Is(err, ErrStepLocked) {
		t.Fatalf("expected ErrStepLocked, got %v", err)
	}
	if _, err := flow.Open(11); !errors.Is(err, ErrUnknownStep) {
		t.Fatalf("expected ErrUnknownStep, got %v", err)
	}
	step, err := flow.Open(1)
	if err != nil {
		t.Fatalf("open first step: %v", err)
	}
	if step.Component != "personal-info" {
		t.Fatalf("unexpected component %q", step.Component)
	}
}

func TestSubmitPersonalInfo(t *testing.T) {
	flow := NewFlow(WithNow(fixedNow))

	bad := testsupport.SamplePersonalInfo()
	bad.Email = "nope"
	issues := flow.SubmitPersonalInfo(bad)
	if issues.Valid() {
		t.Fatalf("expected issues for invalid email")
	}
	if flow.Status().PersonalInfoComplete {
		t.Fatalf("invalid submission must not complete the step")
	}
	if got := flow.FormData().PersonalInfo.Email; got != "nope" {
		t.Fatalf("expected submitted data to be kept for redisplay, got %q", got)
	}

	issues = flow.SubmitPersonalInfo(testsupport.SamplePersonalInfo())
	if !issues.Valid() {
		t.Fatalf("expected valid submission, got %v", issues.Err())
	}
	status := flow.Status()
	if !status.PersonalInfoComplete || status.CurrentStep != model.StepDocuments {
		t.Fatalf("unexpected status after submit %+v", status)
	}
	if diff := cmp.Diff([]int{1}, status.CompletedSteps); diff != "" {
		t.Fatalf("completed steps mismatch (-want +got):\n%s", diff)
	}
}

func TestCompleteRequiresValidPersonalInfo(t *testing.T) {
	flow := NewFlow()
	if _, err := flow.Complete(1); !errors.Is(err, ErrInvalidPersonalInfo) {
		t.Fatalf("expected ErrInvalidPersonalInfo, got %v", err)
	}

	flow.SavePersonalInfo(testsupport.SamplePersonalInfo())
	next, err := flow.Complete(1)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if next != 2 {
		t.Fatalf("expected next step 2, got %d", next)
	}
}

func TestCompleteWalksEveryStep(t *testing.T) {
	flow := NewFlow(WithPersonalInfo(testsupport.SamplePersonalInfo()))
	for id := 1; id <= model.TotalSteps; id++ {
		next, err := flow.Complete(id)
		if err != nil {
			t.Fatalf("complete %d: %v", id, err)
		}
		want := min(id+1, model.TotalSteps)
		if next != want {
			t.Fatalf("complete %d: expected next %d, got %d", id, want, next)
		}
	}
	status := flow.Status()
	if !status.IsComplete || flow.Progress() != 100 {
		t.Fatalf("expected finished flow, got %+v", status)
	}
}

func TestCompleteLockedStep(t *testing.T) {
	flow := NewFlow()
	if _, err := flow.Complete(5); !errors.Is(err, ErrStepLocked) {
		t.Fatalf("expected ErrStepLocked, got %v", err)
	}
	if _, err := flow.Complete(0); !errors.Is(err, ErrUnknownStep) {
		t.Fatalf("expected ErrUnknownStep, got %v", err)
	}
}

func TestWithStatusResumes(t *testing.T) {
	status := model.NewOnboardingStatus(fixedNow())
	status.MarkStepComplete(1, fixedNow())
	status.MarkStepComplete(2, fixedNow())

	flow := NewFlow(WithStatus(status))
	if got := flow.Status().CurrentStep; got != 3 {
		t.Fatalf("expected resume on step 3, got %d", got)
	}

	copied := flow.Status()
	copied.CompletedSteps[0] = 99
	if flow.Status().CompletedSteps[0] != 1 {
		t.Fatalf("Status must return a copy")
	}
}

func TestPrevious(t *testing.T) {
	flow := NewFlow()
	if got := flow.Previous(1); got != 1 {
		t.Fatalf("expected to stay on first step, got %d", got)
	}
	if got := flow.Previous(4); got != 3 {
		t.Fatalf("expected step 3, got %d", got)
	}
}
