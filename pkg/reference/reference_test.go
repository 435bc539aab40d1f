package reference

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUSStates(t *testing.T) {
	got := USStates()
	if len(got) != 50 {
		t.Fatalf("expected 50 states, got %d", len(got))
	}
	if diff := cmp.Diff(State{Value: "AL", Label: "Alabama"}, got[0]); diff != "" {
		t.Fatalf("first state mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(State{Value: "WY", Label: "Wyoming"}, got[49]); diff != "" {
		t.Fatalf("last state mismatch (-want +got):\n%s", diff)
	}
}

func TestUSStatesReturnsCopy(t *testing.T) {
	first := USStates()
	first[0].Label = "mutated"
	if USStates()[0].Label != "Alabama" {
		t.Fatalf("expected callers not to mutate shared data")
	}
}

func TestStateByCode(t *testing.T) {
	state, ok := StateByCode(" nh ")
	if !ok || state.Label != "New Hampshire" {
		t.Fatalf("StateByCode(nh) = %+v, %v", state, ok)
	}
	if _, ok := StateByCode("DC"); ok {
		t.Fatalf("expected DC to be absent")
	}
}

func TestOnboardingSteps(t *testing.T) {
	steps := OnboardingSteps()
	if len(steps) != 10 || TotalSteps() != 10 {
		t.Fatalf("expected 10 steps, got %d", len(steps))
	}
	want := Step{ID: 6, Title: "Payroll Setup", Description: "iSolved Quickhire process", Component: "payroll"}
	if diff := cmp.Diff(want, steps[5]); diff != "" {
		t.Fatalf("step 6 mismatch (-want +got):\n%s", diff)
	}
	for i, step := range steps {
		if step.ID != i+1 {
			t.Fatalf("step %d has id %d", i, step.ID)
		}
		if step.Component == "" {
			t.Fatalf("step %d has no component key", step.ID)
		}
	}
}

func TestStepByID(t *testing.T) {
	step, ok := StepByID(10)
	if !ok || step.Title != "AHIP Certification" {
		t.Fatalf("StepByID(10) = %+v, %v", step, ok)
	}
	for _, id := range []int{0, 11, -1} {
		if _, ok := StepByID(id); ok {
			t.Fatalf("StepByID(%d) should be absent", id)
		}
	}
}
