package ui

import (
	"context"
	"errors"
	"testing"
)

func TestStepNavigationLabels(t *testing.T) {
	nav := StepNavigation{CurrentStep: 3, TotalSteps: 10}
	if nav.NextText() != DefaultNextLabel {
		t.Fatalf("unexpected next label %q", nav.NextText())
	}
	if nav.BackText() != "Back" {
		t.Fatalf("unexpected back label %q", nav.BackText())
	}

	nav.CurrentStep = 10
	if nav.NextText() != DefaultCompleteLabel {
		t.Fatalf("expected completion label on last step, got %q", nav.NextText())
	}

	nav.NextLabel = "Finish"
	nav.BackLabel = "Previous"
	if nav.NextText() != "Finish" || nav.BackText() != "Previous" {
		t.Fatalf("expected explicit labels to win")
	}
}

func TestStepNavigationVisibility(t *testing.T) {
	first := StepNavigation{CurrentStep: 1, TotalSteps: 10}
	if first.ShowBack() {
		t.Fatalf("expected back hidden on first step")
	}
	if first.ShowSave() {
		t.Fatalf("expected save hidden without handler")
	}

	withSave := StepNavigation{CurrentStep: 2, TotalSteps: 10, OnSave: func(context.Context) error { return nil }}
	if !withSave.ShowBack() || !withSave.ShowSave() {
		t.Fatalf("expected back and save visible")
	}
	withSave.HideSave = true
	if withSave.ShowSave() {
		t.Fatalf("expected HideSave to hide save")
	}
}

func TestStepNavigationDispatch(t *testing.T) {
	var calls []Action
	record := func(a Action) ActionFunc {
		return func(context.Context) error {
			calls = append(calls, a)
			return nil
		}
	}
	nav := StepNavigation{
		CurrentStep: 2,
		TotalSteps:  10,
		OnNext:      record(ActionNext),
		OnBack:      record(ActionBack),
		OnSave:      record(ActionSave),
	}
	ctx := context.Background()

	for _, action := range []Action{ActionNext, ActionBack, ActionSave} {
		if err := nav.Dispatch(ctx, action); err != nil {
			t.Fatalf("dispatch %s: %v", action, err)
		}
	}
	if len(calls) != 3 {
		t.Fatalf("expected 3 handler calls, got %v", calls)
	}

	if err := nav.Dispatch(ctx, "jump"); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}

func TestStepNavigationDispatchDisabled(t *testing.T) {
	noop := func(context.Context) error { return nil }
	ctx := context.Background()

	loading := StepNavigation{CurrentStep: 2, TotalSteps: 10, OnNext: noop, OnBack: noop, OnSave: noop, Loading: true}
	for _, action := range []Action{ActionNext, ActionBack, ActionSave} {
		if err := loading.Dispatch(ctx, action); !errors.Is(err, ErrActionDisabled) {
			t.Fatalf("expected %s disabled while loading, got %v", action, err)
		}
	}

	first := StepNavigation{CurrentStep: 1, TotalSteps: 10, OnNext: noop, OnBack: noop}
	if err := first.Dispatch(ctx, ActionBack); !errors.Is(err, ErrActionDisabled) {
		t.Fatalf("expected back disabled on first step, got %v", err)
	}
	if err := first.Dispatch(ctx, ActionSave); !errors.Is(err, ErrActionDisabled) {
		t.Fatalf("expected save disabled without handler, got %v", err)
	}

	blocked := StepNavigation{CurrentStep: 4, TotalSteps: 10, OnNext: noop, NextDisabled: true}
	if err := blocked.Dispatch(ctx, ActionNext); !errors.Is(err, ErrActionDisabled) {
		t.Fatalf("expected next disabled, got %v", err)
	}

	missing := StepNavigation{CurrentStep: 4, TotalSteps: 10}
	if err := missing.Dispatch(ctx, ActionNext); !errors.Is(err, ErrActionDisabled) {
		t.Fatalf("expected next without handler to be disabled, got %v", err)
	}
}

func TestStepNavigationDispatchPropagatesHandlerError(t *testing.T) {
	boom := errors.New("boom")
	nav := StepNavigation{CurrentStep: 1, TotalSteps: 2, OnNext: func(context.Context) error { return boom }}
	if err := nav.Dispatch(context.Background(), ActionNext); !errors.Is(err, boom) {
		t.Fatalf("expected handler error, got %v", err)
	}
}

func TestParseAction(t *testing.T) {
	action, err := ParseAction(" NEXT ")
	if err != nil || action != ActionNext {
		t.Fatalf("ParseAction = %q, %v", action, err)
	}
	if _, err := ParseAction("skip"); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}
