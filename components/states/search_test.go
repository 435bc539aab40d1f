package states

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-onboarding/pkg/reference"
)

var sampleStates = []reference.State{
	{Value: "NE", Label: "Nebraska"},
	{Value: "NV", Label: "Nevada"},
	{Value: "NH", Label: "New Hampshire"},
	{Value: "NJ", Label: "New Jersey"},
	{Value: "TN", Label: "Tennessee"},
	{Value: "VA", Label: "Virginia"},
	{Value: "WV", Label: "West Virginia"},
}

func TestSearch_PrefixBeforeContains(t *testing.T) {
	opts := NewOptions()
	got := SearchOptions(sampleStates, "virginia", 10, opts)
	want := []Option{
		{Value: "VA", Label: "Virginia"},
		{Value: "WV", Label: "West Virginia"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected results (-want +got):\n%s", diff)
	}
}

func TestSearch_ExactCodeFirst(t *testing.T) {
	got := Search(sampleStates, "ne", 10, NewOptions())
	if len(got) == 0 || got[0].Value != "NE" {
		t.Fatalf("expected Nebraska first, got %#v", got)
	}
	last := got[len(got)-1]
	if last.Value != "TN" {
		t.Fatalf("expected contains-only match last, got %#v", got)
	}
}

func TestSearch_CaseInsensitiveCode(t *testing.T) {
	got := Search(sampleStates, " nj ", 10, NewOptions())
	if len(got) != 1 || got[0].Label != "New Jersey" {
		t.Fatalf("unexpected results: %#v", got)
	}
}

func TestSearch_EmptyQueryModes(t *testing.T) {
	top := Search(sampleStates, "", 3, NewOptions())
	if len(top) != 3 || top[0].Value != "NE" {
		t.Fatalf("expected first three states, got %#v", top)
	}

	none := Search(sampleStates, "", 3, NewOptions(WithEmptySearchMode(EmptySearchNone)))
	if none != nil {
		t.Fatalf("expected no results, got %#v", none)
	}
}

func TestSearch_LimitClamped(t *testing.T) {
	opts := NewOptions(WithDefaultLimit(2), WithMaxLimit(3))
	if got := Search(sampleStates, "", 0, opts); len(got) != 2 {
		t.Fatalf("expected default limit, got %d", len(got))
	}
	if got := Search(sampleStates, "", 50, opts); len(got) != 3 {
		t.Fatalf("expected max limit, got %d", len(got))
	}
	if got := Search(sampleStates, "", -1, opts); got != nil {
		t.Fatalf("expected nil for negative limit, got %#v", got)
	}
}

func TestSearch_DefaultListCoversAllStates(t *testing.T) {
	got := Search(reference.USStates(), "", 0, NewOptions())
	if len(got) != 50 {
		t.Fatalf("expected all 50 states, got %d", len(got))
	}
}
