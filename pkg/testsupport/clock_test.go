package testsupport

import (
	"testing"
	"time"
)

func TestManualClockFiresInOrder(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	var order []string
	clock.AfterFunc(3*time.Second, func() { order = append(order, "late") })
	clock.AfterFunc(time.Second, func() { order = append(order, "early") })
	stopped := clock.AfterFunc(2*time.Second, func() { order = append(order, "stopped") })

	if !stopped.Stop() {
		t.Fatalf("expected first Stop to report true")
	}
	if stopped.Stop() {
		t.Fatalf("expected second Stop to report false")
	}
	if clock.Pending() != 2 {
		t.Fatalf("expected 2 pending timers, got %d", clock.Pending())
	}

	clock.Advance(5 * time.Second)

	if diff := CompareGolden([]string{"early", "late"}, order); diff != "" {
		t.Fatalf("fire order mismatch (-want +got):\n%s", diff)
	}
	if clock.Pending() != 0 {
		t.Fatalf("expected no pending timers")
	}
	if got := clock.Now(); !got.Equal(time.Unix(5, 0)) {
		t.Fatalf("unexpected now %v", got)
	}
}
