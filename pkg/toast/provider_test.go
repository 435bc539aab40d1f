package toast_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-onboarding/pkg/testsupport"
	"github.com/goliatone/go-onboarding/pkg/toast"
)

func newTestProvider(t *testing.T, opts ...toast.Option) (*toast.Provider, *testsupport.ManualClock) {
	t.Helper()
	clock := testsupport.NewManualClock(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	seq := 0
	base := []toast.Option{
		toast.WithClock(clock),
		toast.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("t%d", seq)
		}),
	}
	p := toast.NewProvider(append(base, opts...)...)
	t.Cleanup(p.Close)
	return p, clock
}

func ids(toasts []toast.Toast) []string {
	out := make([]string, len(toasts))
	for i, t := range toasts {
		out[i] = t.ID
	}
	return out
}

func TestAddAppendsInOrder(t *testing.T) {
	p, _ := newTestProvider(t)

	first, err := p.Add(toast.Message{Title: "Saved", Variant: toast.VariantSuccess})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, _ := p.Add(toast.Message{Title: "Heads up", Variant: "unknown"})

	if first.ID == second.ID {
		t.Fatalf("expected distinct ids")
	}
	if second.Variant != toast.VariantDefault {
		t.Fatalf("expected unknown variant to normalize to default, got %q", second.Variant)
	}
	if first.Duration != toast.DefaultDuration {
		t.Fatalf("expected default duration, got %v", first.Duration)
	}
	if diff := cmp.Diff([]string{"t1", "t2"}, ids(p.Toasts())); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultDurationExpires(t *testing.T) {
	p, clock := newTestProvider(t)
	p.Add(toast.Message{Title: "Saved"})

	clock.Advance(4999 * time.Millisecond)
	if p.Len() != 1 {
		t.Fatalf("expected toast to remain before 5s")
	}
	clock.Advance(time.Millisecond)
	if p.Len() != 0 {
		t.Fatalf("expected toast to expire at 5s")
	}
}

func TestCustomDuration(t *testing.T) {
	p, clock := newTestProvider(t)
	p.Add(toast.Message{Title: "quick", Duration: toast.Duration(time.Second)})
	p.Add(toast.Message{Title: "slow", Duration: toast.Duration(10 * time.Second)})

	clock.Advance(time.Second)
	if diff := cmp.Diff([]string{"t2"}, ids(p.Toasts())); diff != "" {
		t.Fatalf("remaining mismatch (-want +got):\n%s", diff)
	}
}

func TestZeroDurationIsPersistent(t *testing.T) {
	p, clock := newTestProvider(t)
	added, _ := p.Add(toast.Message{Title: "sticky", Duration: toast.Duration(0)})

	if !added.Persistent() {
		t.Fatalf("expected persistent toast")
	}
	if clock.Pending() != 0 {
		t.Fatalf("expected no timer for persistent toast")
	}
	clock.Advance(time.Hour)
	if p.Len() != 1 {
		t.Fatalf("expected persistent toast to remain")
	}
}

func TestNegativeDurationExpiresOnNextTick(t *testing.T) {
	p, clock := newTestProvider(t)
	p.Add(toast.Message{Title: "gone", Duration: toast.Duration(-time.Second)})

	clock.Advance(0)
	if p.Len() != 0 {
		t.Fatalf("expected negative duration to dismiss immediately")
	}
}

func TestRemoveCancelsTimerAndIsIdempotent(t *testing.T) {
	p, clock := newTestProvider(t)
	added, _ := p.Add(toast.Message{Title: "Saved"})

	if !p.Remove(added.ID) {
		t.Fatalf("expected first remove to succeed")
	}
	if p.Remove(added.ID) {
		t.Fatalf("expected second remove to report false")
	}
	if p.Remove("missing") {
		t.Fatalf("expected unknown id to report false")
	}
	if clock.Pending() != 0 {
		t.Fatalf("expected timer to be cancelled on remove")
	}
}

func TestRemoveKeepsOrderOfOthers(t *testing.T) {
	p, _ := newTestProvider(t)
	for i := 0; i < 3; i++ {
		p.Add(toast.Message{Title: fmt.Sprintf("n%d", i)})
	}
	p.Remove("t2")
	if diff := cmp.Diff([]string{"t1", "t3"}, ids(p.Toasts())); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestToastsReturnsSnapshot(t *testing.T) {
	p, _ := newTestProvider(t)
	p.Add(toast.Message{Title: "one"})
	snap := p.Toasts()
	snap[0].Title = "mutated"
	if p.Toasts()[0].Title != "one" {
		t.Fatalf("expected snapshot mutation not to leak")
	}
}

func TestCloseCancelsTimersAndRejectsAdds(t *testing.T) {
	p, clock := newTestProvider(t)
	p.Add(toast.Message{Title: "one"})
	p.Add(toast.Message{Title: "two", Duration: toast.Duration(time.Minute)})

	p.Close()
	p.Close()

	if clock.Pending() != 0 {
		t.Fatalf("expected close to stop every timer")
	}
	clock.Advance(time.Hour)
	if p.Len() != 2 {
		t.Fatalf("expected toasts to stay readable after close")
	}
	if _, err := p.Add(toast.Message{Title: "late"}); !errors.Is(err, toast.ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestOnChangeReportsMutations(t *testing.T) {
	var (
		mu    sync.Mutex
		kinds []toast.ChangeKind
		sizes []int
	)
	p, clock := newTestProvider(t, toast.WithOnChange(func(c toast.Change) {
		mu.Lock()
		defer mu.Unlock()
		kinds = append(kinds, c.Kind)
		sizes = append(sizes, len(c.Toasts))
	}))

	a, _ := p.Add(toast.Message{Title: "a"})
	p.Add(toast.Message{Title: "b", Duration: toast.Duration(time.Second)})
	p.Remove(a.ID)
	clock.Advance(time.Second)

	mu.Lock()
	defer mu.Unlock()
	wantKinds := []toast.ChangeKind{toast.ChangeAdded, toast.ChangeAdded, toast.ChangeRemoved, toast.ChangeExpired}
	if diff := cmp.Diff(wantKinds, kinds); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 1, 0}, sizes); diff != "" {
		t.Fatalf("sizes mismatch (-want +got):\n%s", diff)
	}
}

func TestSystemClockRemovesAfterDuration(t *testing.T) {
	done := make(chan struct{})
	p := toast.NewProvider(toast.WithOnChange(func(c toast.Change) {
		if c.Kind == toast.ChangeExpired {
			close(done)
		}
	}))
	defer p.Close()

	p.Add(toast.Message{Title: "fast", Duration: toast.Duration(5 * time.Millisecond)})
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected toast to expire on the system clock")
	}
	if p.Len() != 0 {
		t.Fatalf("expected provider to be empty")
	}
}

func TestConcurrentAddRemove(t *testing.T) {
	p := toast.NewProvider()
	defer p.Close()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			added, err := p.Add(toast.Message{Title: "x", Duration: toast.Duration(0)})
			if err != nil {
				t.Errorf("add: %v", err)
				return
			}
			p.Remove(added.ID)
		}()
	}
	wg.Wait()
	if p.Len() != 0 {
		t.Fatalf("expected every toast removed, got %d", p.Len())
	}
}
