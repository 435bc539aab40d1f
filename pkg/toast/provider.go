package toast

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrClosed is returned by Add once the provider has been closed.
var ErrClosed = errors.New("toast: provider closed")

// ChangeKind describes why the toast list changed.
type ChangeKind string

const (
	ChangeAdded   ChangeKind = "added"
	ChangeRemoved ChangeKind = "removed"
	ChangeExpired ChangeKind = "expired"
)

// Change is delivered to the OnChange hook after every list mutation.
type Change struct {
	Kind   ChangeKind
	Toast  Toast
	Toasts []Toast
}

// Option configures a Provider.
type Option func(*Provider)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(clock Clock) Option {
	return func(p *Provider) {
		if clock != nil {
			p.clock = clock
		}
	}
}

// WithOnChange registers a hook invoked outside the provider lock after every
// add, remove or expiry.
func WithOnChange(fn func(Change)) Option {
	return func(p *Provider) {
		p.onChange = fn
	}
}

// WithIDGenerator overrides the uuid based id source.
func WithIDGenerator(fn func() string) Option {
	return func(p *Provider) {
		if fn != nil {
			p.newID = fn
		}
	}
}

type entry struct {
	toast Toast
	timer Timer
}

// Provider owns the ordered toast list and its dismiss timers. It is safe for
// concurrent use.
type Provider struct {
	mu       sync.Mutex
	entries  []*entry
	closed   bool
	clock    Clock
	onChange func(Change)
	newID    func() string
}

// NewProvider constructs an empty provider.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		clock: SystemClock{},
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Add appends a toast and schedules its removal. Toasts are displayed in the
// order they were added.
func (p *Provider) Add(msg Message) (Toast, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return Toast{}, ErrClosed
	}

	d := msg.effectiveDuration()
	t := Toast{
		ID:          p.newID(),
		Title:       msg.Title,
		Description: msg.Description,
		Variant:     msg.Variant.Normalize(),
		Duration:    d,
		CreatedAt:   p.clock.Now(),
	}
	e := &entry{toast: t}
	p.entries = append(p.entries, e)

	if d != 0 {
		id := t.ID
		e.timer = p.clock.AfterFunc(max(d, 0), func() {
			p.expire(id)
		})
	}
	snapshot := p.snapshotLocked()
	p.mu.Unlock()

	p.notify(Change{Kind: ChangeAdded, Toast: t, Toasts: snapshot})
	return t, nil
}

// Remove dismisses the toast with id and cancels its timer. Removing an
// unknown or already removed id is a no-op reported as false.
func (p *Provider) Remove(id string) bool {
	return p.remove(id, ChangeRemoved)
}

func (p *Provider) expire(id string) {
	p.remove(id, ChangeExpired)
}

func (p *Provider) remove(id string, kind ChangeKind) bool {
	p.mu.Lock()
	if kind == ChangeExpired && p.closed {
		p.mu.Unlock()
		return false
	}
	idx := -1
	for i, e := range p.entries {
		if e.toast.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		p.mu.Unlock()
		return false
	}

	e := p.entries[idx]
	if e.timer != nil {
		e.timer.Stop()
	}
	p.entries = append(p.entries[:idx], p.entries[idx+1:]...)
	snapshot := p.snapshotLocked()
	p.mu.Unlock()

	p.notify(Change{Kind: kind, Toast: e.toast, Toasts: snapshot})
	return true
}

// Toasts returns a snapshot of the current list in display order.
func (p *Provider) Toasts() []Toast {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

// Len reports the number of visible toasts.
func (p *Provider) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}

// Close stops every pending timer and rejects further adds. Toasts already
// shown remain readable. Close is idempotent.
func (p *Provider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	for _, e := range p.entries {
		if e.timer != nil {
			e.timer.Stop()
			e.timer = nil
		}
	}
}

func (p *Provider) snapshotLocked() []Toast {
	out := make([]Toast, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.toast
	}
	return out
}

func (p *Provider) notify(change Change) {
	if p.onChange != nil {
		p.onChange(change)
	}
}
