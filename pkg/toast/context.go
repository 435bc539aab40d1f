package toast

import (
	"context"
	"errors"
)

// ErrNoProvider is the panic value raised by FromContext when the context
// carries no provider.
var ErrNoProvider = errors.New("toast: FromContext must be used within a toast provider")

type ctxKey struct{}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Lookup returns the provider stored in ctx, if any.
func Lookup(ctx context.Context) (*Provider, bool) {
	if ctx == nil {
		return nil, false
	}
	p, ok := ctx.Value(ctxKey{}).(*Provider)
	return p, ok && p != nil
}

// FromContext returns the provider stored in ctx. A missing provider is a
// wiring error and panics with ErrNoProvider.
func FromContext(ctx context.Context) *Provider {
	p, ok := Lookup(ctx)
	if !ok {
		panic(ErrNoProvider)
	}
	return p
}
