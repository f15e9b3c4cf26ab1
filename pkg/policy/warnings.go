package policy

import (
	"context"
	"sync"

	"github.com/agrofleet/agrokit/pkg/plan"
)

// Warning signals that an organization is approaching a usage limit.
// Non-fatal: it decorates the response, never blocks the request.
type Warning struct {
	Resource plan.Resource `json:"resource"`
	Current  int64         `json:"current"`
	Limit    int64         `json:"limit"`
}

// collector accumulates warnings across the checks of one request.
type collector struct {
	mu    sync.Mutex
	items []Warning
}

// warningsKey is a private type to prevent collisions with other context keys.
type warningsKey struct{}

// WithWarnings attaches a warning collector to the context. The
// middleware does this automatically.
func WithWarnings(ctx context.Context) context.Context {
	return context.WithValue(ctx, warningsKey{}, &collector{})
}

// Warn records a warning if a collector is present; otherwise it is
// silently dropped.
func Warn(ctx context.Context, w Warning) {
	c, ok := ctx.Value(warningsKey{}).(*collector)
	if !ok {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, w)
}

// WarningsFrom returns the warnings recorded on the context.
func WarningsFrom(ctx context.Context) []Warning {
	c, ok := ctx.Value(warningsKey{}).(*collector)
	if !ok {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Warning, len(c.items))
	copy(out, c.items)
	return out
}
