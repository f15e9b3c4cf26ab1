package identity

import "context"

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// WithPrincipal adds a principal to the context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// FromContext retrieves the principal from the context.
// Returns a zero Principal and false if none is present.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(contextKey{}).(Principal)
	return p, ok
}
