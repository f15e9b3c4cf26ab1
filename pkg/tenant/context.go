package tenant

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Context is the resolved tenant of one request. Exactly one exists per
// request once resolution succeeds; it is never persisted.
type Context struct {
	OrganizationID uuid.UUID `json:"organization_id"`
	Impersonation  bool      `json:"impersonation,omitempty"`

	// ActingAdminID identifies the platform administrator behind an
	// impersonated request. Zero outside impersonation.
	ActingAdminID uuid.UUID `json:"acting_admin_id,omitzero"`

	// OrganizationName is carried for impersonation audit markers only.
	OrganizationName string `json:"organization_name,omitempty"`
}

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// WithContext adds a resolved tenant context to the request context.
func WithContext(ctx context.Context, tc Context) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// FromContext retrieves the tenant context.
// Returns a zero Context and false if none is present.
func FromContext(ctx context.Context) (Context, bool) {
	tc, ok := ctx.Value(contextKey{}).(Context)
	return tc, ok
}

// MustFromContext retrieves the tenant context.
// Panics if none is present. Use only in handlers that cannot run
// without a resolved tenant.
func MustFromContext(ctx context.Context) Context {
	tc, ok := FromContext(ctx)
	if !ok {
		panic("tenant: no tenant context")
	}
	return tc
}

// LoggerExtractor returns a ContextExtractor for the logger that adds
// the resolved organization id to every log line.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if tc, ok := FromContext(ctx); ok {
			return slog.String("organization_id", tc.OrganizationID.String()), true
		}
		return slog.Attr{}, false
	}
}
