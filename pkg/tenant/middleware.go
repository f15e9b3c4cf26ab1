package tenant

import (
	"errors"
	"net/http"

	"github.com/agrofleet/agrokit/pkg/authz"
	"github.com/agrofleet/agrokit/pkg/identity"
)

// Audit marker headers set on impersonated responses.
const (
	ImpersonatedOrgIDHeader   = "X-Impersonated-Organization-Id"
	ImpersonatedOrgNameHeader = "X-Impersonated-Organization-Name"
)

// ErrorHandler handles errors that occur during tenant resolution.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// middlewareConfig holds middleware configuration.
type middlewareConfig struct {
	override     OverrideResolver
	errorHandler ErrorHandler
}

// MiddlewareOption configures the middleware.
type MiddlewareOption func(*middlewareConfig)

// WithOverrideResolver sets a custom override extraction.
func WithOverrideResolver(o OverrideResolver) MiddlewareOption {
	return func(c *middlewareConfig) {
		if o != nil {
			c.override = o
		}
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler(handler ErrorHandler) MiddlewareOption {
	return func(c *middlewareConfig) {
		if handler != nil {
			c.errorHandler = handler
		}
	}
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, authz.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, authz.ErrUnauthorized):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// Middleware resolves the tenant context for each request and adds it to
// the request context. The principal must already be present (set by the
// authentication layer); requests without one pass through unresolved.
// Impersonated responses carry the audit marker headers.
func Middleware(resolver *Resolver, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		override:     NewHeaderOverride(""),
		errorHandler: defaultErrorHandler,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := identity.FromContext(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			tc, err := resolver.Resolve(r.Context(), principal, cfg.override.Override(r))
			if err != nil {
				cfg.errorHandler(w, r, err)
				return
			}

			if tc.Impersonation {
				w.Header().Set(ImpersonatedOrgIDHeader, tc.OrganizationID.String())
				w.Header().Set(ImpersonatedOrgNameHeader, tc.OrganizationName)
			}

			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), tc)))
		})
	}
}

// RequireContext ensures a tenant context is present before the handler
// runs. Useful for routes that cannot operate without a resolved tenant.
func RequireContext(errorHandler ErrorHandler) func(http.Handler) http.Handler {
	if errorHandler == nil {
		errorHandler = defaultErrorHandler
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := FromContext(r.Context()); !ok {
				errorHandler(w, r, ErrNoContext)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
