package policy

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/agrofleet/agrokit/pkg/authz"
)

// UsageWarningHeader carries near-limit warnings as response metadata.
const UsageWarningHeader = "X-Usage-Warning"

// ErrorHandler handles policy denials.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, authz.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, authz.ErrUnauthorized):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, authz.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// Middleware runs the checks before the wrapped handler, denying with
// the status derived from the error kind. Warnings recorded by the
// checks are attached to the response headers.
func Middleware(checks ...Check) func(http.Handler) http.Handler {
	return MiddlewareWithErrorHandler(nil, checks...)
}

// MiddlewareWithErrorHandler is Middleware with a custom denial handler.
func MiddlewareWithErrorHandler(errorHandler ErrorHandler, checks ...Check) func(http.Handler) http.Handler {
	if errorHandler == nil {
		errorHandler = defaultErrorHandler
	}
	chain := Chain(checks...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithWarnings(r.Context())

			if err := chain(ctx); err != nil {
				errorHandler(w, r, err)
				return
			}

			for _, warning := range WarningsFrom(ctx) {
				w.Header().Add(UsageWarningHeader,
					fmt.Sprintf("%s %d/%d", warning.Resource, warning.Current, warning.Limit))
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
