package policy_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agrofleet/agrokit/pkg/authz"
	"github.com/agrofleet/agrokit/pkg/plan"
	"github.com/agrofleet/agrokit/pkg/policy"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("passing checks reach the handler", func(t *testing.T) {
		t.Parallel()
		allow := func(ctx context.Context) error { return nil }

		rec := httptest.NewRecorder()
		policy.Middleware(allow)(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("forbidden denial maps to 403", func(t *testing.T) {
		t.Parallel()
		deny := func(ctx context.Context) error { return policy.ErrPermissionDenied }

		rec := httptest.NewRecorder()
		policy.Middleware(deny)(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unauthorized denial maps to 401", func(t *testing.T) {
		t.Parallel()
		deny := func(ctx context.Context) error { return policy.ErrNoPrincipal }

		rec := httptest.NewRecorder()
		policy.Middleware(deny)(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("not found denial maps to 404", func(t *testing.T) {
		t.Parallel()
		deny := func(ctx context.Context) error {
			return errors.Join(authz.ErrNotFound, errors.New("work item not found"))
		}

		rec := httptest.NewRecorder()
		policy.Middleware(deny)(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown error maps to 500", func(t *testing.T) {
		t.Parallel()
		deny := func(ctx context.Context) error { return errors.New("boom") }

		rec := httptest.NewRecorder()
		policy.Middleware(deny)(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("warnings become response headers", func(t *testing.T) {
		t.Parallel()
		warn := func(ctx context.Context) error {
			policy.Warn(ctx, policy.Warning{Resource: plan.ResourceOrders, Current: 9, Limit: 10})
			return nil
		}

		rec := httptest.NewRecorder()
		policy.Middleware(warn)(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "orders 9/10", rec.Header().Get(policy.UsageWarningHeader))
	})

	t.Run("custom error handler", func(t *testing.T) {
		t.Parallel()
		deny := func(ctx context.Context) error { return policy.ErrLimitExceeded }
		handler := func(w http.ResponseWriter, r *http.Request, err error) {
			w.WriteHeader(http.StatusPaymentRequired)
		}

		rec := httptest.NewRecorder()
		policy.MiddlewareWithErrorHandler(handler, deny)(okHandler).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	})
}
