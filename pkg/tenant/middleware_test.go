package tenant_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrofleet/agrokit/pkg/authz"
	"github.com/agrofleet/agrokit/pkg/identity"
	"github.com/agrofleet/agrokit/pkg/tenant"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	targetOrg := uuid.New()
	lookup := staticLookup(map[uuid.UUID]*tenant.Organization{
		targetOrg: {ID: targetOrg, Name: "Greenfield Co-op", Active: true},
	})
	resolver := tenant.NewResolver(lookup)

	newRequest := func(p *identity.Principal, override string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/orders", nil)
		if p != nil {
			r = r.WithContext(identity.WithPrincipal(r.Context(), *p))
		}
		if override != "" {
			r.Header.Set(tenant.DefaultOverrideHeader, override)
		}
		return r
	}

	t.Run("attaches resolved context", func(t *testing.T) {
		t.Parallel()
		member := identity.Principal{ID: uuid.New(), OrganizationID: uuid.New()}

		var seen tenant.Context
		handler := tenant.Middleware(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = tenant.MustFromContext(r.Context())
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest(&member, ""))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, member.OrganizationID, seen.OrganizationID)
		assert.False(t, seen.Impersonation)
		assert.Empty(t, rec.Header().Get(tenant.ImpersonatedOrgIDHeader))
	})

	t.Run("impersonation sets audit headers", func(t *testing.T) {
		t.Parallel()
		admin := identity.Principal{ID: uuid.New(), OrganizationID: uuid.New(), PlatformAdmin: true}

		handler := tenant.Middleware(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tc := tenant.MustFromContext(r.Context())
			assert.True(t, tc.Impersonation)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest(&admin, targetOrg.String()))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, targetOrg.String(), rec.Header().Get(tenant.ImpersonatedOrgIDHeader))
		assert.Equal(t, "Greenfield Co-op", rec.Header().Get(tenant.ImpersonatedOrgNameHeader))
	})

	t.Run("non-admin override yields 403", func(t *testing.T) {
		t.Parallel()
		member := identity.Principal{ID: uuid.New(), OrganizationID: uuid.New()}

		handler := tenant.Middleware(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not run")
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest(&member, targetOrg.String()))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unauthorized target yields 401", func(t *testing.T) {
		t.Parallel()
		admin := identity.Principal{ID: uuid.New(), OrganizationID: uuid.New(), PlatformAdmin: true}

		handler := tenant.Middleware(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not run")
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest(&admin, uuid.New().String()))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("no principal passes through unresolved", func(t *testing.T) {
		t.Parallel()
		handler := tenant.Middleware(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := tenant.FromContext(r.Context())
			assert.False(t, ok)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest(nil, ""))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("custom error handler", func(t *testing.T) {
		t.Parallel()
		member := identity.Principal{ID: uuid.New(), OrganizationID: uuid.New()}

		var handled error
		handler := tenant.Middleware(resolver,
			tenant.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
				handled = err
				w.WriteHeader(http.StatusTeapot)
			}),
		)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest(&member, targetOrg.String()))

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.ErrorIs(t, handled, authz.ErrForbidden)
	})
}

func TestRequireContext(t *testing.T) {
	t.Parallel()

	t.Run("blocks without tenant context", func(t *testing.T) {
		t.Parallel()
		handler := tenant.RequireContext(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not run")
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("passes with tenant context", func(t *testing.T) {
		t.Parallel()
		called := false
		handler := tenant.RequireContext(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := tenant.WithContext(context.Background(), tenant.Context{OrganizationID: uuid.New()})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r.WithContext(ctx))

		require.True(t, called)
	})
}
