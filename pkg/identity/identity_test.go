package identity_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/agrofleet/agrokit/pkg/identity"
	"github.com/agrofleet/agrokit/pkg/permission"
)

func TestPrincipalMaxRoleLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		roles    []identity.Role
		expected int
	}{
		{
			name:     "no roles",
			roles:    nil,
			expected: 0,
		},
		{
			name: "single role",
			roles: []identity.Role{
				{Name: "worker", Level: 10, Scope: identity.ScopeFarm},
			},
			expected: 10,
		},
		{
			name: "highest wins regardless of scope",
			roles: []identity.Role{
				{Name: "worker", Level: 10, Scope: identity.ScopeFarm},
				{Name: "manager", Level: 50, Scope: identity.ScopeFarm},
				{Name: "viewer", Level: 5, Scope: identity.ScopeOrganization},
			},
			expected: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := identity.Principal{Roles: tt.roles}
			assert.Equal(t, tt.expected, p.MaxRoleLevel())
		})
	}
}

func TestPrincipalCan(t *testing.T) {
	t.Parallel()

	t.Run("platform admin can do anything", func(t *testing.T) {
		t.Parallel()
		p := identity.Principal{PlatformAdmin: true}
		assert.True(t, p.Can("orders", "delete"))
	})

	t.Run("grant matching", func(t *testing.T) {
		t.Parallel()
		p := identity.Principal{Grants: permission.ParseAll([]string{"orders:read", "farms:*"})}
		assert.True(t, p.Can("orders", "read"))
		assert.True(t, p.Can("farms", "delete"))
		assert.False(t, p.Can("orders", "delete"))
	})
}

func TestPrincipalHasOrganization(t *testing.T) {
	t.Parallel()

	assert.False(t, identity.Principal{}.HasOrganization())
	assert.True(t, identity.Principal{OrganizationID: uuid.New()}.HasOrganization())
}

func TestPrincipalContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		p := identity.Principal{ID: uuid.New(), OrganizationID: uuid.New()}
		ctx := identity.WithPrincipal(context.Background(), p)
		got, ok := identity.FromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, p, got)
	})

	t.Run("missing principal", func(t *testing.T) {
		t.Parallel()
		_, ok := identity.FromContext(context.Background())
		assert.False(t, ok)
	})
}
