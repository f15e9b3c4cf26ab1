package identity

import (
	"github.com/google/uuid"

	"github.com/agrofleet/agrokit/pkg/permission"
)

// RoleScope describes the reach of a role assignment.
type RoleScope string

const (
	ScopePlatform     RoleScope = "platform"
	ScopeOrganization RoleScope = "organization"
	ScopeFarm         RoleScope = "farm"
)

// Role is a named privilege rank. Higher levels override finer-grained
// ownership checks above a resource-specific threshold.
type Role struct {
	Name  string
	Level int
	Scope RoleScope

	// FarmID scopes a farm-level role to one farm. Zero for broader scopes.
	FarmID uuid.UUID
}

// Principal is the acting subject of a request.
type Principal struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	PlatformAdmin  bool
	Roles          []Role
	Grants         []permission.Pattern
}

// HasOrganization reports whether the principal belongs to an organization.
// Principals without one (e.g. unauthenticated service probes) bypass
// usage metering.
func (p Principal) HasOrganization() bool {
	return p.OrganizationID != uuid.Nil
}

// MaxRoleLevel returns the highest level among the principal's roles,
// or zero when no roles are held. Role scope is not consulted.
func (p Principal) MaxRoleLevel() int {
	level := 0
	for _, r := range p.Roles {
		if r.Level > level {
			level = r.Level
		}
	}
	return level
}

// Can reports whether the principal's grants satisfy a required
// resource/action permission. Platform admins implicitly hold "*:*".
func (p Principal) Can(resource, action string) bool {
	if p.PlatformAdmin {
		return true
	}
	return permission.Matches(permission.Required{Resource: resource, Action: action}, p.Grants)
}
