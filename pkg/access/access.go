package access

import (
	"context"

	"github.com/google/uuid"

	"github.com/agrofleet/agrokit/pkg/identity"
	"github.com/agrofleet/agrokit/pkg/plan"
)

// Assignee is one user assigned to a resource. Inactive assignments do
// not grant access.
type Assignee struct {
	UserID uuid.UUID
	Active bool
}

// Subject carries the access-relevant facts of one resource instance
// with a flat assignee list (e.g. a scheduled work item).
type Subject struct {
	OwnerOrganizationID uuid.UUID
	CreatorID           uuid.UUID
	Assignees           []Assignee

	// RequiredOverrideLevel is the role level at which a principal may act
	// on the resource without being its creator or an assignee.
	RequiredOverrideLevel int
}

// BilateralSubject describes a resource defined by two counterpart
// organizations (e.g. an order between a buyer and a supplier). There is
// no individual assignee concept; membership in either counterpart
// organization replaces ownership.
type BilateralSubject struct {
	BuyerOrganizationID    uuid.UUID
	SupplierOrganizationID uuid.UUID
	RequiredOverrideLevel  int
}

// Lookup loads the access subject of a resource instance. Implementations
// return an error wrapping authz.ErrNotFound when the resource is absent.
type Lookup interface {
	Subject(ctx context.Context, res plan.Resource, id uuid.UUID) (Subject, error)
}

// Decide evaluates the access rules in strict order, first match wins.
// Returns nil to allow, or a typed Forbidden error naming the denial.
func Decide(p identity.Principal, s Subject) error {
	if p.PlatformAdmin {
		return nil
	}
	if s.OwnerOrganizationID != p.OrganizationID {
		return ErrCrossTenant
	}
	if p.ID == s.CreatorID {
		return nil
	}
	for _, a := range s.Assignees {
		if a.UserID == p.ID && a.Active {
			return nil
		}
	}
	// Role scope is intentionally not consulted: any role at or above the
	// threshold clears it, regardless of which farm it is scoped to.
	if p.MaxRoleLevel() >= s.RequiredOverrideLevel {
		return nil
	}
	return ErrNotAssigned
}

// DecideBilateral evaluates access to a counterpart-organization
// resource: platform admin, counterpart membership, then the role-level
// override.
func DecideBilateral(p identity.Principal, s BilateralSubject) error {
	if p.PlatformAdmin {
		return nil
	}
	if p.OrganizationID != s.BuyerOrganizationID && p.OrganizationID != s.SupplierOrganizationID {
		return ErrCrossTenant
	}
	if p.MaxRoleLevel() >= s.RequiredOverrideLevel {
		return nil
	}
	return ErrNotAssigned
}
