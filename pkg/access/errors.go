package access

import (
	"errors"

	"github.com/agrofleet/agrokit/pkg/authz"
)

var (
	// ErrCrossTenant is returned when the resource belongs to another
	// organization.
	ErrCrossTenant = errors.Join(authz.ErrForbidden,
		errors.New("cross-tenant access"))

	// ErrNotAssigned is returned when no ownership, assignment, or role
	// level grants access.
	ErrNotAssigned = errors.Join(authz.ErrForbidden,
		errors.New("not assigned to this resource"))

	// ErrResourceNotFound is returned when the resource lookup finds no
	// subject for the id.
	ErrResourceNotFound = errors.Join(authz.ErrNotFound,
		errors.New("resource not found"))

	// ErrLookupFailed wraps unexpected resource lookup failures.
	ErrLookupFailed = errors.Join(authz.ErrInternal,
		errors.New("resource lookup failed"))
)
