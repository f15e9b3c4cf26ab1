package tenant

import (
	"errors"

	"github.com/agrofleet/agrokit/pkg/authz"
)

var (
	// ErrImpersonationForbidden is returned when a non-admin principal
	// supplies an organization override.
	ErrImpersonationForbidden = errors.Join(authz.ErrForbidden,
		errors.New("only platform administrators can impersonate organizations"))

	// ErrOrganizationNotFound is returned when the impersonation target
	// does not exist. Unauthorized on purpose: a NotFound here would let
	// callers probe which tenant ids exist.
	ErrOrganizationNotFound = errors.Join(authz.ErrUnauthorized,
		errors.New("organization not found"))

	// ErrOrganizationInactive is returned when the impersonation target
	// is deactivated.
	ErrOrganizationInactive = errors.Join(authz.ErrUnauthorized,
		errors.New("organization is inactive"))

	// ErrOrganizationSuspended is returned when the impersonation target
	// carries a suspension timestamp.
	ErrOrganizationSuspended = errors.Join(authz.ErrUnauthorized,
		errors.New("organization is suspended"))

	// ErrInvalidOrganizationID wraps malformed overrides and unexpected
	// lookup failures.
	ErrInvalidOrganizationID = errors.Join(authz.ErrUnauthorized,
		errors.New("invalid organization id"))

	// ErrNoContext is returned when no tenant context is found in the
	// request context.
	ErrNoContext = errors.New("no tenant context")
)
