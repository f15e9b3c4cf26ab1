package policy

import (
	"errors"

	"github.com/agrofleet/agrokit/pkg/authz"
)

var (
	// ErrNoPrincipal is returned when a check runs without an acting
	// principal in the context.
	ErrNoPrincipal = errors.Join(authz.ErrUnauthorized,
		errors.New("no acting principal"))

	// ErrNoTenant is returned when a tenant-scoped check runs without a
	// resolved tenant context.
	ErrNoTenant = errors.Join(authz.ErrUnauthorized,
		errors.New("no tenant context"))

	// ErrPermissionDenied is returned when the principal's grants do not
	// cover the required permission.
	ErrPermissionDenied = errors.Join(authz.ErrForbidden,
		errors.New("permission denied"))

	// ErrFeatureNotAvailable is returned when the organization's plan
	// does not entitle it to the required feature.
	ErrFeatureNotAvailable = errors.Join(authz.ErrForbidden,
		errors.New("feature not available on current plan"))

	// ErrModuleNotAvailable is returned when the organization's plan
	// does not entitle it to the required module.
	ErrModuleNotAvailable = errors.Join(authz.ErrForbidden,
		errors.New("module not available on current plan"))

	// ErrLimitExceeded is returned when creating the resource would
	// exceed the plan's usage limit.
	ErrLimitExceeded = errors.Join(authz.ErrForbidden,
		errors.New("resource limit reached"))

	// ErrMissingResourceID is returned when a resource access check
	// cannot find the target resource id in the context.
	ErrMissingResourceID = errors.Join(authz.ErrInternal,
		errors.New("missing resource id"))

	// ErrEntitlementUnavailable wraps entitlement source failures.
	ErrEntitlementUnavailable = errors.Join(authz.ErrInternal,
		errors.New("entitlement resolution failed"))
)
