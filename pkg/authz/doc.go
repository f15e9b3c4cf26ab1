// Package authz defines the shared error taxonomy for the authorization
// and entitlement engine.
//
// Every denial or failure produced by the engine wraps exactly one of the
// four kind sentinels, so callers and transport layers can classify
// outcomes with errors.Is without inspecting message strings:
//
//   - ErrForbidden: the principal is known but the action is disallowed
//     (cross-tenant access, non-admin impersonation, insufficient role).
//   - ErrUnauthorized: the tenant reference itself is invalid, inactive,
//     or suspended.
//   - ErrNotFound: a referenced resource does not exist.
//   - ErrInternal: an unexpected collaborator failure.
//
// Packages build their own sentinel errors on top of these kinds with
// errors.Join, e.g.:
//
//	var ErrCrossTenant = errors.Join(authz.ErrForbidden, errors.New("cross-tenant access"))
//
// Forbidden and Unauthorized errors always surface to the caller
// unmodified. Internal errors raised during usage limit checks are
// converted to degraded-mode allows by the usage package (fail-open).
package authz
