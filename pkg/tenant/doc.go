// Package tenant resolves the effective organization for a request,
// including validated platform-admin impersonation.
//
// Every request resolves to exactly one Context: by default the acting
// principal's own organization, or, when a platform administrator
// supplies an organization override, the impersonated organization after
// validation against the organization lookup collaborator. Non-admin
// principals supplying an override are rejected with Forbidden.
//
// Lookup failures during impersonation deliberately surface as
// Unauthorized rather than NotFound so that probing cannot reveal which
// tenant ids exist. Successful impersonation is logged at warn level and
// the impersonated organization's id and name are exposed as response
// metadata for audit trails.
package tenant
