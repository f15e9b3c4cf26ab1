// Package access decides whether a principal may act on one specific
// resource instance.
//
// A single ordered algorithm serves every resource family, first match
// wins: platform admin allows, cross-tenant denies, creator allows,
// active assignee allows, and finally a role-level override allows when
// the principal's highest role level reaches the resource's threshold.
// Role scope is not consulted by the override, so a farm-scoped manager
// role clears the threshold even for another farm's resources.
//
// Bilateral resources (e.g. an order between a buyer and a supplier
// organization) replace the ownership check with counterpart membership
// and have no creator/assignee steps; only counterpart membership and
// the role-level override apply.
//
// Denials are typed Forbidden errors carrying the denial reason; a nil
// return means allow.
package access
