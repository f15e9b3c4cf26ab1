// Package postgres backs the engine's data-source interfaces with
// PostgreSQL via the pgx/v5 driver.
//
// It provides a pooled connection helper with retry, a health check, and
// adapters implementing tenant.Lookup, plan.SubscriptionLookup,
// usage.Counter, and access.Lookup against the application schema.
// Row-not-found conditions are normalized to authz.ErrNotFound so
// callers classify errors uniformly regardless of the backing store.
package postgres
