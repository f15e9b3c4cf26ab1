// Package plan models subscription plans for the entitlement engine:
// ordered tiers, per-resource usage limits with the Unlimited (-1)
// sentinel, and boolean capability flags that unlock extra features
// beyond the tier baseline.
//
// The plan catalog is static configuration loaded once at process start
// and immutable afterwards. Two sources are provided: an in-memory source
// for tests and embedded defaults, and a YAML file source for deployment
// configuration. Per-organization subscription state (which tier an
// organization is on, and its current billing period) comes from the
// SubscriptionLookup collaborator at the engine boundary.
package plan
