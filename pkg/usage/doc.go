// Package usage meters countable tenant resources against subscription
// plan limits with cached, eventually-consistent reads.
//
// The Governor answers one question per creation request: may this
// organization create one more instance of this resource type? Counts are
// read through a TTL cache (default 60s) keyed by organization and
// resource; on a miss or stale entry the counting collaborator is
// consulted, scoped to the current billing period for period-bound
// resource types. Write paths that create a counted resource must call
// Invalidate so the next read is fresh. A background sweep removes stale
// entries every five minutes; it is idempotent cleanup, not a correctness
// mechanism, since reads already check staleness.
//
// The cache is shared mutable state across concurrent requests and is
// deliberately not coordinated across process instances: two requests
// racing on the same key during a miss may both call the counting
// collaborator, which is acceptable because the call is a pure read. This
// trades exact atomic reservation for availability.
//
// Error policy is fail-open: any non-denial error raised during a limit
// check is logged and converted into an allowed Decision marked Degraded,
// so a failing counting collaborator never blocks core business
// operations. Forbidden errors are re-raised unchanged. Platform-admin
// and organization-less principals bypass metering entirely.
//
// The clock is injectable (benbjohnson/clock) so staleness and sweep
// behavior are unit-testable without real timers.
package usage
