package usage

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/agrofleet/agrokit/pkg/authz"
	"github.com/agrofleet/agrokit/pkg/identity"
	"github.com/agrofleet/agrokit/pkg/plan"
)

// DefaultWarnThreshold is the usage ratio at which a non-fatal warning
// is attached to the decision.
const DefaultWarnThreshold = 0.8

// Governor meters resource counts against plan limits.
type Governor struct {
	catalog       map[plan.Tier]plan.Plan
	subs          plan.SubscriptionLookup
	counter       Counter
	cache         Cache
	ownCache      bool
	clk           clock.Clock
	ttl           time.Duration
	sweepInterval time.Duration
	warnThreshold float64
	periodBound   map[plan.Resource]bool
	log           *slog.Logger
}

// Option configures the Governor.
type Option func(*Governor)

// WithCache sets a custom cache implementation (e.g. the Redis backend).
// The caller owns the cache's lifecycle; Close will not touch it.
func WithCache(cache Cache) Option {
	return func(g *Governor) {
		g.cache = cache
		g.ownCache = false
	}
}

// WithClock sets the clock used for staleness checks and the sweep.
func WithClock(clk clock.Clock) Option {
	return func(g *Governor) {
		g.clk = clk
	}
}

// WithTTL sets the cache entry time-to-live.
func WithTTL(ttl time.Duration) Option {
	return func(g *Governor) {
		if ttl > 0 {
			g.ttl = ttl
		}
	}
}

// WithWarnThreshold sets the usage ratio that triggers a warning.
func WithWarnThreshold(threshold float64) Option {
	return func(g *Governor) {
		if threshold > 0 {
			g.warnThreshold = threshold
		}
	}
}

// WithPeriodBound marks resource types counted within the current
// billing period rather than absolutely.
func WithPeriodBound(resources ...plan.Resource) Option {
	return func(g *Governor) {
		g.periodBound = make(map[plan.Resource]bool, len(resources))
		for _, res := range resources {
			g.periodBound[res] = true
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(log *slog.Logger) Option {
	return func(g *Governor) {
		if log != nil {
			g.log = log
		}
	}
}

// NewGovernor loads the plan catalog from src and returns a ready
// Governor. Without WithCache it owns a per-process in-memory cache
// whose sweep runs every five minutes until Close.
func NewGovernor(ctx context.Context, src plan.Source, subs plan.SubscriptionLookup, counter Counter, opts ...Option) (*Governor, error) {
	catalog, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := plan.Validate(catalog); err != nil {
		return nil, err
	}

	g := &Governor{
		catalog:       catalog,
		subs:          subs,
		counter:       counter,
		clk:           clock.New(),
		ttl:           DefaultTTL,
		sweepInterval: DefaultSweepInterval,
		warnThreshold: DefaultWarnThreshold,
		periodBound: map[plan.Resource]bool{
			plan.ResourceOrders:       true,
			plan.ResourceTransactions: true,
		},
		log: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.cache == nil {
		g.cache = NewMemoryCache(g.clk, g.ttl, g.sweepInterval)
		g.ownCache = true
	}

	return g, nil
}

// CanCreate decides whether the principal's organization may create one
// more instance of the resource. Fail-open: collaborator failures are
// logged and converted into a degraded allow; only Forbidden errors are
// returned to the caller. Platform admins and principals without an
// organization bypass metering without any collaborator call.
func (g *Governor) CanCreate(ctx context.Context, p identity.Principal, res plan.Resource) (Decision, error) {
	if p.PlatformAdmin || !p.HasOrganization() {
		return Decision{Allowed: true, Unlimited: true, Limit: plan.Unlimited, Reason: "metering bypassed"}, nil
	}

	current, err := g.CurrentUsage(ctx, p.OrganizationID, res)
	if err != nil {
		return g.failOpen(ctx, res, err)
	}

	decision, err := g.CheckLimit(ctx, p.OrganizationID, res, current)
	if err != nil {
		return g.failOpen(ctx, res, err)
	}

	if !decision.Allowed {
		g.log.DebugContext(ctx, "resource creation denied by usage limit",
			slog.String("organization_id", p.OrganizationID.String()),
			slog.String("resource", string(res)),
			slog.Int64("current", decision.Current),
			slog.Int64("limit", decision.Limit))
	} else if decision.Warning {
		g.log.WarnContext(ctx, "organization approaching usage limit",
			slog.String("organization_id", p.OrganizationID.String()),
			slog.String("resource", string(res)),
			slog.Int64("current", decision.Current),
			slog.Int64("limit", decision.Limit))
	}

	return decision, nil
}

// CheckLimit compares a known current count against the organization's
// plan limit. Unlike CanCreate it propagates collaborator errors.
func (g *Governor) CheckLimit(ctx context.Context, orgID uuid.UUID, res plan.Resource, current int64) (Decision, error) {
	sub, err := g.subs.Subscription(ctx, orgID)
	if err != nil {
		return Decision{}, errors.Join(ErrFailedToLoadSubscription, err)
	}

	p, ok := g.catalog[sub.Tier]
	if !ok {
		return Decision{}, ErrPlanNotFound
	}

	return g.decide(p.Limit(res), current), nil
}

func (g *Governor) decide(limit, current int64) Decision {
	if limit == plan.Unlimited {
		return Decision{Allowed: true, Unlimited: true, Limit: plan.Unlimited, Current: current}
	}

	decision := Decision{
		Allowed: current < limit,
		Limit:   limit,
		Current: current,
	}
	if !decision.Allowed {
		decision.Reason = "resource limit reached"
	}
	if limit > 0 && float64(current)/float64(limit) >= g.warnThreshold {
		decision.Warning = true
	}
	return decision
}

// CurrentUsage returns the cached count for the organization and
// resource, consulting the counting collaborator on a miss or stale
// entry. Period-bound resources are counted within the current billing
// period.
func (g *Governor) CurrentUsage(ctx context.Context, orgID uuid.UUID, res plan.Resource) (int64, error) {
	key := cacheKey(orgID, res)

	if entry, ok := g.cache.Get(ctx, key); ok && g.clk.Now().Sub(entry.CapturedAt) < g.ttl {
		return entry.Count, nil
	}

	var periodStart, periodEnd time.Time
	if g.periodBound[res] {
		sub, err := g.subs.Subscription(ctx, orgID)
		if err != nil {
			return 0, errors.Join(ErrFailedToLoadSubscription, err)
		}
		periodStart, periodEnd = sub.CurrentPeriodStart, sub.CurrentPeriodEnd
	}

	count, err := g.counter.Count(ctx, orgID, res, periodStart, periodEnd)
	if err != nil {
		return 0, errors.Join(ErrFailedToCountUsage, err)
	}

	g.cache.Set(ctx, key, Entry{Count: count, CapturedAt: g.clk.Now()})
	g.log.DebugContext(ctx, "usage count refreshed",
		slog.String("organization_id", orgID.String()),
		slog.String("resource", string(res)),
		slog.Int64("count", count))

	return count, nil
}

// Invalidate drops the cached count so the next read is fresh. Must be
// called by any write path that creates a counted resource.
func (g *Governor) Invalidate(ctx context.Context, orgID uuid.UUID, res plan.Resource) {
	g.cache.Delete(ctx, cacheKey(orgID, res))
}

// Close releases the governor-owned cache, stopping its sweep goroutine.
// Caches supplied via WithCache are left untouched.
func (g *Governor) Close() error {
	if g.ownCache {
		return g.cache.Close()
	}
	return nil
}

// failOpen converts a collaborator failure into a degraded allow, unless
// the failure is itself an explicit Forbidden, which re-raises unchanged.
func (g *Governor) failOpen(ctx context.Context, res plan.Resource, err error) (Decision, error) {
	if errors.Is(err, authz.ErrForbidden) {
		return Decision{Allowed: false, Reason: err.Error()}, err
	}

	g.log.ErrorContext(ctx, "usage limit check failed, allowing request",
		slog.String("resource", string(res)),
		slog.Any("error", err))

	return Decision{Allowed: true, Degraded: true, Reason: "limit check unavailable"}, nil
}

func cacheKey(orgID uuid.UUID, res plan.Resource) string {
	return orgID.String() + ":" + string(res)
}
