package policy

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/agrofleet/agrokit/pkg/access"
	"github.com/agrofleet/agrokit/pkg/entitlement"
	"github.com/agrofleet/agrokit/pkg/identity"
	"github.com/agrofleet/agrokit/pkg/permission"
	"github.com/agrofleet/agrokit/pkg/plan"
	"github.com/agrofleet/agrokit/pkg/tenant"
	"github.com/agrofleet/agrokit/pkg/usage"
)

// Check is one policy decision run before a handler. A nil return allows;
// any error denies and stops the chain.
type Check func(ctx context.Context) error

// Chain runs checks in order, returning the first denial.
func Chain(checks ...Check) Check {
	return func(ctx context.Context) error {
		for _, check := range checks {
			if err := check(ctx); err != nil {
				return err
			}
		}
		return nil
	}
}

// EntitlementSource resolves the feature set of an organization,
// typically by combining the subscription lookup with entitlement.Resolve.
type EntitlementSource func(ctx context.Context, orgID uuid.UUID) (entitlement.FeatureSet, error)

// IDExtractor pulls the target resource id for an access check out of
// the request context (e.g. from router path values).
type IDExtractor func(ctx context.Context) (uuid.UUID, bool)

// Guard builds Checks bound to the engine's components.
type Guard struct {
	entitlements EntitlementSource
	governor     *usage.Governor
	decider      *access.Decider
	log          *slog.Logger
}

// GuardOption configures the Guard.
type GuardOption func(*Guard)

// WithLogger sets a custom logger for the guard.
func WithLogger(log *slog.Logger) GuardOption {
	return func(g *Guard) {
		if log != nil {
			g.log = log
		}
	}
}

// NewGuard wires the engine components into a check factory. Any
// component may be nil if the corresponding checks are never built.
func NewGuard(entitlements EntitlementSource, governor *usage.Governor, decider *access.Decider, opts ...GuardOption) *Guard {
	g := &Guard{
		entitlements: entitlements,
		governor:     governor,
		decider:      decider,
		log:          slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Permission requires the principal's grants to cover resource/action.
func (g *Guard) Permission(resource, action string) Check {
	return func(ctx context.Context) error {
		p, ok := identity.FromContext(ctx)
		if !ok {
			return ErrNoPrincipal
		}
		if !p.Can(resource, action) {
			g.log.DebugContext(ctx, "permission denied",
				slog.String("principal_id", p.ID.String()),
				slog.String("required", permission.Pattern{Resource: resource, Action: action}.String()))
			return ErrPermissionDenied
		}
		return nil
	}
}

// Feature requires the resolved tenant's plan to entitle the feature.
func (g *Guard) Feature(name string) Check {
	return g.entitled(name, func(fs entitlement.FeatureSet) bool {
		return fs.HasFeature(name)
	}, ErrFeatureNotAvailable)
}

// Module requires the resolved tenant's plan to entitle the module.
func (g *Guard) Module(name string) Check {
	return g.entitled(name, func(fs entitlement.FeatureSet) bool {
		return fs.HasModule(name)
	}, ErrModuleNotAvailable)
}

func (g *Guard) entitled(name string, has func(entitlement.FeatureSet) bool, denial error) Check {
	return func(ctx context.Context) error {
		p, ok := identity.FromContext(ctx)
		if !ok {
			return ErrNoPrincipal
		}
		if p.PlatformAdmin {
			return nil
		}

		tc, ok := tenant.FromContext(ctx)
		if !ok {
			return ErrNoTenant
		}

		fs, err := g.entitlements(ctx, tc.OrganizationID)
		if err != nil {
			return errors.Join(ErrEntitlementUnavailable, err)
		}

		if !has(fs) {
			g.log.DebugContext(ctx, "entitlement denied",
				slog.String("organization_id", tc.OrganizationID.String()),
				slog.String("required", name))
			return denial
		}
		return nil
	}
}

// WithinLimit requires that creating one more instance of the resource
// stays within the tenant's plan limit. Near-limit warnings are recorded
// on the context's warning collector; degraded (fail-open) allows pass.
func (g *Guard) WithinLimit(res plan.Resource) Check {
	return func(ctx context.Context) error {
		p, ok := identity.FromContext(ctx)
		if !ok {
			return ErrNoPrincipal
		}

		// Meter against the effective tenant, which differs from the
		// principal's own organization under impersonation.
		if tc, ok := tenant.FromContext(ctx); ok {
			p.OrganizationID = tc.OrganizationID
		}

		decision, err := g.governor.CanCreate(ctx, p, res)
		if err != nil {
			return err
		}
		if !decision.Allowed {
			return ErrLimitExceeded
		}
		if decision.Warning {
			Warn(ctx, Warning{Resource: res, Current: decision.Current, Limit: decision.Limit})
		}
		return nil
	}
}

// ResourceAccess requires the principal to be allowed to act on the
// specific resource instance identified by the extractor.
func (g *Guard) ResourceAccess(res plan.Resource, idFrom IDExtractor) Check {
	return func(ctx context.Context) error {
		p, ok := identity.FromContext(ctx)
		if !ok {
			return ErrNoPrincipal
		}

		id, ok := idFrom(ctx)
		if !ok {
			return ErrMissingResourceID
		}

		return g.decider.DecideResource(ctx, p, res, id)
	}
}
