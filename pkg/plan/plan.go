package plan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Resource represents a countable tenant resource type.
type Resource string

// Predefined resource types.
const (
	ResourceFarms        Resource = "farms"
	ResourceOrders       Resource = "orders"
	ResourceUsers        Resource = "users"
	ResourceWorkItems    Resource = "work_items"
	ResourceTransactions Resource = "transactions"
)

// Unlimited represents a resource with no limit (-1).
const Unlimited int64 = -1

// Capabilities are explicit plan add-ons that unlock features beyond the
// tier baseline. They are billed flags, not tier-derived.
type Capabilities struct {
	AdvancedAnalytics bool `yaml:"advanced_analytics"`
	AIInsights        bool `yaml:"ai_insights"`
	APIAccess         bool `yaml:"api_access"`
	CustomRoles       bool `yaml:"custom_roles"`
	PrioritySupport   bool `yaml:"priority_support"`
	WhiteLabel        bool `yaml:"white_label"`
}

// Plan describes one catalog entry: the limits and default capabilities
// of a subscription tier.
type Plan struct {
	Tier   Tier
	Name   string
	Limits map[Resource]int64
	Caps   Capabilities
}

// Limit returns the limit for a resource, or Unlimited when the plan
// does not meter it.
func (p Plan) Limit(res Resource) int64 {
	limit, ok := p.Limits[res]
	if !ok {
		return Unlimited
	}
	return limit
}

// Subscription is an organization's current billing state, served by the
// SubscriptionLookup collaborator.
type Subscription struct {
	Tier               Tier
	Caps               Capabilities
	CurrentPeriodStart time.Time
	CurrentPeriodEnd   time.Time
}

// SubscriptionLookup resolves the subscription state for an organization.
// Implementations live at the persistence or billing-provider boundary.
type SubscriptionLookup interface {
	Subscription(ctx context.Context, orgID uuid.UUID) (Subscription, error)
}

// SubscriptionLookupFunc adapts a function to the SubscriptionLookup interface.
type SubscriptionLookupFunc func(ctx context.Context, orgID uuid.UUID) (Subscription, error)

func (f SubscriptionLookupFunc) Subscription(ctx context.Context, orgID uuid.UUID) (Subscription, error) {
	return f(ctx, orgID)
}

// Validate checks catalog entries for invalid limits. The only negative
// limit allowed is the Unlimited sentinel.
func Validate(catalog map[Tier]Plan) error {
	for tier, p := range catalog {
		for res, limit := range p.Limits {
			if limit < Unlimited {
				return errors.Join(ErrInvalidPlanConfiguration,
					fmt.Errorf("tier %s resource %s has limit %d", tier, res, limit))
			}
		}
	}
	return nil
}
