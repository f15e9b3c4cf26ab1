package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agrofleet/agrokit/pkg/authz"
	"github.com/agrofleet/agrokit/pkg/plan"
)

// SubscriptionLookup implements plan.SubscriptionLookup against the
// subscriptions table. Capability flags live in boolean columns so
// billing can toggle them independently of the tier.
type SubscriptionLookup struct {
	db *pgxpool.Pool
}

// NewSubscriptionLookup returns a lookup backed by the given pool.
func NewSubscriptionLookup(db *pgxpool.Pool) *SubscriptionLookup {
	return &SubscriptionLookup{db: db}
}

const subscriptionQuery = `
SELECT tier, current_period_start, current_period_end,
       advanced_analytics, ai_insights, api_access,
       custom_roles, priority_support, white_label
FROM subscriptions
WHERE organization_id = $1`

func (l *SubscriptionLookup) Subscription(ctx context.Context, orgID uuid.UUID) (plan.Subscription, error) {
	var (
		tierName string
		sub      plan.Subscription
	)
	err := l.db.QueryRow(ctx, subscriptionQuery, orgID).Scan(
		&tierName,
		&sub.CurrentPeriodStart,
		&sub.CurrentPeriodEnd,
		&sub.Caps.AdvancedAnalytics,
		&sub.Caps.AIInsights,
		&sub.Caps.APIAccess,
		&sub.Caps.CustomRoles,
		&sub.Caps.PrioritySupport,
		&sub.Caps.WhiteLabel,
	)
	if err != nil {
		if IsNotFoundError(err) {
			return plan.Subscription{}, errors.Join(authz.ErrNotFound, errors.New("subscription not found"))
		}
		return plan.Subscription{}, err
	}

	// Unknown tier names degrade to the free tier rather than failing.
	sub.Tier = plan.ParseTier(tierName)
	return sub, nil
}
