package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agrofleet/agrokit/pkg/plan"
)

// resourceTables whitelists the table behind each metered resource.
// Table names cannot be bound as query parameters, so anything outside
// this map is rejected instead of interpolated.
var resourceTables = map[plan.Resource]string{
	plan.ResourceFarms:        "farms",
	plan.ResourceOrders:       "orders",
	plan.ResourceUsers:        "organization_members",
	plan.ResourceWorkItems:    "work_items",
	plan.ResourceTransactions: "transactions",
}

// UsageCounter implements usage.Counter with COUNT queries over the
// resource tables.
type UsageCounter struct {
	db *pgxpool.Pool
}

// NewUsageCounter returns a counter backed by the given pool.
func NewUsageCounter(db *pgxpool.Pool) *UsageCounter {
	return &UsageCounter{db: db}
}

// Count returns the live number of rows the organization owns for the
// resource. Non-zero period bounds narrow the count to rows created
// within the current billing period.
func (c *UsageCounter) Count(ctx context.Context, orgID uuid.UUID, res plan.Resource, periodStart, periodEnd time.Time) (int64, error) {
	table, ok := resourceTables[res]
	if !ok {
		return 0, errors.Join(ErrUnsupportedResource, fmt.Errorf("resource %q", res))
	}

	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE organization_id = $1", table)
	args := []any{orgID}

	if !periodStart.IsZero() && !periodEnd.IsZero() {
		query += " AND created_at >= $2 AND created_at < $3"
		args = append(args, periodStart, periodEnd)
	}

	var count int64
	if err := c.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
