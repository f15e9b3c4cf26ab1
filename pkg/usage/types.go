package usage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agrofleet/agrokit/pkg/plan"
)

// Decision is the outcome of a limit check. Degraded distinguishes a true
// allow from a fail-open allow issued after a collaborator failure, so
// callers and tests can tell the two apart.
type Decision struct {
	Allowed   bool   `json:"allowed"`
	Limit     int64  `json:"limit"`
	Current   int64  `json:"current"`
	Unlimited bool   `json:"unlimited"`
	Warning   bool   `json:"warning,omitempty"`
	Degraded  bool   `json:"degraded,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// Counter is the counting collaborator. For period-bound resource types
// the governor passes the current billing period; otherwise both bounds
// are zero and the count is absolute. Implementations should be pure
// reads: the governor may call them concurrently for the same key.
type Counter interface {
	Count(ctx context.Context, orgID uuid.UUID, res plan.Resource, periodStart, periodEnd time.Time) (int64, error)
}

// CounterFunc adapts a function to the Counter interface.
type CounterFunc func(ctx context.Context, orgID uuid.UUID, res plan.Resource, periodStart, periodEnd time.Time) (int64, error)

func (f CounterFunc) Count(ctx context.Context, orgID uuid.UUID, res plan.Resource, periodStart, periodEnd time.Time) (int64, error) {
	return f(ctx, orgID, res, periodStart, periodEnd)
}
