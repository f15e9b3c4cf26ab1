package plan

import (
	"context"
	"maps"
	"sync"
)

// Source defines how the plan catalog is loaded into the engine.
type Source interface {
	Load(ctx context.Context) (map[Tier]Plan, error)
}

// inMemSource implements Source using an in-memory catalog map.
type inMemSource struct {
	mu      sync.RWMutex
	catalog map[Tier]Plan
}

// NewInMemSource returns an in-memory Source with a deep copy of the
// given catalog.
func NewInMemSource(catalog map[Tier]Plan) Source {
	return &inMemSource{catalog: cloneCatalog(catalog)}
}

// Load returns a copy of the catalog from memory.
// The returned map is not protected by the mutex after return.
func (s *inMemSource) Load(ctx context.Context) (map[Tier]Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCatalog(s.catalog), nil
}

func cloneCatalog(catalog map[Tier]Plan) map[Tier]Plan {
	out := make(map[Tier]Plan, len(catalog))
	for tier, p := range catalog {
		out[tier] = Plan{
			Tier:   p.Tier,
			Name:   p.Name,
			Limits: maps.Clone(p.Limits),
			Caps:   p.Caps,
		}
	}
	return out
}

// DefaultCatalog returns the built-in plan catalog. Deployments normally
// override it with a YAML source; the defaults keep tests and local
// development self-contained.
func DefaultCatalog() map[Tier]Plan {
	return map[Tier]Plan{
		TierFree: {
			Tier: TierFree,
			Name: "Free",
			Limits: map[Resource]int64{
				ResourceFarms:     1,
				ResourceOrders:    10,
				ResourceUsers:     3,
				ResourceWorkItems: 25,
			},
		},
		TierBasic: {
			Tier: TierBasic,
			Name: "Basic",
			Limits: map[Resource]int64{
				ResourceFarms:     3,
				ResourceOrders:    100,
				ResourceUsers:     10,
				ResourceWorkItems: 250,
			},
		},
		TierPro: {
			Tier: TierPro,
			Name: "Pro",
			Limits: map[Resource]int64{
				ResourceFarms:     10,
				ResourceOrders:    1000,
				ResourceUsers:     50,
				ResourceWorkItems: Unlimited,
			},
			Caps: Capabilities{
				AdvancedAnalytics: true,
				APIAccess:         true,
			},
		},
		TierEnterprise: {
			Tier: TierEnterprise,
			Name: "Enterprise",
			Limits: map[Resource]int64{
				ResourceFarms:     Unlimited,
				ResourceOrders:    Unlimited,
				ResourceUsers:     Unlimited,
				ResourceWorkItems: Unlimited,
			},
			Caps: Capabilities{
				AdvancedAnalytics: true,
				AIInsights:        true,
				APIAccess:         true,
				CustomRoles:       true,
				PrioritySupport:   true,
				WhiteLabel:        true,
			},
		},
	}
}
