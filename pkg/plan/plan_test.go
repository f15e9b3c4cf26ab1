package plan_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrofleet/agrokit/pkg/plan"
)

func TestParseTier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected plan.Tier
	}{
		{name: "free", input: "free", expected: plan.TierFree},
		{name: "basic", input: "basic", expected: plan.TierBasic},
		{name: "pro", input: "pro", expected: plan.TierPro},
		{name: "enterprise", input: "enterprise", expected: plan.TierEnterprise},
		{name: "unknown falls back to free", input: "platinum", expected: plan.TierFree},
		{name: "empty falls back to free", input: "", expected: plan.TierFree},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, plan.ParseTier(tt.input))
		})
	}
}

func TestTierOrdering(t *testing.T) {
	t.Parallel()

	assert.True(t, plan.TierEnterprise.AtLeast(plan.TierPro))
	assert.True(t, plan.TierPro.AtLeast(plan.TierPro))
	assert.False(t, plan.TierFree.AtLeast(plan.TierBasic))
}

func TestPlanLimit(t *testing.T) {
	t.Parallel()

	p := plan.Plan{Limits: map[plan.Resource]int64{plan.ResourceFarms: 5}}
	assert.Equal(t, int64(5), p.Limit(plan.ResourceFarms))
	assert.Equal(t, plan.Unlimited, p.Limit(plan.ResourceOrders))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("accepts unlimited sentinel", func(t *testing.T) {
		t.Parallel()
		catalog := map[plan.Tier]plan.Plan{
			plan.TierPro: {Limits: map[plan.Resource]int64{plan.ResourceFarms: plan.Unlimited}},
		}
		assert.NoError(t, plan.Validate(catalog))
	})

	t.Run("rejects other negative limits", func(t *testing.T) {
		t.Parallel()
		catalog := map[plan.Tier]plan.Plan{
			plan.TierPro: {Limits: map[plan.Resource]int64{plan.ResourceFarms: -2}},
		}
		assert.ErrorIs(t, plan.Validate(catalog), plan.ErrInvalidPlanConfiguration)
	})
}

func TestInMemSource(t *testing.T) {
	t.Parallel()

	src := plan.NewInMemSource(plan.DefaultCatalog())
	catalog, err := src.Load(context.Background())
	require.NoError(t, err)

	// Mutating the loaded copy must not affect subsequent loads.
	catalog[plan.TierFree].Limits[plan.ResourceFarms] = 999

	again, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), again[plan.TierFree].Limits[plan.ResourceFarms])
}

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	catalog := plan.DefaultCatalog()
	require.NoError(t, plan.Validate(catalog))

	assert.Len(t, catalog, 4)
	assert.Equal(t, plan.Unlimited, catalog[plan.TierEnterprise].Limit(plan.ResourceOrders))
	assert.True(t, catalog[plan.TierEnterprise].Caps.WhiteLabel)
	assert.False(t, catalog[plan.TierFree].Caps.AdvancedAnalytics)
}
