package entitlement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agrofleet/agrokit/pkg/entitlement"
	"github.com/agrofleet/agrokit/pkg/plan"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("free farm gets baseline only", func(t *testing.T) {
		t.Parallel()
		fs := entitlement.Resolve(entitlement.OrgTypeFarm, plan.TierFree, plan.Capabilities{})

		assert.Equal(t, []string{entitlement.FeatureBasicReporting}, fs.Features)
		assert.ElementsMatch(t, []string{entitlement.ModuleFarms, entitlement.ModuleBilling}, fs.Modules)
		assert.False(t, fs.HasModule(entitlement.ModuleOrders))
	})

	t.Run("modules are intersected with org type candidates", func(t *testing.T) {
		t.Parallel()
		// Buyers have no farms module even though every tier allows it.
		fs := entitlement.Resolve(entitlement.OrgTypeBuyer, plan.TierEnterprise, plan.Capabilities{})

		assert.False(t, fs.HasModule(entitlement.ModuleFarms))
		assert.True(t, fs.HasModule(entitlement.ModuleOrders))
		assert.True(t, fs.HasModule(entitlement.ModuleMarketplace))
	})

	t.Run("capability flags add features and modules", func(t *testing.T) {
		t.Parallel()
		fs := entitlement.Resolve(entitlement.OrgTypeFarm, plan.TierBasic, plan.Capabilities{
			AdvancedAnalytics: true,
			APIAccess:         true,
		})

		assert.True(t, fs.HasFeature(entitlement.FeatureAdvancedAnalytics))
		assert.True(t, fs.HasFeature(entitlement.FeatureAPIAccess))
		assert.True(t, fs.HasModule(entitlement.ModuleAnalytics))
		assert.True(t, fs.HasModule(entitlement.ModuleIntelligence))
		assert.True(t, fs.HasModule(entitlement.ModuleAPI))
		assert.False(t, fs.HasFeature(entitlement.FeatureAIInsights))
	})

	t.Run("enterprise unlocks custom roles and priority support", func(t *testing.T) {
		t.Parallel()
		fs := entitlement.Resolve(entitlement.OrgTypeCooperative, plan.TierEnterprise, plan.Capabilities{})

		assert.True(t, fs.HasFeature(entitlement.FeatureCustomRoles))
		assert.True(t, fs.HasFeature(entitlement.FeaturePrioritySupport))
		assert.False(t, fs.HasFeature(entitlement.FeatureWhiteLabel))
	})

	t.Run("out of range tier resolves as free", func(t *testing.T) {
		t.Parallel()
		got := entitlement.Resolve(entitlement.OrgTypeFarm, plan.Tier(99), plan.Capabilities{})
		free := entitlement.Resolve(entitlement.OrgTypeFarm, plan.TierFree, plan.Capabilities{})
		assert.Equal(t, free, got)
	})

	t.Run("unknown org type yields well-formed empty set", func(t *testing.T) {
		t.Parallel()
		fs := entitlement.Resolve(entitlement.OrgType("logistics"), plan.TierPro, plan.Capabilities{})

		assert.NotNil(t, fs.Features)
		assert.NotNil(t, fs.Modules)
		assert.Empty(t, fs.Modules)
	})

	t.Run("unknown org type still receives capability additions", func(t *testing.T) {
		t.Parallel()
		fs := entitlement.Resolve(entitlement.OrgType("logistics"), plan.TierPro, plan.Capabilities{APIAccess: true})

		assert.True(t, fs.HasFeature(entitlement.FeatureAPIAccess))
		assert.Equal(t, []string{entitlement.ModuleAPI}, fs.Modules)
	})

	t.Run("repeated calls are set-equal", func(t *testing.T) {
		t.Parallel()
		caps := plan.Capabilities{AIInsights: true, WhiteLabel: true}
		first := entitlement.Resolve(entitlement.OrgTypeSupplier, plan.TierPro, caps)
		for range 10 {
			assert.Equal(t, first, entitlement.Resolve(entitlement.OrgTypeSupplier, plan.TierPro, caps))
		}
	})
}

func TestResolveSubscription(t *testing.T) {
	t.Parallel()

	sub := plan.Subscription{Tier: plan.TierPro, Caps: plan.Capabilities{AdvancedAnalytics: true}}
	fs := entitlement.ResolveSubscription(entitlement.OrgTypeFarm, sub)

	assert.Equal(t, entitlement.Resolve(entitlement.OrgTypeFarm, plan.TierPro, sub.Caps), fs)
	assert.True(t, fs.HasFeature(entitlement.FeatureAdvancedAnalytics))
}
