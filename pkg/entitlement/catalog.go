package entitlement

import "github.com/agrofleet/agrokit/pkg/plan"

// OrgType identifies the business model of an organization.
type OrgType string

const (
	OrgTypeFarm        OrgType = "farm"
	OrgTypeBuyer       OrgType = "buyer"
	OrgTypeSupplier    OrgType = "supplier"
	OrgTypeCooperative OrgType = "cooperative"
)

// Feature names.
const (
	FeatureBasicReporting    = "basic_reporting"
	FeatureOrderManagement   = "order_management"
	FeatureWorkScheduling    = "work_scheduling"
	FeatureAdvancedAnalytics = "advanced_analytics"
	FeatureAIInsights        = "ai_insights"
	FeatureAPIAccess         = "api_access"
	FeatureCustomRoles       = "custom_roles"
	FeaturePrioritySupport   = "priority_support"
	FeatureWhiteLabel        = "white_label"
)

// Module names.
const (
	ModuleFarms        = "farms"
	ModuleOrders       = "orders"
	ModuleBilling      = "billing"
	ModuleMarketplace  = "marketplace"
	ModuleAnalytics    = "analytics"
	ModuleIntelligence = "intelligence"
	ModuleAPI          = "api"
)

// orgTypeModules lists every module a business model could ever use.
// Tier and capability gating narrows this further; it never widens it
// except through explicit capability additions.
var orgTypeModules = map[OrgType][]string{
	OrgTypeFarm: {
		ModuleFarms, ModuleOrders, ModuleBilling,
		ModuleAnalytics, ModuleIntelligence, ModuleAPI,
	},
	OrgTypeBuyer: {
		ModuleOrders, ModuleBilling, ModuleMarketplace,
		ModuleAnalytics, ModuleAPI,
	},
	OrgTypeSupplier: {
		ModuleOrders, ModuleBilling, ModuleMarketplace,
		ModuleAnalytics, ModuleIntelligence, ModuleAPI,
	},
	OrgTypeCooperative: {
		ModuleFarms, ModuleOrders, ModuleBilling, ModuleMarketplace,
		ModuleAnalytics, ModuleIntelligence, ModuleAPI,
	},
}

// tierFeatures is the feature baseline per tier. Entries are cumulative:
// each tier repeats everything below it so the table reads as the full
// allowance of that tier.
var tierFeatures = map[plan.Tier][]string{
	plan.TierFree: {
		FeatureBasicReporting,
	},
	plan.TierBasic: {
		FeatureBasicReporting, FeatureOrderManagement, FeatureWorkScheduling,
	},
	plan.TierPro: {
		FeatureBasicReporting, FeatureOrderManagement, FeatureWorkScheduling,
	},
	plan.TierEnterprise: {
		FeatureBasicReporting, FeatureOrderManagement, FeatureWorkScheduling,
		FeatureCustomRoles, FeaturePrioritySupport,
	},
}

// tierModules is the module allowance per tier, cumulative like tierFeatures.
var tierModules = map[plan.Tier][]string{
	plan.TierFree: {
		ModuleFarms, ModuleBilling,
	},
	plan.TierBasic: {
		ModuleFarms, ModuleOrders, ModuleBilling,
	},
	plan.TierPro: {
		ModuleFarms, ModuleOrders, ModuleBilling, ModuleMarketplace,
	},
	plan.TierEnterprise: {
		ModuleFarms, ModuleOrders, ModuleBilling, ModuleMarketplace,
		ModuleAnalytics, ModuleIntelligence, ModuleAPI,
	},
}

// capAddition is what one capability flag unlocks on top of the tier baseline.
type capAddition struct {
	features []string
	modules  []string
}

// capAdditions maps each capability flag to its incremental grants.
var capAdditions = []struct {
	enabled func(plan.Capabilities) bool
	add     capAddition
}{
	{
		enabled: func(c plan.Capabilities) bool { return c.AdvancedAnalytics },
		add: capAddition{
			features: []string{FeatureAdvancedAnalytics},
			modules:  []string{ModuleAnalytics, ModuleIntelligence},
		},
	},
	{
		enabled: func(c plan.Capabilities) bool { return c.AIInsights },
		add: capAddition{
			features: []string{FeatureAIInsights},
			modules:  []string{ModuleIntelligence},
		},
	},
	{
		enabled: func(c plan.Capabilities) bool { return c.APIAccess },
		add: capAddition{
			features: []string{FeatureAPIAccess},
			modules:  []string{ModuleAPI},
		},
	},
	{
		enabled: func(c plan.Capabilities) bool { return c.CustomRoles },
		add:     capAddition{features: []string{FeatureCustomRoles}},
	},
	{
		enabled: func(c plan.Capabilities) bool { return c.PrioritySupport },
		add:     capAddition{features: []string{FeaturePrioritySupport}},
	},
	{
		enabled: func(c plan.Capabilities) bool { return c.WhiteLabel },
		add:     capAddition{features: []string{FeatureWhiteLabel}},
	},
}
