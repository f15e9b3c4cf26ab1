package entitlement

import (
	"slices"

	"github.com/agrofleet/agrokit/pkg/plan"
)

// FeatureSet is the resolved entitlement of one (orgType, tier, caps)
// input. Both slices are sorted and deduplicated so equal inputs produce
// deeply equal results.
type FeatureSet struct {
	Features []string `json:"features"`
	Modules  []string `json:"modules"`
}

// HasFeature reports whether the feature name is entitled.
func (fs FeatureSet) HasFeature(name string) bool {
	return slices.Contains(fs.Features, name)
}

// HasModule reports whether the module name is entitled.
func (fs FeatureSet) HasModule(name string) bool {
	return slices.Contains(fs.Modules, name)
}

// Resolve derives the feature set for an organization. Pure and total:
// an out-of-range tier resolves as TierFree, an unknown orgType yields a
// FeatureSet restricted to capability additions. Never returns an error.
func Resolve(orgType OrgType, tier plan.Tier, caps plan.Capabilities) FeatureSet {
	features, ok := tierFeatures[tier]
	if !ok {
		features = tierFeatures[plan.TierFree]
	}
	allowedModules, ok := tierModules[tier]
	if !ok {
		allowedModules = tierModules[plan.TierFree]
	}

	candidates := orgTypeModules[orgType]

	modules := intersect(candidates, allowedModules)
	features = slices.Clone(features)

	for _, ca := range capAdditions {
		if ca.enabled(caps) {
			features = append(features, ca.add.features...)
			modules = append(modules, ca.add.modules...)
		}
	}

	return FeatureSet{
		Features: normalize(features),
		Modules:  normalize(modules),
	}
}

// ResolveSubscription resolves entitlements from a subscription record.
func ResolveSubscription(orgType OrgType, sub plan.Subscription) FeatureSet {
	return Resolve(orgType, sub.Tier, sub.Caps)
}

func intersect(a, b []string) []string {
	out := make([]string, 0, len(a))
	for _, v := range a {
		if slices.Contains(b, v) {
			out = append(out, v)
		}
	}
	return out
}

// normalize sorts and deduplicates; always returns a non-nil slice so
// the zero entitlement still marshals as [].
func normalize(in []string) []string {
	if len(in) == 0 {
		return []string{}
	}
	slices.Sort(in)
	return slices.Compact(in)
}
