package plan

// Tier is an ordered subscription level. Higher tiers entitle an
// organization to more features, modules, and higher usage limits.
type Tier int

const (
	TierFree Tier = iota
	TierBasic
	TierPro
	TierEnterprise
)

// String returns the canonical lowercase tier name.
func (t Tier) String() string {
	switch t {
	case TierFree:
		return "free"
	case TierBasic:
		return "basic"
	case TierPro:
		return "pro"
	case TierEnterprise:
		return "enterprise"
	default:
		return "free"
	}
}

// AtLeast reports whether the tier is equal to or above other.
func (t Tier) AtLeast(other Tier) bool {
	return t >= other
}

// ParseTier maps a tier name to its Tier value. Unrecognized names fall
// back to TierFree so that a stale or corrupt subscription record
// degrades an organization's entitlements instead of failing requests.
func ParseTier(name string) Tier {
	switch name {
	case "basic":
		return TierBasic
	case "pro":
		return TierPro
	case "enterprise":
		return TierEnterprise
	default:
		return TierFree
	}
}
