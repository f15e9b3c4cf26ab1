package usage

import "errors"

var (
	// ErrPlanNotFound is returned when an organization's subscription tier
	// has no entry in the loaded plan catalog.
	ErrPlanNotFound = errors.New("usage: plan not found for subscription tier")

	// ErrFailedToLoadSubscription wraps subscription lookup failures.
	ErrFailedToLoadSubscription = errors.New("usage: failed to load subscription")

	// ErrFailedToCountUsage wraps counting collaborator failures.
	ErrFailedToCountUsage = errors.New("usage: failed to count resource usage")
)
