package plan

import "errors"

var (
	// ErrFailedToLoadCatalog is returned when a plan source cannot be read.
	ErrFailedToLoadCatalog = errors.New("failed to load plan catalog")

	// ErrInvalidPlanConfiguration is returned when a loaded plan has an
	// invalid limit (negative values other than Unlimited).
	ErrInvalidPlanConfiguration = errors.New("invalid plan configuration")

	// ErrUnknownTier is returned by the YAML source for tier names that
	// do not map to a known tier.
	ErrUnknownTier = errors.New("unknown plan tier")
)
