package tenant

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Organization is the minimal organization record needed to validate an
// impersonation target.
type Organization struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Active      bool       `json:"active"`
	SuspendedAt *time.Time `json:"suspended_at,omitempty"`
}

// Lookup loads organization records from a data source. Implementations
// return an error wrapping authz.ErrNotFound when no organization
// matches the id.
type Lookup interface {
	Organization(ctx context.Context, id uuid.UUID) (*Organization, error)
}

// LookupFunc adapts a function to the Lookup interface.
type LookupFunc func(ctx context.Context, id uuid.UUID) (*Organization, error)

func (f LookupFunc) Organization(ctx context.Context, id uuid.UUID) (*Organization, error) {
	return f(ctx, id)
}
