package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agrofleet/agrokit/pkg/authz"
	"github.com/agrofleet/agrokit/pkg/tenant"
)

// TenantLookup implements tenant.Lookup against the organizations table.
type TenantLookup struct {
	db *pgxpool.Pool
}

// NewTenantLookup returns a lookup backed by the given pool.
func NewTenantLookup(db *pgxpool.Pool) *TenantLookup {
	return &TenantLookup{db: db}
}

const organizationQuery = `
SELECT id, name, active, suspended_at
FROM organizations
WHERE id = $1`

func (l *TenantLookup) Organization(ctx context.Context, id uuid.UUID) (*tenant.Organization, error) {
	var org tenant.Organization
	err := l.db.QueryRow(ctx, organizationQuery, id).
		Scan(&org.ID, &org.Name, &org.Active, &org.SuspendedAt)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, errors.Join(authz.ErrNotFound, errors.New("organization not found"))
		}
		return nil, err
	}
	return &org, nil
}
