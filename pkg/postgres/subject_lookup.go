package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agrofleet/agrokit/pkg/access"
	"github.com/agrofleet/agrokit/pkg/authz"
	"github.com/agrofleet/agrokit/pkg/plan"
)

// SubjectLookup implements access.Lookup for assignee-carrying resources.
// Work items are the only such resource today; orders are bilateral and
// go through access.DecideBilateral instead.
type SubjectLookup struct {
	db *pgxpool.Pool
}

// NewSubjectLookup returns a lookup backed by the given pool.
func NewSubjectLookup(db *pgxpool.Pool) *SubjectLookup {
	return &SubjectLookup{db: db}
}

const workItemQuery = `
SELECT organization_id, created_by, required_override_level
FROM work_items
WHERE id = $1`

const workItemAssigneesQuery = `
SELECT user_id, active
FROM work_item_assignees
WHERE work_item_id = $1`

func (l *SubjectLookup) Subject(ctx context.Context, res plan.Resource, id uuid.UUID) (access.Subject, error) {
	if res != plan.ResourceWorkItems {
		return access.Subject{}, errors.Join(ErrUnsupportedResource, fmt.Errorf("resource %q", res))
	}

	var subject access.Subject
	err := l.db.QueryRow(ctx, workItemQuery, id).
		Scan(&subject.OwnerOrganizationID, &subject.CreatorID, &subject.RequiredOverrideLevel)
	if err != nil {
		if IsNotFoundError(err) {
			return access.Subject{}, errors.Join(authz.ErrNotFound, errors.New("work item not found"))
		}
		return access.Subject{}, err
	}

	rows, err := l.db.Query(ctx, workItemAssigneesQuery, id)
	if err != nil {
		return access.Subject{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var a access.Assignee
		if err := rows.Scan(&a.UserID, &a.Active); err != nil {
			return access.Subject{}, err
		}
		subject.Assignees = append(subject.Assignees, a)
	}
	if err := rows.Err(); err != nil {
		return access.Subject{}, err
	}

	return subject, nil
}

const orderQuery = `
SELECT buyer_organization_id, supplier_organization_id, required_override_level
FROM orders
WHERE id = $1`

// Order loads the bilateral subject of an order for access.DecideBilateral.
func (l *SubjectLookup) Order(ctx context.Context, id uuid.UUID) (access.BilateralSubject, error) {
	var subject access.BilateralSubject
	err := l.db.QueryRow(ctx, orderQuery, id).
		Scan(&subject.BuyerOrganizationID, &subject.SupplierOrganizationID, &subject.RequiredOverrideLevel)
	if err != nil {
		if IsNotFoundError(err) {
			return access.BilateralSubject{}, errors.Join(authz.ErrNotFound, errors.New("order not found"))
		}
		return access.BilateralSubject{}, err
	}
	return subject, nil
}
