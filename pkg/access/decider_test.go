package access_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/agrofleet/agrokit/pkg/access"
	"github.com/agrofleet/agrokit/pkg/authz"
	"github.com/agrofleet/agrokit/pkg/identity"
	"github.com/agrofleet/agrokit/pkg/plan"
)

type fakeLookup struct {
	subjects map[uuid.UUID]access.Subject
	err      error
	calls    int
}

func (l *fakeLookup) Subject(ctx context.Context, res plan.Resource, id uuid.UUID) (access.Subject, error) {
	l.calls++
	if l.err != nil {
		return access.Subject{}, l.err
	}
	s, ok := l.subjects[id]
	if !ok {
		return access.Subject{}, authz.ErrNotFound
	}
	return s, nil
}

func TestDecideResource(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	org := uuid.New()
	workItem := uuid.New()
	creator := uuid.New()

	t.Run("end to end work item scenario", func(t *testing.T) {
		t.Parallel()
		lookup := &fakeLookup{subjects: map[uuid.UUID]access.Subject{
			workItem: {
				OwnerOrganizationID:   org,
				CreatorID:             creator,
				RequiredOverrideLevel: 50,
			},
		}}
		decider := access.NewDecider(lookup)

		lowLevel := identity.Principal{
			ID:             uuid.New(),
			OrganizationID: org,
			Roles:          []identity.Role{{Level: 20}},
		}
		err := decider.DecideResource(ctx, lowLevel, plan.ResourceWorkItems, workItem)
		assert.ErrorIs(t, err, access.ErrNotAssigned)

		highLevel := lowLevel
		highLevel.Roles = []identity.Role{{Level: 50}}
		assert.NoError(t, decider.DecideResource(ctx, highLevel, plan.ResourceWorkItems, workItem))

		outsider := identity.Principal{
			ID:             uuid.New(),
			OrganizationID: uuid.New(),
			Roles:          []identity.Role{{Level: 100}},
		}
		err = decider.DecideResource(ctx, outsider, plan.ResourceWorkItems, workItem)
		assert.ErrorIs(t, err, access.ErrCrossTenant)
	})

	t.Run("platform admin skips the lookup", func(t *testing.T) {
		t.Parallel()
		lookup := &fakeLookup{}
		decider := access.NewDecider(lookup)

		admin := identity.Principal{ID: uuid.New(), PlatformAdmin: true}
		assert.NoError(t, decider.DecideResource(ctx, admin, plan.ResourceWorkItems, uuid.New()))
		assert.Zero(t, lookup.calls)
	})

	t.Run("missing resource", func(t *testing.T) {
		t.Parallel()
		decider := access.NewDecider(&fakeLookup{subjects: map[uuid.UUID]access.Subject{}})

		p := identity.Principal{ID: uuid.New(), OrganizationID: org}
		err := decider.DecideResource(ctx, p, plan.ResourceWorkItems, uuid.New())
		assert.ErrorIs(t, err, access.ErrResourceNotFound)
		assert.ErrorIs(t, err, authz.ErrNotFound)
	})

	t.Run("lookup failure wraps as internal", func(t *testing.T) {
		t.Parallel()
		decider := access.NewDecider(&fakeLookup{err: errors.New("db down")})

		p := identity.Principal{ID: uuid.New(), OrganizationID: org}
		err := decider.DecideResource(ctx, p, plan.ResourceWorkItems, uuid.New())
		assert.ErrorIs(t, err, access.ErrLookupFailed)
		assert.ErrorIs(t, err, authz.ErrInternal)
	})
}
