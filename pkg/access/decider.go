package access

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/agrofleet/agrokit/pkg/authz"
	"github.com/agrofleet/agrokit/pkg/identity"
	"github.com/agrofleet/agrokit/pkg/plan"
)

// Decider resolves resource subjects through the lookup collaborator and
// applies the decision algorithm, logging denials.
type Decider struct {
	lookup Lookup
	log    *slog.Logger
}

// DeciderOption configures the Decider.
type DeciderOption func(*Decider)

// WithLogger sets a custom logger for the decider.
func WithLogger(log *slog.Logger) DeciderOption {
	return func(d *Decider) {
		if log != nil {
			d.log = log
		}
	}
}

// NewDecider creates a Decider backed by the resource lookup collaborator.
func NewDecider(lookup Lookup, opts ...DeciderOption) *Decider {
	d := &Decider{
		lookup: lookup,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DecideResource loads the subject for the resource instance and decides
// access. Platform admins skip the lookup entirely.
func (d *Decider) DecideResource(ctx context.Context, p identity.Principal, res plan.Resource, id uuid.UUID) error {
	if p.PlatformAdmin {
		return nil
	}

	subject, err := d.lookup.Subject(ctx, res, id)
	if err != nil {
		if errors.Is(err, authz.ErrNotFound) {
			return ErrResourceNotFound
		}
		return errors.Join(ErrLookupFailed, err)
	}

	if err := Decide(p, subject); err != nil {
		d.log.WarnContext(ctx, "resource access denied",
			slog.String("principal_id", p.ID.String()),
			slog.String("resource", string(res)),
			slog.String("resource_id", id.String()),
			slog.Any("reason", err))
		return err
	}

	return nil
}
