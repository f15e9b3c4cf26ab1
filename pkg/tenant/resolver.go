package tenant

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/agrofleet/agrokit/pkg/authz"
	"github.com/agrofleet/agrokit/pkg/identity"
)

// Resolver determines the effective organization for a request.
type Resolver struct {
	lookup Lookup
	log    *slog.Logger
}

// ResolverOption configures the Resolver.
type ResolverOption func(*Resolver)

// WithLogger sets a custom logger for the resolver.
func WithLogger(log *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// NewResolver creates a Resolver backed by the organization lookup
// collaborator.
func NewResolver(lookup Lookup, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		lookup: lookup,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the tenant context for the acting principal. The
// override is the raw organization override signal from the request
// (empty when absent). Only platform administrators may override; the
// target must exist, be active, and not be suspended.
func (r *Resolver) Resolve(ctx context.Context, p identity.Principal, override string) (Context, error) {
	if override == "" {
		return Context{OrganizationID: p.OrganizationID}, nil
	}

	if !p.PlatformAdmin {
		r.log.WarnContext(ctx, "impersonation attempt by non-admin principal",
			slog.String("principal_id", p.ID.String()))
		return Context{}, ErrImpersonationForbidden
	}

	orgID, err := uuid.Parse(override)
	if err != nil {
		return Context{}, errors.Join(ErrInvalidOrganizationID, err)
	}

	org, err := r.lookup.Organization(ctx, orgID)
	if err != nil {
		if errors.Is(err, authz.ErrNotFound) {
			return Context{}, ErrOrganizationNotFound
		}
		// Unexpected lookup failures are wrapped, never silently swallowed.
		return Context{}, errors.Join(ErrInvalidOrganizationID, err)
	}

	if !org.Active {
		return Context{}, ErrOrganizationInactive
	}
	if org.SuspendedAt != nil {
		return Context{}, ErrOrganizationSuspended
	}

	r.log.WarnContext(ctx, "platform admin impersonating organization",
		slog.String("admin_id", p.ID.String()),
		slog.String("organization_id", org.ID.String()),
		slog.String("organization_name", org.Name))

	return Context{
		OrganizationID:   org.ID,
		Impersonation:    true,
		ActingAdminID:    p.ID,
		OrganizationName: org.Name,
	}, nil
}
