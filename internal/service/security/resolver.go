package security

import (
	"context"
	"fmt"

	"mrp-access/internal/domain"
)

// Resolver builds Actors from the membership store.
type Resolver struct {
	principals domain.PrincipalRepository
	groups     domain.GroupRepository
}

var _ domain.ActorResolver = (*Resolver)(nil)

// NewResolver creates a Resolver.
func NewResolver(principals domain.PrincipalRepository, groups domain.GroupRepository) *Resolver {
	return &Resolver{principals: principals, groups: groups}
}

// Resolve looks up the named principal and captures its transitive group
// memberships. The group closure is read in one repository call, so the
// returned Actor never mixes state from before and after a concurrent change.
func (r *Resolver) Resolve(ctx context.Context, principalName string) (domain.Actor, error) {
	if principalName == "" {
		return domain.Actor{}, domain.ErrValidation("principal name is required")
	}
	p, err := r.principals.GetByName(ctx, principalName)
	if err != nil {
		return domain.Actor{}, err
	}
	groups, err := r.groups.ResolveGroups(ctx, p.ID)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("resolve groups for %s: %w", principalName, err)
	}
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	return domain.NewActor(*p, names...), nil
}
