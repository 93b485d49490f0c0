package declarative

import (
	"context"
	"fmt"

	"mrp-access/internal/domain"
)

// Apply executes the plan against the store in order. It writes through the
// repositories directly and is meant for bootstrap and offline use; API
// callers go through the admin-checked services instead.
func Apply(ctx context.Context, plan *Plan, principals domain.PrincipalRepository, groups domain.GroupRepository) error {
	for _, a := range plan.Actions {
		if err := applyAction(ctx, a, principals, groups); err != nil {
			return fmt.Errorf("%s %s %q: %w", a.Operation, a.ResourceKind, a.ResourceName, err)
		}
	}
	return nil
}

// Sync diffs d against the store and applies the result.
func Sync(ctx context.Context, d *Directory, principals domain.PrincipalRepository, groups domain.GroupRepository) (*Plan, error) {
	plan, err := Diff(ctx, d, principals, groups)
	if err != nil {
		return nil, err
	}
	if err := Apply(ctx, plan, principals, groups); err != nil {
		return plan, err
	}
	return plan, nil
}

func applyAction(ctx context.Context, a Action, principals domain.PrincipalRepository, groups domain.GroupRepository) error {
	switch a.ResourceKind {
	case KindPrincipal:
		if a.Operation == OpUpdate {
			p, err := principals.GetByName(ctx, a.Principal.Name)
			if err != nil {
				return err
			}
			return principals.SetAdmin(ctx, p.ID, a.Principal.IsAdmin)
		}
		req := domain.CreatePrincipalRequest{Name: a.Principal.Name, Type: a.Principal.Type, IsAdmin: a.Principal.IsAdmin}
		if err := req.Validate(); err != nil {
			return err
		}
		_, err := principals.Create(ctx, &domain.Principal{Name: req.Name, Type: req.Type, IsAdmin: req.IsAdmin})
		return err

	case KindGroup:
		_, err := groups.Create(ctx, &domain.Group{Name: a.Group.Name, Description: a.Group.Description})
		return err

	case KindGroupMembership:
		g, err := groups.GetByName(ctx, a.Membership.Group)
		if err != nil {
			return err
		}
		var memberID string
		if a.Membership.MemberType == domain.MemberTypeGroup {
			mg, err := groups.GetByName(ctx, a.Membership.MemberName)
			if err != nil {
				return err
			}
			memberID = mg.ID
		} else {
			p, err := principals.GetByName(ctx, a.Membership.MemberName)
			if err != nil {
				return err
			}
			memberID = p.ID
		}
		return groups.AddMember(ctx, &domain.GroupMember{
			GroupID: g.ID, MemberType: a.Membership.MemberType, MemberID: memberID,
		})
	}
	return fmt.Errorf("unsupported resource kind %s", a.ResourceKind)
}
