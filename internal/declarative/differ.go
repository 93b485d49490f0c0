package declarative

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"mrp-access/internal/domain"
)

// Diff compares the directory with the current store contents and returns
// the actions needed to converge. Reconciliation is additive: principals,
// groups and memberships missing from d are left alone.
func Diff(ctx context.Context, d *Directory, principals domain.PrincipalRepository, groups domain.GroupRepository) (*Plan, error) {
	plan := &Plan{}

	principalIDs := map[string]string{}
	for i := range d.Principals {
		spec := &d.Principals[i]
		p, err := principals.GetByName(ctx, spec.Name)
		switch {
		case isNotFound(err):
			plan.Actions = append(plan.Actions, Action{
				Operation: OpCreate, ResourceKind: KindPrincipal, ResourceName: spec.Name, Principal: spec,
			})
		case err != nil:
			return nil, fmt.Errorf("read principal %q: %w", spec.Name, err)
		default:
			principalIDs[p.ID] = p.Name
			if p.IsAdmin != spec.IsAdmin {
				plan.Actions = append(plan.Actions, Action{
					Operation: OpUpdate, ResourceKind: KindPrincipal, ResourceName: spec.Name, Principal: spec,
					Changes: []FieldDiff{{
						Field:    "is_admin",
						OldValue: strconv.FormatBool(p.IsAdmin),
						NewValue: strconv.FormatBool(spec.IsAdmin),
					}},
				})
			}
		}
	}

	groupIDs := map[string]string{}
	var existing []domain.Group
	for i := range d.Groups {
		spec := &d.Groups[i]
		g, err := groups.GetByName(ctx, spec.Name)
		switch {
		case isNotFound(err):
			plan.Actions = append(plan.Actions, Action{
				Operation: OpCreate, ResourceKind: KindGroup, ResourceName: spec.Name, Group: spec,
			})
		case err != nil:
			return nil, fmt.Errorf("read group %q: %w", spec.Name, err)
		default:
			groupIDs[g.ID] = g.Name
			existing = append(existing, *g)
		}
	}

	// Current edges of groups that already exist, keyed by member name.
	current := map[Membership]bool{}
	for _, g := range existing {
		members, err := listAllMembers(ctx, groups, g.ID)
		if err != nil {
			return nil, err
		}
		for _, m := range members {
			names := principalIDs
			if m.MemberType == domain.MemberTypeGroup {
				names = groupIDs
			}
			if name, ok := names[m.MemberID]; ok {
				current[Membership{Group: g.Name, MemberType: m.MemberType, MemberName: name}] = true
			}
		}
	}

	for _, g := range d.Groups {
		for _, m := range g.Members {
			edge := Membership{Group: g.Name, MemberType: m.Type, MemberName: m.Name}
			if current[edge] {
				continue
			}
			current[edge] = true
			plan.Actions = append(plan.Actions, Action{
				Operation:    OpCreate,
				ResourceKind: KindGroupMembership,
				ResourceName: fmt.Sprintf("%s <- %s:%s", g.Name, m.Type, m.Name),
				Membership:   &edge,
			})
		}
	}

	plan.SortActions()
	return plan, nil
}

func listAllMembers(ctx context.Context, groups domain.GroupRepository, groupID string) ([]domain.GroupMember, error) {
	var out []domain.GroupMember
	page := domain.PageRequest{MaxResults: domain.MaxMaxResults}
	for {
		members, total, err := groups.ListMembers(ctx, groupID, page)
		if err != nil {
			return nil, fmt.Errorf("list members: %w", err)
		}
		out = append(out, members...)
		next := domain.NextPageToken(page.Offset(), page.Limit(), total)
		if next == "" || len(members) == 0 {
			return out, nil
		}
		page.PageToken = next
	}
}

func isNotFound(err error) bool {
	var nf *domain.NotFoundError
	return errors.As(err, &nf)
}
