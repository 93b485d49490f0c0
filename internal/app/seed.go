package app

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"mrp-access/internal/declarative"
	"mrp-access/internal/domain"
	"mrp-access/internal/policy"
)

// BootstrapDirectory returns the built-in groups and the bootstrap admin.
// Membership nests so that a manufacturing manager is also a manufacturing
// user, and a manufacturing user is also a generic employee.
func BootstrapDirectory(admin string) *declarative.Directory {
	d := &declarative.Directory{
		APIVersion: declarative.SupportedAPIVersion,
		Kind:       declarative.KindDirectory,
		Groups: []declarative.GroupSpec{
			{Name: domain.GroupSystem, Description: "Settings administrators"},
			{Name: domain.GroupManufacturingManager, Description: "Manufacturing managers"},
			{
				Name:        domain.GroupManufacturingUser,
				Description: "Manufacturing users",
				Members:     []declarative.MemberRef{{Name: domain.GroupManufacturingManager, Type: domain.MemberTypeGroup}},
			},
			{
				Name:        domain.GroupGenericEmployee,
				Description: "Employees",
				Members:     []declarative.MemberRef{{Name: domain.GroupManufacturingUser, Type: domain.MemberTypeGroup}},
			},
		},
	}
	if admin != "" {
		d.Principals = []declarative.PrincipalSpec{{Name: admin, IsAdmin: true}}
		d.Groups[0].Members = []declarative.MemberRef{{Name: admin, Type: domain.MemberTypeUser}}
	}
	return d
}

// Seed populates an empty metastore with the built-in groups, their nesting,
// and the bootstrap admin in the system group. A store that already holds
// any principal or group is left untouched, so membership and admin changes
// made through the API survive a restart. It reports whether it seeded.
func Seed(ctx context.Context, admin string, principals domain.PrincipalRepository, groups domain.GroupRepository) (bool, error) {
	// Check if already seeded
	one := domain.PageRequest{MaxResults: 1}
	if _, n, err := principals.List(ctx, one); err != nil {
		return false, fmt.Errorf("list principals: %w", err)
	} else if n > 0 {
		return false, nil
	}
	if _, n, err := groups.List(ctx, one); err != nil {
		return false, fmt.Errorf("list groups: %w", err)
	} else if n > 0 {
		return false, nil
	}

	if _, err := declarative.Sync(ctx, BootstrapDirectory(admin), principals, groups); err != nil {
		return false, err
	}
	return true, nil
}

// MissingPolicyGroups returns the groups named by policy rules that do not
// exist in the store. Such rules can never allow anything.
func MissingPolicyGroups(ctx context.Context, table *policy.Table, groups domain.GroupRepository) ([]string, error) {
	seen := map[string]bool{}
	var missing []string
	for _, r := range table.Rules() {
		for _, name := range r.Groups {
			if seen[name] {
				continue
			}
			seen[name] = true
			_, err := groups.GetByName(ctx, name)
			if err == nil {
				continue
			}
			var notFound *domain.NotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("lookup group %q: %w", name, err)
			}
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing, nil
}
