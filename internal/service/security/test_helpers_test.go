package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"mrp-access/internal/db/memstore"
	"mrp-access/internal/domain"
	"mrp-access/internal/policy"
)

// adminCtx returns a context with an admin principal for testing.
func adminCtx() context.Context {
	return domain.WithPrincipal(context.Background(), domain.ContextPrincipal{
		Name: "admin-user", IsAdmin: true, Type: "user",
	})
}

// nonAdminCtx returns a context with a non-admin principal for testing.
func nonAdminCtx() context.Context {
	return domain.WithPrincipal(context.Background(), domain.ContextPrincipal{
		Name: "regular-user", IsAdmin: false, Type: "user",
	})
}

// principalCtx returns a context for a specific non-admin principal.
func principalCtx(name string) context.Context {
	return domain.WithPrincipal(context.Background(), domain.ContextPrincipal{
		Name: name, Type: "user",
	})
}

type fixture struct {
	store      *memstore.Store
	groups     *GroupService
	principals *PrincipalService
	resolver   *Resolver
	authz      *AuthorizationService
	groupIDs   map[string]string
}

// newFixture builds services over an in-memory store seeded with the
// manufacturing groups and the default policy.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	f := &fixture{
		store:      store,
		groups:     NewGroupService(store.Groups(), store.Principals(), store.Audit()),
		principals: NewPrincipalService(store.Principals(), store.Audit()),
		resolver:   NewResolver(store.Principals(), store.Groups()),
		groupIDs:   map[string]string{},
	}
	f.authz = NewAuthorizationService(NewAccessGate(policy.Default()), f.resolver)

	for _, name := range []string{
		domain.GroupSystem,
		domain.GroupManufacturingUser,
		domain.GroupManufacturingManager,
		domain.GroupGenericEmployee,
	} {
		g, err := f.groups.Create(adminCtx(), domain.CreateGroupRequest{Name: name})
		require.NoError(t, err)
		f.groupIDs[name] = g.ID
	}
	return f
}

func (f *fixture) newPrincipal(t *testing.T, name string) *domain.Principal {
	t.Helper()
	p, err := f.principals.Create(adminCtx(), domain.CreatePrincipalRequest{Name: name})
	require.NoError(t, err)
	return p
}

func (f *fixture) join(t *testing.T, principalID, group string) {
	t.Helper()
	require.NoError(t, f.groups.AddMember(adminCtx(), domain.AddGroupMemberRequest{
		GroupID: f.groupIDs[group], MemberType: domain.MemberTypeUser, MemberID: principalID,
	}))
}

func (f *fixture) leave(t *testing.T, principalID, group string) {
	t.Helper()
	require.NoError(t, f.groups.RemoveMember(adminCtx(), domain.RemoveGroupMemberRequest{
		GroupID: f.groupIDs[group], MemberType: domain.MemberTypeUser, MemberID: principalID,
	}))
}
