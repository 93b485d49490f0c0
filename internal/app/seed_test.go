package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrp-access/internal/db/memstore"
	"mrp-access/internal/domain"
	"mrp-access/internal/policy"
	"mrp-access/internal/service/security"
)

func TestSeed_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	seeded, err := Seed(ctx, "root", store.Principals(), store.Groups())
	require.NoError(t, err)
	assert.True(t, seeded)
	seeded, err = Seed(ctx, "root", store.Principals(), store.Groups())
	require.NoError(t, err)
	assert.False(t, seeded)

	groups, total, err := store.Groups().List(ctx, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	var names []string
	for _, g := range groups {
		names = append(names, g.Name)
	}
	assert.ElementsMatch(t, []string{
		domain.GroupSystem, domain.GroupManufacturingUser,
		domain.GroupManufacturingManager, domain.GroupGenericEmployee,
	}, names)

	root, err := store.Principals().GetByName(ctx, "root")
	require.NoError(t, err)
	assert.True(t, root.IsAdmin)

	sys, err := store.Groups().GetByName(ctx, domain.GroupSystem)
	require.NoError(t, err)
	members, total, err := store.Groups().ListMembers(ctx, sys.ID, domain.PageRequest{})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	assert.Equal(t, root.ID, members[0].MemberID)
}

func seedStore(t *testing.T, store *memstore.Store) {
	t.Helper()
	seeded, err := Seed(context.Background(), "admin", store.Principals(), store.Groups())
	require.NoError(t, err)
	require.True(t, seeded)
}

func TestSeed_RestartKeepsRevocations(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	seedStore(t, store)

	admin, err := store.Principals().GetByName(ctx, "admin")
	require.NoError(t, err)
	sys, err := store.Groups().GetByName(ctx, domain.GroupSystem)
	require.NoError(t, err)
	mfg, err := store.Groups().GetByName(ctx, domain.GroupManufacturingUser)
	require.NoError(t, err)
	mgr, err := store.Groups().GetByName(ctx, domain.GroupManufacturingManager)
	require.NoError(t, err)

	require.NoError(t, store.Groups().RemoveMember(ctx, &domain.GroupMember{
		GroupID: sys.ID, MemberType: domain.MemberTypeUser, MemberID: admin.ID,
	}))
	require.NoError(t, store.Principals().SetAdmin(ctx, admin.ID, false))
	require.NoError(t, store.Groups().RemoveMember(ctx, &domain.GroupMember{
		GroupID: mfg.ID, MemberType: domain.MemberTypeGroup, MemberID: mgr.ID,
	}))

	// Next start.
	seeded, err := Seed(ctx, "admin", store.Principals(), store.Groups())
	require.NoError(t, err)
	assert.False(t, seeded)

	admin, err = store.Principals().GetByName(ctx, "admin")
	require.NoError(t, err)
	assert.False(t, admin.IsAdmin)
	_, total, err := store.Groups().ListMembers(ctx, sys.ID, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	_, total, err = store.Groups().ListMembers(ctx, mfg.ID, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestSeed_SkipsStoreWithGroups(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	_, err := store.Groups().Create(ctx, &domain.Group{Name: "planning"})
	require.NoError(t, err)

	seeded, err := Seed(ctx, "admin", store.Principals(), store.Groups())
	require.NoError(t, err)
	assert.False(t, seeded)
	_, err = store.Principals().GetByName(ctx, "admin")
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestMissingPolicyGroups(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	seedStore(t, store)

	missing, err := MissingPolicyGroups(ctx, policy.Default(), store.Groups())
	require.NoError(t, err)
	assert.Empty(t, missing)

	table, err := policy.Parse([]byte(`
apiVersion: mrp-access/v1
kind: AccessPolicy
entities: [manufacturing_order, product]
rules:
  - entity: manufacturing_order
    operations: [create, read]
    groups: [manufacuring-user, manufacturing-user]
  - entity: product
    operations: [read]
    groups: [generic-employe, manufacuring-user]
`))
	require.NoError(t, err)
	missing, err = MissingPolicyGroups(ctx, table, store.Groups())
	require.NoError(t, err)
	assert.Equal(t, []string{"generic-employe", "manufacuring-user"}, missing)
}

func TestSeed_ImpliedGroups(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	seedStore(t, store)

	mgr, err := store.Principals().Create(ctx, &domain.Principal{Name: "mgr"})
	require.NoError(t, err)
	g, err := store.Groups().GetByName(ctx, domain.GroupManufacturingManager)
	require.NoError(t, err)
	require.NoError(t, store.Groups().AddMember(ctx, &domain.GroupMember{
		GroupID: g.ID, MemberType: domain.MemberTypeUser, MemberID: mgr.ID,
	}))

	actor, err := security.NewResolver(store.Principals(), store.Groups()).Resolve(ctx, "mgr")
	require.NoError(t, err)
	assert.Equal(t, []string{
		domain.GroupGenericEmployee, domain.GroupManufacturingManager, domain.GroupManufacturingUser,
	}, actor.Groups.Names())

	gate := security.NewAccessGate(policy.Default())
	assert.NoError(t, gate.Authorize(actor, domain.EntityManufacturingOrder, domain.OpCreate))
	assert.NoError(t, gate.Authorize(actor, domain.EntityBillOfMaterials, domain.OpUpdate))
	assert.NoError(t, gate.Authorize(actor, domain.EntityProduct, domain.OpRead))
	assert.Error(t, gate.Authorize(actor, domain.EntityProduct, domain.OpCreate))
}

func TestSeed_AdminHasNoRecordBypass(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	seedStore(t, store)

	// Admin acts through the system group, not the admin flag.
	sys, err := store.Groups().GetByName(ctx, domain.GroupSystem)
	require.NoError(t, err)
	admin, err := store.Principals().GetByName(ctx, "admin")
	require.NoError(t, err)
	require.NoError(t, store.Groups().RemoveMember(ctx, &domain.GroupMember{
		GroupID: sys.ID, MemberType: domain.MemberTypeUser, MemberID: admin.ID,
	}))

	actor, err := security.NewResolver(store.Principals(), store.Groups()).Resolve(ctx, "admin")
	require.NoError(t, err)
	err = security.NewAccessGate(policy.Default()).Authorize(actor, domain.EntityCompany, domain.OpCreate)
	var denied *domain.AccessDeniedError
	assert.ErrorAs(t, err, &denied)
}

func TestRestoreDirectory(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	seedStore(t, store)

	path := filepath.Join(t.TempDir(), "directory.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
apiVersion: mrp-access/v1
kind: Directory
principals:
  - name: public
groups:
  - name: manufacturing-user
    members:
      - {name: public, type: user}
`), 0o600))

	require.NoError(t, restoreDirectory(ctx, path, store.Principals(), store.Groups(), nil))
	actor, err := security.NewResolver(store.Principals(), store.Groups()).Resolve(ctx, "public")
	require.NoError(t, err)
	assert.True(t, actor.Groups.Has(domain.GroupManufacturingUser))
	assert.True(t, actor.Groups.Has(domain.GroupGenericEmployee))

	require.NoError(t, os.WriteFile(path, []byte("apiVersion: mrp-access/v1\nkind: Nope\n"), 0o600))
	assert.Error(t, restoreDirectory(ctx, path, store.Principals(), store.Groups(), nil))
}
