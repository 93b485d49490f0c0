package repository

import (
	"context"
	"sync"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldb "mrp-access/internal/db"
	"mrp-access/internal/domain"
)

func setupGroupRepo(t *testing.T) (*GroupRepo, *PrincipalRepo) {
	t.Helper()
	writeDB, _ := internaldb.OpenTestSQLite(t)
	return NewGroupRepo(writeDB), NewPrincipalRepo(writeDB)
}

func groupNames(groups []domain.Group) []string {
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	return names
}

func TestGroupRepo_CRUD(t *testing.T) {
	groupRepo, _ := setupGroupRepo(t)
	ctx := context.Background()

	g, err := groupRepo.Create(ctx, &domain.Group{
		Name:        domain.GroupManufacturingUser,
		Description: "Runs manufacturing orders",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, g.ID)
	assert.Equal(t, "Runs manufacturing orders", g.Description)
	assert.False(t, g.CreatedAt.IsZero())

	got, err := groupRepo.GetByName(ctx, domain.GroupManufacturingUser)
	require.NoError(t, err)
	assert.Equal(t, g.ID, got.ID)

	got, err = groupRepo.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.GroupManufacturingUser, got.Name)

	_, err = groupRepo.Create(ctx, &domain.Group{Name: domain.GroupManufacturingUser})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)

	groups, total, err := groupRepo.List(ctx, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, groups, 1)

	require.NoError(t, groupRepo.Delete(ctx, g.ID))
	_, err = groupRepo.GetByID(ctx, g.ID)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)

	err = groupRepo.Delete(ctx, g.ID)
	require.ErrorAs(t, err, &notFound)
}

func TestGroupRepo_Membership(t *testing.T) {
	groupRepo, principalRepo := setupGroupRepo(t)
	ctx := context.Background()

	g, err := groupRepo.Create(ctx, &domain.Group{Name: domain.GroupManufacturingUser})
	require.NoError(t, err)
	p, err := principalRepo.Create(ctx, &domain.Principal{Name: "public"})
	require.NoError(t, err)

	m := &domain.GroupMember{GroupID: g.ID, MemberType: domain.MemberTypeUser, MemberID: p.ID}
	require.NoError(t, groupRepo.AddMember(ctx, m))
	// Adding twice is idempotent.
	require.NoError(t, groupRepo.AddMember(ctx, m))

	members, total, err := groupRepo.ListMembers(ctx, g.ID, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, members, 1)
	assert.Equal(t, p.ID, members[0].MemberID)

	require.NoError(t, groupRepo.RemoveMember(ctx, m))
	groups, err := groupRepo.ResolveGroups(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestGroupRepo_AddMember_UnknownGroup(t *testing.T) {
	groupRepo, _ := setupGroupRepo(t)

	err := groupRepo.AddMember(context.Background(), &domain.GroupMember{
		GroupID: "missing", MemberType: domain.MemberTypeUser, MemberID: "p1",
	})
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestGroupRepo_ResolveGroups_Nested(t *testing.T) {
	groupRepo, principalRepo := setupGroupRepo(t)
	ctx := context.Background()

	employee, err := groupRepo.Create(ctx, &domain.Group{Name: domain.GroupGenericEmployee})
	require.NoError(t, err)
	user, err := groupRepo.Create(ctx, &domain.Group{Name: domain.GroupManufacturingUser})
	require.NoError(t, err)
	manager, err := groupRepo.Create(ctx, &domain.Group{Name: domain.GroupManufacturingManager})
	require.NoError(t, err)
	_, err = groupRepo.Create(ctx, &domain.Group{Name: domain.GroupSystem})
	require.NoError(t, err)

	// manager implies user implies employee
	require.NoError(t, groupRepo.AddMember(ctx, &domain.GroupMember{GroupID: user.ID, MemberType: domain.MemberTypeGroup, MemberID: manager.ID}))
	require.NoError(t, groupRepo.AddMember(ctx, &domain.GroupMember{GroupID: employee.ID, MemberType: domain.MemberTypeGroup, MemberID: user.ID}))

	p, err := principalRepo.Create(ctx, &domain.Principal{Name: "lead"})
	require.NoError(t, err)
	require.NoError(t, groupRepo.AddMember(ctx, &domain.GroupMember{GroupID: manager.ID, MemberType: domain.MemberTypeUser, MemberID: p.ID}))

	groups, err := groupRepo.ResolveGroups(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.GroupGenericEmployee, domain.GroupManufacturingManager, domain.GroupManufacturingUser}, groupNames(groups))
}

func TestGroupRepo_ResolveGroups_Cycle(t *testing.T) {
	groupRepo, principalRepo := setupGroupRepo(t)
	ctx := context.Background()

	a, err := groupRepo.Create(ctx, &domain.Group{Name: "a"})
	require.NoError(t, err)
	b, err := groupRepo.Create(ctx, &domain.Group{Name: "b"})
	require.NoError(t, err)
	require.NoError(t, groupRepo.AddMember(ctx, &domain.GroupMember{GroupID: a.ID, MemberType: domain.MemberTypeGroup, MemberID: b.ID}))
	require.NoError(t, groupRepo.AddMember(ctx, &domain.GroupMember{GroupID: b.ID, MemberType: domain.MemberTypeGroup, MemberID: a.ID}))

	p, err := principalRepo.Create(ctx, &domain.Principal{Name: "looper"})
	require.NoError(t, err)
	require.NoError(t, groupRepo.AddMember(ctx, &domain.GroupMember{GroupID: a.ID, MemberType: domain.MemberTypeUser, MemberID: p.ID}))

	groups, err := groupRepo.ResolveGroups(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, groupNames(groups))
}

func TestGroupRepo_Delete_RemovesNestedMembership(t *testing.T) {
	groupRepo, principalRepo := setupGroupRepo(t)
	ctx := context.Background()

	parent, err := groupRepo.Create(ctx, &domain.Group{Name: "parent"})
	require.NoError(t, err)
	child, err := groupRepo.Create(ctx, &domain.Group{Name: "child"})
	require.NoError(t, err)
	require.NoError(t, groupRepo.AddMember(ctx, &domain.GroupMember{GroupID: parent.ID, MemberType: domain.MemberTypeGroup, MemberID: child.ID}))

	p, err := principalRepo.Create(ctx, &domain.Principal{Name: "u"})
	require.NoError(t, err)
	require.NoError(t, groupRepo.AddMember(ctx, &domain.GroupMember{GroupID: child.ID, MemberType: domain.MemberTypeUser, MemberID: p.ID}))

	require.NoError(t, groupRepo.Delete(ctx, child.ID))

	_, total, err := groupRepo.ListMembers(ctx, parent.ID, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	groups, err := groupRepo.ResolveGroups(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestGroupRepo_ResolveGroups_ConcurrentWrites(t *testing.T) {
	writeDB, readDB := internaldb.OpenTestSQLite(t)
	writer := NewGroupRepo(writeDB)
	reader := NewGroupRepo(readDB)
	principalRepo := NewPrincipalRepo(writeDB)
	ctx := context.Background()

	user, err := writer.Create(ctx, &domain.Group{Name: domain.GroupManufacturingUser})
	require.NoError(t, err)
	employee, err := writer.Create(ctx, &domain.Group{Name: domain.GroupGenericEmployee})
	require.NoError(t, err)
	require.NoError(t, writer.AddMember(ctx, &domain.GroupMember{GroupID: employee.ID, MemberType: domain.MemberTypeGroup, MemberID: user.ID}))
	p, err := principalRepo.Create(ctx, &domain.Principal{Name: "public"})
	require.NoError(t, err)
	m := &domain.GroupMember{GroupID: user.ID, MemberType: domain.MemberTypeUser, MemberID: p.ID}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_ = writer.AddMember(ctx, m)
			_ = writer.RemoveMember(ctx, m)
		}
	}()

	// Every snapshot is either empty or the full closure, never just one half.
	for i := 0; i < 50; i++ {
		groups, err := reader.ResolveGroups(ctx, p.ID)
		require.NoError(t, err)
		assert.Contains(t, []int{0, 2}, len(groups))
	}
	wg.Wait()
}
