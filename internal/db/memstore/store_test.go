package memstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrp-access/internal/domain"
)

func seedNested(t *testing.T, s *Store) (principalID string, user, employee *domain.Group) {
	t.Helper()
	ctx := context.Background()
	groups := s.Groups()

	var err error
	employee, err = groups.Create(ctx, &domain.Group{Name: domain.GroupGenericEmployee})
	require.NoError(t, err)
	user, err = groups.Create(ctx, &domain.Group{Name: domain.GroupManufacturingUser})
	require.NoError(t, err)
	require.NoError(t, groups.AddMember(ctx, &domain.GroupMember{GroupID: employee.ID, MemberType: domain.MemberTypeGroup, MemberID: user.ID}))

	p, err := s.Principals().Create(ctx, &domain.Principal{Name: "public"})
	require.NoError(t, err)
	return p.ID, user, employee
}

func TestPrincipalStore_CRUD(t *testing.T) {
	s := New()
	ctx := context.Background()
	repo := s.Principals()

	p, err := repo.Create(ctx, &domain.Principal{Name: "public"})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.PrincipalTypeUser, p.Type)

	_, err = repo.Create(ctx, &domain.Principal{Name: "public"})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)

	require.NoError(t, repo.SetAdmin(ctx, p.ID, true))
	got, err := repo.GetByName(ctx, "public")
	require.NoError(t, err)
	assert.True(t, got.IsAdmin)

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.GetByID(ctx, p.ID)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestGroupStore_ResolveGroups(t *testing.T) {
	s := New()
	ctx := context.Background()
	pid, user, _ := seedNested(t, s)

	groups, err := s.Groups().ResolveGroups(ctx, pid)
	require.NoError(t, err)
	assert.Empty(t, groups)

	m := &domain.GroupMember{GroupID: user.ID, MemberType: domain.MemberTypeUser, MemberID: pid}
	require.NoError(t, s.Groups().AddMember(ctx, m))
	require.NoError(t, s.Groups().AddMember(ctx, m))

	groups, err = s.Groups().ResolveGroups(ctx, pid)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, domain.GroupGenericEmployee, groups[0].Name)
	assert.Equal(t, domain.GroupManufacturingUser, groups[1].Name)

	require.NoError(t, s.Groups().RemoveMember(ctx, m))
	groups, err = s.Groups().ResolveGroups(ctx, pid)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestGroupStore_ResolveGroups_Cycle(t *testing.T) {
	s := New()
	ctx := context.Background()
	groups := s.Groups()

	a, err := groups.Create(ctx, &domain.Group{Name: "a"})
	require.NoError(t, err)
	b, err := groups.Create(ctx, &domain.Group{Name: "b"})
	require.NoError(t, err)
	require.NoError(t, groups.AddMember(ctx, &domain.GroupMember{GroupID: a.ID, MemberType: domain.MemberTypeGroup, MemberID: b.ID}))
	require.NoError(t, groups.AddMember(ctx, &domain.GroupMember{GroupID: b.ID, MemberType: domain.MemberTypeGroup, MemberID: a.ID}))
	require.NoError(t, groups.AddMember(ctx, &domain.GroupMember{GroupID: b.ID, MemberType: domain.MemberTypeUser, MemberID: "p1"}))

	resolved, err := groups.ResolveGroups(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, resolved, 2)
}

func TestGroupStore_AddMember_UnknownGroup(t *testing.T) {
	s := New()
	err := s.Groups().AddMember(context.Background(), &domain.GroupMember{GroupID: "nope", MemberType: domain.MemberTypeUser, MemberID: "p"})
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestGroupStore_Delete_DropsEdges(t *testing.T) {
	s := New()
	ctx := context.Background()
	pid, user, employee := seedNested(t, s)
	require.NoError(t, s.Groups().AddMember(ctx, &domain.GroupMember{GroupID: user.ID, MemberType: domain.MemberTypeUser, MemberID: pid}))

	require.NoError(t, s.Groups().Delete(ctx, user.ID))

	_, total, err := s.Groups().ListMembers(ctx, employee.ID, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	groups, err := s.Groups().ResolveGroups(ctx, pid)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestGroupStore_ConcurrentResolve(t *testing.T) {
	s := New()
	ctx := context.Background()
	pid, user, _ := seedNested(t, s)
	m := &domain.GroupMember{GroupID: user.ID, MemberType: domain.MemberTypeUser, MemberID: pid}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = s.Groups().AddMember(ctx, m)
			_ = s.Groups().RemoveMember(ctx, m)
		}
	}()
	for i := 0; i < 200; i++ {
		groups, err := s.Groups().ResolveGroups(ctx, pid)
		require.NoError(t, err)
		assert.Contains(t, []int{0, 2}, len(groups))
	}
	wg.Wait()
}

func TestRecordStore_Lifecycle(t *testing.T) {
	s := New()
	ctx := context.Background()
	repo := s.Records()

	fields := map[string]any{"name": "Unit", "factor": 1}
	rec, err := repo.Create(ctx, &domain.Record{EntityType: domain.EntityUnitOfMeasure, Fields: fields, CreatedBy: "admin"})
	require.NoError(t, err)
	fields["name"] = "mutated"

	got, err := repo.Get(ctx, domain.EntityUnitOfMeasure, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Unit", got.Fields["name"])

	updated, err := repo.Update(ctx, domain.EntityUnitOfMeasure, rec.ID, map[string]any{"factor": nil, "rounding": 0.01})
	require.NoError(t, err)
	assert.NotContains(t, updated.Fields, "factor")
	assert.Contains(t, updated.Fields, "rounding")

	list, total, err := repo.List(ctx, domain.RecordFilter{EntityType: domain.EntityUnitOfMeasure})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, list, 1)

	_, err = repo.Get(ctx, domain.EntityProduct, rec.ID)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)

	require.NoError(t, repo.Delete(ctx, domain.EntityUnitOfMeasure, rec.ID))
	require.ErrorAs(t, repo.Delete(ctx, domain.EntityUnitOfMeasure, rec.ID), &notFound)
}

func TestRecordStore_Create_InvalidFields(t *testing.T) {
	s := New()
	_, err := s.Records().Create(context.Background(), &domain.Record{
		EntityType: domain.EntityProduct,
		Fields:     map[string]any{"bad": make(chan int)},
	})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestAuditStore_ListAndPurge(t *testing.T) {
	s := New()
	ctx := context.Background()
	repo := s.Audit()

	require.NoError(t, repo.Insert(ctx, &domain.AuditEntry{PrincipalName: "a", Action: "X", Status: domain.AuditAllowed, CreatedAt: time.Now().Add(-2 * time.Hour)}))
	require.NoError(t, repo.Insert(ctx, &domain.AuditEntry{PrincipalName: "b", Action: "X", Status: domain.AuditDenied}))

	entries, total, err := repo.List(ctx, domain.AuditFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, "b", entries[0].PrincipalName)

	denied := domain.AuditDenied
	_, total, err = repo.List(ctx, domain.AuditFilter{Status: &denied})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	n, err := repo.PurgeOlderThan(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
