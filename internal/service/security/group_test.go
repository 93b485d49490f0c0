package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrp-access/internal/domain"
)

func TestGroupService_Create_AdminRequired(t *testing.T) {
	f := newFixture(t)

	_, err := f.groups.Create(nonAdminCtx(), domain.CreateGroupRequest{Name: "test-group"})
	var accessDenied *domain.AccessDeniedError
	require.ErrorAs(t, err, &accessDenied)

	denied := domain.AuditDenied
	entries, _, err := f.store.Audit().List(context.Background(), domain.AuditFilter{Status: &denied})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "CREATE_GROUP", entries[0].Action)
	assert.Equal(t, "regular-user", entries[0].PrincipalName)
}

func TestGroupService_Create_EmptyName(t *testing.T) {
	f := newFixture(t)

	_, err := f.groups.Create(adminCtx(), domain.CreateGroupRequest{Name: ""})
	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestGroupService_Create_Duplicate(t *testing.T) {
	f := newFixture(t)

	_, err := f.groups.Create(adminCtx(), domain.CreateGroupRequest{Name: domain.GroupSystem})
	var conflict *domain.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestGroupService_Delete(t *testing.T) {
	f := newFixture(t)
	id := f.groupIDs[domain.GroupGenericEmployee]

	err := f.groups.Delete(nonAdminCtx(), id)
	var accessDenied *domain.AccessDeniedError
	require.ErrorAs(t, err, &accessDenied)

	require.NoError(t, f.groups.Delete(adminCtx(), id))
	_, err = f.groups.GetByID(context.Background(), id)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestGroupService_AddMember_AdminRequired(t *testing.T) {
	f := newFixture(t)
	p := f.newPrincipal(t, "public")

	err := f.groups.AddMember(nonAdminCtx(), domain.AddGroupMemberRequest{
		GroupID: f.groupIDs[domain.GroupManufacturingUser], MemberType: domain.MemberTypeUser, MemberID: p.ID,
	})
	var accessDenied *domain.AccessDeniedError
	require.ErrorAs(t, err, &accessDenied)

	members, _, err := f.groups.ListMembers(context.Background(), f.groupIDs[domain.GroupManufacturingUser], domain.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestGroupService_AddMember_Audited(t *testing.T) {
	f := newFixture(t)
	p := f.newPrincipal(t, "public")
	f.join(t, p.ID, domain.GroupManufacturingUser)
	// idempotent
	f.join(t, p.ID, domain.GroupManufacturingUser)

	members, total, err := f.groups.ListMembers(context.Background(), f.groupIDs[domain.GroupManufacturingUser], domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, p.ID, members[0].MemberID)

	action := "ADD_GROUP_MEMBER"
	entries, _, err := f.store.Audit().List(context.Background(), domain.AuditFilter{Action: &action})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.AuditAllowed, entries[0].Status)
	assert.Equal(t, "admin-user", entries[0].PrincipalName)
}

func TestGroupService_AddMember_Validation(t *testing.T) {
	f := newFixture(t)
	userGroup := f.groupIDs[domain.GroupManufacturingUser]

	tests := []struct {
		name string
		req  domain.AddGroupMemberRequest
		want any
	}{
		{"bad member type", domain.AddGroupMemberRequest{GroupID: userGroup, MemberType: "robot", MemberID: "x"}, &domain.ValidationError{}},
		{"self nesting", domain.AddGroupMemberRequest{GroupID: userGroup, MemberType: domain.MemberTypeGroup, MemberID: userGroup}, &domain.ValidationError{}},
		{"unknown principal", domain.AddGroupMemberRequest{GroupID: userGroup, MemberType: domain.MemberTypeUser, MemberID: "ghost"}, &domain.NotFoundError{}},
		{"unknown nested group", domain.AddGroupMemberRequest{GroupID: userGroup, MemberType: domain.MemberTypeGroup, MemberID: "ghost"}, &domain.NotFoundError{}},
		{"unknown group", domain.AddGroupMemberRequest{GroupID: "ghost", MemberType: domain.MemberTypeGroup, MemberID: userGroup}, &domain.NotFoundError{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := f.groups.AddMember(adminCtx(), tc.req)
			require.Error(t, err)
			switch tc.want.(type) {
			case *domain.ValidationError:
				var v *domain.ValidationError
				assert.ErrorAs(t, err, &v)
			case *domain.NotFoundError:
				var nf *domain.NotFoundError
				assert.ErrorAs(t, err, &nf)
			}
		})
	}
}

func TestGroupService_RemoveMember(t *testing.T) {
	f := newFixture(t)
	p := f.newPrincipal(t, "public")
	f.join(t, p.ID, domain.GroupManufacturingUser)

	err := f.groups.RemoveMember(nonAdminCtx(), domain.RemoveGroupMemberRequest{
		GroupID: f.groupIDs[domain.GroupManufacturingUser], MemberType: domain.MemberTypeUser, MemberID: p.ID,
	})
	var accessDenied *domain.AccessDeniedError
	require.ErrorAs(t, err, &accessDenied)

	f.leave(t, p.ID, domain.GroupManufacturingUser)
	// removing again is a no-op
	f.leave(t, p.ID, domain.GroupManufacturingUser)

	_, total, err := f.groups.ListMembers(context.Background(), f.groupIDs[domain.GroupManufacturingUser], domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestGroupService_ListMembers_UnknownGroup(t *testing.T) {
	f := newFixture(t)
	_, _, err := f.groups.ListMembers(context.Background(), "ghost", domain.PageRequest{})
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}
