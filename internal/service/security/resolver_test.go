package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrp-access/internal/domain"
)

func TestResolver_Resolve(t *testing.T) {
	f := newFixture(t)
	p := f.newPrincipal(t, "public")
	f.join(t, p.ID, domain.GroupManufacturingUser)

	actor, err := f.resolver.Resolve(context.Background(), "public")
	require.NoError(t, err)
	assert.Equal(t, p.ID, actor.Principal.ID)
	assert.Equal(t, []string{domain.GroupManufacturingUser}, actor.Groups.Names())
}

func TestResolver_NestedGroups(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.groups.AddMember(adminCtx(), domain.AddGroupMemberRequest{
		GroupID:    f.groupIDs[domain.GroupManufacturingUser],
		MemberType: domain.MemberTypeGroup,
		MemberID:   f.groupIDs[domain.GroupManufacturingManager],
	}))
	p := f.newPrincipal(t, "lead")
	f.join(t, p.ID, domain.GroupManufacturingManager)

	actor, err := f.resolver.Resolve(context.Background(), "lead")
	require.NoError(t, err)
	assert.True(t, actor.Groups.Has(domain.GroupManufacturingUser))
	assert.True(t, actor.Groups.Has(domain.GroupManufacturingManager))
}

func TestResolver_UnknownPrincipal(t *testing.T) {
	f := newFixture(t)

	_, err := f.resolver.Resolve(context.Background(), "ghost")
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)

	_, err = f.resolver.Resolve(context.Background(), "")
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestResolver_SnapshotIsStable(t *testing.T) {
	f := newFixture(t)
	p := f.newPrincipal(t, "public")
	f.join(t, p.ID, domain.GroupManufacturingUser)
	gate := f.authz.gate

	before, err := f.resolver.Resolve(context.Background(), "public")
	require.NoError(t, err)

	f.leave(t, p.ID, domain.GroupManufacturingUser)

	// The earlier snapshot keeps its decision.
	assert.NoError(t, gate.Authorize(before, domain.EntityManufacturingOrder, domain.OpCreate))

	// The next resolution sees the change.
	after, err := f.resolver.Resolve(context.Background(), "public")
	require.NoError(t, err)
	assert.Error(t, gate.Authorize(after, domain.EntityManufacturingOrder, domain.OpCreate))
}
