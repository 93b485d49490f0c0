package security

import (
	"mrp-access/internal/domain"
)

// PolicyTable is the read side of the static policy table.
type PolicyTable interface {
	Required(entity domain.EntityType, op domain.Operation) []string
}

// AccessGate decides record operations from an actor's groups and the policy
// table. Any one required group is sufficient. Pairs without a rule, and
// entity types the table does not know, are denied.
type AccessGate struct {
	policy PolicyTable
}

var _ domain.Authorizer = (*AccessGate)(nil)

// NewAccessGate creates an AccessGate over the given policy table.
func NewAccessGate(policy PolicyTable) *AccessGate {
	return &AccessGate{policy: policy}
}

// Authorize returns nil when the actor holds at least one group required for
// op on entity, and an *domain.AccessDeniedError otherwise.
func (g *AccessGate) Authorize(actor domain.Actor, entity domain.EntityType, op domain.Operation) error {
	if len(actor.Groups.Intersect(g.policy.Required(entity, op))) == 0 {
		return domain.NewAccessDenied(actor.Principal.Name, entity, op)
	}
	return nil
}

// Explain returns the decision Authorize would make along with the groups that
// were required and the ones the actor matched.
func (g *AccessGate) Explain(actor domain.Actor, entity domain.EntityType, op domain.Operation) domain.Decision {
	required := g.policy.Required(entity, op)
	matched := actor.Groups.Intersect(required)
	return domain.Decision{
		Principal:      actor.Principal.Name,
		EntityType:     entity,
		Operation:      op,
		Allowed:        len(matched) > 0,
		RequiredGroups: required,
		MatchedGroups:  matched,
	}
}
