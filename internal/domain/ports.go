package domain

import "context"

// Authorizer decides whether an actor may perform an operation on an entity
// type. Implementations must not perform I/O.
type Authorizer interface {
	Authorize(actor Actor, entity EntityType, op Operation) error
	Explain(actor Actor, entity EntityType, op Operation) Decision
}

// ActorResolver builds an Actor from a principal name using the group
// memberships in effect at the time of the call.
type ActorResolver interface {
	Resolve(ctx context.Context, principalName string) (Actor, error)
}
