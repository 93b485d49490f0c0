package security

import (
	"context"

	"mrp-access/internal/domain"
)

// AuthorizationService answers access questions for principals that are named
// rather than already resolved.
type AuthorizationService struct {
	gate     domain.Authorizer
	resolver domain.ActorResolver
}

// NewAuthorizationService creates an AuthorizationService.
func NewAuthorizationService(gate domain.Authorizer, resolver domain.ActorResolver) *AuthorizationService {
	return &AuthorizationService{gate: gate, resolver: resolver}
}

// AuthorizePrincipal resolves principalName with its current memberships and
// checks op on entity. Unknown principals yield a NotFoundError.
func (s *AuthorizationService) AuthorizePrincipal(ctx context.Context, principalName string, entity domain.EntityType, op domain.Operation) error {
	actor, err := s.resolver.Resolve(ctx, principalName)
	if err != nil {
		return err
	}
	return s.gate.Authorize(actor, entity, op)
}

// Check explains the decision for principalName, defaulting to the caller.
// Checking anyone other than the caller requires admin privileges.
func (s *AuthorizationService) Check(ctx context.Context, principalName string, entity domain.EntityType, op domain.Operation) (domain.Decision, error) {
	caller := callerName(ctx)
	if principalName == "" {
		principalName = caller
	}
	if principalName == "" {
		return domain.Decision{}, domain.ErrAccessDenied("authentication required")
	}
	if principalName != caller {
		if err := requireAdmin(ctx); err != nil {
			return domain.Decision{}, err
		}
	}
	actor, err := s.resolver.Resolve(ctx, principalName)
	if err != nil {
		return domain.Decision{}, err
	}
	return s.gate.Explain(actor, entity, op), nil
}
