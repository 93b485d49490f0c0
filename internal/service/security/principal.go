package security

import (
	"context"

	"mrp-access/internal/domain"
	"mrp-access/internal/service/auditutil"
)

// PrincipalService provides principal management operations.
type PrincipalService struct {
	repo  domain.PrincipalRepository
	audit domain.AuditRepository
}

// NewPrincipalService creates a new PrincipalService.
func NewPrincipalService(repo domain.PrincipalRepository, audit domain.AuditRepository) *PrincipalService {
	return &PrincipalService{repo: repo, audit: audit}
}

// Create validates and persists a new principal.
func (s *PrincipalService) Create(ctx context.Context, req domain.CreatePrincipalRequest) (*domain.Principal, error) {
	if err := s.checkAdmin(ctx, "CREATE_PRINCIPAL"); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	result, err := s.repo.Create(ctx, &domain.Principal{Name: req.Name, Type: req.Type, IsAdmin: req.IsAdmin})
	if err != nil {
		return nil, err
	}
	auditutil.LogAllowed(ctx, s.audit, callerName(ctx), "CREATE_PRINCIPAL", result.Name)
	return result, nil
}

// GetByID returns a principal by ID.
func (s *PrincipalService) GetByID(ctx context.Context, id string) (*domain.Principal, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByName returns a principal by name.
func (s *PrincipalService) GetByName(ctx context.Context, name string) (*domain.Principal, error) {
	return s.repo.GetByName(ctx, name)
}

// List returns a paginated list of principals.
func (s *PrincipalService) List(ctx context.Context, page domain.PageRequest) ([]domain.Principal, int64, error) {
	return s.repo.List(ctx, page)
}

// Delete removes a principal by ID along with its group memberships.
func (s *PrincipalService) Delete(ctx context.Context, id string) error {
	if err := s.checkAdmin(ctx, "DELETE_PRINCIPAL"); err != nil {
		return err
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	auditutil.LogAllowed(ctx, s.audit, callerName(ctx), "DELETE_PRINCIPAL", p.Name)
	return nil
}

// SetAdmin updates the admin status of a principal.
func (s *PrincipalService) SetAdmin(ctx context.Context, id string, isAdmin bool) error {
	action := "SET_ADMIN"
	if !isAdmin {
		action = "UNSET_ADMIN"
	}
	if err := s.checkAdmin(ctx, action); err != nil {
		return err
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.SetAdmin(ctx, id, isAdmin); err != nil {
		return err
	}
	auditutil.LogAllowed(ctx, s.audit, callerName(ctx), action, p.Name)
	return nil
}

func (s *PrincipalService) checkAdmin(ctx context.Context, action string) error {
	if err := requireAdmin(ctx); err != nil {
		auditutil.LogDenied(ctx, s.audit, callerName(ctx), action, err.Error())
		return err
	}
	return nil
}
