// Package records stores entity records behind the access gate.
package records

import (
	"context"
	"errors"
	"log/slog"

	"mrp-access/internal/domain"
	"mrp-access/internal/service/auditutil"
)

// Audit actions.
const (
	ActionCreate = "CREATE_RECORD"
	ActionRead   = "READ_RECORD"
	ActionList   = "LIST_RECORDS"
	ActionUpdate = "UPDATE_RECORD"
	ActionDelete = "DELETE_RECORD"
)

// RecordService persists records for an explicitly passed acting Actor. Every
// operation is authorized before the repository is touched and the gate's
// AccessDeniedError is returned unchanged.
type RecordService struct {
	repo   domain.RecordRepository
	gate   domain.Authorizer
	audit  domain.AuditRepository
	logger *slog.Logger
}

// Deps holds dependencies for RecordService.
type Deps struct {
	Repo   domain.RecordRepository
	Gate   domain.Authorizer
	Audit  domain.AuditRepository
	Logger *slog.Logger
}

// NewRecordService creates a new RecordService.
func NewRecordService(deps Deps) *RecordService {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &RecordService{
		repo:   deps.Repo,
		gate:   deps.Gate,
		audit:  deps.Audit,
		logger: logger.With("component", "records"),
	}
}

// Create stores a new record of the given entity type.
func (s *RecordService) Create(ctx context.Context, actor domain.Actor, entity domain.EntityType, fields map[string]any) (*domain.Record, error) {
	if err := s.authorize(ctx, actor, ActionCreate, entity, domain.OpCreate, ""); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, s.fail(ctx, actor, ActionCreate, entity, domain.OpCreate, "", domain.ErrValidation("fields must be a JSON object"))
	}
	rec, err := s.repo.Create(ctx, &domain.Record{
		EntityType: entity,
		Fields:     fields,
		CreatedBy:  actor.Principal.Name,
	})
	if err != nil {
		return nil, s.fail(ctx, actor, ActionCreate, entity, domain.OpCreate, "", err)
	}
	s.logger.Info("record created", "entity", entity, "id", rec.ID, "principal", actor.Principal.Name)
	return rec, nil
}

// Get returns a single record.
func (s *RecordService) Get(ctx context.Context, actor domain.Actor, entity domain.EntityType, id string) (*domain.Record, error) {
	if err := s.authorize(ctx, actor, ActionRead, entity, domain.OpRead, id); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, entity, id)
}

// List returns a paginated list of records of filter.EntityType.
func (s *RecordService) List(ctx context.Context, actor domain.Actor, filter domain.RecordFilter) ([]domain.Record, int64, error) {
	if err := s.authorize(ctx, actor, ActionList, filter.EntityType, domain.OpRead, ""); err != nil {
		return nil, 0, err
	}
	return s.repo.List(ctx, filter)
}

// Update merges fields into an existing record. A nil value removes the key.
func (s *RecordService) Update(ctx context.Context, actor domain.Actor, entity domain.EntityType, id string, fields map[string]any) (*domain.Record, error) {
	if err := s.authorize(ctx, actor, ActionUpdate, entity, domain.OpUpdate, id); err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, s.fail(ctx, actor, ActionUpdate, entity, domain.OpUpdate, id, domain.ErrValidation("at least one field is required"))
	}
	rec, err := s.repo.Update(ctx, entity, id, fields)
	if err != nil {
		return nil, s.fail(ctx, actor, ActionUpdate, entity, domain.OpUpdate, id, err)
	}
	return rec, nil
}

// Delete removes a record.
func (s *RecordService) Delete(ctx context.Context, actor domain.Actor, entity domain.EntityType, id string) error {
	if err := s.authorize(ctx, actor, ActionDelete, entity, domain.OpDelete, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, entity, id); err != nil {
		return s.fail(ctx, actor, ActionDelete, entity, domain.OpDelete, id, err)
	}
	s.logger.Info("record deleted", "entity", entity, "id", id, "principal", actor.Principal.Name)
	return nil
}

// authorize consults the gate and audits its decision.
func (s *RecordService) authorize(ctx context.Context, actor domain.Actor, action string, entity domain.EntityType, op domain.Operation, id string) error {
	access := auditutil.Access{Principal: actor.Principal.Name, Action: action, Entity: entity, Operation: op, Detail: id}
	if err := s.gate.Authorize(actor, entity, op); err != nil {
		s.logger.Warn("access denied",
			"principal", actor.Principal.Name, "entity", entity, "operation", op,
			"groups", actor.Groups.Names())
		auditutil.LogAccess(ctx, s.audit, access, err)
		return err
	}
	auditutil.LogAccess(ctx, s.audit, access, nil)
	return nil
}

// fail audits a failure after authorization and returns err unchanged.
func (s *RecordService) fail(ctx context.Context, actor domain.Actor, action string, entity domain.EntityType, op domain.Operation, id string, err error) error {
	var notFound *domain.NotFoundError
	var validation *domain.ValidationError
	if !errors.As(err, &notFound) && !errors.As(err, &validation) {
		s.logger.Error("record operation failed", "action", action, "entity", entity, "id", id, "error", err)
	}
	auditutil.LogAccess(ctx, s.audit, auditutil.Access{
		Principal: actor.Principal.Name, Action: action, Entity: entity, Operation: op, Detail: id,
	}, err)
	return err
}
