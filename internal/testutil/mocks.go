// Package testutil provides shared mock implementations of domain interfaces
// for use in tests across the codebase. This follows the Go convention of a
// shared test utility package (like net/http/httptest).
package testutil

import (
	"context"
	"time"

	"mrp-access/internal/domain"
)

// === Audit Repository Mock ===

// MockAuditRepo implements domain.AuditRepository for testing.
type MockAuditRepo struct {
	InsertFn         func(ctx context.Context, e *domain.AuditEntry) error
	ListFn           func(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, int64, error)
	PurgeOlderThanFn func(ctx context.Context, before time.Time) (int64, error)
	Entries          []*domain.AuditEntry // collected entries for assertions
}

// Insert implements the interface method for testing.
func (m *MockAuditRepo) Insert(ctx context.Context, e *domain.AuditEntry) error {
	if m.InsertFn != nil {
		if err := m.InsertFn(ctx, e); err != nil {
			return err
		}
	}
	m.Entries = append(m.Entries, e)
	return nil
}

// List implements the interface method for testing.
func (m *MockAuditRepo) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}
	panic("unexpected call to MockAuditRepo.List")
}

// PurgeOlderThan implements the interface method for testing.
func (m *MockAuditRepo) PurgeOlderThan(ctx context.Context, before time.Time) (int64, error) {
	if m.PurgeOlderThanFn != nil {
		return m.PurgeOlderThanFn(ctx, before)
	}
	panic("unexpected call to MockAuditRepo.PurgeOlderThan")
}

// LastEntry returns the last collected audit entry, or nil if none.
func (m *MockAuditRepo) LastEntry() *domain.AuditEntry {
	if len(m.Entries) == 0 {
		return nil
	}
	return m.Entries[len(m.Entries)-1]
}

// HasAction returns true if any collected entry has the given action.
func (m *MockAuditRepo) HasAction(action string) bool {
	for _, e := range m.Entries {
		if e.Action == action {
			return true
		}
	}
	return false
}

// === Authorizer Mock ===

// MockAuthorizer implements domain.Authorizer for testing.
type MockAuthorizer struct {
	AuthorizeFn func(actor domain.Actor, entity domain.EntityType, op domain.Operation) error
	ExplainFn   func(actor domain.Actor, entity domain.EntityType, op domain.Operation) domain.Decision
	Calls       int
}

// Authorize implements the interface method for testing.
func (m *MockAuthorizer) Authorize(actor domain.Actor, entity domain.EntityType, op domain.Operation) error {
	m.Calls++
	if m.AuthorizeFn != nil {
		return m.AuthorizeFn(actor, entity, op)
	}
	panic("unexpected call to MockAuthorizer.Authorize")
}

// Explain implements the interface method for testing.
func (m *MockAuthorizer) Explain(actor domain.Actor, entity domain.EntityType, op domain.Operation) domain.Decision {
	if m.ExplainFn != nil {
		return m.ExplainFn(actor, entity, op)
	}
	panic("unexpected call to MockAuthorizer.Explain")
}

// === Actor Resolver Mock ===

// MockActorResolver implements domain.ActorResolver for testing.
type MockActorResolver struct {
	ResolveFn func(ctx context.Context, principalName string) (domain.Actor, error)
}

// Resolve implements the interface method for testing.
func (m *MockActorResolver) Resolve(ctx context.Context, principalName string) (domain.Actor, error) {
	if m.ResolveFn != nil {
		return m.ResolveFn(ctx, principalName)
	}
	panic("unexpected call to MockActorResolver.Resolve")
}

// === Record Repository Mock ===

// MockRecordRepo implements domain.RecordRepository for testing.
type MockRecordRepo struct {
	CreateFn func(ctx context.Context, r *domain.Record) (*domain.Record, error)
	GetFn    func(ctx context.Context, entity domain.EntityType, id string) (*domain.Record, error)
	ListFn   func(ctx context.Context, filter domain.RecordFilter) ([]domain.Record, int64, error)
	UpdateFn func(ctx context.Context, entity domain.EntityType, id string, fields map[string]any) (*domain.Record, error)
	DeleteFn func(ctx context.Context, entity domain.EntityType, id string) error
}

// Create implements the interface method for testing.
func (m *MockRecordRepo) Create(ctx context.Context, r *domain.Record) (*domain.Record, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	panic("unexpected call to MockRecordRepo.Create")
}

// Get implements the interface method for testing.
func (m *MockRecordRepo) Get(ctx context.Context, entity domain.EntityType, id string) (*domain.Record, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, entity, id)
	}
	panic("unexpected call to MockRecordRepo.Get")
}

// List implements the interface method for testing.
func (m *MockRecordRepo) List(ctx context.Context, filter domain.RecordFilter) ([]domain.Record, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}
	panic("unexpected call to MockRecordRepo.List")
}

// Update implements the interface method for testing.
func (m *MockRecordRepo) Update(ctx context.Context, entity domain.EntityType, id string, fields map[string]any) (*domain.Record, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, entity, id, fields)
	}
	panic("unexpected call to MockRecordRepo.Update")
}

// Delete implements the interface method for testing.
func (m *MockRecordRepo) Delete(ctx context.Context, entity domain.EntityType, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, entity, id)
	}
	panic("unexpected call to MockRecordRepo.Delete")
}

// === Principal Repository Mock ===

// MockPrincipalRepo implements domain.PrincipalRepository for testing.
type MockPrincipalRepo struct {
	CreateFn    func(ctx context.Context, p *domain.Principal) (*domain.Principal, error)
	GetByIDFn   func(ctx context.Context, id string) (*domain.Principal, error)
	GetByNameFn func(ctx context.Context, name string) (*domain.Principal, error)
	ListFn      func(ctx context.Context, page domain.PageRequest) ([]domain.Principal, int64, error)
	DeleteFn    func(ctx context.Context, id string) error
	SetAdminFn  func(ctx context.Context, id string, isAdmin bool) error
}

// Create implements the interface method for testing.
func (m *MockPrincipalRepo) Create(ctx context.Context, p *domain.Principal) (*domain.Principal, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	panic("unexpected call to MockPrincipalRepo.Create")
}

// GetByID implements the interface method for testing.
func (m *MockPrincipalRepo) GetByID(ctx context.Context, id string) (*domain.Principal, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	panic("unexpected call to MockPrincipalRepo.GetByID")
}

// GetByName implements the interface method for testing.
func (m *MockPrincipalRepo) GetByName(ctx context.Context, name string) (*domain.Principal, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	panic("unexpected call to MockPrincipalRepo.GetByName")
}

// List implements the interface method for testing.
func (m *MockPrincipalRepo) List(ctx context.Context, page domain.PageRequest) ([]domain.Principal, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page)
	}
	panic("unexpected call to MockPrincipalRepo.List")
}

// Delete implements the interface method for testing.
func (m *MockPrincipalRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	panic("unexpected call to MockPrincipalRepo.Delete")
}

// SetAdmin implements the interface method for testing.
func (m *MockPrincipalRepo) SetAdmin(ctx context.Context, id string, isAdmin bool) error {
	if m.SetAdminFn != nil {
		return m.SetAdminFn(ctx, id, isAdmin)
	}
	panic("unexpected call to MockPrincipalRepo.SetAdmin")
}

var (
	_ domain.AuditRepository     = (*MockAuditRepo)(nil)
	_ domain.Authorizer          = (*MockAuthorizer)(nil)
	_ domain.ActorResolver       = (*MockActorResolver)(nil)
	_ domain.RecordRepository    = (*MockRecordRepo)(nil)
	_ domain.PrincipalRepository = (*MockPrincipalRepo)(nil)
)
