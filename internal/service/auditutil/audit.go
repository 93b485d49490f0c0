// Package auditutil records access decisions in the audit log.
package auditutil

import (
	"context"
	"errors"

	"mrp-access/internal/domain"
)

// LogAllowed records a successful administrative action.
func LogAllowed(ctx context.Context, audit domain.AuditRepository, principal, action, detail string) {
	insert(ctx, audit, &domain.AuditEntry{
		PrincipalName: principal,
		Action:        action,
		Status:        domain.AuditAllowed,
		Detail:        optional(detail),
	})
}

// LogDenied records an administrative action that was refused.
func LogDenied(ctx context.Context, audit domain.AuditRepository, principal, action, detail string) {
	insert(ctx, audit, &domain.AuditEntry{
		PrincipalName: principal,
		Action:        action,
		Status:        domain.AuditDenied,
		Detail:        optional(detail),
	})
}

// Access describes a record operation checked against the policy table.
type Access struct {
	Principal string
	Action    string
	Entity    domain.EntityType
	Operation domain.Operation
	Detail    string
}

// LogAccess records the outcome of a record operation. A nil err is ALLOWED,
// an AccessDeniedError is DENIED and anything else is ERROR.
func LogAccess(ctx context.Context, audit domain.AuditRepository, a Access, err error) {
	entity := string(a.Entity)
	op := string(a.Operation)
	e := &domain.AuditEntry{
		PrincipalName: a.Principal,
		Action:        a.Action,
		EntityType:    &entity,
		Operation:     &op,
		Detail:        optional(a.Detail),
		Status:        domain.AuditAllowed,
	}
	if err != nil {
		msg := err.Error()
		e.ErrorMessage = &msg
		e.Status = domain.AuditError
		var denied *domain.AccessDeniedError
		if errors.As(err, &denied) {
			e.Status = domain.AuditDenied
		}
	}
	insert(ctx, audit, e)
}

func insert(ctx context.Context, audit domain.AuditRepository, e *domain.AuditEntry) {
	if audit == nil {
		return
	}
	_ = audit.Insert(ctx, e)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
