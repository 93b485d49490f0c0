package domain

import "time"

// Audit statuses.
const (
	AuditAllowed = "ALLOWED"
	AuditDenied  = "DENIED"
	AuditError   = "ERROR"
)

// AuditEntry represents a single audit log record.
type AuditEntry struct {
	ID            string
	PrincipalName string
	Action        string
	EntityType    *string
	Operation     *string
	Detail        *string
	Status        string // "ALLOWED", "DENIED", "ERROR"
	ErrorMessage  *string
	CreatedAt     time.Time
}
