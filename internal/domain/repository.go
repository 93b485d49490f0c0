package domain

import (
	"context"
	"time"
)

// PrincipalRepository provides CRUD operations for principals.
type PrincipalRepository interface {
	Create(ctx context.Context, p *Principal) (*Principal, error)
	GetByID(ctx context.Context, id string) (*Principal, error)
	GetByName(ctx context.Context, name string) (*Principal, error)
	List(ctx context.Context, page PageRequest) ([]Principal, int64, error)
	Delete(ctx context.Context, id string) error
	SetAdmin(ctx context.Context, id string, isAdmin bool) error
}

// GroupRepository provides CRUD operations for groups and membership.
type GroupRepository interface {
	Create(ctx context.Context, g *Group) (*Group, error)
	GetByID(ctx context.Context, id string) (*Group, error)
	GetByName(ctx context.Context, name string) (*Group, error)
	List(ctx context.Context, page PageRequest) ([]Group, int64, error)
	Delete(ctx context.Context, id string) error
	AddMember(ctx context.Context, m *GroupMember) error
	RemoveMember(ctx context.Context, m *GroupMember) error
	ListMembers(ctx context.Context, groupID string, page PageRequest) ([]GroupMember, int64, error)
	// ResolveGroups returns every group the principal belongs to, directly or
	// through nested groups, read as a single consistent snapshot.
	ResolveGroups(ctx context.Context, principalID string) ([]Group, error)
}

// RecordRepository stores entity records.
type RecordRepository interface {
	Create(ctx context.Context, r *Record) (*Record, error)
	Get(ctx context.Context, entity EntityType, id string) (*Record, error)
	List(ctx context.Context, filter RecordFilter) ([]Record, int64, error)
	Update(ctx context.Context, entity EntityType, id string, fields map[string]any) (*Record, error)
	Delete(ctx context.Context, entity EntityType, id string) error
}

// AuditFilter holds filter parameters for querying audit logs.
type AuditFilter struct {
	PrincipalName *string
	Action        *string
	Status        *string
	Since         *time.Time
	Page          PageRequest
}

// AuditRepository provides operations for audit log entries.
type AuditRepository interface {
	Insert(ctx context.Context, e *AuditEntry) error
	List(ctx context.Context, filter AuditFilter) ([]AuditEntry, int64, error)
	PurgeOlderThan(ctx context.Context, before time.Time) (int64, error)
}
