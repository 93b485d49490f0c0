// Package governance implements audit log services.
package governance

import (
	"context"
	"fmt"
	"time"

	"mrp-access/internal/domain"
)

// AuditService provides audit log operations.
type AuditService struct {
	repo      domain.AuditRepository
	retention time.Duration
	now       func() time.Time
}

// NewAuditService creates a new AuditService. Entries older than retention
// are removed by Purge; a non-positive retention disables purging.
func NewAuditService(repo domain.AuditRepository, retention time.Duration) *AuditService {
	return &AuditService{repo: repo, retention: retention, now: time.Now}
}

// List returns a filtered, paginated list of audit log entries. Requires admin privileges.
func (s *AuditService) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, int64, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, 0, err
	}
	return s.repo.List(ctx, filter)
}

// Purge deletes entries older than the retention window and returns how many
// were removed.
func (s *AuditService) Purge(ctx context.Context) (int64, error) {
	if s.retention <= 0 {
		return 0, nil
	}
	n, err := s.repo.PurgeOlderThan(ctx, s.now().Add(-s.retention))
	if err != nil {
		return 0, fmt.Errorf("purge audit log: %w", err)
	}
	return n, nil
}
