package memstore

import (
	"context"
	"time"

	"mrp-access/internal/domain"
)

// AuditStore implements domain.AuditRepository.
type AuditStore struct{ s *Store }

var _ domain.AuditRepository = (*AuditStore)(nil)

func (r *AuditStore) Insert(_ context.Context, e *domain.AuditEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := *e
	if out.ID == "" {
		out.ID = domain.NewID()
	}
	if out.CreatedAt.IsZero() {
		out.CreatedAt = r.s.now()
	}
	r.s.audit = append(r.s.audit, out)
	return nil
}

// List returns matching entries newest first.
func (r *AuditStore) List(_ context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var all []domain.AuditEntry
	for i := len(r.s.audit) - 1; i >= 0; i-- {
		e := r.s.audit[i]
		if filter.PrincipalName != nil && e.PrincipalName != *filter.PrincipalName {
			continue
		}
		if filter.Action != nil && e.Action != *filter.Action {
			continue
		}
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		if filter.Since != nil && e.CreatedAt.Before(*filter.Since) {
			continue
		}
		all = append(all, e)
	}
	return paginate(all, filter.Page), int64(len(all)), nil
}

func (r *AuditStore) PurgeOlderThan(_ context.Context, before time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	kept := r.s.audit[:0]
	var purged int64
	for _, e := range r.s.audit {
		if e.CreatedAt.Before(before) {
			purged++
			continue
		}
		kept = append(kept, e)
	}
	r.s.audit = kept
	return purged, nil
}
