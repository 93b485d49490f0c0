package memstore

import (
	"context"
	"encoding/json"
	"sort"

	"mrp-access/internal/domain"
)

// RecordStore implements domain.RecordRepository.
type RecordStore struct{ s *Store }

var _ domain.RecordRepository = (*RecordStore)(nil)

// cloneFields deep-copies fields through JSON so stored records share no
// state with callers, matching what the SQLite backend returns.
func cloneFields(fields map[string]any) (map[string]any, error) {
	out := map[string]any{}
	if fields == nil {
		return out, nil
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, domain.ErrValidation("fields are not valid JSON: %v", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RecordStore) Create(_ context.Context, rec *domain.Record) (*domain.Record, error) {
	fields, err := cloneFields(rec.Fields)
	if err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := *rec
	if out.ID == "" {
		out.ID = domain.NewID()
	}
	if _, exists := r.s.records[out.ID]; exists {
		return nil, domain.ErrConflict("record %q already exists", out.ID)
	}
	out.Fields = fields
	out.CreatedAt = r.s.now()
	out.UpdatedAt = out.CreatedAt
	r.s.records[out.ID] = out
	return copyRecord(out), nil
}

func (r *RecordStore) Get(_ context.Context, entity domain.EntityType, id string) (*domain.Record, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.records[id]
	if !ok || rec.EntityType != entity {
		return nil, domain.ErrNotFound("%s %q not found", entity, id)
	}
	return copyRecord(rec), nil
}

func (r *RecordStore) List(_ context.Context, filter domain.RecordFilter) ([]domain.Record, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var all []domain.Record
	for _, rec := range r.s.records {
		if rec.EntityType != filter.EntityType {
			continue
		}
		if filter.CreatedBy != nil && rec.CreatedBy != *filter.CreatedBy {
			continue
		}
		all = append(all, *copyRecord(rec))
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})
	return paginate(all, filter.Page), int64(len(all)), nil
}

func (r *RecordStore) Update(_ context.Context, entity domain.EntityType, id string, fields map[string]any) (*domain.Record, error) {
	patch, err := cloneFields(fields)
	if err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.records[id]
	if !ok || rec.EntityType != entity {
		return nil, domain.ErrNotFound("%s %q not found", entity, id)
	}
	merged := make(map[string]any, len(rec.Fields)+len(patch))
	for k, v := range rec.Fields {
		merged[k] = v
	}
	for k, v := range patch {
		if v == nil {
			delete(merged, k)
			continue
		}
		merged[k] = v
	}
	rec.Fields = merged
	rec.UpdatedAt = r.s.now()
	r.s.records[id] = rec
	return copyRecord(rec), nil
}

func (r *RecordStore) Delete(_ context.Context, entity domain.EntityType, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.records[id]
	if !ok || rec.EntityType != entity {
		return domain.ErrNotFound("%s %q not found", entity, id)
	}
	delete(r.s.records, id)
	return nil
}

func copyRecord(rec domain.Record) *domain.Record {
	out := rec
	out.Fields = make(map[string]any, len(rec.Fields))
	for k, v := range rec.Fields {
		out.Fields[k] = v
	}
	return &out
}
