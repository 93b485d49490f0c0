package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"mrp-access/internal/domain"
)

const recordColumns = `id, entity_type, fields, created_by, created_at, updated_at`

type RecordRepo struct {
	db *sql.DB
}

func NewRecordRepo(db *sql.DB) *RecordRepo {
	return &RecordRepo{db: db}
}

func scanRecord(row rowScanner) (*domain.Record, error) {
	var (
		rec                  domain.Record
		entity, fields       string
		createdAt, updatedAt string
	)
	if err := row.Scan(&rec.ID, &entity, &fields, &rec.CreatedBy, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	rec.EntityType = domain.EntityType(entity)
	rec.CreatedAt = parseTime(createdAt)
	rec.UpdatedAt = parseTime(updatedAt)
	if err := json.Unmarshal([]byte(fields), &rec.Fields); err != nil {
		return nil, fmt.Errorf("decode fields of record %s: %w", rec.ID, err)
	}
	return &rec, nil
}

func encodeFields(fields map[string]any) (string, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return "", domain.ErrValidation("fields are not JSON-encodable: %v", err)
	}
	return string(b), nil
}

func (r *RecordRepo) Create(ctx context.Context, rec *domain.Record) (*domain.Record, error) {
	fields, err := encodeFields(rec.Fields)
	if err != nil {
		return nil, err
	}
	id := rec.ID
	if id == "" {
		id = domain.NewID()
	}
	now := nowString()
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO records (id, entity_type, fields, created_by, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?) RETURNING `+recordColumns,
		id, string(rec.EntityType), fields, rec.CreatedBy, now, now)
	out, err := scanRecord(row)
	if err != nil {
		return nil, mapDBError(err)
	}
	return out, nil
}

func (r *RecordRepo) Get(ctx context.Context, entity domain.EntityType, id string) (*domain.Record, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM records WHERE entity_type = ? AND id = ?`, string(entity), id)
	rec, err := scanRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound("%s %q not found", entity, id)
		}
		return nil, mapDBError(err)
	}
	return rec, nil
}

func (r *RecordRepo) List(ctx context.Context, filter domain.RecordFilter) ([]domain.Record, int64, error) {
	where := `entity_type = ?`
	args := []any{string(filter.EntityType)}
	if filter.CreatedBy != nil {
		where += ` AND created_by = ?`
		args = append(args, *filter.CreatedBy)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Page.Limit(), filter.Page.Offset())
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+recordColumns+` FROM records WHERE `+where+` ORDER BY created_at, id LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *rec)
	}
	return out, total, rows.Err()
}

// Update merges fields into the stored record. A nil value removes the key.
func (r *RecordRepo) Update(ctx context.Context, entity domain.EntityType, id string, fields map[string]any) (*domain.Record, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback() //nolint:errcheck

	current, err := scanRecord(tx.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM records WHERE entity_type = ? AND id = ?`, string(entity), id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound("%s %q not found", entity, id)
		}
		return nil, err
	}
	if current.Fields == nil {
		current.Fields = map[string]any{}
	}
	for k, v := range fields {
		if v == nil {
			delete(current.Fields, k)
			continue
		}
		current.Fields[k] = v
	}
	encoded, err := encodeFields(current.Fields)
	if err != nil {
		return nil, err
	}

	updated, err := scanRecord(tx.QueryRowContext(ctx,
		`UPDATE records SET fields = ?, updated_at = ? WHERE entity_type = ? AND id = ? RETURNING `+recordColumns,
		encoded, nowString(), string(entity), id))
	if err != nil {
		return nil, mapDBError(err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *RecordRepo) Delete(ctx context.Context, entity domain.EntityType, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE entity_type = ? AND id = ?`, string(entity), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("%s %q not found", entity, id)
	}
	return nil
}
