package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"mrp-access/internal/domain"
)

const auditColumns = `id, principal_name, action, entity_type, operation, detail, status, error_message, created_at`

type AuditRepo struct {
	db *sql.DB
}

func NewAuditRepo(db *sql.DB) *AuditRepo {
	return &AuditRepo{db: db}
}

func (r *AuditRepo) Insert(ctx context.Context, e *domain.AuditEntry) error {
	id := e.ID
	if id == "" {
		id = domain.NewID()
	}
	created := e.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_log (`+auditColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, e.PrincipalName, e.Action,
		nullString(e.EntityType), nullString(e.Operation), nullString(e.Detail),
		e.Status, nullString(e.ErrorMessage), created.UTC().Format(timeLayout))
	return err
}

func (r *AuditRepo) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, int64, error) {
	var (
		conds []string
		args  []any
	)
	if filter.PrincipalName != nil {
		conds = append(conds, "principal_name = ?")
		args = append(args, *filter.PrincipalName)
	}
	if filter.Action != nil {
		conds = append(conds, "action = ?")
		args = append(args, *filter.Action)
	}
	if filter.Status != nil {
		conds = append(conds, "status = ?")
		args = append(args, *filter.Status)
	}
	if filter.Since != nil {
		conds = append(conds, "created_at >= ?")
		args = append(args, filter.Since.UTC().Format(timeLayout))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_log`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Page.Limit(), filter.Page.Offset())
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+auditColumns+` FROM audit_log`+where+` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close() //nolint:errcheck

	var entries []domain.AuditEntry
	for rows.Next() {
		var (
			e                          domain.AuditEntry
			entity, op, detail, errMsg sql.NullString
			createdAt                  string
		)
		if err := rows.Scan(&e.ID, &e.PrincipalName, &e.Action, &entity, &op, &detail, &e.Status, &errMsg, &createdAt); err != nil {
			return nil, 0, err
		}
		e.EntityType = stringPtr(entity)
		e.Operation = stringPtr(op)
		e.Detail = stringPtr(detail)
		e.ErrorMessage = stringPtr(errMsg)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	return entries, total, rows.Err()
}

// PurgeOlderThan deletes audit entries created before the given time.
func (r *AuditRepo) PurgeOlderThan(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM audit_log WHERE created_at < ?`, before.UTC().Format(timeLayout))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
