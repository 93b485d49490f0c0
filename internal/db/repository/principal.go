package repository

import (
	"context"
	"database/sql"

	"mrp-access/internal/domain"
)

const principalColumns = `id, name, type, is_admin, created_at`

type PrincipalRepo struct {
	db *sql.DB
}

func NewPrincipalRepo(db *sql.DB) *PrincipalRepo {
	return &PrincipalRepo{db: db}
}

func scanPrincipal(row rowScanner) (*domain.Principal, error) {
	var (
		p         domain.Principal
		isAdmin   int64
		createdAt string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Type, &isAdmin, &createdAt); err != nil {
		return nil, err
	}
	p.IsAdmin = isAdmin != 0
	p.CreatedAt = parseTime(createdAt)
	return &p, nil
}

func (r *PrincipalRepo) Create(ctx context.Context, p *domain.Principal) (*domain.Principal, error) {
	id := p.ID
	if id == "" {
		id = domain.NewID()
	}
	typ := p.Type
	if typ == "" {
		typ = domain.PrincipalTypeUser
	}
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO principals (id, name, type, is_admin, created_at) VALUES (?, ?, ?, ?, ?)
		 RETURNING `+principalColumns,
		id, p.Name, typ, boolToInt(p.IsAdmin), nowString())
	out, err := scanPrincipal(row)
	if err != nil {
		return nil, mapDBError(err)
	}
	return out, nil
}

func (r *PrincipalRepo) GetByID(ctx context.Context, id string) (*domain.Principal, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+principalColumns+` FROM principals WHERE id = ?`, id)
	p, err := scanPrincipal(row)
	if err != nil {
		return nil, mapDBError(err)
	}
	return p, nil
}

func (r *PrincipalRepo) GetByName(ctx context.Context, name string) (*domain.Principal, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+principalColumns+` FROM principals WHERE name = ?`, name)
	p, err := scanPrincipal(row)
	if err != nil {
		return nil, mapDBError(err)
	}
	return p, nil
}

func (r *PrincipalRepo) List(ctx context.Context, page domain.PageRequest) ([]domain.Principal, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM principals`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+principalColumns+` FROM principals ORDER BY name LIMIT ? OFFSET ?`,
		page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.Principal
	for rows.Next() {
		p, err := scanPrincipal(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *p)
	}
	return out, total, rows.Err()
}

func (r *PrincipalRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM group_members WHERE member_type = 'user' AND member_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM principals WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("principal %q not found", id)
	}
	return tx.Commit()
}

func (r *PrincipalRepo) SetAdmin(ctx context.Context, id string, isAdmin bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE principals SET is_admin = ? WHERE id = ?`, boolToInt(isAdmin), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("principal %q not found", id)
	}
	return nil
}
