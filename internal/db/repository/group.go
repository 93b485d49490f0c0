package repository

import (
	"context"
	"database/sql"

	"mrp-access/internal/domain"
)

const groupColumns = `id, name, description, created_at`

type GroupRepo struct {
	db *sql.DB
}

func NewGroupRepo(db *sql.DB) *GroupRepo {
	return &GroupRepo{db: db}
}

func scanGroup(row rowScanner) (*domain.Group, error) {
	var (
		g         domain.Group
		desc      sql.NullString
		createdAt string
	)
	if err := row.Scan(&g.ID, &g.Name, &desc, &createdAt); err != nil {
		return nil, err
	}
	g.Description = desc.String
	g.CreatedAt = parseTime(createdAt)
	return &g, nil
}

func (r *GroupRepo) Create(ctx context.Context, g *domain.Group) (*domain.Group, error) {
	id := g.ID
	if id == "" {
		id = domain.NewID()
	}
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO groups (id, name, description, created_at) VALUES (?, ?, ?, ?)
		 RETURNING `+groupColumns,
		id, g.Name, sql.NullString{String: g.Description, Valid: g.Description != ""}, nowString())
	out, err := scanGroup(row)
	if err != nil {
		return nil, mapDBError(err)
	}
	return out, nil
}

func (r *GroupRepo) GetByID(ctx context.Context, id string) (*domain.Group, error) {
	g, err := scanGroup(r.db.QueryRowContext(ctx, `SELECT `+groupColumns+` FROM groups WHERE id = ?`, id))
	if err != nil {
		return nil, mapDBError(err)
	}
	return g, nil
}

func (r *GroupRepo) GetByName(ctx context.Context, name string) (*domain.Group, error) {
	g, err := scanGroup(r.db.QueryRowContext(ctx, `SELECT `+groupColumns+` FROM groups WHERE name = ?`, name))
	if err != nil {
		return nil, mapDBError(err)
	}
	return g, nil
}

func (r *GroupRepo) List(ctx context.Context, page domain.PageRequest) ([]domain.Group, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM groups`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+groupColumns+` FROM groups ORDER BY name LIMIT ? OFFSET ?`,
		page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, err
	}
	groups, err := collectGroups(rows)
	if err != nil {
		return nil, 0, err
	}
	return groups, total, nil
}

func collectGroups(rows *sql.Rows) ([]domain.Group, error) {
	defer rows.Close() //nolint:errcheck
	var out []domain.Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *g)
	}
	return out, rows.Err()
}

// Delete removes the group, its memberships, and its membership in other groups.
func (r *GroupRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM group_members WHERE member_type = 'group' AND member_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM groups WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("group %q not found", id)
	}
	return tx.Commit()
}

func (r *GroupRepo) AddMember(ctx context.Context, m *domain.GroupMember) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO group_members (group_id, member_type, member_id) VALUES (?, ?, ?)
		 ON CONFLICT DO NOTHING`,
		m.GroupID, m.MemberType, m.MemberID)
	if err != nil && isForeignKeyError(err) {
		return domain.ErrNotFound("group %q not found", m.GroupID)
	}
	return mapDBError(err)
}

func (r *GroupRepo) RemoveMember(ctx context.Context, m *domain.GroupMember) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM group_members WHERE group_id = ? AND member_type = ? AND member_id = ?`,
		m.GroupID, m.MemberType, m.MemberID)
	return err
}

func (r *GroupRepo) ListMembers(ctx context.Context, groupID string, page domain.PageRequest) ([]domain.GroupMember, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM group_members WHERE group_id = ?`, groupID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT group_id, member_type, member_id FROM group_members
		 WHERE group_id = ? ORDER BY member_type, member_id LIMIT ? OFFSET ?`,
		groupID, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.GroupMember
	for rows.Next() {
		var m domain.GroupMember
		if err := rows.Scan(&m.GroupID, &m.MemberType, &m.MemberID); err != nil {
			return nil, 0, err
		}
		out = append(out, m)
	}
	return out, total, rows.Err()
}

// resolveGroupsSQL walks group nesting upward from the principal's direct
// memberships. UNION (not UNION ALL) stops on cycles.
const resolveGroupsSQL = `
WITH RECURSIVE member_of(group_id) AS (
    SELECT group_id FROM group_members WHERE member_type = 'user' AND member_id = ?
    UNION
    SELECT gm.group_id FROM group_members gm
    JOIN member_of mo ON gm.member_type = 'group' AND gm.member_id = mo.group_id
)
SELECT ` + groupColumns + ` FROM groups WHERE id IN (SELECT group_id FROM member_of) ORDER BY name`

// ResolveGroups returns the transitive group closure for a principal using a
// single statement, so concurrent membership writes are never half-observed.
func (r *GroupRepo) ResolveGroups(ctx context.Context, principalID string) ([]domain.Group, error) {
	rows, err := r.db.QueryContext(ctx, resolveGroupsSQL, principalID)
	if err != nil {
		return nil, err
	}
	return collectGroups(rows)
}
