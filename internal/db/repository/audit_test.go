package repository

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldb "mrp-access/internal/db"
	"mrp-access/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestAuditRepo_InsertListFilter(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	repo := NewAuditRepo(writeDB)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &domain.AuditEntry{
		PrincipalName: "public", Action: "CREATE_RECORD", Status: domain.AuditDenied,
		EntityType: strPtr("manufacturing_order"), Operation: strPtr("create"),
		ErrorMessage: strPtr("access denied"),
	}))
	require.NoError(t, repo.Insert(ctx, &domain.AuditEntry{
		PrincipalName: "admin", Action: "CREATE_RECORD", Status: domain.AuditAllowed,
	}))

	entries, total, err := repo.List(ctx, domain.AuditFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, entries, 2)

	entries, total, err = repo.List(ctx, domain.AuditFilter{Status: strPtr(domain.AuditDenied)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, entries, 1)
	assert.Equal(t, "public", entries[0].PrincipalName)
	require.NotNil(t, entries[0].EntityType)
	assert.Equal(t, "manufacturing_order", *entries[0].EntityType)
	assert.Nil(t, entries[0].Detail)

	_, total, err = repo.List(ctx, domain.AuditFilter{PrincipalName: strPtr("admin"), Action: strPtr("CREATE_RECORD")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestAuditRepo_PurgeOlderThan(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	repo := NewAuditRepo(writeDB)
	ctx := context.Background()

	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, repo.Insert(ctx, &domain.AuditEntry{PrincipalName: "a", Action: "X", Status: domain.AuditAllowed, CreatedAt: old}))
	require.NoError(t, repo.Insert(ctx, &domain.AuditEntry{PrincipalName: "b", Action: "X", Status: domain.AuditAllowed}))

	n, err := repo.PurgeOlderThan(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	since := time.Now().Add(-time.Hour)
	entries, total, err := repo.List(ctx, domain.AuditFilter{Since: &since})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "b", entries[0].PrincipalName)
}
