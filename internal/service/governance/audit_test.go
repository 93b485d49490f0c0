package governance

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrp-access/internal/domain"
)

func TestAuditService_List(t *testing.T) {
	t.Run("happy_path", func(t *testing.T) {
		expected := []domain.AuditEntry{
			{ID: "ae-1", PrincipalName: "alice", Action: "CREATE_RECORD", Status: domain.AuditAllowed, CreatedAt: time.Now()},
			{ID: "ae-2", PrincipalName: "bob", Action: "CREATE_RECORD", Status: domain.AuditDenied, CreatedAt: time.Now()},
		}
		repo := &mockAuditRepo{
			ListFn: func(_ context.Context, _ domain.AuditFilter) ([]domain.AuditEntry, int64, error) {
				return expected, 2, nil
			},
		}
		svc := NewAuditService(repo, 0)

		entries, total, err := svc.List(adminCtx(), domain.AuditFilter{})
		require.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, int64(2), total)
		assert.Equal(t, "ae-1", entries[0].ID)
	})

	t.Run("with_filters", func(t *testing.T) {
		principalName := "alice"
		status := domain.AuditDenied
		repo := &mockAuditRepo{
			ListFn: func(_ context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, int64, error) {
				assert.Equal(t, &principalName, filter.PrincipalName)
				assert.Equal(t, &status, filter.Status)
				return []domain.AuditEntry{{ID: "ae-1", PrincipalName: "alice", Status: status}}, 1, nil
			},
		}
		svc := NewAuditService(repo, 0)

		entries, total, err := svc.List(adminCtx(), domain.AuditFilter{PrincipalName: &principalName, Status: &status})
		require.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, int64(1), total)
	})

	t.Run("repo_error", func(t *testing.T) {
		repo := &mockAuditRepo{
			ListFn: func(_ context.Context, _ domain.AuditFilter) ([]domain.AuditEntry, int64, error) {
				return nil, 0, errTest
			},
		}
		svc := NewAuditService(repo, 0)

		_, _, err := svc.List(adminCtx(), domain.AuditFilter{})
		assert.ErrorIs(t, err, errTest)
	})
}

func TestAuditService_List_RequiresAdmin(t *testing.T) {
	svc := NewAuditService(&mockAuditRepo{}, 0)

	_, _, err := svc.List(nonAdminCtx(), domain.AuditFilter{})
	var accessDenied *domain.AccessDeniedError
	require.ErrorAs(t, err, &accessDenied)

	_, _, err = svc.List(context.Background(), domain.AuditFilter{})
	require.ErrorAs(t, err, &accessDenied)
}

func TestAuditService_Purge(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var cutoff time.Time
	repo := &mockAuditRepo{
		PurgeOlderThanFn: func(_ context.Context, before time.Time) (int64, error) {
			cutoff = before
			return 3, nil
		},
	}
	svc := NewAuditService(repo, 24*time.Hour)
	svc.now = func() time.Time { return now }

	n, err := svc.Purge(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, now.Add(-24*time.Hour), cutoff)
}

func TestAuditService_Purge_Disabled(t *testing.T) {
	// A call on the repo would panic.
	svc := NewAuditService(&mockAuditRepo{}, 0)
	n, err := svc.Purge(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAuditService_Purge_Error(t *testing.T) {
	repo := &mockAuditRepo{
		PurgeOlderThanFn: func(context.Context, time.Time) (int64, error) { return 0, errTest },
	}
	_, err := NewAuditService(repo, time.Hour).Purge(context.Background())
	assert.ErrorIs(t, err, errTest)
}

func TestNewRetentionScheduler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewAuditService(&mockAuditRepo{}, 0)

	s, err := NewRetentionScheduler(svc, "@daily", logger)
	require.NoError(t, err)
	s.Start()
	s.Stop()

	_, err = NewRetentionScheduler(svc, "not a schedule", logger)
	require.Error(t, err)
}

func TestRetentionScheduler_Run(t *testing.T) {
	calls := 0
	repo := &mockAuditRepo{
		PurgeOlderThanFn: func(context.Context, time.Time) (int64, error) {
			calls++
			return 1, nil
		},
	}
	s, err := NewRetentionScheduler(NewAuditService(repo, time.Hour), "@hourly", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	s.run()
	assert.Equal(t, 1, calls)
}
