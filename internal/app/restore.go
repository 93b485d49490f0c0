package app

import (
	"context"
	"fmt"
	"log/slog"

	"mrp-access/internal/declarative"
	"mrp-access/internal/domain"
)

// restoreDirectory syncs the principals and groups declared in path into the
// store. A malformed file aborts startup.
func restoreDirectory(ctx context.Context, path string, principals domain.PrincipalRepository, groups domain.GroupRepository, logger *slog.Logger) error {
	d, err := declarative.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load directory: %w", err)
	}
	plan, err := declarative.Sync(ctx, d, principals, groups)
	if err != nil {
		return fmt.Errorf("sync directory %s: %w", path, err)
	}
	if plan.HasChanges() && logger != nil {
		s := plan.Summary()
		logger.Info("directory synced", "file", path, "creates", s.Creates, "updates", s.Updates)
	}
	return nil
}
