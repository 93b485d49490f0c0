package governance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// RetentionScheduler runs AuditService.Purge on a cron schedule.
type RetentionScheduler struct {
	cron   *cron.Cron
	svc    *AuditService
	logger *slog.Logger
}

// NewRetentionScheduler validates schedule and registers the purge job.
func NewRetentionScheduler(svc *AuditService, schedule string, logger *slog.Logger) (*RetentionScheduler, error) {
	s := &RetentionScheduler{
		cron:   cron.New(),
		svc:    svc,
		logger: logger,
	}
	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return nil, fmt.Errorf("invalid audit purge schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start starts the cron scheduler.
func (s *RetentionScheduler) Start() {
	s.cron.Start()
	s.logger.Info("audit retention scheduler started")
}

// Stop stops the scheduler and waits for a running purge to finish.
func (s *RetentionScheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("audit retention scheduler stopped")
}

func (s *RetentionScheduler) run() {
	n, err := s.svc.Purge(context.Background())
	if err != nil {
		s.logger.Warn("audit purge failed", "error", err)
		return
	}
	if n > 0 {
		s.logger.Info("audit log purged", "entries", n)
	}
}
