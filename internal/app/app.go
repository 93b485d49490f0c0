// Package app provides application-level wiring and dependency injection
// for the access gate server.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"mrp-access/internal/api"
	"mrp-access/internal/config"
	"mrp-access/internal/db/repository"
	"mrp-access/internal/policy"
	"mrp-access/internal/service/governance"
	"mrp-access/internal/service/records"
	"mrp-access/internal/service/security"
)

// Deps holds the external dependencies that main() must provide.
// These are things the app package cannot (or should not) create itself:
// database handles, config and the loaded policy.
type Deps struct {
	Cfg     *config.Config
	WriteDB *sql.DB
	ReadDB  *sql.DB
	Policy  *policy.Table
	Logger  *slog.Logger
}

// Services groups all service pointers that the API handler and router need.
type Services struct {
	Records   *records.RecordService
	Principal *security.PrincipalService
	Group     *security.GroupService
	Authz     *security.AuthorizationService
	Audit     *governance.AuditService
}

// App holds the fully-wired application: gate, services, and the
// repositories needed for router setup (PrincipalRepo for auth middleware).
type App struct {
	Services      Services
	Gate          *security.AccessGate
	Resolver      *security.Resolver
	Policy        *policy.Table
	PrincipalRepo *repository.PrincipalRepo
	Retention     *governance.RetentionScheduler
}

// New wires all repositories and services from the provided deps. It seeds
// the built-in groups and bootstrap admin, then syncs the optional directory
// file.
func New(ctx context.Context, deps Deps) (*App, error) {
	cfg := deps.Cfg
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// === Repositories (write-pool) ===
	principalRepo := repository.NewPrincipalRepo(deps.WriteDB)
	groupRepo := repository.NewGroupRepo(deps.WriteDB)
	recordRepo := repository.NewRecordRepo(deps.WriteDB)
	auditRepo := repository.NewAuditRepo(deps.WriteDB)

	// === Seed built-in groups ===
	seeded, err := Seed(ctx, cfg.BootstrapAdmin, principalRepo, groupRepo)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	if seeded {
		logger.Info("metastore seeded", "admin", cfg.BootstrapAdmin)
	}
	if cfg.DirectoryFile != "" {
		if err := restoreDirectory(ctx, cfg.DirectoryFile, principalRepo, groupRepo, logger); err != nil {
			return nil, err
		}
	}
	missing, err := MissingPolicyGroups(ctx, deps.Policy, groupRepo)
	if err != nil {
		return nil, err
	}
	for _, name := range missing {
		logger.Warn("policy references a group that does not exist; its rules allow nobody", "group", name)
	}

	// === Authorization ===
	gate := security.NewAccessGate(deps.Policy)
	resolver := security.NewResolver(principalRepo, groupRepo)
	authzSvc := security.NewAuthorizationService(gate, resolver)

	// === Core services ===
	recordSvc := records.NewRecordService(records.Deps{
		Repo:   recordRepo,
		Gate:   gate,
		Audit:  auditRepo,
		Logger: logger,
	})
	principalSvc := security.NewPrincipalService(principalRepo, auditRepo)
	groupSvc := security.NewGroupService(groupRepo, principalRepo, auditRepo)
	auditSvc := governance.NewAuditService(auditRepo, cfg.AuditRetention)

	retention, err := governance.NewRetentionScheduler(auditSvc, cfg.AuditPurgeSchedule, logger.With("component", "audit-retention"))
	if err != nil {
		return nil, err
	}

	return &App{
		Services: Services{
			Records:   recordSvc,
			Principal: principalSvc,
			Group:     groupSvc,
			Authz:     authzSvc,
			Audit:     auditSvc,
		},
		Gate:          gate,
		Resolver:      resolver,
		Policy:        deps.Policy,
		PrincipalRepo: repository.NewPrincipalRepo(deps.ReadDB),
		Retention:     retention,
	}, nil
}

// Handler returns the API handler over the wired services.
func (a *App) Handler(logger *slog.Logger) *api.APIHandler {
	return api.NewHandler(api.Deps{
		Records:    a.Services.Records,
		Principals: a.Services.Principal,
		Groups:     a.Services.Group,
		Authz:      a.Services.Authz,
		Resolver:   a.Resolver,
		Audit:      a.Services.Audit,
		Policy:     a.Policy,
		Logger:     logger,
	})
}
