package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mrp-access/internal/domain"
	"mrp-access/internal/service/governance"
	"mrp-access/internal/service/records"
	"mrp-access/internal/service/security"
)

// PolicyView exposes the loaded policy table.
type PolicyView interface {
	Entities() []domain.EntityType
	Rules() []domain.PolicyRule
}

// APIHandler implements the StrictServerInterface.
type APIHandler struct {
	records    *records.RecordService
	principals *security.PrincipalService
	groups     *security.GroupService
	authz      *security.AuthorizationService
	resolver   domain.ActorResolver
	audit      *governance.AuditService
	policy     PolicyView
	logger     *slog.Logger
}

// Deps holds the services the handler needs.
type Deps struct {
	Records    *records.RecordService
	Principals *security.PrincipalService
	Groups     *security.GroupService
	Authz      *security.AuthorizationService
	Resolver   domain.ActorResolver
	Audit      *governance.AuditService
	Policy     PolicyView
	Logger     *slog.Logger
}

// NewHandler creates a new APIHandler.
func NewHandler(deps Deps) *APIHandler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &APIHandler{
		records:    deps.Records,
		principals: deps.Principals,
		groups:     deps.Groups,
		authz:      deps.Authz,
		resolver:   deps.Resolver,
		audit:      deps.Audit,
		policy:     deps.Policy,
		logger:     logger.With("component", "api"),
	}
}

var _ StrictServerInterface = (*APIHandler)(nil)

// Register adds the generated routes to r. Callers register them under /v1
// behind authentication. Errors returned by handlers become JSON Error bodies
// with the status of the domain error.
func (h *APIHandler) Register(r chi.Router) {
	strictHandler := NewStrictHandlerWithOptions(h, nil, StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  h.requestError,
		ResponseErrorHandlerFunc: h.responseError,
	})
	HandlerWithOptions(strictHandler, ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: h.requestError,
	})
}

// Healthz reports liveness.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
