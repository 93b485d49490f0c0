package api

import (
	"context"

	"mrp-access/internal/domain"
)

func (h *APIHandler) ListAuditLogs(ctx context.Context, req ListAuditLogsRequestObject) (ListAuditLogsResponseObject, error) {
	page := pageFromParams(req.Params.MaxResults, req.Params.PageToken)
	entries, total, err := h.audit.List(ctx, domain.AuditFilter{
		PrincipalName: req.Params.PrincipalName,
		Action:        req.Params.Action,
		Status:        req.Params.Status,
		Since:         req.Params.Since,
		Page:          page,
	})
	if err != nil {
		return nil, err
	}
	out := make([]AuditEntry, len(entries))
	for i, e := range entries {
		out[i] = auditEntryToAPI(e)
	}
	npt := domain.NextPageToken(page.Offset(), page.Limit(), total)
	return ListAuditLogs200JSONResponse{Data: out, NextPageToken: optStr(npt)}, nil
}

func (h *APIHandler) GetPolicy(_ context.Context, _ GetPolicyRequestObject) (GetPolicyResponseObject, error) {
	return GetPolicy200JSONResponse(policyToAPI(h.policy.Entities(), h.policy.Rules())), nil
}
