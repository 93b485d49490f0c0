package api

import (
	"context"
	"errors"

	"mrp-access/internal/domain"
)

// actor resolves the authenticated caller with its current group memberships.
func (h *APIHandler) actor(ctx context.Context) (domain.Actor, error) {
	p, ok := domain.PrincipalFromContext(ctx)
	if !ok || p.Name == "" {
		return domain.Actor{}, domain.ErrAccessDenied("authentication required")
	}
	return h.resolver.Resolve(ctx, p.Name)
}

func (h *APIHandler) ListRecords(ctx context.Context, req ListRecordsRequestObject) (ListRecordsResponseObject, error) {
	actor, err := h.actor(ctx)
	if err != nil {
		return nil, err
	}
	page := pageFromParams(req.Params.MaxResults, req.Params.PageToken)
	recs, total, err := h.records.List(ctx, actor, domain.RecordFilter{
		EntityType: domain.EntityType(req.Entity),
		CreatedBy:  req.Params.CreatedBy,
		Page:       page,
	})
	if err != nil {
		return nil, err
	}
	out := make([]Record, len(recs))
	for i, rec := range recs {
		out[i] = recordToAPI(rec)
	}
	npt := domain.NextPageToken(page.Offset(), page.Limit(), total)
	return ListRecords200JSONResponse{Data: out, NextPageToken: optStr(npt)}, nil
}

func (h *APIHandler) CreateRecord(ctx context.Context, req CreateRecordRequestObject) (CreateRecordResponseObject, error) {
	actor, err := h.actor(ctx)
	if err != nil {
		return nil, err
	}
	rec, err := h.records.Create(ctx, actor, domain.EntityType(req.Entity), req.Body.Fields)
	if err != nil {
		return nil, err
	}
	return CreateRecord201JSONResponse(recordToAPI(*rec)), nil
}

func (h *APIHandler) GetRecord(ctx context.Context, req GetRecordRequestObject) (GetRecordResponseObject, error) {
	actor, err := h.actor(ctx)
	if err != nil {
		return nil, err
	}
	rec, err := h.records.Get(ctx, actor, domain.EntityType(req.Entity), req.RecordId)
	if err != nil {
		switch {
		case errors.As(err, new(*domain.AccessDeniedError)):
			return GetRecord403JSONResponse{ForbiddenJSONResponse{Code: 403, Message: err.Error()}}, nil
		case errors.As(err, new(*domain.NotFoundError)):
			return GetRecord404JSONResponse{NotFoundJSONResponse{Code: 404, Message: err.Error()}}, nil
		default:
			return nil, err
		}
	}
	return GetRecord200JSONResponse(recordToAPI(*rec)), nil
}

func (h *APIHandler) UpdateRecord(ctx context.Context, req UpdateRecordRequestObject) (UpdateRecordResponseObject, error) {
	actor, err := h.actor(ctx)
	if err != nil {
		return nil, err
	}
	rec, err := h.records.Update(ctx, actor, domain.EntityType(req.Entity), req.RecordId, req.Body.Fields)
	if err != nil {
		return nil, err
	}
	return UpdateRecord200JSONResponse(recordToAPI(*rec)), nil
}

func (h *APIHandler) DeleteRecord(ctx context.Context, req DeleteRecordRequestObject) (DeleteRecordResponseObject, error) {
	actor, err := h.actor(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.records.Delete(ctx, actor, domain.EntityType(req.Entity), req.RecordId); err != nil {
		return nil, err
	}
	return DeleteRecord204Response{}, nil
}

// Authorize explains the decision without touching any record.
func (h *APIHandler) Authorize(ctx context.Context, req AuthorizeRequestObject) (AuthorizeResponseObject, error) {
	if req.Body.Entity == "" {
		return Authorize400JSONResponse{BadRequestJSONResponse{Code: 400, Message: "entity is required"}}, nil
	}
	op, err := domain.ParseOperation(req.Body.Operation)
	if err != nil {
		return Authorize400JSONResponse{BadRequestJSONResponse{Code: 400, Message: err.Error()}}, nil //nolint:nilerr // typed response encodes the error
	}
	var principal string
	if req.Body.Principal != nil {
		principal = *req.Body.Principal
	}
	d, err := h.authz.Check(ctx, principal, domain.EntityType(req.Body.Entity), op)
	if err != nil {
		return nil, err
	}
	return Authorize200JSONResponse(decisionToAPI(d)), nil
}
