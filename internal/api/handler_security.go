package api

import (
	"context"
	"errors"

	"mrp-access/internal/domain"
)

// === Principals ===

func (h *APIHandler) ListPrincipals(ctx context.Context, req ListPrincipalsRequestObject) (ListPrincipalsResponseObject, error) {
	page := pageFromParams(req.Params.MaxResults, req.Params.PageToken)
	ps, total, err := h.principals.List(ctx, page)
	if err != nil {
		return nil, err
	}
	out := make([]Principal, len(ps))
	for i, p := range ps {
		out[i] = principalToAPI(p)
	}
	npt := domain.NextPageToken(page.Offset(), page.Limit(), total)
	return ListPrincipals200JSONResponse{Data: out, NextPageToken: optStr(npt)}, nil
}

func (h *APIHandler) CreatePrincipal(ctx context.Context, req CreatePrincipalRequestObject) (CreatePrincipalResponseObject, error) {
	in := domain.CreatePrincipalRequest{Name: req.Body.Name}
	if req.Body.Type != nil {
		in.Type = *req.Body.Type
	}
	if req.Body.IsAdmin != nil {
		in.IsAdmin = *req.Body.IsAdmin
	}
	p, err := h.principals.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return CreatePrincipal201JSONResponse(principalToAPI(*p)), nil
}

// === Groups ===

func (h *APIHandler) ListGroups(ctx context.Context, req ListGroupsRequestObject) (ListGroupsResponseObject, error) {
	page := pageFromParams(req.Params.MaxResults, req.Params.PageToken)
	gs, total, err := h.groups.List(ctx, page)
	if err != nil {
		return nil, err
	}
	out := make([]Group, len(gs))
	for i, g := range gs {
		out[i] = groupToAPI(g)
	}
	npt := domain.NextPageToken(page.Offset(), page.Limit(), total)
	return ListGroups200JSONResponse{Data: out, NextPageToken: optStr(npt)}, nil
}

func (h *APIHandler) CreateGroup(ctx context.Context, req CreateGroupRequestObject) (CreateGroupResponseObject, error) {
	in := domain.CreateGroupRequest{Name: req.Body.Name}
	if req.Body.Description != nil {
		in.Description = *req.Body.Description
	}
	g, err := h.groups.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return CreateGroup201JSONResponse(groupToAPI(*g)), nil
}

func (h *APIHandler) GetGroup(ctx context.Context, req GetGroupRequestObject) (GetGroupResponseObject, error) {
	g, err := h.groups.GetByID(ctx, req.GroupId)
	if err != nil {
		switch {
		case errors.As(err, new(*domain.NotFoundError)):
			return GetGroup404JSONResponse{NotFoundJSONResponse{Code: 404, Message: err.Error()}}, nil
		default:
			return nil, err
		}
	}
	return GetGroup200JSONResponse(groupToAPI(*g)), nil
}

func (h *APIHandler) DeleteGroup(ctx context.Context, req DeleteGroupRequestObject) (DeleteGroupResponseObject, error) {
	if err := h.groups.Delete(ctx, req.GroupId); err != nil {
		return nil, err
	}
	return DeleteGroup204Response{}, nil
}

func (h *APIHandler) ListGroupMembers(ctx context.Context, req ListGroupMembersRequestObject) (ListGroupMembersResponseObject, error) {
	page := pageFromParams(req.Params.MaxResults, req.Params.PageToken)
	ms, total, err := h.groups.ListMembers(ctx, req.GroupId, page)
	if err != nil {
		return nil, err
	}
	out := make([]GroupMember, len(ms))
	for i, m := range ms {
		out[i] = groupMemberToAPI(m)
	}
	npt := domain.NextPageToken(page.Offset(), page.Limit(), total)
	return ListGroupMembers200JSONResponse{Data: out, NextPageToken: optStr(npt)}, nil
}

func (h *APIHandler) AddGroupMember(ctx context.Context, req AddGroupMemberRequestObject) (AddGroupMemberResponseObject, error) {
	memberID, err := h.memberID(ctx, *req.Body)
	if err != nil {
		return nil, err
	}
	if err := h.groups.AddMember(ctx, domain.AddGroupMemberRequest{
		GroupID:    req.GroupId,
		MemberType: req.Body.MemberType,
		MemberID:   memberID,
	}); err != nil {
		return nil, err
	}
	return AddGroupMember204Response{}, nil
}

func (h *APIHandler) RemoveGroupMember(ctx context.Context, req RemoveGroupMemberRequestObject) (RemoveGroupMemberResponseObject, error) {
	memberID, err := h.memberID(ctx, *req.Body)
	if err != nil {
		return nil, err
	}
	if err := h.groups.RemoveMember(ctx, domain.RemoveGroupMemberRequest{
		GroupID:    req.GroupId,
		MemberType: req.Body.MemberType,
		MemberID:   memberID,
	}); err != nil {
		return nil, err
	}
	return RemoveGroupMember204Response{}, nil
}

// memberID returns member_id, or resolves member_name to an ID when
// member_id is absent.
func (h *APIHandler) memberID(ctx context.Context, body GroupMemberRequest) (string, error) {
	if body.MemberId != nil && *body.MemberId != "" {
		return *body.MemberId, nil
	}
	if body.MemberName == nil || *body.MemberName == "" {
		return "", nil
	}
	switch body.MemberType {
	case domain.MemberTypeUser:
		p, err := h.principals.GetByName(ctx, *body.MemberName)
		if err != nil {
			return "", err
		}
		return p.ID, nil
	case domain.MemberTypeGroup:
		g, err := h.groups.GetByName(ctx, *body.MemberName)
		if err != nil {
			return "", err
		}
		return g.ID, nil
	}
	return "", nil
}
