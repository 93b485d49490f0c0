package security

import (
	"context"
	"fmt"

	"mrp-access/internal/domain"
	"mrp-access/internal/service/auditutil"
)

// GroupService provides group management operations. Every write requires an
// admin caller and is audited.
type GroupService struct {
	repo       domain.GroupRepository
	principals domain.PrincipalRepository
	audit      domain.AuditRepository
}

// NewGroupService creates a new GroupService.
func NewGroupService(repo domain.GroupRepository, principals domain.PrincipalRepository, audit domain.AuditRepository) *GroupService {
	return &GroupService{repo: repo, principals: principals, audit: audit}
}

// Create validates and persists a new group.
func (s *GroupService) Create(ctx context.Context, req domain.CreateGroupRequest) (*domain.Group, error) {
	if err := s.checkAdmin(ctx, "CREATE_GROUP"); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	g, err := s.repo.Create(ctx, &domain.Group{Name: req.Name, Description: req.Description})
	if err != nil {
		return nil, err
	}
	auditutil.LogAllowed(ctx, s.audit, callerName(ctx), "CREATE_GROUP", g.Name)
	return g, nil
}

// GetByID returns a group by ID.
func (s *GroupService) GetByID(ctx context.Context, id string) (*domain.Group, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByName returns a group by name.
func (s *GroupService) GetByName(ctx context.Context, name string) (*domain.Group, error) {
	return s.repo.GetByName(ctx, name)
}

// List returns a paginated list of groups.
func (s *GroupService) List(ctx context.Context, page domain.PageRequest) ([]domain.Group, int64, error) {
	return s.repo.List(ctx, page)
}

// Delete removes a group by ID.
func (s *GroupService) Delete(ctx context.Context, id string) error {
	if err := s.checkAdmin(ctx, "DELETE_GROUP"); err != nil {
		return err
	}
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	auditutil.LogAllowed(ctx, s.audit, callerName(ctx), "DELETE_GROUP", g.Name)
	return nil
}

// AddMember adds a principal or a nested group to a group. Adding an existing
// membership succeeds without change.
func (s *GroupService) AddMember(ctx context.Context, req domain.AddGroupMemberRequest) error {
	if err := s.checkAdmin(ctx, "ADD_GROUP_MEMBER"); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.checkMemberExists(ctx, req.MemberType, req.MemberID); err != nil {
		return err
	}
	m := &domain.GroupMember{GroupID: req.GroupID, MemberType: req.MemberType, MemberID: req.MemberID}
	if err := s.repo.AddMember(ctx, m); err != nil {
		return err
	}
	auditutil.LogAllowed(ctx, s.audit, callerName(ctx), "ADD_GROUP_MEMBER", memberDetail(m))
	return nil
}

// RemoveMember removes a principal or nested group from a group. Removing a
// membership that does not exist succeeds without change.
func (s *GroupService) RemoveMember(ctx context.Context, req domain.RemoveGroupMemberRequest) error {
	if err := s.checkAdmin(ctx, "REMOVE_GROUP_MEMBER"); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}
	m := &domain.GroupMember{GroupID: req.GroupID, MemberType: req.MemberType, MemberID: req.MemberID}
	if err := s.repo.RemoveMember(ctx, m); err != nil {
		return err
	}
	auditutil.LogAllowed(ctx, s.audit, callerName(ctx), "REMOVE_GROUP_MEMBER", memberDetail(m))
	return nil
}

// ListMembers returns a paginated list of members in a group.
func (s *GroupService) ListMembers(ctx context.Context, groupID string, page domain.PageRequest) ([]domain.GroupMember, int64, error) {
	if _, err := s.repo.GetByID(ctx, groupID); err != nil {
		return nil, 0, err
	}
	return s.repo.ListMembers(ctx, groupID, page)
}

func (s *GroupService) checkAdmin(ctx context.Context, action string) error {
	if err := requireAdmin(ctx); err != nil {
		auditutil.LogDenied(ctx, s.audit, callerName(ctx), action, err.Error())
		return err
	}
	return nil
}

func (s *GroupService) checkMemberExists(ctx context.Context, memberType, memberID string) error {
	var err error
	switch memberType {
	case domain.MemberTypeUser:
		_, err = s.principals.GetByID(ctx, memberID)
	case domain.MemberTypeGroup:
		_, err = s.repo.GetByID(ctx, memberID)
	}
	return err
}

func memberDetail(m *domain.GroupMember) string {
	return fmt.Sprintf("group=%s %s=%s", m.GroupID, m.MemberType, m.MemberID)
}
