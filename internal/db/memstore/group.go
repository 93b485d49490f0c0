package memstore

import (
	"context"
	"sort"

	"mrp-access/internal/domain"
)

// GroupStore implements domain.GroupRepository.
type GroupStore struct{ s *Store }

var _ domain.GroupRepository = (*GroupStore)(nil)

func (r *GroupStore) Create(_ context.Context, g *domain.Group) (*domain.Group, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.groupNames[g.Name]; exists {
		return nil, domain.ErrConflict("group %q already exists", g.Name)
	}
	out := *g
	if out.ID == "" {
		out.ID = domain.NewID()
	}
	out.CreatedAt = r.s.now()
	r.s.groups[out.ID] = out
	r.s.groupNames[out.Name] = out.ID
	return &out, nil
}

func (r *GroupStore) GetByID(_ context.Context, id string) (*domain.Group, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	g, ok := r.s.groups[id]
	if !ok {
		return nil, domain.ErrNotFound("group %q not found", id)
	}
	return &g, nil
}

func (r *GroupStore) GetByName(_ context.Context, name string) (*domain.Group, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.groupNames[name]
	if !ok {
		return nil, domain.ErrNotFound("group %q not found", name)
	}
	g := r.s.groups[id]
	return &g, nil
}

func (r *GroupStore) List(_ context.Context, page domain.PageRequest) ([]domain.Group, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := make([]domain.Group, 0, len(r.s.groups))
	for _, g := range r.s.groups {
		all = append(all, g)
	}
	sortedByName(all, func(g domain.Group) string { return g.Name })
	return paginate(all, page), int64(len(all)), nil
}

func (r *GroupStore) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	g, ok := r.s.groups[id]
	if !ok {
		return domain.ErrNotFound("group %q not found", id)
	}
	delete(r.s.groups, id)
	delete(r.s.groupNames, g.Name)
	for k := range r.s.members {
		if k.groupID == id || (k.memberType == domain.MemberTypeGroup && k.memberID == id) {
			delete(r.s.members, k)
		}
	}
	return nil
}

func (r *GroupStore) AddMember(_ context.Context, m *domain.GroupMember) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.groups[m.GroupID]; !ok {
		return domain.ErrNotFound("group %q not found", m.GroupID)
	}
	r.s.members[memberKey{m.GroupID, m.MemberType, m.MemberID}] = struct{}{}
	return nil
}

func (r *GroupStore) RemoveMember(_ context.Context, m *domain.GroupMember) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.members, memberKey{m.GroupID, m.MemberType, m.MemberID})
	return nil
}

func (r *GroupStore) ListMembers(_ context.Context, groupID string, page domain.PageRequest) ([]domain.GroupMember, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var all []domain.GroupMember
	for k := range r.s.members {
		if k.groupID == groupID {
			all = append(all, domain.GroupMember{GroupID: k.groupID, MemberType: k.memberType, MemberID: k.memberID})
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].MemberType != all[j].MemberType {
			return all[i].MemberType < all[j].MemberType
		}
		return all[i].MemberID < all[j].MemberID
	})
	return paginate(all, page), int64(len(all)), nil
}

func (r *GroupStore) ResolveGroups(_ context.Context, principalID string) ([]domain.Group, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := r.s.closureLocked(principalID)
	out := make([]domain.Group, 0, len(ids))
	for id := range ids {
		if g, ok := r.s.groups[id]; ok {
			out = append(out, g)
		}
	}
	sortedByName(out, func(g domain.Group) string { return g.Name })
	return out, nil
}
