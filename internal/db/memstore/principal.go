package memstore

import (
	"context"

	"mrp-access/internal/domain"
)

// PrincipalStore implements domain.PrincipalRepository.
type PrincipalStore struct{ s *Store }

var _ domain.PrincipalRepository = (*PrincipalStore)(nil)

func (r *PrincipalStore) Create(_ context.Context, p *domain.Principal) (*domain.Principal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.principalNames[p.Name]; exists {
		return nil, domain.ErrConflict("principal %q already exists", p.Name)
	}
	out := *p
	if out.ID == "" {
		out.ID = domain.NewID()
	}
	if out.Type == "" {
		out.Type = domain.PrincipalTypeUser
	}
	out.CreatedAt = r.s.now()
	r.s.principals[out.ID] = out
	r.s.principalNames[out.Name] = out.ID
	return &out, nil
}

func (r *PrincipalStore) GetByID(_ context.Context, id string) (*domain.Principal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.principals[id]
	if !ok {
		return nil, domain.ErrNotFound("principal %q not found", id)
	}
	return &p, nil
}

func (r *PrincipalStore) GetByName(_ context.Context, name string) (*domain.Principal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.principalNames[name]
	if !ok {
		return nil, domain.ErrNotFound("principal %q not found", name)
	}
	p := r.s.principals[id]
	return &p, nil
}

func (r *PrincipalStore) List(_ context.Context, page domain.PageRequest) ([]domain.Principal, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := make([]domain.Principal, 0, len(r.s.principals))
	for _, p := range r.s.principals {
		all = append(all, p)
	}
	sortedByName(all, func(p domain.Principal) string { return p.Name })
	return paginate(all, page), int64(len(all)), nil
}

func (r *PrincipalStore) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.principals[id]
	if !ok {
		return domain.ErrNotFound("principal %q not found", id)
	}
	delete(r.s.principals, id)
	delete(r.s.principalNames, p.Name)
	for k := range r.s.members {
		if k.memberType == domain.MemberTypeUser && k.memberID == id {
			delete(r.s.members, k)
		}
	}
	return nil
}

func (r *PrincipalStore) SetAdmin(_ context.Context, id string, isAdmin bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.principals[id]
	if !ok {
		return domain.ErrNotFound("principal %q not found", id)
	}
	p.IsAdmin = isAdmin
	r.s.principals[id] = p
	return nil
}
