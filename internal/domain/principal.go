package domain

import (
	"sort"
	"time"
)

// Principal types.
const (
	PrincipalTypeUser    = "user"
	PrincipalTypeService = "service_principal"
)

// Group member types.
const (
	MemberTypeUser  = "user"
	MemberTypeGroup = "group"
)

// Principal represents a user or service principal in the system.
type Principal struct {
	ID        string
	Name      string
	Type      string // "user" or "service_principal"
	IsAdmin   bool
	CreatedAt time.Time
}

// Group represents a named permission group. Its Name is the group identifier
// referenced by policy rules.
type Group struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}

// CreatePrincipalRequest holds parameters for creating a new principal.
type CreatePrincipalRequest struct {
	Name    string
	Type    string // "user" or "service_principal"; defaults to "user"
	IsAdmin bool
}

// Validate checks that the request is well-formed.
func (r *CreatePrincipalRequest) Validate() error {
	if r.Name == "" {
		return ErrValidation("principal name is required")
	}
	if r.Type == "" {
		r.Type = PrincipalTypeUser
	}
	if r.Type != PrincipalTypeUser && r.Type != PrincipalTypeService {
		return ErrValidation("type must be 'user' or 'service_principal'")
	}
	return nil
}

// CreateGroupRequest holds parameters for creating a new group.
type CreateGroupRequest struct {
	Name        string
	Description string
}

// Validate checks that the request is well-formed.
func (r *CreateGroupRequest) Validate() error {
	if r.Name == "" {
		return ErrValidation("group name is required")
	}
	return nil
}

// AddGroupMemberRequest holds parameters for adding a member to a group.
type AddGroupMemberRequest struct {
	GroupID    string
	MemberType string // "user" or "group"
	MemberID   string
}

// Validate checks that the request is well-formed.
func (r *AddGroupMemberRequest) Validate() error {
	return validateMembership(r.GroupID, r.MemberType, r.MemberID)
}

// RemoveGroupMemberRequest holds parameters for removing a member from a group.
type RemoveGroupMemberRequest struct {
	GroupID    string
	MemberType string // "user" or "group"
	MemberID   string
}

// Validate checks that the request is well-formed.
func (r *RemoveGroupMemberRequest) Validate() error {
	return validateMembership(r.GroupID, r.MemberType, r.MemberID)
}

func validateMembership(groupID, memberType, memberID string) error {
	if groupID == "" {
		return ErrValidation("group_id is required")
	}
	if memberID == "" {
		return ErrValidation("member_id is required")
	}
	if memberType != MemberTypeUser && memberType != MemberTypeGroup {
		return ErrValidation("member_type must be 'user' or 'group'")
	}
	if memberType == MemberTypeGroup && memberID == groupID {
		return ErrValidation("a group cannot be a member of itself")
	}
	return nil
}

// GroupMember represents the membership of a principal or group in a group.
type GroupMember struct {
	GroupID    string
	MemberType string // "user" or "group"
	MemberID   string
}

// GroupSet is an immutable set of group names.
type GroupSet struct {
	names map[string]struct{}
}

// NewGroupSet builds a GroupSet from the given names. Empty names are ignored.
func NewGroupSet(names ...string) GroupSet {
	set := GroupSet{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		if n != "" {
			set.names[n] = struct{}{}
		}
	}
	return set
}

// Has reports whether name is in the set.
func (s GroupSet) Has(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Len returns the number of groups in the set.
func (s GroupSet) Len() int { return len(s.names) }

// Intersect returns the members of candidates that are in the set, in the
// order they appear in candidates.
func (s GroupSet) Intersect(candidates []string) []string {
	var out []string
	for _, c := range candidates {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the group names in sorted order.
func (s GroupSet) Names() []string {
	out := make([]string, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Actor is a resolved principal together with the group memberships it held
// at resolution time. Later membership changes do not alter an existing Actor.
type Actor struct {
	Principal Principal
	Groups    GroupSet
}

// NewActor returns an Actor for p holding the given groups.
func NewActor(p Principal, groups ...string) Actor {
	return Actor{Principal: p, Groups: NewGroupSet(groups...)}
}
