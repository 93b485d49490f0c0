// Package memstore is an in-memory implementation of the repository
// interfaces. It backs unit tests and the offline gatectl check command.
package memstore

import (
	"sort"
	"sync"
	"time"

	"mrp-access/internal/domain"
)

type memberKey struct {
	groupID    string
	memberType string
	memberID   string
}

// Store holds all state behind a single RWMutex so that a group closure is
// always computed from one consistent view of the membership graph.
type Store struct {
	mu sync.RWMutex

	principals     map[string]domain.Principal
	principalNames map[string]string
	groups         map[string]domain.Group
	groupNames     map[string]string
	members        map[memberKey]struct{}
	records        map[string]domain.Record
	audit          []domain.AuditEntry

	now func() time.Time
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		principals:     make(map[string]domain.Principal),
		principalNames: make(map[string]string),
		groups:         make(map[string]domain.Group),
		groupNames:     make(map[string]string),
		members:        make(map[memberKey]struct{}),
		records:        make(map[string]domain.Record),
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// Principals returns a domain.PrincipalRepository view of the store.
func (s *Store) Principals() *PrincipalStore { return &PrincipalStore{s} }

// Groups returns a domain.GroupRepository view of the store.
func (s *Store) Groups() *GroupStore { return &GroupStore{s} }

// Records returns a domain.RecordRepository view of the store.
func (s *Store) Records() *RecordStore { return &RecordStore{s} }

// Audit returns a domain.AuditRepository view of the store.
func (s *Store) Audit() *AuditStore { return &AuditStore{s} }

// paginate slices items for the requested page.
func paginate[T any](items []T, page domain.PageRequest) []T {
	offset := page.Offset()
	if offset >= len(items) {
		return nil
	}
	end := offset + page.Limit()
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// closureLocked returns the IDs of every group the user belongs to, directly
// or through nested groups. Callers must hold s.mu.
func (s *Store) closureLocked(principalID string) map[string]struct{} {
	seen := make(map[string]struct{})
	queue := []memberKey{{memberType: domain.MemberTypeUser, memberID: principalID}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for k := range s.members {
			if k.memberType != cur.memberType || k.memberID != cur.memberID {
				continue
			}
			if _, ok := seen[k.groupID]; ok {
				continue
			}
			seen[k.groupID] = struct{}{}
			queue = append(queue, memberKey{memberType: domain.MemberTypeGroup, memberID: k.groupID})
		}
	}
	return seen
}

func sortedByName[T any](items []T, name func(T) string) {
	sort.Slice(items, func(i, j int) bool { return name(items[i]) < name(items[j]) })
}
