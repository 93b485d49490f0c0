// Package policy holds the static table mapping (entity type, operation) to
// the groups allowed to perform it.
package policy

import (
	"sort"

	"mrp-access/internal/domain"
)

type ruleKey struct {
	entity domain.EntityType
	op     domain.Operation
}

// Table is an immutable policy table. Lookups are safe for concurrent use.
//
// A pair with no rule, and any entity type the table does not declare, is
// denied.
type Table struct {
	entities map[domain.EntityType]struct{}
	required map[ruleKey][]string
	rules    []domain.PolicyRule
}

// NewTable validates rules against the declared entity types and builds a
// Table. Rules naming the same (entity, operation) pair are merged so that a
// member of any listed group is allowed.
func NewTable(entities []domain.EntityType, rules []domain.PolicyRule) (*Table, error) {
	t := &Table{
		entities: make(map[domain.EntityType]struct{}, len(entities)),
		required: make(map[ruleKey][]string),
	}
	for _, e := range entities {
		if e == "" {
			return nil, domain.ErrValidation("entity type name is required")
		}
		if _, dup := t.entities[e]; dup {
			return nil, domain.ErrValidation("entity type %q declared twice", e)
		}
		t.entities[e] = struct{}{}
	}

	for i, r := range rules {
		if _, ok := t.entities[r.EntityType]; !ok {
			return nil, domain.ErrValidation("rule %d: unknown entity type %q", i, r.EntityType)
		}
		if len(r.Operations) == 0 {
			return nil, domain.ErrValidation("rule %d (%s): at least one operation is required", i, r.EntityType)
		}
		if len(r.Groups) == 0 {
			return nil, domain.ErrValidation("rule %d (%s): at least one group is required", i, r.EntityType)
		}
		for _, g := range r.Groups {
			if g == "" {
				return nil, domain.ErrValidation("rule %d (%s): empty group name", i, r.EntityType)
			}
		}
		for _, op := range r.Operations {
			if _, err := domain.ParseOperation(string(op)); err != nil {
				return nil, domain.ErrValidation("rule %d (%s): unknown operation %q", i, r.EntityType, op)
			}
			k := ruleKey{entity: r.EntityType, op: op}
			t.required[k] = mergeGroups(t.required[k], r.Groups)
		}
		t.rules = append(t.rules, domain.PolicyRule{
			EntityType: r.EntityType,
			Operations: append([]domain.Operation(nil), r.Operations...),
			Groups:     append([]string(nil), r.Groups...),
		})
	}
	return t, nil
}

func mergeGroups(existing, add []string) []string {
	for _, g := range add {
		found := false
		for _, e := range existing {
			if e == g {
				found = true
				break
			}
		}
		if !found {
			existing = append(existing, g)
		}
	}
	return existing
}

// Known reports whether the entity type is declared in the table.
func (t *Table) Known(entity domain.EntityType) bool {
	_, ok := t.entities[entity]
	return ok
}

// Required returns a copy of the groups allowed to perform op on entity.
// It returns nil for an unknown entity or a pair without rules.
func (t *Table) Required(entity domain.EntityType, op domain.Operation) []string {
	groups := t.required[ruleKey{entity: entity, op: op}]
	if len(groups) == 0 {
		return nil
	}
	return append([]string(nil), groups...)
}

// Entities returns the declared entity types in sorted order.
func (t *Table) Entities() []domain.EntityType {
	out := make([]domain.EntityType, 0, len(t.entities))
	for e := range t.entities {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Rules returns the rules the table was built from, in declaration order.
func (t *Table) Rules() []domain.PolicyRule {
	out := make([]domain.PolicyRule, len(t.rules))
	copy(out, t.rules)
	return out
}
