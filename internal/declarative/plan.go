package declarative

import "sort"

// ResourceKind identifies a type of managed resource. Kinds are ordered by
// dependency layer so that applying in order never references a missing
// resource.
type ResourceKind int

// Resource kinds.
const (
	KindPrincipal       ResourceKind = iota // layer 0
	KindGroup                               // layer 0
	KindGroupMembership                     // layer 1
)

// String returns a human-readable kebab-case name for the resource kind.
func (k ResourceKind) String() string {
	switch k {
	case KindPrincipal:
		return "principal"
	case KindGroup:
		return "group"
	case KindGroupMembership:
		return "group-membership"
	default:
		return "unknown"
	}
}

// Layer returns the dependency layer of the kind.
func (k ResourceKind) Layer() int {
	if k == KindGroupMembership {
		return 1
	}
	return 0
}

// Operation is the kind of change an Action makes.
type Operation int

// Plan operations.
const (
	OpCreate Operation = iota
	OpUpdate
)

func (o Operation) String() string {
	if o == OpUpdate {
		return "update"
	}
	return "create"
}

// Action represents a single planned change.
type Action struct {
	Operation    Operation
	ResourceKind ResourceKind
	ResourceName string // "alice", "planning", or "planning <- user:alice"
	Principal    *PrincipalSpec
	Group        *GroupSpec
	Membership   *Membership
	Changes      []FieldDiff
}

// Membership is a member edge by name.
type Membership struct {
	Group      string
	MemberType string
	MemberName string
}

// FieldDiff describes a single field change within an Update action.
type FieldDiff struct {
	Field    string `json:"field"`
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value"`
}

// Plan is an ordered list of actions.
type Plan struct {
	Actions []Action
}

// PlanSummary holds counts of planned operations.
type PlanSummary struct {
	Creates int `json:"creates"`
	Updates int `json:"updates"`
}

// Summary returns counts of creates and updates.
func (p *Plan) Summary() PlanSummary {
	var s PlanSummary
	for _, a := range p.Actions {
		switch a.Operation {
		case OpCreate:
			s.Creates++
		case OpUpdate:
			s.Updates++
		}
	}
	return s
}

// HasChanges returns true if the plan has any actions.
func (p *Plan) HasChanges() bool {
	return len(p.Actions) > 0
}

// SortActions orders actions by dependency layer, then by name.
func (p *Plan) SortActions() {
	sort.SliceStable(p.Actions, func(i, j int) bool {
		ai, aj := p.Actions[i], p.Actions[j]
		if li, lj := ai.ResourceKind.Layer(), aj.ResourceKind.Layer(); li != lj {
			return li < lj
		}
		if ai.ResourceKind != aj.ResourceKind {
			return ai.ResourceKind < aj.ResourceKind
		}
		return ai.ResourceName < aj.ResourceName
	})
}
