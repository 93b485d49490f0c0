package api

import (
	"mrp-access/internal/domain"
)

// pageFromParams extracts a PageRequest from optional max_results/page_token params.
func pageFromParams(maxResults *MaxResults, pageToken *PageToken) domain.PageRequest {
	p := domain.PageRequest{}
	if maxResults != nil && *maxResults > 0 {
		p.MaxResults = int(*maxResults)
	}
	if pageToken != nil {
		p.PageToken = *pageToken
	}
	return p
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// === Mapping helpers ===

func principalToAPI(p domain.Principal) Principal {
	return Principal{Id: p.ID, Name: p.Name, Type: p.Type, IsAdmin: p.IsAdmin, CreatedAt: p.CreatedAt}
}

func groupToAPI(g domain.Group) Group {
	return Group{Id: g.ID, Name: g.Name, Description: optStr(g.Description), CreatedAt: g.CreatedAt}
}

func groupMemberToAPI(m domain.GroupMember) GroupMember {
	return GroupMember{GroupId: m.GroupID, MemberType: m.MemberType, MemberId: m.MemberID}
}

func recordToAPI(r domain.Record) Record {
	fields := r.Fields
	if fields == nil {
		fields = map[string]interface{}{}
	}
	return Record{
		Id:         r.ID,
		EntityType: string(r.EntityType),
		Fields:     fields,
		CreatedBy:  r.CreatedBy,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func decisionToAPI(d domain.Decision) Decision {
	out := Decision{
		Principal:      d.Principal,
		EntityType:     string(d.EntityType),
		Operation:      string(d.Operation),
		Allowed:        d.Allowed,
		RequiredGroups: d.RequiredGroups,
		MatchedGroups:  d.MatchedGroups,
	}
	if out.RequiredGroups == nil {
		out.RequiredGroups = []string{}
	}
	if out.MatchedGroups == nil {
		out.MatchedGroups = []string{}
	}
	return out
}

func auditEntryToAPI(e domain.AuditEntry) AuditEntry {
	return AuditEntry{
		Id:            e.ID,
		PrincipalName: e.PrincipalName,
		Action:        e.Action,
		EntityType:    e.EntityType,
		Operation:     e.Operation,
		Detail:        e.Detail,
		Status:        e.Status,
		ErrorMessage:  e.ErrorMessage,
		CreatedAt:     e.CreatedAt,
	}
}

func policyToAPI(entities []domain.EntityType, rules []domain.PolicyRule) Policy {
	out := Policy{Entities: make([]string, len(entities)), Rules: make([]PolicyRule, len(rules))}
	for i, e := range entities {
		out.Entities[i] = string(e)
	}
	for i, r := range rules {
		ops := make([]string, len(r.Operations))
		for j, op := range r.Operations {
			ops[j] = string(op)
		}
		groups := r.Groups
		if groups == nil {
			groups = []string{}
		}
		out.Rules[i] = PolicyRule{Entity: string(r.EntityType), Operations: ops, Groups: groups}
	}
	return out
}
