package declarative

import (
	"fmt"

	"mrp-access/internal/domain"
)

// ValidationError represents a single validation problem.
type ValidationError struct {
	Path    string // e.g. "principal[alice]" or "group[planning].members[0]"
	Message string
}

func (e ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

var validPrincipalTypes = map[string]bool{
	"":                          true,
	domain.PrincipalTypeUser:    true,
	domain.PrincipalTypeService: true,
}

var validMemberTypes = map[string]bool{
	domain.MemberTypeUser:  true,
	domain.MemberTypeGroup: true,
}

// Validate checks names are unique and every member reference resolves to a
// declared principal or group.
func Validate(d *Directory) []ValidationError {
	var errs []ValidationError
	add := func(path, format string, args ...any) {
		errs = append(errs, ValidationError{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	principals := make(map[string]bool, len(d.Principals))
	for i, p := range d.Principals {
		path := fmt.Sprintf("principals[%d]", i)
		if p.Name == "" {
			add(path, "name is required")
			continue
		}
		path = fmt.Sprintf("principal[%s]", p.Name)
		if principals[p.Name] {
			add(path, "duplicate principal name")
		}
		principals[p.Name] = true
		if !validPrincipalTypes[p.Type] {
			add(path, "type must be 'user' or 'service_principal', got %q", p.Type)
		}
	}

	groups := make(map[string]bool, len(d.Groups))
	for i, g := range d.Groups {
		if g.Name == "" {
			add(fmt.Sprintf("groups[%d]", i), "name is required")
			continue
		}
		if groups[g.Name] {
			add(fmt.Sprintf("group[%s]", g.Name), "duplicate group name")
		}
		groups[g.Name] = true
	}

	for _, g := range d.Groups {
		if g.Name == "" {
			continue
		}
		for j, m := range g.Members {
			path := fmt.Sprintf("group[%s].members[%d]", g.Name, j)
			switch {
			case m.Name == "":
				add(path, "name is required")
			case !validMemberTypes[m.Type]:
				add(path, "type must be 'user' or 'group', got %q", m.Type)
			case m.Type == domain.MemberTypeUser && !principals[m.Name]:
				add(path, "unknown principal %q", m.Name)
			case m.Type == domain.MemberTypeGroup && !groups[m.Name]:
				add(path, "unknown group %q", m.Name)
			case m.Type == domain.MemberTypeGroup && m.Name == g.Name:
				add(path, "a group cannot be a member of itself")
			}
		}
	}
	return errs
}
