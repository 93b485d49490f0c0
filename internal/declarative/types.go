// Package declarative loads principal and group directories from YAML and
// reconciles them into a membership store.
package declarative

// SupportedAPIVersion is the only accepted apiVersion.
const SupportedAPIVersion = "mrp-access/v1"

// KindDirectory is the kind of a directory document.
const KindDirectory = "Directory"

// Directory declares principals, groups and their memberships.
type Directory struct {
	APIVersion string          `yaml:"apiVersion"`
	Kind       string          `yaml:"kind"`
	Principals []PrincipalSpec `yaml:"principals"`
	Groups     []GroupSpec     `yaml:"groups"`
}

// PrincipalSpec describes a single principal.
type PrincipalSpec struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type,omitempty"` // "user" or "service_principal"
	IsAdmin bool   `yaml:"is_admin,omitempty"`
}

// GroupSpec describes a single group and its members.
type GroupSpec struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Members     []MemberRef `yaml:"members,omitempty"`
}

// MemberRef names a user or nested group within a group.
type MemberRef struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"` // "user" or "group"
}
