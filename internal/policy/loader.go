package policy

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mrp-access/internal/domain"
)

// SupportedAPIVersion is the apiVersion accepted in policy documents.
const SupportedAPIVersion = "mrp-access/v1"

// KindAccessPolicy is the kind of a policy document.
const KindAccessPolicy = "AccessPolicy"

//go:embed default.yaml
var defaultPolicy []byte

// Document is the YAML form of a policy table.
type Document struct {
	APIVersion string     `yaml:"apiVersion"`
	Kind       string     `yaml:"kind"`
	Entities   []string   `yaml:"entities"`
	Rules      []RuleSpec `yaml:"rules"`
}

// RuleSpec describes one policy rule.
type RuleSpec struct {
	Entity     string   `yaml:"entity"`
	Operations []string `yaml:"operations"`
	Groups     []string `yaml:"groups"`
}

// Load reads and validates the policy file at path.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("read policy %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("policy %s: %w", path, err)
	}
	return t, nil
}

// Default returns the built-in manufacturing policy.
func Default() *Table {
	t, err := Parse(defaultPolicy)
	if err != nil {
		panic(fmt.Sprintf("built-in policy is invalid: %v", err))
	}
	return t
}

// LoadOrDefault loads path, or returns the built-in policy when path is empty.
func LoadOrDefault(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Parse decodes a policy document. Unknown fields are rejected.
func Parse(data []byte) (*Table, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if doc.APIVersion != SupportedAPIVersion {
		return nil, domain.ErrValidation("unsupported apiVersion %q (expected %q)", doc.APIVersion, SupportedAPIVersion)
	}
	if doc.Kind != KindAccessPolicy {
		return nil, domain.ErrValidation("unexpected kind %q (expected %q)", doc.Kind, KindAccessPolicy)
	}

	entities := make([]domain.EntityType, len(doc.Entities))
	for i, e := range doc.Entities {
		entities[i] = domain.EntityType(e)
	}

	rules := make([]domain.PolicyRule, 0, len(doc.Rules))
	for i, rs := range doc.Rules {
		ops := make([]domain.Operation, 0, len(rs.Operations))
		for _, raw := range rs.Operations {
			op, err := domain.ParseOperation(raw)
			if err != nil {
				return nil, domain.ErrValidation("rule %d (%s): unknown operation %q", i, rs.Entity, raw)
			}
			ops = append(ops, op)
		}
		rules = append(rules, domain.PolicyRule{
			EntityType: domain.EntityType(rs.Entity),
			Operations: ops,
			Groups:     rs.Groups,
		})
	}
	return NewTable(entities, rules)
}

// Marshal renders t back into a policy document.
func Marshal(t *Table) ([]byte, error) {
	doc := Document{APIVersion: SupportedAPIVersion, Kind: KindAccessPolicy}
	for _, e := range t.Entities() {
		doc.Entities = append(doc.Entities, string(e))
	}
	for _, r := range t.Rules() {
		spec := RuleSpec{Entity: string(r.EntityType), Groups: r.Groups}
		for _, op := range r.Operations {
			spec.Operations = append(spec.Operations, string(op))
		}
		doc.Rules = append(doc.Rules, spec)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
