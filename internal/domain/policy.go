package domain

import "strings"

// EntityType names a kind of record guarded by the access gate.
type EntityType string

// Entity types of the manufacturing fixture.
const (
	EntityManufacturingOrder EntityType = "manufacturing_order"
	EntityBillOfMaterials    EntityType = "bill_of_materials"
	EntityProduct            EntityType = "product"
	EntityProductTemplate    EntityType = "product_template"
	EntityProductCategory    EntityType = "product_category"
	EntityUnitOfMeasure      EntityType = "unit_of_measure"
	EntityUoMCategory        EntityType = "uom_category"
	EntitySequence           EntityType = "sequence"
	EntityPickingType        EntityType = "picking_type"
	EntityStockLocation      EntityType = "stock_location"
	EntityCompany            EntityType = "company"
)

// Operation is an action a principal performs on an entity type.
type Operation string

// Supported operations.
const (
	OpCreate Operation = "create"
	OpRead   Operation = "read"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Operations lists every supported operation.
var Operations = []Operation{OpCreate, OpRead, OpUpdate, OpDelete}

// ParseOperation converts s into an Operation. Matching is case-insensitive.
func ParseOperation(s string) (Operation, error) {
	op := Operation(strings.ToLower(strings.TrimSpace(s)))
	switch op {
	case OpCreate, OpRead, OpUpdate, OpDelete:
		return op, nil
	default:
		return "", ErrValidation("unknown operation %q", s)
	}
}

// Well-known group names used by the built-in policy and seed data.
const (
	GroupSystem               = "system"
	GroupManufacturingUser    = "manufacturing-user"
	GroupManufacturingManager = "manufacturing-manager"
	GroupGenericEmployee      = "generic-employee"
)

// PolicyRule grants the listed operations on an entity type to any member of
// one of Groups.
type PolicyRule struct {
	EntityType EntityType
	Operations []Operation
	Groups     []string
}

// Decision is the outcome of an access check with the data that produced it.
type Decision struct {
	Principal      string
	EntityType     EntityType
	Operation      Operation
	Allowed        bool
	RequiredGroups []string
	MatchedGroups  []string
}
