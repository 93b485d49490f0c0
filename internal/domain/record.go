package domain

import "time"

// Record is a stored entity of some EntityType. Its Fields are opaque to the
// access gate.
type Record struct {
	ID         string
	EntityType EntityType
	Fields     map[string]any
	CreatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RecordFilter selects records for listing.
type RecordFilter struct {
	EntityType EntityType
	CreatedBy  *string
	Page       PageRequest
}
