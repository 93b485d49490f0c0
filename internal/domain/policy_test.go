package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperation(t *testing.T) {
	for _, in := range []string{"create", "CREATE", " read ", "Update", "delete"} {
		op, err := ParseOperation(in)
		require.NoError(t, err, in)
		assert.Contains(t, Operations, op)
	}

	_, err := ParseOperation("unlink")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "unlink")
}

func TestNewAccessDenied(t *testing.T) {
	err := NewAccessDenied("public", EntityManufacturingOrder, OpCreate)
	assert.Equal(t, "public", err.Principal)
	assert.Equal(t, EntityManufacturingOrder, err.EntityType)
	assert.Equal(t, OpCreate, err.Operation)
	assert.Contains(t, err.Error(), "manufacturing_order")
	assert.Contains(t, err.Error(), "create")
}

func TestPageRequest(t *testing.T) {
	assert.Equal(t, DefaultMaxResults, PageRequest{}.Limit())
	assert.Equal(t, MaxMaxResults, PageRequest{MaxResults: 5000}.Limit())
	assert.Equal(t, 0, PageRequest{PageToken: "not-base64!"}.Offset())

	token := NextPageToken(0, 10, 25)
	assert.Equal(t, 10, PageRequest{PageToken: token}.Offset())
	assert.Empty(t, NextPageToken(20, 10, 25))
}
