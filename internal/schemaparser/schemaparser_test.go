package schemaparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchema(t *testing.T) {
	methods, err := ParseSchema()
	require.NoError(t, err)
	require.NotEmpty(t, methods)

	byName := make(map[string]Method, len(methods))
	for _, m := range methods {
		byName[m.Name] = m
	}

	// Builder surface.
	require.Contains(t, byName, "Parameter")
	require.Contains(t, byName, "Constant")

	// A binary op: two Op parameters, (Op, error) outputs, documented.
	add, ok := byName["Add"]
	require.True(t, ok)
	require.Len(t, add.Parameters, 2)
	assert.Equal(t, NameAndType{Name: "lhs", Type: "Op"}, add.Parameters[0])
	assert.Equal(t, NameAndType{Name: "rhs", Type: "Op"}, add.Parameters[1])
	require.Len(t, add.Outputs, 2)
	assert.Equal(t, "Op", add.Outputs[0].Type)
	assert.Equal(t, "error", add.Outputs[1].Type)
	assert.NotEmpty(t, add.Comments)
	assert.Contains(t, add.Comments[0], "Add")

	// An op with attributes mixed into the signature.
	argMinMax, ok := byName["ArgMinMax"]
	require.True(t, ok)
	require.Len(t, argMinMax.Parameters, 4)
	assert.Equal(t, "dtypes.DType", argMinMax.Parameters[2].Type)
	assert.Equal(t, "bool", argMinMax.Parameters[3].Type)

	// Custom kernel ops come from the CustomOps interface, with named outputs.
	pool, ok := byName["MaxPoolWithArgmax"]
	require.True(t, ok)
	assert.Equal(t, "values", pool.Outputs[0].Name)
	assert.Equal(t, "indices", pool.Outputs[1].Name)

	// Embedded interfaces must not produce duplicate entries.
	counts := make(map[string]int)
	for _, m := range methods {
		counts[m.Name]++
	}
	for name, count := range counts {
		assert.Equalf(t, 1, count, "method %s extracted %d times", name, count)
	}
}
