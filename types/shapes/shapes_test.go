package shapes

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	s := Make(dtypes.Float32, 2, 3)
	assert.Equal(t, 2, s.Rank())
	assert.Equal(t, 6, s.Size())
	assert.Equal(t, "(Float32)[2 3]", s.String())
	assert.Equal(t, 3, s.Dim(-1))
	assert.False(t, s.IsScalar())
	assert.True(t, s.Ok())

	scalar := Make(dtypes.Int64)
	assert.True(t, scalar.IsScalar())
	assert.Equal(t, 1, scalar.Size())

	assert.False(t, Invalid().Ok())
	assert.False(t, Shape{}.Ok())

	require.Panics(t, func() { Make(dtypes.Float32, 2, 0) })
	require.Panics(t, func() { s.Dim(2) })
}

func TestShapeEqual(t *testing.T) {
	s1 := Make(dtypes.Float32, 2, 3)
	s2 := Make(dtypes.Float32, 2, 3)
	assert.True(t, s1.Equal(s2))
	assert.False(t, s1.Equal(Make(dtypes.Float64, 2, 3)))
	assert.False(t, s1.Equal(Make(dtypes.Float32, 3, 2)))
	assert.True(t, s1.EqualDimensions(Make(dtypes.Int32, 2, 3)))

	clone := s1.Clone()
	clone.Dimensions[0] = 7
	assert.Equal(t, 2, s1.Dimensions[0])
}

func TestTuple(t *testing.T) {
	tuple := MakeTuple([]Shape{Make(dtypes.Float32, 2), Make(dtypes.Int32)})
	assert.True(t, tuple.IsTuple())
	assert.Equal(t, 2, tuple.TupleSize())
	assert.Equal(t, "Tuple<(Float32)[2], (Int32)>", tuple.String())
	assert.True(t, tuple.Equal(tuple.Clone()))
	assert.False(t, tuple.IsScalar())
}

func TestChecks(t *testing.T) {
	s := Make(dtypes.Float32, 2, 3)
	require.NoError(t, s.Check(dtypes.Float32, 2, 3))
	require.NoError(t, s.CheckDims(2, UncheckedAxis))
	require.Error(t, s.Check(dtypes.Int32, 2, 3))
	require.Error(t, s.CheckDims(2))
	require.NoError(t, s.CheckRank(2))
	require.Error(t, s.CheckScalar())
	require.Panics(t, func() { s.AssertDims(3, 2) })
	require.Panics(t, func() { s.AssertRank(1) })
	s.AssertDims(2, 3)
}
