package dialect

import (
	"strings"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpDefTableIsComplete(t *testing.T) {
	// Every OpType but Invalid/Last must have exactly one OpDef registered.
	for opType := OpTypeInvalid + 1; opType < OpTypeLast; opType++ {
		def, ok := OpDefByType(opType)
		require.Truef(t, ok, "missing OpDef for %s", opType)
		assert.Equal(t, opType, def.Type)
		assert.Truef(t, strings.HasPrefix(def.Mnemonic, Name+"."),
			"mnemonic %q of %s is not qualified with the dialect namespace", def.Mnemonic, opType)
	}
	assert.Equal(t, int(OpTypeLast)-1, NumOpDefs())

	_, ok := OpDefByType(OpTypeInvalid)
	assert.False(t, ok)
	_, ok = OpDefByType(OpTypeLast)
	assert.False(t, ok)
}

func TestOpDefByMnemonic(t *testing.T) {
	def, ok := OpDefByMnemonic("lite.add")
	require.True(t, ok)
	assert.Equal(t, OpTypeAdd, def.Type)
	assert.Len(t, def.Operands, 2)
	assert.Equal(t, 1, def.NumResults)

	_, ok = OpDefByMnemonic("lite.no_such_op")
	assert.False(t, ok)
	_, ok = OpDefByMnemonic("add") // Unqualified names don't resolve.
	assert.False(t, ok)
}

func TestOpDefTraits(t *testing.T) {
	add, _ := OpDefByType(OpTypeAdd)
	assert.True(t, add.HasTrait(TraitCommutative))
	assert.True(t, add.HasTrait(TraitNoSideEffect))
	assert.False(t, add.HasTrait(TraitResultIsBoolean))

	sub, _ := OpDefByType(OpTypeSub)
	assert.False(t, sub.HasTrait(TraitCommutative))

	lessThan, _ := OpDefByType(OpTypeLessThan)
	assert.True(t, lessThan.HasTrait(TraitResultIsBoolean))
	assert.False(t, lessThan.HasTrait(TraitCommutative))

	// The dialect is purely functional: every op must be side-effect free.
	for opType := OpTypeInvalid + 1; opType < OpTypeLast; opType++ {
		def, _ := OpDefByType(opType)
		assert.Truef(t, def.HasTrait(TraitNoSideEffect), "%s is missing TraitNoSideEffect", opType)
	}
}

func TestOpDefShapes(t *testing.T) {
	pool, _ := OpDefByType(OpTypeMaxPoolWithArgmax)
	assert.Equal(t, 2, pool.NumResults)
	assert.Equal(t, "lite.max_pool_with_argmax", pool.Mnemonic)

	while, _ := OpDefByType(OpTypeWhile)
	assert.Equal(t, -1, while.NumResults)
	require.Len(t, while.Operands, 1)
	assert.Equal(t, OperandVariadic, while.Operands[0].Kind)

	gte, _ := OpDefByType(OpTypeGetTupleElement)
	require.Len(t, gte.Operands, 1)
	assert.Equal(t, OperandTuple, gte.Operands[0].Kind)
}

func TestOpTypeStrings(t *testing.T) {
	assert.Equal(t, "ConvGeneral", OpTypeConvGeneral.String())
	opType, err := OpTypeString("MaxUnpool")
	require.NoError(t, err)
	assert.Equal(t, OpTypeMaxUnpool, opType)
	_, err = OpTypeString("BogusOp")
	require.Error(t, err)
}

func TestCapabilitiesClone(t *testing.T) {
	c := Capabilities{
		Operations: map[OpType]bool{OpTypeAdd: true},
		DTypes:     map[dtypes.DType]bool{dtypes.Float32: true},
	}
	c2 := c.Clone()
	c2.Operations[OpTypeMul] = true
	c2.DTypes[dtypes.Int32] = true
	assert.False(t, c.Operations[OpTypeMul])
	assert.False(t, c.DTypes[dtypes.Int32])
}
