package maxpoolargmax

import (
	"testing"

	"github.com/gomlir/gomlir/dialect"
	"github.com/gomlir/gomlir/kernels"
	"github.com/gomlir/gomlir/types/shapes"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistration(t *testing.T) {
	lib, ok := kernels.Lookup(Name)
	require.True(t, ok)
	assert.True(t, lib.IsKernel())
	assert.Equal(t, dialect.OpTypeMaxPoolWithArgmax, lib.OpType)

	// The library's dependency chain must resolve, utilities first.
	order, err := kernels.Resolve(Name)
	require.NoError(t, err)
	assert.Equal(t, Name, order[len(order)-1])
	assert.Contains(t, order, "padding-helpers")
}

func TestPrepare(t *testing.T) {
	lib, _ := kernels.Lookup(Name)
	ctx := &kernels.PrepareContext{
		Operands:         []shapes.Shape{shapes.Make(dtypes.Float32, 1, 3, 8, 8)},
		Pool:             dialect.PoolAxesConfig{Batch: 0, Channels: 1, Spatial: []int{2, 3}},
		WindowDimensions: []int{2, 2},
		Strides:          []int{2, 2},
		IndicesDType:     dtypes.Int32,
	}
	require.NoError(t, lib.Kernel.Prepare(ctx))
	require.Len(t, ctx.Outputs, 2)
	assert.NoError(t, ctx.Outputs[0].Check(dtypes.Float32, 1, 3, 4, 4))
	assert.NoError(t, ctx.Outputs[1].Check(dtypes.Int32, 1, 3, 4, 4))

	// Wrong operand count.
	err := lib.Kernel.Prepare(&kernels.PrepareContext{})
	require.Error(t, err)

	// Bad indices dtype.
	bad := &kernels.PrepareContext{
		Operands:         ctx.Operands,
		Pool:             ctx.Pool,
		WindowDimensions: []int{2, 2},
		Strides:          []int{2, 2},
		IndicesDType:     dtypes.Float32,
	}
	require.Error(t, lib.Kernel.Prepare(bad))

	// Padded booleans have no padding identity.
	bad = &kernels.PrepareContext{
		Operands:         []shapes.Shape{shapes.Make(dtypes.Bool, 1, 3, 8, 8)},
		Pool:             ctx.Pool,
		WindowDimensions: []int{2, 2},
		Strides:          []int{2, 2},
		Paddings:         [][2]int{{1, 1}, {1, 1}},
		IndicesDType:     dtypes.Int32,
	}
	require.Error(t, lib.Kernel.Prepare(bad))
}

func TestEvalNotImplemented(t *testing.T) {
	lib, _ := kernels.Lookup(Name)
	err := lib.Kernel.Eval(&kernels.EvalContext{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, dialect.ErrNotImplemented))
}
