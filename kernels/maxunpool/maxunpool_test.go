package maxunpool

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
	assert.Equal(t, dialect.OpTypeMaxUnpool, lib.OpType)

	order, err := kernels.Resolve(Name)
	require.NoError(t, err)
	assert.Equal(t, []string{"kernel-utils", "tensor-helpers", Name}, order)
}

func TestPrepare(t *testing.T) {
	lib, _ := kernels.Lookup(Name)
	ctx := &kernels.PrepareContext{
		Operands: []shapes.Shape{
			shapes.Make(dtypes.Float32, 1, 3, 4, 4),
			shapes.Make(dtypes.Int32, 1, 3, 4, 4),
		},
		Pool:             dialect.PoolAxesConfig{Batch: 0, Channels: 1, Spatial: []int{2, 3}},
		WindowDimensions: []int{2, 2},
		Strides:          []int{2, 2},
		OutputDims:       []int{1, 3, 8, 8},
	}
	require.NoError(t, lib.Kernel.Prepare(ctx))
	require.Len(t, ctx.Outputs, 1)
	assert.NoError(t, ctx.Outputs[0].Check(dtypes.Float32, 1, 3, 8, 8))

	// Wrong operand count.
	require.Error(t, lib.Kernel.Prepare(&kernels.PrepareContext{}))

	// outputDims don't pool back to the operand dimensions.
	ctx.OutputDims = []int{1, 3, 10, 10}
	ctx.Outputs = nil
	require.Error(t, lib.Kernel.Prepare(ctx))
}

func TestEvalNotImplemented(t *testing.T) {
	lib, _ := kernels.Lookup(Name)
	err := lib.Kernel.Eval(&kernels.EvalContext{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, dialect.ErrNotImplemented))
}
