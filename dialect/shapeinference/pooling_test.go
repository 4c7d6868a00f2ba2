package shapeinference

import (
	"testing"

	. "github.com/gomlir/gomlir/dialect"
	"github.com/stretchr/testify/require"
)

// nchwPool is the axes configuration shared by the pooling tests: batch, channels, then spatial.
var nchwPool = PoolAxesConfig{Batch: 0, Channels: 1, Spatial: []int{2, 3}}

func TestMaxPoolWithArgmaxOp(t *testing.T) {
	// 2x2 window, stride 2: [1, 3, 8, 8] -> [1, 3, 4, 4].
	operand := MS(F32, 1, 3, 8, 8)
	values, indices, err := MaxPoolWithArgmaxOp(operand, nchwPool, []int{2, 2}, []int{2, 2}, nil, I32)
	require.NoError(t, err)
	require.NoError(t, values.Check(F32, 1, 3, 4, 4))
	require.NoError(t, indices.Check(I32, 1, 3, 4, 4))

	// Window that doesn't tile the input exactly: [1, 3, 7, 7] with 2x2/stride 2 -> [1, 3, 3, 3].
	values, indices, err = MaxPoolWithArgmaxOp(MS(F32, 1, 3, 7, 7), nchwPool, []int{2, 2}, []int{2, 2}, nil, I64)
	require.NoError(t, err)
	require.NoError(t, values.Check(F32, 1, 3, 3, 3))
	require.NoError(t, indices.Check(I64, 1, 3, 3, 3))

	// Strides default to the window dimensions.
	values, _, err = MaxPoolWithArgmaxOp(operand, nchwPool, []int{2, 2}, nil, nil, I32)
	require.NoError(t, err)
	require.NoError(t, values.Check(F32, 1, 3, 4, 4))

	// Paddings extend the input before pooling.
	values, _, err = MaxPoolWithArgmaxOp(MS(F32, 1, 3, 7, 7), nchwPool, []int{2, 2}, []int{2, 2}, [][2]int{{0, 1}, {0, 1}}, I32)
	require.NoError(t, err)
	require.NoError(t, values.Check(F32, 1, 3, 4, 4))

	// Error cases:
	_, _, err = MaxPoolWithArgmaxOp(operand, nchwPool, []int{2, 2}, []int{2, 2}, nil, F32)
	require.Error(t, err, "indicesDType must be Int32 or Int64")
	_, _, err = MaxPoolWithArgmaxOp(operand, nchwPool, []int{2}, []int{2, 2}, nil, I32)
	require.Error(t, err, "wrong windowDimensions length")
	_, _, err = MaxPoolWithArgmaxOp(operand, nchwPool, []int{9, 9}, []int{1, 1}, nil, I32)
	require.Error(t, err, "window larger than input")
	_, _, err = MaxPoolWithArgmaxOp(MS(F32, 8, 8), nchwPool, []int{2, 2}, []int{2, 2}, nil, I32)
	require.Error(t, err, "operand rank too low")
	badPool := PoolAxesConfig{Batch: 0, Channels: 0, Spatial: []int{2, 3}}
	_, _, err = MaxPoolWithArgmaxOp(operand, badPool, []int{2, 2}, []int{2, 2}, nil, I32)
	require.Error(t, err, "duplicate pooling axes")
}

func TestMaxUnpoolOp(t *testing.T) {
	// Inverse of the pooling above: [1, 3, 4, 4] back to [1, 3, 8, 8].
	pooled := MS(F32, 1, 3, 4, 4)
	indices := MS(I32, 1, 3, 4, 4)
	outputDims := []int{1, 3, 8, 8}
	output, err := MaxUnpoolOp(pooled, indices, nchwPool, []int{2, 2}, []int{2, 2}, nil, outputDims)
	require.NoError(t, err)
	require.NoError(t, output.Check(F32, 1, 3, 8, 8))

	// A [1, 3, 3, 3] pooled tensor can unpool to either 6 or 7 wide, the explicit outputDims disambiguates.
	pooled = MS(F32, 1, 3, 3, 3)
	indices = MS(I64, 1, 3, 3, 3)
	_, err = MaxUnpoolOp(pooled, indices, nchwPool, []int{2, 2}, []int{2, 2}, nil, []int{1, 3, 6, 6})
	require.NoError(t, err)
	_, err = MaxUnpoolOp(pooled, indices, nchwPool, []int{2, 2}, []int{2, 2}, nil, []int{1, 3, 7, 7})
	require.NoError(t, err)

	// Error cases:
	_, err = MaxUnpoolOp(pooled, indices, nchwPool, []int{2, 2}, []int{2, 2}, nil, []int{1, 3, 8, 8})
	require.Error(t, err, "outputDims don't pool back to the operand dimensions")
	_, err = MaxUnpoolOp(pooled, MS(F32, 1, 3, 3, 3), nchwPool, []int{2, 2}, []int{2, 2}, nil, []int{1, 3, 6, 6})
	require.Error(t, err, "indices must be Int32 or Int64")
	_, err = MaxUnpoolOp(pooled, MS(I32, 1, 3, 4, 4), nchwPool, []int{2, 2}, []int{2, 2}, nil, []int{1, 3, 6, 6})
	require.Error(t, err, "operand and indices dimensions must match")
	_, err = MaxUnpoolOp(pooled, indices, nchwPool, []int{2, 2}, []int{2, 2}, nil, []int{1, 3, 6})
	require.Error(t, err, "wrong outputDims length")
	_, err = MaxUnpoolOp(pooled, indices, nchwPool, []int{2, 2}, []int{2, 2}, nil, []int{2, 3, 6, 6})
	require.Error(t, err, "batch dimension mismatch")
}

func TestTransposeConvOp(t *testing.T) {
	axes := ConvolveAxesConfig{
		InputBatch: 0, InputChannels: 1, InputSpatial: []int{2, 3},
		KernelOutputChannels: 0, KernelInputChannels: 1, KernelSpatial: []int{2, 3},
		OutputBatch: 0, OutputChannels: 1, OutputSpatial: []int{2, 3},
	}

	// Stride 2, 3x3 kernel: [1, 4, 4, 4] -> [1, 2, 9, 9] ((4-1)*2 + 3 = 9).
	input := MS(F32, 1, 4, 4, 4)
	kernel := MS(F32, 2, 4, 3, 3)
	bias := MS(F32, 2)
	output, err := TransposeConvOp(input, kernel, bias, axes, []int{2, 2}, nil)
	require.NoError(t, err)
	require.NoError(t, output.Check(F32, 1, 2, 9, 9))

	// Padding trims the output: (4-1)*2 + 3 - 1 - 1 = 7.
	output, err = TransposeConvOp(input, kernel, bias, axes, []int{2, 2}, [][2]int{{1, 1}, {1, 1}})
	require.NoError(t, err)
	require.NoError(t, output.Check(F32, 1, 2, 7, 7))

	// Unit stride is the plain "full" convolution: (4-1)*1 + 3 = 6.
	output, err = TransposeConvOp(input, kernel, bias, axes, []int{1, 1}, nil)
	require.NoError(t, err)
	require.NoError(t, output.Check(F32, 1, 2, 6, 6))

	// Error cases:
	_, err = TransposeConvOp(input, kernel, MS(F32, 3), axes, []int{2, 2}, nil)
	require.Error(t, err, "bias dimension must match output channels")
	_, err = TransposeConvOp(input, kernel, MS(F32, 2, 1), axes, []int{2, 2}, nil)
	require.Error(t, err, "bias must be rank-1")
	_, err = TransposeConvOp(input, kernel, MS(I32, 2), axes, []int{2, 2}, nil)
	require.Error(t, err, "bias DType must match")
	_, err = TransposeConvOp(MS(I32, 1, 4, 4, 4), MS(I32, 2, 4, 3, 3), MS(I32, 2), axes, []int{2, 2}, nil)
	require.Error(t, err, "input must be a float type")
	_, err = TransposeConvOp(input, MS(F32, 2, 5, 3, 3), bias, axes, []int{2, 2}, nil)
	require.Error(t, err, "kernel input channels mismatch")
	_, err = TransposeConvOp(input, kernel, bias, axes, []int{0, 2}, nil)
	require.Error(t, err, "stride must be >= 1")
}
