package shapeinference

import (
	"github.com/gomlir/gomlir/dialect"
	"github.com/gomlir/gomlir/types"
	"github.com/gomlir/gomlir/types/shapes"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// checkPoolAxesConfig validates that batch, channels and spatial axes cover every axis of the operand
// exactly once. spatialRank is operand.Rank()-2.
func checkPoolAxesConfig(opName string, operand shapes.Shape, pool dialect.PoolAxesConfig) error {
	rank := operand.Rank()
	spatialRank := rank - 2
	if rank < 3 {
		return errors.Errorf("%s: operand needs to be at least rank-3 with axes (in any order) batch, channels and spatial -- operand shape is %s", opName, operand)
	}
	if len(pool.Spatial) != spatialRank {
		return errors.Errorf("%s: pool.Spatial (%v) must provide one value for each spatial axis (%d), operand shape is %s",
			opName, pool.Spatial, spatialRank, operand)
	}
	seen := types.SetWith(pool.Batch, pool.Channels)
	for _, spatialAxis := range pool.Spatial {
		if spatialAxis < 0 || spatialAxis >= rank {
			return errors.Errorf("%s: invalid pooling axes configuration (axis %d is out-of-bounds): batch=%d, channels=%d, spatial=%v",
				opName, spatialAxis, pool.Batch, pool.Channels, pool.Spatial)
		}
		seen.Insert(spatialAxis)
	}
	if pool.Batch < 0 || pool.Batch >= rank || pool.Channels < 0 || pool.Channels >= rank {
		return errors.Errorf("%s: invalid pooling axes configuration (batch or channels axis is out-of-bounds): batch=%d, channels=%d, spatial=%v",
			opName, pool.Batch, pool.Channels, pool.Spatial)
	}
	if len(seen) != rank {
		return errors.Errorf("%s: duplicate pooling axes configuration: batch=%d, channels=%d, spatial=%v",
			opName, pool.Batch, pool.Channels, pool.Spatial)
	}
	return nil
}

// checkWindowParams validates windowDimensions, strides and paddings against the spatial rank.
func checkWindowParams(opName string, spatialRank int, windowDimensions, strides []int, paddings [][2]int) error {
	if len(windowDimensions) != spatialRank {
		return errors.Errorf("%s: windowDimensions (%v) must provide one value for each spatial axis (%d)",
			opName, windowDimensions, spatialRank)
	}
	for i, windowDim := range windowDimensions {
		if windowDim < 1 {
			return errors.Errorf("%s: windowDimensions[%d]=%d must be >= 1", opName, i, windowDim)
		}
	}
	if len(strides) != 0 && len(strides) != spatialRank {
		return errors.Errorf("%s: strides (%v) must either be nil or provide one value for each spatial axis (%d)",
			opName, strides, spatialRank)
	}
	for i, stride := range strides {
		if stride < 1 {
			return errors.Errorf("%s: strides[%d]=%d must be >= 1", opName, i, stride)
		}
	}
	if len(paddings) != 0 && len(paddings) != spatialRank {
		return errors.Errorf("%s: paddings (%v) must either be nil or provide one value for each spatial axis (%d)",
			opName, paddings, spatialRank)
	}
	for i, padding := range paddings {
		if padding[0] < 0 || padding[1] < 0 {
			return errors.Errorf("%s: paddings[%d]=[%d, %d] must be non-negative", opName, i, padding[0], padding[1])
		}
	}
	return nil
}

// MaxPoolWithArgmaxOp returns the two output shapes (pooled values and flat argmax indices) of a
// max-pooling operation that also records the position of each maximum.
//
// The indices output has the same dimensions as the values output, with indicesDType (Int32 or Int64)
// holding the flat position of the maximum within the operand.
func MaxPoolWithArgmaxOp(operand shapes.Shape, pool dialect.PoolAxesConfig,
	windowDimensions, strides []int, paddings [][2]int,
	indicesDType dtypes.DType) (values, indicesShape shapes.Shape, err error) {
	opName := "MaxPoolWithArgmaxOp"
	if !operand.Ok() {
		err = errors.Errorf("%s: invalid operand shape %s", opName, operand)
		return
	}
	if !operand.DType.IsFloat() && !operand.DType.IsInt() {
		err = errors.Errorf("%s: operand DType must be a floating point or integer type, got %s", opName, operand)
		return
	}
	if indicesDType != dtypes.Int32 && indicesDType != dtypes.Int64 {
		err = errors.Errorf("%s: indicesDType must be Int32 or Int64, got %s", opName, indicesDType)
		return
	}
	if err = checkPoolAxesConfig(opName, operand, pool); err != nil {
		return
	}
	spatialRank := operand.Rank() - 2
	if err = checkWindowParams(opName, spatialRank, windowDimensions, strides, paddings); err != nil {
		return
	}

	values = operand.Clone()
	for spatialAxisIdx, operandAxis := range pool.Spatial {
		inputDim := operand.Dimensions[operandAxis]
		windowDim := windowDimensions[spatialAxisIdx]
		stride := windowDim
		if len(strides) > 0 {
			stride = strides[spatialAxisIdx]
		}
		paddingLow, paddingHigh := 0, 0
		if len(paddings) > 0 {
			paddingLow, paddingHigh = paddings[spatialAxisIdx][0], paddings[spatialAxisIdx][1]
		}
		paddedInputDim := inputDim + paddingLow + paddingHigh
		if windowDim > paddedInputDim {
			err = errors.Errorf("%s: window dimension %d for spatial axis %d is larger than padded input dimension %d (operand shape %s)",
				opName, windowDim, spatialAxisIdx, paddedInputDim, operand)
			return
		}
		values.Dimensions[operandAxis] = (paddedInputDim-windowDim)/stride + 1
	}

	indicesShape = values.Clone()
	indicesShape.DType = indicesDType
	return values, indicesShape, nil
}

// MaxUnpoolOp returns the output shape of the max-unpooling operation, the inverse of MaxPoolWithArgmax:
// the pooled values are scattered back to the positions recorded in indices, everything else is zero.
//
// The pooled input and indices must have the same dimensions, and outputDims gives the full output
// dimensions (the unpooled spatial extents are not recoverable from the pooled shape when the pooling
// window does not exactly tile the input).
func MaxUnpoolOp(operand, indicesShape shapes.Shape, pool dialect.PoolAxesConfig,
	windowDimensions, strides []int, paddings [][2]int,
	outputDims []int) (output shapes.Shape, err error) {
	opName := "MaxUnpoolOp"
	if !operand.Ok() {
		return shapes.Invalid(), errors.Errorf("%s: invalid operand shape %s", opName, operand)
	}
	if !indicesShape.Ok() {
		return shapes.Invalid(), errors.Errorf("%s: invalid indices shape %s", opName, indicesShape)
	}
	if indicesShape.DType != dtypes.Int32 && indicesShape.DType != dtypes.Int64 {
		return shapes.Invalid(), errors.Errorf("%s: indices DType must be Int32 or Int64, got %s", opName, indicesShape)
	}
	if !operand.EqualDimensions(indicesShape) {
		return shapes.Invalid(), errors.Errorf("%s: operand (%s) and indices (%s) must have the same dimensions", opName, operand, indicesShape)
	}
	if err = checkPoolAxesConfig(opName, operand, pool); err != nil {
		return shapes.Invalid(), err
	}
	spatialRank := operand.Rank() - 2
	if err = checkWindowParams(opName, spatialRank, windowDimensions, strides, paddings); err != nil {
		return shapes.Invalid(), err
	}
	if len(outputDims) != operand.Rank() {
		return shapes.Invalid(), errors.Errorf("%s: outputDims (%v) must provide one value per operand axis (%d)",
			opName, outputDims, operand.Rank())
	}
	for i, dim := range outputDims {
		if dim < 1 {
			return shapes.Invalid(), errors.Errorf("%s: outputDims[%d]=%d must be >= 1", opName, i, dim)
		}
	}
	if outputDims[pool.Batch] != operand.Dimensions[pool.Batch] {
		return shapes.Invalid(), errors.Errorf("%s: outputDims batch dimension (%d) must match the operand batch dimension (%d)",
			opName, outputDims[pool.Batch], operand.Dimensions[pool.Batch])
	}
	if outputDims[pool.Channels] != operand.Dimensions[pool.Channels] {
		return shapes.Invalid(), errors.Errorf("%s: outputDims channels dimension (%d) must match the operand channels dimension (%d)",
			opName, outputDims[pool.Channels], operand.Dimensions[pool.Channels])
	}

	// Verify that pooling outputDims with the same window geometry yields the operand dimensions back.
	for spatialAxisIdx, operandAxis := range pool.Spatial {
		unpooledDim := outputDims[operandAxis]
		windowDim := windowDimensions[spatialAxisIdx]
		stride := windowDim
		if len(strides) > 0 {
			stride = strides[spatialAxisIdx]
		}
		paddingLow, paddingHigh := 0, 0
		if len(paddings) > 0 {
			paddingLow, paddingHigh = paddings[spatialAxisIdx][0], paddings[spatialAxisIdx][1]
		}
		paddedDim := unpooledDim + paddingLow + paddingHigh
		if windowDim > paddedDim {
			return shapes.Invalid(), errors.Errorf("%s: window dimension %d for spatial axis %d is larger than padded output dimension %d",
				opName, windowDim, spatialAxisIdx, paddedDim)
		}
		pooledDim := (paddedDim-windowDim)/stride + 1
		if pooledDim != operand.Dimensions[operandAxis] {
			return shapes.Invalid(), errors.Errorf("%s: outputDims[%d]=%d pools to %d with the given window geometry, but the operand dimension is %d",
				opName, operandAxis, unpooledDim, pooledDim, operand.Dimensions[operandAxis])
		}
	}

	return shapes.Make(operand.DType, outputDims...), nil
}

// TransposeConvOp returns the output shape of a transposed convolution (also known as deconvolution or
// fractionally-strided convolution) with a per-output-channel bias added to the result.
//
// Each spatial output dimension is (inputDim-1)*stride + kernelDim - paddingLow - paddingHigh, the
// gradient counterpart of the forward convolution's output dimension formula.
func TransposeConvOp(input, kernel, bias shapes.Shape, axes dialect.ConvolveAxesConfig,
	strides []int, paddings [][2]int) (shapes.Shape, error) {
	errorf := func(format string, args ...any) (shapes.Shape, error) {
		return shapes.Invalid(), errors.Errorf("TransposeConvOp: "+format, args...)
	}

	if !input.Ok() {
		return errorf("invalid input (operand) shape %s", input)
	}
	if !kernel.Ok() {
		return errorf("invalid kernel shape %s", kernel)
	}
	if !input.DType.IsFloat() {
		return errorf("input DType must be a floating point type, got %s", input)
	}
	if input.DType != kernel.DType {
		return errorf("input (%s) and kernel (%s) data types (DType) must match", input, kernel)
	}

	rank := input.Rank()
	spatialRank := rank - 2
	if rank < 3 {
		return errorf("input (operand) needs to be at least rank-3 with axes (in any order) batch, channels and spatial -- input shape is %s", input)
	}
	if kernel.Rank() != rank {
		return errorf("input (operand) and kernel have different rank!? -- input shape is %s and kernel shape is %s", input, kernel)
	}

	if len(axes.InputSpatial) != spatialRank {
		return errorf("axes.InputSpatial (%v) must provide one value for each spatial axis (%d), input shape is %s",
			axes.InputSpatial, spatialRank, input)
	}
	inputAxes := types.SetWith(axes.InputBatch, axes.InputChannels)
	for _, inputAxis := range axes.InputSpatial {
		if inputAxis < 0 || inputAxis >= rank {
			return errorf("invalid input axes configuration (axis %d is out-of-bounds): batch=%d, channel=%d, spatial=%v",
				inputAxis, axes.InputBatch, axes.InputChannels, axes.InputSpatial)
		}
		inputAxes.Insert(inputAxis)
	}
	if len(inputAxes) != rank {
		return errorf("duplicate input axes configuration: batch=%d, channel=%d, spatial=%v", axes.InputBatch, axes.InputChannels, axes.InputSpatial)
	}

	if len(axes.KernelSpatial) != spatialRank {
		return errorf("axes.KernelSpatial (%v) must provide one value for each spatial axis (%d), kernel shape is %s",
			axes.KernelSpatial, spatialRank, kernel)
	}
	kernelAxes := types.SetWith(axes.KernelInputChannels, axes.KernelOutputChannels)
	for _, kernelAxis := range axes.KernelSpatial {
		if kernelAxis < 0 || kernelAxis >= rank {
			return errorf("invalid kernel axes configuration (axis %d is out-of-bounds): input channel=%d, output channel=%d, spatial=%v",
				kernelAxis, axes.KernelInputChannels, axes.KernelOutputChannels, axes.KernelSpatial)
		}
		kernelAxes.Insert(kernelAxis)
	}
	if len(kernelAxes) != rank {
		return errorf("duplicate kernel axes configuration: input channel=%d, output channel=%d, spatial=%v",
			axes.KernelInputChannels, axes.KernelOutputChannels, axes.KernelSpatial)
	}

	if len(axes.OutputSpatial) != spatialRank {
		return errorf("axes.OutputSpatial (%v) must have one value for each spatial axis (%d), input shape is %s",
			axes.OutputSpatial, spatialRank, input)
	}
	outputAxes := types.SetWith(axes.OutputBatch, axes.OutputChannels)
	for _, outputAxis := range axes.OutputSpatial {
		if outputAxis < 0 || outputAxis >= rank {
			return errorf("invalid output axes configuration (axis %d is out-of-bounds): batch=%d, channels=%d, spatial=%v",
				outputAxis, axes.OutputBatch, axes.OutputChannels, axes.OutputSpatial)
		}
		outputAxes.Insert(outputAxis)
	}
	if len(outputAxes) != rank {
		return errorf("duplicate output axes configuration: batch=%d, channel=%d, spatial=%v", axes.OutputBatch, axes.OutputChannels, axes.OutputSpatial)
	}

	if len(strides) != 0 && len(strides) != spatialRank {
		return errorf("strides (%v) must either be nil or provide one value for each spatial axis (%d), input shape is %s",
			strides, spatialRank, input)
	}
	if len(paddings) != 0 && len(paddings) != spatialRank {
		return errorf("paddings (%v) must either be nil or provide one value for each spatial axis (%d), input shape is %s",
			paddings, spatialRank, input)
	}

	// Check channels: input channels feed the kernel input channels directly.
	inputChannels := input.Dim(axes.InputChannels)
	kernelInputChannels := kernel.Dim(axes.KernelInputChannels)
	if inputChannels != kernelInputChannels {
		return errorf("input channels dimension (%d) must match the kernel input channels dimension (%d) -- input shape is %s, kernel shape is %s",
			inputChannels, kernelInputChannels, input, kernel)
	}
	outputChannels := kernel.Dim(axes.KernelOutputChannels)

	// Check bias: one value per output channel.
	if bias.Rank() != 1 {
		return errorf("bias must be rank-1 with one value per output channel, got %s", bias)
	}
	if bias.DType != input.DType {
		return errorf("bias (%s) and input (%s) data types (DType) must match", bias, input)
	}
	if bias.Dimensions[0] != outputChannels {
		return errorf("bias dimension (%d) must match the kernel output channels dimension (%d)", bias.Dimensions[0], outputChannels)
	}

	output := input.Clone()
	output.Dimensions[axes.OutputBatch] = input.Dim(axes.InputBatch)
	output.Dimensions[axes.OutputChannels] = outputChannels

	for spatialAxisIdx, inputAxis := range axes.InputSpatial {
		inputDim := input.Dim(inputAxis)
		kernelDim := kernel.Dim(axes.KernelSpatial[spatialAxisIdx])
		stride := 1
		var padding [2]int
		if len(strides) > 0 {
			stride = strides[spatialAxisIdx]
		}
		if len(paddings) > 0 {
			padding = paddings[spatialAxisIdx]
		}
		if stride < 1 {
			return errorf("stride[%d]=%d must be >= 1 for input shape %s", spatialAxisIdx, stride, input)
		}
		if padding[0] < 0 || padding[1] < 0 {
			return errorf("paddings[%d]=[%d, %d] must be non-negative for input shape %s", spatialAxisIdx, padding[0], padding[1], input)
		}

		outputDim := (inputDim-1)*stride + kernelDim - padding[0] - padding[1]
		if outputDim < 1 {
			return errorf("output dimension for spatial axis %d is %d, the strides (%v) and paddings (%v) remove all data for input shape %s",
				spatialAxisIdx, outputDim, strides, paddings, input)
		}
		output.Dimensions[axes.OutputSpatial[spatialAxisIdx]] = outputDim
	}

	return output, nil
}
