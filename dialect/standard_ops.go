package dialect

import (
	"github.com/gomlir/gomlir/types/shapes"
	"github.com/gomlx/gopjrt/dtypes"
)

// StandardOps lists the standard operations of the lite dialect.
//
// This interface is the dialect's declarative schema: it is parsed by
// internal/schemaparser and consumed by cmd/dialect_generator, which emits the
// OpDef metadata table (gen_op_defs.go). The doc comment of each method
// carries the operation semantics.
type StandardOps interface {

	// Abs returns the element-wise absolute value of x.
	Abs(x Op) (Op, error)

	// Add returns the element-wise sum of the two values.
	// Standard broadcasting rules apply (see package documentation).
	Add(lhs, rhs Op) (Op, error)

	// ArgMinMax calculates the "argmin" or "argmax" across an axis of the given input array x.
	//
	// outputDType defines the output of the argmin/argmax, it doesn't need to be the same as the input.
	// It's a form of reduction on the given axis, and that axis goes away.
	// So the rank of the result is one less than the rank of x.
	//
	// Examples:
	//
	//	ArgMinMax(x={{2, 0, 7}, {-3, 4, 2}}, axis=1, isMin=true) -> {1, 0}  // (it chooses the 0 and the -3)
	//	ArgMinMax(x={{2, 0, 7}, {-3, 4, 2}}, axis=0, isMin=false) -> {0, 1, 0} // (it chooses the 2, 4, and 7)
	ArgMinMax(x Op, axis int, outputDType dtypes.DType, isMin bool) (Op, error)

	// Broadcast prefixes dimensions to an array by duplicating the data in the array.
	//
	// The new dimensions are inserted on the left, that is, if prefixDims has values `{a0, ..., aN}`
	// and the operand shape has dimensions {b0, ..., bM}, the output shape is `{a0, ..., aN, b0, ..., bM}`.
	//
	// The new dimensions id in the output are the copies of the operand, that is, the "1" at dimension "i"
	// in the output index is chosen from the operand for any value in dimension i.
	Broadcast(x Op, prefixDims ...int) (Op, error)

	// BroadcastInDim broadcasts x to an output with the given shape.
	// broadcastAxes has an output axis value for each x axis (len(broadcastAxes) == x.Shape.Rank()).
	// The i-th axis of x is mapped to the broadcastAxes[i]-th dimension of the output.
	// broadcastAxes must be increasing: this operation cannot be used to transpose axes, it will only
	// broadcast and introduce new axes in-between.
	// This also requires that the i-th input axis is either 1 or is the same as the
	// output dimension it's broadcasting into.
	BroadcastInDim(x Op, outputShape shapes.Shape, broadcastAxes []int) (Op, error)

	// Ceil returns the element-wise smallest integral value not less than x.
	Ceil(x Op) (Op, error)

	// Concatenate operands on the given axis.
	//
	// All axes that are not being concatenated must match dimensions.
	// It doesn't work with scalars.
	// If there is only one operand, it is returned and this is a no-op.
	Concatenate(axis int, operands ...Op) (Op, error)

	// ConvGeneral is a generic convolution operation with support for:
	// - Arbitrary number of spatial axes.
	// - Arbitrary transposition of axes.
	// - Strides and padding.
	// - Dilations of the input.
	// - Dilations of the kernel, aka. atrous convolution.
	// - Channels grouping (on the input channels).
	// - Batch grouping.
	//
	// Note:
	//   - Another common term for "channels" is "features".
	//   - "Kernel" is also commonly called "weights" or "filters".
	ConvGeneral(
		input, kernel Op,
		axes ConvolveAxesConfig,
		strides []int,
		paddings [][2]int,
		inputDilations, kernelDilations []int,
		channelGroupCount, batchGroupCount int,
	) (Op, error)

	// Div returns the element-wise division of the two values.
	// Standard broadcasting rules apply (see package documentation).
	Div(lhs, rhs Op) (Op, error)

	// DotGeneral takes as input lhs (left-hand-side) and rhs (right-hand-side) specifications
	// for a general vector product -- a generalized "Einsum". Each axis can be:
	//
	//   - Just aligned (batch axes), so the output has the same axes as the inputs. The dimensions
	//     must match in lhs and rhs.
	//   - Crossed (default), in which case the output is the combination (concatenation) of the
	//     dimensions.
	//   - Contracted (contracting axes), where the output does multiply the values and reduce sum
	//     those dimensions.
	//
	// It follows that the resulting dimension number starts with the batch dimension, then the 'lhs'
	// non-contracting/non-batch dimension, and finally the 'rhs' non-contracting/non-batch dimension.
	DotGeneral(
		lhs Op,
		lhsContractingAxes, lhsBatchAxes []int,
		rhs Op,
		rhsContractingAxes, rhsBatchAxes []int,
	) (Op, error)

	// Equal performs element-wise equality check, returns boolean results with the same dimensions as input.
	Equal(lhs, rhs Op) (Op, error)

	// Exp returns the element-wise exponential of x.
	Exp(x Op) (Op, error)

	// Floor returns the element-wise largest integral value not greater than x.
	Floor(x Op) (Op, error)

	// Gather slices pieces of the operand at the positions listed in startIndices.
	//
	// The output of Gather has the same DType of the operand, from where we are pulling the data.
	//
	// Its output shape is composed of 2 parts:
	//
	//   - Batch axes: they come from the axes of startIndices, except the "indexVectorAxis" (usually the last)
	//     that is used as the indices into the operand. (*)
	//   - "Offset axes": these are axes that come from the operand, the sizes given by sliceSizes.
	//     Notice that if sliceSizes for an axis is 1, and that axis is present in the collapsedSliceAxes list, this
	//     axis gets omitted in the output.
	//
	// So in general output.Rank() = startIndices.Rank() - 1 + len(offsetOutputAxes).
	//
	// (*) One exception is if indexVectorAxis == startIndices.Rank(), in which case we assume there is an
	// extra implicit axis in startIndices of size 1, and output.Rank() = startIndices.Rank() + len(offsetOutputAxes).
	//
	// Arguments:
	//   - operand: the values from where we are gathering.
	//   - startIndices: the indices we want to gather. The axis pointed by indexVectorAxis
	//     lists the indices of the slice to be gathered in the operand array (their values are mapped to the axes
	//     in the operand according to startIndexMap). All other axes are "batch dimensions" and they will have
	//     equivalent axes (same dimensions) in the output.
	//   - indexVectorAxis: which of the axes in startIndices is collected and used as the start index for slices
	//     to be gathered in the operand. It is typically the last axis of startIndices.
	//   - offsetOutputAxes: _output_ axes (not the operand's) that will hold the "offset slices", slices that are not
	//     collapsed. One must have operand.Rank() == len(collapsedSliceAxes) + len(offsetOutputAxes).
	//   - collapsedSliceAxes: _operand_ axes (for which sliceSizes are 1) not to be included in the output.
	//     One must have sliceSizes[collapsedSliceAxes[i]] == 1 for all i.
	//   - startIndexMap: maps which value in startIndices is used for which axis in the operand.
	//     Notice len(startIndexMap) must match startIndices.Dimensions[indexVectorAxis].
	//   - sliceSizes: a size for each operand's axis, so len(sliceSizes) == operand.Rank().
	//   - indicesAreSorted: can be set to true if it's guaranteed that startIndices are sorted by the user.
	//     This allows for some optimizations in some platforms.
	Gather(
		operand, startIndices Op,
		indexVectorAxis int,
		offsetOutputAxes, collapsedSliceAxes, startIndexMap, sliceSizes []int,
		indicesAreSorted bool,
	) (Op, error)

	// GetTupleElement extracts the element at index from a tuple value.
	GetTupleElement(tuple Op, index int) (Op, error)

	// GreaterOrEqual performs element-wise comparison, returns boolean results with the same dimensions as input.
	GreaterOrEqual(lhs, rhs Op) (Op, error)

	// GreaterThan performs element-wise comparison, returns boolean results with the same dimensions as input.
	GreaterThan(lhs, rhs Op) (Op, error)

	// LessOrEqual performs element-wise comparison, returns boolean results with the same dimensions as input.
	LessOrEqual(lhs, rhs Op) (Op, error)

	// LessThan performs element-wise comparison, returns boolean results with the same dimensions as input.
	LessThan(lhs, rhs Op) (Op, error)

	// Log returns the element-wise natural logarithm of x.
	Log(x Op) (Op, error)

	// LogicalAnd returns the element-wise logical AND operation. Operands must be boolean.
	LogicalAnd(lhs, rhs Op) (Op, error)

	// LogicalNot returns the element-wise logical NOT operation. The operand must be boolean.
	LogicalNot(x Op) (Op, error)

	// LogicalOr returns the element-wise logical OR operation. Operands must be boolean.
	LogicalOr(lhs, rhs Op) (Op, error)

	// Logistic returns the element-wise expit (also known as the logistic or sigmoid function):
	// 1/(1+exp(-x)).
	Logistic(x Op) (Op, error)

	// Max returns the element-wise highest value among the two.
	Max(lhs, rhs Op) (Op, error)

	// Min returns the element-wise smallest value among the two.
	Min(lhs, rhs Op) (Op, error)

	// Mul returns the element-wise multiplication of the two values.
	// Standard broadcasting rules apply (see package documentation).
	Mul(lhs, rhs Op) (Op, error)

	// Neg returns the element-wise negation of x.
	Neg(x Op) (Op, error)

	// NotEqual performs element-wise inequality check, returns boolean results with the same dimensions as input.
	NotEqual(lhs, rhs Op) (Op, error)

	// Pad injects padding on the start, end, or interior (in between each element) of the given operand.
	// There must be at most `operand.Rank()` axesConfig values. Missing PadAxis are assumed to be zeros,
	// that is, no padding for those axes.
	//
	// The fillValue must be a scalar with the same DType as the operand.
	Pad(x, fillValue Op, axesConfig ...PadAxis) (Op, error)

	// Pow returns the element-wise power operation: lhs^rhs.
	Pow(lhs, rhs Op) (Op, error)

	// ReduceLogicalAnd reduces x (it must be boolean) by taking the logical AND of the values
	// across the given axes. If no axes are given, it reduces the full array to a scalar.
	ReduceLogicalAnd(x Op, axes ...int) (Op, error)

	// ReduceLogicalOr reduces x (it must be boolean) by taking the logical OR of the values
	// across the given axes. If no axes are given, it reduces the full array to a scalar.
	ReduceLogicalOr(x Op, axes ...int) (Op, error)

	// ReduceMax reduces x by taking the max value across the given axes.
	// If no axes are given, it reduces the full array to a scalar.
	ReduceMax(x Op, axes ...int) (Op, error)

	// ReduceMin reduces x by taking the min value across the given axes.
	// If no axes are given, it reduces the full array to a scalar.
	ReduceMin(x Op, axes ...int) (Op, error)

	// ReduceProduct reduces x by multiplying the values across the given axes.
	// If no axes are given, it reduces the full array to a scalar.
	ReduceProduct(x Op, axes ...int) (Op, error)

	// ReduceSum reduces x by summing the values across the given axes.
	// If no axes are given, it reduces the full array to a scalar.
	ReduceSum(x Op, axes ...int) (Op, error)

	// Reshape reshapes x to the new dimensions.
	// Total size cannot change, and the value is reinterpreted "in row-major order".
	Reshape(x Op, dimensions ...int) (Op, error)

	// Reverse returns x with the values for the given axes reversed, that is,
	// the value indexed at `i` will be swapped with the value at index `(dimension[axis]-1)-i`.
	// It doesn't work for scalars.
	Reverse(x Op, axes ...int) (Op, error)

	// Round returns the element-wise nearest integral value, rounding halfway cases away from zero.
	Round(x Op) (Op, error)

	// Rsqrt returns the element-wise reciprocal of the square root: 1/sqrt(x).
	Rsqrt(x Op) (Op, error)

	// ScatterSum adds up the values in updates at the positions of the operand pointed by indices.
	// The output has the same shape as the operand: the scattered updates are applied to it.
	//
	// The `indexVectorAxis`, `updateWindowAxes`, `insertedWindowAxes` and `scatterAxesToOperandAxes`
	// mirror the Gather axes configuration, mapping positions in indices/updates to positions in
	// the operand.
	ScatterSum(
		operand, indices, updates Op,
		indexVectorAxis int,
		updateWindowAxes, insertedWindowAxes, scatterAxesToOperandAxes []int,
		indicesAreSorted, uniqueIndices bool,
	) (Op, error)

	// Sign returns the element-wise sign of x: -1, 0 or +1.
	Sign(x Op) (Op, error)

	// Slice extracts a sub-array from the input array.
	// The sub-array is of the same rank as the input and contains the values inside a bounding box
	// within the input array where the dimensions and indices of the bounding box are given as
	// arguments to the slice operation.
	// The strides set the input stride of the slice in each axis and must be >= 1.
	// It is optional, and if missing, it is assumed to be 1 for every dimension.
	// Examples:
	//
	//	Slice(x={0, 1, 2, 3, 4}, starts={2}, limits={4}, strides=nil) -> {2, 3}
	//	Slice(x={0, 1, 2, 3, 4}, starts={2}, limits={5}, strides={2}) -> {2, 4}
	Slice(x Op, starts, limits, strides []int) (Op, error)

	// Sqrt returns the element-wise square root of x.
	Sqrt(x Op) (Op, error)

	// Sub returns the element-wise subtraction of the two values.
	// Standard broadcasting rules apply (see package documentation).
	Sub(lhs, rhs Op) (Op, error)

	// Tanh returns the element-wise hyperbolic tangent of x.
	Tanh(x Op) (Op, error)

	// Transpose axes of x.
	// There must be one value in permutations for each axis in x.
	// The output will have: output.Shape.Dimension[ii] = x.Shape.Dimension[permutations[i]].
	Transpose(x Op, permutations ...int) (Op, error)

	// Tuple builds a tuple value from the given operands.
	// Use GetTupleElement to extract individual values back.
	Tuple(operands ...Op) (Op, error)

	// Where takes element-wise values from onTrue or onFalse depending on the value of condition
	// (expected to be boolean).
	//
	// The condition must either be a scalar or match the shape of onTrue and onFalse.
	// onTrue and onFalse must have the same shape, or one can be a scalar.
	Where(condition, onTrue, onFalse Op) (Op, error)

	// While repeatedly applies a body sub-computation to the state while a condition
	// sub-computation returns true.
	//
	// The dialect carries the sub-computations by signature only: cond must take the state shapes
	// and return a boolean scalar; body must take and return the state shapes unchanged.
	// The sub-computation bodies belong to the host runtime.
	While(initialStates []Op, cond, body ComputationSignature) ([]Op, error)
}

// CustomOps lists the operations backed by custom kernel libraries
// (see package kernels) rather than by the standard lowering.
type CustomOps interface {

	// MaxPoolWithArgmax slides a max-reduction window over the spatial axes of the input and
	// returns both the max values and the index each max was taken from.
	//
	// Indices are flattened positions within the spatial volume of the input, per batch and
	// channel. indicesDType selects the integer dtype of the indices output (Int32 or Int64).
	//
	// The output spatial dimension for each axis follows the usual window arithmetic:
	//
	//	outDim = (inDim + padLow + padHigh - windowDim)/stride + 1
	MaxPoolWithArgmax(
		input Op,
		pool PoolAxesConfig,
		windowDimensions, strides []int,
		paddings [][2]int,
		indicesDType dtypes.DType,
	) (values, indices Op, err error)

	// MaxUnpool is the inverse of MaxPoolWithArgmax: it scatters the values of the input into
	// a larger tensor of dimensions outputDims, at the positions recorded in indices;
	// every other position is filled with zeros.
	//
	// The indices must come from a MaxPoolWithArgmax with compatible geometry: input and
	// indices must have the same dimensions, and the window arithmetic over outputDims must
	// yield back the input spatial dimensions.
	MaxUnpool(
		input, indices Op,
		pool PoolAxesConfig,
		windowDimensions, strides []int,
		paddings [][2]int,
		outputDims []int,
	) (Op, error)

	// TransposeConvBias is a transposed convolution (aka. deconvolution or fractionally
	// strided convolution) with a fused bias addition.
	//
	// It computes the gradient of ConvGeneral with respect to its input, which upsamples:
	// for each spatial axis, outDim = (inDim-1)*stride + kernelDim - padLow - padHigh.
	// The bias must be rank-1 with one value per output channel.
	TransposeConvBias(
		input, kernel, bias Op,
		axes ConvolveAxesConfig,
		strides []int,
		paddings [][2]int,
	) (Op, error)
}
