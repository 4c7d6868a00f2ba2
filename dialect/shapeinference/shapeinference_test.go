package shapeinference

import (
	"testing"

	. "github.com/gomlir/gomlir/dialect"
	"github.com/gomlir/gomlir/types/shapes"
	"github.com/gomlir/gomlir/types/xslices"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/require"
)

// Aliases
var (
	Bool = dtypes.Bool
	I32  = dtypes.Int32
	I64  = dtypes.Int64
	F32  = dtypes.Float32

	MS = shapes.Make
)

// must1 panics if there is an error.
func must1[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

func TestBinaryOp(t *testing.T) {
	// Invalid data types check.
	var err error
	_, err = BinaryOp(OpTypeLogicalAnd, MS(I32), MS(I32))
	require.Error(t, err)
	_, err = BinaryOp(OpTypeMul, MS(Bool, 1), MS(Bool, 1))
	require.Error(t, err)
	_, err = BinaryOp(OpTypeAdd, MS(F32, 2), MS(I32, 2))
	require.Error(t, err)

	// Invalid operation type (not binary op).
	_, err = BinaryOp(OpTypeExp, MS(F32), MS(F32))
	require.Error(t, err)

	// The same shape should be ok.
	var output shapes.Shape
	boolMatrixShape := MS(Bool, 3, 3)
	output, err = BinaryOp(OpTypeLogicalOr, boolMatrixShape, boolMatrixShape)
	require.NoError(t, err)
	require.True(t, boolMatrixShape.Equal(output))

	// Scalar with matrix.
	scalarShape := MS(F32)
	matrixShape := MS(F32, 2, 3)
	expectedShape := MS(F32, 2, 3)
	output, err = BinaryOp(OpTypeAdd, scalarShape, scalarShape)
	require.NoError(t, err)
	require.True(t, scalarShape.Equal(output))
	output, err = BinaryOp(OpTypeAdd, scalarShape, matrixShape)
	require.NoError(t, err)
	require.True(t, expectedShape.Equal(output))

	// Broadcasting on both sides.
	shape1 := MS(F32, 2, 1, 3)
	shape2 := MS(F32, 1, 4, 3)
	expectedBroadcastShape := MS(F32, 2, 4, 3)
	require.True(t, expectedBroadcastShape.Equal(must1(BinaryOp(OpTypeMul, shape1, shape2))))

	// Matrix with scalar.
	require.True(t, expectedShape.Equal(must1(BinaryOp(OpTypeAdd, matrixShape, scalarShape))))

	// Invalid broadcasting shapes.
	invalidShape1 := MS(F32, 2, 3)
	invalidShape2 := MS(F32, 3, 2)
	_, err = BinaryOp(OpTypeAdd, invalidShape1, invalidShape2)
	require.Error(t, err)
}

func TestComparisonOp(t *testing.T) {
	// Output is always boolean, with the broadcast dimensions.
	output := must1(ComparisonOp(OpTypeLessThan, MS(F32, 2, 1), MS(F32, 2, 3)))
	require.True(t, MS(Bool, 2, 3).Equal(output))

	output = must1(ComparisonOp(OpTypeEqual, MS(I32), MS(I32, 5)))
	require.True(t, MS(Bool, 5).Equal(output))

	// Mismatched dtypes and non-comparison ops are rejected.
	var err error
	_, err = ComparisonOp(OpTypeEqual, MS(F32, 2), MS(I32, 2))
	require.Error(t, err)
	_, err = ComparisonOp(OpTypeAdd, MS(F32, 2), MS(F32, 2))
	require.Error(t, err)
}

func TestUnaryOp(t *testing.T) {
	// Invalid data types check.
	require.Panics(t, func() { must1(UnaryOp(OpTypeLogicalNot, MS(F32))) })
	require.Panics(t, func() { must1(UnaryOp(OpTypeLogicalNot, MS(I32))) })
	require.Panics(t, func() { must1(UnaryOp(OpTypeNeg, MS(Bool))) })
	require.Panics(t, func() { must1(UnaryOp(OpTypeSqrt, MS(I32))) })
	require.Panics(t, func() { must1(UnaryOp(OpTypeNeg, MS(dtypes.Uint64))) })

	// Invalid operation type (not unary op).
	require.Panics(t, func() { must1(UnaryOp(OpTypeAdd, MS(F32))) })

	// Valid operations
	boolShape := MS(Bool, 2, 3)
	require.True(t, boolShape.Equal(must1(UnaryOp(OpTypeLogicalNot, boolShape))))

	floatShape := MS(F32, 2, 3)
	require.True(t, floatShape.Equal(must1(UnaryOp(OpTypeExp, floatShape))))
	require.True(t, floatShape.Equal(must1(UnaryOp(OpTypeNeg, floatShape))))
	require.True(t, floatShape.Equal(must1(UnaryOp(OpTypeTanh, floatShape))))

	intShape := MS(I32, 3, 3)
	require.True(t, intShape.Equal(must1(UnaryOp(OpTypeAbs, intShape))))
}

func TestWhereOp(t *testing.T) {
	cond := MS(Bool, 2, 3)
	onTrue := MS(F32, 2, 3)
	onFalse := MS(F32, 2, 3)
	require.True(t, onTrue.Equal(must1(WhereOp(cond, onTrue, onFalse))))

	// Scalar branches broadcast to the condition shape.
	require.True(t, MS(F32, 2, 3).Equal(must1(WhereOp(cond, MS(F32), MS(F32)))))
	require.True(t, onFalse.Equal(must1(WhereOp(MS(Bool), MS(F32), onFalse))))

	// Non-boolean condition.
	_, err := WhereOp(MS(F32, 2, 3), onTrue, onFalse)
	require.Error(t, err)

	// Mismatched branch shapes.
	_, err = WhereOp(cond, MS(F32, 2, 3), MS(F32, 3, 2))
	require.Error(t, err)

	// Condition dimensions don't match the output.
	_, err = WhereOp(MS(Bool, 3, 2), onTrue, onFalse)
	require.Error(t, err)
}

func TestReshapeOp(t *testing.T) {
	require.True(t, MS(F32, 6).Equal(must1(ReshapeOp(MS(F32, 2, 3), []int{6}))))
	require.True(t, MS(I32, 3, 2, 1).Equal(must1(ReshapeOp(MS(I32, 6), []int{3, 2, 1}))))

	_, err := ReshapeOp(MS(F32, 2, 3), []int{7})
	require.Error(t, err)
}

func TestTransposeOp(t *testing.T) {
	require.True(t, MS(F32, 3, 2).Equal(must1(TransposeOp(MS(F32, 2, 3), []int{1, 0}))))
	require.True(t, MS(F32, 4, 2, 3).Equal(must1(TransposeOp(MS(F32, 2, 3, 4), []int{2, 0, 1}))))

	// Identity permutation.
	operand := MS(F32, 2, 3, 4)
	require.True(t, operand.Equal(must1(TransposeOp(operand, xslices.Iota(0, operand.Rank())))))

	var err error
	_, err = TransposeOp(MS(F32, 2, 3), []int{0})
	require.Error(t, err)
	_, err = TransposeOp(MS(F32, 2, 3), []int{0, 2})
	require.Error(t, err)
	_, err = TransposeOp(MS(F32, 2, 3), []int{1, 1})
	require.Error(t, err)
}

func TestBroadcastOps(t *testing.T) {
	require.True(t, MS(F32, 4, 5, 2, 3).Equal(must1(BroadcastOp(MS(F32, 2, 3), []int{4, 5}))))
	require.True(t, MS(F32, 2, 3).Equal(must1(BroadcastOp(MS(F32, 2, 3), nil))))
	_, err := BroadcastOp(MS(F32, 2), []int{0})
	require.Error(t, err)

	// BroadcastInDim only verifies, the output shape is given.
	require.NoError(t, BroadcastInDimOp(MS(F32, 3, 1), MS(F32, 2, 3, 4), []int{1, 2}))
	require.Error(t, BroadcastInDimOp(MS(F32, 3, 1), MS(F32, 2, 3, 4), []int{1}))
	require.Error(t, BroadcastInDimOp(MS(F32, 3, 1), MS(F32, 2, 3, 4), []int{1, 1}))
	require.Error(t, BroadcastInDimOp(MS(F32, 3, 2), MS(F32, 2, 3, 4), []int{1, 2}))
}

func TestReduceOp(t *testing.T) {
	operand := MS(F32, 2, 3, 4)
	require.True(t, MS(F32, 2, 4).Equal(must1(ReduceOp(OpTypeReduceSum, operand, []int{1}))))
	require.True(t, MS(F32).Equal(must1(ReduceOp(OpTypeReduceMax, operand, []int{0, 1, 2}))))
	require.True(t, operand.Equal(must1(ReduceOp(OpTypeReduceProduct, operand, nil))))

	// Logical reductions require booleans.
	boolOperand := MS(Bool, 2, 3)
	require.True(t, MS(Bool, 2).Equal(must1(ReduceOp(OpTypeReduceLogicalAnd, boolOperand, []int{1}))))
	var err error
	_, err = ReduceOp(OpTypeReduceLogicalOr, operand, []int{0})
	require.Error(t, err)
	_, err = ReduceOp(OpTypeReduceSum, boolOperand, []int{0})
	require.Error(t, err)

	// Invalid axis and non-reduce op.
	_, err = ReduceOp(OpTypeReduceSum, operand, []int{3})
	require.Error(t, err)
	_, err = ReduceOp(OpTypeAdd, operand, []int{0})
	require.Error(t, err)

	// Out-of-range axes are rejected even when they would consume the whole rank.
	_, err = ReduceOp(OpTypeReduceSum, MS(F32, 2, 3), []int{7, 9})
	require.Error(t, err)

	// Repeated axes are rejected.
	_, err = ReduceOp(OpTypeReduceSum, operand, []int{1, 1})
	require.Error(t, err)
}

func TestConcatenateOp(t *testing.T) {
	s1 := MS(F32, 2, 3)
	s2 := MS(F32, 2, 5)
	require.True(t, MS(F32, 2, 8).Equal(must1(ConcatenateOp([]shapes.Shape{s1, s2}, 1))))
	require.True(t, s1.Equal(must1(ConcatenateOp([]shapes.Shape{s1}, 0))))

	var err error
	_, err = ConcatenateOp(nil, 0)
	require.Error(t, err)
	_, err = ConcatenateOp([]shapes.Shape{s1, MS(I32, 2, 5)}, 1)
	require.Error(t, err)
	_, err = ConcatenateOp([]shapes.Shape{s1, MS(F32, 3, 3)}, 1)
	require.Error(t, err)
	_, err = ConcatenateOp([]shapes.Shape{s1, s2}, 2)
	require.Error(t, err)
}

func TestSliceOp(t *testing.T) {
	require.True(t, MS(F32, 6).Equal(must1(SliceOp(MS(F32, 10), []int{2}, []int{8}, []int{1}))))
	// Dim 0: ceil((10-1)/2) = 5 elements (indices 1, 3, 5, 7, 9)
	require.True(t, MS(F32, 5).Equal(must1(SliceOp(MS(F32, 10), []int{1}, []int{10}, []int{2}))))
	require.True(t, MS(I32, 3, 3).Equal(must1(SliceOp(MS(I32, 5, 6), []int{1, 2}, []int{4, 5}, []int{1, 1}))))

	operand := MS(F32, 10, 5)
	var err error
	_, err = SliceOp(operand, []int{1}, []int{8, 4}, []int{1, 1})
	require.Error(t, err)
	_, err = SliceOp(operand, []int{1, 1}, []int{8, 4}, []int{1, 0})
	require.Error(t, err)
	_, err = SliceOp(operand, []int{-1, 1}, []int{8, 4}, []int{1, 1})
	require.Error(t, err)
	_, err = SliceOp(operand, []int{1, 1}, []int{8, 6}, []int{1, 1})
	require.Error(t, err)
}

func TestPadOp(t *testing.T) {
	operand := MS(F32, 3, 4)
	fill := MS(F32)

	// Start/End padding only.
	output := must1(PadOp(operand, fill, []PadAxis{{Start: 1, End: 2}, {}}))
	require.True(t, MS(F32, 6, 4).Equal(output))

	// Interior padding inserts between elements: 3 + 2*1 = 5.
	output = must1(PadOp(operand, fill, []PadAxis{{Interior: 1}, {}}))
	require.True(t, MS(F32, 5, 4).Equal(output))

	// Negative padding removes elements.
	output = must1(PadOp(operand, fill, []PadAxis{{Start: -1}, {End: -2}}))
	require.True(t, MS(F32, 2, 2).Equal(output))

	// Missing trailing PadAxis configurations mean no padding for those axes.
	output = must1(PadOp(operand, fill, []PadAxis{{Start: 1}}))
	require.True(t, MS(F32, 4, 4).Equal(output))
	output = must1(PadOp(operand, fill, nil))
	require.True(t, operand.Equal(output))

	var err error
	_, err = PadOp(operand, MS(F32, 2), []PadAxis{{}, {}})
	require.Error(t, err, "fillValue must be a scalar")
	_, err = PadOp(operand, MS(I32), []PadAxis{{}, {}})
	require.Error(t, err, "fillValue DType must match")
	_, err = PadOp(operand, fill, []PadAxis{{}, {}, {}})
	require.Error(t, err, "at most one PadAxis per operand axis")
	_, err = PadOp(operand, fill, []PadAxis{{Interior: -1}, {}})
	require.Error(t, err, "negative interior padding")
	_, err = PadOp(operand, fill, []PadAxis{{Start: -2, End: -1}, {}})
	require.Error(t, err, "padding leaves an empty dimension")
}

func TestReverseOp(t *testing.T) {
	operand := MS(F32, 2, 3, 4)
	require.True(t, operand.Equal(must1(ReverseOp(operand, []int{0, 2}))))
	require.True(t, operand.Equal(must1(ReverseOp(operand, nil))))

	var err error
	_, err = ReverseOp(operand, []int{3})
	require.Error(t, err)
	_, err = ReverseOp(operand, []int{1, 1})
	require.Error(t, err)
}

func TestArgMinMaxOp(t *testing.T) {
	require.True(t, MS(I32).Equal(must1(ArgMinMaxOp(MS(F32, 10), 0, I32))))
	require.True(t, MS(I64, 5).Equal(must1(ArgMinMaxOp(MS(F32, 5, 6), 1, I64))))
	require.True(t, MS(I32, 5, 6).Equal(must1(ArgMinMaxOp(MS(F32, 4, 5, 6), 0, I32))))

	var err error
	_, err = ArgMinMaxOp(MS(F32, 10), 0, F32)
	require.Error(t, err, "outputDType must be an integer type")
	_, err = ArgMinMaxOp(MS(F32, 10), 1, I32)
	require.Error(t, err, "axis out of range")
	_, err = ArgMinMaxOp(MS(F32), 0, I32)
	require.Error(t, err, "scalar operand")
}

func TestGatherOp(t *testing.T) {
	// Test 1:
	operand := MS(F32, 4, 3, 2, 2)
	startIndices := MS(I32, 3, 3, 2)
	indexVectorAxis := 1
	offsetOutputAxes := []int{0, 3}
	collapsedSliceAxes := []int{0, 2}
	startIndexMap := []int{0, 2, 3}
	sliceSizes := []int{1, 3, 1, 1}
	output, err := GatherOp(operand, startIndices, indexVectorAxis,
		offsetOutputAxes, collapsedSliceAxes, startIndexMap, sliceSizes, false)
	require.NoError(t, err)
	require.NoError(t, output.Check(F32, 3, 3, 2, 1))

	// Test 2: simple row gather.
	operand = MS(F32, 8, 16)
	startIndices = MS(I64, 8, 1)
	indexVectorAxis = 1
	offsetOutputAxes = []int{1}
	collapsedSliceAxes = []int{0}
	startIndexMap = []int{0}
	sliceSizes = []int{1, 16}
	output, err = GatherOp(operand, startIndices, indexVectorAxis, offsetOutputAxes, collapsedSliceAxes, startIndexMap, sliceSizes, true)
	require.NoError(t, err)
	require.NoError(t, output.Check(F32, 8, 16))

	// Error cases:
	_, err = GatherOp(MS(F32), startIndices, 1, offsetOutputAxes, collapsedSliceAxes, startIndexMap, sliceSizes, false)
	require.Error(t, err, "scalar operand")
	_, err = GatherOp(operand, MS(F32, 8, 1), 1, offsetOutputAxes, collapsedSliceAxes, startIndexMap, sliceSizes, false)
	require.Error(t, err, "non-integer startIndices")
	_, err = GatherOp(operand, startIndices, 1, offsetOutputAxes, collapsedSliceAxes, startIndexMap, []int{1}, false)
	require.Error(t, err, "wrong sliceSizes length")
}

func TestScatterOp(t *testing.T) {
	// Scatter 2 updates of shape [5] into operand [4, 5].
	operand := MS(F32, 4, 5)
	indices := MS(I32, 2, 1)
	updates := MS(F32, 2, 5)
	output, err := ScatterOp(operand, indices, updates, 1, []int{1}, []int{0}, []int{0})
	require.NoError(t, err)
	require.True(t, operand.Equal(output))

	// Higher-rank tensor.
	operand = MS(F32, 10, 9, 8)
	indices = MS(I32, 2, 3, 2)
	updates = MS(F32, 2, 3, 8)
	output, err = ScatterOp(operand, indices, updates, 2, []int{2}, []int{0, 1}, []int{0, 1})
	require.NoError(t, err)
	require.True(t, operand.Equal(output))

	// Error cases:
	_, err = ScatterOp(MS(F32, 4, 5), MS(I32, 2, 1), MS(I32, 2, 5), 1, []int{1}, []int{0}, []int{0})
	require.Error(t, err, "mismatched operand/updates DType")
	_, err = ScatterOp(MS(F32, 4, 5), MS(F32, 2, 1), MS(F32, 2, 5), 1, []int{1}, []int{0}, []int{0})
	require.Error(t, err, "non-integer indices")
	_, err = ScatterOp(MS(F32, 4, 5), MS(I32, 2, 1), MS(F32, 2, 5), 3, []int{1}, []int{0}, []int{0})
	require.Error(t, err, "indexVectorAxis out of bounds")
	_, err = ScatterOp(MS(F32, 4, 5), MS(I32, 2, 1), MS(F32, 2, 5), 1, []int{1}, []int{0}, []int{0, 1})
	require.Error(t, err, "scatterAxesToOperandAxes length mismatch")
}

func TestDotGeneralOp(t *testing.T) {
	// Plain matrix multiplication: [2, 3] x [3, 4] -> [2, 4].
	output := must1(DotGeneralOp(MS(F32, 2, 3), []int{1}, nil, MS(F32, 3, 4), []int{0}, nil))
	require.True(t, MS(F32, 2, 4).Equal(output))

	// Batched matrix multiplication: [5, 2, 3] x [5, 3, 4] -> [5, 2, 4].
	output = must1(DotGeneralOp(MS(F32, 5, 2, 3), []int{2}, []int{0}, MS(F32, 5, 3, 4), []int{1}, []int{0}))
	require.True(t, MS(F32, 5, 2, 4).Equal(output))

	// Full contraction down to a scalar.
	output = must1(DotGeneralOp(MS(F32, 3), []int{0}, nil, MS(F32, 3), []int{0}, nil))
	require.True(t, MS(F32).Equal(output))

	var err error
	_, err = DotGeneralOp(MS(F32, 2, 3), []int{1}, nil, MS(F32, 4, 4), []int{0}, nil)
	require.Error(t, err, "contracting dimensions don't match")
	_, err = DotGeneralOp(MS(F32, 2, 3), []int{1}, nil, MS(I32, 3, 4), []int{0}, nil)
	require.Error(t, err, "mismatched DTypes")
	_, err = DotGeneralOp(MS(F32, 5, 2, 3), []int{2}, []int{0}, MS(F32, 6, 3, 4), []int{1}, []int{0})
	require.Error(t, err, "batch dimensions don't match")
	_, err = DotGeneralOp(MS(F32, 2, 3), []int{1, 1}, nil, MS(F32, 3, 4), []int{0, 0}, nil)
	require.Error(t, err, "repeated axes")
}

func TestTupleOps(t *testing.T) {
	s1 := MS(F32, 2, 3)
	s2 := MS(I32, 4)
	tuple := must1(TupleOp([]shapes.Shape{s1, s2}))
	require.True(t, tuple.IsTuple())
	require.Equal(t, 2, tuple.TupleSize())

	require.True(t, s1.Equal(must1(GetTupleElementOp(tuple, 0))))
	require.True(t, s2.Equal(must1(GetTupleElementOp(tuple, 1))))

	var err error
	_, err = GetTupleElementOp(tuple, 2)
	require.Error(t, err)
	_, err = GetTupleElementOp(s1, 0)
	require.Error(t, err, "not a tuple")
}

func TestWhileOp(t *testing.T) {
	counter := MS(I32)
	accum := MS(F32, 10)
	states := []shapes.Shape{counter, accum}
	cond := ComputationSignature{
		Inputs:  []shapes.Shape{counter, accum},
		Outputs: []shapes.Shape{MS(Bool)},
	}
	body := ComputationSignature{
		Inputs:  []shapes.Shape{counter, accum},
		Outputs: []shapes.Shape{counter, accum},
	}
	outputs, err := WhileOp(states, cond, body)
	require.NoError(t, err)
	require.Len(t, outputs, 2)
	require.True(t, counter.Equal(outputs[0]))
	require.True(t, accum.Equal(outputs[1]))

	// Condition must return a single boolean scalar.
	badCond := cond.Clone()
	badCond.Outputs = []shapes.Shape{MS(I32)}
	_, err = WhileOp(states, badCond, body)
	require.Error(t, err)
	badCond.Outputs = []shapes.Shape{MS(Bool, 2)}
	_, err = WhileOp(states, badCond, body)
	require.Error(t, err)

	// Body must return the loop state unchanged in shape.
	badBody := body.Clone()
	badBody.Outputs = []shapes.Shape{counter, MS(F32, 11)}
	_, err = WhileOp(states, cond, badBody)
	require.Error(t, err)

	// Signatures must match the initial states.
	badCond = cond.Clone()
	badCond.Inputs = []shapes.Shape{counter}
	_, err = WhileOp(states, badCond, body)
	require.Error(t, err)

	_, err = WhileOp(nil, cond, body)
	require.Error(t, err, "empty loop state")
}

func TestConvGeneralOp(t *testing.T) {
	// NCHW input, OIHW kernel: [2, 3, 8, 8] conv [4, 3, 3, 3] -> [2, 4, 6, 6].
	axes := ConvolveAxesConfig{
		InputBatch: 0, InputChannels: 1, InputSpatial: []int{2, 3},
		KernelOutputChannels: 0, KernelInputChannels: 1, KernelSpatial: []int{2, 3},
		OutputBatch: 0, OutputChannels: 1, OutputSpatial: []int{2, 3},
	}
	input := MS(F32, 2, 3, 8, 8)
	kernel := MS(F32, 4, 3, 3, 3)
	output, err := ConvGeneralOp(input, kernel, axes, []int{1, 1}, nil, nil, nil, 1, 1)
	require.NoError(t, err)
	require.NoError(t, output.Check(F32, 2, 4, 6, 6))

	// Same padding keeps the spatial dimensions.
	output, err = ConvGeneralOp(input, kernel, axes, []int{1, 1}, [][2]int{{1, 1}, {1, 1}}, nil, nil, 1, 1)
	require.NoError(t, err)
	require.NoError(t, output.Check(F32, 2, 4, 8, 8))

	// Strided convolution.
	output, err = ConvGeneralOp(input, kernel, axes, []int{2, 2}, nil, nil, nil, 1, 1)
	require.NoError(t, err)
	require.NoError(t, output.Check(F32, 2, 4, 3, 3))

	// Grouped convolution: inputChannels = kernelInputChannels * channelGroupCount.
	groupedKernel := MS(F32, 4, 1, 3, 3)
	_, err = ConvGeneralOp(MS(F32, 2, 4, 8, 8), groupedKernel, axes, []int{1, 1}, nil, nil, nil, 4, 1)
	require.NoError(t, err)

	// Error cases:
	_, err = ConvGeneralOp(input, MS(F32, 4, 5, 3, 3), axes, []int{1, 1}, nil, nil, nil, 1, 1)
	require.Error(t, err, "kernel input channels don't match")
	_, err = ConvGeneralOp(input, MS(I32, 4, 3, 3, 3), axes, []int{1, 1}, nil, nil, nil, 1, 1)
	require.Error(t, err, "mismatched DTypes")
	_, err = ConvGeneralOp(MS(F32, 2, 3), kernel, axes, []int{1, 1}, nil, nil, nil, 1, 1)
	require.Error(t, err, "rank too low")
	_, err = ConvGeneralOp(input, kernel, axes, []int{1}, nil, nil, nil, 1, 1)
	require.Error(t, err, "wrong strides length")
	_, err = ConvGeneralOp(input, MS(F32, 4, 3, 9, 9), axes, []int{1, 1}, nil, nil, nil, 1, 1)
	require.Error(t, err, "kernel larger than input")
}
