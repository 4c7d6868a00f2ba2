// Package notimplemented implements a dialect.Builder that returns a "not implemented"
// error for every operation.
//
// Embed Builder to bootstrap a new runtime: override the operations it supports and
// let everything else fail gracefully with an error any caller can test with
// errors.Is(err, dialect.ErrNotImplemented).
package notimplemented

import (
	"github.com/gomlir/gomlir/dialect"
	"github.com/gomlir/gomlir/types/shapes"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// NotImplementedError is returned by every method.
//
// It doesn't contain a stack, attach one with errors.Wrapf(NotImplementedError, "...") when using it.
var NotImplementedError = dialect.ErrNotImplemented

// Builder implements dialect.Builder and returns NotImplementedError wrapped with a stack-trace
// and the operation type for every operation.
type Builder struct {
	// ErrFn is called to generate the error returned, if not nil. Otherwise NotImplementedError
	// is wrapped and returned directly.
	//
	// For non-op methods (like Builder.Name) you will have to override them.
	ErrFn func(op dialect.OpType) error
}

var _ dialect.Builder = Builder{}

func (b Builder) err(op dialect.OpType) error {
	if b.ErrFn != nil {
		return b.ErrFn(op)
	}
	return errors.Wrapf(NotImplementedError, "in %s()", op)
}

func (b Builder) Name() string {
	return "Dummy \"not implemented\" builder, please override this method"
}

func (b Builder) OpShape(op dialect.Op) (shapes.Shape, error) {
	return shapes.Invalid(), errors.Wrapf(NotImplementedError, "in OpShape()")
}

func (b Builder) Parameter(name string, shape shapes.Shape) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeParameter)
}

func (b Builder) Constant(flat any, dims ...int) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeConstant)
}

func (b Builder) Abs(x dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeAbs)
}

func (b Builder) Add(lhs, rhs dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeAdd)
}

func (b Builder) ArgMinMax(x dialect.Op, axis int, outputDType dtypes.DType, isMin bool) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeArgMinMax)
}

func (b Builder) Broadcast(x dialect.Op, prefixDims ...int) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeBroadcast)
}

func (b Builder) BroadcastInDim(x dialect.Op, outputShape shapes.Shape, broadcastAxes []int) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeBroadcastInDim)
}

func (b Builder) Ceil(x dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeCeil)
}

func (b Builder) Concatenate(axis int, operands ...dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeConcatenate)
}

func (b Builder) ConvGeneral(input, kernel dialect.Op, axes dialect.ConvolveAxesConfig,
	strides []int, paddings [][2]int, inputDilations, kernelDilations []int,
	channelGroupCount, batchGroupCount int) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeConvGeneral)
}

func (b Builder) Div(lhs, rhs dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeDiv)
}

func (b Builder) DotGeneral(lhs dialect.Op, lhsContractingAxes, lhsBatchAxes []int,
	rhs dialect.Op, rhsContractingAxes, rhsBatchAxes []int) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeDotGeneral)
}

func (b Builder) Equal(lhs, rhs dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeEqual)
}

func (b Builder) Exp(x dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeExp)
}

func (b Builder) Floor(x dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeFloor)
}

func (b Builder) Gather(operand, startIndices dialect.Op, indexVectorAxis int,
	offsetOutputAxes, collapsedSliceAxes, startIndexMap, sliceSizes []int,
	indicesAreSorted bool) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeGather)
}

func (b Builder) GetTupleElement(tuple dialect.Op, index int) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeGetTupleElement)
}

func (b Builder) GreaterOrEqual(lhs, rhs dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeGreaterOrEqual)
}

func (b Builder) GreaterThan(lhs, rhs dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeGreaterThan)
}

func (b Builder) LessOrEqual(lhs, rhs dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeLessOrEqual)
}

func (b Builder) LessThan(lhs, rhs dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeLessThan)
}

func (b Builder) Log(x dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeLog)
}

func (b Builder) LogicalAnd(lhs, rhs dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeLogicalAnd)
}

func (b Builder) LogicalNot(x dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeLogicalNot)
}

func (b Builder) LogicalOr(lhs, rhs dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeLogicalOr)
}

func (b Builder) Logistic(x dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeLogistic)
}

func (b Builder) Max(lhs, rhs dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeMax)
}

func (b Builder) Min(lhs, rhs dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeMin)
}

func (b Builder) Mul(lhs, rhs dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeMul)
}

func (b Builder) Neg(x dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeNeg)
}

func (b Builder) NotEqual(lhs, rhs dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeNotEqual)
}

func (b Builder) Pad(x, fillValue dialect.Op, axesConfig ...dialect.PadAxis) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypePad)
}

func (b Builder) Pow(lhs, rhs dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypePow)
}

func (b Builder) ReduceLogicalAnd(x dialect.Op, axes ...int) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeReduceLogicalAnd)
}

func (b Builder) ReduceLogicalOr(x dialect.Op, axes ...int) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeReduceLogicalOr)
}

func (b Builder) ReduceMax(x dialect.Op, axes ...int) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeReduceMax)
}

func (b Builder) ReduceMin(x dialect.Op, axes ...int) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeReduceMin)
}

func (b Builder) ReduceProduct(x dialect.Op, axes ...int) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeReduceProduct)
}

func (b Builder) ReduceSum(x dialect.Op, axes ...int) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeReduceSum)
}

func (b Builder) Reshape(x dialect.Op, dimensions ...int) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeReshape)
}

func (b Builder) Reverse(x dialect.Op, axes ...int) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeReverse)
}

func (b Builder) Round(x dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeRound)
}

func (b Builder) Rsqrt(x dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeRsqrt)
}

func (b Builder) ScatterSum(operand, indices, updates dialect.Op, indexVectorAxis int,
	updateWindowAxes, insertedWindowAxes, scatterAxesToOperandAxes []int,
	indicesAreSorted, uniqueIndices bool) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeScatterSum)
}

func (b Builder) Sign(x dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeSign)
}

func (b Builder) Slice(x dialect.Op, starts, limits, strides []int) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeSlice)
}

func (b Builder) Sqrt(x dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeSqrt)
}

func (b Builder) Sub(lhs, rhs dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeSub)
}

func (b Builder) Tanh(x dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeTanh)
}

func (b Builder) Transpose(x dialect.Op, permutations ...int) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeTranspose)
}

func (b Builder) Tuple(operands ...dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeTuple)
}

func (b Builder) Where(condition, onTrue, onFalse dialect.Op) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeWhere)
}

func (b Builder) While(initialStates []dialect.Op, cond, body dialect.ComputationSignature) ([]dialect.Op, error) {
	return nil, b.err(dialect.OpTypeWhile)
}

func (b Builder) MaxPoolWithArgmax(input dialect.Op, pool dialect.PoolAxesConfig,
	windowDimensions, strides []int, paddings [][2]int,
	indicesDType dtypes.DType) (values, indices dialect.Op, err error) {
	return nil, nil, b.err(dialect.OpTypeMaxPoolWithArgmax)
}

func (b Builder) MaxUnpool(input, indices dialect.Op, pool dialect.PoolAxesConfig,
	windowDimensions, strides []int, paddings [][2]int, outputDims []int) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeMaxUnpool)
}

func (b Builder) TransposeConvBias(input, kernel, bias dialect.Op, axes dialect.ConvolveAxesConfig,
	strides []int, paddings [][2]int) (dialect.Op, error) {
	return nil, b.err(dialect.OpTypeTransposeConvBias)
}
