package dialect

// OpType is an enum of all operations in the lite dialect.
//
// Nothing precludes a specialized runtime from supporting ops not included
// here, but those require careful interface casting by the caller and a
// fallback for runtimes that don't support them.
type OpType int

//go:generate go tool enumer -type=OpType -trimprefix=OpType -output=gen_optype_enumer.go optype.go

const (
	OpTypeInvalid OpType = iota
	OpTypeParameter
	OpTypeConstant

	OpTypeAbs
	OpTypeAdd
	OpTypeArgMinMax
	OpTypeBroadcast
	OpTypeBroadcastInDim
	OpTypeCeil
	OpTypeConcatenate
	OpTypeConvGeneral
	OpTypeDiv
	OpTypeDotGeneral
	OpTypeEqual
	OpTypeExp
	OpTypeFloor
	OpTypeGather
	OpTypeGetTupleElement
	OpTypeGreaterOrEqual
	OpTypeGreaterThan
	OpTypeLessOrEqual
	OpTypeLessThan
	OpTypeLog
	OpTypeLogicalAnd
	OpTypeLogicalNot
	OpTypeLogicalOr
	OpTypeLogistic
	OpTypeMax
	OpTypeMaxPoolWithArgmax
	OpTypeMaxUnpool
	OpTypeMin
	OpTypeMul
	OpTypeNeg
	OpTypeNotEqual
	OpTypePad
	OpTypePow
	OpTypeReduceLogicalAnd
	OpTypeReduceLogicalOr
	OpTypeReduceMax
	OpTypeReduceMin
	OpTypeReduceProduct
	OpTypeReduceSum
	OpTypeReshape
	OpTypeReverse
	OpTypeRound
	OpTypeRsqrt
	OpTypeScatterSum
	OpTypeSign
	OpTypeSlice
	OpTypeSqrt
	OpTypeSub
	OpTypeTanh
	OpTypeTranspose
	OpTypeTransposeConvBias
	OpTypeTuple
	OpTypeWhere
	OpTypeWhile

	// OpTypeLast should always be kept the last, it is used as a counter/marker for OpType.
	OpTypeLast
)
