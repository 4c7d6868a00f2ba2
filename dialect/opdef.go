package dialect

import (
	"fmt"

	"github.com/gomlir/gomlir/types"
	"github.com/gomlx/exceptions"
)

// OperandKind describes one operand slot of an operation.
type OperandKind int

const (
	// OperandTensor is a single tensor operand.
	OperandTensor OperandKind = iota

	// OperandTuple is an operand holding a tuple of tensors.
	OperandTuple

	// OperandVariadic is a variadic list of tensor operands. At most one
	// operand slot of an operation may be variadic, and it must be the last.
	OperandVariadic
)

//go:generate go tool enumer -type=OperandKind -trimprefix=Operand -output=gen_operandkind_enumer.go opdef.go

// AttrKind describes the type of one attribute of an operation.
// Attributes are compile-time values attached to the operation instance, as
// opposed to operands, which are tensor values.
type AttrKind int

const (
	AttrInt AttrKind = iota
	AttrFloat
	AttrBool
	AttrString
	AttrIntList
	AttrIntPairList
	AttrDType
	AttrShape
	AttrAxesConfig
	AttrPadList
	AttrSignature
	AttrValue
)

//go:generate go tool enumer -type=AttrKind -trimprefix=Attr -output=gen_attrkind_enumer.go opdef.go

// Trait is a declared structural property of an operation, used by generic
// passes without knowledge of the specific operation.
type Trait int

const (
	// TraitNoSideEffect marks operations that are pure: they can be
	// deduplicated, reordered and dead-code eliminated.
	TraitNoSideEffect Trait = iota

	// TraitCommutative marks binary operations invariant to the order of
	// their operands.
	TraitCommutative

	// TraitSameOperandsAndResultType marks operations whose operands and
	// result all share dtype and dimensions.
	TraitSameOperandsAndResultType

	// TraitSameOperandsAndResultShape marks operations whose operands and
	// result share dimensions, but not necessarily dtype.
	TraitSameOperandsAndResultShape

	// TraitResultIsBoolean marks operations whose result dtype is Bool
	// regardless of the operands' dtype.
	TraitResultIsBoolean
)

//go:generate go tool enumer -type=Trait -trimprefix=Trait -output=gen_trait_enumer.go opdef.go

// OperandSpec is one typed operand slot of an OpDef.
type OperandSpec struct {
	Name string
	Kind OperandKind
}

// AttrSpec is one typed attribute of an OpDef.
type AttrSpec struct {
	Name string
	Kind AttrKind
}

// OpDef is the queryable metadata of one operation kind of the dialect:
// its dialect-qualified mnemonic, operand slots, attributes, result arity
// and traits.
//
// NumResults is -1 for operations whose number of results is determined by
// the number of operands (e.g. While).
//
// OpDefs are registered from the generated table in gen_op_defs.go.
//
//go:generate go run ../cmd/dialect_generator
type OpDef struct {
	Type       OpType
	Mnemonic   string
	Operands   []OperandSpec
	Attrs      []AttrSpec
	NumResults int
	Traits     types.Set[Trait]
}

// HasTrait returns whether the operation declares the given trait.
func (def OpDef) HasTrait(t Trait) bool {
	return def.Traits.Has(t)
}

// String implements fmt.Stringer.
func (def OpDef) String() string {
	return fmt.Sprintf("%s (%d operands, %d attrs, %d results)",
		def.Mnemonic, len(def.Operands), len(def.Attrs), def.NumResults)
}

var (
	opDefs        [OpTypeLast]OpDef
	opDefsByName  = make(map[string]OpType, int(OpTypeLast))
	numRegistered int
)

// registerOpDef adds one OpDef to the dialect tables.
// It is called from the generated gen_op_defs.go during package initialization,
// and panics on duplicates: that is a programming (or generation) error.
func registerOpDef(def OpDef) {
	if def.Type <= OpTypeInvalid || def.Type >= OpTypeLast {
		exceptions.Panicf("dialect: cannot register OpDef for %s", def.Type)
	}
	if opDefs[def.Type].Type != OpTypeInvalid {
		exceptions.Panicf("dialect: duplicate OpDef registration for %s", def.Type)
	}
	if _, found := opDefsByName[def.Mnemonic]; found {
		exceptions.Panicf("dialect: duplicate OpDef mnemonic %q", def.Mnemonic)
	}
	opDefs[def.Type] = def
	opDefsByName[def.Mnemonic] = def.Type
	numRegistered++
}

// OpDefByType returns the OpDef metadata for the given OpType.
// It returns ok=false for OpTypeInvalid or an unregistered OpType.
func OpDefByType(opType OpType) (def OpDef, ok bool) {
	if opType <= OpTypeInvalid || opType >= OpTypeLast {
		return
	}
	def = opDefs[opType]
	ok = def.Type != OpTypeInvalid
	return
}

// OpDefByMnemonic returns the OpDef metadata with the given dialect-qualified
// mnemonic, e.g. "lite.add".
func OpDefByMnemonic(mnemonic string) (def OpDef, ok bool) {
	opType, found := opDefsByName[mnemonic]
	if !found {
		return
	}
	return OpDefByType(opType)
}

// NumOpDefs returns the number of registered operations in the dialect.
func NumOpDefs() int { return numRegistered }
