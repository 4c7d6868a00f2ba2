// Package kernels holds the registry and build manifest of the custom kernel libraries
// backing the dialect's CustomOps.
//
// Each kernel library registers itself during initialization (usually from an init function
// in its own package), declaring its public surface and its build dependencies on the shared
// utility libraries. The registry validates the dependency graph and provides the
// deterministic link order consumed by the build manifest.
package kernels

import (
	"github.com/gomlir/gomlir/dialect"
	"github.com/gomlir/gomlir/types/shapes"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// PrepareContext carries the operand shapes and attributes of one custom operation into
// Kernel.Prepare. Prepare validates them and fills in Outputs with the inferred output
// shapes, which the caller uses to plan output buffers.
//
// Only the fields relevant to the kernel's operation are set; each kernel documents which
// ones it reads.
type PrepareContext struct {
	// Operands are the shapes of the operation inputs, in the order declared by the
	// operation's OpDef.
	Operands []shapes.Shape

	// Pool configures the batch/channels/spatial axes for the pooling kernels.
	Pool dialect.PoolAxesConfig

	// Conv configures the input/kernel/output axes for the convolution kernels.
	Conv dialect.ConvolveAxesConfig

	WindowDimensions []int
	Strides          []int
	Paddings         [][2]int

	// IndicesDType selects the integer dtype of the argmax indices output.
	IndicesDType dtypes.DType

	// OutputDims gives the full output dimensions for MaxUnpool.
	OutputDims []int

	// Outputs is set by Prepare: one shape per operation result.
	Outputs []shapes.Shape
}

// EvalContext carries flat data buffers into Kernel.Eval: one input buffer per operand and
// one pre-allocated output buffer per result, shaped per the preceding Prepare.
type EvalContext struct {
	*PrepareContext
	Inputs  []any
	Outputs []any
}

// Kernel is the registered implementation surface of one custom kernel library.
type Kernel interface {
	// Prepare validates the operands and attributes in ctx and fills in ctx.Outputs.
	Prepare(ctx *PrepareContext) error

	// Eval executes the kernel over the buffers in ctx.
	Eval(ctx *EvalContext) error
}

// Library describes one library of the kernel build manifest: its name (the operation
// mnemonic for kernel libraries), its source and header files, and the names of the
// libraries it depends on.
//
// Utility libraries carry no OpType or Kernel, they only participate in dependency
// resolution.
type Library struct {
	Name string
	Srcs []string
	Hdrs []string
	Deps []string

	// OpType is the dialect operation this library implements, or OpTypeInvalid for
	// utility libraries.
	OpType dialect.OpType

	// Kernel is the implementation surface, nil for utility libraries.
	Kernel Kernel
}

// IsKernel reports whether the library implements a dialect operation, as opposed to being
// a utility library.
func (l Library) IsKernel() bool {
	return l.Kernel != nil
}

// validate checks the manifest entry itself, before it enters the registry.
func (l Library) validate() error {
	if l.Name == "" {
		return errors.Errorf("kernel library must have a name")
	}
	if l.Kernel != nil && l.OpType == dialect.OpTypeInvalid {
		return errors.Errorf("kernel library %q carries a Kernel but no OpType", l.Name)
	}
	if _, ok := dialect.OpDefByType(l.OpType); l.OpType != dialect.OpTypeInvalid && !ok {
		return errors.Errorf("kernel library %q declares OpType %s, which has no OpDef", l.Name, l.OpType)
	}
	return nil
}
