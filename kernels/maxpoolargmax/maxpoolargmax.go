// Package maxpoolargmax registers the kernel library for the lite.max_pool_with_argmax
// operation: a max-pooling that also records the flat position each maximum was taken from,
// so the pooling can later be inverted by lite.max_unpool.
package maxpoolargmax

import (
	"github.com/gomlir/gomlir/dialect"
	"github.com/gomlir/gomlir/dialect/shapeinference"
	"github.com/gomlir/gomlir/kernels"
	"github.com/gomlir/gomlir/types/shapes"
	"github.com/pkg/errors"
)

// Name is the library and operation mnemonic.
const Name = "lite.max_pool_with_argmax"

type kernel struct{}

// Prepare reads Operands[0] (the input), Pool, WindowDimensions, Strides, Paddings and
// IndicesDType, and sets Outputs to the pooled values shape and the indices shape.
func (kernel) Prepare(ctx *kernels.PrepareContext) error {
	if len(ctx.Operands) != 1 {
		return errors.Errorf("%s takes exactly one operand, got %d", Name, len(ctx.Operands))
	}
	input := ctx.Operands[0]
	if len(ctx.Paddings) > 0 {
		// Padded positions are filled with the dtype's lowest value, which must exist.
		if _, err := kernels.PaddingIdentity(input.DType); err != nil {
			return errors.WithMessagef(err, "%s cannot pad input %s", Name, input)
		}
	}
	values, indices, err := shapeinference.MaxPoolWithArgmaxOp(
		input, ctx.Pool, ctx.WindowDimensions, ctx.Strides, ctx.Paddings, ctx.IndicesDType)
	if err != nil {
		return err
	}
	ctx.Outputs = []shapes.Shape{values, indices}
	return nil
}

func (kernel) Eval(ctx *kernels.EvalContext) error {
	return errors.Wrapf(dialect.ErrNotImplemented, "in %s Eval()", Name)
}

func init() {
	kernels.Register(kernels.Library{
		Name:   Name,
		Srcs:   []string{"max_pool_argmax.cc"},
		Hdrs:   []string{"max_pool_argmax.h"},
		Deps:   []string{"kernel-utils", "padding-helpers"},
		OpType: dialect.OpTypeMaxPoolWithArgmax,
		Kernel: kernel{},
	})
}
