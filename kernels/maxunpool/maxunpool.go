// Package maxunpool registers the kernel library for the lite.max_unpool operation: the
// inverse of lite.max_pool_with_argmax, scattering the pooled values back to the positions
// recorded in the argmax indices and filling everything else with zeros.
package maxunpool

import (
	"github.com/gomlir/gomlir/dialect"
	"github.com/gomlir/gomlir/dialect/shapeinference"
	"github.com/gomlir/gomlir/kernels"
	"github.com/gomlir/gomlir/types/shapes"
	"github.com/pkg/errors"
)

// Name is the library and operation mnemonic.
const Name = "lite.max_unpool"

type kernel struct{}

// Prepare reads Operands[0] (the pooled input) and Operands[1] (the argmax indices), plus
// Pool, WindowDimensions, Strides, Paddings and OutputDims, and sets Outputs to the single
// unpooled shape.
func (kernel) Prepare(ctx *kernels.PrepareContext) error {
	if len(ctx.Operands) != 2 {
		return errors.Errorf("%s takes exactly two operands (input, indices), got %d", Name, len(ctx.Operands))
	}
	output, err := shapeinference.MaxUnpoolOp(
		ctx.Operands[0], ctx.Operands[1], ctx.Pool,
		ctx.WindowDimensions, ctx.Strides, ctx.Paddings, ctx.OutputDims)
	if err != nil {
		return err
	}
	ctx.Outputs = []shapes.Shape{output}
	return nil
}

func (kernel) Eval(ctx *kernels.EvalContext) error {
	return errors.Wrapf(dialect.ErrNotImplemented, "in %s Eval()", Name)
}

func init() {
	kernels.Register(kernels.Library{
		Name:   Name,
		Srcs:   []string{"max_unpooling.cc"},
		Hdrs:   []string{"max_unpooling.h"},
		Deps:   []string{"kernel-utils", "tensor-helpers"},
		OpType: dialect.OpTypeMaxUnpool,
		Kernel: kernel{},
	})
}
