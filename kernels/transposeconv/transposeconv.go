// Package transposeconv registers the kernel library for the lite.transpose_conv_bias
// operation: a transposed convolution (aka. deconvolution) with a fused per-output-channel
// bias addition.
package transposeconv

import (
	"github.com/gomlir/gomlir/dialect"
	"github.com/gomlir/gomlir/dialect/shapeinference"
	"github.com/gomlir/gomlir/kernels"
	"github.com/gomlir/gomlir/types/shapes"
	"github.com/pkg/errors"
)

// Name is the library and operation mnemonic.
const Name = "lite.transpose_conv_bias"

type kernel struct{}

// Prepare reads Operands[0..2] (input, kernel, bias), Conv, Strides and Paddings, and sets
// Outputs to the single upsampled shape.
func (kernel) Prepare(ctx *kernels.PrepareContext) error {
	if len(ctx.Operands) != 3 {
		return errors.Errorf("%s takes exactly three operands (input, kernel, bias), got %d", Name, len(ctx.Operands))
	}
	output, err := shapeinference.TransposeConvOp(
		ctx.Operands[0], ctx.Operands[1], ctx.Operands[2],
		ctx.Conv, ctx.Strides, ctx.Paddings)
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
		Srcs:   []string{"transpose_conv_bias.cc"},
		Hdrs:   []string{"transpose_conv_bias.h"},
		Deps:   []string{"kernel-utils", "tensor-helpers", "padding-helpers"},
		OpType: dialect.OpTypeTransposeConvBias,
		Kernel: kernel{},
	})
}
