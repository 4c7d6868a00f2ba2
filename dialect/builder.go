package dialect

import (
	"github.com/gomlir/gomlir/types/shapes"
	"github.com/gomlir/gomlir/types/xslices"
)

// Op represents the output of an operation while a computation is being built.
//
// It is opaque from the dialect's perspective: the caller passes Op values as
// inputs to the other Builder methods.
type Op any

// Builder is the surface a runtime implements to accept the lite dialect.
//
// An implementation can reject individual operations by returning an error
// wrapping ErrNotImplemented -- this restricts what programs it can accept.
// See Capabilities and the package notimplemented.
//
// Compiling and executing the built computation is the host runtime's
// business and is not part of the dialect.
type Builder interface {
	// Name of the computation being built.
	Name() string

	// OpShape returns the shape of a computation Op.
	// Notice this is not an operation and doesn't change the computation being built.
	OpShape(op Op) (shapes.Shape, error)

	// Parameter creates an input parameter for the computation.
	Parameter(name string, shape shapes.Shape) (Op, error)

	// Constant creates a constant with the given flat values, and the shape defined by dims.
	//
	// The flat value must be a slice of a basic type supported -- that can be converted to a DType.
	// The value is copied.
	Constant(flat any, dims ...int) (Op, error)

	// StandardOps are the dialect's standard operations.
	StandardOps

	// CustomOps are the operations backed by custom kernel libraries.
	CustomOps
}

// ConvolveAxesConfig defines the interpretation of the input/kernel/output tensor axes
// of a convolution. There must be the same number of spatial axes for each of the
// 3 tensors. Input and output have batch and channel axes. Kernel has inputChannel
// and outputChannel axes.
//
// See StandardOps.ConvGeneral and CustomOps.TransposeConvBias.
type ConvolveAxesConfig struct {
	InputBatch, InputChannels int
	InputSpatial              []int

	KernelInputChannels, KernelOutputChannels int
	KernelSpatial                             []int

	OutputBatch, OutputChannels int
	OutputSpatial               []int
}

// Clone returns a deep copy of the structure.
func (c ConvolveAxesConfig) Clone() ConvolveAxesConfig {
	c2 := c
	c2.InputSpatial = xslices.Copy(c.InputSpatial)
	c2.KernelSpatial = xslices.Copy(c.KernelSpatial)
	c2.OutputSpatial = xslices.Copy(c.OutputSpatial)
	return c2
}

// PoolAxesConfig defines the interpretation of the operand axes of a pooling
// operation: one batch axis, one channels axis, and the spatial axes the
// window slides over.
//
// See CustomOps.MaxPoolWithArgmax and CustomOps.MaxUnpool.
type PoolAxesConfig struct {
	Batch, Channels int
	Spatial         []int
}

// Clone returns a deep copy of the structure.
func (c PoolAxesConfig) Clone() PoolAxesConfig {
	c2 := c
	c2.Spatial = xslices.Copy(c.Spatial)
	return c2
}

// PadAxis defines the amount of padding preceding one axis (Start), at the end
// of the axis (End) or in between the elements (Interior).
// This is used as a parameter for the Pad operation.
type PadAxis struct {
	Start, End, Interior int
}

// ComputationSignature describes the typed surface of a sub-computation used
// by control-flow operations: the shapes of its parameters and of its results.
//
// The dialect verifies signatures only; the sub-computation bodies belong to
// the host runtime.
type ComputationSignature struct {
	Inputs  []shapes.Shape
	Outputs []shapes.Shape
}

// Clone returns a deep copy of the signature.
func (c ComputationSignature) Clone() ComputationSignature {
	return ComputationSignature{
		Inputs:  xslices.Map(c.Inputs, shapes.Shape.Clone),
		Outputs: xslices.Map(c.Outputs, shapes.Shape.Clone),
	}
}
