// Package cpu implements the pure Go CPU backend for tensor operations.
package cpu

import (
	"fmt"

	"github.com/jdhoffa/nODEs/internal/tensor"
)

// CPUBackend implements tensor operations on CPU in pure Go.
//
// Operations are stateless and allocate fresh result tensors, so the
// backend is safe for concurrent use.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("add", a, b,
		func(x, y float32) float32 { return x + y },
		func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("sub", a, b,
		func(x, y float32) float32 { return x - y },
		func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("mul", a, b,
		func(x, y float32) float32 { return x * y },
		func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with broadcasting.
// Division by zero follows IEEE 754 (Inf/NaN).
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("div", a, b,
		func(x, y float32) float32 { return x / y },
		func(x, y float64) float64 { return x / y })
}

// binaryOp validates shapes, allocates the result and dispatches on dtype.
func (cpu *CPUBackend) binaryOp(
	name string,
	a, b *tensor.RawTensor,
	opF32 func(float32, float32) float32,
	opF64 func(float64, float64) float64,
) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	switch a.DType() {
	case tensor.Float32:
		if needsBroadcast {
			broadcastKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, opF32)
		} else {
			elementwiseKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), opF32)
		}
	case tensor.Float64:
		if needsBroadcast {
			broadcastKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, opF64)
		} else {
			elementwiseKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), opF64)
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}

	return result
}

// elementwiseKernel computes dst[i] = op(a[i], b[i]) for equal shapes.
func elementwiseKernel[T float32 | float64](dst, a, b []T, op func(T, T) T) {
	for i := range dst {
		dst[i] = op(a[i], b[i])
	}
}

// broadcastKernel computes dst = op(a, b) under NumPy broadcasting rules.
// Each flat output index is decomposed into coordinates, which map back
// into a and b with size-1 dimensions pinned to index 0.
func broadcastKernel[T float32 | float64](dst, a, b []T, aShape, bShape, outShape tensor.Shape, op func(T, T) T) {
	aStrides := aShape.ComputeStrides()
	bStrides := bShape.ComputeStrides()
	outStrides := outShape.ComputeStrides()

	coords := make([]int, len(outShape))
	for i := range dst {
		rem := i
		for d := range outShape {
			coords[d] = rem / outStrides[d]
			rem %= outStrides[d]
		}
		dst[i] = op(a[broadcastOffset(coords, aShape, aStrides)], b[broadcastOffset(coords, bShape, bStrides)])
	}
}

// broadcastOffset maps output coordinates into a (possibly lower-rank,
// possibly size-1-padded) operand.
func broadcastOffset(coords []int, shape tensor.Shape, strides []int) int {
	skip := len(coords) - len(shape)
	offset := 0
	for d, dim := range shape {
		c := coords[skip+d]
		if dim == 1 {
			c = 0
		}
		offset += c * strides[d]
	}
	return offset
}
