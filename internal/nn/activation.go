package nn

import (
	"math"

	"github.com/jdhoffa/nODEs/internal/tensor"
)

// Sigmoid is a sigmoid activation module.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-x))
//
// Sigmoid squashes values to the range (0, 1). Network applies it after
// both of its layers.
type Sigmoid[B tensor.Backend] struct{}

// NewSigmoid creates a new Sigmoid activation module.
func NewSigmoid[B tensor.Backend]() *Sigmoid[B] {
	return &Sigmoid[B]{}
}

// Forward applies σ(x) = 1 / (1 + exp(-x)) element-wise.
func (s *Sigmoid[B]) Forward(input *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B] {
	return input.Sigmoid()
}

// Parameters returns an empty slice (Sigmoid has no weights).
func (s *Sigmoid[B]) Parameters() []*Parameter[B] {
	return nil
}

// ReLU is a Rectified Linear Unit activation module.
//
// Applies the element-wise function: f(x) = max(0, x)
type ReLU[B tensor.Backend] struct{}

// NewReLU creates a new ReLU activation module.
func NewReLU[B tensor.Backend]() *ReLU[B] {
	return &ReLU[B]{}
}

// Forward applies ReLU activation: f(x) = max(0, x).
func (r *ReLU[B]) Forward(input *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B] {
	output := tensor.Zeros[float64](input.Shape().Clone(), input.Backend())
	src := input.Data()
	dst := output.Data()
	for i, v := range src {
		if v > 0 {
			dst[i] = v
		}
	}
	return output
}

// Parameters returns an empty slice (ReLU has no weights).
func (r *ReLU[B]) Parameters() []*Parameter[B] {
	return nil
}

// Tanh is a hyperbolic tangent activation module.
//
// Squashes values to the range (-1, 1).
type Tanh[B tensor.Backend] struct{}

// NewTanh creates a new Tanh activation module.
func NewTanh[B tensor.Backend]() *Tanh[B] {
	return &Tanh[B]{}
}

// Forward applies Tanh activation.
func (t *Tanh[B]) Forward(input *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B] {
	output := tensor.Zeros[float64](input.Shape().Clone(), input.Backend())
	src := input.Data()
	dst := output.Data()
	for i, v := range src {
		dst[i] = math.Tanh(v)
	}
	return output
}

// Parameters returns an empty slice (Tanh has no weights).
func (t *Tanh[B]) Parameters() []*Parameter[B] {
	return nil
}
