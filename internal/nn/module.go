// Package nn implements the neural network building blocks for nODEs.
//
// This package provides:
//   - Module interface: base interface for all NN components
//   - Parameter: named weight tensors
//   - Dense: fully connected layer (bias-free by default)
//   - Activations: Sigmoid, ReLU, Tanh
//   - Cost functions: SSE, MSE (values only; no gradients)
//   - Sequential: container for stacking layers
//   - Network: the two-layer sigmoid network
//
// Design inspired by PyTorch's nn.Module but adapted for Go generics.
// All modules compute in float64.
package nn

import (
	"github.com/jdhoffa/nODEs/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Modules can be composed to build larger architectures:
//
//	model := nn.NewSequential(
//	    nn.NewDense(3, 4, backend),
//	    nn.NewSigmoid[B](),
//	    nn.NewDense(4, 1, backend),
//	    nn.NewSigmoid[B](),
//	)
//
// Type parameter B must satisfy the tensor.Backend interface.
type Module[B tensor.Backend] interface {
	// Forward computes the output of the module given an input tensor.
	//
	// The input tensor should have the appropriate shape for this module.
	// For example, Dense expects [samples, in_features].
	Forward(input *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B]

	// Parameters returns all weight tensors of this module.
	//
	// Returns an empty slice for modules without weights
	// (e.g., activation functions).
	Parameters() []*Parameter[B]
}
