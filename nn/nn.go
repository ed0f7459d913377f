// Copyright 2026 The nODEs Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/jdhoffa/nODEs/internal/nn"
	"github.com/jdhoffa/nODEs/internal/tensor"
)

// Module is the common interface for all neural network modules.
type Module[B tensor.Backend] = nn.Module[B]

// Parameter is a named weight tensor belonging to a module.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// NewParameter creates a new named parameter.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float64, B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}

// Layers

// Dense represents a fully connected layer, bias-free by default.
type Dense[B tensor.Backend] = nn.Dense[B]

// DenseOption configures a Dense layer at construction.
type DenseOption[B tensor.Backend] = nn.DenseOption[B]

// NewDense creates a new Dense layer with U(0, 1) weight initialization.
//
// Example:
//
//	backend := cpu.New()
//	layer := nn.NewDense(3, 4, backend)
func NewDense[B tensor.Backend](inFeatures, outFeatures int, backend B, opts ...DenseOption[B]) *Dense[B] {
	return nn.NewDense(inFeatures, outFeatures, backend, opts...)
}

// WithBias adds a zero-initialized bias vector to a Dense layer.
func WithBias[B tensor.Backend]() DenseOption[B] {
	return nn.WithBias[B]()
}

// WithInit overrides a Dense layer's weight initializer.
func WithInit[B tensor.Backend](init func(shape tensor.Shape, backend B) *tensor.Tensor[float64, B]) DenseOption[B] {
	return nn.WithInit(init)
}

// Activations

// Sigmoid applies σ(x) = 1 / (1 + exp(-x)) element-wise.
type Sigmoid[B tensor.Backend] = nn.Sigmoid[B]

// NewSigmoid creates a new Sigmoid activation module.
func NewSigmoid[B tensor.Backend]() *Sigmoid[B] {
	return nn.NewSigmoid[B]()
}

// ReLU applies f(x) = max(0, x) element-wise.
type ReLU[B tensor.Backend] = nn.ReLU[B]

// NewReLU creates a new ReLU activation module.
func NewReLU[B tensor.Backend]() *ReLU[B] {
	return nn.NewReLU[B]()
}

// Tanh applies the hyperbolic tangent element-wise.
type Tanh[B tensor.Backend] = nn.Tanh[B]

// NewTanh creates a new Tanh activation module.
func NewTanh[B tensor.Backend]() *Tanh[B] {
	return nn.NewTanh[B]()
}

// Cost functions

// SSELoss computes the sum-of-squared-errors cost Σ(y − ŷ)².
type SSELoss[B tensor.Backend] = nn.SSELoss[B]

// NewSSELoss creates a new SSE cost function.
func NewSSELoss[B tensor.Backend]() *SSELoss[B] {
	return nn.NewSSELoss[B]()
}

// MSELoss computes the mean-squared-error cost.
type MSELoss[B tensor.Backend] = nn.MSELoss[B]

// NewMSELoss creates a new MSE cost function.
func NewMSELoss[B tensor.Backend]() *MSELoss[B] {
	return nn.NewMSELoss[B]()
}

// Containers

// Sequential chains modules so each output feeds the next input.
type Sequential[B tensor.Backend] = nn.Sequential[B]

// NewSequential creates a new Sequential container.
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return nn.NewSequential(modules...)
}

// Network

// Network is the two-layer feedforward sigmoid network.
type Network[B tensor.Backend] = nn.Network[B]

// NetworkOption configures a Network at construction.
type NetworkOption = nn.NetworkOption

// DefaultHiddenSize is the hidden layer width when none is configured.
const DefaultHiddenSize = nn.DefaultHiddenSize

// NewNetwork creates a two-layer sigmoid network over the given input and
// target matrices.
//
// Example:
//
//	net, err := nn.NewNetwork(x, y, backend, nn.WithSeed(42))
//	out := net.Feedforward()
func NewNetwork[B tensor.Backend](x, y *tensor.Tensor[float64, B], backend B, opts ...NetworkOption) (*Network[B], error) {
	return nn.NewNetwork(x, y, backend, opts...)
}

// WithHiddenSize sets the Network's hidden layer width.
func WithHiddenSize(n int) NetworkOption {
	return nn.WithHiddenSize(n)
}

// WithSeed makes a Network's weight initialization deterministic.
func WithSeed(seed uint64) NetworkOption {
	return nn.WithSeed(seed)
}

// Initialization

// Uniform initializes a tensor with values drawn from U(0, 1).
func Uniform[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float64, B] {
	return nn.Uniform(shape, backend)
}

// UniformSeed is Uniform with an explicit seed.
func UniformSeed[B tensor.Backend](shape tensor.Shape, seed uint64, backend B) *tensor.Tensor[float64, B] {
	return nn.UniformSeed(shape, seed, backend)
}

// Xavier initializes weights with Glorot uniform scaling.
func Xavier[B tensor.Backend](fanIn, fanOut int, shape tensor.Shape, backend B) *tensor.Tensor[float64, B] {
	return nn.Xavier(fanIn, fanOut, shape, backend)
}

// Zeros creates a tensor filled with zeros.
func Zeros[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float64, B] {
	return nn.Zeros(shape, backend)
}

// Ones creates a tensor filled with ones.
func Ones[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float64, B] {
	return nn.Ones(shape, backend)
}

// Randn creates a tensor with values drawn from N(0, 1).
func Randn[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float64, B] {
	return nn.Randn(shape, backend)
}
