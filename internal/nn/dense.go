package nn

import (
	"fmt"

	"github.com/jdhoffa/nODEs/internal/tensor"
)

// Dense implements a fully connected layer.
//
// Performs the transformation: y = x @ W (+ b)
// where:
//   - x is the input tensor with shape [samples, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the optional bias vector with shape [out_features]
//   - y is the output tensor with shape [samples, out_features]
//
// The layer is bias-free by default; opt in with WithBias. Weights
// default to U(0, 1) initialization; override with WithInit.
//
// Example:
//
//	backend := cpu.New()
//	layer := nn.NewDense(3, 4, backend, nn.WithInit(seededUniform))
//
//	input := tensor.Rand[float64](tensor.Shape{8, 3}, backend)
//	output := layer.Forward(input) // shape: [8, 4]
type Dense[B tensor.Backend] struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter[B] // [in_features, out_features]
	bias        *Parameter[B] // [out_features], nil unless WithBias
	backend     B
}

// DenseOption configures a Dense layer at construction.
type DenseOption[B tensor.Backend] func(*denseConfig[B])

type denseConfig[B tensor.Backend] struct {
	bias bool
	init func(shape tensor.Shape, backend B) *tensor.Tensor[float64, B]
}

// WithBias adds a zero-initialized bias vector to the layer.
func WithBias[B tensor.Backend]() DenseOption[B] {
	return func(c *denseConfig[B]) {
		c.bias = true
	}
}

// WithInit overrides the weight initializer. The function receives the
// weight shape [in_features, out_features] and the backend.
func WithInit[B tensor.Backend](init func(shape tensor.Shape, backend B) *tensor.Tensor[float64, B]) DenseOption[B] {
	return func(c *denseConfig[B]) {
		c.init = init
	}
}

// NewDense creates a new Dense layer.
func NewDense[B tensor.Backend](inFeatures, outFeatures int, backend B, opts ...DenseOption[B]) *Dense[B] {
	cfg := denseConfig[B]{
		init: Uniform[B],
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	weightShape := tensor.Shape{inFeatures, outFeatures}
	weight := NewParameter("weight", cfg.init(weightShape, backend))

	var bias *Parameter[B]
	if cfg.bias {
		bias = NewParameter("bias", Zeros[B](tensor.Shape{outFeatures}, backend))
	}

	return &Dense[B]{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      weight,
		bias:        bias,
		backend:     backend,
	}
}

// Forward computes y = x @ W (+ b).
//
// Input shape: [samples, in_features]
// Output shape: [samples, out_features]
func (d *Dense[B]) Forward(input *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B] {
	inputShape := input.Shape()
	if len(inputShape) != 2 {
		panic(fmt.Sprintf("Dense.Forward: expected 2D input [samples, features], got shape %v", inputShape))
	}
	if inputShape[1] != d.inFeatures {
		panic(fmt.Sprintf("Dense.Forward: expected input with %d features, got %d", d.inFeatures, inputShape[1]))
	}

	// [samples, in_features] @ [in_features, out_features] = [samples, out_features]
	output := input.MatMul(d.weight.Tensor())

	if d.bias != nil {
		// Reshape bias to [1, out_features] so it broadcasts over samples.
		b := d.bias.Tensor().Reshape(1, d.outFeatures)
		output = output.Add(b)
	}

	return output
}

// Parameters returns [weight, bias] if bias is present, otherwise [weight].
func (d *Dense[B]) Parameters() []*Parameter[B] {
	if d.bias != nil {
		return []*Parameter[B]{d.weight, d.bias}
	}
	return []*Parameter[B]{d.weight}
}

// Weight returns the weight parameter.
func (d *Dense[B]) Weight() *Parameter[B] {
	return d.weight
}

// Bias returns the bias parameter, or nil for a bias-free layer.
func (d *Dense[B]) Bias() *Parameter[B] {
	return d.bias
}

// InFeatures returns the number of input features.
func (d *Dense[B]) InFeatures() int {
	return d.inFeatures
}

// OutFeatures returns the number of output features.
func (d *Dense[B]) OutFeatures() int {
	return d.outFeatures
}
