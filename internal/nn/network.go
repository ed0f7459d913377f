package nn

import (
	"github.com/pkg/errors"

	"github.com/jdhoffa/nODEs/internal/tensor"
)

// DefaultHiddenSize is the width of the hidden layer when none is configured.
const DefaultHiddenSize = 4

// Network is a two-layer feedforward neural network with sigmoid
// activations, bound to a fixed input matrix and target matrix:
//
//	layer1 = σ(x @ W1)
//	output = σ(layer1 @ W2)
//
// with W1 of shape [features, hidden] and W2 of shape [hidden, outputs].
// Weights are drawn from U(0, 1) and there are no bias terms. The output
// buffer starts as zeros of the target's shape and is replaced by each
// Feedforward call.
//
// Example:
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice(inputs, tensor.Shape{4, 3}, backend)
//	y, _ := tensor.FromSlice(targets, tensor.Shape{4, 1}, backend)
//
//	net, err := nn.NewNetwork(x, y, backend, nn.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	out := net.Feedforward() // shape: [4, 1], values in (0, 1)
//	cost := net.Cost()
type Network[B tensor.Backend] struct {
	input  *tensor.Tensor[float64, B]
	target *tensor.Tensor[float64, B]
	output *tensor.Tensor[float64, B]

	hidden *Dense[B] // [features, hidden]
	out    *Dense[B] // [hidden, outputs]

	sigmoid *Sigmoid[B]
	cost    *SSELoss[B]
	backend B
}

// NetworkOption configures a Network at construction.
type NetworkOption func(*networkConfig)

type networkConfig struct {
	hiddenSize int
	seed       *uint64
}

// WithHiddenSize sets the hidden layer width. Defaults to DefaultHiddenSize.
func WithHiddenSize(n int) NetworkOption {
	return func(c *networkConfig) {
		c.hiddenSize = n
	}
}

// WithSeed makes weight initialization deterministic: the same seed always
// yields the same network for given shapes.
func WithSeed(seed uint64) NetworkOption {
	return func(c *networkConfig) {
		c.seed = &seed
	}
}

// NewNetwork creates a two-layer sigmoid network over the given input and
// target matrices.
//
// Requirements:
//   - x must be rank 2 with shape [samples, features]
//   - y must be rank 2 with shape [samples, outputs]
//   - x and y must agree on the sample count
//
// Violations return an error rather than surfacing later as an op panic.
func NewNetwork[B tensor.Backend](x, y *tensor.Tensor[float64, B], backend B, opts ...NetworkOption) (*Network[B], error) {
	cfg := networkConfig{
		hiddenSize: DefaultHiddenSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.hiddenSize <= 0 {
		return nil, errors.Errorf("hidden size must be > 0, got %d", cfg.hiddenSize)
	}

	xShape := x.Shape()
	yShape := y.Shape()
	if len(xShape) != 2 {
		return nil, errors.Errorf("input must be rank 2 [samples, features], got shape %v", xShape)
	}
	if len(yShape) != 2 {
		return nil, errors.Errorf("target must be rank 2 [samples, outputs], got shape %v", yShape)
	}
	if xShape[0] != yShape[0] {
		return nil, errors.Errorf("input and target disagree on sample count: %d vs %d", xShape[0], yShape[0])
	}

	features := xShape[1]
	outputs := yShape[1]

	hiddenOpts := []DenseOption[B]{}
	outOpts := []DenseOption[B]{}
	if cfg.seed != nil {
		// Distinct streams per layer so the matrices are independent.
		seed := *cfg.seed
		hiddenOpts = append(hiddenOpts, WithInit(seededUniform[B](seed)))
		outOpts = append(outOpts, WithInit(seededUniform[B](seed+1)))
	}

	return &Network[B]{
		input:   x,
		target:  y,
		output:  tensor.Zeros[float64](yShape.Clone(), backend),
		hidden:  NewDense(features, cfg.hiddenSize, backend, hiddenOpts...),
		out:     NewDense(cfg.hiddenSize, outputs, backend, outOpts...),
		sigmoid: NewSigmoid[B](),
		cost:    NewSSELoss[B](),
		backend: backend,
	}, nil
}

func seededUniform[B tensor.Backend](seed uint64) func(tensor.Shape, B) *tensor.Tensor[float64, B] {
	return func(shape tensor.Shape, backend B) *tensor.Tensor[float64, B] {
		return UniformSeed(shape, seed, backend)
	}
}

// Feedforward runs the forward pass on the bound input, stores the result
// as the network's output and returns it.
func (n *Network[B]) Feedforward() *tensor.Tensor[float64, B] {
	n.output = n.Forward(n.input)
	return n.output
}

// Forward runs the two layers on an arbitrary input. The stored output is
// not updated; Network satisfies Module through this method.
func (n *Network[B]) Forward(input *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B] {
	layer1 := n.sigmoid.Forward(n.hidden.Forward(input))
	return n.sigmoid.Forward(n.out.Forward(layer1))
}

// Parameters returns the two weight matrices, W1 then W2.
func (n *Network[B]) Parameters() []*Parameter[B] {
	return append(n.hidden.Parameters(), n.out.Parameters()...)
}

// Output returns the last computed output. Before the first Feedforward
// call it is a zero tensor of the target's shape.
func (n *Network[B]) Output() *tensor.Tensor[float64, B] {
	return n.output
}

// Cost returns the sum-of-squared-errors between the target and the
// current output. Before the first Feedforward call this is the cost of
// the zero output.
func (n *Network[B]) Cost() float64 {
	return n.cost.Forward(n.output, n.target).Item()
}

// Input returns the bound input matrix.
func (n *Network[B]) Input() *tensor.Tensor[float64, B] {
	return n.input
}

// Target returns the bound target matrix.
func (n *Network[B]) Target() *tensor.Tensor[float64, B] {
	return n.target
}

// HiddenSize returns the hidden layer width.
func (n *Network[B]) HiddenSize() int {
	return n.hidden.OutFeatures()
}

// Weights1 returns W1, the input-to-hidden weight matrix [features, hidden].
func (n *Network[B]) Weights1() *tensor.Tensor[float64, B] {
	return n.hidden.Weight().Tensor()
}

// Weights2 returns W2, the hidden-to-output weight matrix [hidden, outputs].
func (n *Network[B]) Weights2() *tensor.Tensor[float64, B] {
	return n.out.Weight().Tensor()
}
