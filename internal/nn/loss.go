package nn

import (
	"fmt"

	"github.com/jdhoffa/nODEs/internal/tensor"
)

// SSELoss computes the sum-of-squared-errors cost.
//
// Loss = Σ (targets - predictions)²
//
// This is the cost Network reports. The loss is a value only; no
// gradients are computed.
//
// Example:
//
//	sse := nn.NewSSELoss[B]()
//	cost := sse.Forward(predictions, targets).Item()
type SSELoss[B tensor.Backend] struct{}

// NewSSELoss creates a new SSE cost function.
func NewSSELoss[B tensor.Backend]() *SSELoss[B] {
	return &SSELoss[B]{}
}

// Forward computes Σ (targets - predictions)² as a single-element tensor.
// Panics if the shapes differ.
func (l *SSELoss[B]) Forward(predictions, targets *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B] {
	diff := squaredError(predictions, targets, "SSELoss")
	return diff.Sum()
}

// Parameters returns an empty slice (cost functions have no weights).
func (l *SSELoss[B]) Parameters() []*Parameter[B] {
	return nil
}

// MSELoss computes the mean-squared-error cost.
//
// Loss = mean((targets - predictions)²)
type MSELoss[B tensor.Backend] struct{}

// NewMSELoss creates a new MSE cost function.
func NewMSELoss[B tensor.Backend]() *MSELoss[B] {
	return &MSELoss[B]{}
}

// Forward computes mean((targets - predictions)²) as a single-element tensor.
// Panics if the shapes differ.
func (l *MSELoss[B]) Forward(predictions, targets *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B] {
	diff := squaredError(predictions, targets, "MSELoss")
	n := float64(diff.NumElements())
	sum := diff.Sum()
	divisor := tensor.Full[float64](tensor.Shape{1}, n, predictions.Backend())
	return sum.Div(divisor)
}

// Parameters returns an empty slice (cost functions have no weights).
func (l *MSELoss[B]) Parameters() []*Parameter[B] {
	return nil
}

func squaredError[B tensor.Backend](predictions, targets *tensor.Tensor[float64, B], name string) *tensor.Tensor[float64, B] {
	if !predictions.Shape().Equal(targets.Shape()) {
		panic(fmt.Sprintf("%s: predictions and targets must have the same shape, got %v vs %v",
			name, predictions.Shape(), targets.Shape()))
	}
	diff := targets.Sub(predictions)
	return diff.Mul(diff)
}
