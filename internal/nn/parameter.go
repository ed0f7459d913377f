package nn

import (
	"github.com/jdhoffa/nODEs/internal/tensor"
)

// Parameter is a named weight tensor belonging to a module.
//
// The name survives for introspection and error messages. There is no
// gradient slot: the library computes forward passes only.
type Parameter[B tensor.Backend] struct {
	name   string
	tensor *tensor.Tensor[float64, B]
}

// NewParameter creates a new named parameter.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float64, B]) *Parameter[B] {
	return &Parameter[B]{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[float64, B] {
	return p.tensor
}
