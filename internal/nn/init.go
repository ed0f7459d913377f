package nn

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/jdhoffa/nODEs/internal/tensor"
)

// Uniform initializes a tensor with values drawn from U(0, 1).
//
// This matches NumPy's default uniform draw. For anything deeper than a
// toy network, prefer Xavier.
func Uniform[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float64, B] {
	return tensor.Rand[float64](shape, backend)
}

// UniformSeed is Uniform with an explicit seed, for reproducible networks.
func UniformSeed[B tensor.Backend](shape tensor.Shape, seed uint64, backend B) *tensor.Tensor[float64, B] {
	return tensor.RandSeed[float64](shape, seed, backend)
}

// Xavier (Glorot) initialization for weights.
//
// Draws from U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))),
// which keeps activation variance stable across layers.
func Xavier[B tensor.Backend](fanIn, fanOut int, shape tensor.Shape, backend B) *tensor.Tensor[float64, B] {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return sampleInit(shape, backend, distuv.Uniform{Min: -bound, Max: bound})
}

// XavierSeed is Xavier with an explicit seed.
func XavierSeed[B tensor.Backend](fanIn, fanOut int, shape tensor.Shape, seed uint64, backend B) *tensor.Tensor[float64, B] {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return sampleInit(shape, backend, distuv.Uniform{Min: -bound, Max: bound, Src: rand.NewSource(seed)})
}

// Zeros creates a tensor filled with zeros. Commonly used for biases.
func Zeros[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float64, B] {
	return tensor.Zeros[float64](shape, backend)
}

// Ones creates a tensor filled with ones.
func Ones[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float64, B] {
	return tensor.Ones[float64](shape, backend)
}

// Randn creates a tensor with values drawn from N(0, 1).
func Randn[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float64, B] {
	return tensor.Randn[float64](shape, backend)
}

func sampleInit[B tensor.Backend](shape tensor.Shape, backend B, dist distuv.Rander) *tensor.Tensor[float64, B] {
	t := tensor.Zeros[float64](shape, backend)
	data := t.Data()
	for i := range data {
		data[i] = dist.Rand()
	}
	return t
}
