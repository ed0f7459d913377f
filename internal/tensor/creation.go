package tensor

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float64](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full[T, B](shape, T(1), b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float64](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Rand creates a tensor with values drawn from the uniform distribution
// U(0, 1), the same contract NumPy's rand exposes. The draw uses the
// process-global source; use RandSeed for a deterministic tensor.
//
// Example:
//
//	t := tensor.Rand[float64](Shape{3, 4}, backend)
func Rand[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return sample[T, B](shape, b, distuv.Uniform{Min: 0, Max: 1})
}

// RandSeed is Rand with an explicit seed. The same seed always yields the
// same tensor for a given shape.
func RandSeed[T DType, B Backend](shape Shape, seed uint64, b B) *Tensor[T, B] {
	return sample[T, B](shape, b, distuv.Uniform{Min: 0, Max: 1, Src: rand.NewSource(seed)})
}

// Randn creates a tensor with values drawn from the standard normal
// distribution N(0, 1).
//
// Example:
//
//	t := tensor.Randn[float64](Shape{100, 100}, backend)
func Randn[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return sample[T, B](shape, b, distuv.Normal{Mu: 0, Sigma: 1})
}

// RandnSeed is Randn with an explicit seed.
func RandnSeed[T DType, B Backend](shape Shape, seed uint64, b B) *Tensor[T, B] {
	return sample[T, B](shape, b, distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)})
}

// sample fills a fresh tensor from any distuv distribution.
func sample[T DType, B Backend](shape Shape, b B, dist distuv.Rander) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = T(dist.Rand())
	}
	return t
}
