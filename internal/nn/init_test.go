package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jdhoffa/nODEs/internal/backend/cpu"
	"github.com/jdhoffa/nODEs/internal/tensor"
)

func TestUniformRange(t *testing.T) {
	backend := cpu.New()

	w := Uniform(tensor.Shape{20, 20}, backend)
	for _, v := range w.Data() {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestUniformSeedDeterminism(t *testing.T) {
	backend := cpu.New()

	a := UniformSeed(tensor.Shape{5, 5}, 13, backend)
	b := UniformSeed(tensor.Shape{5, 5}, 13, backend)
	assert.Equal(t, a.Data(), b.Data())
}

func TestXavierBound(t *testing.T) {
	backend := cpu.New()

	fanIn, fanOut := 16, 4
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	w := Xavier(fanIn, fanOut, tensor.Shape{fanIn, fanOut}, backend)
	for _, v := range w.Data() {
		assert.GreaterOrEqual(t, v, -bound)
		assert.LessOrEqual(t, v, bound)
	}
}

func TestXavierSeedDeterminism(t *testing.T) {
	backend := cpu.New()

	a := XavierSeed(4, 4, tensor.Shape{4, 4}, 9, backend)
	b := XavierSeed(4, 4, tensor.Shape{4, 4}, 9, backend)
	assert.Equal(t, a.Data(), b.Data())
}

func TestZerosOnes(t *testing.T) {
	backend := cpu.New()

	for _, v := range Zeros(tensor.Shape{3, 3}, backend).Data() {
		assert.Zero(t, v)
	}
	for _, v := range Ones(tensor.Shape{3, 3}, backend).Data() {
		assert.Equal(t, 1.0, v)
	}
}

func TestRandnMoments(t *testing.T) {
	backend := cpu.New()

	w := Randn(tensor.Shape{100, 100}, backend)
	var sum float64
	for _, v := range w.Data() {
		sum += v
	}
	mean := sum / float64(w.NumElements())

	// Loose bound: 10k standard normal samples have mean well within 0.1.
	assert.InDelta(t, 0.0, mean, 0.1)
}
