package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdhoffa/nODEs/internal/backend/cpu"
	"github.com/jdhoffa/nODEs/internal/tensor"
)

func TestFromSlice(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)

	assert.True(t, x.Shape().Equal(tensor.Shape{2, 3}))
	assert.Equal(t, tensor.Float64, x.DType())
	assert.Equal(t, 6.0, x.At(1, 2))
}

func TestFromSliceLengthMismatch(t *testing.T) {
	backend := cpu.New()

	_, err := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{2, 3}, backend)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires 6 elements")
}

func TestCreation(t *testing.T) {
	backend := cpu.New()

	zeros := tensor.Zeros[float64](tensor.Shape{2, 2}, backend)
	for _, v := range zeros.Data() {
		assert.Zero(t, v)
	}

	ones := tensor.Ones[float32](tensor.Shape{3}, backend)
	for _, v := range ones.Data() {
		assert.Equal(t, float32(1), v)
	}

	full := tensor.Full[float64](tensor.Shape{2}, 3.14, backend)
	assert.Equal(t, 3.14, full.At(0))
}

func TestRandRange(t *testing.T) {
	backend := cpu.New()

	r := tensor.Rand[float64](tensor.Shape{10, 10}, backend)
	for _, v := range r.Data() {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestRandSeedDeterminism(t *testing.T) {
	backend := cpu.New()

	a := tensor.RandSeed[float64](tensor.Shape{4, 4}, 7, backend)
	b := tensor.RandSeed[float64](tensor.Shape{4, 4}, 7, backend)
	assert.Equal(t, a.Data(), b.Data())

	c := tensor.RandSeed[float64](tensor.Shape{4, 4}, 8, backend)
	assert.NotEqual(t, a.Data(), c.Data())
}

func TestRandnSeedDeterminism(t *testing.T) {
	backend := cpu.New()

	a := tensor.RandnSeed[float64](tensor.Shape{4, 4}, 7, backend)
	b := tensor.RandnSeed[float64](tensor.Shape{4, 4}, 7, backend)
	assert.Equal(t, a.Data(), b.Data())
}

func TestAtSet(t *testing.T) {
	backend := cpu.New()

	x := tensor.Zeros[float64](tensor.Shape{3, 4}, backend)
	x.Set(2.5, 1, 2)
	assert.Equal(t, 2.5, x.At(1, 2))
	assert.Zero(t, x.At(2, 1))

	assert.Panics(t, func() { x.At(3, 0) })
	assert.Panics(t, func() { x.At(0) })
}

func TestItem(t *testing.T) {
	backend := cpu.New()

	s := tensor.Full[float64](tensor.Shape{1}, 42.0, backend)
	assert.Equal(t, 42.0, s.Item())

	m := tensor.Zeros[float64](tensor.Shape{2, 2}, backend)
	assert.Panics(t, func() { m.Item() })
}

func TestClone(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	clone := x.Clone()
	clone.Set(99, 0, 0)
	assert.Equal(t, 1.0, x.At(0, 0))
	assert.Equal(t, 99.0, clone.At(0, 0))
}

func TestOpsProduceFreshTensors(t *testing.T) {
	backend := cpu.New()

	a, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]float64{10, 20, 30, 40}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	sum := a.Add(b)
	assert.Equal(t, []float64{11, 22, 33, 44}, sum.Data())
	// Operands must be untouched.
	assert.Equal(t, []float64{1, 2, 3, 4}, a.Data())
	assert.Equal(t, []float64{10, 20, 30, 40}, b.Data())

	diff := b.Sub(a)
	assert.Equal(t, []float64{9, 18, 27, 36}, diff.Data())

	prod := a.Mul(a)
	assert.Equal(t, []float64{1, 4, 9, 16}, prod.Data())

	quot := b.Div(a)
	assert.Equal(t, []float64{10, 10, 10, 10}, quot.Data())
}

func TestTransposeAndReshape(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)

	xt := x.T()
	assert.True(t, xt.Shape().Equal(tensor.Shape{3, 2}))
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, xt.Data())

	flat := x.Reshape(6)
	assert.True(t, flat.Shape().Equal(tensor.Shape{6}))
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, flat.Data())

	assert.Panics(t, func() { flat.T() })
}

func TestSum(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)
	assert.Equal(t, 10.0, x.Sum().Item())
}

func TestFloat32Path(t *testing.T) {
	backend := cpu.New()

	a, err := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2}, backend)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]float32{3, 4}, tensor.Shape{2}, backend)
	require.NoError(t, err)

	sum := a.Add(b)
	assert.Equal(t, tensor.Float32, sum.DType())
	assert.Equal(t, []float32{4, 6}, sum.Data())
}
