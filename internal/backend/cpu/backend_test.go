package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/jdhoffa/nODEs/internal/tensor"
)

func fromSlice(t *testing.T, data []float64, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float64, tensor.CPU)
	require.NoError(t, err)
	copy(raw.AsFloat64(), data)
	return raw
}

func TestBackendMetadata(t *testing.T) {
	backend := New()
	assert.Equal(t, "CPU", backend.Name())
	assert.Equal(t, tensor.CPU, backend.Device())
}

// MatMul is checked against gonum's mat.Dense as the reference
// implementation.
func TestMatMulAgainstGonum(t *testing.T) {
	backend := New()

	// a is 2x3, b is 3x4.
	aData := []float64{1, 2, 3, 4, 5, 6}
	bData := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	a := fromSlice(t, aData, tensor.Shape{2, 3})
	b := fromSlice(t, bData, tensor.Shape{3, 4})

	got := backend.MatMul(a, b)

	var want mat.Dense
	want.Mul(
		mat.NewDense(2, 3, aData),
		mat.NewDense(3, 4, bData),
	)

	gotData := got.AsFloat64()
	for i := 0; i < 2; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, want.At(i, j), gotData[i*4+j], 1e-12,
				"mismatch at (%d,%d)", i, j)
		}
	}
}

func TestMatMulShapeMismatchPanics(t *testing.T) {
	backend := New()

	a := fromSlice(t, make([]float64, 6), tensor.Shape{2, 3})
	b := fromSlice(t, make([]float64, 8), tensor.Shape{4, 2})

	assert.PanicsWithValue(t, "matmul: shape mismatch [2,3] @ [4,2]", func() {
		backend.MatMul(a, b)
	})
}

func TestMatMulRejectsNon2D(t *testing.T) {
	backend := New()

	a := fromSlice(t, make([]float64, 6), tensor.Shape{6})
	b := fromSlice(t, make([]float64, 6), tensor.Shape{2, 3})

	assert.Panics(t, func() { backend.MatMul(a, b) })
}

func TestAddBroadcastRowVector(t *testing.T) {
	backend := New()

	a := fromSlice(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	bias := fromSlice(t, []float64{10, 20, 30}, tensor.Shape{1, 3})

	got := backend.Add(a, bias)
	assert.Equal(t, []float64{11, 22, 33, 14, 25, 36}, got.AsFloat64())
	// Operand untouched.
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, a.AsFloat64())
}

func TestAddBroadcastColumnVector(t *testing.T) {
	backend := New()

	a := fromSlice(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	col := fromSlice(t, []float64{10, 100}, tensor.Shape{2, 1})

	got := backend.Add(a, col)
	assert.Equal(t, []float64{11, 12, 103, 104}, got.AsFloat64())
}

func TestAddIncompatibleShapesPanics(t *testing.T) {
	backend := New()

	a := fromSlice(t, make([]float64, 6), tensor.Shape{2, 3})
	b := fromSlice(t, make([]float64, 4), tensor.Shape{2, 2})

	assert.Panics(t, func() { backend.Add(a, b) })
}

func TestSigmoid(t *testing.T) {
	backend := New()

	x := fromSlice(t, []float64{-1000, -1, 0, 1, 1000}, tensor.Shape{5})
	got := backend.Sigmoid(x).AsFloat64()

	assert.InDelta(t, 0.0, got[0], 1e-12)
	assert.InDelta(t, 1.0/(1.0+math.E), got[1], 1e-12)
	assert.Equal(t, 0.5, got[2])
	assert.InDelta(t, math.E/(1.0+math.E), got[3], 1e-12)
	assert.InDelta(t, 1.0, got[4], 1e-12)
}

func TestSigmoidPreservesShape(t *testing.T) {
	backend := New()

	x := fromSlice(t, make([]float64, 12), tensor.Shape{3, 4})
	got := backend.Sigmoid(x)
	assert.True(t, got.Shape().Equal(tensor.Shape{3, 4}))
}

func TestSum(t *testing.T) {
	backend := New()

	x := fromSlice(t, []float64{1.5, 2.5, -1, 3}, tensor.Shape{2, 2})
	got := backend.Sum(x)
	assert.True(t, got.Shape().Equal(tensor.Shape{1}))
	assert.Equal(t, 6.0, got.AsFloat64()[0])
}

func TestTranspose2D(t *testing.T) {
	backend := New()

	x := fromSlice(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	got := backend.Transpose(x)

	assert.True(t, got.Shape().Equal(tensor.Shape{3, 2}))
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, got.AsFloat64())
}

func TestTransposeInvalidAxesPanics(t *testing.T) {
	backend := New()

	x := fromSlice(t, make([]float64, 6), tensor.Shape{2, 3})
	assert.Panics(t, func() { backend.Transpose(x, 0, 0) })
	assert.Panics(t, func() { backend.Transpose(x, 0, 2) })
}

func TestReshape(t *testing.T) {
	backend := New()

	x := fromSlice(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	got := backend.Reshape(x, tensor.Shape{3, 2})
	assert.True(t, got.Shape().Equal(tensor.Shape{3, 2}))
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, got.AsFloat64())

	assert.Panics(t, func() { backend.Reshape(x, tensor.Shape{4, 2}) })
}

func TestDivByZeroFollowsIEEE(t *testing.T) {
	backend := New()

	a := fromSlice(t, []float64{1, 0}, tensor.Shape{2})
	b := fromSlice(t, []float64{0, 0}, tensor.Shape{2})

	got := backend.Div(a, b).AsFloat64()
	assert.True(t, math.IsInf(got[0], 1))
	assert.True(t, math.IsNaN(got[1]))
}
