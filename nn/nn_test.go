// Copyright 2026 The nODEs Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdhoffa/nODEs/backend/cpu"
	"github.com/jdhoffa/nODEs/nn"
	"github.com/jdhoffa/nODEs/tensor"
)

// End-to-end over the public API: construct the illustrative network,
// run the forward pass, read the cost.
func TestPublicAPIEndToEnd(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float64{
		0, 0, 1,
		0, 1, 1,
		1, 0, 1,
		1, 1, 1,
	}, tensor.Shape{4, 3}, backend)
	require.NoError(t, err)

	y, err := tensor.FromSlice([]float64{0, 1, 1, 0}, tensor.Shape{4, 1}, backend)
	require.NoError(t, err)

	net, err := nn.NewNetwork(x, y, backend, nn.WithSeed(42))
	require.NoError(t, err)

	costBefore := net.Cost()
	out := net.Feedforward()
	costAfter := net.Cost()

	assert.True(t, out.Shape().Equal(tensor.Shape{4, 1}))
	for _, v := range out.Data() {
		assert.Greater(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
	assert.NotEqual(t, costBefore, costAfter)
}

func TestPublicSequential(t *testing.T) {
	backend := cpu.New()

	model := nn.NewSequential[*cpu.Backend](
		nn.NewDense(3, 4, backend),
		nn.NewSigmoid[*cpu.Backend](),
		nn.NewDense(4, 1, backend),
		nn.NewSigmoid[*cpu.Backend](),
	)

	input := tensor.RandSeed[float64](tensor.Shape{8, 3}, 1, backend)
	out := model.Forward(input)

	assert.True(t, out.Shape().Equal(tensor.Shape{8, 1}))
	assert.Len(t, model.Parameters(), 2)
}

func TestPublicLosses(t *testing.T) {
	backend := cpu.New()

	pred, err := tensor.FromSlice([]float64{0.5, 0.5}, tensor.Shape{2, 1}, backend)
	require.NoError(t, err)
	target, err := tensor.FromSlice([]float64{0, 1}, tensor.Shape{2, 1}, backend)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, nn.NewSSELoss[*cpu.Backend]().Forward(pred, target).Item(), 1e-12)
	assert.InDelta(t, 0.25, nn.NewMSELoss[*cpu.Backend]().Forward(pred, target).Item(), 1e-12)
}
