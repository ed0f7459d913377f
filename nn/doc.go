// Copyright 2026 The nODEs Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network layers and building blocks.
//
// # Overview
//
// This package contains:
//   - Layers: Dense (bias-free by default)
//   - Activations: Sigmoid, ReLU, Tanh
//   - Cost functions: SSELoss, MSELoss (values only)
//   - Containers: Sequential, the Module interface, Parameter
//   - Network: a two-layer feedforward sigmoid network
//   - Initialization: Uniform, Xavier, Zeros, Ones, Randn
//
// The library computes forward passes only. There is no gradient
// computation, no optimizer and no training loop.
//
// # Basic Usage
//
//	import (
//	    "github.com/jdhoffa/nODEs/backend/cpu"
//	    "github.com/jdhoffa/nODEs/nn"
//	    "github.com/jdhoffa/nODEs/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x, _ := tensor.FromSlice(
//	        []float64{0, 0, 1, 0, 1, 1, 1, 0, 1, 1, 1, 1},
//	        tensor.Shape{4, 3}, backend)
//	    y, _ := tensor.FromSlice(
//	        []float64{0, 1, 1, 0},
//	        tensor.Shape{4, 1}, backend)
//
//	    net, err := nn.NewNetwork(x, y, backend, nn.WithSeed(42))
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    out := net.Feedforward() // σ(σ(x·W1)·W2), shape [4, 1]
//	    cost := net.Cost()       // Σ(y − out)²
//	    _ = out
//	    _ = cost
//	}
//
// # Building networks by hand
//
// The same forward pass expressed with Sequential:
//
//	model := nn.NewSequential(
//	    nn.NewDense(3, 4, backend),
//	    nn.NewSigmoid[*cpu.Backend](),
//	    nn.NewDense(4, 1, backend),
//	    nn.NewSigmoid[*cpu.Backend](),
//	)
//	out := model.Forward(x)
package nn
