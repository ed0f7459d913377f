// Copyright 2026 The nODEs Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend for tensor operations.
//
// The backend has no shared mutable state, so it is safe for concurrent
// use. It is the only backend implementation; the tensor.Backend
// interface is the seam where an accelerated backend would plug in.
package cpu

import (
	internalcpu "github.com/jdhoffa/nODEs/internal/backend/cpu"
	"github.com/jdhoffa/nODEs/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float64](tensor.Shape{2, 3}, backend)
func New() *Backend {
	return internalcpu.New()
}
