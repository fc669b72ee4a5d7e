// Copyright 2026 The Rill Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/rill-ml/rill/internal/backend/cpu"
	"github.com/rill-ml/rill/tensor"
)

// Backend is the CPU backend: dense float64 math via gonum, with a
// per-backend random source for reproducible initialization.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a CPU backend with the default seed.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros(tensor.Shape{2, 3}, backend)
func New() *Backend {
	return internalcpu.New()
}

// NewWithSeed creates a CPU backend whose random draws are determined by
// seed. Two backends with the same seed initialize identical models.
func NewWithSeed(seed uint64) *Backend {
	return internalcpu.NewWithSeed(seed)
}
