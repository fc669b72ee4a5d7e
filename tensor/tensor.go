// Copyright 2026 The Rill Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for tensor operations in Rill.
//
// Tensors are dense, row-major float64 arrays of rank at most 2 (matrices
// and column vectors), bound to a compute backend. Operations allocate
// fresh results; tensors are immutable by convention.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Randn(tensor.Shape{3, 5}, backend)
//	y := x.MatMul(x.T())
package tensor

import (
	"github.com/rill-ml/rill/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{3, 5} is a 3×5 matrix, Shape{3, 1} a column vector.
type Shape = tensor.Shape

// MaxRank is the highest supported tensor rank.
const MaxRank = tensor.MaxRank

// Tensor is a dense float64 array of rank at most 2.
type Tensor = tensor.Tensor

// Backend is the compute interface tensors are bound to.
// See backend/cpu for the gonum-backed implementation.
type Backend = tensor.Backend

// New creates a tensor over a copy of data.
func New(shape Shape, data []float64, b Backend) (*Tensor, error) {
	return tensor.New(shape, data, b)
}

// FromSlice creates a tensor from existing data, copied.
func FromSlice(data []float64, shape Shape, b Backend) (*Tensor, error) {
	return tensor.FromSlice(data, shape, b)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape, b Backend) *Tensor {
	return tensor.Zeros(shape, b)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, b Backend) *Tensor {
	return tensor.Ones(shape, b)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64, b Backend) *Tensor {
	return tensor.Full(shape, value, b)
}

// Randn creates a tensor with elements drawn from N(0, 1) using the
// backend's random source.
func Randn(shape Shape, b Backend) *Tensor {
	return tensor.Randn(shape, b)
}
