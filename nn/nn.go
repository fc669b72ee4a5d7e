// Copyright 2026 The Rill Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the layer contract and the concrete layers.
//
// Every layer implements the same contract: Forward takes an input tensor
// and returns the output together with a single-use Backward context that
// closes over the forward-pass intermediates. Backpropagation happens by
// running those contexts in reverse composition order; there is no
// computation graph.
//
// Example:
//
//	backend := cpu.New()
//	affine := nn.NewAffine(3, 5, backend)
//	out, back := affine.Forward(x)              // x: (5, batch)
//	grad := back.Run(dOut, sgd)                 // updates W and b, returns dX
package nn

import (
	"github.com/rill-ml/rill/internal/nn"
	"github.com/rill-ml/rill/tensor"
)

// Layer is the forward/backward contract every layer implements.
type Layer = nn.Layer

// Backward is the single-use backward context paired with one forward
// invocation. Running it twice panics.
type Backward = nn.Backward

// Optimizer is the parameter-update rule invoked by backward contexts.
type Optimizer = nn.Optimizer

// NewBackward creates a single-use backward context. Layer implementations
// outside this module use it to satisfy the Layer contract.
func NewBackward(owner string, step func(outputGrad *tensor.Tensor, opt Optimizer) *tensor.Tensor) *Backward {
	return nn.NewBackward(owner, step)
}

// Identity is the no-op layer.
type Identity = nn.Identity

// Affine is a fully connected layer computing Y = W·X + b.
type Affine = nn.Affine

// NewAffine creates an affine layer mapping in features to out features,
// with Xavier-initialized weights and zero bias.
//
// Example:
//
//	layer := nn.NewAffine(3, 5, backend) // (5, batch) → (3, batch)
func NewAffine(out, in int, backend tensor.Backend) *Affine {
	return nn.NewAffine(out, in, backend)
}

// ReLU is the rectified linear activation layer.
type ReLU = nn.ReLU

// NewReLU creates a ReLU activation layer.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// Sigmoid is the logistic activation layer.
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a sigmoid activation layer.
func NewSigmoid() *Sigmoid {
	return nn.NewSigmoid()
}

// MSE is the mean-squared-error cost layer with the target bound at
// construction. Its backward context is the root of the backward pass.
type MSE = nn.MSE

// NewMSE creates an MSE cost layer for the given target.
func NewMSE(target *tensor.Tensor) *MSE {
	return nn.NewMSE(target)
}

// Xavier returns a tensor initialized with the Glorot normal scheme.
func Xavier(fanIn, fanOut int, shape tensor.Shape, backend tensor.Backend) *tensor.Tensor {
	return nn.Xavier(fanIn, fanOut, shape, backend)
}
