// Copyright 2026 The Rill Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train drives gradient-descent training of composed models.
package train

import (
	"iter"

	"github.com/rill-ml/rill/internal/train"
	"github.com/rill-ml/rill/nn"
	"github.com/rill-ml/rill/tensor"
)

// Run trains model (a predictor; Run attaches the MSE cost over target) and
// returns the lazy, finite sequence of (epoch, cost) pairs. Consuming the
// sequence is what trains: each element runs one forward pass and one
// seeded backward pass that updates parameters through opt.
//
// Example:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.01})
//	for epoch, cost := range train.Run(x, y, model, sgd, 100) {
//	    fmt.Printf("epoch %d cost %g\n", epoch, cost)
//	}
func Run(input, target *tensor.Tensor, model nn.Layer, opt nn.Optimizer, epochs int) iter.Seq2[int, float64] {
	return train.Run(input, target, model, opt, epochs)
}

// History drains a training sequence and returns the cost per epoch.
func History(seq iter.Seq2[int, float64]) []float64 {
	return train.History(seq)
}
