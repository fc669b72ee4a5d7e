// Package train drives gradient-descent training of composed models.
package train

import (
	"iter"

	"github.com/rill-ml/rill/internal/chain"
	"github.com/rill-ml/rill/internal/nn"
	"github.com/rill-ml/rill/internal/tensor"
)

// Run trains model against target on the full input for the given number of
// epochs and returns the lazy sequence of (epoch, cost) pairs.
//
// The model is the predictor; Run binds the cost by composing it with an
// MSE layer over target. Each consumed element runs one forward pass, seeds
// the backward pass with a unit gradient, and applies parameter updates
// through opt: consuming the sequence IS training. The sequence is finite
// and single-pass: iterating it twice would train twice from wherever the
// parameters were left. A fresh call to Run starts a fresh run.
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.01})
//	for epoch, cost := range train.Run(x, y, model, sgd, 100) {
//	    fmt.Printf("epoch %d cost %g\n", epoch, cost)
//	}
func Run(input, target *tensor.Tensor, model nn.Layer, opt nn.Optimizer, epochs int) iter.Seq2[int, float64] {
	full := chain.New(model, nn.NewMSE(target))
	seed := tensor.Ones(tensor.Shape{1}, input.Backend())

	return func(yield func(int, float64) bool) {
		for epoch := 0; epoch < epochs; epoch++ {
			cost, back := full.Forward(input)
			back.Run(seed, opt)
			if !yield(epoch, cost.Scalar()) {
				return
			}
		}
	}
}

// History drains a training sequence and returns the cost per epoch.
// Draining trains: see Run.
func History(seq iter.Seq2[int, float64]) []float64 {
	var costs []float64
	for _, cost := range seq {
		costs = append(costs, cost)
	}
	return costs
}
