// Package optim implements parameter-update rules invoked by backward
// contexts during backpropagation.
package optim

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/rill-ml/rill/internal/tensor"
)

// DefaultLR is the learning rate used when SGDConfig leaves LR zero.
const DefaultLR = 0.001

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.001)
}

// SGD implements plain gradient descent:
//
//	param ← param − lr · gradient
//
// applied in place to the parameter tensor. No momentum, decay schedule, or
// per-parameter state.
type SGD struct {
	lr float64
}

// NewSGD creates an SGD optimizer from config, filling in defaults.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = DefaultLR
	}
	return &SGD{lr: config.LR}
}

// Update applies one gradient-descent step to param in place.
func (s *SGD) Update(param, grad *tensor.Tensor) {
	if !param.Shape().Equal(grad.Shape()) {
		panic(fmt.Sprintf("optim: gradient shape %v does not match parameter shape %v",
			grad.Shape(), param.Shape()))
	}
	floats.AddScaled(param.Data(), -s.lr, grad.Data())
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
