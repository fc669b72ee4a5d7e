package nn

import (
	"fmt"

	"github.com/rill-ml/rill/internal/tensor"
)

// MSE computes mean squared error against a target bound at construction.
//
//	cost = mean((prediction - target)²)
//
// MSE is a cost layer: its forward output is a one-element tensor and its
// backward context is the root of the backward pass. The conventional seed
// gradient of 1 is accepted and ignored; the prediction gradient
//
//	dPrediction = -2 · (target - prediction)
//
// does not depend on it.
type MSE struct {
	target *tensor.Tensor
}

// NewMSE creates an MSE cost layer for the given target.
func NewMSE(target *tensor.Tensor) *MSE {
	return &MSE{target: target}
}

// Forward returns the scalar cost for prediction and the backward context
// seeding the gradient chain.
func (m *MSE) Forward(prediction *tensor.Tensor) (*tensor.Tensor, *Backward) {
	diff := prediction.Sub(m.target)
	cost := tensor.Full(tensor.Shape{1}, diff.Mul(diff).Mean(), prediction.Backend())

	back := NewBackward(m.String(), func(_ *tensor.Tensor, _ Optimizer) *tensor.Tensor {
		return m.target.Sub(prediction).MulScalar(-2)
	})

	return cost, back
}

// Target returns the bound target tensor.
func (m *MSE) Target() *tensor.Tensor {
	return m.target
}

func (m *MSE) String() string {
	return fmt.Sprintf("mse %v", m.target.Shape())
}
