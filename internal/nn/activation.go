package nn

import (
	"github.com/rill-ml/rill/internal/tensor"
)

// ReLU is the rectified linear activation: f(x) = max(0, x).
//
// It has no parameters. The forward pass computes the x > 0 mask once and
// the backward context reuses it, so backward costs one element-wise
// multiply.
type ReLU struct{}

// NewReLU creates a ReLU activation layer.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies the activation and captures the positive mask for the
// backward context.
func (r *ReLU) Forward(input *tensor.Tensor) (*tensor.Tensor, *Backward) {
	mask := input.Greater(tensor.Zeros(tensor.Shape{1}, input.Backend()))
	output := input.Mul(mask)

	back := NewBackward(r.String(), func(outputGrad *tensor.Tensor, _ Optimizer) *tensor.Tensor {
		return outputGrad.Mul(mask)
	})

	return output, back
}

func (r *ReLU) String() string {
	return "relu"
}

// Sigmoid is the logistic activation: f(x) = 1 / (1 + e^(-x)).
//
// It has no parameters. The forward output is captured by the backward
// context, since the derivative is out·(1 - out).
type Sigmoid struct{}

// NewSigmoid creates a sigmoid activation layer.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// Forward applies the activation and captures the output for the backward
// context.
func (s *Sigmoid) Forward(input *tensor.Tensor) (*tensor.Tensor, *Backward) {
	ones := tensor.Ones(input.Shape(), input.Backend())
	output := ones.Div(input.MulScalar(-1).Exp().AddScalar(1))

	back := NewBackward(s.String(), func(outputGrad *tensor.Tensor, _ Optimizer) *tensor.Tensor {
		return outputGrad.Mul(output).Mul(ones.Sub(output))
	})

	return output, back
}

func (s *Sigmoid) String() string {
	return "sigmoid"
}
