package nn

import (
	"fmt"

	"github.com/rill-ml/rill/internal/tensor"
)

// Affine is a fully connected layer computing Y = W·X + b for inputs of
// shape (in, batch).
//
// The weight matrix W (out×in) and bias b (out×1) are allocated once at
// construction and mutated only by the optimizer during backward passes.
type Affine struct {
	weight *tensor.Tensor
	bias   *tensor.Tensor
	out    int
	in     int
}

// NewAffine creates an affine layer mapping in features to out features.
// Weights use Xavier initialization drawn from the backend's random source;
// the bias starts at zero.
func NewAffine(out, in int, backend tensor.Backend) *Affine {
	return &Affine{
		weight: Xavier(in, out, tensor.Shape{out, in}, backend),
		bias:   tensor.Zeros(tensor.Shape{out, 1}, backend),
		out:    out,
		in:     in,
	}
}

// Forward computes Y = W·X + b for X of shape (in, batch).
//
// The backward context captures X and computes, given dY:
//
//	dX = Wᵗ·dY
//	dW = dY·Xᵗ
//	db = row-sum of dY over the batch axis
//
// invoking the optimizer on (W, dW) and (b, db) before returning dX.
func (a *Affine) Forward(input *tensor.Tensor) (*tensor.Tensor, *Backward) {
	output := a.weight.MatMul(input).Add(a.bias)

	back := NewBackward(a.String(), func(outputGrad *tensor.Tensor, opt Optimizer) *tensor.Tensor {
		inputGrad := a.weight.T().MatMul(outputGrad)

		weightGrad := outputGrad.MatMul(input.T())
		biasGrad := outputGrad.SumDim(1, true)
		opt.Update(a.weight, weightGrad)
		opt.Update(a.bias, biasGrad)

		return inputGrad
	})

	return output, back
}

// Weight returns the weight matrix (out×in).
func (a *Affine) Weight() *tensor.Tensor {
	return a.weight
}

// Bias returns the bias column vector (out×1).
func (a *Affine) Bias() *tensor.Tensor {
	return a.bias
}

// InFeatures returns the input feature count.
func (a *Affine) InFeatures() int {
	return a.in
}

// OutFeatures returns the output feature count.
func (a *Affine) OutFeatures() int {
	return a.out
}

func (a *Affine) String() string {
	return fmt.Sprintf("affine %d→%d", a.in, a.out)
}
