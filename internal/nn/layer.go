// Package nn implements the forward/backward layer contract and the
// concrete layers built on it.
//
// A Layer is a deferred computation: Forward consumes an input tensor and
// returns the output together with a Backward context that closes over
// whatever forward-pass intermediates the gradient step needs. There is no
// computation graph; backpropagation is the composition of these contexts.
package nn

import (
	"fmt"

	"github.com/rill-ml/rill/internal/tensor"
)

// Layer is the forward/backward contract every layer implements.
type Layer interface {
	// Forward computes the layer's output for input and returns the
	// Backward context paired with this invocation.
	Forward(input *tensor.Tensor) (*tensor.Tensor, *Backward)
}

// Optimizer is the parameter-update rule invoked by backward contexts.
// Update mutates param in place given its gradient.
type Optimizer interface {
	Update(param, grad *tensor.Tensor)
}

// Backward holds the intermediates captured during one forward invocation
// of a layer, plus the gradient step over them.
//
// A Backward context is valid for exactly one call: the captured tensors
// belong to a single forward pass, and a parameter update in between would
// make them stale. Run panics on reuse.
type Backward struct {
	owner string
	step  func(outputGrad *tensor.Tensor, opt Optimizer) *tensor.Tensor
	used  bool
}

// NewBackward creates a single-use backward context. The owner name is used
// in diagnostics only.
func NewBackward(owner string, step func(outputGrad *tensor.Tensor, opt Optimizer) *tensor.Tensor) *Backward {
	return &Backward{owner: owner, step: step}
}

// Run computes the input gradient from the output gradient, applying any
// parameter updates through opt as a side effect. It panics if the context
// has already been consumed.
func (b *Backward) Run(outputGrad *tensor.Tensor, opt Optimizer) *tensor.Tensor {
	if b.used {
		panic(fmt.Sprintf("nn: backward context of %s already consumed", b.owner))
	}
	b.used = true
	return b.step(outputGrad, opt)
}

// Used reports whether the context has been consumed.
func (b *Backward) Used() bool {
	return b.used
}

// Identity is the no-op layer: output equals input, gradients pass through
// unchanged. It is what composing zero layers yields.
type Identity struct{}

// Forward returns the input unchanged.
func (Identity) Forward(input *tensor.Tensor) (*tensor.Tensor, *Backward) {
	return input, NewBackward("identity", func(grad *tensor.Tensor, _ Optimizer) *tensor.Tensor {
		return grad
	})
}

func (Identity) String() string {
	return "identity"
}
