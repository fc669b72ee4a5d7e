// Package cpu implements the tensor.Backend interface with dense float64
// math on the CPU, backed by gonum.
package cpu

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/rill-ml/rill/internal/tensor"
)

// DefaultSeed seeds backends created with New. Training runs that need a
// distinct weight initialization should use NewWithSeed.
const DefaultSeed uint64 = 1

// CPUBackend computes tensor operations on the CPU. It owns the random
// source used for parameter initialization, so two backends built with the
// same seed produce identical models.
//
// CPUBackend is not safe for concurrent use; the framework is
// single-threaded by design.
type CPUBackend struct {
	normal distuv.Normal
}

// New creates a CPU backend with the default seed.
func New() *CPUBackend {
	return NewWithSeed(DefaultSeed)
}

// NewWithSeed creates a CPU backend whose random draws are determined by seed.
func NewWithSeed(seed uint64) *CPUBackend {
	return &CPUBackend{
		normal: distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)},
	}
}

// Name returns "cpu".
func (c *CPUBackend) Name() string {
	return "cpu"
}

// Randn draws every element from N(0, 1).
func (c *CPUBackend) Randn(shape tensor.Shape) *tensor.Tensor {
	data := make([]float64, shape.NumElements())
	for i := range data {
		data[i] = c.normal.Rand()
	}
	return tensor.Wrap(shape, data, c)
}

// sameShape panics unless a and b have equal shapes.
func sameShape(op string, a, b *tensor.Tensor) {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("cpu: %s shape mismatch: %v vs %v", op, a.Shape(), b.Shape()))
	}
}
