package cpu

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/rill-ml/rill/internal/tensor"
)

// Add returns a + b element-wise. When b is a column vector with as many
// rows as a, it is broadcast across a's columns (bias addition).
func (c *CPUBackend) Add(a, b *tensor.Tensor) *tensor.Tensor {
	if a.Shape().Equal(b.Shape()) {
		out := cloneData(a)
		floats.Add(out, b.Data())
		return tensor.Wrap(a.Shape(), out, c)
	}

	aRows, aCols := a.Dims()
	bRows, bCols := b.Dims()
	if bCols == 1 && bRows == aRows {
		out := cloneData(a)
		bd := b.Data()
		for i := 0; i < aRows; i++ {
			row := out[i*aCols : (i+1)*aCols]
			floats.AddConst(bd[i], row)
		}
		return tensor.Wrap(a.Shape(), out, c)
	}

	panic(fmt.Sprintf("cpu: Add shape mismatch: %v vs %v", a.Shape(), b.Shape()))
}

// Sub returns a - b element-wise.
func (c *CPUBackend) Sub(a, b *tensor.Tensor) *tensor.Tensor {
	sameShape("Sub", a, b)
	out := cloneData(a)
	floats.Sub(out, b.Data())
	return tensor.Wrap(a.Shape(), out, c)
}

// Mul returns a * b element-wise.
func (c *CPUBackend) Mul(a, b *tensor.Tensor) *tensor.Tensor {
	sameShape("Mul", a, b)
	out := cloneData(a)
	floats.Mul(out, b.Data())
	return tensor.Wrap(a.Shape(), out, c)
}

// Div returns a / b element-wise.
func (c *CPUBackend) Div(a, b *tensor.Tensor) *tensor.Tensor {
	sameShape("Div", a, b)
	out := cloneData(a)
	floats.Div(out, b.Data())
	return tensor.Wrap(a.Shape(), out, c)
}

// Exp applies e^x element-wise.
func (c *CPUBackend) Exp(t *tensor.Tensor) *tensor.Tensor {
	out := make([]float64, len(t.Data()))
	for i, v := range t.Data() {
		out[i] = math.Exp(v)
	}
	return tensor.Wrap(t.Shape(), out, c)
}

// AddScalar returns t + s element-wise.
func (c *CPUBackend) AddScalar(t *tensor.Tensor, s float64) *tensor.Tensor {
	out := cloneData(t)
	floats.AddConst(s, out)
	return tensor.Wrap(t.Shape(), out, c)
}

// MulScalar returns t * s element-wise.
func (c *CPUBackend) MulScalar(t *tensor.Tensor, s float64) *tensor.Tensor {
	out := cloneData(t)
	floats.Scale(s, out)
	return tensor.Wrap(t.Shape(), out, c)
}

// Greater compares element-wise and returns a 1.0/0.0 mask. A one-element b
// is compared against every element of a.
func (c *CPUBackend) Greater(a, b *tensor.Tensor) *tensor.Tensor {
	ad := a.Data()
	out := make([]float64, len(ad))

	if b.Shape().NumElements() == 1 {
		threshold := b.Data()[0]
		for i, v := range ad {
			if v > threshold {
				out[i] = 1
			}
		}
		return tensor.Wrap(a.Shape(), out, c)
	}

	sameShape("Greater", a, b)
	bd := b.Data()
	for i, v := range ad {
		if v > bd[i] {
			out[i] = 1
		}
	}
	return tensor.Wrap(a.Shape(), out, c)
}

// Sum returns the sum of all elements.
func (c *CPUBackend) Sum(t *tensor.Tensor) float64 {
	return floats.Sum(t.Data())
}

// Mean returns the mean of all elements.
func (c *CPUBackend) Mean(t *tensor.Tensor) float64 {
	return floats.Sum(t.Data()) / float64(t.Shape().NumElements())
}

// SumDim sums along dim. For a (r, c) tensor, dim 0 collapses rows to a
// (1, c) or (c) result, dim 1 collapses columns to (r, 1) or (r).
func (c *CPUBackend) SumDim(t *tensor.Tensor, dim int, keepDim bool) *tensor.Tensor {
	if t.Rank() != 2 {
		panic(fmt.Sprintf("cpu: SumDim requires a rank-2 tensor, got %v", t.Shape()))
	}
	rows, cols := t.Dims()
	data := t.Data()

	switch dim {
	case 0:
		out := make([]float64, cols)
		for i := 0; i < rows; i++ {
			floats.Add(out, data[i*cols:(i+1)*cols])
		}
		shape := tensor.Shape{cols}
		if keepDim {
			shape = tensor.Shape{1, cols}
		}
		return tensor.Wrap(shape, out, c)
	case 1:
		out := make([]float64, rows)
		for i := 0; i < rows; i++ {
			out[i] = floats.Sum(data[i*cols : (i+1)*cols])
		}
		shape := tensor.Shape{rows}
		if keepDim {
			shape = tensor.Shape{rows, 1}
		}
		return tensor.Wrap(shape, out, c)
	default:
		panic(fmt.Sprintf("cpu: SumDim dim %d out of range for shape %v", dim, t.Shape()))
	}
}

func cloneData(t *tensor.Tensor) []float64 {
	out := make([]float64, len(t.Data()))
	copy(out, t.Data())
	return out
}
