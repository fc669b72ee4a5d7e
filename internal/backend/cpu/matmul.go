package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/rill-ml/rill/internal/tensor"
)

// MatMul returns the matrix product a · b via gonum's dense BLAS path.
func (c *CPUBackend) MatMul(a, b *tensor.Tensor) *tensor.Tensor {
	if a.Rank() != 2 || b.Rank() != 2 {
		panic(fmt.Sprintf("cpu: MatMul requires rank-2 tensors, got %v and %v", a.Shape(), b.Shape()))
	}
	aRows, aCols := a.Dims()
	bRows, bCols := b.Dims()
	if aCols != bRows {
		panic(fmt.Sprintf("cpu: MatMul inner dimensions must match: %v @ %v", a.Shape(), b.Shape()))
	}

	var out mat.Dense
	out.Mul(mat.NewDense(aRows, aCols, a.Data()), mat.NewDense(bRows, bCols, b.Data()))
	return tensor.Wrap(tensor.Shape{aRows, bCols}, out.RawMatrix().Data, c)
}

// Transpose returns tᵗ.
func (c *CPUBackend) Transpose(t *tensor.Tensor) *tensor.Tensor {
	if t.Rank() != 2 {
		panic(fmt.Sprintf("cpu: Transpose requires a rank-2 tensor, got %v", t.Shape()))
	}
	rows, cols := t.Dims()

	var out mat.Dense
	out.CloneFrom(mat.NewDense(rows, cols, t.Data()).T())
	return tensor.Wrap(tensor.Shape{cols, rows}, out.RawMatrix().Data, c)
}
