package tensor

import "fmt"

// Tensor is a dense, row-major float64 array of rank at most 2.
//
// Tensors are immutable by convention: every operation allocates its result.
// The one sanctioned exception is an optimizer updating a parameter tensor
// through Data() in place.
type Tensor struct {
	shape   Shape
	data    []float64
	backend Backend
}

// New creates a tensor over a copy of data. The data length must match the
// shape's element count.
func New(shape Shape, data []float64, b Backend) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape %v: %w", shape, err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	buf := make([]float64, len(data))
	copy(buf, data)
	return &Tensor{shape: shape.Clone(), data: buf, backend: b}, nil
}

// Wrap creates a tensor over data without copying. Backends use this to
// return freshly allocated results without an extra copy.
func Wrap(shape Shape, data []float64, b Backend) *Tensor {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("tensor: invalid shape %v: %v", shape, err))
	}
	if len(data) != shape.NumElements() {
		panic(fmt.Sprintf("tensor: data length %d does not match shape %v", len(data), shape))
	}
	return &Tensor{shape: shape.Clone(), data: data, backend: b}
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int {
	return t.shape.Rank()
}

// Dims returns (rows, cols), treating rank-1 tensors as column vectors.
func (t *Tensor) Dims() (rows, cols int) {
	return t.shape.Dims()
}

// Data returns the backing slice. Mutations are visible to every holder of
// the tensor; only optimizers should do that.
func (t *Tensor) Data() []float64 {
	return t.data
}

// Backend returns the backend the tensor is bound to.
func (t *Tensor) Backend() Backend {
	return t.backend
}

// At returns the element at row i, column j.
func (t *Tensor) At(i, j int) float64 {
	_, cols := t.Dims()
	return t.data[i*cols+j]
}

// Set assigns the element at row i, column j.
func (t *Tensor) Set(i, j int, v float64) {
	_, cols := t.Dims()
	t.data[i*cols+j] = v
}

// Scalar returns the single element of a one-element tensor.
func (t *Tensor) Scalar() float64 {
	if t.shape.NumElements() != 1 {
		panic(fmt.Sprintf("tensor: Scalar on tensor of shape %v", t.shape))
	}
	return t.data[0]
}

// Clone returns a deep copy sharing no data with the receiver.
func (t *Tensor) Clone() *Tensor {
	buf := make([]float64, len(t.data))
	copy(buf, t.data)
	return &Tensor{shape: t.shape.Clone(), data: buf, backend: t.backend}
}

func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor%v", t.shape)
}

// Operation methods delegate to the tensor's backend.

// Add returns t + other element-wise. A column-vector other is broadcast
// across t's columns.
func (t *Tensor) Add(other *Tensor) *Tensor { return t.backend.Add(t, other) }

// Sub returns t - other element-wise.
func (t *Tensor) Sub(other *Tensor) *Tensor { return t.backend.Sub(t, other) }

// Mul returns t * other element-wise.
func (t *Tensor) Mul(other *Tensor) *Tensor { return t.backend.Mul(t, other) }

// Div returns t / other element-wise.
func (t *Tensor) Div(other *Tensor) *Tensor { return t.backend.Div(t, other) }

// Exp returns e^t element-wise.
func (t *Tensor) Exp() *Tensor { return t.backend.Exp(t) }

// MatMul returns the matrix product t · other.
func (t *Tensor) MatMul(other *Tensor) *Tensor { return t.backend.MatMul(t, other) }

// T returns the transpose.
func (t *Tensor) T() *Tensor { return t.backend.Transpose(t) }

// AddScalar returns t + s element-wise.
func (t *Tensor) AddScalar(s float64) *Tensor { return t.backend.AddScalar(t, s) }

// MulScalar returns t * s element-wise.
func (t *Tensor) MulScalar(s float64) *Tensor { return t.backend.MulScalar(t, s) }

// Greater returns the 1.0/0.0 mask of t > other.
func (t *Tensor) Greater(other *Tensor) *Tensor { return t.backend.Greater(t, other) }

// Sum returns the sum of all elements.
func (t *Tensor) Sum() float64 { return t.backend.Sum(t) }

// SumDim sums along dim, optionally keeping the reduced dimension as size 1.
func (t *Tensor) SumDim(dim int, keepDim bool) *Tensor { return t.backend.SumDim(t, dim, keepDim) }

// Mean returns the mean of all elements.
func (t *Tensor) Mean() float64 { return t.backend.Mean(t) }
