package tensor

// Backend defines the interface that compute backends must implement.
// Backends handle the actual numeric work for tensor operations; the rest
// of the framework is written against this interface only.
//
// Implementations:
//   - backend/cpu: gonum-backed dense float64 math
//
// All operations allocate and return fresh tensors; the inputs are never
// mutated. Shape violations panic immediately at the offending operation.
type Backend interface {
	// Element-wise binary operations. Add also accepts a column vector as
	// the second operand, broadcast across the columns of the first.
	Add(a, b *Tensor) *Tensor
	Sub(a, b *Tensor) *Tensor
	Mul(a, b *Tensor) *Tensor
	Div(a, b *Tensor) *Tensor

	// Exp applies e^x element-wise.
	Exp(t *Tensor) *Tensor

	// Matrix operations (rank-2 operands).
	MatMul(a, b *Tensor) *Tensor
	Transpose(t *Tensor) *Tensor

	// Scalar operations (element-wise with scalar).
	AddScalar(t *Tensor, s float64) *Tensor
	MulScalar(t *Tensor, s float64) *Tensor

	// Greater compares element-wise and returns a 1.0/0.0 mask.
	// The second operand may be a single-element tensor, compared against
	// every element of the first.
	Greater(a, b *Tensor) *Tensor

	// Reductions.
	Sum(t *Tensor) float64
	SumDim(t *Tensor, dim int, keepDim bool) *Tensor
	Mean(t *Tensor) float64

	// Randn draws every element from the standard normal distribution.
	// Backends own their random source so runs are reproducible per seed.
	Randn(shape Shape) *Tensor

	// Name returns the backend name (e.g. "cpu").
	Name() string
}
