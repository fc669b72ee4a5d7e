package tensor

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape, b Backend) *Tensor {
	return Wrap(shape, make([]float64, shape.NumElements()), b)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, b Backend) *Tensor {
	return Full(shape, 1, b)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64, b Backend) *Tensor {
	data := make([]float64, shape.NumElements())
	for i := range data {
		data[i] = value
	}
	return Wrap(shape, data, b)
}

// FromSlice creates a tensor from existing data, copied.
func FromSlice(data []float64, shape Shape, b Backend) (*Tensor, error) {
	return New(shape, data, b)
}

// Randn creates a tensor with elements drawn from N(0, 1) using the
// backend's random source.
func Randn(shape Shape, b Backend) *Tensor {
	return b.Randn(shape)
}
