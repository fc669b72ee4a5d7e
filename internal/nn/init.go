package nn

import (
	"math"

	"github.com/rill-ml/rill/internal/tensor"
)

// Xavier returns a tensor initialized with the Glorot normal scheme:
// draws from N(0, 2/(fanIn+fanOut)).
//
// The draw goes through the backend's random source, so initialization is
// reproducible per backend seed.
func Xavier(fanIn, fanOut int, shape tensor.Shape, backend tensor.Backend) *tensor.Tensor {
	std := math.Sqrt(2.0 / float64(fanIn+fanOut))
	return tensor.Randn(shape, backend).MulScalar(std)
}
