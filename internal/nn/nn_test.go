package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rill-ml/rill/internal/backend/cpu"
	"github.com/rill-ml/rill/internal/tensor"
)

// nopOptimizer leaves parameters untouched so backward passes can be
// repeated against identical weights.
type nopOptimizer struct{}

func (nopOptimizer) Update(_, _ *tensor.Tensor) {}

// recordingOptimizer captures the gradient passed for each parameter.
type recordingOptimizer struct {
	grads map[*tensor.Tensor]*tensor.Tensor
}

func newRecordingOptimizer() *recordingOptimizer {
	return &recordingOptimizer{grads: make(map[*tensor.Tensor]*tensor.Tensor)}
}

func (r *recordingOptimizer) Update(param, grad *tensor.Tensor) {
	r.grads[param] = grad
}

// numericGrad approximates the gradient of f with respect to x by central
// differences, perturbing x in place.
func numericGrad(x *tensor.Tensor, f func() float64) []float64 {
	const eps = 1e-6
	grad := make([]float64, len(x.Data()))
	for i := range x.Data() {
		orig := x.Data()[i]
		x.Data()[i] = orig + eps
		plus := f()
		x.Data()[i] = orig - eps
		minus := f()
		x.Data()[i] = orig
		grad[i] = (plus - minus) / (2 * eps)
	}
	return grad
}

func TestAffineShapes(t *testing.T) {
	backend := cpu.New()
	layer := NewAffine(3, 5, backend)

	require.True(t, layer.Weight().Shape().Equal(tensor.Shape{3, 5}))
	require.True(t, layer.Bias().Shape().Equal(tensor.Shape{3, 1}))
	assert.Equal(t, 5, layer.InFeatures())
	assert.Equal(t, 3, layer.OutFeatures())

	x := tensor.Randn(tensor.Shape{5, 7}, backend)
	out, back := layer.Forward(x)
	require.True(t, out.Shape().Equal(tensor.Shape{3, 7}), "forward shape")

	opt := newRecordingOptimizer()
	grad := back.Run(tensor.Randn(tensor.Shape{3, 7}, backend), opt)
	require.True(t, grad.Shape().Equal(tensor.Shape{5, 7}), "input gradient shape")
	require.True(t, opt.grads[layer.Weight()].Shape().Equal(tensor.Shape{3, 5}), "weight gradient shape")
	require.True(t, opt.grads[layer.Bias()].Shape().Equal(tensor.Shape{3, 1}), "bias gradient shape")
}

func TestAffineBiasStartsAtZero(t *testing.T) {
	layer := NewAffine(4, 2, cpu.New())
	for _, v := range layer.Bias().Data() {
		assert.Zero(t, v)
	}
}

func TestAffineForwardKnownValues(t *testing.T) {
	backend := cpu.New()
	layer := NewAffine(2, 2, backend)
	copy(layer.Weight().Data(), []float64{1, 2, 3, 4})
	copy(layer.Bias().Data(), []float64{0.5, 1})

	x, err := tensor.New(tensor.Shape{2, 1}, []float64{1, 1}, backend)
	require.NoError(t, err)

	out, _ := layer.Forward(x)
	// W·x + b = [1+2+0.5, 3+4+1]
	assert.InDelta(t, 3.5, out.At(0, 0), 1e-12)
	assert.InDelta(t, 8, out.At(1, 0), 1e-12)
}

func TestAffineGradientCheck(t *testing.T) {
	backend := cpu.NewWithSeed(11)
	layer := NewAffine(3, 4, backend)
	x := tensor.Randn(tensor.Shape{4, 6}, backend)
	seed := tensor.Randn(tensor.Shape{3, 6}, backend)

	// Objective: sum(forward(x) ⊙ seed), whose input gradient is exactly
	// what backward returns for an output gradient of seed.
	objective := func() float64 {
		out, _ := layer.Forward(x)
		return out.Mul(seed).Sum()
	}

	_, back := layer.Forward(x)
	opt := newRecordingOptimizer()
	analytic := back.Run(seed, opt)

	for i, want := range numericGrad(x, objective) {
		assert.InDelta(t, want, analytic.Data()[i], 1e-4, "input gradient at %d", i)
	}

	weightGrad := opt.grads[layer.Weight()]
	for i, want := range numericGrad(layer.Weight(), objective) {
		assert.InDelta(t, want, weightGrad.Data()[i], 1e-4, "weight gradient at %d", i)
	}

	biasGrad := opt.grads[layer.Bias()]
	for i, want := range numericGrad(layer.Bias(), objective) {
		assert.InDelta(t, want, biasGrad.Data()[i], 1e-4, "bias gradient at %d", i)
	}
}

func TestReLUForwardBackward(t *testing.T) {
	backend := cpu.New()
	relu := NewReLU()

	x, err := tensor.New(tensor.Shape{2, 3}, []float64{-1, 0.5, -0.25, 2, -3, 4}, backend)
	require.NoError(t, err)

	out, back := relu.Forward(x)
	assert.Equal(t, []float64{0, 0.5, 0, 2, 0, 4}, out.Data())

	grad, err := tensor.New(tensor.Shape{2, 3}, []float64{1, 1, 1, 1, 1, 1}, backend)
	require.NoError(t, err)
	inGrad := back.Run(grad, nopOptimizer{})
	assert.Equal(t, []float64{0, 1, 0, 1, 0, 1}, inGrad.Data())
}

func TestReLUGradientCheck(t *testing.T) {
	backend := cpu.NewWithSeed(3)
	relu := NewReLU()

	// Components well away from zero so the finite difference never
	// straddles the kink.
	x, err := tensor.New(tensor.Shape{2, 2}, []float64{-1.5, 0.75, 2.25, -0.5}, backend)
	require.NoError(t, err)
	seed := tensor.Randn(tensor.Shape{2, 2}, backend)

	objective := func() float64 {
		out, _ := relu.Forward(x)
		return out.Mul(seed).Sum()
	}

	_, back := relu.Forward(x)
	analytic := back.Run(seed, nopOptimizer{})

	for i, want := range numericGrad(x, objective) {
		assert.InDelta(t, want, analytic.Data()[i], 1e-4, "gradient at %d", i)
	}
}

func TestSigmoidForwardBackward(t *testing.T) {
	backend := cpu.New()
	sigmoid := NewSigmoid()

	x, err := tensor.New(tensor.Shape{3}, []float64{-10, 0, 10}, backend)
	require.NoError(t, err)

	out, back := sigmoid.Forward(x)
	assert.InDeltaSlice(t, []float64{0, 0.5, 1}, out.Data(), 1e-4)

	// Derivative out·(1 - out): saturated inputs pass no gradient, at zero
	// it is 0.25.
	grad := tensor.Full(tensor.Shape{3}, 0.5, backend)
	inGrad := back.Run(grad, nopOptimizer{})
	assert.InDeltaSlice(t, []float64{0, 0.125, 0}, inGrad.Data(), 1e-4)
}

func TestSigmoidGradientCheck(t *testing.T) {
	backend := cpu.NewWithSeed(13)
	sigmoid := NewSigmoid()

	x := tensor.Randn(tensor.Shape{2, 3}, backend)
	seed := tensor.Randn(tensor.Shape{2, 3}, backend)

	objective := func() float64 {
		out, _ := sigmoid.Forward(x)
		return out.Mul(seed).Sum()
	}

	_, back := sigmoid.Forward(x)
	analytic := back.Run(seed, nopOptimizer{})

	for i, want := range numericGrad(x, objective) {
		assert.InDelta(t, want, analytic.Data()[i], 1e-4, "gradient at %d", i)
	}
}

func TestMSECostAndGradient(t *testing.T) {
	backend := cpu.New()

	target, err := tensor.New(tensor.Shape{1, 4}, []float64{1, 2, 3, 4}, backend)
	require.NoError(t, err)
	pred, err := tensor.New(tensor.Shape{1, 4}, []float64{1.5, 2, 2, 6}, backend)
	require.NoError(t, err)

	mse := NewMSE(target)
	cost, back := mse.Forward(pred)

	// mean((0.5)² + 0² + (-1)² + 2²) = 5.25/4
	require.True(t, cost.Shape().Equal(tensor.Shape{1}))
	assert.InDelta(t, 5.25/4, cost.Scalar(), 1e-12)

	// The cost layer is the backward root: the seed is ignored and the
	// prediction gradient is -2·(target - prediction).
	seed := tensor.Full(tensor.Shape{1}, 123, backend)
	grad := back.Run(seed, nopOptimizer{})
	assert.InDeltaSlice(t, []float64{1, 0, -2, 4}, grad.Data(), 1e-12)
}

func TestBackwardSingleUse(t *testing.T) {
	backend := cpu.New()
	relu := NewReLU()
	x := tensor.Ones(tensor.Shape{2, 2}, backend)

	_, back := relu.Forward(x)
	require.False(t, back.Used())
	back.Run(tensor.Ones(tensor.Shape{2, 2}, backend), nopOptimizer{})
	require.True(t, back.Used())

	assert.PanicsWithValue(t, "nn: backward context of relu already consumed", func() {
		back.Run(tensor.Ones(tensor.Shape{2, 2}, backend), nopOptimizer{})
	})
}

func TestIdentityPassThrough(t *testing.T) {
	backend := cpu.New()
	x := tensor.Randn(tensor.Shape{3, 2}, backend)

	out, back := Identity{}.Forward(x)
	assert.Same(t, x, out)

	grad := tensor.Randn(tensor.Shape{3, 2}, backend)
	assert.Same(t, grad, back.Run(grad, nopOptimizer{}))
}

func TestXavierScale(t *testing.T) {
	backend := cpu.NewWithSeed(5)
	w := Xavier(100, 100, tensor.Shape{100, 100}, backend)

	var variance float64
	for _, v := range w.Data() {
		variance += v * v
	}
	variance /= float64(len(w.Data()))

	// Glorot normal: Var = 2/(fanIn+fanOut) = 0.01.
	assert.InDelta(t, 0.01, variance, 0.002)
}
