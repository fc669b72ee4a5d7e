package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rill-ml/rill/internal/backend/cpu"
	"github.com/rill-ml/rill/internal/chain"
	"github.com/rill-ml/rill/internal/nn"
	"github.com/rill-ml/rill/internal/tensor"
)

func TestParseChain(t *testing.T) {
	backend := cpu.New()

	model, err := Parse("(chain (affine 3 5) (relu) (affine 1 3))", backend)
	require.NoError(t, err)

	c, ok := model.(*chain.Chain)
	require.True(t, ok, "expected a chain composite")
	layers := c.Layers()
	require.Len(t, layers, 3)

	affine1, ok := layers[0].(*nn.Affine)
	require.True(t, ok)
	assert.Equal(t, 5, affine1.InFeatures())
	assert.Equal(t, 3, affine1.OutFeatures())

	_, ok = layers[1].(*nn.ReLU)
	assert.True(t, ok)

	affine2, ok := layers[2].(*nn.Affine)
	require.True(t, ok)
	assert.Equal(t, 3, affine2.InFeatures())
	assert.Equal(t, 1, affine2.OutFeatures())
}

func TestParseSingleLayer(t *testing.T) {
	backend := cpu.New()

	model, err := Parse("(affine 4 2)", backend)
	require.NoError(t, err)

	affine, ok := model.(*nn.Affine)
	require.True(t, ok)
	assert.Equal(t, 2, affine.InFeatures())
	assert.Equal(t, 4, affine.OutFeatures())
}

func TestParseSigmoid(t *testing.T) {
	backend := cpu.New()

	model, err := Parse("(chain (affine 2 3) (sigmoid))", backend)
	require.NoError(t, err)

	c, ok := model.(*chain.Chain)
	require.True(t, ok)
	layers := c.Layers()
	require.Len(t, layers, 2)
	_, ok = layers[1].(*nn.Sigmoid)
	assert.True(t, ok)
}

func TestParseNestedChainFlattens(t *testing.T) {
	backend := cpu.New()

	model, err := Parse("(chain (chain (affine 4 2) (relu)) (affine 1 4))", backend)
	require.NoError(t, err)

	c, ok := model.(*chain.Chain)
	require.True(t, ok)
	assert.Len(t, c.Layers(), 3, "nested chains splice flat")
}

func TestParseEmptyChainIsIdentity(t *testing.T) {
	backend := cpu.New()

	model, err := Parse("(chain)", backend)
	require.NoError(t, err)
	assert.Equal(t, nn.Identity{}, model)
}

func TestParsedModelRuns(t *testing.T) {
	backend := cpu.NewWithSeed(9)

	model, err := Parse("(chain (affine 3 5) (relu) (affine 1 3))", backend)
	require.NoError(t, err)

	x := tensor.Randn(tensor.Shape{5, 8}, backend)
	out, back := model.Forward(x)
	require.True(t, out.Shape().Equal(tensor.Shape{1, 8}))
	require.NotNil(t, back)
}

func TestParseErrors(t *testing.T) {
	backend := cpu.New()

	cases := []struct {
		name string
		txt  string
	}{
		{"unknown layer", "(chain (softmax))"},
		{"affine arity", "(affine 3)"},
		{"affine non-integer", "(affine 3 x)"},
		{"affine non-positive", "(affine 3 0)"},
		{"relu args", "(relu 1)"},
		{"sigmoid args", "(sigmoid 1)"},
		{"bare symbol", "relu"},
		{"unbalanced", "(chain (affine 3 5)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.txt, backend)
			assert.Error(t, err)
		})
	}
}
