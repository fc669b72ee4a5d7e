// Package chain composes ordered sequences of layers into single layers.
//
// Composition is graph-free: the composite's forward pass threads the input
// through each sub-layer in order while pushing the returned backward
// contexts onto a stack, and its backward pass pops that stack, feeding each
// context's gradient to the one before it.
package chain

import (
	"strings"

	"github.com/rill-ml/rill/internal/nn"
	"github.com/rill-ml/rill/internal/tensor"
)

// Chain is a sequential composite of layers. It satisfies the Layer
// contract itself, so chains nest (though New splices nested chains flat
// rather than wrapping them).
type Chain struct {
	layers []nn.Layer
}

// New composes layers into a single layer.
//
// Zero layers yield the identity layer and a single layer is returned
// unchanged. Elements that are themselves chains are flattened into the
// composite, keeping the backward stack a single flat sequence.
func New(layers ...nn.Layer) nn.Layer {
	flat := Flatten(layers)
	switch len(flat) {
	case 0:
		return nn.Identity{}
	case 1:
		return flat[0]
	}
	return &Chain{layers: flat}
}

// Flatten splices the layer sequences of any *Chain elements into a single
// flat sequence; leaf layers pass through unchanged.
func Flatten(layers []nn.Layer) []nn.Layer {
	flat := make([]nn.Layer, 0, len(layers))
	for _, l := range layers {
		if c, ok := l.(*Chain); ok {
			flat = append(flat, c.layers...)
			continue
		}
		flat = append(flat, l)
	}
	return flat
}

// Layers returns the composed sequence.
func (c *Chain) Layers() []nn.Layer {
	out := make([]nn.Layer, len(c.layers))
	copy(out, c.layers)
	return out
}

// Forward threads the input through each sub-layer in order and returns the
// final output plus a backward context that unwinds the collected stack in
// reverse.
func (c *Chain) Forward(input *tensor.Tensor) (*tensor.Tensor, *nn.Backward) {
	stack := make([]*nn.Backward, 0, len(c.layers))
	out := input
	for _, l := range c.layers {
		var back *nn.Backward
		out, back = l.Forward(out)
		stack = append(stack, back)
	}

	composite := nn.NewBackward(c.String(), func(grad *tensor.Tensor, opt nn.Optimizer) *tensor.Tensor {
		for i := len(stack) - 1; i >= 0; i-- {
			grad = stack[i].Run(grad, opt)
		}
		return grad
	})

	return out, composite
}

func (c *Chain) String() string {
	names := make([]string, len(c.layers))
	for i, l := range c.layers {
		names[i] = layerName(l)
	}
	return "chain(" + strings.Join(names, " >> ") + ")"
}

func layerName(l nn.Layer) string {
	if s, ok := l.(interface{ String() string }); ok {
		return s.String()
	}
	return "layer"
}
