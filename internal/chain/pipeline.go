package chain

import "github.com/rill-ml/rill/internal/nn"

// Pipeline is the declarative face of the composition operator: a builder
// that accumulates layers through Then and composes them with whatever
// combinator is bound to ThenOp when Layer is called.
//
//	model := chain.From(affine1).Then(relu).Then(affine2).Layer()
//
// Inside a Bind scope that rebinds ThenOp, the same pipeline composes
// through the override instead.
type Pipeline struct {
	layers []nn.Layer
}

// From starts a pipeline at the given layer.
func From(l nn.Layer) *Pipeline {
	return &Pipeline{layers: []nn.Layer{l}}
}

// Then appends the next layer and returns the pipeline for chaining.
func (p *Pipeline) Then(l nn.Layer) *Pipeline {
	p.layers = append(p.layers, l)
	return p
}

// Layer composes the accumulated sequence through the combinator currently
// bound to ThenOp.
func (p *Pipeline) Layer() nn.Layer {
	return Combine(ThenOp, p.layers...)
}
