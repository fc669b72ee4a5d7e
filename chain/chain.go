// Copyright 2026 The Rill Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package chain composes ordered sequences of layers into single layers.
//
// The primary API is the explicit builder:
//
//	model := chain.New(affine1, relu, affine2, mse)
//
// A scoped operator table supports late-bound composition: the ">>" token
// is bound to New by default, and Bind rebinds it for the duration of a
// scope, restoring the prior binding on every exit path. The Pipeline
// builder composes through whatever the token is bound to:
//
//	model := chain.From(affine1).Then(relu).Then(affine2).Layer()
package chain

import (
	"github.com/emicklei/dot"

	"github.com/rill-ml/rill/internal/chain"
	"github.com/rill-ml/rill/nn"
)

// Chain is a sequential composite of layers, itself a layer.
type Chain = chain.Chain

// Combinator builds a single layer from an ordered sequence of layers.
type Combinator = chain.Combinator

// Pipeline is a builder that composes through the scoped operator table.
type Pipeline = chain.Pipeline

// ThenOp is the symbolic token for sequential composition.
const ThenOp = chain.ThenOp

// New composes layers into a single layer. Zero layers yield the identity
// layer, one layer is returned unchanged, and nested chains are spliced
// flat.
func New(layers ...nn.Layer) nn.Layer {
	return chain.New(layers...)
}

// Flatten splices nested chains into a single flat layer sequence.
func Flatten(layers []nn.Layer) []nn.Layer {
	return chain.Flatten(layers)
}

// Bind installs combinator bindings for the duration of body, restoring the
// prior table on every exit path including panics.
func Bind(overrides map[string]Combinator, body func() error) error {
	return chain.Bind(overrides, body)
}

// Combine applies the combinator currently bound to token.
func Combine(token string, layers ...nn.Layer) nn.Layer {
	return chain.Combine(token, layers...)
}

// Bound reports whether token currently has a combinator bound to it.
func Bound(token string) bool {
	return chain.Bound(token)
}

// From starts a pipeline at the given layer.
func From(l nn.Layer) *Pipeline {
	return chain.From(l)
}

// Dot renders the structure of a composed model as a Graphviz digraph.
func Dot(model nn.Layer) *dot.Graph {
	return chain.Dot(model)
}
