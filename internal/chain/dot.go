package chain

import (
	"fmt"

	"github.com/emicklei/dot"

	"github.com/rill-ml/rill/internal/nn"
)

// Dot renders the structure of a composed model as a Graphviz digraph:
// one node per layer in forward order, input and output marked. Useful for
// eyeballing an architecture; it does not render tensors or gradients.
func Dot(model nn.Layer) *dot.Graph {
	g := dot.NewGraph(dot.Directed)

	prev := g.Node("input").Attr("shape", "plaintext")
	for i, l := range sequenceOf(model) {
		node := g.Node(fmt.Sprintf("layer%d", i)).Label(layerName(l)).Attr("shape", "box")
		g.Edge(prev, node)
		prev = node
	}
	g.Edge(prev, g.Node("output").Attr("shape", "plaintext"))

	return g
}

// sequenceOf returns the forward-order layer sequence of a model: the
// composed layers for a chain composite, the model itself otherwise.
func sequenceOf(model nn.Layer) []nn.Layer {
	if c, ok := model.(*Chain); ok {
		return c.Layers()
	}
	return []nn.Layer{model}
}
