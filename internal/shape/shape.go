// Package shape builds models from s-expression architecture descriptions.
//
// The description names the trainable stack only; cost layers need a target
// tensor and are attached programmatically. Grammar:
//
//	(chain LAYER ...)
//	(affine OUT IN)
//	(relu)
//	(sigmoid)
//	(identity)
//
// Example:
//
//	model, err := shape.Parse("(chain (affine 3 5) (relu) (affine 1 3))", backend)
package shape

import (
	"fmt"
	"strconv"

	. "github.com/stevegt/goadapt"
	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/parser"

	"github.com/rill-ml/rill/internal/chain"
	"github.com/rill-ml/rill/internal/nn"
	"github.com/rill-ml/rill/internal/tensor"
)

// Parse builds a model from its s-expression description. Layer parameters
// are allocated on the given backend.
func Parse(txt string, backend tensor.Backend) (model nn.Layer, err error) {
	defer Return(&err)
	root, err := parser.Parse([]byte(txt))
	Ck(err)

	if root.Type() != ast.NodeTypeList || len(root.List()) != 1 {
		return nil, fmt.Errorf("shape: expected a single layer expression")
	}
	return parseLayer(root.List()[0], backend)
}

func parseLayer(node *ast.Node, backend tensor.Backend) (nn.Layer, error) {
	if node.Type() != ast.NodeTypeExpression {
		return nil, fmt.Errorf("shape: expected a layer expression, got %s", node.Encode())
	}
	children := node.List()
	if len(children) == 0 || children[0].Type() != ast.NodeTypeSymbol {
		return nil, fmt.Errorf("shape: layer expression must start with a symbol")
	}
	op := children[0].Encode()
	args := children[1:]

	switch op {
	case "chain":
		layers := make([]nn.Layer, 0, len(args))
		for _, arg := range args {
			l, err := parseLayer(arg, backend)
			if err != nil {
				return nil, err
			}
			layers = append(layers, l)
		}
		return chain.New(layers...), nil

	case "affine":
		if len(args) != 2 {
			return nil, fmt.Errorf("shape: affine takes (affine OUT IN), got %d args", len(args))
		}
		out, err := intArg(args[0])
		if err != nil {
			return nil, err
		}
		in, err := intArg(args[1])
		if err != nil {
			return nil, err
		}
		return nn.NewAffine(out, in, backend), nil

	case "relu":
		if len(args) != 0 {
			return nil, fmt.Errorf("shape: relu takes no args")
		}
		return nn.NewReLU(), nil

	case "sigmoid":
		if len(args) != 0 {
			return nil, fmt.Errorf("shape: sigmoid takes no args")
		}
		return nn.NewSigmoid(), nil

	case "identity":
		if len(args) != 0 {
			return nil, fmt.Errorf("shape: identity takes no args")
		}
		return nn.Identity{}, nil

	default:
		return nil, fmt.Errorf("shape: unknown layer %q", op)
	}
}

func intArg(node *ast.Node) (int, error) {
	n, err := strconv.Atoi(node.Encode())
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("shape: expected a positive integer, got %s", node.Encode())
	}
	return n, nil
}
