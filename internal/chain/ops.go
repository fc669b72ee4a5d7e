package chain

import (
	"fmt"

	"github.com/rill-ml/rill/internal/nn"
)

// Combinator builds a single layer from an ordered sequence of layers.
type Combinator func(layers ...nn.Layer) nn.Layer

// ThenOp is the symbolic token for sequential composition. It is bound to
// New by default and may be rebound within a Bind scope.
const ThenOp = ">>"

// table maps symbolic operator tokens to the combinator currently bound to
// them. Mutated only through Bind, which restores it on scope exit; the
// framework is single-threaded, so no locking.
var table = map[string]Combinator{
	ThenOp: New,
}

// Bind installs the given combinator bindings for the duration of body and
// restores the prior bindings on every exit path, including a panic inside
// body. Nested binds restore in stack order.
func Bind(overrides map[string]Combinator, body func() error) error {
	saved := make(map[string]Combinator, len(overrides))
	present := make(map[string]bool, len(overrides))
	for token, combinator := range overrides {
		saved[token], present[token] = table[token], hasBinding(token)
		table[token] = combinator
	}
	defer func() {
		for token := range overrides {
			if present[token] {
				table[token] = saved[token]
			} else {
				delete(table, token)
			}
		}
	}()

	return body()
}

// Combine applies the combinator currently bound to token. It panics if the
// token has no binding; composing through an unbound operator is a
// programming error, not a runtime condition.
func Combine(token string, layers ...nn.Layer) nn.Layer {
	combinator, ok := table[token]
	if !ok {
		panic(fmt.Sprintf("chain: no combinator bound to %q", token))
	}
	return combinator(layers...)
}

// Bound reports whether token currently has a combinator bound to it.
func Bound(token string) bool {
	return hasBinding(token)
}

func hasBinding(token string) bool {
	_, ok := table[token]
	return ok
}
