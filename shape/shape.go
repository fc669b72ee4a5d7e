// Copyright 2026 The Rill Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package shape builds models from s-expression architecture descriptions.
//
// Example:
//
//	model, err := shape.Parse("(chain (affine 3 5) (relu) (affine 1 3))", backend)
package shape

import (
	"github.com/rill-ml/rill/internal/shape"
	"github.com/rill-ml/rill/nn"
	"github.com/rill-ml/rill/tensor"
)

// Parse builds a model from its s-expression description. Layer parameters
// are allocated on the given backend. Cost layers are not part of the
// grammar; attach them with chain.New(model, nn.NewMSE(target)).
func Parse(txt string, backend tensor.Backend) (nn.Layer, error) {
	return shape.Parse(txt, backend)
}
