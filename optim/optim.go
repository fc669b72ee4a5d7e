// Copyright 2026 The Rill Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides parameter-update rules for training.
package optim

import (
	"github.com/rill-ml/rill/internal/optim"
)

// SGD is plain gradient descent: param ← param − lr · gradient, in place.
type SGD = optim.SGD

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// DefaultLR is the learning rate used when SGDConfig leaves LR zero.
const DefaultLR = optim.DefaultLR

// NewSGD creates an SGD optimizer from config, filling in defaults.
//
// Example:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.01})
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}
