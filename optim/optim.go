// Copyright 2025 Resona ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-descent optimizers over the flattened
// parameter vector of a model.
package optim

import (
	"github.com/resona-ml/resona/internal/optim"
)

// Optimizer is the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config is the base optimizer configuration.
type Config = optim.Config

// SGD is stochastic gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig configures SGD.
type SGDConfig = optim.SGDConfig

// NewSGD creates an SGD optimizer.
//
// Example:
//
//	opt := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// Adam is the adaptive moment estimation optimizer.
type Adam = optim.Adam

// AdamConfig configures Adam.
type AdamConfig = optim.AdamConfig

// NewAdam creates an Adam optimizer with bias correction.
//
// Example:
//
//	opt := optim.NewAdam(optim.AdamConfig{
//	    LR:    0.001,
//	    Betas: [2]float64{0.9, 0.999},
//	    Eps:   1e-8,
//	})
func NewAdam(config AdamConfig) *Adam {
	return optim.NewAdam(config)
}
