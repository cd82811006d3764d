// Copyright 2025 Resona ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package pinn is the high-level entry point for physics-informed
// training of the damped harmonic oscillator
//
//	m·y''(t) + c·y'(t) + k·y(t) = 0
//
// A configuration names the physical constants, the sampling plan, the
// network architecture and the optimizer; Train minimizes the composite
// data/physics loss and returns the trained approximator.
//
// Example:
//
//	import (
//	    "context"
//
//	    "github.com/resona-ml/resona/pinn"
//	)
//
//	func main() {
//	    res, err := pinn.Train(context.Background(), pinn.Config{
//	        Physics: pinn.Params{
//	            Mass: 1, Damping: 0.2, Stiffness: 1,
//	            InitialPosition: 1,
//	        },
//	        Sampling: pinn.Sampling{
//	            Domain: 4, NumBoundary: 2, NumCollocation: 64,
//	            Policy: pinn.PolicyGrid,
//	        },
//	        Hidden:        []int{16, 16},
//	        Activation:    "tanh",
//	        LearningRate:  1e-3,
//	        MaxIterations: 2000,
//	        Lambda:        0.1,
//	    })
//	    if err != nil {
//	        panic(err)
//	    }
//	    y := res.Model.Eval(2.0)
//	    _ = y
//	}
package pinn

import (
	"context"

	"github.com/resona-ml/resona/internal/physics"
	"github.com/resona-ml/resona/internal/sample"
	"github.com/resona-ml/resona/internal/train"
)

// Params holds the oscillator constants and initial conditions.
type Params = physics.Params

// Sampling controls the boundary and collocation point sets.
type Sampling = sample.Config

// Sampling policies.
const (
	PolicyGrid   = sample.PolicyGrid
	PolicyRandom = sample.PolicyRandom
)

// Config collects everything one training run needs.
type Config = train.Config

// Result is what a finished run hands back.
type Result = train.Result

// Diag is one per-iteration diagnostics sample.
type Diag = train.Diag

// Trainer drives the training loop step by step; most callers use Train.
type Trainer = train.Trainer

// Training loop states.
const (
	StateInitialized = train.StateInitialized
	StateIterating   = train.StateIterating
	StateConverged   = train.StateConverged
	StateExhausted   = train.StateExhausted
	StateDiverged    = train.StateDiverged
)

// Sentinel errors.
var (
	ErrInvalidConfig = train.ErrInvalidConfig
	ErrDiverged      = train.ErrDiverged
)

// NewTrainer validates the configuration and assembles a trainer for
// step-by-step control.
func NewTrainer(cfg Config) (*Trainer, error) {
	return train.New(cfg)
}

// Train runs a full training loop to a terminal state or cancellation.
func Train(ctx context.Context, cfg Config) (*Result, error) {
	t, err := train.New(cfg)
	if err != nil {
		return nil, err
	}
	return t.Run(ctx)
}

// Solution returns the closed-form solution for the given constants, for
// validating trained models.
func Solution(p Params) (func(t float64) float64, error) {
	return physics.Solution(p)
}
