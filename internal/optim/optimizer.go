// Package optim implements gradient-based optimization algorithms for
// training.
//
// This package provides:
//   - Optimizer interface: base interface for all optimizers
//   - SGD: gradient descent with optional momentum
//   - Adam: adaptive per-parameter learning rates
//
// Design inspired by PyTorch's torch.optim. Optimizers operate on the
// flattened θ vector: a slice of graph leaves plus the aligned gradient
// values for one iteration.
package optim

import "github.com/resona-ml/resona/internal/autodiff"

// Optimizer is the base interface for all optimization algorithms.
//
// The params slice must be the same variables in the same order on every
// call; internal state (momentum, moment estimates) is kept per index.
type Optimizer interface {
	// Step applies one update to params in place given the aligned
	// gradient values ∂L/∂θ.
	Step(params []*autodiff.Variable, grads []float64)

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate. Useful for scheduling.
	SetLR(lr float64)
}

// Config is the base configuration shared by all optimizers.
type Config struct {
	LR float64 // Learning rate
}
