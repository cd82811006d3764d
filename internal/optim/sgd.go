package optim

import (
	"fmt"

	"github.com/resona-ml/resona/internal/autodiff"
)

// SGD implements gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr · gradient
//
// With momentum:
//
//	velocity = momentum · velocity + gradient
//	param = param - lr · velocity
type SGD struct {
	lr       float64
	momentum float64
	velocity []float64 // allocated lazily on first Step
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		lr:       config.LR,
		momentum: config.Momentum,
	}
}

// Step performs a single optimization step in place.
func (s *SGD) Step(params []*autodiff.Variable, grads []float64) {
	if len(params) != len(grads) {
		panic(fmt.Sprintf("optim: SGD.Step: %d params but %d gradients", len(params), len(grads)))
	}
	if s.velocity == nil {
		s.velocity = make([]float64, len(params))
	}

	for i, p := range params {
		g := grads[i]
		if s.momentum == 0 {
			p.SetValue(p.Value() - s.lr*g)
			continue
		}
		s.velocity[i] = s.momentum*s.velocity[i] + g
		p.SetValue(p.Value() - s.lr*s.velocity[i])
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
