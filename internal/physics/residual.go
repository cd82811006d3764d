package physics

import (
	"fmt"

	"github.com/resona-ml/resona/internal/autodiff"
	"github.com/resona-ml/resona/internal/nn"
)

// Residual evaluates the governing-equation residual
//
//	r(t) = m·y''(t) + c·y'(t) + k·y(t)
//
// where y is the approximator's output and y', y'' come from
// differentiating its computation graph with respect to the scalar input.
// No finite differences anywhere: for a network that exactly satisfied
// the equation, r(t) would be identically zero.
//
// The returned nodes remain differentiable with respect to the network
// parameters, so a loss built from r can be minimized by gradient descent.
type Residual struct {
	params Params
	model  nn.Module
}

// NewResidual creates a residual evaluator for a scalar-to-scalar model.
func NewResidual(params Params, model nn.Module) (*Residual, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Residual{params: params, model: model}, nil
}

// forward evaluates the model at one input node.
func (r *Residual) forward(tv *autodiff.Variable) *autodiff.Variable {
	outputs := r.model.Forward([]*autodiff.Variable{tv})
	if len(outputs) != 1 {
		panic(fmt.Sprintf("physics: model produced %d outputs, want 1", len(outputs)))
	}
	return outputs[0]
}

// At builds the residual node at time t.
func (r *Residual) At(t float64) *autodiff.Variable {
	tv := autodiff.Leaf(t)
	y := r.forward(tv)
	dy := autodiff.Grad(y, tv)[0]
	d2y := autodiff.Grad(dy, tv)[0]

	return autodiff.Add(
		autodiff.Add(
			autodiff.Scale(r.params.Mass, d2y),
			autodiff.Scale(r.params.Damping, dy),
		),
		autodiff.Scale(r.params.Stiffness, y),
	)
}

// Position builds the predicted position node y(t).
func (r *Residual) Position(t float64) *autodiff.Variable {
	return r.forward(autodiff.Leaf(t))
}

// Velocity builds the predicted velocity node y'(t), used for the
// initial-velocity boundary target.
func (r *Residual) Velocity(t float64) *autodiff.Variable {
	tv := autodiff.Leaf(t)
	y := r.forward(tv)
	return autodiff.Grad(y, tv)[0]
}

// Params returns the equation constants.
func (r *Residual) Params() Params {
	return r.params
}
