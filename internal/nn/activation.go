package nn

import (
	"fmt"

	"github.com/resona-ml/resona/internal/autodiff"
)

// Activations must have continuous second derivatives: the physics
// residual differentiates through them twice. Nonlinearities with kinks
// (ReLU and relatives) are therefore not offered here.

// Tanh is a hyperbolic tangent activation module.
//
// Squashes values to (-1, 1); the standard choice for physics-informed
// networks.
type Tanh struct{}

// NewTanh creates a new Tanh activation module.
func NewTanh() *Tanh {
	return &Tanh{}
}

// Forward applies tanh element-wise.
func (*Tanh) Forward(inputs []*autodiff.Variable) []*autodiff.Variable {
	outputs := make([]*autodiff.Variable, len(inputs))
	for i, x := range inputs {
		outputs[i] = autodiff.Tanh(x)
	}
	return outputs
}

// Parameters returns nil (Tanh has no trainable parameters).
func (*Tanh) Parameters() []*Parameter {
	return nil
}

// StateDict returns an empty map.
func (*Tanh) StateDict() map[string][]float64 {
	return map[string][]float64{}
}

// LoadStateDict is a no-op for parameterless modules.
func (*Tanh) LoadStateDict(map[string][]float64) error {
	return nil
}

// Sin is a sine activation module.
//
// Periodic activations represent oscillatory solutions well and keep all
// derivatives bounded.
type Sin struct{}

// NewSin creates a new Sin activation module.
func NewSin() *Sin {
	return &Sin{}
}

// Forward applies sin element-wise.
func (*Sin) Forward(inputs []*autodiff.Variable) []*autodiff.Variable {
	outputs := make([]*autodiff.Variable, len(inputs))
	for i, x := range inputs {
		outputs[i] = autodiff.Sin(x)
	}
	return outputs
}

// Parameters returns nil (Sin has no trainable parameters).
func (*Sin) Parameters() []*Parameter {
	return nil
}

// StateDict returns an empty map.
func (*Sin) StateDict() map[string][]float64 {
	return map[string][]float64{}
}

// LoadStateDict is a no-op for parameterless modules.
func (*Sin) LoadStateDict(map[string][]float64) error {
	return nil
}

// NewActivation returns the activation module registered under name.
func NewActivation(name string) (Module, error) {
	switch name {
	case "tanh":
		return NewTanh(), nil
	case "sin":
		return NewSin(), nil
	default:
		return nil, fmt.Errorf("unknown activation %q (want \"tanh\" or \"sin\")", name)
	}
}
