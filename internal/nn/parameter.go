package nn

import (
	"fmt"

	"github.com/resona-ml/resona/internal/autodiff"
)

// Parameter is a named group of trainable scalar variables, such as one
// layer's weight matrix or bias vector.
//
// The variables are graph leaves: the optimizer overwrites their values in
// place between iterations, and every forward pass reads the current
// values.
type Parameter struct {
	name string
	vars []*autodiff.Variable
}

// NewParameter creates a trainable parameter initialized with values.
func NewParameter(name string, values []float64) *Parameter {
	vars := make([]*autodiff.Variable, len(values))
	for i, v := range values {
		vars[i] = autodiff.Leaf(v)
	}
	return &Parameter{name: name, vars: vars}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Len returns the number of scalar variables in this parameter.
func (p *Parameter) Len() int {
	return len(p.vars)
}

// At returns the i-th variable.
func (p *Parameter) At(i int) *autodiff.Variable {
	return p.vars[i]
}

// Variables returns the underlying variables in order.
func (p *Parameter) Variables() []*autodiff.Variable {
	return p.vars
}

// Values returns a copy of the current parameter values.
func (p *Parameter) Values() []float64 {
	out := make([]float64, len(p.vars))
	for i, v := range p.vars {
		out[i] = v.Value()
	}
	return out
}

// SetValues overwrites the parameter values in place.
func (p *Parameter) SetValues(values []float64) error {
	if len(values) != len(p.vars) {
		return fmt.Errorf("parameter %q: expected %d values, got %d",
			p.name, len(p.vars), len(values))
	}
	for i, v := range values {
		p.vars[i].SetValue(v)
	}
	return nil
}
