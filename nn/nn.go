// Copyright 2025 Resona ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks over the scalar
// autodiff graph: dense layers, smooth activations, and the MLP
// approximator used for physics-informed training.
//
// Example:
//
//	import (
//	    "math/rand"
//
//	    "github.com/resona-ml/resona/nn"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(42))
//	    model, err := nn.NewMLP([]int{1, 16, 16, 1}, "tanh", rng)
//	    if err != nil {
//	        panic(err)
//	    }
//	    y := model.Eval(0.5)
//	    _ = y
//	}
package nn

import (
	"math/rand"

	"github.com/resona-ml/resona/internal/nn"
)

// Module is the interface all network components implement.
type Module = nn.Module

// Parameter is a named, trainable vector of graph variables.
type Parameter = nn.Parameter

// NewParameter creates a parameter from initial values.
func NewParameter(name string, values []float64) *Parameter {
	return nn.NewParameter(name, values)
}

// Dense is a fully connected layer.
type Dense = nn.Dense

// NewDense creates a dense layer with Xavier-initialized weights.
func NewDense(inFeatures, outFeatures int, rng *rand.Rand) *Dense {
	return nn.NewDense(inFeatures, outFeatures, rng)
}

// Sequential chains modules, feeding each one's outputs to the next.
type Sequential = nn.Sequential

// NewSequential creates a sequential container.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// Tanh is the hyperbolic tangent activation.
type Tanh = nn.Tanh

// Sin is the sine activation.
type Sin = nn.Sin

// NewActivation resolves an activation by name: "tanh" or "sin".
func NewActivation(name string) (Module, error) {
	return nn.NewActivation(name)
}

// MLP is a feed-forward network with one input and one output.
type MLP = nn.MLP

// NewMLP creates an MLP from layer widths, an activation name and a
// seeded weight source.
func NewMLP(widths []int, activation string, rng *rand.Rand) (*MLP, error) {
	return nn.NewMLP(widths, activation, rng)
}

// UnmarshalMLP reconstructs an MLP from its JSON form.
func UnmarshalMLP(data []byte) (*MLP, error) {
	return nn.UnmarshalMLP(data)
}
