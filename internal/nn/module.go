// Package nn implements neural network modules over the scalar autodiff
// graph.
//
// Building blocks:
//   - Module interface: base interface for all components
//   - Parameter: named group of trainable variables
//   - Dense: fully connected layer
//   - Activations: Tanh, Sin (smooth to every order)
//   - Sequential: container for stacking layers
//   - MLP: the feed-forward function approximator used for training
//
// Design inspired by PyTorch's nn.Module, with modules operating on
// slices of graph variables so derivatives with respect to the input stay
// available to the physics residual.
package nn

import "github.com/resona-ml/resona/internal/autodiff"

// Module is the base interface for all neural network components.
//
// Modules compose into larger architectures:
//
//	model := nn.NewSequential(
//	    nn.NewDense(1, 32, rng),
//	    nn.NewTanh(),
//	    nn.NewDense(32, 1, rng),
//	)
type Module interface {
	// Forward computes the module's outputs for the given input variables.
	// Implementations must be pure functions of the inputs and the current
	// parameter values: no hidden state, so the same graph can be rebuilt
	// every iteration.
	Forward(inputs []*autodiff.Variable) []*autodiff.Variable

	// Parameters returns all trainable parameters of this module in a
	// stable order. Modules without parameters return nil.
	Parameters() []*Parameter

	// StateDict returns a map of parameter names to their current values.
	StateDict() map[string][]float64

	// LoadStateDict restores parameter values from a state dictionary.
	LoadStateDict(stateDict map[string][]float64) error
}
