package nn

import (
	"fmt"
	"math/rand"

	"github.com/resona-ml/resona/internal/autodiff"
)

// MLP is a feed-forward network of Dense layers with a fixed nonlinearity
// between them: the trainable function approximator.
//
// widths lists the layer sizes including input and output, e.g.
// {1, 32, 32, 1} for a scalar-to-scalar approximator with two hidden
// layers of 32 units. The final layer is affine (no activation) so the
// output range is unconstrained.
type MLP struct {
	widths     []int
	activation string
	seq        *Sequential
}

// NewMLP builds a feed-forward approximator.
//
// Parameters:
//   - widths: layer sizes including input and output, at least two entries
//   - activation: "tanh" or "sin"
//   - rng: seeded source for weight initialization
func NewMLP(widths []int, activation string, rng *rand.Rand) (*MLP, error) {
	if len(widths) < 2 {
		return nil, fmt.Errorf("mlp: need at least input and output widths, got %v", widths)
	}
	for _, w := range widths {
		if w <= 0 {
			return nil, fmt.Errorf("mlp: widths must be positive, got %v", widths)
		}
	}

	var modules []Module
	for i := 0; i < len(widths)-1; i++ {
		modules = append(modules, NewDense(widths[i], widths[i+1], rng))
		if i < len(widths)-2 {
			act, err := NewActivation(activation)
			if err != nil {
				return nil, fmt.Errorf("mlp: %w", err)
			}
			modules = append(modules, act)
		}
	}

	return &MLP{
		widths:     append([]int(nil), widths...),
		activation: activation,
		seq:        NewSequential(modules...),
	}, nil
}

// Forward evaluates the network on a vector of input variables.
func (m *MLP) Forward(inputs []*autodiff.Variable) []*autodiff.Variable {
	return m.seq.Forward(inputs)
}

// Parameters returns all trainable parameters in a stable order.
func (m *MLP) Parameters() []*Parameter {
	return m.seq.Parameters()
}

// Theta returns the flattened trainable variable vector θ. The order is
// stable across calls, which the optimizer's per-index state relies on.
func (m *MLP) Theta() []*autodiff.Variable {
	var theta []*autodiff.Variable
	for _, p := range m.seq.Parameters() {
		theta = append(theta, p.Variables()...)
	}
	return theta
}

// Widths returns the layer sizes, including input and output.
func (m *MLP) Widths() []int {
	return append([]int(nil), m.widths...)
}

// Activation returns the nonlinearity name.
func (m *MLP) Activation() string {
	return m.activation
}

// Eval evaluates a scalar-to-scalar network at time t, outside of any
// training graph. Panics if the network is not 1→1.
func (m *MLP) Eval(t float64) float64 {
	if m.widths[0] != 1 || m.widths[len(m.widths)-1] != 1 {
		panic(fmt.Sprintf("MLP.Eval: network is %v, not scalar-to-scalar", m.widths))
	}
	out := m.Forward([]*autodiff.Variable{autodiff.Leaf(t)})
	return out[0].Value()
}

// StateDict returns the network's parameter values keyed by layer-indexed
// names.
func (m *MLP) StateDict() map[string][]float64 {
	return m.seq.StateDict()
}

// LoadStateDict restores parameter values produced by StateDict.
func (m *MLP) LoadStateDict(stateDict map[string][]float64) error {
	return m.seq.LoadStateDict(stateDict)
}
