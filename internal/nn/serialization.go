package nn

import (
	"encoding/json"
	"fmt"
	"math/rand"
)

// mlpJSON is the on-disk form of a trained approximator: the architecture
// description plus θ, sufficient to reconstruct the network for inference
// at arbitrary time values.
type mlpJSON struct {
	Widths     []int                `json:"widths"`
	Activation string               `json:"activation"`
	Params     map[string][]float64 `json:"params"`
}

// MarshalJSON serializes the architecture and current parameter values.
func (m *MLP) MarshalJSON() ([]byte, error) {
	return json.Marshal(mlpJSON{
		Widths:     m.Widths(),
		Activation: m.activation,
		Params:     m.StateDict(),
	})
}

// UnmarshalMLP reconstructs a network from MarshalJSON output.
func UnmarshalMLP(data []byte) (*MLP, error) {
	var raw mlpJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("mlp: decode: %w", err)
	}

	// Seed is irrelevant: every weight is overwritten by the state dict.
	m, err := NewMLP(raw.Widths, raw.Activation, rand.New(rand.NewSource(0)))
	if err != nil {
		return nil, err
	}
	if err := m.LoadStateDict(raw.Params); err != nil {
		return nil, fmt.Errorf("mlp: restore params: %w", err)
	}
	return m, nil
}
