package nn

import (
	"fmt"
	"strings"

	"github.com/resona-ml/resona/internal/autodiff"
)

// Sequential is a container module that chains multiple modules together.
// Each module's output becomes the next module's input.
type Sequential struct {
	modules []Module
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{modules: modules}
}

// Forward applies all modules in sequence.
func (s *Sequential) Forward(inputs []*autodiff.Variable) []*autodiff.Variable {
	outputs := inputs
	for _, module := range s.modules {
		outputs = module.Forward(outputs)
	}
	return outputs
}

// Parameters returns all trainable parameters from all modules, in module
// order.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Len returns the number of modules in the sequence.
func (s *Sequential) Len() int {
	return len(s.modules)
}

// StateDict returns a map of parameter names to values. Names are
// prefixed with the module index ("0.weight", "2.bias", ...) to avoid
// collisions.
func (s *Sequential) StateDict() map[string][]float64 {
	stateDict := make(map[string][]float64)
	for i, module := range s.modules {
		for name, values := range module.StateDict() {
			stateDict[fmt.Sprintf("%d.%s", i, name)] = values
		}
	}
	return stateDict
}

// LoadStateDict loads parameters from a state dictionary with
// index-prefixed names.
func (s *Sequential) LoadStateDict(stateDict map[string][]float64) error {
	for i, module := range s.modules {
		prefix := fmt.Sprintf("%d.", i)

		moduleStateDict := make(map[string][]float64)
		for key, values := range stateDict {
			if strings.HasPrefix(key, prefix) {
				moduleStateDict[strings.TrimPrefix(key, prefix)] = values
			}
		}

		if len(moduleStateDict) == 0 {
			// A truncated dict must not leave a layer half-initialized.
			if len(module.Parameters()) > 0 {
				return fmt.Errorf("no state dict entries for module %d", i)
			}
			continue
		}
		if err := module.LoadStateDict(moduleStateDict); err != nil {
			return fmt.Errorf("failed to load module %d: %w", i, err)
		}
	}
	return nil
}
