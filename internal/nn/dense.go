package nn

import (
	"fmt"
	"math/rand"

	"github.com/resona-ml/resona/internal/autodiff"
)

// Dense implements a fully connected layer.
//
// Performs the transformation y_j = Σ_i W[j,i]·x_i + b_j where W has shape
// [out_features, in_features] and b has shape [out_features].
//
// Weights use Xavier/Glorot initialization, biases start at zero.
type Dense struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter // row-major [out_features, in_features]
	bias        *Parameter // [out_features]
}

// NewDense creates a new fully connected layer. The rng drives weight
// initialization and must come from the run's configured seed.
func NewDense(inFeatures, outFeatures int, rng *rand.Rand) *Dense {
	if inFeatures <= 0 || outFeatures <= 0 {
		panic(fmt.Sprintf("nn.NewDense: feature counts must be positive, got %d and %d",
			inFeatures, outFeatures))
	}
	return &Dense{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter("weight", Xavier(inFeatures, outFeatures, inFeatures*outFeatures, rng)),
		bias:        NewParameter("bias", Zeros(outFeatures)),
	}
}

// Forward computes the affine transform for a single feature vector.
func (d *Dense) Forward(inputs []*autodiff.Variable) []*autodiff.Variable {
	if len(inputs) != d.inFeatures {
		panic(fmt.Sprintf("Dense.Forward: expected %d inputs, got %d", d.inFeatures, len(inputs)))
	}

	outputs := make([]*autodiff.Variable, d.outFeatures)
	for j := 0; j < d.outFeatures; j++ {
		acc := d.bias.At(j)
		for i, x := range inputs {
			acc = autodiff.Add(acc, autodiff.Mul(d.weight.At(j*d.inFeatures+i), x))
		}
		outputs[j] = acc
	}
	return outputs
}

// Parameters returns [weight, bias].
func (d *Dense) Parameters() []*Parameter {
	return []*Parameter{d.weight, d.bias}
}

// InFeatures returns the number of input features.
func (d *Dense) InFeatures() int {
	return d.inFeatures
}

// OutFeatures returns the number of output features.
func (d *Dense) OutFeatures() int {
	return d.outFeatures
}

// StateDict returns a map of parameter names to values.
func (d *Dense) StateDict() map[string][]float64 {
	return map[string][]float64{
		"weight": d.weight.Values(),
		"bias":   d.bias.Values(),
	}
}

// LoadStateDict loads parameter values from a state dictionary.
func (d *Dense) LoadStateDict(stateDict map[string][]float64) error {
	weight, ok := stateDict["weight"]
	if !ok {
		return fmt.Errorf("missing weight in state dict")
	}
	if err := d.weight.SetValues(weight); err != nil {
		return err
	}

	bias, ok := stateDict["bias"]
	if !ok {
		return fmt.Errorf("missing bias in state dict")
	}
	return d.bias.SetValues(bias)
}
