package nn_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resona-ml/resona/internal/autodiff"
	"github.com/resona-ml/resona/internal/nn"
)

func TestDense_ForwardMath(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	layer := nn.NewDense(2, 1, rng)

	// Pin weights so the output is hand-checkable: y = 2a - b + 0.5
	require.NoError(t, layer.LoadStateDict(map[string][]float64{
		"weight": {2, -1},
		"bias":   {0.5},
	}))

	a := autodiff.Leaf(3)
	b := autodiff.Leaf(4)
	out := layer.Forward([]*autodiff.Variable{a, b})

	require.Len(t, out, 1)
	assert.InDelta(t, 2.5, out[0].Value(), 1e-12)

	// Gradients of the affine map are the weights.
	grads := autodiff.Grad(out[0], a, b)
	assert.InDelta(t, 2.0, grads[0].Value(), 1e-12)
	assert.InDelta(t, -1.0, grads[1].Value(), 1e-12)
}

func TestDense_ParameterGradients(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	layer := nn.NewDense(1, 1, rng)
	require.NoError(t, layer.LoadStateDict(map[string][]float64{
		"weight": {1.5},
		"bias":   {0},
	}))

	x := autodiff.Leaf(2)
	y := layer.Forward([]*autodiff.Variable{x})[0]

	params := layer.Parameters()
	require.Len(t, params, 2)

	w := params[0].At(0)
	bias := params[1].At(0)
	grads := autodiff.Grad(y, w, bias)

	// dy/dw = x, dy/db = 1
	assert.InDelta(t, 2.0, grads[0].Value(), 1e-12)
	assert.InDelta(t, 1.0, grads[1].Value(), 1e-12)
}

func TestDense_InputMismatchPanics(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	layer := nn.NewDense(2, 3, rng)

	assert.Panics(t, func() {
		layer.Forward([]*autodiff.Variable{autodiff.Leaf(1)})
	})
}

func TestDense_StateDictRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	src := nn.NewDense(3, 2, rng)
	dst := nn.NewDense(3, 2, rand.New(rand.NewSource(8)))

	require.NoError(t, dst.LoadStateDict(src.StateDict()))

	in := []*autodiff.Variable{autodiff.Leaf(0.1), autodiff.Leaf(-0.4), autodiff.Leaf(2)}
	srcOut := src.Forward(in)
	dstOut := dst.Forward(in)
	for i := range srcOut {
		assert.InDelta(t, srcOut[i].Value(), dstOut[i].Value(), 1e-12)
	}
}

func TestDense_LoadStateDictErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	layer := nn.NewDense(2, 2, rng)

	assert.Error(t, layer.LoadStateDict(map[string][]float64{"bias": {0, 0}}))
	assert.Error(t, layer.LoadStateDict(map[string][]float64{
		"weight": {1, 2, 3}, // wrong length
		"bias":   {0, 0},
	}))
}
