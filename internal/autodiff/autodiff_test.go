package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resona-ml/resona/internal/autodiff"
)

func TestForward_BasicOps(t *testing.T) {
	a := autodiff.Leaf(3)
	b := autodiff.Leaf(2)

	assert.InDelta(t, 5.0, autodiff.Add(a, b).Value(), 1e-12)
	assert.InDelta(t, 1.0, autodiff.Sub(a, b).Value(), 1e-12)
	assert.InDelta(t, 6.0, autodiff.Mul(a, b).Value(), 1e-12)
	assert.InDelta(t, 1.5, autodiff.Div(a, b).Value(), 1e-12)
	assert.InDelta(t, -3.0, autodiff.Neg(a).Value(), 1e-12)
	assert.InDelta(t, 9.0, autodiff.Square(a).Value(), 1e-12)
	assert.InDelta(t, 1.5, autodiff.Scale(0.5, a).Value(), 1e-12)
}

func TestGrad_Square(t *testing.T) {
	x := autodiff.Leaf(3)
	y := autodiff.Mul(x, x) // y = x²

	grad := autodiff.Grad(y, x)
	require.Len(t, grad, 1)

	// dy/dx = 2x = 6
	assert.InDelta(t, 6.0, grad[0].Value(), 1e-12)
}

func TestGrad_SharedSubexpression(t *testing.T) {
	// y = x·x + x, gradient must accumulate across both uses of x.
	x := autodiff.Leaf(4)
	y := autodiff.Add(autodiff.Mul(x, x), x)

	grad := autodiff.Grad(y, x)[0]

	// dy/dx = 2x + 1 = 9
	assert.InDelta(t, 9.0, grad.Value(), 1e-12)
}

func TestGrad_Division(t *testing.T) {
	a := autodiff.Leaf(6)
	b := autodiff.Leaf(2)
	q := autodiff.Div(a, b)

	grads := autodiff.Grad(q, a, b)

	// dq/da = 1/b = 0.5, dq/db = -a/b² = -1.5
	assert.InDelta(t, 0.5, grads[0].Value(), 1e-12)
	assert.InDelta(t, -1.5, grads[1].Value(), 1e-12)
}

func TestGrad_UnreachableVariableIsZero(t *testing.T) {
	x := autodiff.Leaf(1)
	unused := autodiff.Leaf(7)
	y := autodiff.Mul(x, x)

	grad := autodiff.Grad(y, unused)[0]

	assert.Zero(t, grad.Value())
}

func TestGrad_MultipleTargets(t *testing.T) {
	x := autodiff.Leaf(2)
	w := autodiff.Leaf(5)
	y := autodiff.Mul(w, autodiff.Mul(x, x)) // y = w·x²

	grads := autodiff.Grad(y, x, w)

	// dy/dx = 2wx = 20, dy/dw = x² = 4
	assert.InDelta(t, 20.0, grads[0].Value(), 1e-12)
	assert.InDelta(t, 4.0, grads[1].Value(), 1e-12)
}

func TestSumMean(t *testing.T) {
	vs := []*autodiff.Variable{
		autodiff.Leaf(1),
		autodiff.Leaf(2),
		autodiff.Leaf(3),
	}

	assert.InDelta(t, 6.0, autodiff.Sum(vs).Value(), 1e-12)
	assert.InDelta(t, 2.0, autodiff.Mean(vs).Value(), 1e-12)

	// Empty sets contribute a zero term.
	assert.Zero(t, autodiff.Sum(nil).Value())
	assert.Zero(t, autodiff.Mean(nil).Value())
}

func TestMean_GradientSplitsEvenly(t *testing.T) {
	a := autodiff.Leaf(1)
	b := autodiff.Leaf(5)
	m := autodiff.Mean([]*autodiff.Variable{a, b})

	grads := autodiff.Grad(m, a, b)

	assert.InDelta(t, 0.5, grads[0].Value(), 1e-12)
	assert.InDelta(t, 0.5, grads[1].Value(), 1e-12)
}

func TestSetValue_LeafOnly(t *testing.T) {
	x := autodiff.Leaf(1)
	x.SetValue(2)
	assert.InDelta(t, 2.0, x.Value(), 1e-12)

	y := autodiff.Mul(x, x)
	assert.Panics(t, func() { y.SetValue(0) })
}
