package train_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resona-ml/resona/internal/autodiff"
	"github.com/resona-ml/resona/internal/nn"
	"github.com/resona-ml/resona/internal/parallel"
	"github.com/resona-ml/resona/internal/physics"
	"github.com/resona-ml/resona/internal/sample"
	"github.com/resona-ml/resona/internal/train"
)

func oscillator() physics.Params {
	return physics.Params{
		Mass:            1,
		Damping:         0.2,
		Stiffness:       1,
		InitialPosition: 1,
		InitialVelocity: 0,
	}
}

// fnModule adapts a graph-building closure into an nn.Module, letting
// tests pin the approximator to a chosen function.
type fnModule struct {
	fn func(t *autodiff.Variable) *autodiff.Variable
}

func (m fnModule) Forward(inputs []*autodiff.Variable) []*autodiff.Variable {
	return []*autodiff.Variable{m.fn(inputs[0])}
}
func (fnModule) Parameters() []*nn.Parameter              { return nil }
func (fnModule) StateDict() map[string][]float64          { return map[string][]float64{} }
func (fnModule) LoadStateDict(map[string][]float64) error { return nil }

// exactSolution builds the underdamped closed-form solution out of graph
// operations.
func exactSolution(p physics.Params) fnModule {
	delta := p.Damping / (2 * p.Mass)
	omega := math.Sqrt(p.Stiffness/p.Mass - delta*delta)
	a := p.InitialPosition
	b := (p.InitialVelocity + delta*p.InitialPosition) / omega
	return fnModule{fn: func(t *autodiff.Variable) *autodiff.Variable {
		envelope := autodiff.Exp(autodiff.Scale(-delta, t))
		carrier := autodiff.Add(
			autodiff.Scale(a, autodiff.Cos(autodiff.Scale(omega, t))),
			autodiff.Scale(b, autodiff.Sin(autodiff.Scale(omega, t))),
		)
		return autodiff.Mul(envelope, carrier)
	}}
}

func composerFor(t *testing.T, model nn.Module, lambda float64) *train.Composer {
	t.Helper()

	p := oscillator()
	res, err := physics.NewResidual(p, model)
	require.NoError(t, err)

	gen, err := sample.NewGenerator(sample.Config{
		Domain:         4,
		NumBoundary:    2,
		NumCollocation: 64,
		Policy:         sample.PolicyGrid,
	}, p)
	require.NoError(t, err)

	return train.NewComposer(res, gen.Boundary(), gen.Collocation(), lambda, parallel.Sequential())
}

// TestLoss_ZeroOnExactSolution: both terms vanish when the approximator
// is the analytic solution of the configured equation.
func TestLoss_ZeroOnExactSolution(t *testing.T) {
	c := composerFor(t, exactSolution(oscillator()), 1.0)

	terms := c.Loss()
	assert.InDelta(t, 0.0, terms.Data.Value(), 1e-18)
	assert.InDelta(t, 0.0, terms.Physics.Value(), 1e-18)
	assert.InDelta(t, 0.0, terms.Total.Value(), 1e-18)
}

// TestLoss_NonNegativeDecomposition: the total is non-negative and only
// zero when both terms are.
func TestLoss_NonNegativeDecomposition(t *testing.T) {
	// y ≡ 0 satisfies the equation but not the initial conditions:
	// the physics term vanishes, the data term does not.
	zero := fnModule{fn: func(t *autodiff.Variable) *autodiff.Variable {
		return autodiff.Scale(0, t)
	}}
	terms := composerFor(t, zero, 1.0).Loss()
	assert.InDelta(t, 0.0, terms.Physics.Value(), 1e-18)
	assert.Greater(t, terms.Data.Value(), 0.0)
	assert.Greater(t, terms.Total.Value(), 0.0)

	// y = t² matches neither equation nor conditions: both terms
	// positive and the total stacks them with λ.
	quad := fnModule{fn: func(t *autodiff.Variable) *autodiff.Variable {
		return autodiff.Mul(t, t)
	}}
	terms = composerFor(t, quad, 2.5).Loss()
	assert.Greater(t, terms.Data.Value(), 0.0)
	assert.Greater(t, terms.Physics.Value(), 0.0)
	assert.InDelta(t, terms.Data.Value()+2.5*terms.Physics.Value(), terms.Total.Value(), 1e-12)
}

// TestLoss_EmptySetsContributeZero: degenerate point counts drop their
// term instead of erroring.
func TestLoss_EmptySetsContributeZero(t *testing.T) {
	p := oscillator()
	res, err := physics.NewResidual(p, exactSolution(p))
	require.NoError(t, err)

	c := train.NewComposer(res, nil, nil, 1.0, parallel.Sequential())
	terms := c.Loss()
	assert.Zero(t, terms.Data.Value())
	assert.Zero(t, terms.Physics.Value())
	assert.Zero(t, terms.Total.Value())
}

// TestLoss_ParallelMatchesSequential: worker count must not change the
// objective.
func TestLoss_ParallelMatchesSequential(t *testing.T) {
	p := oscillator()
	model := exactSolution(p)

	res, err := physics.NewResidual(p, fnModule{fn: func(tv *autodiff.Variable) *autodiff.Variable {
		return autodiff.Add(model.fn(tv), autodiff.Scale(0.05, autodiff.Mul(tv, tv)))
	}})
	require.NoError(t, err)

	gen, err := sample.NewGenerator(sample.Config{
		Domain: 4, NumBoundary: 2, NumCollocation: 96, Policy: sample.PolicyGrid,
	}, p)
	require.NoError(t, err)

	seq := train.NewComposer(res, gen.Boundary(), gen.Collocation(), 1.0, parallel.Sequential()).Loss()
	par := train.NewComposer(res, gen.Boundary(), gen.Collocation(), 1.0,
		parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}).Loss()

	assert.InDelta(t, seq.Total.Value(), par.Total.Value(), 1e-12)
}
