// Package train runs the physics-informed training loop: a composite loss
// over boundary and collocation points, minimized by gradient descent on
// the approximator's parameters.
package train

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/resona-ml/resona/internal/autodiff"
	"github.com/resona-ml/resona/internal/nn"
	"github.com/resona-ml/resona/internal/optim"
	"github.com/resona-ml/resona/internal/parallel"
	"github.com/resona-ml/resona/internal/physics"
	"github.com/resona-ml/resona/internal/sample"
)

// Config collects everything one training run needs. There is no ambient
// state: seeds, constants and hyperparameters all arrive here.
type Config struct {
	// Physics holds the governing-equation constants and initial
	// conditions.
	Physics physics.Params

	// Sampling controls the boundary and collocation point sets.
	Sampling sample.Config

	// Hidden lists the hidden layer widths of the approximator; the input
	// and output widths are fixed at 1.
	Hidden []int
	// Activation names the network nonlinearity: "tanh" or "sin".
	Activation string
	// WeightSeed drives weight initialization.
	WeightSeed int64

	// Optimizer selects the update rule: "adam" (default) or "sgd".
	Optimizer string
	// LearningRate is the optimizer step size. Required.
	LearningRate float64
	// Momentum applies to the sgd optimizer only.
	Momentum float64

	// MaxIterations bounds the training loop. Required.
	MaxIterations int
	// Tolerance is the convergence threshold on the total loss; a value
	// <= 0 disables the check and the loop always runs to exhaustion.
	Tolerance float64
	// Lambda weights the physics term against the data term. Required and
	// positive: there is no canonical default.
	Lambda float64

	// OnIteration, when set, receives diagnostics every LogEvery
	// iterations (every iteration if LogEvery <= 1) and at termination.
	OnIteration func(Diag)
	LogEvery    int

	// Parallel controls data-parallel loss evaluation within one
	// iteration. Zero value means sequential; DefaultParallel() enables
	// one worker per CPU.
	Parallel parallel.Config
}

// DefaultParallel returns the CPU-count parallelism configuration.
func DefaultParallel() parallel.Config {
	return parallel.DefaultConfig()
}

// validate checks everything eagerly so no invalid run ever starts.
func (c Config) validate() error {
	if err := c.Physics.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Sampling.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if len(c.Hidden) == 0 {
		return fmt.Errorf("%w: at least one hidden layer is required", ErrInvalidConfig)
	}
	for _, w := range c.Hidden {
		if w <= 0 {
			return fmt.Errorf("%w: hidden widths must be positive, got %v", ErrInvalidConfig, c.Hidden)
		}
	}
	switch c.Activation {
	case "tanh", "sin":
	default:
		return fmt.Errorf("%w: unknown activation %q", ErrInvalidConfig, c.Activation)
	}
	switch c.Optimizer {
	case "", "adam", "sgd":
	default:
		return fmt.Errorf("%w: unknown optimizer %q", ErrInvalidConfig, c.Optimizer)
	}
	if c.LearningRate <= 0 || math.IsNaN(c.LearningRate) || math.IsInf(c.LearningRate, 0) {
		return fmt.Errorf("%w: learning rate must be positive and finite, got %v", ErrInvalidConfig, c.LearningRate)
	}
	if c.Momentum < 0 || c.Momentum >= 1 {
		return fmt.Errorf("%w: momentum must be in [0, 1), got %v", ErrInvalidConfig, c.Momentum)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("%w: iteration budget must be positive, got %d", ErrInvalidConfig, c.MaxIterations)
	}
	if c.Lambda <= 0 || math.IsNaN(c.Lambda) || math.IsInf(c.Lambda, 0) {
		return fmt.Errorf("%w: lambda must be positive and finite (no default is assumed), got %v",
			ErrInvalidConfig, c.Lambda)
	}
	return nil
}

// Result is what a finished (or aborted) run hands back.
type Result struct {
	State      State
	Iterations int
	// Loss is the best total loss observed; Data/Physics decompose it.
	// All three are NaN when no finite loss was ever measured, which can
	// only happen when the very first evaluation diverges.
	Loss        float64
	DataLoss    float64
	PhysicsLoss float64
	// Converged is true only in StateConverged; in StateExhausted the
	// model may still be useful and callers decide.
	Converged bool
	// Model holds the best parameters found, ready for inference.
	Model *nn.MLP
}

// Trainer owns the approximator for the duration of training and drives
// the loop through its states. Single writer, no concurrent readers:
// parameter updates need no locking.
type Trainer struct {
	cfg      Config
	model    *nn.MLP
	theta    []*autodiff.Variable
	opt      optim.Optimizer
	composer *Composer

	state State
	iter  int

	best      []float64
	bestDiag  Diag
	bestFound bool
}

// New validates the configuration and assembles a trainer. Any
// configuration problem aborts construction; no iteration runs.
func New(cfg Config) (*Trainer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	widths := make([]int, 0, len(cfg.Hidden)+2)
	widths = append(widths, 1)
	widths = append(widths, cfg.Hidden...)
	widths = append(widths, 1)

	model, err := nn.NewMLP(widths, cfg.Activation, rand.New(rand.NewSource(cfg.WeightSeed)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	residual, err := physics.NewResidual(cfg.Physics, model)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	gen, err := sample.NewGenerator(cfg.Sampling, cfg.Physics)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var opt optim.Optimizer
	switch cfg.Optimizer {
	case "sgd":
		opt = optim.NewSGD(optim.SGDConfig{LR: cfg.LearningRate, Momentum: cfg.Momentum})
	default:
		opt = optim.NewAdam(optim.AdamConfig{LR: cfg.LearningRate})
	}

	return &Trainer{
		cfg:      cfg,
		model:    model,
		theta:    model.Theta(),
		opt:      opt,
		composer: NewComposer(residual, gen.Boundary(), gen.Collocation(), cfg.Lambda, cfg.Parallel),
		state:    StateInitialized,
	}, nil
}

// State returns the loop's current state.
func (t *Trainer) State() State {
	return t.state
}

// Iterations returns the number of completed steps.
func (t *Trainer) Iterations() int {
	return t.iter
}

// Model returns the approximator. During training the trainer owns it;
// after Run returns, ownership passes to the caller.
func (t *Trainer) Model() *nn.MLP {
	return t.model
}

// Step executes one full training iteration: loss evaluation, gradient
// computation, parameter update. The returned diagnostics describe the
// loss at the pre-update parameters.
//
// A non-finite loss moves the loop to StateDiverged, restores the best
// finite parameters and returns ErrDiverged.
func (t *Trainer) Step() (Diag, error) {
	if t.state.Terminal() {
		return Diag{}, fmt.Errorf("train: Step on terminal state %v", t.state)
	}
	t.state = StateIterating

	terms := t.composer.Loss()
	total := terms.Total.Value()
	diag := Diag{
		Iteration:   t.iter + 1,
		DataLoss:    terms.Data.Value(),
		PhysicsLoss: terms.Physics.Value(),
		TotalLoss:   total,
	}

	if math.IsNaN(total) || math.IsInf(total, 0) {
		t.state = StateDiverged
		t.restoreBest()
		return diag, fmt.Errorf("%w (iteration %d)", ErrDiverged, t.iter+1)
	}

	// Snapshot before the update: these parameter values produced the
	// loss just measured.
	if !t.bestFound || total < t.bestDiag.TotalLoss {
		t.snapshotBest(diag)
	}

	grads := autodiff.Grad(terms.Total, t.theta...)
	gradValues := make([]float64, len(grads))
	for i, g := range grads {
		gradValues[i] = g.Value()
	}
	t.opt.Step(t.theta, gradValues)
	t.iter++

	switch {
	case t.cfg.Tolerance > 0 && total <= t.cfg.Tolerance:
		t.state = StateConverged
	case t.iter >= t.cfg.MaxIterations:
		t.state = StateExhausted
	}
	return diag, nil
}

// Run drives the loop until a terminal state or context cancellation.
// Cancellation is honored only between iterations, after the current
// parameter update completes, so no partially updated θ is ever
// observable. The returned result always carries the best parameters
// found, whatever ended the run.
func (t *Trainer) Run(ctx context.Context) (*Result, error) {
	for !t.state.Terminal() {
		if err := ctx.Err(); err != nil {
			t.restoreBest()
			return t.result(), err
		}

		diag, err := t.Step()
		t.emit(diag)
		if err != nil {
			return t.result(), err
		}
	}

	t.restoreBest()
	return t.result(), nil
}

func (t *Trainer) emit(d Diag) {
	if t.cfg.OnIteration == nil {
		return
	}
	if t.cfg.LogEvery <= 1 || d.Iteration%t.cfg.LogEvery == 0 || t.state.Terminal() {
		t.cfg.OnIteration(d)
	}
}

func (t *Trainer) snapshotBest(d Diag) {
	if t.best == nil {
		t.best = make([]float64, len(t.theta))
	}
	for i, v := range t.theta {
		t.best[i] = v.Value()
	}
	t.bestDiag = d
	t.bestFound = true
}

// restoreBest writes the best observed parameters back into the model.
func (t *Trainer) restoreBest() {
	if !t.bestFound {
		return
	}
	for i, v := range t.best {
		t.theta[i].SetValue(v)
	}
}

func (t *Trainer) result() *Result {
	res := &Result{
		State:       t.state,
		Iterations:  t.iter,
		Loss:        t.bestDiag.TotalLoss,
		DataLoss:    t.bestDiag.DataLoss,
		PhysicsLoss: t.bestDiag.PhysicsLoss,
		Converged:   t.state == StateConverged,
		Model:       t.model,
	}
	if !t.bestFound {
		// Zero values here would read as a perfect run next to a
		// diverged state.
		res.Loss = math.NaN()
		res.DataLoss = math.NaN()
		res.PhysicsLoss = math.NaN()
	}
	return res
}
