// Package sample generates the two disjoint point sets a training
// iteration consumes: boundary points carrying known initial-condition
// targets, and unlabeled collocation points where only the governing
// equation is enforced.
package sample

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/resona-ml/resona/internal/physics"
)

// ErrInvalidConfig reports a degenerate sampling configuration.
var ErrInvalidConfig = errors.New("sample: invalid config")

// Policy selects how collocation points cover the time domain.
type Policy int

const (
	// PolicyGrid spaces points evenly over [0, T], endpoints included.
	PolicyGrid Policy = iota
	// PolicyRandom draws points uniformly at random over [0, T].
	PolicyRandom
)

// String returns the policy name used in configuration files.
func (p Policy) String() string {
	switch p {
	case PolicyGrid:
		return "grid"
	case PolicyRandom:
		return "random"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy converts a configuration string to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "grid":
		return PolicyGrid, nil
	case "random":
		return PolicyRandom, nil
	default:
		return 0, fmt.Errorf("%w: unknown policy %q (want \"grid\" or \"random\")", ErrInvalidConfig, s)
	}
}

// Kind distinguishes which initial condition a boundary point carries.
type Kind int

const (
	// KindPosition targets y(t).
	KindPosition Kind = iota
	// KindVelocity targets y'(t).
	KindVelocity
)

// BoundaryPoint is a labeled sample: a time coordinate plus the known
// target value from the initial conditions. Immutable once generated.
type BoundaryPoint struct {
	T      float64
	Target float64
	Kind   Kind
}

// CollocationPoint is an unlabeled sample where only the equation residual
// is evaluated.
type CollocationPoint struct {
	T float64
}

// Config controls sample generation for one run.
type Config struct {
	Domain         float64 // upper bound T of the time interval [0, T]
	NumBoundary    int     // 0–2: initial position, then initial velocity
	NumCollocation int
	Policy         Policy
	Seed           int64 // drives PolicyRandom; same seed, same sequence
}

// Validate checks the configuration before any point is generated.
func (c Config) Validate() error {
	if math.IsNaN(c.Domain) || c.Domain <= 0 {
		return fmt.Errorf("%w: domain bound must be positive, got %v", ErrInvalidConfig, c.Domain)
	}
	if math.IsInf(c.Domain, 0) {
		return fmt.Errorf("%w: domain bound must be finite", ErrInvalidConfig)
	}
	if c.NumBoundary < 0 || c.NumBoundary > 2 {
		return fmt.Errorf("%w: boundary count must be 0-2 (the oscillator has two initial conditions), got %d",
			ErrInvalidConfig, c.NumBoundary)
	}
	if c.NumCollocation < 0 {
		return fmt.Errorf("%w: collocation count must be non-negative, got %d",
			ErrInvalidConfig, c.NumCollocation)
	}
	if c.Policy != PolicyGrid && c.Policy != PolicyRandom {
		return fmt.Errorf("%w: unknown policy %v", ErrInvalidConfig, c.Policy)
	}
	return nil
}

// Generator produces the boundary and collocation point sets for a run.
// Generation is deterministic: repeated calls with the same configuration
// yield identical sequences.
type Generator struct {
	cfg  Config
	phys physics.Params
}

// NewGenerator validates both configurations eagerly and returns a
// generator.
func NewGenerator(cfg Config, phys physics.Params) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := phys.Validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, phys: phys}, nil
}

// Boundary returns the labeled points, always anchored at t=0: the first
// carries the known initial position, the second the known initial
// velocity. A zero count yields an empty set whose loss term contributes
// nothing.
func (g *Generator) Boundary() []BoundaryPoint {
	points := make([]BoundaryPoint, 0, g.cfg.NumBoundary)
	if g.cfg.NumBoundary >= 1 {
		points = append(points, BoundaryPoint{T: 0, Target: g.phys.InitialPosition, Kind: KindPosition})
	}
	if g.cfg.NumBoundary >= 2 {
		points = append(points, BoundaryPoint{T: 0, Target: g.phys.InitialVelocity, Kind: KindVelocity})
	}
	return points
}

// Collocation returns the unlabeled points covering [0, T] under the
// configured policy. The random stream is re-derived from the seed on
// every call, so the sequence is reproducible.
func (g *Generator) Collocation() []CollocationPoint {
	n := g.cfg.NumCollocation
	if n == 0 {
		return nil
	}

	ts := make([]float64, n)
	switch g.cfg.Policy {
	case PolicyRandom:
		rng := rand.New(rand.NewSource(g.cfg.Seed))
		for i := range ts {
			ts[i] = rng.Float64() * g.cfg.Domain
		}
	default: // PolicyGrid
		if n == 1 {
			ts[0] = g.cfg.Domain / 2
		} else {
			floats.Span(ts, 0, g.cfg.Domain)
		}
	}

	points := make([]CollocationPoint, n)
	for i, t := range ts {
		points[i] = CollocationPoint{T: t}
	}
	return points
}
