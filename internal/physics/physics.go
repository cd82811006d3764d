// Package physics defines the damped harmonic oscillator
//
//	m·y'' + c·y' + k·y = 0,  y(0) = y₀,  y'(0) = v₀
//
// and evaluates its residual through a network's computation graph.
package physics

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams reports physically meaningless oscillator constants.
// Detected eagerly, before any training iteration runs.
var ErrInvalidParams = errors.New("physics: invalid parameters")

// Params holds the constants of the governing equation. Immutable for the
// duration of a run.
type Params struct {
	Mass            float64 // m, must be positive
	Damping         float64 // c, must be non-negative
	Stiffness       float64 // k, must be non-negative
	InitialPosition float64 // y(0)
	InitialVelocity float64 // y'(0)
}

// Validate checks the constants before training starts. Mass in
// particular must not be zero: the solution scales with 1/m.
func (p Params) Validate() error {
	for name, v := range map[string]float64{
		"mass":             p.Mass,
		"damping":          p.Damping,
		"stiffness":        p.Stiffness,
		"initial position": p.InitialPosition,
		"initial velocity": p.InitialVelocity,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidParams, name, v)
		}
	}
	if p.Mass <= 0 {
		return fmt.Errorf("%w: mass must be positive, got %v", ErrInvalidParams, p.Mass)
	}
	if p.Damping < 0 {
		return fmt.Errorf("%w: damping must be non-negative, got %v", ErrInvalidParams, p.Damping)
	}
	if p.Stiffness < 0 {
		return fmt.Errorf("%w: stiffness must be non-negative, got %v", ErrInvalidParams, p.Stiffness)
	}
	return nil
}
