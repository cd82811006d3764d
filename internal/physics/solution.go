package physics

import "math"

// Solution returns the closed-form solution y(t) of the free damped
// oscillator with the given constants and initial conditions, covering the
// underdamped, critically damped and overdamped regimes.
//
// Used to validate trained approximators and the residual evaluator.
func Solution(p Params) (func(t float64) float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	delta := p.Damping / (2 * p.Mass) // decay rate
	omega0Sq := p.Stiffness / p.Mass  // squared natural frequency
	disc := delta*delta - omega0Sq
	y0 := p.InitialPosition
	v0 := p.InitialVelocity

	// Treat a vanishing discriminant as critical damping; the two real
	// roots coalesce and the generic formulas lose precision there.
	tol := 1e-12 * math.Max(delta*delta, omega0Sq)

	switch {
	case disc < -tol:
		// Underdamped: y = e^(-δt)·(A·cos(ωt) + B·sin(ωt))
		omega := math.Sqrt(-disc)
		a := y0
		b := (v0 + delta*y0) / omega
		return func(t float64) float64 {
			return math.Exp(-delta*t) * (a*math.Cos(omega*t) + b*math.Sin(omega*t))
		}, nil

	case disc > tol:
		// Overdamped: y = C1·e^(r1·t) + C2·e^(r2·t)
		mu := math.Sqrt(disc)
		r1 := -delta + mu
		r2 := -delta - mu
		c1 := (v0 - r2*y0) / (r1 - r2)
		c2 := y0 - c1
		return func(t float64) float64 {
			return c1*math.Exp(r1*t) + c2*math.Exp(r2*t)
		}, nil

	default:
		// Critically damped: y = (y0 + (v0 + δ·y0)·t)·e^(-δt)
		b := v0 + delta*y0
		return func(t float64) float64 {
			return (y0 + b*t) * math.Exp(-delta*t)
		}, nil
	}
}
