package train

import (
	"github.com/resona-ml/resona/internal/autodiff"
	"github.com/resona-ml/resona/internal/parallel"
	"github.com/resona-ml/resona/internal/physics"
	"github.com/resona-ml/resona/internal/sample"
)

// Composer assembles the composite training objective
//
//	L = L_data + λ·L_phys
//
// where L_data is the mean squared error against the boundary targets and
// L_phys is the mean squared equation residual over the collocation
// points. Both terms are graph nodes, so L is differentiable with respect
// to the network parameters end to end, including through the residual's
// input derivatives.
type Composer struct {
	residual    *physics.Residual
	boundary    []sample.BoundaryPoint
	collocation []sample.CollocationPoint
	lambda      float64
	par         parallel.Config
}

// NewComposer builds a loss composer over fixed point sets.
func NewComposer(
	residual *physics.Residual,
	boundary []sample.BoundaryPoint,
	collocation []sample.CollocationPoint,
	lambda float64,
	par parallel.Config,
) *Composer {
	return &Composer{
		residual:    residual,
		boundary:    boundary,
		collocation: collocation,
		lambda:      lambda,
		par:         par,
	}
}

// Terms is one evaluation of the composite loss.
type Terms struct {
	Data    *autodiff.Variable // mean squared boundary error
	Physics *autodiff.Variable // mean squared residual
	Total   *autodiff.Variable // Data + λ·Physics
}

// Loss evaluates the composite objective at the current parameters.
//
// Collocation terms are independent of each other, so they are built
// data-parallel; the reduction is a plain sum, so worker ordering cannot
// change the result. An empty point set contributes a zero term.
func (c *Composer) Loss() Terms {
	dataTerms := make([]*autodiff.Variable, len(c.boundary))
	for i, b := range c.boundary {
		var pred *autodiff.Variable
		switch b.Kind {
		case sample.KindVelocity:
			pred = c.residual.Velocity(b.T)
		default:
			pred = c.residual.Position(b.T)
		}
		dataTerms[i] = autodiff.Square(autodiff.Sub(pred, autodiff.Constant(b.Target)))
	}

	physTerms := make([]*autodiff.Variable, len(c.collocation))
	parallel.For(len(c.collocation), func(i int) {
		physTerms[i] = autodiff.Square(c.residual.At(c.collocation[i].T))
	}, c.par)

	data := autodiff.Mean(dataTerms)
	phys := autodiff.Mean(physTerms)
	return Terms{
		Data:    data,
		Physics: phys,
		Total:   autodiff.Add(data, autodiff.Scale(c.lambda, phys)),
	}
}

// Lambda returns the physics weight λ.
func (c *Composer) Lambda() float64 {
	return c.lambda
}
