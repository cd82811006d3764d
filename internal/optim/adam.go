package optim

import (
	"fmt"
	"math"

	"github.com/resona-ml/resona/internal/autodiff"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Adam maintains exponential moving averages of gradients (first moment)
// and squared gradients (second moment), with bias correction for the
// zero initialization:
//
//	m_t = beta1 · m_{t-1} + (1-beta1) · gradient
//	v_t = beta2 · v_{t-1} + (1-beta2) · gradient²
//	m_hat = m_t / (1 - beta1^t)
//	v_hat = v_t / (1 - beta2^t)
//	param = param - lr · m_hat / (sqrt(v_hat) + eps)
//
// Reference: "Adam: A Method for Stochastic Optimization"
// (Kingma & Ba, 2014).
type Adam struct {
	lr    float64
	beta1 float64
	beta2 float64
	eps   float64
	t     int       // timestep for bias correction
	m     []float64 // first moment estimates
	v     []float64 // second moment estimates
}

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Moving-average coefficients (default: [0.9, 0.999])
	Eps   float64    // Numerical stability term (default: 1e-8)
}

// NewAdam creates a new Adam optimizer with defaults for unset fields.
func NewAdam(config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &Adam{
		lr:    config.LR,
		beta1: config.Betas[0],
		beta2: config.Betas[1],
		eps:   config.Eps,
	}
}

// Step performs a single Adam update in place.
func (a *Adam) Step(params []*autodiff.Variable, grads []float64) {
	if len(params) != len(grads) {
		panic(fmt.Sprintf("optim: Adam.Step: %d params but %d gradients", len(params), len(grads)))
	}
	if a.m == nil {
		a.m = make([]float64, len(params))
		a.v = make([]float64, len(params))
	}

	a.t++
	biasCorrection1 := 1.0 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1.0 - math.Pow(a.beta2, float64(a.t))

	for i, p := range params {
		g := grads[i]

		a.m[i] = a.beta1*a.m[i] + (1.0-a.beta1)*g
		a.v[i] = a.beta2*a.v[i] + (1.0-a.beta2)*g*g

		mHat := a.m[i] / biasCorrection1
		vHat := a.v[i] / biasCorrection2

		p.SetValue(p.Value() - a.lr*mHat/(math.Sqrt(vHat)+a.eps))
	}
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}

// GetTimestep returns the current timestep, for monitoring.
func (a *Adam) GetTimestep() int {
	return a.t
}
