package autodiff

import "math"

// tanhOp represents the hyperbolic tangent.
//
// Tanh is the default network nonlinearity: it is smooth to every order,
// which the residual needs since it differentiates through the activation
// twice.
type tanhOp struct {
	x, out *Variable
}

// Tanh returns tanh(x).
func Tanh(x *Variable) *Variable {
	out := &Variable{value: math.Tanh(x.value)}
	out.op = &tanhOp{x: x, out: out}
	return out
}

// Inputs returns the input variables.
func (op *tanhOp) Inputs() []*Variable {
	return []*Variable{op.x}
}

// Output returns the output variable.
func (op *tanhOp) Output() *Variable {
	return op.out
}

// Backward computes the gradient for tanh.
//
// d(tanh(x))/dx = 1 - tanh²(x). Since the output tanh(x) is already a
// graph node, the derivative is built from it:
//
//	grad_input = grad_output · (1 - output²)
func (op *tanhOp) Backward(outputGrad *Variable) []*Variable {
	derivative := Sub(Constant(1), Mul(op.out, op.out))
	return []*Variable{Mul(outputGrad, derivative)}
}
