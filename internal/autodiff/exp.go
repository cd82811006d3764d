package autodiff

import "math"

// expOp represents the exponential function.
type expOp struct {
	x, out *Variable
}

// Exp returns e^x.
func Exp(x *Variable) *Variable {
	out := &Variable{value: math.Exp(x.value)}
	out.op = &expOp{x: x, out: out}
	return out
}

// Inputs returns the input variables.
func (op *expOp) Inputs() []*Variable {
	return []*Variable{op.x}
}

// Output returns the output variable.
func (op *expOp) Output() *Variable {
	return op.out
}

// Backward: d(e^x)/dx = e^x, which is the output node itself.
func (op *expOp) Backward(outputGrad *Variable) []*Variable {
	return []*Variable{Mul(outputGrad, op.out)}
}
