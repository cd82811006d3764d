package autodiff

import "math"

// sinOp represents the sine function.
type sinOp struct {
	x, out *Variable
}

// Sin returns sin(x).
func Sin(x *Variable) *Variable {
	out := &Variable{value: math.Sin(x.value)}
	out.op = &sinOp{x: x, out: out}
	return out
}

// Inputs returns the input variables.
func (op *sinOp) Inputs() []*Variable {
	return []*Variable{op.x}
}

// Output returns the output variable.
func (op *sinOp) Output() *Variable {
	return op.out
}

// Backward: d(sin(x))/dx = cos(x).
func (op *sinOp) Backward(outputGrad *Variable) []*Variable {
	return []*Variable{Mul(outputGrad, Cos(op.x))}
}
