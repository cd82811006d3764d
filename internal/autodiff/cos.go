package autodiff

import "math"

// cosOp represents the cosine function.
type cosOp struct {
	x, out *Variable
}

// Cos returns cos(x).
func Cos(x *Variable) *Variable {
	out := &Variable{value: math.Cos(x.value)}
	out.op = &cosOp{x: x, out: out}
	return out
}

// Inputs returns the input variables.
func (op *cosOp) Inputs() []*Variable {
	return []*Variable{op.x}
}

// Output returns the output variable.
func (op *cosOp) Output() *Variable {
	return op.out
}

// Backward: d(cos(x))/dx = -sin(x).
func (op *cosOp) Backward(outputGrad *Variable) []*Variable {
	return []*Variable{Neg(Mul(outputGrad, Sin(op.x)))}
}
