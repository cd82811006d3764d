package autodiff

// negOp represents negation: d(-x)/dx = -1.
type negOp struct {
	x, out *Variable
}

// Neg returns -x.
func Neg(x *Variable) *Variable {
	out := &Variable{value: -x.value}
	out.op = &negOp{x: x, out: out}
	return out
}

// Inputs returns the input variables.
func (op *negOp) Inputs() []*Variable {
	return []*Variable{op.x}
}

// Output returns the output variable.
func (op *negOp) Output() *Variable {
	return op.out
}

// Backward: the gradient is negated.
func (op *negOp) Backward(outputGrad *Variable) []*Variable {
	return []*Variable{Neg(outputGrad)}
}
