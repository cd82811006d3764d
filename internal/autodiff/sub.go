package autodiff

// subOp represents subtraction: d(a-b)/da = 1, d(a-b)/db = -1.
type subOp struct {
	a, b, out *Variable
}

// Sub returns a - b.
func Sub(a, b *Variable) *Variable {
	out := &Variable{value: a.value - b.value}
	out.op = &subOp{a: a, b: b, out: out}
	return out
}

// Inputs returns the input variables.
func (op *subOp) Inputs() []*Variable {
	return []*Variable{op.a, op.b}
}

// Output returns the output variable.
func (op *subOp) Output() *Variable {
	return op.out
}

// Backward: unchanged gradient to the minuend, negated to the subtrahend.
func (op *subOp) Backward(outputGrad *Variable) []*Variable {
	return []*Variable{outputGrad, Neg(outputGrad)}
}
