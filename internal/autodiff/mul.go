package autodiff

// mulOp represents multiplication: d(a·b)/da = b, d(a·b)/db = a.
type mulOp struct {
	a, b, out *Variable
}

// Mul returns a · b.
func Mul(a, b *Variable) *Variable {
	out := &Variable{value: a.value * b.value}
	out.op = &mulOp{a: a, b: b, out: out}
	return out
}

// Inputs returns the input variables.
func (op *mulOp) Inputs() []*Variable {
	return []*Variable{op.a, op.b}
}

// Output returns the output variable.
func (op *mulOp) Output() *Variable {
	return op.out
}

// Backward: each input receives the gradient scaled by the other input.
func (op *mulOp) Backward(outputGrad *Variable) []*Variable {
	return []*Variable{
		Mul(outputGrad, op.b),
		Mul(outputGrad, op.a),
	}
}
