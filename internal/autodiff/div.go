package autodiff

// divOp represents division q = a/b.
type divOp struct {
	a, b, out *Variable
}

// Div returns a / b.
func Div(a, b *Variable) *Variable {
	out := &Variable{value: a.value / b.value}
	out.op = &divOp{a: a, b: b, out: out}
	return out
}

// Inputs returns the input variables.
func (op *divOp) Inputs() []*Variable {
	return []*Variable{op.a, op.b}
}

// Output returns the output variable.
func (op *divOp) Output() *Variable {
	return op.out
}

// Backward for q = a/b:
//
//	dq/da = 1/b    → grad / b
//	dq/db = -a/b²  → -(grad·a) / b²
func (op *divOp) Backward(outputGrad *Variable) []*Variable {
	return []*Variable{
		Div(outputGrad, op.b),
		Neg(Div(Mul(outputGrad, op.a), Mul(op.b, op.b))),
	}
}
