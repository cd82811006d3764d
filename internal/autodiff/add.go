package autodiff

// addOp represents element addition: d(a+b)/da = 1, d(a+b)/db = 1.
type addOp struct {
	a, b, out *Variable
}

// Add returns a + b.
func Add(a, b *Variable) *Variable {
	out := &Variable{value: a.value + b.value}
	out.op = &addOp{a: a, b: b, out: out}
	return out
}

// Inputs returns the input variables.
func (op *addOp) Inputs() []*Variable {
	return []*Variable{op.a, op.b}
}

// Output returns the output variable.
func (op *addOp) Output() *Variable {
	return op.out
}

// Backward: the gradient flows unchanged to both inputs.
func (op *addOp) Backward(outputGrad *Variable) []*Variable {
	return []*Variable{outputGrad, outputGrad}
}
