// Package autodiff implements reverse-mode automatic differentiation over
// a scalar computation graph.
//
// Architecture:
//   - Variable: an eagerly evaluated node (value + producing operation)
//   - Operation interface: each op (Add, Mul, Tanh, ...) implements its
//     backward pass in one source file
//   - Grad: walks the graph in reverse topological order (chain rule)
//
// Unlike tape-based engines whose backward pass emits raw numbers, Grad
// builds the gradients as new graph nodes. Differentiating twice is
// therefore just calling Grad on the output of a previous Grad:
//
//	t := autodiff.Leaf(0.5)
//	y := model(t)
//	dy := autodiff.Grad(y, t)[0]    // y'(t), itself differentiable
//	d2y := autodiff.Grad(dy, t)[0]  // y''(t)
//
// A loss assembled from dy and d2y remains differentiable with respect to
// the network parameters, which is what a second-order equation residual
// requires.
package autodiff

// Variable is a node in the computation graph: a float64 value plus the
// operation that produced it. Leaf variables have no producing operation.
//
// Values are computed eagerly at construction. Leaves may be mutated
// between graph constructions (the optimizer updates parameters in place);
// nodes built from the old values are not recomputed.
type Variable struct {
	value float64
	op    Operation
}

// Leaf creates a variable with no producing operation.
// Parameters and sample inputs are leaves.
func Leaf(v float64) *Variable {
	return &Variable{value: v}
}

// Constant creates a leaf holding a fixed coefficient. It is identical to
// Leaf; the separate name marks values that are never differentiated
// against.
func Constant(v float64) *Variable {
	return &Variable{value: v}
}

// Value returns the node's value.
func (v *Variable) Value() float64 {
	return v.value
}

// SetValue overwrites a leaf's value.
//
// Calling it on a non-leaf would break the invariant that a node equals
// its operation applied to its inputs, so it panics.
func (v *Variable) SetValue(x float64) {
	if v.op != nil {
		panic("autodiff: SetValue on non-leaf variable")
	}
	v.value = x
}

// Op returns the operation that produced this variable, or nil for a leaf.
func (v *Variable) Op() Operation {
	return v.op
}
