package autodiff

// Operation represents a differentiable operation in the computation graph.
// Each operation records its inputs and output during the forward pass and
// builds input gradients during the backward pass.
type Operation interface {
	// Backward builds gradient nodes for the inputs given the gradient of
	// the objective with respect to the output. The returned slice is
	// aligned with Inputs; an entry may be nil when no gradient flows to
	// that input.
	//
	// Backward constructs Variables rather than raw numbers, so its result
	// can be differentiated again.
	Backward(outputGrad *Variable) []*Variable

	// Inputs returns the input variables of this operation.
	Inputs() []*Variable

	// Output returns the variable produced by this operation.
	Output() *Variable
}
