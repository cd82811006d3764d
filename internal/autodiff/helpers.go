package autodiff

// Square returns v².
func Square(v *Variable) *Variable {
	return Mul(v, v)
}

// Scale returns c·v for a plain float coefficient.
func Scale(c float64, v *Variable) *Variable {
	return Mul(Constant(c), v)
}

// Sum returns the sum of vs, or Constant(0) for an empty slice.
func Sum(vs []*Variable) *Variable {
	if len(vs) == 0 {
		return Constant(0)
	}
	acc := vs[0]
	for _, v := range vs[1:] {
		acc = Add(acc, v)
	}
	return acc
}

// Mean returns the arithmetic mean of vs, or Constant(0) for an empty
// slice. An empty set contributing zero is what lets a degenerate point
// count drop its loss term entirely.
func Mean(vs []*Variable) *Variable {
	if len(vs) == 0 {
		return Constant(0)
	}
	return Scale(1/float64(len(vs)), Sum(vs))
}
