// Copyright 2025 Resona ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Values are nodes in an eagerly evaluated computation graph. Grad builds
// gradients as graph nodes rather than plain numbers, so gradients can be
// differentiated again; second and higher derivatives fall out of nested
// Grad calls.
//
// Example:
//
//	import "github.com/resona-ml/resona/autodiff"
//
//	func main() {
//	    t := autodiff.Leaf(0.5)
//	    y := autodiff.Sin(t)
//
//	    dy := autodiff.Grad(y, t)[0]   // cos(0.5)
//	    d2y := autodiff.Grad(dy, t)[0] // -sin(0.5)
//	    _ = d2y
//	}
package autodiff

import (
	"github.com/resona-ml/resona/internal/autodiff"
)

// Variable is one node of the computation graph.
type Variable = autodiff.Variable

// Operation records how a Variable was produced from its inputs.
type Operation = autodiff.Operation

// Leaf creates a differentiable input node.
func Leaf(v float64) *Variable {
	return autodiff.Leaf(v)
}

// Constant creates a node that gradients do not flow into.
func Constant(v float64) *Variable {
	return autodiff.Constant(v)
}

// Grad returns d(output)/d(wrt) for each wrt, as differentiable nodes.
func Grad(output *Variable, wrt ...*Variable) []*Variable {
	return autodiff.Grad(output, wrt...)
}

// Elementary operations.
var (
	Add  = autodiff.Add
	Sub  = autodiff.Sub
	Mul  = autodiff.Mul
	Div  = autodiff.Div
	Neg  = autodiff.Neg
	Tanh = autodiff.Tanh
	Sin  = autodiff.Sin
	Cos  = autodiff.Cos
	Exp  = autodiff.Exp
)

// Composite helpers.
var (
	Square = autodiff.Square
	Scale  = autodiff.Scale
	Sum    = autodiff.Sum
	Mean   = autodiff.Mean
)
