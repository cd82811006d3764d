package autodiff

// Grad computes d(output)/d(w) for each w in wrt using reverse-mode
// differentiation.
//
// Algorithm:
//  1. Seed the output with gradient 1
//  2. Walk nodes reachable from output in reverse topological order
//  3. For each node, let its operation build input gradients (chain rule)
//  4. Accumulate with Add when a variable feeds several operations
//
// The returned gradients are graph nodes and may be differentiated again.
// Variables not reachable from output get a zero gradient.
func Grad(output *Variable, wrt ...*Variable) []*Variable {
	order := topoSort(output)

	grads := make(map[*Variable]*Variable, len(order))
	grads[output] = Constant(1)

	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		g, ok := grads[v]
		if !ok || v.op == nil {
			continue
		}
		inputGrads := v.op.Backward(g)
		for j, in := range v.op.Inputs() {
			ig := inputGrads[j]
			if ig == nil {
				continue
			}
			if existing, exists := grads[in]; exists {
				grads[in] = Add(existing, ig)
			} else {
				grads[in] = ig
			}
		}
	}

	out := make([]*Variable, len(wrt))
	for i, w := range wrt {
		if g, ok := grads[w]; ok {
			out[i] = g
		} else {
			out[i] = Constant(0)
		}
	}
	return out
}

// topoSort returns every node reachable from root with inputs ordered
// before the nodes that consume them.
//
// Iterative DFS: graphs produced by nested Grad calls get deep enough that
// recursion would risk stack growth on large collocation batches.
func topoSort(root *Variable) []*Variable {
	type frame struct {
		v    *Variable
		next int
	}

	var order []*Variable
	seen := make(map[*Variable]bool)
	stack := []frame{{v: root}}
	seen[root] = true

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		var inputs []*Variable
		if top.v.op != nil {
			inputs = top.v.op.Inputs()
		}

		if top.next < len(inputs) {
			in := inputs[top.next]
			top.next++
			if !seen[in] {
				seen[in] = true
				stack = append(stack, frame{v: in})
			}
			continue
		}

		order = append(order, top.v)
		stack = stack[:len(stack)-1]
	}
	return order
}
