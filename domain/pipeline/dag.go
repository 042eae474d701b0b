package pipeline

// Traversal colors for cycle detection. A node is white until first
// reached, gray while its subtree is on the stack, black once fully
// processed. Reaching a gray node again means a back edge.
type color uint8

const (
	white color = iota
	gray
	black
)

// IsAcyclic reports whether the directed graph described by adj has no
// cycles. Starting points are scanned in order (the submission order of
// the node list); the boolean result itself is order-independent.
//
// The search is an explicit-stack depth-first traversal rather than a
// recursive one, so adversarially deep graphs cannot exhaust the call
// stack. Each frame remembers how far through a node's successor list
// it has advanced. Successor ids that are not declared nodes have no
// color slot and are skipped: a dangling edge target can never form a
// cycle. Runs in O(V+E) with O(V) auxiliary state.
func IsAcyclic(order []string, adj map[string][]string) bool {
	state := make(map[string]color, len(order))
	for _, id := range order {
		state[id] = white
	}

	type frame struct {
		id   string
		next int
	}

	for _, start := range order {
		if state[start] != white {
			continue
		}
		state[start] = gray
		stack := []frame{{id: start}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			succ := adj[top.id]

			if top.next >= len(succ) {
				state[top.id] = black
				stack = stack[:len(stack)-1]
				continue
			}

			next := succ[top.next]
			top.next++

			st, known := state[next]
			if !known {
				continue
			}
			if st == gray {
				return false
			}
			if st == white {
				state[next] = gray
				stack = append(stack, frame{id: next})
			}
		}
	}

	return true
}

// IsDAG builds the adjacency structure for the pipeline and checks it
// for cycles. A pipeline with no nodes is vacuously acyclic.
func (p *Pipeline) IsDAG() bool {
	return IsAcyclic(p.NodeOrder(), BuildAdjacency(p.Nodes, p.Edges))
}
