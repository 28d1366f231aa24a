package order

import "github.com/probgraph/ijgp/model"

// InducedWidth replays simulated elimination along ord and returns the
// induced width: one less than the largest bucket (eliminated variable
// plus its residual neighbors) formed during the pass. Does not mutate
// any caller-visible state.
func InducedWidth(m *model.GraphicalModel, ord []int) int {
	adj := primalGraph(m)
	width := 0
	for _, v := range ord {
		if d := len(adj[v]); d > width {
			width = d
		}
		eliminateFrom(adj, v)
	}
	return width
}

// PseudoTree replays simulated elimination along ord and returns, for
// each variable, the index of its pseudo-tree parent: the neighbor (in the
// residual induced graph at the moment the variable is eliminated) that
// will itself be eliminated earliest among the remaining variables. A
// variable with no remaining neighbors when eliminated is a root, recorded
// as -1.
func PseudoTree(m *model.GraphicalModel, ord []int) []int {
	n := m.NVar()
	adj := primalGraph(m)
	position := make([]int, n)
	for i, v := range ord {
		position[v] = i
	}

	parents := make([]int, n)
	for i := range parents {
		parents[i] = -1
	}

	for _, v := range ord {
		nbrs := neighborsOf(adj, v)
		if len(nbrs) > 0 {
			best := nbrs[0]
			for _, u := range nbrs[1:] {
				if position[u] < position[best] {
					best = u
				}
			}
			parents[v] = best
		}
		eliminateFrom(adj, v)
	}
	return parents
}
