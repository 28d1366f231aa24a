package order

import "github.com/probgraph/ijgp/model"

// primalGraph returns the model's primal graph: an adjacency set per
// variable, with an edge between u and v iff some factor's scope contains
// both. Complexity: O(F·S^2) where S is the largest scope.
func primalGraph(m *model.GraphicalModel) map[int]map[int]struct{} {
	adj := make(map[int]map[int]struct{}, m.NVar())
	for i := 0; i < m.NVar(); i++ {
		adj[i] = make(map[int]struct{})
	}
	for fi := 0; fi < m.NumFactors(); fi++ {
		scope := m.Factor(fi).Scope()
		for i := 0; i < len(scope); i++ {
			for j := i + 1; j < len(scope); j++ {
				u, v := scope[i], scope[j]
				adj[u][v] = struct{}{}
				adj[v][u] = struct{}{}
			}
		}
	}
	return adj
}

// cloneAdjacency returns a deep copy of an adjacency map. The
// simulated-elimination passes (Build, InducedWidth, PseudoTree) do not
// call it; each builds a fresh graph with primalGraph instead.
func cloneAdjacency(adj map[int]map[int]struct{}) map[int]map[int]struct{} {
	out := make(map[int]map[int]struct{}, len(adj))
	for v, nbrs := range adj {
		cp := make(map[int]struct{}, len(nbrs))
		for u := range nbrs {
			cp[u] = struct{}{}
		}
		out[v] = cp
	}
	return out
}

// neighborsOf returns the current neighbors of v as a sorted slice, for
// deterministic iteration.
func neighborsOf(adj map[int]map[int]struct{}, v int) []int {
	out := make([]int, 0, len(adj[v]))
	for u := range adj[v] {
		out = append(out, u)
	}
	sortInts(out)
	return out
}

// eliminateFrom adds an edge between every pair of v's current neighbors
// (the fill-in step of simulated elimination), removes v entirely from
// the graph, and returns those neighbors in sorted order.
func eliminateFrom(adj map[int]map[int]struct{}, v int) []int {
	nbrs := neighborsOf(adj, v)
	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			u, w := nbrs[i], nbrs[j]
			adj[u][w] = struct{}{}
			adj[w][u] = struct{}{}
		}
	}
	for _, u := range nbrs {
		delete(adj[u], v)
	}
	delete(adj, v)
	return nbrs
}

// sortInts is a tiny insertion sort; adjacency lists in this package are
// small (bounded by model degree), so this avoids pulling in sort for a
// handful of elements on a hot simulated-elimination path.
func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
