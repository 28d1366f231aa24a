package joingraph

import "github.com/probgraph/ijgp/factor"

// Cluster is one mini-bucket's worth of the join-graph: a scope, the
// bucket variable it was created for, the original model factor indices
// multiplied into it, and its initial potential.
type Cluster struct {
	Scope     []int
	BucketVar int
	Originals []int
	Potential *factor.Factor
}

// JoinGraph is the static structure message passing runs over: clusters,
// the directed edges between them (mirrored by In/Out adjacency), the
// separators on each edge, the forward message schedule, and the roots
// the forward pass folds into logZ.
type JoinGraph struct {
	Clusters    []Cluster
	Schedule    [][2]int // forward-direction (from, to) pairs, in propagation order
	In          [][]int  // In[c]: clusters with a scheduled edge into c
	Out         [][]int  // Out[c]: clusters with a scheduled edge out of c
	Roots       []int
	Cluster2Var map[int]int
	// ClustersForVar[v] lists, in creation order, the clusters built while
	// processing bucket variable v; the first entry is the canonical
	// cluster belief.ExtractMarginals and belief.ExtractMAP read v's
	// distribution from.
	ClustersForVar map[int][]int

	edgeIndex map[[2]int]int
	sep       map[[2]int][]int

	// Warning is set when a mini-bucket could not be kept within IBound
	// because a single original factor's scope already exceeds it; the
	// cluster is kept at its natural size rather than rejected.
	Warning string
}

// EdgeIndex returns the schedule slot for the scheduled edge (from, to),
// shared by the forward message sent from->to and the backward message
// sent to->from.
func (jg *JoinGraph) EdgeIndex(from, to int) (int, bool) {
	idx, ok := jg.edgeIndex[[2]int{from, to}]
	return idx, ok
}

// Separator returns the (sorted) shared scope of clusters a and b, or nil
// if no edge connects them.
func (jg *JoinGraph) Separator(a, b int) []int {
	if a > b {
		a, b = b, a
	}
	return jg.sep[[2]int{a, b}]
}
