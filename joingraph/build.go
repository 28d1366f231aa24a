package joingraph

import (
	"fmt"
	"sort"

	"github.com/probgraph/ijgp/factor"
	"github.com/probgraph/ijgp/model"
	"github.com/probgraph/ijgp/order"
)

// Build constructs the mini-bucket join-graph for m along elimination
// order ord, keeping every mini-bucket's scope within iBound+1 variables
// where possible. Returns order.ErrInvalidOrder (wrapped) if ord does not
// cover every variable of m exactly once.
func Build(m *model.GraphicalModel, ord []int, iBound int) (*JoinGraph, error) {
	if err := order.Validate(m, ord); err != nil {
		return nil, fmt.Errorf("joingraph.Build: %w", err)
	}

	fin := make(map[int][]int, m.NumFactors())
	orig := make(map[int][]int, m.NumFactors())
	newIn := make(map[int][]int, m.NumFactors())
	vin := make(map[int]map[int]struct{}, m.NVar())
	for v := 0; v < m.NVar(); v++ {
		vin[v] = make(map[int]struct{})
	}
	for i := 0; i < m.NumFactors(); i++ {
		fin[i] = m.Factor(i).Scope()
		orig[i] = []int{i}
		newIn[i] = nil
		for _, v := range fin[i] {
			vin[v][i] = struct{}{}
		}
	}

	var clusters []Cluster
	cluster2var := make(map[int]int)
	clustersForVar := make(map[int][]int, m.NVar())
	var schedule [][2]int
	oversized := false

	for _, vx := range ord {
		ids := sortedKeys(vin[vx])
		if len(ids) == 0 {
			continue
		}

		ids = mergeMiniBuckets(fin, orig, newIn, vin, ids, vx, iBound)

		alphas := make([]int, 0, len(ids))
		for _, i := range ids {
			alpha := len(clusters)
			scope := sortedCopy(fin[i])
			clusters = append(clusters, Cluster{
				Scope:     scope,
				BucketVar: vx,
				Originals: append([]int(nil), orig[i]...),
			})
			cluster2var[alpha] = vx
			clustersForVar[vx] = append(clustersForVar[vx], alpha)
			alphas = append(alphas, alpha)
			if len(scope) > iBound+1 {
				oversized = true
			}

			for _, from := range newIn[i] {
				schedule = append(schedule, [2]int{from, alpha})
			}

			fin[i] = removeVar(fin[i], vx)
			orig[i] = nil
			newIn[i] = []int{alpha}
			delete(vin[vx], i)
		}

		for k := 0; k+1 < len(alphas); k++ {
			schedule = append(schedule, [2]int{alphas[k], alphas[k+1]})
		}
	}

	jg, err := assemble(m, clusters, cluster2var, clustersForVar, schedule)
	if err != nil {
		return nil, err
	}
	if oversized {
		jg.Warning = "one or more mini-buckets exceed the configured i-bound because a single original factor already exceeds it"
	}
	return jg, nil
}

// assemble derives separators, in/out adjacency, roots, and initial
// potentials from the finished cluster/schedule lists.
func assemble(m *model.GraphicalModel, clusters []Cluster, cluster2var map[int]int, clustersForVar map[int][]int, schedule [][2]int) (*JoinGraph, error) {
	n := len(clusters)
	in := make([][]int, n)
	out := make([][]int, n)
	edgeIndex := make(map[[2]int]int, len(schedule))
	sep := make(map[[2]int][]int)

	for idx, e := range schedule {
		from, to := e[0], e[1]
		edgeIndex[[2]int{from, to}] = idx
		out[from] = append(out[from], to)
		in[to] = append(in[to], from)

		a, b := from, to
		if a > b {
			a, b = b, a
		}
		key := [2]int{a, b}
		if _, ok := sep[key]; !ok {
			sep[key] = intersectScope(clusters[from].Scope, clusters[to].Scope)
		}
	}

	var roots []int
	for c := 0; c < n; c++ {
		if len(out[c]) == 0 {
			roots = append(roots, c)
		}
	}

	for i := range clusters {
		pot := factor.NewConstant(1)
		for _, fi := range clusters[i].Originals {
			p, err := pot.Product(m.Factor(fi))
			if err != nil {
				return nil, fmt.Errorf("joingraph.Build: %w", err)
			}
			pot = p
		}
		clusters[i].Potential = pot
	}

	return &JoinGraph{
		Clusters:       clusters,
		Schedule:       schedule,
		In:             in,
		Out:            out,
		Roots:          roots,
		Cluster2Var:    cluster2var,
		ClustersForVar: clustersForVar,
		edgeIndex:      edgeIndex,
		sep:            sep,
	}, nil
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
