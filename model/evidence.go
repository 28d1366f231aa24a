package model

import (
	"math"

	"github.com/probgraph/ijgp/factor"
)

// Evidence maps an observed variable index to its asserted value.
// Asserting evidence is spec §1's "evidence assertion" external
// collaborator; Evidence and Reduce implement it because a runnable
// solver needs it upstream of join-graph construction.
type Evidence map[int]int

// LogP returns log P(assignment) under the model: the sum, over every
// original factor, of log(factor value at the assignment's projection
// onto that factor's scope). Returns -Inf if any factor evaluates to
// zero at assignment (spec §4.4's "external scoring operation").
// Complexity: O(F) where F is NumFactors().
func (m *GraphicalModel) LogP(assignment []int) float64 {
	var logp float64
	for _, f := range m.factors {
		v := f.At(assignment)
		if v <= 0 {
			return math.Inf(-1)
		}
		logp += math.Log(v)
	}
	return logp
}

// Reduce conditions every original factor on the variable=value pairs in
// ev, drops the evidence variables from the model, and re-indexes the
// surviving variables to a contiguous [0, k) range in their original
// relative order.
//
// It returns the reduced model and the old→new index map spec §6
// requires to re-project MAR/MAP output back onto the original,
// pre-evidence variable space (evidence variables are absent from the
// map; callers write them out directly from ev).
//
// Complexity: O(F·S) to condition factors (S = largest scope) plus
// O(V) to build the index map.
func (m *GraphicalModel) Reduce(ev Evidence) (*GraphicalModel, map[int]int) {
	old2new := make(map[int]int, len(m.vars))
	cardinalities := make([]int, 0, len(m.vars))
	for _, v := range m.vars {
		if _, observed := ev[v.Index]; observed {
			continue
		}
		old2new[v.Index] = len(cardinalities)
		cardinalities = append(cardinalities, v.States)
	}

	reducedFactors := make([]*factor.Factor, len(m.factors))
	for i, f := range m.factors {
		cur := f
		for v, val := range ev {
			cur = cur.Condition(v, val)
		}
		reducedFactors[i] = cur.Remap(old2new)
	}

	reduced, _ := NewGraphicalModel(cardinalities, reducedFactors)
	return reduced, old2new
}
