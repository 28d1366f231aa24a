package belief

import (
	"github.com/probgraph/ijgp/factor"
	"github.com/probgraph/ijgp/joingraph"
	"github.com/probgraph/ijgp/propagate"
)

// ExtractMarginals returns, for each of the nvar model variables, its
// sum-marginalized, normalized belief: the canonical cluster's full
// belief (potential times every incoming message) projected onto that
// one variable.
func ExtractMarginals(jg *joingraph.JoinGraph, eng *propagate.Engine, nvar int) ([]*factor.Factor, error) {
	out := make([]*factor.Factor, nvar)
	for v := 0; v < nvar; v++ {
		clusters := jg.ClustersForVar[v]
		if len(clusters) == 0 {
			return nil, beliefErrorf("ExtractMarginals", ErrVariableNotClustered)
		}
		bel, err := eng.Belief(clusters[0])
		if err != nil {
			return nil, beliefErrorf("ExtractMarginals", err)
		}
		if !containsVar(bel.Scope(), v) {
			return nil, beliefErrorf("ExtractMarginals", ErrDegenerateBelief)
		}
		mar, err := bel.Marginal([]int{v}, factor.Sum)
		if err != nil {
			return nil, beliefErrorf("ExtractMarginals", err)
		}
		mar.Normalize()
		out[v] = mar
	}
	return out, nil
}
