package belief

import (
	"github.com/probgraph/ijgp/joingraph"
	"github.com/probgraph/ijgp/model"
	"github.com/probgraph/ijgp/propagate"
)

// ExtractMAP back-substitutes a most-probable (or max-product) joint
// assignment in reverse elimination order: for each variable, in order
// last-eliminated-first, its canonical cluster's incoming belief is
// conditioned on the values already fixed for every later-order variable
// still in its scope, then argmax'd — with ties broken toward the lowest
// value index.
func ExtractMAP(m *model.GraphicalModel, jg *joingraph.JoinGraph, eng *propagate.Engine, ord []int) ([]int, error) {
	best := make([]int, m.NVar())
	for i := len(ord) - 1; i >= 0; i-- {
		vx := ord[i]
		clusters := jg.ClustersForVar[vx]
		if len(clusters) == 0 {
			return nil, beliefErrorf("ExtractMAP", ErrVariableNotClustered)
		}
		bel, err := eng.Incoming(clusters[0])
		if err != nil {
			return nil, beliefErrorf("ExtractMAP", err)
		}
		for j := i + 1; j < len(ord); j++ {
			vy := ord[j]
			if containsVar(bel.Scope(), vy) {
				bel = bel.Condition(vy, best[vy])
			}
		}
		if scope := bel.Scope(); len(scope) != 1 || scope[0] != vx {
			return nil, beliefErrorf("ExtractMAP", ErrDegenerateBelief)
		}
		best[vx] = bel.ArgMax()[0]
	}
	return best, nil
}

// LogP returns log P(config) under m's original factors; a thin
// delegate so callers that only import belief still have a way to score
// the assignment ExtractMAP produced.
func LogP(m *model.GraphicalModel, config []int) float64 {
	return m.LogP(config)
}
