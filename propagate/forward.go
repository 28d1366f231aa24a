package propagate

import (
	"context"
	"math"

	"github.com/probgraph/ijgp/factor"
)

// Forward walks the join-graph's schedule in order, computing each
// outgoing message by eliminating the sending cluster's non-separator
// variables from its belief (excluding the message flowing back along
// the same edge), rescaling by the message's max for numerical
// stability, and folding log(max) into LogZ. After the schedule, LogZ is
// completed with the root clusters' contribution (log(sum) per root for
// sum-product, log(max) for max-product).
//
// ctx is checked once per scheduled edge; a canceled context aborts the
// pass with ctx.Err(), leaving Forward/LogZ in a partially updated state
// the caller must discard.
func (e *Engine) Forward(ctx context.Context) error {
	e.LogZ = 0
	for idx, edge := range e.jg.Schedule {
		if err := ctx.Err(); err != nil {
			return err
		}
		a, b := edge[0], edge[1]
		sep := e.jg.Separator(a, b)
		bel, err := e.calcBeliefExcluding(a, b)
		if err != nil {
			return propagateErrorf("Forward", err)
		}
		elimVars := subtractScope(e.jg.Clusters[a].Scope, sep)
		msg, err := bel.Eliminate(elimVars, e.elimOp)
		if err != nil {
			return propagateErrorf("Forward", err)
		}
		mx := msg.Max()
		msg.Scale(mx)
		e.fwdMsgs[idx] = msg
		e.LogZ += math.Log(mx)
	}

	var rootContribution float64
	for _, r := range e.jg.Roots {
		bel, err := e.calcBeliefExcluding(r, -1)
		if err != nil {
			return propagateErrorf("Forward", err)
		}
		if e.elimOp == factor.Sum {
			rootContribution += math.Log(bel.Sum())
		} else {
			rootContribution += math.Log(bel.Max())
		}
	}
	e.LogZ += rootContribution
	return nil
}
