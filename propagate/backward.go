package propagate

import "context"

// Backward walks the join-graph's schedule in reverse, computing each
// edge's return message by eliminating the receiving cluster's
// non-separator variables from its belief (excluding the forward message
// that arrived along the same edge). Backward never touches LogZ.
//
// ctx is checked once per scheduled edge, mirroring Forward.
func (e *Engine) Backward(ctx context.Context) error {
	for idx := len(e.jg.Schedule) - 1; idx >= 0; idx-- {
		if err := ctx.Err(); err != nil {
			return err
		}
		edge := e.jg.Schedule[idx]
		a, b := edge[0], edge[1]
		sep := e.jg.Separator(a, b)
		bel, err := e.calcBeliefExcluding(b, a)
		if err != nil {
			return propagateErrorf("Backward", err)
		}
		elimVars := subtractScope(e.jg.Clusters[b].Scope, sep)
		msg, err := bel.Eliminate(elimVars, e.elimOp)
		if err != nil {
			return propagateErrorf("Backward", err)
		}
		mx := msg.Max()
		msg.Scale(mx)
		e.bwdMsgs[idx] = msg
	}
	return nil
}
