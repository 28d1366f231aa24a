package propagate

import (
	"fmt"

	"github.com/probgraph/ijgp/factor"
	"github.com/probgraph/ijgp/joingraph"
)

// Engine holds the mutable message state for one join-graph: one forward
// and one backward factor slot per scheduled edge, plus the running log
// partition function (or MAP value) accumulated by the most recent
// Forward call.
type Engine struct {
	jg     *joingraph.JoinGraph
	elimOp factor.ElimOp

	fwdMsgs  []*factor.Factor
	bwdMsgs  []*factor.Factor
	LogZ     float64
}

func propagateErrorf(fn string, err error) error {
	return fmt.Errorf("propagate.%s: %w", fn, err)
}

// NewEngine allocates an Engine over jg with every message slot
// initialized to the multiplicative identity, ready for an initial
// Forward/Backward pass. op selects sum-product (factor.Sum, for
// PR/MAR) or max-product (factor.Max, for MAP) elimination.
func NewEngine(jg *joingraph.JoinGraph, op factor.ElimOp) *Engine {
	n := len(jg.Schedule)
	fwd := make([]*factor.Factor, n)
	bwd := make([]*factor.Factor, n)
	for i := 0; i < n; i++ {
		fwd[i] = factor.NewConstant(1)
		bwd[i] = factor.NewConstant(1)
	}
	return &Engine{jg: jg, elimOp: op, fwdMsgs: fwd, bwdMsgs: bwd}
}

// Belief returns cluster a's full belief: its potential times every
// incoming forward message and every incoming backward message. Exported
// for belief.ExtractMarginals, which has no other way to read a
// cluster's combined potential.
func (e *Engine) Belief(a int) (*factor.Factor, error) {
	return e.calcBeliefExcluding(a, -1)
}

// calcBeliefExcluding returns cluster a's belief omitting the message to
// or from cluster exclude along their shared edge — used while computing
// the outgoing message on that same edge, to avoid it feeding back into
// itself.
func (e *Engine) calcBeliefExcluding(a, exclude int) (*factor.Factor, error) {
	bel := e.jg.Clusters[a].Potential
	for _, p := range e.jg.In[a] {
		if p == exclude {
			continue
		}
		idx, ok := e.jg.EdgeIndex(p, a)
		if !ok {
			return nil, propagateErrorf("calcBeliefExcluding", fmt.Errorf("missing edge index for (%d,%d)", p, a))
		}
		next, err := bel.Product(e.fwdMsgs[idx])
		if err != nil {
			return nil, propagateErrorf("calcBeliefExcluding", err)
		}
		bel = next
	}
	for _, p := range e.jg.Out[a] {
		if p == exclude {
			continue
		}
		idx, ok := e.jg.EdgeIndex(a, p)
		if !ok {
			return nil, propagateErrorf("calcBeliefExcluding", fmt.Errorf("missing edge index for (%d,%d)", a, p))
		}
		next, err := bel.Product(e.bwdMsgs[idx])
		if err != nil {
			return nil, propagateErrorf("calcBeliefExcluding", err)
		}
		bel = next
	}
	return bel, nil
}

// Incoming returns cluster a's belief from its potential and incoming
// forward messages only, excluding any backward contribution — used by
// belief.ExtractMAP, which walks top-down and has not yet produced a
// backward message for a's descendants.
func (e *Engine) Incoming(a int) (*factor.Factor, error) {
	bel := e.jg.Clusters[a].Potential
	for _, p := range e.jg.In[a] {
		idx, ok := e.jg.EdgeIndex(p, a)
		if !ok {
			return nil, propagateErrorf("incoming", fmt.Errorf("missing edge index for (%d,%d)", p, a))
		}
		next, err := bel.Product(e.fwdMsgs[idx])
		if err != nil {
			return nil, propagateErrorf("incoming", err)
		}
		bel = next
	}
	return bel, nil
}

// subtractScope returns a minus b, preserving a's order.
func subtractScope(a, b []int) []int {
	excl := make(map[int]struct{}, len(b))
	for _, v := range b {
		excl[v] = struct{}{}
	}
	out := make([]int, 0, len(a))
	for _, v := range a {
		if _, ok := excl[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}
