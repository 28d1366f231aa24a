package uaiformat

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/probgraph/ijgp/factor"
	"github.com/probgraph/ijgp/model"
	"github.com/probgraph/ijgp/solver"
)

// WriteSolution writes the result-file record for task: a "PR" block
// (log_z and its exponential) for Task PR or MAR, followed by a "MAR"
// block of per-variable distributions for Task MAR, or a "MAP" block of
// the best assignment for Task MAP.
//
// beliefs and bestConfig are indexed in the reduced (post-evidence)
// variable space solver.Solver produces them in; old2new re-projects
// each original variable index onto that space. Evidence variables are
// written as degenerate distributions (MAR) or their observed value
// (MAP), bypassing old2new/beliefs/bestConfig entirely.
//
// This takes the pieces a Solver exposes directly rather than a single
// bundled result type, since belief's extraction functions return plain
// factor/int slices rather than an aggregate struct.
func WriteSolution(w io.Writer, task solver.Task, logZ float64, beliefs []*factor.Factor, bestConfig []int, orig *model.GraphicalModel, ev model.Evidence, old2new map[int]int) error {
	bw := bufio.NewWriter(w)

	if task == solver.PR || task == solver.MAR {
		if _, err := fmt.Fprintf(bw, "PR\n%v (%v)\n", logZ, math.Exp(logZ)); err != nil {
			return uaiErrorf("WriteSolution", fmt.Errorf("%w: %v", ErrIoError, err))
		}
	}

	switch task {
	case solver.MAR:
		if err := writeMarginals(bw, orig, beliefs, ev, old2new); err != nil {
			return err
		}
	case solver.MAP:
		if err := writeMAP(bw, orig, bestConfig, ev, old2new); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return uaiErrorf("WriteSolution", fmt.Errorf("%w: %v", ErrIoError, err))
	}
	return nil
}

func writeMarginals(bw *bufio.Writer, orig *model.GraphicalModel, beliefs []*factor.Factor, ev model.Evidence, old2new map[int]int) error {
	nvar := orig.NVar()
	if _, err := fmt.Fprintf(bw, "MAR\n%d", nvar); err != nil {
		return uaiErrorf("WriteSolution", fmt.Errorf("%w: %v", ErrIoError, err))
	}
	full := make([]int, nvar)
	for ov := 0; ov < nvar; ov++ {
		states := orig.Var(ov).States
		var probs []float64
		if val, observed := ev[ov]; observed {
			probs = make([]float64, states)
			probs[val] = 1.0
		} else {
			r := old2new[ov]
			bel := beliefs[r]
			probs = make([]float64, states)
			for k := 0; k < states; k++ {
				full[r] = k
				probs[k] = bel.At(full)
			}
			full[r] = 0
		}
		if _, err := fmt.Fprintf(bw, " %d", states); err != nil {
			return uaiErrorf("WriteSolution", fmt.Errorf("%w: %v", ErrIoError, err))
		}
		for _, p := range probs {
			if _, err := fmt.Fprintf(bw, " %v", p); err != nil {
				return uaiErrorf("WriteSolution", fmt.Errorf("%w: %v", ErrIoError, err))
			}
		}
	}
	_, err := fmt.Fprint(bw, "\n")
	if err != nil {
		return uaiErrorf("WriteSolution", fmt.Errorf("%w: %v", ErrIoError, err))
	}
	return nil
}

func writeMAP(bw *bufio.Writer, orig *model.GraphicalModel, bestConfig []int, ev model.Evidence, old2new map[int]int) error {
	nvar := orig.NVar()
	if _, err := fmt.Fprintf(bw, "MAP\n%d", nvar); err != nil {
		return uaiErrorf("WriteSolution", fmt.Errorf("%w: %v", ErrIoError, err))
	}
	for ov := 0; ov < nvar; ov++ {
		var val int
		if v, observed := ev[ov]; observed {
			val = v
		} else {
			val = bestConfig[old2new[ov]]
		}
		if _, err := fmt.Fprintf(bw, " %d", val); err != nil {
			return uaiErrorf("WriteSolution", fmt.Errorf("%w: %v", ErrIoError, err))
		}
	}
	_, err := fmt.Fprint(bw, "\n")
	if err != nil {
		return uaiErrorf("WriteSolution", fmt.Errorf("%w: %v", ErrIoError, err))
	}
	return nil
}
