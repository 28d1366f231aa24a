package order

import (
	"errors"
	"fmt"

	"github.com/probgraph/ijgp/model"
)

// ErrInvalidOrder indicates a supplied elimination order does not cover
// every variable of the model exactly once.
var ErrInvalidOrder = errors.New("order: elimination order does not cover every model variable exactly once")

func orderErrorf(fn string, err error) error {
	return fmt.Errorf("order.%s: %w", fn, err)
}

// Method selects the heuristic Build uses to choose an elimination order.
type Method int

const (
	// MinFill greedily eliminates the variable that adds the fewest
	// fill-in edges to the residual primal graph. This is the default.
	MinFill Method = iota
	// MinDegree greedily eliminates the variable of lowest current degree
	// in the residual primal graph.
	MinDegree
	// Lexicographic eliminates variables in increasing index order.
	Lexicographic
	// Random eliminates variables in a pseudo-random order, seeded for
	// reproducibility (see WithSeed).
	Random
)

// String renders the method for logging and property-string round-trips.
func (mth Method) String() string {
	switch mth {
	case MinFill:
		return "MinFill"
	case MinDegree:
		return "MinDegree"
	case Lexicographic:
		return "Lexicographic"
	case Random:
		return "Random"
	default:
		return "Unknown"
	}
}

// Options configures Build. Build starts from a fixed default seed of 1
// for Random (not the zero value's 0), so runs without WithSeed are
// still deterministic.
type Options struct {
	Seed int64
}

// Option is a functional option for Build.
type Option func(*Options)

// WithSeed fixes the pseudo-random source used by Method Random. Ignored
// by every other method.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

func defaultOptions() Options {
	return Options{Seed: 1}
}

// Validate reports ErrInvalidOrder unless ord is a permutation of
// [0, m.NVar()).
func Validate(m *model.GraphicalModel, ord []int) error {
	n := m.NVar()
	if len(ord) != n {
		return orderErrorf("Validate", ErrInvalidOrder)
	}
	seen := make([]bool, n)
	for _, v := range ord {
		if v < 0 || v >= n || seen[v] {
			return orderErrorf("Validate", ErrInvalidOrder)
		}
		seen[v] = true
	}
	return nil
}
