package belief

import (
	"errors"
	"fmt"
)

// ErrVariableNotClustered indicates a model variable was never assigned
// to any join-graph cluster — it does not appear in any factor's scope,
// so no bucket was ever created for it.
var ErrVariableNotClustered = errors.New("belief: variable is not covered by any join-graph cluster")

// ErrDegenerateBelief indicates a cluster's belief does not carry the
// variable extraction expected it to — e.g. back-substitution
// conditioned a canonical cluster's incoming belief down to a scope
// that no longer contains the variable being decoded. A join-graph
// built correctly never produces this; it is a defensive guard against
// an inconsistent join-graph rather than an expected runtime outcome.
var ErrDegenerateBelief = errors.New("belief: cluster belief does not cover the queried variable")

func beliefErrorf(fn string, err error) error {
	return fmt.Errorf("belief.%s: %w", fn, err)
}

func containsVar(scope []int, v int) bool {
	for _, s := range scope {
		if s == v {
			return true
		}
	}
	return false
}
