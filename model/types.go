package model

import (
	"errors"
	"fmt"

	"github.com/probgraph/ijgp/factor"
)

// Sentinel errors for the model package.
var (
	// ErrVariableNotFound indicates an operation referenced a variable
	// index outside [0, NVar()).
	ErrVariableNotFound = errors.New("model: variable not found")

	// ErrFactorScope indicates a factor's scope referenced an unknown
	// variable, or its table size disagreed with the declared
	// cardinalities of its scope.
	ErrFactorScope = errors.New("model: invalid factor scope")
)

func modelErrorf(method string, err error) error {
	return fmt.Errorf("model.%s: %w", method, err)
}

// Variable identifies a finite-domain variable by its index within a
// GraphicalModel and its cardinality (number of states).
type Variable struct {
	Index  int
	States int
}

// GraphicalModel is the read-only input handle spec §6 describes: a fixed
// set of variables and a fixed collection of non-negative factors over
// them. It is immutable once constructed; Reduce returns a new instance
// rather than mutating the receiver.
type GraphicalModel struct {
	vars        []Variable
	factors     []*factor.Factor
	factorsWith map[int][]int
}

// NewGraphicalModel builds a GraphicalModel from per-variable cardinalities
// and a list of original factors. Every factor's scope must reference only
// variables in [0, len(cardinalities)) and agree with their declared
// cardinalities.
// Complexity: O(F·S) where F is the factor count and S the largest scope.
func NewGraphicalModel(cardinalities []int, factors []*factor.Factor) (*GraphicalModel, error) {
	vars := make([]Variable, len(cardinalities))
	for i, c := range cardinalities {
		vars[i] = Variable{Index: i, States: c}
	}

	factorsWith := make(map[int][]int, len(cardinalities))
	for fi, f := range factors {
		for _, v := range f.Scope() {
			if v < 0 || v >= len(vars) {
				return nil, modelErrorf("NewGraphicalModel", ErrFactorScope)
			}
			if c, ok := f.Cardinality(v); ok && c != vars[v].States {
				return nil, modelErrorf("NewGraphicalModel", ErrFactorScope)
			}
			factorsWith[v] = append(factorsWith[v], fi)
		}
	}

	return &GraphicalModel{vars: vars, factors: factors, factorsWith: factorsWith}, nil
}

// NVar returns the number of variables in the model.
func (m *GraphicalModel) NVar() int {
	return len(m.vars)
}

// Var returns the i-th variable's descriptor.
func (m *GraphicalModel) Var(i int) Variable {
	return m.vars[i]
}

// NumFactors returns the number of original factors.
func (m *GraphicalModel) NumFactors() int {
	return len(m.factors)
}

// Factor returns the i-th original factor (not a copy; callers must not
// mutate it).
func (m *GraphicalModel) Factor(i int) *factor.Factor {
	return m.factors[i]
}

// FactorsWith returns the indices of original factors whose scope contains
// v, in the order they were supplied to NewGraphicalModel.
func (m *GraphicalModel) FactorsWith(v int) []int {
	out := make([]int, len(m.factorsWith[v]))
	copy(out, m.factorsWith[v])
	return out
}
