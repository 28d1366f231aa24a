package order_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/probgraph/ijgp/factor"
	"github.com/probgraph/ijgp/model"
	"github.com/probgraph/ijgp/order"
)

// chain4 builds a 4-variable chain X0-X1-X2-X3 (binary), so the primal
// graph is itself a tree: any reasonable order has induced width 1.
func chain4(t *testing.T) *model.GraphicalModel {
	t.Helper()
	mk := func(scope []int) *factor.Factor {
		card := make([]int, len(scope))
		n := 1
		for i := range card {
			card[i] = 2
			n *= 2
		}
		data := make([]float64, n)
		for i := range data {
			data[i] = 1
		}
		f, err := factor.NewFactorFromData(scope, card, data)
		require.NoError(t, err)
		return f
	}
	factors := []*factor.Factor{mk([]int{0, 1}), mk([]int{1, 2}), mk([]int{2, 3})}
	m, err := model.NewGraphicalModel([]int{2, 2, 2, 2}, factors)
	require.NoError(t, err)
	return m
}

func assertPermutation(t *testing.T, ord []int, n int) {
	t.Helper()
	require.Len(t, ord, n)
	seen := make([]bool, n)
	for _, v := range ord {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, n)
		require.False(t, seen[v], "order %v is not a permutation of [0,%d)", ord, n)
		seen[v] = true
	}
}

func TestBuildMinFillProducesValidOrder(t *testing.T) {
	m := chain4(t)
	ord, parents, err := order.Build(m, order.MinFill)
	require.NoError(t, err)
	assertPermutation(t, ord, m.NVar())
	require.Len(t, parents, m.NVar())
	require.NoError(t, order.Validate(m, ord))
}

func TestBuildMinDegreeProducesValidOrder(t *testing.T) {
	m := chain4(t)
	ord, _, err := order.Build(m, order.MinDegree)
	require.NoError(t, err)
	assertPermutation(t, ord, m.NVar())
}

func TestBuildLexicographicIsIdentity(t *testing.T) {
	m := chain4(t)
	ord, _, err := order.Build(m, order.Lexicographic)
	require.NoError(t, err)
	for i, v := range ord {
		require.Equal(t, i, v, "Lexicographic order = %v, want identity", ord)
	}
}

func TestBuildRandomIsDeterministicForFixedSeed(t *testing.T) {
	m := chain4(t)
	a, _, err := order.Build(m, order.Random, order.WithSeed(7))
	require.NoError(t, err)
	b, _, err := order.Build(m, order.Random, order.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, a, b, "Random with fixed seed must be deterministic")
	assertPermutation(t, a, m.NVar())
}

func TestInducedWidthOfChainIsOne(t *testing.T) {
	m := chain4(t)
	ord, _, err := order.Build(m, order.MinFill)
	require.NoError(t, err)
	require.Equal(t, 1, order.InducedWidth(m, ord))
}

func TestPseudoTreeHasExactlyOneRootPerComponent(t *testing.T) {
	m := chain4(t)
	ord, _, err := order.Build(m, order.MinFill)
	require.NoError(t, err)
	parents := order.PseudoTree(m, ord)
	roots := 0
	for _, p := range parents {
		if p == -1 {
			roots++
		}
	}
	require.Equal(t, 1, roots, "PseudoTree roots for a connected model")
}

func TestValidateRejectsShortOrder(t *testing.T) {
	m := chain4(t)
	require.ErrorIs(t, order.Validate(m, []int{0, 1, 2}), order.ErrInvalidOrder)
}

func TestValidateRejectsDuplicate(t *testing.T) {
	m := chain4(t)
	require.ErrorIs(t, order.Validate(m, []int{0, 1, 1, 3}), order.ErrInvalidOrder)
}
