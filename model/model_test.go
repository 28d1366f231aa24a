package model_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/probgraph/ijgp/factor"
	"github.com/probgraph/ijgp/model"
)

// chainModel builds a 3-variable binary chain X0-X1-X2 with a unary prior
// on X0 and pairwise factors X0X1, X1X2, mirroring spec §8's S1-style
// construction.
func chainModel(t *testing.T) *model.GraphicalModel {
	t.Helper()
	prior, err := factor.NewFactorFromData([]int{0}, []int{2}, []float64{0.4, 0.6})
	require.NoError(t, err)
	f01, err := factor.NewFactorFromData([]int{0, 1}, []int{2, 2}, []float64{0.1, 0.9, 0.4, 0.6})
	require.NoError(t, err)
	f12, err := factor.NewFactorFromData([]int{1, 2}, []int{2, 2}, []float64{0.7, 0.3, 0.2, 0.8})
	require.NoError(t, err)
	m, err := model.NewGraphicalModel([]int{2, 2, 2}, []*factor.Factor{prior, f01, f12})
	require.NoError(t, err)
	return m
}

func TestNewGraphicalModelRejectsUnknownVariable(t *testing.T) {
	bad, err := factor.NewFactorFromData([]int{5}, []int{2}, []float64{1, 2})
	require.NoError(t, err)
	_, err = model.NewGraphicalModel([]int{2}, []*factor.Factor{bad})
	require.ErrorIs(t, err, model.ErrFactorScope)
}

func TestNewGraphicalModelRejectsCardinalityMismatch(t *testing.T) {
	bad, err := factor.NewFactorFromData([]int{0}, []int{3}, []float64{1, 2, 3})
	require.NoError(t, err)
	_, err = model.NewGraphicalModel([]int{2}, []*factor.Factor{bad})
	require.ErrorIs(t, err, model.ErrFactorScope)
}

func TestFactorsWith(t *testing.T) {
	m := chainModel(t)
	require.Equal(t, []int{1, 2}, m.FactorsWith(1)) // f01 and f12 both mention X1
}

func TestFactorsWithSingleFactorVariable(t *testing.T) {
	m := chainModel(t)
	require.Equal(t, []int{2}, m.FactorsWith(2))
}

func TestLogP(t *testing.T) {
	m := chainModel(t)
	// P(X0=0,X1=1,X2=0) = 0.4 * 0.9 * 0.2
	got := m.LogP([]int{0, 1, 0})
	want := math.Log(0.4 * 0.9 * 0.2)
	require.InDelta(t, want, got, 1e-9)
}

func TestLogPZeroIsNegInf(t *testing.T) {
	zero, err := factor.NewFactorFromData([]int{0}, []int{2}, []float64{0, 1})
	require.NoError(t, err)
	zm, err := model.NewGraphicalModel([]int{2}, []*factor.Factor{zero})
	require.NoError(t, err)
	got := zm.LogP([]int{0})
	require.True(t, math.IsInf(got, -1), "LogP at zero entry = %v, want -Inf", got)
}

func TestReduceDropsEvidenceVariableAndReindexes(t *testing.T) {
	m := chainModel(t)
	reduced, old2new := m.Reduce(model.Evidence{1: 1}) // X1=1

	require.Equal(t, 2, reduced.NVar())
	require.Equal(t, map[int]int{0: 0, 2: 1}, old2new)

	// f01 conditioned on X1=1 becomes a unary factor over new-index 0:
	// [0.9, 0.6]. f12 conditioned on X1=1 becomes unary over new-index 1:
	// [0.2, 0.8]. The prior is untouched: [0.4, 0.6].
	got := reduced.LogP([]int{0, 0})
	want := math.Log(0.4) + math.Log(0.9) + math.Log(0.2)
	require.InDelta(t, want, got, 1e-9)
}

func TestReduceWithNoEvidenceIsIdentityShaped(t *testing.T) {
	m := chainModel(t)
	reduced, old2new := m.Reduce(model.Evidence{})
	require.Equal(t, m.NVar(), reduced.NVar())
	for i := 0; i < m.NVar(); i++ {
		require.Equal(t, i, old2new[i])
	}
}
