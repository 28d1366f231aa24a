package solver

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/probgraph/ijgp/factor"
	"github.com/probgraph/ijgp/model"
	"github.com/probgraph/ijgp/order"
)

func mustFactor(t *testing.T, scope, card []int, data []float64) *factor.Factor {
	t.Helper()
	f, err := factor.NewFactorFromData(scope, card, data)
	require.NoError(t, err)
	return f
}

// TestSolverS1TwoVariableMarginals reproduces scenario S1.
func TestSolverS1TwoVariableMarginals(t *testing.T) {
	phi := mustFactor(t, []int{0, 1}, []int{2, 2}, []float64{0.1, 0.9, 0.4, 0.6})
	m, err := model.NewGraphicalModel([]int{2, 2}, []*factor.Factor{phi})
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.IBound = 2
	cfg.NumIter = 1
	cfg.Task = MAR

	s, err := New(m, cfg, []int{0, 1})
	require.NoError(t, err)
	require.NoError(t, s.Init())
	require.NoError(t, s.Run(context.Background()))

	require.InDelta(t, math.Log(2.0), s.LogZ(), 1e-9)
	beliefs := s.Beliefs()
	bx, err := s.Belief([]int{0})
	require.NoError(t, err)
	require.InDelta(t, 0.5, bx.At([]int{0}), 1e-9)
	require.InDelta(t, 0.5, bx.At([]int{1}), 1e-9)
	by := beliefs[1]
	require.InDelta(t, 0.25, by.At([]int{0, 0}), 1e-9)
	require.InDelta(t, 0.75, by.At([]int{0, 1}), 1e-9)
}

func chainModel(t *testing.T, pairwise []float64) (*model.GraphicalModel, *factor.Factor, *factor.Factor) {
	t.Helper()
	fAB := mustFactor(t, []int{0, 1}, []int{2, 2}, pairwise)
	fBC := mustFactor(t, []int{1, 2}, []int{2, 2}, pairwise)
	m, err := model.NewGraphicalModel([]int{2, 2, 2}, []*factor.Factor{fAB, fBC})
	require.NoError(t, err)
	return m, fAB, fBC
}

// TestSolverS2UniformChainPR reproduces scenario S2's PR task.
func TestSolverS2UniformChainPR(t *testing.T) {
	m, _, _ := chainModel(t, []float64{1, 1, 1, 1})

	cfg := DefaultConfig()
	cfg.IBound = 2
	cfg.NumIter = 5
	cfg.Task = PR

	s, err := New(m, cfg, nil)
	require.NoError(t, err)
	require.NoError(t, s.Init())
	require.NoError(t, s.Run(context.Background()))
	require.InDelta(t, math.Log(8), s.LogZ(), 1e-9)
}

// TestSolverS2UniformChainMAR reproduces scenario S2's MAR task.
func TestSolverS2UniformChainMAR(t *testing.T) {
	m, _, _ := chainModel(t, []float64{1, 1, 1, 1})

	cfg := DefaultConfig()
	cfg.IBound = 2
	cfg.NumIter = 5
	cfg.Task = MAR

	s, err := New(m, cfg, nil)
	require.NoError(t, err)
	require.NoError(t, s.Init())
	require.NoError(t, s.Run(context.Background()))

	for v, bel := range s.Beliefs() {
		full := make([]int, m.NVar())
		full[v] = 0
		p0 := bel.At(full)
		full[v] = 1
		p1 := bel.At(full)
		require.InDeltaf(t, 0.5, p0, 1e-9, "belief[%d][0]", v)
		require.InDeltaf(t, 0.5, p1, 1e-9, "belief[%d][1]", v)
	}
}

// TestSolverS3MAPChainDeterministicTieBreak reproduces scenario S3.
func TestSolverS3MAPChainDeterministicTieBreak(t *testing.T) {
	m, _, _ := chainModel(t, []float64{0.9, 0.1, 0.1, 0.9})

	cfg := DefaultConfig()
	cfg.IBound = 2
	cfg.NumIter = 5
	cfg.Task = MAP

	s, err := New(m, cfg, nil)
	require.NoError(t, err)
	require.NoError(t, s.Init())
	require.NoError(t, s.Run(context.Background()))

	cfg1 := s.BestConfig()
	wantLogP := 2 * math.Log(0.9) // two pairwise factors in the A-B-C chain
	gotLogP := m.LogP(cfg1)
	require.InDelta(t, wantLogP, gotLogP, 1e-9)
	require.True(t, cfg1[0] == cfg1[1] && cfg1[1] == cfg1[2], "best_config = %v, want all-equal", cfg1)

	s2, err := New(m, cfg, nil)
	require.NoError(t, err)
	require.NoError(t, s2.Init())
	require.NoError(t, s2.Run(context.Background()))
	cfg2 := s2.BestConfig()
	require.Equal(t, cfg1, cfg2, "MAP extraction is non-deterministic")
}

// TestSolverS5DeterministicEqualityMAP reproduces scenario S5.
func TestSolverS5DeterministicEqualityMAP(t *testing.T) {
	eq := mustFactor(t, []int{0, 1}, []int{2, 2}, []float64{1, 0, 0, 1})
	unary := mustFactor(t, []int{0}, []int{2}, []float64{0.3, 0.7})
	m, err := model.NewGraphicalModel([]int{2, 2}, []*factor.Factor{eq, unary})
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.IBound = 2
	cfg.NumIter = 3
	cfg.Task = MAP

	s, err := New(m, cfg, nil)
	require.NoError(t, err)
	require.NoError(t, s.Init())
	require.NoError(t, s.Run(context.Background()))

	best := s.BestConfig()
	require.Equal(t, []int{1, 1}, best)
	require.InDelta(t, math.Log(0.7), m.LogP(best), 1e-9)
}

// TestSolverS6ExactnessAtFullIBound reproduces scenario S6: with iBound
// equal to the number of variables, propagation is exact in one pass and
// must match brute-force enumeration.
func TestSolverS6ExactnessAtFullIBound(t *testing.T) {
	m, _, _ := chainModel(t, []float64{0.9, 0.1, 0.1, 0.9})

	var brute float64
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			for c := 0; c < 2; c++ {
				brute += math.Exp(m.LogP([]int{a, b, c}))
			}
		}
	}
	wantLogZ := math.Log(brute)

	cfg := DefaultConfig()
	cfg.IBound = m.NVar()
	cfg.NumIter = 1
	cfg.Task = MAR

	s, err := New(m, cfg, nil)
	require.NoError(t, err)
	require.NoError(t, s.Init())
	require.NoError(t, s.Run(context.Background()))

	require.InDelta(t, wantLogZ, s.LogZ(), 1e-9)
}

func TestParsePropertiesDefaultsAndOverrides(t *testing.T) {
	cfg, err := ParseProperties("iBound=6,Order=MinDegree,Iter=20,Task=MAP,Debug=1")
	require.NoError(t, err)
	require.Equal(t, 6, cfg.IBound)
	require.Equal(t, order.MinDegree, cfg.Order)
	require.Equal(t, 20, cfg.NumIter)
	require.Equal(t, MAP, cfg.Task)
	require.True(t, cfg.Debug)
}

func TestParsePropertiesEmptyStringIsDefault(t *testing.T) {
	cfg, err := ParseProperties("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestParsePropertiesRejectsUnknownKey(t *testing.T) {
	_, err := ParseProperties("frobnicate=1")
	require.Error(t, err, "expected error for unknown key")
}

func TestBeliefRejectsJointQuery(t *testing.T) {
	m, _, _ := chainModel(t, []float64{1, 1, 1, 1})
	cfg := DefaultConfig()
	cfg.Task = MAR
	s, err := New(m, cfg, nil)
	require.NoError(t, err)
	require.NoError(t, s.Init())
	require.NoError(t, s.Run(context.Background()))
	_, err = s.Belief([]int{0, 1})
	require.Error(t, err, "expected ErrNotSupported for a joint query")
}
