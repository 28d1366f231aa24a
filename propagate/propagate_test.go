package propagate_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/probgraph/ijgp/factor"
	"github.com/probgraph/ijgp/joingraph"
	"github.com/probgraph/ijgp/model"
	"github.com/probgraph/ijgp/propagate"
)

// s1Model builds spec scenario S1: two binary variables X(0), Y(1) with
// φ(X,Y) = [[0.1,0.9],[0.4,0.6]].
func s1Model(t *testing.T) *model.GraphicalModel {
	t.Helper()
	f, err := factor.NewFactorFromData([]int{0, 1}, []int{2, 2}, []float64{0.1, 0.9, 0.4, 0.6})
	require.NoError(t, err)
	m, err := model.NewGraphicalModel([]int{2, 2}, []*factor.Factor{f})
	require.NoError(t, err)
	return m
}

func TestForwardBackwardMatchesS1(t *testing.T) {
	m := s1Model(t)
	jg, err := joingraph.Build(m, []int{0, 1}, 2)
	require.NoError(t, err)
	eng := propagate.NewEngine(jg, factor.Sum)

	require.NoError(t, eng.Forward(context.Background()))
	wantLogZ := math.Log(2.0)
	require.InDelta(t, wantLogZ, eng.LogZ, 1e-9)

	require.NoError(t, eng.Backward(context.Background()))

	// belief[X]: cluster 0 (scope {0,1}) potential times incoming
	// backward message, marginalized onto X.
	belX, err := eng.Belief(0)
	require.NoError(t, err)
	marX, err := belX.Marginal([]int{0}, factor.Sum)
	require.NoError(t, err)
	marX.Normalize()
	require.InDelta(t, 0.5, marX.At([]int{0}), 1e-9, "belief[X=0]")
	require.InDelta(t, 0.5, marX.At([]int{1}), 1e-9, "belief[X=1]")

	belY, err := eng.Belief(1)
	require.NoError(t, err)
	marY, err := belY.Marginal([]int{1}, factor.Sum)
	require.NoError(t, err)
	marY.Normalize()
	require.InDelta(t, 0.25, marY.At([]int{0, 0}), 1e-9, "belief[Y=0]")
	require.InDelta(t, 0.75, marY.At([]int{0, 1}), 1e-9, "belief[Y=1]")
}

func TestForwardRespectsCancellation(t *testing.T) {
	m := s1Model(t)
	jg, err := joingraph.Build(m, []int{0, 1}, 2)
	require.NoError(t, err)
	eng := propagate.NewEngine(jg, factor.Sum)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, eng.Forward(ctx), "expected context cancellation error")
}
