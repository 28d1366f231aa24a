package solver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"time"

	"github.com/probgraph/ijgp/belief"
	"github.com/probgraph/ijgp/factor"
	"github.com/probgraph/ijgp/joingraph"
	"github.com/probgraph/ijgp/model"
	"github.com/probgraph/ijgp/order"
	"github.com/probgraph/ijgp/propagate"
)

// Solver drives iterative join-graph propagation over one GraphicalModel:
// it resolves an order and pseudo-tree if the caller did not supply one,
// builds the join-graph, then repeatedly runs Forward/Backward passes
// through a propagate.Engine, extracting beliefs or a MAP assignment
// after each pass.
type Solver struct {
	model  *model.GraphicalModel
	cfg    Config
	logger *log.Logger

	order  []int
	jg     *joingraph.JoinGraph
	engine *propagate.Engine

	beliefs    []*factor.Factor
	bestConfig []int
	numIter    int
}

// New allocates a Solver over m with cfg. ord may be nil, in which case
// Init resolves one via order.Build using cfg.Order.
func New(m *model.GraphicalModel, cfg Config, ord []int) (*Solver, error) {
	if cfg.NumIter < 1 {
		return nil, solverErrorf("New", fmt.Errorf("%w: NumIter must be >= 1", ErrInvalidConfig))
	}
	if cfg.Task != PR && cfg.Task != MAR && cfg.Task != MAP {
		return nil, solverErrorf("New", ErrUnknownTask)
	}
	s := &Solver{model: m, cfg: cfg, order: ord, logger: log.New(io.Discard, "", 0)}
	if cfg.Debug {
		s.logger = log.New(log.Writer(), "ijgp: ", log.LstdFlags)
	}
	return s, nil
}

// Init resolves the elimination order (if not supplied), builds the
// join-graph, clamps NumIter to 1 when the configured i-bound already
// reaches the induced width (propagation is then exact in a single
// pass), and constructs the propagation engine.
func (s *Solver) Init() error {
	if s.order == nil {
		ord, _, err := order.Build(s.model, s.cfg.Order)
		if err != nil {
			return solverErrorf("Init", err)
		}
		s.order = ord
	} else if err := order.Validate(s.model, s.order); err != nil {
		return solverErrorf("Init", err)
	}

	jg, err := joingraph.Build(s.model, s.order, s.cfg.IBound)
	if err != nil {
		return solverErrorf("Init", err)
	}
	s.jg = jg
	if jg.Warning != "" {
		s.logger.Printf("warning: %s", jg.Warning)
	}

	width := order.InducedWidth(s.model, s.order)
	s.numIter = s.cfg.NumIter
	if s.cfg.IBound >= width {
		s.numIter = 1
		s.logger.Printf("i-bound %d covers induced width %d; clamping to a single exact pass", s.cfg.IBound, width)
	}

	op := factor.Sum
	if s.cfg.Task == MAP {
		op = factor.Max
	}
	s.engine = propagate.NewEngine(jg, op)
	return nil
}

// Run executes up to numIter forward/backward passes, extracting beliefs
// (or a MAP assignment) after each, stopping early once the change in
// LogZ between consecutive passes falls under cfg.StopObj or the
// wall-clock budget cfg.StopTime elapses. At least one pass always runs.
func (s *Solver) Run(ctx context.Context) error {
	if s.engine == nil {
		return solverErrorf("Run", errors.New("solver not initialized: call Init first"))
	}
	start := time.Now()
	prevLogZ := math.Inf(-1)

	for iter := 0; iter < s.numIter; iter++ {
		if err := s.engine.Forward(ctx); err != nil {
			return solverErrorf("Run", err)
		}
		if err := s.engine.Backward(ctx); err != nil {
			return solverErrorf("Run", err)
		}

		if err := s.extract(); err != nil {
			return solverErrorf("Run", err)
		}

		s.logger.Printf("iter=%d logZ=%.6f", iter, s.engine.LogZ)

		delta := math.Abs(s.engine.LogZ - prevLogZ)
		prevLogZ = s.engine.LogZ
		if s.cfg.StopObj > 0 && delta < s.cfg.StopObj {
			s.logger.Printf("stopping early: |ΔlogZ|=%.6g < StopObj=%.6g", delta, s.cfg.StopObj)
			break
		}
		if s.cfg.StopTime > 0 && time.Since(start).Seconds() >= s.cfg.StopTime {
			s.logger.Printf("stopping early: wall-clock budget %.3gs exhausted", s.cfg.StopTime)
			break
		}
	}
	return nil
}

func (s *Solver) extract() error {
	switch s.cfg.Task {
	case PR:
		return nil
	case MAR:
		mar, err := belief.ExtractMarginals(s.jg, s.engine, s.model.NVar())
		if err != nil {
			return err
		}
		s.beliefs = mar
		return nil
	case MAP:
		cfg, err := belief.ExtractMAP(s.model, s.jg, s.engine, s.order)
		if err != nil {
			return err
		}
		s.bestConfig = cfg
		return nil
	default:
		return ErrUnknownTask
	}
}

// LogZ returns the natural-log partition function (or, for Task == MAP,
// the log value of the best assignment found) from the most recent pass.
func (s *Solver) LogZ() float64 {
	return s.engine.LogZ
}

// Beliefs returns the per-variable normalized marginals computed by the
// most recent pass. Valid only when cfg.Task == MAR.
func (s *Solver) Beliefs() []*factor.Factor {
	return s.beliefs
}

// BestConfig returns the joint assignment extracted by the most recent
// pass. Valid only when cfg.Task == MAP.
func (s *Solver) BestConfig() []int {
	return s.bestConfig
}

// Belief returns the joint marginal over vs. Only single-variable queries
// are serviced; anything else returns ErrNotSupported, since this solver
// never materializes joint beliefs over unclustered variable sets.
func (s *Solver) Belief(vs []int) (*factor.Factor, error) {
	if len(vs) != 1 {
		return nil, solverErrorf("Belief", ErrNotSupported)
	}
	if s.beliefs == nil {
		return nil, solverErrorf("Belief", fmt.Errorf("%w: no marginals computed (Task != MAR, or Run not called)", ErrNotSupported))
	}
	return s.beliefs[vs[0]], nil
}

// UpperBound and LowerBound are never serviced: this solver has no
// anytime bounding scheme on the partition function.
func (s *Solver) UpperBound() (float64, error) {
	return 0, solverErrorf("UpperBound", ErrNotSupported)
}

func (s *Solver) LowerBound() (float64, error) {
	return 0, solverErrorf("LowerBound", ErrNotSupported)
}
