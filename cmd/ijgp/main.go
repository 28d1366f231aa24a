// Command ijgp runs iterative join-graph propagation over a UAI-format
// graphical model and writes the resulting marginals, partition function
// estimate, or MAP assignment to a result file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/probgraph/ijgp/model"
	"github.com/probgraph/ijgp/order"
	"github.com/probgraph/ijgp/solver"
	"github.com/probgraph/ijgp/uaiformat"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// Exit codes: 0 success, 1 I/O failure, 2 malformed input, 3 invalid
// elimination order, 4 invalid configuration.
const (
	exitOK = iota
	exitIOError
	exitMalformedInput
	exitInvalidOrder
	exitInvalidConfig
)

func run(args []string) int {
	fs := flag.NewFlagSet("ijgp", flag.ContinueOnError)
	var (
		modelPath = fs.String("model", "", "path to the UAI-format model file (required)")
		evidPath  = fs.String("evidence", "", "path to a .evid evidence file (optional)")
		outPath   = fs.String("out", "", "path to write the result file (default: stdout)")
		iBound    = fs.Int("ibound", 4, "maximum cluster arity (mini-bucket i-bound)")
		iter      = fs.Int("iter", 10, "maximum number of forward/backward passes")
		task      = fs.String("task", "MAR", "inference task: PR, MAR, or MAP")
		orderName = fs.String("order", "MinFill", "elimination order heuristic: MinFill, MinDegree, Lexicographic, Random")
		debug     = fs.Bool("debug", false, "log per-iteration progress to stderr")
		stopObj   = fs.Float64("stop-obj", 0, "early stop once |ΔlogZ| falls below this (0 disables)")
		stopTime  = fs.Float64("stop-time", 0, "early stop once wall-clock seconds elapsed reaches this (0 disables)")
	)
	if err := fs.Parse(args); err != nil {
		return exitInvalidConfig
	}
	if *modelPath == "" {
		fmt.Fprintln(os.Stderr, "ijgp: -model is required")
		return exitInvalidConfig
	}

	cfg, err := solver.ParseProperties(fmt.Sprintf("iBound=%d,Order=%s,Iter=%d,Task=%s,Debug=%v",
		*iBound, *orderName, *iter, *task, *debug))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ijgp: %v\n", err)
		return exitInvalidConfig
	}
	cfg.StopObj = *stopObj
	cfg.StopTime = *stopTime

	m, ev, old2new, reduced, err := loadInputs(*modelPath, *evidPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ijgp: %v\n", err)
		return exitCodeFor(err)
	}

	s, err := solver.New(reduced, cfg, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ijgp: %v\n", err)
		return exitInvalidConfig
	}
	if err := s.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "ijgp: %v\n", err)
		return exitCodeFor(err)
	}
	if err := s.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "ijgp: %v\n", err)
		return exitCodeFor(err)
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ijgp: %v\n", err)
			return exitIOError
		}
		defer f.Close()
		out = f
	}

	if err := uaiformat.WriteSolution(out, cfg.Task, s.LogZ(), s.Beliefs(), s.BestConfig(), m, ev, old2new); err != nil {
		fmt.Fprintf(os.Stderr, "ijgp: %v\n", err)
		return exitCodeFor(err)
	}
	return exitOK
}

// loadInputs reads the model and (optional) evidence files, returning
// the original model, the evidence, the old->new index map, and the
// evidence-reduced model the solver actually runs on.
func loadInputs(modelPath, evidPath string) (orig *model.GraphicalModel, ev model.Evidence, old2new map[int]int, reduced *model.GraphicalModel, err error) {
	mf, err := os.Open(modelPath)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("%w: %v", uaiformat.ErrIoError, err)
	}
	defer mf.Close()

	orig, err = uaiformat.LoadModel(mf)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	ev = model.Evidence{}
	if evidPath != "" {
		ef, err := os.Open(evidPath)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("%w: %v", uaiformat.ErrIoError, err)
		}
		defer ef.Close()
		ev, err = uaiformat.LoadEvidence(ef)
		if err != nil {
			return nil, nil, nil, nil, err
		}
	}

	reduced, old2new = orig.Reduce(ev)
	return orig, ev, old2new, reduced, nil
}

func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, uaiformat.ErrIoError):
		return exitIOError
	case errors.Is(err, uaiformat.ErrMalformedInput):
		return exitMalformedInput
	case errors.Is(err, order.ErrInvalidOrder):
		return exitInvalidOrder
	case errors.Is(err, solver.ErrInvalidConfig), errors.Is(err, solver.ErrUnknownTask), errors.Is(err, solver.ErrNotSupported):
		return exitInvalidConfig
	default:
		log.Printf("ijgp: unclassified error: %v", err)
		return exitIOError
	}
}
