// Package verify implements the staged uniqueness-verification pipeline:
// heuristic early-exit search, seeded randomized probes, and an optional
// external exact-solver stage, sequenced under a static budget split until
// one of them reaches a decision.
package verify

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"svw.info/hidato/internal/observability"
	"svw.info/hidato/internal/ports"
	"svw.info/hidato/internal/propagate"
	"svw.info/hidato/internal/search"
	"svw.info/hidato/internal/strategy"
)

// Checker orchestrates the pipeline. Registry and SAT are plain injected
// fields rather than process globals so independent checkers can coexist.
type Checker struct {
	Registry   *strategy.Registry
	Propagator search.Propagator      // nil: propagate.Fixpoint with the request's pass bound
	SAT        ports.SATSolver        // nil: sat stage reports Inconclusive
	Logger     *slog.Logger           // nil in NewChecker: discard
	Metrics    *observability.Metrics // optional
}

// NewChecker wires a checker over a registry (nil means the stock four
// profiles) with logging discarded.
func NewChecker(reg *strategy.Registry) *Checker {
	if reg == nil {
		reg = strategy.DefaultRegistry()
	}
	return &Checker{
		Registry: reg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetSATSolver registers the external exact solver (last writer wins).
func (c *Checker) SetSATSolver(s ports.SATSolver) { c.SAT = s }

// ClearSATSolver removes the external solver; the sat stage then reports
// Inconclusive with a note and zero elapsed time.
func (c *Checker) ClearSATSolver() { c.SAT = nil }

// propagator resolves the deduction engine for a request.
func (c *Checker) propagator(req *UniquenessCheckRequest) search.Propagator {
	if c.Propagator != nil {
		return c.Propagator
	}
	return propagate.New(req.MaxPasses)
}

// Run is the sole entry point: it validates the request, runs the enabled
// stages strictly in order {early_exit, probes, sat}, and returns the first
// decisive result. All enabled stages returning nothing yields
// Inconclusive. The request's puzzle is left untouched.
func (c *Checker) Run(ctx context.Context, req *UniquenessCheckRequest) (*UniquenessCheckResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	res := &UniquenessCheckResult{
		RunID:        uuid.NewString(),
		Decision:     Inconclusive,
		StageElapsed: make(map[string]time.Duration),
		StageNodes:   make(map[string]int),
	}

	stages := []struct {
		name    string
		enabled bool
		share   float64
		run     func(context.Context, *UniquenessCheckRequest, time.Duration, *UniquenessCheckResult) bool
	}{
		{StageEarlyExit, req.EnableEarlyExit, req.Split.EarlyExit, c.runEarlyExit},
		{StageProbes, req.EnableProbes, req.Split.Probes, c.runProbes},
		{StageSAT, req.EnableSAT, req.Split.SAT, c.runSAT},
	}
	for _, st := range stages {
		if !st.enabled {
			continue // skipped stages contribute zero budget and zero metrics
		}
		budget := time.Duration(float64(req.TotalBudget) * st.share)
		c.Logger.Debug("stage start", "stage", st.name, "budget", budget)
		decided := st.run(ctx, req, budget, res)
		if c.Metrics != nil {
			c.Metrics.ObserveStage(st.name, res.StageElapsed[st.name], res.StageNodes[st.name])
		}
		if decided {
			break
		}
	}

	res.Elapsed = time.Since(start)
	if c.Metrics != nil {
		c.Metrics.ObserveRun(res.Decision.String(), res.StageDecided, res.Elapsed)
	}
	c.Logger.Info("uniqueness check done",
		"run_id", res.RunID,
		"decision", res.Decision.String(),
		"stage", res.StageDecided,
		"elapsed", res.Elapsed.Round(time.Millisecond),
		"probes", res.ProbesExecuted,
	)
	return res, nil
}
