// Package search implements the bounded backtracking searcher shared by the
// early-exit and probes stages: propagation-driven DFS with MRV value
// selection, profile- or seed-ordered branching, a solution cap, and a
// polled wall-clock deadline.
package search

import (
	"context"
	"math/rand"
	"time"

	"svw.info/hidato/internal/domain"
	"svw.info/hidato/internal/model"
	"svw.info/hidato/internal/ports"
	"svw.info/hidato/internal/strategy"
)

// Propagator applies bounded deduction passes to a state before branching
// and reports whether the puzzle is solved.
type Propagator interface {
	Run(st *model.State) (solved bool)
}

// Options bounds a single search run.
type Options struct {
	Ordering    strategy.OrderingMode
	Deadline    time.Time // zero means no wall-clock bound
	SolutionCap int       // stop after this many solutions (min 1)
	Rng         *rand.Rand // non-nil shuffles branch order instead of Ordering
}

// Result carries the solutions found plus search metrics.
type Result struct {
	Solutions []domain.Solution
	Stats     ports.Stats
}

// Run explores the puzzle within opts. The puzzle is only read; all
// exploration happens in a private state arena.
func Run(ctx context.Context, p *domain.Puzzle, prop Propagator, opts Options) Result {
	if opts.SolutionCap < 1 {
		opts.SolutionCap = 1
	}
	start := time.Now()
	s := &searcher{
		ctx:  ctx,
		st:   model.NewState(p),
		prop: prop,
		opts: opts,
	}
	s.dfs()
	return Result{
		Solutions: s.solutions,
		Stats: ports.Stats{
			Nodes:     s.nodes,
			Solutions: len(s.solutions),
			Duration:  time.Since(start),
			TimedOut:  s.timedOut,
		},
	}
}

type searcher struct {
	ctx       context.Context
	st        *model.State
	prop      Propagator
	opts      Options
	nodes     int
	timedOut  bool
	solutions []domain.Solution
}

func (s *searcher) expired() bool {
	if s.ctx != nil && s.ctx.Err() != nil {
		return true
	}
	return !s.opts.Deadline.IsZero() && time.Now().After(s.opts.Deadline)
}

func (s *searcher) dfs() {
	s.nodes++
	if s.expired() {
		s.timedOut = true
		return
	}

	mark := s.st.Mark()
	defer s.st.Undo(mark)

	if s.prop.Run(s.st) {
		s.solutions = append(s.solutions, s.st.Solution())
		return
	}

	cands := model.Build(s.st)
	if cands.Contradiction() {
		return // dead branch, not a timeout
	}
	value, cells, ok := cands.MinRemaining()
	if !ok {
		return // complete but not a valid path
	}

	if s.opts.Rng != nil {
		cells = append([]int(nil), cells...)
		s.opts.Rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
	} else {
		cells = Order(s.opts.Ordering, s.st, cells)
	}

	for _, cell := range cells {
		if s.timedOut || len(s.solutions) >= s.opts.SolutionCap {
			return
		}
		branch := s.st.Mark()
		s.st.Assign(value, cell)
		s.dfs()
		s.st.Undo(branch)
	}
}
