// Package sat adapts the gophersat CNF solver to the pipeline's external
// exact-solver boundary: find one full path assignment, then ask for a
// different one by blocking the first model.
package sat

import (
	"context"
	"time"

	"github.com/crillab/gophersat/solver"

	"svw.info/hidato/internal/domain"
	"svw.info/hidato/internal/ports"
)

// Solver implements ports.SATSolver over gophersat.
type Solver struct{}

func NewSolver() *Solver { return &Solver{} }

var _ ports.SATSolver = (*Solver)(nil)

func (s *Solver) FindSolution(ctx context.Context, p *domain.Puzzle, timeout time.Duration) (domain.Solution, error) {
	enc := newEncoding(p)
	return enc.solve(ctx, enc.clauses(nil), timeout)
}

func (s *Solver) FindSecondSolution(ctx context.Context, p *domain.Puzzle, first domain.Solution, timeout time.Duration) (domain.Solution, error) {
	enc := newEncoding(p)
	return enc.solve(ctx, enc.clauses(first), timeout)
}

// encoding maps the numbered-path puzzle to CNF. Variable x(v,c) says value
// v sits in cell c; v and c are 0-based below, variables 1-based for DIMACS
// conventions.
type encoding struct {
	p *domain.Puzzle
	n int // cell count == value count
}

func newEncoding(p *domain.Puzzle) *encoding {
	return &encoding{p: p, n: p.MaxValue()}
}

func (e *encoding) variable(v, cell int) int {
	return (v-1)*e.n + cell + 1
}

// clauses builds the full CNF: exactly one cell per value, exactly one
// value per cell, adjacency implications between consecutive values, unit
// clauses for clues, and optionally a blocking clause excluding a previous
// solution.
func (e *encoding) clauses(blocked domain.Solution) [][]int {
	n := e.n
	out := make([][]int, 0, 2*n+2*n*n*(n-1)/2)

	// each value occupies at least one cell, each cell holds at least one value
	for v := 1; v <= n; v++ {
		atLeast := make([]int, n)
		for cell := 0; cell < n; cell++ {
			atLeast[cell] = e.variable(v, cell)
		}
		out = append(out, atLeast)
	}
	for cell := 0; cell < n; cell++ {
		atLeast := make([]int, n)
		for v := 1; v <= n; v++ {
			atLeast[v-1] = e.variable(v, cell)
		}
		out = append(out, atLeast)
	}
	// at most one, pairwise
	for v := 1; v <= n; v++ {
		for a := 0; a < n; a++ {
			for b := a + 1; b < n; b++ {
				out = append(out, []int{-e.variable(v, a), -e.variable(v, b)})
			}
		}
	}
	for cell := 0; cell < n; cell++ {
		for v := 1; v <= n; v++ {
			for w := v + 1; w <= n; w++ {
				out = append(out, []int{-e.variable(v, cell), -e.variable(w, cell)})
			}
		}
	}
	// path: value v at cell forces v+1 into one of its neighbors
	size := e.p.Size
	for v := 1; v < n; v++ {
		for cell := 0; cell < n; cell++ {
			pos := domain.Position{Row: cell / size, Col: cell % size}
			clause := []int{-e.variable(v, cell)}
			for _, q := range domain.Neighbors(size, pos, e.p.Adjacency) {
				clause = append(clause, e.variable(v+1, q.Row*size+q.Col))
			}
			out = append(out, clause)
		}
	}
	// clues
	for cell, v := range e.p.Cells {
		if v != 0 {
			out = append(out, []int{e.variable(v, cell)})
		}
	}
	// blocking clause: at least one value must move
	if blocked != nil {
		clause := make([]int, 0, n)
		for cell, v := range blocked {
			clause = append(clause, -e.variable(v, cell))
		}
		out = append(out, clause)
	}
	return out
}

// solve runs gophersat with a cooperative stop on timeout or context
// cancellation. Indeterminate terminations map to ports.ErrTimeout; proven
// unsatisfiability maps to (nil, nil).
func (e *encoding) solve(ctx context.Context, cnf [][]int, timeout time.Duration) (domain.Solution, error) {
	s := solver.New(solver.ParseSlice(cnf))

	done := make(chan solver.Result, 1)
	stop := make(chan struct{})
	go func() {
		done <- s.Optimal(nil, stop)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	var r solver.Result
	select {
	case r = <-done:
	case <-ctx.Done():
		close(stop)
		r = <-done
	case <-timer.C:
		close(stop)
		r = <-done
	}

	switch r.Status {
	case solver.Sat:
		return e.decode(r.Model), nil
	case solver.Unsat:
		return nil, nil
	default:
		return nil, ports.ErrTimeout
	}
}

// decode turns a model into a flattened assignment. The model slice is
// 0-based while variables are 1-based.
func (e *encoding) decode(m []bool) domain.Solution {
	out := make(domain.Solution, e.n)
	for v := 1; v <= e.n; v++ {
		for cell := 0; cell < e.n; cell++ {
			if m[e.variable(v, cell)-1] {
				out[cell] = v
			}
		}
	}
	return out
}
