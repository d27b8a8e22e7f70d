// Package propagate implements the logic-deduction collaborator: a bounded
// fixpoint that places values left with a single feasible cell, the path
// analogue of sole-candidate sudoku moves.
package propagate

import (
	"svw.info/hidato/internal/domain"
	"svw.info/hidato/internal/model"
)

// DefaultPasses bounds the deduction fixpoint per search node.
const DefaultPasses = 10

// Fixpoint applies up to MaxPasses forced-assignment passes to a state.
// Deterministic for identical state and pass count.
type Fixpoint struct {
	MaxPasses int
}

func New(passes int) *Fixpoint { return &Fixpoint{MaxPasses: passes} }

// Run deduces forced assignments in place (on the state's trail, so the
// caller can undo them) and reports whether the puzzle is now solved.
func (f *Fixpoint) Run(st *model.State) bool {
	passes := f.MaxPasses
	if passes <= 0 {
		passes = DefaultPasses
	}
	for pass := 0; pass < passes; pass++ {
		if st.Complete() {
			break
		}
		cands := model.Build(st)
		if cands.Contradiction() {
			return false
		}
		forced := cands.Forced()
		if len(forced) == 0 {
			break
		}
		for _, v := range forced {
			cell := cands.Positions(v)[0]
			if st.ValueAt(cell) != 0 {
				// two values forced into one cell; the caller's candidate
				// rebuild will see the contradiction
				return false
			}
			st.Assign(v, cell)
		}
	}
	return Solved(st)
}

// Solved reports whether the state is a complete, valid path: every value
// placed and each consecutive pair in adjacent cells.
func Solved(st *model.State) bool {
	if !st.Complete() {
		return false
	}
	for v := 1; v < st.MaxValue(); v++ {
		a, _ := st.PositionOf(v)
		b, _ := st.PositionOf(v + 1)
		if domain.Distance(st.Position(a), st.Position(b), st.Adjacency) != 1 {
			return false
		}
	}
	return true
}
