package model

import "svw.info/hidato/internal/domain"

// State is the mutable assignment arena a search branch works in. Givens are
// seeded once at construction; search assignments go on an undo trail so a
// sibling branch never observes another branch's writes. The source puzzle
// is never touched.
type State struct {
	Size      int
	Adjacency domain.AdjacencyMode

	values []int // cell index -> value (0 = empty)
	posOf  []int // value -> cell index + 1 (0 = unplaced)
	placed int
	trail  []int // values, in assignment order
}

// NewState seeds an arena from the puzzle's givens (and any pre-assigned
// cells). The puzzle itself is only read.
func NewState(p *domain.Puzzle) *State {
	n := p.MaxValue()
	st := &State{
		Size:      p.Size,
		Adjacency: p.Adjacency,
		values:    make([]int, n),
		posOf:     make([]int, n+1),
	}
	for idx, v := range p.Cells {
		if v != 0 {
			st.values[idx] = v
			st.posOf[v] = idx + 1
			st.placed++
		}
	}
	return st
}

// Mark returns the current trail depth for a later Undo.
func (s *State) Mark() int { return len(s.trail) }

// Assign places value v at cell index idx and records it on the trail.
func (s *State) Assign(v, idx int) {
	s.values[idx] = v
	s.posOf[v] = idx + 1
	s.placed++
	s.trail = append(s.trail, v)
}

// Undo pops trail entries back to mark, unwinding assignments in LIFO order.
func (s *State) Undo(mark int) {
	for len(s.trail) > mark {
		v := s.trail[len(s.trail)-1]
		s.trail = s.trail[:len(s.trail)-1]
		idx := s.posOf[v] - 1
		s.posOf[v] = 0
		s.values[idx] = 0
		s.placed--
	}
}

// ValueAt returns the value at a cell index (0 = empty).
func (s *State) ValueAt(idx int) int { return s.values[idx] }

// PositionOf returns the cell index holding v.
func (s *State) PositionOf(v int) (int, bool) {
	if s.posOf[v] == 0 {
		return 0, false
	}
	return s.posOf[v] - 1, true
}

// MaxValue is the last value on the path.
func (s *State) MaxValue() int { return len(s.values) }

// Complete reports whether every value is placed.
func (s *State) Complete() bool { return s.placed == len(s.values) }

// Position converts a cell index to grid coordinates.
func (s *State) Position(idx int) domain.Position {
	return domain.Position{Row: idx / s.Size, Col: idx % s.Size}
}

// Solution snapshots the current assignment.
func (s *State) Solution() domain.Solution {
	return append(domain.Solution(nil), s.values...)
}
