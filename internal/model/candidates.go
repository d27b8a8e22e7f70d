package model

import "svw.info/hidato/internal/domain"

// Candidates maps each unplaced value to the cell indexes still consistent
// with the current assignment. Feasibility of value v at empty cell p only
// needs checking against the nearest placed values below and above v: the
// triangle inequality extends those bounds to every other placed value.
type Candidates struct {
	byValue  map[int][]int
	unplaced []int // ascending; deterministic scan order
}

// Build computes the candidate model for the current state.
func Build(st *State) *Candidates {
	n := st.MaxValue()
	empty := make([]int, 0, n)
	for idx := 0; idx < n; idx++ {
		if st.ValueAt(idx) == 0 {
			empty = append(empty, idx)
		}
	}

	c := &Candidates{byValue: make(map[int][]int)}
	lo, loIdx := 0, 0 // nearest placed value below v and its cell
	for v := 1; v <= n; v++ {
		if idx, ok := st.PositionOf(v); ok {
			lo, loIdx = v, idx
			continue
		}
		hi, hiIdx := 0, 0
		for w := v + 1; w <= n; w++ {
			if idx, ok := st.PositionOf(w); ok {
				hi, hiIdx = w, idx
				break
			}
		}
		cells := make([]int, 0, len(empty))
		for _, idx := range empty {
			pos := st.Position(idx)
			if lo != 0 && domain.Distance(pos, st.Position(loIdx), st.Adjacency) > v-lo {
				continue
			}
			if hi != 0 && domain.Distance(pos, st.Position(hiIdx), st.Adjacency) > hi-v {
				continue
			}
			cells = append(cells, idx)
		}
		c.byValue[v] = cells
		c.unplaced = append(c.unplaced, v)
	}
	return c
}

// Positions returns the feasible cell indexes for an unplaced value,
// ascending row-major.
func (c *Candidates) Positions(v int) []int { return c.byValue[v] }

// Contradiction reports whether some unplaced value has no feasible cell.
func (c *Candidates) Contradiction() bool {
	for _, v := range c.unplaced {
		if len(c.byValue[v]) == 0 {
			return true
		}
	}
	return false
}

// MinRemaining returns the unplaced value with the fewest feasible cells
// (lowest value wins ties) and its candidates. ok is false when every value
// is placed.
func (c *Candidates) MinRemaining() (value int, cells []int, ok bool) {
	best := -1
	for _, v := range c.unplaced {
		if best == -1 || len(c.byValue[v]) < len(c.byValue[best]) {
			best = v
		}
	}
	if best == -1 {
		return 0, nil, false
	}
	return best, c.byValue[best], true
}

// Forced returns the unplaced values having exactly one feasible cell,
// ascending.
func (c *Candidates) Forced() []int {
	out := make([]int, 0, 4)
	for _, v := range c.unplaced {
		if len(c.byValue[v]) == 1 {
			out = append(out, v)
		}
	}
	return out
}
