package domain

// Neighbors returns pos's neighbor cells on a size x size grid under mode,
// in row-major order.
func Neighbors(size int, pos Position, mode AdjacencyMode) []Position {
	out := make([]Position, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if mode == Adjacency4 && dr != 0 && dc != 0 {
				continue
			}
			r, c := pos.Row+dr, pos.Col+dc
			if r < 0 || r >= size || c < 0 || c >= size {
				continue
			}
			out = append(out, Position{Row: r, Col: c})
		}
	}
	return out
}

// Degree counts pos's neighbors under mode (edge and corner cells have fewer).
func Degree(size int, pos Position, mode AdjacencyMode) int {
	return len(Neighbors(size, pos, mode))
}

// Distance is the minimum number of path steps between two cells:
// Manhattan under Adjacency4, Chebyshev under Adjacency8. Two placed values
// v and w can only coexist when Distance(pos(v), pos(w)) <= |v-w|.
func Distance(a, b Position, mode AdjacencyMode) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	if mode == Adjacency4 {
		return dr + dc
	}
	if dr > dc {
		return dr
	}
	return dc
}
