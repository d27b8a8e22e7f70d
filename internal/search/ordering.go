package search

import (
	"sort"

	"svw.info/hidato/internal/domain"
	"svw.info/hidato/internal/model"
	"svw.info/hidato/internal/strategy"
)

// Order sorts candidate cell indexes according to a profile's ordering mode.
// Every mode breaks ties by row-major index, so branch order is a pure
// function of puzzle state and mode.
func Order(mode strategy.OrderingMode, st *model.State, cells []int) []int {
	out := append([]int(nil), cells...)
	switch mode {
	case strategy.OrderCenterOut:
		sort.SliceStable(out, func(i, j int) bool {
			di, dj := centerDist(st, out[i]), centerDist(st, out[j])
			if di != dj {
				return di < dj
			}
			return out[i] < out[j]
		})
	case strategy.OrderMRV:
		sort.SliceStable(out, func(i, j int) bool {
			di, dj := emptyDegree(st, out[i]), emptyDegree(st, out[j])
			if di != dj {
				return di < dj
			}
			return out[i] < out[j]
		})
	case strategy.OrderDegreeBiased:
		sort.SliceStable(out, func(i, j int) bool {
			di, dj := emptyDegree(st, out[i]), emptyDegree(st, out[j])
			if di != dj {
				return di > dj
			}
			return out[i] < out[j]
		})
	default: // OrderRowMajor; input is already ascending
	}
	return out
}

// centerDist is the doubled squared distance from the grid center, exact in
// integers for odd and even sizes alike.
func centerDist(st *model.State, idx int) int {
	p := st.Position(idx)
	dr := 2*p.Row - (st.Size - 1)
	dc := 2*p.Col - (st.Size - 1)
	return dr*dr + dc*dc
}

// emptyDegree counts a cell's empty neighbors under the active adjacency.
func emptyDegree(st *model.State, idx int) int {
	n := 0
	for _, q := range domain.Neighbors(st.Size, st.Position(idx), st.Adjacency) {
		if st.ValueAt(q.Row*st.Size+q.Col) == 0 {
			n++
		}
	}
	return n
}
