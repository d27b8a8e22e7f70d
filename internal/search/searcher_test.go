package search

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/hidato/internal/domain"
	"svw.info/hidato/internal/model"
	"svw.info/hidato/internal/propagate"
	"svw.info/hidato/internal/strategy"
)

func newTestState(t *testing.T) *model.State {
	t.Helper()
	return model.NewState(&domain.Puzzle{
		Size:      3,
		Adjacency: domain.Adjacency4,
		Cells:     make([]int, 9),
	})
}

// lone corner clue: many completions exist under either adjacency.
func sparseCorner3() *domain.Puzzle {
	return &domain.Puzzle{
		Size:      3,
		Adjacency: domain.Adjacency4,
		Cells: []int{
			1, 0, 0,
			0, 0, 0,
			0, 0, 0,
		},
		Given: []bool{true, false, false, false, false, false, false, false, false},
	}
}

// single hole: the fixpoint alone solves it.
func holed5() *domain.Puzzle {
	return &domain.Puzzle{
		Size:      5,
		Adjacency: domain.Adjacency4,
		Cells: []int{
			1, 2, 3, 4, 5,
			10, 9, 8, 7, 6,
			11, 12, 0, 14, 15,
			20, 19, 18, 17, 16,
			21, 22, 23, 24, 25,
		},
	}
}

func prop() Propagator { return propagate.New(propagate.DefaultPasses) }

func TestRunFindsTwoSolutionsAtCap(t *testing.T) {
	r := Run(context.Background(), sparseCorner3(), prop(), Options{
		Ordering:    strategy.OrderRowMajor,
		Deadline:    time.Now().Add(2 * time.Second),
		SolutionCap: 2,
	})
	require.Len(t, r.Solutions, 2)
	assert.False(t, r.Stats.TimedOut)
	assert.False(t, r.Solutions[0].Equal(r.Solutions[1]))
	assert.Greater(t, r.Stats.Nodes, 1)
}

func TestRunSolutionsAreValidPaths(t *testing.T) {
	r := Run(context.Background(), sparseCorner3(), prop(), Options{SolutionCap: 2})
	require.NotEmpty(t, r.Solutions)
	for _, sol := range r.Solutions {
		seen := make(map[int]domain.Position)
		for idx, v := range sol {
			require.NotContains(t, seen, v)
			seen[v] = domain.Position{Row: idx / 3, Col: idx % 3}
		}
		assert.Equal(t, 1, sol[0], "clue preserved")
		for v := 1; v < 9; v++ {
			assert.Equal(t, 1, domain.Distance(seen[v], seen[v+1], domain.Adjacency4),
				"values %d and %d must be neighbors", v, v+1)
		}
	}
}

func TestRunDeterministicPerProfile(t *testing.T) {
	for _, mode := range []strategy.OrderingMode{
		strategy.OrderRowMajor,
		strategy.OrderCenterOut,
		strategy.OrderMRV,
		strategy.OrderDegreeBiased,
	} {
		a := Run(context.Background(), sparseCorner3(), prop(), Options{Ordering: mode, SolutionCap: 2})
		b := Run(context.Background(), sparseCorner3(), prop(), Options{Ordering: mode, SolutionCap: 2})
		assert.Equal(t, a.Stats.Nodes, b.Stats.Nodes)
		require.Equal(t, len(a.Solutions), len(b.Solutions))
		for i := range a.Solutions {
			assert.True(t, a.Solutions[i].Equal(b.Solutions[i]))
		}
	}
}

func TestRunSeededShuffleIsDeterministic(t *testing.T) {
	run := func() Result {
		return Run(context.Background(), sparseCorner3(), prop(), Options{
			SolutionCap: 1,
			Rng:         rand.New(rand.NewSource(99)),
		})
	}
	a, b := run(), run()
	assert.Equal(t, a.Stats.Nodes, b.Stats.Nodes)
	require.Len(t, a.Solutions, 1)
	require.Len(t, b.Solutions, 1)
	assert.True(t, a.Solutions[0].Equal(b.Solutions[0]))
}

func TestRunExpiredDeadline(t *testing.T) {
	r := Run(context.Background(), sparseCorner3(), prop(), Options{
		Deadline:    time.Now().Add(-time.Millisecond),
		SolutionCap: 2,
	})
	assert.True(t, r.Stats.TimedOut)
	assert.Empty(t, r.Solutions)
	assert.Equal(t, 1, r.Stats.Nodes)
}

func TestRunHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := Run(ctx, sparseCorner3(), prop(), Options{SolutionCap: 2})
	assert.True(t, r.Stats.TimedOut)
	assert.Empty(t, r.Solutions)
}

func TestRunDoesNotMutatePuzzle(t *testing.T) {
	p := sparseCorner3()
	before := append([]int(nil), p.Cells...)
	_ = Run(context.Background(), p, prop(), Options{SolutionCap: 2})
	assert.Equal(t, before, p.Cells)
}

func TestRunPropagationOnlyPuzzle(t *testing.T) {
	r := Run(context.Background(), holed5(), prop(), Options{SolutionCap: 2})
	require.Len(t, r.Solutions, 1, "forced hole admits exactly one completion")
	assert.Equal(t, 13, r.Solutions[0][12])
	assert.Equal(t, 1, r.Stats.Nodes, "no branching needed")
}

func TestOrderModes(t *testing.T) {
	st := newTestState(t)
	cells := []int{0, 2, 4, 6, 8} // corners and center of the 3x3
	assert.Equal(t, cells, Order(strategy.OrderRowMajor, st, cells))
	assert.Equal(t, []int{4, 0, 2, 6, 8}, Order(strategy.OrderCenterOut, st, cells), "center first")
	assert.Equal(t, []int{0, 2, 6, 8, 4}, Order(strategy.OrderMRV, st, cells), "fewest empty neighbors first")
	assert.Equal(t, []int{4, 0, 2, 6, 8}, Order(strategy.OrderDegreeBiased, st, cells), "most empty neighbors first")
}
