package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/hidato/internal/domain"
)

func puzzle(size int, adj domain.AdjacencyMode, cells []int) *domain.Puzzle {
	return &domain.Puzzle{Size: size, Adjacency: adj, Cells: cells}
}

func TestValidateAcceptsSerpentine(t *testing.T) {
	p := puzzle(3, domain.Adjacency4, []int{
		1, 2, 3,
		6, 5, 4,
		7, 8, 9,
	})
	ok, conf, err := New().Validate(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conf)
}

func TestValidateAcceptsPartialGrid(t *testing.T) {
	p := puzzle(3, domain.Adjacency4, []int{
		1, 0, 0,
		0, 5, 0,
		0, 0, 9,
	})
	ok, conf, err := New().Validate(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, ok, "conflicts: %v", conf)
}

func TestValidateFlagsDuplicate(t *testing.T) {
	p := puzzle(3, domain.Adjacency4, []int{
		1, 1, 0,
		0, 0, 0,
		0, 0, 0,
	})
	ok, conf, err := New().Validate(context.Background(), p)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotEmpty(t, conf)
}

func TestValidateFlagsOutOfRange(t *testing.T) {
	p := puzzle(3, domain.Adjacency4, []int{
		10, 0, 0,
		0, 0, 0,
		0, 0, 0,
	})
	ok, _, err := New().Validate(context.Background(), p)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidateFlagsUnreachablePair(t *testing.T) {
	// 1 and 2 in opposite corners can never be consecutive
	p := puzzle(3, domain.Adjacency8, []int{
		1, 0, 0,
		0, 0, 0,
		0, 0, 2,
	})
	ok, conf, err := New().Validate(context.Background(), p)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, conf, domain.Position{Row: 2, Col: 2})
}
