package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPuzzleCloneIsIndependent(t *testing.T) {
	p := &Puzzle{
		Size:      2,
		Adjacency: Adjacency8,
		Cells:     []int{1, 2, 4, 3},
		Given:     []bool{true, false, false, true},
	}
	c := p.Clone()
	c.Cells[0] = 9
	c.Given[1] = true
	assert.Equal(t, 1, p.Cells[0])
	assert.False(t, p.Given[1])
}

func TestPuzzleHelpers(t *testing.T) {
	p := &Puzzle{
		Size:      2,
		Adjacency: Adjacency8,
		Cells:     []int{1, 0, 0, 4},
		Given:     []bool{true, false, false, true},
	}
	assert.Equal(t, 4, p.MaxValue())
	assert.Equal(t, 2, p.Givens())
	assert.False(t, p.Solved())
	assert.Equal(t, 3, p.Index(Position{Row: 1, Col: 1}))

	p.Cells = []int{1, 2, 3, 4}
	assert.True(t, p.Solved())
}

func TestSolutionEqual(t *testing.T) {
	s := Solution{1, 2, 3, 4}
	assert.True(t, s.Equal(Solution{1, 2, 3, 4}))
	assert.False(t, s.Equal(Solution{1, 2, 4, 3}))
	assert.False(t, s.Equal(Solution{1, 2, 3}))

	c := s.Clone()
	c[0] = 9
	assert.Equal(t, 1, s[0])
}

func TestAdjacencyModeValid(t *testing.T) {
	assert.True(t, Adjacency4.Valid())
	assert.True(t, Adjacency8.Valid())
	assert.False(t, AdjacencyMode(6).Valid())
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard, Expert} {
		got, err := ParseDifficulty(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	_, err := ParseDifficulty("nightmare")
	assert.Error(t, err)
}
