package domain

// AdjacencyMode selects the neighborhood used by the path constraint.
type AdjacencyMode int

const (
	Adjacency4 AdjacencyMode = 4 // orthogonal neighbors only
	Adjacency8 AdjacencyMode = 8 // orthogonal + diagonal neighbors
)

// Valid reports whether the mode is one of the two supported neighborhoods.
func (m AdjacencyMode) Valid() bool {
	return m == Adjacency4 || m == Adjacency8
}

// Position identifies a cell on the grid.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Puzzle is a numbered-path candidate with metadata. Cells is row-major with
// 0 meaning empty; Given marks clue cells fixed before solving. A Puzzle is
// read-only input to the verification pipeline: stages work on copies.
type Puzzle struct {
	ID         string        `json:"id,omitempty"`
	Seed       int64         `json:"seed,omitempty"`
	Difficulty Difficulty    `json:"difficulty,omitempty"`
	Size       int           `json:"size"`
	Adjacency  AdjacencyMode `json:"adjacency"`
	Cells      []int         `json:"cells"`
	Given      []bool        `json:"given,omitempty"`
	CreatedAt  int64         `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// MaxValue is the last value on the path (Size squared).
func (p *Puzzle) MaxValue() int { return p.Size * p.Size }

// Index flattens a position to a row-major cell index.
func (p *Puzzle) Index(pos Position) int { return pos.Row*p.Size + pos.Col }

// At returns the value at a flattened cell index (0 = empty).
func (p *Puzzle) At(idx int) int { return p.Cells[idx] }

// Clone returns an independent deep copy.
func (p *Puzzle) Clone() *Puzzle {
	out := *p
	out.Cells = append([]int(nil), p.Cells...)
	if p.Given != nil {
		out.Given = append([]bool(nil), p.Given...)
	}
	return &out
}

// Givens counts clue cells.
func (p *Puzzle) Givens() int {
	n := 0
	for i, g := range p.Given {
		if g && p.Cells[i] != 0 {
			n++
		}
	}
	return n
}

// Solved reports whether every cell holds a value.
func (p *Puzzle) Solved() bool {
	for _, v := range p.Cells {
		if v == 0 {
			return false
		}
	}
	return true
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Size       int        `json:"size"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}

// Solution is a completed assignment, flattened row-major.
type Solution []int

// Equal reports element-wise equality.
func (s Solution) Equal(o Solution) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (s Solution) Clone() Solution {
	return append(Solution(nil), s...)
}
