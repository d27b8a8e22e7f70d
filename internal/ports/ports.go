package ports

import (
	"context"
	"errors"
	"time"

	"svw.info/hidato/internal/domain"
)

// Stats captures performance characteristics of a search or stage.
type Stats struct {
	Nodes     int
	Solutions int
	Duration  time.Duration
	TimedOut  bool
}

// ErrTimeout reports that an external solver ran out of its time share
// before reaching a verdict. It is an expected condition, not a failure.
var ErrTimeout = errors.New("solver timed out")

// SATSolver is an external exact solver queried by the sat stage.
//
// FindSolution returns a full assignment, or (nil, nil) when the puzzle is
// proven unsatisfiable, or (nil, ErrTimeout) when time ran out first.
// FindSecondSolution excludes first via a blocking clause and follows the
// same convention: (nil, nil) proves first is the only solution.
type SATSolver interface {
	FindSolution(ctx context.Context, p *domain.Puzzle, timeout time.Duration) (domain.Solution, error)
	FindSecondSolution(ctx context.Context, p *domain.Puzzle, first domain.Solution, timeout time.Duration) (domain.Solution, error)
}

// Validator performs fast consistency checks on a candidate puzzle.
type Validator interface {
	Validate(ctx context.Context, p *domain.Puzzle) (ok bool, conflicts []domain.Position, err error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
