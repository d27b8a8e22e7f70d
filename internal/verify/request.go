package verify

import (
	"errors"
	"fmt"
	"time"

	playground "github.com/go-playground/validator/v10"

	"svw.info/hidato/internal/domain"
	"svw.info/hidato/internal/propagate"
)

// ErrInvalidRequest wraps every request construction/validation failure.
var ErrInvalidRequest = errors.New("invalid uniqueness request")

var validate = playground.New(playground.WithRequiredStructEnabled())

// StageSplit is the static per-stage fraction of the total budget. Unused
// time from one stage is never carried into the next.
type StageSplit struct {
	EarlyExit float64 `yaml:"early_exit" validate:"gte=0,lte=1"`
	Probes    float64 `yaml:"probes" validate:"gte=0,lte=1"`
	SAT       float64 `yaml:"sat" validate:"gte=0,lte=1"`
}

// DefaultSplit mirrors the stock 40/40/20 division.
func DefaultSplit() StageSplit {
	return StageSplit{EarlyExit: 0.4, Probes: 0.4, SAT: 0.2}
}

// UniquenessCheckRequest is the immutable input of one verification call.
// Build it with NewRequest to pick up defaults; Validate fails fast on
// configuration errors before any stage runs.
type UniquenessCheckRequest struct {
	Puzzle      *domain.Puzzle `validate:"required"`
	TotalBudget time.Duration  `validate:"gt=0"`
	Split       StageSplit
	Seed        int64
	NumProbes   int `validate:"gt=0"`
	MaxPasses   int `validate:"gt=0"` // propagation passes per search node

	EnableEarlyExit bool
	EnableProbes    bool
	EnableSAT       bool

	// StrictSAT makes a second-solution query timeout Inconclusive instead
	// of accepting it as a uniqueness proof.
	StrictSAT bool
}

// DefaultNumProbes is the stock probe count for the probes stage.
const DefaultNumProbes = 6

// NewRequest builds a request with stock defaults: early-exit and probes
// enabled, sat disabled, 40/40/20 split.
func NewRequest(p *domain.Puzzle, budget time.Duration, seed int64) *UniquenessCheckRequest {
	return &UniquenessCheckRequest{
		Puzzle:          p,
		TotalBudget:     budget,
		Split:           DefaultSplit(),
		Seed:            seed,
		NumProbes:       DefaultNumProbes,
		MaxPasses:       propagate.DefaultPasses,
		EnableEarlyExit: true,
		EnableProbes:    true,
		EnableSAT:       false,
	}
}

// Validate fails fast on non-positive budgets/sizes, unsupported adjacency,
// and malformed grids. It never inspects solvability.
func (r *UniquenessCheckRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	p := r.Puzzle
	if p.Size <= 0 {
		return fmt.Errorf("%w: non-positive size %d", ErrInvalidRequest, p.Size)
	}
	if !p.Adjacency.Valid() {
		return fmt.Errorf("%w: adjacency %d not in {4,8}", ErrInvalidRequest, p.Adjacency)
	}
	if len(p.Cells) != p.MaxValue() {
		return fmt.Errorf("%w: %d cells for size %d", ErrInvalidRequest, len(p.Cells), p.Size)
	}
	if p.Given != nil && len(p.Given) != len(p.Cells) {
		return fmt.Errorf("%w: given mask length %d", ErrInvalidRequest, len(p.Given))
	}
	return nil
}
