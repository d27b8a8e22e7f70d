package verify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"svw.info/hidato/internal/ports"
)

// satFirstShare is the fraction of the sat stage budget spent proving
// satisfiability; the remainder funds the blocking-clause query.
const satFirstShare = 0.6

// runSAT drives the external exact solver, when one is registered:
// find one solution, then ask for a different one. No second solution means
// Unique; a second-query timeout is accepted as Unique unless the request's
// StrictSAT flag demands a real proof.
func (c *Checker) runSAT(ctx context.Context, req *UniquenessCheckRequest, budget time.Duration, res *UniquenessCheckResult) bool {
	if c.SAT == nil {
		res.StageElapsed[StageSAT] = 0
		res.Notes = append(res.Notes, "sat: no solver registered")
		return false
	}
	start := time.Now()
	defer func() {
		res.StageElapsed[StageSAT] = time.Since(start)
	}()

	firstBudget := time.Duration(float64(budget) * satFirstShare)
	secondBudget := budget - firstBudget

	first, err := c.SAT.FindSolution(ctx, req.Puzzle, firstBudget)
	if err != nil && !errors.Is(err, ports.ErrTimeout) {
		res.Notes = append(res.Notes, fmt.Sprintf("sat: first query failed: %v", err))
		return false
	}
	if first == nil {
		if errors.Is(err, ports.ErrTimeout) {
			res.Notes = append(res.Notes, "sat: first query timed out within budget")
		} else {
			// the solver proved there is no solution at all
			res.Notes = append(res.Notes, "sat: puzzle proven unsatisfiable")
		}
		return false
	}

	second, err := c.SAT.FindSecondSolution(ctx, req.Puzzle, first, secondBudget)
	switch {
	case second != nil:
		res.Decision = NonUnique
		res.StageDecided = StageSAT
		res.Notes = append(res.Notes, "sat: blocking-clause query found a second solution")
		return true
	case errors.Is(err, ports.ErrTimeout) && req.StrictSAT:
		res.Notes = append(res.Notes, "sat: second query timed out (strict mode, no uniqueness claim)")
		return false
	case errors.Is(err, ports.ErrTimeout):
		res.Decision = Unique
		res.StageDecided = StageSAT
		res.Notes = append(res.Notes, "sat: second query timed out, accepted as uniqueness")
		return true
	case err != nil:
		res.Notes = append(res.Notes, fmt.Sprintf("sat: second query failed: %v", err))
		return false
	default:
		res.Decision = Unique
		res.StageDecided = StageSAT
		return true
	}
}
