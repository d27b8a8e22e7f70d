package verify

import (
	"context"
	"fmt"
	"time"

	"svw.info/hidato/internal/search"
	"svw.info/hidato/internal/strategy"
)

// runEarlyExit time-slices a cap-2 bounded search across every registered
// profile advertising detect_non_unique, in registry sort order. It decides
// NonUnique the instant any profile demonstrates a second solution and
// reports true; otherwise it records its metrics and reports false so the
// orchestrator moves on.
func (c *Checker) runEarlyExit(ctx context.Context, req *UniquenessCheckRequest, budget time.Duration, res *UniquenessCheckResult) bool {
	start := time.Now()
	deadline := start.Add(budget)
	defer func() {
		res.StageElapsed[StageEarlyExit] = time.Since(start)
	}()

	var profiles []strategy.Profile
	for _, p := range c.Registry.ListAll() {
		if p.Enabled && p.Has(strategy.CapDetectNonUnique) {
			profiles = append(profiles, p)
		}
	}
	if len(profiles) == 0 {
		res.Notes = append(res.Notes, "early_exit: no profiles with detect_non_unique")
		return false
	}

	slice := budget / time.Duration(len(profiles))
	prop := c.propagator(req)
	nodes := 0
	for _, pf := range profiles {
		now := time.Now()
		if !now.Before(deadline) || ctx.Err() != nil {
			break
		}
		// a stalled earlier profile never pushes us past the stage budget
		pd := now.Add(slice)
		if pd.After(deadline) {
			pd = deadline
		}
		r := search.Run(ctx, req.Puzzle, prop, search.Options{
			Ordering:    pf.Ordering,
			Deadline:    pd,
			SolutionCap: 2,
		})
		nodes += r.Stats.Nodes
		c.Logger.Debug("early_exit profile done",
			"profile", pf.ID,
			"solutions", r.Stats.Solutions,
			"nodes", r.Stats.Nodes,
			"timed_out", r.Stats.TimedOut,
		)
		if r.Stats.Solutions >= 2 {
			res.Decision = NonUnique
			res.StageDecided = StageEarlyExit
			res.StageNodes[StageEarlyExit] = nodes
			res.Notes = append(res.Notes, fmt.Sprintf("early_exit: profile %s found a second solution", pf.ID))
			return true
		}
	}
	res.StageNodes[StageEarlyExit] = nodes
	return false
}
