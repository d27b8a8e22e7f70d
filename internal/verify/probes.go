package verify

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"svw.info/hidato/internal/domain"
	"svw.info/hidato/internal/search"
)

// runProbes executes NumProbes independently seeded randomized searches,
// each capped at one solution and an equal slice of the stage budget.
// Solutions are aggregated across probes: the first distinct second
// solution decides NonUnique. Probe order and branching are pure functions
// of the request seed.
func (c *Checker) runProbes(ctx context.Context, req *UniquenessCheckRequest, budget time.Duration, res *UniquenessCheckResult) bool {
	start := time.Now()
	deadline := start.Add(budget)
	defer func() {
		res.StageElapsed[StageProbes] = time.Since(start)
	}()

	seeds := ProbeSeeds(req.Seed, req.NumProbes)
	slice := budget / time.Duration(req.NumProbes)
	prop := c.propagator(req)
	nodes := 0
	var first domain.Solution
	for i, probeSeed := range seeds {
		now := time.Now()
		if !now.Before(deadline) || ctx.Err() != nil {
			break
		}
		pd := now.Add(slice)
		if pd.After(deadline) {
			pd = deadline
		}
		r := search.Run(ctx, req.Puzzle, prop, search.Options{
			Deadline:    pd,
			SolutionCap: 1,
			Rng:         rand.New(rand.NewSource(probeSeed)),
		})
		res.ProbesExecuted++
		nodes += r.Stats.Nodes
		c.Logger.Debug("probe done",
			"probe", i,
			"solutions", r.Stats.Solutions,
			"nodes", r.Stats.Nodes,
			"timed_out", r.Stats.TimedOut,
		)
		if r.Stats.Solutions == 0 {
			continue
		}
		sol := r.Solutions[0]
		if first == nil {
			first = sol.Clone()
			continue
		}
		if !first.Equal(sol) {
			res.Decision = NonUnique
			res.StageDecided = StageProbes
			res.StageNodes[StageProbes] = nodes
			res.Notes = append(res.Notes, fmt.Sprintf("probes: probe %d found a distinct second solution", i))
			return true
		}
	}
	res.StageNodes[StageProbes] = nodes
	return false
}
