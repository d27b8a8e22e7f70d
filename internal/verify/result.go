package verify

import "time"

// Decision is the tri-state verification outcome. The pipeline never claims
// certainty it cannot support: running out of budget yields Inconclusive.
type Decision int

const (
	Inconclusive Decision = iota
	Unique
	NonUnique
)

func (d Decision) String() string {
	switch d {
	case Unique:
		return "unique"
	case NonUnique:
		return "non_unique"
	default:
		return "inconclusive"
	}
}

// Stage names, in pipeline order.
const (
	StageEarlyExit = "early_exit"
	StageProbes    = "probes"
	StageSAT       = "sat"
)

// UniquenessCheckResult is the terminal outcome of one verification call.
// It is produced once and never mutated after return.
type UniquenessCheckResult struct {
	RunID          string                   `json:"runId"`
	Decision       Decision                 `json:"decision"`
	StageDecided   string                   `json:"stageDecided,omitempty"`
	Elapsed        time.Duration            `json:"elapsed"`
	StageElapsed   map[string]time.Duration `json:"stageElapsed"`
	StageNodes     map[string]int           `json:"stageNodes"`
	ProbesExecuted int                      `json:"probesExecuted"`
	Notes          []string                 `json:"notes,omitempty"`
}

func (r *UniquenessCheckResult) IsUnique() bool       { return r.Decision == Unique }
func (r *UniquenessCheckResult) IsNonUnique() bool    { return r.Decision == NonUnique }
func (r *UniquenessCheckResult) IsInconclusive() bool { return r.Decision == Inconclusive }

// Metrics flattens the result into the key->value contract consumed by the
// metrics-aggregation collaborators.
func (r *UniquenessCheckResult) Metrics() map[string]any {
	m := map[string]any{
		"run_id":          r.RunID,
		"decision":        r.Decision.String(),
		"stage_decided":   r.StageDecided,
		"elapsed_ms":      r.Elapsed.Milliseconds(),
		"probes_executed": r.ProbesExecuted,
	}
	for stage, d := range r.StageElapsed {
		m["stage_"+stage+"_elapsed_ms"] = d.Milliseconds()
	}
	for stage, n := range r.StageNodes {
		m["stage_"+stage+"_nodes"] = n
	}
	return m
}
