// Package strategy holds the named heuristic profiles used to diversify
// backtracking search order, and the registry they are looked up in.
package strategy

import (
	"fmt"
	"sort"
	"sync"
)

// OrderingMode selects how a profile orders candidate positions.
type OrderingMode int

const (
	OrderRowMajor     OrderingMode = iota // ascending row, then column
	OrderCenterOut                        // ascending distance from grid center
	OrderMRV                              // most constrained cell first, then row-major
	OrderDegreeBiased                     // descending empty-neighbor degree
)

// CapDetectNonUnique marks profiles usable by the early-exit stage.
const CapDetectNonUnique = "detect_non_unique"

var (
	ErrDuplicateProfile   = fmt.Errorf("strategy: duplicate profile id")
	ErrProfileNotFound    = fmt.Errorf("strategy: profile not found")
	ErrInvalidBudgetShare = fmt.Errorf("strategy: budget share outside [0,1]")
	ErrEmptyProfileID     = fmt.Errorf("strategy: empty profile id")
)

// Profile is an immutable heuristic configuration. Profiles differ only in
// the position-ordering parameter used by the bounded search.
type Profile struct {
	ID           string
	Enabled      bool
	BudgetShare  float64
	Ordering     OrderingMode
	Capabilities []string
}

// NewProfile validates and builds a profile.
func NewProfile(id string, share float64, ordering OrderingMode, caps ...string) (Profile, error) {
	if id == "" {
		return Profile{}, ErrEmptyProfileID
	}
	if share < 0 || share > 1 {
		return Profile{}, fmt.Errorf("%w: %s=%g", ErrInvalidBudgetShare, id, share)
	}
	return Profile{
		ID:           id,
		Enabled:      true,
		BudgetShare:  share,
		Ordering:     ordering,
		Capabilities: caps,
	}, nil
}

// Has reports whether the profile advertises a capability.
func (p Profile) Has(capability string) bool {
	for _, c := range p.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

// Registry is a write-once-per-id, read-many profile table. Iteration order
// is sorted by id so time-sliced stages are reproducible.
type Registry struct {
	mu       sync.Mutex
	profiles map[string]Profile
}

func NewRegistry() *Registry {
	return &Registry{profiles: make(map[string]Profile)}
}

// Register adds a profile, rejecting duplicates rather than overwriting.
func (r *Registry) Register(p Profile) error {
	if p.ID == "" {
		return ErrEmptyProfileID
	}
	if p.BudgetShare < 0 || p.BudgetShare > 1 {
		return fmt.Errorf("%w: %s=%g", ErrInvalidBudgetShare, p.ID, p.BudgetShare)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.profiles[p.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateProfile, p.ID)
	}
	r.profiles[p.ID] = p
	return nil
}

// Get looks up a profile by id.
func (r *Registry) Get(id string) (Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, id)
	}
	return p, nil
}

// ListAll returns all profiles sorted by id.
func (r *Registry) ListAll() []Profile {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// DefaultRegistry returns a registry preloaded with the four stock profiles.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	defaults := []struct {
		id       string
		ordering OrderingMode
	}{
		{"row_major", OrderRowMajor},
		{"center_out", OrderCenterOut},
		{"mrv", OrderMRV},
		{"degree_biased", OrderDegreeBiased},
	}
	for _, d := range defaults {
		p, err := NewProfile(d.id, 0.25, d.ordering, CapDetectNonUnique)
		if err != nil {
			panic(err) // stock profiles are statically valid
		}
		if err := r.Register(p); err != nil {
			panic(err)
		}
	}
	return r
}
