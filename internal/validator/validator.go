package validator

import (
	"context"

	"svw.info/hidato/internal/domain"
)

// FastValidator checks a candidate grid for constraint violations without
// searching: value range, duplicates, and pairwise distance consistency
// between placed values (consecutive placed values must be neighbors).
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, p *domain.Puzzle) (bool, []domain.Position, error) {
	conf := make([]domain.Position, 0, 8)
	n := p.MaxValue()
	posOf := make([]int, n+1) // value -> cell index + 1
	for idx, val := range p.Cells {
		if val == 0 {
			continue
		}
		pos := domain.Position{Row: idx / p.Size, Col: idx % p.Size}
		if val < 1 || val > n {
			conf = append(conf, pos)
			continue
		}
		if posOf[val] != 0 {
			conf = append(conf, pos)
			continue
		}
		posOf[val] = idx + 1
	}
	// pairwise reachability: a path of |v-w| steps must fit between any two
	// placed values, so their grid distance may not exceed that gap
	placed := make([]int, 0, n)
	for val := 1; val <= n; val++ {
		if posOf[val] != 0 {
			placed = append(placed, val)
		}
	}
	for i := 0; i < len(placed); i++ {
		for j := i + 1; j < len(placed); j++ {
			vi, vj := placed[i], placed[j]
			pi := domain.Position{Row: (posOf[vi] - 1) / p.Size, Col: (posOf[vi] - 1) % p.Size}
			pj := domain.Position{Row: (posOf[vj] - 1) / p.Size, Col: (posOf[vj] - 1) % p.Size}
			if domain.Distance(pi, pj, p.Adjacency) > vj-vi {
				conf = append(conf, pj)
			}
		}
	}
	return len(conf) == 0, conf, nil
}
