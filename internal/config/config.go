// Package config loads pipeline settings from YAML and turns them into
// verification requests. Absent keys keep their stock defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"svw.info/hidato/internal/domain"
	"svw.info/hidato/internal/propagate"
	"svw.info/hidato/internal/verify"
)

var ErrInvalidConfig = errors.New("invalid pipeline config")

// Config mirrors the request surface plus difficulty-indexed budget
// overrides for callers that size budgets by puzzle grade.
type Config struct {
	TotalBudgetMS int64              `yaml:"total_budget_ms"`
	Split         verify.StageSplit  `yaml:"split"`
	NumProbes     int                `yaml:"num_probes"`
	MaxPasses     int                `yaml:"max_passes"`
	EarlyExit     bool               `yaml:"early_exit"`
	Probes        bool               `yaml:"probes"`
	SAT           bool               `yaml:"sat"`
	StrictSAT     bool               `yaml:"strict_sat"`
	BudgetByGrade map[string]int64   `yaml:"budget_by_grade,omitempty"`
}

// Default returns the stock pipeline configuration.
func Default() Config {
	return Config{
		TotalBudgetMS: 1000,
		Split:         verify.DefaultSplit(),
		NumProbes:     verify.DefaultNumProbes,
		MaxPasses:     propagate.DefaultPasses,
		EarlyExit:     true,
		Probes:        true,
		SAT:           false,
	}
}

// Parse unmarshals YAML over the defaults and validates the outcome.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses a YAML config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return Parse(data)
}

func (c Config) validate() error {
	if c.TotalBudgetMS <= 0 {
		return fmt.Errorf("%w: total_budget_ms must be positive", ErrInvalidConfig)
	}
	if c.NumProbes <= 0 {
		return fmt.Errorf("%w: num_probes must be positive", ErrInvalidConfig)
	}
	if c.MaxPasses <= 0 {
		return fmt.Errorf("%w: max_passes must be positive", ErrInvalidConfig)
	}
	for name, share := range map[string]float64{
		"early_exit": c.Split.EarlyExit,
		"probes":     c.Split.Probes,
		"sat":        c.Split.SAT,
	} {
		if share < 0 || share > 1 {
			return fmt.Errorf("%w: split.%s=%g outside [0,1]", ErrInvalidConfig, name, share)
		}
	}
	for grade, ms := range c.BudgetByGrade {
		if _, err := domain.ParseDifficulty(grade); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if ms <= 0 {
			return fmt.Errorf("%w: budget_by_grade.%s must be positive", ErrInvalidConfig, grade)
		}
	}
	return nil
}

// BudgetFor returns the difficulty-specific budget, falling back to the
// global one.
func (c Config) BudgetFor(d domain.Difficulty) time.Duration {
	if ms, ok := c.BudgetByGrade[d.String()]; ok {
		return time.Duration(ms) * time.Millisecond
	}
	return time.Duration(c.TotalBudgetMS) * time.Millisecond
}

// Request builds a verification request for a puzzle under this config.
func (c Config) Request(p *domain.Puzzle, seed int64) *verify.UniquenessCheckRequest {
	req := verify.NewRequest(p, c.BudgetFor(p.Difficulty), seed)
	req.Split = c.Split
	req.NumProbes = c.NumProbes
	req.MaxPasses = c.MaxPasses
	req.EnableEarlyExit = c.EarlyExit
	req.EnableProbes = c.Probes
	req.EnableSAT = c.SAT
	req.StrictSAT = c.StrictSAT
	return req
}
