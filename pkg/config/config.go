// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"

	"github.com/AccelByte/extend-court-allocator/pkg/constants"
	"github.com/AccelByte/extend-court-allocator/pkg/utils"
)

var (
	searchStrategies = []string{
		constants.StrategyAuto,
		constants.StrategyBacktracking,
		constants.StrategyBacktrackingIterative,
		constants.StrategySortedWindow,
	}
	tieBreaks = []string{constants.TieBreakFirstFound, constants.TieBreakLowestIDs}
)

type Config struct {
	WeightHistory       int `env:"WEIGHT_HISTORY"        envDefault:"3" envDocs:"weight of the repeat-grouping penalty"`
	WeightLevelRange    int `env:"WEIGHT_LEVEL_RANGE"    envDefault:"2" envDocs:"weight of the level range penalty"`
	WeightLevelVariance int `env:"WEIGHT_LEVEL_VARIANCE" envDefault:"1" envDocs:"weight of the level standard deviation penalty"`
	WeightGender        int `env:"WEIGHT_GENDER"         envDefault:"1" envDocs:"weight of the gender balance reward"`

	RoundsOffMultiplier int `env:"ROUNDS_OFF_MULTIPLIER" envDefault:"2000" envDocs:"multiplier applied to rounds sat out when ranking eligibility"`
	BootstrapGroupScore int `env:"BOOTSTRAP_GROUP_SCORE" envDefault:"100"  envDocs:"fixed quality score given to every court on the first round"`

	SearchStrategy                string `env:"SEARCH_STRATEGY"                  envDefault:"auto"        envDocs:"auto, backtracking, backtracking_iterative or sorted_window"`
	SearchTieBreak                string `env:"SEARCH_TIE_BREAK"                 envDefault:"first_found" envDocs:"first_found or lowest_ids"`
	SearchAutoHeuristicThreshold  int    `env:"SEARCH_AUTO_HEURISTIC_THRESHOLD"  envDefault:"2000000"     envDocs:"auto strategy switches to sorted_window above this many candidate groups per court"`
	SearchMaxIterations           int    `env:"SEARCH_MAX_ITERATIONS"            envDefault:"0"           envDocs:"max visited search nodes per court (0 means unlimited)"`
	SearchTimeoutMs               int    `env:"SEARCH_TIMEOUT_MS"                envDefault:"0"           envDocs:"timeout for the whole allocation in milliseconds (0 means none)"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("unable to parse environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when nothing is set in the environment.
func Default() *Config {
	return &Config{
		WeightHistory:                3,
		WeightLevelRange:             2,
		WeightLevelVariance:          1,
		WeightGender:                 1,
		RoundsOffMultiplier:          constants.RoundsOffMultiplier,
		BootstrapGroupScore:          constants.BootstrapGroupScore,
		SearchStrategy:               constants.StrategyAuto,
		SearchTieBreak:               constants.TieBreakFirstFound,
		SearchAutoHeuristicThreshold: 2_000_000,
	}
}

func (c *Config) Validate() error {
	if !utils.Contains(searchStrategies, c.SearchStrategy) {
		return fmt.Errorf("unknown search strategy %q", c.SearchStrategy)
	}
	if !utils.Contains(tieBreaks, c.SearchTieBreak) {
		return fmt.Errorf("unknown tie break %q", c.SearchTieBreak)
	}
	if c.WeightHistory < 0 || c.WeightLevelRange < 0 || c.WeightLevelVariance < 0 || c.WeightGender < 0 {
		return fmt.Errorf("score weights must not be negative")
	}
	if c.RoundsOffMultiplier <= 0 {
		return fmt.Errorf("rounds off multiplier must be positive")
	}
	if c.SearchMaxIterations < 0 || c.SearchTimeoutMs < 0 || c.SearchAutoHeuristicThreshold < 0 {
		return fmt.Errorf("search limits must not be negative")
	}
	return nil
}

// SearchTimeout returns the allocation timeout, zero when disabled.
func (c *Config) SearchTimeout() time.Duration {
	return time.Duration(c.SearchTimeoutMs) * time.Millisecond
}
