// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package scoring

import "github.com/AccelByte/extend-court-allocator/pkg/config"

// Weights multiply each normalized term. Relative weighting is a policy choice, callers pin it
// through configuration rather than relying on a single built-in ratio.
type Weights struct {
	History       int
	LevelRange    int
	LevelVariance int
	Gender        int
}

// DefaultWeights puts the repeat-grouping penalty first, then level range, then variance and gender.
func DefaultWeights() Weights {
	return WeightsFromConfig(config.Default())
}

func WeightsFromConfig(cfg *config.Config) Weights {
	return Weights{
		History:       cfg.WeightHistory,
		LevelRange:    cfg.WeightLevelRange,
		LevelVariance: cfg.WeightLevelVariance,
		Gender:        cfg.WeightGender,
	}
}
