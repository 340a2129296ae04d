// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package scoring evaluates the quality of one court's group.
package scoring

import (
	"github.com/elliotchance/pie/v2"
	"gonum.org/v1/gonum/stat"

	"github.com/AccelByte/extend-court-allocator/pkg/constants"
	"github.com/AccelByte/extend-court-allocator/pkg/mathutil"
	"github.com/AccelByte/extend-court-allocator/pkg/models"
)

// RepeatGrouping reports how often a group already played together, in [0,100].
type RepeatGrouping interface {
	RepeatGroupingScore(group []models.ParticipantID) int
}

// Scorer is a pure function of the group, the global level bounds, the weights and the history snapshot.
// It holds no mutable state and is safe for concurrent use.
type Scorer struct {
	weights  Weights
	minLevel int
	maxLevel int
	history  RepeatGrouping
}

// NewScorer creates a Scorer. history may be nil, in which case the history term is always 0.
func NewScorer(weights Weights, minLevel, maxLevel int, history RepeatGrouping) *Scorer {
	return &Scorer{
		weights:  weights,
		minLevel: minLevel,
		maxLevel: maxLevel,
		history:  history,
	}
}

// Score returns the weighted total for group.
func (s *Scorer) Score(group []models.ParticipantInfo) int {
	return s.Breakdown(group).Total()
}

// Breakdown returns each weighted, signed term. Spread terms and history are penalties, gender is a reward.
func (s *Scorer) Breakdown(group []models.ParticipantInfo) models.ScoreBreakdown {
	levels := pie.Map(group, func(p models.ParticipantInfo) int { return p.Level })

	breakdown := models.ScoreBreakdown{
		LevelRange:    -LevelRangeScore(levels, s.minLevel, s.maxLevel) * s.weights.LevelRange,
		LevelVariance: -LevelVarianceScore(levels, s.minLevel, s.maxLevel) * s.weights.LevelVariance,
		Gender:        GenderScore(group) * s.weights.Gender,
	}
	if s.history != nil {
		breakdown.History = -s.history.RepeatGroupingScore(pie.Map(group, models.ToID)) * s.weights.History
	}
	return breakdown
}

// LevelRangeScore is the spread between the strongest and weakest member relative to the global range.
func LevelRangeScore(levels []int, minLevel, maxLevel int) int {
	span := maxLevel - minLevel
	if len(levels) < 2 || span <= 0 {
		return 0
	}
	lo, hi := mathutil.MinMax(levels)
	return mathutil.Clamp((hi-lo)*constants.MaxTermScore/span, 0, constants.MaxTermScore)
}

// LevelVarianceScore is the sample standard deviation of levels relative to the global range.
func LevelVarianceScore(levels []int, minLevel, maxLevel int) int {
	span := maxLevel - minLevel
	if len(levels) < 2 || span <= 0 {
		return 0
	}
	values := pie.Map(levels, func(l int) float64 { return float64(l) })
	return int(stat.StdDev(values, nil) * constants.MaxTermScore / float64(span))
}

// GenderScore is 100 for balanced, single gender or tiny groups and decreases with imbalance.
func GenderScore(group []models.ParticipantInfo) int {
	k := len(group)
	if k < 2 {
		return constants.MaxTermScore
	}

	var male, female int
	for _, p := range group {
		switch p.Gender {
		case models.GenderMale:
			male++
		case models.GenderFemale:
			female++
		}
	}
	if male == 0 || female == 0 {
		return constants.MaxTermScore
	}
	imbalance := mathutil.Abs(male - female)
	if imbalance == 0 {
		return constants.MaxTermScore
	}

	maxImbalance := k - 2
	if maxImbalance <= 0 {
		return constants.MaxTermScore
	}
	return mathutil.Clamp((maxImbalance-imbalance)*constants.MaxTermScore/maxImbalance, 0, constants.MaxTermScore)
}
