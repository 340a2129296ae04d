// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package search

import (
	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-court-allocator/pkg/constants"
	"github.com/AccelByte/extend-court-allocator/pkg/envelope"
	"github.com/AccelByte/extend-court-allocator/pkg/metrics"
	"github.com/AccelByte/extend-court-allocator/pkg/models"
)

// Outcome of filling a round's courts.
type Outcome struct {
	Courts   []models.CourtAllocation
	Unfilled []models.CourtID
	// Reason explains the first unfilled court, empty when every court was filled.
	Reason string
}

// CombinationSearch fills courts one at a time, greedy over courts and exhaustive within a court
// when the strategy is a backtracking one.
type CombinationSearch struct {
	strategy Strategy
	scorer   GroupScorer
	metrics  metrics.AllocationMetrics
}

func NewCombinationSearch(strategy Strategy, scorer GroupScorer, m metrics.AllocationMetrics) *CombinationSearch {
	return &CombinationSearch{strategy: strategy, scorer: scorer, metrics: m}
}

// FillCourts seats candidates on courts in order. mandatoryCount candidates flagged mandatory must
// be seated and at most optionalBudget optional candidates may be. Both budgets shrink by what each
// court actually uses. The first court that cannot be filled stops the round; courts already filled
// are kept.
func (c *CombinationSearch) FillCourts(
	rootScope *envelope.Scope,
	candidates []models.ParticipantInfo,
	courts []models.CourtID,
	slotsPerCourt int,
	mandatoryCount int,
	optionalBudget int,
) Outcome {
	scope := rootScope.NewChildScope("FillCourts")
	defer scope.Finish()

	pool := NewPool(candidates)
	outcome := Outcome{Courts: make([]models.CourtAllocation, 0, len(courts))}
	mandatoryLeft := mandatoryCount
	optionalLeft := optionalBudget

	stop := func(at int, reason string, fields logrus.Fields) {
		outcome.Unfilled = append(outcome.Unfilled, courts[at:]...)
		outcome.Reason = reason
		fields["court"] = courts[at]
		fields["unfilledCourts"] = len(courts) - at
		fields["reason"] = reason
		scope.Log.WithFields(fields).Warn("court left unfilled")
		if c.metrics != nil {
			for range courts[at:] {
				c.metrics.AddUnfilledCourtReason(reason)
			}
		}
	}

	for i, court := range courts {
		if pool.Len() < slotsPerCourt {
			stop(i, constants.ReasonInsufficientPlayers, logrus.Fields{"remaining": pool.Len(), "slots": slotsPerCourt})
			break
		}

		remainingCourts := len(courts) - i
		bounds := Bounds{
			Size:         slotsPerCourt,
			MinMandatory: max(0, mandatoryLeft-(remainingCourts-1)*slotsPerCourt),
			MaxOptional:  optionalLeft,
		}

		courtScope := scope.NewChildScope(constants.SearchFunction)
		courtScope.SetAttributes("court", int(court))
		courtScope.SetAttributes("pool", pool.Len())
		result := c.strategy.Search(courtScope, pool, bounds)
		courtScope.SetAttributes("iterations", result.Iterations)
		courtScope.Finish()

		if c.metrics != nil {
			c.metrics.AddSearchIterations(result.Strategy, result.Iterations)
		}

		fields := logrus.Fields{
			"court":        court,
			"strategy":     result.Strategy,
			"pool":         pool.Len(),
			"minMandatory": bounds.MinMandatory,
			"maxOptional":  bounds.MaxOptional,
			"iterations":   result.Iterations,
		}

		if !result.Found {
			reason := constants.ReasonNoCombination
			if result.Canceled || result.Truncated {
				reason = constants.ReasonSearchCanceled
			}
			stop(i, reason, fields)
			break
		}

		members := pool.Members(result.Indices)
		allocation := models.CourtAllocation{
			CourtID:   court,
			Members:   members,
			Score:     result.Score,
			Breakdown: c.scorer.Breakdown(members),
		}
		outcome.Courts = append(outcome.Courts, allocation)
		pool.Remove(result.Indices)

		used := allocation.CountMandatory()
		mandatoryLeft -= used
		optionalLeft -= len(members) - used

		fields["score"] = result.Score
		fields["members"] = allocation.MemberIDs()
		scope.Log.WithFields(fields).Debug("court filled")

		if result.Canceled && i+1 < len(courts) {
			stop(i+1, constants.ReasonSearchCanceled, logrus.Fields{})
			break
		}
	}

	return outcome
}
