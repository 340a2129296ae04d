// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package allocator seats a round's roster on courts.
//
// The first round of an activity has no history to optimize against, so it is filled by level
// (bootstrap). Every later round runs history stats, eligibility selection and the combination
// search (steady state). The switch happens as soon as one past round exists and never goes back.
package allocator

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-court-allocator/pkg/common"
	"github.com/AccelByte/extend-court-allocator/pkg/config"
	"github.com/AccelByte/extend-court-allocator/pkg/constants"
	"github.com/AccelByte/extend-court-allocator/pkg/eligibility"
	"github.com/AccelByte/extend-court-allocator/pkg/envelope"
	"github.com/AccelByte/extend-court-allocator/pkg/history"
	"github.com/AccelByte/extend-court-allocator/pkg/mathutil"
	"github.com/AccelByte/extend-court-allocator/pkg/metrics"
	"github.com/AccelByte/extend-court-allocator/pkg/models"
	"github.com/AccelByte/extend-court-allocator/pkg/scoring"
	"github.com/AccelByte/extend-court-allocator/pkg/search"
)

type Allocator struct {
	cfg      *config.Config
	metrics  metrics.AllocationMetrics
	selector *eligibility.Selector
	weights  scoring.Weights
}

// New returns an Allocator. A nil cfg uses config.Default().
func New(cfg *config.Config, m metrics.AllocationMetrics) (*Allocator, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Allocator{
		cfg:      cfg,
		metrics:  m,
		selector: eligibility.NewSelector(cfg.RoundsOffMultiplier),
		weights:  scoring.WeightsFromConfig(cfg),
	}, nil
}

// Allocate computes one round. It never fails: an invalid request yields an empty result with reason
// invalid_request, and courts that cannot be filled are listed in UnfilledCourts.
func (a *Allocator) Allocate(rootScope *envelope.Scope, request models.AllocationRequest) models.AllocationResult {
	scope := rootScope.NewChildScope(constants.AllocateFunction)
	defer scope.Finish()

	start := time.Now()

	if err := request.Validate(); err != nil {
		scope.Log.WithError(err).Warn("invalid allocation request")
		return models.AllocationResult{
			Courts:         []models.CourtAllocation{},
			Seats:          []models.Seat{},
			UnfilledCourts: request.Courts,
			Reason:         constants.ReasonInvalidRequest,
		}
	}

	req := request.Copy()
	if req.SkillLevelMin == 0 && req.SkillLevelMax == 0 {
		req.SkillLevelMin, req.SkillLevelMax = mathutil.MinMax(levels(req.Roster))
	}

	stats := history.NewStats(req.PastAssignments)

	var result models.AllocationResult
	if !stats.HasHistory() {
		result = a.bootstrap(scope, req)
	} else {
		result = a.steadyState(scope, req, stats)
	}
	result.Seats = models.Flatten(result.Courts)

	elapsed := time.Since(start)
	if a.metrics != nil {
		a.metrics.AddAllocateElapsedTimeMs(result.Mode, elapsed)
		a.metrics.AddCourtsFilled(result.Mode, len(result.Courts))
	}

	scope.SetAttributes("mode", result.Mode)
	scope.SetAttributes("courtsFilled", len(result.Courts))
	scope.Log.WithFields(logrus.Fields{
		"mode":           result.Mode,
		"rounds":         stats.TotalRounds(),
		"roster":         len(req.Roster),
		"courts":         len(req.Courts),
		"slotsPerCourt":  req.SlotsPerCourt,
		"courtsFilled":   len(result.Courts),
		"unfilledCourts": len(result.UnfilledCourts),
		"reason":         result.Reason,
		"elapsed":        elapsed.String(),
	}).Info("allocation done")
	if scope.Log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		scope.Log.Debugf("allocation seats: %s", common.LogJSONFormatter(result.Seats))
	}

	return result
}

func (a *Allocator) steadyState(scope *envelope.Scope, req models.AllocationRequest, stats *history.Stats) models.AllocationResult {
	selection := a.selector.Select(scope, req.Roster, req.Capacity(), stats, req.RandomSeed)

	scorer := scoring.NewScorer(a.weights, req.SkillLevelMin, req.SkillLevelMax, stats)
	strategy, err := search.New(a.cfg.SearchStrategy, search.Options{
		Scorer:        scorer,
		TieBreak:      a.cfg.SearchTieBreak,
		MaxIterations: a.cfg.SearchMaxIterations,
		AutoThreshold: a.cfg.SearchAutoHeuristicThreshold,
	})
	if err != nil {
		// config was validated in New, only a hand built Allocator gets here
		scope.Log.WithError(err).Error("unable to create search strategy")
		return models.AllocationResult{
			Mode:           constants.ModeSteadyState,
			UnfilledCourts: req.Courts,
			Reason:         constants.ReasonInvalidRequest,
		}
	}

	searchScope, cancel := scope.WithTimeout("search", a.cfg.SearchTimeout())
	defer cancel()
	defer searchScope.Finish()

	outcome := search.NewCombinationSearch(strategy, scorer, a.metrics).FillCourts(
		searchScope,
		selection.Pool,
		req.Courts,
		req.SlotsPerCourt,
		selection.MandatoryCount,
		selection.OptionalBudget,
	)

	return models.AllocationResult{
		Mode:           constants.ModeSteadyState,
		Courts:         outcome.Courts,
		UnfilledCourts: outcome.Unfilled,
		Reason:         outcome.Reason,
	}
}

func levels(roster []models.ParticipantInfo) []int {
	out := make([]int, len(roster))
	for i, p := range roster {
		out[i] = p.Level
	}
	return out
}
