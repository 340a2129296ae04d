// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package eligibility decides who must play, who may play and who sits out a round.
package eligibility

import (
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-court-allocator/pkg/constants"
	"github.com/AccelByte/extend-court-allocator/pkg/envelope"
	"github.com/AccelByte/extend-court-allocator/pkg/models"
)

// HistoryStats is the part of the history snapshot the selector needs.
type HistoryStats interface {
	RoundsSinceLastPlayed(id models.ParticipantID) int
	PlayedRounds(id models.ParticipantID) int
}

// Selection is the annotated pool handed to the combination search.
type Selection struct {
	// Pool is ordered by eligibility, highest first. Mandatory participants come before optional ones.
	Pool []models.ParticipantInfo
	// MandatoryCount participants must be seated this round.
	MandatoryCount int
	// OptionalBudget is the number of seats left for optional participants.
	OptionalBudget int
	// Dropped participants rank strictly below the boundary and are not eligible this round.
	Dropped []models.ParticipantID
	// BoundaryScore is the eligibility score at the capacity cutoff, only meaningful when Dropped or ties exist.
	BoundaryScore int
}

type Selector struct {
	roundsOffMultiplier int
}

func NewSelector(roundsOffMultiplier int) *Selector {
	if roundsOffMultiplier <= 0 {
		roundsOffMultiplier = constants.RoundsOffMultiplier
	}
	return &Selector{roundsOffMultiplier: roundsOffMultiplier}
}

// Score ranks rotation priority: rounds sat out dominate, fewer rounds played breaks ties.
func (s *Selector) Score(stats HistoryStats, id models.ParticipantID) int {
	return stats.RoundsSinceLastPlayed(id)*s.roundsOffMultiplier - stats.PlayedRounds(id)
}

type ranked struct {
	participant models.ParticipantInfo
	score       int
}

// Select partitions roster into mandatory, optional and dropped participants for capacity seats.
// The roster is shuffled with seed before the stable sort so equal scores are ordered randomly.
func (s *Selector) Select(scope *envelope.Scope, roster []models.ParticipantInfo, capacity int, stats HistoryStats, seed int64) Selection {
	if capacity <= 0 || len(roster) == 0 {
		return Selection{}
	}

	candidates := make([]ranked, len(roster))
	for i, p := range roster {
		p.Mandatory = false
		candidates[i] = ranked{participant: p, score: s.Score(stats, p.ID)}
	}

	rng := rand.New(rand.NewSource(seed)) //nolint:gosec
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	selection := Selection{}

	if len(candidates) <= capacity {
		selection.Pool = make([]models.ParticipantInfo, 0, len(candidates))
		for _, c := range candidates {
			selection.Pool = append(selection.Pool, c.participant)
		}
		selection.OptionalBudget = capacity
		return selection
	}

	boundary := candidates[capacity].score
	selection.BoundaryScore = boundary
	selection.Pool = make([]models.ParticipantInfo, 0, capacity+1)
	for _, c := range candidates {
		switch {
		case c.score > boundary:
			c.participant.Mandatory = true
			selection.MandatoryCount++
			selection.Pool = append(selection.Pool, c.participant)
		case c.score == boundary:
			selection.Pool = append(selection.Pool, c.participant)
		default:
			selection.Dropped = append(selection.Dropped, c.participant.ID)
		}
	}
	selection.OptionalBudget = capacity - selection.MandatoryCount

	if scope != nil {
		scope.Log.WithFields(logrus.Fields{
			"capacity":       capacity,
			"roster":         len(roster),
			"boundaryScore":  boundary,
			"mandatory":      selection.MandatoryCount,
			"optional":       len(selection.Pool) - selection.MandatoryCount,
			"optionalBudget": selection.OptionalBudget,
			"dropped":        len(selection.Dropped),
		}).Debug("eligibility selected")
	}
	return selection
}
