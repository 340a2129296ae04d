// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package search

import (
	"math/rand"

	"github.com/AccelByte/extend-court-allocator/pkg/models"
	"github.com/AccelByte/extend-court-allocator/pkg/scoring"
)

type constantScorer int

func (c constantScorer) Score(group []models.ParticipantInfo) int { return int(c) }
func (c constantScorer) Breakdown(group []models.ParticipantInfo) models.ScoreBreakdown {
	return models.ScoreBreakdown{Gender: int(c)}
}

func levelScorer() *scoring.Scorer {
	return scoring.NewScorer(scoring.DefaultWeights(), 1, 10, nil)
}

// candidates builds participants with ids from 1 and the given levels; ids in mandatory are flagged.
func candidates(levels []int, mandatory ...int) []models.ParticipantInfo {
	flag := map[int]bool{}
	for _, id := range mandatory {
		flag[id] = true
	}
	out := make([]models.ParticipantInfo, len(levels))
	for i, l := range levels {
		id := i + 1
		gender := models.GenderMale
		if id%2 == 0 {
			gender = models.GenderFemale
		}
		out[i] = models.ParticipantInfo{ID: models.ParticipantID(id), Level: l, Gender: gender, Mandatory: flag[id]}
	}
	return out
}

func randomCandidates(rng *rand.Rand, n int) []models.ParticipantInfo {
	out := make([]models.ParticipantInfo, n)
	for i := range out {
		out[i] = models.ParticipantInfo{
			ID:        models.ParticipantID(i + 1),
			Level:     1 + rng.Intn(10),
			Gender:    models.Gender(1 + rng.Intn(2)),
			Mandatory: rng.Intn(3) == 0,
		}
	}
	return out
}

var exhaustiveVariants = []string{"backtracking", "backtracking_iterative"}
