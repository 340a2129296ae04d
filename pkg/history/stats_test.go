// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package history

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AccelByte/extend-court-allocator/pkg/models"
)

// round builds assignments for one round, courts given as groups of participant ids.
func round(r models.RoundID, courts ...[]models.ParticipantID) []models.PastAssignment {
	var out []models.PastAssignment
	for i, court := range courts {
		for _, id := range court {
			out = append(out, models.PastAssignment{RoundID: r, CourtID: models.CourtID(i + 1), ParticipantID: id})
		}
	}
	return out
}

func ids(v ...int) []models.ParticipantID {
	out := make([]models.ParticipantID, len(v))
	for i, x := range v {
		out[i] = models.ParticipantID(x)
	}
	return out
}

func sampleHistory() []models.PastAssignment {
	var a []models.PastAssignment
	a = append(a, round(1, ids(1, 2, 3, 4), ids(5, 6, 7, 8))...)
	a = append(a, round(2, ids(1, 2, 5, 6), ids(3, 4, 9, 10))...)
	a = append(a, round(3, ids(1, 3, 5, 9), ids(2, 4, 6, 10))...)
	return a
}

func TestEmptyHistory(t *testing.T) {
	s := NewStats(nil)

	assert.Equal(t, 0, s.TotalRounds())
	assert.False(t, s.HasHistory())
	assert.Equal(t, 0, s.RoundsSinceLastPlayed(1))
	assert.Equal(t, 0, s.PlayedRounds(1))
	assert.Equal(t, 0, s.RepeatGroupingScore(ids(1, 2, 3, 4)))
}

func TestTotalRounds(t *testing.T) {
	s := NewStats(sampleHistory())
	assert.Equal(t, 3, s.TotalRounds())
	assert.True(t, s.HasHistory())
}

func TestRoundsSinceLastPlayed(t *testing.T) {
	s := NewStats(sampleHistory())

	tests := []struct {
		id   models.ParticipantID
		want int
	}{
		{id: 1, want: 0},  // played round 3
		{id: 7, want: 2},  // last played round 1
		{id: 8, want: 2},  // last played round 1
		{id: 9, want: 0},  // played rounds 2 and 3
		{id: 42, want: 3}, // never played
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.RoundsSinceLastPlayed(tt.id), "participant %d", tt.id)
	}
}

func TestRoundsSinceLastPlayedUsesRoundOrderNotInputOrder(t *testing.T) {
	var a []models.PastAssignment
	a = append(a, round(10, ids(1, 2))...)
	a = append(a, round(5, ids(3, 4))...)
	s := NewStats(a)

	assert.Equal(t, 0, s.RoundsSinceLastPlayed(1))
	assert.Equal(t, 1, s.RoundsSinceLastPlayed(3))
}

func TestPlayedRounds(t *testing.T) {
	s := NewStats(sampleHistory())
	assert.Equal(t, 3, s.PlayedRounds(1))
	assert.Equal(t, 1, s.PlayedRounds(7))
	assert.Equal(t, 2, s.PlayedRounds(9))
	assert.Equal(t, 0, s.PlayedRounds(99))
}

func TestRepeatGroupingScore(t *testing.T) {
	s := NewStats(sampleHistory())

	tests := []struct {
		name  string
		group []models.ParticipantID
		want  int
	}{
		{
			name:  "exact repeat of a past court",
			group: ids(5, 6, 7, 8),
			// round1 court2 shares 4 of 4, round2 court1 shares 2 (5,6), round3 court2 shares 1 (6) -> ignored
			want: (4 + 2) * 100 / (4 + 4),
		},
		{
			name:  "never played together",
			group: ids(7, 9, 11, 42),
			want:  0,
		},
		{
			name:  "single coincidences are ignored",
			group: ids(1, 6, 10, 8),
			// r1c1{1}, r1c2{6,8}=2, r2c1{1,6}=2, r2c2{10}, r3c1{1}, r3c2{6,10}=2
			want: (2 + 2 + 2) * 100 / (4 + 4 + 4),
		},
		{
			name:  "group smaller than two",
			group: ids(1),
			want:  0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.RepeatGroupingScore(tt.group)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestRepeatGroupingScoreRanksNovelPairsHigher(t *testing.T) {
	// a and b shared a court in 3 of the last 5 rounds, c and d never did
	var a []models.PastAssignment
	a = append(a, round(1, ids(1, 2), ids(3, 5))...)
	a = append(a, round(2, ids(1, 6), ids(2, 7))...)
	a = append(a, round(3, ids(1, 2), ids(4, 8))...)
	a = append(a, round(4, ids(1, 2), ids(3, 9))...)
	a = append(a, round(5, ids(4, 6), ids(3, 7))...)
	s := NewStats(a)

	assert.Greater(t, s.RepeatGroupingScore(ids(1, 2)), s.RepeatGroupingScore(ids(3, 4)))
	assert.Equal(t, 0, s.RepeatGroupingScore(ids(3, 4)))
	assert.Equal(t, 3, s.PairCount(1, 2))
	assert.Equal(t, 0, s.PairCount(3, 4))
}

func TestStatsIgnoreAssignmentOrder(t *testing.T) {
	assignments := sampleHistory()
	shuffled := append([]models.PastAssignment{}, assignments...)
	rand.New(rand.NewSource(7)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	a := NewStats(assignments)
	b := NewStats(shuffled)

	assert.Equal(t, a.TotalRounds(), b.TotalRounds())
	for id := models.ParticipantID(1); id <= 12; id++ {
		assert.Equal(t, a.RoundsSinceLastPlayed(id), b.RoundsSinceLastPlayed(id))
		assert.Equal(t, a.PlayedRounds(id), b.PlayedRounds(id))
	}
	groups := [][]models.ParticipantID{ids(1, 2, 3, 4), ids(5, 6, 7, 8), ids(1, 6, 10, 8), ids(2, 3, 9, 10)}
	for _, g := range groups {
		assert.Equal(t, a.RepeatGroupingScore(g), b.RepeatGroupingScore(g))
	}
}
