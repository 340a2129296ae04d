// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package history derives rotation and repeat-grouping statistics from past round assignments.
package history

import (
	"sort"

	"github.com/elliotchance/pie/v2"

	"github.com/AccelByte/extend-court-allocator/pkg/models"
)

type groupKey struct {
	round models.RoundID
	court models.CourtID
}

// Stats is an in-memory snapshot of who played together on which court in which round.
// It is rebuilt from the full assignment list for every round computed and never mutated afterwards.
type Stats struct {
	// rounds sorted from most recent to oldest
	rounds []models.RoundID
	// participants seen in each round
	playedIn map[models.RoundID]map[models.ParticipantID]struct{}
	// past court groups, one per (round, court)
	groups [][]models.ParticipantID
	// index of groups per participant, used to skip groups that cannot overlap
	groupsOf map[models.ParticipantID][]int
	played   map[models.ParticipantID]int
}

// NewStats builds the snapshot. The order of assignments does not matter and duplicates are ignored.
func NewStats(assignments []models.PastAssignment) *Stats {
	playedIn := make(map[models.RoundID]map[models.ParticipantID]struct{})
	members := make(map[groupKey]map[models.ParticipantID]struct{})

	for _, a := range assignments {
		if _, ok := playedIn[a.RoundID]; !ok {
			playedIn[a.RoundID] = make(map[models.ParticipantID]struct{})
		}
		playedIn[a.RoundID][a.ParticipantID] = struct{}{}

		key := groupKey{round: a.RoundID, court: a.CourtID}
		if _, ok := members[key]; !ok {
			members[key] = make(map[models.ParticipantID]struct{})
		}
		members[key][a.ParticipantID] = struct{}{}
	}

	rounds := pie.Keys(playedIn)
	sort.Slice(rounds, func(i, j int) bool { return rounds[i] > rounds[j] })

	keys := pie.Keys(members)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].round != keys[j].round {
			return keys[i].round > keys[j].round
		}
		return keys[i].court < keys[j].court
	})

	s := &Stats{
		rounds:   rounds,
		playedIn: playedIn,
		groups:   make([][]models.ParticipantID, 0, len(keys)),
		groupsOf: make(map[models.ParticipantID][]int),
		played:   make(map[models.ParticipantID]int),
	}
	for i, key := range keys {
		group := models.SortedIDs(pie.Keys(members[key]))
		s.groups = append(s.groups, group)
		for _, id := range group {
			s.groupsOf[id] = append(s.groupsOf[id], i)
		}
	}
	for _, round := range playedIn {
		for id := range round {
			s.played[id]++
		}
	}
	return s
}

// TotalRounds returns the number of distinct rounds represented.
func (s *Stats) TotalRounds() int {
	return len(s.rounds)
}

// HasHistory reports whether at least one round was played.
func (s *Stats) HasHistory() bool {
	return len(s.rounds) > 0
}

// RoundsSinceLastPlayed counts the consecutive most recent rounds the participant sat out.
// It is 0 without history and TotalRounds for a participant who never played.
func (s *Stats) RoundsSinceLastPlayed(id models.ParticipantID) int {
	for i, round := range s.rounds {
		if _, ok := s.playedIn[round][id]; ok {
			return i
		}
	}
	return len(s.rounds)
}

// PlayedRounds counts the rounds in which the participant was seated.
func (s *Stats) PlayedRounds(id models.ParticipantID) int {
	return s.played[id]
}

// RepeatGroupingScore measures in [0,100] how much of group already played together.
//
// Every past court group sharing at least two members with group adds the overlap size to sum
// and min(pastGroupSize, len(group)) to totalSeats. Single member coincidences are ignored.
func (s *Stats) RepeatGroupingScore(group []models.ParticipantID) int {
	if len(group) < 2 || len(s.groups) == 0 {
		return 0
	}

	inGroup := make(map[models.ParticipantID]struct{}, len(group))
	for _, id := range group {
		inGroup[id] = struct{}{}
	}

	// count overlap per past group using the participant index
	overlap := make(map[int]int)
	for id := range inGroup {
		for _, gi := range s.groupsOf[id] {
			overlap[gi]++
		}
	}

	var sum, totalSeats int
	for gi, shared := range overlap {
		if shared < 2 {
			continue
		}
		sum += shared
		totalSeats += min(len(s.groups[gi]), len(inGroup))
	}
	if totalSeats == 0 {
		return 0
	}
	return sum * 100 / totalSeats
}

// PairCount returns how many past court groups contained both participants.
func (s *Stats) PairCount(a, b models.ParticipantID) int {
	count := 0
	for _, gi := range s.groupsOf[a] {
		if pie.Contains(s.groups[gi], b) {
			count++
		}
	}
	return count
}
