// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package models holds the value types exchanged between the allocation engine and its callers.
package models

import (
	"fmt"
	"sort"
)

type (
	ParticipantID int
	CourtID       int
	RoundID       int
)

// Gender of a participant. Unknown counts toward a group's size but not toward either side of the balance.
type Gender int

const (
	GenderUnknown Gender = iota
	GenderMale
	GenderFemale
)

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return "unknown"
	}
}

// ParticipantInfo describes one participant for one round.
// Mandatory is decided per round by the eligibility selector and is never persisted.
type ParticipantInfo struct {
	ID        ParticipantID `json:"id"`
	Gender    Gender        `json:"gender"`
	Level     int           `json:"level"`
	Mandatory bool          `json:"mandatory,omitempty"`
}

func (p ParticipantInfo) String() string {
	flag := ""
	if p.Mandatory {
		flag = "*"
	}
	return fmt.Sprintf("%d%s(L%d,%s)", p.ID, flag, p.Level, p.Gender)
}

// ToID extracts the participant id, handy for pie.Map.
func ToID(p ParticipantInfo) ParticipantID {
	return p.ID
}

// PastAssignment is one seat filled in a past round. Append-only.
type PastAssignment struct {
	RoundID       RoundID       `json:"round_id"`
	CourtID       CourtID       `json:"court_id"`
	ParticipantID ParticipantID `json:"participant_id"`
}

// ScoreBreakdown keeps the individual terms of a court score, already weighted and signed.
type ScoreBreakdown struct {
	LevelRange    int `json:"level_range"`
	LevelVariance int `json:"level_variance"`
	Gender        int `json:"gender"`
	History       int `json:"history"`
}

// Total sums the weighted terms.
func (b ScoreBreakdown) Total() int {
	return b.LevelRange + b.LevelVariance + b.Gender + b.History
}

// CourtAllocation is the group of participants seated on one court for the round being computed.
type CourtAllocation struct {
	CourtID   CourtID           `json:"court_id"`
	Members   []ParticipantInfo `json:"members"`
	Score     int               `json:"score"`
	Breakdown ScoreBreakdown    `json:"breakdown"`
}

// MemberIDs returns the member ids in seat order.
func (c CourtAllocation) MemberIDs() []ParticipantID {
	ids := make([]ParticipantID, 0, len(c.Members))
	for _, m := range c.Members {
		ids = append(ids, m.ID)
	}
	return ids
}

// CountMandatory returns how many members were flagged mandatory.
func (c CourtAllocation) CountMandatory() (count int) {
	for _, m := range c.Members {
		if m.Mandatory {
			count++
		}
	}
	return count
}

// Seat is one entry of the flat allocation output.
type Seat struct {
	CourtID       CourtID       `json:"court_id"`
	ParticipantID ParticipantID `json:"participant_id"`
}

// AllocationResult is the outcome of one allocation run.
type AllocationResult struct {
	Mode           string            `json:"mode"`
	Courts         []CourtAllocation `json:"courts"`
	Seats          []Seat            `json:"seats"`
	UnfilledCourts []CourtID         `json:"unfilled_courts,omitempty"`
	// Reason is set when at least one court was left unfilled or the request was rejected.
	Reason string `json:"reason,omitempty"`
}

// Flatten builds the court-major seat list from the court allocations.
func Flatten(courts []CourtAllocation) []Seat {
	total := 0
	for _, c := range courts {
		total += len(c.Members)
	}
	seats := make([]Seat, 0, total)
	for _, c := range courts {
		for _, m := range c.Members {
			seats = append(seats, Seat{CourtID: c.CourtID, ParticipantID: m.ID})
		}
	}
	return seats
}

// SortedIDs returns a sorted copy of the given ids.
func SortedIDs(ids []ParticipantID) []ParticipantID {
	sorted := append([]ParticipantID{}, ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted
}
