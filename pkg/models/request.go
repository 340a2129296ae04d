// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"errors"
	"fmt"

	validator "github.com/AccelByte/justice-input-validation-go"
	"github.com/mitchellh/copystructure"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidSlotsPerCourt = errors.New("slots per court must be greater than 0")
	ErrNoCourts             = errors.New("no courts supplied")
	ErrEmptyRoster          = errors.New("roster is empty")
	ErrInvalidSkillRange    = errors.New("skill level max must not be lower than skill level min")
	ErrDuplicateParticipant = errors.New("participant appears more than once in the roster")
	ErrDuplicateCourt       = errors.New("court appears more than once")
)

// AllocationRequest carries everything one allocation run needs. All collections are already
// materialized by the caller; the engine performs no I/O.
type AllocationRequest struct {
	PastAssignments []PastAssignment  `json:"past_assignments" valid:"-"`
	Roster          []ParticipantInfo `json:"roster"           valid:"-"`
	Courts          []CourtID         `json:"courts"           valid:"-"`
	SlotsPerCourt   int               `json:"slots_per_court"  valid:"range(1|64)"`
	SkillLevelMin   int               `json:"skill_level_min"  optional:"true"`
	SkillLevelMax   int               `json:"skill_level_max"  optional:"true"`
	RandomSeed      int64             `json:"random_seed"      optional:"true"`
}

// Capacity is the number of seats available in the round.
func (r AllocationRequest) Capacity() int {
	return r.SlotsPerCourt * len(r.Courts)
}

// Copy returns a deep copy so the engine never writes through to the caller's slices.
func (r AllocationRequest) Copy() AllocationRequest {
	copied, err := copystructure.Copy(r)
	if err != nil {
		logrus.Warn("failed copy allocationRequest:", err)
	}
	copyRequest, _ := copied.(AllocationRequest)
	return copyRequest
}

// Validate reports configuration errors. A request that fails validation yields an empty allocation.
func (r *AllocationRequest) Validate() error {
	if r.SlotsPerCourt <= 0 {
		return ErrInvalidSlotsPerCourt
	}
	if _, err := validator.ValidateStruct(r); err != nil {
		return fmt.Errorf("invalid allocation request: %w", err)
	}
	if len(r.Courts) == 0 {
		return ErrNoCourts
	}
	if len(r.Roster) == 0 {
		return ErrEmptyRoster
	}
	if r.SkillLevelMax < r.SkillLevelMin {
		return ErrInvalidSkillRange
	}

	courts := make(map[CourtID]struct{}, len(r.Courts))
	for _, c := range r.Courts {
		if _, ok := courts[c]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateCourt, c)
		}
		courts[c] = struct{}{}
	}

	seen := make(map[ParticipantID]struct{}, len(r.Roster))
	for _, p := range r.Roster {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateParticipant, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
