// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package search

import (
	"github.com/willf/bitset"

	"github.com/AccelByte/extend-court-allocator/pkg/models"
)

// Pool is an arena of candidates addressed by index. Seated candidates are cleared from the
// active set instead of being unlinked, so restoring one is a single bit flip.
type Pool struct {
	candidates []models.ParticipantInfo
	active     *bitset.BitSet
}

// NewPool copies candidates into the arena, all active. Candidate order is kept and drives enumeration order.
func NewPool(candidates []models.ParticipantInfo) *Pool {
	p := &Pool{
		candidates: append([]models.ParticipantInfo{}, candidates...),
		active:     bitset.New(uint(len(candidates))),
	}
	for i := range p.candidates {
		p.active.Set(uint(i))
	}
	return p
}

// Len returns the number of active candidates.
func (p *Pool) Len() int {
	return int(p.active.Count())
}

// Active returns the active indices in arena order.
func (p *Pool) Active() []int {
	indices := make([]int, 0, p.Len())
	for i, ok := p.active.NextSet(0); ok; i, ok = p.active.NextSet(i + 1) {
		indices = append(indices, int(i))
	}
	return indices
}

// IsActive reports whether index i is still available.
func (p *Pool) IsActive(i int) bool {
	return i >= 0 && i < len(p.candidates) && p.active.Test(uint(i))
}

// Participant returns the candidate stored at index i.
func (p *Pool) Participant(i int) models.ParticipantInfo {
	return p.candidates[i]
}

// Members resolves indices to participants.
func (p *Pool) Members(indices []int) []models.ParticipantInfo {
	members := make([]models.ParticipantInfo, 0, len(indices))
	for _, i := range indices {
		members = append(members, p.candidates[i])
	}
	return members
}

// Remove marks indices as seated.
func (p *Pool) Remove(indices []int) {
	for _, i := range indices {
		p.active.Clear(uint(i))
	}
}

// Restore makes indices available again.
func (p *Pool) Restore(indices []int) {
	for _, i := range indices {
		p.active.Set(uint(i))
	}
}

// CountMandatory returns the number of active mandatory candidates.
func (p *Pool) CountMandatory() (count int) {
	for i, ok := p.active.NextSet(0); ok; i, ok = p.active.NextSet(i + 1) {
		if p.candidates[i].Mandatory {
			count++
		}
	}
	return count
}
