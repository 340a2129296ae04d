// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package allocator

import (
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-court-allocator/pkg/constants"
	"github.com/AccelByte/extend-court-allocator/pkg/envelope"
	"github.com/AccelByte/extend-court-allocator/pkg/models"
)

// bootstrap fills courts in order with consecutive participants sorted by level, strongest first.
// The seeded shuffle only decides the order among equal levels. A court that cannot be filled
// completely is left empty together with every court after it.
func (a *Allocator) bootstrap(rootScope *envelope.Scope, req models.AllocationRequest) models.AllocationResult {
	scope := rootScope.NewChildScope("bootstrap")
	defer scope.Finish()

	roster := req.Roster
	for i := range roster {
		roster[i].Mandatory = false
	}

	rng := rand.New(rand.NewSource(req.RandomSeed)) //nolint:gosec
	rng.Shuffle(len(roster), func(i, j int) {
		roster[i], roster[j] = roster[j], roster[i]
	})
	sort.SliceStable(roster, func(i, j int) bool {
		return roster[i].Level > roster[j].Level
	})

	result := models.AllocationResult{
		Mode:   constants.ModeBootstrap,
		Courts: make([]models.CourtAllocation, 0, len(req.Courts)),
	}
	for i, court := range req.Courts {
		from := i * req.SlotsPerCourt
		if from+req.SlotsPerCourt > len(roster) {
			result.UnfilledCourts = req.Courts[i:]
			result.Reason = constants.ReasonInsufficientPlayers
			scope.Log.WithFields(logrus.Fields{
				"court":          court,
				"remaining":      len(roster) - from,
				"unfilledCourts": len(result.UnfilledCourts),
				"reason":         result.Reason,
			}).Warn("court left unfilled")
			if a.metrics != nil {
				for range result.UnfilledCourts {
					a.metrics.AddUnfilledCourtReason(result.Reason)
				}
			}
			break
		}

		members := make([]models.ParticipantInfo, req.SlotsPerCourt)
		copy(members, roster[from:from+req.SlotsPerCourt])
		result.Courts = append(result.Courts, models.CourtAllocation{
			CourtID: court,
			Members: members,
			Score:   a.cfg.BootstrapGroupScore,
		})
	}

	return result
}
