// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package constants

const (
	// BootstrapGroupScore is the fixed quality assigned to every court on the very first round.
	BootstrapGroupScore = 100

	// RoundsOffMultiplier scales rounds-off so it dominates the played-rounds tie breaker.
	RoundsOffMultiplier = 2000

	// MaxTermScore is the upper bound of every normalized score term.
	MaxTermScore = 100
)

// Allocation modes.
const (
	ModeBootstrap   = "bootstrap"
	ModeSteadyState = "steady_state"
)

// Search strategies.
const (
	StrategyAuto                  = "auto"
	StrategyBacktracking          = "backtracking"
	StrategyBacktrackingIterative = "backtracking_iterative"
	StrategySortedWindow          = "sorted_window"
)

// Tie-break policies between equally scored groups.
const (
	TieBreakFirstFound = "first_found"
	TieBreakLowestIDs  = "lowest_ids"
)

// Reasons for a court to be left unfilled.
const (
	ReasonInvalidRequest      = "invalid_request"
	ReasonInsufficientPlayers = "insufficient_players"
	ReasonNoCombination       = "no_combination_satisfies_constraints"
	ReasonSearchCanceled      = "search_canceled"
)

const (
	AllocateFunction = "allocate"
	SearchFunction   = "searchCourt"
)
