// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package search picks groups of participants for courts.
//
// A Strategy finds the single best group for one court from the active candidates of a Pool.
// CombinationSearch drives a Strategy court by court, shrinking the pool and the mandatory and
// optional budgets as courts are filled.
package search

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/AccelByte/extend-court-allocator/pkg/constants"
	"github.com/AccelByte/extend-court-allocator/pkg/envelope"
	"github.com/AccelByte/extend-court-allocator/pkg/models"
)

// GroupScorer scores one court's group. Implementations must be pure.
type GroupScorer interface {
	Score(group []models.ParticipantInfo) int
	Breakdown(group []models.ParticipantInfo) models.ScoreBreakdown
}

// Bounds constrain the group for one court.
type Bounds struct {
	Size         int
	MinMandatory int
	MaxOptional  int
}

// Satisfied reports whether a full group with the given counts is acceptable.
func (b Bounds) Satisfied(mandatory, optional int) bool {
	return mandatory+optional == b.Size && mandatory >= b.MinMandatory && optional <= b.MaxOptional
}

// Result of searching one court.
type Result struct {
	Strategy string
	// Indices into the pool, in pool order.
	Indices    []int
	Score      int
	Found      bool
	Iterations int
	// Canceled is set when the scope context ended the search early.
	Canceled bool
	// Truncated is set when the iteration limit ended the search early.
	Truncated bool
}

type Strategy interface {
	Name() string
	Search(scope *envelope.Scope, pool *Pool, bounds Bounds) Result
}

type Options struct {
	Scorer   GroupScorer
	TieBreak string
	// MaxIterations caps visited nodes per court, 0 means unlimited.
	MaxIterations int
	// AutoThreshold is the number of candidate groups above which auto switches to the heuristic.
	AutoThreshold int
}

// New returns the strategy registered under name.
func New(name string, opts Options) (Strategy, error) {
	if opts.Scorer == nil {
		return nil, fmt.Errorf("search strategy %q requires a scorer", name)
	}
	if opts.TieBreak == "" {
		opts.TieBreak = constants.TieBreakFirstFound
	}

	switch name {
	case constants.StrategyBacktracking:
		return newBacktracking(opts), nil
	case constants.StrategyBacktrackingIterative:
		return newBacktrackingIterative(opts), nil
	case constants.StrategySortedWindow:
		return newSortedWindow(opts), nil
	case constants.StrategyAuto, "":
		return &autoStrategy{
			exact:     newBacktracking(opts),
			heuristic: newSortedWindow(opts),
			threshold: float64(opts.AutoThreshold),
		}, nil
	default:
		return nil, fmt.Errorf("unknown search strategy %q", name)
	}
}

// autoStrategy runs the exhaustive search while the number of candidate groups stays reasonable.
type autoStrategy struct {
	exact     Strategy
	heuristic Strategy
	threshold float64
}

func (a *autoStrategy) Name() string {
	return constants.StrategyAuto
}

func (a *autoStrategy) Search(scope *envelope.Scope, pool *Pool, bounds Bounds) Result {
	return a.pick(pool.Len(), bounds.Size).Search(scope, pool, bounds)
}

func (a *autoStrategy) pick(n, size int) Strategy {
	if a.threshold <= 0 || size <= 0 || n < size {
		return a.exact
	}
	if combin.GeneralizedBinomial(float64(n), float64(size)) > a.threshold {
		return a.heuristic
	}
	return a.exact
}

// limiter stops a search on context cancellation or when the iteration limit is used up.
type limiter struct {
	scope         *envelope.Scope
	maxIterations int
	iterations    int
	canceled      bool
	truncated     bool
}

// next accounts for one visited node and reports whether the search may go on.
func (l *limiter) next() bool {
	if l.canceled || l.truncated {
		return false
	}
	if l.scope.IsCanceled() {
		l.canceled = true
		return false
	}
	if l.maxIterations > 0 && l.iterations >= l.maxIterations {
		l.truncated = true
		return false
	}
	l.iterations++
	return true
}

// evaluator keeps the best full group seen so far.
type evaluator struct {
	pool     *Pool
	scorer   GroupScorer
	tieBreak string

	scratch   []models.ParticipantInfo
	best      []int
	bestIDs   []models.ParticipantID
	bestScore int
	found     bool
}

func newEvaluator(pool *Pool, opts Options, size int) *evaluator {
	return &evaluator{
		pool:     pool,
		scorer:   opts.Scorer,
		tieBreak: opts.TieBreak,
		scratch:  make([]models.ParticipantInfo, 0, size),
		best:     make([]int, 0, size),
	}
}

func (e *evaluator) consider(group []int) {
	e.scratch = e.scratch[:0]
	for _, i := range group {
		e.scratch = append(e.scratch, e.pool.Participant(i))
	}
	score := e.scorer.Score(e.scratch)

	var ids []models.ParticipantID
	if e.tieBreak == constants.TieBreakLowestIDs {
		ids = sortedMemberIDs(e.scratch)
	}
	if e.found {
		if score < e.bestScore {
			return
		}
		if score == e.bestScore && (ids == nil || !lessIDs(ids, e.bestIDs)) {
			return
		}
	}

	e.found = true
	e.bestScore = score
	e.best = append(e.best[:0], group...)
	e.bestIDs = ids
}

func (e *evaluator) result(name string, l *limiter) Result {
	r := Result{
		Strategy:   name,
		Found:      e.found,
		Iterations: l.iterations,
		Canceled:   l.canceled,
		Truncated:  l.truncated,
	}
	if e.found {
		r.Indices = append([]int{}, e.best...)
		r.Score = e.bestScore
	}
	return r
}

func sortedMemberIDs(members []models.ParticipantInfo) []models.ParticipantID {
	ids := make([]models.ParticipantID, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}
	return models.SortedIDs(ids)
}

// lessIDs compares two sorted id lists lexicographically.
func lessIDs(a, b []models.ParticipantID) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
