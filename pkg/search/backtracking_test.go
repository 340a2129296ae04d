// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package search

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/AccelByte/extend-court-allocator/pkg/constants"
	"github.com/AccelByte/extend-court-allocator/pkg/testsetup"
)

func mustNew(t *testing.T, name string, opts Options) Strategy {
	t.Helper()
	s, err := New(name, opts)
	require.NoError(t, err)
	return s
}

// bruteForce scores every group of the active candidates and returns the best satisfying score.
func bruteForce(pool *Pool, bounds Bounds, scorer GroupScorer) (int, bool) {
	active := pool.Active()
	if len(active) < bounds.Size {
		return 0, false
	}
	best, found := math.MinInt, false
	for _, combination := range combin.Combinations(len(active), bounds.Size) {
		indices := make([]int, 0, len(combination))
		mandatory := 0
		for _, c := range combination {
			indices = append(indices, active[c])
			if pool.Participant(active[c]).Mandatory {
				mandatory++
			}
		}
		if !bounds.Satisfied(mandatory, bounds.Size-mandatory) {
			continue
		}
		if score := scorer.Score(pool.Members(indices)); score > best {
			best, found = score, true
		}
	}
	return best, found
}

func TestBacktrackingMatchesBruteForce(t *testing.T) {
	scope := testsetup.NewTestScope()
	scorer := levelScorer()
	rng := rand.New(rand.NewSource(2025))

	for round := 0; round < 40; round++ {
		n := 5 + rng.Intn(6)
		pool := NewPool(randomCandidates(rng, n))
		if rng.Intn(2) == 0 {
			pool.Remove([]int{rng.Intn(n)})
		}
		bounds := Bounds{Size: 4, MinMandatory: rng.Intn(3), MaxOptional: 1 + rng.Intn(4)}

		want, wantFound := bruteForce(pool, bounds, scorer)
		for _, variant := range exhaustiveVariants {
			got := mustNew(t, variant, Options{Scorer: scorer}).Search(scope, pool, bounds)

			require.Equal(t, wantFound, got.Found, "%s round %d bounds %+v", variant, round, bounds)
			if !wantFound {
				continue
			}
			require.Equal(t, want, got.Score, "%s round %d: %s", variant, round, spew.Sdump(pool.Members(got.Indices)))

			members := pool.Members(got.Indices)
			mandatory := 0
			for i, m := range members {
				require.True(t, pool.IsActive(got.Indices[i]))
				if m.Mandatory {
					mandatory++
				}
			}
			assert.True(t, bounds.Satisfied(mandatory, len(members)-mandatory))
		}
	}
}

func TestBacktrackingVariantsAgree(t *testing.T) {
	scope := testsetup.NewTestScope()
	rng := rand.New(rand.NewSource(7))
	pool := NewPool(randomCandidates(rng, 12))
	bounds := Bounds{Size: 4, MinMandatory: 1, MaxOptional: 3}

	for _, maxIterations := range []int{0, 50, 333} {
		opts := Options{Scorer: levelScorer(), MaxIterations: maxIterations}
		recursive := mustNew(t, constants.StrategyBacktracking, opts).Search(scope, pool, bounds)
		iterative := mustNew(t, constants.StrategyBacktrackingIterative, opts).Search(scope, pool, bounds)

		assert.Equal(t, recursive.Found, iterative.Found, "maxIterations %d", maxIterations)
		assert.Equal(t, recursive.Indices, iterative.Indices, "maxIterations %d", maxIterations)
		assert.Equal(t, recursive.Score, iterative.Score, "maxIterations %d", maxIterations)
		assert.Equal(t, recursive.Iterations, iterative.Iterations, "maxIterations %d", maxIterations)
		assert.Equal(t, recursive.Truncated, iterative.Truncated, "maxIterations %d", maxIterations)
	}
}

func TestBacktrackingOptionalPruning(t *testing.T) {
	scope := testsetup.NewTestScope()
	pool := NewPool(candidates([]int{5, 5, 5, 5, 5, 5}, 2, 4, 6))

	for _, variant := range exhaustiveVariants {
		got := mustNew(t, variant, Options{Scorer: levelScorer()}).Search(scope, pool, Bounds{Size: 3, MaxOptional: 0})

		require.True(t, got.Found, variant)
		assert.Equal(t, []int{1, 3, 5}, got.Indices, variant)
	}
}

func TestBacktrackingNoCombination(t *testing.T) {
	scope := testsetup.NewTestScope()
	pool := NewPool(candidates([]int{1, 2, 3, 4, 5}, 1))

	for _, variant := range exhaustiveVariants {
		s := mustNew(t, variant, Options{Scorer: levelScorer()})

		got := s.Search(scope, pool, Bounds{Size: 4, MinMandatory: 2, MaxOptional: 4})
		assert.False(t, got.Found, variant)
		assert.False(t, got.Canceled, variant)
		assert.Nil(t, got.Indices, variant)

		got = s.Search(scope, pool, Bounds{Size: 6, MaxOptional: 6})
		assert.False(t, got.Found, "%s: pool smaller than size", variant)
		assert.Zero(t, got.Iterations, variant)
	}
}

func TestBacktrackingSkipsRemovedCandidates(t *testing.T) {
	scope := testsetup.NewTestScope()
	pool := NewPool(candidates([]int{5, 5, 5, 5, 5, 5}))
	pool.Remove([]int{0, 1})

	for _, variant := range exhaustiveVariants {
		got := mustNew(t, variant, Options{Scorer: constantScorer(1)}).Search(scope, pool, Bounds{Size: 4, MaxOptional: 4})
		require.True(t, got.Found)
		assert.Equal(t, []int{2, 3, 4, 5}, got.Indices, variant)
	}
}

func TestBacktrackingTieBreak(t *testing.T) {
	scope := testsetup.NewTestScope()
	// ids 1..6 but arena order puts the highest ids first
	in := candidates([]int{5, 5, 5, 5, 5, 5})
	for i, j := 0, len(in)-1; i < j; i, j = i+1, j-1 {
		in[i], in[j] = in[j], in[i]
	}
	pool := NewPool(in)
	bounds := Bounds{Size: 3, MaxOptional: 3}

	for _, variant := range exhaustiveVariants {
		first := mustNew(t, variant, Options{Scorer: constantScorer(10)}).Search(scope, pool, bounds)
		assert.Equal(t, []int{0, 1, 2}, first.Indices, "%s: first found group wins", variant)

		lowest := mustNew(t, variant, Options{Scorer: constantScorer(10), TieBreak: constants.TieBreakLowestIDs}).Search(scope, pool, bounds)
		assert.Equal(t, []int{3, 4, 5}, lowest.Indices, "%s: lowest ids win", variant)
	}
}

func TestBacktrackingCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	scope := testsetup.NewTestScopeWithContext(ctx)
	pool := NewPool(candidates([]int{1, 2, 3, 4, 5, 6, 7, 8}))

	for _, variant := range exhaustiveVariants {
		got := mustNew(t, variant, Options{Scorer: levelScorer()}).Search(scope, pool, Bounds{Size: 4, MaxOptional: 8})

		assert.True(t, got.Canceled, variant)
		assert.False(t, got.Found, variant)
		assert.Zero(t, got.Iterations, variant)
	}
}

func TestBacktrackingIterationLimitKeepsBestSoFar(t *testing.T) {
	scope := testsetup.NewTestScope()
	pool := NewPool(candidates([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}))

	for _, variant := range exhaustiveVariants {
		got := mustNew(t, variant, Options{Scorer: levelScorer(), MaxIterations: 10}).Search(scope, pool, Bounds{Size: 4, MaxOptional: 10})

		assert.True(t, got.Truncated, variant)
		assert.False(t, got.Canceled, variant)
		assert.Equal(t, 10, got.Iterations, variant)
		// the first leaf is reached after 5 visits: root plus four takes
		assert.True(t, got.Found, variant)
	}
}
