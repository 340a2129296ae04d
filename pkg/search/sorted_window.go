// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package search

import (
	"sort"

	"github.com/AccelByte/extend-court-allocator/pkg/constants"
	"github.com/AccelByte/extend-court-allocator/pkg/envelope"
	"github.com/AccelByte/extend-court-allocator/pkg/mathutil"
)

// sortedWindow is the heuristic for large pools. It sorts the active candidates by level and
// scores every window of size consecutive candidates. A window short of mandatory candidates gets
// its optional members farthest from the window's middle level swapped for the closest mandatory
// candidates outside of it. Cost is linear in the pool size per court.
type sortedWindow struct {
	opts Options
}

func newSortedWindow(opts Options) *sortedWindow {
	return &sortedWindow{opts: opts}
}

func (s *sortedWindow) Name() string {
	return constants.StrategySortedWindow
}

func (s *sortedWindow) Search(scope *envelope.Scope, pool *Pool, bounds Bounds) Result {
	l := &limiter{scope: scope, maxIterations: s.opts.MaxIterations}
	eval := newEvaluator(pool, s.opts, bounds.Size)

	active := pool.Active()
	need := max(bounds.MinMandatory, bounds.Size-bounds.MaxOptional, 0)
	if bounds.Size <= 0 || len(active) < bounds.Size || need > bounds.Size || need > pool.CountMandatory() {
		return eval.result(s.Name(), l)
	}

	sorted := append([]int{}, active...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return pool.Participant(sorted[i]).Level > pool.Participant(sorted[j]).Level
	})

	window := make([]int, bounds.Size)
	for start := 0; start+bounds.Size <= len(sorted); start++ {
		if !l.next() {
			break
		}
		copy(window, sorted[start:start+bounds.Size])
		if !s.repair(pool, window, sorted, need) {
			continue
		}
		// evaluate in pool order so results do not depend on the level sort
		group := append([]int{}, window...)
		sort.Ints(group)
		eval.consider(group)
	}

	return eval.result(s.Name(), l)
}

// repair swaps optional members of window for mandatory candidates until need is met.
func (s *sortedWindow) repair(pool *Pool, window, sorted []int, need int) bool {
	have := 0
	inWindow := make(map[int]struct{}, len(window))
	for _, i := range window {
		inWindow[i] = struct{}{}
		if pool.Participant(i).Mandatory {
			have++
		}
	}
	if have >= need {
		return true
	}

	center := pool.Participant(window[len(window)/2]).Level
	distance := func(i int) int {
		return mathutil.Abs(pool.Participant(i).Level - center)
	}

	var outside []int
	for _, i := range sorted {
		if _, ok := inWindow[i]; !ok && pool.Participant(i).Mandatory {
			outside = append(outside, i)
		}
	}
	sort.SliceStable(outside, func(a, b int) bool { return distance(outside[a]) < distance(outside[b]) })

	var slots []int
	for pos, i := range window {
		if !pool.Participant(i).Mandatory {
			slots = append(slots, pos)
		}
	}
	sort.SliceStable(slots, func(a, b int) bool { return distance(window[slots[a]]) > distance(window[slots[b]]) })

	for k := 0; have < need; k++ {
		if k >= len(outside) || k >= len(slots) {
			return false
		}
		window[slots[k]] = outside[k]
		have++
	}
	return true
}
