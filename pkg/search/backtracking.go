// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package search

import (
	"gopkg.in/typ.v4/sync2"

	"github.com/AccelByte/extend-court-allocator/pkg/constants"
	"github.com/AccelByte/extend-court-allocator/pkg/envelope"
)

// backtracking enumerates every C(pool, size) group with a take/skip recursion.
//
// Taking a candidate is pruned as soon as the optional count would exceed the bound. The mandatory
// bound is only checked on full groups: a mandatory candidate not yet visited could still arrive.
//
// Example pool [a* b c* d] (* mandatory), size 2, max optional 1:
//
//	take a* ─┬─ take b    -> [a* b]
//	         ├─ take c*   -> [a* c*]
//	         └─ take d    -> [a* d]
//	skip a* ─┬─ take b ─┬─ take c* -> [b c*]
//	         │          └─ take d     pruned, 2 optional
//	         └─ skip b ─── take c* -> [c* d]
type backtracking struct {
	opts    Options
	buffers *sync2.Pool[[]int]
}

func newBacktracking(opts Options) *backtracking {
	return &backtracking{
		opts: opts,
		buffers: &sync2.Pool[[]int]{
			New: func() []int {
				return make([]int, 0, 8)
			},
		},
	}
}

func (b *backtracking) Name() string {
	return constants.StrategyBacktracking
}

// node is the per call state. Each call only writes group[len(group)], so the caller's view of
// group is unchanged when a call returns.
type node struct {
	pos       int
	group     []int
	mandatory int
	optional  int
}

type backtrackingRun struct {
	pool    *Pool
	active  []int
	bounds  Bounds
	limiter *limiter
	eval    *evaluator
}

func (b *backtracking) Search(scope *envelope.Scope, pool *Pool, bounds Bounds) Result {
	l := &limiter{scope: scope, maxIterations: b.opts.MaxIterations}
	eval := newEvaluator(pool, b.opts, bounds.Size)

	active := pool.Active()
	if bounds.Size <= 0 || len(active) < bounds.Size || bounds.MaxOptional < 0 {
		return eval.result(b.Name(), l)
	}

	buf := b.buffers.Get()
	defer b.buffers.Put(buf[:0])
	if cap(buf) < bounds.Size {
		buf = make([]int, 0, bounds.Size)
	}

	run := &backtrackingRun{pool: pool, active: active, bounds: bounds, limiter: l, eval: eval}
	run.visit(node{group: buf[:0]})

	return eval.result(b.Name(), l)
}

func (r *backtrackingRun) visit(n node) {
	if !r.limiter.next() {
		return
	}

	if len(n.group) == r.bounds.Size {
		if r.bounds.Satisfied(n.mandatory, n.optional) {
			r.eval.consider(n.group)
		}
		return
	}
	if len(r.active)-n.pos < r.bounds.Size-len(n.group) {
		return
	}

	idx := r.active[n.pos]
	take := node{pos: n.pos + 1, group: append(n.group, idx), mandatory: n.mandatory, optional: n.optional}
	if r.pool.Participant(idx).Mandatory {
		take.mandatory++
	} else {
		take.optional++
	}
	if take.optional <= r.bounds.MaxOptional {
		r.visit(take)
	}

	r.visit(node{pos: n.pos + 1, group: n.group, mandatory: n.mandatory, optional: n.optional})
}
