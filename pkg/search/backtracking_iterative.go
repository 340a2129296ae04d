// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package search

import (
	"github.com/AccelByte/extend-court-allocator/pkg/constants"
	"github.com/AccelByte/extend-court-allocator/pkg/envelope"
)

// backtrackingIterative is the explicit stack version of backtracking. It visits nodes in the
// same order, so results and iteration counts match the recursive version exactly.
type backtrackingIterative struct {
	opts Options
}

func newBacktrackingIterative(opts Options) *backtrackingIterative {
	return &backtrackingIterative{opts: opts}
}

func (b *backtrackingIterative) Name() string {
	return constants.StrategyBacktrackingIterative
}

type frameStage int

const (
	stageEnter frameStage = iota // equivalent: function entry
	stageSkip                    // equivalent: take branch returned, run skip branch
	stageDone                    // equivalent: return
)

type frame struct {
	pos       int
	depth     int
	mandatory int
	optional  int
	stage     frameStage
}

func (b *backtrackingIterative) Search(scope *envelope.Scope, pool *Pool, bounds Bounds) Result {
	l := &limiter{scope: scope, maxIterations: b.opts.MaxIterations}
	eval := newEvaluator(pool, b.opts, bounds.Size)

	active := pool.Active()
	if bounds.Size <= 0 || len(active) < bounds.Size || bounds.MaxOptional < 0 {
		return eval.result(b.Name(), l)
	}

	group := make([]int, bounds.Size)
	stack := make([]frame, 0, len(active)+1)
	stack = append(stack, frame{})

	for len(stack) > 0 {
		top := len(stack) - 1
		f := stack[top]

		switch f.stage {
		case stageEnter:
			if !l.next() {
				return eval.result(b.Name(), l)
			}
			if f.depth == bounds.Size {
				if bounds.Satisfied(f.mandatory, f.optional) {
					eval.consider(group)
				}
				stack = stack[:top]
				continue
			}
			if len(active)-f.pos < bounds.Size-f.depth {
				stack = stack[:top]
				continue
			}

			stack[top].stage = stageSkip
			idx := active[f.pos]
			take := frame{pos: f.pos + 1, depth: f.depth + 1, mandatory: f.mandatory, optional: f.optional}
			if pool.Participant(idx).Mandatory {
				take.mandatory++
			} else {
				take.optional++
			}
			if take.optional <= bounds.MaxOptional {
				group[f.depth] = idx
				stack = append(stack, take)
			}
		case stageSkip:
			stack[top].stage = stageDone
			stack = append(stack, frame{pos: f.pos + 1, depth: f.depth, mandatory: f.mandatory, optional: f.optional})
		default:
			stack = stack[:top]
		}
	}

	return eval.result(b.Name(), l)
}
