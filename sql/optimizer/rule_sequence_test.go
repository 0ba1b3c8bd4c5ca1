// Copyright 2026 Vireo Data, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package optimizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vireodata/go-plan-optimizer/sql"
	"github.com/vireodata/go-plan-optimizer/sql/expression"
	"github.com/vireodata/go-plan-optimizer/sql/plan"
)

const testTraitRewritten = sql.Trait("REWRITTEN")

func isRewritten(n sql.Node) bool {
	return sql.TraitsOf(n).Contains(testTraitRewritten)
}

// markRules rewrite nodes level by level: a node is only marked once all of
// its children are already marked. With bottom-up matching the whole tree is
// marked in a single pass.
func markRules() sql.RuleSet {
	childrenMarked := func(n sql.Node) bool {
		for _, c := range n.Children() {
			if !isRewritten(c) {
				return false
			}
		}
		return true
	}
	markScan := sql.NewRule("mark_scan",
		func(n sql.Node) bool {
			_, ok := n.(*plan.TableScan)
			return ok && !isRewritten(n)
		},
		func(ctx *sql.Context, n sql.Node) (sql.Node, error) {
			return n.(*plan.TableScan).WithTraits(sql.TraitLogical, testTraitRewritten), nil
		})
	markFilter := sql.NewRule("mark_filter",
		func(n sql.Node) bool {
			f, ok := n.(*plan.Filter)
			return ok && !isRewritten(n) && childrenMarked(f)
		},
		func(ctx *sql.Context, n sql.Node) (sql.Node, error) {
			return n.(*plan.Filter).WithTraits(sql.TraitLogical, testTraitRewritten), nil
		})
	markLimit := sql.NewRule("mark_limit",
		func(n sql.Node) bool {
			l, ok := n.(*plan.Limit)
			return ok && !isRewritten(n) && childrenMarked(l)
		},
		func(ctx *sql.Context, n sql.Node) (sql.Node, error) {
			return n.(*plan.Limit).WithTraits(sql.TraitLogical, testTraitRewritten), nil
		})
	return sql.NewRuleSet("mark", markScan, markFilter, markLimit)
}

func threeLevelTree() sql.Node {
	return plan.NewLimit(10,
		plan.NewFilter(expression.NewResolvedFieldReference("a", sql.Int32),
			testScan("t")))
}

func TestRuleSequenceBottomUpSinglePass(t *testing.T) {
	require := require.New(t)

	phase := NewRuleSequencePhase(markRules(), BottomUp, Sequence)
	out, err := phase.Apply(testContext(), threeLevelTree())
	require.NoError(err)

	// Children are rewritten before their parent is offered, so one pass
	// marks every level.
	count := 0
	for n := out; n != nil; {
		require.True(isRewritten(n), "node %T not rewritten", n)
		count++
		children := n.Children()
		if len(children) == 0 {
			break
		}
		n = children[0]
	}
	require.Equal(3, count)
}

func TestRuleSequenceTopDownNeedsMultiplePasses(t *testing.T) {
	require := require.New(t)

	// Top-down, the parent is offered before its children are marked, so a
	// single pass only marks the scan. The fixed point is still the fully
	// marked tree.
	single := NewRuleSequencePhase(markRules(), TopDown, Sequence)
	out, err := single.Apply(testContext(), threeLevelTree())
	require.NoError(err)
	require.False(isRewritten(out))

	fixed := NewRuleSequencePhase(markRules(), TopDown, FixedPoint)
	out, err = fixed.Apply(testContext(), threeLevelTree())
	require.NoError(err)
	require.True(isRewritten(out))
}

func TestRuleSequenceArbitraryIsDeterministic(t *testing.T) {
	require := require.New(t)

	phase := NewRuleSequencePhase(markRules(), Arbitrary, FixedPoint)
	first, err := phase.Apply(testContext(), threeLevelTree())
	require.NoError(err)
	second, err := phase.Apply(testContext(), threeLevelTree())
	require.NoError(err)
	require.Equal(first.String(), second.String())
}

func TestRuleSequenceFixedPointConverges(t *testing.T) {
	require := require.New(t)

	// raise and clamp enable each other until the limit count settles at 8.
	raise := sql.NewRule("raise",
		func(n sql.Node) bool {
			l, ok := n.(*plan.Limit)
			return ok && l.Count < 8
		},
		func(ctx *sql.Context, n sql.Node) (sql.Node, error) {
			l := n.(*plan.Limit)
			return plan.NewLimit(l.Count*2, l.Child), nil
		})
	clamp := sql.NewRule("clamp",
		func(n sql.Node) bool {
			l, ok := n.(*plan.Limit)
			return ok && l.Count > 8
		},
		func(ctx *sql.Context, n sql.Node) (sql.Node, error) {
			l := n.(*plan.Limit)
			return plan.NewLimit(8, l.Child), nil
		})

	phase := NewRuleSequencePhase(sql.NewRuleSet("stabilize", raise, clamp), BottomUp, FixedPoint)
	out, err := phase.Apply(testContext(), plan.NewLimit(3, testScan("t")))
	require.NoError(err)
	require.Equal(int64(8), out.(*plan.Limit).Count)
}

func TestRuleSequenceFixedPointNonTermination(t *testing.T) {
	require := require.New(t)

	// flip never stabilizes: every pass toggles the limit count.
	flip := sql.NewRule("flip",
		func(n sql.Node) bool {
			_, ok := n.(*plan.Limit)
			return ok
		},
		func(ctx *sql.Context, n sql.Node) (sql.Node, error) {
			l := n.(*plan.Limit)
			if l.Count == 1 {
				return plan.NewLimit(2, l.Child), nil
			}
			return plan.NewLimit(1, l.Child), nil
		})

	phase := NewRuleSequencePhase(sql.NewRuleSet("flip", flip), BottomUp, FixedPoint).
		WithMaxIterations(10)
	_, err := phase.Apply(testContext(), plan.NewLimit(1, testScan("t")))
	require.Error(err)
	require.True(sql.ErrMaxRewriteIterations.Is(err))
}

func TestRuleSequenceDoesNotMutateInput(t *testing.T) {
	require := require.New(t)

	in := threeLevelTree()
	rendered := in.String()

	phase := NewRuleSequencePhase(markRules(), BottomUp, FixedPoint)
	_, err := phase.Apply(testContext(), in)
	require.NoError(err)
	require.Equal(rendered, in.String())
	require.False(isRewritten(in))
}

func TestParseMatchOrder(t *testing.T) {
	require := require.New(t)

	order, err := ParseMatchOrder("bottom_up")
	require.NoError(err)
	require.Equal(BottomUp, order)

	order, err = ParseMatchOrder("TOP_DOWN")
	require.NoError(err)
	require.Equal(TopDown, order)

	_, err = ParseMatchOrder("sideways")
	require.True(ErrUnknownMatchOrder.Is(err))
}

func TestParseExecutionType(t *testing.T) {
	require := require.New(t)

	et, err := ParseExecutionType("fixed_point")
	require.NoError(err)
	require.Equal(FixedPoint, et)

	_, err = ParseExecutionType("twice")
	require.True(ErrUnknownExecutionType.Is(err))
}
