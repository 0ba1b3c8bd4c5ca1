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

package memo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vireodata/go-plan-optimizer/sql"
	"github.com/vireodata/go-plan-optimizer/sql/expression"
	"github.com/vireodata/go-plan-optimizer/sql/plan"
)

// testOp is a leaf operator with a fixed cost, used to make search outcomes
// explicit in tests.
type testOp struct {
	name   string
	cost   float64
	traits sql.TraitSet
}

var _ sql.Node = (*testOp)(nil)
var _ sql.Traited = (*testOp)(nil)
var _ CostedNode = (*testOp)(nil)

func newTestOp(name string, cost float64, traits ...sql.Trait) *testOp {
	return &testOp{name: name, cost: cost, traits: sql.NewTraitSet(traits...)}
}

func (o *testOp) Resolved() bool       { return true }
func (o *testOp) Schema() sql.Schema   { return nil }
func (o *testOp) Children() []sql.Node { return nil }
func (o *testOp) WithChildren(children ...sql.Node) (sql.Node, error) {
	return plan.NillaryWithChildren(o, children...)
}
func (o *testOp) Traits() sql.TraitSet { return o.traits }

func (o *testOp) PlanCost(input float64) float64 { return o.cost }

func (o *testOp) String() string { return fmt.Sprintf("testOp(%s)", o.name) }

func testScan(name string) *plan.TableScan {
	return plan.NewTableScan(name, sql.Schema{
		{Name: "a", Type: sql.Int32, Source: name},
	})
}

func TestMemoizeSharesEqualSubtrees(t *testing.T) {
	require := require.New(t)

	cond := expression.NewResolvedFieldReference("a", sql.Int32)
	tree := plan.NewInnerJoin(testScan("t"), testScan("t"), cond)

	m := NewMemo(nil, nil, nil)
	root, err := m.Memoize(tree)
	require.NoError(err)
	require.NotNil(root)
	require.Equal(root, m.Root())

	// Both scan subtrees are equal, so the memo holds two groups: the
	// shared scan group and the join group.
	require.Len(m.all, 2)
}

func TestOptimizePicksCheapestCandidate(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	m := NewMemo(nil, nil, nil)
	_, err := m.Memoize(newTestOp("slow", 100, sql.TraitLogical))
	require.NoError(err)

	implement := sql.NewRule("implement", nil, func(ctx *sql.Context, n sql.Node) (sql.Node, error) {
		if op, ok := n.(*testOp); ok && op.name == "slow" {
			return newTestOp("fast", 1, sql.TraitPhysical), nil
		}
		return n, nil
	})
	require.NoError(m.Explore(ctx, []sql.Rule{implement}))
	require.NoError(m.OptimizeRoot(ctx))

	best, err := m.BestRootPlan(nil)
	require.NoError(err)
	require.Equal("testOp(fast)", best.String())
}

func TestOptimizeKeepsFirstCandidateOnTie(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	m := NewMemo(nil, nil, nil)
	first := newTestOp("first", 10, sql.TraitLogical)
	_, err := m.Memoize(first)
	require.NoError(err)

	sameCost := sql.NewRule("same_cost", nil, func(ctx *sql.Context, n sql.Node) (sql.Node, error) {
		if op, ok := n.(*testOp); ok && op.name == "first" {
			return newTestOp("second", 10, sql.TraitLogical), nil
		}
		return n, nil
	})
	require.NoError(m.Explore(ctx, []sql.Rule{sameCost}))
	require.NoError(m.OptimizeRoot(ctx))

	best, err := m.BestRootPlan(nil)
	require.NoError(err)
	require.Equal("testOp(first)", best.String())
}

func TestBestRootPlanRequiredTraits(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	m := NewMemo(nil, nil, nil)
	_, err := m.Memoize(newTestOp("logical", 1, sql.TraitLogical))
	require.NoError(err)

	implement := sql.NewRule("implement", nil, func(ctx *sql.Context, n sql.Node) (sql.Node, error) {
		if op, ok := n.(*testOp); ok && op.name == "logical" {
			// The physical alternative is more expensive, but it is the
			// only candidate exposing the required trait.
			return newTestOp("physical", 5, sql.TraitPhysical), nil
		}
		return n, nil
	})
	require.NoError(m.Explore(ctx, []sql.Rule{implement}))
	require.NoError(m.OptimizeRoot(ctx))

	best, err := m.BestRootPlan(sql.NewTraitSet(sql.TraitPhysical))
	require.NoError(err)
	require.Equal("testOp(physical)", best.String())

	_, err = m.BestRootPlan(sql.NewTraitSet(sql.Trait("DISTRIBUTED")))
	require.Error(err)
	require.True(sql.ErrTraitsUnsatisfied.Is(err))
}

func TestExploreWrapRuleStaysAcyclic(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	m := NewMemo(nil, nil, nil)
	_, err := m.Memoize(testScan("t"))
	require.NoError(err)

	// Wrapping a matched node in a pass-through parent dedups the child
	// back into its own group. The wrapper must not become a candidate
	// that contains its own group.
	wrap := sql.NewRule("wrap_in_limit",
		func(n sql.Node) bool {
			_, ok := n.(*plan.TableScan)
			return ok
		},
		func(ctx *sql.Context, n sql.Node) (sql.Node, error) {
			return plan.NewLimit(1, n), nil
		})
	require.NoError(m.Explore(ctx, []sql.Rule{wrap}))
	require.NoError(m.OptimizeRoot(ctx))

	best, err := m.BestRootPlan(nil)
	require.NoError(err)
	require.Equal("Table(t)", best.String())
}

func TestOptimizeSkipsMultiLevelWrapCandidates(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	m := NewMemo(nil, nil, nil)
	_, err := m.Memoize(testScan("t"))
	require.NoError(err)

	// A two-level wrapper re-derives the scan's group below a fresh
	// intermediate group, so the cycle is indirect: the intermediate group
	// has no acyclic candidate of its own.
	wrap := sql.NewRule("wrap_twice",
		func(n sql.Node) bool {
			_, ok := n.(*plan.TableScan)
			return ok
		},
		func(ctx *sql.Context, n sql.Node) (sql.Node, error) {
			ref := expression.NewResolvedFieldReference("a", sql.Int32)
			return plan.NewProject([]sql.Expression{ref}, plan.NewLimit(1, n)), nil
		})
	require.NoError(m.Explore(ctx, []sql.Rule{wrap}))
	require.NoError(m.OptimizeRoot(ctx))

	best, err := m.BestRootPlan(nil)
	require.NoError(err)
	require.Equal("Table(t)", best.String())
}

func TestExploreStepCap(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	m := NewMemo(nil, nil, nil).WithMaxExploreSteps(5)
	_, err := m.Memoize(newTestOp("seed-0", 1, sql.TraitLogical))
	require.NoError(err)

	i := 0
	diverge := sql.NewRule("diverge", nil, func(ctx *sql.Context, n sql.Node) (sql.Node, error) {
		i++
		return newTestOp(fmt.Sprintf("seed-%d", i), float64(i), sql.TraitLogical), nil
	})
	err = m.Explore(ctx, []sql.Rule{diverge})
	require.Error(err)
	require.True(sql.ErrMaxExploreSteps.Is(err))
}

func TestDefaultCosterPrefersFilterPushdownShape(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()
	stats := sql.MapStats{"t": 10000}

	cond := expression.NewResolvedFieldReference("a", sql.Int32)
	scan := testScan("t")

	coster := NewDefaultCoster()
	carder := NewDefaultCarder()

	filtered, err := coster.EstimateCost(ctx, plan.NewFilter(cond, scan), stats)
	require.NoError(err)
	require.True(filtered > 0)

	card, err := carder.EstimateCard(ctx, plan.NewFilter(cond, scan), stats)
	require.NoError(err)
	require.True(card < 10000)
}
