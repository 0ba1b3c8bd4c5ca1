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

package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vireodata/go-plan-optimizer/sql"
	"github.com/vireodata/go-plan-optimizer/sql/expression"
	"github.com/vireodata/go-plan-optimizer/sql/plan"
)

func scan(name string) *plan.TableScan {
	return plan.NewTableScan(name, sql.Schema{
		{Name: "a", Type: sql.Int32, Source: name},
	})
}

func TestNodeBottomUpOrder(t *testing.T) {
	require := require.New(t)

	tree := plan.NewLimit(10,
		plan.NewFilter(expression.NewResolvedFieldReference("a", sql.Int32),
			scan("t")))

	var visited []string
	_, same, err := Node(tree, func(n sql.Node) (sql.Node, TreeIdentity, error) {
		switch n.(type) {
		case *plan.TableScan:
			visited = append(visited, "scan")
		case *plan.Filter:
			visited = append(visited, "filter")
		case *plan.Limit:
			visited = append(visited, "limit")
		}
		return n, SameTree, nil
	})
	require.NoError(err)
	require.True(bool(same))
	require.Equal([]string{"scan", "filter", "limit"}, visited)
}

func TestNodeTopDownOrder(t *testing.T) {
	require := require.New(t)

	tree := plan.NewLimit(10,
		plan.NewFilter(expression.NewResolvedFieldReference("a", sql.Int32),
			scan("t")))

	var visited []string
	_, _, err := NodeTopDown(tree, func(n sql.Node) (sql.Node, TreeIdentity, error) {
		switch n.(type) {
		case *plan.TableScan:
			visited = append(visited, "scan")
		case *plan.Filter:
			visited = append(visited, "filter")
		case *plan.Limit:
			visited = append(visited, "limit")
		}
		return n, SameTree, nil
	})
	require.NoError(err)
	require.Equal([]string{"limit", "filter", "scan"}, visited)
}

func TestNodeStructuralSharing(t *testing.T) {
	require := require.New(t)

	left := scan("l")
	right := scan("r")
	tree := plan.NewInnerJoin(
		plan.NewFilter(expression.NewResolvedFieldReference("a", sql.Int32), left),
		right,
		expression.NewResolvedFieldReference("a", sql.Int32),
	)

	// Rewriting only the filter leaves the untouched branch shared.
	out, same, err := Node(tree, func(n sql.Node) (sql.Node, TreeIdentity, error) {
		if f, ok := n.(*plan.Filter); ok {
			return plan.NewFilter(f.Expression, f.Child), NewTree, nil
		}
		return n, SameTree, nil
	})
	require.NoError(err)
	require.False(bool(same))

	join, ok := out.(*plan.InnerJoin)
	require.True(ok)
	require.True(join.Right == sql.Node(right))
	require.False(out == sql.Node(tree))
}

func TestNodeExprs(t *testing.T) {
	require := require.New(t)

	tree := plan.NewFilter(expression.NewUnresolvedFieldReference("a"), scan("t"))

	out, same, err := NodeExprs(tree, func(e sql.Expression) (sql.Expression, TreeIdentity, error) {
		if ref, ok := e.(*expression.UnresolvedFieldReference); ok {
			return expression.NewResolvedFieldReference(ref.Name(), sql.Int32), NewTree, nil
		}
		return e, SameTree, nil
	})
	require.NoError(err)
	require.False(bool(same))
	require.True(out.Resolved())
}

func TestInspectExpressionsStopsEarly(t *testing.T) {
	require := require.New(t)

	tree := plan.NewFilter(expression.NewUnresolvedFieldReference("a"),
		plan.NewFilter(expression.NewUnresolvedFieldReference("b"), scan("t")))

	var seen int
	InspectExpressions(tree, func(e sql.Expression) bool {
		seen++
		return false
	})
	require.Equal(1, seen)
}
