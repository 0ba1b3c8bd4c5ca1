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
	"github.com/vireodata/go-plan-optimizer/sql"
	"github.com/vireodata/go-plan-optimizer/sql/plan"
)

const (
	// reference https://github.com/postgres/postgres/blob/master/src/include/optimizer/cost.h
	cpuCostFactor            = 0.01
	seqIOCostFactor          = 1
	defaultFilterSelectivity = .75
	optimisticJoinSel        = .10
)

// Coster estimates the local evaluation cost of one plan operator. Two
// candidates in the same expression group have the same input and output
// cardinalities but different evaluation costs.
type Coster interface {
	// EstimateCost returns the local cost of the operator, excluding the
	// cost of its inputs.
	EstimateCost(ctx *sql.Context, n sql.Node, s sql.StatsProvider) (float64, error)
}

// Carder estimates the output cardinality of a plan operator.
type Carder interface {
	// EstimateCard returns the estimated number of output rows.
	EstimateCard(ctx *sql.Context, n sql.Node, s sql.StatsProvider) (float64, error)
}

// CostedNode lets a custom operator supply its own cost, taking precedence
// over the default coster's estimates.
type CostedNode interface {
	// PlanCost returns the local cost of the operator given its input
	// cardinality.
	PlanCost(inputCard float64) float64
}

// CardedNode lets a custom operator supply its own output cardinality.
type CardedNode interface {
	// PlanCard returns the output cardinality given the input cardinality.
	PlanCard(inputCard float64) float64
}

// NewDefaultCoster returns a coster with postgres-style cost factors over
// the built-in operators.
func NewDefaultCoster() Coster {
	return &coster{card: &carder{}}
}

type coster struct {
	card Carder
}

var _ Coster = (*coster)(nil)

func (c *coster) EstimateCost(ctx *sql.Context, n sql.Node, s sql.StatsProvider) (float64, error) {
	input, err := inputCard(ctx, n, c.card, s)
	if err != nil {
		return 0, err
	}

	switch n := n.(type) {
	case *plan.TableScan:
		rows, _ := s.RowCount(n.Name())
		return float64(rows) * seqIOCostFactor, nil
	case *plan.Filter:
		return input * cpuCostFactor, nil
	case *plan.Project:
		return input * cpuCostFactor * float64(len(n.Projections)), nil
	case *plan.InnerJoin:
		l, err := c.card.EstimateCard(ctx, n.Left, s)
		if err != nil {
			return 0, err
		}
		r, err := c.card.EstimateCard(ctx, n.Right, s)
		if err != nil {
			return 0, err
		}
		return (l*r-1)*seqIOCostFactor + (l*r)*cpuCostFactor, nil
	case *plan.Limit:
		if float64(n.Count) < input {
			input = float64(n.Count)
		}
		return input * cpuCostFactor, nil
	case CostedNode:
		return n.PlanCost(input), nil
	default:
		// Unknown operators cost like a pass-through so custom phase kinds
		// can still participate in search.
		return input * cpuCostFactor, nil
	}
}

// NewDefaultCarder returns a carder matching the default coster's
// selectivity assumptions.
func NewDefaultCarder() Carder {
	return &carder{}
}

type carder struct{}

var _ Carder = (*carder)(nil)

func (c *carder) EstimateCard(ctx *sql.Context, n sql.Node, s sql.StatsProvider) (float64, error) {
	input, err := inputCard(ctx, n, c, s)
	if err != nil {
		return 0, err
	}

	switch n := n.(type) {
	case *plan.TableScan:
		rows, _ := s.RowCount(n.Name())
		return float64(rows), nil
	case *plan.Filter:
		return input * defaultFilterSelectivity, nil
	case *plan.InnerJoin:
		return input * optimisticJoinSel, nil
	case *plan.Limit:
		if float64(n.Count) < input {
			return float64(n.Count), nil
		}
		return input, nil
	case CardedNode:
		return n.PlanCard(input), nil
	default:
		return input, nil
	}
}

// inputCard is the combined cardinality of a node's inputs: the child's for
// unary nodes, the cross product for joins, and zero for leaves.
func inputCard(ctx *sql.Context, n sql.Node, c Carder, s sql.StatsProvider) (float64, error) {
	children := n.Children()
	switch len(children) {
	case 0:
		return 0, nil
	case 1:
		return c.EstimateCard(ctx, children[0], s)
	default:
		card := 1.0
		for _, child := range children {
			cc, err := c.EstimateCard(ctx, child, s)
			if err != nil {
				return 0, err
			}
			card *= cc
		}
		return card, nil
	}
}
