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
	"strings"

	"github.com/vireodata/go-plan-optimizer/sql"
	"github.com/vireodata/go-plan-optimizer/sql/transform"
)

// MatchOrder controls the traversal order in which candidate plan nodes are
// offered to rules.
type MatchOrder byte

const (
	// BottomUp visits children before their parent becomes eligible for
	// matching, so rules that restructure a subtree see already-rewritten
	// children.
	BottomUp MatchOrder = iota
	// TopDown visits the parent before its children.
	TopDown
	// Arbitrary makes no ordering guarantee and must only be used with
	// rule sets proven order-independent. The current implementation
	// delegates to bottom-up, but callers must not rely on that.
	Arbitrary
)

func (o MatchOrder) String() string {
	switch o {
	case BottomUp:
		return "BOTTOM_UP"
	case TopDown:
		return "TOP_DOWN"
	case Arbitrary:
		return "ARBITRARY"
	default:
		return "UNKNOWN"
	}
}

// ParseMatchOrder parses a match order name, case-insensitively.
func ParseMatchOrder(s string) (MatchOrder, error) {
	switch strings.ToUpper(s) {
	case "BOTTOM_UP":
		return BottomUp, nil
	case "TOP_DOWN":
		return TopDown, nil
	case "ARBITRARY":
		return Arbitrary, nil
	default:
		return 0, ErrUnknownMatchOrder.New(s)
	}
}

// ExecutionType controls how often a rule-sequence phase applies its rules.
type ExecutionType byte

const (
	// Sequence performs one traversal pass, applying each rule at most once
	// per matched node, in rule-list order.
	Sequence ExecutionType = iota
	// FixedPoint repeats traversal passes until a whole pass produces no
	// change. Passes are capped; exceeding the cap is a planning error.
	FixedPoint
)

func (t ExecutionType) String() string {
	switch t {
	case Sequence:
		return "SEQUENCE"
	case FixedPoint:
		return "FIXED_POINT"
	default:
		return "UNKNOWN"
	}
}

// ParseExecutionType parses an execution type name, case-insensitively.
func ParseExecutionType(s string) (ExecutionType, error) {
	switch strings.ToUpper(s) {
	case "SEQUENCE":
		return Sequence, nil
	case "FIXED_POINT":
		return FixedPoint, nil
	default:
		return 0, ErrUnknownExecutionType.New(s)
	}
}

// Passes are capped so mutually enabling rules that never stabilize fail
// instead of spinning.
const defaultMaxRewriteIterations = 1000

// RuleSequencePhase applies a rule set in a directed traversal without a
// cost model. Rules fire purely on structural match; the phase has no
// state, so one value may serve concurrent program runs.
type RuleSequencePhase struct {
	rules         sql.RuleSet
	order         MatchOrder
	execution     ExecutionType
	maxIterations int
}

var _ Phase = (*RuleSequencePhase)(nil)

// NewRuleSequencePhase creates a rule-sequence phase over the given rule
// set with the given match order and execution type.
func NewRuleSequencePhase(rules sql.RuleSet, order MatchOrder, execution ExecutionType) *RuleSequencePhase {
	return &RuleSequencePhase{
		rules:         rules,
		order:         order,
		execution:     execution,
		maxIterations: defaultMaxRewriteIterations,
	}
}

// WithMaxIterations returns a copy of the phase with a different fixed-point
// iteration cap.
func (p *RuleSequencePhase) WithMaxIterations(n int) *RuleSequencePhase {
	np := *p
	np.maxIterations = n
	return &np
}

// Apply implements the Phase interface.
func (p *RuleSequencePhase) Apply(ctx *Context, n sql.Node) (sql.Node, error) {
	cur, same, err := p.applyOnce(ctx, n)
	if err != nil {
		return nil, err
	}
	if p.execution == Sequence {
		return cur, nil
	}

	for i := 1; !same; i++ {
		if i >= p.maxIterations {
			return nil, sql.ErrMaxRewriteIterations.New(p.maxIterations)
		}
		cur, same, err = p.applyOnce(ctx, cur)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}

// applyOnce performs one traversal pass, offering every visited node to
// every rule in list order. A rule rewriting a node hands the replacement to
// the next rule in the list within the same visit.
func (p *RuleSequencePhase) applyOnce(ctx *Context, n sql.Node) (sql.Node, transform.TreeIdentity, error) {
	walk := transform.Node
	if p.order == TopDown {
		walk = transform.NodeTopDown
	}
	return walk(n, func(n sql.Node) (sql.Node, transform.TreeIdentity, error) {
		same := transform.SameTree
		for _, r := range p.rules.Rules() {
			if !r.Match(n) {
				continue
			}
			n2, err := r.Apply(ctx.Context, n)
			if err != nil {
				return nil, transform.SameTree, err
			}
			if n2 == nil || n2 == n {
				continue
			}
			n = n2
			same = transform.NewTree
		}
		return n, same, nil
	})
}
