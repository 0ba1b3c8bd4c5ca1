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

package plan

import (
	"github.com/vireodata/go-plan-optimizer/sql"
)

// InnerJoin joins two relations on a condition.
type InnerJoin struct {
	BinaryNode
	Cond   sql.Expression
	traits sql.TraitSet
}

var _ sql.Node = (*InnerJoin)(nil)
var _ sql.Expressioner = (*InnerJoin)(nil)
var _ sql.Traited = (*InnerJoin)(nil)

// NewInnerJoin creates a new inner join node over the two given relations.
func NewInnerJoin(left, right sql.Node, cond sql.Expression) *InnerJoin {
	return &InnerJoin{
		BinaryNode: BinaryNode{Left: left, Right: right},
		Cond:       cond,
		traits:     sql.NewTraitSet(sql.TraitLogical),
	}
}

// Resolved implements the Node interface.
func (j *InnerJoin) Resolved() bool {
	return j.BinaryNode.Resolved() && j.Cond.Resolved()
}

// Schema implements the Node interface.
func (j *InnerJoin) Schema() sql.Schema {
	return append(append(sql.Schema{}, j.Left.Schema()...), j.Right.Schema()...)
}

// WithChildren implements the Node interface.
func (j *InnerJoin) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(j, len(children), 2)
	}
	nj := *j
	nj.Left = children[0]
	nj.Right = children[1]
	return &nj, nil
}

// Expressions implements the Expressioner interface.
func (j *InnerJoin) Expressions() []sql.Expression {
	return []sql.Expression{j.Cond}
}

// WithExpressions implements the Expressioner interface.
func (j *InnerJoin) WithExpressions(exprs ...sql.Expression) (sql.Node, error) {
	if len(exprs) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(j, len(exprs), 1)
	}
	nj := *j
	nj.Cond = exprs[0]
	return &nj, nil
}

// Traits implements the Traited interface.
func (j *InnerJoin) Traits() sql.TraitSet { return j.traits }

// WithTraits returns a copy of the join exposing the given traits.
func (j *InnerJoin) WithTraits(traits ...sql.Trait) *InnerJoin {
	nj := *j
	nj.traits = sql.NewTraitSet(traits...)
	return &nj
}

func (j *InnerJoin) String() string {
	p := sql.NewTreePrinter()
	p.WriteNode("InnerJoin(%s)", j.Cond)
	p.WriteChildren(j.Left.String(), j.Right.String())
	return p.String()
}
