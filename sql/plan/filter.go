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

// Filter keeps only the rows matching its condition.
type Filter struct {
	UnaryNode
	Expression sql.Expression
	traits     sql.TraitSet
}

var _ sql.Node = (*Filter)(nil)
var _ sql.Expressioner = (*Filter)(nil)
var _ sql.Traited = (*Filter)(nil)

// NewFilter creates a new filter node.
func NewFilter(expression sql.Expression, child sql.Node) *Filter {
	return &Filter{
		UnaryNode:  UnaryNode{Child: child},
		Expression: expression,
		traits:     sql.NewTraitSet(sql.TraitLogical),
	}
}

// Resolved implements the Node interface.
func (f *Filter) Resolved() bool {
	return f.UnaryNode.Resolved() && f.Expression.Resolved()
}

// WithChildren implements the Node interface.
func (f *Filter) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(f, len(children), 1)
	}
	nf := *f
	nf.Child = children[0]
	return &nf, nil
}

// Expressions implements the Expressioner interface.
func (f *Filter) Expressions() []sql.Expression {
	return []sql.Expression{f.Expression}
}

// WithExpressions implements the Expressioner interface.
func (f *Filter) WithExpressions(exprs ...sql.Expression) (sql.Node, error) {
	if len(exprs) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(f, len(exprs), 1)
	}
	nf := *f
	nf.Expression = exprs[0]
	return &nf, nil
}

// Traits implements the Traited interface.
func (f *Filter) Traits() sql.TraitSet { return f.traits }

// WithTraits returns a copy of the filter exposing the given traits.
func (f *Filter) WithTraits(traits ...sql.Trait) *Filter {
	nf := *f
	nf.traits = sql.NewTraitSet(traits...)
	return &nf
}

func (f *Filter) String() string {
	p := sql.NewTreePrinter()
	p.WriteNode("Filter(%s)", f.Expression)
	p.WriteChildren(f.Child.String())
	return p.String()
}
