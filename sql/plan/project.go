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
	"strings"

	"github.com/vireodata/go-plan-optimizer/sql"
)

// Project computes a set of expressions over the rows of its child.
type Project struct {
	UnaryNode
	Projections []sql.Expression
	traits      sql.TraitSet
}

var _ sql.Node = (*Project)(nil)
var _ sql.Expressioner = (*Project)(nil)
var _ sql.Traited = (*Project)(nil)

// NewProject creates a new projection.
func NewProject(projections []sql.Expression, child sql.Node) *Project {
	return &Project{
		UnaryNode:   UnaryNode{Child: child},
		Projections: projections,
		traits:      sql.NewTraitSet(sql.TraitLogical),
	}
}

// Resolved implements the Node interface.
func (p *Project) Resolved() bool {
	return p.UnaryNode.Resolved() && expressionsResolved(p.Projections...)
}

// Schema implements the Node interface. Unresolved projections contribute a
// column with a nil type; the schema is only meaningful once the node is
// resolved.
func (p *Project) Schema() sql.Schema {
	s := make(sql.Schema, len(p.Projections))
	for i, e := range p.Projections {
		var name string
		if n, ok := e.(sql.Nameable); ok {
			name = n.Name()
		} else {
			name = e.String()
		}
		typ, _ := e.Type()
		s[i] = &sql.Column{Name: name, Type: typ, Nullable: true}
	}
	return s
}

// WithChildren implements the Node interface.
func (p *Project) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(p, len(children), 1)
	}
	np := *p
	np.Child = children[0]
	return &np, nil
}

// Expressions implements the Expressioner interface.
func (p *Project) Expressions() []sql.Expression {
	return p.Projections
}

// WithExpressions implements the Expressioner interface.
func (p *Project) WithExpressions(exprs ...sql.Expression) (sql.Node, error) {
	if len(exprs) != len(p.Projections) {
		return nil, sql.ErrInvalidChildrenNumber.New(p, len(exprs), len(p.Projections))
	}
	np := *p
	np.Projections = exprs
	return &np, nil
}

// Traits implements the Traited interface.
func (p *Project) Traits() sql.TraitSet { return p.traits }

// WithTraits returns a copy of the projection exposing the given traits.
func (p *Project) WithTraits(traits ...sql.Trait) *Project {
	np := *p
	np.traits = sql.NewTraitSet(traits...)
	return &np
}

func (p *Project) String() string {
	exprs := make([]string, len(p.Projections))
	for i, e := range p.Projections {
		exprs[i] = e.String()
	}
	tp := sql.NewTreePrinter()
	tp.WriteNode("Project(%s)", strings.Join(exprs, ", "))
	tp.WriteChildren(p.Child.String())
	return tp.String()
}
