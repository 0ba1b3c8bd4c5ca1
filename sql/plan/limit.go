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

// Limit caps the number of rows returned by its child.
type Limit struct {
	UnaryNode
	Count  int64
	traits sql.TraitSet
}

var _ sql.Node = (*Limit)(nil)
var _ sql.Traited = (*Limit)(nil)

// NewLimit creates a new limit node.
func NewLimit(count int64, child sql.Node) *Limit {
	return &Limit{
		UnaryNode: UnaryNode{Child: child},
		Count:     count,
		traits:    sql.NewTraitSet(sql.TraitLogical),
	}
}

// WithChildren implements the Node interface.
func (l *Limit) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(l, len(children), 1)
	}
	nl := *l
	nl.Child = children[0]
	return &nl, nil
}

// Traits implements the Traited interface.
func (l *Limit) Traits() sql.TraitSet { return l.traits }

// WithTraits returns a copy of the limit exposing the given traits.
func (l *Limit) WithTraits(traits ...sql.Trait) *Limit {
	nl := *l
	nl.traits = sql.NewTraitSet(traits...)
	return &nl
}

func (l *Limit) String() string {
	p := sql.NewTreePrinter()
	p.WriteNode("Limit(%d)", l.Count)
	p.WriteChildren(l.Child.String())
	return p.String()
}
