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
	"strings"

	"github.com/vireodata/go-plan-optimizer/sql"
)

// RelExpr is one candidate implementation inside an expression group. Its
// node is a concrete subtree; its child groups stand in for the subtrees
// the node was memoized with, so a candidate composes with whatever best
// implementation each child group settles on.
type RelExpr struct {
	g        *ExprGroup
	n        sql.Node
	children []*ExprGroup
	next     *RelExpr
	cost     float64
	explored bool
	// cyclic marks candidates that reach back into a group on their own
	// ancestry; they are never costed or picked.
	cyclic bool
}

// Node returns the candidate's plan node.
func (r *RelExpr) Node() sql.Node { return r.n }

// Group returns the group the candidate belongs to.
func (r *RelExpr) Group() *ExprGroup { return r.g }

// Children returns the candidate's child groups.
func (r *RelExpr) Children() []*ExprGroup { return r.children }

// Next returns the next candidate in the group's list.
func (r *RelExpr) Next() *RelExpr { return r.next }

// Cost returns the candidate's local cost, valid after optimization.
func (r *RelExpr) Cost() float64 { return r.cost }

// ExprGroup is a list of candidate plans that return the same result set.
// Candidates are kept in discovery order; the best plan and its cumulative
// cost are fixed once the group is optimized.
type ExprGroup struct {
	Id    GroupId
	First *RelExpr
	Best  *RelExpr
	Cost  float64
	Done  bool

	last *RelExpr
	size int
	// inProgress is set while the group's candidates are being optimized,
	// to detect candidates that cycle back into their own ancestry.
	inProgress bool
}

// append adds a candidate at the end of the list, preserving discovery
// order so tie-breaking is deterministic.
func (e *ExprGroup) append(rel *RelExpr) {
	rel.g = e
	if e.First == nil {
		e.First = rel
	} else {
		e.last.next = rel
	}
	e.last = rel
	e.size++
}

func (e *ExprGroup) len() int { return e.size }

// updateBest moves the group's best to the given candidate only when it is
// strictly cheaper. Equal-cost candidates never displace an earlier one.
func (e *ExprGroup) updateBest(n *RelExpr, cost float64) {
	if e.Best == nil || cost < e.Cost {
		e.Best = n
		e.Cost = cost
	}
}

func (e *ExprGroup) String() string {
	b := strings.Builder{}
	sep := ""
	for n := e.First; n != nil; n = n.next {
		b.WriteString(sep)
		b.WriteString(fmt.Sprintf("(%T", n.n))
		if e.Done {
			b.WriteString(fmt.Sprintf(" %.1f", n.cost))
			if e.Best == n {
				b.WriteString("*")
			}
		}
		b.WriteString(")")
		sep = " "
	}
	return b.String()
}
