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
	"github.com/vireodata/go-plan-optimizer/sql"
)

// Expr applies a transformation function to the given expression tree from
// the bottom up. Each callback return value carries a TreeIdentity that is
// aggregated into a final output indicating whether the expression tree was
// changed.
func Expr(e sql.Expression, f ExprFunc) (sql.Expression, TreeIdentity, error) {
	children := e.Children()
	if len(children) == 0 {
		return f(e)
	}

	var newChildren []sql.Expression
	for i := range children {
		c, same, err := Expr(children[i], f)
		if err != nil {
			return nil, SameTree, err
		}
		if !same {
			if newChildren == nil {
				newChildren = make([]sql.Expression, len(children))
				copy(newChildren, children)
			}
			newChildren[i] = c
		}
	}

	sameC := SameTree
	if len(newChildren) > 0 {
		sameC = NewTree
		var err error
		e, err = e.WithChildren(newChildren...)
		if err != nil {
			return nil, SameTree, err
		}
	}

	e, sameN, err := f(e)
	if err != nil {
		return nil, SameTree, err
	}
	return e, sameC && sameN, nil
}

// InspectExpr traverses the given expression tree from the bottom up,
// stopping when f returns true. Returns whether traversal was interrupted.
func InspectExpr(e sql.Expression, f func(sql.Expression) bool) bool {
	stopped := false
	var walk func(sql.Expression)
	walk = func(e sql.Expression) {
		if stopped {
			return
		}
		for _, c := range e.Children() {
			walk(c)
		}
		if !stopped && f(e) {
			stopped = true
		}
	}
	walk(e)
	return stopped
}
