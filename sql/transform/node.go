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

// Node applies a transformation function to the given tree from the bottom
// up: children are rewritten before their parent is offered to [f], so the
// callback always sees already-rewritten children.
func Node(n sql.Node, f NodeFunc) (sql.Node, TreeIdentity, error) {
	children := n.Children()
	if len(children) == 0 {
		return f(n)
	}

	var newChildren []sql.Node
	for i := range children {
		c, same, err := Node(children[i], f)
		if err != nil {
			return nil, SameTree, err
		}
		if !same {
			if newChildren == nil {
				newChildren = make([]sql.Node, len(children))
				copy(newChildren, children)
			}
			newChildren[i] = c
		}
	}

	sameC := SameTree
	if len(newChildren) > 0 {
		sameC = NewTree
		var err error
		n, err = n.WithChildren(newChildren...)
		if err != nil {
			return nil, SameTree, err
		}
	}

	n, sameN, err := f(n)
	if err != nil {
		return nil, SameTree, err
	}
	return n, sameC && sameN, nil
}

// NodeTopDown applies a transformation function to the given tree from the
// top down: the parent is offered to [f] first and traversal recurses into
// the children of whatever [f] returned.
func NodeTopDown(n sql.Node, f NodeFunc) (sql.Node, TreeIdentity, error) {
	n, sameN, err := f(n)
	if err != nil {
		return nil, SameTree, err
	}

	children := n.Children()
	if len(children) == 0 {
		return n, sameN, nil
	}

	var newChildren []sql.Node
	for i := range children {
		c, same, err := NodeTopDown(children[i], f)
		if err != nil {
			return nil, SameTree, err
		}
		if !same {
			if newChildren == nil {
				newChildren = make([]sql.Node, len(children))
				copy(newChildren, children)
			}
			newChildren[i] = c
		}
	}

	if len(newChildren) > 0 {
		n, err = n.WithChildren(newChildren...)
		if err != nil {
			return nil, SameTree, err
		}
		return n, NewTree, nil
	}
	return n, sameN, nil
}

// NodeExprs applies an expression transformation to every expression held
// by every node of the tree, bottom up.
func NodeExprs(n sql.Node, f ExprFunc) (sql.Node, TreeIdentity, error) {
	return Node(n, func(n sql.Node) (sql.Node, TreeIdentity, error) {
		return OneNodeExprs(n, f)
	})
}

// OneNodeExprs applies an expression transformation to the expressions of a
// single node, without recursing into the node's children.
func OneNodeExprs(n sql.Node, f ExprFunc) (sql.Node, TreeIdentity, error) {
	e, ok := n.(sql.Expressioner)
	if !ok {
		return n, SameTree, nil
	}

	exprs := e.Expressions()
	if len(exprs) == 0 {
		return n, SameTree, nil
	}

	var newExprs []sql.Expression
	for i := range exprs {
		expr, same, err := Expr(exprs[i], f)
		if err != nil {
			return nil, SameTree, err
		}
		if !same {
			if newExprs == nil {
				newExprs = make([]sql.Expression, len(exprs))
				copy(newExprs, exprs)
			}
			newExprs[i] = expr
		}
	}

	if len(newExprs) > 0 {
		n, err := e.WithExpressions(newExprs...)
		if err != nil {
			return nil, SameTree, err
		}
		return n, NewTree, nil
	}
	return n, SameTree, nil
}

// Inspect performs a pre-order traversal of the tree. It calls f(node) and,
// if f returns true, recurses into the node's children.
func Inspect(n sql.Node, f func(sql.Node) bool) bool {
	if !f(n) {
		return false
	}
	for _, child := range n.Children() {
		if !Inspect(child, f) {
			return false
		}
	}
	return true
}

// InspectExpressions traverses every expression of every node in the tree,
// pre-order, stopping early when f returns false.
func InspectExpressions(n sql.Node, f func(sql.Expression) bool) {
	Inspect(n, func(n sql.Node) bool {
		e, ok := n.(sql.Expressioner)
		if !ok {
			return true
		}
		for _, expr := range e.Expressions() {
			if !inspectExprTree(expr, f) {
				return false
			}
		}
		return true
	})
}

func inspectExprTree(e sql.Expression, f func(sql.Expression) bool) bool {
	if !f(e) {
		return false
	}
	for _, child := range e.Children() {
		if !inspectExprTree(child, f) {
			return false
		}
	}
	return true
}
