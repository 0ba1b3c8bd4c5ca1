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

package sql

import "fmt"

// Nameable is something that has a name.
type Nameable interface {
	// Name returns the name.
	Name() string
}

// Expression is a node in a scalar expression tree attached to a plan node.
// Expressions are immutable; every operation returns a new value, except
// where the documentation of an operation guarantees an identity result.
type Expression interface {
	fmt.Stringer
	// Resolved returns whether the expression has a concrete result type
	// bound from schema information. Unresolved expressions are placeholders
	// that a resolution pass must replace before type-dependent phases run.
	Resolved() bool
	// Type returns the result type of the expression. Reading the type of an
	// unresolved expression returns ErrUnresolvedAccess.
	Type() (Type, error)
	// Children returns the child expressions of this expression.
	Children() []Expression
	// WithChildren returns a copy of the expression with the given children.
	WithChildren(children ...Expression) (Expression, error)
	// Validate reports whether the expression is usable by phases that
	// reason about types and semantics.
	Validate() ValidationResult
}

// NamedExpression is an expression addressable by name inside a plan tree.
type NamedExpression interface {
	Expression
	Nameable
	// ToAttribute returns the canonical attribute form of the expression.
	// For any Attribute this is the identity. Expressions that name a
	// relation rather than a column return ErrInvalidConversion.
	ToAttribute() (Attribute, error)
}

// Attribute is a named reference to a column-like value inside a plan tree.
type Attribute interface {
	NamedExpression
	// WithName returns a copy of the attribute under the given name. Calling
	// WithName with the attribute's current name returns the receiver
	// itself, so callers may rely on reference equality signaling a no-op.
	WithName(name string) (Attribute, error)
}

// Node is a node in a relational query plan tree.
type Node interface {
	fmt.Stringer
	// Resolved returns whether the node, its expressions and its children
	// are all resolved.
	Resolved() bool
	// Schema returns the output schema of the node.
	Schema() Schema
	// Children returns the immediate children of the node.
	Children() []Node
	// WithChildren returns a copy of the node with the given children.
	WithChildren(children ...Node) (Node, error)
}

// Expressioner is a node that holds expressions.
type Expressioner interface {
	// Expressions returns the list of expressions contained by the node.
	Expressions() []Expression
	// WithExpressions returns a copy of the node with the given expressions.
	WithExpressions(exprs ...Expression) (Node, error)
}

// Traited is a node that exposes physical or logical traits. Nodes that do
// not implement Traited expose the empty trait set.
type Traited interface {
	// Traits returns the trait set the node exposes.
	Traits() TraitSet
}

// TraitsOf returns the trait set exposed by n.
func TraitsOf(n Node) TraitSet {
	if t, ok := n.(Traited); ok {
		return t.Traits()
	}
	return nil
}
