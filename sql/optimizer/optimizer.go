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

// Package optimizer implements the staged plan-rewrite pipeline. A Program
// is an ordered chain of named phases; each phase consumes the plan tree
// produced by the previous phase and produces a new one. Two phase kinds
// are built in: rule-sequence phases apply a rule set in a controlled
// traversal without a cost model, and volcano phases search the space of
// logically equivalent plans for the cheapest one exposing a set of
// required traits. Callers may register phases of their own kinds.
package optimizer

import (
	"gopkg.in/src-d/go-errors.v1"

	"github.com/vireodata/go-plan-optimizer/sql"
)

var (
	// ErrUnknownPhaseKind is returned when a program config names a phase
	// kind that is not registered.
	ErrUnknownPhaseKind = errors.NewKind("unknown phase kind %q")

	// ErrUnknownRuleSet is returned when a program config names a rule set
	// missing from the compilation registry.
	ErrUnknownRuleSet = errors.NewKind("unknown rule set %q")

	// ErrUnknownMatchOrder is returned when a match order cannot be parsed.
	ErrUnknownMatchOrder = errors.NewKind("unknown match order %q")

	// ErrUnknownExecutionType is returned when an execution type cannot be
	// parsed.
	ErrUnknownExecutionType = errors.NewKind("unknown execution type %q")

	// ErrEmptyProgram is returned when a program is built with no phases.
	ErrEmptyProgram = errors.NewKind("chained program has no phases")
)

// Phase is one stage of a chained program. Implementations must be
// stateless across Apply calls: the same phase value may optimize
// independent plans concurrently.
type Phase interface {
	// Apply transforms the plan tree, returning a new tree. The input tree
	// is never mutated. Apply fails when the phase cannot produce a plan
	// meeting its contract, such as required traits being unreachable.
	Apply(ctx *Context, n sql.Node) (sql.Node, error)
}

// PhaseFunc adapts a function to the Phase interface, for custom phase
// kinds that need no configuration of their own.
type PhaseFunc func(ctx *Context, n sql.Node) (sql.Node, error)

// Apply implements the Phase interface.
func (f PhaseFunc) Apply(ctx *Context, n sql.Node) (sql.Node, error) {
	return f(ctx, n)
}
