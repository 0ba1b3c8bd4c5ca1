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

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrUnresolvedAccess is returned when a type-dependent property of an
	// unresolved expression is read. The arguments are the property being
	// read, the expression class and the expression name.
	ErrUnresolvedAccess = errors.NewKind("cannot read %s of unresolved %s %q")

	// ErrInvalidRename is returned when a window reference is renamed to a
	// different name. Window references are structurally tied to their
	// defining window.
	ErrInvalidRename = errors.NewKind("window reference %q cannot be renamed to %q")

	// ErrInvalidConversion is returned when an expression that names a
	// relation is used where a column attribute is required. The arguments
	// are the expression class, its name and a description of the attempted
	// conversion.
	ErrInvalidConversion = errors.NewKind("%s %q %s")

	// ErrInvalidChildrenNumber is returned when the WithChildren method of a
	// node or expression is called with an invalid number of arguments.
	ErrInvalidChildrenNumber = errors.NewKind("%T: invalid children number, got %d, expected %d")

	// ErrColumnNotFound is returned when a field reference cannot be
	// resolved against any schema in scope.
	ErrColumnNotFound = errors.NewKind("column %q could not be found in any table in scope")

	// ErrTraitsUnsatisfied is returned when cost-based search cannot reach
	// any plan exposing the required output traits.
	ErrTraitsUnsatisfied = errors.NewKind("no plan found satisfying required traits %s")

	// ErrMaxRewriteIterations is returned when fixed-point rule application
	// fails to stabilize within the configured iteration cap.
	ErrMaxRewriteIterations = errors.NewKind("exceeded max rewrite iterations (%d)")

	// ErrMaxExploreSteps is returned when cost-based exploration of an
	// equivalence group grows past its defensive cap, which indicates a rule
	// set generating alternatives without converging.
	ErrMaxExploreSteps = errors.NewKind("cost-based search exceeded %d exploration steps")

	// ErrNoAcyclicPlan is returned when every candidate in an equivalence
	// class depends on the class itself, so no finite-cost plan can be
	// materialized from it.
	ErrNoAcyclicPlan = errors.NewKind("cost-based search found no acyclic plan for group %d")

	// ErrPhaseFailed annotates a phase error with the phase name and its
	// position in the chained program.
	ErrPhaseFailed = errors.NewKind("phase %q (position %d) failed")

	// ErrDuplicatePhaseName is returned at program build time when two
	// phases are registered under the same name.
	ErrDuplicatePhaseName = errors.NewKind("duplicate phase name %q in chained program")

	// ErrValidationFailed is returned when a plan contains an expression
	// whose validation fails.
	ErrValidationFailed = errors.NewKind("plan validation failed: %s")
)
