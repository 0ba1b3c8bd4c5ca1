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

// Package transform rewrites plan and expression trees without mutating
// them. Unchanged subtrees are shared between input and output; TreeIdentity
// tells callers whether anything changed, which the phase engines use for
// fixed-point detection.
package transform

import (
	"github.com/vireodata/go-plan-optimizer/sql"
)

// TreeIdentity tracks whether the output of a transformation is the same as
// its input.
type TreeIdentity bool

const (
	// SameTree is returned when the transformation did not change the tree.
	SameTree TreeIdentity = true
	// NewTree is returned when the transformation produced a new tree.
	NewTree TreeIdentity = false
)

// NodeFunc is a function that given a node will return that node as is or
// transformed, a TreeIdentity to indicate whether the node was modified, and
// an error or nil.
type NodeFunc func(n sql.Node) (sql.Node, TreeIdentity, error)

// ExprFunc is a function that given an expression will return that
// expression as is or transformed, a TreeIdentity, and an error or nil.
type ExprFunc func(e sql.Expression) (sql.Expression, TreeIdentity, error)
