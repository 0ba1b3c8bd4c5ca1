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

package optimizer

import (
	"github.com/vireodata/go-plan-optimizer/sql"
	"github.com/vireodata/go-plan-optimizer/sql/expression"
	"github.com/vireodata/go-plan-optimizer/sql/transform"
)

// NewResolveReferencesRule returns a rule that replaces unresolved field
// references with resolved ones using the given name-to-type binding.
// Catalog lookups stay external to this core: callers run their resolution
// pass upstream, or bind a precomputed schema map through this rule inside
// a rule-sequence phase. References missing from the binding are left
// unresolved for the validation phase to report.
func NewResolveReferencesRule(types map[string]sql.Type) sql.Rule {
	match := func(n sql.Node) bool {
		return !n.Resolved()
	}
	apply := func(ctx *sql.Context, n sql.Node) (sql.Node, error) {
		n, _, err := transform.OneNodeExprs(n, func(e sql.Expression) (sql.Expression, transform.TreeIdentity, error) {
			ref, ok := e.(*expression.UnresolvedFieldReference)
			if !ok {
				return e, transform.SameTree, nil
			}
			typ, ok := types[ref.Name()]
			if !ok {
				return e, transform.SameTree, nil
			}
			return expression.NewResolvedFieldReference(ref.Name(), typ), transform.NewTree, nil
		})
		return n, err
	}
	return sql.NewRule("resolve_references", match, apply)
}
