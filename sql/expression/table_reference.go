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

package expression

import (
	"github.com/vireodata/go-plan-optimizer/sql"
)

// TableReference names a query-level relational operation, a table or a
// subquery. A table is not a column: it has no result type and cannot be
// converted to an attribute.
type TableReference struct {
	name  string
	table sql.Node
}

var _ sql.NamedExpression = (*TableReference)(nil)

// NewTableReference creates a reference to the given relational operation
// under the given name.
func NewTableReference(name string, table sql.Node) *TableReference {
	return &TableReference{name: name, table: table}
}

// Name implements the Nameable interface.
func (r *TableReference) Name() string { return r.name }

// Table returns the relational operation the reference wraps.
func (r *TableReference) Table() sql.Node { return r.table }

// Resolved implements the Expression interface.
func (r *TableReference) Resolved() bool {
	return r.table != nil && r.table.Resolved()
}

// Type implements the Expression interface. Table references have no result
// type.
func (r *TableReference) Type() (sql.Type, error) {
	return nil, sql.ErrInvalidConversion.New("table reference", r.name, "has no result type")
}

// Children implements the Expression interface.
func (*TableReference) Children() []sql.Expression { return nil }

// WithChildren implements the Expression interface.
func (r *TableReference) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(r, len(children), 0)
	}
	return r, nil
}

// Validate implements the Expression interface.
func (r *TableReference) Validate() sql.ValidationResult {
	if !r.Resolved() {
		return sql.NewValidationFailure("unresolved reference %q", r.name)
	}
	return sql.ValidationSuccess
}

// ToAttribute implements the NamedExpression interface. It always fails:
// converting a relation to a column attribute is a usage error.
func (r *TableReference) ToAttribute() (sql.Attribute, error) {
	return nil, sql.ErrInvalidConversion.New("table reference", r.name, "cannot be converted to an attribute")
}

// Table references render as the bare name, unlike attributes.
func (r *TableReference) String() string { return r.name }
