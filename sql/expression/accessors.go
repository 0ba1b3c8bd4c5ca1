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
	"fmt"

	"github.com/vireodata/go-plan-optimizer/sql"
)

// RowtimeAccessor reads the event-time timestamp of a row. Its type is
// hardcoded to BIGINT epoch milliseconds; it is the one leaf variant that is
// never unresolved.
type RowtimeAccessor struct{}

var _ sql.Expression = (*RowtimeAccessor)(nil)

// NewRowtimeAccessor creates a rowtime accessor.
func NewRowtimeAccessor() *RowtimeAccessor {
	return &RowtimeAccessor{}
}

// Resolved implements the Expression interface.
func (*RowtimeAccessor) Resolved() bool { return true }

// Type implements the Expression interface.
func (*RowtimeAccessor) Type() (sql.Type, error) { return sql.Int64, nil }

// Children implements the Expression interface.
func (*RowtimeAccessor) Children() []sql.Expression { return nil }

// WithChildren implements the Expression interface.
func (a *RowtimeAccessor) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(a, len(children), 0)
	}
	return a, nil
}

// Validate implements the Expression interface.
func (*RowtimeAccessor) Validate() sql.ValidationResult {
	return sql.ValidationSuccess
}

func (*RowtimeAccessor) String() string { return "rowtime()" }

// RawExpression wraps a node imported from a lower-level expression
// representation, carrying its precomputed result type. The engine treats
// the wrapped representation as opaque.
type RawExpression struct {
	repr      interface{}
	fieldType sql.Type
}

var _ sql.Expression = (*RawExpression)(nil)

// NewRawExpression wraps a lower-level expression node with its known
// result type.
func NewRawExpression(repr interface{}, fieldType sql.Type) *RawExpression {
	return &RawExpression{repr: repr, fieldType: fieldType}
}

// Raw returns the wrapped lower-level representation.
func (e *RawExpression) Raw() interface{} { return e.repr }

// Resolved implements the Expression interface.
func (*RawExpression) Resolved() bool { return true }

// Type implements the Expression interface.
func (e *RawExpression) Type() (sql.Type, error) { return e.fieldType, nil }

// Children implements the Expression interface.
func (*RawExpression) Children() []sql.Expression { return nil }

// WithChildren implements the Expression interface.
func (e *RawExpression) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(e, len(children), 0)
	}
	return e, nil
}

// Validate implements the Expression interface.
func (*RawExpression) Validate() sql.ValidationResult {
	return sql.ValidationSuccess
}

func (e *RawExpression) String() string { return fmt.Sprintf("raw(%v)", e.repr) }
