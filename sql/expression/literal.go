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

// Literal is a constant value with a fixed type.
type Literal struct {
	value     interface{}
	fieldType sql.Type
}

var _ sql.Expression = (*Literal)(nil)

// NewLiteral creates a literal expression. The value is converted to the
// go representation of the type at construction, so rules can read it back
// without re-checking.
func NewLiteral(value interface{}, fieldType sql.Type) (*Literal, error) {
	v, err := fieldType.Convert(value)
	if err != nil {
		return nil, err
	}
	return &Literal{value: v, fieldType: fieldType}, nil
}

// Value returns the literal value.
func (l *Literal) Value() interface{} { return l.value }

// Resolved implements the Expression interface.
func (*Literal) Resolved() bool { return true }

// Type implements the Expression interface.
func (l *Literal) Type() (sql.Type, error) { return l.fieldType, nil }

// Children implements the Expression interface.
func (*Literal) Children() []sql.Expression { return nil }

// WithChildren implements the Expression interface.
func (l *Literal) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(l, len(children), 0)
	}
	return l, nil
}

// Validate implements the Expression interface.
func (*Literal) Validate() sql.ValidationResult {
	return sql.ValidationSuccess
}

func (l *Literal) String() string {
	if s, ok := l.value.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", l.value)
}
