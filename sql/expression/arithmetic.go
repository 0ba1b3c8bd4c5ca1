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

// BinaryExpression is an expression with two children.
type BinaryExpression struct {
	Left  sql.Expression
	Right sql.Expression
}

// Children implements the Expression interface.
func (e *BinaryExpression) Children() []sql.Expression {
	return []sql.Expression{e.Left, e.Right}
}

// Resolved implements the Expression interface.
func (e *BinaryExpression) Resolved() bool {
	return e.Left.Resolved() && e.Right.Resolved()
}

// Plus adds its two operands. The result type is the left operand's type.
type Plus struct {
	BinaryExpression
}

var _ sql.Expression = (*Plus)(nil)

// NewPlus creates a Plus over the given operands.
func NewPlus(left, right sql.Expression) *Plus {
	return &Plus{BinaryExpression{Left: left, Right: right}}
}

// Type implements the Expression interface.
func (p *Plus) Type() (sql.Type, error) {
	return p.Left.Type()
}

// WithChildren implements the Expression interface.
func (p *Plus) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(p, len(children), 2)
	}
	return NewPlus(children[0], children[1]), nil
}

// Validate implements the Expression interface. A Plus is valid when both
// operands are.
func (p *Plus) Validate() sql.ValidationResult {
	for _, c := range p.Children() {
		if r := c.Validate(); !r.Success() {
			return r
		}
	}
	return sql.ValidationSuccess
}

func (p *Plus) String() string {
	return fmt.Sprintf("(%s + %s)", p.Left, p.Right)
}
