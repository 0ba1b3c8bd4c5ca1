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
	"github.com/vireodata/go-plan-optimizer/sql/transform"
)

// ValidationPhase walks the plan and fails on the first expression whose
// validation fails. Registering it as the terminal phase of a program
// guarantees the output contract: every attribute of the final plan is
// resolved.
type ValidationPhase struct{}

var _ Phase = ValidationPhase{}

// NewValidationPhase creates a validation phase.
func NewValidationPhase() ValidationPhase {
	return ValidationPhase{}
}

// Apply implements the Phase interface. The plan is returned unchanged on
// success.
func (ValidationPhase) Apply(ctx *Context, n sql.Node) (sql.Node, error) {
	failure := sql.ValidationSuccess
	transform.InspectExpressions(n, func(e sql.Expression) bool {
		if r := e.Validate(); !r.Success() {
			failure = r
			return false
		}
		return true
	})
	if !failure.Success() {
		return nil, sql.ErrValidationFailed.New(failure.Message())
	}
	return n, nil
}
