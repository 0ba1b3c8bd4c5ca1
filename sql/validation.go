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

// ValidationResult is the outcome of validating an expression. Validation
// failures are expected planning conditions, not programming errors, so they
// travel as values rather than as error returns.
type ValidationResult struct {
	failed  bool
	message string
}

// ValidationSuccess is the successful validation outcome.
var ValidationSuccess = ValidationResult{}

// NewValidationFailure creates a failed validation outcome carrying a
// human-readable diagnostic.
func NewValidationFailure(format string, args ...interface{}) ValidationResult {
	return ValidationResult{failed: true, message: fmt.Sprintf(format, args...)}
}

// Success returns whether validation passed.
func (r ValidationResult) Success() bool { return !r.failed }

// Message returns the diagnostic of a failed validation, or the empty string
// on success.
func (r ValidationResult) Message() string { return r.message }

func (r ValidationResult) String() string {
	if r.failed {
		return fmt.Sprintf("ValidationFailure: %s", r.message)
	}
	return "ValidationSuccess"
}
