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

// Attributes render with a leading quote so references are visually
// distinguishable from raw identifiers in logs and plan dumps.
func quoted(name string) string { return "'" + name }

// UnresolvedFieldReference is a field reference that has not been resolved
// against a schema yet. It is a placeholder: it has no result type, and a
// resolution pass must replace it with a resolved reference before any
// type-dependent phase runs.
type UnresolvedFieldReference struct {
	name string
}

var _ sql.Attribute = (*UnresolvedFieldReference)(nil)

// NewUnresolvedFieldReference creates a new unresolved reference to the
// named field.
func NewUnresolvedFieldReference(name string) *UnresolvedFieldReference {
	return &UnresolvedFieldReference{name: name}
}

// Name implements the Nameable interface.
func (r *UnresolvedFieldReference) Name() string { return r.name }

// Resolved implements the Expression interface.
func (*UnresolvedFieldReference) Resolved() bool { return false }

// Type implements the Expression interface. Unresolved references have no
// result type.
func (r *UnresolvedFieldReference) Type() (sql.Type, error) {
	return nil, sql.ErrUnresolvedAccess.New("result type", "field reference", r.name)
}

// Children implements the Expression interface.
func (*UnresolvedFieldReference) Children() []sql.Expression { return nil }

// WithChildren implements the Expression interface.
func (r *UnresolvedFieldReference) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(r, len(children), 0)
	}
	return r, nil
}

// Validate implements the Expression interface. Unresolved references never
// validate.
func (r *UnresolvedFieldReference) Validate() sql.ValidationResult {
	return sql.NewValidationFailure("unresolved reference %q", r.name)
}

// ToAttribute implements the NamedExpression interface.
func (r *UnresolvedFieldReference) ToAttribute() (sql.Attribute, error) {
	return r, nil
}

// WithName implements the Attribute interface.
func (r *UnresolvedFieldReference) WithName(name string) (sql.Attribute, error) {
	if name == r.name {
		return r, nil
	}
	return NewUnresolvedFieldReference(name), nil
}

func (r *UnresolvedFieldReference) String() string { return quoted(r.name) }

// ResolvedFieldReference is a field reference bound to a concrete result
// type. The type is fixed at construction and never mutated.
type ResolvedFieldReference struct {
	name      string
	fieldType sql.Type
}

var _ sql.Attribute = (*ResolvedFieldReference)(nil)

// NewResolvedFieldReference creates a field reference with the given name
// and result type.
func NewResolvedFieldReference(name string, fieldType sql.Type) *ResolvedFieldReference {
	return &ResolvedFieldReference{name: name, fieldType: fieldType}
}

// Name implements the Nameable interface.
func (r *ResolvedFieldReference) Name() string { return r.name }

// Resolved implements the Expression interface.
func (*ResolvedFieldReference) Resolved() bool { return true }

// Type implements the Expression interface.
func (r *ResolvedFieldReference) Type() (sql.Type, error) { return r.fieldType, nil }

// Children implements the Expression interface.
func (*ResolvedFieldReference) Children() []sql.Expression { return nil }

// WithChildren implements the Expression interface.
func (r *ResolvedFieldReference) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(r, len(children), 0)
	}
	return r, nil
}

// Validate implements the Expression interface.
func (*ResolvedFieldReference) Validate() sql.ValidationResult {
	return sql.ValidationSuccess
}

// ToAttribute implements the NamedExpression interface.
func (r *ResolvedFieldReference) ToAttribute() (sql.Attribute, error) {
	return r, nil
}

// WithName implements the Attribute interface. The result keeps the
// receiver's type; a no-op rename returns the receiver.
func (r *ResolvedFieldReference) WithName(name string) (sql.Attribute, error) {
	if name == r.name {
		return r, nil
	}
	return NewResolvedFieldReference(name, r.fieldType), nil
}

func (r *ResolvedFieldReference) String() string { return quoted(r.name) }

// WindowReference is a reference to a value produced by a window, such as a
// window start or end timestamp. It is resolved once its result type is
// known. Window references are structurally tied to their defining window
// and cannot be renamed.
type WindowReference struct {
	name      string
	fieldType sql.Type
}

var _ sql.Attribute = (*WindowReference)(nil)

// NewWindowReference creates an untyped window reference. It stays
// unresolved until a typed copy is made.
func NewWindowReference(name string) *WindowReference {
	return &WindowReference{name: name}
}

// NewTypedWindowReference creates a resolved window reference with the
// given result type.
func NewTypedWindowReference(name string, fieldType sql.Type) *WindowReference {
	return &WindowReference{name: name, fieldType: fieldType}
}

// Name implements the Nameable interface.
func (r *WindowReference) Name() string { return r.name }

// Resolved implements the Expression interface.
func (r *WindowReference) Resolved() bool { return r.fieldType != nil }

// Type implements the Expression interface.
func (r *WindowReference) Type() (sql.Type, error) {
	if r.fieldType == nil {
		return nil, sql.ErrUnresolvedAccess.New("result type", "window reference", r.name)
	}
	return r.fieldType, nil
}

// Children implements the Expression interface.
func (*WindowReference) Children() []sql.Expression { return nil }

// WithChildren implements the Expression interface.
func (r *WindowReference) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(r, len(children), 0)
	}
	return r, nil
}

// Validate implements the Expression interface.
func (r *WindowReference) Validate() sql.ValidationResult {
	if r.fieldType == nil {
		return sql.NewValidationFailure("unresolved reference %q", r.name)
	}
	return sql.ValidationSuccess
}

// ToAttribute implements the NamedExpression interface.
func (r *WindowReference) ToAttribute() (sql.Attribute, error) {
	return r, nil
}

// WithName implements the Attribute interface. Renaming to a different name
// fails with ErrInvalidRename.
func (r *WindowReference) WithName(name string) (sql.Attribute, error) {
	if name == r.name {
		return r, nil
	}
	return nil, sql.ErrInvalidRename.New(r.name, name)
}

func (r *WindowReference) String() string { return quoted(r.name) }

// LocalReference is a reference to a local buffer slot, such as an
// aggregation buffer entry or a constant materialized as an addressable
// field. It is always constructed resolved.
type LocalReference struct {
	name      string
	fieldType sql.Type
}

var _ sql.Attribute = (*LocalReference)(nil)

// NewLocalReference creates a local reference with the given name and
// result type.
func NewLocalReference(name string, fieldType sql.Type) *LocalReference {
	return &LocalReference{name: name, fieldType: fieldType}
}

// Name implements the Nameable interface.
func (r *LocalReference) Name() string { return r.name }

// Resolved implements the Expression interface.
func (*LocalReference) Resolved() bool { return true }

// Type implements the Expression interface.
func (r *LocalReference) Type() (sql.Type, error) { return r.fieldType, nil }

// Children implements the Expression interface.
func (*LocalReference) Children() []sql.Expression { return nil }

// WithChildren implements the Expression interface.
func (r *LocalReference) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(r, len(children), 0)
	}
	return r, nil
}

// Validate implements the Expression interface.
func (*LocalReference) Validate() sql.ValidationResult {
	return sql.ValidationSuccess
}

// ToAttribute implements the NamedExpression interface.
func (r *LocalReference) ToAttribute() (sql.Attribute, error) {
	return r, nil
}

// WithName implements the Attribute interface.
func (r *LocalReference) WithName(name string) (sql.Attribute, error) {
	if name == r.name {
		return r, nil
	}
	return NewLocalReference(name, r.fieldType), nil
}

func (r *LocalReference) String() string { return quoted(r.name) }
