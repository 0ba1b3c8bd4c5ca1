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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vireodata/go-plan-optimizer/sql"
)

type fakeTable struct{}

func (fakeTable) Resolved() bool       { return true }
func (fakeTable) Schema() sql.Schema   { return nil }
func (fakeTable) Children() []sql.Node { return nil }
func (t fakeTable) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(t, len(children), 0)
	}
	return t, nil
}
func (fakeTable) String() string { return "fakeTable" }

func TestTableReference(t *testing.T) {
	require := require.New(t)

	ref := NewTableReference("orders", fakeTable{})
	require.Equal("orders", ref.Name())
	require.True(ref.Resolved())

	// Table references render as the bare name, unlike attributes.
	require.Equal("orders", ref.String())

	// A table is not a column.
	_, err := ref.Type()
	require.True(sql.ErrInvalidConversion.Is(err))
	_, err = ref.ToAttribute()
	require.True(sql.ErrInvalidConversion.Is(err))
}

func TestTableReferenceUnresolved(t *testing.T) {
	require := require.New(t)

	ref := NewTableReference("orders", nil)
	require.False(ref.Resolved())
	result := ref.Validate()
	require.False(result.Success())
	require.Contains(result.Message(), "orders")
}

func TestRowtimeAccessor(t *testing.T) {
	require := require.New(t)

	a := NewRowtimeAccessor()
	require.True(a.Resolved())
	typ, err := a.Type()
	require.NoError(err)
	require.Equal(sql.Int64, typ)
	require.True(a.Validate().Success())
	require.Equal("rowtime()", a.String())
}

func TestRawExpression(t *testing.T) {
	require := require.New(t)

	e := NewRawExpression("lower_repr", sql.Text)
	require.True(e.Resolved())
	typ, err := e.Type()
	require.NoError(err)
	require.Equal(sql.Text, typ)
	require.Equal("lower_repr", e.Raw())
	require.True(e.Validate().Success())
}
