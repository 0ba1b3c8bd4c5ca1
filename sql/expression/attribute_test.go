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

func TestUnresolvedFieldReference(t *testing.T) {
	require := require.New(t)

	ref := NewUnresolvedFieldReference("a")
	require.Equal("a", ref.Name())
	require.False(ref.Resolved())
	require.Equal("'a", ref.String())

	_, err := ref.Type()
	require.Error(err)
	require.True(sql.ErrUnresolvedAccess.Is(err))

	result := ref.Validate()
	require.False(result.Success())
	require.Contains(result.Message(), "a")

	attr, err := ref.ToAttribute()
	require.NoError(err)
	require.True(attr == sql.Attribute(ref))
}

func TestUnresolvedFieldReferenceWithName(t *testing.T) {
	require := require.New(t)

	ref := NewUnresolvedFieldReference("a")
	same, err := ref.WithName("a")
	require.NoError(err)
	require.True(same == sql.Attribute(ref))

	renamed, err := ref.WithName("b")
	require.NoError(err)
	require.Equal("b", renamed.Name())
	require.False(renamed.Resolved())
}

func TestResolvedFieldReference(t *testing.T) {
	require := require.New(t)

	ref := NewResolvedFieldReference("a", sql.Int32)
	require.Equal("a", ref.Name())
	require.True(ref.Resolved())
	require.Equal("'a", ref.String())

	typ, err := ref.Type()
	require.NoError(err)
	require.Equal(sql.Int32, typ)
	require.True(ref.Validate().Success())

	attr, err := ref.ToAttribute()
	require.NoError(err)
	require.True(attr == sql.Attribute(ref))
}

func TestResolvedFieldReferenceWithName(t *testing.T) {
	require := require.New(t)

	ref := NewResolvedFieldReference("a", sql.Int32)

	// A no-op rename preserves identity.
	same, err := ref.WithName("a")
	require.NoError(err)
	require.True(same == sql.Attribute(ref))

	renamed, err := ref.WithName("b")
	require.NoError(err)
	require.False(renamed == sql.Attribute(ref))
	require.Equal("b", renamed.Name())
	typ, err := renamed.Type()
	require.NoError(err)
	require.Equal(sql.Int32, typ)
}

func TestWindowReference(t *testing.T) {
	require := require.New(t)

	untyped := NewWindowReference("w$start")
	require.False(untyped.Resolved())
	_, err := untyped.Type()
	require.True(sql.ErrUnresolvedAccess.Is(err))
	result := untyped.Validate()
	require.False(result.Success())
	require.Contains(result.Message(), "w$start")

	typed := NewTypedWindowReference("w$start", sql.Timestamp)
	require.True(typed.Resolved())
	typ, err := typed.Type()
	require.NoError(err)
	require.Equal(sql.Timestamp, typ)
	require.True(typed.Validate().Success())
}

func TestWindowReferenceRename(t *testing.T) {
	require := require.New(t)

	ref := NewTypedWindowReference("w$start", sql.Timestamp)

	same, err := ref.WithName("w$start")
	require.NoError(err)
	require.True(same == sql.Attribute(ref))

	// Window references are tied to their defining window; renaming fails.
	_, err = ref.WithName("renamed")
	require.Error(err)
	require.True(sql.ErrInvalidRename.Is(err))
}

func TestLocalReference(t *testing.T) {
	require := require.New(t)

	ref := NewLocalReference("agg$0", sql.Int64)
	require.True(ref.Resolved())
	require.True(ref.Validate().Success())
	require.Equal("'agg$0", ref.String())

	same, err := ref.WithName("agg$0")
	require.NoError(err)
	require.True(same == sql.Attribute(ref))

	renamed, err := ref.WithName("agg$1")
	require.NoError(err)
	require.Equal("agg$1", renamed.Name())
	typ, err := renamed.Type()
	require.NoError(err)
	require.Equal(sql.Int64, typ)
}
