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

package plan

import (
	"fmt"

	"github.com/vireodata/go-plan-optimizer/sql"
)

// TableScan is a leaf reading a named table with a known schema. The schema
// comes from the external catalog resolution pass; this core never performs
// catalog lookups itself.
type TableScan struct {
	name   string
	schema sql.Schema
	traits sql.TraitSet
}

var _ sql.Node = (*TableScan)(nil)
var _ sql.Nameable = (*TableScan)(nil)
var _ sql.Traited = (*TableScan)(nil)

// NewTableScan creates a scan over the named table.
func NewTableScan(name string, schema sql.Schema) *TableScan {
	return &TableScan{name: name, schema: schema, traits: sql.NewTraitSet(sql.TraitLogical)}
}

// Name implements the Nameable interface.
func (t *TableScan) Name() string { return t.name }

// Schema implements the Node interface.
func (t *TableScan) Schema() sql.Schema { return t.schema }

// Resolved implements the Node interface.
func (*TableScan) Resolved() bool { return true }

// Children implements the Node interface.
func (*TableScan) Children() []sql.Node { return nil }

// WithChildren implements the Node interface.
func (t *TableScan) WithChildren(children ...sql.Node) (sql.Node, error) {
	return NillaryWithChildren(t, children...)
}

// Traits implements the Traited interface.
func (t *TableScan) Traits() sql.TraitSet { return t.traits }

// WithTraits returns a copy of the scan exposing the given traits.
func (t *TableScan) WithTraits(traits ...sql.Trait) *TableScan {
	nt := *t
	nt.traits = sql.NewTraitSet(traits...)
	return &nt
}

func (t *TableScan) String() string {
	return fmt.Sprintf("Table(%s)", t.name)
}
