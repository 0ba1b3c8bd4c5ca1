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

// Column is the definition of a plan-tree output column.
type Column struct {
	// Name is the name of the column.
	Name string
	// Type is the value type of the column.
	Type Type
	// Source is the name of the relation the column comes from.
	Source string
	// Nullable is whether the column can contain NULL values.
	Nullable bool
}

// Schema is the output schema of a plan node.
type Schema []*Column

// IndexOf returns the index of the named column, or -1 if it is not present.
func (s Schema) IndexOf(name string) int {
	for i, col := range s {
		if col.Name == name {
			return i
		}
	}
	return -1
}

// Contains returns whether the schema has a column with the given name.
func (s Schema) Contains(name string) bool {
	return s.IndexOf(name) >= 0
}
