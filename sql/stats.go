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

// StatsProvider gives the optimizer table statistics. Implementations are
// materialized before planning starts; providers must not block.
type StatsProvider interface {
	// RowCount returns the estimated number of rows in the named table and
	// whether an estimate exists.
	RowCount(table string) (uint64, bool)
}

const defaultRowCount = 1000

// EmptyStats is a StatsProvider with no information. Every table gets the
// same fixed estimate.
type EmptyStats struct{}

var _ StatsProvider = EmptyStats{}

// RowCount implements the StatsProvider interface.
func (EmptyStats) RowCount(string) (uint64, bool) {
	return defaultRowCount, false
}

// MapStats is a StatsProvider backed by a map of table name to row count,
// used in tests and by callers with precomputed statistics.
type MapStats map[string]uint64

var _ StatsProvider = MapStats{}

// RowCount implements the StatsProvider interface.
func (s MapStats) RowCount(table string) (uint64, bool) {
	n, ok := s[table]
	if !ok {
		return defaultRowCount, false
	}
	return n, true
}
