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

import (
	"sort"
	"strings"
)

// Trait is a tag describing a physical or logical property a plan exposes,
// such as its target convention.
type Trait string

// Convention traits shared by the built-in phases. Callers are free to
// define their own traits; these are tags, not an enum.
const (
	TraitLogical  Trait = "LOGICAL"
	TraitPhysical Trait = "PHYSICAL"
)

// TraitSet is an unordered collection of traits.
type TraitSet map[Trait]struct{}

// NewTraitSet creates a trait set from the given traits.
func NewTraitSet(traits ...Trait) TraitSet {
	ts := make(TraitSet, len(traits))
	for _, t := range traits {
		ts[t] = struct{}{}
	}
	return ts
}

// Contains returns whether the set contains the given trait.
func (ts TraitSet) Contains(t Trait) bool {
	_, ok := ts[t]
	return ok
}

// SatisfiedBy returns whether every trait in the set is present in other.
func (ts TraitSet) SatisfiedBy(other TraitSet) bool {
	for t := range ts {
		if !other.Contains(t) {
			return false
		}
	}
	return true
}

// Union returns a new set containing the traits of both sets.
func (ts TraitSet) Union(other TraitSet) TraitSet {
	out := make(TraitSet, len(ts)+len(other))
	for t := range ts {
		out[t] = struct{}{}
	}
	for t := range other {
		out[t] = struct{}{}
	}
	return out
}

func (ts TraitSet) String() string {
	names := make([]string, 0, len(ts))
	for t := range ts {
		names = append(names, string(t))
	}
	sort.Strings(names)
	return "[" + strings.Join(names, ", ") + "]"
}
