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
	"github.com/vireodata/go-plan-optimizer/sql/memo"
)

// VolcanoPhase searches the space of logically equivalent plans reachable
// through its rule set and returns the cheapest plan exposing the required
// traits. The search memo is scoped to one Apply call; nothing persists
// across calls and concurrent calls never share state.
type VolcanoPhase struct {
	rules    sql.RuleSet
	required sql.TraitSet

	coster   memo.Coster
	carder   memo.Carder
	maxSteps int
}

var _ Phase = (*VolcanoPhase)(nil)

// NewVolcanoPhase creates a cost-based phase over the given rule set. The
// returned plan must expose every given trait; if no reachable plan does,
// Apply fails with ErrTraitsUnsatisfied.
func NewVolcanoPhase(rules sql.RuleSet, required ...sql.Trait) *VolcanoPhase {
	return &VolcanoPhase{
		rules:    rules,
		required: sql.NewTraitSet(required...),
	}
}

// WithCoster returns a copy of the phase using the given cost model instead
// of the context's.
func (p *VolcanoPhase) WithCoster(c memo.Coster) *VolcanoPhase {
	np := *p
	np.coster = c
	return &np
}

// WithCarder returns a copy of the phase using the given cardinality model
// instead of the context's.
func (p *VolcanoPhase) WithCarder(c memo.Carder) *VolcanoPhase {
	np := *p
	np.carder = c
	return &np
}

// WithMaxExploreSteps returns a copy of the phase with a different
// exploration cap.
func (p *VolcanoPhase) WithMaxExploreSteps(n int) *VolcanoPhase {
	np := *p
	np.maxSteps = n
	return &np
}

// Apply implements the Phase interface.
func (p *VolcanoPhase) Apply(ctx *Context, n sql.Node) (sql.Node, error) {
	coster := p.coster
	if coster == nil {
		coster = ctx.Coster
	}
	carder := p.carder
	if carder == nil {
		carder = ctx.Carder
	}

	m := memo.NewMemo(coster, carder, ctx.Stats)
	if p.maxSteps > 0 {
		m.WithMaxExploreSteps(p.maxSteps)
	}

	if _, err := m.Memoize(n); err != nil {
		return nil, err
	}
	if err := m.Explore(ctx.Context, p.rules.Rules()); err != nil {
		return nil, err
	}
	if err := m.OptimizeRoot(ctx.Context); err != nil {
		return nil, err
	}
	return m.BestRootPlan(p.required.Union(ctx.RequiredTraits))
}
