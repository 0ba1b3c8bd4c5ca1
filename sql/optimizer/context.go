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

// Context is the environment threaded through one program run: the
// compilation context, the traits the final plan must expose, table
// statistics and the cost model. A Context is scoped to a single run and
// carries no plan state.
type Context struct {
	*sql.Context

	// RequiredTraits are traits every cost-based phase in the program must
	// satisfy, in addition to any traits the phase itself requires.
	RequiredTraits sql.TraitSet

	// Stats provides table statistics to the cost model.
	Stats sql.StatsProvider

	// Coster and Carder override the default cost model when non-nil.
	Coster memo.Coster
	Carder memo.Carder
}

// ContextOption configures a program context.
type ContextOption func(*Context)

// WithRequiredTraits sets the program-wide required traits.
func WithRequiredTraits(traits ...sql.Trait) ContextOption {
	return func(ctx *Context) {
		ctx.RequiredTraits = sql.NewTraitSet(traits...)
	}
}

// WithStats sets the statistics provider.
func WithStats(s sql.StatsProvider) ContextOption {
	return func(ctx *Context) {
		ctx.Stats = s
	}
}

// WithCoster sets the cost model used by cost-based phases.
func WithCoster(c memo.Coster) ContextOption {
	return func(ctx *Context) {
		ctx.Coster = c
	}
}

// WithCarder sets the cardinality model used by cost-based phases.
func WithCarder(c memo.Carder) ContextOption {
	return func(ctx *Context) {
		ctx.Carder = c
	}
}

// NewContext creates a program context over the given compilation context.
// Statistics default to the empty provider.
func NewContext(ctx *sql.Context, opts ...ContextOption) *Context {
	c := &Context{
		Context: ctx,
		Stats:   sql.EmptyStats{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// withSQLContext returns a copy of the program context over a different
// compilation context, used to scope tracing spans per phase.
func (c *Context) withSQLContext(ctx *sql.Context) *Context {
	nc := *c
	nc.Context = ctx
	return &nc
}
