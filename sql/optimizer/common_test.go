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
	"fmt"

	"github.com/vireodata/go-plan-optimizer/sql"
	"github.com/vireodata/go-plan-optimizer/sql/memo"
	"github.com/vireodata/go-plan-optimizer/sql/plan"
)

// testOp is a leaf operator with a fixed cost, used to make phase outcomes
// explicit in tests.
type testOp struct {
	name   string
	cost   float64
	traits sql.TraitSet
}

var _ sql.Node = (*testOp)(nil)
var _ sql.Traited = (*testOp)(nil)
var _ memo.CostedNode = (*testOp)(nil)

func newTestOp(name string, cost float64, traits ...sql.Trait) *testOp {
	return &testOp{name: name, cost: cost, traits: sql.NewTraitSet(traits...)}
}

func (o *testOp) Resolved() bool       { return true }
func (o *testOp) Schema() sql.Schema   { return nil }
func (o *testOp) Children() []sql.Node { return nil }

func (o *testOp) WithChildren(children ...sql.Node) (sql.Node, error) {
	return plan.NillaryWithChildren(o, children...)
}

func (o *testOp) Traits() sql.TraitSet { return o.traits }

func (o *testOp) PlanCost(input float64) float64 { return o.cost }

func (o *testOp) String() string { return fmt.Sprintf("testOp(%s)", o.name) }

func testScan(name string) *plan.TableScan {
	return plan.NewTableScan(name, sql.Schema{
		{Name: "a", Type: sql.Int32, Source: name},
		{Name: "b", Type: sql.Int32, Source: name},
	})
}

func testContext(opts ...ContextOption) *Context {
	return NewContext(sql.NewEmptyContext(), opts...)
}
