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

// Package memo implements the search space of cost-based optimization.
// Logically equivalent plans are collected into expression groups; the
// search explores alternatives reachable through a rule set, costs them,
// and extracts the cheapest plan satisfying the required traits. A memo is
// scoped to a single optimization call and never shared.
package memo

import (
	"fmt"
	"strings"

	"github.com/mitchellh/hashstructure"

	"github.com/vireodata/go-plan-optimizer/sql"
)

// GroupId identifies an expression group within one memo.
type GroupId uint16

// Exploration is bounded so rule sets that keep generating fresh
// alternatives fail instead of spinning.
const defaultMaxExploreSteps = 10000

// Memo collects a forest of query plans structured by logical equivalency.
// Plans in the same expression group produce the same rows and schema.
type Memo struct {
	cnt  uint16
	root *ExprGroup

	// all tracks groups in creation order so exploration is deterministic.
	all []*ExprGroup
	// byKey maps a subtree fingerprint to the group owning the subtree.
	byKey map[uint64]*ExprGroup

	c         Coster
	s         Carder
	statsProv sql.StatsProvider

	maxSteps int
	steps    int
}

// NewMemo creates an empty memo using the given coster, carder and
// statistics.
func NewMemo(cost Coster, card Carder, stats sql.StatsProvider) *Memo {
	if cost == nil {
		cost = NewDefaultCoster()
	}
	if card == nil {
		card = NewDefaultCarder()
	}
	if stats == nil {
		stats = sql.EmptyStats{}
	}
	return &Memo{
		byKey:     make(map[uint64]*ExprGroup),
		c:         cost,
		s:         card,
		statsProv: stats,
		maxSteps:  defaultMaxExploreSteps,
	}
}

// Root returns the root expression group.
func (m *Memo) Root() *ExprGroup { return m.root }

// WithMaxExploreSteps overrides the exploration cap.
func (m *Memo) WithMaxExploreSteps(n int) *Memo {
	m.maxSteps = n
	return m
}

// Memoize inserts a plan tree into the memo, creating one group per
// distinct subtree, and makes its group the root.
func (m *Memo) Memoize(n sql.Node) (*ExprGroup, error) {
	grp, err := m.memoizeSubtree(nil, n)
	if err != nil {
		return nil, err
	}
	m.root = grp
	return grp, nil
}

// memoizeSubtree inserts a subtree. If grp is nil the candidate goes into
// the group already owning an equal subtree, or a fresh group; otherwise the
// candidate is recorded as an alternative of grp.
func (m *Memo) memoizeSubtree(grp *ExprGroup, n sql.Node) (*ExprGroup, error) {
	children := n.Children()
	childGroups := make([]*ExprGroup, len(children))
	for i, c := range children {
		g, err := m.memoizeSubtree(nil, c)
		if err != nil {
			return nil, err
		}
		childGroups[i] = g
	}

	key, err := fingerprint(n, childGroups)
	if err != nil {
		return nil, err
	}

	if owner, ok := m.byKey[key]; ok {
		// Already represented. A rule re-deriving a known subtree adds no
		// information, even when it lands in a different group.
		return owner, nil
	}

	if grp == nil {
		m.cnt++
		grp = &ExprGroup{Id: GroupId(m.cnt)}
		m.all = append(m.all, grp)
	} else {
		for _, g := range childGroups {
			if g == grp {
				// A rule wrapping a matched node in a pass-through parent
				// dedups the child back into the target group. Such a
				// candidate contains its own group and can never be a
				// finite-cost implementation, so it is not recorded.
				return grp, nil
			}
		}
	}
	grp.append(&RelExpr{g: grp, n: n, children: childGroups})
	m.byKey[key] = grp
	return grp, nil
}

// Explore grows every group with the alternatives reachable by applying the
// given rules, until no rule produces a new candidate. Rules are offered
// candidates in group creation order, then candidate list order, then rule
// list order, so the search is deterministic.
func (m *Memo) Explore(ctx *sql.Context, rules []sql.Rule) error {
	if m.root == nil {
		return nil
	}
	for {
		changed := false
		for i := 0; i < len(m.all); i++ {
			grp := m.all[i]
			for alt := grp.First; alt != nil; alt = alt.next {
				if alt.explored {
					continue
				}
				alt.explored = true
				for _, r := range rules {
					if !r.Match(alt.n) {
						continue
					}
					m.steps++
					if m.steps > m.maxSteps {
						return sql.ErrMaxExploreSteps.New(m.maxSteps)
					}
					n2, err := r.Apply(ctx, alt.n)
					if err != nil {
						return err
					}
					if n2 == alt.n || n2 == nil {
						continue
					}
					before := grp.len()
					if _, err := m.memoizeSubtree(grp, n2); err != nil {
						return err
					}
					if grp.len() != before {
						changed = true
					}
				}
			}
		}
		if !changed {
			return nil
		}
	}
}

// OptimizeRoot finds the implementation of every group that has the lowest
// cost. Group bests only ever move to cheaper plans; ties keep the first
// candidate found.
func (m *Memo) OptimizeRoot(ctx *sql.Context) error {
	if m.root == nil {
		return nil
	}
	return m.optimizeMemoGroup(ctx, m.root)
}

// optimizeMemoGroup recursively builds the lowest cost plan for the group.
// Subgroups are optimized before the candidates of this group are walked;
// all candidates in a group share the same logical output, so comparing
// their total costs is well defined. Candidates that reach back into a
// group on their own ancestry form a cycle and are excluded, directly or
// through a subgroup that has no acyclic candidate of its own: their cost
// is unbounded. A group left without any usable candidate is a planning
// error, not a crash.
func (m *Memo) optimizeMemoGroup(ctx *sql.Context, grp *ExprGroup) error {
	if grp.Done {
		return nil
	}
	grp.inProgress = true
	defer func() { grp.inProgress = false }()

	for n := grp.First; n != nil; n = n.next {
		// Cyclic marks depend on the ancestry the group was reached
		// through, so they are recomputed on every visit.
		n.cyclic = false
		var cost float64
		for _, g := range n.children {
			if g.inProgress {
				n.cyclic = true
				break
			}
			if err := m.optimizeMemoGroup(ctx, g); err != nil {
				if sql.ErrNoAcyclicPlan.Is(err) {
					n.cyclic = true
					break
				}
				return err
			}
			cost += g.Cost
		}
		if n.cyclic {
			continue
		}
		relCost, err := m.c.EstimateCost(ctx, n.n, m.statsProv)
		if err != nil {
			return err
		}
		n.cost = relCost
		cost += relCost
		grp.updateBest(n, cost)
	}
	if grp.Best == nil {
		return sql.ErrNoAcyclicPlan.New(grp.Id)
	}
	grp.Done = true
	return nil
}

// BestRootPlan extracts the cheapest root plan exposing all required
// traits, materializing each group's best implementation along the way.
// Traits are enforced on the root candidate only: interior nodes take their
// group's cost-best plan regardless of the traits it exposes. Callers that
// need a trait to hold throughout the tree must require it through rules
// that only produce conforming alternatives.
func (m *Memo) BestRootPlan(required sql.TraitSet) (sql.Node, error) {
	if m.root == nil || !m.root.Done {
		return nil, fmt.Errorf("memo: root group is not optimized")
	}

	var best *RelExpr
	var bestCost float64
	for n := m.root.First; n != nil; n = n.next {
		if n.cyclic {
			continue
		}
		if !required.SatisfiedBy(sql.TraitsOf(n.n)) {
			continue
		}
		cost := n.cost
		for _, g := range n.children {
			cost += g.Cost
		}
		if best == nil || cost < bestCost {
			best = n
			bestCost = cost
		}
	}
	if best == nil {
		return nil, sql.ErrTraitsUnsatisfied.New(required)
	}
	return buildBestPlan(best)
}

// buildBestPlan converts a candidate into a plan tree with a recursive DFS
// over its children's best implementations.
func buildBestPlan(n *RelExpr) (sql.Node, error) {
	if len(n.children) == 0 {
		return n.n, nil
	}
	children := make([]sql.Node, len(n.children))
	for i, g := range n.children {
		if g.Best == nil {
			return nil, fmt.Errorf("memo: group %d has no best plan", g.Id)
		}
		c, err := buildBestPlan(g.Best)
		if err != nil {
			return nil, err
		}
		children[i] = c
	}
	return n.n.WithChildren(children...)
}

// fingerprint computes a structural key for a candidate. Children
// contribute through their group ids, so two candidates differing only in
// equivalent subtrees hash the same. Traits are part of the key: a physical
// implementation of a logical operator is a distinct candidate.
func fingerprint(n sql.Node, children []*ExprGroup) (uint64, error) {
	ids := make([]GroupId, len(children))
	for i, g := range children {
		ids[i] = g.Id
	}
	return hashstructure.Hash(struct {
		Op       string
		Repr     string
		Traits   string
		Children []GroupId
	}{
		Op:       fmt.Sprintf("%T", n),
		Repr:     n.String(),
		Traits:   sql.TraitsOf(n).String(),
		Children: ids,
	}, nil)
}

func (m *Memo) String() string {
	b := strings.Builder{}
	b.WriteString("memo:\n")
	for i, g := range m.all {
		beg := "├──"
		if i == len(m.all)-1 {
			beg = "└──"
		}
		b.WriteString(fmt.Sprintf("%s G%d: %s\n", beg, g.Id, g))
	}
	return b.String()
}
