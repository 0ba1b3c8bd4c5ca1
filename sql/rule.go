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

// Rule is an opaque unit of plan-tree transformation. The engine never
// inspects rule internals; it only offers candidate nodes and substitutes
// replacements. Rules must be stateless or safely shareable read-only, since
// independent compilations may apply the same rule concurrently.
type Rule interface {
	Nameable
	// Match reports whether the rule applies to the given node.
	Match(n Node) bool
	// Apply returns the replacement for a matched node. Returning the input
	// node itself signals that the rule declined to change it.
	Apply(ctx *Context, n Node) (Node, error)
}

// RuleFunc is the transformation function of a rule.
type RuleFunc func(ctx *Context, n Node) (Node, error)

// MatchFunc is the structural predicate of a rule.
type MatchFunc func(n Node) bool

type funcRule struct {
	name  string
	match MatchFunc
	apply RuleFunc
}

// NewRule creates a rule from a name, a match predicate and an apply
// function. A nil match predicate matches every node.
func NewRule(name string, match MatchFunc, apply RuleFunc) Rule {
	return &funcRule{name: name, match: match, apply: apply}
}

func (r *funcRule) Name() string { return r.name }

func (r *funcRule) Match(n Node) bool {
	if r.match == nil {
		return true
	}
	return r.match(n)
}

func (r *funcRule) Apply(ctx *Context, n Node) (Node, error) {
	return r.apply(ctx, n)
}

// RuleSet is a named, ordered collection of rules scoped to one optimization
// purpose. The engine preserves list order wherever rule order is
// observable.
type RuleSet struct {
	name  string
	rules []Rule
}

// NewRuleSet creates a rule set with the given name and rules.
func NewRuleSet(name string, rules ...Rule) RuleSet {
	return RuleSet{name: name, rules: rules}
}

// Name returns the name of the rule set.
func (rs RuleSet) Name() string { return rs.name }

// Rules returns the rules in list order.
func (rs RuleSet) Rules() []Rule { return rs.rules }

// Len returns the number of rules in the set.
func (rs RuleSet) Len() int { return len(rs.rules) }

// Add returns a new rule set with the given rules appended.
func (rs RuleSet) Add(rules ...Rule) RuleSet {
	out := make([]Rule, 0, len(rs.rules)+len(rules))
	out = append(out, rs.rules...)
	out = append(out, rules...)
	return RuleSet{name: rs.name, rules: out}
}
