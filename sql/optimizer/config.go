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
	yaml "gopkg.in/yaml.v2"

	"github.com/vireodata/go-plan-optimizer/sql"
)

// Phase kinds recognized by program configs.
const (
	PhaseKindRuleSequence = "rule-sequence"
	PhaseKindVolcano      = "volcano"
	PhaseKindValidation   = "validation"
)

// PhaseConfig describes one phase of a chained program.
type PhaseConfig struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	// RuleSet names a rule set in the compilation registry. Required for
	// rule-sequence and volcano phases, ignored for validation phases.
	RuleSet string `yaml:"rule_set,omitempty"`

	// MatchOrder and Execution configure rule-sequence phases. They default
	// to BOTTOM_UP and SEQUENCE.
	MatchOrder    string `yaml:"match_order,omitempty"`
	Execution     string `yaml:"execution,omitempty"`
	MaxIterations int    `yaml:"max_iterations,omitempty"`

	// RequiredTraits configure volcano phases.
	RequiredTraits []string `yaml:"required_traits,omitempty"`
}

// ProgramConfig describes a chained program as data, so deployments can
// reconfigure the pipeline without recompiling.
type ProgramConfig struct {
	Phases []PhaseConfig `yaml:"phases"`
}

// ParseProgramConfig parses a yaml program description.
func ParseProgramConfig(data []byte) (*ProgramConfig, error) {
	var cfg ProgramConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Compile resolves the config against a registry of named rule sets and
// builds the program.
func (c *ProgramConfig) Compile(ruleSets map[string]sql.RuleSet) (*Program, error) {
	b := NewProgramBuilder()
	for _, pc := range c.Phases {
		phase, err := pc.compile(ruleSets)
		if err != nil {
			return nil, err
		}
		b.AddLast(pc.Name, phase)
	}
	return b.Build()
}

func (pc PhaseConfig) compile(ruleSets map[string]sql.RuleSet) (Phase, error) {
	switch pc.Kind {
	case PhaseKindRuleSequence:
		rules, ok := ruleSets[pc.RuleSet]
		if !ok {
			return nil, ErrUnknownRuleSet.New(pc.RuleSet)
		}
		order := BottomUp
		if pc.MatchOrder != "" {
			var err error
			order, err = ParseMatchOrder(pc.MatchOrder)
			if err != nil {
				return nil, err
			}
		}
		execution := Sequence
		if pc.Execution != "" {
			var err error
			execution, err = ParseExecutionType(pc.Execution)
			if err != nil {
				return nil, err
			}
		}
		phase := NewRuleSequencePhase(rules, order, execution)
		if pc.MaxIterations > 0 {
			phase = phase.WithMaxIterations(pc.MaxIterations)
		}
		return phase, nil

	case PhaseKindVolcano:
		rules, ok := ruleSets[pc.RuleSet]
		if !ok {
			return nil, ErrUnknownRuleSet.New(pc.RuleSet)
		}
		traits := make([]sql.Trait, len(pc.RequiredTraits))
		for i, t := range pc.RequiredTraits {
			traits[i] = sql.Trait(t)
		}
		return NewVolcanoPhase(rules, traits...), nil

	case PhaseKindValidation:
		return NewValidationPhase(), nil

	default:
		return nil, ErrUnknownPhaseKind.New(pc.Kind)
	}
}
