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
	"os"
	"strings"

	opentracing "github.com/opentracing/opentracing-go"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"

	"github.com/vireodata/go-plan-optimizer/sql"
)

const debugOptimizerKey = "DEBUG_OPTIMIZER"

type namedPhase struct {
	name  string
	phase Phase
}

// ProgramBuilder accumulates named phases and produces an immutable
// Program. Phase names must be unique within one program; duplicates are a
// configuration error reported at Build, not at run time.
type ProgramBuilder struct {
	phases  []namedPhase
	debug   bool
	verbose bool
}

// NewProgramBuilder creates an empty program builder.
func NewProgramBuilder() *ProgramBuilder {
	return &ProgramBuilder{}
}

// AddLast appends a named phase to the end of the program.
func (b *ProgramBuilder) AddLast(name string, phase Phase) *ProgramBuilder {
	b.phases = append(b.phases, namedPhase{name: name, phase: phase})
	return b
}

// WithDebug activates debug logging on the built program.
func (b *ProgramBuilder) WithDebug() *ProgramBuilder {
	b.debug = true
	return b
}

// WithVerbose activates plan dumps after each phase on the built program.
func (b *ProgramBuilder) WithVerbose() *ProgramBuilder {
	b.verbose = true
	return b
}

// Build validates the registered phases and returns the program. Programs
// with no phases or with duplicate phase names fail to build.
func (b *ProgramBuilder) Build() (*Program, error) {
	if len(b.phases) == 0 {
		return nil, ErrEmptyProgram.New()
	}
	seen := make(map[string]struct{}, len(b.phases))
	for _, p := range b.phases {
		if _, ok := seen[p.name]; ok {
			return nil, sql.ErrDuplicatePhaseName.New(p.name)
		}
		seen[p.name] = struct{}{}
	}

	_, debug := os.LookupEnv(debugOptimizerKey)
	phases := make([]namedPhase, len(b.phases))
	copy(phases, b.phases)
	return &Program{
		Debug:    debug || b.debug,
		Verbose:  b.verbose,
		debugCtx: make([]string, 0),
		phases:   phases,
	}, nil
}

// Program is an ordered chain of named phases. Execution is strictly
// sequential: each phase sees only the previous phase's output. The program
// holds no plan state between runs and is reusable across independent plans.
// A Program serves one Run at a time: its debug-context stack is mutated
// during Run, so concurrent compilations must use independent Program
// instances.
type Program struct {
	// Debug logs phase progress when set.
	Debug bool
	// Verbose dumps the plan after every phase when set.
	Verbose bool

	debugCtx []string
	phases   []namedPhase
}

// PhaseNames returns the phase names in execution order.
func (p *Program) PhaseNames() []string {
	names := make([]string, len(p.phases))
	for i, ph := range p.phases {
		names[i] = ph.name
	}
	return names
}

// Log prints an INFO message with the given message and args if the program
// is in debug mode.
func (p *Program) Log(msg string, args ...interface{}) {
	if p != nil && p.Debug {
		if len(p.debugCtx) > 0 {
			ctx := strings.Join(p.debugCtx, "/")
			logrus.Infof("%s: "+msg, append([]interface{}{ctx}, args...)...)
		} else {
			logrus.Infof(msg, args...)
		}
	}
}

// LogNode prints the plan if verbose logging is enabled.
func (p *Program) LogNode(n sql.Node) {
	if p != nil && n != nil && p.Verbose {
		if len(p.debugCtx) > 0 {
			ctx := strings.Join(p.debugCtx, "/")
			fmt.Printf("%s: %s", ctx, n.String())
		} else {
			fmt.Printf("%s", n.String())
		}
	}
}

// PushDebugContext pushes the given context string onto the context stack,
// to use when logging debug messages.
func (p *Program) PushDebugContext(msg string) {
	if p != nil {
		p.debugCtx = append(p.debugCtx, msg)
	}
}

// PopDebugContext pops a context message off the context stack.
func (p *Program) PopDebugContext() {
	if p != nil && len(p.debugCtx) > 0 {
		p.debugCtx = p.debugCtx[:len(p.debugCtx)-1]
	}
}

// Run executes the phases in registration order, threading each phase's
// output as the next phase's input. If a phase fails the chain aborts
// immediately and the error is annotated with the phase's name and position.
func (p *Program) Run(ctx *Context, n sql.Node) (sql.Node, error) {
	span, sqlCtx := ctx.Span("optimize", opentracing.Tags{
		"plan": n.String(),
	})
	defer span.Finish()
	ctx = ctx.withSQLContext(sqlCtx)

	runID := uuid.NewV4()
	p.Log("run %s: starting optimization of node of type: %T", runID, n)

	cur := n
	for i, ph := range p.phases {
		p.PushDebugContext(ph.name)
		out, err := p.runPhase(ctx, ph, i, cur)
		p.PopDebugContext()
		if err != nil {
			p.Log("run %s: phase %q failed: %s", runID, ph.name, err)
			return nil, sql.ErrPhaseFailed.Wrap(err, ph.name, i)
		}
		cur = out
		p.LogNode(cur)
	}

	p.Log("run %s: optimization finished after %d phases", runID, len(p.phases))
	return cur, nil
}

func (p *Program) runPhase(ctx *Context, ph namedPhase, pos int, n sql.Node) (sql.Node, error) {
	span, sqlCtx := ctx.Span("phase", opentracing.Tags{
		"name":     ph.name,
		"position": pos,
	})
	defer span.Finish()
	return ph.phase.Apply(ctx.withSQLContext(sqlCtx), n)
}
