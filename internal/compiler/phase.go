package compiler

import (
	"fmt"

	"github.com/sparkfront/semfront/internal/diagnostics"
	"github.com/sparkfront/semfront/internal/semgraph"
)

// Pass is one ordered step of a Phase. Name is matched against other
// passes' Prerequisites; Run executes the pass body against a single
// module.
type Pass interface {
	Name() string
	Prerequisites() []string
	Run(ctx *Context, mod *semgraph.Module) error
}

// Phase runs an ordered list of Passes over a growing module set,
// enforcing that each pass's prerequisites have already run against the
// same module.
type Phase struct {
	Name  string
	Ctx   *Context
	Input []*semgraph.Module
	Passes []Pass

	finished   []bool
	ranPasses  map[*semgraph.Module]map[string]bool
	exceptioned bool
}

func NewPhase(name string, ctx *Context, passes ...Pass) *Phase {
	return &Phase{Name: name, Ctx: ctx, Passes: passes, ranPasses: make(map[*semgraph.Module]map[string]bool)}
}

// Run executes every pass against every not-yet-finished module.
// Iteration is index-based and the slice length is captured once per
// invocation: a pass may append modules to Input (via transitive
// imports), but those additions are only picked up on the *next* call
// to Run, matching §4.6/§5's re-entrancy rule.
func (p *Phase) Run() {
	if len(p.finished) < len(p.Input) {
		grown := make([]bool, len(p.Input))
		copy(grown, p.finished)
		p.finished = grown
	}
	seenCount := len(p.Input)
	if seenCount == 0 {
		return
	}
	allDone := true
	for _, f := range p.finished {
		if !f {
			allDone = false
			break
		}
	}
	if allDone {
		return
	}

	for _, pass := range p.Passes {
		for i := 0; i < seenCount; i++ {
			if p.finished[i] {
				continue
			}
			mod := p.Input[i]
			if !p.prerequisitesMet(mod, pass) {
				p.reportPrerequisiteMissing(mod, pass)
				continue
			}
			p.runPass(mod, pass)
			p.markRan(mod, pass)
		}
	}
	for i := 0; i < seenCount; i++ {
		p.finished[i] = true
	}
}

func (p *Phase) prerequisitesMet(mod *semgraph.Module, pass Pass) bool {
	ran := p.ranPasses[mod]
	for _, prereq := range pass.Prerequisites() {
		if ran == nil || !ran[prereq] {
			return false
		}
	}
	return true
}

func (p *Phase) markRan(mod *semgraph.Module, pass Pass) {
	ran := p.ranPasses[mod]
	if ran == nil {
		ran = make(map[string]bool)
		p.ranPasses[mod] = ran
	}
	ran[pass.Name()] = true
}

func (p *Phase) reportPrerequisiteMissing(mod *semgraph.Module, pass Pass) {
	if p.Ctx.Reporter == nil {
		return
	}
	p.Ctx.Reporter.Error(nil).
		WithCode(diagnostics.PrerequisiteMissing).
		Write("pass %q skipped for module %q: prerequisites %v not satisfied", pass.Name(), mod.Name(), pass.Prerequisites()).
		Emit()
}

// runPass executes pass.Run, catching a panic once per Phase: the first
// occurrence is annotated with the module name and re-panicked;
// subsequent layers see exceptioned already set and do not re-annotate,
// matching §7's "first occurrence is annotated... subsequent layers do
// not re-annotate" policy.
func (p *Phase) runPass(mod *semgraph.Module, pass Pass) {
	defer func() {
		if r := recover(); r != nil {
			if !p.exceptioned {
				p.exceptioned = true
				panic(fmt.Sprintf("exception while compiling module %s: %v", mod.Name(), r))
			}
			panic(r)
		}
	}()
	if err := pass.Run(p.Ctx, mod); err != nil && p.Ctx.Reporter != nil {
		p.Ctx.Reporter.Error(nil).Write("pass %q on module %q: %s", pass.Name(), mod.Name(), err).Emit()
	}
}
