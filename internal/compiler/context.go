// Package compiler owns the module set and runs the phase/pass driver
// described in §4.6: Context wires together the Reporter, the module-
// path scope, the type store and the essentials table; Compiler (also
// in this file) owns the module set and the external parser collaborator.
package compiler

import (
	"strings"

	"github.com/sparkfront/semfront/internal/ast"
	"github.com/sparkfront/semfront/internal/config"
	"github.com/sparkfront/semfront/internal/diagnostics"
	"github.com/sparkfront/semfront/internal/essentials"
	"github.com/sparkfront/semfront/internal/fsimport"
	"github.com/sparkfront/semfront/internal/scope"
	"github.com/sparkfront/semfront/internal/semgraph"
	"github.com/sparkfront/semfront/internal/source"
	"github.com/sparkfront/semfront/internal/types"
)

// Parser is the out-of-module collaborator that turns a source file
// into a syntax tree; this module ships no implementation of it (see
// DESIGN.md, "ast boundary").
type Parser interface {
	ParseFile(path string) (*ast.Program, error)
}

// Context owns the error Reporter, the module-path scope, the Type
// Store, the Essentials table, and a back-reference to the Compiler.
type Context struct {
	Reporter *diagnostics.Reporter
	Paths    *fsimport.ModulePathScope
	Types    *types.Store
	Essentials *essentials.Table

	// PointerBits is the target pointer width (32 or 64) used to resolve
	// the generic Int/UInt built-in types; New defaults it to 64.
	PointerBits int

	compiler *Compiler
}

// Compiler owns the growing module set and the Parser collaborator. It
// is the thing Context.ImportModuleFromSource delegates to.
type Compiler struct {
	ctx     *Context
	parser  Parser
	modules []*semgraph.Module
	byPath  map[string]*semgraph.Module
}

// New builds a Context+Compiler pair wired together, with an empty
// module-path scope and a fresh type store. Call AddRoot to register
// search paths before running any phase.
func New(parser Parser, reporter *diagnostics.Reporter) (*Context, *Compiler) {
	ctx := &Context{
		Reporter:    reporter,
		Paths:       fsimport.NewModulePathScope(),
		Types:       types.NewStore(),
		PointerBits: 64,
	}
	c := &Compiler{ctx: ctx, parser: parser, byPath: make(map[string]*semgraph.Module)}
	ctx.compiler = c
	return ctx, c
}

// AddRoot registers dir as a package root on the module-path scope.
func (c *Compiler) AddRoot(dir string) (*semgraph.Package, error) {
	fsi := fsimport.NewFileSystemImporter(c, c.ctx.Reporter)
	pkg, err := fsi.AddPath(dir)
	if err != nil {
		return nil, err
	}
	c.ctx.Paths.AddImporter(fsi)
	return pkg, nil
}

// LoadEssentials resolves the essentials table against the current
// module-path scope. Per the Open Question decision recorded in
// DESIGN.md, this must be called after entry modules are parsed and
// build-graphed but before the Name-Resolution Pass runs.
func (c *Compiler) LoadEssentials(cfg config.EssentialsConfig) {
	c.ctx.Essentials = essentials.Load(cfg, c.ctx, c.ctx.Reporter)
}

// Modules returns every module registered so far, in registration
// order.
func (c *Compiler) Modules() []*semgraph.Module {
	out := make([]*semgraph.Module, len(c.modules))
	copy(out, c.modules)
	return out
}

// ImportModuleFromSource delegates to the Compiler; idempotent per
// path.
func (ctx *Context) ImportModuleFromSource(path string) (semgraph.Member, error) {
	return ctx.compiler.ParseImportSource(path)
}

// ParseImportSource parses path (if not already registered) and
// appends the resulting Module to the module set.
func (c *Compiler) ParseImportSource(path string) (semgraph.Member, error) {
	if mod, ok := c.byPath[path]; ok {
		return mod, nil
	}
	program, err := c.parser.ParseFile(path)
	if err != nil {
		if c.ctx.Reporter != nil {
			c.ctx.Reporter.Error(&source.Location{File: path}).
				Write("parse error: %s", err).
				Emit()
		}
		return nil, nil
	}
	name := config.TrimSourceExt(lastPathComponent(path))
	mod := semgraph.NewModule(name, nil, source.Path(path), program,
		scope.NewStandard(semgraph.DefaultScope, "module:"+name),
		scope.NewStandard(semgraph.DefaultScope, "imports:"+name))
	c.modules = append(c.modules, mod)
	c.byPath[path] = mod
	return mod, nil
}

func lastPathComponent(path string) string {
	i := strings.LastIndexAny(path, "/\\")
	if i < 0 {
		return path
	}
	return path[i+1:]
}

// ResolveAbsolute implements essentials.PathResolver: it walks dotted
// through the module-path scope, then through each hit's
// package/module/type member scope, same as the original's
// findAbsoluteSymbol.
func (ctx *Context) ResolveAbsolute(parts []string) []semgraph.Member {
	if len(parts) == 0 {
		return nil
	}
	hits := ctx.Paths.LookupName(parts[0])
	for _, part := range parts[1:] {
		if len(hits) != 1 {
			return nil
		}
		m := semgraph.Unwrap(hits[0])
		switch v := m.(type) {
		case *semgraph.Package:
			hits = v.MemberScope.LookupName(part)
		case *semgraph.Module:
			hits = v.TopScope.LookupName(part)
		case *semgraph.TypeDefn:
			hits = v.MemberScope.LookupName(part)
		default:
			return nil
		}
	}
	return hits
}

