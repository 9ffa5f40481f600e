package passes_test

import (
	"bytes"
	"testing"

	"github.com/sparkfront/semfront/internal/ast"
	"github.com/sparkfront/semfront/internal/compiler"
	"github.com/sparkfront/semfront/internal/diagnostics"
	"github.com/sparkfront/semfront/internal/fsimport"
	"github.com/sparkfront/semfront/internal/passes"
	"github.com/sparkfront/semfront/internal/scope"
	"github.com/sparkfront/semfront/internal/semgraph"
	"github.com/sparkfront/semfront/internal/source"
	"github.com/sparkfront/semfront/internal/types"
)

func newContext() *compiler.Context {
	r := diagnostics.NewReporter(&bytes.Buffer{}, nil, diagnostics.ColorNever)
	return &compiler.Context{Reporter: r, Types: types.NewStore(), PointerBits: 64, Paths: fsimport.NewModulePathScope()}
}

func newModule(name string, program *ast.Program) *semgraph.Module {
	return semgraph.NewModule(name, nil, source.Path(name+".sp"), program,
		scope.NewStandard(semgraph.DefaultScope, "top:"+name),
		scope.NewStandard(semgraph.DefaultScope, "imports:"+name))
}

func runPhases(t *testing.T, ctx *compiler.Context, mod *semgraph.Module) {
	t.Helper()
	if err := (passes.BuildGraph{}).Run(ctx, mod); err != nil {
		t.Fatalf("BuildGraph.Run: %v", err)
	}
	if err := (passes.Naming{}).Run(ctx, mod); err != nil {
		t.Fatalf("Naming.Run: %v", err)
	}
	if err := (passes.Resolution{}).Run(ctx, mod); err != nil {
		t.Fatalf("Resolution.Run: %v", err)
	}
}

func TestBuildGraphTracksEveryMemberInArena(t *testing.T) {
	program := ast.NewBuilder("m").
		Add(ast.Class("Counter", ast.VisPublic,
			ast.Let("n", ast.VisPublic, ast.Builtin(ast.TagI32), nil),
			ast.Func("get", ast.VisPublic, ast.Builtin(ast.TagI32)),
		)).
		Build()

	ctx := newContext()
	mod := newModule("m", program)

	if err := (passes.BuildGraph{}).Run(ctx, mod); err != nil {
		t.Fatalf("BuildGraph.Run: %v", err)
	}

	if mod.Arena.Len() == 0 {
		t.Fatal("expected every constructed Member to be tracked in the module's arena")
	}
	if len(mod.Members()) != 1 {
		t.Fatalf("expected one top-level Member (the Counter TypeDefn), got %d", len(mod.Members()))
	}

	td, ok := mod.Members()[0].(*semgraph.TypeDefn)
	if !ok {
		t.Fatalf("top-level member is %T, want *semgraph.TypeDefn", mod.Members()[0])
	}
	if len(td.Children) != 2 {
		t.Fatalf("expected 2 children (n, get) in declaration order, got %d", len(td.Children))
	}
	if td.Children[0].Name() != "n" || td.Children[1].Name() != "get" {
		t.Errorf("Children order = [%s %s], want [n get]", td.Children[0].Name(), td.Children[1].Name())
	}
}

func TestResolutionFillsFieldAndReturnTypes(t *testing.T) {
	program := ast.NewBuilder("m").
		Add(ast.Class("Counter", ast.VisPublic,
			ast.Let("n", ast.VisPublic, ast.Builtin(ast.TagI32), nil),
			ast.Func("get", ast.VisPublic, ast.Builtin(ast.TagI32)),
		)).
		Build()

	ctx := newContext()
	mod := newModule("m", program)
	runPhases(t, ctx, mod)

	td := mod.Members()[0].(*semgraph.TypeDefn)
	let := td.Children[0].(*semgraph.ValueDefn)
	fn := td.Children[1].(*semgraph.Function)

	i32 := types.PrimitiveFor(types.I32)
	if let.Type != i32 {
		t.Errorf("field n Type = %v, want i32", let.Type)
	}
	if fn.ReturnType != i32 {
		t.Errorf("get ReturnType = %v, want i32", fn.ReturnType)
	}
	if ctx.Reporter.HasErrors() {
		t.Errorf("unexpected diagnostics: %v", ctx.Reporter.Errors())
	}
}

func TestResolutionInfersUntypedLetFromInitializer(t *testing.T) {
	program := ast.NewBuilder("m").
		Add(ast.Class("Holder", ast.VisPublic,
			ast.Let("flag", ast.VisPublic, ast.Builtin(ast.TagBool), nil),
			ast.Let("alias", ast.VisPublic, nil, ast.Id("flag")),
		)).
		Build()

	ctx := newContext()
	mod := newModule("m", program)
	runPhases(t, ctx, mod)

	td := mod.Members()[0].(*semgraph.TypeDefn)
	alias := td.Children[1].(*semgraph.ValueDefn)

	boolT := types.PrimitiveFor(types.Bool)
	if alias.Type != boolT {
		t.Errorf("untyped let alias = %v, want inferred bool from its initializer", alias.Type)
	}
	if !alias.Defined {
		t.Error("alias.Defined should be true once its initializer has resolved")
	}
}

func TestResolutionSelfReferenceIsUseBeforeDef(t *testing.T) {
	program := ast.NewBuilder("m").
		Add(ast.Class("Bad", ast.VisPublic,
			ast.Let("x", ast.VisPublic, nil, ast.Id("x")),
		)).
		Build()

	ctx := newContext()
	mod := newModule("m", program)
	runPhases(t, ctx, mod)

	if !ctx.Reporter.HasErrors() {
		t.Error("expected a use-before-definition diagnostic for a let referencing its own name in its initializer")
	}
}

func TestResolutionInheritedScopeSeesSuperTypeMembers(t *testing.T) {
	baseClass := ast.Class("Base", ast.VisPublic,
		ast.Func("greet", ast.VisPublic, ast.Builtin(ast.TagVoid)))
	derivedClass := ast.Class("Derived", ast.VisPublic)
	derivedClass.Super = ast.Id("Base")
	program := ast.NewBuilder("m").Add(baseClass).Add(derivedClass).Build()

	ctx := newContext()
	mod := newModule("m", program)
	runPhases(t, ctx, mod)

	var derivedTd *semgraph.TypeDefn
	for _, m := range mod.Members() {
		if m.Name() == "Derived" {
			derivedTd = m.(*semgraph.TypeDefn)
		}
	}
	if derivedTd == nil {
		t.Fatal("Derived TypeDefn not found among module members")
	}
	if derivedTd.Type.Super == nil {
		t.Fatal("expected Derived.Type.Super to be resolved to Base's CompositeType")
	}
	hits := derivedTd.InheritedScope.LookupName("greet")
	if len(hits) != 1 {
		t.Fatalf("expected Derived's InheritedScope to see Base.greet via AddSecondary wiring, got %d hits", len(hits))
	}
}

func TestNamingReportsNotFoundImport(t *testing.T) {
	program := &ast.Program{
		File:    "m",
		Imports: []*ast.Import{{Path: []string{"nonexistent", "pkg"}}},
	}
	ctx := newContext()
	mod := newModule("m", program)
	if err := (passes.Naming{}).Run(ctx, mod); err != nil {
		t.Fatalf("Naming.Run: %v", err)
	}
	if !ctx.Reporter.HasErrors() {
		t.Error("expected a not-found diagnostic for an import that resolves to nothing")
	}
}
