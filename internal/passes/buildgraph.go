// Package passes implements the Build-Graph and Name-Resolution passes
// (§4.7, §4.8) as compiler.Pass values, grounded on the original's
// sema/buildgraph.cpp and sema/names/*.cpp, and on the teacher's
// AnalysisMode-staged analyzer passes for the naming/resolution split
// supplemented in SPEC_FULL.md §4.9.
package passes

import (
	"fmt"

	"github.com/sparkfront/semfront/internal/arena"
	"github.com/sparkfront/semfront/internal/ast"
	"github.com/sparkfront/semfront/internal/compiler"
	"github.com/sparkfront/semfront/internal/scope"
	"github.com/sparkfront/semfront/internal/semgraph"
	"github.com/sparkfront/semfront/internal/source"
	"github.com/sparkfront/semfront/internal/types"
)

// ClassTypeSuffix names the TypeDefn an object definition produces,
// alongside the Let-kind singleton named after the object itself.
const ClassTypeSuffix = "#Class"

// BuildGraph converts a module's syntax tree into semantic-graph
// Members, wiring each TypeDefn's scope bundle eagerly per §4.7. It
// declares no prerequisites: it is always the first pass to touch a
// freshly parsed module.
type BuildGraph struct{}

func (BuildGraph) Name() string            { return "buildgraph" }
func (BuildGraph) Prerequisites() []string { return nil }

func (BuildGraph) Run(ctx *compiler.Context, mod *semgraph.Module) error {
	for _, d := range mod.AST.Members {
		if err := buildTopLevel(ctx, mod, d); err != nil {
			return err
		}
	}
	return nil
}

func buildTopLevel(ctx *compiler.Context, mod *semgraph.Module, d ast.Defn) error {
	if n, ok := d.(*ast.ObjectDefn); ok {
		td, let, err := buildObject(ctx, mod, mod, n)
		if err != nil {
			return err
		}
		mod.AddMember(td)
		mod.AddMember(let)
		return nil
	}
	mem, err := buildDefn(ctx, mod, mod, d)
	if err != nil {
		return err
	}
	mod.AddMember(mem)
	return nil
}

// buildDefn creates the Member for a single non-object definition node.
// definedIn is the enclosing Member (a Module or a TypeDefn); root is
// the owning Module, whose Arena takes ownership of every Member built
// beneath it (§4.1's "every Member reachable from a Module is
// allocated... in the module's arena" invariant).
func buildDefn(ctx *compiler.Context, root *semgraph.Module, definedIn semgraph.Member, d ast.Defn) (semgraph.Member, error) {
	vis := convertVisibility(d.Visibility())
	mods := convertModifiers(d.Modifiers())
	loc := d.Loc()

	switch n := d.(type) {
	case *ast.ClassDefn:
		td, err := buildComposite(ctx, root, definedIn, n.Name(), n.TypeParams, n.Super, n.Interfaces, n.Members, loc, vis, mods, types.ClassGenus)
		if td != nil {
			td.Syntax = n
		}
		return td, err
	case *ast.StructDefn:
		td, err := buildComposite(ctx, root, definedIn, n.Name(), n.TypeParams, n.Super, n.Interfaces, n.Members, loc, vis, mods, types.StructGenus)
		if td != nil {
			td.Syntax = n
		}
		return td, err
	case *ast.InterfaceDefn:
		td, err := buildComposite(ctx, root, definedIn, n.Name(), n.TypeParams, n.Super, n.Interfaces, n.Members, loc, vis, mods, types.InterfaceGenus)
		if td != nil {
			td.Syntax = n
		}
		return td, err
	case *ast.EnumDefn:
		td, err := buildEnum(ctx, root, definedIn, n, vis, mods)
		if td != nil {
			td.Syntax = n
		}
		return td, err
	case *ast.FunctionDefn:
		fn, err := buildFunction(ctx, root, definedIn, n, vis, mods)
		if fn != nil {
			fn.Syntax = n
		}
		return fn, err
	case *ast.PropertyDefn:
		p, err := buildProperty(ctx, root, definedIn, n, vis, mods)
		if p != nil {
			p.Syntax = n
		}
		return p, err
	case *ast.LetDefn:
		v := semgraph.NewLet(n.Name(), definedIn, &loc, vis, mods, types.ERROR)
		v.Syntax = n
		arena.Track(root.Arena, v)
		return v, nil
	case *ast.VarDefn:
		v := semgraph.NewVar(n.Name(), definedIn, &loc, vis, mods, types.ERROR)
		v.Syntax = n
		arena.Track(root.Arena, v)
		return v, nil
	default:
		return nil, fmt.Errorf("buildgraph: unrecognized definition node kind %s", d.Kind())
	}
}

// buildComposite builds a class/struct/interface TypeDefn: its full
// scope bundle (member, inherited, type-parameter, required-method),
// its type parameters (each with a fresh TypeVar), and recursively
// builds its nested members into its own member scope.
func buildComposite(ctx *compiler.Context, root *semgraph.Module, definedIn semgraph.Member, name string, typeParams []*ast.TypeParameter,
	super ast.Node, interfaces []ast.Node, members []ast.Defn, loc source.Location,
	vis semgraph.Visibility, mods semgraph.Modifiers, genus types.CompositeGenus) (*semgraph.TypeDefn, error) {

	memberScope := scope.NewStandard(semgraph.DefaultScope, "members:"+name)
	typeParamScope := scope.NewStandard(semgraph.TypeParamScopeType, "typeparams:"+name)
	requiredScope := scope.NewStandard(semgraph.ConstraintScope, "required:"+name)
	inheritedScope := scope.NewInherited("inherited:"+name, memberScope)

	td := semgraph.NewTypeDefn(name, definedIn, &loc, vis, mods, genus, memberScope, inheritedScope, typeParamScope, requiredScope)
	td.Super = super
	td.Interfaces = interfaces
	arena.Track(root.Arena, td)

	for _, tp := range typeParams {
		tpLoc := tp.Loc()
		param := semgraph.NewTypeParameter(tp.Name(), td, &tpLoc)
		param.Syntax = tp
		td.TypeParams = append(td.TypeParams, param)
		typeParamScope.AddMember(param)
		arena.Track(root.Arena, param)
	}

	for _, m := range members {
		if obj, ok := m.(*ast.ObjectDefn); ok {
			nestedTd, nestedLet, err := buildObject(ctx, root, td, obj)
			if err != nil {
				return nil, err
			}
			memberScope.AddMember(nestedTd)
			memberScope.AddMember(nestedLet)
			td.Children = append(td.Children, nestedTd, nestedLet)
			continue
		}
		mem, err := buildDefn(ctx, root, td, m)
		if err != nil {
			return nil, err
		}
		memberScope.AddMember(mem)
		td.Children = append(td.Children, mem)
	}
	return td, nil
}

// buildEnum builds an Enum-genus TypeDefn; enum values are EnumValue-
// kind ValueDefns added to the same member scope as ordinary members.
func buildEnum(ctx *compiler.Context, root *semgraph.Module, definedIn semgraph.Member, n *ast.EnumDefn, vis semgraph.Visibility, mods semgraph.Modifiers) (*semgraph.TypeDefn, error) {
	td, err := buildComposite(ctx, root, definedIn, n.Name(), n.TypeParams, n.Super, n.Interfaces, n.Members, n.Loc(), vis, mods, types.EnumGenus)
	if err != nil {
		return nil, err
	}
	for _, v := range n.Values {
		vloc := v.Loc()
		ev := semgraph.NewEnumValue(v.Name(), td, &vloc, td.Type)
		ev.Syntax = v
		td.MemberScope.AddMember(ev)
		td.Children = append(td.Children, ev)
		arena.Track(root.Arena, ev)
	}
	return td, nil
}

// buildObject builds the dual Members a syntactic object definition
// produces per §4.7: a TypeDefn suffixed "#Class" and a Let-kind
// ValueDefn singleton named after the object, typed as the TypeDefn's
// own Type.
func buildObject(ctx *compiler.Context, root *semgraph.Module, definedIn semgraph.Member, n *ast.ObjectDefn) (*semgraph.TypeDefn, *semgraph.ValueDefn, error) {
	vis := convertVisibility(n.Visibility())
	mods := convertModifiers(n.Modifiers())
	loc := n.Loc()
	td, err := buildComposite(ctx, root, definedIn, n.Name()+ClassTypeSuffix, n.TypeParams, n.Super, n.Interfaces, n.Members, loc, vis, mods, types.ClassGenus)
	if err != nil {
		return nil, nil, err
	}
	td.Syntax = n
	let := semgraph.NewLet(n.Name(), definedIn, &loc, vis, mods, td.Type)
	let.Defined = true
	let.Syntax = n
	arena.Track(root.Arena, let)
	return td, let, nil
}

// buildFunction constructs a Function's parameter and type-parameter
// scopes eagerly, even when both are empty, matching the build-graph
// pass's unconditional scope construction. Parameter/return types are
// left as syntax (n.Params[i].TypeExpr, n.ReturnType) for the
// resolution sub-pass to fill in via names.TypeResolver.
func buildFunction(ctx *compiler.Context, root *semgraph.Module, definedIn semgraph.Member, n *ast.FunctionDefn, vis semgraph.Visibility, mods semgraph.Modifiers) (*semgraph.Function, error) {
	loc := n.Loc()
	paramScope := scope.NewStandard(semgraph.DefaultScope, "params:"+n.Name())
	typeParamScope := scope.NewStandard(semgraph.TypeParamScopeType, "typeparams:"+n.Name())

	fn := semgraph.NewFunction(n.Name(), definedIn, &loc, vis, mods, paramScope, typeParamScope)
	fn.ReturnType = types.ERROR
	fn.RequiredMethodScope = scope.NewStandard(semgraph.ConstraintScope, "required:"+n.Name())
	arena.Track(root.Arena, fn)

	for _, tp := range n.TypeParams {
		tpLoc := tp.Loc()
		param := semgraph.NewTypeParameter(tp.Name(), fn, &tpLoc)
		param.Syntax = tp
		fn.TypeParams = append(fn.TypeParams, param)
		typeParamScope.AddMember(param)
		arena.Track(root.Arena, param)
	}
	for _, p := range n.Params {
		pLoc := p.Loc()
		param := semgraph.NewParameter(p.Name(), fn, &pLoc, types.ERROR)
		param.Syntax = p
		fn.Params = append(fn.Params, param)
		paramScope.AddMember(param)
		arena.Track(root.Arena, param)
	}
	return fn, nil
}

// buildProperty records a Property's optional indexer parameters in
// prop.Params and builds its getter/setter Functions; no parameter scope
// is built for the indexer parameters. Genus (Function vs Variable) is
// determined later by names.genusOf from len(Params).
func buildProperty(ctx *compiler.Context, root *semgraph.Module, definedIn semgraph.Member, n *ast.PropertyDefn, vis semgraph.Visibility, mods semgraph.Modifiers) (*semgraph.Property, error) {
	loc := n.Loc()
	prop := semgraph.NewProperty(n.Name(), definedIn, &loc, vis, mods)
	prop.ValueType = types.ERROR
	arena.Track(root.Arena, prop)

	for _, p := range n.Params {
		pLoc := p.Loc()
		param := semgraph.NewParameter(p.Name(), prop, &pLoc, types.ERROR)
		param.Syntax = p
		prop.Params = append(prop.Params, param)
		arena.Track(root.Arena, param)
	}
	if n.Getter != nil {
		getter, err := buildFunction(ctx, root, definedIn, n.Getter, vis, mods)
		if err != nil {
			return nil, err
		}
		getter.Syntax = n.Getter
		prop.Getter = getter
	}
	if n.Setter != nil {
		setter, err := buildFunction(ctx, root, definedIn, n.Setter, vis, mods)
		if err != nil {
			return nil, err
		}
		setter.Syntax = n.Setter
		prop.Setter = setter
	}
	return prop, nil
}

func convertVisibility(v ast.Visibility) semgraph.Visibility {
	switch v {
	case ast.VisPrivate:
		return semgraph.Private
	case ast.VisProtected:
		return semgraph.Protected
	default:
		return semgraph.Public
	}
}

func convertModifiers(m ast.Modifiers) semgraph.Modifiers {
	var out semgraph.Modifiers
	if m.Has(ast.ModStatic) {
		out |= semgraph.Static
	}
	if m.Has(ast.ModFinal) {
		out |= semgraph.Final
	}
	if m.Has(ast.ModOverride) {
		out |= semgraph.Override
	}
	if m.Has(ast.ModAbstract) {
		out |= semgraph.Abstract
	}
	if m.Has(ast.ModUndef) {
		out |= semgraph.Undef
	}
	return out
}
