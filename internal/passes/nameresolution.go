package passes

import (
	"github.com/sparkfront/semfront/internal/ast"
	"github.com/sparkfront/semfront/internal/compiler"
	"github.com/sparkfront/semfront/internal/diagnostics"
	"github.com/sparkfront/semfront/internal/names"
	"github.com/sparkfront/semfront/internal/scope"
	"github.com/sparkfront/semfront/internal/semgraph"
	"github.com/sparkfront/semfront/internal/source"
	"github.com/sparkfront/semfront/internal/types"
)

// Naming resolves a module's import statements only, binding each
// import's resolved targets into the module's ImportScope under its
// alias (or last path component). It declares no prerequisites and
// must run before Resolution, which assumes imports are already bound
// per §4.9's naming/resolution split.
type Naming struct{}

func (Naming) Name() string            { return "naming" }
func (Naming) Prerequisites() []string { return nil }

func (Naming) Run(ctx *compiler.Context, mod *semgraph.Module) error {
	sc, ok := mod.ImportScope.(*scope.StandardScope)
	if !ok {
		return nil
	}
	for _, imp := range mod.AST.Imports {
		hits := ctx.ResolveAbsolute(imp.Path)
		if len(hits) == 0 {
			if ctx.Reporter != nil {
				ctx.Reporter.Error(importLoc(imp)).WithCode(diagnostics.NotFound).
					Write("import path '%s' not found", joinPath(imp.Path)).Emit()
			}
			continue
		}
		alias := imp.Alias
		if alias == "" {
			alias = imp.Path[len(imp.Path)-1]
		}
		if existing := mod.ImportScope.LookupName(alias); len(existing) > 0 {
			if ctx.Reporter != nil {
				ctx.Reporter.Error(importLoc(imp)).WithCode(diagnostics.InvalidForm).
					Write("import alias '%s' conflicts with an earlier import", alias).Emit()
			}
			continue
		}
		for _, h := range hits {
			sc.AddNamed(alias, h)
		}
	}
	return nil
}

func importLoc(imp *ast.Import) *source.Location {
	loc := imp.Loc()
	return &loc
}

func joinPath(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "."
		}
		out += p
	}
	return out
}

// Resolution is the full recursive expression/type/requirement walk
// over a module's members, run after Naming has bound its imports.
type Resolution struct{}

func (Resolution) Name() string            { return "resolution" }
func (Resolution) Prerequisites() []string { return []string{"naming"} }

func (Resolution) Run(ctx *compiler.Context, mod *semgraph.Module) error {
	stack := scope.NewStack()
	stack.Push(mod.ImportScope, nil)
	stack.Push(mod.TopScope, mod)

	r := &names.Resolver{
		Stack:       stack,
		Store:       ctx.Types,
		Subject:     mod,
		PointerBits: ctx.PointerBits,
		Reporter:    ctx.Reporter,
	}
	tr := &names.TypeResolver{Resolver: r}

	w := &resolveWalk{ctx: ctx, r: r, tr: tr}
	for _, m := range mod.Members() {
		w.resolveMember(m)
	}
	return nil
}

// resolveWalk carries the shared Resolver/TypeResolver pair and the
// ScopeStack push/pop discipline through the recursive member walk.
type resolveWalk struct {
	ctx *compiler.Context
	r   *names.Resolver
	tr  *names.TypeResolver
}

func (w *resolveWalk) resolveMember(m semgraph.Member) {
	switch v := m.(type) {
	case *semgraph.TypeDefn:
		w.resolveTypeDefn(v)
	case *semgraph.Function:
		w.resolveFunction(v)
	case *semgraph.Property:
		w.resolveProperty(v)
	case *semgraph.ValueDefn:
		w.resolveValueDefn(v)
	}
}

func (w *resolveWalk) resolveTypeDefn(td *semgraph.TypeDefn) {
	prevSubject := w.r.Subject
	w.r.Subject = td
	w.r.Stack.Push(td.TypeParamScope, td)
	w.r.Stack.Push(td.InheritedScope, td)

	if td.Super != nil {
		t := w.tr.Exec(td.Super)
		if super, ok := asComposite(t); ok {
			td.Type.Super = super
			wireSecondary(td.InheritedScope, super)
		}
	}
	for _, ifaceNode := range td.Interfaces {
		t := w.tr.Exec(ifaceNode)
		if iface, ok := asComposite(t); ok {
			td.Type.Interfaces = append(td.Type.Interfaces, iface)
			wireSecondary(td.InheritedScope, iface)
		}
	}

	for _, child := range td.Children {
		w.resolveMember(child)
	}

	w.r.Stack.Pop()
	w.r.Stack.Pop()
	w.r.Subject = prevSubject
}

func (w *resolveWalk) resolveFunction(fn *semgraph.Function) {
	syn, _ := fn.Syntax.(*ast.FunctionDefn)

	prevSubject := w.r.Subject
	w.r.Subject = fn
	w.r.Stack.Push(fn.TypeParamScope, fn)
	w.r.Stack.Push(fn.ParamScope, fn)

	if syn != nil {
		for i, p := range fn.Params {
			if i < len(syn.Params) && syn.Params[i].TypeExpr != nil {
				p.Type = w.tr.Exec(syn.Params[i].TypeExpr)
			}
		}
		if syn.ReturnType != nil {
			fn.ReturnType = w.tr.Exec(syn.ReturnType)
		} else {
			fn.ReturnType = types.IGNORED
		}
		for _, req := range syn.Requirements {
			newIntercept := func() semgraph.Scope {
				return scope.NewStandard(semgraph.ConstraintScope, "intercept:"+fn.Name())
			}
			names.ResolveRequirement(w.r, names.AsFunctionGeneric(fn), req, newIntercept)
		}
	}

	w.r.Stack.Pop()
	w.r.Stack.Pop()
	w.r.Subject = prevSubject
}

func (w *resolveWalk) resolveProperty(prop *semgraph.Property) {
	syn, _ := prop.Syntax.(*ast.PropertyDefn)
	prevSubject := w.r.Subject
	w.r.Subject = prop

	if syn != nil {
		for i, p := range prop.Params {
			if i < len(syn.Params) && syn.Params[i].TypeExpr != nil {
				p.Type = w.tr.Exec(syn.Params[i].TypeExpr)
			}
		}
		if syn.ValueType != nil {
			prop.ValueType = w.tr.Exec(syn.ValueType)
		}
	}
	if prop.Getter != nil {
		w.resolveFunction(prop.Getter)
	}
	if prop.Setter != nil {
		w.resolveFunction(prop.Setter)
	}
	w.r.Subject = prevSubject
}

func (w *resolveWalk) resolveValueDefn(vd *semgraph.ValueDefn) {
	if vd.Defined {
		return
	}
	var typeExpr, value ast.Node
	switch syn := vd.Syntax.(type) {
	case *ast.LetDefn:
		typeExpr, value = syn.TypeExpr, syn.Value
	case *ast.VarDefn:
		typeExpr, value = syn.TypeExpr, syn.Value
	default:
		return
	}

	prevSubject := w.r.Subject
	w.r.Subject = vd

	if typeExpr != nil {
		vd.Type = w.tr.Exec(typeExpr)
	}
	if value != nil {
		expr := w.r.Exec(value)
		if typeExpr == nil {
			vd.Type = expr.Type
		}
	}
	vd.Defined = true

	w.r.Subject = prevSubject
}

// asComposite unwraps Const/Specialized via types.Raw and reports
// whether the result is a composite type, the only shape a Super or
// Interfaces entry may legally resolve to.
func asComposite(t types.Type) (*types.CompositeType, bool) {
	c, ok := types.Raw(t).(*types.CompositeType)
	return c, ok
}

// wireSecondary attaches target's MemberScope as a secondary scope on
// an InheritedScope, when target's Defn exposes one (i.e. is a real
// semgraph.TypeDefn rather than some other Named implementation).
func wireSecondary(inherited semgraph.Scope, target *types.CompositeType) {
	is, ok := inherited.(*scope.InheritedScope)
	if !ok || target == nil {
		return
	}
	td, ok := target.Defn.(*semgraph.TypeDefn)
	if !ok {
		return
	}
	is.AddSecondary(td.MemberScope)
}
