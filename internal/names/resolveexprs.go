package names

import (
	"github.com/sparkfront/semfront/internal/ast"
	"github.com/sparkfront/semfront/internal/diagnostics"
	"github.com/sparkfront/semfront/internal/scope"
	"github.com/sparkfront/semfront/internal/semgraph"
	"github.com/sparkfront/semfront/internal/types"
)

// Expr is the semantic result of resolving a syntactic expression node.
type Expr struct {
	Kind ast.Kind
	Set  *MemberSet // populated for IDENT, MEMBER, BUILTIN_TYPE
	Call *Call      // populated for SPECIALIZE
	Type types.Type
}

// IsError reports whether resolution failed (a sentinel Expr).
func (e *Expr) IsError() bool { return e == nil || types.IsError(e.Type) }

// Call is a resolved `callable(args...)` expression.
type Call struct {
	Callable *Expr
	Args     []*Expr
}

// Resolver walks syntactic expression nodes, producing Exprs. It holds
// the traversal-time ScopeStack, the Type Store (for BuiltInType
// resolution and future type derivations), the current subject for
// visibility checks, and the target pointer width used by Int/UInt.
type Resolver struct {
	Stack       *scope.ScopeStack
	Store       *types.Store
	Subject     semgraph.Member
	PointerBits int
	Reporter    *diagnostics.Reporter
}

// Exec dispatches on node.Kind(), matching the original's switch on
// ast::Kind in ResolveExprs::exec.
func (r *Resolver) Exec(node ast.Node) *Expr {
	switch n := node.(type) {
	case *ast.Ident:
		return r.visitIdent(n)
	case *ast.MemberRef:
		return r.visitMemberRef(n)
	case *ast.Specialize:
		return r.visitSpecialize(n)
	case *ast.BuiltInType:
		return r.visitBuiltinType(n)
	default:
		return errorExpr()
	}
}

func errorExpr() *Expr { return &Expr{Type: types.ERROR} }

func (r *Resolver) visitIdent(n *ast.Ident) *Expr {
	loc := n.Loc()
	stem, members := r.Stack.Find(n.Text)
	if len(members) == 0 {
		suggestion := r.closeMatch(n.Text)
		if r.Reporter != nil {
			sink := r.Reporter.Error(&loc).WithCode(diagnostics.NotFound).
				Write("'%s' not found", n.Text)
			if suggestion != "" {
				sink.Write(" (did you mean '%s'?)", suggestion)
			}
			sink.Emit()
		}
		return errorExpr()
	}
	set := FillMemberSet(r.Subject, stem, n.Text, loc, members, r.Reporter)
	return &Expr{Kind: ast.IDENT, Set: set, Type: r.setType(set)}
}

func (r *Resolver) closeMatch(name string) string {
	finder := scope.NewCloseMatchFinder(name)
	r.Stack.ForAllNames(finder.Consider)
	if s, ok := finder.Suggestion(); ok {
		return s
	}
	return ""
}

// visitMemberRef implements the Open Question decision recorded in
// DESIGN.md: resolve the base, require its genus to be Namespace or
// Type, then delegate to Lookup with each base member as a stem.
func (r *Resolver) visitMemberRef(n *ast.MemberRef) *Expr {
	loc := n.Loc()
	base := r.Exec(n.Base)
	if base.IsError() || base.Set == nil {
		return errorExpr()
	}
	if base.Set.Genus != Namespace && base.Set.Genus != Type {
		if r.Reporter != nil {
			r.Reporter.Error(&loc).WithCode(diagnostics.InvalidLookupContext).
				Write("'%s' is not a namespace or type; cannot look up '%s' on it", base.Set.Name, n.Name).Emit()
		}
		return errorExpr()
	}
	seen := make(map[semgraph.Member]bool)
	var candidates []semgraph.Member
	for _, m := range base.Set.Members {
		for _, hit := range Lookup(m, n.Name) {
			if seen[hit] {
				continue
			}
			seen[hit] = true
			candidates = append(candidates, hit)
		}
	}
	var stem semgraph.Member
	if len(base.Set.Members) > 0 {
		stem = base.Set.Members[0]
	}
	if len(candidates) == 0 {
		if r.Reporter != nil {
			r.Reporter.Error(&loc).WithCode(diagnostics.NotFound).
				Write("'%s' not found on '%s'", n.Name, base.Set.Name).Emit()
		}
		return errorExpr()
	}
	set := FillMemberSet(r.Subject, stem, n.Name, loc, candidates, r.Reporter)
	return &Expr{Kind: ast.MEMBER, Set: set, Type: r.setType(set)}
}

// visitSpecialize resolves a `callable(args...)` or `callable<args...>`
// node. When the callable names exactly one generic TypeDefn with a
// matching type-parameter count, the result is the corresponding
// SpecializedType from the Store (Invariant 2's structural uniqueness,
// Invariant 4's chain-flattening); otherwise the node is left typed
// Ignored, matching generic call-argument positions the original leaves
// unannotated until instance resolution.
func (r *Resolver) visitSpecialize(n *ast.Specialize) *Expr {
	callable := r.Exec(n.Callable)
	args := make([]*Expr, len(n.Args))
	for i, a := range n.Args {
		args[i] = r.Exec(a)
	}
	result := &Expr{Kind: ast.SPECIALIZE, Call: &Call{Callable: callable, Args: args}, Type: types.IGNORED}

	if callable.IsError() || callable.Set == nil || callable.Set.Genus != Type || len(callable.Set.Members) != 1 {
		return result
	}
	td, ok := semgraph.Unwrap(callable.Set.Members[0]).(*semgraph.TypeDefn)
	if !ok || len(td.TypeParams) != len(args) {
		return result
	}
	bindings := make(map[types.Named]types.Type, len(args))
	for i, tp := range td.TypeParams {
		if args[i].IsError() {
			return result
		}
		bindings[tp] = args[i].Type
	}
	env := r.Store.CreateEnv(bindings)
	result.Type = r.Store.CreateSpecialized(td.Type, env)
	return result
}

func (r *Resolver) visitBuiltinType(n *ast.BuiltInType) *Expr {
	prim := builtinToPrimitive(n.Tag, r.PointerBits)
	defn := semgraph.PrimitiveTypeDefn(prim)
	set := &MemberSet{Name: defn.Name(), Loc: n.Loc(), Members: []semgraph.Member{defn}, Genus: Type}
	return &Expr{Kind: ast.BUILTIN_TYPE, Set: set, Type: defn.OwnType()}
}

func builtinToPrimitive(tag ast.BuiltInTag, pointerBits int) types.Primitive {
	switch tag {
	case ast.TagVoid:
		return types.Void
	case ast.TagBool:
		return types.Bool
	case ast.TagChar:
		return types.Char
	case ast.TagI8:
		return types.I8
	case ast.TagI16:
		return types.I16
	case ast.TagI32:
		return types.I32
	case ast.TagI64:
		return types.I64
	case ast.TagU8:
		return types.U8
	case ast.TagU16:
		return types.U16
	case ast.TagU32:
		return types.U32
	case ast.TagU64:
		return types.U64
	case ast.TagF32:
		return types.F32
	case ast.TagF64:
		return types.F64
	case ast.TagNullPtr:
		return types.NullPtr
	case ast.TagInt:
		return types.IntType(pointerBits).Prim
	case ast.TagUInt:
		return types.UIntType(pointerBits).Prim
	default:
		return types.Void
	}
}

// setType derives a MemberSet's Type directly alongside genus
// classification — the original leaves this as a follow-on pass, but
// nothing about the identifier-resolution data gathered here changes by
// deferring it, so this module computes it inline. Namespace and
// (unspecialized) Function genus sets carry no single Type and are left
// Ignored; Specialize nodes (§4.8.1) compute a real Function/Specialized
// type at the call site instead.
func (r *Resolver) setType(set *MemberSet) types.Type {
	if set.Genus == Inconsistent || set.Genus == Incomplete || len(set.Members) == 0 {
		return types.ERROR
	}
	switch set.Genus {
	case Namespace, Function:
		return types.IGNORED
	}
	first := set.Members[0]
	if prop, ok := semgraph.Unwrap(first).(*semgraph.Property); ok {
		return prop.ValueType
	}
	t, err := r.Store.MemberType(first)
	if err != nil {
		return types.ERROR
	}
	return t
}
