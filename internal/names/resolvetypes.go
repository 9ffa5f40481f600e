package names

import (
	"github.com/sparkfront/semfront/internal/ast"
	"github.com/sparkfront/semfront/internal/diagnostics"
	"github.com/sparkfront/semfront/internal/types"
)

// TypeResolver completes the original's ResolveTypes component, left in
// the source as a single working case (Ident) plus pseudocode comments
// for the rest (Modified, FunctionType, LogicalOr/union, Tuple). It
// walks *type-expression* syntax (as opposed to Resolver's *value*-
// expression walk) and produces a types.Type directly from the Store,
// applying the same structural-interning rules identifier resolution
// relies on elsewhere (Invariant 2).
type TypeResolver struct {
	*Resolver
}

// Exec dispatches on node kind. Ident/MemberRef/Specialize/BuiltInType
// share their resolution with value-expression identifiers — a type
// name is just a name, resolved the same way — so those four kinds
// delegate straight to the embedded Resolver and read off its Expr.Type.
func (tr *TypeResolver) Exec(node ast.Node) types.Type {
	switch n := node.(type) {
	case *ast.Ident, *ast.MemberRef, *ast.Specialize, *ast.BuiltInType:
		return tr.Resolver.Exec(node).Type
	case *ast.UnionType:
		return tr.visitUnion(n)
	case *ast.TupleType:
		return tr.visitTuple(n)
	case *ast.ModifiedType:
		return tr.visitModified(n)
	case *ast.FunctionType:
		return tr.visitFunctionType(n)
	default:
		if tr.Reporter != nil {
			loc := node.Loc()
			tr.Reporter.Fatal(&loc).WithCode(diagnostics.InvalidForm).
				Write("invalid type-expression node kind %s", node.Kind()).Emit()
		}
		return types.ERROR
	}
}

// visitUnion builds a Union type from a `A | B | C` expression. A
// single Error member poisons the whole union, matching the original's
// "for t in types: if isErrorType(t): return t" short-circuit.
func (tr *TypeResolver) visitUnion(n *ast.UnionType) types.Type {
	members := make([]types.Type, len(n.Members))
	for i, m := range n.Members {
		t := tr.Exec(m)
		if types.IsError(t) {
			return types.ERROR
		}
		members[i] = t
	}
	return tr.Store.CreateUnionType(members)
}

// visitTuple builds a Tuple type from a `(A, B, C)` expression.
func (tr *TypeResolver) visitTuple(n *ast.TupleType) types.Type {
	members := make([]types.Type, len(n.Members))
	for i, m := range n.Members {
		t := tr.Exec(m)
		if types.IsError(t) {
			return types.ERROR
		}
		members[i] = t
	}
	return tr.Store.CreateTupleType(members)
}

// visitModified applies the const modifier. TransitiveConst, variadic
// and ref exist in the original's syntax but have no corresponding Type
// variant in this module's data model (§3.2 lists Const, not a general
// Modified kind) — a bare modifier with no base type expression is
// therefore not representable and resolves to Error.
func (tr *TypeResolver) visitModified(n *ast.ModifiedType) types.Type {
	if n.Base == nil {
		return types.ERROR
	}
	base := tr.Exec(n.Base)
	if types.IsError(base) {
		return base
	}
	if !n.Const {
		return base
	}
	return tr.Store.CreateConstType(base, false)
}

// visitFunctionType builds a Function type from a `(Params...) -> Ret`
// expression; an omitted return type resolves to Ignored, matching the
// original's `self.visit(node.returnType) if node.hasReturnType else None`.
func (tr *TypeResolver) visitFunctionType(n *ast.FunctionType) types.Type {
	params := make([]types.Type, len(n.ParamTypes))
	for i, p := range n.ParamTypes {
		t := tr.Exec(p)
		if types.IsError(t) {
			return types.ERROR
		}
		params[i] = t
	}
	ret := types.Type(types.IGNORED)
	if n.ReturnType != nil {
		ret = tr.Exec(n.ReturnType)
		if types.IsError(ret) {
			return types.ERROR
		}
	}
	return tr.Store.CreateFunctionType(ret, params)
}
