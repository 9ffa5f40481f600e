package names

import (
	"fmt"

	"github.com/sparkfront/semfront/internal/ast"
	"github.com/sparkfront/semfront/internal/diagnostics"
	"github.com/sparkfront/semfront/internal/semgraph"
	"github.com/sparkfront/semfront/internal/source"
	"github.com/sparkfront/semfront/internal/types"
)

// Generic is the minimal view of the owning generic definition
// ResolveRequirements needs: a required-method scope for contextless
// requirements, and per-context intercept scopes for "where X.f(...)"
// requirements.
type Generic interface {
	semgraph.Member
	RequiredScope() semgraph.Scope
	Intercept(ctx semgraph.Member, create func() semgraph.Scope) semgraph.Scope
}

// genericAdapter adapts a *semgraph.TypeDefn to Generic.
type genericAdapter struct{ *semgraph.TypeDefn }

func (g genericAdapter) RequiredScope() semgraph.Scope { return g.RequiredMethodScope }
func (g genericAdapter) Intercept(ctx semgraph.Member, create func() semgraph.Scope) semgraph.Scope {
	return g.InterceptScope(ctx, create)
}

// AsGeneric adapts a TypeDefn for ResolveRequirements.
func AsGeneric(td *semgraph.TypeDefn) Generic { return genericAdapter{td} }

// fnGenericAdapter adapts a *semgraph.Function (itself generic, with its
// own TypeParams) to Generic, for a function-level "where" clause.
type fnGenericAdapter struct{ *semgraph.Function }

func (g fnGenericAdapter) RequiredScope() semgraph.Scope { return g.RequiredMethodScope }
func (g fnGenericAdapter) Intercept(ctx semgraph.Member, create func() semgraph.Scope) semgraph.Scope {
	return g.InterceptScope(ctx, create)
}

// AsFunctionGeneric adapts a Function for ResolveRequirements.
func AsFunctionGeneric(fn *semgraph.Function) Generic { return fnGenericAdapter{fn} }

// ResolveRequirement resolves one "where" clause entry into a synthetic
// Function with Requirement=true, attached to owner's intercept scope
// (keyed by lookup context) or its required-method scope, per §4.8.5.
func ResolveRequirement(r *Resolver, owner Generic, req *ast.Requirement, newIntercept func() semgraph.Scope) error {
	switch req.Op {
	case ast.CALL_REQUIRED, ast.CALL_REQUIRED_STATIC:
		return resolveCallRequired(r, owner, req, newIntercept)
	case ast.EQUAL, ast.NOT_EQUAL, ast.LESS_THAN, ast.GREATER_THAN, ast.LESS_THAN_OR_EQUAL, ast.GREATER_THAN_OR_EQUAL:
		return resolveRelational(r, owner, req)
	case ast.REF_EQUAL:
		if r.Reporter != nil {
			r.Reporter.Error(ptrLoc(req.Loc())).WithCode(diagnostics.InvalidForm).
				Write("Invalid 'where' condition (reference equality).").Emit()
		}
		return fmt.Errorf("reference equality is not a valid requirement")
	default:
		return fmt.Errorf("unsupported requirement form %s", req.Op)
	}
}

func resolveCallRequired(r *Resolver, owner Generic, req *ast.Requirement, newIntercept func() semgraph.Scope) error {
	contexts, name, err := resolveLookupContexts(r, req.Callable)
	if err != nil {
		return err
	}

	paramTypes := make([]types.Type, len(req.Args))
	for i, a := range req.Args {
		paramTypes[i] = r.Exec(a).Type
	}
	var retType types.Type = types.IGNORED
	if req.Return != nil {
		retType = r.Exec(req.Return).Type
	}

	isConstructor := name == "new"
	if isConstructor {
		if len(contexts) != 1 {
			return fmt.Errorf(`"new" requirement must name exactly one lookup context`)
		}
		tp, ok := semgraph.Unwrap(contexts[0]).(*semgraph.TypeParameter)
		if !ok {
			return fmt.Errorf(`"new" requirement's lookup context must be a type parameter`)
		}
		if req.Return != nil {
			return fmt.Errorf(`"new" requirement may not declare an explicit return type`)
		}
		retType = tp.TypeVar
	}

	fn := semgraph.NewFunction(name, owner, ptrLoc(req.Loc()), semgraph.Public, requirementModifiers(req.Op), nil, nil)
	fn.Requirement = true
	fn.ReturnType = retType
	for i, pt := range paramTypes {
		fn.Params = append(fn.Params, semgraph.NewParameter(fmt.Sprintf("_%d", i), fn, nil, pt))
	}

	if len(contexts) == 0 {
		owner.RequiredScope().AddMember(fn)
		return nil
	}
	for _, ctx := range contexts {
		scope := owner.Intercept(ctx, newIntercept)
		scope.AddMember(fn)
	}
	return nil
}

func requirementModifiers(op ast.Kind) semgraph.Modifiers {
	if op == ast.CALL_REQUIRED_STATIC {
		return semgraph.Static
	}
	return 0
}

func resolveRelational(r *Resolver, owner Generic, req *ast.Requirement) error {
	left := r.Exec(req.Left).Type
	right := r.Exec(req.Right).Type
	boolDefn := semgraph.PrimitiveTypeDefn(types.Bool)

	fn := semgraph.NewFunction(operatorName(req.Op), owner, ptrLoc(req.Loc()), semgraph.Public, semgraph.Static, nil, nil)
	fn.Requirement = true
	fn.ReturnType = boolDefn.OwnType()
	fn.Params = []*semgraph.Parameter{
		semgraph.NewParameter("left", fn, nil, left),
		semgraph.NewParameter("right", fn, nil, right),
	}
	owner.RequiredScope().AddMember(fn)
	return nil
}

func operatorName(op ast.Kind) string {
	switch op {
	case ast.EQUAL:
		return "=="
	case ast.NOT_EQUAL:
		return "!="
	case ast.LESS_THAN:
		return "<"
	case ast.GREATER_THAN:
		return ">"
	case ast.LESS_THAN_OR_EQUAL:
		return "<="
	case ast.GREATER_THAN_OR_EQUAL:
		return ">="
	default:
		return "?"
	}
}

// resolveLookupContexts recursively walks an IDENT/MEMBER ast chain,
// requiring every resolved member be a Package/Module/Type/
// TypeParameter, and returns (contexts, finalName).
func resolveLookupContexts(r *Resolver, node ast.Node) ([]semgraph.Member, string, error) {
	switch n := node.(type) {
	case *ast.Ident:
		return nil, n.Text, nil
	case *ast.MemberRef:
		base := r.Exec(n.Base)
		if base.IsError() || base.Set == nil {
			return nil, n.Name, fmt.Errorf("cannot resolve lookup context for '%s'", n.Name)
		}
		for _, m := range base.Set.Members {
			g := genusOf(m)
			if g != Namespace && g != Type {
				return nil, n.Name, fmt.Errorf("'%s' is not a valid lookup context", base.Set.Name)
			}
		}
		return base.Set.Members, n.Name, nil
	default:
		return nil, "", fmt.Errorf("unsupported requirement callable form")
	}
}

func ptrLoc(loc source.Location) *source.Location { return &loc }
