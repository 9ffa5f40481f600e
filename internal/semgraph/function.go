package semgraph

import (
	"github.com/sparkfront/semfront/internal/source"
	"github.com/sparkfront/semfront/internal/types"
)

// Parameter is a single function/property parameter. It implements
// types.ParameterType (ParamType) so Store.CreateFunctionTypeForParams
// can project types without this package and internal/types needing to
// know about each other's concrete structs.
type Parameter struct {
	Base
	Type types.Type
}

func NewParameter(name string, definedIn Member, loc *source.Location, t types.Type) *Parameter {
	return &Parameter{Base: NewBase(name, definedIn, loc, Public, 0), Type: t}
}

func (p *Parameter) Kind() Kind          { return ParamKind }
func (p *Parameter) TypeGenus() string   { return "value" }
func (p *Parameter) OwnType() types.Type { return p.Type }
func (p *Parameter) ParamType() types.Type { return p.Type }

// Function owns its parameter list/scope and type-parameter list/scope
// eagerly, even when both are empty, matching the build-graph pass's
// unconditional scope construction.
type Function struct {
	Base
	Params         []*Parameter
	ParamScope     Scope
	TypeParams     []*TypeParameter
	TypeParamScope Scope
	ReturnType     types.Type

	// Requirement marks a synthetic Function produced by
	// ResolveRequirements for a "where" clause rather than a real
	// syntactic function.
	Requirement bool

	// RequiredMethodScope and the intercept map let a *generic* Function
	// (one with its own TypeParams) own "where" requirements the same
	// way a generic TypeDefn does. NewFunction leaves RequiredMethodScope
	// nil; the build-graph pass sets it on every Function it builds.
	RequiredMethodScope Scope
	intercepts          map[Member]Scope
}

func NewFunction(name string, definedIn Member, loc *source.Location, vis Visibility, mods Modifiers,
	paramScope, typeParamScope Scope) *Function {
	return &Function{
		Base:           NewBase(name, definedIn, loc, vis, mods),
		ParamScope:     paramScope,
		TypeParamScope: typeParamScope,
		intercepts:     make(map[Member]Scope),
		ReturnType:     types.IGNORED,
	}
}

// InterceptScope returns (creating lazily if necessary) the intercept
// scope attached for a given lookup-context Member, mirroring
// TypeDefn.InterceptScope for a generic Function's own "where" clauses.
func (f *Function) InterceptScope(ctx Member, create func() Scope) Scope {
	if s, ok := f.intercepts[ctx]; ok {
		return s
	}
	s := create()
	f.intercepts[ctx] = s
	return s
}

func (f *Function) Kind() Kind        { return FunctionKind }
func (f *Function) TypeGenus() string { return "unsupported" }
func (f *Function) OwnType() types.Type {
	panic("semgraph: Function has no single OwnType; caller must build a FunctionType via the store")
}

// FunctionType builds (or reuses, via the caller-supplied store) the
// FunctionType for this definition's signature.
func (f *Function) FunctionType(store *types.Store) *types.FunctionType {
	params := make([]types.ParameterType, len(f.Params))
	for i, p := range f.Params {
		params[i] = p
	}
	return store.CreateFunctionTypeForParams(f.ReturnType, params)
}

// Property additionally owns optional getter/setter Functions; a
// Property with parameters is an indexed property (genus Function),
// otherwise it behaves like a Variable.
type Property struct {
	Base
	Params    []*Parameter
	ValueType types.Type
	Getter    *Function
	Setter    *Function
}

func NewProperty(name string, definedIn Member, loc *source.Location, vis Visibility, mods Modifiers) *Property {
	return &Property{Base: NewBase(name, definedIn, loc, vis, mods)}
}

func (p *Property) Kind() Kind          { return PropertyKind }
func (p *Property) TypeGenus() string   { return "unsupported" }
func (p *Property) OwnType() types.Type { return p.ValueType }

// IsIndexed reports whether the property takes parameters, which
// classifies its genus as Function rather than Variable.
func (p *Property) IsIndexed() bool { return len(p.Params) > 0 }
