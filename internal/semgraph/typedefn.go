package semgraph

import (
	"github.com/sparkfront/semfront/internal/arena"
	"github.com/sparkfront/semfront/internal/ast"
	"github.com/sparkfront/semfront/internal/source"
	"github.com/sparkfront/semfront/internal/types"
)

// Package owns a member scope that is file-system-backed; its children
// are discovered lazily by internal/fsimport, which fills MemberScope in
// as a DirectoryScope.
type Package struct {
	Base
	MemberScope Scope
}

func NewPackage(name string, definedIn Member, scope Scope) *Package {
	p := &Package{Base: NewBase(name, definedIn, nil, Public, 0)}
	p.MemberScope = scope
	return p
}

func (p *Package) Kind() Kind            { return PackageKind }
func (p *Package) TypeGenus() string     { return "namespace" }
func (p *Package) OwnType() types.Type   { return types.ERROR }

// Module owns a top-level member scope, a separate import scope, the
// syntax tree it was built from, and a private arena holding every
// semantic node it produces.
type Module struct {
	Base
	Path        source.Path
	TopScope    Scope
	ImportScope Scope
	AST         *ast.Program
	Arena       *arena.Arena

	members []Member
}

func NewModule(name string, definedIn Member, path source.Path, program *ast.Program, topScope, importScope Scope) *Module {
	m := &Module{
		Base:        NewBase(name, definedIn, nil, Public, 0),
		Path:        path,
		AST:         program,
		TopScope:    topScope,
		ImportScope: importScope,
		Arena:       arena.New(),
	}
	return m
}

func (m *Module) Kind() Kind          { return ModuleKind }
func (m *Module) TypeGenus() string   { return "namespace" }
func (m *Module) OwnType() types.Type { return types.ERROR }

// AddMember appends to the module's own member list (distinct from the
// scope, which also receives it) so passes can iterate declaration
// order without re-walking the AST.
func (m *Module) AddMember(mem Member) {
	m.members = append(m.members, mem)
	if m.TopScope != nil {
		m.TopScope.AddMember(mem)
	}
}

func (m *Module) Members() []Member { return m.members }

// TypeDefn is a type definition: class, struct, interface or enum
// (primitive types are PrimitiveDefn, not TypeDefn). It owns the full scope bundle described in
// the data model: a declared-member scope, an inherited-member scope
// (only meaningful for composites), a type-parameter scope, a
// required-method scope, and intercept scopes keyed by the Member a
// "where" requirement targets.
type TypeDefn struct {
	Base
	Type               *types.CompositeType
	MemberScope        Scope
	InheritedScope     Scope
	TypeParamScope     Scope
	RequiredMethodScope Scope
	TypeParams         []*TypeParameter

	// Super/Interfaces hold the unresolved syntactic supertype/interface
	// list from the build-graph pass; the resolution sub-pass resolves
	// them via names.TypeResolver and fills in Type.Super/Type.Interfaces.
	Super      ast.Node
	Interfaces []ast.Node

	// Children lists nested members in declaration order, mirroring
	// Module.members: it lets a pass iterate without re-walking the
	// syntax tree, distinct from MemberScope's name-keyed lookup.
	Children []Member

	intercepts map[Member]Scope
}

func NewTypeDefn(name string, definedIn Member, loc *source.Location, vis Visibility, mods Modifiers,
	genus types.CompositeGenus, memberScope, inheritedScope, typeParamScope, requiredMethodScope Scope) *TypeDefn {
	td := &TypeDefn{
		Base:                NewBase(name, definedIn, loc, vis, mods),
		MemberScope:         memberScope,
		InheritedScope:      inheritedScope,
		TypeParamScope:      typeParamScope,
		RequiredMethodScope: requiredMethodScope,
		intercepts:          make(map[Member]Scope),
	}
	td.Type = &types.CompositeType{Defn: td, Genus: genus}
	return td
}

func (t *TypeDefn) Kind() Kind          { return TypeKind }
func (t *TypeDefn) TypeGenus() string   { return "type" }
func (t *TypeDefn) OwnType() types.Type { return t.Type }

// InterceptScope returns (creating lazily if necessary) the intercept
// scope attached for a given lookup-context Member, used by "where
// X.f(...)" requirements.
func (t *TypeDefn) InterceptScope(ctx Member, create func() Scope) Scope {
	if s, ok := t.intercepts[ctx]; ok {
		return s
	}
	s := create()
	t.intercepts[ctx] = s
	return s
}

// TypeParameter is a generic parameter: it is classified as genus Type
// when ValueType is nil, or genus Variable when a constant value-kind
// binding (e.g. a const generic) has pinned it to a concrete type.
type TypeParameter struct {
	Base
	Constraints []types.Type
	TypeVar     *types.TypeVarType
	ValueType   types.Type
}

func NewTypeParameter(name string, definedIn Member, loc *source.Location) *TypeParameter {
	tp := &TypeParameter{Base: NewBase(name, definedIn, loc, Public, 0)}
	tp.TypeVar = &types.TypeVarType{Param: tp}
	return tp
}

func (t *TypeParameter) Kind() Kind        { return TypeParameterKind }
func (t *TypeParameter) TypeGenus() string { return "typeparam" }
func (t *TypeParameter) OwnType() types.Type {
	if t.ValueType != nil {
		return t.ValueType
	}
	return t.TypeVar
}
