package semgraph

import (
	"github.com/sparkfront/semfront/internal/source"
	"github.com/sparkfront/semfront/internal/types"
)

// ValueDefn is the shared shape of Let, Var, EnumValue and TupleMember:
// a value-kind binding with a type and a defined/not-yet-defined flag,
// the latter driving the "reference before assignment" diagnostic.
type ValueDefn struct {
	Base
	kind    Kind
	Type    types.Type
	Defined bool
}

func newValueDefn(kind Kind, name string, definedIn Member, loc *source.Location, vis Visibility, mods Modifiers, t types.Type) *ValueDefn {
	return &ValueDefn{Base: NewBase(name, definedIn, loc, vis, mods), kind: kind, Type: t}
}

// NewLet constructs a Let-kind ValueDefn, used both for ordinary `let`
// bindings and for the synthetic singleton an object definition
// produces alongside its TypeDefn.
func NewLet(name string, definedIn Member, loc *source.Location, vis Visibility, mods Modifiers, t types.Type) *ValueDefn {
	return newValueDefn(LetKind, name, definedIn, loc, vis, mods, t)
}

func NewVar(name string, definedIn Member, loc *source.Location, vis Visibility, mods Modifiers, t types.Type) *ValueDefn {
	return newValueDefn(VarKind, name, definedIn, loc, vis, mods, t)
}

func NewEnumValue(name string, definedIn Member, loc *source.Location, t types.Type) *ValueDefn {
	v := newValueDefn(EnumValueKind, name, definedIn, loc, Public, 0, t)
	v.Defined = true
	return v
}

func NewTupleMember(name string, definedIn Member, loc *source.Location, t types.Type) *ValueDefn {
	v := newValueDefn(TupleMemberKind, name, definedIn, loc, Public, 0, t)
	v.Defined = true
	return v
}

func (v *ValueDefn) Kind() Kind          { return v.kind }
func (v *ValueDefn) TypeGenus() string   { return "value" }
func (v *ValueDefn) OwnType() types.Type { return v.Type }
func (v *ValueDefn) ParamType() types.Type { return v.Type }
