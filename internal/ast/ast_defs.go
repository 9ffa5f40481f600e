package ast

import "github.com/sparkfront/semfront/internal/source"

// Defn is any top-level or nested definition node: the build-graph pass
// walks a []Defn and creates one semgraph Member per entry.
type Defn interface {
	Node
	Name() string
	Visibility() Visibility
	Modifiers() Modifiers
}

type defnBase struct {
	Location   Location
	NameStr    string
	Vis        Visibility
	Mods       Modifiers
}

func (d *defnBase) Name() string            { return d.NameStr }
func (d *defnBase) Visibility() Visibility   { return d.Vis }
func (d *defnBase) Modifiers() Modifiers     { return d.Mods }
func (d *defnBase) Loc() source.Location     { return d.Location.toSource() }

// TypeParameter is a generic parameter declaration, optionally
// constrained by a list of "where"-style requirement expressions
// attached separately (see Requirement in ast_expressions.go).
type TypeParameter struct {
	defnBase
}

func (t *TypeParameter) Kind() Kind { return TYPE_PARAMETER }

// Parameter is a function/property parameter; TypeExpr is the syntactic
// type annotation (nil if elided).
type Parameter struct {
	defnBase
	TypeExpr Node
}

func (p *Parameter) Kind() Kind { return PARAMETER }

// classLike is shared by CLASS_DEFN/STRUCT_DEFN/INTERFACE_DEFN/
// OBJECT_DEFN/ENUM_DEFN: a member list, optional supertype/interfaces,
// and a type-parameter list.
type classLike struct {
	defnBase
	TypeParams []*TypeParameter
	Super      Node
	Interfaces []Node
	Members    []Defn
}

type ClassDefn struct{ classLike }

func (c *ClassDefn) Kind() Kind { return CLASS_DEFN }

type StructDefn struct{ classLike }

func (s *StructDefn) Kind() Kind { return STRUCT_DEFN }

type InterfaceDefn struct{ classLike }

func (i *InterfaceDefn) Kind() Kind { return INTERFACE_DEFN }

// ObjectDefn is a singleton object definition: the build-graph pass
// produces both a TypeDefn (suffixed "#Class") and a Let-kind value
// singleton named after it.
type ObjectDefn struct{ classLike }

func (o *ObjectDefn) Kind() Kind { return OBJECT_DEFN }

// EnumValueDefn is one `case Name` entry inside an EnumDefn.
type EnumValueDefn struct {
	defnBase
}

func (e *EnumValueDefn) Kind() Kind { return ENUM_VALUE }

type EnumDefn struct {
	classLike
	Values []*EnumValueDefn
}

func (e *EnumDefn) Kind() Kind { return ENUM_DEFN }

// FunctionDefn declares parameters and type parameters eagerly, even
// when both lists are empty, matching the build-graph pass's
// unconditional scope construction.
type FunctionDefn struct {
	defnBase
	TypeParams   []*TypeParameter
	Params       []*Parameter
	ReturnType   Node
	Requirements []*Requirement
}

func (f *FunctionDefn) Kind() Kind { return FUNCTION_DEFN }

// PropertyDefn is indexed (genus Function) iff len(Params) > 0.
type PropertyDefn struct {
	defnBase
	Params     []*Parameter
	ValueType  Node
	Getter     *FunctionDefn
	Setter     *FunctionDefn
}

func (p *PropertyDefn) Kind() Kind { return PROPERTY_DEFN }

type LetDefn struct {
	defnBase
	TypeExpr Node
	Value    Node
}

func (l *LetDefn) Kind() Kind { return LET_DEFN }

type VarDefn struct {
	defnBase
	TypeExpr Node
	Value    Node
}

func (v *VarDefn) Kind() Kind { return VAR_DEFN }
