package ast

import "github.com/sparkfront/semfront/internal/source"

// Ident is a bare name reference, resolved via ScopeStack.Find.
type Ident struct {
	Location Location
	Text     string
}

func (i *Ident) Kind() Kind           { return IDENT }
func (i *Ident) Loc() source.Location { return i.Location.toSource() }

// MemberRef is `base.name`: Base is resolved first, then name is looked
// up within the base's stem.
type MemberRef struct {
	Location Location
	Base     Node
	Name     string
}

func (m *MemberRef) Kind() Kind           { return MEMBER }
func (m *MemberRef) Loc() source.Location { return m.Location.toSource() }

// Specialize is `callable(args...)` — a call or generic instantiation,
// disambiguated later by the callable's resolved genus.
type Specialize struct {
	Location Location
	Callable Node
	Args     []Node
}

func (s *Specialize) Kind() Kind           { return SPECIALIZE }
func (s *Specialize) Loc() source.Location { return s.Location.toSource() }

// BuiltInTag enumerates the syntactic primitive type keywords.
type BuiltInTag int

const (
	TagVoid BuiltInTag = iota
	TagBool
	TagChar
	TagI8
	TagI16
	TagI32
	TagI64
	TagU8
	TagU16
	TagU32
	TagU64
	TagF32
	TagF64
	TagNullPtr
	TagInt  // maps to I32/I64 depending on target pointer width
	TagUInt // maps to U32/U64 depending on target pointer width
)

// BuiltInType is a primitive-type keyword used in a type position.
type BuiltInType struct {
	Location Location
	Tag      BuiltInTag
}

func (b *BuiltInType) Kind() Kind           { return BUILTIN_TYPE }
func (b *BuiltInType) Loc() source.Location { return b.Location.toSource() }

// UnionType is a `A | B | C` type expression.
type UnionType struct {
	Location Location
	Members  []Node
}

func (u *UnionType) Kind() Kind           { return UNION_TYPE }
func (u *UnionType) Loc() source.Location { return u.Location.toSource() }

// TupleType is a `(A, B, C)` type expression.
type TupleType struct {
	Location Location
	Members  []Node
}

func (t *TupleType) Kind() Kind           { return TUPLE_TYPE }
func (t *TupleType) Loc() source.Location { return t.Location.toSource() }

// ModifiedType is a type expression carrying a `const` modifier over a
// base type expression. The original also tracks transitiveConst,
// variadic and ref flags, but this module's Type variant set (§3.2) has
// no corresponding Modified kind for them — only Const exists — so only
// the const flag is realized; the others are a deliberate simplification.
type ModifiedType struct {
	Location Location
	Const    bool
	Base     Node
}

func (m *ModifiedType) Kind() Kind           { return MODIFIED_TYPE }
func (m *ModifiedType) Loc() source.Location { return m.Location.toSource() }

// FunctionType is a `(ParamTypes...) -> ReturnType` type expression.
type FunctionType struct {
	Location   Location
	ParamTypes []Node
	ReturnType Node // nil if the function type has no declared return type
}

func (f *FunctionType) Kind() Kind           { return FUNCTION_TYPE }
func (f *FunctionType) Loc() source.Location { return f.Location.toSource() }

// Requirement is one entry of a "where" clause attached to a generic
// definition.
type Requirement struct {
	Location Location
	Op       Kind // CALL_REQUIRED, CALL_REQUIRED_STATIC, EQUAL, REF_EQUAL, NOT_EQUAL, LESS_THAN, GREATER_THAN, LESS_THAN_OR_EQUAL, GREATER_THAN_OR_EQUAL
	Callable Node // for CALL_REQUIRED(_STATIC): the (possibly member-ref) callable name
	Args     []Node
	Return   Node // explicit return type annotation, if any

	// Left/Right are used by the relational-operator forms.
	Left  Node
	Right Node
}

func (r *Requirement) Kind() Kind           { return r.Op }
func (r *Requirement) Loc() source.Location { return r.Location.toSource() }
