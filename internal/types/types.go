// Package types implements the structurally-interned type representation
// described by the semantic graph: primitives, composites, unions,
// tuples, function types, const wrappers, specializations and type
// variables. It is deliberately ignorant of internal/semgraph's concrete
// definition structs — Composite and TypeVar reference definitions only
// through the Named interface below, the same narrow-interface trick the
// teacher repo uses between its analyzer and module loader to avoid an
// import cycle.
package types

import (
	"fmt"
	"strings"
)

// Kind tags the variant of a Type.
type Kind int

const (
	InvalidKind Kind = iota
	IgnoredKind
	PrimitiveKind
	CompositeKind
	UnionKind
	TupleKind
	FunctionKind
	ConstKind
	SpecializedKind
	TypeVarKind
)

func (k Kind) String() string {
	switch k {
	case InvalidKind:
		return "Invalid"
	case IgnoredKind:
		return "Ignored"
	case PrimitiveKind:
		return "Primitive"
	case CompositeKind:
		return "Composite"
	case UnionKind:
		return "Union"
	case TupleKind:
		return "Tuple"
	case FunctionKind:
		return "Function"
	case ConstKind:
		return "Const"
	case SpecializedKind:
		return "Specialized"
	case TypeVarKind:
		return "TypeVar"
	default:
		return "?"
	}
}

// Type is the common interface every type variant satisfies.
type Type interface {
	Kind() Kind
	String() string
}

// Named is the minimal view of a semantic-graph definition that the
// types package needs: enough to print a qualified name and to use as a
// map/back-reference key. internal/semgraph.TypeDefn and TypeParameter
// both implement it.
type Named interface {
	QualifiedName() string
}

// --- sentinels -------------------------------------------------------

type invalidType struct{}

func (invalidType) Kind() Kind     { return InvalidKind }
func (invalidType) String() string { return "<error>" }

type ignoredType struct{}

func (ignoredType) Kind() Kind     { return IgnoredKind }
func (ignoredType) String() string { return "<ignored>" }

// ERROR is the sentinel returned by resolution functions that fail; it
// never poisons interning because it is never a member of a composite
// key (callers short-circuit on IsError before building one).
var ERROR Type = invalidType{}

// IGNORED is the placeholder type used where a syntactic position
// exists but no type is required (e.g. an elided return type).
var IGNORED Type = ignoredType{}

// IsError reports whether t is the ERROR sentinel.
func IsError(t Type) bool { _, ok := t.(invalidType); return ok }

// IsIgnored reports whether t is the IGNORED sentinel.
func IsIgnored(t Type) bool { _, ok := t.(ignoredType); return ok }

// --- primitives --------------------------------------------------------

// Primitive enumerates the fixed set of built-in scalar kinds.
type Primitive int

const (
	Void Primitive = iota
	Bool
	Char
	I8
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	F32
	F64
	NullPtr
)

var primitiveNames = map[Primitive]string{
	Void: "void", Bool: "bool", Char: "char",
	I8: "i8", I16: "i16", I32: "i32", I64: "i64",
	U8: "u8", U16: "u16", U32: "u32", U64: "u64",
	F32: "f32", F64: "f64", NullPtr: "nullptr",
}

// primitiveWidth gives a primitive's bit width, used only to order primitives
// deterministically against each other; it carries no other meaning.
var primitiveWidth = map[Primitive]int{
	Void: 0, Bool: 1, Char: 8,
	I8: 8, U8: 8, I16: 16, U16: 16,
	I32: 32, U32: 32, I64: 64, U64: 64,
	F32: 32, F64: 64, NullPtr: 64,
}

func (p Primitive) signed() bool {
	switch p {
	case I8, I16, I32, I64:
		return true
	default:
		return false
	}
}

type PrimitiveType struct{ Prim Primitive }

func (p *PrimitiveType) Kind() Kind     { return PrimitiveKind }
func (p *PrimitiveType) String() string { return primitiveNames[p.Prim] }

var primitiveSingletons = func() map[Primitive]*PrimitiveType {
	m := make(map[Primitive]*PrimitiveType, len(primitiveNames))
	for p := range primitiveNames {
		m[p] = &PrimitiveType{Prim: p}
	}
	return m
}()

// PrimitiveFor returns the process-wide singleton for a primitive kind.
func PrimitiveFor(p Primitive) *PrimitiveType { return primitiveSingletons[p] }

// IntType returns the signed integer primitive matching the host's
// generic "Int" built-in type for the given pointer width in bits (32 or
// 64), matching the spec's Int/UInt-depends-on-pointer-width rule.
func IntType(pointerBits int) *PrimitiveType {
	if pointerBits >= 64 {
		return primitiveSingletons[I64]
	}
	return primitiveSingletons[I32]
}

// UIntType is the unsigned analogue of IntType.
func UIntType(pointerBits int) *PrimitiveType {
	if pointerBits >= 64 {
		return primitiveSingletons[U64]
	}
	return primitiveSingletons[U32]
}

// --- composite ---------------------------------------------------------

// CompositeGenus distinguishes the four composite flavors.
type CompositeGenus int

const (
	ClassGenus CompositeGenus = iota
	StructGenus
	InterfaceGenus
	EnumGenus
)

// CompositeType is a class/struct/interface/enum. Defn is the owning
// TypeDefn, referenced only through the Named interface to avoid an
// import cycle with internal/semgraph.
type CompositeType struct {
	Defn       Named
	Genus      CompositeGenus
	Super      *CompositeType
	Interfaces []*CompositeType
}

func (c *CompositeType) Kind() Kind { return CompositeKind }
func (c *CompositeType) String() string {
	if c.Defn != nil {
		return c.Defn.QualifiedName()
	}
	return "<composite>"
}

// InheritsFrom reports whether c is target or derives from it, walking
// Super and Interfaces and unwrapping Const/Specialized through Raw.
func (c *CompositeType) InheritsFrom(target *CompositeType) bool {
	if c == target {
		return true
	}
	if c.Super != nil {
		if s, ok := Raw(c.Super).(*CompositeType); ok && s.InheritsFrom(target) {
			return true
		}
	}
	for _, iface := range c.Interfaces {
		if i, ok := Raw(iface).(*CompositeType); ok && i.InheritsFrom(target) {
			return true
		}
	}
	return false
}

// --- union / tuple -------------------------------------------------------

type UnionType struct{ Members []Type }

func (u *UnionType) Kind() Kind { return UnionKind }
func (u *UnionType) String() string {
	parts := make([]string, len(u.Members))
	for i, m := range u.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, " | ")
}

type TupleType struct{ Members []Type }

func (t *TupleType) Kind() Kind { return TupleKind }
func (t *TupleType) String() string {
	parts := make([]string, len(t.Members))
	for i, m := range t.Members {
		parts[i] = m.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// --- function ------------------------------------------------------------

type FunctionType struct {
	Return Type
	Params []Type
}

func (f *FunctionType) Kind() Kind { return FunctionKind }
func (f *FunctionType) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ", ") + ") -> " + f.Return.String()
}

// --- const -----------------------------------------------------------------

type ConstType struct {
	Base        Type
	Provisional bool
}

func (c *ConstType) Kind() Kind { return ConstKind }
func (c *ConstType) String() string {
	if c.Provisional {
		return "const? " + c.Base.String()
	}
	return "const " + c.Base.String()
}

// --- specialized / type var -------------------------------------------------

// Env is an interned, unordered binding map from a generic's type
// parameters to concrete types.
type Env struct {
	bindings map[Named]Type
	key      string
}

// Lookup returns the type bound to p, and whether a binding exists.
func (e *Env) Lookup(p Named) (Type, bool) {
	if e == nil {
		return nil, false
	}
	t, ok := e.bindings[p]
	return t, ok
}

type SpecializedType struct {
	Generic Type
	Env     *Env
}

func (s *SpecializedType) Kind() Kind { return SpecializedKind }
func (s *SpecializedType) String() string {
	return s.Generic.String() + "<specialized>"
}

// TypeVarType is pinned to a single generic TypeParameter, referenced
// through Named for the same reason CompositeType references its Defn
// that way.
type TypeVarType struct{ Param Named }

func (t *TypeVarType) Kind() Kind { return TypeVarKind }
func (t *TypeVarType) String() string {
	if t.Param != nil {
		return t.Param.QualifiedName()
	}
	return "<typevar>"
}

// Raw unwraps Const and Specialized wrappers, looping until neither
// applies, matching the original's types::raw helper used by
// InheritsFrom and visibility checks.
func Raw(t Type) Type {
	for {
		switch v := t.(type) {
		case *ConstType:
			t = v.Base
		case *SpecializedType:
			t = v.Generic
		default:
			return t
		}
	}
}

// --- ordering --------------------------------------------------------------

// Ordering implements TypeOrdering: a total order over Types used to
// sort union members deterministically before they are interned. Kind
// is compared first, then a kind-specific tie-break.
func Ordering(a, b Type) int {
	if a.Kind() != b.Kind() {
		return int(a.Kind()) - int(b.Kind())
	}
	switch av := a.(type) {
	case *PrimitiveType:
		bv := b.(*PrimitiveType)
		if w := primitiveWidth[av.Prim] - primitiveWidth[bv.Prim]; w != 0 {
			return w
		}
		if av.Prim.signed() != bv.Prim.signed() {
			if av.Prim.signed() {
				return -1
			}
			return 1
		}
		return int(av.Prim) - int(bv.Prim)
	case *CompositeType:
		bv := b.(*CompositeType)
		return strings.Compare(av.Defn.QualifiedName(), bv.Defn.QualifiedName())
	case *UnionType:
		return strings.Compare(a.String(), b.String())
	case *TupleType:
		return strings.Compare(a.String(), b.String())
	case *FunctionType:
		return strings.Compare(a.String(), b.String())
	default:
		return strings.Compare(fmt.Sprintf("%p", a), fmt.Sprintf("%p", b))
	}
}
