// Package semgraph is the tagged-variant tree of definitions, types,
// expressions and requirements produced by the build-graph pass and
// consumed by name resolution. Member kinds are expressed as distinct
// Go structs sharing a common Member interface and an embedded Base,
// the same shape the teacher's Symbol table uses for its SymbolKind
// variants, generalized here from a single flat struct to one struct per
// kind because the kinds carry materially different scope graphs.
package semgraph

import (
	"github.com/sparkfront/semfront/internal/ast"
	"github.com/sparkfront/semfront/internal/source"
	"github.com/sparkfront/semfront/internal/types"
)

// Kind tags which Member variant a value holds.
type Kind int

const (
	PackageKind Kind = iota
	ModuleKind
	TypeKind
	TypeParameterKind
	FunctionKind
	PropertyKind
	LetKind
	VarKind
	ParamKind
	EnumValueKind
	TupleMemberKind
	SpecializedKind
)

func (k Kind) String() string {
	names := [...]string{"Package", "Module", "Type", "TypeParameter", "Function",
		"Property", "Let", "Var", "Param", "EnumValue", "TupleMember", "Specialized"}
	if int(k) < len(names) {
		return names[k]
	}
	return "?"
}

// Visibility is one of Public, Protected, Private.
type Visibility int

const (
	Public Visibility = iota
	Protected
	Private
)

// Modifiers is a bitmask of declaration modifiers.
type Modifiers uint8

const (
	Static Modifiers = 1 << iota
	Final
	Override
	Abstract
	Undef
)

func (m Modifiers) Has(f Modifiers) bool { return m&f != 0 }

// Member is the common interface every kind implements.
type Member interface {
	Name() string
	Kind() Kind
	DefinedIn() Member
	Location() *source.Location
	QualifiedName() string
	Visibility() Visibility
	Modifiers() Modifiers

	// TypeGenus/OwnType implement types.MemberTyper so the type store
	// can compute MemberType without importing this package.
	TypeGenus() string
	OwnType() types.Type
}

// Base holds the fields every Member variant shares. Concrete kinds
// embed Base and add their own Kind()/TypeGenus()/OwnType().
type Base struct {
	name       string
	definedIn  Member
	loc        *source.Location
	visibility Visibility
	mods       Modifiers

	// Syntax is a read-only back-reference to the node this Member was
	// built from (§4.7); nil for synthetic Members (requirement
	// functions, primitive singletons) that have no syntax counterpart.
	Syntax ast.Node
}

func NewBase(name string, definedIn Member, loc *source.Location, vis Visibility, mods Modifiers) Base {
	return Base{name: name, definedIn: definedIn, loc: loc, visibility: vis, mods: mods}
}

func (b *Base) Name() string            { return b.name }
func (b *Base) DefinedIn() Member       { return b.definedIn }
func (b *Base) Location() *source.Location { return b.loc }
func (b *Base) Visibility() Visibility  { return b.visibility }
func (b *Base) Modifiers() Modifiers    { return b.mods }

// QualifiedName dot-joins the definedIn chain down to this member, the
// way the original's fillmemberset.cpp assumes Member::qualifiedName
// behaves (package-qualified, not file-path-qualified) without ever
// specifying it.
func (b *Base) QualifiedName() string {
	if b.definedIn == nil {
		return b.name
	}
	parent := b.definedIn.QualifiedName()
	if parent == "" {
		return b.name
	}
	return parent + "." + b.name
}

// Unwrap flattens Specialized chains, returning the innermost non-
// Specialized Member. Every genus/visibility/kind switch in this module
// starts here to avoid missed cases (grounded on the original's
// repeated unwrap-then-switch idiom).
func Unwrap(m Member) Member {
	for {
		s, ok := m.(*Specialized)
		if !ok {
			return m
		}
		m = s.Generic
	}
}
