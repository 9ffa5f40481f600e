// Package ast is the out-of-module collaborator boundary: the syntax
// tree, lexer and parser are treated as external producers of these
// node types. Since no real parser lives in this module, this package
// also ships a small fixture builder (fixture.go) that tests use to
// construct trees directly, mirroring the funxy convention of one file
// per concern within a package (ast_core.go / ast_expressions.go /
// ast_types.go in the teacher).
package ast

import "github.com/sparkfront/semfront/internal/source"

// Kind tags every syntax node the front end consumes. Passes switch on
// Kind rather than double-dispatching through a Visitor, matching the
// original's node->kind() switches in BuildGraphPass and ResolveExprs.
type Kind int

const (
	PROGRAM Kind = iota
	IMPORT

	IDENT
	MEMBER
	SPECIALIZE
	BUILTIN_TYPE
	UNION_TYPE
	TUPLE_TYPE
	MODIFIED_TYPE
	FUNCTION_TYPE

	CLASS_DEFN
	STRUCT_DEFN
	INTERFACE_DEFN
	OBJECT_DEFN
	ENUM_DEFN
	ENUM_VALUE
	FUNCTION_DEFN
	PROPERTY_DEFN
	LET_DEFN
	VAR_DEFN

	PARAMETER
	TYPE_PARAMETER

	CALL_REQUIRED
	CALL_REQUIRED_STATIC
	EQUAL
	REF_EQUAL
	NOT_EQUAL
	LESS_THAN
	GREATER_THAN
	LESS_THAN_OR_EQUAL
	GREATER_THAN_OR_EQUAL
)

func (k Kind) String() string {
	names := [...]string{
		"PROGRAM", "IMPORT", "IDENT", "MEMBER", "SPECIALIZE", "BUILTIN_TYPE",
		"UNION_TYPE", "TUPLE_TYPE", "MODIFIED_TYPE", "FUNCTION_TYPE",
		"CLASS_DEFN", "STRUCT_DEFN", "INTERFACE_DEFN", "OBJECT_DEFN", "ENUM_DEFN",
		"ENUM_VALUE", "FUNCTION_DEFN", "PROPERTY_DEFN", "LET_DEFN", "VAR_DEFN",
		"PARAMETER", "TYPE_PARAMETER",
		"CALL_REQUIRED", "CALL_REQUIRED_STATIC", "EQUAL", "REF_EQUAL", "NOT_EQUAL",
		"LESS_THAN", "GREATER_THAN", "LESS_THAN_OR_EQUAL", "GREATER_THAN_OR_EQUAL",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "?"
}

// Node is the base interface for every syntax node.
type Node interface {
	Kind() Kind
	Loc() source.Location
}

// Visibility mirrors the syntactic visibility modifier; convertVisibility
// in the build-graph pass maps anything but explicit private/protected
// to public.
type Visibility int

const (
	VisPrivate Visibility = iota
	VisProtected
	VisPublic
)

// Modifiers mirrors the syntactic declaration modifiers.
type Modifiers uint8

const (
	ModStatic Modifiers = 1 << iota
	ModFinal
	ModOverride
	ModAbstract
	ModUndef
)

func (m Modifiers) Has(f Modifiers) bool { return m&f != 0 }

// Import is a single `import a.b.c [as alias]` statement.
type Import struct {
	Location Location
	Path     []string
	Alias    string
}

func (i *Import) Kind() Kind         { return IMPORT }
func (i *Import) Loc() source.Location { return i.Location.toSource() }

// Program is the root node of every syntax tree the front end consumes.
type Program struct {
	File    string
	Imports []*Import
	Members []Defn
}

func (p *Program) Kind() Kind         { return PROGRAM }
func (p *Program) Loc() source.Location { return source.Location{File: p.File} }

// Location is a small position literal usable in fixture code without
// importing internal/source directly at every call site.
type Location struct {
	Line, Col, EndLine, EndCol int
}

func (l Location) toSource() source.Location {
	el, ec := l.EndLine, l.EndCol
	if el == 0 {
		el = l.Line
	}
	if ec == 0 {
		ec = l.Col
	}
	return source.Location{StartLine: l.Line, StartCol: l.Col, EndLine: el, EndCol: ec}
}
