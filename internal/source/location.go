// Package source holds the small position types diagnostics and the
// semantic graph attach to nodes they describe. It has no dependency on
// ast, types, or scope so everything else can depend on it.
package source

import "fmt"

// Location is a half-open span of lines/columns within a single file.
// Line and column are 1-based, matching the convention used throughout
// the front end's diagnostics.
type Location struct {
	File      string
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// Union returns the smallest Location spanning both a and b. Per the
// end-to-end scenario in the spec, union is commutative and does not
// require a and b to be contiguous.
func Union(a, b Location) Location {
	if a.File == "" {
		return b
	}
	if b.File == "" {
		return a
	}
	out := Location{File: a.File}
	if before(a.StartLine, a.StartCol, b.StartLine, b.StartCol) {
		out.StartLine, out.StartCol = a.StartLine, a.StartCol
	} else {
		out.StartLine, out.StartCol = b.StartLine, b.StartCol
	}
	if before(a.EndLine, a.EndCol, b.EndLine, b.EndCol) {
		out.EndLine, out.EndCol = b.EndLine, b.EndCol
	} else {
		out.EndLine, out.EndCol = a.EndLine, a.EndCol
	}
	return out
}

func before(l1, c1, l2, c2 int) bool {
	if l1 != l2 {
		return l1 < l2
	}
	return c1 < c2
}

func (l Location) String() string {
	if l.File == "" {
		return "<unknown>"
	}
	if l.StartLine == l.EndLine {
		return fmt.Sprintf("%s:%d:%d-%d", l.File, l.StartLine, l.StartCol, l.EndCol)
	}
	return fmt.Sprintf("%s:%d:%d-%d:%d", l.File, l.StartLine, l.StartCol, l.EndLine, l.EndCol)
}

// Path is a slash-joined relative filesystem path, kept distinct from a
// bare string so joining and rebasing stay centralized in one place (the
// "path joining" testable property in the spec).
type Path string

// Join appends a single component, matching Path("foo") ⊕ "bar" == "foo/bar".
func (p Path) Join(component string) Path {
	if p == "" {
		return Path(component)
	}
	return Path(string(p) + "/" + component)
}

// MakeRelative strips base as a prefix of p, returning the remainder. If
// base is not a prefix of p, p is returned unchanged.
func (p Path) MakeRelative(base Path) Path {
	ps, bs := string(p), string(base)
	if len(bs) == 0 {
		return p
	}
	if len(ps) < len(bs) || ps[:len(bs)] != bs {
		return p
	}
	rest := ps[len(bs):]
	for len(rest) > 0 && rest[0] == '/' {
		rest = rest[1:]
	}
	return Path(rest)
}

func (p Path) String() string { return string(p) }
