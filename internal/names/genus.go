// Package names implements the member-set classification, lookup and
// expression/requirement resolution machinery described in §4.8:
// FillMemberSet, MemberLookup, Subject visibility, ResolveExprs and
// ResolveRequirements. Grounded on the original's sema/names/*.cpp.
package names

import "github.com/sparkfront/semfront/internal/semgraph"

// Genus is the coarse classification of a MemberSet.
type Genus int

const (
	Namespace Genus = iota
	Type
	Variable
	Function
	Incomplete
	Inconsistent
)

func (g Genus) String() string {
	switch g {
	case Namespace:
		return "Namespace"
	case Type:
		return "Type"
	case Variable:
		return "Variable"
	case Function:
		return "Function"
	case Inconsistent:
		return "Inconsistent"
	default:
		return "Incomplete"
	}
}

// genusOf classifies a single Member, unwrapping Specialized first.
func genusOf(m semgraph.Member) Genus {
	switch v := semgraph.Unwrap(m).(type) {
	case *semgraph.Package, *semgraph.Module:
		return Namespace
	case *semgraph.TypeDefn:
		return Type
	case *semgraph.PrimitiveDefn:
		return Type
	case *semgraph.TypeParameter:
		if v.ValueType != nil {
			return Variable
		}
		return Type
	case *semgraph.Function:
		return Function
	case *semgraph.Property:
		if v.IsIndexed() {
			return Function
		}
		return Variable
	case *semgraph.ValueDefn:
		return Variable
	default:
		return Incomplete
	}
}

// genusOfSet classifies a non-empty set of Members: Incomplete if
// empty, the shared genus if all agree, Inconsistent if they disagree.
func genusOfSet(members []semgraph.Member) Genus {
	if len(members) == 0 {
		return Incomplete
	}
	g := genusOf(members[0])
	for _, m := range members[1:] {
		if genusOf(m) != g {
			return Inconsistent
		}
	}
	return g
}
