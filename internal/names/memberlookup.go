package names

import (
	"github.com/sparkfront/semfront/internal/scope"
	"github.com/sparkfront/semfront/internal/semgraph"
	"github.com/sparkfront/semfront/internal/types"
)

// Lookup resolves name within stem's scope, dispatching by stem's kind
// per §4.8.3, and deduplicating results by Member identity.
func Lookup(stem semgraph.Member, name string) []semgraph.Member {
	return lookupDedup(stem, name, make(map[semgraph.Member]bool))
}

func lookupDedup(stem semgraph.Member, name string, seen map[semgraph.Member]bool) []semgraph.Member {
	// A Specialized stem never lands in the type switch below: its
	// member scope is re-wrapped through SpecializedScope first, so
	// every hit comes back re-specialized over the same env instead of
	// being looked up as if the generic binding never happened.
	if sp, ok := stem.(*semgraph.Specialized); ok {
		inner := memberScopeOf(sp.Generic)
		if inner == nil {
			return nil
		}
		sc := scope.NewSpecialized(sp.Generic.Name()+"<specialized>", inner, sp.Env)
		return dedup(sc.LookupName(name), seen)
	}

	switch v := semgraph.Unwrap(stem).(type) {
	case *semgraph.Package:
		return dedup(v.MemberScope.LookupName(name), seen)
	case *semgraph.Module:
		return dedup(v.TopScope.LookupName(name), seen)
	case *semgraph.TypeDefn:
		if isComposite(v) {
			return dedup(v.InheritedScope.LookupName(name), seen)
		}
		return dedup(v.MemberScope.LookupName(name), seen)
	case *semgraph.PrimitiveDefn:
		return nil
	case *semgraph.TypeParameter:
		var out []semgraph.Member
		for _, constraint := range v.Constraints {
			if composite, ok := types.Raw(constraint).(*types.CompositeType); ok {
				if td, ok := composite.Defn.(*semgraph.TypeDefn); ok {
					out = append(out, lookupDedup(td, name, seen)...)
				}
			}
		}
		return out
	default:
		// Value kinds (Let/Var/Param/EnumValue/TupleMember) and
		// Function/Property have no member scope.
		return nil
	}
}

func dedup(members []semgraph.Member, seen map[semgraph.Member]bool) []semgraph.Member {
	var out []semgraph.Member
	for _, m := range members {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

func isComposite(td *semgraph.TypeDefn) bool {
	return td.Type != nil
}

// memberScopeOf returns the Scope a non-Specialized stem's own lookup
// would use, i.e. the same selection lookupDedup's type switch makes,
// so a Specialized wrapper can re-run that lookup through
// scope.SpecializedScope instead of discarding its env.
func memberScopeOf(stem semgraph.Member) semgraph.Scope {
	switch v := stem.(type) {
	case *semgraph.Package:
		return v.MemberScope
	case *semgraph.Module:
		return v.TopScope
	case *semgraph.TypeDefn:
		if isComposite(v) {
			return v.InheritedScope
		}
		return v.MemberScope
	default:
		return nil
	}
}
