package names

import (
	"github.com/sparkfront/semfront/internal/semgraph"
	"github.com/sparkfront/semfront/internal/types"
)

// IsVisible reports whether target is visible to subject, per §4.8.4:
// Packages/Modules are always visible; Public members are always
// visible; a member is visible if its defining scope is an ancestor of
// subject; a Protected member is additionally visible if some composite
// enclosing subject inherits from the member's defining composite.
// Specialized wrappers are unwrapped before any check.
func IsVisible(subject, target semgraph.Member) bool {
	target = semgraph.Unwrap(target)
	switch target.Kind() {
	case semgraph.PackageKind, semgraph.ModuleKind:
		return true
	}
	if target.Visibility() == semgraph.Public {
		return true
	}
	if containsSubject(target.DefinedIn(), subject) {
		return true
	}
	if target.Visibility() == semgraph.Protected {
		if enclosingInheritsFrom(subject, target.DefinedIn()) {
			return true
		}
	}
	return false
}

// containsSubject walks subject's DefinedIn chain looking for target,
// matching the original's "target is an ancestor of the subject" check.
func containsSubject(target, subject semgraph.Member) bool {
	if target == nil {
		return false
	}
	for s := subject; s != nil; s = s.DefinedIn() {
		if s == target {
			return true
		}
	}
	return false
}

// enclosingInheritsFrom reports whether some TypeDefn enclosing subject
// inherits from the composite owning definingScope.
func enclosingInheritsFrom(subject semgraph.Member, definingScope semgraph.Member) bool {
	owner, ok := definingScope.(*semgraph.TypeDefn)
	if !ok {
		return false
	}
	target, ok := types.Raw(owner.Type).(*types.CompositeType)
	if !ok {
		return false
	}
	for s := subject; s != nil; s = s.DefinedIn() {
		td, ok := s.(*semgraph.TypeDefn)
		if !ok {
			continue
		}
		if td.Type.InheritsFrom(target) {
			return true
		}
	}
	return false
}
