// Package scope implements the polymorphic lookup-node graph: standard,
// inherited and specialized scopes, plus the traversal-time ScopeStack
// and the CloseMatchFinder "did you mean" helper. The module-path and
// directory scopes live in internal/fsimport. Every concrete scope here satisfies semgraph.Scope, defined
// in the semgraph package itself to avoid a dependency cycle (scope
// needs semgraph.Member; semgraph must not need scope).
package scope

import "github.com/sparkfront/semfront/internal/semgraph"

// StandardScope is an in-memory multimap name -> []Member. Any number
// of entries per name is permitted; AddMember only appends, never
// replaces, and LookupName returns entries in insertion order —
// Invariant 3 of the data model.
type StandardScope struct {
	kind    semgraph.ScopeType
	label   string
	order   []string
	members map[string][]semgraph.Member
}

// NewStandard returns an empty StandardScope of the given capability
// kind (Default, Instance, TypeParam, Constraint, or Intercept),
// labeled for Describe().
func NewStandard(kind semgraph.ScopeType, label string) *StandardScope {
	return &StandardScope{kind: kind, label: label, members: make(map[string][]semgraph.Member)}
}

func (s *StandardScope) AddMember(m semgraph.Member) {
	s.AddNamed(m.Name(), m)
}

// AddNamed binds m under an explicit key rather than m.Name(), used by
// the naming sub-pass to bind an import's resolved Members under its
// alias (which may differ from the target's own name).
func (s *StandardScope) AddNamed(name string, m semgraph.Member) {
	if _, seen := s.members[name]; !seen {
		s.order = append(s.order, name)
	}
	s.members[name] = append(s.members[name], m)
}

func (s *StandardScope) LookupName(name string) []semgraph.Member {
	if name == "" {
		return nil
	}
	return s.members[name]
}

func (s *StandardScope) ForAllNames(fn func(string)) {
	for _, n := range s.order {
		fn(n)
	}
}

func (s *StandardScope) Describe() string         { return s.label }
func (s *StandardScope) ScopeType() semgraph.ScopeType { return s.kind }
