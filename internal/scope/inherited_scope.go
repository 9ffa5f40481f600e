package scope

import "github.com/sparkfront/semfront/internal/semgraph"

// InheritedScope owns a primary scope (a composite's declared members)
// and an ordered list of secondary scopes (inherited from super types
// and interfaces). LookupName returns only primary's results when
// non-empty; otherwise it unions every secondary scope's results,
// de-duplicating by Member identity while preserving first-seen order.
type InheritedScope struct {
	primary   semgraph.Scope
	secondary []semgraph.Scope
	label     string
}

func NewInherited(label string, primary semgraph.Scope, secondary ...semgraph.Scope) *InheritedScope {
	return &InheritedScope{label: label, primary: primary, secondary: secondary}
}

func (s *InheritedScope) AddMember(m semgraph.Member) { s.primary.AddMember(m) }

// AddSecondary appends a secondary (inherited) scope, used by the
// resolution sub-pass once a TypeDefn's Super/Interfaces syntax has
// been resolved into concrete composite types and their member scopes
// are known.
func (s *InheritedScope) AddSecondary(sc semgraph.Scope) {
	s.secondary = append(s.secondary, sc)
}

func (s *InheritedScope) LookupName(name string) []semgraph.Member {
	if direct := s.primary.LookupName(name); len(direct) > 0 {
		return direct
	}
	seen := make(map[semgraph.Member]bool)
	var out []semgraph.Member
	for _, sec := range s.secondary {
		for _, m := range sec.LookupName(name) {
			if seen[m] {
				continue
			}
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}

func (s *InheritedScope) ForAllNames(fn func(string)) {
	emitted := make(map[string]bool)
	wrap := func(n string) {
		if !emitted[n] {
			emitted[n] = true
			fn(n)
		}
	}
	s.primary.ForAllNames(wrap)
	for _, sec := range s.secondary {
		sec.ForAllNames(wrap)
	}
}

func (s *InheritedScope) Describe() string { return s.label }
func (s *InheritedScope) ScopeType() semgraph.ScopeType {
	return semgraph.InstanceScope
}
