package scope

import "github.com/sparkfront/semfront/internal/semgraph"

// Stem identifies the owning Member of a scope on the stack, or nil for
// a scope that isn't owned by any single Member (e.g. a module's import
// scope).
type Stem = semgraph.Member

// entry pairs a pushed scope with the Member that owns it, if any.
type entry struct {
	scope semgraph.Scope
	stem  Stem
}

// ScopeStack is the ordered sequence of scopes pushed during traversal
// of a module's member tree. Find searches innermost-to-outermost and
// returns the first scope with a non-empty result.
type ScopeStack struct {
	entries []entry
}

func NewStack() *ScopeStack { return &ScopeStack{} }

func (s *ScopeStack) Push(sc semgraph.Scope, stem Stem) {
	s.entries = append(s.entries, entry{scope: sc, stem: stem})
}

func (s *ScopeStack) Pop() {
	if len(s.entries) > 0 {
		s.entries = s.entries[:len(s.entries)-1]
	}
}

func (s *ScopeStack) Clear() { s.entries = nil }

func (s *ScopeStack) Len() int { return len(s.entries) }

// Find searches from innermost (last pushed) outward, returning the
// stem of the first scope yielding non-empty results together with the
// member list. If nothing matches, members is nil and stem is nil.
func (s *ScopeStack) Find(name string) (stem Stem, members []semgraph.Member) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if hits := s.entries[i].scope.LookupName(name); len(hits) > 0 {
			return s.entries[i].stem, hits
		}
	}
	return nil, nil
}

// ForAllNames emits every name visible anywhere on the stack, each name
// at most once, used to drive CloseMatchFinder suggestions.
func (s *ScopeStack) ForAllNames(fn func(string)) {
	emitted := make(map[string]bool)
	for _, e := range s.entries {
		e.scope.ForAllNames(func(n string) {
			if !emitted[n] {
				emitted[n] = true
				fn(n)
			}
		})
	}
}
