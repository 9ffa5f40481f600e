package scope

import (
	"github.com/sparkfront/semfront/internal/semgraph"
	"github.com/sparkfront/semfront/internal/types"
)

// SpecializedScope wraps a primary scope and a generic-binding
// environment. Every lookup result from primary is re-wrapped as a
// Specialized Member via semgraph.NewSpecialized before being returned,
// so resolving a member through a specialized generic instance yields
// members whose types are meant to be read through the same env.
type SpecializedScope struct {
	primary semgraph.Scope
	env     *types.Env
	label   string
}

func NewSpecialized(label string, primary semgraph.Scope, env *types.Env) *SpecializedScope {
	return &SpecializedScope{label: label, primary: primary, env: env}
}

func (s *SpecializedScope) AddMember(m semgraph.Member) { s.primary.AddMember(m) }

func (s *SpecializedScope) LookupName(name string) []semgraph.Member {
	hits := s.primary.LookupName(name)
	if len(hits) == 0 {
		return nil
	}
	out := make([]semgraph.Member, len(hits))
	for i, m := range hits {
		out[i] = semgraph.NewSpecialized(m, s.env)
	}
	return out
}

func (s *SpecializedScope) ForAllNames(fn func(string)) { s.primary.ForAllNames(fn) }
func (s *SpecializedScope) Describe() string            { return s.label }
func (s *SpecializedScope) ScopeType() semgraph.ScopeType {
	return s.primary.ScopeType()
}
