package semgraph

import (
	"github.com/sparkfront/semfront/internal/types"
)

// Specialized wraps a generic Member together with a binding
// environment. Generic recovers the underlying Member; per Invariant 4,
// Generic().Kind() is never itself Specialized — NewSpecialized flattens
// chains on construction rather than trusting callers not to nest them.
type Specialized struct {
	Base
	Generic Member
	Env     *types.Env
}

// NewSpecialized builds a Specialized wrapper, flattening an already-
// specialized generic so chains never nest.
func NewSpecialized(generic Member, env *types.Env) *Specialized {
	if s, ok := generic.(*Specialized); ok {
		generic = s.Generic
	}
	return &Specialized{
		Base:    NewBase(generic.Name(), generic.DefinedIn(), generic.Location(), generic.Visibility(), generic.Modifiers()),
		Generic: generic,
		Env:     env,
	}
}

func (s *Specialized) Kind() Kind        { return SpecializedKind }
func (s *Specialized) TypeGenus() string { return s.Generic.TypeGenus() }
func (s *Specialized) OwnType() types.Type {
	if s.Generic.TypeGenus() == "unsupported" {
		panic("semgraph: Specialized wraps a Member with no single OwnType")
	}
	return s.Generic.OwnType()
}
