package semgraph

// Scope is the narrow view of a lookup scope that semgraph needs: just
// enough for a TypeDefn/Module/Package to hold one as a field without
// this package importing internal/scope (which itself imports semgraph
// for Member). Concrete scope kinds live in internal/scope and satisfy
// this interface structurally.
type Scope interface {
	AddMember(m Member)
	LookupName(name string) []Member
	ForAllNames(fn func(name string))
	Describe() string
	ScopeType() ScopeType
}

// ScopeType tags the capability variant a Scope implements, mirroring
// the original's scopeType() query used by diagnostics.
type ScopeType int

const (
	DefaultScope ScopeType = iota
	InstanceScope
	TypeParamScopeType
	ConstraintScope
	InterceptScope
)
