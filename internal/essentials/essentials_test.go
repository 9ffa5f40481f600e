package essentials

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sparkfront/semfront/internal/config"
	"github.com/sparkfront/semfront/internal/diagnostics"
	"github.com/sparkfront/semfront/internal/scope"
	"github.com/sparkfront/semfront/internal/semgraph"
	"github.com/sparkfront/semfront/internal/types"
)

// fakeResolver answers ResolveAbsolute by joining the dotted path and
// looking it up in a flat map, standing in for compiler.Context in
// tests that don't need a real module-path scope.
type fakeResolver struct {
	byPath map[string]semgraph.Member
}

func (f *fakeResolver) ResolveAbsolute(parts []string) []semgraph.Member {
	m, ok := f.byPath[strings.Join(parts, ".")]
	if !ok {
		return nil
	}
	return []semgraph.Member{m}
}

func newTypeDefn(name string) *semgraph.TypeDefn {
	ms := scope.NewStandard(semgraph.DefaultScope, "members:"+name)
	is := scope.NewInherited("inherited:"+name, ms)
	tps := scope.NewStandard(semgraph.TypeParamScopeType, "typeparams:"+name)
	rs := scope.NewStandard(semgraph.ConstraintScope, "required:"+name)
	return semgraph.NewTypeDefn(name, nil, nil, semgraph.Public, 0, types.ClassGenus, ms, is, tps, rs)
}

func TestLoadResolvesEveryConfiguredEssential(t *testing.T) {
	anyDefn := newTypeDefn("Any")
	objDefn := newTypeDefn("Object")
	resolver := &fakeResolver{byPath: map[string]semgraph.Member{
		"spark.core.any.Any":          anyDefn,
		"spark.core.object.Object":    objDefn,
		"spark.core.enumeration.Enum": newTypeDefn("Enum"),
	}}

	r := diagnostics.NewReporter(&bytes.Buffer{}, nil, diagnostics.ColorNever)
	table := Load(config.DefaultEssentials, resolver, r)

	if table.Get(Any) != anyDefn.Type {
		t.Errorf("Get(Any) = %v, want Any's CompositeType", table.Get(Any))
	}
	if table.Get(Object) != objDefn.Type {
		t.Errorf("Get(Object) = %v, want Object's CompositeType", table.Get(Object))
	}
	if r.HasErrors() {
		t.Errorf("unexpected diagnostics: %v", r.Errors())
	}
}

func TestLoadReportsEssentialMissing(t *testing.T) {
	resolver := &fakeResolver{byPath: map[string]semgraph.Member{}}
	r := diagnostics.NewReporter(&bytes.Buffer{}, nil, diagnostics.ColorNever)
	table := Load(config.DefaultEssentials, resolver, r)

	if table.Get(Any) != nil {
		t.Errorf("Get(Any) = %v, want nil when nothing resolves", table.Get(Any))
	}
	if !r.HasErrors() {
		t.Error("expected an EssentialMissing diagnostic for every unresolved essential")
	}
	if r.ErrorCount() != 3 {
		t.Errorf("ErrorCount() = %d, want 3 (one per missing essential)", r.ErrorCount())
	}
}

func TestLoadAmbiguousCandidatesAreTreatedAsMissing(t *testing.T) {
	resolver := &fakeResolver{byPath: map[string]semgraph.Member{}}
	// Only Any is registered, with a single candidate; the ambiguous case
	// is exercised directly through exactlyOneType below.
	resolver.byPath["spark.core.any.Any"] = newTypeDefn("Any")
	r := diagnostics.NewReporter(&bytes.Buffer{}, nil, diagnostics.ColorNever)

	// Directly exercise exactlyOneType's ambiguous branch.
	_, err := exactlyOneType([]semgraph.Member{newTypeDefn("A"), newTypeDefn("B")})
	if err == nil {
		t.Fatal("expected exactlyOneType to report ambiguity for two Type-kind candidates")
	}

	table := Load(config.DefaultEssentials, resolver, r)
	if table.Get(Object) != nil {
		t.Error("Object should remain unresolved")
	}
}
