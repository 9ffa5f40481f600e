package names

import (
	"bytes"
	"testing"

	"github.com/sparkfront/semfront/internal/diagnostics"
	"github.com/sparkfront/semfront/internal/semgraph"
	"github.com/sparkfront/semfront/internal/source"
	"github.com/sparkfront/semfront/internal/types"
)

func newReporter() *diagnostics.Reporter {
	return diagnostics.NewReporter(&bytes.Buffer{}, nil, diagnostics.ColorNever)
}

func TestGenusOfSetAllSameGenus(t *testing.T) {
	members := []semgraph.Member{
		semgraph.PrimitiveTypeDefn(types.I32),
		semgraph.PrimitiveTypeDefn(types.Bool),
	}
	if g := genusOfSet(members); g != Type {
		t.Errorf("genusOfSet(two primitives) = %v, want Type", g)
	}
}

func TestGenusOfSetInconsistentWhenKindsDiffer(t *testing.T) {
	letVar := semgraph.NewLet("x", nil, nil, semgraph.Public, 0, types.ERROR)
	letVar.Defined = true
	members := []semgraph.Member{
		semgraph.PrimitiveTypeDefn(types.I32),
		letVar,
	}
	if g := genusOfSet(members); g != Inconsistent {
		t.Errorf("genusOfSet(type, variable) = %v, want Inconsistent", g)
	}
}

func TestGenusOfSetEmptyIsIncomplete(t *testing.T) {
	if g := genusOfSet(nil); g != Incomplete {
		t.Errorf("genusOfSet(nil) = %v, want Incomplete", g)
	}
}

func TestIsVisiblePublicAlwaysVisible(t *testing.T) {
	target := semgraph.PrimitiveTypeDefn(types.Bool)
	if !IsVisible(nil, target) {
		t.Error("a Public member should be visible from any subject")
	}
}

func TestIsVisiblePrivateRequiresSameDefiningScope(t *testing.T) {
	owner := semgraph.NewLet("owner", nil, nil, semgraph.Public, 0, types.ERROR)
	priv := semgraph.NewLet("secret", owner, nil, semgraph.Private, 0, types.ERROR)

	if IsVisible(nil, priv) {
		t.Error("a Private member should not be visible from an unrelated subject")
	}
	if !IsVisible(owner, priv) {
		t.Error("a Private member should be visible from within its own defining scope")
	}

	nested := semgraph.NewLet("nested", owner, nil, semgraph.Public, 0, types.ERROR)
	if !IsVisible(nested, priv) {
		t.Error("a Private member should be visible to a subject nested inside its defining scope")
	}
}

func TestFillMemberSetReportsAmbiguousOnInconsistentGenus(t *testing.T) {
	r := newReporter()
	letVar := semgraph.NewLet("x", nil, nil, semgraph.Public, 0, types.ERROR)
	letVar.Defined = true
	candidates := []semgraph.Member{
		semgraph.PrimitiveTypeDefn(types.I32),
		letVar,
	}
	ms := FillMemberSet(nil, nil, "x", source.Location{}, candidates, r)
	if ms.Genus != Inconsistent {
		t.Errorf("Genus = %v, want Inconsistent", ms.Genus)
	}
	if !r.HasErrors() {
		t.Error("expected an Ambiguous diagnostic to be reported")
	}
}

func TestFillMemberSetReportsUseBeforeDef(t *testing.T) {
	r := newReporter()
	notYetDefined := semgraph.NewLet("x", nil, nil, semgraph.Public, 0, types.ERROR)
	ms := FillMemberSet(nil, nil, "x", source.Location{}, []semgraph.Member{notYetDefined}, r)
	if ms.Genus != Variable {
		t.Errorf("Genus = %v, want Variable", ms.Genus)
	}
	if !r.HasErrors() {
		t.Error("expected a use-before-definition diagnostic to be reported")
	}
}

func TestFillMemberSetFallsBackToHiddenCandidatesWhenNoneVisible(t *testing.T) {
	r := newReporter()
	owner := semgraph.NewLet("owner", nil, nil, semgraph.Public, 0, types.ERROR)
	priv := semgraph.NewLet("secret", owner, nil, semgraph.Private, 0, types.ERROR)
	priv.Defined = true

	ms := FillMemberSet(nil, nil, "secret", source.Location{}, []semgraph.Member{priv}, r)
	if len(ms.Members) != 1 {
		t.Fatalf("expected FillMemberSet to fall back to the hidden candidate when nothing is visible, got %d", len(ms.Members))
	}
	if !r.HasErrors() {
		t.Error("expected a not-visible diagnostic to be reported")
	}
}
