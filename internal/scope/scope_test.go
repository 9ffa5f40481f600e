package scope

import (
	"testing"

	"github.com/sparkfront/semfront/internal/semgraph"
	"github.com/sparkfront/semfront/internal/types"
)

func member(p types.Primitive) semgraph.Member {
	return semgraph.PrimitiveTypeDefn(p)
}

func TestStandardScopeAddMemberPreservesInsertionOrder(t *testing.T) {
	s := NewStandard(semgraph.DefaultScope, "test")
	a := member(types.I32)
	b := member(types.Bool)
	s.AddNamed("x", a)
	s.AddNamed("x", b)

	hits := s.LookupName("x")
	if len(hits) != 2 || hits[0] != a || hits[1] != b {
		t.Fatalf("LookupName returned %v, want [a b] in insertion order", hits)
	}
}

func TestStandardScopeLookupMissingNameReturnsNil(t *testing.T) {
	s := NewStandard(semgraph.DefaultScope, "test")
	if hits := s.LookupName("missing"); hits != nil {
		t.Errorf("LookupName(missing) = %v, want nil", hits)
	}
}

func TestStandardScopeForAllNamesOrder(t *testing.T) {
	s := NewStandard(semgraph.DefaultScope, "test")
	s.AddNamed("b", member(types.I32))
	s.AddNamed("a", member(types.Bool))

	var seen []string
	s.ForAllNames(func(n string) { seen = append(seen, n) })
	if len(seen) != 2 || seen[0] != "b" || seen[1] != "a" {
		t.Errorf("ForAllNames order = %v, want [b a]", seen)
	}
}

func TestInheritedScopePrimaryShadowsSecondary(t *testing.T) {
	primary := NewStandard(semgraph.InstanceScope, "primary")
	secondary := NewStandard(semgraph.InstanceScope, "secondary")
	own := member(types.I32)
	inherited := member(types.Bool)
	primary.AddNamed("x", own)
	secondary.AddNamed("x", inherited)

	is := NewInherited("inherited", primary, secondary)
	hits := is.LookupName("x")
	if len(hits) != 1 || hits[0] != own {
		t.Fatalf("primary member should shadow secondary, got %v", hits)
	}
}

func TestInheritedScopeFallsBackToSecondary(t *testing.T) {
	primary := NewStandard(semgraph.InstanceScope, "primary")
	secondary := NewStandard(semgraph.InstanceScope, "secondary")
	inherited := member(types.Bool)
	secondary.AddNamed("y", inherited)

	is := NewInherited("inherited", primary, secondary)
	hits := is.LookupName("y")
	if len(hits) != 1 || hits[0] != inherited {
		t.Fatalf("expected fallback to secondary scope, got %v", hits)
	}
}

func TestInheritedScopeAddSecondaryAttachesAfterConstruction(t *testing.T) {
	primary := NewStandard(semgraph.InstanceScope, "primary")
	is := NewInherited("inherited", primary)
	if hits := is.LookupName("z"); hits != nil {
		t.Fatalf("expected no hits before AddSecondary, got %v", hits)
	}

	secondary := NewStandard(semgraph.InstanceScope, "secondary")
	inherited := member(types.Bool)
	secondary.AddNamed("z", inherited)
	is.AddSecondary(secondary)

	hits := is.LookupName("z")
	if len(hits) != 1 || hits[0] != inherited {
		t.Fatalf("expected secondary scope attached via AddSecondary to be visible, got %v", hits)
	}
}

func TestInheritedScopeDedupesAcrossSecondaries(t *testing.T) {
	primary := NewStandard(semgraph.InstanceScope, "primary")
	shared := member(types.Bool)
	secA := NewStandard(semgraph.InstanceScope, "a")
	secB := NewStandard(semgraph.InstanceScope, "b")
	secA.AddNamed("w", shared)
	secB.AddNamed("w", shared)

	is := NewInherited("inherited", primary, secA, secB)
	hits := is.LookupName("w")
	if len(hits) != 1 {
		t.Fatalf("expected the same Member reached via two secondaries to be de-duplicated, got %d hits", len(hits))
	}
}

func TestScopeStackFindsInnermostFirst(t *testing.T) {
	outer := NewStandard(semgraph.DefaultScope, "outer")
	inner := NewStandard(semgraph.DefaultScope, "inner")
	outerMember := member(types.I32)
	innerMember := member(types.Bool)
	outer.AddNamed("x", outerMember)
	inner.AddNamed("x", innerMember)

	stack := NewStack()
	stack.Push(outer, nil)
	stack.Push(inner, nil)

	_, hits := stack.Find("x")
	if len(hits) != 1 || hits[0] != innerMember {
		t.Fatalf("Find should return the innermost match, got %v", hits)
	}
}

func TestScopeStackFindFallsThroughAfterPop(t *testing.T) {
	outer := NewStandard(semgraph.DefaultScope, "outer")
	inner := NewStandard(semgraph.DefaultScope, "inner")
	outerMember := member(types.I32)
	outer.AddNamed("x", outerMember)

	stack := NewStack()
	stack.Push(outer, nil)
	stack.Push(inner, nil)
	stack.Pop()

	_, hits := stack.Find("x")
	if len(hits) != 1 || hits[0] != outerMember {
		t.Fatalf("Find should fall back to outer scope once inner is popped, got %v", hits)
	}
}

func TestScopeStackFindMissReturnsNilStem(t *testing.T) {
	stack := NewStack()
	stack.Push(NewStandard(semgraph.DefaultScope, "s"), nil)
	stem, hits := stack.Find("missing")
	if stem != nil || hits != nil {
		t.Errorf("Find(missing) = (%v, %v), want (nil, nil)", stem, hits)
	}
}

func TestCloseMatchFinderSuggestsWithinThreshold(t *testing.T) {
	f := NewCloseMatchFinder("length")
	f.Consider("lenght") // one transposition away
	f.Consider("somethingTotallyDifferent")

	s, ok := f.Suggestion()
	if !ok || s != "lenght" {
		t.Errorf("Suggestion() = (%q, %v), want (\"lenght\", true)", s, ok)
	}
}

func TestCloseMatchFinderRejectsDistantCandidates(t *testing.T) {
	f := NewCloseMatchFinder("ab")
	f.Consider("zzzzzzzzzz")
	if _, ok := f.Suggestion(); ok {
		t.Error("Suggestion() should reject a candidate far beyond the threshold")
	}
}

func TestCloseMatchFinderIgnoresExactMatch(t *testing.T) {
	f := NewCloseMatchFinder("match")
	f.Consider("match")
	if _, ok := f.Suggestion(); ok {
		t.Error("Suggestion() should not offer the target itself as a suggestion")
	}
}

func TestSpecializedScopeRewrapsEveryHit(t *testing.T) {
	primary := NewStandard(semgraph.InstanceScope, "primary")
	inner := member(types.I32)
	primary.AddNamed("value", inner)

	store := types.NewStore()
	env := store.CreateEnv(map[types.Named]types.Type{})
	sp := NewSpecialized("Box<i32>", primary, env)

	hits := sp.LookupName("value")
	if len(hits) != 1 {
		t.Fatalf("LookupName(value) = %v, want one hit", hits)
	}
	got, ok := hits[0].(*semgraph.Specialized)
	if !ok {
		t.Fatalf("hit is %T, want *semgraph.Specialized", hits[0])
	}
	if got.Generic != inner {
		t.Errorf("Specialized.Generic = %v, want the underlying member", got.Generic)
	}
	if got.Env != env {
		t.Errorf("Specialized.Env = %v, want the scope's env", got.Env)
	}

	if hits := sp.LookupName("missing"); hits != nil {
		t.Errorf("LookupName(missing) = %v, want nil", hits)
	}

	var names []string
	sp.ForAllNames(func(n string) { names = append(names, n) })
	if len(names) != 1 || names[0] != "value" {
		t.Errorf("ForAllNames = %v, want [value] (delegated to primary)", names)
	}
	if sp.Describe() != "Box<i32>" {
		t.Errorf("Describe() = %q, want label", sp.Describe())
	}
}

func TestEditDistanceBasics(t *testing.T) {
	if d := EditDistance("", "abc"); d != 3 {
		t.Errorf("EditDistance(\"\", abc) = %d, want 3", d)
	}
	if d := EditDistance("abc", "abc"); d != 0 {
		t.Errorf("EditDistance(abc, abc) = %d, want 0", d)
	}
	if d := EditDistance("kitten", "sitting"); d != 3 {
		t.Errorf("EditDistance(kitten, sitting) = %d, want 3", d)
	}
}
