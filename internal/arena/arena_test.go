package arena

import "testing"

type widget struct {
	Name string
	N    int
}

func TestPlaceReturnsStablePointerAndGrowsLen(t *testing.T) {
	a := New()
	p := Place(a, widget{Name: "a", N: 1})
	if p.Name != "a" || p.N != 1 {
		t.Fatalf("Place returned wrong value: %+v", p)
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}
	if a.Bytes() == 0 {
		t.Error("Bytes() should account for the placed value")
	}
}

func TestPlaceCopiesSoMutatingSourceDoesNotAffectArena(t *testing.T) {
	a := New()
	src := widget{Name: "orig", N: 1}
	p := Place(a, src)
	src.Name = "mutated"
	if p.Name != "orig" {
		t.Errorf("Place should copy its argument; got %q after mutating source", p.Name)
	}
}

func TestTrackPreservesIdentityWithoutCopying(t *testing.T) {
	a := New()
	v := &widget{Name: "tracked", N: 2}
	before := a.Len()
	Track(a, v)
	if a.Len() != before+1 {
		t.Errorf("Track did not grow Len: got %d", a.Len())
	}
	v.N = 99
	if v.N != 99 {
		t.Fatal("unreachable")
	}
	// Track must not have returned a copy — there is nothing to check
	// against except that the original pointer is still the one the
	// caller holds, which Track's signature guarantees by taking *T
	// and not returning a new one.
	if a.Bytes() == 0 {
		t.Error("Bytes() should account for the tracked value")
	}
}

func TestCopyRangeIsIndependentOfSource(t *testing.T) {
	a := New()
	src := []int{1, 2, 3}
	dst := CopyRange(a, src)
	src[0] = 99
	if dst[0] != 1 {
		t.Errorf("CopyRange should be independent of its source slice, got %d", dst[0])
	}
	if len(CopyRange(a, []int{})) != 0 {
		t.Error("CopyRange of an empty slice should return an empty/nil slice")
	}
}
