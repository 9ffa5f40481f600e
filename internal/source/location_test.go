package source

import "testing"

func TestUnionIsCommutativeAndSpansBoth(t *testing.T) {
	a := Location{File: "f", StartLine: 2, StartCol: 1, EndLine: 2, EndCol: 5}
	b := Location{File: "f", StartLine: 4, StartCol: 2, EndLine: 4, EndCol: 9}

	u1 := Union(a, b)
	u2 := Union(b, a)
	if u1 != u2 {
		t.Fatalf("Union should be commutative: %+v != %+v", u1, u2)
	}
	if u1.StartLine != 2 || u1.StartCol != 1 || u1.EndLine != 4 || u1.EndCol != 9 {
		t.Errorf("Union span = %+v, want start (2,1) end (4,9)", u1)
	}
}

func TestUnionWithEmptyLocationReturnsOther(t *testing.T) {
	a := Location{}
	b := Location{File: "f", StartLine: 1, StartCol: 1, EndLine: 1, EndCol: 3}
	if got := Union(a, b); got != b {
		t.Errorf("Union(empty, b) = %+v, want b = %+v", got, b)
	}
	if got := Union(b, a); got != b {
		t.Errorf("Union(b, empty) = %+v, want b = %+v", got, b)
	}
}

func TestPathJoin(t *testing.T) {
	if got := Path("").Join("a"); got != Path("a") {
		t.Errorf("Join on empty Path = %q, want a", got)
	}
	if got := Path("a").Join("b"); got != Path("a/b") {
		t.Errorf("Join = %q, want a/b", got)
	}
}

func TestPathMakeRelative(t *testing.T) {
	if got := Path("a/b/c").MakeRelative(Path("a/b")); got != Path("c") {
		t.Errorf("MakeRelative = %q, want c", got)
	}
	if got := Path("x/y").MakeRelative(Path("a/b")); got != Path("x/y") {
		t.Errorf("MakeRelative with a non-prefix base should return the path unchanged, got %q", got)
	}
	if got := Path("a/b").MakeRelative(Path("")); got != Path("a/b") {
		t.Errorf("MakeRelative with an empty base should return the path unchanged, got %q", got)
	}
}

func TestLocationStringSingleAndMultiLine(t *testing.T) {
	single := Location{File: "f.sp", StartLine: 1, StartCol: 2, EndLine: 1, EndCol: 5}
	if got := single.String(); got != "f.sp:1:2-5" {
		t.Errorf("String() = %q, want f.sp:1:2-5", got)
	}
	multi := Location{File: "f.sp", StartLine: 1, StartCol: 2, EndLine: 3, EndCol: 4}
	if got := multi.String(); got != "f.sp:1:2-3:4" {
		t.Errorf("String() = %q, want f.sp:1:2-3:4", got)
	}
	if got := (Location{}).String(); got != "<unknown>" {
		t.Errorf("String() of zero Location = %q, want <unknown>", got)
	}
}
