package types

import "testing"

func TestIntTypeWidth(t *testing.T) {
	if IntType(64) != PrimitiveFor(I64) {
		t.Errorf("IntType(64) = %v, want i64", IntType(64))
	}
	if IntType(32) != PrimitiveFor(I32) {
		t.Errorf("IntType(32) = %v, want i32", IntType(32))
	}
	if UIntType(64) != PrimitiveFor(U64) {
		t.Errorf("UIntType(64) = %v, want u64", UIntType(64))
	}
}

func TestPrimitiveForSingleton(t *testing.T) {
	if PrimitiveFor(Bool) != PrimitiveFor(Bool) {
		t.Fatal("PrimitiveFor is not stable across calls")
	}
}

func TestRawUnwrapsConstAndSpecialized(t *testing.T) {
	base := PrimitiveFor(I32)
	c := &ConstType{Base: base}
	if Raw(c) != base {
		t.Errorf("Raw(const) = %v, want base", Raw(c))
	}
	env := &Env{bindings: map[Named]Type{}, key: ""}
	sp := &SpecializedType{Generic: c, Env: env}
	if Raw(sp) != base {
		t.Errorf("Raw(specialized(const)) = %v, want base", Raw(sp))
	}
}

func TestIsErrorIsIgnored(t *testing.T) {
	if !IsError(ERROR) {
		t.Error("IsError(ERROR) = false")
	}
	if IsError(IGNORED) {
		t.Error("IsError(IGNORED) = true")
	}
	if !IsIgnored(IGNORED) {
		t.Error("IsIgnored(IGNORED) = false")
	}
}

type fakeNamed string

func (f fakeNamed) QualifiedName() string { return string(f) }

func TestCompositeInheritsFrom(t *testing.T) {
	base := &CompositeType{Defn: fakeNamed("Base"), Genus: ClassGenus}
	mid := &CompositeType{Defn: fakeNamed("Mid"), Genus: ClassGenus, Super: base}
	leaf := &CompositeType{Defn: fakeNamed("Leaf"), Genus: ClassGenus, Super: mid}

	if !leaf.InheritsFrom(base) {
		t.Error("leaf should inherit from base transitively")
	}
	if !leaf.InheritsFrom(leaf) {
		t.Error("a type should inherit from itself")
	}
	unrelated := &CompositeType{Defn: fakeNamed("Other"), Genus: ClassGenus}
	if leaf.InheritsFrom(unrelated) {
		t.Error("leaf should not inherit from an unrelated type")
	}
}

func TestOrderingPrimitivesBySignedWidth(t *testing.T) {
	i32 := PrimitiveFor(I32)
	u32 := PrimitiveFor(U32)
	i64 := PrimitiveFor(I64)

	if Ordering(i32, i64) >= 0 {
		t.Error("i32 should order before i64")
	}
	if Ordering(i64, i32) <= 0 {
		t.Error("i64 should order after i32")
	}
	if Ordering(i32, u32) >= 0 {
		t.Error("signed should order before unsigned at equal width")
	}
}

func TestStoreCreateUnionTypeDedupesAndOrders(t *testing.T) {
	s := NewStore()
	i32 := PrimitiveFor(I32)
	boolT := PrimitiveFor(Bool)

	u1 := s.CreateUnionType([]Type{i32, boolT, i32})
	u2 := s.CreateUnionType([]Type{boolT, i32})

	if u1 != u2 {
		t.Error("equivalent union constructions must intern to the same pointer")
	}
	if len(u1.Members) != 2 {
		t.Errorf("expected duplicate member to be deduped, got %d members", len(u1.Members))
	}
}

func TestStoreCreateTupleTypePreservesOrder(t *testing.T) {
	s := NewStore()
	i32 := PrimitiveFor(I32)
	boolT := PrimitiveFor(Bool)

	t1 := s.CreateTupleType([]Type{i32, boolT})
	t2 := s.CreateTupleType([]Type{boolT, i32})

	if t1 == t2 {
		t.Error("tuples with different member order must not intern together")
	}
	t3 := s.CreateTupleType([]Type{i32, boolT})
	if t1 != t3 {
		t.Error("identical tuple constructions must intern to the same pointer")
	}
}

func TestStoreCreateFunctionTypeInterning(t *testing.T) {
	s := NewStore()
	i32 := PrimitiveFor(I32)
	voidT := PrimitiveFor(Void)

	f1 := s.CreateFunctionType(voidT, []Type{i32})
	f2 := s.CreateFunctionType(voidT, []Type{i32})
	if f1 != f2 {
		t.Error("identical function type constructions must intern to the same pointer")
	}

	f3 := s.CreateFunctionType(i32, []Type{i32})
	if f1 == f3 {
		t.Error("function types with different return types must not intern together")
	}
}

func TestStoreCreateConstTypeDistinguishesProvisional(t *testing.T) {
	s := NewStore()
	i32 := PrimitiveFor(I32)
	c1 := s.CreateConstType(i32, false)
	c2 := s.CreateConstType(i32, true)
	if c1 == c2 {
		t.Error("const and provisional-const must not intern together")
	}
	c3 := s.CreateConstType(i32, false)
	if c1 != c3 {
		t.Error("identical const constructions must intern to the same pointer")
	}
}
