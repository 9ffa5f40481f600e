// Package arena implements the bump-allocated region that owns the
// long-lived nodes a module or the type store produces. Go's garbage
// collector makes the manual free-list style of the original allocator
// unnecessary; what survives here is the ownership idiom — a single
// handle released as a unit at module teardown — not the memory layout.
package arena

import "unsafe"

// Arena is a bump-allocation region. It never reclaims individual
// values; the whole region is dropped at once by discarding the Arena
// value. There is no per-object destruction: values placed here must be
// plain data, matching the "trivially releasable" requirement.
type Arena struct {
	objects []interface{}
	bytes   int
}

// New returns an empty Arena.
func New() *Arena {
	return &Arena{}
}

// Place copies v into the arena and returns a stable pointer to the
// copy. The pointer remains valid for the arena's lifetime.
func Place[T any](a *Arena, v T) *T {
	p := new(T)
	*p = v
	a.objects = append(a.objects, p)
	a.bytes += sizeOf(v)
	return p
}

// CopyRange copies a slice into the arena and returns a stable slice
// backed by arena-owned storage, so callers can hold onto it without
// worrying about the original slice's backing array being mutated.
func CopyRange[T any](a *Arena, src []T) []T {
	if len(src) == 0 {
		return nil
	}
	dst := make([]T, len(src))
	copy(dst, src)
	a.objects = append(a.objects, &dst)
	a.bytes += sizeOf(src[0]) * len(src)
	return dst
}

// Track records an already-allocated value as owned by the arena,
// without copying it, for callers (like the build-graph pass) that
// must preserve a value's address across internal back-references
// (e.g. a TypeVarType pointing at its owning TypeParameter) and so
// cannot route construction through Place's copy-and-return-new-
// pointer shape. The arena still accounts for it in Len/Bytes.
func Track[T any](a *Arena, v *T) {
	a.objects = append(a.objects, v)
	if v != nil {
		a.bytes += sizeOf(*v)
	}
}

// Len reports how many values have been placed, useful for tests that
// assert an arena was actually used rather than bypassed.
func (a *Arena) Len() int { return len(a.objects) }

// Bytes reports an approximate byte count of everything placed, for
// diagnostics ("module X: arena holds N bytes") rather than precise
// accounting.
func (a *Arena) Bytes() int { return a.bytes }

func sizeOf[T any](v T) int {
	return int(unsafe.Sizeof(v))
}
