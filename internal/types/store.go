package types

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sparkfront/semfront/internal/arena"
)

// Store is the structural interner for composite type constructions:
// unions, tuples, function types, const wrappers and generic
// environments. Two constructions with the same canonical key return
// the identical, pointer-equal object — Invariant 2 of the data model.
type Store struct {
	arena *arena.Arena

	unions map[string]*UnionType
	tuples map[string]*TupleType
	consts map[string]*ConstType
	funcs  map[string]*FunctionType
	envs   map[string]*Env
	specs  map[string]*SpecializedType
}

// NewStore returns an empty Store backed by its own arena; the arena is
// released when the Store (and the Context that owns it) goes away.
func NewStore() *Store {
	return &Store{
		arena:  arena.New(),
		unions: make(map[string]*UnionType),
		tuples: make(map[string]*TupleType),
		consts: make(map[string]*ConstType),
		funcs:  make(map[string]*FunctionType),
		envs:   make(map[string]*Env),
		specs:  make(map[string]*SpecializedType),
	}
}

func keyOf(t Type) string {
	switch v := t.(type) {
	case *PrimitiveType:
		return "p:" + v.String()
	default:
		return fmt.Sprintf("%s:%p", t.Kind(), t)
	}
}

func joinKeys(types []Type) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = keyOf(t)
	}
	return strings.Join(parts, "|")
}

// CreateUnionType sorts members by Ordering, deduplicates, and interns
// the result. Members must already be resolved (not ERROR) by the
// caller; the store does not itself validate that.
func (s *Store) CreateUnionType(members []Type) *UnionType {
	sorted := make([]Type, len(members))
	copy(sorted, members)
	sort.SliceStable(sorted, func(i, j int) bool { return Ordering(sorted[i], sorted[j]) < 0 })
	deduped := sorted[:0:0]
	for i, m := range sorted {
		if i == 0 || Ordering(sorted[i-1], m) != 0 {
			deduped = append(deduped, m)
		}
	}
	key := "union:" + joinKeys(deduped)
	if u, ok := s.unions[key]; ok {
		return u
	}
	u := arena.Place(s.arena, UnionType{Members: arena.CopyRange(s.arena, deduped)})
	s.unions[key] = u
	return u
}

// CreateTupleType interns a positional tuple; unlike unions, order is
// significant and is preserved verbatim in the key.
func (s *Store) CreateTupleType(members []Type) *TupleType {
	key := "tuple:" + joinKeys(members)
	if t, ok := s.tuples[key]; ok {
		return t
	}
	t := arena.Place(s.arena, TupleType{Members: arena.CopyRange(s.arena, members)})
	s.tuples[key] = t
	return t
}

// CreateConstType interns by (base, provisional).
func (s *Store) CreateConstType(base Type, provisional bool) *ConstType {
	key := fmt.Sprintf("const:%s:%v", keyOf(base), provisional)
	if c, ok := s.consts[key]; ok {
		return c
	}
	c := arena.Place(s.arena, ConstType{Base: base, Provisional: provisional})
	s.consts[key] = c
	return c
}

// CreateFunctionType interns by [returnType, paramTypes...].
func (s *Store) CreateFunctionType(ret Type, params []Type) *FunctionType {
	key := "func:" + keyOf(ret) + ">" + joinKeys(params)
	if f, ok := s.funcs[key]; ok {
		return f
	}
	f := arena.Place(s.arena, FunctionType{Return: ret, Params: arena.CopyRange(s.arena, params)})
	s.funcs[key] = f
	return f
}

// ParameterType is the minimal view of a parameter CreateFunctionTypeForParams
// needs: just enough to project out its Type. internal/semgraph.Parameter
// implements it.
type ParameterType interface{ ParamType() Type }

// CreateFunctionTypeForParams is the Parameter-accepting overload: it
// projects each parameter's type and delegates to CreateFunctionType.
func (s *Store) CreateFunctionTypeForParams(ret Type, params []ParameterType) *FunctionType {
	projected := make([]Type, len(params))
	for i, p := range params {
		projected[i] = p.ParamType()
	}
	return s.CreateFunctionType(ret, projected)
}

// CreateEnv interns an unordered TypeParameter->Type binding map.
func (s *Store) CreateEnv(bindings map[Named]Type) *Env {
	names := make([]string, 0, len(bindings))
	for p := range bindings {
		names = append(names, p.QualifiedName())
	}
	sort.Strings(names)
	var b strings.Builder
	byName := make(map[string]Named, len(bindings))
	for p := range bindings {
		byName[p.QualifiedName()] = p
	}
	for _, n := range names {
		p := byName[n]
		b.WriteString(n)
		b.WriteByte('=')
		b.WriteString(keyOf(bindings[p]))
		b.WriteByte(';')
	}
	key := b.String()
	if e, ok := s.envs[key]; ok {
		return e
	}
	copied := make(map[Named]Type, len(bindings))
	for k, v := range bindings {
		copied[k] = v
	}
	e := &Env{bindings: copied, key: key}
	s.envs[key] = e
	return e
}

// CreateSpecialized interns a generic Member's Type together with a
// binding environment. Chains are flattened: specializing an already
// Specialized type composes the environments rather than nesting.
func (s *Store) CreateSpecialized(generic Type, env *Env) *SpecializedType {
	if sp, ok := generic.(*SpecializedType); ok {
		generic = sp.Generic
		if sp.Env != nil {
			merged := make(map[Named]Type, len(sp.Env.bindings))
			for k, v := range sp.Env.bindings {
				merged[k] = v
			}
			for k, v := range env.bindings {
				merged[k] = v
			}
			env = s.CreateEnv(merged)
		}
	}
	key := "spec:" + keyOf(generic) + "@" + env.key
	if sp, ok := s.specs[key]; ok {
		return sp
	}
	sp := arena.Place(s.arena, SpecializedType{Generic: generic, Env: env})
	s.specs[key] = sp
	return sp
}

// MemberTyper is the minimal Member view MemberType needs: just enough
// to dispatch on kind without importing internal/semgraph (which itself
// imports this package for Type/Store).
type MemberTyper interface {
	// TypeGenus reports which MemberType branch applies: "namespace",
	// "type", "value", "typeparam", or "unsupported".
	TypeGenus() string
	OwnType() Type
}

// MemberType returns the Type associated with a Member: a TypeDefn's own
// Type, a ValueDefn's declared Type, a TypeParameter's TypeVar, or ERROR
// for namespace kinds. Function/Property are unsupported — callers must
// special-case them (they have no single Type in the source model
// either). A Specialized member reports its generic's genus, so it gets
// the generic's own unspecialized Type; its binding environment is not
// applied.
func (s *Store) MemberType(m MemberTyper) (Type, error) {
	switch m.TypeGenus() {
	case "namespace":
		return ERROR, nil
	case "type", "value", "typeparam":
		return m.OwnType(), nil
	default:
		return nil, fmt.Errorf("types: unsupported member genus %q for MemberType", m.TypeGenus())
	}
}
