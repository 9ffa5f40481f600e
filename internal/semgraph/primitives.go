package semgraph

import "github.com/sparkfront/semfront/internal/types"

// PrimitiveDefn is the Type-kind Member naming a primitive type (Void,
// Bool, I32, ...). Primitives have no declared members, no supertype,
// and no type parameters, so they are represented directly rather than
// through the full TypeDefn scope bundle that classes/structs/
// interfaces/enums need.
type PrimitiveDefn struct {
	Base
	Prim *types.PrimitiveType
}

func (e *PrimitiveDefn) Kind() Kind          { return TypeKind }
func (e *PrimitiveDefn) TypeGenus() string   { return "type" }
func (e *PrimitiveDefn) OwnType() types.Type { return e.Prim }

// primitiveDefns holds one process-wide PrimitiveDefn per primitive
// kind, built lazily so package init order never matters — the process-
// wide immutable table the design notes call for, exposed by id
// (types.Primitive) rather than by global variable reference.
var primitiveDefns = map[types.Primitive]*PrimitiveDefn{}

// PrimitiveTypeDefn returns the singleton Member naming a primitive
// type, constructing it on first use.
func PrimitiveTypeDefn(p types.Primitive) *PrimitiveDefn {
	if d, ok := primitiveDefns[p]; ok {
		return d
	}
	d := &PrimitiveDefn{
		Base: NewBase(types.PrimitiveFor(p).String(), nil, nil, Public, 0),
		Prim: types.PrimitiveFor(p),
	}
	primitiveDefns[p] = d
	return d
}
