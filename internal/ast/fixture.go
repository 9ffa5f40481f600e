package ast

// Builder assembles small Program fixtures by hand, standing in for the
// parser this module does not implement. Tests use it directly rather
// than parsing source text.
type Builder struct {
	file    string
	imports []*Import
	members []Defn
}

func NewBuilder(file string) *Builder { return &Builder{file: file} }

func (b *Builder) Import(alias string, path ...string) *Builder {
	b.imports = append(b.imports, &Import{Path: path, Alias: alias})
	return b
}

func (b *Builder) Add(d Defn) *Builder {
	b.members = append(b.members, d)
	return b
}

func (b *Builder) Build() *Program {
	return &Program{File: b.file, Imports: b.imports, Members: b.members}
}

// Helpers for constructing common definitions tersely in tests.

func Class(name string, vis Visibility, members ...Defn) *ClassDefn {
	c := &ClassDefn{}
	c.NameStr, c.Vis = name, vis
	c.Members = members
	return c
}

func Struct(name string, vis Visibility, members ...Defn) *StructDefn {
	s := &StructDefn{}
	s.NameStr, s.Vis = name, vis
	s.Members = members
	return s
}

func Interface(name string, vis Visibility, members ...Defn) *InterfaceDefn {
	i := &InterfaceDefn{}
	i.NameStr, i.Vis = name, vis
	i.Members = members
	return i
}

func Object(name string, vis Visibility, members ...Defn) *ObjectDefn {
	o := &ObjectDefn{}
	o.NameStr, o.Vis = name, vis
	o.Members = members
	return o
}

func Enum(name string, vis Visibility, values ...*EnumValueDefn) *EnumDefn {
	e := &EnumDefn{}
	e.NameStr, e.Vis = name, vis
	e.Values = values
	return e
}

func EnumValue(name string) *EnumValueDefn {
	v := &EnumValueDefn{}
	v.NameStr = name
	return v
}

func Func(name string, vis Visibility, ret Node, params ...*Parameter) *FunctionDefn {
	f := &FunctionDefn{}
	f.NameStr, f.Vis, f.ReturnType, f.Params = name, vis, ret, params
	return f
}

func Param(name string, typeExpr Node) *Parameter {
	p := &Parameter{TypeExpr: typeExpr}
	p.NameStr = name
	return p
}

func TypeParam(name string) *TypeParameter {
	t := &TypeParameter{}
	t.NameStr = name
	return t
}

func Let(name string, vis Visibility, typeExpr, value Node) *LetDefn {
	l := &LetDefn{TypeExpr: typeExpr, Value: value}
	l.NameStr, l.Vis = name, vis
	return l
}

func Var(name string, vis Visibility, typeExpr, value Node) *VarDefn {
	v := &VarDefn{TypeExpr: typeExpr, Value: value}
	v.NameStr, v.Vis = name, vis
	return v
}

func Builtin(tag BuiltInTag) *BuiltInType { return &BuiltInType{Tag: tag} }

func Id(name string) *Ident { return &Ident{Text: name} }

func Member(base Node, name string) *MemberRef { return &MemberRef{Base: base, Name: name} }

func Call(callable Node, args ...Node) *Specialize {
	return &Specialize{Callable: callable, Args: args}
}

func Union(members ...Node) *UnionType { return &UnionType{Members: members} }

func Tuple(members ...Node) *TupleType { return &TupleType{Members: members} }

func Const(base Node) *ModifiedType { return &ModifiedType{Const: true, Base: base} }

func FuncType(ret Node, params ...Node) *FunctionType {
	return &FunctionType{ParamTypes: params, ReturnType: ret}
}
