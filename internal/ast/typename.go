package ast

// TypeNameKind tags the shape of a type-name node. The builder only ever
// reads the name text it resolves against the IR type mapper; generic
// arguments and array element types are recorded for completeness but are
// not tracked structurally downstream (see spec.md's Non-goals).
type TypeNameKind uint8

const (
	TypeNameInvalid TypeNameKind = iota
	TypeNameSimple
	TypeNameQualified
	TypeNameGeneric
	TypeNameArray
)

// TypeName is the tag+payload record stored in the type-name arena.
type TypeName struct {
	Kind    TypeNameKind
	Payload uint32
}

// SimpleTypeName is a bare name: `i32`, `Point`, `string`.
type SimpleTypeName struct {
	Name string
}

// QualifiedTypeName is `Owner::Name`, the member-function scope spelling.
type QualifiedTypeName struct {
	Owner string
	Name  string
}

// GenericTypeName is `Name<Args...>`. The type mapper records Name's
// spelling only; Args are kept for diagnostics, never instantiated.
type GenericTypeName struct {
	Name string
	Args []TypeNameID
}

// ArrayTypeName is `Elem[]`. Per spec.md the mapper loses Elem and maps
// this straight to `ptr`; Elem is kept here only so a future front end
// could report it, not because this core's mapper consults it.
type ArrayTypeName struct {
	Elem TypeNameID
}

// TypeNames is the type-name arena.
type TypeNames struct {
	nodes      *Arena[TypeName]
	simples    *Arena[SimpleTypeName]
	qualifieds *Arena[QualifiedTypeName]
	generics   *Arena[GenericTypeName]
	arrays     *Arena[ArrayTypeName]
}

// NewTypeNames allocates an empty type-name arena.
func NewTypeNames() *TypeNames {
	return &TypeNames{
		nodes:      NewArena[TypeName](0),
		simples:    NewArena[SimpleTypeName](0),
		qualifieds: NewArena[QualifiedTypeName](0),
		generics:   NewArena[GenericTypeName](0),
		arrays:     NewArena[ArrayTypeName](0),
	}
}

func (t *TypeNames) new(kind TypeNameKind, payload uint32) TypeNameID {
	return TypeNameID(t.nodes.Allocate(TypeName{Kind: kind, Payload: payload}))
}

// Kind returns the node kind stored at id, or TypeNameInvalid for an
// unallocated id.
func (t *TypeNames) Kind(id TypeNameID) TypeNameKind {
	n := t.nodes.Get(uint32(id))
	if n == nil {
		return TypeNameInvalid
	}
	return n.Kind
}

func (t *TypeNames) NewSimple(name string) TypeNameID {
	p := t.simples.Allocate(SimpleTypeName{Name: name})
	return t.new(TypeNameSimple, p)
}

func (t *TypeNames) Simple(id TypeNameID) (*SimpleTypeName, bool) {
	n := t.nodes.Get(uint32(id))
	if n == nil || n.Kind != TypeNameSimple {
		return nil, false
	}
	return t.simples.Get(n.Payload), true
}

func (t *TypeNames) NewQualified(owner, name string) TypeNameID {
	p := t.qualifieds.Allocate(QualifiedTypeName{Owner: owner, Name: name})
	return t.new(TypeNameQualified, p)
}

func (t *TypeNames) Qualified(id TypeNameID) (*QualifiedTypeName, bool) {
	n := t.nodes.Get(uint32(id))
	if n == nil || n.Kind != TypeNameQualified {
		return nil, false
	}
	return t.qualifieds.Get(n.Payload), true
}

func (t *TypeNames) NewGeneric(name string, args []TypeNameID) TypeNameID {
	p := t.generics.Allocate(GenericTypeName{Name: name, Args: args})
	return t.new(TypeNameGeneric, p)
}

func (t *TypeNames) Generic(id TypeNameID) (*GenericTypeName, bool) {
	n := t.nodes.Get(uint32(id))
	if n == nil || n.Kind != TypeNameGeneric {
		return nil, false
	}
	return t.generics.Get(n.Payload), true
}

func (t *TypeNames) NewArray(elem TypeNameID) TypeNameID {
	p := t.arrays.Allocate(ArrayTypeName{Elem: elem})
	return t.new(TypeNameArray, p)
}

func (t *TypeNames) Array(id TypeNameID) (*ArrayTypeName, bool) {
	n := t.nodes.Get(uint32(id))
	if n == nil || n.Kind != TypeNameArray {
		return nil, false
	}
	return t.arrays.Get(n.Payload), true
}

// Spelling renders the textual name the IR type mapper consults:
// TypeNameSimple returns Name verbatim; TypeNameQualified returns
// "Owner::Name"; TypeNameGeneric returns Name with its arguments dropped
// (consistent with the mapper never instantiating generics); TypeNameArray
// always returns "[]"-suffixed so the mapper's array-suffix rule fires.
func (t *TypeNames) Spelling(id TypeNameID) string {
	switch t.Kind(id) {
	case TypeNameSimple:
		s, _ := t.Simple(id)
		return s.Name
	case TypeNameQualified:
		q, _ := t.Qualified(id)
		return q.Owner + "::" + q.Name
	case TypeNameGeneric:
		g, _ := t.Generic(id)
		return g.Name
	case TypeNameArray:
		a, _ := t.Array(id)
		return t.Spelling(a.Elem) + "[]"
	default:
		return ""
	}
}
