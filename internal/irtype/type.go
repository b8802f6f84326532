// Package irtype implements the closed IR type system: a fixed set of
// scalar primitives plus untyped pointers, typed pointers, and structs
// with a computed byte layout.
package irtype

import "fmt"

// Kind tags which case of Type is populated.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindI8
	KindI16
	KindI32
	KindI64
	KindF32
	KindF64
	KindBool
	KindVoid
	KindPtr    // untyped pointer
	KindPtrTo  // pointer to a known element type
	KindStruct // struct with a computed layout
)

func (k Kind) String() string {
	switch k {
	case KindI8:
		return "i8"
	case KindI16:
		return "i16"
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	case KindBool:
		return "bool"
	case KindVoid:
		return "void"
	case KindPtr:
		return "ptr"
	case KindPtrTo:
		return "ptr_to"
	case KindStruct:
		return "struct"
	default:
		return "invalid"
	}
}

// Type is a value of the IR type system. Only the fields relevant to Kind
// are meaningful: Elem for KindPtrTo, Layout for KindStruct.
type Type struct {
	Kind   Kind
	Elem   *Type
	Layout *StructLayout
}

func I8() Type   { return Type{Kind: KindI8} }
func I16() Type  { return Type{Kind: KindI16} }
func I32() Type  { return Type{Kind: KindI32} }
func I64() Type  { return Type{Kind: KindI64} }
func F32() Type  { return Type{Kind: KindF32} }
func F64() Type  { return Type{Kind: KindF64} }
func Bool() Type { return Type{Kind: KindBool} }
func Void() Type { return Type{Kind: KindVoid} }
func Ptr() Type  { return Type{Kind: KindPtr} }

// PtrTo builds a typed pointer to elem.
func PtrTo(elem Type) Type {
	e := elem
	return Type{Kind: KindPtrTo, Elem: &e}
}

// Struct wraps a computed layout as a Type.
func Struct(layout *StructLayout) Type {
	return Type{Kind: KindStruct, Layout: layout}
}

// String renders the type the way type_name spellings in this module do:
// primitive keywords verbatim, "ptr" for untyped pointers, "T*" for typed
// pointers, and the struct's own name for structs.
func (t Type) String() string {
	switch t.Kind {
	case KindPtrTo:
		return t.Elem.String() + "*"
	case KindStruct:
		if t.Layout != nil {
			return t.Layout.Name
		}
		return "struct"
	default:
		return t.Kind.String()
	}
}

// ScalarSize returns the size in bytes of a non-aggregate primitive, with
// ptrSize for KindPtr/KindPtrTo. It panics for KindStruct/KindInvalid —
// callers are expected to have already branched on Kind.
func ScalarSize(k Kind, ptrSize uint32) uint32 {
	switch k {
	case KindI8, KindBool:
		return 1
	case KindI16:
		return 2
	case KindI32, KindF32:
		return 4
	case KindI64, KindF64:
		return 8
	case KindPtr, KindPtrTo:
		return ptrSize
	case KindVoid:
		return 0
	default:
		panic(fmt.Errorf("irtype: ScalarSize called on non-scalar kind %s", k))
	}
}

// ScalarAlign returns the natural alignment of a non-aggregate primitive.
// On the targets this module cares about, alignment equals size.
func ScalarAlign(k Kind, ptrAlign uint32) uint32 {
	switch k {
	case KindPtr, KindPtrTo:
		return ptrAlign
	case KindVoid:
		return 1
	default:
		return ScalarSize(k, ptrAlign)
	}
}
