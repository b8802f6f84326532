package irtype

// Field is one member of a computed struct layout, in declaration order.
type Field struct {
	Name   string
	Type   Type
	Offset uint32
}

// StructLayout is the computed byte layout of a struct type: field order
// is preserved from the declaring scope, each field's offset is the
// running size rounded up to that field's own alignment, and the whole
// struct's size is rounded up to its own alignment (the max of its
// fields' alignments, minimum 1).
type StructLayout struct {
	Name   string
	Fields []Field
	Size   uint32
	Align  uint32
}

// Target carries the pointer width the layout computation sizes ptr and
// ptr_to(T) fields against.
type Target struct {
	PtrSize  uint32
	PtrAlign uint32
}

// DefaultTarget matches the teacher's x86-64 Linux default: 8-byte
// pointers, 8-byte pointer alignment.
func DefaultTarget() Target {
	return Target{PtrSize: 8, PtrAlign: 8}
}

func roundUp(n, align uint32) uint32 {
	if align <= 1 {
		return n
	}
	rem := n % align
	if rem == 0 {
		return n
	}
	return n + (align - rem)
}

func maxU32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

// FieldSpec is one field awaiting layout: a name and its already-resolved
// IR type.
type FieldSpec struct {
	Name string
	Type Type
}

// ComputeLayout lays out fields in order, the same loop the teacher's
// struct-layout pass runs: each field's offset is the running size
// rounded up to the field's alignment, then the running size advances by
// the field's own size; the struct's alignment is the max of its fields'
// alignments (minimum 1 for an empty struct), and the final size is
// rounded up to that alignment.
func ComputeLayout(name string, fields []FieldSpec, target Target) *StructLayout {
	layout := &StructLayout{Name: name, Fields: make([]Field, 0, len(fields))}

	var size, align uint32 = 0, 1
	for _, f := range fields {
		fSize, fAlign := sizeAndAlign(f.Type, target)
		offset := roundUp(size, fAlign)
		layout.Fields = append(layout.Fields, Field{Name: f.Name, Type: f.Type, Offset: offset})
		size = offset + fSize
		align = maxU32(align, fAlign)
	}
	size = roundUp(size, align)

	layout.Size = size
	layout.Align = align
	return layout
}

func sizeAndAlign(t Type, target Target) (size, align uint32) {
	switch t.Kind {
	case KindStruct:
		if t.Layout == nil {
			return 0, 1
		}
		return t.Layout.Size, t.Layout.Align
	case KindPtr, KindPtrTo:
		return target.PtrSize, target.PtrAlign
	default:
		return ScalarSize(t.Kind, target.PtrSize), ScalarAlign(t.Kind, target.PtrAlign)
	}
}

// FieldOffset returns the byte offset of the named field and true, or
// (0, false) if no field by that name exists in the layout.
func (l *StructLayout) FieldOffset(name string) (uint32, bool) {
	for _, f := range l.Fields {
		if f.Name == name {
			return f.Offset, true
		}
	}
	return 0, false
}

// FieldType returns the IR type of the named field and true, or a zero
// Type and false if no field by that name exists.
func (l *StructLayout) FieldType(name string) (Type, bool) {
	for _, f := range l.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return Type{}, false
}
