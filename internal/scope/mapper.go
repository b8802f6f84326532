package scope

import (
	"strings"

	"vesper/internal/irtype"
)

// TypeFromName maps a type-name spelling to an IR Type. Primitive
// keywords take precedence unconditionally, ahead of any symbol lookup:
// a user-defined class or enum named "i32" can never shadow the
// primitive. The "[]" array suffix is recognized next; the element type
// is not tracked, only that the spelling denotes a pointer. Anything else
// is looked up against the current navigation-stack position: a Class
// symbol builds a struct layout from its own scope's Variable members, an
// Enum symbol maps to i32, and anything not found is UnknownTypeError.
func (g *Graph) TypeFromName(name string, target irtype.Target) (irtype.Type, error) {
	if strings.HasSuffix(name, "[]") {
		return irtype.Ptr(), nil
	}

	switch name {
	case "i8":
		return irtype.I8(), nil
	case "i16":
		return irtype.I16(), nil
	case "i32":
		return irtype.I32(), nil
	case "i64":
		return irtype.I64(), nil
	case "bool":
		return irtype.Bool(), nil
	case "f32":
		return irtype.F32(), nil
	case "f64":
		return irtype.F64(), nil
	case "void":
		return irtype.Void(), nil
	case "ptr":
		return irtype.Ptr(), nil
	case "string":
		return irtype.Ptr(), nil
	}

	sym, ok := g.Lookup(name)
	if !ok {
		return irtype.Type{}, &UnknownTypeError{Name: name}
	}

	switch sym.Kind {
	case Class:
		scopeID, ok := g.FindScopeByName(name)
		if !ok {
			return irtype.Type{}, &UnknownTypeError{Name: name}
		}
		fields := make([]irtype.FieldSpec, 0)
		for _, member := range g.SymbolsInOrder(scopeID) {
			if member.Kind == Variable {
				fields = append(fields, irtype.FieldSpec{Name: member.Name, Type: member.DataType})
			}
		}
		return irtype.Struct(irtype.ComputeLayout(name, fields, target)), nil
	case Enum:
		return irtype.I32(), nil
	default:
		return irtype.Type{}, &UnknownTypeError{Name: name}
	}
}
