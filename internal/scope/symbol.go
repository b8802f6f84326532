package scope

import (
	"vesper/internal/ast"
	"vesper/internal/irtype"
)

// Kind classifies what a Symbol names, mirroring the original symbol
// table's SymbolType enum.
type Kind uint8

const (
	Variable Kind = iota
	Function
	Class
	Parameter
	Enum
)

func (k Kind) String() string {
	switch k {
	case Variable:
		return "variable"
	case Function:
		return "function"
	case Class:
		return "class"
	case Parameter:
		return "parameter"
	case Enum:
		return "enum"
	default:
		return "unknown"
	}
}

// ResolutionState tracks where a Symbol's type stands in the fixed-point
// resolution pass: Unresolved symbols have not been visited yet,
// Resolving marks a symbol currently on the dependency stack (used to
// detect cycles), and Resolved symbols carry a final DataType/TypeName.
type ResolutionState uint8

const (
	Unresolved ResolutionState = iota
	Resolving
	Resolved
)

func (s ResolutionState) String() string {
	switch s {
	case Unresolved:
		return "unresolved"
	case Resolving:
		return "resolving"
	case Resolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Symbol is one named entry in a Scope. Dependencies is the set of other
// identifiers this symbol's initializer expression refers to, extracted
// at declaration time and consumed by the resolver's dependency-first
// pass.
type Symbol struct {
	Name             string
	Kind             Kind
	DataType         irtype.Type
	TypeName         string
	DeclaringScopeID ID
	State            ResolutionState
	Initializer      ast.ExprID // ast.NoExprID when there is no initializer to infer from
	Dependencies     []string
}
