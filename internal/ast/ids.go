package ast

// ItemID identifies a declaration or statement node. Item is the single
// tagged family the builder walks: top-level declarations, type/enum
// members, and the statements inside a function body all live in one
// arena so the walker can treat "ordered children" uniformly, the way
// the upstream AST describes compilation units and blocks.
type ItemID uint32

// NoItemID marks the absence of an item (an omitted body, for instance).
const NoItemID ItemID = 0

// IsValid reports whether the id refers to an allocated item.
func (id ItemID) IsValid() bool { return id != NoItemID }

// ExprID identifies an expression node.
type ExprID uint32

// NoExprID marks the absence of an expression (an omitted initializer).
const NoExprID ExprID = 0

// IsValid reports whether the id refers to an allocated expression.
func (id ExprID) IsValid() bool { return id != NoExprID }

// TypeNameID identifies a type-name node (simple, qualified, generic, or
// array). A zero value means "no explicit type" — the spelling the
// builder treats as a request for inference.
type TypeNameID uint32

// NoTypeNameID marks the absence of an explicit type annotation.
const NoTypeNameID TypeNameID = 0

// IsValid reports whether the id refers to an allocated type name.
func (id TypeNameID) IsValid() bool { return id != NoTypeNameID }
