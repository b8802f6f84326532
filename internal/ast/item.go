package ast

// ItemKind tags the shape stored at an ItemID's payload slot, the same
// single-kind-space-per-arena pattern the upstream AST uses for every
// other node family.
type ItemKind uint8

const (
	ItemInvalid ItemKind = iota

	// Declarations. Type/Interface/Enum/Function/Variable/Namespace can
	// all appear as children of a compilation unit; Function and
	// Variable additionally appear as type members or local statements.
	ItemType
	ItemInterface
	ItemEnum
	ItemFunction
	ItemVariable
	ItemNamespace

	// Statements.
	ItemBlock
	ItemIf
	ItemWhile
	ItemFor
	ItemExprStmt
	ItemReturn
)

func (k ItemKind) String() string {
	switch k {
	case ItemType:
		return "type"
	case ItemInterface:
		return "interface"
	case ItemEnum:
		return "enum"
	case ItemFunction:
		return "function"
	case ItemVariable:
		return "variable"
	case ItemNamespace:
		return "namespace"
	case ItemBlock:
		return "block"
	case ItemIf:
		return "if"
	case ItemWhile:
		return "while"
	case ItemFor:
		return "for"
	case ItemExprStmt:
		return "expr-stmt"
	case ItemReturn:
		return "return"
	default:
		return "invalid"
	}
}

// Item is the tag+payload record stored in the item arena.
type Item struct {
	Kind    ItemKind
	Payload uint32
}

// EnumCase is one member of an enum's ordered case list.
type EnumCase struct {
	Name string
}

// Param is one entry in a function's ordered parameter list.
type Param struct {
	Name string
	Type TypeNameID
}

// TypeItem describes a class ("type") or a reference type ("ref type").
// Whether it is a value or reference type is recorded via IsRef, mirroring
// the spec's decision to carry that distinction in type_name rather than
// in a separate field on Symbol.
type TypeItem struct {
	Name    string
	IsRef   bool
	Members []ItemID
}

// InterfaceItem describes an interface declaration.
type InterfaceItem struct {
	Name    string
	Members []ItemID
}

// EnumItem describes an enum declaration: an ordered case list and an
// ordered method list, matching the upstream AST's EnumDeclarationNode.
type EnumItem struct {
	Name    string
	Cases   []EnumCase
	Methods []ItemID
}

// FunctionItem describes a function or member-function declaration. The
// builder decides "member function" purely from nesting (an ItemFunction
// inside a TypeItem.Members list) rather than from a flag on this struct.
type FunctionItem struct {
	Name       string
	ReturnType TypeNameID // NoTypeNameID means the source omitted a return type
	Params     []Param
	Body       ItemID // NoItemID when there is no body (e.g. an interface method)
}

// VariableItem describes one `Type name, name2 = init;`-shaped declaration.
// Multiple co-declared names share one Type and, when present, one Init.
type VariableItem struct {
	Names []string
	Type  TypeNameID // NoTypeNameID requests inference from Init
	Init  ExprID
}

// NamespaceItem describes a namespace declaration; Body is the statement
// (ordinarily an ItemBlock) forming its contents.
type NamespaceItem struct {
	Body ItemID
}

// BlockItem is an ordered list of statements forming a lexical block.
type BlockItem struct {
	Statements []ItemID
}

// IfItem models `if (Cond) Then else Else`. Then/Else point at whatever
// statement follows — an ItemBlock when the source used braces, or a bare
// statement otherwise — consistent with the upstream grammar where if/while
// do not themselves introduce a scope.
type IfItem struct {
	Cond ExprID
	Then ItemID
	Else ItemID // NoItemID when there is no else-branch
}

// WhileItem models `while (Cond) Body`.
type WhileItem struct {
	Cond ExprID
	Body ItemID
}

// ForItem models `for (Init; Cond; Post) Body`. Init may be NoItemID (no
// initializer) or an ItemVariable/ItemExprStmt.
type ForItem struct {
	Init ItemID
	Cond ExprID
	Post ExprID
	Body ItemID
}

// ExprStmtItem wraps a bare expression statement.
type ExprStmtItem struct {
	Expr ExprID
}

// ReturnItem wraps a return statement's optional value.
type ReturnItem struct {
	Value ExprID
}
