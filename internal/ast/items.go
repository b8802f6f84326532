package ast

// Items is the item arena: one tagged Item per node plus one payload
// arena per kind.
type Items struct {
	nodes       *Arena[Item]
	types       *Arena[TypeItem]
	interfaces  *Arena[InterfaceItem]
	enums       *Arena[EnumItem]
	functions   *Arena[FunctionItem]
	variables   *Arena[VariableItem]
	namespaces  *Arena[NamespaceItem]
	blocks      *Arena[BlockItem]
	ifs         *Arena[IfItem]
	whiles      *Arena[WhileItem]
	fors        *Arena[ForItem]
	exprStmts   *Arena[ExprStmtItem]
	returns     *Arena[ReturnItem]
}

// NewItems allocates an empty item arena.
func NewItems() *Items {
	return &Items{
		nodes:      NewArena[Item](0),
		types:      NewArena[TypeItem](0),
		interfaces: NewArena[InterfaceItem](0),
		enums:      NewArena[EnumItem](0),
		functions:  NewArena[FunctionItem](0),
		variables:  NewArena[VariableItem](0),
		namespaces: NewArena[NamespaceItem](0),
		blocks:     NewArena[BlockItem](0),
		ifs:        NewArena[IfItem](0),
		whiles:     NewArena[WhileItem](0),
		fors:       NewArena[ForItem](0),
		exprStmts:  NewArena[ExprStmtItem](0),
		returns:    NewArena[ReturnItem](0),
	}
}

func (it *Items) new(kind ItemKind, payload uint32) ItemID {
	return ItemID(it.nodes.Allocate(Item{Kind: kind, Payload: payload}))
}

// Kind returns the node kind stored at id, or ItemInvalid for an
// unallocated id.
func (it *Items) Kind(id ItemID) ItemKind {
	n := it.nodes.Get(uint32(id))
	if n == nil {
		return ItemInvalid
	}
	return n.Kind
}

func (it *Items) NewType(name string, isRef bool, members []ItemID) ItemID {
	p := it.types.Allocate(TypeItem{Name: name, IsRef: isRef, Members: members})
	return it.new(ItemType, p)
}

func (it *Items) Type(id ItemID) (*TypeItem, bool) {
	n := it.nodes.Get(uint32(id))
	if n == nil || n.Kind != ItemType {
		return nil, false
	}
	return it.types.Get(n.Payload), true
}

func (it *Items) NewInterface(name string, members []ItemID) ItemID {
	p := it.interfaces.Allocate(InterfaceItem{Name: name, Members: members})
	return it.new(ItemInterface, p)
}

func (it *Items) Interface(id ItemID) (*InterfaceItem, bool) {
	n := it.nodes.Get(uint32(id))
	if n == nil || n.Kind != ItemInterface {
		return nil, false
	}
	return it.interfaces.Get(n.Payload), true
}

func (it *Items) NewEnum(name string, cases []EnumCase, methods []ItemID) ItemID {
	p := it.enums.Allocate(EnumItem{Name: name, Cases: cases, Methods: methods})
	return it.new(ItemEnum, p)
}

func (it *Items) Enum(id ItemID) (*EnumItem, bool) {
	n := it.nodes.Get(uint32(id))
	if n == nil || n.Kind != ItemEnum {
		return nil, false
	}
	return it.enums.Get(n.Payload), true
}

func (it *Items) NewFunction(name string, returnType TypeNameID, params []Param, body ItemID) ItemID {
	p := it.functions.Allocate(FunctionItem{Name: name, ReturnType: returnType, Params: params, Body: body})
	return it.new(ItemFunction, p)
}

func (it *Items) Function(id ItemID) (*FunctionItem, bool) {
	n := it.nodes.Get(uint32(id))
	if n == nil || n.Kind != ItemFunction {
		return nil, false
	}
	return it.functions.Get(n.Payload), true
}

func (it *Items) NewVariable(names []string, typ TypeNameID, init ExprID) ItemID {
	p := it.variables.Allocate(VariableItem{Names: names, Type: typ, Init: init})
	return it.new(ItemVariable, p)
}

func (it *Items) Variable(id ItemID) (*VariableItem, bool) {
	n := it.nodes.Get(uint32(id))
	if n == nil || n.Kind != ItemVariable {
		return nil, false
	}
	return it.variables.Get(n.Payload), true
}

func (it *Items) NewNamespace(body ItemID) ItemID {
	p := it.namespaces.Allocate(NamespaceItem{Body: body})
	return it.new(ItemNamespace, p)
}

func (it *Items) Namespace(id ItemID) (*NamespaceItem, bool) {
	n := it.nodes.Get(uint32(id))
	if n == nil || n.Kind != ItemNamespace {
		return nil, false
	}
	return it.namespaces.Get(n.Payload), true
}

func (it *Items) NewBlock(statements []ItemID) ItemID {
	p := it.blocks.Allocate(BlockItem{Statements: statements})
	return it.new(ItemBlock, p)
}

func (it *Items) Block(id ItemID) (*BlockItem, bool) {
	n := it.nodes.Get(uint32(id))
	if n == nil || n.Kind != ItemBlock {
		return nil, false
	}
	return it.blocks.Get(n.Payload), true
}

func (it *Items) NewIf(cond ExprID, then, els ItemID) ItemID {
	p := it.ifs.Allocate(IfItem{Cond: cond, Then: then, Else: els})
	return it.new(ItemIf, p)
}

func (it *Items) If(id ItemID) (*IfItem, bool) {
	n := it.nodes.Get(uint32(id))
	if n == nil || n.Kind != ItemIf {
		return nil, false
	}
	return it.ifs.Get(n.Payload), true
}

func (it *Items) NewWhile(cond ExprID, body ItemID) ItemID {
	p := it.whiles.Allocate(WhileItem{Cond: cond, Body: body})
	return it.new(ItemWhile, p)
}

func (it *Items) While(id ItemID) (*WhileItem, bool) {
	n := it.nodes.Get(uint32(id))
	if n == nil || n.Kind != ItemWhile {
		return nil, false
	}
	return it.whiles.Get(n.Payload), true
}

func (it *Items) NewFor(init ItemID, cond, post ExprID, body ItemID) ItemID {
	p := it.fors.Allocate(ForItem{Init: init, Cond: cond, Post: post, Body: body})
	return it.new(ItemFor, p)
}

func (it *Items) For(id ItemID) (*ForItem, bool) {
	n := it.nodes.Get(uint32(id))
	if n == nil || n.Kind != ItemFor {
		return nil, false
	}
	return it.fors.Get(n.Payload), true
}

func (it *Items) NewExprStmt(expr ExprID) ItemID {
	p := it.exprStmts.Allocate(ExprStmtItem{Expr: expr})
	return it.new(ItemExprStmt, p)
}

func (it *Items) ExprStmt(id ItemID) (*ExprStmtItem, bool) {
	n := it.nodes.Get(uint32(id))
	if n == nil || n.Kind != ItemExprStmt {
		return nil, false
	}
	return it.exprStmts.Get(n.Payload), true
}

func (it *Items) NewReturn(value ExprID) ItemID {
	p := it.returns.Allocate(ReturnItem{Value: value})
	return it.new(ItemReturn, p)
}

func (it *Items) Return(id ItemID) (*ReturnItem, bool) {
	n := it.nodes.Get(uint32(id))
	if n == nil || n.Kind != ItemReturn {
		return nil, false
	}
	return it.returns.Get(n.Payload), true
}
