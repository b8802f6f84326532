package builder

import (
	"vesper/internal/ast"
	"vesper/internal/diag"
	"vesper/internal/irtype"
	"vesper/internal/scope"
)

// Builder walks an *ast.File and declares what it finds into a
// *scope.Graph. It never infers a type itself — explicit type names are
// mapped eagerly through scope.Graph.TypeFromName, and anything without
// an explicit type is handed to DeclareUnresolved for the resolver to
// pick up in phase two.
type Builder struct {
	graph    *scope.Graph
	file     *ast.File
	target   irtype.Target
	reporter diag.Reporter
}

// New creates a Builder that will declare file's top-level items into
// graph.
func New(graph *scope.Graph, file *ast.File, target irtype.Target, reporter diag.Reporter) *Builder {
	return &Builder{graph: graph, file: file, target: target, reporter: reporter}
}

// Build walks every top-level item in the file. It does not stop at the
// first error: a duplicate symbol is reported and that one declaration is
// skipped, a duplicate scope name is reported and that declaration's body
// is skipped, and an unknown type name is reported while the declaration
// is still made, with IR type void. Later siblings still get a chance to
// build.
func (b *Builder) Build() {
	diag.New(b.reporter, diag.Info, diag.SemaBuildStarted, "starting scope graph construction").Emit()
	for _, id := range b.file.TopLevel {
		b.visitDeclaration(id)
	}
}

func (b *Builder) visitDeclaration(id ast.ItemID) {
	switch b.file.Items.Kind(id) {
	case ast.ItemType:
		b.visitType(id)
	case ast.ItemInterface:
		b.visitInterface(id)
	case ast.ItemEnum:
		b.visitEnum(id)
	case ast.ItemFunction:
		b.visitFunction(id)
	case ast.ItemVariable:
		b.visitVariable(id)
	case ast.ItemNamespace:
		b.visitNamespace(id)
	}
}

func (b *Builder) reportError(code diag.Code, message, symbol string) {
	diag.New(b.reporter, diag.Error, code, message).
		InScope(b.graph.Get(b.graph.BuildCursor()).Name).
		OnSymbol(symbol).
		Emit()
}

func (b *Builder) typeFromName(name string) irtype.Type {
	t, err := b.graph.TypeFromName(name, b.target)
	if err != nil {
		b.reportError(diag.SemaUnknownType, err.Error(), name)
		return irtype.Void()
	}
	return t
}

func (b *Builder) declare(name string, kind scope.Kind, dataType irtype.Type, typeName string) {
	if _, err := b.graph.Declare(name, kind, dataType, typeName); err != nil {
		b.reportError(diag.SemaDuplicateSymbol, err.Error(), name)
	}
}

func (b *Builder) declareUnresolved(name string, kind scope.Kind, init ast.ExprID) {
	deps := extractDependencies(init, b.file.Exprs)
	if _, err := b.graph.DeclareUnresolved(name, kind, init, deps); err != nil {
		b.reportError(diag.SemaDuplicateSymbol, err.Error(), name)
	}
}

func (b *Builder) enterNamed(name string) bool {
	if _, err := b.graph.EnterNamedScope(name); err != nil {
		b.reportError(diag.SemaDuplicateScope, err.Error(), name)
		return false
	}
	return true
}

func (b *Builder) visitType(id ast.ItemID) {
	t, _ := b.file.Items.Type(id)
	typeName := "type"
	if t.IsRef {
		typeName = "ref type"
	}
	b.declare(t.Name, scope.Class, irtype.Ptr(), typeName)

	if !b.enterNamed(t.Name) {
		return
	}
	for _, member := range t.Members {
		if fn, ok := b.file.Items.Function(member); ok {
			b.visitMemberFunction(fn, t.Name)
		} else {
			b.visitDeclaration(member)
		}
	}
	_ = b.graph.ExitScope()
}

func (b *Builder) visitInterface(id ast.ItemID) {
	iface, _ := b.file.Items.Interface(id)
	b.declare(iface.Name, scope.Class, irtype.Ptr(), "interface")

	if !b.enterNamed(iface.Name) {
		return
	}
	for _, member := range iface.Members {
		b.visitDeclaration(member)
	}
	_ = b.graph.ExitScope()
}

func (b *Builder) visitEnum(id ast.ItemID) {
	e, _ := b.file.Items.Enum(id)
	b.declare(e.Name, scope.Enum, irtype.I32(), "enum")

	if !b.enterNamed(e.Name) {
		return
	}
	for _, c := range e.Cases {
		b.declare(c.Name, scope.Variable, irtype.I32(), "enum case")
	}
	for _, method := range e.Methods {
		b.visitFunction(method)
	}
	_ = b.graph.ExitScope()
}

func (b *Builder) visitMemberFunction(fn *ast.FunctionItem, ownerType string) {
	returnTypeName := "void"
	if fn.ReturnType.IsValid() {
		returnTypeName = b.file.TypeNames.Spelling(fn.ReturnType)
	}
	b.declare(fn.Name, scope.Function, b.typeFromName(returnTypeName), returnTypeName)

	scopeName := ownerType + "::" + fn.Name
	if !b.enterNamed(scopeName) {
		return
	}

	thisType := irtype.PtrTo(b.typeFromName(ownerType))
	b.declare("this", scope.Parameter, thisType, ownerType+"*")

	b.declareParams(fn)
	b.visitBodyStatements(fn.Body)
	_ = b.graph.ExitScope()
}

func (b *Builder) visitFunction(id ast.ItemID) {
	fn, ok := b.file.Items.Function(id)
	if !ok {
		return
	}
	returnTypeName := "void"
	if fn.ReturnType.IsValid() {
		returnTypeName = b.file.TypeNames.Spelling(fn.ReturnType)
	}
	b.declare(fn.Name, scope.Function, b.typeFromName(returnTypeName), returnTypeName)

	if !b.enterNamed(fn.Name) {
		return
	}
	b.declareParams(fn)
	b.visitBodyStatements(fn.Body)
	_ = b.graph.ExitScope()
}

func (b *Builder) declareParams(fn *ast.FunctionItem) {
	for _, p := range fn.Params {
		typeName := b.file.TypeNames.Spelling(p.Type)
		b.declare(p.Name, scope.Parameter, b.typeFromName(typeName), typeName)
	}
}

// visitBodyStatements processes a function/member-function body's
// statements directly in the already-open function scope, without
// opening a further block scope of its own.
func (b *Builder) visitBodyStatements(body ast.ItemID) {
	if !body.IsValid() {
		return
	}
	block, ok := b.file.Items.Block(body)
	if !ok {
		b.visitStatement(body)
		return
	}
	for _, stmt := range block.Statements {
		b.visitStatement(stmt)
	}
}

func (b *Builder) visitVariable(id ast.ItemID) {
	v, ok := b.file.Items.Variable(id)
	if !ok {
		return
	}
	if v.Type.IsValid() {
		typeName := b.file.TypeNames.Spelling(v.Type)
		irT := b.typeFromName(typeName)
		for _, name := range v.Names {
			b.declare(name, scope.Variable, irT, typeName)
		}
		return
	}
	for _, name := range v.Names {
		b.declareUnresolved(name, scope.Variable, v.Init)
	}
}

func (b *Builder) visitNamespace(id ast.ItemID) {
	ns, ok := b.file.Items.Namespace(id)
	if !ok {
		return
	}
	b.graph.EnterScope()
	b.visitStatement(ns.Body)
	_ = b.graph.ExitScope()
}

func (b *Builder) visitStatement(id ast.ItemID) {
	if !id.IsValid() {
		return
	}
	switch b.file.Items.Kind(id) {
	case ast.ItemBlock:
		b.visitBlock(id)
	case ast.ItemVariable:
		b.visitVariable(id)
	case ast.ItemIf:
		b.visitIf(id)
	case ast.ItemWhile:
		b.visitWhile(id)
	case ast.ItemFor:
		b.visitFor(id)
	}
}

func (b *Builder) visitBlock(id ast.ItemID) {
	block, ok := b.file.Items.Block(id)
	if !ok {
		return
	}
	b.graph.EnterScope()
	for _, stmt := range block.Statements {
		b.visitStatement(stmt)
	}
	_ = b.graph.ExitScope()
}

// visitIf does not open a scope of its own: each branch is ordinarily an
// ItemBlock, which opens its own.
func (b *Builder) visitIf(id ast.ItemID) {
	ifItem, ok := b.file.Items.If(id)
	if !ok {
		return
	}
	b.visitStatement(ifItem.Then)
	if ifItem.Else.IsValid() {
		b.visitStatement(ifItem.Else)
	}
}

// visitWhile does not open a scope of its own, for the same reason as
// visitIf.
func (b *Builder) visitWhile(id ast.ItemID) {
	w, ok := b.file.Items.While(id)
	if !ok {
		return
	}
	b.visitStatement(w.Body)
}

// visitFor opens one scope covering both its initializer and its body,
// so a `for (i32 i = 0; ...)`-style loop variable is visible to the body.
func (b *Builder) visitFor(id ast.ItemID) {
	f, ok := b.file.Items.For(id)
	if !ok {
		return
	}
	b.graph.EnterScope()
	if f.Init.IsValid() {
		b.visitStatement(f.Init)
	}
	b.visitStatement(f.Body)
	_ = b.graph.ExitScope()
}
