package builder

import (
	"testing"

	"vesper/internal/ast"
	"vesper/internal/diag"
	"vesper/internal/irtype"
	"vesper/internal/scope"
)

func run(f *ast.File) (*scope.Graph, *diag.Bag) {
	g := scope.New(scope.Hints{Scopes: 16, Symbols: 64})
	bag := diag.NewBag(0)
	New(g, f, irtype.DefaultTarget(), bag).Build()
	return g, bag
}

func TestBuildDeclaresTopLevelVariable(t *testing.T) {
	b := ast.NewBuilder()
	f := b.Build()
	i32Ty := f.TypeNames.NewSimple("i32")
	v := f.Items.NewVariable([]string{"x"}, i32Ty, ast.NoExprID)
	b.Top(v)

	g, bag := run(f)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	sym, ok := g.LookupInScope(g.GlobalID(), "x")
	if !ok || sym.DataType.Kind != irtype.KindI32 {
		t.Fatalf("x = %+v, ok=%v; want Resolved i32", sym, ok)
	}
}

func TestBuildMultiNameVariableDeclaration(t *testing.T) {
	b := ast.NewBuilder()
	f := b.Build()
	i32Ty := f.TypeNames.NewSimple("i32")
	v := f.Items.NewVariable([]string{"a", "b", "c"}, i32Ty, ast.NoExprID)
	b.Top(v)

	g, bag := run(f)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	for _, name := range []string{"a", "b", "c"} {
		if _, ok := g.LookupInScope(g.GlobalID(), name); !ok {
			t.Errorf("%s was not declared", name)
		}
	}
}

func TestBuildReportsDuplicateDeclaration(t *testing.T) {
	b := ast.NewBuilder()
	f := b.Build()
	i32Ty := f.TypeNames.NewSimple("i32")
	v1 := f.Items.NewVariable([]string{"x"}, i32Ty, ast.NoExprID)
	v2 := f.Items.NewVariable([]string{"x"}, i32Ty, ast.NoExprID)
	b.Top(v1)
	b.Top(v2)

	_, bag := run(f)
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SemaDuplicateSymbol {
			found = true
		}
	}
	if !found {
		t.Errorf("no SemaDuplicateSymbol diagnostic, got: %v", bag.Items())
	}
}

func TestVisitIfDoesNotOpenItsOwnScope(t *testing.T) {
	b := ast.NewBuilder()
	f := b.Build()
	i32Ty := f.TypeNames.NewSimple("i32")
	innerVar := f.Items.NewVariable([]string{"y"}, i32Ty, ast.NoExprID)
	thenBlock := f.Items.NewBlock([]ast.ItemID{innerVar})
	ifItem := f.Items.NewIf(f.Exprs.NewLiteral(ast.LiteralBoolean, "true"), thenBlock, ast.NoItemID)
	body := f.Items.NewBlock([]ast.ItemID{ifItem})
	fn := f.Items.NewFunction("f", ast.NoTypeNameID, nil, body)
	b.Top(fn)

	g, bag := run(f)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	// y lives in the then-block's own anonymous scope (opened by visitBlock),
	// not directly in "f"'s function scope.
	fScopeID, ok := g.FindScopeByName("f")
	if !ok {
		t.Fatal("function scope \"f\" not found")
	}
	if _, ok := g.LookupInScope(fScopeID, "y"); ok {
		t.Error("y leaked into the function scope; the then-block must open its own scope")
	}

	var yScope *scope.Scope
	for _, s := range g.AllScopes() {
		if _, ok := s.Symbols["y"]; ok {
			yScope = s
		}
	}
	if yScope == nil {
		t.Fatal("y was not declared in any scope")
	}
	if yScope.ParentID != fScopeID {
		t.Errorf("y's scope has parent %d, want the function scope %d; the if-statement must not open a scope between them", yScope.ParentID, fScopeID)
	}
}

func TestVisitForOpensOneScopeCoveringInitAndBody(t *testing.T) {
	b := ast.NewBuilder()
	f := b.Build()
	i32Ty := f.TypeNames.NewSimple("i32")
	zero := f.Exprs.NewLiteral(ast.LiteralInteger, "0")
	initVar := f.Items.NewVariable([]string{"i"}, i32Ty, zero)
	useI := f.Items.NewExprStmt(f.Exprs.NewIdent("i"))
	bodyBlock := f.Items.NewBlock([]ast.ItemID{useI})
	forItem := f.Items.NewFor(initVar, ast.NoExprID, ast.NoExprID, bodyBlock)
	fnBody := f.Items.NewBlock([]ast.ItemID{forItem})
	fn := f.Items.NewFunction("loop", ast.NoTypeNameID, nil, fnBody)
	b.Top(fn)

	g, bag := run(f)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}

	fnScope, ok := g.FindScopeByName("loop")
	if !ok {
		t.Fatal("function scope \"loop\" not found")
	}
	if _, ok := g.LookupInScope(fnScope, "i"); ok {
		t.Error("i declared directly in the function scope; the for-loop should own its own scope")
	}

	var forScope *scope.Scope
	for _, s := range g.AllScopes() {
		if s.ParentID == fnScope {
			if _, ok := s.Symbols["i"]; ok {
				forScope = s
			}
		}
	}
	if forScope == nil {
		t.Fatal("no child scope of \"loop\" declares \"i\"; the for's init and body must share one scope")
	}
}

func TestVisitTypeDeclaresFieldsAndRoutesMemberFunctions(t *testing.T) {
	b := ast.NewBuilder()
	f := b.Build()
	i32Ty := f.TypeNames.NewSimple("i32")
	fieldX := f.Items.NewVariable([]string{"x"}, i32Ty, ast.NoExprID)

	thisX := f.Exprs.NewMember(f.Exprs.NewThis(), "x")
	ret := f.Items.NewReturn(thisX)
	methodBody := f.Items.NewBlock([]ast.ItemID{ret})
	method := f.Items.NewFunction("GetX", i32Ty, nil, methodBody)

	typeItem := f.Items.NewType("Point", false, []ast.ItemID{fieldX, method})
	b.Top(typeItem)

	g, bag := run(f)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}

	pointScope, ok := g.FindScopeByName("Point")
	if !ok {
		t.Fatal("Point scope not registered")
	}
	if _, ok := g.LookupInScope(pointScope, "x"); !ok {
		t.Error("field x not declared in Point's own scope")
	}
	if _, ok := g.LookupInScope(pointScope, "GetX"); !ok {
		t.Error("method GetX not declared in Point's own scope")
	}

	methodScope, ok := g.FindScopeByName("Point::GetX")
	if !ok {
		t.Fatal("member function scope \"Point::GetX\" not registered")
	}
	thisSym, ok := g.LookupInScope(methodScope, "this")
	if !ok {
		t.Fatal("implicit \"this\" parameter not declared in the method scope")
	}
	if thisSym.DataType.Kind != irtype.KindPtrTo {
		t.Errorf("this.DataType.Kind = %v, want KindPtrTo", thisSym.DataType.Kind)
	}
}

func TestVisitEnumDeclaresCasesAndMethods(t *testing.T) {
	b := ast.NewBuilder()
	f := b.Build()
	cases := []ast.EnumCase{{Name: "Red"}, {Name: "Green"}, {Name: "Blue"}}
	next := f.Items.NewFunction("Next", ast.NoTypeNameID, nil, ast.NoItemID)
	enumItem := f.Items.NewEnum("Color", cases, []ast.ItemID{next})
	b.Top(enumItem)

	g, bag := run(f)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	colorScope, ok := g.FindScopeByName("Color")
	if !ok {
		t.Fatal("Color scope not registered")
	}
	for _, c := range cases {
		sym, ok := g.LookupInScope(colorScope, c.Name)
		if !ok {
			t.Errorf("case %s not declared", c.Name)
			continue
		}
		if sym.DataType.Kind != irtype.KindI32 {
			t.Errorf("case %s has kind %v, want KindI32", c.Name, sym.DataType.Kind)
		}
	}
	method, ok := g.LookupInScope(colorScope, "Next")
	if !ok {
		t.Error("method Next not declared in Color's scope")
	} else if method.Kind != scope.Function {
		t.Errorf("Next.Kind = %v, want Function", method.Kind)
	}
}

func TestVisitInterfaceDeclaresClassSymbolWithInterfaceTypeName(t *testing.T) {
	b := ast.NewBuilder()
	f := b.Build()
	ifaceItem := f.Items.NewInterface("Shape", nil)
	b.Top(ifaceItem)

	g, bag := run(f)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	sym, ok := g.LookupInScope(g.GlobalID(), "Shape")
	if !ok {
		t.Fatal("Shape not declared")
	}
	if sym.Kind != scope.Class {
		t.Errorf("Shape.Kind = %v, want Class", sym.Kind)
	}
	if sym.TypeName != "interface" {
		t.Errorf("Shape.TypeName = %q, want \"interface\"", sym.TypeName)
	}
}
