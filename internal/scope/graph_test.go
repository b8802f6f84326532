package scope

import (
	"testing"

	"vesper/internal/ast"
	"vesper/internal/irtype"
)

func newTestGraph() *Graph {
	return New(Hints{Scopes: 8, Symbols: 32})
}

func TestNewGraphHasGlobalScope(t *testing.T) {
	g := newTestGraph()
	if g.CurrentScope() != g.GlobalID() {
		t.Fatalf("CurrentScope() = %d, want GlobalID() = %d", g.CurrentScope(), g.GlobalID())
	}
	if g.BuildCursor() != g.GlobalID() {
		t.Fatalf("BuildCursor() = %d, want GlobalID() = %d", g.BuildCursor(), g.GlobalID())
	}
}

func TestClearResetsToGlobalOnly(t *testing.T) {
	g := newTestGraph()
	g.EnterScope()
	g.Declare("x", Variable, irtype.I32(), "i32")
	g.Clear()

	if g.BuildCursor() != g.GlobalID() {
		t.Fatalf("after Clear, BuildCursor() = %d, want GlobalID()", g.BuildCursor())
	}
	if _, ok := g.Lookup("x"); ok {
		t.Fatal("x still visible after Clear")
	}
}

func TestEnterNamedScopeRejectsDuplicate(t *testing.T) {
	g := newTestGraph()
	if _, err := g.EnterNamedScope("Point"); err != nil {
		t.Fatalf("first EnterNamedScope(Point) failed: %v", err)
	}
	g.ExitScope()

	if _, err := g.EnterNamedScope("Point"); err == nil {
		t.Fatal("second EnterNamedScope(Point) succeeded, want *DuplicateScopeError")
	} else if _, ok := err.(*DuplicateScopeError); !ok {
		t.Fatalf("got error %T, want *DuplicateScopeError", err)
	}
}

func TestExitScopeRefusesToPopGlobal(t *testing.T) {
	g := newTestGraph()
	if err := g.ExitScope(); err == nil {
		t.Fatal("ExitScope at global depth succeeded, want error")
	}
}

func TestPopScopeRefusesToPopGlobal(t *testing.T) {
	g := newTestGraph()
	if err := g.PopScope(); err == nil {
		t.Fatal("PopScope at global depth succeeded, want error")
	}
}

func TestDeclareRejectsDuplicateName(t *testing.T) {
	g := newTestGraph()
	if _, err := g.Declare("x", Variable, irtype.I32(), "i32"); err != nil {
		t.Fatalf("first Declare(x) failed: %v", err)
	}
	_, err := g.Declare("x", Variable, irtype.I32(), "i32")
	if err == nil {
		t.Fatal("second Declare(x) succeeded, want *DuplicateSymbolError")
	}
	if _, ok := err.(*DuplicateSymbolError); !ok {
		t.Fatalf("got error %T, want *DuplicateSymbolError", err)
	}
}

func TestSymbolsInOrderPreservesDeclarationOrder(t *testing.T) {
	g := newTestGraph()
	names := []string{"z", "a", "m", "b"}
	for _, n := range names {
		if _, err := g.Declare(n, Variable, irtype.I32(), "i32"); err != nil {
			t.Fatalf("Declare(%s) failed: %v", n, err)
		}
	}
	syms := g.SymbolsInOrder(g.BuildCursor())
	if len(syms) != len(names) {
		t.Fatalf("got %d symbols, want %d", len(syms), len(names))
	}
	for i, sym := range syms {
		if sym.Name != names[i] {
			t.Errorf("symbol[%d] = %q, want %q", i, sym.Name, names[i])
		}
	}
}

func TestLookupWalksNavigationStack(t *testing.T) {
	g := newTestGraph()
	g.Declare("outer", Variable, irtype.I32(), "i32")

	childID := g.EnterScope()
	g.Declare("inner", Variable, irtype.I32(), "i32")

	g.PushScope(childID)
	if _, ok := g.Lookup("inner"); !ok {
		t.Error("inner not visible from its own scope")
	}
	if _, ok := g.Lookup("outer"); !ok {
		t.Error("outer not visible from child scope (expected parent-chain walk)")
	}
	g.PopScope()

	if _, ok := g.Lookup("inner"); ok {
		t.Error("inner still visible after popping back to global")
	}
}

func TestLookupInContextDoesNotApplyMemberFunctionFallback(t *testing.T) {
	g := newTestGraph()
	g.EnterNamedScope("Point")
	g.Declare("x", Variable, irtype.I32(), "i32")
	g.ExitScope()

	g.EnterNamedScope("Point::Length")
	methodScope := g.BuildCursor()
	g.ExitScope()

	// LookupInContext walks parents only; Point::Length's parent is global,
	// not Point, so "x" must not resolve this way.
	if _, ok := g.LookupInContext("x", methodScope); ok {
		t.Error("LookupInContext found x through Point::Length, want false (no member fallback)")
	}
}

func TestLookupAppliesMemberFunctionFallbackOnlyAtTopOfStack(t *testing.T) {
	g := newTestGraph()
	g.EnterNamedScope("Point")
	g.Declare("x", Variable, irtype.I32(), "i32")
	g.ExitScope()

	methodID, err := g.EnterNamedScope("Point::Length")
	if err != nil {
		t.Fatalf("EnterNamedScope(Point::Length) failed: %v", err)
	}
	g.ExitScope()

	g.PushScope(methodID)
	sym, ok := g.Lookup("x")
	if !ok {
		t.Fatal("Lookup(x) from Point::Length did not find the field via member-function fallback")
	}
	if sym.Kind != Variable {
		t.Errorf("fallback-resolved symbol kind = %v, want Variable", sym.Kind)
	}
	g.PopScope()

	// Pushing an unrelated scope on top of Point::Length must suppress the
	// fallback: it only fires at the topmost nav-stack entry.
	g.PushScope(methodID)
	blockID := g.EnterScope()
	g.ExitScope()
	g.PushScope(blockID)
	if _, ok := g.Lookup("x"); ok {
		t.Error("Lookup(x) succeeded with Point::Length no longer at top of nav stack")
	}
}

func TestMemberFunctionFallbackOnlyAppliesToVariables(t *testing.T) {
	g := newTestGraph()
	g.EnterNamedScope("Point")
	g.Declare("Helper", Function, irtype.Void(), "void")
	g.ExitScope()

	methodID, _ := g.EnterNamedScope("Point::Length")
	g.ExitScope()

	g.PushScope(methodID)
	if _, ok := g.Lookup("Helper"); ok {
		t.Error("member-function fallback resolved a non-Variable symbol, want false")
	}
}

func TestPushNamedScopeAndFindScopeByName(t *testing.T) {
	g := newTestGraph()
	g.EnterNamedScope("Point")
	g.ExitScope()

	if err := g.PushNamedScope("Point"); err != nil {
		t.Fatalf("PushNamedScope(Point) failed: %v", err)
	}
	if g.CurrentScopeName() != "Point" {
		t.Errorf("CurrentScopeName() = %q, want Point", g.CurrentScopeName())
	}

	if err := g.PushNamedScope("DoesNotExist"); err == nil {
		t.Error("PushNamedScope(DoesNotExist) succeeded, want error")
	}
}

func TestChildrenReturnsDirectChildrenOnly(t *testing.T) {
	g := newTestGraph()
	a := g.EnterScope()
	g.EnterScope() // nested inside a, not a direct child of global
	g.ExitScope()
	g.ExitScope()
	b := g.EnterScope()
	g.ExitScope()

	children := g.Children(g.GlobalID())
	if len(children) != 2 || children[0] != a || children[1] != b {
		t.Errorf("Children(global) = %v, want [%d %d]", children, a, b)
	}
}

func TestDeclareUnresolvedCarriesInitializerAndDeps(t *testing.T) {
	g := newTestGraph()
	exprs := ast.NewExprs()
	init := exprs.NewLiteral(ast.LiteralInteger, "1")

	sym, err := g.DeclareUnresolved("n", Variable, init, []string{"m"})
	if err != nil {
		t.Fatalf("DeclareUnresolved failed: %v", err)
	}
	if sym.State != Unresolved {
		t.Errorf("State = %v, want Unresolved", sym.State)
	}
	if sym.Initializer != init {
		t.Error("Initializer not preserved")
	}
	if len(sym.Dependencies) != 1 || sym.Dependencies[0] != "m" {
		t.Errorf("Dependencies = %v, want [m]", sym.Dependencies)
	}
}

func TestGetReturnsNilForInvalidID(t *testing.T) {
	g := newTestGraph()
	if g.Get(NoScope) != nil {
		t.Error("Get(NoScope) should be nil")
	}
	if g.Get(ID(999)) != nil {
		t.Error("Get(999) should be nil for an unallocated id")
	}
}

func TestFromScopesRoundTrip(t *testing.T) {
	g := newTestGraph()
	g.EnterNamedScope("Point")
	g.Declare("x", Variable, irtype.I32(), "i32")
	g.ExitScope()

	rebuilt := FromScopes(g.AllScopes())
	id, ok := rebuilt.FindScopeByName("Point")
	if !ok {
		t.Fatal("FromScopes lost the Point scope")
	}
	sym, ok := rebuilt.LookupInScope(id, "x")
	if !ok || sym.Name != "x" {
		t.Fatal("FromScopes lost the x symbol")
	}
}
