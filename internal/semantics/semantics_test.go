package semantics

import (
	"testing"

	"vesper/internal/diag"
	"vesper/internal/examples"
	"vesper/internal/irtype"
	"vesper/internal/scope"
)

func TestRunResolvesPointExampleFully(t *testing.T) {
	bag := diag.NewBag(0)
	g, ok := Run(examples.Point(), DefaultOptions(), bag)
	if !ok {
		t.Fatalf("Point example failed to resolve: %v", bag.Items())
	}

	pointScope, found := g.FindScopeByName("Point")
	if !found {
		t.Fatal("Point scope not registered")
	}

	xSym, _ := g.LookupInScope(pointScope, "x")
	ySym, _ := g.LookupInScope(pointScope, "y")
	if xSym.DataType.Kind != irtype.KindI32 || ySym.DataType.Kind != irtype.KindI32 {
		t.Fatalf("Point.x/y = %+v / %+v, want both KindI32", xSym.DataType, ySym.DataType)
	}

	method, ok := g.LookupInScope(pointScope, "LengthSquared")
	if !ok || method.DataType.Kind != irtype.KindI32 {
		t.Fatalf("LengthSquared = %+v, ok=%v; want Resolved i32", method, ok)
	}

	origin, ok := g.LookupInScope(g.GlobalID(), "origin")
	if !ok || origin.TypeName != "Point" {
		t.Fatalf("origin = %+v, ok=%v; want TypeName Point", origin, ok)
	}
	if origin.DataType.Kind != irtype.KindStruct || origin.DataType.Layout.Size != 8 {
		t.Fatalf("origin.DataType = %+v, want an 8-byte struct layout", origin.DataType)
	}

	// "total" has no explicit type and must be inferred from
	// origin.LengthSquared() through the member-call inference path.
	total, ok := g.LookupInScope(g.GlobalID(), "total")
	if !ok {
		t.Fatal("total not declared")
	}
	if total.State != scope.Resolved || total.DataType.Kind != irtype.KindI32 {
		t.Fatalf("total = %+v, want Resolved i32", total)
	}
}

func TestRunResolvesCounterExampleDependentVariable(t *testing.T) {
	bag := diag.NewBag(0)
	g, ok := Run(examples.Counter(), DefaultOptions(), bag)
	if !ok {
		t.Fatalf("Counter example failed to resolve: %v", bag.Items())
	}

	next, ok := g.LookupInScope(g.GlobalID(), "next")
	if !ok || next.DataType.Kind != irtype.KindI32 {
		t.Fatalf("next = %+v, ok=%v; want Resolved i32", next, ok)
	}
}

func TestDefaultOptionsMatchesConfigDefault(t *testing.T) {
	opts := DefaultOptions()
	if opts.MaxIterations != 10 {
		t.Errorf("MaxIterations = %d, want 10", opts.MaxIterations)
	}
	if opts.Target != irtype.DefaultTarget() {
		t.Errorf("Target = %+v, want DefaultTarget()", opts.Target)
	}
}
