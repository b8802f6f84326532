package snapshot

import (
	"testing"

	"vesper/internal/diag"
	"vesper/internal/examples"
	"vesper/internal/irtype"
	"vesper/internal/semantics"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	g, ok := semantics.Run(examples.Point(), semantics.DefaultOptions(), diag.NopReporter{})
	if !ok {
		t.Fatal("Point example did not fully resolve")
	}

	data, err := Encode(g)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	pointScope, ok := decoded.FindScopeByName("Point")
	if !ok {
		t.Fatal("decoded graph lost the Point scope")
	}
	x, ok := decoded.LookupInScope(pointScope, "x")
	if !ok || x.DataType.Kind != irtype.KindI32 {
		t.Fatalf("decoded x = %+v, ok=%v; want Resolved i32", x, ok)
	}

	origin, ok := decoded.LookupInScope(decoded.GlobalID(), "origin")
	if !ok || origin.DataType.Kind != irtype.KindStruct {
		t.Fatalf("decoded origin = %+v, ok=%v; want a struct", origin, ok)
	}

	// A decoded graph's navigation cursor starts back on the global scope,
	// same as a freshly built one.
	if decoded.CurrentScope() != decoded.GlobalID() {
		t.Errorf("decoded.CurrentScope() = %v, want GlobalID()", decoded.CurrentScope())
	}
	var sawPoint bool
	for _, id := range decoded.Children(decoded.GlobalID()) {
		if id == pointScope {
			sawPoint = true
		}
	}
	if !sawPoint {
		t.Error("Point scope is not reachable as a child of the global scope after decode")
	}
}
