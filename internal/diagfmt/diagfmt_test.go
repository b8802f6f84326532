package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"vesper/internal/diag"
)

func TestWriteBagOrdersBySeverityThenCode(t *testing.T) {
	bag := diag.NewBag(0)
	bag.Report(diag.Diagnostic{Severity: diag.Info, Code: diag.SemaBuildStarted, Message: "starting"})
	bag.Report(diag.Diagnostic{Severity: diag.Error, Code: diag.SemaUnknownType, Message: "unknown", Symbol: "Foo"})
	bag.Report(diag.Diagnostic{Severity: diag.Error, Code: diag.SemaDuplicateSymbol, Message: "dup", ScopeName: "Point"})

	var buf bytes.Buffer
	WriteBag(&buf, bag)
	out := buf.String()

	dupIdx := strings.Index(out, "dup")
	unknownIdx := strings.Index(out, "unknown")
	startingIdx := strings.Index(out, "starting")
	if dupIdx == -1 || unknownIdx == -1 || startingIdx == -1 {
		t.Fatalf("missing expected messages in output:\n%s", out)
	}
	if !(dupIdx < unknownIdx && unknownIdx < startingIdx) {
		t.Errorf("expected error diagnostics (sorted by code) before info, got order in:\n%s", out)
	}
	if !strings.Contains(out, "3 diagnostic(s)") {
		t.Errorf("missing trailing count line in:\n%s", out)
	}
}

func TestWriteBagEmpty(t *testing.T) {
	var buf bytes.Buffer
	WriteBag(&buf, diag.NewBag(0))
	if buf.Len() != 0 {
		t.Errorf("expected no output for an empty bag, got %q", buf.String())
	}
}
