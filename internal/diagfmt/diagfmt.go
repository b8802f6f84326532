// Package diagfmt renders diag.Bag contents and scope.Graph dumps for a
// terminal. Nothing in this package is consulted by the core itself —
// it is a downstream consumer of the core's read-only query API, the
// same separation the teacher keeps between its sema packages and its
// own terminal-rendering code.
package diagfmt

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"vesper/internal/diag"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgYellow, color.Bold)
	infoStyle    = color.New(color.FgCyan)
	dimStyle     = color.New(color.FgHiBlack)
)

func severityStyle(s diag.Severity) *color.Color {
	switch s {
	case diag.Error:
		return errorStyle
	case diag.Warning:
		return warningStyle
	default:
		return infoStyle
	}
}

// WriteBag renders every diagnostic in bag to w, one line each, ordered
// Error-then-Warning-then-Info and by code within a severity.
func WriteBag(w io.Writer, bag *diag.Bag) {
	items := append([]diag.Diagnostic(nil), bag.Items()...)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Severity != items[j].Severity {
			return items[i].Severity > items[j].Severity
		}
		return items[i].Code < items[j].Code
	})

	for _, d := range items {
		style := severityStyle(d.Severity)
		label := style.Sprintf("%s[%s]", d.Severity, d.Code)
		location := ""
		if d.ScopeName != "" {
			location = dimStyle.Sprintf(" in %s", d.ScopeName)
		}
		symbol := ""
		if d.Symbol != "" {
			symbol = dimStyle.Sprintf(" (%s)", d.Symbol)
		}
		fmt.Fprintf(w, "%s %s%s%s\n", label, d.Message, location, symbol)
	}

	if n := bag.Len(); n > 0 {
		fmt.Fprintln(w, dimStyle.Sprintf("%d diagnostic(s)", n))
	}
}
