// Package semantics ties the two phases together: internal/semantics/builder
// walks an ast.File into a fresh scope.Graph, then scope.Graph.ResolveAll
// runs the fixed-point resolution pass over it.
package semantics

import (
	"vesper/internal/ast"
	"vesper/internal/diag"
	"vesper/internal/irtype"
	"vesper/internal/scope"
	"vesper/internal/semantics/builder"
)

// Options bundles the knobs config.Config exposes to a single build-and-
// resolve run.
type Options struct {
	Target        irtype.Target
	MaxIterations int
	Hints         scope.Hints
}

// DefaultOptions matches config.Default().
func DefaultOptions() Options {
	return Options{
		Target:        irtype.DefaultTarget(),
		MaxIterations: 10,
		Hints:         scope.Hints{Scopes: 64, Symbols: 256},
	}
}

// Run builds file into a new scope.Graph and resolves every symbol's
// type. It returns the graph regardless of whether resolution fully
// succeeded — callers inspect the Reporter's diagnostics (or the bool
// result) to decide whether the run is good enough to use.
func Run(file *ast.File, opts Options, reporter diag.Reporter) (*scope.Graph, bool) {
	g := scope.New(opts.Hints)
	builder.New(g, file, opts.Target, reporter).Build()
	ok := g.ResolveAll(file.Exprs, opts.MaxIterations, opts.Target, reporter)
	return g, ok
}
