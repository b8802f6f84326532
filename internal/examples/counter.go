package examples

import "vesper/internal/ast"

// Counter builds:
//
//	i32 start = 0;
//	var next = start + 1;
func Counter() *ast.File {
	b := ast.NewBuilder()
	f := b.Build()

	i32Ty := f.TypeNames.NewSimple("i32")
	zero := f.Exprs.NewLiteral(ast.LiteralInteger, "0")
	start := f.Items.NewVariable([]string{"start"}, i32Ty, zero)

	plusOne := f.Exprs.NewBinary(ast.BinaryAdd, f.Exprs.NewIdent("start"), f.Exprs.NewLiteral(ast.LiteralInteger, "1"))
	next := f.Items.NewVariable([]string{"next"}, ast.NoTypeNameID, plusOne)

	b.Top(start)
	b.Top(next)
	return f
}

// All returns every named example fixture this package provides, keyed
// by a short label the CLI uses to identify which file a diagnostic came
// from.
func All() map[string]func() *ast.File {
	return map[string]func() *ast.File{
		"point":   Point,
		"counter": Counter,
	}
}
