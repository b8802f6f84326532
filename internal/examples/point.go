// Package examples builds a handful of fixed ast.File fixtures by hand,
// standing in for source files a parser front end would otherwise
// produce. This module has no parser (see the Non-goals): every program
// it ever analyzes, in its CLI or its tests, is assembled directly
// through internal/ast's builder API, the way the teacher's own test
// fixtures build ast.Builder values by hand instead of lexing text.
package examples

import "vesper/internal/ast"

// Point builds:
//
//	type Point {
//	    i32 x;
//	    i32 y;
//
//	    i32 LengthSquared() {
//	        return this.x * this.x + this.y * this.y;
//	    }
//	}
//
//	Point origin = new Point();
//	var total = origin.LengthSquared();
func Point() *ast.File {
	b := ast.NewBuilder()
	f := b.Build()

	xTy := f.TypeNames.NewSimple("i32")
	yTy := f.TypeNames.NewSimple("i32")
	fieldX := f.Items.NewVariable([]string{"x"}, xTy, ast.NoExprID)
	fieldY := f.Items.NewVariable([]string{"y"}, yTy, ast.NoExprID)

	thisX := f.Exprs.NewMember(f.Exprs.NewThis(), "x")
	thisXSq := f.Exprs.NewBinary(ast.BinaryMul, thisX, thisX)
	thisY := f.Exprs.NewMember(f.Exprs.NewThis(), "y")
	thisYSq := f.Exprs.NewBinary(ast.BinaryMul, thisY, thisY)
	sum := f.Exprs.NewBinary(ast.BinaryAdd, thisXSq, thisYSq)
	ret := f.Items.NewReturn(sum)
	body := f.Items.NewBlock([]ast.ItemID{ret})

	i32Ty := f.TypeNames.NewSimple("i32")
	lengthSquared := f.Items.NewFunction("LengthSquared", i32Ty, nil, body)

	point := f.Items.NewType("Point", false, []ast.ItemID{fieldX, fieldY, lengthSquared})

	pointTy := f.TypeNames.NewSimple("Point")
	newPoint := f.Exprs.NewNew("Point", nil)
	origin := f.Items.NewVariable([]string{"origin"}, pointTy, newPoint)

	call := f.Exprs.NewCall(f.Exprs.NewMember(f.Exprs.NewIdent("origin"), "LengthSquared"), nil)
	total := f.Items.NewVariable([]string{"total"}, ast.NoTypeNameID, call)

	b.Top(point)
	b.Top(origin)
	b.Top(total)
	return f
}
