// Package builder walks a parsed ast.File and populates a scope.Graph:
// phase one of the two-phase semantic analysis this module performs
// (phase two, fixed-point type resolution, lives in scope.Graph.ResolveAll).
package builder

import "vesper/internal/ast"

// extractDependencies collects the names a declaration's initializer
// expression refers to, for the resolver's dependency-first pass. It
// never looks anything up in a scope graph — it is a pure walk of the
// expression tree.
func extractDependencies(expr ast.ExprID, exprs *ast.Exprs) []string {
	var deps []string
	collectDependencies(expr, exprs, &deps)
	return deps
}

func collectDependencies(expr ast.ExprID, exprs *ast.Exprs, deps *[]string) {
	if !expr.IsValid() {
		return
	}
	switch exprs.Kind(expr) {
	case ast.ExprIdent:
		id, _ := exprs.Ident(expr)
		*deps = append(*deps, id.Name)

	case ast.ExprBinary:
		b, _ := exprs.Binary(expr)
		collectDependencies(b.Left, exprs, deps)
		collectDependencies(b.Right, exprs, deps)

	case ast.ExprUnary:
		u, _ := exprs.Unary(expr)
		collectDependencies(u.Operand, exprs, deps)

	case ast.ExprCall:
		call, _ := exprs.Call(expr)
		switch exprs.Kind(call.Target) {
		case ast.ExprIdent:
			id, _ := exprs.Ident(call.Target)
			*deps = append(*deps, id.Name)
		case ast.ExprMember:
			member, _ := exprs.Member(call.Target)
			collectDependencies(member.Target, exprs, deps)
		}
		for _, arg := range call.Args {
			collectDependencies(arg, exprs, deps)
		}

	case ast.ExprAssign:
		a, _ := exprs.Assign(expr)
		collectDependencies(a.Source, exprs, deps)

	case ast.ExprNew:
		n, _ := exprs.New(expr)
		*deps = append(*deps, n.TypeName)
		for _, arg := range n.Args {
			collectDependencies(arg, exprs, deps)
		}

	case ast.ExprMember:
		member, _ := exprs.Member(expr)
		// The member name itself is not a dependency: the target variable
		// already carries a dependency on whatever type defines it.
		collectDependencies(member.Target, exprs, deps)
	}
}
