package scope

import (
	"vesper/internal/ast"
	"vesper/internal/diag"
	"vesper/internal/irtype"
)

// ResolveAll runs the fixed-point type resolution pass to completion: on
// each iteration it attempts every still-Unresolved symbol across every
// scope, and stops as soon as an iteration makes no progress at all. It
// gives up after maxIterations regardless of progress, the same bound the
// original design places on runaway dependency chains.
//
// It reports one diagnostic per symbol that is still not Resolved once
// the loop stops, and returns false if any symbol failed to resolve.
func (g *Graph) ResolveAll(exprs *ast.Exprs, maxIterations int, target irtype.Target, reporter diag.Reporter) bool {
	diag.New(reporter, diag.Info, diag.SemaResolveStarted, "starting type resolution").Emit()

	progress := true
	iteration := 0
	for progress && iteration < maxIterations {
		progress = false
		iteration++
		for _, s := range g.AllScopes() {
			for _, name := range s.Order {
				sym := s.Symbols[name]
				if sym.State != Unresolved {
					continue
				}
				changed, _ := g.resolveSymbol(s.ID, name, exprs, target, reporter)
				if changed {
					progress = true
				}
			}
		}
	}

	ok := true
	hitBound := iteration >= maxIterations
	for _, s := range g.AllScopes() {
		for _, name := range s.Order {
			sym := s.Symbols[name]
			if sym.State == Resolved {
				continue
			}
			ok = false
			if hitBound || sym.State == Resolving {
				diag.New(reporter, diag.Error, diag.SemaCyclicInference, "cyclic type dependency involving "+name).
					InScope(s.Name).OnSymbol(name).Emit()
			} else {
				diag.New(reporter, diag.Error, diag.SemaInferenceFailed, "could not infer type of "+name).
					InScope(s.Name).OnSymbol(name).Emit()
			}
		}
	}

	diag.New(reporter, diag.Info, diag.SemaResolveDone, "type resolution finished").Emit()
	return ok
}

// resolveSymbol resolves a single symbol by identity (scope id + name),
// resolving its dependencies first. It returns changed=true only when it
// actually moved the symbol from Unresolved to Resolved this call.
//
// Dependencies are resolved unconditionally, by identity, regardless of
// their current state: the Resolved and Resolving cases at the top of
// this function are what short-circuit an already-settled or
// already-on-the-stack dependency. This is the only point at which "this
// symbol is being resolved by an ancestor call" is observable, so cycle
// detection reports right here rather than relying on a later sweep.
func (g *Graph) resolveSymbol(scopeID ID, name string, exprs *ast.Exprs, target irtype.Target, reporter diag.Reporter) (bool, error) {
	s := g.Get(scopeID)
	if s == nil {
		return false, &InvalidScopeError{ID: scopeID}
	}
	sym := s.Symbols[name]
	switch sym.State {
	case Resolved:
		return false, nil
	case Resolving:
		err := &CyclicInferenceError{Name: name}
		diag.New(reporter, diag.Error, diag.SemaCyclicInference, err.Error()).
			InScope(s.Name).OnSymbol(name).Emit()
		return false, err
	}

	g.setState(scopeID, name, Resolving)

	for _, dep := range sym.Dependencies {
		depSym, ok := g.LookupInContext(dep, scopeID)
		if !ok {
			continue
		}
		g.resolveSymbol(depSym.DeclaringScopeID, depSym.Name, exprs, target, reporter)
	}

	spelling := g.infer(sym.Initializer, exprs, scopeID)
	if spelling == "" || spelling == "unresolved" {
		g.setState(scopeID, name, Unresolved)
		return false, &InferenceFailedError{Name: name}
	}

	irT, err := g.TypeFromName(spelling, target)
	if err != nil {
		g.setState(scopeID, name, Unresolved)
		return false, err
	}

	g.setResolved(scopeID, name, irT, spelling)
	return true, nil
}

// infer derives a type-name spelling for expr, evaluated as if it
// appeared at scopeID. It never mutates the graph; a symbol whose type
// cannot yet be determined yields "unresolved" rather than an error, so
// the fixed-point loop can simply retry it next iteration.
func (g *Graph) infer(expr ast.ExprID, exprs *ast.Exprs, scopeID ID) string {
	if !expr.IsValid() {
		return "unresolved"
	}

	switch exprs.Kind(expr) {
	case ast.ExprLiteral:
		lit, _ := exprs.Literal(expr)
		switch lit.Kind {
		case ast.LiteralInteger:
			return "i32"
		case ast.LiteralFloat:
			return "f32"
		case ast.LiteralBoolean:
			return "bool"
		case ast.LiteralString:
			return "string"
		}
		return "unresolved"

	case ast.ExprBinary:
		b, _ := exprs.Binary(expr)
		if b.Op.IsBoolResult() {
			return "bool"
		}
		if left := g.infer(b.Left, exprs, scopeID); left != "unresolved" {
			return left
		}
		return g.infer(b.Right, exprs, scopeID)

	case ast.ExprUnary:
		u, _ := exprs.Unary(expr)
		if u.Op == ast.UnaryNot {
			return "bool"
		}
		return g.infer(u.Operand, exprs, scopeID)

	case ast.ExprIdent:
		id, _ := exprs.Ident(expr)
		if sym, ok := g.LookupInContext(id.Name, scopeID); ok && sym.State == Resolved {
			return sym.TypeName
		}
		return "unresolved"

	case ast.ExprCall:
		return g.inferCall(expr, exprs, scopeID)

	case ast.ExprAssign:
		a, _ := exprs.Assign(expr)
		return g.infer(a.Source, exprs, scopeID)

	case ast.ExprNew:
		n, _ := exprs.New(expr)
		if sym, ok := g.LookupInContext(n.TypeName, scopeID); ok && (sym.Kind == Class || sym.Kind == Enum) {
			return n.TypeName
		}
		return "unresolved"

	case ast.ExprMember:
		return g.inferMember(expr, exprs, scopeID)

	case ast.ExprThis:
		if owner, ok := g.enclosingOwner(scopeID); ok {
			return owner
		}
		return "unresolved"

	default:
		return "unresolved"
	}
}

func (g *Graph) inferCall(expr ast.ExprID, exprs *ast.Exprs, scopeID ID) string {
	call, _ := exprs.Call(expr)

	if exprs.Kind(call.Target) == ast.ExprMember {
		member, _ := exprs.Member(call.Target)
		ownerType := g.infer(member.Target, exprs, scopeID)
		if ownerType == "" || ownerType == "unresolved" {
			return "unresolved"
		}
		ownerScopeID, ok := g.FindScopeByName(ownerType)
		if !ok {
			return "unresolved"
		}
		if sym, ok := g.LookupInScope(ownerScopeID, member.Name); ok && sym.Kind == Function && sym.State == Resolved {
			return sym.TypeName
		}
		return "unresolved"
	}

	if exprs.Kind(call.Target) == ast.ExprIdent {
		id, _ := exprs.Ident(call.Target)
		if sym, ok := g.LookupInContext(id.Name, scopeID); ok && sym.Kind == Function && sym.State == Resolved {
			return sym.TypeName
		}
	}
	return "unresolved"
}

func (g *Graph) inferMember(expr ast.ExprID, exprs *ast.Exprs, scopeID ID) string {
	member, _ := exprs.Member(expr)
	ownerType := g.infer(member.Target, exprs, scopeID)
	if ownerType == "" || ownerType == "unresolved" {
		return "unresolved"
	}
	ownerScopeID, ok := g.FindScopeByName(ownerType)
	if !ok {
		return "unresolved"
	}
	if sym, ok := g.LookupInScope(ownerScopeID, member.Name); ok && sym.State == Resolved {
		return sym.TypeName
	}
	return "unresolved"
}

// enclosingOwner walks scopeID's parent chain looking for the nearest
// member-function scope ("Owner::Func") and returns its owner name.
func (g *Graph) enclosingOwner(scopeID ID) (string, bool) {
	for id := scopeID; id.IsValid(); {
		s := g.Get(id)
		if s == nil {
			return "", false
		}
		if owner, ok := splitOwner(s.Name); ok {
			return owner, true
		}
		id = s.ParentID
	}
	return "", false
}
