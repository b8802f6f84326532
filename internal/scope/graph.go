package scope

import (
	"fortio.org/safecast"

	"vesper/internal/ast"
	"vesper/internal/irtype"
)

const globalScopeName = "<global>"

// Graph is the scope graph: a dense, append-only arena of Scopes plus two
// independent cursors into it.
//
// The build cursor (buildStack) tracks where the AST walker currently is
// while it populates the graph; EnterScope/EnterNamedScope/ExitScope move
// it. The navigation stack (navStack) is a separate, read-only cursor
// downstream consumers push and pop to walk the already-built graph
// without disturbing the builder's position — the same build-time vs.
// read-time split the original design keeps between
// "building_scope_level" and the public push_scope/pop_scope API.
type Graph struct {
	scopes     []*Scope // index 0 unused; ID(i) == scopes[i]
	nameToID   map[string]ID
	buildStack []ID
	navStack   []ID
}

// Hints sizes the Graph's backing arena up front. Both fields are hints
// only; zero is fine.
type Hints struct {
	Scopes  uint
	Symbols uint
}

// New creates a Graph containing only the global scope, with both
// cursors sitting on it.
func New(hints Hints) *Graph {
	g := &Graph{
		scopes:   make([]*Scope, 1, hints.Scopes+1),
		nameToID: make(map[string]ID, hints.Scopes),
	}
	g.scopes[0] = nil // sentinel slot for NoScope
	global := g.allocate(globalScopeName, NoScope)
	g.buildStack = []ID{global}
	g.navStack = []ID{global}
	return g
}

func (g *Graph) allocate(name string, parent ID) ID {
	idx, err := safecast.Conv[uint32](len(g.scopes))
	if err != nil {
		panic(err)
	}
	id := ID(idx)
	g.scopes = append(g.scopes, newScope(id, name, parent))
	if name != "" {
		g.nameToID[name] = id
	}
	return id
}

// Get returns the scope stored at id, or nil if id is invalid.
func (g *Graph) Get(id ID) *Scope {
	if id == NoScope || int(id) >= len(g.scopes) {
		return nil
	}
	return g.scopes[id]
}

// GlobalID returns the id of the graph's single root scope.
func (g *Graph) GlobalID() ID {
	return ID(1)
}

// Clear resets the Graph back to a freshly-constructed state: only the
// global scope survives, both cursors reset onto it.
func (g *Graph) Clear() {
	g.scopes = g.scopes[:1]
	g.nameToID = make(map[string]ID)
	global := g.allocate(globalScopeName, NoScope)
	g.buildStack = []ID{global}
	g.navStack = []ID{global}
}

// ---- build cursor ----

// BuildCursor returns the scope the AST walker is currently declaring
// into.
func (g *Graph) BuildCursor() ID {
	return g.buildStack[len(g.buildStack)-1]
}

// EnterScope opens a new anonymous scope as a child of the build cursor
// and moves the cursor onto it. Used for blocks, for-loop headers, and
// namespaces — none of which can be looked up again by name.
func (g *Graph) EnterScope() ID {
	id := g.allocate("", g.BuildCursor())
	g.buildStack = append(g.buildStack, id)
	return id
}

// EnterNamedScope opens a new scope registered under name and moves the
// build cursor onto it. Used for type, interface, enum, and (member)
// function declarations, whose scopes are later found again by
// FindScopeByName or by the member-function lookup fallback.
//
// A name collision is rejected rather than silently reused: two
// declarations sharing a scope name would otherwise merge their members,
// which this module treats as a declaration error at the call site.
func (g *Graph) EnterNamedScope(name string) (ID, error) {
	if _, exists := g.nameToID[name]; exists {
		return NoScope, &DuplicateScopeError{Name: name}
	}
	id := g.allocate(name, g.BuildCursor())
	g.buildStack = append(g.buildStack, id)
	return id, nil
}

// ExitScope moves the build cursor back to its parent. It refuses to pop
// the global scope off the bottom of the stack.
func (g *Graph) ExitScope() error {
	if len(g.buildStack) <= 1 {
		return &InvalidScopeError{ID: g.BuildCursor()}
	}
	g.buildStack = g.buildStack[:len(g.buildStack)-1]
	return nil
}

// ---- navigation stack ----

// CurrentScope returns the scope at the top of the navigation stack.
func (g *Graph) CurrentScope() ID {
	return g.navStack[len(g.navStack)-1]
}

// CurrentScopeName returns the name of the scope at the top of the
// navigation stack.
func (g *Graph) CurrentScopeName() string {
	s := g.Get(g.CurrentScope())
	if s == nil {
		return ""
	}
	return s.Name
}

// PushScope pushes id onto the navigation stack.
func (g *Graph) PushScope(id ID) error {
	if g.Get(id) == nil {
		return &InvalidScopeError{ID: id}
	}
	g.navStack = append(g.navStack, id)
	return nil
}

// PushNamedScope resolves name to a scope id and pushes it.
func (g *Graph) PushNamedScope(name string) error {
	id, ok := g.FindScopeByName(name)
	if !ok {
		return &InvalidScopeError{Name: name}
	}
	return g.PushScope(id)
}

// PopScope pops the navigation stack. It refuses to pop the global scope
// off the bottom.
func (g *Graph) PopScope() error {
	if len(g.navStack) <= 1 {
		return &InvalidScopeError{ID: g.CurrentScope()}
	}
	g.navStack = g.navStack[:len(g.navStack)-1]
	return nil
}

// ResetNavigation drops the navigation stack back down to just the
// global scope.
func (g *Graph) ResetNavigation() {
	g.navStack = []ID{g.GlobalID()}
}

// ---- lookup ----

// FindScopeByName returns the id registered under name, if any.
func (g *Graph) FindScopeByName(name string) (ID, bool) {
	id, ok := g.nameToID[name]
	return id, ok
}

// SymbolsOf returns every symbol declared directly in scope id, in no
// particular order. Callers that need declaration order (struct layout)
// use SymbolsInOrder instead.
func (g *Graph) SymbolsOf(id ID) []Symbol {
	s := g.Get(id)
	if s == nil {
		return nil
	}
	out := make([]Symbol, 0, len(s.Symbols))
	for _, sym := range s.Symbols {
		out = append(out, sym)
	}
	return out
}

// SymbolsInOrder returns every symbol declared directly in scope id, in
// declaration order.
func (g *Graph) SymbolsInOrder(id ID) []Symbol {
	s := g.Get(id)
	if s == nil {
		return nil
	}
	out := make([]Symbol, 0, len(s.Order))
	for _, name := range s.Order {
		out = append(out, s.Symbols[name])
	}
	return out
}

// LookupInScope returns the symbol declared directly in scope id, without
// walking parents.
func (g *Graph) LookupInScope(id ID, name string) (Symbol, bool) {
	s := g.Get(id)
	if s == nil {
		return Symbol{}, false
	}
	sym, ok := s.Symbols[name]
	return sym, ok
}

// LookupInContext walks up the parent chain starting at contextScopeID,
// the way a declaring scope's own parent already encodes the right
// lexical context without needing the member-function fallback that
// Lookup applies to the live navigation stack.
func (g *Graph) LookupInContext(name string, contextScopeID ID) (Symbol, bool) {
	for id := contextScopeID; id.IsValid(); {
		s := g.Get(id)
		if s == nil {
			break
		}
		if sym, ok := s.Symbols[name]; ok {
			return sym, true
		}
		id = s.ParentID
	}
	return Symbol{}, false
}

// Lookup resolves name against the navigation stack, innermost entry
// first, walking each entry's parent chain before moving on to the next
// entry down. If the innermost entry's name contains "::" (a
// member-function scope, e.g. "Point::Length") and that scope does not
// declare name itself, a Variable declared directly in the owning type's
// scope is returned before the parent chain is walked — fields are
// reachable unqualified inside a method body whatever the method scope's
// lexical parent is.
func (g *Graph) Lookup(name string) (Symbol, bool) {
	for i := len(g.navStack) - 1; i >= 0; i-- {
		for id := g.navStack[i]; id.IsValid(); {
			s := g.Get(id)
			if s == nil {
				break
			}
			if sym, ok := s.Symbols[name]; ok {
				return sym, true
			}
			if i == len(g.navStack)-1 && id == g.navStack[i] {
				if sym, ok := g.memberFunctionFallback(s.Name, name); ok {
					return sym, true
				}
			}
			id = s.ParentID
		}
	}
	return Symbol{}, false
}

func (g *Graph) memberFunctionFallback(scopeName, name string) (Symbol, bool) {
	owner, isMember := splitOwner(scopeName)
	if !isMember {
		return Symbol{}, false
	}
	ownerID, ok := g.FindScopeByName(owner)
	if !ok {
		return Symbol{}, false
	}
	sym, ok := g.LookupInScope(ownerID, name)
	if !ok || sym.Kind != Variable {
		return Symbol{}, false
	}
	return sym, true
}

func splitOwner(scopeName string) (owner string, isMember bool) {
	for i := 0; i+1 < len(scopeName); i++ {
		if scopeName[i] == ':' && scopeName[i+1] == ':' {
			return scopeName[:i], true
		}
	}
	return "", false
}

// ---- declaration ----

// Declare adds a fully-typed, already-Resolved symbol to the build
// cursor's scope. It fails with *DuplicateSymbolError if name is already
// declared there.
func (g *Graph) Declare(name string, kind Kind, dataType irtype.Type, typeName string) (Symbol, error) {
	return g.declareInto(g.BuildCursor(), Symbol{
		Name:     name,
		Kind:     kind,
		DataType: dataType,
		TypeName: typeName,
		State:    Resolved,
	})
}

// DeclareUnresolved adds a symbol whose type is not yet known: it starts
// out Unresolved with a placeholder i32/"unresolved" type, carrying the
// initializer expression and its extracted dependency names for the
// resolver's later pass.
func (g *Graph) DeclareUnresolved(name string, kind Kind, init ast.ExprID, deps []string) (Symbol, error) {
	return g.declareInto(g.BuildCursor(), Symbol{
		Name:         name,
		Kind:         kind,
		DataType:     irtype.I32(),
		TypeName:     "unresolved",
		State:        Unresolved,
		Initializer:  init,
		Dependencies: deps,
	})
}

func (g *Graph) declareInto(scopeID ID, sym Symbol) (Symbol, error) {
	s := g.Get(scopeID)
	if s == nil {
		return Symbol{}, &InvalidScopeError{ID: scopeID}
	}
	if _, exists := s.Symbols[sym.Name]; exists {
		return Symbol{}, &DuplicateSymbolError{ScopeID: scopeID, Name: sym.Name}
	}
	sym.DeclaringScopeID = scopeID
	s.Symbols[sym.Name] = sym
	s.Order = append(s.Order, sym.Name)
	return sym, nil
}

// setResolved overwrites an already-declared symbol's type, used by the
// resolver once it has computed a final DataType/TypeName.
func (g *Graph) setResolved(scopeID ID, name string, dataType irtype.Type, typeName string) {
	s := g.Get(scopeID)
	if s == nil {
		return
	}
	sym := s.Symbols[name]
	sym.DataType = dataType
	sym.TypeName = typeName
	sym.State = Resolved
	s.Symbols[name] = sym
}

func (g *Graph) setState(scopeID ID, name string, state ResolutionState) {
	s := g.Get(scopeID)
	if s == nil {
		return
	}
	sym := s.Symbols[name]
	sym.State = state
	s.Symbols[name] = sym
}

// Children returns the ids of every scope whose ParentID is id, in
// allocation order. It is a linear scan, not an index — this core's
// operations never need child lookups on the hot path, only
// interactive tooling like the inspect TUI does.
func (g *Graph) Children(id ID) []ID {
	var out []ID
	for _, s := range g.AllScopes() {
		if s.ParentID == id {
			out = append(out, s.ID)
		}
	}
	return out
}

// AllScopes returns every scope in the graph, in allocation order.
func (g *Graph) AllScopes() []*Scope {
	return g.scopes[1:]
}

// FromScopes rebuilds a Graph from a flat, already-allocated scope list
// (id order, 1-based — scopes[0] has ID 1). It is meant for loading a
// previously-resolved graph back from a snapshot: both cursors start
// sitting on the global scope, just as New leaves them.
func FromScopes(scopes []*Scope) *Graph {
	g := &Graph{
		scopes:   make([]*Scope, 1, len(scopes)+1),
		nameToID: make(map[string]ID, len(scopes)),
	}
	for _, s := range scopes {
		g.scopes = append(g.scopes, s)
		if s.Name != "" {
			g.nameToID[s.Name] = s.ID
		}
	}
	g.buildStack = []ID{g.GlobalID()}
	g.navStack = []ID{g.GlobalID()}
	return g
}
