package scope

import "fmt"

// DuplicateSymbolError reports that name was already declared in the
// scope currently under construction.
type DuplicateSymbolError struct {
	ScopeID ID
	Name    string
}

func (e *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("symbol %q already declared in scope %d", e.Name, e.ScopeID)
}

// DuplicateScopeError reports that EnterNamedScope was asked to create a
// scope whose name already exists. Per this module's reading of the
// original design notes, a duplicate named scope is rejected outright
// rather than silently reused or overwritten.
type DuplicateScopeError struct {
	Name string
}

func (e *DuplicateScopeError) Error() string {
	return fmt.Sprintf("scope %q already exists", e.Name)
}

// UnknownTypeError reports that a type name did not match any primitive
// keyword, array suffix, or declared Class/Enum symbol.
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type %q", e.Name)
}

// InferenceFailedError reports that a symbol's type could not be derived
// from its initializer expression after all of its dependencies were
// resolved.
type InferenceFailedError struct {
	Name string
}

func (e *InferenceFailedError) Error() string {
	return fmt.Sprintf("could not infer type of %q", e.Name)
}

// CyclicInferenceError reports that resolving name's type requires
// resolving name's type, directly or transitively.
type CyclicInferenceError struct {
	Name string
}

func (e *CyclicInferenceError) Error() string {
	return fmt.Sprintf("cyclic type dependency involving %q", e.Name)
}

// InvalidScopeError reports an operation against a scope id or name that
// does not exist in the Graph.
type InvalidScopeError struct {
	ID   ID
	Name string
}

func (e *InvalidScopeError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("no scope named %q", e.Name)
	}
	return fmt.Sprintf("invalid scope id %d", e.ID)
}
