package scope

// ID identifies a scope inside a Graph's arena.
type ID uint32

// NoScope is the sentinel for "no scope" — the global scope's parent, and
// the zero value of ID.
const NoScope ID = 0

// IsValid reports whether id refers to an allocated scope.
func (id ID) IsValid() bool { return id != NoScope }
