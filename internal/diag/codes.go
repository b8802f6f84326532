package diag

// Code identifies a diagnostic's kind. Codes are grouped by the phase
// that raises them, the same dense-registry-by-phase convention the
// teacher's own diag package uses, scoped down to this core's five
// failure kinds plus a duplicate-scope code and its informational
// progress codes.
type Code uint16

const (
	// Sema1xxx: scope-graph construction and lookup failures.
	SemaDuplicateSymbol Code = 1001
	SemaInvalidScope    Code = 1002
	SemaDuplicateScope  Code = 1003

	// Sema2xxx: IR type mapper failures.
	SemaUnknownType Code = 2001

	// Sema3xxx: type resolution failures.
	SemaInferenceFailed Code = 3001
	SemaCyclicInference Code = 3002

	// Sema9xxx: informational progress, emitted at Info severity only.
	SemaBuildStarted   Code = 9001
	SemaResolveStarted Code = 9002
	SemaResolveDone    Code = 9003
)

func (c Code) String() string {
	switch c {
	case SemaDuplicateSymbol:
		return "duplicate-symbol"
	case SemaInvalidScope:
		return "invalid-scope"
	case SemaDuplicateScope:
		return "duplicate-scope"
	case SemaUnknownType:
		return "unknown-type"
	case SemaInferenceFailed:
		return "inference-failed"
	case SemaCyclicInference:
		return "cyclic-inference"
	case SemaBuildStarted:
		return "build-started"
	case SemaResolveStarted:
		return "resolve-started"
	case SemaResolveDone:
		return "resolve-done"
	default:
		return "unknown-code"
	}
}
