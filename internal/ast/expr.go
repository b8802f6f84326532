package ast

// ExprKind tags the shape stored at an ExprID's payload slot.
type ExprKind uint8

const (
	ExprInvalid ExprKind = iota
	ExprLiteral
	ExprIdent
	ExprBinary
	ExprUnary
	ExprCall
	ExprMember
	ExprAssign
	ExprNew
	ExprThis
)

func (k ExprKind) String() string {
	switch k {
	case ExprLiteral:
		return "literal"
	case ExprIdent:
		return "ident"
	case ExprBinary:
		return "binary"
	case ExprUnary:
		return "unary"
	case ExprCall:
		return "call"
	case ExprMember:
		return "member"
	case ExprAssign:
		return "assign"
	case ExprNew:
		return "new"
	case ExprThis:
		return "this"
	default:
		return "invalid"
	}
}

// LiteralKind distinguishes the literal forms spec.md's infer() table
// handles explicitly.
type LiteralKind uint8

const (
	LiteralInteger LiteralKind = iota
	LiteralFloat
	LiteralBoolean
	LiteralString
)

// BinaryOp enumerates the operator families infer() branches on:
// comparison/logical operators always produce bool, arithmetic operators
// fall back to the operand types.
type BinaryOp uint8

const (
	BinaryAdd BinaryOp = iota
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryMod
	BinaryEq
	BinaryNotEq
	BinaryLess
	BinaryLessEq
	BinaryGreater
	BinaryGreaterEq
	BinaryAnd
	BinaryOr
)

// IsBoolResult reports whether op always yields bool regardless of its
// operands' types (comparisons and logical connectives).
func (op BinaryOp) IsBoolResult() bool {
	switch op {
	case BinaryEq, BinaryNotEq, BinaryLess, BinaryLessEq, BinaryGreater, BinaryGreaterEq, BinaryAnd, BinaryOr:
		return true
	default:
		return false
	}
}

// UnaryOp enumerates the prefix operators infer() handles: Not always
// yields bool, Neg/Plus forward the operand's type.
type UnaryOp uint8

const (
	UnaryNot UnaryOp = iota
	UnaryNeg
	UnaryPlus
)

// Expr is the tag+payload record stored in the expression arena.
type Expr struct {
	Kind    ExprKind
	Payload uint32
}

// LiteralExpr is a literal value. Value carries the literal's source text;
// the builder never evaluates it, it only inspects Kind when inferring.
type LiteralExpr struct {
	Kind  LiteralKind
	Value string
}

// IdentExpr is a bare name reference, resolved against the scope graph at
// inference time rather than at parse time.
type IdentExpr struct {
	Name string
}

// BinaryExpr is a two-operand operator expression.
type BinaryExpr struct {
	Op    BinaryOp
	Left  ExprID
	Right ExprID
}

// UnaryExpr is a one-operand prefix operator expression.
type UnaryExpr struct {
	Op      UnaryOp
	Operand ExprID
}

// CallExpr is a function call or a member-function call, depending on
// whether Target is an ExprMember or something else (typically ExprIdent).
type CallExpr struct {
	Target ExprID
	Args   []ExprID
}

// MemberExpr is `Target.Name` — a field or method access.
type MemberExpr struct {
	Target ExprID
	Name   string
}

// AssignExpr is `Target = Source`. Its own inferred type is always
// Source's, matching spec.md's infer() table.
type AssignExpr struct {
	Target ExprID
	Source ExprID
}

// NewExpr is `new TypeName(Args...)`. Its inferred type is TypeName's
// spelling, provided TypeName resolves to a class or enum symbol.
type NewExpr struct {
	TypeName string
	Args     []ExprID
}

// ThisExpr is the implicit receiver reference inside a member function
// body.
type ThisExpr struct{}

// Exprs is the expression arena: one tagged Expr per node plus one
// payload arena per kind, mirroring the teacher's per-kind-arena layout.
type Exprs struct {
	nodes    *Arena[Expr]
	literals *Arena[LiteralExpr]
	idents   *Arena[IdentExpr]
	binaries *Arena[BinaryExpr]
	unaries  *Arena[UnaryExpr]
	calls    *Arena[CallExpr]
	members  *Arena[MemberExpr]
	assigns  *Arena[AssignExpr]
	news     *Arena[NewExpr]
	thisExpr *Arena[ThisExpr]
}

// NewExprs allocates an empty expression arena.
func NewExprs() *Exprs {
	return &Exprs{
		nodes:    NewArena[Expr](0),
		literals: NewArena[LiteralExpr](0),
		idents:   NewArena[IdentExpr](0),
		binaries: NewArena[BinaryExpr](0),
		unaries:  NewArena[UnaryExpr](0),
		calls:    NewArena[CallExpr](0),
		members:  NewArena[MemberExpr](0),
		assigns:  NewArena[AssignExpr](0),
		news:     NewArena[NewExpr](0),
		thisExpr: NewArena[ThisExpr](0),
	}
}

func (e *Exprs) new(kind ExprKind, payload uint32) ExprID {
	return ExprID(e.nodes.Allocate(Expr{Kind: kind, Payload: payload}))
}

// Kind returns the node kind stored at id, or ExprInvalid for an
// unallocated id.
func (e *Exprs) Kind(id ExprID) ExprKind {
	n := e.nodes.Get(uint32(id))
	if n == nil {
		return ExprInvalid
	}
	return n.Kind
}

func (e *Exprs) NewLiteral(kind LiteralKind, value string) ExprID {
	p := e.literals.Allocate(LiteralExpr{Kind: kind, Value: value})
	return e.new(ExprLiteral, p)
}

// Literal returns the literal payload at id, or ok=false if id is not an
// ExprLiteral.
func (e *Exprs) Literal(id ExprID) (*LiteralExpr, bool) {
	n := e.nodes.Get(uint32(id))
	if n == nil || n.Kind != ExprLiteral {
		return nil, false
	}
	return e.literals.Get(n.Payload), true
}

func (e *Exprs) NewIdent(name string) ExprID {
	p := e.idents.Allocate(IdentExpr{Name: name})
	return e.new(ExprIdent, p)
}

func (e *Exprs) Ident(id ExprID) (*IdentExpr, bool) {
	n := e.nodes.Get(uint32(id))
	if n == nil || n.Kind != ExprIdent {
		return nil, false
	}
	return e.idents.Get(n.Payload), true
}

func (e *Exprs) NewBinary(op BinaryOp, left, right ExprID) ExprID {
	p := e.binaries.Allocate(BinaryExpr{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, p)
}

func (e *Exprs) Binary(id ExprID) (*BinaryExpr, bool) {
	n := e.nodes.Get(uint32(id))
	if n == nil || n.Kind != ExprBinary {
		return nil, false
	}
	return e.binaries.Get(n.Payload), true
}

func (e *Exprs) NewUnary(op UnaryOp, operand ExprID) ExprID {
	p := e.unaries.Allocate(UnaryExpr{Op: op, Operand: operand})
	return e.new(ExprUnary, p)
}

func (e *Exprs) Unary(id ExprID) (*UnaryExpr, bool) {
	n := e.nodes.Get(uint32(id))
	if n == nil || n.Kind != ExprUnary {
		return nil, false
	}
	return e.unaries.Get(n.Payload), true
}

func (e *Exprs) NewCall(target ExprID, args []ExprID) ExprID {
	p := e.calls.Allocate(CallExpr{Target: target, Args: args})
	return e.new(ExprCall, p)
}

func (e *Exprs) Call(id ExprID) (*CallExpr, bool) {
	n := e.nodes.Get(uint32(id))
	if n == nil || n.Kind != ExprCall {
		return nil, false
	}
	return e.calls.Get(n.Payload), true
}

func (e *Exprs) NewMember(target ExprID, name string) ExprID {
	p := e.members.Allocate(MemberExpr{Target: target, Name: name})
	return e.new(ExprMember, p)
}

func (e *Exprs) Member(id ExprID) (*MemberExpr, bool) {
	n := e.nodes.Get(uint32(id))
	if n == nil || n.Kind != ExprMember {
		return nil, false
	}
	return e.members.Get(n.Payload), true
}

func (e *Exprs) NewAssign(target, source ExprID) ExprID {
	p := e.assigns.Allocate(AssignExpr{Target: target, Source: source})
	return e.new(ExprAssign, p)
}

func (e *Exprs) Assign(id ExprID) (*AssignExpr, bool) {
	n := e.nodes.Get(uint32(id))
	if n == nil || n.Kind != ExprAssign {
		return nil, false
	}
	return e.assigns.Get(n.Payload), true
}

func (e *Exprs) NewNew(typeName string, args []ExprID) ExprID {
	p := e.news.Allocate(NewExpr{TypeName: typeName, Args: args})
	return e.new(ExprNew, p)
}

func (e *Exprs) New(id ExprID) (*NewExpr, bool) {
	n := e.nodes.Get(uint32(id))
	if n == nil || n.Kind != ExprNew {
		return nil, false
	}
	return e.news.Get(n.Payload), true
}

func (e *Exprs) NewThis() ExprID {
	p := e.thisExpr.Allocate(ThisExpr{})
	return e.new(ExprThis, p)
}

func (e *Exprs) This(id ExprID) (*ThisExpr, bool) {
	n := e.nodes.Get(uint32(id))
	if n == nil || n.Kind != ExprThis {
		return nil, false
	}
	return e.thisExpr.Get(n.Payload), true
}
