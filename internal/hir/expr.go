package hir

import (
	"maplint/internal/source"
	"maplint/internal/types"
)

// ExprKind enumerates HIR expression kinds.
// These map closely to surface expression kinds with minimal desugaring.
type ExprKind uint8

const (
	// ExprLiteral represents literals (int, float, bool, string, unit).
	ExprLiteral ExprKind = iota
	// ExprVarRef represents a variable or function reference by name.
	ExprVarRef
	// ExprFieldAccess represents field access (expr.field).
	ExprFieldAccess
	// ExprCall represents a free function call f(args...).
	ExprCall
	// ExprMethodCall represents a method call recv.name(args...).
	ExprMethodCall
	// ExprClosure represents an inline closure literal |params| body.
	ExprClosure
	// ExprBlock represents a block expression { stmts; tail }.
	ExprBlock
	// ExprUnaryOp represents unary operators (-, !, &, &mut).
	ExprUnaryOp
	// ExprBinaryOp represents binary operators (+, -, ==, etc.).
	ExprBinaryOp
	// ExprIf represents a conditional expression.
	ExprIf
)

// String returns a human-readable name for the expression kind.
func (k ExprKind) String() string {
	switch k {
	case ExprLiteral:
		return "Literal"
	case ExprVarRef:
		return "VarRef"
	case ExprFieldAccess:
		return "FieldAccess"
	case ExprCall:
		return "Call"
	case ExprMethodCall:
		return "MethodCall"
	case ExprClosure:
		return "Closure"
	case ExprBlock:
		return "Block"
	case ExprUnaryOp:
		return "UnaryOp"
	case ExprBinaryOp:
		return "BinaryOp"
	case ExprIf:
		return "If"
	default:
		return "Unknown"
	}
}

// Expr represents an HIR expression with type information.
type Expr struct {
	Kind ExprKind
	Type types.TypeID // Resolved type, filled by the front end
	Span source.Span  // Source location for diagnostics and snippets
	Data ExprData     // Kind-specific payload
}

// ExprData is the interface for expression-specific data.
type ExprData interface {
	exprData()
}

// LiteralKind enumerates literal value kinds.
type LiteralKind uint8

const (
	LiteralInt LiteralKind = iota
	LiteralFloat
	LiteralBool
	LiteralString
	LiteralUnit
)

// LiteralData holds data for ExprLiteral.
type LiteralData struct {
	Kind LiteralKind
	Text string // Raw literal text
}

func (LiteralData) exprData() {}

// VarRefData holds data for ExprVarRef.
type VarRefData struct {
	Name string
}

func (VarRefData) exprData() {}

// FieldAccessData holds data for ExprFieldAccess.
type FieldAccessData struct {
	Object    *Expr
	FieldName string
}

func (FieldAccessData) exprData() {}

// CallData holds data for ExprCall.
type CallData struct {
	Callee *Expr   // The function value being called
	Args   []*Expr // Arguments
}

func (CallData) exprData() {}

// MethodCallData holds data for ExprMethodCall.
type MethodCallData struct {
	Recv   *Expr   // Receiver expression
	Method string  // Method name
	Args   []*Expr // Arguments, not counting the receiver
}

func (MethodCallData) exprData() {}

// Param is a declared closure parameter. PatSpan covers the bound pattern
// as written in the source.
type Param struct {
	Name    string
	Type    types.TypeID
	PatSpan source.Span
}

// ClosureData holds data for ExprClosure.
type ClosureData struct {
	Params []Param
	Body   *Expr
}

func (ClosureData) exprData() {}

// BlockData holds data for ExprBlock.
type BlockData struct {
	Block *Block
}

func (BlockData) exprData() {}

// UnaryOpData holds data for ExprUnaryOp.
type UnaryOpData struct {
	Op      string
	Operand *Expr
}

func (UnaryOpData) exprData() {}

// BinaryOpData holds data for ExprBinaryOp.
type BinaryOpData struct {
	Op    string
	Left  *Expr
	Right *Expr
}

func (BinaryOpData) exprData() {}

// IfData holds data for ExprIf. Else is nil when absent.
type IfData struct {
	Cond *Expr
	Then *Expr
	Else *Expr
}

func (IfData) exprData() {}
