package hir

import (
	"maplint/internal/source"
	"maplint/internal/types"
)

// StmtKind enumerates HIR statement kinds.
type StmtKind uint8

const (
	// StmtLet represents a local variable declaration (let x = ...;).
	StmtLet StmtKind = iota
	// StmtExpr represents an expression statement without a trailing
	// separator (block-like expressions in statement position).
	StmtExpr
	// StmtSemi represents an expression statement terminated by an
	// explicit separator. The distinction matters for suggestion spans:
	// dropping the separator can change what a block evaluates to.
	StmtSemi
	// StmtItem represents a nested item declaration (fn, type, const).
	// Items are position-independent and cannot be relocated by fixes.
	StmtItem
	// StmtAssign represents assignment (lhs = rhs;).
	StmtAssign
	// StmtReturn represents an explicit return statement.
	StmtReturn
)

// String returns a human-readable name for the statement kind.
func (k StmtKind) String() string {
	switch k {
	case StmtLet:
		return "Let"
	case StmtExpr:
		return "Expr"
	case StmtSemi:
		return "Semi"
	case StmtItem:
		return "Item"
	case StmtAssign:
		return "Assign"
	case StmtReturn:
		return "Return"
	default:
		return "Unknown"
	}
}

// Stmt represents an HIR statement.
type Stmt struct {
	Kind StmtKind
	Span source.Span
	Data StmtData // Kind-specific payload
}

// StmtData is the interface for statement-specific data.
type StmtData interface {
	stmtData()
}

// LetData holds data for StmtLet.
type LetData struct {
	Name  string
	Type  types.TypeID // Declared or inferred type
	Value *Expr        // Initializer (nil if none)
	IsMut bool
}

func (LetData) stmtData() {}

// ExprStmtData holds data for StmtExpr and StmtSemi.
type ExprStmtData struct {
	Expr *Expr
}

func (ExprStmtData) stmtData() {}

// ItemStmtData holds data for StmtItem.
type ItemStmtData struct {
	Name string
}

func (ItemStmtData) stmtData() {}

// AssignData holds data for StmtAssign.
type AssignData struct {
	Target *Expr
	Value  *Expr
}

func (AssignData) stmtData() {}

// ReturnData holds data for StmtReturn. Value is nil for bare returns.
type ReturnData struct {
	Value *Expr
}

func (ReturnData) stmtData() {}
