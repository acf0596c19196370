package hir

import (
	"maplint/internal/source"
)

// Block represents a sequence of statements with an optional trailing
// expression whose value the block evaluates to.
type Block struct {
	Stmts []Stmt
	Tail  *Expr // nil when the block ends with a statement
	Span  source.Span
}

// IsEmpty returns true if the block has no statements and no tail.
func (b *Block) IsEmpty() bool {
	return len(b.Stmts) == 0 && b.Tail == nil
}

// LastStmt returns the last statement in the block, or nil if empty.
func (b *Block) LastStmt() *Stmt {
	if len(b.Stmts) == 0 {
		return nil
	}
	return &b.Stmts[len(b.Stmts)-1]
}
