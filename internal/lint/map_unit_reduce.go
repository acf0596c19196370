package lint

import (
	"maplint/internal/hir"
	"maplint/internal/source"
)

// reduceUnitExpr finds the minimal sub-span of a unit-valued closure body
// that can be substituted into the suggestion template. The body may carry
// surrounding braces and trailing separators; those are peeled recursively
// as long as doing so cannot change evaluation order or drop side effects.
// Returns false when no safe reduction exists.
func (r *MapUnit) reduceUnitExpr(expr *hir.Expr) (source.Span, bool) {
	if expr == nil || !r.isUnitType(expr.Type) {
		return source.Span{}, false
	}

	switch expr.Kind {
	case hir.ExprCall, hir.ExprMethodCall:
		// Calls can't be reduced any more.
		return expr.Span, true

	case hir.ExprBlock:
		data, ok := expr.Data.(hir.BlockData)
		if !ok || data.Block == nil {
			return source.Span{}, false
		}
		return r.reduceBlock(data.Block)

	default:
		return source.Span{}, false
	}
}

func (r *MapUnit) reduceBlock(block *hir.Block) (source.Span, bool) {
	switch {
	case len(block.Stmts) == 0 && block.Tail != nil:
		// A block holding only a trailing expression: { X } reduces to X.
		return r.reduceUnitExpr(block.Tail)

	case len(block.Stmts) == 1 && block.Tail == nil:
		return reduceSingleStmt(&block.Stmts[0])

	default:
		// For bodies with multiple statements it is difficult to produce a
		// correct suggestion span in all cases (multi-line closures
		// specifically), so no reduction is attempted.
		return source.Span{}, false
	}
}

func reduceSingleStmt(stmt *hir.Stmt) (source.Span, bool) {
	switch stmt.Kind {
	case hir.StmtLet:
		return stmt.Span, true
	case hir.StmtExpr:
		if data, ok := stmt.Data.(hir.ExprStmtData); ok && data.Expr != nil {
			return data.Expr.Span, true
		}
		return source.Span{}, false
	case hir.StmtSemi:
		// Keep the separator: inside the suggested braces, dropping it
		// could change what the block evaluates to.
		return stmt.Span, true
	default:
		// Items and other declarations cannot be relocated safely.
		return source.Span{}, false
	}
}
