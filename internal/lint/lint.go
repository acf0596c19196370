// Package lint implements statement-level lint rules over the typed HIR.
//
// Rules are pure: they read the HIR, the type interner and the source text,
// and emit diagnostics through a diag.Reporter. Nothing is mutated, so one
// rule instance may be driven over many statements and several instances may
// run concurrently on disjoint reporters.
package lint

import (
	"maplint/internal/diag"
	"maplint/internal/hir"
	"maplint/internal/source"
	"maplint/internal/types"
)

// Context carries the read-only collaborators a rule needs: the type
// oracle, the source text for snippet extraction, the expansion-origin
// predicate and the diagnostic sink.
type Context struct {
	Types      *types.Interner
	Files      *source.FileSet
	Expansions *source.ExpansionIndex
	Reporter   diag.Reporter
}

// Rule is a statement-level check.
type Rule interface {
	CheckStmt(stmt *hir.Stmt)
}

// All returns every registered rule bound to cx.
func All(cx Context) []Rule {
	return []Rule{
		NewMapUnit(cx),
	}
}
