package lint

import (
	"strings"

	"maplint/internal/hir"
	"maplint/internal/source"
)

// snippetOr returns the literal source text of span, or fallback when the
// text cannot be extracted. Every piece of suggestion assembly goes through
// this single helper so all branches degrade to the same placeholder.
func (r *MapUnit) snippetOr(span source.Span, fallback string) string {
	if r.cx.Files == nil {
		return fallback
	}
	if text, ok := r.cx.Files.Snippet(span); ok {
		return text
	}
	return fallback
}

// letBindingName builds a readable name for the suggested binding:
//
//	x.field => x_field
//	y       => _y
//
// Anything else falls back to "_". The name is cosmetic and is not checked
// for collisions.
func (r *MapUnit) letBindingName(recv *hir.Expr) string {
	switch recv.Kind {
	case hir.ExprFieldAccess:
		return strings.ReplaceAll(r.snippetOr(recv.Span, "_"), ".", "_")
	case hir.ExprVarRef:
		return "_" + r.snippetOr(recv.Span, "")
	default:
		return "_"
	}
}
