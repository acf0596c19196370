package lint

import (
	"fmt"

	"maplint/internal/diag"
	"maplint/internal/fix"
	"maplint/internal/hir"
	"maplint/internal/source"
	"maplint/internal/types"
)

// MapUnit flags `opt.map(f)` and `res.map(f)` where f is a function or
// closure returning unit. Such calls discard the container and read better
// as an `if let` statement; the rule suggests that rewrite.
type MapUnit struct {
	cx Context
}

// NewMapUnit constructs the rule bound to cx.
func NewMapUnit(cx Context) *MapUnit {
	return &MapUnit{cx: cx}
}

type containerKind uint8

const (
	containerNone containerKind = iota
	containerOption
	containerResult
)

// CheckStmt inspects a single statement and emits at most one diagnostic.
func (r *MapUnit) CheckStmt(stmt *hir.Stmt) {
	if stmt == nil {
		return
	}
	// Expansion-originated statements cannot be re-sliced reliably.
	if r.cx.Expansions.FromExpansion(stmt.Span) {
		return
	}
	if stmt.Kind != hir.StmtSemi {
		return
	}
	data, ok := stmt.Data.(hir.ExprStmtData)
	if !ok || data.Expr == nil {
		return
	}
	recv, mapper, ok := mapCallArgs(data.Expr)
	if !ok {
		return
	}
	r.lintMapUnit(stmt, data.Expr, recv, mapper)
}

// mapCallArgs matches an expression whose outermost call is a
// single-argument method call named "map" and extracts the receiver and the
// mapper argument. The receiver may itself be a longer chain.
func mapCallArgs(expr *hir.Expr) (recv, mapper *hir.Expr, ok bool) {
	if expr == nil || expr.Kind != hir.ExprMethodCall {
		return nil, nil, false
	}
	call, ok := expr.Data.(hir.MethodCallData)
	if !ok || call.Method != "map" || len(call.Args) != 1 {
		return nil, nil, false
	}
	if call.Recv == nil || call.Args[0] == nil {
		return nil, nil, false
	}
	return call.Recv, call.Args[0], true
}

// containerKind matches the receiver type against the two known container
// shapes. Anything else aborts the rule.
func (r *MapUnit) containerKind(id types.TypeID) containerKind {
	info, ok := r.cx.Types.UnionInfo(id)
	if !ok {
		return containerNone
	}
	switch {
	case info.Name == "Option" && len(info.TypeArgs) == 1:
		return containerOption
	case info.Name == "Result" && len(info.TypeArgs) == 2:
		return containerResult
	}
	return containerNone
}

func suggestionMsg(functionType, mapType string) string {
	return fmt.Sprintf("called `map(f)` on an `%s` value where `f` is a unit %s", mapType, functionType)
}

func (r *MapUnit) lintMapUnit(stmt *hir.Stmt, expr, recv, mapper *hir.Expr) {
	var mapType, variant string
	var code diag.Code
	switch r.containerKind(recv.Type) {
	case containerOption:
		mapType, variant, code = "Option", "Some", diag.LintOptionMapUnitFn
	case containerResult:
		mapType, variant, code = "Result", "Ok", diag.LintResultMapUnitFn
	default:
		return
	}

	if r.isUnitFunction(mapper) {
		msg := suggestionMsg("function", mapType)
		suggestion := fmt.Sprintf(
			"if let %s(%s) = %s { %s(...) }",
			variant,
			r.letBindingName(recv),
			r.snippetOr(recv.Span, "_"),
			r.snippetOr(mapper.Span, "_"),
		)
		r.emit(code, expr.Span, stmt, msg, suggestion, diag.FixApplicabilityManualReview)
		return
	}

	binding, body, ok := r.unitClosure(mapper)
	if !ok {
		return
	}
	msg := suggestionMsg("closure", mapType)

	if reduced, ok := r.reduceUnitExpr(body); ok {
		suggestion := fmt.Sprintf(
			"if let %s(%s) = %s { %s }",
			variant,
			r.snippetOr(binding.PatSpan, "_"),
			r.snippetOr(recv.Span, "_"),
			r.snippetOr(reduced, "_"),
		)
		r.emit(code, expr.Span, stmt, msg, suggestion, diag.FixApplicabilityAlwaysSafe)
		return
	}

	// The body was too complex to reduce; suggest the shape with an elided
	// body instead of no suggestion at all.
	suggestion := fmt.Sprintf(
		"if let %s(%s) = %s { ... }",
		variant,
		r.snippetOr(binding.PatSpan, "_"),
		r.snippetOr(recv.Span, "_"),
	)
	r.emit(code, expr.Span, stmt, msg, suggestion, diag.FixApplicabilityManualReview)
}

// emit anchors the diagnostic at the map expression and attaches the
// suggestion as a replacement for the whole statement.
func (r *MapUnit) emit(code diag.Code, primary source.Span, stmt *hir.Stmt, msg, suggestion string, app diag.FixApplicability) {
	if r.cx.Reporter == nil {
		return
	}
	guard := r.snippetOr(stmt.Span, "")
	f := fix.ReplaceSpan("try this", stmt.Span, suggestion, guard,
		fix.WithKind(diag.FixKindRewrite),
		fix.WithApplicability(app),
	)
	diag.ReportWarning(r.cx.Reporter, code, primary, msg).
		WithFixSuggestion(f).
		Emit()
}
