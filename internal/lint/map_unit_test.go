package lint

import (
	"strings"
	"testing"

	"maplint/internal/diag"
	"maplint/internal/hir"
	"maplint/internal/source"
	"maplint/internal/types"
)

func TestMapUnit_NamedFunctionOnOption(t *testing.T) {
	e := newTestEnv(t, "opt.map(log);")
	b := e.ts.Builtins()

	recv := varRef("opt", e.optionOf(b.String), e.span("opt"))
	mapper := varRef("log", e.unitFn(b.String), e.span("log"))
	expr := methodCall(recv, "map", []*hir.Expr{mapper}, e.optionOf(b.Unit), e.span("opt.map(log)"))
	stmt := semiStmt(expr, e.span("opt.map(log);"))

	e.rule().CheckStmt(&stmt)

	d := e.requireOne(diag.LintOptionMapUnitFn)
	if d.Severity != diag.SevWarning {
		t.Errorf("severity = %v, want warning", d.Severity)
	}
	if want := "called `map(f)` on an `Option` value where `f` is a unit function"; d.Message != want {
		t.Errorf("message = %q, want %q", d.Message, want)
	}
	if d.Primary != expr.Span {
		t.Errorf("primary span = %v, want %v", d.Primary, expr.Span)
	}
	requireSuggestion(t, d, "if let Some(_opt) = opt { log(...) }", diag.FixApplicabilityManualReview)

	f := d.Fixes[0]
	if f.Title != "try this" {
		t.Errorf("fix title = %q", f.Title)
	}
	if f.Kind != diag.FixKindRewrite {
		t.Errorf("fix kind = %v, want rewrite", f.Kind)
	}
	if edit := f.Edits[0]; edit.Span != stmt.Span || edit.OldText != "opt.map(log);" {
		t.Errorf("edit = %+v, want replacement of whole statement", edit)
	}
}

func TestMapUnit_ClosureOnResult(t *testing.T) {
	e := newTestEnv(t, "res.map(|msg| log(format(msg)));")
	b := e.ts.Builtins()

	recv := varRef("res", e.resultOf(b.String, b.String), e.span("res"))

	formatTy := e.ts.RegisterFn([]types.TypeID{b.String}, b.String)
	inner := call(
		varRef("format", formatTy, e.span("format")),
		[]*hir.Expr{varRef("msg", b.String, e.spanN("msg", 1))},
		b.String,
		e.span("format(msg)"),
	)
	body := call(
		varRef("log", e.unitFn(b.String), e.span("log")),
		[]*hir.Expr{inner},
		b.Unit,
		e.span("log(format(msg))"),
	)
	param := hir.Param{Name: "msg", Type: b.String, PatSpan: e.span("msg")}
	mapper := closure(param, body, e.span("|msg| log(format(msg))"))

	expr := methodCall(recv, "map", []*hir.Expr{mapper}, e.resultOf(b.Unit, b.String), e.span("res.map(|msg| log(format(msg)))"))
	stmt := semiStmt(expr, e.span("res.map(|msg| log(format(msg)));"))

	e.rule().CheckStmt(&stmt)

	d := e.requireOne(diag.LintResultMapUnitFn)
	if want := "called `map(f)` on an `Result` value where `f` is a unit closure"; d.Message != want {
		t.Errorf("message = %q, want %q", d.Message, want)
	}
	requireSuggestion(t, d, "if let Ok(msg) = res { log(format(msg)) }", diag.FixApplicabilityAlwaysSafe)
}

func TestMapUnit_MultiStatementClosureElidesBody(t *testing.T) {
	e := newTestEnv(t, "x.field.map(|v| { let y = f(v); g(y); });")
	b := e.ts.Builtins()

	obj := varRef("x", b.Int, e.span("x"))
	recv := fieldAccess(obj, "field", e.optionOf(b.String), e.span("x.field"))

	fTy := e.ts.RegisterFn([]types.TypeID{b.String}, b.Int)
	fCall := call(
		varRef("f", fTy, e.span("f(v)")),
		[]*hir.Expr{varRef("v", b.String, e.spanN("v", 1))},
		b.Int,
		e.span("f(v)"),
	)
	gCall := call(
		varRef("g", e.unitFn(b.Int), e.span("g")),
		[]*hir.Expr{varRef("y", b.Int, e.spanN("y", 1))},
		b.Unit,
		e.span("g(y)"),
	)
	block := &hir.Block{
		Stmts: []hir.Stmt{
			letStmt("y", fCall, e.span("let y = f(v);")),
			semiStmt(gCall, e.span("g(y);")),
		},
		Span: e.span("{ let y = f(v); g(y); }"),
	}
	body := blockExpr(block, b.Unit, block.Span)
	param := hir.Param{Name: "v", Type: b.String, PatSpan: e.span("v")}
	mapper := closure(param, body, e.span("|v| { let y = f(v); g(y); }"))

	expr := methodCall(recv, "map", []*hir.Expr{mapper}, e.optionOf(b.Unit), e.span("x.field.map(|v| { let y = f(v); g(y); })"))
	stmt := semiStmt(expr, e.span("x.field.map(|v| { let y = f(v); g(y); });"))

	e.rule().CheckStmt(&stmt)

	d := e.requireOne(diag.LintOptionMapUnitFn)
	requireSuggestion(t, d, "if let Some(v) = x.field { ... }", diag.FixApplicabilityManualReview)
}

func TestMapUnit_FieldReceiverBindingName(t *testing.T) {
	e := newTestEnv(t, "x.field.map(log);")
	b := e.ts.Builtins()

	obj := varRef("x", b.Int, e.span("x"))
	recv := fieldAccess(obj, "field", e.optionOf(b.String), e.span("x.field"))
	mapper := varRef("log", e.unitFn(b.String), e.span("log"))
	expr := methodCall(recv, "map", []*hir.Expr{mapper}, e.optionOf(b.Unit), e.span("x.field.map(log)"))
	stmt := semiStmt(expr, e.span("x.field.map(log);"))

	e.rule().CheckStmt(&stmt)

	d := e.requireOne(diag.LintOptionMapUnitFn)
	requireSuggestion(t, d, "if let Some(x_field) = x.field { log(...) }", diag.FixApplicabilityManualReview)
}

func TestMapUnit_NonUnitMapperIsQuiet(t *testing.T) {
	e := newTestEnv(t, "x.map(f);")
	b := e.ts.Builtins()

	// f returns a single-element tuple, which carries a value.
	pairTy := e.ts.RegisterTuple([]types.TypeID{b.Int})
	fTy := e.ts.RegisterFn([]types.TypeID{b.String}, pairTy)

	recv := varRef("x", e.optionOf(b.String), e.span("x"))
	mapper := varRef("f", fTy, e.span("f"))
	expr := methodCall(recv, "map", []*hir.Expr{mapper}, e.optionOf(pairTy), e.span("x.map(f)"))
	stmt := semiStmt(expr, e.span("x.map(f);"))

	e.rule().CheckStmt(&stmt)
	e.requireNoDiagnostics()
}

func TestMapUnit_GenericMapperIsQuiet(t *testing.T) {
	e := newTestEnv(t, "x.map(drop);")
	b := e.ts.Builtins()

	tp := e.ts.RegisterParam("T")
	dropTy := e.ts.RegisterGenericFn([]types.TypeID{tp}, b.Unit, []types.TypeID{tp})

	recv := varRef("x", e.optionOf(b.String), e.span("x"))
	mapper := varRef("drop", dropTy, e.span("drop"))
	expr := methodCall(recv, "map", []*hir.Expr{mapper}, e.optionOf(b.Unit), e.span("x.map(drop)"))
	stmt := semiStmt(expr, e.span("x.map(drop);"))

	e.rule().CheckStmt(&stmt)
	e.requireNoDiagnostics()
}

func TestMapUnit_SkipsQuietShapes(t *testing.T) {
	e := newTestEnv(t, "x.map(log);")
	b := e.ts.Builtins()

	optStr := e.optionOf(b.String)
	logTy := e.unitFn(b.String)
	mkExpr := func(recvTy types.TypeID, method string, argc int) *hir.Expr {
		args := make([]*hir.Expr, argc)
		for i := range args {
			args[i] = varRef("log", logTy, e.span("log"))
		}
		return &hir.Expr{
			Kind: hir.ExprMethodCall,
			Type: e.optionOf(b.Unit),
			Span: e.span("x.map(log)"),
			Data: hir.MethodCallData{Recv: varRef("x", recvTy, e.span("x")), Method: method, Args: args},
		}
	}
	full := e.span("x.map(log);")

	tests := []struct {
		name string
		stmt hir.Stmt
	}{
		{"expression statement without separator", exprStmt(mkExpr(optStr, "map", 1), full)},
		{"method is not map", semiStmt(mkExpr(optStr, "map_or", 1), full)},
		{"wrong arity", semiStmt(mkExpr(optStr, "map", 2), full)},
		{"receiver is not a container", semiStmt(mkExpr(b.String, "map", 1), full)},
		{"receiver union is not Option or Result", semiStmt(mkExpr(e.ts.RegisterUnion("Either", []types.TypeID{b.String, b.Int}), "map", 1), full)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e.rule().CheckStmt(&tc.stmt)
			e.requireNoDiagnostics()
		})
	}
}

func TestMapUnit_ExpansionOriginIsQuiet(t *testing.T) {
	e := newTestEnv(t, "opt.map(log);")
	b := e.ts.Builtins()

	stmtSpan := e.span("opt.map(log);")
	e.exp = source.NewExpansionIndex()
	e.exp.AddRange(stmtSpan)

	recv := varRef("opt", e.optionOf(b.String), e.span("opt"))
	mapper := varRef("log", e.unitFn(b.String), e.span("log"))
	expr := methodCall(recv, "map", []*hir.Expr{mapper}, e.optionOf(b.Unit), e.span("opt.map(log)"))
	stmt := semiStmt(expr, stmtSpan)

	e.rule().CheckStmt(&stmt)
	e.requireNoDiagnostics()
}

func TestMapUnit_UnresolvableSnippetFallsBack(t *testing.T) {
	e := newTestEnv(t, "opt.map(log);")
	b := e.ts.Builtins()

	bogus := source.Span{File: e.file, Start: 500, End: 600}
	recv := varRef("opt", e.optionOf(b.String), bogus)
	mapper := varRef("log", e.unitFn(b.String), e.span("log"))
	expr := methodCall(recv, "map", []*hir.Expr{mapper}, e.optionOf(b.Unit), e.span("opt.map(log)"))
	stmt := semiStmt(expr, e.span("opt.map(log);"))

	e.rule().CheckStmt(&stmt)

	d := e.requireOne(diag.LintOptionMapUnitFn)
	got := d.Fixes[0].Edits[0].NewText
	if !strings.Contains(got, "= _ {") {
		t.Errorf("suggestion = %q, want receiver placeholder", got)
	}
}

func TestMapUnit_NilStatement(t *testing.T) {
	e := newTestEnv(t, "")
	e.rule().CheckStmt(nil)
	e.requireNoDiagnostics()
}

func TestUnitTypeBoundary(t *testing.T) {
	e := newTestEnv(t, "")
	b := e.ts.Builtins()
	r := e.rule()

	tests := []struct {
		name string
		id   types.TypeID
		want bool
	}{
		{"unit", b.Unit, true},
		{"never", b.Never, true},
		{"empty tuple", e.ts.RegisterTuple(nil), true},
		{"single-element tuple", e.ts.RegisterTuple([]types.TypeID{b.Int}), false},
		{"int", b.Int, false},
		{"string", b.String, false},
		{"no type", types.NoTypeID, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.isUnitType(tc.id); got != tc.want {
				t.Errorf("isUnitType(%v) = %v, want %v", tc.id, got, tc.want)
			}
		})
	}
}

func TestLetBindingName(t *testing.T) {
	e := newTestEnv(t, "x.field.inner ; y ; 1+2")
	b := e.ts.Builtins()
	r := e.rule()

	field := fieldAccess(varRef("x", b.Int, e.span("x")), "inner", b.Int, e.span("x.field.inner"))
	plain := varRef("y", b.Int, e.span("y"))
	other := &hir.Expr{Kind: hir.ExprBinaryOp, Type: b.Int, Span: e.span("1+2")}

	tests := []struct {
		name string
		recv *hir.Expr
		want string
	}{
		{"field access", field, "x_field_inner"},
		{"plain variable", plain, "_y"},
		{"anything else", other, "_"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.letBindingName(tc.recv); got != tc.want {
				t.Errorf("letBindingName = %q, want %q", got, tc.want)
			}
		})
	}
}
