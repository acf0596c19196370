package lint

import (
	"strings"
	"testing"

	"maplint/internal/diag"
	"maplint/internal/hir"
	"maplint/internal/source"
	"maplint/internal/types"
)

// testEnv wires a virtual source file, a type interner and a collecting bag
// for one lint scenario. Spans are located by substring so fixtures stay
// readable.
type testEnv struct {
	t    *testing.T
	fs   *source.FileSet
	ts   *types.Interner
	file source.FileID
	src  string
	exp  *source.ExpansionIndex
	bag  *diag.Bag
}

func newTestEnv(t *testing.T, src string) *testEnv {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.AddVirtual("lint.sg", []byte(src))
	return &testEnv{
		t:    t,
		fs:   fs,
		ts:   types.NewInterner(),
		file: file,
		src:  src,
		bag:  diag.NewBag(8),
	}
}

func (e *testEnv) rule() *MapUnit {
	return NewMapUnit(Context{
		Types:      e.ts,
		Files:      e.fs,
		Expansions: e.exp,
		Reporter:   diag.BagReporter{Bag: e.bag},
	})
}

// span locates the n-th occurrence (0-based) of sub in the fixture source.
func (e *testEnv) spanN(sub string, n int) source.Span {
	e.t.Helper()
	idx := -1
	from := 0
	for i := 0; i <= n; i++ {
		next := strings.Index(e.src[from:], sub)
		if next < 0 {
			e.t.Fatalf("occurrence %d of %q not found in %q", n, sub, e.src)
		}
		idx = from + next
		from = idx + 1
	}
	return source.Span{File: e.file, Start: uint32(idx), End: uint32(idx + len(sub))}
}

func (e *testEnv) span(sub string) source.Span {
	e.t.Helper()
	return e.spanN(sub, 0)
}

// Type shorthands.

func (e *testEnv) optionOf(elem types.TypeID) types.TypeID {
	return e.ts.RegisterUnion("Option", []types.TypeID{elem})
}

func (e *testEnv) resultOf(ok, err types.TypeID) types.TypeID {
	return e.ts.RegisterUnion("Result", []types.TypeID{ok, err})
}

func (e *testEnv) unitFn(params ...types.TypeID) types.TypeID {
	return e.ts.RegisterFn(params, e.ts.Builtins().Unit)
}

// Expression and statement shorthands.

func varRef(name string, ty types.TypeID, sp source.Span) *hir.Expr {
	return &hir.Expr{Kind: hir.ExprVarRef, Type: ty, Span: sp, Data: hir.VarRefData{Name: name}}
}

func fieldAccess(obj *hir.Expr, field string, ty types.TypeID, sp source.Span) *hir.Expr {
	return &hir.Expr{Kind: hir.ExprFieldAccess, Type: ty, Span: sp, Data: hir.FieldAccessData{Object: obj, FieldName: field}}
}

func call(callee *hir.Expr, args []*hir.Expr, ty types.TypeID, sp source.Span) *hir.Expr {
	return &hir.Expr{Kind: hir.ExprCall, Type: ty, Span: sp, Data: hir.CallData{Callee: callee, Args: args}}
}

func methodCall(recv *hir.Expr, method string, args []*hir.Expr, ty types.TypeID, sp source.Span) *hir.Expr {
	return &hir.Expr{Kind: hir.ExprMethodCall, Type: ty, Span: sp, Data: hir.MethodCallData{Recv: recv, Method: method, Args: args}}
}

func closure(param hir.Param, body *hir.Expr, sp source.Span) *hir.Expr {
	return &hir.Expr{Kind: hir.ExprClosure, Span: sp, Data: hir.ClosureData{Params: []hir.Param{param}, Body: body}}
}

func blockExpr(block *hir.Block, ty types.TypeID, sp source.Span) *hir.Expr {
	return &hir.Expr{Kind: hir.ExprBlock, Type: ty, Span: sp, Data: hir.BlockData{Block: block}}
}

func semiStmt(expr *hir.Expr, sp source.Span) hir.Stmt {
	return hir.Stmt{Kind: hir.StmtSemi, Span: sp, Data: hir.ExprStmtData{Expr: expr}}
}

func exprStmt(expr *hir.Expr, sp source.Span) hir.Stmt {
	return hir.Stmt{Kind: hir.StmtExpr, Span: sp, Data: hir.ExprStmtData{Expr: expr}}
}

func letStmt(name string, value *hir.Expr, sp source.Span) hir.Stmt {
	return hir.Stmt{Kind: hir.StmtLet, Span: sp, Data: hir.LetData{Name: name, Value: value}}
}

// Assertion helpers.

func (e *testEnv) requireNoDiagnostics() {
	e.t.Helper()
	if e.bag.Len() != 0 {
		e.t.Fatalf("expected no diagnostics, got %d: %s",
			e.bag.Len(), diag.FormatShortDiagnostics(e.bag.Items(), e.fs, false))
	}
}

func (e *testEnv) requireOne(code diag.Code) diag.Diagnostic {
	e.t.Helper()
	if e.bag.Len() != 1 {
		e.t.Fatalf("expected exactly one diagnostic, got %d: %s",
			e.bag.Len(), diag.FormatShortDiagnostics(e.bag.Items(), e.fs, false))
	}
	d := e.bag.Items()[0]
	if d.Code != code {
		e.t.Fatalf("code = %v, want %v", d.Code, code)
	}
	return d
}

func requireSuggestion(t *testing.T, d diag.Diagnostic, want string, app diag.FixApplicability) {
	t.Helper()
	if len(d.Fixes) != 1 {
		t.Fatalf("fixes = %d, want 1", len(d.Fixes))
	}
	f := d.Fixes[0]
	if len(f.Edits) != 1 {
		t.Fatalf("edits = %d, want 1", len(f.Edits))
	}
	if got := f.Edits[0].NewText; got != want {
		t.Errorf("suggestion = %q, want %q", got, want)
	}
	if f.Applicability != app {
		t.Errorf("applicability = %v, want %v", f.Applicability, app)
	}
}
