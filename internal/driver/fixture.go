package driver

import (
	"strings"

	"maplint/internal/hir"
	"maplint/internal/source"
	"maplint/internal/types"
)

// demoSource backs DemoUnit. Every span in the built program points into
// this text so suggestions come out with real snippets.
const demoSource = `user.email.map(notify);
lookup.map(|name| greet(render(name)));
totals.map(bump);
queue.map(|job| { let step = plan(job); run(step); });
`

// DemoUnit builds a small typed program covering every rule outcome: a
// named unit function on an Option field, a reducible closure on a Result,
// a non-unit mapper that stays quiet, and a closure body too long to
// reduce. Used by `maplint demo` and by driver tests.
func DemoUnit() Unit {
	fs := source.NewFileSet()
	file := fs.AddVirtual("demo.sg", []byte(demoSource))
	in := types.NewInterner()
	b := in.Builtins()
	at := spanner{src: demoSource, file: file}

	optionStr := in.RegisterUnion("Option", []types.TypeID{b.String})
	optionInt := in.RegisterUnion("Option", []types.TypeID{b.Int})
	optionUnit := in.RegisterUnion("Option", []types.TypeID{b.Unit})
	resultStr := in.RegisterUnion("Result", []types.TypeID{b.String, b.String})
	resultUnit := in.RegisterUnion("Result", []types.TypeID{b.Unit, b.String})

	unitOfStr := in.RegisterFn([]types.TypeID{b.String}, b.Unit)
	unitOfInt := in.RegisterFn([]types.TypeID{b.Int}, b.Unit)
	strOfStr := in.RegisterFn([]types.TypeID{b.String}, b.String)
	intOfStr := in.RegisterFn([]types.TypeID{b.String}, b.Int)
	tupleOfInt := in.RegisterFn([]types.TypeID{b.Int}, in.RegisterTuple([]types.TypeID{b.Int}))

	stmts := make([]hir.Stmt, 0, 4)

	// user.email.map(notify);
	{
		recv := fixField(
			fixVar("user", b.Int, at.first("user")),
			"email", optionStr, at.first("user.email"),
		)
		mapper := fixVar("notify", unitOfStr, at.first("notify"))
		expr := fixMethod(recv, "map", []*hir.Expr{mapper}, optionUnit, at.first("user.email.map(notify)"))
		stmts = append(stmts, fixSemi(expr, at.first("user.email.map(notify);")))
	}

	// lookup.map(|name| greet(render(name)));
	{
		recv := fixVar("lookup", resultStr, at.first("lookup"))
		inner := fixCall(
			fixVar("render", strOfStr, at.first("render")),
			[]*hir.Expr{fixVar("name", b.String, at.nth("name", 1))},
			b.String, at.first("render(name)"),
		)
		body := fixCall(
			fixVar("greet", unitOfStr, at.first("greet")),
			[]*hir.Expr{inner},
			b.Unit, at.first("greet(render(name))"),
		)
		mapper := fixClosure(
			hir.Param{Name: "name", Type: b.String, PatSpan: at.first("name")},
			body, at.first("|name| greet(render(name))"),
		)
		expr := fixMethod(recv, "map", []*hir.Expr{mapper}, resultUnit, at.first("lookup.map(|name| greet(render(name)))"))
		stmts = append(stmts, fixSemi(expr, at.first("lookup.map(|name| greet(render(name)));")))
	}

	// totals.map(bump); — bump returns a one-element tuple, not unit.
	{
		recv := fixVar("totals", optionInt, at.first("totals"))
		mapper := fixVar("bump", tupleOfInt, at.first("bump"))
		expr := fixMethod(recv, "map", []*hir.Expr{mapper}, optionInt, at.first("totals.map(bump)"))
		stmts = append(stmts, fixSemi(expr, at.first("totals.map(bump);")))
	}

	// queue.map(|job| { let step = plan(job); run(step); });
	{
		recv := fixVar("queue", optionStr, at.first("queue"))
		planCall := fixCall(
			fixVar("plan", intOfStr, at.first("plan")),
			[]*hir.Expr{fixVar("job", b.String, at.nth("job", 1))},
			b.Int, at.first("plan(job)"),
		)
		runCall := fixCall(
			fixVar("run", unitOfInt, at.first("run")),
			[]*hir.Expr{fixVar("step", b.Int, at.nth("step", 1))},
			b.Unit, at.first("run(step)"),
		)
		blockSpan := at.first("{ let step = plan(job); run(step); }")
		block := &hir.Block{
			Stmts: []hir.Stmt{
				{Kind: hir.StmtLet, Span: at.first("let step = plan(job);"), Data: hir.LetData{Name: "step", Type: b.Int, Value: planCall}},
				fixSemi(runCall, at.first("run(step);")),
			},
			Span: blockSpan,
		}
		body := &hir.Expr{Kind: hir.ExprBlock, Type: b.Unit, Span: blockSpan, Data: hir.BlockData{Block: block}}
		mapper := fixClosure(
			hir.Param{Name: "job", Type: b.String, PatSpan: at.first("job")},
			body, at.first("|job| { let step = plan(job); run(step); }"),
		)
		expr := fixMethod(recv, "map", []*hir.Expr{mapper}, optionUnit, at.first("queue.map(|job| { let step = plan(job); run(step); })"))
		stmts = append(stmts, fixSemi(expr, at.first("queue.map(|job| { let step = plan(job); run(step); });")))
	}

	prog := &hir.Program{Funcs: []hir.Func{{
		Name:   "demo",
		Span:   source.Span{File: file, Start: 0, End: uint32(len(demoSource))},
		Result: b.Unit,
		Body:   &hir.Block{Stmts: stmts, Span: source.Span{File: file, Start: 0, End: uint32(len(demoSource))}},
	}}}

	return Unit{
		Files:      fs,
		Types:      in,
		Expansions: source.NewExpansionIndex(),
		Program:    prog,
		FileIDs:    []source.FileID{file},
	}
}

type spanner struct {
	src  string
	file source.FileID
}

// nth locates the n-th occurrence (0-based) of sub; missing substrings map
// to the empty span so the rule degrades to placeholders instead of
// panicking on a stale fixture.
func (s spanner) nth(sub string, n int) source.Span {
	from := 0
	idx := -1
	for i := 0; i <= n; i++ {
		next := strings.Index(s.src[from:], sub)
		if next < 0 {
			return source.Span{File: s.file}
		}
		idx = from + next
		from = idx + 1
	}
	return source.Span{File: s.file, Start: uint32(idx), End: uint32(idx + len(sub))}
}

func (s spanner) first(sub string) source.Span {
	return s.nth(sub, 0)
}

func fixVar(name string, ty types.TypeID, sp source.Span) *hir.Expr {
	return &hir.Expr{Kind: hir.ExprVarRef, Type: ty, Span: sp, Data: hir.VarRefData{Name: name}}
}

func fixField(obj *hir.Expr, field string, ty types.TypeID, sp source.Span) *hir.Expr {
	return &hir.Expr{Kind: hir.ExprFieldAccess, Type: ty, Span: sp, Data: hir.FieldAccessData{Object: obj, FieldName: field}}
}

func fixCall(callee *hir.Expr, args []*hir.Expr, ty types.TypeID, sp source.Span) *hir.Expr {
	return &hir.Expr{Kind: hir.ExprCall, Type: ty, Span: sp, Data: hir.CallData{Callee: callee, Args: args}}
}

func fixMethod(recv *hir.Expr, method string, args []*hir.Expr, ty types.TypeID, sp source.Span) *hir.Expr {
	return &hir.Expr{Kind: hir.ExprMethodCall, Type: ty, Span: sp, Data: hir.MethodCallData{Recv: recv, Method: method, Args: args}}
}

func fixClosure(param hir.Param, body *hir.Expr, sp source.Span) *hir.Expr {
	return &hir.Expr{Kind: hir.ExprClosure, Span: sp, Data: hir.ClosureData{Params: []hir.Param{param}, Body: body}}
}

func fixSemi(expr *hir.Expr, sp source.Span) hir.Stmt {
	return hir.Stmt{Kind: hir.StmtSemi, Span: sp, Data: hir.ExprStmtData{Expr: expr}}
}
