package hir

// WalkStmts visits every statement reachable from block in source order,
// including statements nested inside block expressions, closures and
// conditionals. The visitor must not mutate the tree.
func WalkStmts(block *Block, visit func(*Stmt)) {
	if block == nil || visit == nil {
		return
	}
	for i := range block.Stmts {
		stmt := &block.Stmts[i]
		visit(stmt)
		walkStmtChildren(stmt, visit)
	}
	walkExpr(block.Tail, visit)
}

func walkStmtChildren(stmt *Stmt, visit func(*Stmt)) {
	switch data := stmt.Data.(type) {
	case LetData:
		walkExpr(data.Value, visit)
	case ExprStmtData:
		walkExpr(data.Expr, visit)
	case AssignData:
		walkExpr(data.Target, visit)
		walkExpr(data.Value, visit)
	case ReturnData:
		walkExpr(data.Value, visit)
	}
}

func walkExpr(expr *Expr, visit func(*Stmt)) {
	if expr == nil {
		return
	}
	switch data := expr.Data.(type) {
	case FieldAccessData:
		walkExpr(data.Object, visit)
	case CallData:
		walkExpr(data.Callee, visit)
		for _, arg := range data.Args {
			walkExpr(arg, visit)
		}
	case MethodCallData:
		walkExpr(data.Recv, visit)
		for _, arg := range data.Args {
			walkExpr(arg, visit)
		}
	case ClosureData:
		walkExpr(data.Body, visit)
	case BlockData:
		WalkStmts(data.Block, visit)
	case UnaryOpData:
		walkExpr(data.Operand, visit)
	case BinaryOpData:
		walkExpr(data.Left, visit)
		walkExpr(data.Right, visit)
	case IfData:
		walkExpr(data.Cond, visit)
		walkExpr(data.Then, visit)
		walkExpr(data.Else, visit)
	}
}
