package lint

import (
	"maplint/internal/hir"
	"maplint/internal/types"
)

// isUnitType reports whether a type carries no useful value: the unit type,
// the never type, or a zero-element tuple. Everything else, including
// single-element tuples, classifies false.
func (r *MapUnit) isUnitType(id types.TypeID) bool {
	tt, ok := r.cx.Types.Lookup(id)
	if !ok {
		return false
	}
	switch tt.Kind {
	case types.KindUnit, types.KindNever:
		return true
	case types.KindTuple:
		info, ok := r.cx.Types.TupleInfo(id)
		return ok && len(info.Elems) == 0
	default:
		return false
	}
}

// isUnitFunction reports whether expr denotes a named function value whose
// declared return type is unit-like. Generic signatures with unbound type
// variables classify false: the rule never fires on indeterminate types.
func (r *MapUnit) isUnitFunction(expr *hir.Expr) bool {
	if expr == nil || expr.Kind == hir.ExprClosure {
		// Closures take the dedicated path so the suggestion can reuse
		// the parameter binding.
		return false
	}
	info, ok := r.cx.Types.FnInfo(expr.Type)
	if !ok || info.IsGeneric() {
		return false
	}
	return r.isUnitType(info.Result)
}

// unitClosure matches an inline closure with exactly one parameter whose
// body evaluates to a unit-like value, returning the parameter binding and
// the body expression.
func (r *MapUnit) unitClosure(expr *hir.Expr) (hir.Param, *hir.Expr, bool) {
	if expr == nil || expr.Kind != hir.ExprClosure {
		return hir.Param{}, nil, false
	}
	data, ok := expr.Data.(hir.ClosureData)
	if !ok {
		return hir.Param{}, nil, false
	}
	if len(data.Params) != 1 {
		return hir.Param{}, nil, false
	}
	if data.Body == nil || !r.isUnitType(data.Body.Type) {
		return hir.Param{}, nil, false
	}
	return data.Params[0], data.Body, true
}
