package hir

import (
	"maplint/internal/source"
	"maplint/internal/types"
)

// Func is a lowered function body, the host's unit of traversal.
type Func struct {
	Name   string
	Span   source.Span
	Result types.TypeID
	Body   *Block
}

// Program is a set of lowered functions sharing one FileSet and one type
// interner.
type Program struct {
	Funcs []Func
}
