package source

// ExpansionIndex records byte ranges that were produced by macro or template
// expansion rather than written by the user. Lint rules consult it to avoid
// analyzing generated code whose spans cannot be re-sliced reliably.
//
// A nil *ExpansionIndex is valid and reports nothing as expanded.
type ExpansionIndex struct {
	ranges map[FileID][]Span
}

// NewExpansionIndex creates an empty index.
func NewExpansionIndex() *ExpansionIndex {
	return &ExpansionIndex{ranges: make(map[FileID][]Span)}
}

// AddRange marks a span as expansion-originated. Empty spans are ignored.
func (ix *ExpansionIndex) AddRange(span Span) {
	if ix == nil || span.Empty() {
		return
	}
	ix.ranges[span.File] = append(ix.ranges[span.File], span)
}

// FromExpansion reports whether span lies inside any recorded expansion
// range. Overlap is not enough: a span that merely touches generated code
// still belongs to the user.
func (ix *ExpansionIndex) FromExpansion(span Span) bool {
	if ix == nil {
		return false
	}
	for _, r := range ix.ranges[span.File] {
		if r.Contains(span) {
			return true
		}
	}
	return false
}
