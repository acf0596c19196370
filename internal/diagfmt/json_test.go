package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"maplint/internal/diag"
	"maplint/internal/fix"
	"maplint/internal/source"
)

func TestJSONStructure(t *testing.T) {
	fs := source.NewFileSet()
	content := "opt.map(log);\n"
	fileID := fs.AddVirtual("test.sg", []byte(content))

	stmtSpan := source.Span{File: fileID, Start: 0, End: 13}
	suggestion := "if let Some(_opt) = opt { log(...) }"
	f := fix.ReplaceSpan("try this", stmtSpan, suggestion, "opt.map(log);",
		fix.WithKind(diag.FixKindRewrite),
		fix.WithApplicability(diag.FixApplicabilityManualReview),
	)

	bag := diag.NewBag(4)
	bag.Add(diag.NewWarning(
		diag.LintOptionMapUnitFn,
		source.Span{File: fileID, Start: 0, End: 12},
		"called `map(f)` on an `Option` value where `f` is a unit function",
	).WithFixSuggestion(f))

	var buf bytes.Buffer
	err := JSON(&buf, bag, fs, JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeFixes:     true,
		IncludePreviews:  true,
	})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d, want 1/1", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Severity != "WARNING" {
		t.Errorf("severity = %q", d.Severity)
	}
	if d.Code != "LINT1001" {
		t.Errorf("code = %q", d.Code)
	}
	if d.Location.File != "test.sg" || d.Location.StartByte != 0 || d.Location.EndByte != 12 {
		t.Errorf("location = %+v", d.Location)
	}
	if d.Location.StartLine != 1 || d.Location.StartCol != 1 {
		t.Errorf("positions = %+v, want line 1 col 1", d.Location)
	}

	if len(d.Fixes) != 1 {
		t.Fatalf("fixes = %d, want 1", len(d.Fixes))
	}
	fj := d.Fixes[0]
	if fj.Title != "try this" || fj.Kind != "rewrite" || fj.Applicability != "manual-review" {
		t.Errorf("fix = %+v", fj)
	}
	if len(fj.Edits) != 1 {
		t.Fatalf("edits = %d, want 1", len(fj.Edits))
	}
	edit := fj.Edits[0]
	if edit.NewText != suggestion || edit.OldText != "opt.map(log);" {
		t.Errorf("edit = %+v", edit)
	}
	if len(edit.BeforeLines) != 1 || edit.BeforeLines[0] != "opt.map(log);" {
		t.Errorf("before lines = %v", edit.BeforeLines)
	}
	if len(edit.AfterLines) != 1 || edit.AfterLines[0] != suggestion {
		t.Errorf("after lines = %v", edit.AfterLines)
	}
}

func TestJSONMaxTruncatesOutput(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sg", []byte("opt.map(log);\nres.map(log);\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.NewWarning(diag.LintOptionMapUnitFn,
		source.Span{File: fileID, Start: 0, End: 12}, "first"))
	bag.Add(diag.NewWarning(diag.LintResultMapUnitFn,
		source.Span{File: fileID, Start: 14, End: 26}, "second"))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 1, PathMode: PathModeBasename})
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, want 1", out.Count)
	}
	if out.Diagnostics[0].Message != "first" {
		t.Errorf("kept = %q, want the first diagnostic", out.Diagnostics[0].Message)
	}

	// Bag itself stays untouched.
	if bag.Len() != 2 {
		t.Errorf("bag len = %d, want 2", bag.Len())
	}
}

func TestJSONOmitsDetailByDefault(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sg", []byte("opt.map(log);\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.NewWarning(
		diag.LintOptionMapUnitFn,
		source.Span{File: fileID, Start: 0, End: 12},
		"called `map(f)` on an `Option` value where `f` is a unit function",
	).WithNote(source.Span{File: fileID, Start: 0, End: 3}, "a note").
		WithFix("try this", diag.TextEdit{Span: source.Span{File: fileID, Start: 0, End: 13}, NewText: "x"}))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{PathMode: PathModeBasename})
	d := out.Diagnostics[0]
	if len(d.Notes) != 0 {
		t.Errorf("notes included without IncludeNotes: %v", d.Notes)
	}
	if len(d.Fixes) != 0 {
		t.Errorf("fixes included without IncludeFixes: %v", d.Fixes)
	}
	if d.Location.StartLine != 0 {
		t.Errorf("positions included without IncludePositions: %+v", d.Location)
	}
}
