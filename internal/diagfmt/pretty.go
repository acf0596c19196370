package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"maplint/internal/diag"
	"maplint/internal/source"
)

var (
	sevErrorColor = color.New(color.FgRed, color.Bold)
	sevWarnColor  = color.New(color.FgYellow, color.Bold)
	sevInfoColor  = color.New(color.FgCyan, color.Bold)
	codeColor     = color.New(color.Faint)
	markerColor   = color.New(color.FgGreen, color.Bold)
)

// Pretty renders diagnostics in a human-readable form. It walks bag.Items()
// in order (call bag.Sort() beforehand). Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the offending source line with a ^~~~ underline, then notes
// and fix suggestions when enabled.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	start, _ := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		formatPath(fs, d.Primary.File, opts.PathMode),
		start.Line, start.Col,
		severityLabel(d.Severity, opts.Color),
		codeLabel(d.Code, opts.Color),
		d.Message,
	)
	writeUnderline(w, fs, d.Primary, opts.Color)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			noteStart, _ := fs.Resolve(note.Span)
			fmt.Fprintf(w, "  %s:%d:%d: note: %s\n",
				formatPath(fs, note.Span.File, opts.PathMode),
				noteStart.Line, noteStart.Col,
				note.Msg,
			)
		}
	}

	if opts.ShowFixes {
		for _, f := range d.Fixes {
			for _, edit := range f.Edits {
				fmt.Fprintf(w, "  %s (%s): %s\n", f.Title, f.Applicability, edit.NewText)
			}
		}
	}
}

func severityLabel(sev diag.Severity, colorize bool) string {
	if !colorize {
		return sev.String()
	}
	switch sev {
	case diag.SevError:
		return sevErrorColor.Sprint(sev.String())
	case diag.SevWarning:
		return sevWarnColor.Sprint(sev.String())
	default:
		return sevInfoColor.Sprint(sev.String())
	}
}

func codeLabel(code diag.Code, colorize bool) string {
	if !colorize {
		return code.ID()
	}
	return codeColor.Sprint(code.ID())
}

func formatPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	f := fs.Get(id)
	if f == nil {
		return "<unknown>"
	}
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}

// writeUnderline prints the first source line of span with a caret marker.
// Column arithmetic uses display width so the marker stays aligned on
// wide-rune input.
func writeUnderline(w io.Writer, fs *source.FileSet, span source.Span, colorize bool) {
	f := fs.Get(span.File)
	if f == nil || span.Empty() {
		return
	}
	start, end := fs.Resolve(span)
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	col := int(start.Col) - 1
	if col > len(line) {
		col = len(line)
	}
	pad := runewidth.StringWidth(line[:col])

	// Underline the span portion on the first line only.
	length := len(line) - col
	if end.Line == start.Line {
		length = int(end.Col) - int(start.Col)
	}
	if length < 1 {
		length = 1
	}
	if col+length > len(line) {
		length = len(line) - col
	}
	width := runewidth.StringWidth(line[col:min(col+length, len(line))])
	if width < 1 {
		width = 1
	}

	marker := "^" + strings.Repeat("~", width-1)
	if colorize {
		marker = markerColor.Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), marker)
}
