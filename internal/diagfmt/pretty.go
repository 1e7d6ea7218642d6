package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"jskw/internal/diag"
	"jskw/internal/source"
)

type palette struct {
	err, warn, info, note, path, caret, dim *color.Color
}

func newPalette(on bool) palette {
	p := palette{
		err:   color.New(color.FgRed, color.Bold),
		warn:  color.New(color.FgYellow, color.Bold),
		info:  color.New(color.FgCyan),
		note:  color.New(color.FgBlue, color.Bold),
		path:  color.New(color.Bold),
		caret: color.New(color.FgGreen, color.Bold),
		dim:   color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.path, p.caret, p.dim} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по items (ожидается bag.Sort() заранее). Для каждой печатает
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes.
// path is used for diagnostics whose file never loaded.
func Pretty(w io.Writer, items []diag.Diagnostic, fs *source.FileSet, path string, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	for _, d := range items {
		loc, file, ok := locate(d.Primary, fs, path, opts)
		sev := p.severity(d.Severity)
		if _, err := fmt.Fprintf(w, "%s: %s %s: %s\n",
			p.path.Sprint(loc), sev.Sprint(d.Severity.String()), sev.Sprint(d.Code.ID()), d.Message); err != nil {
			return err
		}
		if ok {
			if err := writeSnippet(w, fs, file, d.Primary, opts.Context, p); err != nil {
				return err
			}
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			nloc, _, _ := locate(n.Span, fs, path, opts)
			if _, err := fmt.Fprintf(w, "  %s %s: %s\n", p.note.Sprint("note:"), nloc, n.Msg); err != nil {
				return err
			}
		}
	}
	return nil
}

func locate(sp source.Span, fs *source.FileSet, path string, opts PrettyOpts) (string, *source.File, bool) {
	if fs == nil || int(sp.File) >= fs.Len() {
		return formatPath(path, opts.PathMode, opts.BaseDir), nil, false
	}
	f := fs.Get(sp.File)
	if path != "" && f.Path != path {
		return formatPath(path, opts.PathMode, opts.BaseDir), nil, false
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", formatPath(f.Path, opts.PathMode, opts.BaseDir), start.Line, start.Col), f, true
}

func writeSnippet(w io.Writer, fs *source.FileSet, f *source.File, sp source.Span, context int, p palette) error {
	start, end := fs.Resolve(sp)
	ctx := uint32(max(context, 0))      // #nosec G115 -- non-negative
	lines := uint32(len(f.LineIdx)) + 1 // #nosec G115 -- bounded by file size
	first := max(start.Line, ctx+1) - ctx
	last := min(start.Line+ctx, lines)
	gutter := len(fmt.Sprint(last))

	for line := first; line <= last; line++ {
		text := f.GetLine(line)
		if _, err := fmt.Fprintf(w, " %s %s %s\n", p.dim.Sprintf("%*d", gutter, line), p.dim.Sprint("|"), text); err != nil {
			return err
		}
		if line != start.Line {
			continue
		}
		width := 1
		if end.Line == start.Line && end.Col > start.Col {
			width = int(end.Col - start.Col)
		}
		pad := caretPad(text, int(start.Col)-1)
		marker := "^" + strings.Repeat("~", width-1)
		if _, err := fmt.Fprintf(w, " %s %s %s%s\n", strings.Repeat(" ", gutter), p.dim.Sprint("|"), pad, p.caret.Sprint(marker)); err != nil {
			return err
		}
	}
	return nil
}

// caretPad keeps tabs so the marker lines up with the source line.
func caretPad(line string, n int) string {
	n = min(max(n, 0), len(line))
	var sb strings.Builder
	for i := range n {
		if line[i] == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
