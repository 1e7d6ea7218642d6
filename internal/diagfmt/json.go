package diagfmt

import (
	"encoding/json"
	"io"

	"jskw/internal/diag"
	"jskw/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// NoteJSON представляет дополнительную заметку для JSON
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// makeLocation создаёт LocationJSON из Span. Spans of files that never
// loaded carry only the byte range.
func makeLocation(span source.Span, fs *source.FileSet, fallback string, opts JSONOpts) LocationJSON {
	loc := LocationJSON{File: fallback, StartByte: span.Start, EndByte: span.End}
	if fs == nil || int(span.File) >= fs.Len() {
		return loc
	}
	f := fs.Get(span.File)
	if fallback == "" || f.Path == fallback {
		loc.File = formatPath(f.Path, opts.PathMode, opts.BaseDir)
		if opts.IncludePositions {
			startPos, endPos := fs.Resolve(span)
			loc.StartLine, loc.StartCol = startPos.Line, startPos.Col
			loc.EndLine, loc.EndCol = endPos.Line, endPos.Col
		}
	}
	return loc
}

// BuildDiagnostics converts diagnostics of one file. path names the file
// for diagnostics that have no loaded source, e.g. I/O errors.
func BuildDiagnostics(items []diag.Diagnostic, fs *source.FileSet, path string, opts JSONOpts) []DiagnosticJSON {
	n := len(items)
	if opts.Max > 0 && opts.Max < n {
		n = opts.Max
	}
	out := make([]DiagnosticJSON, 0, n)
	for _, d := range items[:n] {
		dj := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Location: makeLocation(d.Primary, fs, path, opts),
		}
		if opts.IncludeNotes && len(d.Notes) > 0 {
			dj.Notes = make([]NoteJSON, len(d.Notes))
			for j, note := range d.Notes {
				dj.Notes[j] = NoteJSON{Message: note.Msg, Location: makeLocation(note.Span, fs, path, opts)}
			}
		}
		out = append(out, dj)
	}
	return out
}

// JSON форматирует диагностики в JSON формат.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	items := BuildDiagnostics(bag.Items(), fs, "", opts)
	return writeJSON(w, DiagnosticsOutput{Diagnostics: items, Count: len(items)})
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
