package diag

import (
	"fmt"

	"jskw/internal/source"
)

// New builds a diagnostic without notes.
func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Primary: primary, Message: msg}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func NewWarning(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevWarning, code, primary, msg)
}

// Newf formats the message; the default severity of code is used.
func Newf(code Code, primary source.Span, format string, args ...any) Diagnostic {
	return New(code.DefaultSeverity(), code, primary, fmt.Sprintf(format, args...))
}

// WithNote returns a copy of d with one more note. The notes slice is not
// shared with d.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	notes := make([]Note, len(d.Notes), len(d.Notes)+1)
	copy(notes, d.Notes)
	d.Notes = append(notes, Note{Span: sp, Msg: msg})
	return d
}
