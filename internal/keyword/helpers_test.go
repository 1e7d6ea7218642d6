package keyword_test

import (
	"testing"

	"jskw/internal/lexer"
	"jskw/internal/parse"
	"jskw/internal/source"
)

func cursorFor(src string) lexer.Cursor {
	fs := source.NewFileSet()
	return lexer.NewCursor(fs.Get(fs.AddVirtual("kw.js", []byte(src))))
}

type outcome struct {
	ok   bool
	end  uint32
	pos  uint32
	text string
}

func run(r parse.Recognizer, src string) outcome {
	c := cursorFor(src)
	sp, err := r(&c)
	if err != nil {
		nm, _ := parse.AsNoMatch(err)
		o := outcome{ok: false, end: c.Off}
		if nm != nil {
			o.pos = nm.Pos
		}
		return o
	}
	return outcome{ok: true, end: c.Off, text: src[sp.Start:sp.End]}
}

func mustMatch(t *testing.T, name string, r parse.Recognizer, src, wantText, wantRest string) {
	t.Helper()
	c := cursorFor(src)
	sp, err := r(&c)
	if err != nil {
		t.Fatalf("%s(%q): %v", name, src, err)
	}
	if got := src[sp.Start:sp.End]; got != wantText {
		t.Fatalf("%s(%q) matched %q, want %q", name, src, got, wantText)
	}
	if got := string(c.Rest()); got != wantRest {
		t.Fatalf("%s(%q) left %q, want %q", name, src, got, wantRest)
	}
}

func mustFail(t *testing.T, name string, r parse.Recognizer, src string) *parse.NoMatch {
	t.Helper()
	c := cursorFor(src)
	_, err := r(&c)
	if err == nil {
		t.Fatalf("%s(%q) succeeded, want failure", name, src)
	}
	nm, ok := parse.AsNoMatch(err)
	if !ok {
		t.Fatalf("%s(%q) error %T is not NoMatch", name, src, err)
	}
	if c.Off != 0 {
		t.Fatalf("%s(%q) failed but moved cursor to %d", name, src, c.Off)
	}
	return nm
}
