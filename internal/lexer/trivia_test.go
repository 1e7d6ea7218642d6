package lexer

import (
	"testing"

	"jskw/internal/source"
	"jskw/internal/token"
)

type recordingReporter struct {
	kinds []string
	spans []source.Span
}

func (r *recordingReporter) Report(kind string, span source.Span, msg string) {
	r.kinds = append(r.kinds, kind)
	r.spans = append(r.spans, span)
}

func TestSkipTrivia(t *testing.T) {
	cases := []struct {
		src  string
		rest string
	}{
		{"", ""},
		{"break", "break"},
		{" \t\nbreak ", "break "},
		{"// c\nif", "if"},
		{"/* a */ /* b\n */for", "for"},
		{"\u00a0 \ufeffx", "x"},
		{"/ 2", "/ 2"},
		{"/=x", "/=x"},
		{"   ", ""},
	}
	for _, c := range cases {
		cursor := NewCursor(createFile(c.src))
		off := SkipTrivia(&cursor)
		if off != cursor.Off {
			t.Fatalf("SkipTrivia returned %d, cursor at %d", off, cursor.Off)
		}
		if got := string(cursor.Rest()); got != c.rest {
			t.Errorf("SkipTrivia(%q) left %q, want %q", c.src, got, c.rest)
		}
	}
}

func TestSkipHashbangOnlyAtStart(t *testing.T) {
	cursor := NewCursor(createFile("#!/usr/bin/env node\nlet x"))
	SkipTrivia(&cursor)
	if string(cursor.Rest()) != "let x" {
		t.Fatalf("hashbang not skipped: %q", cursor.Rest())
	}

	mid := NewCursorAt(createFile("x #!y"), 2)
	SkipTrivia(&mid)
	if string(mid.Rest()) != "#!y" {
		t.Fatalf("hashbang skipped mid-file: %q", mid.Rest())
	}
}

func TestSkipperCollectsTrivia(t *testing.T) {
	cursor := NewCursor(createFile("  // one\n\n/* two */x"))
	s := NewSkipper(Options{Collect: true})
	s.Skip(&cursor)

	want := []token.TriviaKind{
		token.TriviaSpace, token.TriviaLineComment, token.TriviaNewline, token.TriviaBlockComment,
	}
	got := s.Trivia()
	if len(got) != len(want) {
		t.Fatalf("collected %d trivia, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i].Kind != want[i] {
			t.Errorf("trivia %d = %v, want %v", i, got[i].Kind, want[i])
		}
	}
	if got[3].Span.Start != 10 || got[3].Span.End != 19 {
		t.Fatalf("block comment span = %v", got[3].Span)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	rep := &recordingReporter{}
	cursor := NewCursor(createFile("x /* never closed"))
	cursor.Off = 1
	NewSkipper(Options{Reporter: rep}).Skip(&cursor)

	if !cursor.EOF() {
		t.Fatalf("expected skipper to stop at EOF, at %d", cursor.Off)
	}
	if len(rep.kinds) != 1 || rep.kinds[0] != KindUnterminatedComment {
		t.Fatalf("reports = %v", rep.kinds)
	}
	if rep.spans[0].Start != 2 {
		t.Fatalf("report span = %v", rep.spans[0])
	}
}
