package lexer

import (
	"testing"

	"jskw/internal/source"
)

// createFile создаёт виртуальный файл для теста
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.js", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))

	for _, want := range []byte{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Peek(); got != want {
			t.Fatalf("Peek = %q, want %q", got, want)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("Bump = %q, want %q", got, want)
		}
	}
	if !cursor.EOF() {
		t.Fatal("expected EOF at end")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Fatal("Peek/Bump at EOF must return 0")
	}
}

func TestPeek2(t *testing.T) {
	cursor := NewCursor(createFile("ab"))
	b0, b1, ok := cursor.Peek2()
	if !ok || b0 != 'a' || b1 != 'b' {
		t.Fatalf("Peek2 = %q %q %v", b0, b1, ok)
	}
	cursor.Bump()
	if _, _, ok := cursor.Peek2(); ok {
		t.Fatal("Peek2 must fail with one byte left")
	}
}

func TestPeekRuneUTF8(t *testing.T) {
	cursor := NewCursor(createFile("αb"))
	r, sz := cursor.PeekRune()
	if r != 'α' || sz != 2 {
		t.Fatalf("PeekRune = %q/%d", r, sz)
	}
	cursor.BumpRune()
	if cursor.Off != 2 || cursor.Peek() != 'b' {
		t.Fatalf("BumpRune left cursor at %d", cursor.Off)
	}
	cursor.BumpRune()
	if _, sz := cursor.PeekRune(); sz != 0 {
		t.Fatalf("PeekRune at EOF size = %d", sz)
	}
	cursor.BumpRune() // no-op at EOF
	if cursor.Off != 3 {
		t.Fatalf("BumpRune at EOF moved cursor to %d", cursor.Off)
	}
}

func TestEatAndMarkReset(t *testing.T) {
	cursor := NewCursor(createFile("abc"))
	mark := cursor.Mark()
	if cursor.Eat('x') {
		t.Fatal("Eat('x') must fail on 'a'")
	}
	if !cursor.Eat('a') || !cursor.Eat('b') {
		t.Fatal("Eat sequence failed")
	}
	sp := cursor.SpanFrom(mark)
	if sp.Start != 0 || sp.End != 2 {
		t.Fatalf("SpanFrom = %v", sp)
	}
	cursor.Reset(mark)
	if cursor.Peek() != 'a' {
		t.Fatalf("Reset did not restore position, at %q", cursor.Peek())
	}
}

func TestHasPrefixAndRest(t *testing.T) {
	cursor := NewCursorAt(createFile("x instanceof y"), 2)
	if !cursor.HasPrefix("instanceof") {
		t.Fatal("HasPrefix(instanceof) = false")
	}
	if cursor.HasPrefix("instanceof y z") {
		t.Fatal("HasPrefix must fail past the end")
	}
	if string(cursor.Rest()) != "instanceof y" {
		t.Fatalf("Rest = %q", cursor.Rest())
	}
	end := NewCursorAt(createFile("ab"), 99)
	if !end.EOF() || end.Rest() != nil || !end.HasPrefix("") {
		t.Fatal("cursor clamped past the end must be at EOF")
	}
}
