package diag

import (
	"testing"

	"jskw/internal/source"
)

func TestBagLimitAndCounts(t *testing.T) {
	b := NewBag(2)
	if !b.Add(NewWarning(KwStrictOnlyBinding, source.Span{}, "w")) {
		t.Fatal("first Add rejected")
	}
	if !b.Add(NewError(KwReservedBinding, source.Span{}, "e")) {
		t.Fatal("second Add rejected")
	}
	if b.Add(NewError(KwReservedBinding, source.Span{}, "overflow")) {
		t.Fatal("Add past the cap accepted")
	}
	if !b.HasErrors() || !b.HasWarnings() || b.Count(SevError) != 1 || b.Len() != 2 {
		t.Fatalf("counts wrong: errors=%d len=%d", b.Count(SevError), b.Len())
	}
}

func TestBagSortAndMerge(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(KwReservedBinding, source.Span{File: 0, Start: 10, End: 12}, "late"))
	other := NewBag(4)
	other.Add(NewWarning(KwStrictOnlyBinding, source.Span{File: 0, Start: 2, End: 4}, "early"))
	other.Add(NewError(KwReservedBinding, source.Span{File: 0, Start: 2, End: 4}, "early error"))
	a.Merge(other)
	a.Sort()

	got := a.Items()
	if len(got) != 3 || a.Cap() != 3 {
		t.Fatalf("merged len=%d cap=%d", len(got), a.Cap())
	}
	if got[0].Message != "early error" || got[1].Message != "early" || got[2].Message != "late" {
		t.Fatalf("sort order: %q %q %q", got[0].Message, got[1].Message, got[2].Message)
	}
}

func TestDedupReporter(t *testing.T) {
	b := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: b})
	sp := source.Span{Start: 1, End: 3}
	r.Report(KwReservedBinding, SevError, sp, "dup", nil)
	r.Report(KwReservedBinding, SevError, sp, "dup", nil)
	r.Report(KwReservedBinding, SevError, sp, "other", nil)
	if b.Len() != 2 {
		t.Fatalf("dedup kept %d diagnostics", b.Len())
	}
}

func TestCodeIDs(t *testing.T) {
	cases := map[Code]string{
		LexUnterminatedComment: "LEX1001",
		KwReservedBinding:      "KW2001",
		IOLoadFileError:        "IO4001",
		Code(9999):             "E0000",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
	if Code(9999).Title() != "Unknown error" {
		t.Fatal("unknown code title")
	}
	if KwReservedBinding.String() != "[KW2001]: Reserved word used as binding name" {
		t.Fatalf("String = %q", KwReservedBinding.String())
	}
}

func TestParseSeverity(t *testing.T) {
	for in, want := range map[string]Severity{"info": SevInfo, "Warn": SevWarning, "WARNING": SevWarning, " error ": SevError} {
		got, err := ParseSeverity(in)
		if err != nil || got != want {
			t.Fatalf("ParseSeverity(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseSeverity("fatal"); err == nil {
		t.Fatal("expected error for unknown severity")
	}
}

func TestNewfUsesDefaultSeverity(t *testing.T) {
	d := Newf(KwStrictOnlyBinding, source.Span{}, "'%s' is reserved in strict mode", "yield")
	if d.Severity != SevWarning || d.Message != "'yield' is reserved in strict mode" {
		t.Fatalf("unexpected diagnostic: %+v", d)
	}
	if Newf(KwReservedBinding, source.Span{}, "x").Severity != SevError {
		t.Fatal("reserved binding must default to error")
	}
}

func TestWithNoteDoesNotAlias(t *testing.T) {
	base := NewError(KwReservedBinding, source.Span{}, "e").WithNote(source.Span{Start: 1}, "first")
	a := base.WithNote(source.Span{Start: 2}, "a")
	b := base.WithNote(source.Span{Start: 3}, "b")
	if len(base.Notes) != 1 || a.Notes[1].Msg != "a" || b.Notes[1].Msg != "b" {
		t.Fatalf("notes aliased: base=%v a=%v b=%v", base.Notes, a.Notes, b.Notes)
	}
}
