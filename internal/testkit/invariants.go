// Package testkit holds invariant checks shared by fuzz harnesses and
// black-box tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"jskw/internal/diag"
	"jskw/internal/driver"
	"jskw/internal/source"
)

// CheckResultInvariants runs span sanity checks on a classified file:
// 1) every span points at sf and lies within its content
// 2) occurrences are non-empty and strictly ordered
// 3) kept tokens do not overlap
// 4) the two matchers never disagreed
func CheckResultInvariants(res *driver.FileResult, sf *source.File) error {
	if res == nil || sf == nil {
		return fmt.Errorf("nil result or file")
	}
	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	inFile := func(what string, sp source.Span) error {
		if sp.File != sf.ID {
			return fmt.Errorf("%s span points to file %d, want %d", what, sp.File, sf.ID)
		}
		if sp.Start > sp.End || sp.End > size {
			return fmt.Errorf("%s span %v outside [0,%d]", what, sp, size)
		}
		return nil
	}

	for _, d := range res.Bag.Items() {
		if d.Code == diag.KwMatcherDisagreement {
			return fmt.Errorf("matchers disagree: %s", d.Message)
		}
		if err := inFile(d.Code.ID(), d.Primary); err != nil {
			return err
		}
		for _, n := range d.Notes {
			if err := inFile(d.Code.ID()+" note", n.Span); err != nil {
				return err
			}
		}
	}

	var prev uint32
	for i, o := range res.Occurrences {
		if err := inFile(o.Word.String(), o.Span); err != nil {
			return err
		}
		if o.Span.Empty() {
			return fmt.Errorf("occurrence %d (%s) is empty", i, o.Word)
		}
		if i > 0 && o.Span.Start < prev {
			return fmt.Errorf("occurrence %d (%s) at %d starts before %d", i, o.Word, o.Span.Start, prev)
		}
		prev = o.Span.End
	}

	prev = 0
	for i, tok := range res.Tokens {
		if err := inFile(tok.Kind.String(), tok.Span); err != nil {
			return err
		}
		if tok.Span.Start < prev {
			return fmt.Errorf("token %d (%s) overlaps the previous one", i, tok.Kind)
		}
		prev = tok.Span.End
	}
	return nil
}
