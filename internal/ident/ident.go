// Package ident is the identifier grammar: a binding name is accepted only
// when no reserved word of the active mode starts at the same position.
package ident

import (
	"fmt"
	"strings"

	"jskw/internal/keyword"
	"jskw/internal/lexer"
	"jskw/internal/parse"
	"jskw/internal/source"
	"jskw/internal/token"
)

// Veto selects which matcher rejects reserved spellings.
type Veto uint8

const (
	// VetoAutomaton uses the trie DFA.
	VetoAutomaton Veto = iota
	// VetoCombinator uses the ordered-choice union of the tier recognizers.
	VetoCombinator
)

func (v Veto) String() string {
	if v == VetoCombinator {
		return "combinator"
	}
	return "automaton"
}

// ParseVeto converts a matcher name into a Veto.
func ParseVeto(s string) (Veto, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "automaton", "dfa":
		return VetoAutomaton, nil
	case "combinator", "choice":
		return VetoCombinator, nil
	default:
		return VetoAutomaton, fmt.Errorf("invalid matcher %q (expected automaton|combinator)", s)
	}
}

// Name is an accepted identifier.
type Name struct {
	Text string
	Span source.Span
}

// ReservedError rejects a reserved spelling used where an identifier is required.
type ReservedError struct {
	Word token.Word
	Mode token.Mode
	Span source.Span
}

func (e *ReservedError) Error() string {
	return fmt.Sprintf("%q is a reserved word (%s) in %s mode", e.Word.String(), e.Word.Tier(), e.Mode)
}

// Parser parses identifiers for one mode.
type Parser struct {
	Mode token.Mode
	Veto Veto
}

func (p Parser) reserved() parse.Recognizer {
	if p.Veto == VetoCombinator {
		return keyword.ReservedWord(p.Mode)
	}
	return keyword.ReservedWordDFA(p.Mode)
}

// Parse accepts identifier := NOT reservedWord identifierStart identifierContinue*.
// On failure the cursor is unchanged.
func (p Parser) Parse(c *lexer.Cursor) (Name, error) {
	start := c.Mark()
	lexer.SkipTrivia(c)
	at := c.Mark()

	if _, err := parse.Not("reserved word", p.reserved())(c); err != nil {
		if !parse.IsNoMatch(err) {
			c.Reset(start)
			return Name{}, err
		}
		// span зарезервированного слова только для диагностики
		sp, _ := parse.Peek(p.reserved())(c)
		c.Reset(start)
		w := token.WordNone
		if e, ok := token.Lookup(sp.Text(c.File)); ok {
			w = e.Word
		}
		return Name{}, &ReservedError{Word: w, Mode: p.Mode, Span: sp}
	}

	r, sz := c.PeekRune()
	if sz == 0 || !lexer.StartsIdentifier(r) {
		c.Reset(start)
		return Name{}, &parse.NoMatch{Pos: uint32(at), Context: "identifier"}
	}
	c.BumpRune()
	for {
		r, sz = c.PeekRune()
		if sz == 0 || !lexer.ContinuesIdentifier(r) {
			break
		}
		c.BumpRune()
	}
	sp := c.SpanFrom(at)
	return Name{Text: sp.Text(c.File), Span: sp}, nil
}

// Recognizer adapts Parse to the shared recognizer shape.
func (p Parser) Recognizer() parse.Recognizer {
	return func(c *lexer.Cursor) (source.Span, error) {
		n, err := p.Parse(c)
		return n.Span, err
	}
}

// IsBindingName reports whether s as a whole is a valid identifier in mode m.
func IsBindingName(s string, m token.Mode) bool {
	fs := source.NewFileSet()
	sp, c, err := parse.Run(Parser{Mode: m}.Recognizer(), fs.Get(fs.AddVirtual("<name>", []byte(s))), 0)
	return err == nil && sp.Start == 0 && c.EOF()
}
