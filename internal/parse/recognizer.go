package parse

import (
	"jskw/internal/lexer"
	"jskw/internal/source"
)

// Recognizer matches a grammar element at the cursor.
type Recognizer func(c *lexer.Cursor) (source.Span, error)

// Word builds the recognizer for one spelling: skip trivia, match the exact
// text, then require a boundary without consuming it. context names the
// expected element in failures.
func Word(spelling, context string) Recognizer {
	n := uint32(len(spelling)) // #nosec G115 -- spellings are short literals
	return func(c *lexer.Cursor) (source.Span, error) {
		start := c.Mark()
		lexer.SkipTrivia(c)
		at := c.Mark()
		if !c.HasPrefix(spelling) {
			c.Reset(start)
			return source.Span{}, &NoMatch{Pos: uint32(at), Context: context, Reason: ReasonMismatch}
		}
		c.Off += n
		if !c.AtBoundary() {
			c.Reset(start)
			return source.Span{}, &NoMatch{Pos: uint32(at), Context: context, Reason: ReasonBoundary}
		}
		return c.SpanFrom(at), nil
	}
}

// Choice tries alts in order and returns the first success. When every
// alternative fails the cursor is unchanged and the failure carries context
// and the leftmost attempted position.
func Choice(context string, alts ...Recognizer) Recognizer {
	return func(c *lexer.Cursor) (source.Span, error) {
		start := c.Mark()
		var first *NoMatch
		for _, alt := range alts {
			sp, err := alt(c)
			if err == nil {
				return sp, nil
			}
			c.Reset(start)
			nm, ok := AsNoMatch(err)
			if !ok {
				return source.Span{}, err
			}
			if first == nil || nm.Pos < first.Pos {
				first = nm
			}
		}
		pos := uint32(start)
		if first != nil {
			pos = first.Pos
		}
		return source.Span{}, &NoMatch{Pos: pos, Context: context, Reason: ReasonMismatch}
	}
}

// Not succeeds, consuming nothing, exactly when r fails.
func Not(context string, r Recognizer) Recognizer {
	return func(c *lexer.Cursor) (source.Span, error) {
		start := c.Mark()
		sp, err := r(c)
		c.Reset(start)
		if err == nil {
			return source.Span{}, &NoMatch{Pos: sp.Start, Context: context, Reason: ReasonLookahead}
		}
		if !IsNoMatch(err) {
			return source.Span{}, err
		}
		return c.SpanFrom(start), nil
	}
}

// Peek runs r as a positive lookahead: the span of the match is returned but
// the cursor never moves.
func Peek(r Recognizer) Recognizer {
	return func(c *lexer.Cursor) (source.Span, error) {
		start := c.Mark()
		sp, err := r(c)
		c.Reset(start)
		return sp, err
	}
}

// Run applies r to a fresh cursor over f at off.
func Run(r Recognizer, f *source.File, off uint32) (source.Span, lexer.Cursor, error) {
	c := lexer.NewCursorAt(f, off)
	sp, err := r(&c)
	return sp, c, err
}
