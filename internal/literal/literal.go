// Package literal recognizes the null and boolean literal values. It shares
// the boundary rule with the keyword recognizers, so "nullable" and "trueish"
// are identifiers, not literals.
package literal

import (
	"jskw/internal/lexer"
	"jskw/internal/parse"
	"jskw/internal/source"
)

var (
	Null  = parse.Word("null", "null")
	True  = parse.Word("true", "true")
	False = parse.Word("false", "false")
	Bool  = parse.Choice("boolean literal", True, False)
)

// Value recognizes null, true or false and returns the matching Go value:
// nil, true or false.
func Value(c *lexer.Cursor) (any, source.Span, error) {
	if sp, err := Null(c); err == nil {
		return nil, sp, nil
	}
	if sp, err := True(c); err == nil {
		return true, sp, nil
	}
	if sp, err := False(c); err == nil {
		return false, sp, nil
	}
	start := c.Mark()
	lexer.SkipTrivia(c)
	pos := c.Off
	c.Reset(start)
	return nil, source.Span{}, &parse.NoMatch{Pos: pos, Context: "literal"}
}
