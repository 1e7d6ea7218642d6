package keyword

import (
	"jskw/internal/lexer"
	"jskw/internal/literal"
	"jskw/internal/parse"
	"jskw/internal/source"
	"jskw/internal/token"
)

// ChoiceOf is an ordered choice over the recognizers of words, tried in the
// given order.
func ChoiceOf(context string, words []token.Word) parse.Recognizer {
	alts := make([]parse.Recognizer, 0, len(words))
	for _, w := range words {
		alts = append(alts, ForWord(w))
	}
	return parse.Choice(context, alts...)
}

// Tier aggregates.
var (
	Keywords          = ChoiceOf("keyword", token.Members(token.TierKeyword))
	FutureReservedLax = ChoiceOf("future reserved word", token.Members(token.TierFutureReservedLax))
	// FutureReservedStrict is FutureReservedLax followed by the strict-only additions.
	FutureReservedStrict = parse.Choice("strict future reserved word",
		append([]parse.Recognizer{FutureReservedLax}, strictOnly()...)...)
	LiteralReserved = parse.Choice("literal", literal.Null, literal.Bool)
	Contextual      = ChoiceOf("contextual keyword", token.Members(token.TierContextual))

	ReservedWordStrict = parse.Choice("reserved word", Keywords, FutureReservedStrict, LiteralReserved)
	ReservedWordSloppy = parse.Choice("reserved word", Keywords, FutureReservedLax, LiteralReserved)
)

func strictOnly() []parse.Recognizer {
	var out []parse.Recognizer
	for _, w := range token.Members(token.TierFutureReservedStrict) {
		if w.Tier() == token.TierFutureReservedStrict {
			out = append(out, ForWord(w))
		}
	}
	return out
}

// ReservedWord is the combinator union of every word reserved in mode m.
func ReservedWord(m token.Mode) parse.Recognizer {
	if m == token.ModeStrict {
		return ReservedWordStrict
	}
	return ReservedWordSloppy
}

// ForTier returns the aggregate recognizer of tier t.
func ForTier(t token.Tier) parse.Recognizer {
	switch t {
	case token.TierKeyword:
		return Keywords
	case token.TierFutureReservedLax:
		return FutureReservedLax
	case token.TierFutureReservedStrict:
		return FutureReservedStrict
	case token.TierLiteral:
		return LiteralReserved
	case token.TierContextual:
		return Contextual
	default:
		return nil
	}
}

// ReservedWordDFA adapts the automaton matcher to a Recognizer: trivia is skipped
// first, then IsReservedWord decides. Same contract as ReservedWord(m).
func ReservedWordDFA(m token.Mode) parse.Recognizer {
	dfa := AutomatonFor(m)
	return func(c *lexer.Cursor) (source.Span, error) {
		start := c.Mark()
		lexer.SkipTrivia(c)
		src := c.Source()
		match, err := dfa.Match(src, c.Off)
		if err != nil {
			c.Reset(start)
			return source.Span{}, err
		}
		c.Off = match.End
		return source.Span{File: c.File.ID, Start: match.Start, End: match.End}, nil
	}
}

// Classify reports which reserved word, if any, starts at the cursor after
// trivia, without moving the cursor.
func Classify(c *lexer.Cursor, m token.Mode) (Match, error) {
	look := *c
	lexer.SkipTrivia(&look)
	return IsReservedWord(look.Source(), look.Off, m)
}
