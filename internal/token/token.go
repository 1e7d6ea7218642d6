package token

import (
	"jskw/internal/source"
)

// Kind is the coarse category of a scanned token.
type Kind uint8

const (
	// Invalid indicates a byte the scanner could not classify.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Ident is an identifier that is not a known word.
	Ident
	// Reserved is a word reserved in the active mode.
	Reserved
	// Contextual is a known word that is usable as an identifier in the active mode.
	Contextual
	NumberLit
	StringLit
	TemplateLit
	RegExpLit
	Punct
)

var kindNames = [...]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Ident",
	Reserved:    "Reserved",
	Contextual:  "Contextual",
	NumberLit:   "NumberLit",
	StringLit:   "StringLit",
	TemplateLit: "TemplateLit",
	RegExpLit:   "RegExpLit",
	Punct:       "Punct",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Word Word // WordNone unless Kind is Reserved or Contextual
	Span source.Span
	Text string
}

// IsWord reports whether the token is a table spelling.
func (t Token) IsWord() bool {
	return t.Kind == Reserved || t.Kind == Contextual
}

// IsLiteral reports whether the token is a literal value, including the
// null/true/false words.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, TemplateLit, RegExpLit:
		return true
	case Reserved:
		return t.Word.Tier() == TierLiteral
	default:
		return false
	}
}

// IsIdent reports whether the token may serve as a binding name.
func (t Token) IsIdent() bool { return t.Kind == Ident || t.Kind == Contextual }
