package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                Code = 1000
	LexUnterminatedComment Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnknownChar         Code = 1003
	LexUnterminatedRegExp  Code = 1004

	// Reserved-word classification
	KwInfo                Code = 2000
	KwReservedBinding     Code = 2001
	KwStrictOnlyBinding   Code = 2002
	KwLiteralAsBinding    Code = 2004
	KwMatcherDisagreement Code = 2005

	// IO
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:            "Unknown error",
	LexInfo:                "Lexical information",
	LexUnterminatedComment: "Unterminated block comment",
	LexUnterminatedString:  "Unterminated string literal",
	LexUnknownChar:         "Unknown character",
	LexUnterminatedRegExp:  "Unterminated regular expression literal",
	KwInfo:                 "Reserved word information",
	KwReservedBinding:      "Reserved word used as binding name",
	KwStrictOnlyBinding:    "Strict mode reserved word used as binding name",
	KwLiteralAsBinding:     "Literal used as binding name",
	KwMatcherDisagreement:  "Automaton and combinator matchers disagree",
	IOLoadFileError:        "I/O load file error",
	IOCacheError:           "Cache error",
}

// DefaultSeverity is the severity a code is reported with unless the
// reporter decides otherwise.
func (c Code) DefaultSeverity() Severity {
	switch c {
	case LexInfo, KwInfo:
		return SevInfo
	case LexUnknownChar, KwStrictOnlyBinding, KwMatcherDisagreement, IOCacheError:
		return SevWarning
	}
	return SevError
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("KW%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
