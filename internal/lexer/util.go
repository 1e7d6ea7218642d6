package lexer

import (
	"sync/atomic"
	"unicode"
	"unicode/utf8"
)

// UnicodeContinueFunc decides whether a non-ASCII rune continues an identifier.
type UnicodeContinueFunc func(r rune) bool

var unicodeContinue atomic.Pointer[UnicodeContinueFunc]

func init() {
	fn := UnicodeContinueFunc(DefaultUnicodeContinue)
	unicodeContinue.Store(&fn)
}

// ECMAScript ID_Start / ID_Continue approximated with the stdlib range tables.
var (
	identifierStart    = []*unicode.RangeTable{unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl, unicode.Other_ID_Start}
	identifierContinue = []*unicode.RangeTable{unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Start, unicode.Other_ID_Continue}
)

const (
	zwnj = '\u200c'
	zwj  = '\u200d'
)

// DefaultUnicodeContinue accepts ID_Continue code points plus ZWNJ and ZWJ.
func DefaultUnicodeContinue(r rune) bool {
	return r == zwnj || r == zwj || unicode.IsOneOf(identifierContinue, r)
}

// SetUnicodeContinue installs fn as the non-ASCII half of ContinuesIdentifier
// and returns the previous hook. A nil fn restores the default.
func SetUnicodeContinue(fn UnicodeContinueFunc) UnicodeContinueFunc {
	if fn == nil {
		fn = DefaultUnicodeContinue
	}
	prev := unicodeContinue.Swap(&fn)
	return *prev
}

// ===== Классификаторы =====

// ContinuesIdentifier reports whether r can continue an identifier. It is the
// only boundary rule: every literal match must be followed by EOF or a rune
// for which it returns false.
func ContinuesIdentifier(r rune) bool {
	if r < utf8.RuneSelf {
		return isIdentContinueByte(byte(r))
	}
	if r == utf8.RuneError {
		return false
	}
	return (*unicodeContinue.Load())(r)
}

// StartsIdentifier reports whether r can start an identifier.
func StartsIdentifier(r rune) bool {
	if r < utf8.RuneSelf {
		return isIdentStartByte(byte(r))
	}
	return unicode.IsOneOf(identifierStart, r)
}

// AtBoundary reports whether a word ending at off is complete: off is at EOF
// or the rune there does not continue an identifier.
func AtBoundary(src []byte, off uint32) bool {
	if uint64(off) >= uint64(len(src)) {
		return true
	}
	r := rune(src[off])
	if r >= utf8.RuneSelf {
		r, _ = utf8.DecodeRune(src[off:])
	}
	return !ContinuesIdentifier(r)
}

// AtBoundary is AtBoundary for the cursor's current position.
func (c *Cursor) AtBoundary() bool {
	return AtBoundary(c.Source(), c.Off)
}

// ASCII fast-path для идентификаторов.
func isIdentStartByte(b byte) bool {
	return b == '_' || b == '$' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// IsLineTerminator reports ECMAScript line terminators.
func IsLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

// IsWhitespace reports ECMAScript whitespace (line terminators excluded).
func IsWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f', '\u00a0', '\ufeff':
		return true
	}
	return r >= utf8.RuneSelf && unicode.Is(unicode.Zs, r)
}
