package parse

import (
	"errors"
	"fmt"
)

// Reason tells why a recognizer failed.
type Reason uint8

const (
	// ReasonMismatch: the expected text is not at the position.
	ReasonMismatch Reason = iota
	// ReasonBoundary: the text matched but continues as a longer identifier.
	ReasonBoundary
	// ReasonLookahead: a negative lookahead saw what it must not see.
	ReasonLookahead
)

func (r Reason) String() string {
	switch r {
	case ReasonMismatch:
		return "mismatch"
	case ReasonBoundary:
		return "boundary"
	case ReasonLookahead:
		return "lookahead"
	default:
		return "unknown"
	}
}

// NoMatch is the single failure kind of every recognizer.
type NoMatch struct {
	Pos     uint32 // byte offset where the match was attempted
	Context string // what was expected, e.g. "instanceof" or "keyword"
	Reason  Reason
}

func (e *NoMatch) Error() string {
	if e.Reason == ReasonBoundary {
		return fmt.Sprintf("expected %s at offset %d: continues as identifier", e.Context, e.Pos)
	}
	if e.Reason == ReasonLookahead {
		return fmt.Sprintf("unexpected %s at offset %d", e.Context, e.Pos)
	}
	return fmt.Sprintf("expected %s at offset %d", e.Context, e.Pos)
}

// AsNoMatch unwraps err into a *NoMatch.
func AsNoMatch(err error) (*NoMatch, bool) {
	var nm *NoMatch
	if errors.As(err, &nm) {
		return nm, true
	}
	return nil, false
}

// IsNoMatch reports whether err is (or wraps) a *NoMatch.
func IsNoMatch(err error) bool {
	_, ok := AsNoMatch(err)
	return ok
}
