// Package parse holds the recognizer primitives shared by the keyword,
// literal and identifier grammars.
//
// A Recognizer is a stateless function of a cursor. On success it advances
// the cursor past the matched text and returns its span; on failure it
// returns a *NoMatch and leaves the cursor exactly where it was, so callers
// can backtrack without bookkeeping. Failure is an ordinary value, never a
// panic.
//
// Every word-level match uses lexer.AtBoundary as its maximal-munch rule.
package parse
