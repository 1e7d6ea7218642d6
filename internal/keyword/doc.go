// Package keyword classifies ECMAScript reserved words.
//
// Two matchers are built from the single table in package token:
//
//   - an automaton (IsReservedWord): a trie DFA answering "does a reserved
//     word start here?" in one pass, without trivia skipping;
//   - combinator recognizers: one per spelling (Break, Instanceof, ...)
//     plus ordered-choice aggregates per tier and ReservedWord per mode.
//
// Both apply lexer.AtBoundary after the matched text, so "instanceofx" is
// rejected by either path. Contextual words (of, get, set, async) have
// recognizers but are never reserved and are absent from the automaton.
package keyword
