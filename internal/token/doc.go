// Package token defines the closed set of ECMAScript reserved spellings and
// the token kinds produced by the word scanner.
// Invariants:
//   - The reserved-word table is the single source of truth: the automaton
//     matcher and the combinator recognizers are both generated from it.
//   - Keywords are case sensitive; only the lowercase spelling is reserved.
//   - FutureReservedLax ⊆ FutureReservedStrict. Every other tier is disjoint.
//   - Contextual words (of, get, set, async) are never reserved.
//   - Token.Text is a slice of the original source (no copies).
package token
