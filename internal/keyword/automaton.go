package keyword

import (
	"fmt"
	"sort"

	"jskw/internal/lexer"
	"jskw/internal/parse"
	"jskw/internal/token"
)

const alphabet = 'z' - 'a' + 1

// state is one trie node; next[i] == 0 means no edge for 'a'+i (the root is
// never a target, so 0 doubles as "dead").
type state struct {
	next [alphabet]uint16
	word token.Word
}

// Automaton is an immutable trie DFA over a set of lowercase spellings.
type Automaton struct {
	states []state
	size   int
}

// Match is a successful automaton run.
type Match struct {
	Word  token.Word
	Tier  token.Tier
	Start uint32
	End   uint32
}

// Len is the number of bytes consumed by the match.
func (m Match) Len() uint32 { return m.End - m.Start }

var (
	strictDFA = NewAutomaton(token.ReservedWords(token.ModeStrict))
	sloppyDFA = NewAutomaton(token.ReservedWords(token.ModeSloppy))
)

// AutomatonFor returns the shared automaton for mode m.
func AutomatonFor(m token.Mode) *Automaton {
	if m == token.ModeStrict {
		return strictDFA
	}
	return sloppyDFA
}

// NewAutomaton builds a trie accepting exactly the spellings of words.
// It panics on a spelling outside [a-z], which the token table never has.
func NewAutomaton(words []token.Word) *Automaton {
	a := &Automaton{states: make([]state, 1, 128)}
	for _, w := range words {
		s := 0
		for _, b := range []byte(w.String()) {
			if b < 'a' || b > 'z' {
				panic(fmt.Sprintf("keyword: spelling %q outside [a-z]", w))
			}
			n := a.states[s].next[b-'a']
			if n == 0 {
				a.states = append(a.states, state{})
				n = uint16(len(a.states) - 1) // #nosec G115 -- a few hundred states at most
				a.states[s].next[b-'a'] = n
			}
			s = int(n)
		}
		if a.states[s].word == token.WordNone {
			a.size++
		}
		a.states[s].word = w
	}
	return a
}

// Run walks the DFA from off. It returns the longest accepted spelling and
// its end, without any boundary check.
func (a *Automaton) Run(src []byte, off uint32) (token.Word, uint32, bool) {
	s := 0
	last, end := token.WordNone, off
	for i := int(off); i < len(src); i++ {
		b := src[i]
		if b < 'a' || b > 'z' {
			break
		}
		n := a.states[s].next[b-'a']
		if n == 0 {
			break
		}
		s = int(n)
		if w := a.states[s].word; w != token.WordNone {
			last, end = w, uint32(i+1) // #nosec G115 -- i < len(src) which fits uint32
		}
	}
	return last, end, last != token.WordNone
}

// Match runs the DFA and then the boundary rule. A DFA success followed by an
// identifier character is a NoMatch.
func (a *Automaton) Match(src []byte, off uint32) (Match, error) {
	w, end, ok := a.Run(src, off)
	if !ok {
		return Match{}, &parse.NoMatch{Pos: off, Context: "reserved word", Reason: parse.ReasonMismatch}
	}
	if !lexer.AtBoundary(src, end) {
		return Match{}, &parse.NoMatch{Pos: off, Context: "reserved word", Reason: parse.ReasonBoundary}
	}
	return Match{Word: w, Tier: w.Tier(), Start: off, End: end}, nil
}

// Len is the number of accepted spellings.
func (a *Automaton) Len() int { return a.size }

// States is the number of trie nodes, root included.
func (a *Automaton) States() int { return len(a.states) }

// Spellings enumerates the accepted set in lexical order.
func (a *Automaton) Spellings() []string {
	out := make([]string, 0, a.size)
	var walk func(s int, prefix []byte)
	walk = func(s int, prefix []byte) {
		if a.states[s].word != token.WordNone {
			out = append(out, string(prefix))
		}
		for i, n := range a.states[s].next {
			if n != 0 {
				walk(int(n), append(prefix, byte('a'+i)))
			}
		}
	}
	walk(0, nil)
	sort.Strings(out)
	return out
}

// IsReservedWord reports whether a word reserved in mode m starts exactly at
// off. Leading trivia is not skipped.
func IsReservedWord(src []byte, off uint32, m token.Mode) (Match, error) {
	return AutomatonFor(m).Match(src, off)
}
