package keyword_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"jskw/internal/keyword"
	"jskw/internal/parse"
	"jskw/internal/token"
)

func TestTierAggregates(t *testing.T) {
	for _, tier := range token.Tiers() {
		agg := keyword.ForTier(tier)
		members := make(map[token.Word]bool)
		for _, w := range token.Members(tier) {
			members[w] = true
		}
		for _, e := range token.Table() {
			got := run(agg, e.Spelling)
			if got.ok != members[e.Word] {
				t.Errorf("%v(%q) ok = %v, want %v", tier, e.Spelling, got.ok, members[e.Word])
			}
			if got.ok && got.text != e.Spelling {
				t.Errorf("%v(%q) matched %q", tier, e.Spelling, got.text)
			}
		}
	}
	if keyword.ForTier(token.TierNone) != nil {
		t.Fatal("ForTier(TierNone) must be nil")
	}
}

func TestReservedWordByMode(t *testing.T) {
	for _, m := range []token.Mode{token.ModeSloppy, token.ModeStrict} {
		for _, e := range token.Table() {
			want := e.Word.ReservedIn(m)
			if got := run(keyword.ReservedWord(m), e.Spelling).ok; got != want {
				t.Errorf("ReservedWord(%v)(%q) = %v, want %v", m, e.Spelling, got, want)
			}
		}
	}
	mustMatch(t, "ReservedWord", keyword.ReservedWord(token.ModeStrict), "yield x", "yield", " x")
	mustFail(t, "ReservedWord", keyword.ReservedWord(token.ModeSloppy), "yield x")
	mustMatch(t, "ReservedWord", keyword.ReservedWord(token.ModeSloppy), "\tnull;", "null", ";")
}

// combinatorSet returns every table spelling accepted by r.
func combinatorSet(r parse.Recognizer) []string {
	var out []string
	for _, e := range token.Table() {
		if run(r, e.Spelling).ok {
			out = append(out, e.Spelling)
		}
	}
	sort.Strings(out)
	return out
}

func TestAutomatonAndCombinatorAcceptSameSet(t *testing.T) {
	for _, m := range []token.Mode{token.ModeSloppy, token.ModeStrict} {
		dfa := keyword.AutomatonFor(m).Spellings()
		comb := combinatorSet(keyword.ReservedWord(m))
		if diff := cmp.Diff(comb, dfa); diff != "" {
			t.Fatalf("mode %v: automaton and combinator sets differ (-combinator +automaton):\n%s", m, diff)
		}
		if keyword.AutomatonFor(m).Len() != len(token.ReservedWords(m)) {
			t.Fatalf("mode %v: automaton holds %d words", m, keyword.AutomatonFor(m).Len())
		}
	}
}

// corpus mixes exact spellings with near misses that stress shared prefixes
// and the boundary rule.
func corpus() []string {
	out := []string{
		"", " ", "x", "i", "in", "ins", "instance", "instanceof", "instanceofx", "inx",
		"interface", "interfaces", "im", "implements1", "do", "double", "delete_", "de",
		"letx = 1", "let x", "yield*", "yieldy", "nul", "nullish", "true.", "falsey",
		"  \n break;", "/* c */if(", "If", "FOR", "for$", "forα", "for ", "async", "of",
	}
	for _, e := range token.Table() {
		out = append(out, e.Spelling, e.Spelling+"_", " "+e.Spelling+";", e.Spelling[:len(e.Spelling)-1])
	}
	return out
}

func TestAutomatonAgreesWithCombinators(t *testing.T) {
	for _, m := range []token.Mode{token.ModeSloppy, token.ModeStrict} {
		for _, src := range corpus() {
			a := run(keyword.ReservedWordDFA(m), src)
			b := run(keyword.ReservedWord(m), src)
			if a.ok != b.ok || a.end != b.end || a.text != b.text {
				t.Errorf("mode %v input %q: automaton %+v, combinator %+v", m, src, a, b)
			}
		}
	}
}

func TestTryOrderDoesNotMatter(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, m := range []token.Mode{token.ModeSloppy, token.ModeStrict} {
		words := token.ReservedWords(m)
		base := keyword.ChoiceOf("reserved word", words)
		for round := 0; round < 20; round++ {
			perm := append([]token.Word(nil), words...)
			rng.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
			shuffled := keyword.ChoiceOf("reserved word", perm)
			for _, src := range corpus() {
				a, b := run(base, src), run(shuffled, src)
				if a.ok != b.ok || a.end != b.end {
					t.Fatalf("mode %v round %d input %q: %+v vs %+v", m, round, src, a, b)
				}
			}
		}
	}
}

func TestIsReservedWordDoesNotSkipTrivia(t *testing.T) {
	src := []byte("  return x")
	if _, err := keyword.IsReservedWord(src, 0, token.ModeSloppy); err == nil {
		t.Fatal("IsReservedWord must not skip leading whitespace")
	}
	m, err := keyword.IsReservedWord(src, 2, token.ModeSloppy)
	if err != nil {
		t.Fatalf("IsReservedWord at 2: %v", err)
	}
	if m.Word != token.KwReturn || m.Tier != token.TierKeyword || m.Start != 2 || m.End != 8 || m.Len() != 6 {
		t.Fatalf("match = %+v", m)
	}
}

func TestIsReservedWordBoundaryAndModes(t *testing.T) {
	cases := []struct {
		src    string
		mode   token.Mode
		ok     bool
		reason parse.Reason
	}{
		{"instanceof", token.ModeSloppy, true, 0},
		{"instanceofx", token.ModeSloppy, false, parse.ReasonBoundary},
		{"ins", token.ModeSloppy, false, parse.ReasonBoundary},
		{"yield", token.ModeSloppy, false, parse.ReasonMismatch},
		{"yield", token.ModeStrict, true, 0},
		{"async", token.ModeStrict, false, parse.ReasonMismatch},
		{"", token.ModeStrict, false, parse.ReasonMismatch},
		{"Null", token.ModeStrict, false, parse.ReasonMismatch},
	}
	for _, c := range cases {
		_, err := keyword.IsReservedWord([]byte(c.src), 0, c.mode)
		if (err == nil) != c.ok {
			t.Errorf("IsReservedWord(%q, %v) err = %v", c.src, c.mode, err)
			continue
		}
		if err != nil {
			nm, _ := parse.AsNoMatch(err)
			if nm == nil || nm.Reason != c.reason || nm.Pos != 0 {
				t.Errorf("IsReservedWord(%q, %v) = %+v", c.src, c.mode, nm)
			}
		}
	}
}

func TestAutomatonRunReportsLongestAccept(t *testing.T) {
	dfa := keyword.NewAutomaton([]token.Word{token.KwIn, token.KwInstanceof})
	w, end, ok := dfa.Run([]byte("instanceof"), 0)
	if !ok || w != token.KwInstanceof || end != 10 {
		t.Fatalf("Run = %v %d %v", w, end, ok)
	}
	w, end, ok = dfa.Run([]byte("inst"), 0)
	if !ok || w != token.KwIn || end != 2 {
		t.Fatalf("Run(inst) = %v %d %v", w, end, ok)
	}
	if dfa.States() != 11 {
		t.Fatalf("States = %d", dfa.States())
	}
}

func TestClassifyLeavesCursor(t *testing.T) {
	c := cursorFor("  typeof x")
	m, err := keyword.Classify(&c, token.ModeSloppy)
	if err != nil || m.Word != token.KwTypeof {
		t.Fatalf("Classify = %+v, %v", m, err)
	}
	if c.Off != 0 {
		t.Fatalf("Classify moved cursor to %d", c.Off)
	}
}

func TestAggregateFailureContext(t *testing.T) {
	nm := mustFail(t, "Keywords", keyword.Keywords, "  identifier")
	if nm.Context != "keyword" || nm.Pos != 2 {
		t.Fatalf("failure = %+v", nm)
	}
}
