package token

// ReservedWord is one entry of the reserved-word table.
type ReservedWord struct {
	Spelling string
	Word     Word
	Tier     Tier
}

// table is indexed by Word-1. Order inside a tier is the try-order of the
// tier's ordered choice.
var table = [NumWords]ReservedWord{
	{"break", KwBreak, TierKeyword},
	{"do", KwDo, TierKeyword},
	{"instanceof", KwInstanceof, TierKeyword},
	{"typeof", KwTypeof, TierKeyword},
	{"case", KwCase, TierKeyword},
	{"else", KwElse, TierKeyword},
	{"new", KwNew, TierKeyword},
	{"var", KwVar, TierKeyword},
	{"catch", KwCatch, TierKeyword},
	{"finally", KwFinally, TierKeyword},
	{"return", KwReturn, TierKeyword},
	{"void", KwVoid, TierKeyword},
	{"continue", KwContinue, TierKeyword},
	{"for", KwFor, TierKeyword},
	{"switch", KwSwitch, TierKeyword},
	{"while", KwWhile, TierKeyword},
	{"debugger", KwDebugger, TierKeyword},
	{"function", KwFunction, TierKeyword},
	{"this", KwThis, TierKeyword},
	{"with", KwWith, TierKeyword},
	{"default", KwDefault, TierKeyword},
	{"if", KwIf, TierKeyword},
	{"throw", KwThrow, TierKeyword},
	{"delete", KwDelete, TierKeyword},
	{"in", KwIn, TierKeyword},
	{"try", KwTry, TierKeyword},

	{"class", KwClass, TierFutureReservedLax},
	{"enum", KwEnum, TierFutureReservedLax},
	{"extends", KwExtends, TierFutureReservedLax},
	{"super", KwSuper, TierFutureReservedLax},
	{"const", KwConst, TierFutureReservedLax},
	{"export", KwExport, TierFutureReservedLax},
	{"import", KwImport, TierFutureReservedLax},
	{"await", KwAwait, TierFutureReservedLax},

	{"implements", KwImplements, TierFutureReservedStrict},
	{"let", KwLet, TierFutureReservedStrict},
	{"private", KwPrivate, TierFutureReservedStrict},
	{"public", KwPublic, TierFutureReservedStrict},
	{"interface", KwInterface, TierFutureReservedStrict},
	{"package", KwPackage, TierFutureReservedStrict},
	{"protected", KwProtected, TierFutureReservedStrict},
	{"static", KwStatic, TierFutureReservedStrict},
	{"yield", KwYield, TierFutureReservedStrict},

	{"null", KwNull, TierLiteral},
	{"true", KwTrue, TierLiteral},
	{"false", KwFalse, TierLiteral},

	{"of", KwOf, TierContextual},
	{"get", KwGet, TierContextual},
	{"set", KwSet, TierContextual},
	{"async", KwAsync, TierContextual},
}

var (
	bySpelling = make(map[string]Word, NumWords)
	// MaxLen is the length in bytes of the longest known spelling.
	MaxLen int
)

func init() {
	for i, e := range table {
		if e.Word != Word(i+1) { // #nosec G115 -- NumWords < 256
			panic("token: table out of order at " + e.Spelling)
		}
		bySpelling[e.Spelling] = e.Word
		if len(e.Spelling) > MaxLen {
			MaxLen = len(e.Spelling)
		}
	}
}

// Lookup returns the table entry for spelling s.
// Lookup is case sensitive: "If" is not a keyword.
func Lookup(s string) (ReservedWord, bool) {
	w, ok := bySpelling[s]
	if !ok {
		return ReservedWord{}, false
	}
	return table[w-1], true
}

// LookupReserved is Lookup restricted to the words reserved in mode m.
func LookupReserved(s string, m Mode) (ReservedWord, bool) {
	e, ok := Lookup(s)
	if !ok || !e.Word.ReservedIn(m) {
		return ReservedWord{}, false
	}
	return e, true
}

// Table returns a copy of every entry in table order.
func Table() []ReservedWord {
	out := make([]ReservedWord, NumWords)
	copy(out, table[:])
	return out
}

// Members returns the words of tier t in try-order. For
// TierFutureReservedStrict the lax words come first, then the strict-only
// additions.
func Members(t Tier) []Word {
	var out []Word
	if t == TierFutureReservedStrict {
		out = append(out, Members(TierFutureReservedLax)...)
	}
	for _, e := range table {
		if e.Tier == t {
			out = append(out, e.Word)
		}
	}
	return out
}

// ReservedWords returns every word reserved in mode m, in table order.
func ReservedWords(m Mode) []Word {
	out := make([]Word, 0, NumWords)
	for _, e := range table {
		if e.Word.ReservedIn(m) {
			out = append(out, e.Word)
		}
	}
	return out
}
