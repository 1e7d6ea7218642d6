package token

// Word identifies one reserved or contextual spelling.
type Word uint8

const (
	// WordNone is the zero value: not a known spelling.
	WordNone Word = iota

	// ES5 keywords, reserved in every mode.
	KwBreak
	KwDo
	KwInstanceof
	KwTypeof
	KwCase
	KwElse
	KwNew
	KwVar
	KwCatch
	KwFinally
	KwReturn
	KwVoid
	KwContinue
	KwFor
	KwSwitch
	KwWhile
	KwDebugger
	KwFunction
	KwThis
	KwWith
	KwDefault
	KwIf
	KwThrow
	KwDelete
	KwIn
	KwTry

	// Future reserved words, reserved in every mode.
	KwClass
	KwEnum
	KwExtends
	KwSuper
	KwConst
	KwExport
	KwImport
	KwAwait // es2017

	// Future reserved words, strict mode only.
	KwImplements
	KwLet
	KwPrivate
	KwPublic
	KwInterface
	KwPackage
	KwProtected
	KwStatic
	KwYield

	// Literal values owned by the literal parser.
	KwNull
	KwTrue
	KwFalse

	// Contextual words: meaningful to the grammar, never reserved.
	KwOf
	KwGet
	KwSet
	KwAsync // es2017

	wordCount
)

// NumWords is the number of known spellings, WordNone excluded.
const NumWords = int(wordCount) - 1

// String returns the source spelling of the word.
func (w Word) String() string {
	if w == WordNone || w >= wordCount {
		return "<none>"
	}
	return table[w-1].Spelling
}

// Tier returns the reservation tier the word is tagged with.
func (w Word) Tier() Tier {
	if w == WordNone || w >= wordCount {
		return TierNone
	}
	return table[w-1].Tier
}

// In reports whether the word belongs to tier t, honouring the
// FutureReservedLax ⊆ FutureReservedStrict nesting.
func (w Word) In(t Tier) bool {
	own := w.Tier()
	if own == TierNone {
		return false
	}
	if t == TierFutureReservedStrict && own == TierFutureReservedLax {
		return true
	}
	return own == t
}

// ReservedIn reports whether the word may not be used as an identifier in mode m.
func (w Word) ReservedIn(m Mode) bool {
	switch w.Tier() {
	case TierKeyword, TierFutureReservedLax, TierLiteral:
		return true
	case TierFutureReservedStrict:
		return m == ModeStrict
	default:
		return false
	}
}
