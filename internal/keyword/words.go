package keyword

import (
	"jskw/internal/literal"
	"jskw/internal/parse"
	"jskw/internal/token"
)

// recognizers is indexed by token.Word; literal words delegate to the
// literal package so both share one definition.
var recognizers = buildRecognizers()

func buildRecognizers() []parse.Recognizer {
	out := make([]parse.Recognizer, token.NumWords+1)
	for _, e := range token.Table() {
		switch e.Word {
		case token.KwNull:
			out[e.Word] = literal.Null
		case token.KwTrue:
			out[e.Word] = literal.True
		case token.KwFalse:
			out[e.Word] = literal.False
		default:
			out[e.Word] = parse.Word(e.Spelling, e.Spelling)
		}
	}
	return out
}

// ForWord returns the recognizer of a single spelling, or nil for WordNone.
func ForWord(w token.Word) parse.Recognizer {
	if int(w) >= len(recognizers) {
		return nil
	}
	return recognizers[w]
}

// Keywords.
var (
	Break      = ForWord(token.KwBreak)
	Do         = ForWord(token.KwDo)
	Instanceof = ForWord(token.KwInstanceof)
	Typeof     = ForWord(token.KwTypeof)
	Case       = ForWord(token.KwCase)
	Else       = ForWord(token.KwElse)
	New        = ForWord(token.KwNew)
	Var        = ForWord(token.KwVar)
	Catch      = ForWord(token.KwCatch)
	Finally    = ForWord(token.KwFinally)
	Return     = ForWord(token.KwReturn)
	Void       = ForWord(token.KwVoid)
	Continue   = ForWord(token.KwContinue)
	For        = ForWord(token.KwFor)
	Switch     = ForWord(token.KwSwitch)
	While      = ForWord(token.KwWhile)
	Debugger   = ForWord(token.KwDebugger)
	Function   = ForWord(token.KwFunction)
	This       = ForWord(token.KwThis)
	With       = ForWord(token.KwWith)
	Default    = ForWord(token.KwDefault)
	If         = ForWord(token.KwIf)
	Throw      = ForWord(token.KwThrow)
	Delete     = ForWord(token.KwDelete)
	In         = ForWord(token.KwIn)
	Try        = ForWord(token.KwTry)
)

// Future reserved words.
var (
	Class   = ForWord(token.KwClass)
	Enum    = ForWord(token.KwEnum)
	Extends = ForWord(token.KwExtends)
	Super   = ForWord(token.KwSuper)
	Const   = ForWord(token.KwConst)
	Export  = ForWord(token.KwExport)
	Import  = ForWord(token.KwImport)
	Await   = ForWord(token.KwAwait)

	Implements = ForWord(token.KwImplements)
	Let        = ForWord(token.KwLet)
	Private    = ForWord(token.KwPrivate)
	Public     = ForWord(token.KwPublic)
	Interface  = ForWord(token.KwInterface)
	Package    = ForWord(token.KwPackage)
	Protected  = ForWord(token.KwProtected)
	Static     = ForWord(token.KwStatic)
	Yield      = ForWord(token.KwYield)
)

// Literal words and contextual words.
var (
	Null  = ForWord(token.KwNull)
	True  = ForWord(token.KwTrue)
	False = ForWord(token.KwFalse)

	Of    = ForWord(token.KwOf)
	Get   = ForWord(token.KwGet)
	Set   = ForWord(token.KwSet)
	Async = ForWord(token.KwAsync)
)
