package driver

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"jskw/internal/diag"
	"jskw/internal/ident"
	"jskw/internal/keyword"
	"jskw/internal/lexer"
	"jskw/internal/parse"
	"jskw/internal/source"
	"jskw/internal/token"
	"jskw/internal/trace"
)

// Occurrence records one table word found in a file.
type Occurrence struct {
	Word     token.Word  `msgpack:"word"`
	Tier     token.Tier  `msgpack:"tier"`
	Span     source.Span `msgpack:"span"`
	Reserved bool        `msgpack:"reserved"` // reserved in the file's mode
}

// FileResult is what Classify produces for one file.
type FileResult struct {
	Path        string
	FileID      source.FileID
	Mode        token.Mode
	Occurrences []Occurrence
	Tokens      []token.Token // only with Options.KeepTokens
	Bag         *diag.Bag
	Cached      bool
}

// ReservedCount returns how many occurrences are reserved in the file's mode.
func (r *FileResult) ReservedCount() int {
	n := 0
	for _, o := range r.Occurrences {
		if o.Reserved {
			n++
		}
	}
	return n
}

// Classify walks file, classifying every word with the configured matcher.
// String, template and numeric literals are skipped; words inside template
// substitutions are classified. Member names after "." and "?." are not
// treated as reserved.
func Classify(ctx context.Context, file *source.File, opts Options) *FileResult {
	tracer := trace.FromContext(ctx)
	_, span := trace.StartSpan(ctx, trace.ScopeFile, "classify")

	bag := diag.NewBag(opts.maxDiagnostics())
	mode := opts.Mode
	if opts.DetectStrict && mode != token.ModeStrict && (file.IsModule() || hasUseStrict(file)) {
		mode = token.ModeStrict
	}

	s := &scanner{
		file:   file,
		opts:   opts,
		mode:   mode,
		cur:    lexer.NewCursor(file),
		rep:    diag.NewDedupReporter(diag.BagReporter{Bag: bag}),
		ident:  ident.Parser{Mode: mode, Veto: opts.Matcher},
		tracer: tracer,
		res: &FileResult{
			Path:   file.Path,
			FileID: file.ID,
			Mode:   mode,
			Bag:    bag,
		},
	}
	s.skip = lexer.NewSkipper(lexer.Options{Reporter: lexReporter{s.rep}, Collect: true})
	s.run()

	span.WithExtra("mode", mode.String()).
		Count("words", len(s.res.Occurrences)).
		Count("reserved", s.res.ReservedCount()).
		End(file.Path)
	return s.res
}

type scanner struct {
	file   *source.File
	opts   Options
	mode   token.Mode
	cur    lexer.Cursor
	skip   *lexer.Skipper
	rep    diag.Reporter
	ident  ident.Parser
	tracer trace.Tracer
	res    *FileResult

	prev, prev2 token.Token
	// open template substitutions; each entry counts unclosed '{' inside it
	tmpl []int
}

func (s *scanner) run() {
	for {
		s.skip.Skip(&s.cur)
		if s.cur.EOF() {
			s.emit(token.Token{Kind: token.EOF, Span: s.cur.SpanFrom(s.cur.Mark())})
			return
		}
		s.next()
	}
}

func (s *scanner) next() {
	b := s.cur.Peek()
	switch {
	case b == '"' || b == '\'':
		s.scanString(b)
	case b == '`':
		start := s.cur.Mark()
		s.cur.Bump()
		s.scanTemplate(start)
	case isDigit(b):
		s.scanNumber()
	case b == '.' && s.digitAfterDot():
		s.scanNumber()
	case b == '/' && s.regexAllowed():
		s.scanRegExp()
	default:
		r, _ := s.cur.PeekRune()
		if lexer.StartsIdentifier(r) {
			s.scanWord()
			return
		}
		s.scanPunct()
	}
}

func (s *scanner) emit(tok token.Token) {
	if tok.Kind != token.EOF {
		s.prev2, s.prev = s.prev, tok
	}
	if s.opts.KeepTokens {
		s.res.Tokens = append(s.res.Tokens, tok)
	}
}

func (s *scanner) afterMemberAccess() bool {
	return s.prev.Kind == token.Punct && (s.prev.Text == "." || s.prev.Text == "?.")
}

func (s *scanner) scanWord() {
	at := s.cur.Mark()
	member := s.afterMemberAccess()

	if !member {
		if m, ok := s.reservedAt(); ok {
			s.cur.Off = m.End
			sp := s.cur.SpanFrom(at)
			tok := token.Token{Kind: token.Reserved, Word: m.Word, Span: sp, Text: m.Word.String()}
			s.record(Occurrence{Word: m.Word, Tier: m.Tier, Span: sp, Reserved: true})
			s.checkBinding(tok)
			s.emit(tok)
			return
		}
	}

	var sp source.Span
	if name, err := s.ident.Parse(&s.cur); err == nil {
		sp = name.Span
	} else {
		// reserved member name, e.g. obj.class
		s.scanIdentRun()
		sp = s.cur.SpanFrom(at)
	}
	text := sp.Text(s.file)
	tok := token.Token{Kind: token.Ident, Span: sp, Text: text}
	if e, ok := token.Lookup(text); ok && !member {
		tok.Word = e.Word
		if _, _, err := parse.Run(keyword.Contextual, s.file, sp.Start); err == nil {
			tok.Kind = token.Contextual
		}
		s.record(Occurrence{Word: e.Word, Tier: e.Tier, Span: sp})
	}
	s.checkBinding(tok)
	s.emit(tok)
}

func (s *scanner) scanIdentRun() {
	s.cur.BumpRune()
	for {
		r, sz := s.cur.PeekRune()
		if sz == 0 || !lexer.ContinuesIdentifier(r) {
			return
		}
		s.cur.BumpRune()
	}
}

// reservedAt asks the configured matcher whether a reserved word starts at
// the cursor. The cursor does not move.
func (s *scanner) reservedAt() (keyword.Match, bool) {
	m, err := s.match(s.opts.Matcher)
	if s.opts.CrossCheck {
		other := ident.VetoCombinator
		if s.opts.Matcher == ident.VetoCombinator {
			other = ident.VetoAutomaton
		}
		m2, err2 := s.match(other)
		if (err == nil) != (err2 == nil) || m.Word != m2.Word {
			sp := source.Span{File: s.file.ID, Start: s.cur.Off, End: max(m.End, m2.End, s.cur.Off)}
			s.rep.Report(diag.KwMatcherDisagreement, diag.SevWarning, sp,
				fmt.Sprintf("%s matcher says %q, %s matcher says %q",
					s.opts.Matcher, m.Word, other, m2.Word), nil)
		}
	}
	if s.tracer.Level().ShouldEmit(trace.ScopeWord) {
		detail := "none"
		if err == nil {
			detail = m.Word.String()
		}
		trace.Point(s.tracer, trace.ScopeWord, "match@"+strconv.FormatUint(uint64(s.cur.Off), 10), detail)
	}
	return m, err == nil
}

func (s *scanner) match(v ident.Veto) (keyword.Match, error) {
	if v == ident.VetoCombinator {
		look := s.cur
		sp, err := keyword.ReservedWord(s.mode)(&look)
		if err != nil {
			return keyword.Match{}, err
		}
		e, _ := token.Lookup(sp.Text(s.file))
		return keyword.Match{Word: e.Word, Tier: e.Tier, Start: sp.Start, End: sp.End}, nil
	}
	return keyword.Classify(&s.cur, s.mode)
}

func (s *scanner) record(o Occurrence) {
	o.Reserved = o.Word.ReservedIn(s.mode)
	s.res.Occurrences = append(s.res.Occurrences, o)
}

func declaresBinding(w token.Word) bool {
	switch w {
	case token.KwVar, token.KwLet, token.KwConst, token.KwFunction, token.KwClass:
		return true
	}
	return false
}

// checkBinding reports a table word used as the name in a declaration.
func (s *scanner) checkBinding(tok token.Token) {
	if !declaresBinding(s.prev.Word) {
		return
	}
	if s.prev.Word == token.KwClass && tok.Word == token.KwExtends {
		// anonymous class expression
		return
	}
	decl := []diag.Note{{Span: s.prev.Span, Msg: fmt.Sprintf("declared by '%s' here", s.prev.Word)}}
	switch {
	case tok.Kind == token.Reserved && tok.Word.Tier() == token.TierLiteral:
		s.rep.Report(diag.KwLiteralAsBinding, diag.SevError, tok.Span,
			fmt.Sprintf("literal '%s' cannot be used as a binding name", tok.Word), decl)
	case tok.Kind == token.Reserved:
		s.rep.Report(diag.KwReservedBinding, diag.SevError, tok.Span,
			fmt.Sprintf("'%s' is a reserved word (%s) in %s mode and cannot be used as a binding name",
				tok.Word, tok.Word.Tier(), s.mode), decl)
	case tok.Kind == token.Ident && tok.Word.In(token.TierFutureReservedStrict):
		s.rep.Report(diag.KwStrictOnlyBinding, diag.SevWarning, tok.Span,
			fmt.Sprintf("'%s' is reserved in strict mode", tok.Word), decl)
	}
}

func (s *scanner) scanString(q byte) {
	start := s.cur.Mark()
	if !skipString(&s.cur, q) {
		s.rep.Report(diag.LexUnterminatedString, diag.SevError, s.cur.SpanFrom(start),
			"unterminated string literal", nil)
	}
	s.emit(token.Token{Kind: token.StringLit, Span: s.cur.SpanFrom(start)})
}

// skipString consumes a quoted string whose opening quote is at the cursor.
// It stops before a line terminator when the string is unterminated.
func skipString(c *lexer.Cursor, q byte) bool {
	c.Bump()
	for !c.EOF() {
		switch b := c.Peek(); b {
		case q:
			c.Bump()
			return true
		case '\\':
			c.Bump()
			if !c.EOF() {
				c.BumpRune()
			}
		case '\n', '\r':
			return false
		default:
			c.BumpRune()
		}
	}
	return false
}

// scanTemplate continues a template from the cursor up to the closing
// backtick or the next "${".
func (s *scanner) scanTemplate(start lexer.Mark) {
	for !s.cur.EOF() {
		switch s.cur.Peek() {
		case '`':
			s.cur.Bump()
			s.emit(token.Token{Kind: token.TemplateLit, Span: s.cur.SpanFrom(start)})
			return
		case '\\':
			s.cur.Bump()
			if !s.cur.EOF() {
				s.cur.BumpRune()
			}
		case '$':
			if s.cur.HasPrefix("${") {
				s.cur.Bump()
				s.cur.Bump()
				s.tmpl = append(s.tmpl, 0)
				s.emit(token.Token{Kind: token.TemplateLit, Span: s.cur.SpanFrom(start)})
				return
			}
			s.cur.Bump()
		default:
			s.cur.BumpRune()
		}
	}
	s.rep.Report(diag.LexUnterminatedString, diag.SevError, s.cur.SpanFrom(start),
		"unterminated template literal", nil)
	s.emit(token.Token{Kind: token.TemplateLit, Span: s.cur.SpanFrom(start)})
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func (s *scanner) digitAfterDot() bool {
	_, b1, ok := s.cur.Peek2()
	return ok && isDigit(b1)
}

// scanNumber consumes a numeric literal loosely: digits, letters, '_', '.',
// and a sign right after a decimal exponent.
func (s *scanner) scanNumber() {
	start := s.cur.Mark()
	hex := s.cur.HasPrefix("0x") || s.cur.HasPrefix("0X")
	var last byte
	for !s.cur.EOF() {
		b := s.cur.Peek()
		switch {
		case isDigit(b), b == '.', b == '_', b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		case (b == '+' || b == '-') && !hex && (last == 'e' || last == 'E'):
		default:
			s.emit(token.Token{Kind: token.NumberLit, Span: s.cur.SpanFrom(start)})
			return
		}
		last = s.cur.Bump()
	}
	s.emit(token.Token{Kind: token.NumberLit, Span: s.cur.SpanFrom(start)})
}

func (s *scanner) scanPunct() {
	start := s.cur.Mark()
	switch {
	case s.cur.HasPrefix("..."):
		s.cur.Off += 3
	case s.cur.HasPrefix("?.") && !s.digitAt(2):
		s.cur.Off += 2
	case s.cur.Peek() < 0x80:
		b := s.cur.Bump()
		if n := len(s.tmpl); n > 0 {
			switch {
			case b == '{':
				s.tmpl[n-1]++
			case b == '}' && s.tmpl[n-1] > 0:
				s.tmpl[n-1]--
			case b == '}':
				// closes "${": the template continues
				s.tmpl = s.tmpl[:n-1]
				s.scanTemplate(start)
				return
			}
		}
	default:
		s.cur.BumpRune()
		sp := s.cur.SpanFrom(start)
		s.rep.Report(diag.LexUnknownChar, diag.SevWarning, sp,
			fmt.Sprintf("unexpected character %q", sp.Text(s.file)), nil)
		s.emit(token.Token{Kind: token.Invalid, Span: sp, Text: sp.Text(s.file)})
		return
	}
	sp := s.cur.SpanFrom(start)
	s.emit(token.Token{Kind: token.Punct, Span: sp, Text: sp.Text(s.file)})
}

// regexAllowed decides from the previous token whether a '/' starts a
// regular expression literal rather than a division.
func (s *scanner) regexAllowed() bool {
	switch p := s.prev; p.Kind {
	case token.Invalid:
		return p.Span == (source.Span{})
	case token.Punct:
		if (p.Text == "+" || p.Text == "-") && s.prev2.Text == p.Text && s.prev2.Span.End == p.Span.Start {
			// postfix x++ / y
			return false
		}
		return p.Text != ")" && p.Text != "]" && p.Text != "}"
	case token.Reserved:
		return p.Word.Tier() == token.TierKeyword && p.Word != token.KwThis
	case token.TemplateLit:
		return strings.HasSuffix(p.Span.Text(s.file), "${")
	}
	return false
}

// scanRegExp consumes /body/flags. '/' inside a class [...] does not close
// the literal; a line terminator before the closing '/' does.
func (s *scanner) scanRegExp() {
	start := s.cur.Mark()
	s.cur.Bump()
	class := false
	for {
		if s.cur.EOF() {
			s.unterminatedRegExp(start)
			return
		}
		switch b := s.cur.Peek(); b {
		case '\\':
			s.cur.Bump()
			if s.cur.EOF() || s.atLineTerminator() {
				s.unterminatedRegExp(start)
				return
			}
			s.cur.BumpRune()
		case '[':
			class = true
			s.cur.Bump()
		case ']':
			class = false
			s.cur.Bump()
		case '/':
			s.cur.Bump()
			if !class {
				for {
					r, sz := s.cur.PeekRune()
					if sz == 0 || !lexer.ContinuesIdentifier(r) {
						break
					}
					s.cur.BumpRune()
				}
				s.emit(token.Token{Kind: token.RegExpLit, Span: s.cur.SpanFrom(start)})
				return
			}
		default:
			if s.atLineTerminator() {
				s.unterminatedRegExp(start)
				return
			}
			s.cur.BumpRune()
		}
	}
}

func (s *scanner) atLineTerminator() bool {
	r, sz := s.cur.PeekRune()
	return sz > 0 && lexer.IsLineTerminator(r)
}

func (s *scanner) unterminatedRegExp(start lexer.Mark) {
	sp := s.cur.SpanFrom(start)
	s.rep.Report(diag.LexUnterminatedRegExp, diag.SevError, sp, "unterminated regular expression literal", nil)
	s.emit(token.Token{Kind: token.RegExpLit, Span: sp})
}

func (s *scanner) digitAt(n uint32) bool {
	src := s.cur.Source()
	i := s.cur.Off + n
	return int(i) < len(src) && isDigit(src[i])
}

// hasUseStrict reports whether the directive prologue of file contains a
// "use strict" directive.
func hasUseStrict(file *source.File) bool {
	c := lexer.NewCursor(file)
	sk := lexer.NewSkipper(lexer.Options{Collect: true})
	for {
		sk.Skip(&c)
		q := c.Peek()
		if q != '"' && q != '\'' {
			return false
		}
		start := c.Off
		if !skipString(&c, q) {
			return false
		}
		body := string(file.Content[start+1 : c.Off-1])
		sk.Skip(&c)
		if !c.Eat(';') && !c.EOF() && !sawNewline(sk.Trivia()) && c.Peek() != '}' {
			// "use strict" + x is an expression, not a directive
			return false
		}
		if body == "use strict" {
			return true
		}
	}
}

func sawNewline(tr []token.Trivia) bool {
	for _, t := range tr {
		if t.Kind == token.TriviaNewline {
			return true
		}
	}
	return false
}

// lexReporter adapts diag.Reporter to the skipper's narrow interface.
type lexReporter struct{ r diag.Reporter }

func (l lexReporter) Report(kind string, span source.Span, msg string) {
	code := diag.LexInfo
	sev := diag.SevWarning
	if kind == lexer.KindUnterminatedComment {
		code, sev = diag.LexUnterminatedComment, diag.SevError
	}
	l.r.Report(code, sev, span, msg, nil)
}
