package lexer

import (
	"jskw/internal/token"
)

// Skipper skips whitespace, line terminators and comments.
type Skipper struct {
	opts Options
	hold []token.Trivia
}

// NewSkipper returns a Skipper configured by opts.
func NewSkipper(opts Options) *Skipper {
	return &Skipper{opts: opts}
}

// SkipTrivia advances c past any whitespace and comments and returns the new
// offset. It is the whitespace collaborator used by every recognizer.
func SkipTrivia(c *Cursor) uint32 {
	var s Skipper
	s.Skip(c)
	return c.Off
}

// Trivia returns what the last Skip call collected when Options.Collect is set.
func (s *Skipper) Trivia() []token.Trivia {
	return s.hold
}

// Skip собирает подряд идущие trivia перед значимым токеном.
//   - ' ', '\t', '\v', '\f', NBSP, BOM и Zs коалесцируются в один TriviaSpace
//   - переводы строк (\n, \r, U+2028, U+2029) коалесцируются в TriviaNewline
//   - //... до конца строки -> TriviaLineComment
//   - /* ... */ -> TriviaBlockComment (без вложенности; если не закрыт — репорт и обрезаем на EOF)
//   - #! в начале файла -> TriviaHashbang
func (s *Skipper) Skip(c *Cursor) {
	s.hold = s.hold[:0]
	if c.Off == 0 && c.HasPrefix("#!") {
		start := c.Mark()
		s.skipLine(c)
		s.push(token.TriviaHashbang, c, start)
	}
	for !c.EOF() {
		start := c.Mark()
		r, _ := c.PeekRune()

		if IsWhitespace(r) {
			for {
				r2, sz := c.PeekRune()
				if sz == 0 || !IsWhitespace(r2) {
					break
				}
				c.BumpRune()
			}
			s.push(token.TriviaSpace, c, start)
			continue
		}

		if IsLineTerminator(r) {
			for {
				r2, sz := c.PeekRune()
				if sz == 0 || !IsLineTerminator(r2) {
					break
				}
				c.BumpRune()
			}
			s.push(token.TriviaNewline, c, start)
			continue
		}

		if r == '/' && s.skipComment(c) {
			continue
		}

		// нет больше trivia
		break
	}
}

func (s *Skipper) skipComment(c *Cursor) bool {
	start := c.Mark()
	b0, b1, ok := c.Peek2()
	if !ok || b0 != '/' {
		return false
	}
	switch b1 {
	case '/':
		s.skipLine(c)
		s.push(token.TriviaLineComment, c, start)
		return true
	case '*':
		c.Bump()
		c.Bump()
		for {
			if c.EOF() {
				sp := c.SpanFrom(start)
				if s.opts.Reporter != nil {
					s.opts.Reporter.Report(KindUnterminatedComment, sp, "unterminated block comment")
				}
				break
			}
			if b0, b1, ok := c.Peek2(); ok && b0 == '*' && b1 == '/' {
				c.Bump()
				c.Bump()
				break
			}
			c.Bump()
		}
		s.push(token.TriviaBlockComment, c, start)
		return true
	default:
		// это не комментарий, а оператор '/'
		return false
	}
}

func (s *Skipper) skipLine(c *Cursor) {
	for {
		r, sz := c.PeekRune()
		if sz == 0 || IsLineTerminator(r) {
			return
		}
		c.BumpRune()
	}
}

func (s *Skipper) push(kind token.TriviaKind, c *Cursor, start Mark) {
	if !s.opts.Collect {
		return
	}
	s.hold = append(s.hold, token.Trivia{Kind: kind, Span: c.SpanFrom(start)})
}
