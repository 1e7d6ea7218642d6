package lexer

import (
	"jskw/internal/source"
)

// Reporter — тонкий интерфейс, чтобы не тянуть diag сюда.
// The skipper only calls it; the diag layer owns formatting.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

// Options configure a Skipper.
type Options struct {
	Reporter Reporter // может быть nil — тогда ошибки игнорируем
	// Collect keeps the skipped trivia so callers can inspect it.
	Collect bool
}

const (
	// KindUnterminatedComment is reported for a block comment without "*/".
	KindUnterminatedComment = "unterminated-comment"
)
