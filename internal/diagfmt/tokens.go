package diagfmt

import (
	"fmt"
	"io"

	"jskw/internal/source"
	"jskw/internal/token"
)

type TokenOutput struct {
	Kind string      `json:"kind"`
	Word string      `json:"word,omitempty"`
	Tier string      `json:"tier,omitempty"`
	Text string      `json:"text,omitempty"`
	Span source.Span `json:"span"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)
		line := fmt.Sprintf("%3d: %-11s", i+1, tok.Kind)
		if tok.Text != "" {
			line += fmt.Sprintf(" %q", tok.Text)
		}
		if tok.IsWord() || tok.Word != token.WordNone {
			line += fmt.Sprintf(" [%s]", tok.Word.Tier())
		}
		line += fmt.Sprintf(" at %d:%d-%d:%d", startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{Kind: tok.Kind.String(), Text: tok.Text, Span: tok.Span}
		if tok.Word != token.WordNone {
			out.Word = tok.Word.String()
			out.Tier = tok.Word.Tier().String()
		}
		output = append(output, out)
		if tok.Kind == token.EOF {
			break
		}
	}
	return writeJSON(w, output)
}
