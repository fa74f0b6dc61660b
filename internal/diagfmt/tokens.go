package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"beleg/internal/source"
	"beleg/internal/token"
)

// TokenOutput is one token in JSON form. Spans are file-local bytes.
type TokenOutput struct {
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, file *source.SourceFile) error {
	for i, tok := range tokens {
		start := file.BytePosToLocation(tok.Span.Start, 0)
		end := file.BytePosToLocation(tok.Span.End, 0)

		fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String())

		if text, ok := file.SpanText(tok.Span); ok && text != "" {
			fmt.Fprintf(w, " %q", text)
		}

		fmt.Fprintf(w, " at %d:%d-%d:%d\n",
			start.Line, start.Column+1,
			end.Line, end.Column+1)

		if tok.Kind == token.Eof {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, file *source.SourceFile) error {
	output := make([]TokenOutput, 0, len(tokens))

	for _, tok := range tokens {
		text, _ := file.SpanText(tok.Span)
		output = append(output, TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  text,
			Start: tok.Span.Start,
			End:   tok.Span.End,
		})

		if tok.Kind == token.Eof {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
