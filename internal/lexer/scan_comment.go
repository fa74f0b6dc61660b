package lexer

import (
	"beleg/internal/token"
)

// scanLineComment сканирует "--" до конца строки, не включая перевод строки.
func (lx *Lexer) scanLineComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()

	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}

	return token.Token{Kind: token.Comment, Span: lx.cursor.SpanFrom(start)}
}

// scanBlockComment сканирует "{- ... -}" с поддержкой вложенности.
// Незакрытый комментарий тянется до конца буфера.
func (lx *Lexer) scanBlockComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()

	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		if b0, b1, ok := lx.cursor.Peek2(); ok {
			if b0 == '{' && b1 == '-' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				depth++
				continue
			}
			if b0 == '-' && b1 == '}' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				depth--
				continue
			}
		}
		lx.cursor.Bump()
	}

	return token.Token{Kind: token.Comment, Span: lx.cursor.SpanFrom(start)}
}
