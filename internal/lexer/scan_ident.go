package lexer

import (
	"beleg/internal/token"
)

// scanIdentOrKeyword сканирует идентификатор максимальной длины и
// проверяет его по таблице ключевых слов. Ключевые слова
// чувствительны к регистру: "self" и "Self" это разные токены.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	if kind, ok := token.LookupKeyword(string(lx.src[sp.Start:sp.End])); ok {
		return token.Token{Kind: kind, Span: sp}
	}
	return token.Token{Kind: token.Id, Span: sp}
}
