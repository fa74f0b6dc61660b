package lexer

import (
	"beleg/internal/token"
)

// scanString сканирует строковый литерал вместе с кавычками.
// Обратный слэш экранирует следующий байт. Незакрытая строка
// тянется до конца буфера.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // открывающая кавычка

	for !lx.cursor.EOF() && lx.cursor.Peek() != '"' {
		if lx.cursor.Peek() == '\\' {
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump() // экранированный байт
			}
			continue
		}
		lx.cursor.Bump()
	}

	lx.cursor.Eat('"') // закрывающая кавычка, если есть

	return token.Token{Kind: token.Str, Span: lx.cursor.SpanFrom(start)}
}

// scanChar сканирует символьный литерал вместе с кавычками:
// одиночный байт или экранированная пара, затем закрывающая
// кавычка, если она есть. Span не выходит за конец буфера.
func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // открывающая кавычка

	if lx.cursor.Peek() == '\\' {
		lx.cursor.Bump()
		lx.cursor.Bump() // экранированный байт; на конце буфера Bump пустой
	} else {
		lx.cursor.Bump()
	}

	lx.cursor.Eat('\'') // закрывающая кавычка, если есть

	return token.Token{Kind: token.Char, Span: lx.cursor.SpanFrom(start)}
}
