package lexer

import (
	"beleg/internal/token"
)

// scanNumber сканирует числовой литерал. Первый байт гарантированно цифра.
//
// Формы: 0b/0B двоичная, 0o/0O восьмеричная, 0x/0X шестнадцатеричная,
// десятичная, десятичная с точкой (Real) и с экспонентой после точки
// (RealSci). Экспонента без точки не распознаётся: "1e5" это Int "1"
// и идентификатор "e5".
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		return token.Token{Kind: k, Span: lx.cursor.SpanFrom(start)}
	}

	// префиксные основания
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' {
		switch b1 {
		case 'b', 'B':
			lx.cursor.Bump()
			lx.cursor.Bump()
			for !lx.cursor.EOF() && isBin(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			return emit(token.IntBin)
		case 'o', 'O':
			lx.cursor.Bump()
			lx.cursor.Bump()
			for !lx.cursor.EOF() && isOct(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			return emit(token.IntOct)
		case 'x', 'X':
			lx.cursor.Bump()
			lx.cursor.Bump()
			for !lx.cursor.EOF() && isHex(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			return emit(token.IntHex)
		}
	}

	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// дробная часть; точка поглощается даже без цифр после неё
	if lx.cursor.Eat('.') {
		for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}

		if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
			lx.cursor.Bump()
			if b := lx.cursor.Peek(); b == '+' || b == '-' {
				lx.cursor.Bump()
			}
			for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			return emit(token.RealSci)
		}
		return emit(token.Real)
	}

	return emit(token.Int)
}
