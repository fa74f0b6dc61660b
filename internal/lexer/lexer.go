// Package lexer turns Beleg source bytes into a flat token stream.
//
// The scanner is infallible: any byte it cannot place becomes an Invalid
// token one byte wide, so a malformed input still yields a usable stream.
// Token spans are local to the scanned buffer.
package lexer

import (
	"beleg/internal/token"
)

// Lexer сканирует один буфер исходника
type Lexer struct {
	src    []byte
	cursor Cursor
}

// New creates a lexer over the provided source bytes.
func New(src []byte) *Lexer {
	return &Lexer{
		src:    src,
		cursor: NewCursor(src),
	}
}

// Next возвращает следующий токен. После конца буфера всегда возвращает Eof.
func (lx *Lexer) Next() token.Token {
	lx.skipWhitespace()

	if lx.cursor.EOF() {
		return token.New(token.Eof, lx.cursor.Off, lx.cursor.Off)
	}

	// "--" и "{-" распознаются раньше операторов "-" и "{"
	if b0, b1, ok := lx.cursor.Peek2(); ok {
		switch {
		case b0 == '-' && b1 == '-':
			return lx.scanLineComment()
		case b0 == '{' && b1 == '-':
			return lx.scanBlockComment()
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == '"':
		return lx.scanString()
	case ch == '\'':
		return lx.scanChar()
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Tokenize scans the whole buffer and returns every token, comments
// included, with a single trailing Eof.
func Tokenize(src []byte) []token.Token {
	lx := New(src)
	toks := make([]token.Token, 0, len(src)/4+1)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.Eof {
			return toks
		}
	}
}

// skipWhitespace пропускает пробелы, табуляции и переводы строк
func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() && isSpaceByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}
