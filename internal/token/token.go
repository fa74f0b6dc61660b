package token

import (
	"fmt"

	"beleg/internal/source"
)

// Token is a single lexical unit. Span is a byte range local to the
// buffer the token was lexed from; the parser shifts it into global
// coordinates when it needs to.
type Token struct {
	Kind Kind
	Span source.Span
}

// New builds a token over the half-open byte range [start, end).
func New(kind Kind, start, end uint32) Token {
	return Token{Kind: kind, Span: source.NewSpan(start, end)}
}

// IsLiteral reports whether the token is a string, numeric, or character literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Str, Int, IntBin, IntOct, IntHex, Real, RealSci, Char:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwAnd && t.Kind <= KwWhile
}

// IsOperator reports whether the token is an operator or punctuation.
func (t Token) IsOperator() bool {
	return t.Kind >= Plus && t.Kind <= Underscore
}

// IsEof reports whether the token marks the end of input.
func (t Token) IsEof() bool { return t.Kind == Eof }

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %d, %d)", t.Kind, t.Span.Start, t.Span.End)
}
