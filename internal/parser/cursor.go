package parser

import (
	"beleg/internal/token"
)

// NextToken consumes and returns the token under the cursor. Past the
// end it returns a synthetic Eof and does not move.
func (p *Parser) NextToken() token.Token {
	if p.cursor >= len(p.tokens) {
		return token.New(token.Eof, 0, 0)
	}
	tok := p.tokens[p.cursor]
	p.cursor++
	return tok
}

// PeekNextToken returns the token under the cursor without consuming
// it, or a synthetic Eof past the end.
func (p *Parser) PeekNextToken() token.Token {
	if p.cursor >= len(p.tokens) {
		return token.New(token.Eof, 0, 0)
	}
	return p.tokens[p.cursor]
}

// CurrentToken returns the last consumed token. Before the first
// consumption, and with the cursor out of range, it returns a synthetic
// Sof.
func (p *Parser) CurrentToken() token.Token {
	if p.cursor == 0 || p.cursor > len(p.tokens) {
		return token.New(token.Sof, 0, 0)
	}
	return p.tokens[p.cursor-1]
}

// PreviousToken returns the last consumed token, or a synthetic Sof
// before the first consumption.
func (p *Parser) PreviousToken() token.Token {
	if p.cursor == 0 {
		return token.New(token.Sof, 0, 0)
	}
	return p.tokens[p.cursor-1]
}

// TokenAt returns the token at an absolute index, or a synthetic Eof
// out of range. The cursor does not move.
func (p *Parser) TokenAt(index int) token.Token {
	if index < 0 || index >= len(p.tokens) {
		return token.New(token.Eof, 0, 0)
	}
	return p.tokens[index]
}

// Peek reports whether the tokens from the cursor onward match expected
// kind for kind. The window must leave at least one token after it, so
// a window touching the final token never matches. Nothing is consumed.
func (p *Parser) Peek(expected ...token.Kind) bool {
	if p.cursor+len(expected) >= len(p.tokens) {
		return false
	}
	for i, kind := range expected {
		if p.tokens[p.cursor+i].Kind != kind {
			return false
		}
	}
	return true
}

// EatToken consumes exactly one token if it has the expected kind.
// Otherwise the cursor stays put. The boolean result composes into
// larger alternatives.
func (p *Parser) EatToken(expected token.Kind) bool {
	if p.cursor >= len(p.tokens) {
		return false
	}
	if p.tokens[p.cursor].Kind == expected {
		p.cursor++
		return true
	}
	return false
}

// EatTokens advances the cursor by amount, clamping at the end.
// Non-positive amounts do nothing.
func (p *Parser) EatTokens(amount int) {
	if amount <= 0 {
		return
	}
	p.cursor += amount
	if p.cursor > len(p.tokens) {
		p.cursor = len(p.tokens)
	}
}
