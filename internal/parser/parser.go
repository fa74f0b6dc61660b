// Package parser turns one file's token sequence into an ast.Ast.
//
// The engine is a cursor over an immutable token slice plus a stack of
// saved cursor positions. Entering a grammar production pushes the
// cursor (Scoped), so CurrentSpan always knows where the innermost
// production started; exiting pops. The stack tracks span boundaries
// only, it never rewinds the cursor: productions that try alternatives
// save and restore the cursor themselves via Mark/ResetTo.
//
// Token access is total. Reading past the last token yields a synthetic
// Eof token, reading before the first consumed token yields a synthetic
// Sof token, so productions never bounds-check.
//
// Token spans are local to the lexed buffer; the parser shifts them by
// startPos into global SourceMap coordinates when it builds node spans.
package parser

import (
	"beleg/internal/ast"
	"beleg/internal/diag"
	"beleg/internal/source"
	"beleg/internal/token"
)

// Parser — состояние разбора одного файла.
type Parser struct {
	sm          *source.SourceMap
	tokens      []token.Token
	tree        *ast.Ast
	cursor      int
	cursorStack []int
	startPos    uint32
}

// New builds a parser over one file's tokens. startPos is the global
// offset of the file's first byte in sm; token spans get shifted by it.
// The constructor enters the outermost scope, so Degree starts at 1.
func New(sm *source.SourceMap, tokens []token.Token, startPos uint32) *Parser {
	p := &Parser{
		sm:          sm,
		tokens:      tokens,
		tree:        ast.New(),
		cursorStack: make([]int, 0, 16),
		startPos:    startPos,
	}
	p.enter()
	return p
}

// Parse attempts the file-scope production. On success the result
// becomes the tree root; on failure the error is emitted through ctx
// and the tree keeps its zero root. One top-level error per call.
func (p *Parser) Parse(ctx *diag.Context) {
	root, err := p.tryFileScope()
	if err != nil {
		err.Emit(ctx)
		return
	}
	p.tree.SetRoot(root)
}

// Finalize hands the built tree out and leaves the parser unusable for
// further building. Calls after the first return nil.
func (p *Parser) Finalize() *ast.Ast {
	tree := p.tree
	p.tree = nil
	return tree
}

// enter запоминает позицию курсора как начало новой продукции.
func (p *Parser) enter() {
	p.cursorStack = append(p.cursorStack, p.cursor)
}

// exit снимает верх стека; на пустом стеке ничего не делает.
func (p *Parser) exit() {
	if n := len(p.cursorStack); n > 0 {
		p.cursorStack = p.cursorStack[:n-1]
	}
}

// Scoped enters a production scope and returns the matching exit:
//
//	defer p.Scoped()()
//
// guarantees the scope unwinds on every path out of the production.
func (p *Parser) Scoped() func() {
	p.enter()
	return p.exit
}

// Degree reports the current scope-nesting depth. A freshly constructed
// parser reports 1.
func (p *Parser) Degree() int {
	return len(p.cursorStack)
}

// Mark snapshots the cursor for explicit backtracking around
// alternative sub-parses.
func (p *Parser) Mark() int {
	return p.cursor
}

// ResetTo rewinds the cursor to a position previously taken via Mark.
func (p *Parser) ResetTo(m int) {
	p.cursor = m
}

// CurrentSpan covers the innermost production: from the token the scope
// started at up to the last consumed token, in global coordinates.
// Start past the end collapses to 0, an out-of-range end collapses to
// the start.
func (p *Parser) CurrentSpan() source.Span {
	if len(p.cursorStack) == 0 {
		return source.Span{}
	}

	start := p.cursorStack[len(p.cursorStack)-1]
	end := p.cursor

	var startPos uint32
	if start < len(p.tokens) {
		startPos = p.tokens[start].Span.Start
	}
	endPos := startPos
	if end < len(p.tokens) && end > 0 {
		endPos = p.tokens[end-1].Span.End
	}

	return source.NewSpan(startPos, endPos).WithOffset(p.startPos)
}

// NextTokenSpan is the global span of the token the cursor stands on,
// or the zero span at the end of input.
func (p *Parser) NextTokenSpan() source.Span {
	if p.cursor >= len(p.tokens) {
		return source.Span{}
	}
	return p.tokens[p.cursor].Span.WithOffset(p.startPos)
}
