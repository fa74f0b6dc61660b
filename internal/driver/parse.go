package driver

import (
	"fmt"

	"beleg/internal/ast"
	"beleg/internal/diag"
	"beleg/internal/lexer"
	"beleg/internal/observ"
	"beleg/internal/parser"
	"beleg/internal/source"
	"beleg/internal/token"
)

// ParseResult holds one parsed file.
type ParseResult struct {
	FileID     source.FileID
	Tree       *ast.Ast
	TokenCount int
	Timer      *observ.Timer
}

// ParseFile registers content under name in the shared map, lexes it
// and runs the parser. Diagnostics flow into ctx; node spans land in
// the map's global offset space.
func ParseFile(sm *source.SourceMap, name string, content []byte, ctx *diag.Context) *ParseResult {
	timer := observ.NewTimer()
	fileID := sm.AddFile(name, content)
	file := sm.GetFile(fileID)

	lexIdx := timer.Start("lex " + name)
	tokens := lexer.Tokenize(file.Content)
	timer.Stop(lexIdx, fmt.Sprintf("%d tokens", len(tokens)))

	parseIdx := timer.Start("parse " + name)
	p := parser.New(sm, stripComments(tokens), file.StartPos)
	p.Parse(ctx)
	tree := p.Finalize()
	timer.Stop(parseIdx, fmt.Sprintf("%d nodes", tree.Len()-1))

	return &ParseResult{
		FileID:     fileID,
		Tree:       tree,
		TokenCount: len(tokens),
		Timer:      timer,
	}
}

// stripComments drops comment tokens: the grammar never sees them.
func stripComments(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == token.Comment {
			continue
		}
		out = append(out, tok)
	}
	return out
}
