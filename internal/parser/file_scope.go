package parser

import (
	"beleg/internal/ast"
	"beleg/internal/token"
)

// tryFileScope — стартовая продукция: весь файл как один узел.
//
// It consumes tokens up to Eof so the node span covers the whole file.
// An Invalid token fails the production at that token's position; the
// cursor is left where the failure happened.
func (p *Parser) tryFileScope() (ast.NodeIndex, *ParseError) {
	defer p.Scoped()()

	for p.PeekNextToken().Kind != token.Eof {
		if p.PeekNextToken().Kind == token.Invalid {
			return ast.NoNode, NewParseError(
				p.NextTokenSpan(), "invalid token", InvalidToken)
		}
		p.NextToken()
	}

	// Гнездо элементов пока пустое: грамматика верхнего уровня ничего
	// не порождает, но раскладка FileScope требует групповой слот.
	node := ast.NewNode(ast.NodeFileScope, p.CurrentSpan()).
		AddMultipleChildren(nil)
	return p.tree.AddNode(node), nil
}
