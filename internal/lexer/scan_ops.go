package lexer

import (
	"beleg/internal/token"
)

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
// Набор из token.Kind (==>, +=, ++, ->, -=, *=, /=, %=, <=, >=, =>, ==,
// !=, ::, :~, :-, ~>, |>, одиночные знаки и скобки).
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp}
	}

	// стрелки, присваивания, сравнения, пути
	switch {
	case lx.try3('=', '=', '>'):
		return emit(token.EqEqGt)
	case lx.try2('+', '='):
		return emit(token.PlusAssign)
	case lx.try2('+', '+'):
		return emit(token.PlusPlus)
	case lx.try2('-', '>'):
		return emit(token.Arrow)
	case lx.try2('-', '='):
		return emit(token.MinusAssign)
	case lx.try2('*', '='):
		return emit(token.StarAssign)
	case lx.try2('/', '='):
		return emit(token.SlashAssign)
	case lx.try2('%', '='):
		return emit(token.PercentAssign)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2('=', '>'):
		return emit(token.FatArrow)
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('!', '='):
		return emit(token.BangEq)
	case lx.try2(':', ':'):
		return emit(token.ColonColon)
	case lx.try2(':', '~'):
		return emit(token.ColonTilde)
	case lx.try2(':', '-'):
		return emit(token.ColonMinus)
	case lx.try2('~', '>'):
		return emit(token.TildeGt)
	case lx.try2('|', '>'):
		return emit(token.PipeGt)
	}

	// односимвольные
	ch := lx.cursor.Bump()
	switch ch {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '%':
		return emit(token.Percent)
	case '=':
		return emit(token.Assign)
	case '!':
		return emit(token.Bang)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '.':
		return emit(token.Dot)
	case ':':
		return emit(token.Colon)
	case ';':
		return emit(token.Semicolon)
	case ',':
		return emit(token.Comma)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case '~':
		return emit(token.Tilde)
	case '|':
		return emit(token.Pipe)
	case '#':
		return emit(token.Hash)
	case '?':
		return emit(token.Question)
	case '\\':
		return emit(token.Backslash)
	case '&':
		return emit(token.Amp)
	case '^':
		return emit(token.Caret)
	case '$':
		return emit(token.Dollar)
	case '@':
		return emit(token.At)
	default:
		// неизвестный байт: Invalid шириной в один байт, курсор уже продвинут
		return emit(token.Invalid)
	}
}
