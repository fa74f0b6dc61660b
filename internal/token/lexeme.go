package token

var lexemes = [...]string{
	Invalid:       "<invalid_token>",
	Sof:           "<start_of_file>",
	Eof:           "<end_of_file>",
	Comment:       "<comment>",
	Id:            "<identifier>",
	KwAnd:         "and",
	KwAs:          "as",
	KwBool:        "bool",
	KwBreak:       "break",
	KwCatch:       "catch",
	KwConst:       "const",
	KwContinue:    "continue",
	KwElse:        "else",
	KwEnum:        "enum",
	KwError:       "error",
	KwExtern:      "extern",
	KwFalse:       "false",
	KwFn:          "fn",
	KwFor:         "for",
	KwIf:          "if",
	KwIn:          "in",
	KwInline:      "inline",
	KwIs:          "is",
	KwLet:         "let",
	KwMatch:       "match",
	KwMod:         "mod",
	KwNewtype:     "newtype",
	KwNot:         "not",
	KwNull:        "null",
	KwOr:          "or",
	KwPrivate:     "private",
	KwRef:         "ref",
	KwReturn:      "return",
	KwSelf:        "self",
	KwSelfCap:     "Self",
	KwStatic:      "static",
	KwStruct:      "struct",
	KwTest:        "test",
	KwTrue:        "true",
	KwTypealias:   "typealias",
	KwUnion:       "union",
	KwUse:         "use",
	KwWhen:        "when",
	KwWhile:       "while",
	Str:           "<string_literal>",
	Int:           "<integer_literal>",
	IntBin:        "<binary_integer_literal>",
	IntOct:        "<octal_integer_literal>",
	IntHex:        "<hexadecimal_integer_literal>",
	Real:          "<real_literal>",
	RealSci:       "<scientific_real_literal>",
	Char:          "<character_literal>",
	Plus:          "+",
	PlusAssign:    "+=",
	PlusPlus:      "++",
	Minus:         "-",
	MinusAssign:   "-=",
	Arrow:         "->",
	Star:          "*",
	StarAssign:    "*=",
	Slash:         "/",
	SlashAssign:   "/=",
	Percent:       "%",
	PercentAssign: "%=",
	Assign:        "=",
	EqEq:          "==",
	EqEqGt:        "==>",
	FatArrow:      "=>",
	Bang:          "!",
	BangEq:        "!=",
	Lt:            "<",
	LtEq:          "<=",
	Gt:            ">",
	GtEq:          ">=",
	Dot:           ".",
	Colon:         ":",
	ColonColon:    "::",
	ColonTilde:    ":~",
	ColonMinus:    ":-",
	Tilde:         "~",
	TildeGt:       "~>",
	Pipe:          "|",
	PipeGt:        "|>",
	Hash:          "#",
	Question:      "?",
	Backslash:     `\`,
	Amp:           "&",
	LBracket:      "[",
	RBracket:      "]",
	LParen:        "(",
	RParen:        ")",
	LBrace:        "{",
	RBrace:        "}",
	Comma:         ",",
	Quote:         "'",
	Semicolon:     ";",
	Caret:         "^",
	Dollar:        "$",
	At:            "@",
	Underscore:    "_",
}

// Lexeme returns the canonical spelling of a kind: the exact source text
// for operators and keywords, a "<...>" placeholder for open classes.
func Lexeme(kind Kind) string {
	if int(kind) < len(lexemes) && lexemes[kind] != "" {
		return lexemes[kind]
	}
	return "<unknown>"
}
