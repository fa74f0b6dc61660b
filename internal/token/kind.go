package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// Sof marks the synthetic start-of-file position before the first token.
	Sof
	// Eof marks the end of the source input.
	Eof
	// Comment represents a line or block comment.
	Comment
	// Id represents an identifier token.
	Id

	// KwAnd represents the 'and' keyword.
	KwAnd // and
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwBool represents the 'bool' keyword.
	KwBool // bool
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwCatch represents the 'catch' keyword.
	KwCatch // catch
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwError represents the 'error' keyword.
	KwError // error
	// KwExtern represents the 'extern' keyword.
	KwExtern // extern
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwInline represents the 'inline' keyword.
	KwInline // inline
	// KwIs represents the 'is' keyword.
	KwIs // is
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwMatch represents the 'match' keyword.
	KwMatch // match
	// KwMod represents the 'mod' keyword.
	KwMod // mod
	// KwNewtype represents the 'newtype' keyword.
	KwNewtype // newtype
	// KwNot represents the 'not' keyword.
	KwNot // not
	// KwNull represents the 'null' keyword.
	KwNull // null
	// KwOr represents the 'or' keyword.
	KwOr // or
	// KwPrivate represents the 'private' keyword.
	KwPrivate // private
	// KwRef represents the 'ref' keyword.
	KwRef // ref
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwSelf represents the 'self' keyword.
	KwSelf // self
	// KwSelfCap represents the 'Self' keyword.
	KwSelfCap // Self
	// KwStatic represents the 'static' keyword.
	KwStatic // static
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwTest represents the 'test' keyword.
	KwTest // test
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwTypealias represents the 'typealias' keyword.
	KwTypealias // typealias
	// KwUnion represents the 'union' keyword.
	KwUnion // union
	// KwUse represents the 'use' keyword.
	KwUse // use
	// KwWhen represents the 'when' keyword.
	KwWhen // when
	// KwWhile represents the 'while' keyword.
	KwWhile // while

	// Str represents the string literal token.
	Str // "..."
	// Int represents the decimal integer literal token.
	Int // 123
	// IntBin represents the binary integer literal token.
	IntBin // 0b1010
	// IntOct represents the octal integer literal token.
	IntOct // 0o777
	// IntHex represents the hexadecimal integer literal token.
	IntHex // 0xFF
	// Real represents the real literal token.
	Real // 123.45
	// RealSci represents the scientific-notation real literal token.
	RealSci // 1.23e-4
	// Char represents the character literal token.
	Char // 'a'

	// Plus represents the plus operator token.
	Plus // +
	// PlusAssign represents the plus assign operator token.
	PlusAssign // +=
	// PlusPlus represents the concatenation operator token.
	PlusPlus // ++
	// Minus represents the minus operator token.
	Minus // -
	// MinusAssign represents the minus assign operator token.
	MinusAssign // -=
	// Arrow represents the arrow operator token.
	Arrow // ->
	// Star represents the star operator token.
	Star // *
	// StarAssign represents the star assign operator token.
	StarAssign // *=
	// Slash represents the slash operator token.
	Slash // /
	// SlashAssign represents the slash assign operator token.
	SlashAssign // /=
	// Percent represents the percent operator token.
	Percent // %
	// PercentAssign represents the percent assign operator token.
	PercentAssign // %=
	// Assign represents the assign operator token.
	Assign // =
	// EqEq represents the equality operator token.
	EqEq // ==
	// EqEqGt represents the long fat arrow operator token.
	EqEqGt // ==>
	// FatArrow represents the fat arrow operator token.
	FatArrow // =>
	// Bang represents the bang operator token.
	Bang // !
	// BangEq represents the inequality operator token.
	BangEq // !=
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// Dot represents the dot operator token.
	Dot // .
	// Colon represents the colon operator token.
	Colon // :
	// ColonColon represents the path separator token.
	ColonColon // ::
	// ColonTilde represents the colon tilde operator token.
	ColonTilde // :~
	// ColonMinus represents the colon minus operator token.
	ColonMinus // :-
	// Tilde represents the tilde operator token.
	Tilde // ~
	// TildeGt represents the tilde arrow operator token.
	TildeGt // ~>
	// Pipe represents the pipe operator token.
	Pipe // |
	// PipeGt represents the pipeline operator token.
	PipeGt // |>
	// Hash represents the hash operator token.
	Hash // #
	// Question represents the question operator token.
	Question // ?
	// Backslash represents the backslash token.
	Backslash // \
	// Amp represents the ampersand operator token.
	Amp // &
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// Comma represents the comma token.
	Comma // ,
	// Quote represents a lone single quote token.
	Quote // '
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Caret represents the caret operator token.
	Caret // ^
	// Dollar represents the dollar operator token.
	Dollar // $
	// At represents the at operator token.
	At // @
	// Underscore represents the underscore token.
	Underscore // _

	kindCount // количество видов; держать последним
)

var kindNames = [...]string{
	Invalid:       "Invalid",
	Sof:           "Sof",
	Eof:           "Eof",
	Comment:       "Comment",
	Id:            "Id",
	KwAnd:         "KwAnd",
	KwAs:          "KwAs",
	KwBool:        "KwBool",
	KwBreak:       "KwBreak",
	KwCatch:       "KwCatch",
	KwConst:       "KwConst",
	KwContinue:    "KwContinue",
	KwElse:        "KwElse",
	KwEnum:        "KwEnum",
	KwError:       "KwError",
	KwExtern:      "KwExtern",
	KwFalse:       "KwFalse",
	KwFn:          "KwFn",
	KwFor:         "KwFor",
	KwIf:          "KwIf",
	KwIn:          "KwIn",
	KwInline:      "KwInline",
	KwIs:          "KwIs",
	KwLet:         "KwLet",
	KwMatch:       "KwMatch",
	KwMod:         "KwMod",
	KwNewtype:     "KwNewtype",
	KwNot:         "KwNot",
	KwNull:        "KwNull",
	KwOr:          "KwOr",
	KwPrivate:     "KwPrivate",
	KwRef:         "KwRef",
	KwReturn:      "KwReturn",
	KwSelf:        "KwSelf",
	KwSelfCap:     "KwSelfCap",
	KwStatic:      "KwStatic",
	KwStruct:      "KwStruct",
	KwTest:        "KwTest",
	KwTrue:        "KwTrue",
	KwTypealias:   "KwTypealias",
	KwUnion:       "KwUnion",
	KwUse:         "KwUse",
	KwWhen:        "KwWhen",
	KwWhile:       "KwWhile",
	Str:           "Str",
	Int:           "Int",
	IntBin:        "IntBin",
	IntOct:        "IntOct",
	IntHex:        "IntHex",
	Real:          "Real",
	RealSci:       "RealSci",
	Char:          "Char",
	Plus:          "Plus",
	PlusAssign:    "PlusAssign",
	PlusPlus:      "PlusPlus",
	Minus:         "Minus",
	MinusAssign:   "MinusAssign",
	Arrow:         "Arrow",
	Star:          "Star",
	StarAssign:    "StarAssign",
	Slash:         "Slash",
	SlashAssign:   "SlashAssign",
	Percent:       "Percent",
	PercentAssign: "PercentAssign",
	Assign:        "Assign",
	EqEq:          "EqEq",
	EqEqGt:        "EqEqGt",
	FatArrow:      "FatArrow",
	Bang:          "Bang",
	BangEq:        "BangEq",
	Lt:            "Lt",
	LtEq:          "LtEq",
	Gt:            "Gt",
	GtEq:          "GtEq",
	Dot:           "Dot",
	Colon:         "Colon",
	ColonColon:    "ColonColon",
	ColonTilde:    "ColonTilde",
	ColonMinus:    "ColonMinus",
	Tilde:         "Tilde",
	TildeGt:       "TildeGt",
	Pipe:          "Pipe",
	PipeGt:        "PipeGt",
	Hash:          "Hash",
	Question:      "Question",
	Backslash:     "Backslash",
	Amp:           "Amp",
	LBracket:      "LBracket",
	RBracket:      "RBracket",
	LParen:        "LParen",
	RParen:        "RParen",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	Comma:         "Comma",
	Quote:         "Quote",
	Semicolon:     "Semicolon",
	Caret:         "Caret",
	Dollar:        "Dollar",
	At:            "At",
	Underscore:    "Underscore",
}

// String returns the constant name of the kind, e.g. "Plus".
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
