package token

var keywords = map[string]Kind{
	"and":       KwAnd,
	"as":        KwAs,
	"bool":      KwBool,
	"break":     KwBreak,
	"catch":     KwCatch,
	"const":     KwConst,
	"continue":  KwContinue,
	"else":      KwElse,
	"enum":      KwEnum,
	"error":     KwError,
	"extern":    KwExtern,
	"false":     KwFalse,
	"fn":        KwFn,
	"for":       KwFor,
	"if":        KwIf,
	"in":        KwIn,
	"inline":    KwInline,
	"is":        KwIs,
	"let":       KwLet,
	"match":     KwMatch,
	"mod":       KwMod,
	"newtype":   KwNewtype,
	"not":       KwNot,
	"null":      KwNull,
	"or":        KwOr,
	"private":   KwPrivate,
	"ref":       KwRef,
	"return":    KwReturn,
	"self":      KwSelf,
	"Self":      KwSelfCap,
	"static":    KwStatic,
	"struct":    KwStruct,
	"test":      KwTest,
	"true":      KwTrue,
	"typealias": KwTypealias,
	"union":     KwUnion,
	"use":       KwUse,
	"when":      KwWhen,
	"while":     KwWhile,
}

// LookupKeyword возвращает вид и bool, если идентификатор — ключевое слово.
// Сравнение регистрозависимое: "Self" и "self" — разные ключевые слова.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
