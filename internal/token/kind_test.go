package token_test

import (
	"testing"

	"beleg/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.New(k, 0, 0)
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{
		token.Str, token.Int, token.IntBin, token.IntOct,
		token.IntHex, token.Real, token.RealSci, token.Char,
	}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Id, token.KwLet, token.Plus, token.LParen, token.Eof}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	kws := []token.Kind{
		token.KwAnd, token.KwFn, token.KwLet, token.KwMatch,
		token.KwSelf, token.KwSelfCap, token.KwWhile,
	}
	for _, k := range kws {
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be keyword", k)
		}
	}
	non := []token.Kind{token.Id, token.Int, token.Plus, token.Sof}
	for _, k := range non {
		if tok(k).IsKeyword() {
			t.Fatalf("%v must NOT be keyword", k)
		}
	}
}

func TestIsOperator(t *testing.T) {
	ops := []token.Kind{
		token.Plus, token.PlusAssign, token.PlusPlus, token.Arrow,
		token.FatArrow, token.EqEqGt, token.ColonColon, token.PipeGt,
		token.LBrace, token.Underscore,
	}
	for _, k := range ops {
		if !tok(k).IsOperator() {
			t.Fatalf("%v should be operator", k)
		}
	}
	non := []token.Kind{token.Id, token.KwIf, token.Int, token.Comment}
	for _, k := range non {
		if tok(k).IsOperator() {
			t.Fatalf("%v must NOT be operator", k)
		}
	}
}

func TestKeywordLexemeRoundTrip(t *testing.T) {
	// Каждое ключевое слово должно находиться по своему написанию.
	for k := token.KwAnd; k <= token.KwWhile; k++ {
		spelling := token.Lexeme(k)
		found, ok := token.LookupKeyword(spelling)
		if !ok {
			t.Fatalf("keyword %v spelling %q not in table", k, spelling)
		}
		if found != k {
			t.Fatalf("keyword %v spelling %q maps to %v", k, spelling, found)
		}
	}

	if _, ok := token.LookupKeyword("banana"); ok {
		t.Fatalf("non-keyword must not resolve")
	}
	if _, ok := token.LookupKeyword("SELF"); ok {
		t.Fatalf("keyword lookup must be case-sensitive")
	}
}

func TestLexemeSpellings(t *testing.T) {
	cases := map[token.Kind]string{
		token.Plus:       "+",
		token.PlusAssign: "+=",
		token.EqEqGt:     "==>",
		token.FatArrow:   "=>",
		token.TildeGt:    "~>",
		token.PipeGt:     "|>",
		token.ColonTilde: ":~",
		token.Id:         "<identifier>",
		token.Eof:        "<end_of_file>",
		token.Sof:        "<start_of_file>",
		token.Invalid:    "<invalid_token>",
	}
	for k, want := range cases {
		if got := token.Lexeme(k); got != want {
			t.Fatalf("Lexeme(%v) = %q, want %q", k, got, want)
		}
	}
}

func TestKindString(t *testing.T) {
	if token.Plus.String() != "Plus" {
		t.Fatalf("String() = %q", token.Plus.String())
	}
	if token.Kind(250).String() != "Kind(?)" {
		t.Fatalf("out-of-range String() = %q", token.Kind(250).String())
	}
}
