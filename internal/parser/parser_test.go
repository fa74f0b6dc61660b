package parser_test

import (
	"testing"

	"beleg/internal/ast"
	"beleg/internal/diag"
	"beleg/internal/lexer"
	"beleg/internal/parser"
	"beleg/internal/source"
	"beleg/internal/token"
)

// newParser строит парсер над готовым списком токенов
func newParser(tokens []token.Token, startPos uint32) *parser.Parser {
	return parser.New(source.NewSourceMap(), tokens, startPos)
}

// fnTokens — токены для `foo(p) { x }`, как в примере использования
func fnTokens() []token.Token {
	return []token.Token{
		token.New(token.Id, 0, 3),
		token.New(token.LParen, 3, 4),
		token.New(token.Id, 4, 5),
		token.New(token.RParen, 5, 6),
		token.New(token.LBrace, 7, 8),
		token.New(token.Id, 9, 12),
		token.New(token.RBrace, 13, 14),
		token.New(token.Eof, 14, 14),
	}
}

func TestScopeDegree(t *testing.T) {
	p := newParser(fnTokens(), 0)

	// Конструктор уже вошёл в один scope
	if got := p.Degree(); got != 1 {
		t.Fatalf("Degree after construction = %d, want 1", got)
	}

	exitOuter := p.Scoped()
	if got := p.Degree(); got != 2 {
		t.Errorf("Degree inside outer scope = %d, want 2", got)
	}

	exitInner := p.Scoped()
	if got := p.Degree(); got != 3 {
		t.Errorf("Degree inside inner scope = %d, want 3", got)
	}

	exitInner()
	if got := p.Degree(); got != 2 {
		t.Errorf("Degree after inner exit = %d, want 2", got)
	}

	exitOuter()
	if got := p.Degree(); got != 1 {
		t.Errorf("Degree after outer exit = %d, want 1", got)
	}
}

func TestSingleEofStream(t *testing.T) {
	p := newParser([]token.Token{token.New(token.Eof, 0, 0)}, 0)

	if got := p.CurrentToken().Kind; got != token.Sof {
		t.Errorf("CurrentToken before consumption = %v, want Sof", got)
	}
	if got := p.PeekNextToken().Kind; got != token.Eof {
		t.Errorf("PeekNextToken = %v, want Eof", got)
	}

	tok := p.NextToken()
	if tok.Kind != token.Eof {
		t.Errorf("NextToken = %v, want Eof", tok.Kind)
	}
	if got := p.CurrentToken().Kind; got != token.Eof {
		t.Errorf("CurrentToken after consumption = %v, want Eof", got)
	}
}

func TestTokenAccessTotality(t *testing.T) {
	p := newParser(fnTokens(), 0)

	if got := p.PreviousToken().Kind; got != token.Sof {
		t.Errorf("PreviousToken at start = %v, want Sof", got)
	}
	if got := p.TokenAt(100).Kind; got != token.Eof {
		t.Errorf("TokenAt out of range = %v, want Eof", got)
	}
	if got := p.TokenAt(-1).Kind; got != token.Eof {
		t.Errorf("TokenAt negative = %v, want Eof", got)
	}
	if got := p.TokenAt(1).Kind; got != token.LParen {
		t.Errorf("TokenAt(1) = %v, want LParen", got)
	}

	// Исчерпываем поток: дальше только синтетический Eof
	p.EatTokens(100)
	next := p.NextToken()
	if next.Kind != token.Eof || next.Span.Start != 0 || next.Span.End != 0 {
		t.Errorf("NextToken past end = %v, want synthetic Eof(0,0)", next)
	}
	// CurrentToken видит настоящий хвостовой Eof, не синтетический
	cur := p.CurrentToken()
	if cur.Kind != token.Eof || cur.Span.Start != 14 {
		t.Errorf("CurrentToken after clamp = %v, want stream Eof(14,14)", cur)
	}
}

func TestPeekWindow(t *testing.T) {
	tokens := []token.Token{
		token.New(token.Id, 0, 1),
		token.New(token.Plus, 2, 3),
		token.New(token.Int, 4, 5),
		token.New(token.Eof, 5, 5),
	}
	p := newParser(tokens, 0)

	cases := []struct {
		name   string
		window []token.Kind
		want   bool
	}{
		{"single match", []token.Kind{token.Id}, true},
		{"pair match", []token.Kind{token.Id, token.Plus}, true},
		{"triple match", []token.Kind{token.Id, token.Plus, token.Int}, true},
		{"kind mismatch", []token.Kind{token.Plus}, false},
		{"tail mismatch", []token.Kind{token.Id, token.Int}, false},
		// Окно должно оставлять хотя бы один токен после себя
		{"window touches eof", []token.Kind{token.Id, token.Plus, token.Int, token.Eof}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Peek(tc.window...); got != tc.want {
				t.Errorf("Peek(%v) = %v, want %v", tc.window, got, tc.want)
			}
		})
	}

	// Peek ничего не потребляет
	if got := p.PeekNextToken().Kind; got != token.Id {
		t.Errorf("cursor moved after Peek: next = %v, want Id", got)
	}

	// Eof недостижим для Peek даже вплотную
	p.EatTokens(3)
	if p.Peek(token.Eof) {
		t.Error("Peek(Eof) at the final token should never match")
	}
}

func TestEatToken(t *testing.T) {
	p := newParser(fnTokens(), 0)

	if !p.EatToken(token.Id) {
		t.Fatal("EatToken(Id) on matching token = false, want true")
	}
	if p.EatToken(token.Id) {
		t.Fatal("EatToken(Id) on LParen = true, want false")
	}
	// Неудачный EatToken не двигает курсор
	if got := p.PeekNextToken().Kind; got != token.LParen {
		t.Errorf("cursor moved on failed eat: next = %v, want LParen", got)
	}

	p.EatTokens(100)
	if p.EatToken(token.Eof) {
		t.Error("EatToken past end = true, want false")
	}
}

func TestEatTokensClamp(t *testing.T) {
	p := newParser(fnTokens(), 0)

	p.EatTokens(2)
	if got := p.PeekNextToken().Kind; got != token.Id {
		t.Errorf("after EatTokens(2): next = %v, want Id", got)
	}

	p.EatTokens(-5)
	if got := p.PeekNextToken().Kind; got != token.Id {
		t.Errorf("EatTokens(-5) moved the cursor: next = %v, want Id", got)
	}

	p.EatTokens(100)
	if got := p.CurrentToken().Kind; got != token.Eof {
		t.Errorf("after clamp: current = %v, want Eof", got)
	}
}

func TestCurrentSpan(t *testing.T) {
	tokens := []token.Token{
		token.New(token.Id, 0, 3),
		token.New(token.Plus, 4, 5),
		token.New(token.Int, 6, 8),
		token.New(token.Eof, 8, 8),
	}
	const startPos = 100

	t.Run("ctor scope covers consumed window", func(t *testing.T) {
		p := newParser(tokens, startPos)
		p.NextToken()
		p.NextToken()
		want := source.NewSpan(100, 105)
		if got := p.CurrentSpan(); got != want {
			t.Errorf("CurrentSpan = %v, want %v", got, want)
		}
	})

	t.Run("nested scope starts mid stream", func(t *testing.T) {
		p := newParser(tokens, startPos)
		p.NextToken()
		exit := p.Scoped()
		p.NextToken()
		p.NextToken()
		want := source.NewSpan(104, 108)
		if got := p.CurrentSpan(); got != want {
			t.Errorf("inner CurrentSpan = %v, want %v", got, want)
		}
		exit()
		want = source.NewSpan(100, 108)
		if got := p.CurrentSpan(); got != want {
			t.Errorf("outer CurrentSpan = %v, want %v", got, want)
		}
	})

	t.Run("nothing consumed yet collapses to token start", func(t *testing.T) {
		p := newParser(tokens, startPos)
		want := source.NewSpan(100, 100)
		if got := p.CurrentSpan(); got != want {
			t.Errorf("CurrentSpan = %v, want %v", got, want)
		}
	})

	t.Run("cursor past last token collapses to start", func(t *testing.T) {
		p := newParser(tokens, startPos)
		p.EatTokens(4)
		want := source.NewSpan(100, 100)
		if got := p.CurrentSpan(); got != want {
			t.Errorf("CurrentSpan = %v, want %v", got, want)
		}
	})

	t.Run("scope entered at end of input", func(t *testing.T) {
		p := newParser(tokens, startPos)
		p.EatTokens(4)
		exit := p.Scoped()
		defer exit()
		want := source.NewSpan(100, 100)
		if got := p.CurrentSpan(); got != want {
			t.Errorf("CurrentSpan = %v, want %v", got, want)
		}
	})

	t.Run("empty scope stack yields zero span", func(t *testing.T) {
		p := newParser(tokens, startPos)
		exit := p.Scoped()
		exit()
		exit() // снимает и scope конструктора
		if got := p.CurrentSpan(); got != (source.Span{}) {
			t.Errorf("CurrentSpan = %v, want zero span", got)
		}
	})
}

func TestNextTokenSpan(t *testing.T) {
	tokens := []token.Token{
		token.New(token.Id, 0, 3),
		token.New(token.Eof, 3, 3),
	}
	p := newParser(tokens, 50)

	want := source.NewSpan(50, 53)
	if got := p.NextTokenSpan(); got != want {
		t.Errorf("NextTokenSpan = %v, want %v", got, want)
	}

	p.EatTokens(2)
	if got := p.NextTokenSpan(); got != (source.Span{}) {
		t.Errorf("NextTokenSpan past end = %v, want zero span", got)
	}
}

func TestMarkResetTo(t *testing.T) {
	p := newParser(fnTokens(), 0)

	p.NextToken()
	m := p.Mark()
	p.NextToken()
	p.NextToken()
	if got := p.PeekNextToken().Kind; got != token.RParen {
		t.Fatalf("before reset: next = %v, want RParen", got)
	}

	p.ResetTo(m)
	if got := p.PeekNextToken().Kind; got != token.LParen {
		t.Errorf("after reset: next = %v, want LParen", got)
	}
	if got := p.CurrentToken().Kind; got != token.Id {
		t.Errorf("after reset: current = %v, want Id", got)
	}
}

func TestParseBuildsFileScopeRoot(t *testing.T) {
	const input = "+ - * /"
	const startPos = 200
	tokens := lexer.Tokenize([]byte(input))

	ctx := diag.NewContext(diag.DefaultOptions())
	collect := diag.NewCollectEmitter()
	ctx.AddEmitter(collect)

	p := parser.New(source.NewSourceMap(), tokens, startPos)
	p.Parse(ctx)

	if collect.Len() != 0 {
		t.Fatalf("clean parse emitted %d diagnostics: %v", collect.Len(), collect.Diags())
	}

	tree := p.Finalize()
	if tree == nil {
		t.Fatal("Finalize returned nil on first call")
	}
	root := tree.Root()
	if root == ast.NoNode {
		t.Fatal("parse did not install a root")
	}
	kind, ok := tree.Kind(root)
	if !ok || kind != ast.NodeFileScope {
		t.Errorf("root kind = %v, want NodeFileScope", kind)
	}
	span, ok := tree.Span(root)
	if !ok {
		t.Fatal("root has no span")
	}
	want := source.NewSpan(startPos, startPos+7)
	if span != want {
		t.Errorf("root span = %v, want %v", span, want)
	}
}

func TestParseEmptyInput(t *testing.T) {
	tokens := lexer.Tokenize(nil)

	ctx := diag.NewContext(diag.DefaultOptions())
	p := parser.New(source.NewSourceMap(), tokens, 0)
	p.Parse(ctx)

	tree := p.Finalize()
	root := tree.Root()
	if root == ast.NoNode {
		t.Fatal("empty input should still produce a file scope root")
	}
	if span, _ := tree.Span(root); !span.Empty() {
		t.Errorf("root span for empty input = %v, want empty", span)
	}
}

func TestParseInvalidToken(t *testing.T) {
	const input = "a ` b"
	const startPos = 10
	tokens := lexer.Tokenize([]byte(input))

	ctx := diag.NewContext(diag.DefaultOptions())
	collect := diag.NewCollectEmitter()
	ctx.AddEmitter(collect)

	p := parser.New(source.NewSourceMap(), tokens, startPos)
	p.Parse(ctx)

	diags := collect.Diags()
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	d := diags[0]
	if d.Level != diag.LevelError {
		t.Errorf("level = %v, want Error", d.Level)
	}
	if d.Code != diag.SynInvalidToken {
		t.Errorf("code = %v, want SynInvalidToken", d.Code)
	}
	want := source.NewSpan(startPos+2, startPos+3)
	if d.Primary != want {
		t.Errorf("primary span = %v, want %v", d.Primary, want)
	}
	if len(d.Labels) != 1 || d.Labels[0].Span != want {
		t.Errorf("labels = %v, want one label at %v", d.Labels, want)
	}

	// Ошибка не даёт дереву корень
	if root := p.Finalize().Root(); root != ast.NoNode {
		t.Errorf("failed parse installed root %d, want none", root)
	}
}

func TestFinalizeIsOneShot(t *testing.T) {
	p := newParser([]token.Token{token.New(token.Eof, 0, 0)}, 0)
	ctx := diag.NewContext(diag.DefaultOptions())
	p.Parse(ctx)

	if p.Finalize() == nil {
		t.Fatal("first Finalize returned nil")
	}
	if p.Finalize() != nil {
		t.Error("second Finalize should return nil")
	}
}
