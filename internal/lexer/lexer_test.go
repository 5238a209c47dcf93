package lexer_test

import (
	"testing"

	"jsxc/internal/diag"
	"jsxc/internal/lexer"
	"jsxc/internal/source"
	"jsxc/internal/token"
)

func makeLexer(t *testing.T, src string) (*lexer.Lexer, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("test.jsx", []byte(src)))
	bag := diag.NewBag(0)
	return lexer.New(f, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}}), bag
}

func collect(lx *lexer.Lexer) []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func TestOperatorsAreGreedy(t *testing.T) {
	tests := []struct {
		src  string
		want []token.Kind
	}{
		{"a >>>= b", []token.Kind{token.Ident, token.UShrAssign, token.Ident}},
		{"a?.b ?? c", []token.Kind{token.Ident, token.QuestionDot, token.Ident, token.QuestionQuestion, token.Ident}},
		{"a?.5:1", []token.Kind{token.Ident, token.Question, token.NumberLit, token.Colon, token.NumberLit}},
		{"x => x === y", []token.Kind{token.Ident, token.FatArrow, token.Ident, token.EqEqEq, token.Ident}},
		{"[...xs]", []token.Kind{token.LBracket, token.DotDotDot, token.Ident, token.RBracket}},
		{"a ||= b ** 2", []token.Kind{token.Ident, token.OrOrAssign, token.Ident, token.StarStar, token.NumberLit}},
		{"#priv", []token.Kind{token.PrivateName}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			lx, bag := makeLexer(t, tt.src)
			toks := collect(lx)
			if len(toks) != len(tt.want)+1 {
				t.Fatalf("got %d tokens, want %d", len(toks)-1, len(tt.want))
			}
			for i, k := range tt.want {
				if toks[i].Kind != k {
					t.Errorf("token %d = %v %q, want %v", i, toks[i].Kind, toks[i].Text, k)
				}
			}
			if bag.HasErrors() {
				t.Errorf("unexpected diagnostics: %v", bag.Items())
			}
		})
	}
}

func TestNewlineBefore(t *testing.T) {
	lx, _ := makeLexer(t, "a /* c\n */ b\n// x\nc d")
	toks := collect(lx)
	want := []bool{false, true, true, false}
	for i, nl := range want {
		if toks[i].NewlineBefore != nl {
			t.Errorf("token %q NewlineBefore = %v", toks[i].Text, toks[i].NewlineBefore)
		}
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		src  string
		kind token.Kind
		val  float64
	}{
		{"42", token.NumberLit, 42},
		{"1_000", token.NumberLit, 1000},
		{".5", token.NumberLit, 0.5},
		{"1e3", token.NumberLit, 1000},
		{"0x1F", token.NumberLit, 31},
		{"0b101", token.NumberLit, 5},
		{"0o17", token.NumberLit, 15},
		{"10n", token.BigIntLit, 0},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			lx, _ := makeLexer(t, tt.src)
			tok := lx.Next()
			if tok.Kind != tt.kind || tok.Text != tt.src {
				t.Fatalf("got %v %q", tok.Kind, tok.Text)
			}
			if tt.kind == token.NumberLit {
				if got := lexer.NumberValue(tok.Text); got != tt.val {
					t.Errorf("value = %v, want %v", got, tt.val)
				}
			}
		})
	}
}

func TestStringsAreCooked(t *testing.T) {
	tests := []struct{ src, want string }{
		{`"a\nb"`, "a\nb"},
		{`'it\'s'`, "it's"},
		{`"\x41B\u{43}"`, "ABC"},
		{`"\d"`, "d"},
	}
	for _, tt := range tests {
		lx, bag := makeLexer(t, tt.src)
		tok := lx.Next()
		if tok.Kind != token.StringLit || tok.Value != tt.want {
			t.Errorf("%s: got %v %q", tt.src, tok.Kind, tok.Value)
		}
		if bag.HasErrors() {
			t.Errorf("%s: unexpected diagnostics", tt.src)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	lx, bag := makeLexer(t, "'abc\n'")
	if tok := lx.Next(); tok.Kind != token.Invalid {
		t.Fatalf("kind = %v", tok.Kind)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Fatalf("diagnostics = %v", bag.Items())
	}
}

func TestTemplateRescan(t *testing.T) {
	lx, _ := makeLexer(t, "`a${x}b${y}c`")
	head := lx.Next()
	if head.Kind != token.TemplateHead || head.Value != "a" {
		t.Fatalf("head = %v %q", head.Kind, head.Value)
	}
	if tok := lx.Next(); tok.Text != "x" {
		t.Fatalf("subst = %q", tok.Text)
	}
	mid := lx.RescanTemplateContinuation(lx.Next())
	if mid.Kind != token.TemplateMiddle || lexer.TemplateRaw(mid) != "b" {
		t.Fatalf("middle = %v %q", mid.Kind, mid.Text)
	}
	lx.Next()
	tail := lx.RescanTemplateContinuation(lx.Next())
	if tail.Kind != token.TemplateTail || tail.Value != "c" {
		t.Fatalf("tail = %v %q", tail.Kind, tail.Text)
	}
	if lx.Next().Kind != token.EOF {
		t.Fatalf("expected EOF")
	}
}

func TestRegExpRescan(t *testing.T) {
	lx, _ := makeLexer(t, "/[/]a\\//gi.test(s)")
	tok := lx.RescanRegExp(lx.Next())
	if tok.Kind != token.RegExpLit {
		t.Fatalf("kind = %v", tok.Kind)
	}
	pat, flags := lexer.SplitRegExp(tok.Text)
	if pat != "[/]a\\/" || flags != "gi" {
		t.Fatalf("pattern=%q flags=%q", pat, flags)
	}
	if next := lx.Next(); next.Kind != token.Dot {
		t.Fatalf("after regexp = %v", next.Kind)
	}
}

func TestJSXModes(t *testing.T) {
	lx, _ := makeLexer(t, `<my-el data-x="a &amp; b">Hi &lt; {x}</my-el>`)
	if tok := lx.Next(); tok.Kind != token.Lt {
		t.Fatalf("open = %v", tok.Kind)
	}
	name := lx.NextJSXTag()
	if name.Kind != token.Ident || name.Text != "my-el" {
		t.Fatalf("tag name = %q", name.Text)
	}
	attr := lx.NextJSXTag()
	if attr.Text != "data-x" {
		t.Fatalf("attr = %q", attr.Text)
	}
	if lx.NextJSXTag().Kind != token.Assign {
		t.Fatalf("expected '='")
	}
	val := lx.NextJSXTag()
	if val.Kind != token.StringLit || val.Value != "a & b" {
		t.Fatalf("value = %v %q", val.Kind, val.Value)
	}
	if lx.NextJSXTag().Kind != token.Gt {
		t.Fatalf("expected '>'")
	}
	text := lx.NextJSXChild()
	if text.Kind != token.JSXText || text.Value != "Hi < " {
		t.Fatalf("text = %v %q", text.Kind, text.Value)
	}
	if lx.NextJSXChild().Kind != token.LBrace {
		t.Fatalf("expected '{'")
	}
}

func TestMuteSuppressesDiagnostics(t *testing.T) {
	lx, bag := makeLexer(t, "'abc")
	unmute := lx.Mute()
	lx.Next()
	unmute()
	if bag.Len() != 0 {
		t.Fatalf("muted lexer reported %d diagnostics", bag.Len())
	}
	lx.Reset(0)
	lx.Next()
	if bag.Len() != 1 {
		t.Fatalf("unmuted lexer reported %d diagnostics", bag.Len())
	}
}
