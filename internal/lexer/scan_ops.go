package lexer

import (
	"jsxc/internal/diag"
	"jsxc/internal/token"
)

// ops упорядочены по убыванию длины: жадный матч.
var ops = []struct {
	text string
	kind token.Kind
}{
	{">>>=", token.UShrAssign},
	{"...", token.DotDotDot},
	{"===", token.EqEqEq},
	{"!==", token.BangEqEq},
	{"**=", token.StarStarAssign},
	{"<<=", token.ShlAssign},
	{">>=", token.ShrAssign},
	{">>>", token.UShr},
	{"&&=", token.AndAndAssign},
	{"||=", token.OrOrAssign},
	{"??=", token.QuestionQuestionAssign},
	{"=>", token.FatArrow},
	{"==", token.EqEq},
	{"!=", token.BangEq},
	{"<=", token.LtEq},
	{">=", token.GtEq},
	{"&&", token.AndAnd},
	{"||", token.OrOr},
	{"??", token.QuestionQuestion},
	{"**", token.StarStar},
	{"++", token.PlusPlus},
	{"--", token.MinusMinus},
	{"<<", token.Shl},
	{">>", token.Shr},
	{"+=", token.PlusAssign},
	{"-=", token.MinusAssign},
	{"*=", token.StarAssign},
	{"/=", token.SlashAssign},
	{"%=", token.PercentAssign},
	{"&=", token.AmpAssign},
	{"|=", token.PipeAssign},
	{"^=", token.CaretAssign},
}

var singleOps = [256]token.Kind{
	'{': token.LBrace, '}': token.RBrace,
	'(': token.LParen, ')': token.RParen,
	'[': token.LBracket, ']': token.RBracket,
	'.': token.Dot, ';': token.Semicolon, ',': token.Comma,
	'?': token.Question, ':': token.Colon, '@': token.At,
	'<': token.Lt, '>': token.Gt, '=': token.Assign,
	'+': token.Plus, '-': token.Minus, '*': token.Star, '/': token.Slash, '%': token.Percent,
	'&': token.Amp, '|': token.Pipe, '^': token.Caret, '!': token.Bang, '~': token.Tilde,
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	// `?.` не перед цифрой: `a?.5:b` — это тернарник
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '?' && b1 == '.' {
		lx.cursor.Bump()
		lx.cursor.Bump()
		if !isDec(lx.cursor.Peek()) {
			return lx.emit(token.QuestionDot, start)
		}
		lx.cursor.Reset(start)
	}

	for _, op := range ops {
		if lx.tryStr(op.text) {
			return lx.emit(op.kind, start)
		}
	}

	ch := lx.cursor.Bump()
	if k := singleOps[ch]; k != token.Invalid {
		return lx.emit(k, start)
	}
	if ch >= utf8RuneSelf {
		lx.cursor.Reset(start)
		lx.bumpRune()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, "unknown character")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
