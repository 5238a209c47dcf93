package lexer

import (
	"math"
	"strconv"
	"strings"

	"jsxc/internal/diag"
	"jsxc/internal/token"
)

// Поддержка: 0, 123, 1.5, .5, 1e-3, 0b1010, 0o17, 0x1F, 1_000, 10n.
// Неверные формы — репорт в opts.Reporter, токен по возможности завершаем.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.NumberLit

	digits := func(ok func(byte) bool) int {
		n := 0
		for {
			b := lx.cursor.Peek()
			if !ok(b) && b != '_' {
				return n
			}
			lx.cursor.Bump()
			n++
		}
	}
	isBin := func(b byte) bool { return b == '0' || b == '1' }
	isOct := func(b byte) bool { return b >= '0' && b <= '7' }

	if lx.cursor.Peek() == '0' {
		if _, b1, ok := lx.cursor.Peek2(); ok {
			var pred func(byte) bool
			switch b1 {
			case 'b', 'B':
				pred = isBin
			case 'o', 'O':
				pred = isOct
			case 'x', 'X':
				pred = isHex
			}
			if pred != nil {
				lx.cursor.Bump()
				lx.cursor.Bump()
				if digits(pred) == 0 {
					sp := lx.cursor.SpanFrom(start)
					lx.errLex(diag.LexBadNumber, sp, "expected digits after base prefix")
					return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
				}
				if lx.cursor.Eat('n') {
					kind = token.BigIntLit
				}
				return lx.finishNumber(kind, start)
			}
		}
	}

	integer := true
	digits(isDec)
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		digits(isDec)
		integer = false
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		save := lx.cursor.Mark()
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if digits(isDec) == 0 {
			lx.cursor.Reset(save)
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "expected exponent digits")
		}
		integer = false
	}
	if integer && lx.cursor.Eat('n') {
		kind = token.BigIntLit
	}
	return lx.finishNumber(kind, start)
}

func (lx *Lexer) finishNumber(kind token.Kind, start Mark) token.Token {
	// идентификатор сразу после числа (3in, 1px) — ошибка
	if b := lx.cursor.Peek(); isIdentStartByte(b) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadNumber, sp, "identifier starts immediately after numeric literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	return lx.emit(kind, start)
}

// NumberValue returns the numeric value of a number literal as written in source.
func NumberValue(text string) float64 {
	s := strings.ReplaceAll(text, "_", "")
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'b', 'B', 'o', 'O', 'x', 'X':
			if v, err := strconv.ParseUint(s, 0, 64); err == nil {
				return float64(v)
			}
			base := map[byte]int{'b': 2, 'B': 2, 'o': 8, 'O': 8, 'x': 16, 'X': 16}[s[1]]
			f := 0.0
			for _, c := range s[2:] {
				d, _ := strconv.ParseUint(string(c), base, 8)
				f = f*float64(base) + float64(d)
			}
			return f
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return v
		}
		return math.NaN()
	}
	return v
}
