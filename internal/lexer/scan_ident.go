package lexer

import (
	"strconv"
	"strings"

	"jsxc/internal/diag"
	"jsxc/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdent сканирует идентификатор или ключевое слово (оба — token.Ident).
// В JSX-режиме (jsx=true) внутри имени допускается '-'.
// Token.Value содержит имя с раскрытыми \u-escape.
func (lx *Lexer) scanIdent(jsx bool) token.Token {
	start := lx.cursor.Mark()
	escaped := false
	first := true
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\\' {
			if !lx.scanIdentEscape() {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexBadEscape, sp, "invalid escape in identifier")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			escaped = true
			first = false
			continue
		}
		if b < utf8RuneSelf {
			ok := isIdentContinueByte(b) || (jsx && !first && b == '-')
			if first {
				ok = isIdentStartByte(b)
			}
			if !ok {
				break
			}
			lx.cursor.Bump()
			first = false
			continue
		}
		r, _ := lx.peekRune()
		ok := isIdentContinueRune(r)
		if first {
			ok = isIdentStartRune(r)
		}
		if !ok {
			break
		}
		lx.bumpRune()
		first = false
	}
	if first {
		// ни одного символа идентификатора
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unexpected character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	tok := lx.emit(token.Ident, start)
	tok.Value = tok.Text
	if escaped {
		tok.Value = decodeIdentEscapes(tok.Text)
	}
	return tok
}

// scanIdentEscape съедает \uXXXX или \u{...}.
func (lx *Lexer) scanIdentEscape() bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '\\' || b1 != 'u' {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	if lx.cursor.Eat('{') {
		n := 0
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
			n++
		}
		return n > 0 && lx.cursor.Eat('}')
	}
	for range 4 {
		if !isHex(lx.cursor.Peek()) {
			return false
		}
		lx.cursor.Bump()
	}
	return true
}

func decodeIdentEscapes(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		if s[i] != '\\' || i+1 >= len(s) || s[i+1] != 'u' {
			b.WriteByte(s[i])
			i++
			continue
		}
		i += 2
		var hex string
		if i < len(s) && s[i] == '{' {
			end := strings.IndexByte(s[i:], '}')
			if end < 0 {
				return s
			}
			hex = s[i+1 : i+end]
			i += end + 1
		} else {
			if i+4 > len(s) {
				return s
			}
			hex = s[i : i+4]
			i += 4
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return s
		}
		b.WriteRune(rune(v))
	}
	return b.String()
}

func (lx *Lexer) scanPrivateName() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	b := lx.cursor.Peek()
	if !isIdentStartByte(b) && b < utf8RuneSelf {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "expected name after '#'")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	id := lx.scanIdent(false)
	tok := lx.emit(token.PrivateName, start)
	tok.Value = id.Value
	return tok
}
