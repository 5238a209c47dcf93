package lexer

import (
	"jsxc/internal/diag"
)

// skipTrivia пропускает пробелы, переводы строк и комментарии перед
// значимым токеном и сообщает, встречался ли перевод строки (для ASI).
func (lx *Lexer) skipTrivia() (newline bool) {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == ' ' || b == '\t' || b == '\v' || b == '\f' || b == '\r':
			lx.cursor.Bump()
		case b == '\n':
			lx.cursor.Bump()
			newline = true
		case b == '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' || (b1 != '/' && b1 != '*') {
				return newline
			}
			if b1 == '/' {
				lx.skipLineComment()
			} else if lx.skipBlockComment() {
				newline = true
			}
		case b >= utf8RuneSelf:
			r, _ := lx.peekRune()
			switch r {
			case '\u00a0', '\ufeff', '\u2028', '\u2029':
				if r == '\u2028' || r == '\u2029' {
					newline = true
				}
				lx.bumpRune()
			default:
				return newline
			}
		default:
			return newline
		}
	}
	return newline
}

func (lx *Lexer) skipLineComment() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
}

// skipBlockComment съедает /* ... */ и сообщает, был ли внутри перевод строки.
func (lx *Lexer) skipBlockComment() (newline bool) {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		if lx.tryStr("*/") {
			return newline
		}
		if lx.cursor.Bump() == '\n' {
			newline = true
		}
	}
	lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
	return newline
}

func (lx *Lexer) skipHashbang() {
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '#' && b1 == '!' {
		lx.skipLineComment()
	}
}
