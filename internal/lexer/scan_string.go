package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"jsxc/internal/diag"
	"jsxc/internal/token"
)

// scanString сканирует '...' или "..."; Value — раскрытое значение.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			tok := lx.emit(token.StringLit, start)
			tok.Value = lx.cook(tok.Text[1:len(tok.Text)-1], tok)
			return tok
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.bumpRune()
			continue
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.Bump()
	}
	// EOF без закрывающей кавычки
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanTemplate сканирует кусок шаблонной строки, начиная с '`' или '}'.
func (lx *Lexer) scanTemplate() token.Token {
	start := lx.cursor.Mark()
	opener := lx.cursor.Bump()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '`':
			lx.cursor.Bump()
			kind := token.TemplateTail
			if opener == '`' {
				kind = token.TemplateNoSubst
			}
			tok := lx.emit(kind, start)
			tok.Value = lx.cook(tok.Text[1:len(tok.Text)-1], tok)
			return tok
		case b == '$':
			if lx.tryStr("${") {
				kind := token.TemplateMiddle
				if opener == '`' {
					kind = token.TemplateHead
				}
				tok := lx.emit(kind, start)
				tok.Value = lx.cook(tok.Text[1:len(tok.Text)-2], tok)
				return tok
			}
			lx.cursor.Bump()
		case b == '\\':
			lx.cursor.Bump()
			lx.bumpRune()
		default:
			lx.cursor.Bump()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedTemplate, sp, "unterminated template literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanRegExp сканирует /body/flags; классы [...] могут содержать '/'.
func (lx *Lexer) scanRegExp() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	inClass := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' {
			break
		}
		lx.cursor.Bump()
		switch b {
		case '\\':
			if lx.cursor.Peek() == '\n' {
				continue
			}
			lx.bumpRune()
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if inClass {
				continue
			}
			for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			return lx.emit(token.RegExpLit, start)
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedRegExp, sp, "unterminated regular expression")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// SplitRegExp splits a regexp literal token text into pattern and flags.
func SplitRegExp(text string) (pattern, flags string) {
	i := strings.LastIndexByte(text, '/')
	if i <= 0 {
		return strings.TrimPrefix(text, "/"), ""
	}
	return text[1:i], text[i+1:]
}

// TemplateRaw returns the raw text of a template piece without its delimiters.
func TemplateRaw(tok token.Token) string {
	s := tok.Text
	switch tok.Kind {
	case token.TemplateHead, token.TemplateMiddle:
		return s[1 : len(s)-2]
	case token.TemplateNoSubst, token.TemplateTail:
		return s[1 : len(s)-1]
	}
	return s
}

// cook раскрывает escape-последовательности строкового или шаблонного литерала.
func (lx *Lexer) cook(raw string, tok token.Token) string {
	if !strings.ContainsRune(raw, '\\') {
		return raw
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); {
		c := raw[i]
		if c != '\\' || i+1 >= len(raw) {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		c = raw[i]
		switch c {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			if i+1 < len(raw) && isDec(raw[i+1]) {
				lx.errLex(diag.LexBadEscape, tok.Span, "octal escape sequences are not allowed")
			}
			b.WriteByte(0)
		case '\n':
			// продолжение строки
		case 'x':
			if i+2 < len(raw) && isHex(raw[i+1]) && isHex(raw[i+2]) {
				v, _ := strconv.ParseUint(raw[i+1:i+3], 16, 8)
				b.WriteRune(rune(v))
				i += 3
				continue
			}
			lx.errLex(diag.LexBadEscape, tok.Span, "invalid hexadecimal escape sequence")
		case 'u':
			r, n := decodeUnicodeEscape(raw[i+1:])
			if n == 0 {
				lx.errLex(diag.LexBadEscape, tok.Span, "invalid unicode escape sequence")
				b.WriteByte('u')
				i++
				continue
			}
			b.WriteRune(r)
			i += 1 + n
			continue
		default:
			r, sz := utf8.DecodeRuneInString(raw[i:])
			b.WriteRune(r)
			i += sz
			continue
		}
		i++
	}
	return b.String()
}

// decodeUnicodeEscape разбирает XXXX или {X...} после \u; n — длина съеденного.
func decodeUnicodeEscape(s string) (r rune, n int) {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 2 {
			return 0, 0
		}
		v, err := strconv.ParseUint(s[1:end], 16, 32)
		if err != nil || v > utf8.MaxRune {
			return 0, 0
		}
		return rune(v), end + 1
	}
	if len(s) < 4 {
		return 0, 0
	}
	v, err := strconv.ParseUint(s[:4], 16, 32)
	if err != nil {
		return 0, 0
	}
	// суррогатная пара 😀
	if v >= 0xD800 && v <= 0xDBFF && len(s) >= 10 && s[4] == '\\' && s[5] == 'u' {
		if lo, err := strconv.ParseUint(s[6:10], 16, 32); err == nil && lo >= 0xDC00 && lo <= 0xDFFF {
			return rune((v-0xD800)<<10 + (lo - 0xDC00) + 0x10000), 10
		}
	}
	return rune(v), 4
}
