package lexer

import (
	"golang.org/x/net/html"

	"jsxc/internal/diag"
	"jsxc/internal/token"
)

// NextJSXTag возвращает следующий токен внутри открывающего или закрывающего тега:
// имена (с '-'), строки без escape-последовательностей и одиночные `< > / = { } : .`.
func (lx *Lexer) NextJSXTag() token.Token {
	nl := lx.skipTrivia()
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan(), NewlineBefore: nl}
	}
	start := lx.cursor.Mark()
	b := lx.cursor.Peek()
	var tok token.Token
	switch {
	case isIdentStartByte(b) || b >= utf8RuneSelf:
		tok = lx.scanIdent(true)
	case b == '"' || b == '\'':
		tok = lx.scanJSXString()
	default:
		lx.cursor.Bump()
		switch b {
		case '<', '>', '/', '=', '{', '}', ':', '.':
			tok = lx.emit(singleOps[b], start)
		default:
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnknownChar, sp, "unexpected character in JSX tag")
			tok = token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
	}
	tok.NewlineBefore = nl
	return tok
}

// NextJSXChild сканирует содержимое элемента: текст до '<' или '{', либо сам '<' / '{'.
func (lx *Lexer) NextJSXChild() token.Token {
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}
	start := lx.cursor.Mark()
	switch b := lx.cursor.Peek(); b {
	case '<':
		lx.cursor.Bump()
		return lx.emit(token.Lt, start)
	case '{':
		lx.cursor.Bump()
		return lx.emit(token.LBrace, start)
	}
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '<' || b == '{' {
			break
		}
		lx.cursor.Bump()
	}
	tok := lx.emit(token.JSXText, start)
	tok.Value = html.UnescapeString(tok.Text)
	return tok
}

// scanJSXString: строка атрибута, допускает переводы строк, escape нет, сущности раскрываются.
func (lx *Lexer) scanJSXString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == quote {
			tok := lx.emit(token.StringLit, start)
			tok.Value = html.UnescapeString(tok.Text[1 : len(tok.Text)-1])
			return tok
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated JSX attribute string")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
