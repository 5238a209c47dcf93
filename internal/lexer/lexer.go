package lexer

import (
	"jsxc/internal/source"
	"jsxc/internal/token"
)

// Lexer scans JavaScript and JSX on demand. It keeps no lookahead: the
// parser picks the scanning mode for every token (Next, NextJSXTag,
// NextJSXChild) and rescans ambiguous tokens (regexps, template
// continuations) from their start offset.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	muted  int
}

func New(file *source.File, opts Options) *Lexer {
	lx := &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
	lx.skipHashbang()
	return lx
}

// Offset returns the current byte offset.
func (lx *Lexer) Offset() uint32 { return lx.cursor.Off }

// Reset moves the lexer back (or forward) to off.
func (lx *Lexer) Reset(off uint32) { lx.cursor.Reset(Mark(off)) }

// Mute suppresses diagnostics until the returned func is called; used for lookahead.
func (lx *Lexer) Mute() func() {
	lx.muted++
	return func() { lx.muted-- }
}

// Next возвращает следующий токен в режиме JavaScript.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	nl := lx.skipTrivia()

	if lx.cursor.EOF() {
		tok := token.Token{Kind: token.EOF, Span: lx.emptySpan()}
		tok.NewlineBefore = nl
		return tok
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isIdentStartByte(ch) || ch == '\\':
		tok = lx.scanIdent(false)

	case ch >= utf8RuneSelf:
		// Возможный Unicode идентификатор
		tok = lx.scanIdent(false)

	case ch == '#':
		tok = lx.scanPrivateName()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()

	case ch == '"' || ch == '\'':
		tok = lx.scanString()

	case ch == '`':
		tok = lx.scanTemplate()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.NewlineBefore = nl
	return tok
}

// RescanRegExp re-reads a `/` or `/=` token in operand position as a regular expression.
func (lx *Lexer) RescanRegExp(tok token.Token) token.Token {
	lx.cursor.Reset(Mark(tok.Span.Start))
	out := lx.scanRegExp()
	out.NewlineBefore = tok.NewlineBefore
	return out
}

// RescanTemplateContinuation re-reads a `}` that closes a template substitution
// as TemplateMiddle or TemplateTail.
func (lx *Lexer) RescanTemplateContinuation(tok token.Token) token.Token {
	lx.cursor.Reset(Mark(tok.Span.Start))
	return lx.scanTemplate()
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
}
