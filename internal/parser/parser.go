// Package parser builds jsast trees from JavaScript modules and JSX templates.
//
// The parser drives the lexer mode token by token: JavaScript tokens by
// default, tag and child modes inside JSX, and rescans for regular
// expressions and template continuations. Arrow parameters and
// destructuring assignments use the cover grammar: the parser reads an
// expression first and converts it to a pattern once `=>` or `=` follows.
package parser

import (
	"jsxc/internal/diag"
	"jsxc/internal/jsast"
	"jsxc/internal/lexer"
	"jsxc/internal/source"
	"jsxc/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Program *jsast.Program
	// Errors is the number of syntax errors reported while parsing.
	Errors uint
}

// Parser — состояние парсера на один файл
type Parser struct {
	lx      *lexer.Lexer
	file    *source.File
	opts    Options
	tok     token.Token // текущий токен
	prevEnd uint32      // конец последнего съеденного токена

	// parens: выражения, прочитанные в скобках, со списком элементов для cover grammar
	parens map[jsast.Expr][]jsast.Expr

	noIn      bool // внутри заголовка for: `in` не бинарный оператор
	inFunc    bool
	inGen     bool
	inAsync   bool
	exprDepth int
}

func newParser(file *source.File, opts Options) *Parser {
	p := &Parser{
		lx:     lexer.New(file, lexer.Options{Reporter: opts.Reporter}),
		file:   file,
		opts:   opts,
		parens: make(map[jsast.Expr][]jsast.Expr),
	}
	p.tok = p.lx.Next()
	return p
}

// ParseFile разбирает модуль целиком.
func ParseFile(file *source.File, opts Options) Result {
	p := newParser(file, opts)
	start := p.tok.Span.Start
	body := p.parseStatementList(true, func() bool { return p.at(token.EOF) })
	prog := jsast.At(source.Span{File: file.ID, Start: start, End: p.tok.Span.End}, &jsast.Program{Body: body})
	return Result{Program: prog, Errors: p.opts.CurrentErrors}
}

// ParseExpression разбирает файл, содержащий ровно одно выражение (обычно JSX-шаблон).
func ParseExpression(file *source.File, opts Options) (jsast.Expr, uint) {
	p := newParser(file, opts)
	e := p.parseExpression()
	if !p.at(token.EOF) {
		p.err(diag.SynUnexpectedToken, "unexpected "+describe(p.tok)+" after expression")
	}
	return e, p.opts.CurrentErrors
}

// JSXRoots returns the outermost JSX elements and fragments under n in source order.
func JSXRoots(n jsast.Node) []jsast.Expr {
	var out []jsast.Expr
	jsast.Walk(n, jsast.Visitor{Enter: func(c *jsast.Cursor) bool {
		switch e := c.Node.(type) {
		case *jsast.JSXElement:
			out = append(out, e)
			return false
		case *jsast.JSXFragment:
			out = append(out, e)
			return false
		}
		return true
	}})
	return out
}

func (p *Parser) at(k token.Kind) bool {
	return p.tok.Kind == k
}

func (p *Parser) atWord(word string) bool {
	return p.tok.Is(word)
}

// peek возвращает следующий JS-токен, не сдвигая парсер.
func (p *Parser) peek() token.Token {
	off := p.lx.Offset()
	unmute := p.lx.Mute()
	t := p.lx.Next()
	unmute()
	p.lx.Reset(off)
	return t
}

func (p *Parser) span(start uint32) source.Span {
	end := p.prevEnd
	if end < start {
		end = start
	}
	return source.Span{File: p.file.ID, Start: start, End: end}
}

func describe(t token.Token) string {
	switch t.Kind {
	case token.EOF:
		return "end of file"
	case token.Ident, token.NumberLit, token.StringLit:
		return "'" + t.Text + "'"
	}
	return "'" + t.Kind.String() + "'"
}
