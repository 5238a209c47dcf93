package parser

import (
	"jsxc/internal/diag"
	"jsxc/internal/jsast"
	"jsxc/internal/source"
	"jsxc/internal/token"
)

// nextTag / nextChild сдвигают парсер в JSX-режимах лексера.
func (p *Parser) nextTag() {
	p.prevEnd = p.tok.Span.End
	p.tok = p.lx.NextJSXTag()
}

func (p *Parser) nextChild() {
	p.prevEnd = p.tok.Span.End
	p.tok = p.lx.NextJSXChild()
}

func (p *Parser) spanTo(start uint32) source.Span {
	return source.Span{File: p.file.ID, Start: start, End: p.tok.Span.End}
}

// parseJSX разбирает элемент или фрагмент; p.tok — открывающий '<'.
// На выходе p.tok — завершающий '>' (уже прочитан), режим следующего токена
// выбирает вызывающий.
func (p *Parser) parseJSX() jsast.Expr {
	start := p.tok.Span.Start
	p.nextTag()

	if p.at(token.Gt) {
		frag := &jsast.JSXFragment{}
		frag.Children = p.parseJSXChildren(nil)
		return jsast.At(p.spanTo(start), frag)
	}

	el := &jsast.JSXElement{Name: p.parseJSXName()}
	p.parseJSXAttrs(el)
	el.OpenSpan = p.spanTo(start)
	switch {
	case el.SelfClosing:
	case p.at(token.Gt):
		el.Children = p.parseJSXChildren(el.Name)
	default:
		p.errAt(diag.SynJSXUnclosedElement, el.OpenSpan, "unterminated JSX opening tag <"+jsast.JSXNameString(el.Name)+">")
	}
	return jsast.At(p.spanTo(start), el)
}

// parseJSXName: ident, ns:ident или a.b.c; после имени p.tok — следующий токен тега.
func (p *Parser) parseJSXName() jsast.Expr {
	ident := func() *jsast.JSXIdent {
		t := p.tok
		if t.Kind != token.Ident {
			p.err(diag.SynExpectIdentifier, "expected JSX identifier, got "+describe(t))
			return jsast.At(t.Span, &jsast.JSXIdent{})
		}
		p.nextTag()
		return jsast.At(t.Span, &jsast.JSXIdent{Name: t.Text})
	}
	start := p.tok.Span.Start
	first := ident()
	switch {
	case p.at(token.Colon):
		p.nextTag()
		name := ident()
		return jsast.At(p.span(start), &jsast.JSXNamespacedName{Namespace: first, Name: name})
	case p.at(token.Dot):
		var obj jsast.Expr = first
		for p.at(token.Dot) {
			p.nextTag()
			prop := ident()
			obj = jsast.At(p.span(start), &jsast.JSXMemberExpr{Object: obj, Property: prop})
		}
		return obj
	}
	return first
}

// parseJSXAttrs читает атрибуты до '>' или '/>'.
func (p *Parser) parseJSXAttrs(el *jsast.JSXElement) {
	for {
		switch p.tok.Kind {
		case token.Gt, token.EOF:
			return
		case token.Slash:
			p.nextTag()
			if !p.at(token.Gt) {
				p.err(diag.SynUnexpectedToken, "expected '>' after '/' in JSX tag, got "+describe(p.tok))
				return
			}
			el.SelfClosing = true
			return
		case token.LBrace:
			el.Attrs = append(el.Attrs, p.parseJSXSpreadAttr())
		case token.Ident:
			el.Attrs = append(el.Attrs, p.parseJSXAttr())
		default:
			p.err(diag.SynJSXExpectAttribute, "expected JSX attribute, got "+describe(p.tok))
			p.nextTag()
		}
	}
}

func (p *Parser) parseJSXAttr() *jsast.JSXAttr {
	start := p.tok.Span.Start
	attr := &jsast.JSXAttr{Name: p.parseJSXName()}
	if !p.at(token.Assign) {
		return jsast.At(p.span(start), attr)
	}
	p.nextTag()
	switch p.tok.Kind {
	case token.StringLit:
		t := p.tok
		attr.Value = jsast.At(t.Span, &jsast.StringLit{Value: t.Value, Raw: t.Text})
		p.nextTag()
	case token.LBrace:
		c := p.parseJSXContainer()
		if _, empty := c.X.(*jsast.JSXEmptyExpr); empty {
			p.errAt(diag.SynExpectExpression, c.Span(), "JSX attribute value must not be empty")
		}
		attr.Value = c
		p.nextTag()
	case token.Lt:
		attr.Value = p.parseJSX()
		p.nextTag()
	default:
		p.err(diag.SynExpectExpression, "expected JSX attribute value, got "+describe(p.tok))
		return jsast.At(p.span(start), attr)
	}
	return jsast.At(p.span(start), attr)
}

// parseJSXSpreadAttr: `{...expr}`.
func (p *Parser) parseJSXSpreadAttr() *jsast.JSXSpreadAttr {
	start := p.tok.Span.Start
	p.advance() // {
	if !p.eat(token.DotDotDot) {
		p.err(diag.SynJSXExpectAttribute, "expected '...' in JSX spread attribute, got "+describe(p.tok))
	}
	x := p.parseAssignIn()
	p.closeContainer()
	attr := jsast.At(p.spanTo(start), &jsast.JSXSpreadAttr{X: x})
	p.nextTag()
	return attr
}

// parseJSXContainer: p.tok — '{'; на выходе p.tok — '}' (прочитан, не съеден).
func (p *Parser) parseJSXContainer() *jsast.JSXExprContainer {
	start := p.tok.Span.Start
	p.advance() // {
	var x jsast.Expr
	if p.at(token.RBrace) {
		x = jsast.At(source.Span{File: p.file.ID, Start: p.prevEnd, End: p.tok.Span.Start}, &jsast.JSXEmptyExpr{})
	} else {
		x = p.parseExpressionIn()
		p.closeContainer()
	}
	return jsast.At(p.spanTo(start), &jsast.JSXExprContainer{X: x})
}

// closeContainer проверяет '}' и при ошибке пропускает токены до него.
func (p *Parser) closeContainer() {
	if p.at(token.RBrace) {
		return
	}
	p.err(diag.SynUnclosedBrace, "expected '}' to close JSX expression, got "+describe(p.tok))
	p.resyncUntil(token.RBrace)
}

// parseJSXChildren читает детей после '>' открывающего тега и закрывающий тег.
// name == nil для фрагмента.
func (p *Parser) parseJSXChildren(name jsast.Expr) []jsast.Expr {
	children := []jsast.Expr{}
	for {
		p.nextChild()
		switch p.tok.Kind {
		case token.EOF:
			p.err(diag.SynJSXUnclosedElement, "unclosed JSX element <"+jsast.JSXNameString(name)+">")
			return children
		case token.JSXText:
			t := p.tok
			children = append(children, jsast.At(t.Span, &jsast.JSXText{Value: t.Value, Raw: t.Text}))
		case token.LBrace:
			children = append(children, p.parseJSXChildContainer())
		case token.Lt:
			lt := p.tok
			off := p.lx.Offset()
			if next := p.lx.NextJSXTag(); next.Kind == token.Slash {
				p.prevEnd = lt.Span.End
				p.tok = next
				p.parseJSXClosing(name, lt.Span.Start)
				return children
			}
			p.lx.Reset(off)
			children = append(children, p.parseJSX())
		}
	}
}

func (p *Parser) parseJSXChildContainer() jsast.Expr {
	start := p.tok.Span.Start
	p.advance() // {
	if p.at(token.DotDotDot) {
		p.advance()
		x := p.parseAssignIn()
		p.closeContainer()
		return jsast.At(p.spanTo(start), &jsast.JSXSpreadChild{X: x})
	}
	var x jsast.Expr
	if p.at(token.RBrace) {
		x = jsast.At(source.Span{File: p.file.ID, Start: p.prevEnd, End: p.tok.Span.Start}, &jsast.JSXEmptyExpr{})
	} else {
		x = p.parseExpressionIn()
		p.closeContainer()
	}
	return jsast.At(p.spanTo(start), &jsast.JSXExprContainer{X: x})
}

// parseJSXClosing: p.tok — '/' после '<'; сверяет имя с открывающим.
func (p *Parser) parseJSXClosing(name jsast.Expr, start uint32) {
	p.nextTag()
	var closing jsast.Expr
	if !p.at(token.Gt) {
		closing = p.parseJSXName()
	}
	want, got := jsast.JSXNameString(name), jsast.JSXNameString(closing)
	if (name == nil) != (closing == nil) || want != got {
		p.errAt(diag.SynJSXMismatchedTag, p.spanTo(start),
			"expected corresponding JSX closing tag for <"+want+">, got </"+got+">")
	}
	if !p.at(token.Gt) {
		p.err(diag.SynUnexpectedToken, "expected '>' to end JSX closing tag, got "+describe(p.tok))
	}
}
