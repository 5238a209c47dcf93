package parser

import (
	"jsxc/internal/diag"
	"jsxc/internal/jsast"
	"jsxc/internal/token"
)

// parseFunction разбирает `[async] function [*] [name] (params) { body }`.
func (p *Parser) parseFunction(async, isExpr bool) *jsast.Function {
	start := p.tok.Span.Start
	if async {
		p.advance() // async
	}
	p.expectWord("function")
	gen := p.eat(token.Star)
	var id *jsast.Ident
	if p.at(token.Ident) && !p.at(token.LParen) {
		id = p.parseIdentifier()
	} else if !isExpr {
		p.err(diag.SynExpectIdentifier, "function declaration requires a name")
	}
	return p.parseFunctionRest(start, id, async, gen)
}

// parseFunctionRest разбирает параметры и тело; start — начало всей функции.
func (p *Parser) parseFunctionRest(start uint32, id *jsast.Ident, async, gen bool) *jsast.Function {
	savedAsync, savedGen, savedFunc := p.inAsync, p.inGen, p.inFunc
	p.inAsync, p.inGen, p.inFunc = async, gen, true
	defer func() { p.inAsync, p.inGen, p.inFunc = savedAsync, savedGen, savedFunc }()

	params := p.parseParams()
	body := p.parseFunctionBody()
	return jsast.At(p.span(start), &jsast.Function{ID: id, Params: params, Body: body, Async: async, Generator: gen})
}

func (p *Parser) parseParams() []jsast.Expr {
	params := []jsast.Expr{}
	if !p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' before parameters") {
		return params
	}
	saved := p.noIn
	p.noIn = false
	for !p.at(token.RParen) && !p.at(token.EOF) {
		if p.at(token.DotDotDot) {
			start := p.tok.Span.Start
			p.advance()
			arg := p.parseBindingTarget()
			params = append(params, jsast.At(p.span(start), &jsast.RestElem{Arg: arg}))
			if !p.at(token.RParen) {
				p.err(diag.SynInvalidPattern, "rest parameter must be last")
			}
			break
		}
		params = append(params, p.parseBindingElement())
		if !p.eat(token.Comma) {
			break
		}
	}
	p.noIn = saved
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameters")
	return params
}

func (p *Parser) parseFunctionBody() *jsast.BlockStmt {
	start := p.tok.Span.Start
	if !p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' before function body") {
		return jsast.At(p.span(start), &jsast.BlockStmt{})
	}
	saved := p.noIn
	p.noIn = false
	body := p.parseStatementList(false, func() bool { return p.at(token.RBrace) || p.at(token.EOF) })
	p.noIn = saved
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' after function body")
	return jsast.At(p.span(start), &jsast.BlockStmt{Body: body})
}

// parseBindingElement — цель привязки с необязательным значением по умолчанию.
func (p *Parser) parseBindingElement() jsast.Expr {
	start := p.tok.Span.Start
	target := p.parseBindingTarget()
	if p.eat(token.Assign) {
		def := p.parseAssign()
		return jsast.At(p.span(start), &jsast.AssignPattern{Left: target, Right: def})
	}
	return target
}

// parseBindingTarget — идентификатор, объектный или массивный паттерн.
func (p *Parser) parseBindingTarget() jsast.Expr {
	switch p.tok.Kind {
	case token.LBrace:
		return p.toPattern(p.parseObjectLiteral(), true)
	case token.LBracket:
		return p.toPattern(p.parseArrayLiteral(), true)
	}
	return p.parseIdentifier()
}

// parseClass разбирает `class [Name] [extends Expr] { members }`.
func (p *Parser) parseClass(isExpr bool) *jsast.Class {
	start := p.tok.Span.Start
	p.advance() // class
	cl := &jsast.Class{}
	if p.at(token.Ident) && !p.atWord("extends") {
		cl.ID = p.parseIdentifier()
	} else if !isExpr {
		p.err(diag.SynExpectIdentifier, "class declaration requires a name")
	}
	if p.eatWord("extends") {
		cl.Super = p.parseLeftHandSide()
	}
	if !p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' before class body") {
		return jsast.At(p.span(start), cl)
	}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if p.eat(token.Semicolon) {
			continue
		}
		before := p.tok.Span.Start
		cl.Members = append(cl.Members, p.parseClassMember())
		if p.tok.Span.Start == before && !p.at(token.RBrace) {
			p.advance()
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' after class body")
	return jsast.At(p.span(start), cl)
}

func (p *Parser) parseClassMember() *jsast.ClassMember {
	start := p.tok.Span.Start
	m := &jsast.ClassMember{Kind: jsast.MemberMethod}

	// модификатор отличаем от имени члена по следующему токену
	modifier := func(word string) bool {
		if !p.atWord(word) {
			return false
		}
		next := p.peek()
		switch next.Kind {
		case token.LParen, token.Assign, token.Semicolon, token.RBrace:
			return false
		}
		return !next.NewlineBefore || word == "static"
	}

	if modifier("static") {
		p.advance()
		m.Static = true
		if p.at(token.LBrace) {
			m.Kind = jsast.MemberStaticBlock
			savedFunc := p.inFunc
			p.inFunc = true
			m.Body = p.parseFunctionBody()
			p.inFunc = savedFunc
			return jsast.At(p.span(start), m)
		}
	}
	async, gen := false, false
	if modifier("async") {
		p.advance()
		async = true
	}
	if p.eat(token.Star) {
		gen = true
	}
	if !async && !gen {
		switch {
		case modifier("get"):
			p.advance()
			m.Kind = jsast.MemberGetter
		case modifier("set"):
			p.advance()
			m.Kind = jsast.MemberSetter
		}
	}

	m.Key, m.Computed = p.parsePropertyKey()
	if p.at(token.LParen) {
		fnStart := p.tok.Span.Start
		fn := p.parseFunctionRest(fnStart, nil, async, gen)
		m.Value = jsast.At(fn.Span(), &jsast.FuncExpr{Fn: fn})
		return jsast.At(p.span(start), m)
	}
	m.Kind = jsast.MemberField
	if p.eat(token.Assign) {
		savedFunc := p.inFunc
		p.inFunc = true
		m.Value = p.parseAssignIn()
		p.inFunc = savedFunc
	}
	p.consumeSemicolon()
	return jsast.At(p.span(start), m)
}
