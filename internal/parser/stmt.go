package parser

import (
	"jsxc/internal/diag"
	"jsxc/internal/jsast"
	"jsxc/internal/token"
)

// parseStatementList читает инструкции до stop(); гарантирует прогресс на мусоре.
func (p *Parser) parseStatementList(topLevel bool, stop func() bool) []jsast.Stmt {
	list := []jsast.Stmt{}
	for !stop() {
		before := p.tok.Span
		s := p.parseStatement(topLevel)
		if s != nil {
			list = append(list, s)
		}
		if p.tok.Span == before && !stop() {
			p.advance()
		}
	}
	return list
}

func (p *Parser) parseStatement(topLevel bool) jsast.Stmt {
	start := p.tok.Span.Start
	switch p.tok.Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.Semicolon:
		p.advance()
		return jsast.At(p.span(start), &jsast.EmptyStmt{})
	case token.Ident:
		if s := p.parseKeywordStatement(topLevel); s != nil {
			return s
		}
	}
	x := p.parseExpressionIn()
	p.consumeSemicolon()
	return jsast.At(p.span(start), &jsast.ExprStmt{X: x})
}

// parseKeywordStatement возвращает nil, если слово начинает выражение.
func (p *Parser) parseKeywordStatement(topLevel bool) jsast.Stmt {
	start := p.tok.Span.Start
	switch p.tok.Text {
	case "var", "const":
		return p.parseVarStatement()
	case "let":
		if next := p.peek(); next.Kind == token.Ident || next.Kind == token.LBrace || next.Kind == token.LBracket {
			return p.parseVarStatement()
		}
	case "function":
		fn := p.parseFunction(false, false)
		return jsast.At(fn.Span(), &jsast.FuncDecl{Fn: fn})
	case "async":
		if next := p.peek(); next.Is("function") && !next.NewlineBefore {
			fn := p.parseFunction(true, false)
			return jsast.At(fn.Span(), &jsast.FuncDecl{Fn: fn})
		}
	case "class":
		cl := p.parseClass(false)
		return jsast.At(cl.Span(), &jsast.ClassDecl{Class: cl})
	case "if":
		return p.parseIf()
	case "for":
		return p.parseFor()
	case "while":
		p.advance()
		test := p.parseParenCondition()
		body := p.parseStatement(false)
		return jsast.At(p.span(start), &jsast.WhileStmt{Test: test, Body: body})
	case "do":
		p.advance()
		body := p.parseStatement(false)
		p.expectWord("while")
		test := p.parseParenCondition()
		p.eat(token.Semicolon)
		return jsast.At(p.span(start), &jsast.DoWhileStmt{Body: body, Test: test})
	case "return":
		if !p.inFunc {
			p.err(diag.SynUnsupportedStatement, "'return' outside of function")
		}
		p.advance()
		ret := &jsast.ReturnStmt{}
		if p.hasOperand() {
			ret.X = p.parseExpressionIn()
		}
		p.consumeSemicolon()
		return jsast.At(p.span(start), ret)
	case "break", "continue":
		word := p.advance().Text
		var label *jsast.Ident
		if p.at(token.Ident) && !p.tok.NewlineBefore && !isReservedIdent(p.tok.Text) {
			label = p.parseIdentifier()
		}
		p.consumeSemicolon()
		if word == "break" {
			return jsast.At(p.span(start), &jsast.BreakStmt{Label: label})
		}
		return jsast.At(p.span(start), &jsast.ContinueStmt{Label: label})
	case "throw":
		p.advance()
		if p.tok.NewlineBefore {
			p.err(diag.SynUnexpectedToken, "line break is not allowed after 'throw'")
		}
		x := p.parseExpressionIn()
		p.consumeSemicolon()
		return jsast.At(p.span(start), &jsast.ThrowStmt{X: x})
	case "try":
		return p.parseTry()
	case "switch":
		return p.parseSwitch()
	case "debugger":
		p.advance()
		p.consumeSemicolon()
		return jsast.At(p.span(start), &jsast.DebuggerStmt{})
	case "import":
		if next := p.peek(); next.Kind == token.LParen || next.Kind == token.Dot {
			return nil
		}
		if !topLevel {
			p.err(diag.SynUnsupportedStatement, "import declarations are only allowed at the top level")
		}
		return p.parseImportDecl()
	case "export":
		if !topLevel {
			p.err(diag.SynUnsupportedStatement, "export declarations are only allowed at the top level")
		}
		return p.parseExport()
	case "with":
		p.err(diag.SynUnsupportedStatement, "'with' is not allowed in module code")
	}
	if !isReservedIdent(p.tok.Text) && p.peek().Kind == token.Colon {
		label := p.parseIdentifier()
		p.advance() // :
		body := p.parseStatement(false)
		return jsast.At(p.span(start), &jsast.LabeledStmt{Label: label, Body: body})
	}
	return nil
}

// hasOperand: за return следует выражение на той же строке.
func (p *Parser) hasOperand() bool {
	switch p.tok.Kind {
	case token.Semicolon, token.RBrace, token.EOF:
		return false
	}
	return !p.tok.NewlineBefore
}

func (p *Parser) parseBlock() *jsast.BlockStmt {
	start := p.tok.Span.Start
	p.advance() // {
	body := p.parseStatementList(false, func() bool { return p.at(token.RBrace) || p.at(token.EOF) })
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close block")
	return jsast.At(p.span(start), &jsast.BlockStmt{Body: body})
}

func (p *Parser) parseParenCondition() jsast.Expr {
	p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('")
	x := p.parseExpressionIn()
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
	return x
}

func (p *Parser) parseVarStatement() *jsast.VarDecl {
	decl := p.parseVarDecl()
	p.consumeSemicolon()
	decl.SetSpan(p.span(decl.Span().Start))
	return decl
}

// parseVarDecl читает `var|let|const a = 1, {b} = c` без точки с запятой.
func (p *Parser) parseVarDecl() *jsast.VarDecl {
	start := p.tok.Span.Start
	decl := &jsast.VarDecl{Kind: p.advance().Text}
	for {
		dStart := p.tok.Span.Start
		d := &jsast.Declarator{Target: p.parseBindingTarget()}
		if p.eat(token.Assign) {
			d.Init = p.parseAssign()
		}
		decl.Decls = append(decl.Decls, jsast.At(p.span(dStart), d))
		if !p.eat(token.Comma) {
			break
		}
	}
	return jsast.At(p.span(start), decl)
}

func (p *Parser) parseIf() jsast.Stmt {
	start := p.tok.Span.Start
	p.advance()
	s := &jsast.IfStmt{Test: p.parseParenCondition()}
	s.Cons = p.parseStatement(false)
	if p.eatWord("else") {
		s.Alt = p.parseStatement(false)
	}
	return jsast.At(p.span(start), s)
}

func (p *Parser) parseFor() jsast.Stmt {
	start := p.tok.Span.Start
	p.advance() // for
	await := false
	if p.atWord("await") {
		if !p.inAsync {
			p.err(diag.SynUnexpectedToken, "'for await' is only valid in async functions")
		}
		p.advance()
		await = true
	}
	p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'for'")

	var init jsast.Node
	saved := p.noIn
	p.noIn = true
	switch {
	case p.at(token.Semicolon):
	case p.atWord("var") || p.atWord("const") || (p.atWord("let") && p.peekStartsBinding()):
		init = p.parseVarDecl()
	default:
		init = p.parseExpression()
	}
	p.noIn = saved

	if p.atWord("of") || p.atWord("in") {
		of := p.advance().Text == "of"
		left := init
		if e, isExpr := init.(jsast.Expr); isExpr {
			left = p.toPattern(e, false)
		} else if d, isDecl := init.(*jsast.VarDecl); isDecl && (len(d.Decls) != 1 || d.Decls[0].Init != nil) {
			p.errAt(diag.SynInvalidPattern, d.Span(), "for-in/of declaration must have a single binding without initializer")
		}
		var right jsast.Expr
		if of {
			right = p.parseAssignIn()
		} else {
			right = p.parseExpressionIn()
		}
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after for-in/of head")
		body := p.parseStatement(false)
		return jsast.At(p.span(start), &jsast.ForInStmt{Left: left, Right: right, Body: body, Of: of, Await: await})
	}

	s := &jsast.ForStmt{Init: init}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' in for head")
	if !p.at(token.Semicolon) {
		s.Test = p.parseExpressionIn()
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' in for head")
	if !p.at(token.RParen) {
		s.Update = p.parseExpressionIn()
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after for head")
	s.Body = p.parseStatement(false)
	return jsast.At(p.span(start), s)
}

func (p *Parser) peekStartsBinding() bool {
	next := p.peek()
	return next.Kind == token.Ident || next.Kind == token.LBrace || next.Kind == token.LBracket
}

func (p *Parser) parseTry() jsast.Stmt {
	start := p.tok.Span.Start
	p.advance()
	s := &jsast.TryStmt{}
	if !p.at(token.LBrace) {
		p.err(diag.SynUnexpectedToken, "expected '{' after 'try'")
		return jsast.At(p.span(start), s)
	}
	s.Block = p.parseBlock()
	if p.atWord("catch") {
		cStart := p.tok.Span.Start
		p.advance()
		h := &jsast.CatchClause{}
		if p.eat(token.LParen) {
			h.Param = p.parseBindingTarget()
			p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after catch parameter")
		}
		if p.at(token.LBrace) {
			h.Body = p.parseBlock()
		} else {
			p.err(diag.SynUnexpectedToken, "expected '{' after 'catch'")
		}
		s.Handler = jsast.At(p.span(cStart), h)
	}
	if p.eatWord("finally") {
		if p.at(token.LBrace) {
			s.Finalizer = p.parseBlock()
		} else {
			p.err(diag.SynUnexpectedToken, "expected '{' after 'finally'")
		}
	}
	if s.Handler == nil && s.Finalizer == nil {
		p.err(diag.SynUnexpectedToken, "missing catch or finally after try")
	}
	return jsast.At(p.span(start), s)
}

func (p *Parser) parseSwitch() jsast.Stmt {
	start := p.tok.Span.Start
	p.advance()
	s := &jsast.SwitchStmt{Disc: p.parseParenCondition()}
	if !p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after switch discriminant") {
		return jsast.At(p.span(start), s)
	}
	caseEnd := func() bool {
		return p.atWord("case") || p.atWord("default") || p.at(token.RBrace) || p.at(token.EOF)
	}
	seenDefault := false
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		cStart := p.tok.Span.Start
		c := &jsast.SwitchCase{}
		switch {
		case p.eatWord("case"):
			c.Test = p.parseExpressionIn()
		case p.atWord("default"):
			if seenDefault {
				p.err(diag.SynUnexpectedToken, "multiple default clauses in switch")
			}
			seenDefault = true
			p.advance()
		default:
			p.err(diag.SynUnexpectedToken, "expected 'case' or 'default', got "+describe(p.tok))
			p.advance()
			continue
		}
		p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after case")
		c.Body = p.parseStatementList(false, caseEnd)
		s.Cases = append(s.Cases, jsast.At(p.span(cStart), c))
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close switch")
	return jsast.At(p.span(start), s)
}
