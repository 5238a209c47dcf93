package parser

import (
	"jsxc/internal/diag"
	"jsxc/internal/jsast"
	"jsxc/internal/lexer"
	"jsxc/internal/token"
)

func (p *Parser) parsePrimary() jsast.Expr {
	t := p.tok
	switch t.Kind {
	case token.Ident:
		return p.parseWordPrimary()
	case token.NumberLit:
		p.advance()
		return jsast.At(t.Span, &jsast.NumberLit{Raw: t.Text, Value: lexer.NumberValue(t.Text)})
	case token.BigIntLit:
		p.advance()
		return jsast.At(t.Span, &jsast.BigIntLit{Raw: t.Text})
	case token.StringLit:
		p.advance()
		return jsast.At(t.Span, &jsast.StringLit{Value: t.Value, Raw: t.Text})
	case token.TemplateNoSubst, token.TemplateHead:
		return p.parseTemplate()
	case token.Slash, token.SlashAssign:
		p.tok = p.lx.RescanRegExp(p.tok)
		re := p.advance()
		if re.Kind != token.RegExpLit {
			return jsast.At(re.Span, &jsast.Ident{})
		}
		pattern, flags := lexer.SplitRegExp(re.Text)
		return jsast.At(re.Span, &jsast.RegExpLit{Pattern: pattern, Flags: flags})
	case token.LParen:
		return p.parseParen()
	case token.LBracket:
		return p.parseArrayLiteral()
	case token.LBrace:
		return p.parseObjectLiteral()
	case token.Lt:
		x := p.parseJSX()
		p.advance()
		return x
	case token.Invalid:
		p.advance()
		return jsast.At(t.Span, &jsast.Ident{})
	}
	p.err(diag.SynExpectExpression, "expected expression, got "+describe(t))
	// не съедаем закрывающие скобки: их ждёт вызывающий
	switch t.Kind {
	case token.RParen, token.RBracket, token.RBrace, token.EOF, token.Semicolon, token.Comma:
	default:
		p.advance()
	}
	return jsast.At(t.Span, &jsast.Ident{})
}

func (p *Parser) parseWordPrimary() jsast.Expr {
	t := p.tok
	switch t.Text {
	case "this":
		p.advance()
		return jsast.At(t.Span, &jsast.ThisExpr{})
	case "null":
		p.advance()
		return jsast.At(t.Span, &jsast.NullLit{})
	case "true", "false":
		p.advance()
		return jsast.At(t.Span, &jsast.BoolLit{Value: t.Text == "true"})
	case "function":
		fn := p.parseFunction(false, true)
		return jsast.At(fn.Span(), &jsast.FuncExpr{Fn: fn})
	case "class":
		cl := p.parseClass(true)
		return jsast.At(cl.Span(), &jsast.ClassExpr{Class: cl})
	case "async":
		if next := p.peek(); next.Is("function") && !next.NewlineBefore {
			fn := p.parseFunction(true, true)
			return jsast.At(fn.Span(), &jsast.FuncExpr{Fn: fn})
		}
	case "new":
		return p.parseNew()
	case "super":
		p.advance()
		return jsast.At(t.Span, &jsast.SuperExpr{})
	case "import":
		return p.parseImportExpr()
	}
	if isReservedIdent(t.Text) {
		p.err(diag.SynExpectExpression, "unexpected keyword '"+t.Text+"'")
		p.advance()
		return jsast.At(t.Span, &jsast.Ident{})
	}
	p.advance()
	return jsast.At(t.Span, &jsast.Ident{Name: t.Value})
}

// isReservedIdent: слова, которые не могут быть ссылкой на переменную.
func isReservedIdent(word string) bool {
	switch word {
	case "this", "null", "true", "false", "super":
		return false
	}
	return token.IsReserved(word)
}

// parseIdentifier ожидает имя привязки.
func (p *Parser) parseIdentifier() *jsast.Ident {
	t := p.tok
	if t.Kind != token.Ident || isReservedIdent(t.Text) {
		p.err(diag.SynExpectIdentifier, "expected identifier, got "+describe(t))
		if t.Kind == token.Ident {
			p.advance()
		}
		return jsast.At(t.Span, &jsast.Ident{})
	}
	p.advance()
	return jsast.At(t.Span, &jsast.Ident{Name: t.Value})
}

func (p *Parser) parseTemplate() *jsast.TemplateLit {
	start := p.tok.Span.Start
	lit := &jsast.TemplateLit{}
	t := p.tok
	if t.Kind == token.TemplateNoSubst {
		p.advance()
		lit.Quasis = append(lit.Quasis, p.templateElem(t))
		return jsast.At(p.span(start), lit)
	}
	lit.Quasis = append(lit.Quasis, p.templateElem(t))
	p.advance()
	for {
		lit.Exprs = append(lit.Exprs, p.parseExpressionIn())
		if !p.at(token.RBrace) {
			p.err(diag.SynUnclosedBrace, "expected '}' to close template substitution")
			return jsast.At(p.span(start), lit)
		}
		p.tok = p.lx.RescanTemplateContinuation(p.tok)
		t = p.advance()
		if t.Kind != token.TemplateMiddle && t.Kind != token.TemplateTail {
			return jsast.At(p.span(start), lit)
		}
		lit.Quasis = append(lit.Quasis, p.templateElem(t))
		if t.Kind == token.TemplateTail {
			return jsast.At(p.span(start), lit)
		}
	}
}

func (p *Parser) templateElem(t token.Token) *jsast.TemplateElem {
	return jsast.At(t.Span, &jsast.TemplateElem{Raw: lexer.TemplateRaw(t), Cooked: t.Value})
}

func (p *Parser) parseArrayLiteral() jsast.Expr {
	start := p.tok.Span.Start
	p.advance() // [
	saved := p.noIn
	p.noIn = false
	elems := []jsast.Expr{}
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		if p.at(token.Comma) {
			p.advance()
			elems = append(elems, nil) // дырка
			continue
		}
		elems = append(elems, p.parseSpreadOrAssign())
		if !p.at(token.RBracket) && !p.expect(token.Comma, diag.SynUnexpectedToken, "expected ',' in array literal") {
			break
		}
	}
	p.noIn = saved
	p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close array literal")
	return jsast.At(p.span(start), &jsast.ArrayLit{Elems: elems})
}

func (p *Parser) parseObjectLiteral() jsast.Expr {
	start := p.tok.Span.Start
	p.advance() // {
	saved := p.noIn
	p.noIn = false
	props := []*jsast.Property{}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		props = append(props, p.parseProperty())
		if !p.at(token.RBrace) && !p.expect(token.Comma, diag.SynUnexpectedToken, "expected ',' in object literal") {
			p.resyncUntil(token.Comma, token.RBrace)
			if !p.eat(token.Comma) {
				break
			}
		}
	}
	p.noIn = saved
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close object literal")
	return jsast.At(p.span(start), &jsast.ObjectLit{Props: props})
}

// isPropertyEnd: после get/set/async идёт конец свойства, значит это обычный ключ.
func isPropertyEnd(t token.Token) bool {
	switch t.Kind {
	case token.Comma, token.Colon, token.LParen, token.RBrace, token.Assign:
		return true
	}
	return false
}

func (p *Parser) parseProperty() *jsast.Property {
	start := p.tok.Span.Start
	if p.at(token.DotDotDot) {
		p.advance()
		v := p.parseAssign()
		return jsast.At(p.span(start), &jsast.Property{Kind: jsast.PropSpread, Value: v})
	}

	kind := jsast.PropInit
	async, gen := false, false
	if p.atWord("get") || p.atWord("set") || p.atWord("async") {
		if next := p.peek(); !isPropertyEnd(next) && !(p.atWord("async") && next.NewlineBefore) {
			switch p.advance().Text {
			case "get":
				kind = jsast.PropGet
			case "set":
				kind = jsast.PropSet
			case "async":
				async = true
				kind = jsast.PropMethod
			}
		}
	}
	if p.eat(token.Star) {
		gen = true
		kind = jsast.PropMethod
	}

	key, computed := p.parsePropertyKey()
	prop := &jsast.Property{Kind: kind, Key: key, Computed: computed}

	switch {
	case kind != jsast.PropInit || p.at(token.LParen):
		if kind == jsast.PropInit {
			prop.Kind = jsast.PropMethod
		}
		fnStart := p.tok.Span.Start
		fn := p.parseFunctionRest(fnStart, nil, async, gen)
		prop.Value = jsast.At(fn.Span(), &jsast.FuncExpr{Fn: fn})
	case p.eat(token.Colon):
		prop.Value = p.parseAssign()
	default:
		id, ok := key.(*jsast.Ident)
		if !ok || computed {
			p.err(diag.SynUnexpectedToken, "expected ':' after property key")
			prop.Value = p.errorExpr()
			break
		}
		prop.Shorthand = true
		value := jsast.Expr(jsast.At(id.Span(), &jsast.Ident{Name: id.Name}))
		// CoverInitializedName: {a = 1} допустимо только как паттерн
		if p.eat(token.Assign) {
			def := p.parseAssign()
			value = jsast.At(p.span(id.Span().Start), &jsast.AssignExpr{Op: "=", Target: value, Value: def})
		}
		prop.Value = value
	}
	return jsast.At(p.span(start), prop)
}

// parsePropertyKey — ident/keyword, string, number, [computed].
func (p *Parser) parsePropertyKey() (jsast.Expr, bool) {
	t := p.tok
	switch t.Kind {
	case token.Ident:
		p.advance()
		return jsast.At(t.Span, &jsast.Ident{Name: t.Value}), false
	case token.StringLit:
		p.advance()
		return jsast.At(t.Span, &jsast.StringLit{Value: t.Value, Raw: t.Text}), false
	case token.NumberLit:
		p.advance()
		return jsast.At(t.Span, &jsast.NumberLit{Raw: t.Text, Value: lexer.NumberValue(t.Text)}), false
	case token.BigIntLit:
		p.advance()
		return jsast.At(t.Span, &jsast.BigIntLit{Raw: t.Text}), false
	case token.PrivateName:
		p.advance()
		return jsast.At(t.Span, &jsast.PrivateName{Name: t.Value}), false
	case token.LBracket:
		p.advance()
		k := p.parseAssignIn()
		p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after computed key")
		return k, true
	}
	p.err(diag.SynExpectIdentifier, "expected property key, got "+describe(t))
	if t.Kind != token.RBrace && t.Kind != token.EOF {
		p.advance()
	}
	return jsast.At(t.Span, &jsast.Ident{}), false
}

// parseParen — '(' ... ')': скобочное выражение или список параметров стрелки.
func (p *Parser) parseParen() jsast.Expr {
	start := p.tok.Span.Start
	p.advance() // (
	saved := p.noIn
	p.noIn = false
	items := []jsast.Expr{}
	for !p.at(token.RParen) && !p.at(token.EOF) {
		if p.at(token.DotDotDot) {
			restStart := p.tok.Span.Start
			p.advance()
			arg := p.parseAssign()
			items = append(items, jsast.At(p.span(restStart), &jsast.SpreadElem{X: arg}))
		} else {
			items = append(items, p.parseAssign())
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	p.noIn = saved
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'")

	var e jsast.Expr
	switch {
	case len(items) == 1 && !isSpread(items[0]):
		e = items[0]
	default:
		if len(items) == 0 || hasSpread(items) {
			// валидно только как параметры стрелки
			if !p.at(token.FatArrow) {
				p.errAt(diag.SynExpectExpression, p.span(start), "expected expression in parentheses")
			}
		}
		e = jsast.At(p.span(start), &jsast.ParenExpr{X: jsast.At(p.span(start), &jsast.SeqExpr{Exprs: items})})
	}
	p.parens[e] = items
	return e
}

func isSpread(e jsast.Expr) bool {
	_, ok := e.(*jsast.SpreadElem)
	return ok
}

func hasSpread(list []jsast.Expr) bool {
	for _, e := range list {
		if isSpread(e) {
			return true
		}
	}
	return false
}

// arrowParams превращает левую часть перед `=>` в список параметров.
func (p *Parser) arrowParams(left jsast.Expr) (params []jsast.Expr, async, ok bool) {
	if id, isIdent := left.(*jsast.Ident); isIdent {
		if _, paren := p.parens[left]; !paren || id.Name != "" {
			return []jsast.Expr{left}, false, id.Name != ""
		}
	}
	items, paren := p.parens[left]
	if !paren {
		// async (a, b) => ...
		call, isCall := left.(*jsast.CallExpr)
		if !isCall || call.Optional {
			return nil, false, false
		}
		callee, isIdent := call.Callee.(*jsast.Ident)
		if !isIdent || callee.Name != "async" {
			return nil, false, false
		}
		items, async = call.Args, true
	}
	params = make([]jsast.Expr, 0, len(items))
	for i, it := range items {
		if sp, isRest := it.(*jsast.SpreadElem); isRest {
			if i != len(items)-1 {
				p.errAt(diag.SynInvalidPattern, it.Span(), "rest parameter must be last")
			}
			params = append(params, jsast.At(sp.Span(), &jsast.RestElem{Arg: p.toPattern(sp.X, true)}))
			continue
		}
		params = append(params, p.toPattern(it, true))
	}
	return params, async, true
}

func (p *Parser) parseArrowBody(start uint32, params []jsast.Expr, async bool) jsast.Expr {
	p.advance() // =>
	arrow := &jsast.ArrowFunc{Params: params, Async: async}
	savedAsync, savedGen, savedFunc := p.inAsync, p.inGen, p.inFunc
	p.inAsync, p.inGen, p.inFunc = async, false, true
	if p.at(token.LBrace) {
		arrow.Body = p.parseFunctionBody()
	} else {
		arrow.Expr = p.parseAssign()
	}
	p.inAsync, p.inGen, p.inFunc = savedAsync, savedGen, savedFunc
	return jsast.At(p.span(start), arrow)
}
