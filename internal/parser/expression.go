package parser

import (
	"jsxc/internal/diag"
	"jsxc/internal/jsast"
	"jsxc/internal/token"
)

const maxExprDepth = 1000

// parseExpression — Expression: AssignmentExpression (',' AssignmentExpression)*
func (p *Parser) parseExpression() jsast.Expr {
	start := p.tok.Span.Start
	first := p.parseAssign()
	if !p.at(token.Comma) {
		return first
	}
	list := []jsast.Expr{first}
	for p.eat(token.Comma) {
		list = append(list, p.parseAssign())
	}
	return jsast.At(p.span(start), &jsast.SeqExpr{Exprs: list})
}

// parseExpressionIn разбирает выражение с разрешённым `in` (внутри скобок, индексов).
func (p *Parser) parseExpressionIn() jsast.Expr {
	saved := p.noIn
	p.noIn = false
	defer func() { p.noIn = saved }()
	return p.parseExpression()
}

func (p *Parser) parseAssignIn() jsast.Expr {
	saved := p.noIn
	p.noIn = false
	defer func() { p.noIn = saved }()
	return p.parseAssign()
}

// parseAssign — AssignmentExpression, включая стрелки, yield и async-стрелки.
func (p *Parser) parseAssign() jsast.Expr {
	p.exprDepth++
	defer func() { p.exprDepth-- }()
	if p.exprDepth > maxExprDepth {
		p.err(diag.SynExpectExpression, "expression is nested too deeply")
		return p.errorExpr()
	}

	start := p.tok.Span.Start

	if p.inGen && p.atWord("yield") {
		return p.parseYield()
	}

	// async x => ...
	if p.atWord("async") {
		if next := p.peek(); next.Kind == token.Ident && !next.NewlineBefore && next.Text != "function" {
			p.advance()
			param := p.parseIdentifier()
			if p.at(token.FatArrow) {
				return p.parseArrowBody(start, []jsast.Expr{param}, true)
			}
			p.err(diag.SynUnexpectedToken, "expected '=>' after async arrow parameter")
			return param
		}
	}

	left := p.parseConditional()

	if p.at(token.FatArrow) {
		if params, async, ok := p.arrowParams(left); ok {
			return p.parseArrowBody(start, params, async)
		}
		p.err(diag.SynUnexpectedToken, "invalid arrow function parameters")
		p.advance()
		return left
	}

	if p.tok.Kind.IsAssign() {
		op := p.tok
		target := left
		if op.Kind == token.Assign {
			target = p.toPattern(left, false)
		} else if !isSimpleTarget(left) {
			p.errAt(diag.SynInvalidAssignTarget, left.Span(), "invalid assignment target")
		}
		p.advance()
		value := p.parseAssign()
		return jsast.At(p.span(start), &jsast.AssignExpr{Op: op.Kind.String(), Target: target, Value: value})
	}
	return left
}

func isSimpleTarget(e jsast.Expr) bool {
	switch e := e.(type) {
	case *jsast.Ident:
		return e.Name != ""
	case *jsast.MemberExpr:
		return !e.Optional
	}
	return false
}

func (p *Parser) parseYield() jsast.Expr {
	start := p.tok.Span.Start
	p.advance()
	y := &jsast.YieldExpr{}
	if p.eat(token.Star) {
		y.Delegate = true
		y.X = p.parseAssign()
	} else if !p.tok.NewlineBefore && startsExpression(p.tok) {
		y.X = p.parseAssign()
	}
	return jsast.At(p.span(start), y)
}

// startsExpression грубо определяет, может ли токен начинать выражение (для yield/await).
func startsExpression(t token.Token) bool {
	switch t.Kind {
	case token.Ident, token.PrivateName, token.NumberLit, token.BigIntLit, token.StringLit,
		token.TemplateNoSubst, token.TemplateHead, token.LParen, token.LBracket, token.LBrace,
		token.Lt, token.Bang, token.Tilde, token.Plus, token.Minus, token.PlusPlus,
		token.MinusMinus, token.Slash, token.SlashAssign:
		return true
	}
	return false
}

// parseConditional — test ? cons : alt
func (p *Parser) parseConditional() jsast.Expr {
	start := p.tok.Span.Start
	test := p.parseBinary(1)
	if !p.at(token.Question) {
		return test
	}
	p.advance()
	cons := p.parseAssignIn()
	p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' in conditional expression")
	alt := p.parseAssign()
	return jsast.At(p.span(start), &jsast.CondExpr{Test: test, Cons: cons, Alt: alt})
}

// binaryOp возвращает приоритет текущего токена как бинарного оператора.
func (p *Parser) binaryOp() (op string, prec int) {
	if p.tok.Kind == token.Ident {
		switch p.tok.Text {
		case "instanceof":
			return "instanceof", token.RelationalPrec
		case "in":
			if !p.noIn {
				return "in", token.RelationalPrec
			}
		}
		return "", 0
	}
	prec = token.BinaryPrec(p.tok.Kind)
	if prec == 0 {
		return "", 0
	}
	return p.tok.Kind.String(), prec
}

// parseBinary реализует Pratt parsing для бинарных операторов
// minPrec - минимальный приоритет для текущего уровня
func (p *Parser) parseBinary(minPrec int) jsast.Expr {
	start := p.tok.Span.Start
	var left jsast.Expr
	// #x in obj
	if p.at(token.PrivateName) {
		left = jsast.At(p.tok.Span, &jsast.PrivateName{Name: p.tok.Value})
		p.advance()
	} else {
		left = p.parseUnary()
	}

	for {
		op, prec := p.binaryOp()
		if prec == 0 || prec < minPrec {
			return left
		}
		if op == "<" && p.bareJSX(left) {
			p.adjacentJSX()
			return left
		}
		p.advance()
		next := prec + 1
		if op == "**" {
			next = prec // правоассоциативный
		}
		right := p.parseBinary(next)
		left = jsast.At(p.span(start), &jsast.BinaryExpr{Op: op, X: left, Y: right})
	}
}

// bareJSX: JSX-элемент без скобок; '<' за ним открывает соседний тег, а не сравнение.
func (p *Parser) bareJSX(e jsast.Expr) bool {
	switch e.(type) {
	case *jsast.JSXElement, *jsast.JSXFragment:
		_, paren := p.parens[e]
		return !paren
	}
	return false
}

// adjacentJSX reports sibling roots and skips them.
func (p *Parser) adjacentJSX() {
	p.err(diag.SynJSXAdjacentElements, "adjacent JSX elements must be wrapped in an enclosing fragment")
	for p.at(token.Lt) {
		at := p.tok.Span.Start
		p.parseUnary()
		if p.tok.Span.Start == at {
			return
		}
	}
}

var unaryWords = map[string]bool{"typeof": true, "void": true, "delete": true}

func (p *Parser) parseUnary() jsast.Expr {
	start := p.tok.Span.Start
	switch p.tok.Kind {
	case token.Bang, token.Tilde, token.Plus, token.Minus:
		op := p.advance().Kind.String()
		x := p.parseUnary()
		return jsast.At(p.span(start), &jsast.UnaryExpr{Op: op, X: x})
	case token.PlusPlus, token.MinusMinus:
		op := p.advance().Kind.String()
		x := p.parseUnary()
		if !isSimpleTarget(x) {
			p.errAt(diag.SynInvalidAssignTarget, x.Span(), "invalid update target")
		}
		return jsast.At(p.span(start), &jsast.UpdateExpr{Op: op, Prefix: true, X: x})
	case token.Ident:
		if unaryWords[p.tok.Text] {
			op := p.advance().Text
			x := p.parseUnary()
			return jsast.At(p.span(start), &jsast.UnaryExpr{Op: op, X: x})
		}
		if p.tok.Text == "await" && (p.inAsync || !p.inFunc) && p.awaitIsOperator() {
			p.advance()
			x := p.parseUnary()
			return jsast.At(p.span(start), &jsast.AwaitExpr{X: x})
		}
	}

	x := p.parseLeftHandSide()
	if (p.at(token.PlusPlus) || p.at(token.MinusMinus)) && !p.tok.NewlineBefore {
		if !isSimpleTarget(x) {
			p.errAt(diag.SynInvalidAssignTarget, x.Span(), "invalid update target")
		}
		op := p.advance().Kind.String()
		return jsast.At(p.span(start), &jsast.UpdateExpr{Op: op, X: x})
	}
	return x
}

// awaitIsOperator: на верхнем уровне модуля `await` — оператор, если за ним идёт операнд.
func (p *Parser) awaitIsOperator() bool {
	if p.inAsync {
		return true
	}
	next := p.peek()
	return !next.NewlineBefore && startsExpression(next)
}

// parseLeftHandSide — member/call/optional-chain/tagged template.
func (p *Parser) parseLeftHandSide() jsast.Expr {
	start := p.tok.Span.Start
	var x jsast.Expr
	switch {
	case p.atWord("new"):
		x = p.parseNew()
	case p.atWord("super"):
		x = jsast.At(p.tok.Span, &jsast.SuperExpr{})
		p.advance()
	case p.atWord("import"):
		x = p.parseImportExpr()
	default:
		x = p.parsePrimary()
	}
	return p.parseCallTail(start, x, true)
}

func (p *Parser) parseCallTail(start uint32, x jsast.Expr, allowCall bool) jsast.Expr {
	for {
		switch p.tok.Kind {
		case token.Dot:
			p.advance()
			prop := p.parseMemberName()
			x = jsast.At(p.span(start), &jsast.MemberExpr{Object: x, Property: prop})
		case token.QuestionDot:
			if !allowCall {
				p.err(diag.SynUnexpectedToken, "optional chain is not allowed in new expression")
			}
			p.advance()
			switch p.tok.Kind {
			case token.LParen:
				args := p.parseArguments()
				x = jsast.At(p.span(start), &jsast.CallExpr{Callee: x, Args: args, Optional: true})
			case token.LBracket:
				p.advance()
				prop := p.parseExpressionIn()
				p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']'")
				x = jsast.At(p.span(start), &jsast.MemberExpr{Object: x, Property: prop, Computed: true, Optional: true})
			default:
				prop := p.parseMemberName()
				x = jsast.At(p.span(start), &jsast.MemberExpr{Object: x, Property: prop, Optional: true})
			}
		case token.LBracket:
			p.advance()
			prop := p.parseExpressionIn()
			p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']'")
			x = jsast.At(p.span(start), &jsast.MemberExpr{Object: x, Property: prop, Computed: true})
		case token.LParen:
			if !allowCall {
				return x
			}
			args := p.parseArguments()
			x = jsast.At(p.span(start), &jsast.CallExpr{Callee: x, Args: args})
		case token.TemplateNoSubst, token.TemplateHead:
			quasi := p.parseTemplate()
			x = jsast.At(p.span(start), &jsast.TaggedTemplate{Tag: x, Quasi: quasi})
		default:
			return x
		}
	}
}

// parseMemberName: имя свойства после '.', допускает ключевые слова и #private.
func (p *Parser) parseMemberName() jsast.Expr {
	switch p.tok.Kind {
	case token.Ident:
		t := p.advance()
		return jsast.At(t.Span, &jsast.Ident{Name: t.Value})
	case token.PrivateName:
		t := p.advance()
		return jsast.At(t.Span, &jsast.PrivateName{Name: t.Value})
	}
	p.err(diag.SynExpectIdentifier, "expected property name, got "+describe(p.tok))
	return p.errorExpr()
}

func (p *Parser) parseNew() jsast.Expr {
	start := p.tok.Span.Start
	p.advance() // new
	if p.eat(token.Dot) {
		if !p.atWord("target") {
			p.err(diag.SynUnexpectedToken, "expected 'target' after 'new.'")
		}
		p.advance()
		return jsast.At(p.span(start), &jsast.MetaProperty{Meta: "new", Property: "target"})
	}
	calleeStart := p.tok.Span.Start
	var callee jsast.Expr
	switch {
	case p.atWord("new"):
		callee = p.parseNew()
	case p.atWord("import"):
		p.err(diag.SynUnexpectedToken, "cannot use new with import")
		callee = p.parseImportExpr()
	default:
		callee = p.parsePrimary()
	}
	callee = p.parseCallTail(calleeStart, callee, false)
	var args []jsast.Expr
	if p.at(token.LParen) {
		args = p.parseArguments()
	}
	return jsast.At(p.span(start), &jsast.NewExpr{Callee: callee, Args: args})
}

func (p *Parser) parseImportExpr() jsast.Expr {
	start := p.tok.Span.Start
	p.advance() // import
	if p.eat(token.Dot) {
		if !p.atWord("meta") {
			p.err(diag.SynUnexpectedToken, "expected 'meta' after 'import.'")
		}
		p.advance()
		return jsast.At(p.span(start), &jsast.MetaProperty{Meta: "import", Property: "meta"})
	}
	p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after import")
	src := p.parseAssignIn()
	p.eat(token.Comma)
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
	return jsast.At(p.span(start), &jsast.ImportCall{Source: src})
}

// parseArguments — '(' (assign | ...assign) ,* ')'
func (p *Parser) parseArguments() []jsast.Expr {
	p.advance() // (
	args := []jsast.Expr{}
	saved := p.noIn
	p.noIn = false
	for !p.at(token.RParen) && !p.at(token.EOF) {
		args = append(args, p.parseSpreadOrAssign())
		if !p.eat(token.Comma) {
			break
		}
	}
	p.noIn = saved
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after arguments")
	return args
}

func (p *Parser) parseSpreadOrAssign() jsast.Expr {
	if p.at(token.DotDotDot) {
		start := p.tok.Span.Start
		p.advance()
		x := p.parseAssign()
		return jsast.At(p.span(start), &jsast.SpreadElem{X: x})
	}
	return p.parseAssign()
}

func (p *Parser) errorExpr() jsast.Expr {
	return jsast.At(p.tok.Span, &jsast.Ident{})
}
