package parser

import (
	"jsxc/internal/diag"
	"jsxc/internal/jsast"
	"jsxc/internal/token"
)

// parseImportDecl: `import "m"`, `import a, {b as c} from "m"`, `import * as ns from "m"`.
func (p *Parser) parseImportDecl() jsast.Stmt {
	start := p.tok.Span.Start
	p.advance() // import
	decl := &jsast.ImportDecl{}

	if p.at(token.StringLit) {
		decl.Source = p.parseModuleSource()
		p.skipImportAttributes()
		p.consumeSemicolon()
		return jsast.At(p.span(start), decl)
	}

	if p.at(token.Ident) {
		sStart := p.tok.Span.Start
		local := p.parseIdentifier()
		decl.Specs = append(decl.Specs, jsast.At(p.span(sStart), &jsast.ImportSpec{Kind: jsast.ImportDefault, Imported: "default", Local: local}))
		if !p.eat(token.Comma) {
			return p.finishImport(start, decl)
		}
	}
	switch p.tok.Kind {
	case token.Star:
		sStart := p.tok.Span.Start
		p.advance()
		p.expectWord("as")
		local := p.parseIdentifier()
		decl.Specs = append(decl.Specs, jsast.At(p.span(sStart), &jsast.ImportSpec{Kind: jsast.ImportNamespace, Imported: "*", Local: local}))
	case token.LBrace:
		p.advance()
		for !p.at(token.RBrace) && !p.at(token.EOF) {
			decl.Specs = append(decl.Specs, p.parseImportSpec())
			if !p.eat(token.Comma) {
				break
			}
		}
		p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' after import specifiers")
	default:
		p.err(diag.SynUnexpectedToken, "expected import specifiers, got "+describe(p.tok))
	}
	return p.finishImport(start, decl)
}

func (p *Parser) finishImport(start uint32, decl *jsast.ImportDecl) jsast.Stmt {
	p.expectWord("from")
	decl.Source = p.parseModuleSource()
	p.skipImportAttributes()
	p.consumeSemicolon()
	return jsast.At(p.span(start), decl)
}

func (p *Parser) parseImportSpec() *jsast.ImportSpec {
	start := p.tok.Span.Start
	imported := p.parseModuleExportName()
	spec := &jsast.ImportSpec{Kind: jsast.ImportNamed, Imported: imported}
	if p.eatWord("as") {
		spec.Local = p.parseIdentifier()
	} else {
		if isReservedIdent(imported) || imported == "" {
			p.err(diag.SynExpectIdentifier, "'"+imported+"' must be renamed with 'as'")
		}
		spec.Local = jsast.At(p.span(start), &jsast.Ident{Name: imported})
	}
	return jsast.At(p.span(start), spec)
}

// parseModuleExportName: идентификатор (в т.ч. ключевое слово) или строка.
func (p *Parser) parseModuleExportName() string {
	t := p.tok
	switch t.Kind {
	case token.Ident, token.StringLit:
		p.advance()
		return t.Value
	}
	p.err(diag.SynExpectIdentifier, "expected module export name, got "+describe(t))
	return ""
}

func (p *Parser) parseModuleSource() *jsast.StringLit {
	t := p.tok
	if t.Kind != token.StringLit {
		p.err(diag.SynUnexpectedToken, "expected module specifier string, got "+describe(t))
		return jsast.At(t.Span, &jsast.StringLit{})
	}
	p.advance()
	return jsast.At(t.Span, &jsast.StringLit{Value: t.Value, Raw: t.Text})
}

// skipImportAttributes пропускает `with { type: "json" }`: на генерацию не влияет.
func (p *Parser) skipImportAttributes() {
	if (p.atWord("with") || p.atWord("assert")) && !p.tok.NewlineBefore && p.peek().Kind == token.LBrace {
		p.advance()
		p.parseObjectLiteral()
	}
}

func (p *Parser) parseExport() jsast.Stmt {
	start := p.tok.Span.Start
	p.advance() // export

	switch {
	case p.atWord("default"):
		p.advance()
		var decl jsast.Node
		switch {
		case p.atWord("function"):
			fn := p.parseFunction(false, true)
			decl = jsast.At(fn.Span(), &jsast.FuncDecl{Fn: fn})
		case p.atWord("async") && p.peek().Is("function"):
			fn := p.parseFunction(true, true)
			decl = jsast.At(fn.Span(), &jsast.FuncDecl{Fn: fn})
		case p.atWord("class"):
			cl := p.parseClass(true)
			decl = jsast.At(cl.Span(), &jsast.ClassDecl{Class: cl})
		default:
			decl = p.parseAssignIn()
			p.consumeSemicolon()
		}
		return jsast.At(p.span(start), &jsast.ExportDefault{Decl: decl})

	case p.at(token.Star):
		p.advance()
		all := &jsast.ExportAll{}
		if p.eatWord("as") {
			all.Exported = p.parseModuleExportName()
		}
		p.expectWord("from")
		all.Source = p.parseModuleSource()
		p.skipImportAttributes()
		p.consumeSemicolon()
		return jsast.At(p.span(start), all)

	case p.at(token.LBrace):
		p.advance()
		named := &jsast.ExportNamed{}
		for !p.at(token.RBrace) && !p.at(token.EOF) {
			sStart := p.tok.Span.Start
			local := p.parseModuleExportName()
			exported := local
			if p.eatWord("as") {
				exported = p.parseModuleExportName()
			}
			named.Specs = append(named.Specs, jsast.At(p.span(sStart), &jsast.ExportSpec{Local: local, Exported: exported}))
			if !p.eat(token.Comma) {
				break
			}
		}
		p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' after export specifiers")
		if p.eatWord("from") {
			named.Source = p.parseModuleSource()
			p.skipImportAttributes()
		}
		p.consumeSemicolon()
		return jsast.At(p.span(start), named)
	}

	var decl jsast.Stmt
	if p.at(token.Ident) {
		switch p.tok.Text {
		case "var", "let", "const", "function", "async", "class":
			decl = p.parseKeywordStatement(false)
		}
	}
	if decl == nil {
		p.err(diag.SynUnexpectedToken, "expected declaration after 'export', got "+describe(p.tok))
		return jsast.At(p.span(start), &jsast.EmptyStmt{})
	}
	return jsast.At(p.span(start), &jsast.ExportDecl{Decl: decl})
}
