package parser

import (
	"jsxc/internal/diag"
	"jsxc/internal/source"
	"jsxc/internal/token"
)

// advance — съедает текущий токен и читает следующий в JS-режиме
func (p *Parser) advance() token.Token {
	t := p.tok
	p.prevEnd = t.Span.End
	p.tok = p.lx.Next()
	return t
}

// eat съедает токен k, если он текущий.
func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// eatWord съедает ключевое слово word, если оно текущее.
func (p *Parser) eatWord(word string) bool {
	if p.atWord(word) {
		p.advance()
		return true
	}
	return false
}

// expect — ожидаем конкретный токен. Если нет — репортим и возвращаем false.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	p.err(code, msg+", got "+describe(p.tok))
	return false
}

func (p *Parser) expectWord(word string) bool {
	if p.eatWord(word) {
		return true
	}
	p.err(diag.SynUnexpectedToken, "expected '"+word+"', got "+describe(p.tok))
	return false
}

// consumeSemicolon реализует ASI: `;`, либо `}`/EOF/перевод строки перед токеном.
func (p *Parser) consumeSemicolon() {
	if p.eat(token.Semicolon) {
		return
	}
	if p.at(token.RBrace) || p.at(token.EOF) || p.tok.NewlineBefore {
		return
	}
	p.err(diag.SynExpectSemicolon, "expected ';', got "+describe(p.tok))
}

// getDiagnosticSpan — лучший span для диагностики: на EOF — позиция после последнего токена
func (p *Parser) getDiagnosticSpan() source.Span {
	if p.tok.Kind == token.EOF && p.prevEnd > 0 {
		return source.Span{File: p.file.ID, Start: p.prevEnd, End: p.prevEnd}
	}
	return p.tok.Span
}

// репортует ошибку и передает текущий спан
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) errAt(code diag.Code, sp source.Span, msg string) bool {
	return p.report(code, diag.SevError, sp, msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	enough := p.opts.Enough()
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Reporter != nil {
		if !enough || sev != diag.SevError {
			p.opts.Reporter.Report(code, sev, sp, msg, nil, nil)
			return true
		}
		return false // достигли максимального количества ошибок
	}
	return false // нет reporter - ничего не записали
}

// resyncUntil прокручивает токены до одного из kinds (или EOF), не съедая его.
func (p *Parser) resyncUntil(kinds ...token.Kind) {
	for !p.at(token.EOF) {
		for _, k := range kinds {
			if p.at(k) {
				return
			}
		}
		p.advance()
	}
}
