package token_test

import (
	"testing"

	"jsxc/internal/source"
	"jsxc/internal/token"
)

func tok(k token.Kind, text string) token.Token {
	return token.Token{Kind: k, Span: source.Span{}, Text: text}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{token.NumberLit, token.BigIntLit, token.StringLit, token.RegExpLit, token.TemplateNoSubst}
	for _, k := range lits {
		if !tok(k, "").IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.Plus, token.LParen, token.TemplateHead, token.JSXText}
	for _, k := range non {
		if tok(k, "").IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestKindClasses(t *testing.T) {
	tests := []struct {
		k      token.Kind
		punct  bool
		assign bool
	}{
		{token.LBrace, true, false},
		{token.QuestionDot, true, false},
		{token.UShr, true, false},
		{token.Assign, true, true},
		{token.QuestionQuestionAssign, true, true},
		{token.AndAndAssign, true, true},
		{token.Ident, false, false},
		{token.JSXText, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.k.String(), func(t *testing.T) {
			if got := tt.k.IsPunctOrOp(); got != tt.punct {
				t.Errorf("IsPunctOrOp = %v", got)
			}
			if got := tt.k.IsAssign(); got != tt.assign {
				t.Errorf("IsAssign = %v", got)
			}
		})
	}
}

func TestBinaryPrec(t *testing.T) {
	if token.BinaryPrec(token.Star) <= token.BinaryPrec(token.Plus) {
		t.Fatalf("* must bind tighter than +")
	}
	if token.BinaryPrec(token.Lt) != token.RelationalPrec {
		t.Fatalf("< precedence = %d", token.BinaryPrec(token.Lt))
	}
	if token.BinaryPrec(token.Comma) != 0 {
		t.Fatalf("comma is not a binary operator token")
	}
}

func TestKeywords(t *testing.T) {
	if !tok(token.Ident, "typeof").IsKeyword() || tok(token.Ident, "async").IsKeyword() {
		t.Fatalf("keyword classification mismatch")
	}
	if !tok(token.Ident, "of").Is("of") || tok(token.StringLit, "of").Is("of") {
		t.Fatalf("Is mismatch")
	}
	if !token.PrecedesOperand("return") || token.PrecedesOperand("this") {
		t.Fatalf("PrecedesOperand mismatch")
	}
}
