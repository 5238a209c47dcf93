package token

import (
	"jsxc/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	// Value holds the cooked value of string, template and JSX text tokens.
	Value string
	// NewlineBefore is set when a line terminator precedes the token.
	NewlineBefore bool
}

// IsLiteral reports whether the token is a numeric, string, template or regexp literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, BigIntLit, StringLit, RegExpLit, TemplateNoSubst:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool { return t.Kind.IsPunctOrOp() }

// IsIdent reports whether the token is an identifier (keywords included).
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Is reports whether the token is the identifier or keyword word.
func (t Token) Is(word string) bool { return t.Kind == Ident && t.Text == word }

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool { return t.Kind == Ident && IsReserved(t.Text) }
