// Package printer turns jsast trees back into JavaScript source.
//
// Parentheses are derived from operator precedence, not kept from the
// input, so rewritten trees (identifier prefixes, accessor paths, inlined
// constants) always print as valid code. JSX nodes are delegated to
// Options.JSX when set; the compiler uses this to splice compiled
// templates into host expressions.
package printer

import "jsxc/internal/jsast"

type Options struct {
	IndentWidth int
	UseTabs     bool

	// JSX печатает JSX-элемент или фрагмент; nil — печать в исходной форме.
	JSX func(e jsast.Expr) string
}

func (o Options) withDefaults() Options {
	if o.IndentWidth == 0 {
		o.IndentWidth = 2
	}
	return o
}

type printer struct {
	w   *Writer
	opt Options
}

func newPrinter(opt Options) *printer {
	opt = opt.withDefaults()
	return &printer{w: NewWriter(opt), opt: opt}
}

// Expr prints a single expression.
func Expr(e jsast.Expr, opt Options) string {
	p := newPrinter(opt)
	p.expr(e, lLowest)
	return p.w.String()
}

// Node prints a statement, program or expression.
func Node(n jsast.Node, opt Options) string {
	p := newPrinter(opt)
	switch n := n.(type) {
	case *jsast.Program:
		p.stmts(n.Body)
	case jsast.Stmt:
		p.stmt(n)
	case jsast.Expr:
		p.expr(n, lLowest)
	}
	return p.w.String()
}

// ExprTo prints e into an existing writer, continuing its indentation.
func ExprTo(w *Writer, e jsast.Expr, opt Options) {
	p := &printer{w: w, opt: opt.withDefaults()}
	p.expr(e, lLowest)
}
