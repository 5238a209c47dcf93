package printer_test

import (
	"testing"

	"jsxc/internal/diag"
	"jsxc/internal/jsast"
	"jsxc/internal/parser"
	"jsxc/internal/printer"
	"jsxc/internal/source"
)

func parse(t *testing.T, src string) jsast.Expr {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("test.jsx", []byte(src)))
	bag := diag.NewBag(0)
	e, _ := parser.ParseExpression(f, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		t.Fatalf("parse %q: %s", src, bag.Items()[0].Message)
	}
	return e
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a+b*c", "a + b * c"},
		{"(a+b)*c", "(a + b) * c"},
		{"a-(b-c)", "a - (b - c)"},
		{"(a**b)**c", "(a ** b) ** c"},
		{"(-a)**b", "(-a) ** b"},
		{"a ?? (b || c)", "a ?? (b || c)"},
		{"x => ({a: 1})", "x => ({ a: 1 })"},
		{"(a, b) => a", "(a, b) => a"},
		{"async () => { await f() }", "async () => {\n  await f();\n}"},
		{"foo(x => x, ...rest)", "foo(x => x, ...rest)"},
		{"new (f())()", "new (f())()"},
		{"new a.b()", "new a.b()"},
		{"a?.b?.[c]?.(d)", "a?.b?.[c]?.(d)"},
		{"typeof a === 'string'", "typeof a === 'string'"},
		{"- -a", "- -a"},
		{"a ? b : c ? d : e", "a ? b : c ? d : e"},
		{"(a ? b : c) ? d : e", "(a ? b : c) ? d : e"},
		{"[1, , ...xs,]", "[1, , ...xs]"},
		{"[a, ,]", "[a, ,]"},
		{"{a, b: c, [d]: e, ...f}", "{ a, b: c, [d]: e, ...f }"},
		{"{ get x() { return 1 }, m() {} }", "{ get x() {\n  return 1;\n}, m() {} }"},
		{"`a${b}c`", "`a${b}c`"},
		{"(a, b)", "(a, b)"},
		{"({a} = b)", "{ a } = b"},
		{"(1).toString()", "(1).toString()"},
		{"x = y = z", "x = y = z"},
		{"(item, index) in list", "(item, index) in list"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := printer.Expr(parse(t, tt.src), printer.Options{})
			if got != tt.want {
				t.Fatalf("got  %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestSynthesizedTrees(t *testing.T) {
	ctx := func(name string) jsast.Expr {
		return &jsast.MemberExpr{Object: &jsast.Ident{Name: "_ctx"}, Property: &jsast.Ident{Name: name}}
	}
	tests := []struct {
		name string
		e    jsast.Expr
		want string
	}{
		{
			"shorthand replaced",
			&jsast.ObjectLit{Props: []*jsast.Property{{Key: &jsast.Ident{Name: "a"}, Value: ctx("a"), Shorthand: true}}},
			"{ a: _ctx.a }",
		},
		{
			"negative number operand",
			&jsast.UnaryExpr{Op: "-", X: &jsast.NumberLit{Value: -1}},
			"- (-1)",
		},
		{
			"quoted string",
			&jsast.StringLit{Value: "say \"hi\"\n"},
			`"say \"hi\"\n"`,
		},
		{
			"sequence argument",
			&jsast.CallExpr{Callee: &jsast.Ident{Name: "f"}, Args: []jsast.Expr{
				&jsast.SeqExpr{Exprs: []jsast.Expr{&jsast.Ident{Name: "a"}, &jsast.Ident{Name: "b"}}},
			}},
			"f((a, b))",
		},
		{
			"arrow in binary",
			&jsast.BinaryExpr{Op: "||", X: &jsast.ArrowFunc{Expr: &jsast.Ident{Name: "a"}}, Y: &jsast.Ident{Name: "b"}},
			"(() => a) || b",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := printer.Expr(tt.e, printer.Options{}); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJSXHook(t *testing.T) {
	e := parse(t, "list.map(i => <li>{i}</li>)")
	got := printer.Expr(e, printer.Options{JSX: func(jsast.Expr) string { return "t()" }})
	if want := "list.map(i => t())"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := printer.Expr(e, printer.Options{}); got != "list.map(i => <li>{i}</li>)" {
		t.Fatalf("source form: %q", got)
	}
}

func TestStatementsPrint(t *testing.T) {
	fs := source.NewFileSet()
	src := "import a, { b as c } from 'm'\nif (x) y(); else { z() }\nfor (let i = 0; i < 2; i++) ;\n"
	f := fs.Get(fs.AddVirtual("test.jsx", []byte(src)))
	res := parser.ParseFile(f, parser.Options{})
	got := printer.Node(res.Program, printer.Options{})
	want := "import a, { b as c } from 'm';\nif (x)\n  y();\nelse {\n  z();\n}\nfor (let i = 0; i < 2; i++);"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestQuote(t *testing.T) {
	tests := map[string]string{
		"plain":        `"plain"`,
		"<div>\t</div>": `"<div>\t</div>"`,
		"a\\b":         `"a\\b"`,
		"\x01":         `"\x01"`,
		"\u2028":        `"\u2028"`,
		"привет":       `"привет"`,
	}
	for in, want := range tests {
		if got := printer.Quote(in); got != want {
			t.Errorf("Quote(%q) = %s, want %s", in, got, want)
		}
	}
}
