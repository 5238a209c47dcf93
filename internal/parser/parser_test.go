package parser_test

import (
	"strings"
	"testing"

	"jsxc/internal/diag"
	"jsxc/internal/jsast"
	"jsxc/internal/parser"
	"jsxc/internal/source"
)

func parseExpr(t *testing.T, src string) (jsast.Expr, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("test.jsx", []byte(src)))
	bag := diag.NewBag(0)
	e, _ := parser.ParseExpression(f, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	return e, bag
}

func parseFile(t *testing.T, src string) (*jsast.Program, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("test.jsx", []byte(src)))
	bag := diag.NewBag(0)
	res := parser.ParseFile(f, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	return res.Program, bag
}

func dump(t *testing.T, n jsast.Node) string {
	t.Helper()
	var sb strings.Builder
	if err := jsast.Dump(&sb, n); err != nil {
		t.Fatalf("dump: %v", err)
	}
	return sb.String()
}

func noErrors(t *testing.T, bag *diag.Bag) {
	t.Helper()
	if bag.HasErrors() {
		for _, d := range bag.Items() {
			t.Errorf("unexpected diagnostic: %s", d.Message)
		}
		t.FailNow()
	}
}

func TestBinaryPrecedence(t *testing.T) {
	e, bag := parseExpr(t, "a + b * c ** d ** e")
	noErrors(t, bag)
	add, ok := e.(*jsast.BinaryExpr)
	if !ok || add.Op != "+" {
		t.Fatalf("root = %s, want Binary +", jsast.Describe(e))
	}
	mul, ok := add.Y.(*jsast.BinaryExpr)
	if !ok || mul.Op != "*" {
		t.Fatalf("rhs = %s, want Binary *", jsast.Describe(add.Y))
	}
	pow, ok := mul.Y.(*jsast.BinaryExpr)
	if !ok || pow.Op != "**" {
		t.Fatalf("power = %s", jsast.Describe(mul.Y))
	}
	if inner, ok := pow.Y.(*jsast.BinaryExpr); !ok || inner.Op != "**" {
		t.Fatalf("** must be right-associative, got %s", jsast.Describe(pow.Y))
	}
}

func TestArrowCoverGrammar(t *testing.T) {
	tests := []struct {
		src    string
		params int
		async  bool
	}{
		{"x => x", 1, false},
		{"() => 1", 0, false},
		{"(a, b = 2, ...rest) => a", 3, false},
		{"({a, b: [c]}, [d = 1]) => c", 2, false},
		{"async (a) => await a", 1, true},
		{"async x => x", 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			e, bag := parseExpr(t, tt.src)
			noErrors(t, bag)
			arrow, ok := e.(*jsast.ArrowFunc)
			if !ok {
				t.Fatalf("got %s, want ArrowFunc", jsast.Describe(e))
			}
			if len(arrow.Params) != tt.params || arrow.Async != tt.async {
				t.Fatalf("params=%d async=%v, want %d %v", len(arrow.Params), arrow.Async, tt.params, tt.async)
			}
			for _, prm := range arrow.Params {
				switch prm.(type) {
				case *jsast.ObjectLit, *jsast.ArrayLit, *jsast.AssignExpr, *jsast.SpreadElem:
					t.Fatalf("param %s was not converted to a pattern", jsast.Describe(prm))
				}
			}
		})
	}
}

func TestForBindingList(t *testing.T) {
	e, bag := parseExpr(t, "(item, index) in list")
	noErrors(t, bag)
	bin, ok := e.(*jsast.BinaryExpr)
	if !ok || bin.Op != "in" {
		t.Fatalf("got %s, want Binary in", jsast.Describe(e))
	}
	paren, ok := bin.X.(*jsast.ParenExpr)
	if !ok {
		t.Fatalf("left = %s, want ParenExpr", jsast.Describe(bin.X))
	}
	seq, ok := paren.X.(*jsast.SeqExpr)
	if !ok || len(seq.Exprs) != 2 {
		t.Fatalf("paren body = %s", jsast.Describe(paren.X))
	}
}

func TestDestructuringAssignment(t *testing.T) {
	e, bag := parseExpr(t, "({a, b: {c}, ...rest} = obj)")
	noErrors(t, bag)
	as, ok := e.(*jsast.AssignExpr)
	if !ok {
		t.Fatalf("got %s", jsast.Describe(e))
	}
	pat, ok := as.Target.(*jsast.ObjectPattern)
	if !ok {
		t.Fatalf("target = %s, want ObjectPattern", jsast.Describe(as.Target))
	}
	if len(pat.Props) != 2 || pat.Rest == nil {
		t.Fatalf("props=%d rest=%v", len(pat.Props), pat.Rest != nil)
	}
	if _, ok := pat.Props[1].Value.(*jsast.ObjectPattern); !ok {
		t.Fatalf("nested value = %s", jsast.Describe(pat.Props[1].Value))
	}
}

func TestInvalidAssignTarget(t *testing.T) {
	_, bag := parseExpr(t, "a + b = c")
	if !bag.HasErrors() {
		t.Fatal("expected an error")
	}
	if got := bag.Items()[0].Code; got != diag.SynInvalidAssignTarget {
		t.Fatalf("code = %v, want SynInvalidAssignTarget", got)
	}
}

func TestJSXElementTree(t *testing.T) {
	src := `<div id="a" class={cls} {...rest} disabled><span>hi {name}</span><Foo.Bar /><></></div>`
	e, bag := parseExpr(t, src)
	noErrors(t, bag)
	el, ok := e.(*jsast.JSXElement)
	if !ok {
		t.Fatalf("got %s", jsast.Describe(e))
	}
	if len(el.Attrs) != 4 {
		t.Fatalf("attrs = %d, want 4", len(el.Attrs))
	}
	if _, ok := el.Attrs[2].(*jsast.JSXSpreadAttr); !ok {
		t.Fatalf("attr[2] = %T, want spread", el.Attrs[2])
	}
	if a := el.Attrs[3].(*jsast.JSXAttr); a.Value != nil {
		t.Fatalf("boolean attribute got value %s", jsast.Describe(a.Value))
	}
	if len(el.Children) != 3 {
		t.Fatalf("children = %d, want 3\n%s", len(el.Children), dump(t, el))
	}
	span := el.Children[0].(*jsast.JSXElement)
	if len(span.Children) != 2 {
		t.Fatalf("span children = %d\n%s", len(span.Children), dump(t, span))
	}
	if txt := span.Children[0].(*jsast.JSXText); txt.Value != "hi " {
		t.Fatalf("text = %q", txt.Value)
	}
	if got := jsast.JSXNameString(el.Children[1].(*jsast.JSXElement).Name); got != "Foo.Bar" {
		t.Fatalf("member name = %q", got)
	}
	if _, ok := el.Children[2].(*jsast.JSXFragment); !ok {
		t.Fatalf("child[2] = %s", jsast.Describe(el.Children[2]))
	}
	if el.Span().End != uint32(len(src)) {
		t.Fatalf("element span end = %d, want %d", el.Span().End, len(src))
	}
}

func TestJSXTextEntitiesAndEmptyContainers(t *testing.T) {
	e, bag := parseExpr(t, "<p>a &amp; b{/* note */}{}</p>")
	noErrors(t, bag)
	el := e.(*jsast.JSXElement)
	if len(el.Children) != 3 {
		t.Fatalf("children = %d\n%s", len(el.Children), dump(t, el))
	}
	if txt := el.Children[0].(*jsast.JSXText); txt.Value != "a & b" || txt.Raw != "a &amp; b" {
		t.Fatalf("text = %q raw %q", txt.Value, txt.Raw)
	}
	for _, c := range el.Children[1:] {
		if _, ok := c.(*jsast.JSXExprContainer).X.(*jsast.JSXEmptyExpr); !ok {
			t.Fatalf("want empty container, got %s", jsast.Describe(c))
		}
	}
}

func TestJSXNestedInExpression(t *testing.T) {
	e, bag := parseExpr(t, "<ul>{items.map(i => <li key={i}>{i > 1 ? <b/> : i}</li>)}</ul>")
	noErrors(t, bag)
	if n := len(parser.JSXRoots(e)); n != 1 {
		t.Fatalf("roots = %d, want 1", n)
	}
}

func TestJSXErrors(t *testing.T) {
	tests := []struct {
		src  string
		code diag.Code
	}{
		{"<div></span>", diag.SynJSXMismatchedTag},
		{"<div><span></span>", diag.SynJSXUnclosedElement},
		{"<a/><b/>", diag.SynJSXAdjacentElements},
		{"<><i/></><p>x</p><br/>", diag.SynJSXAdjacentElements},
		{"<div id=></div>", diag.SynExpectExpression},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, bag := parseExpr(t, tt.src)
			found := false
			for _, d := range bag.Items() {
				if d.Code == tt.code {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected %v, got %d diagnostics", tt.code, bag.Len())
			}
		})
	}
}

func TestParenthesizedJSXCompare(t *testing.T) {
	e, bag := parseExpr(t, "(<a/>) < b")
	if bag.Len() != 0 {
		t.Fatalf("diagnostics: %v", bag.Items())
	}
	if b, ok := e.(*jsast.BinaryExpr); !ok || b.Op != "<" {
		t.Fatalf("expr = %T", e)
	}
}

func TestAdjacentRootsReportedOnce(t *testing.T) {
	_, bag := parseExpr(t, "<a/><b/><c/>")
	if bag.Len() != 1 || bag.Items()[0].Code != diag.SynJSXAdjacentElements {
		t.Fatalf("diagnostics: %v", bag.Items())
	}
}

func TestStatements(t *testing.T) {
	src := `
import Foo, { ref as r, computed } from "vue"
import * as ns from './ns'
export const a = 1, b = <div/>
export default function App({ msg }) {
  let count = r(0)
  for (const x of list) { if (x) continue; else break }
  for (let i = 0; i < 10; i++) {}
  for (k in obj) ;
  try { risky() } catch ({ message }) { log(message) } finally {}
  switch (count) { case 1: return <span/>; default: }
  label: while (true) do {} while (false)
  class Box extends Base { #x = 1; static { init() } get v() { return this.#x } }
  return <p>{msg}</p>
}
export { a as b, Foo }
`
	prog, bag := parseFile(t, src)
	noErrors(t, bag)
	if len(prog.Body) != 5 {
		t.Fatalf("top-level statements = %d, want 5\n%s", len(prog.Body), dump(t, prog))
	}
	imp := prog.Body[0].(*jsast.ImportDecl)
	if len(imp.Specs) != 3 || imp.Specs[1].Imported != "ref" || imp.Specs[1].Local.Name != "r" {
		t.Fatalf("import specs = %+v", imp.Specs)
	}
	if imp.Source.Value != "vue" {
		t.Fatalf("source = %q", imp.Source.Value)
	}
	def := prog.Body[3].(*jsast.ExportDefault)
	fn := def.Decl.(*jsast.FuncDecl).Fn
	if fn.ID == nil || fn.ID.Name != "App" {
		t.Fatalf("default export name = %v", fn.ID)
	}
	if n := len(parser.JSXRoots(prog)); n != 3 {
		t.Fatalf("jsx roots = %d, want 3", n)
	}
}

func TestRegExpAndDivision(t *testing.T) {
	e, bag := parseExpr(t, "a / b / /re/g.test(s)")
	noErrors(t, bag)
	found := false
	jsast.Inspect(e, func(n jsast.Node) bool {
		if re, ok := n.(*jsast.RegExpLit); ok && re.Pattern == "re" && re.Flags == "g" {
			found = true
		}
		return true
	})
	if !found {
		t.Fatalf("regexp not found in\n%s", dump(t, e))
	}
}

func TestASIAndReturnOutsideFunction(t *testing.T) {
	_, bag := parseFile(t, "a = 1\nb = 2\n")
	noErrors(t, bag)
	_, bag = parseFile(t, "return 1")
	if !bag.HasErrors() {
		t.Fatal("expected error for top-level return")
	}
}

func TestMaxErrorsStopsReporting(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("test.jsx", []byte("a = ; b = ; c = ; d = ;")))
	bag := diag.NewBag(0)
	res := parser.ParseFile(f, parser.Options{MaxErrors: 2, Reporter: &diag.BagReporter{Bag: bag}})
	if res.Errors < 2 {
		t.Fatalf("errors = %d, want at least 2", res.Errors)
	}
	if bag.Len() != 2 {
		t.Fatalf("reported = %d, want 2", bag.Len())
	}
}
