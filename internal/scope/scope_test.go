package scope

import (
	"sort"
	"strings"
	"testing"

	"jsxc/internal/diag"
	"jsxc/internal/jsast"
	"jsxc/internal/parser"
	"jsxc/internal/printer"
	"jsxc/internal/source"
)

func parseExpr(t *testing.T, src string) jsast.Expr {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("expr.js", []byte(src))
	bag := diag.NewBag(0)
	e, errs := parser.ParseExpression(fs.Get(id), parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	if errs != 0 {
		t.Fatalf("parse %q: %v", src, bag.Items())
	}
	return e
}

func free(t *testing.T, src string) string {
	t.Helper()
	return strings.Join(FreeNames(parseExpr(t, src)), ",")
}

func TestFreeReferences(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a + b.c", "a,b"},
		{"a[b]", "a,b"},
		{"({ a: b, [c]: d, e })", "b,c,d,e"},
		{"(x) => x + y", "y"},
		{"function f(a) { return f(a, b) }", "b"},
		{"() => { let i = 0; return i + j }", "j"},
		{"() => { for (let i of list) { use(i) } }", "list,use"},
		{"() => { try {} catch (err) { log(err) } }", "log"},
		{"() => { switch (k) { case 1: const v = 1; use(v) } }", "k,use"},
		{"class { [key]() {} name() {} }", "key"},
		{"class extends Base { #p = v; m() { return this.#p } }", "Base,v"},
		{"() => { outer: for (;;) { break outer } }", ""},
		{"arguments[0]", ""},
		{"`a${b}c${d}`", "b,d"},
		{"tag`x${y}`", "tag,y"},
		{"a = b", "a,b"},
		{"[a, , ...b] = c", "a,b,c"},
		{"({ a, b: { c } } = obj)", "a,c,obj"},
		{"(a = def) => a", "def"},
		{"({ [k]: v }) => v", "k"},
		{"() => { var hoisted = 1; return hoisted }", ""},
		{"function named() { return named }", ""},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := free(t, tt.src); got != tt.want {
				t.Fatalf("free names = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoopBodyShadowing(t *testing.T) {
	// тело v-for: index свободен снаружи, но затенён внутри стрелки
	e := parseExpr(t, "[index, (item) => { let index = 1; return [item, index] }]")
	loopVars := map[string]string{"item": "_for_item0.value", "index": "_for_index0.value"}

	e = WalkIdentifiers(e, func(id *jsast.Ident, _ jsast.Node, _ []jsast.Node, _, _ bool) jsast.Expr {
		if repl, ok := loopVars[id.Name]; ok {
			obj, prop, _ := strings.Cut(repl, ".")
			return &jsast.MemberExpr{Object: &jsast.Ident{Name: obj}, Property: &jsast.Ident{Name: prop}}
		}
		return nil
	}, Options{})

	got := printer.Expr(e, printer.Options{})
	want := "[_for_index0.value, item => {\n  let index = 1;\n  return [item, index];\n}]"
	if got != want {
		t.Fatalf("rewritten:\n%s\nwant:\n%s", got, want)
	}
}

func TestShorthandReplacement(t *testing.T) {
	e := parseExpr(t, "({ a, b })")
	e = WalkIdentifiers(e, func(id *jsast.Ident, _ jsast.Node, _ []jsast.Node, _, _ bool) jsast.Expr {
		if id.Name == "a" {
			return &jsast.MemberExpr{Object: &jsast.Ident{Name: "_ctx"}, Property: &jsast.Ident{Name: "a"}}
		}
		return nil
	}, Options{})
	if got := printer.Expr(e, printer.Options{}); got != "{ a: _ctx.a, b }" {
		t.Fatalf("got %q", got)
	}
}

func TestRootReplacement(t *testing.T) {
	e := WalkIdentifiers(&jsast.Ident{Name: "x"}, func(*jsast.Ident, jsast.Node, []jsast.Node, bool, bool) jsast.Expr {
		return &jsast.NumberLit{Raw: "1", Value: 1}
	}, Options{})
	if _, ok := e.(*jsast.NumberLit); !ok {
		t.Fatalf("root not replaced: %T", e)
	}
}

func TestKnownSeedIsRestored(t *testing.T) {
	known := Known{"slotProps": 1}
	var names []string
	WalkIdentifiers(parseExpr(t, "(a) => slotProps.x + a + b"), func(id *jsast.Ident, _ jsast.Node, _ []jsast.Node, _, _ bool) jsast.Expr {
		names = append(names, id.Name)
		return nil
	}, Options{Known: known})
	if strings.Join(names, ",") != "b" {
		t.Fatalf("names = %v", names)
	}
	if len(known) != 1 || known["slotProps"] != 1 {
		t.Fatalf("known changed: %v", known)
	}
}

func TestKnownMultiset(t *testing.T) {
	k := Known{}
	k.Add("a")
	k.Add("a")
	k.Remove("a")
	if !k.Has("a") {
		t.Fatal("a removed too early")
	}
	k.Remove("a")
	if k.Has("a") || len(k) != 0 {
		t.Fatalf("a left behind: %v", k)
	}
}

func TestIsReferenced(t *testing.T) {
	id := &jsast.Ident{Name: "x"}
	tests := []struct {
		name        string
		parent      jsast.Node
		grandparent jsast.Node
		want        bool
	}{
		{"member object", &jsast.MemberExpr{Object: id, Property: &jsast.Ident{Name: "p"}}, nil, true},
		{"member property", &jsast.MemberExpr{Object: &jsast.Ident{Name: "o"}, Property: id}, nil, false},
		{"computed member property", &jsast.MemberExpr{Object: &jsast.Ident{Name: "o"}, Property: id, Computed: true}, nil, true},
		{"object key", &jsast.Property{Key: id, Value: &jsast.Ident{Name: "v"}}, &jsast.ObjectLit{}, false},
		{"computed key", &jsast.Property{Key: id, Value: &jsast.Ident{Name: "v"}, Computed: true}, &jsast.ObjectLit{}, true},
		{"object value", &jsast.Property{Key: &jsast.Ident{Name: "k"}, Value: id}, &jsast.ObjectLit{}, true},
		{"pattern value", &jsast.Property{Key: &jsast.Ident{Name: "k"}, Value: id}, &jsast.ObjectPattern{}, false},
		{"assign target", &jsast.AssignExpr{Op: "=", Target: id, Value: &jsast.Ident{Name: "v"}}, nil, false},
		{"assign value", &jsast.AssignExpr{Op: "=", Target: &jsast.Ident{Name: "t"}, Value: id}, nil, true},
		{"declarator", &jsast.Declarator{Target: id}, nil, false},
		{"label", &jsast.BreakStmt{Label: id}, nil, false},
		{"class method key", &jsast.ClassMember{Key: id}, nil, false},
		{"class computed key", &jsast.ClassMember{Key: id, Computed: true}, nil, true},
		{"rest", &jsast.RestElem{Arg: id}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsReferenced(id, tt.parent, tt.grandparent); got != tt.want {
				t.Fatalf("IsReferenced = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDestructurePaths(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{"item", []string{"item:"}},
		{"({ a, b: { c }, ...rest })", []string{"a:.a", "c:.b.c", "rest:rest(a,b)"}},
		{"[x, , ...tail]", []string{"tail:slice(2)", "x:[0]"}},
		{"({ a = 1, [k]: v })", []string{"a:.a=1", "v:[k]"}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			pat, ok := parser.ToBindingPattern(parseExpr(t, tt.src))
			if !ok {
				t.Fatalf("not a pattern")
			}
			var got []string
			for _, p := range DestructurePaths(pat) {
				got = append(got, p.Name+":"+describeSteps(p.Steps))
			}
			sort.Strings(got)
			if strings.Join(got, " ") != strings.Join(tt.want, " ") {
				t.Fatalf("paths = %v, want %v", got, tt.want)
			}
		})
	}
}

func describeSteps(steps []Step) string {
	var sb strings.Builder
	for _, s := range steps {
		switch s.Kind {
		case StepKey:
			sb.WriteString("." + s.Key)
		case StepComputed:
			sb.WriteString("[" + printer.Expr(s.Expr, printer.Options{}) + "]")
		case StepIndex:
			sb.WriteString("[" + string(rune('0'+s.Index)) + "]")
		case StepSlice:
			sb.WriteString("slice(" + string(rune('0'+s.Index)) + ")")
		case StepRest:
			var keys []string
			for _, k := range s.Exclude {
				keys = append(keys, k.(*jsast.StringLit).Value)
			}
			sb.WriteString("rest(" + strings.Join(keys, ",") + ")")
		case StepDefault:
			sb.WriteString("=" + printer.Expr(s.Expr, printer.Options{}))
		}
	}
	return sb.String()
}

func TestExtractIdentifiers(t *testing.T) {
	pat, _ := parser.ToBindingPattern(parseExpr(t, "({ a, b: [c, d = 1], ...e })"))
	if got := strings.Join(BoundNames(pat), ","); got != "a,c,d,e" {
		t.Fatalf("bound = %s", got)
	}
}

func TestUses(t *testing.T) {
	e := parseExpr(t, "list.map((item) => item.id === selected)")
	if !Uses(e, "selected") || Uses(e, "item") || !Uses(e, "list") {
		t.Fatal("Uses mismatch")
	}
}
