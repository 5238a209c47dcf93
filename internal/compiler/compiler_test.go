package compiler

import (
	"strings"
	"testing"

	"jsxc/internal/diag"
	"jsxc/internal/ir"
	"jsxc/internal/source"
	"jsxc/internal/trace"
)

func TestCompileStatic(t *testing.T) {
	res := Compile(`<div>hello</div>`, Options{})
	if res.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics)
	}
	want := strings.Join([]string{
		`const t0 = _template("<div>hello", true);`,
		"(() => {",
		"  const n0 = t0()",
		"  return n0",
		"})()",
	}, "\n")
	if res.Code != want {
		t.Fatalf("code:\n%s\nwant:\n%s", res.Code, want)
	}
	if len(res.Imports) != 1 || res.Imports[0] != `import { template as _template } from "vue";` {
		t.Fatalf("imports = %q", res.Imports)
	}
	if len(res.Helpers) != 1 || res.Helpers[0] != "template" {
		t.Fatalf("helpers = %q", res.Helpers)
	}
}

func TestAbbreviationDefault(t *testing.T) {
	tests := []struct {
		opts Options
		want string
	}{
		{Options{}, `_template("<div><p>a", true)`},
		{Options{NoAbbreviate: true}, `_template("<div><p>a</p></div>", true)`},
	}
	for _, tt := range tests {
		res := Compile(`<div><p>a</p></div>`, tt.opts)
		if !strings.Contains(res.Code, tt.want) {
			t.Errorf("NoAbbreviate=%v: missing %s in:\n%s", tt.opts.NoAbbreviate, tt.want, res.Code)
		}
	}
}

func TestCompileRuntimeModule(t *testing.T) {
	res := Compile(`<div>{list}</div>`, Options{Runtime: "vue/vapor", InteropRuntime: "my-interop"})
	joined := strings.Join(res.Imports, "\n")
	for _, want := range []string{
		`from "vue/vapor";`,
		`import { setNodes as _setNodes } from "my-interop";`,
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing %q in:\n%s", want, joined)
		}
	}
}

func TestTemplateDedup(t *testing.T) {
	res := Compile(`<><div v-if={ok}>hello</div><div v-if={ok}>hello</div></>`, Options{})
	if len(res.Templates) != 1 {
		t.Fatalf("templates = %d, want 1", len(res.Templates))
	}
	if strings.Count(res.Code, "const t0 = ") != 1 || strings.Contains(res.Code, "const t1 = ") {
		t.Fatalf("code:\n%s", res.Code)
	}
}

func TestErrorDegradation(t *testing.T) {
	var kinds []diag.Code
	res := Compile(`<div v-else/>`, Options{OnError: func(kind diag.Code, _ source.Span) {
		kinds = append(kinds, kind)
	}})
	if len(kinds) != 1 || kinds[0] != diag.TplVElseNoAdjacentIf {
		t.Fatalf("errors = %v", kinds)
	}
	if len(res.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %v", res.Diagnostics)
	}
	if !strings.Contains(res.Code, `_template("<div>", true)`) {
		t.Fatalf("element not rendered:\n%s", res.Code)
	}
}

func TestSSRUnsupported(t *testing.T) {
	var kinds []diag.Code
	res := Compile(`<div/>`, Options{SSR: true, OnError: func(kind diag.Code, _ source.Span) {
		kinds = append(kinds, kind)
	}})
	if len(kinds) != 1 || kinds[0] != diag.TplSSRUnsupported {
		t.Fatalf("errors = %v", kinds)
	}
	if !res.HasErrors() {
		t.Fatal("expected error diagnostic")
	}
}

func TestCompileRejects(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"not jsx", `a + b`, diag.SynNoTemplate},
		{"unclosed", `<div>`, diag.SynJSXUnclosedElement},
		{"adjacent", `<a/><b/>`, diag.SynJSXAdjacentElements},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Compile(tt.src, Options{})
			if res.Code != "" {
				t.Errorf("code = %q, want empty", res.Code)
			}
			found := false
			for _, d := range res.Diagnostics {
				if d.Code == tt.code {
					found = true
				}
			}
			if !found {
				t.Errorf("no %v in %v", tt.code, res.Diagnostics)
			}
		})
	}
}

func TestCompileModule(t *testing.T) {
	src := strings.Join([]string{
		`import { ref } from "vue"`,
		`const msg = ref("hi")`,
		`export const A = () => <div>{msg.value}</div>`,
		`export default () => <><span>static</span></>`,
		``,
	}, "\n")
	res := CompileModule(src, Options{Filename: "app.jsx"})
	if res.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics)
	}
	if res.Programs != 2 {
		t.Fatalf("programs = %d", res.Programs)
	}
	for _, want := range []string{
		`import { template as _template`,
		"const t0 = _template(",
		`import { ref } from "vue"`,
		"export const A = () => (() => {",
		"export default () => (() => {",
	} {
		if !strings.Contains(res.Code, want) {
			t.Errorf("missing %q in:\n%s", want, res.Code)
		}
	}
	if strings.Contains(res.Code, "<span>static</span></>") {
		t.Errorf("jsx left in output:\n%s", res.Code)
	}
	if strings.Index(res.Code, "const t0") > strings.Index(res.Code, "const msg") {
		t.Errorf("prelude is not on top:\n%s", res.Code)
	}
}

func TestCompileModuleWithoutJSX(t *testing.T) {
	src := "export const x = 1 < 2\n"
	res := CompileModule(src, Options{})
	if res.Code != src {
		t.Fatalf("code = %q, want unchanged", res.Code)
	}
}

func TestCompileModuleSkipsImportedHelpers(t *testing.T) {
	src := "import { template as _template } from \"vue\"\nexport default <div/>\n"
	res := CompileModule(src, Options{})
	if strings.Count(res.Code, "template as _template") != 1 {
		t.Fatalf("helper imported twice:\n%s", res.Code)
	}
}

func TestHostOwnedCollections(t *testing.T) {
	templates := ir.NewTemplateRegistry()
	helpers := ir.NewHelpers()
	opts := Options{Templates: templates, Helpers: helpers}
	Compile(`<div>a</div>`, opts)
	res := Compile(`<span>b</span>`, opts)
	if templates.Len() != 2 {
		t.Fatalf("templates = %d, want 2", templates.Len())
	}
	if !strings.Contains(res.Code, "const t1 = ") {
		t.Fatalf("second template not declared:\n%s", res.Code)
	}
	if !helpers.Has("template") {
		t.Fatal("helper not recorded in host set")
	}
}

func TestPhaseSpans(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelDetail)
	s := NewSession(Options{Tracer: ring})
	s.Compile([]byte(`<div/>`))

	var names []string
	for _, ev := range ring.Snapshot() {
		if ev.Kind == trace.KindSpanEnd && ev.Scope == trace.ScopePass {
			names = append(names, ev.Name)
		}
	}
	want := "parse,transform,codegen,assemble"
	if got := strings.Join(names, ","); got != want {
		t.Fatalf("pass spans = %s, want %s", got, want)
	}
	if n := len(s.Timer().Report().Phases); n != 4 {
		t.Fatalf("timer phases = %d", n)
	}
}
