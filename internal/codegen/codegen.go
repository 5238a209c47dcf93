// Package codegen turns transformed IR into JavaScript.
//
// Every program becomes an IIFE that clones its templates, locates the
// dynamic nodes with sibling walks, runs the block operations once and
// groups the effects into a single render effect. Generate also assembles
// the module prelude: runtime imports, template declarations, hoisted
// constants and the event delegation call.
package codegen

import (
	"strings"

	"jsxc/internal/ir"
	"jsxc/internal/jsast"
	"jsxc/internal/printer"
)

const (
	DefaultRuntime        = "vue"
	DefaultInteropRuntime = "vue-jsx-vapor"
)

type Options struct {
	// Runtime is the module runtime helpers are imported from.
	Runtime string
	// InteropRuntime provides helpers for arbitrary JSX values.
	InteropRuntime string
	// Interop routes component creation through InteropRuntime.
	Interop bool
	// Imported are local names the host module already imports; matching
	// helpers are not imported again.
	Imported map[string]bool
	// Transform compiles a JSX expression found inside a template
	// expression into a new program of the same root. Nil prints nested
	// JSX unchanged.
	Transform func(e jsast.Expr) *ir.Program
	Printer   printer.Options
}

func (o Options) withDefaults() Options {
	if o.Runtime == "" {
		o.Runtime = DefaultRuntime
	}
	if o.InteropRuntime == "" {
		o.InteropRuntime = DefaultInteropRuntime
	}
	return o
}

// Result is the generated code of one root.
type Result struct {
	// Programs holds one expression per program of the root, in order.
	Programs []string
	// Prelude holds imports, templates, hoists and delegation, one statement per line.
	Prelude string
	// Imports and Declarations split the prelude for hosts that manage
	// their own import statements.
	Imports      []string
	Declarations []string
}

// Generate emits all programs registered in root so far.
func Generate(root *ir.Root, opts Options) Result {
	g := newGenerator(root, opts.withDefaults())
	progs := root.Programs
	out := make([]string, len(progs))
	for i, p := range progs {
		out[i] = g.program(p)
	}
	imports, decls := g.assemble()
	return Result{
		Programs:     out,
		Prelude:      strings.Join(append(append([]string(nil), imports...), decls...), "\n"),
		Imports:      imports,
		Declarations: decls,
	}
}

type generator struct {
	root *ir.Root
	opts Options

	// scopes map names bound by loops and slots to their accessor
	// expressions; a nil value shadows outer entries.
	scopes []map[string]jsast.Expr

	forDepth  int
	slotDepth int
	temp      int
}

func newGenerator(root *ir.Root, opts Options) *generator {
	return &generator{root: root, opts: opts}
}

// helper interns a runtime helper and returns its local alias.
func (g *generator) helper(name string) string {
	return g.root.Helpers.Use(name)
}

// call formats name(args...), dropping trailing empty arguments and
// filling inner ones with null.
func call(name string, args ...string) string {
	for len(args) > 0 && args[len(args)-1] == "" {
		args = args[:len(args)-1]
	}
	for i, a := range args {
		if a == "" {
			args[i] = "null"
		}
	}
	return name + "(" + strings.Join(args, ", ") + ")"
}

// fn formats an arrow function with a statement body.
func (g *generator) fn(params string, body []string) string {
	w := printer.NewWriter(g.opts.Printer)
	w.WriteString(params + " => {")
	w.Newline()
	w.IndentPush()
	for _, s := range body {
		w.WriteString(s)
		w.Newline()
	}
	w.IndentPop()
	w.WriteString("}")
	return w.String()
}

func (g *generator) program(p *ir.Program) string {
	var body []string
	for _, name := range p.Components.Names() {
		body = append(body, "const "+componentVar(name)+" = "+call(g.helper("resolveComponent"), printer.Quote(name)))
	}
	for _, u := range p.Directives.All() {
		body = append(body, "const "+u.Var+" = "+call(g.helper("resolveDirective"), printer.Quote(u.Name)))
	}
	if p.HasTemplateRef {
		body = append(body, "const _setTemplateRef = "+call(g.helper("createTemplateRefSetter")))
	}
	body = append(body, g.block(p.Block)...)
	return "(" + g.fn("()", body) + ")()"
}

// componentVar is the local of a resolved asset component.
func componentVar(name string) string {
	var sb strings.Builder
	sb.WriteString("_component_")
	for _, r := range name {
		if r == '_' || r == '$' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
