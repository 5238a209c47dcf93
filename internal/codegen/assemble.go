package codegen

import (
	"strconv"
	"strings"

	"jsxc/internal/ir"
	"jsxc/internal/printer"
)

// assemble emits the module prelude. Helpers used by the declarations are
// interned before the import lines are built.
func (g *generator) assemble() (imports, decls []string) {
	var body []string
	for i, t := range g.root.Templates.All() {
		args := []string{printer.Quote(t.Content)}
		if t.Root || t.Namespace != 0 {
			args = append(args, strconv.FormatBool(t.Root))
		}
		if t.Namespace != 0 {
			args = append(args, strconv.Itoa(int(t.Namespace)))
		}
		body = append(body, "const "+templateVar(i)+" = "+call(g.helper("template"), args...)+";")
	}
	for i, h := range g.root.Hoists.All() {
		body = append(body, "const "+ir.HoistName(i)+" = "+printer.Expr(h, g.opts.Printer)+";")
	}
	if g.root.Delegates.Len() > 0 {
		body = append(body, call(g.helper("delegateEvents"), quoteArgs(g.root.Delegates.Names())...)+";")
	}
	return g.imports(), body
}

func quoteArgs(list []string) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = printer.Quote(s)
	}
	return out
}

// moduleOf names the runtime module that exports helper.
func (g *generator) moduleOf(helper string) string {
	switch helper {
	case "createNodes", "setNodes":
		return g.opts.InteropRuntime
	case "createComponent", "createComponentWithFallback":
		if g.opts.Interop {
			return g.opts.InteropRuntime
		}
	}
	return g.opts.Runtime
}

// imports builds one import statement per module in first-use order.
func (g *generator) imports() []string {
	var modules []string
	specs := make(map[string][]string)
	for _, name := range g.root.Helpers.Names() {
		local := ir.HelperPrefix + name
		if g.opts.Imported[local] {
			continue
		}
		mod := g.moduleOf(name)
		if _, ok := specs[mod]; !ok {
			modules = append(modules, mod)
		}
		specs[mod] = append(specs[mod], name+" as "+local)
	}
	out := make([]string, 0, len(modules))
	for _, mod := range modules {
		out = append(out, "import { "+strings.Join(specs[mod], ", ")+" } from "+printer.Quote(mod)+";")
	}
	return out
}
