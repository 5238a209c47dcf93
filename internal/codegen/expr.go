package codegen

import (
	"strconv"

	"jsxc/internal/jsast"
	"jsxc/internal/printer"
	"jsxc/internal/scope"
)

// pushScope makes the names of m resolve to its expressions until the
// returned func runs.
func (g *generator) pushScope(m map[string]jsast.Expr) func() {
	g.scopes = append(g.scopes, m)
	depth := len(g.scopes)
	return func() { g.scopes = g.scopes[:depth-1] }
}

// shadow hides outer mappings of the names bound by patterns.
func (g *generator) shadow(patterns ...jsast.Expr) func() {
	m := make(map[string]jsast.Expr)
	for _, p := range patterns {
		if p == nil {
			continue
		}
		for _, name := range scope.BoundNames(p) {
			m[name] = nil
		}
	}
	return g.pushScope(m)
}

func (g *generator) lookup(name string) (jsast.Expr, bool) {
	for i := len(g.scopes) - 1; i >= 0; i-- {
		if e, ok := g.scopes[i][name]; ok {
			return e, e != nil
		}
	}
	return nil, false
}

// rewrite returns a copy of e with scoped names replaced by their
// accessors. JSX nested in e is left alone; it is compiled later with
// the same scopes.
func (g *generator) rewrite(e jsast.Expr) jsast.Expr {
	if e == nil {
		return nil
	}
	e = jsast.CloneExpr(e)
	if len(g.scopes) == 0 {
		return e
	}
	return scope.WalkIdentifiers(e, func(id *jsast.Ident, _ jsast.Node, stack []jsast.Node, _, _ bool) jsast.Expr {
		for _, n := range stack {
			switch n.(type) {
			case *jsast.JSXElement, *jsast.JSXFragment:
				return nil
			}
		}
		if r, ok := g.lookup(id.Name); ok {
			return jsast.CloneExpr(r)
		}
		return nil
	}, scope.Options{})
}

func (g *generator) printOptions() printer.Options {
	opt := g.opts.Printer
	opt.JSX = g.jsx
	return opt
}

// expr prints e after scope rewriting.
func (g *generator) expr(e jsast.Expr) string {
	return printer.Expr(g.rewrite(e), g.printOptions())
}

// getter wraps e into `() => (e)`.
func (g *generator) getter(e jsast.Expr) string {
	return "() => (" + g.expr(e) + ")"
}

func (g *generator) jsx(e jsast.Expr) string {
	if g.opts.Transform == nil {
		return printer.Expr(e, g.opts.Printer)
	}
	return g.program(g.opts.Transform(e))
}

// value prints a literal as is and anything else through expr.
func (g *generator) value(e jsast.Expr) string {
	if s, ok := e.(*jsast.StringLit); ok {
		return printer.Quote(s.Value)
	}
	return g.expr(e)
}

// pathExpr applies destructuring steps to base.
func (g *generator) pathExpr(base jsast.Expr, steps []scope.Step) jsast.Expr {
	cur := base
	for _, st := range steps {
		switch st.Kind {
		case scope.StepKey:
			cur = member(cur, st.Key)
		case scope.StepComputed:
			cur = &jsast.MemberExpr{Object: cur, Property: g.rewrite(st.Expr), Computed: true}
		case scope.StepIndex:
			cur = &jsast.MemberExpr{Object: cur, Property: number(st.Index), Computed: true}
		case scope.StepSlice:
			cur = &jsast.CallExpr{Callee: member(cur, "slice"), Args: []jsast.Expr{number(st.Index)}}
		case scope.StepRest:
			excl := &jsast.ArrayLit{}
			for _, k := range st.Exclude {
				excl.Elems = append(excl.Elems, g.rewrite(k))
			}
			cur = &jsast.CallExpr{Callee: &jsast.Ident{Name: g.helper("getRestElement")}, Args: []jsast.Expr{cur, excl}}
		case scope.StepDefault:
			cur = &jsast.CallExpr{Callee: &jsast.Ident{Name: g.helper("getDefaultValue")}, Args: []jsast.Expr{cur, g.rewrite(st.Expr)}}
		}
	}
	return cur
}

// bindPaths maps every name bound by pattern to its path from base.
func (g *generator) bindPaths(m map[string]jsast.Expr, pattern, base jsast.Expr) {
	if pattern == nil {
		return
	}
	for _, p := range scope.DestructurePaths(pattern) {
		m[p.Name] = g.pathExpr(base, p.Steps)
	}
}

func member(obj jsast.Expr, name string) jsast.Expr {
	if isIdentName(name) {
		return &jsast.MemberExpr{Object: obj, Property: &jsast.Ident{Name: name}}
	}
	return &jsast.MemberExpr{Object: obj, Property: &jsast.StringLit{Value: name}, Computed: true}
}

func number(n int) jsast.Expr {
	return &jsast.NumberLit{Raw: strconv.Itoa(n), Value: float64(n)}
}

func isIdentName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// propKey prints an object key, quoting it when needed.
func propKey(key string) string {
	if isIdentName(key) {
		return key
	}
	return printer.Quote(key)
}
