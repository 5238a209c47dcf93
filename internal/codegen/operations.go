package codegen

import (
	"strings"

	"jsxc/internal/htmltags"
	"jsxc/internal/ir"
	"jsxc/internal/jsast"
	"jsxc/internal/printer"
)

// operations emits ops in order. Custom directives of one element are
// applied by a single call at the position of the first one.
func (g *generator) operations(ops []ir.Operation) []string {
	var out []string
	grouped := make(map[int]bool)
	delegated := make(map[string]bool)
	for i, op := range ops {
		if ev, ok := op.(*ir.SetEvent); ok && ev.Delegate {
			key := nodeVar(ev.Element) + ":" + ev.Key
			out = append(out, g.setEvent(ev, delegated[key]))
			delegated[key] = true
			continue
		}
		if d, ok := op.(*ir.Directive); ok && !d.Builtin {
			if grouped[d.Element] {
				continue
			}
			grouped[d.Element] = true
			var dirs []*ir.Directive
			for _, other := range ops[i:] {
				if o, ok := other.(*ir.Directive); ok && !o.Builtin && o.Element == d.Element {
					dirs = append(dirs, o)
				}
			}
			out = append(out, g.customDirectives(dirs))
			continue
		}
		out = append(out, g.operation(op)...)
	}
	return out
}

func (g *generator) operation(op ir.Operation) []string {
	switch op := op.(type) {
	case *ir.SetProp:
		return []string{g.setProp(op)}
	case *ir.SetDynamicProps:
		root := ""
		if op.Root {
			root = "true"
		}
		return []string{call(g.helper("setDynamicProps"), nodeVar(op.Element), g.propsArray(op.Props), root)}
	case *ir.SetEvent:
		return []string{g.setEvent(op, false)}
	case *ir.SetDynamicEvents:
		return []string{call(g.helper("setDynamicEvents"), nodeVar(op.Element), g.expr(op.Value))}
	case *ir.SetText:
		target := nodeVar(op.Element)
		if op.Child {
			target = "x" + target[1:]
		}
		return []string{call(g.helper("setText"), target, g.text(op.Values))}
	case *ir.GetTextChild:
		return []string{"const x" + nodeVar(op.Parent)[1:] + " = " + call(g.helper("txt"), nodeVar(op.Parent))}
	case *ir.SetHTML:
		return []string{call(g.helper("setHtml"), nodeVar(op.Element), g.expr(op.Value))}
	case *ir.SetNodes:
		args := []string{nodeVar(op.Element)}
		for _, v := range op.Values {
			args = append(args, g.nodeValue(v, op.Once))
		}
		return []string{call(g.helper("setNodes"), args...)}
	case *ir.InsertNode:
		return []string{g.insertNode(op)}
	case *ir.Directive:
		return []string{g.builtinDirective(op)}
	case *ir.SetTemplateRef:
		return []string{g.setTemplateRef(op)}
	case *ir.DeclareOldRef:
		return []string{"let r" + nodeVar(op.ID)[1:]}
	case ir.BlockOperation:
		return g.blockOperation(op)
	}
	return nil
}

// text joins text parts into one string expression.
func (g *generator) text(values []jsast.Expr) string {
	parts := make([]string, len(values))
	for i, v := range values {
		if s, ok := v.(*jsast.StringLit); ok {
			parts[i] = printer.Quote(s.Value)
			continue
		}
		parts[i] = call(g.helper("toDisplayString"), g.expr(v))
	}
	return strings.Join(parts, " + ")
}

// nodeValue passes literals and once values as is and wraps the rest in a getter.
func (g *generator) nodeValue(v jsast.Expr, once bool) string {
	if _, ok := v.(*jsast.StringLit); ok || once {
		return g.value(v)
	}
	return g.getter(v)
}

// propValue prints the merged values of one prop.
func (g *generator) propValue(p *ir.Prop) string {
	if len(p.Values) == 1 {
		return g.value(p.Values[0])
	}
	vals := make([]string, len(p.Values))
	for i, v := range p.Values {
		vals[i] = g.value(v)
	}
	return "[" + strings.Join(vals, ", ") + "]"
}

func (g *generator) setProp(op *ir.SetProp) string {
	p := op.Prop
	helper, needKey := htmltags.PropHelper(op.Tag, p.Key, p.Modifier)
	args := []string{nodeVar(op.Element)}
	if needKey {
		args = append(args, printer.Quote(p.Key))
	}
	args = append(args, g.propValue(p))
	if op.Root && (helper == "setClass" || helper == "setStyle") {
		args = append(args, "true")
	}
	return call(g.helper(helper), args...)
}

// propsArray prints prop sources as the runtime's list of objects and
// getters.
func (g *generator) propsArray(sources []ir.PropsSource) string {
	parts := make([]string, 0, len(sources))
	for _, s := range sources {
		if s.Spread != nil {
			parts = append(parts, g.expr(s.Spread))
			continue
		}
		var props []string
		for _, p := range s.Props {
			key := propKey(p.Key)
			if p.KeyExpr != nil {
				key = "[" + g.expr(p.KeyExpr) + "]"
			}
			props = append(props, key+": "+g.propValue(p))
		}
		parts = append(parts, "{ "+strings.Join(props, ", ")+" }")
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// setEvent attaches a listener. The first delegated handler of an event
// is stored on the element; further ones go through delegate.
func (g *generator) setEvent(op *ir.SetEvent, again bool) string {
	handler := g.handler(op.Value, op.Modifiers.NonKeys, op.Modifiers.Keys)
	el := nodeVar(op.Element)
	if op.Delegate {
		if again {
			return call(g.helper("delegate"), el, printer.Quote(op.Key), handler)
		}
		return el + ".$evt" + op.Key + " = " + handler
	}
	name := printer.Quote(op.Key)
	var opts []string
	for _, o := range op.Modifiers.Options {
		opts = append(opts, o+": true")
	}
	if op.KeyExpr != nil {
		name = g.expr(op.KeyExpr)
		opts = append(opts, "effect: true")
	}
	options := ""
	if len(opts) > 0 {
		options = "{ " + strings.Join(opts, ", ") + " }"
	}
	return call(g.helper("on"), el, name, handler, options)
}

// handler normalises an event handler expression and applies guards.
func (g *generator) handler(v jsast.Expr, nonKeys, keys []string) string {
	var h string
	switch x := v.(type) {
	case nil:
		h = "() => {}"
	case *jsast.Ident, *jsast.MemberExpr:
		h = "e => " + g.expr(x) + "(e)"
	case *jsast.ArrowFunc, *jsast.FuncExpr:
		h = g.expr(x)
	default:
		h = "(...args) => (" + g.expr(x) + ")(...args)"
	}
	if len(nonKeys) > 0 {
		h = call(g.helper("withModifiers"), h, quoteList(nonKeys))
	}
	if len(keys) > 0 {
		h = call(g.helper("withKeys"), h, quoteList(keys))
	}
	return h
}

func quoteList(list []string) string {
	q := make([]string, len(list))
	for i, s := range list {
		q[i] = printer.Quote(s)
	}
	return "[" + strings.Join(q, ", ") + "]"
}

func (g *generator) insertNode(op *ir.InsertNode) string {
	els := make([]string, len(op.Elements))
	for i, id := range op.Elements {
		els[i] = nodeVar(id)
	}
	parent := nodeVar(op.Parent)
	if op.Anchor == ir.AnchorPrepend {
		return call(g.helper("prepend"), append([]string{parent}, els...)...)
	}
	el := els[0]
	if len(els) > 1 {
		el = "[" + strings.Join(els, ", ") + "]"
	}
	anchor := ""
	if op.Anchor != ir.NoNode {
		anchor = nodeVar(op.Anchor)
	}
	return call(g.helper("insert"), el, parent, anchor)
}

func (g *generator) builtinDirective(op *ir.Directive) string {
	el := nodeVar(op.Element)
	exp := op.Dir.Exp
	switch op.Name {
	case "show":
		if op.Once {
			return call(g.helper("setStyle"), el, `{ display: (`+g.expr(exp)+`) ? "" : "none" }`)
		}
		return call(g.helper("applyVShow"), el, g.getter(exp))
	case "model":
		mods := ""
		if len(op.Dir.Modifiers) > 0 {
			var kv []string
			for _, m := range op.Dir.Modifiers {
				kv = append(kv, propKey(m)+": true")
			}
			mods = "{ " + strings.Join(kv, ", ") + " }"
		}
		return call(g.helper(op.ModelType), el, g.getter(exp), g.modelSetter(exp), mods)
	}
	return ""
}

// modelSetter writes the new value back into the bound expression.
func (g *generator) modelSetter(exp jsast.Expr) string {
	return "_value => (" + g.expr(exp) + " = _value)"
}

// customDirectives applies all custom directives of one element.
func (g *generator) customDirectives(dirs []*ir.Directive) string {
	items := make([]string, len(dirs))
	for i, d := range dirs {
		args := []string{d.Var}
		rec := d.Dir
		if rec.Exp != nil {
			args = append(args, g.getter(rec.Exp))
		} else {
			args = append(args, "")
		}
		switch {
		case rec.Arg == nil:
			args = append(args, "")
		case rec.Arg.IsStatic():
			args = append(args, printer.Quote(rec.Arg.Static))
		default:
			args = append(args, g.expr(rec.Arg.Expr))
		}
		if len(rec.Modifiers) > 0 {
			var kv []string
			for _, m := range rec.Modifiers {
				kv = append(kv, propKey(m)+": true")
			}
			args = append(args, "{ "+strings.Join(kv, ", ")+" }")
		}
		for len(args) > 1 && args[len(args)-1] == "" {
			args = args[:len(args)-1]
		}
		for j, a := range args {
			if a == "" {
				args[j] = "void 0"
			}
		}
		items[i] = "[" + strings.Join(args, ", ") + "]"
	}
	return call(g.helper("withVaporDirectives"), nodeVar(dirs[0].Element), "["+strings.Join(items, ", ")+"]")
}

func (g *generator) setTemplateRef(op *ir.SetTemplateRef) string {
	el := nodeVar(op.Element)
	ref := "r" + el[1:]
	args := []string{el, g.expr(op.Value)}
	if op.Effect {
		args = append(args, ref)
	}
	if op.RefFor {
		if !op.Effect {
			args = append(args, "void 0")
		}
		args = append(args, "true")
	}
	stmt := call("_setTemplateRef", args...)
	if op.Effect {
		return ref + " = " + stmt
	}
	return stmt
}
