package transform

import (
	"strings"

	"jsxc/internal/diag"
	"jsxc/internal/directive"
	"jsxc/internal/ir"
	"jsxc/internal/jsast"
)

func (c *Context) buildComponent() {
	n := c.node
	id := c.reference()
	op := &ir.CreateComponent{ID: id, Tag: n.tag, Root: c.singleRoot, Once: c.inVOnce}

	attrs := n.attrs
	switch name := n.el.Name.(type) {
	case *jsast.JSXMemberExpr:
		op.TagExpr = jsxMemberToExpr(name)
	case *jsast.JSXIdent:
		switch {
		case n.tag == "component":
			op.Dynamic = true
			attrs = nil
			for _, a := range n.attrs {
				if a.kind == directive.KindAttribute && a.rec.ArgName("") == "is" {
					op.TagExpr = a.rec.Exp
					continue
				}
				attrs = append(attrs, a)
			}
			if op.TagExpr == nil {
				op.TagExpr = &jsast.StringLit{Value: ""}
			}
		case n.tag[0] >= 'A' && n.tag[0] <= 'Z':
			op.TagExpr = jsast.At(name.Span(), &jsast.Ident{Name: name.Name})
		default:
			op.Asset = true
			c.st.prog.Components.Add(n.tag)
		}
	}

	op.Props = c.componentProps(attrs, id)
	op.Slots = *c.slots
	c.dynamic.Add(ir.FlagNonTemplate | ir.FlagInsert)
	c.dynamic.Operation = op
}

func jsxMemberToExpr(m *jsast.JSXMemberExpr) jsast.Expr {
	var obj jsast.Expr
	switch o := m.Object.(type) {
	case *jsast.JSXMemberExpr:
		obj = jsxMemberToExpr(o)
	case *jsast.JSXIdent:
		obj = jsast.At(o.Span(), &jsast.Ident{Name: o.Name})
	}
	return jsast.At(m.Span(), &jsast.MemberExpr{
		Object:   obj,
		Property: jsast.At(m.Property.Span(), &jsast.Ident{Name: m.Property.Name}),
	})
}

// componentProps groups component attributes into prop sources. Spreads
// and dynamic keys start a new source so evaluation order is kept.
func (c *Context) componentProps(attrs []*attr, id int) []ir.PropsSource {
	var out []ir.PropsSource
	var group propGroup
	flush := func() {
		if len(group.props) > 0 {
			out = append(out, ir.PropsSource{Props: group.props})
			group = propGroup{}
		}
	}
	isolate := func(p *ir.Prop) {
		flush()
		group.add(p)
		flush()
	}

	for _, a := range attrs {
		rec := a.rec
		switch a.kind {
		case directive.KindSpread:
			flush()
			out = append(out, ir.PropsSource{Spread: rec.Exp})
		case directive.KindAttribute:
			v := rec.Exp
			if v == nil {
				v = &jsast.BoolLit{Value: true}
			}
			group.add(&ir.Prop{Key: rec.ArgName(""), Values: []jsast.Expr{v}})
		case directive.KindEvent:
			if rec.Exp == nil {
				c.st.report(diag.TplVOnNoExpression, rec.Span)
				continue
			}
			group.add(componentHandler(rec))
		case directive.KindDirective:
			switch rec.Name {
			case "bind":
				switch {
				case rec.Arg == nil:
					if rec.Exp != nil {
						flush()
						out = append(out, ir.PropsSource{Spread: rec.Exp})
					}
				case !rec.Arg.IsStatic():
					isolate(&ir.Prop{KeyExpr: rec.Arg.Expr, Values: []jsast.Expr{rec.Exp}})
				default:
					group.add(&ir.Prop{Key: rec.Arg.Static, Values: []jsast.Expr{rec.Exp}})
				}
			case "on":
				switch {
				case rec.Exp == nil:
					c.st.report(diag.TplVOnNoExpression, rec.Span)
				case rec.Arg == nil:
					flush()
					out = append(out, ir.PropsSource{Spread: rec.Exp, Handlers: true})
				case !rec.Arg.IsStatic():
					isolate(&ir.Prop{KeyExpr: rec.Arg.Expr, Values: []jsast.Expr{rec.Exp}, Handler: true})
				default:
					group.add(componentHandler(rec))
				}
			case "model":
				for _, p := range c.modelProps(rec) {
					if p.KeyExpr != nil {
						isolate(p)
					} else {
						group.add(p)
					}
				}
			case "show":
				c.vShow(rec)
			case "slot", "slots", "html", "text", "cloak", "pre", "if", "else-if", "else", "for", "once", "memo":
			default:
				v := c.st.prog.Directives.Add(rec.Name, rec.Span)
				c.registerOperation(&ir.Directive{Element: id, Name: rec.Name, Dir: rec, Var: v, Once: c.inVOnce})
			}
		}
	}
	flush()
	return out
}

// componentHandler turns onClick_stop into an onClick prop. Listener
// options become part of the key: onClickOnce.
func componentHandler(rec *directive.Record) *ir.Prop {
	event := rec.Arg.Static
	mods := directive.ResolveModifiers(event, true, rec.Modifiers)
	key := "on" + strings.ToUpper(event[:1]) + event[1:]
	for _, o := range mods.Options {
		key += strings.ToUpper(o[:1]) + o[1:]
	}
	return &ir.Prop{Key: key, Values: []jsast.Expr{rec.Exp}, Handler: true, HandlerModifiers: mods}
}
