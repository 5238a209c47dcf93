package transform

import (
	"strings"

	"jsxc/internal/diag"
	"jsxc/internal/directive"
	"jsxc/internal/htmltags"
	"jsxc/internal/ir"
	"jsxc/internal/jsast"
)

func transformElement(c *Context) func() {
	n := c.node
	switch n.kind {
	case kindComponent:
		return func() { c.buildComponent() }
	case kindElement:
	default:
		return nil
	}
	for _, name := range []string{"html", "text"} {
		a := n.find(name)
		if a == nil || len(n.children) == 0 {
			continue
		}
		code := diag.TplVHtmlWithChildren
		if name == "text" {
			code = diag.TplVTextWithChildren
		}
		c.st.report(code, a.rec.Span)
		c.skipChildren = true
	}
	return func() { c.buildElement() }
}

// propGroup dedupes props by static key. Duplicate class, style and
// handlers merge their values; other duplicates keep the first one.
type propGroup struct {
	props []*ir.Prop
	byKey map[string]*ir.Prop
}

func (g *propGroup) add(p *ir.Prop) {
	if p.KeyExpr != nil {
		g.props = append(g.props, p)
		return
	}
	if g.byKey == nil {
		g.byKey = make(map[string]*ir.Prop)
	}
	if prev, ok := g.byKey[p.Key]; ok {
		if p.Key == "class" || p.Key == "style" || prev.Handler || htmltags.IsEventName(p.Key) {
			prev.Values = append(prev.Values, p.Values...)
		}
		return
	}
	g.byKey[p.Key] = p
	g.props = append(g.props, p)
}

// elementKey maps JSX prop names to their HTML names.
func elementKey(key string) string {
	switch key {
	case "className":
		return "class"
	case "htmlFor":
		return "for"
	}
	return key
}

func camelize(s string) string {
	parts := strings.Split(s, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

func propModifier(rec *directive.Record) byte {
	switch {
	case rec.HasModifier("prop"):
		return '.'
	case rec.HasModifier("attr"):
		return '^'
	}
	return 0
}

// elementProp classifies an attribute value. It returns nil when the
// attribute renders nothing, like disabled={false}.
func (c *Context) elementProp(rec *directive.Record) *ir.Prop {
	key := elementKey(rec.ArgName(""))
	if rec.HasModifier("camel") {
		key = camelize(key)
	}
	p := &ir.Prop{Key: key, Modifier: propModifier(rec)}
	v := rec.Exp
	switch b := unparen(v).(type) {
	case nil:
		v = &jsast.StringLit{Value: ""}
	case *jsast.BoolLit:
		if htmltags.IsBooleanAttr(key) {
			if !b.Value {
				return nil
			}
			v = jsast.At(b.Span(), &jsast.StringLit{Value: ""})
		}
	default:
		if _, ok := staticString(v); !ok && hoistable(v) {
			v = c.hoist(v)
		}
	}
	p.Values = []jsast.Expr{v}
	return p
}

func (c *Context) buildElement() {
	n := c.node
	var sources []ir.PropsSource
	var group propGroup
	dynamic := false
	flush := func() {
		if len(group.props) > 0 {
			sources = append(sources, ir.PropsSource{Props: group.props})
			group = propGroup{}
		}
	}

	for _, a := range n.attrs {
		rec := a.rec
		switch a.kind {
		case directive.KindSpread:
			flush()
			sources = append(sources, ir.PropsSource{Spread: rec.Exp})
			dynamic = true
		case directive.KindAttribute:
			if p := c.elementProp(rec); p != nil {
				group.add(p)
			}
		case directive.KindEvent:
			c.elementEvent(rec)
		case directive.KindDirective:
			switch rec.Name {
			case "bind":
				if rec.Arg == nil {
					flush()
					if rec.Exp != nil {
						sources = append(sources, ir.PropsSource{Spread: rec.Exp})
					}
					dynamic = true
				} else if !rec.Arg.IsStatic() {
					group.add(&ir.Prop{KeyExpr: rec.Arg.Expr, Values: []jsast.Expr{rec.Exp}, Modifier: propModifier(rec)})
					dynamic = true
				} else if p := c.elementProp(rec); p != nil {
					group.add(p)
				}
			case "on":
				c.elementEvent(rec)
			default:
				c.elementDirective(rec)
			}
		}
	}
	flush()

	var sb strings.Builder
	sb.WriteString("<" + n.tag)
	if dynamic {
		var values []jsast.Expr
		for _, s := range sources {
			if s.Spread != nil {
				values = append(values, s.Spread)
			}
			for _, p := range s.Props {
				values = append(values, p.Values...)
			}
		}
		c.registerEffect(values, &ir.SetDynamicProps{Element: c.reference(), Props: sources, Root: c.singleRoot})
	} else {
		for _, s := range sources {
			for _, p := range s.Props {
				if text, ok := staticProp(p); ok {
					sb.WriteString(" " + p.Key)
					if text != "" {
						sb.WriteString(`="` + htmltags.EscapeText(text) + `"`)
					}
					continue
				}
				c.registerEffect(p.Values, &ir.SetProp{Element: c.reference(), Prop: p, Tag: n.tag, Root: c.singleRoot})
			}
		}
	}
	sb.WriteString(">")
	if !htmltags.IsVoidTag(n.tag) {
		sb.WriteString(strings.Join(c.childrenTemplate, ""))
		if !c.omitEnd {
			sb.WriteString("</" + n.tag + ">")
		}
	}

	html := sb.String()
	if c.parent != nil && c.parent.node.kind == kindElement && !htmltags.IsValidNesting(c.parent.node.tag, n.tag) {
		c.reference()
		c.dynamic.Template = c.st.root.Templates.Add(ir.Template{Content: html, Namespace: c.ns})
		c.dynamic.Add(ir.FlagInsert | ir.FlagNonTemplate)
		return
	}
	c.template += html
}

func staticProp(p *ir.Prop) (string, bool) {
	if p.KeyExpr != nil || p.Modifier != 0 || len(p.Values) != 1 {
		return "", false
	}
	return staticString(p.Values[0])
}

// elementEvent registers a listener. Handlers of delegated events with a
// static name and no listener options go through the document dispatcher.
func (c *Context) elementEvent(rec *directive.Record) {
	if rec.Exp == nil && len(rec.Modifiers) == 0 {
		c.st.report(diag.TplVOnNoExpression, rec.Span)
		return
	}
	if rec.Arg == nil {
		if rec.Exp != nil {
			c.registerEffect([]jsast.Expr{rec.Exp}, &ir.SetDynamicEvents{Element: c.reference(), Value: rec.Exp})
		}
		return
	}
	static := rec.Arg.IsStatic()
	name := rec.Arg.Static
	if static && !strings.Contains(name, ":") {
		name = strings.ToLower(name)
	}
	mods := directive.ResolveModifiers(name, static, rec.Modifiers)
	if static && name == "click" {
		for _, m := range mods.NonKeys {
			switch m {
			case "right":
				name = "contextmenu"
			case "middle":
				name = "mouseup"
			}
		}
	}
	op := &ir.SetEvent{Element: c.reference(), Key: name, Value: rec.Exp, Modifiers: mods}
	if !static {
		op.Key = ""
		op.KeyExpr = rec.Arg.Expr
		c.registerEffect([]jsast.Expr{rec.Arg.Expr}, op)
		return
	}
	if len(mods.Options) == 0 && htmltags.IsDelegatedEvent(name) {
		op.Delegate = true
		c.st.root.Delegates.Add(name)
	}
	c.registerOperation(op)
}

func (c *Context) elementDirective(rec *directive.Record) {
	switch rec.Name {
	case "show":
		c.vShow(rec)
	case "model":
		c.vModel(rec)
	case "html":
		if rec.Exp == nil {
			c.st.report(diag.TplVHtmlNoExpression, rec.Span)
			return
		}
		c.registerEffect([]jsast.Expr{rec.Exp}, &ir.SetHTML{Element: c.reference(), Value: rec.Exp})
	case "text":
		if rec.Exp == nil {
			c.st.report(diag.TplVTextNoExpression, rec.Span)
			return
		}
		c.childrenTemplate = []string{" "}
		id := c.reference()
		c.registerOperation(&ir.GetTextChild{Parent: id})
		c.registerEffect([]jsast.Expr{rec.Exp}, &ir.SetText{Element: id, Values: []jsast.Expr{rec.Exp}, Child: true})
	case "slot", "slots", "cloak", "pre", "if", "else-if", "else", "for", "once", "memo":
	default:
		c.customDirective(rec)
	}
}

func (c *Context) vShow(rec *directive.Record) {
	if rec.Exp == nil {
		c.st.report(diag.TplVShowNoExpression, rec.Span)
		return
	}
	c.registerOperation(&ir.Directive{
		Element: c.reference(),
		Name:    "show",
		Builtin: true,
		Dir:     rec,
		Once:    c.inVOnce || IsConstant(rec.Exp),
	})
}

func (c *Context) customDirective(rec *directive.Record) {
	v := c.st.prog.Directives.Add(rec.Name, rec.Span)
	c.registerOperation(&ir.Directive{Element: c.reference(), Name: rec.Name, Dir: rec, Var: v, Once: c.inVOnce})
}
