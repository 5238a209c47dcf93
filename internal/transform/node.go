package transform

import (
	"strings"

	"jsxc/internal/directive"
	"jsxc/internal/htmltags"
	"jsxc/internal/jsast"
	"jsxc/internal/source"
)

type nodeKind uint8

const (
	// kindFragment: program root, <>...</>, <template> with directives and
	// wrappers created by structural directives. Children are block level.
	kindFragment nodeKind = iota
	kindElement
	kindComponent
	kindSlotOutlet
	// kindText: a run of JSX text and string-like expressions.
	kindText
	// kindNodes: an expression child that may evaluate to nodes.
	kindNodes
	// kindCond: a conditional expression child with JSX branches.
	kindCond
)

// tnode is a normalized JSX child. Directives consumed by a transform are
// dropped from a copy, the source AST is never mutated.
type tnode struct {
	kind     nodeKind
	span     source.Span
	el       *jsast.JSXElement
	tag      string
	attrs    []*attr
	children []*tnode
	parts    []jsast.Expr // kindText
	expr     jsast.Expr   // kindNodes, kindCond
}

type attr struct {
	node jsast.Node
	rec  *directive.Record
	kind directive.Kind
}

func (n *tnode) elementLike() bool {
	switch n.kind {
	case kindElement, kindComponent, kindSlotOutlet:
		return true
	case kindFragment:
		return n.el != nil
	}
	return false
}

// find returns the first directive named one of names.
func (n *tnode) find(names ...string) *attr {
	for _, a := range n.attrs {
		if a.kind != directive.KindDirective {
			continue
		}
		for _, name := range names {
			if a.rec.Name == name {
				return a
			}
		}
	}
	return nil
}

func (n *tnode) reserved(name string) *attr {
	for _, a := range n.attrs {
		if a.kind == directive.KindReserved && a.rec.Name == name {
			return a
		}
	}
	return nil
}

// prop returns the plain attribute with a static name.
func (n *tnode) prop(name string) *attr {
	for _, a := range n.attrs {
		if a.kind == directive.KindAttribute && a.rec.ArgName("") == name {
			return a
		}
	}
	return nil
}

// dynamicKeys: spreads or dynamic v-bind keys may set any prop at runtime.
func (n *tnode) dynamicKeys() bool {
	for _, a := range n.attrs {
		if a.kind == directive.KindSpread {
			return true
		}
		if a.kind == directive.KindDirective && a.rec.Name == "bind" && !a.rec.Arg.IsStatic() {
			return true
		}
	}
	return false
}

func (n *tnode) without(drop ...*attr) *tnode {
	cp := *n
	cp.attrs = nil
	for _, a := range n.attrs {
		keep := true
		for _, d := range drop {
			if a == d {
				keep = false
				break
			}
		}
		if keep {
			cp.attrs = append(cp.attrs, a)
		}
	}
	return &cp
}

// templateDirectives make a <template> a fragment instead of a native element.
var templateDirectives = map[string]bool{
	"if": true, "else-if": true, "else": true, "for": true, "slot": true, "memo": true, "once": true,
}

func (st *state) newElement(el *jsast.JSXElement) *tnode {
	n := &tnode{kind: kindElement, span: el.Span(), el: el, tag: jsast.JSXNameString(el.Name)}
	structural := false
	for _, a := range el.Attrs {
		rec, kind := directive.Resolve(a)
		if rec == nil {
			continue
		}
		n.attrs = append(n.attrs, &attr{node: a, rec: rec, kind: kind})
		if (kind == directive.KindDirective && templateDirectives[rec.Name]) ||
			(kind == directive.KindReserved && rec.Name == "key") {
			structural = true
		}
	}
	switch {
	case n.tag == "template" && structural:
		n.kind = kindFragment
	case n.tag == "slot":
		n.kind = kindSlotOutlet
	case st.isComponent(el, n.tag):
		n.kind = kindComponent
	}
	n.children = st.normalizeChildren(el.Children)
	return n
}

func (st *state) isComponent(el *jsast.JSXElement, tag string) bool {
	switch el.Name.(type) {
	case *jsast.JSXMemberExpr:
		return true
	case *jsast.JSXNamespacedName:
		return false
	}
	if tag == "component" {
		return true
	}
	if tag != "" && tag[0] >= 'A' && tag[0] <= 'Z' {
		return true
	}
	if st.opts.IsCustomElement != nil && st.opts.IsCustomElement(tag) {
		return false
	}
	return !htmltags.IsNativeTag(tag)
}

// normalizeChildren drops whitespace-only text, flattens fragments and
// merges adjacent text-like children into one group.
func (st *state) normalizeChildren(list []jsast.Expr) []*tnode {
	var out []*tnode
	var run []jsast.Expr
	var runSpan source.Span
	flush := func() {
		if len(run) > 0 {
			out = append(out, &tnode{kind: kindText, span: runSpan, parts: run})
			run = nil
		}
	}
	push := func(e jsast.Expr) {
		if len(run) == 0 {
			runSpan = e.Span()
		} else {
			runSpan = runSpan.Cover(e.Span())
		}
		run = append(run, e)
	}
	for _, child := range list {
		switch c := child.(type) {
		case *jsast.JSXText:
			v := cleanJSXText(c.Value)
			if v == "" {
				continue
			}
			push(jsast.At(c.Span(), &jsast.JSXText{Value: v, Raw: c.Raw}))
		case *jsast.JSXExprContainer:
			x := c.X
			if _, empty := x.(*jsast.JSXEmptyExpr); empty || x == nil || rendersNothing(x) {
				continue
			}
			if stringLike(x) {
				push(x)
				continue
			}
			flush()
			switch inner := unparen(x).(type) {
			case *jsast.JSXElement:
				out = append(out, st.newElement(inner))
			case *jsast.JSXFragment:
				out = append(out, st.normalizeChildren(inner.Children)...)
			default:
				if jsxBranch(x) {
					out = append(out, &tnode{kind: kindCond, span: x.Span(), expr: x})
				} else {
					out = append(out, &tnode{kind: kindNodes, span: x.Span(), expr: x})
				}
			}
		case *jsast.JSXSpreadChild:
			flush()
			out = append(out, &tnode{kind: kindNodes, span: c.Span(), expr: c.X})
		case *jsast.JSXFragment:
			flush()
			out = append(out, st.normalizeChildren(c.Children)...)
		case *jsast.JSXElement:
			flush()
			out = append(out, st.newElement(c))
		default:
			flush()
			out = append(out, &tnode{kind: kindNodes, span: c.Span(), expr: c})
		}
	}
	flush()
	return out
}

// cleanJSXText applies the JSX whitespace rules: lines are trimmed, lines
// with only whitespace vanish and the rest are joined with a single space.
func cleanJSXText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	lines := strings.Split(s, "\n")
	lastNonEmpty := 0
	for i, l := range lines {
		if strings.Trim(l, " \t") != "" {
			lastNonEmpty = i
		}
	}
	var sb strings.Builder
	for i, l := range lines {
		l = strings.ReplaceAll(l, "\t", " ")
		if i != 0 {
			l = strings.TrimLeft(l, " ")
		}
		if i != len(lines)-1 {
			l = strings.TrimRight(l, " ")
		}
		if l == "" {
			continue
		}
		sb.WriteString(l)
		if i != lastNonEmpty {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
