package transform

import (
	"strconv"
	"strings"

	"jsxc/internal/htmltags"
	"jsxc/internal/ir"
	"jsxc/internal/jsast"
)

func transformText(c *Context) func() {
	n := c.node
	switch n.kind {
	case kindText:
		if text, ok := staticText(n.parts); ok {
			c.template += htmltags.EscapeText(text)
			return nil
		}
		c.template += " "
		values := textValues(n.parts)
		c.registerEffect(values, &ir.SetText{Element: c.reference(), Values: values})
	case kindNodes:
		id := c.reference()
		c.dynamic.Add(ir.FlagNonTemplate | ir.FlagInsert)
		c.dynamic.Operation = &ir.CreateNodes{ID: id, Values: []jsast.Expr{n.expr}, Once: c.inVOnce || IsConstant(n.expr)}
	case kindCond:
		id := c.reference()
		c.dynamic.Add(ir.FlagNonTemplate | ir.FlagInsert)
		c.dynamic.Operation = c.condIf(n.expr, id)
	}
	return nil
}

// textContainer handles elements whose children are only text and
// expressions. Reports whether the children were consumed.
func (c *Context) textContainer() bool {
	kids := c.node.children
	hasNodes := false
	for _, k := range kids {
		switch k.kind {
		case kindText:
		case kindNodes:
			hasNodes = true
		default:
			return false
		}
	}

	if !hasNodes {
		// соседние текстовые куски уже слиты в одну группу
		parts := kids[0].parts
		if text, ok := staticText(parts); ok {
			c.childrenTemplate = append(c.childrenTemplate, htmltags.EscapeText(text))
			return true
		}
		c.childrenTemplate = append(c.childrenTemplate, " ")
		id := c.reference()
		values := textValues(parts)
		c.registerOperation(&ir.GetTextChild{Parent: id})
		c.registerEffect(values, &ir.SetText{Element: id, Values: values, Child: true})
		c.dynamic.HasDynamicChild = true
		return true
	}

	var values []jsast.Expr
	for _, k := range kids {
		if k.kind == kindText {
			values = append(values, textValues(k.parts)...)
		} else {
			values = append(values, k.expr)
		}
	}
	c.registerOperation(&ir.SetNodes{Element: c.reference(), Values: values, Once: c.inVOnce || c.constant(values...)})
	c.dynamic.HasDynamicChild = true
	return true
}

// staticText concatenates parts known at compile time.
func staticText(parts []jsast.Expr) (string, bool) {
	var sb strings.Builder
	for _, p := range parts {
		switch v := p.(type) {
		case *jsast.JSXText:
			sb.WriteString(v.Value)
		case *jsast.NumberLit:
			if v.Raw != strconv.FormatFloat(v.Value, 'f', -1, 64) {
				return "", false
			}
			sb.WriteString(v.Raw)
		default:
			s, ok := staticString(p)
			if !ok {
				return "", false
			}
			sb.WriteString(s)
		}
	}
	return sb.String(), true
}

// textValues turns JSX text into string literals.
func textValues(parts []jsast.Expr) []jsast.Expr {
	out := make([]jsast.Expr, 0, len(parts))
	for _, p := range parts {
		if t, ok := p.(*jsast.JSXText); ok {
			out = append(out, jsast.At(t.Span(), &jsast.StringLit{Value: t.Value}))
			continue
		}
		out = append(out, p)
	}
	return out
}

// condIf compiles `test ? <A/> : <B/>` and `test && <A/>` children.
func (c *Context) condIf(e jsast.Expr, id int) *ir.If {
	switch v := unparen(e).(type) {
	case *jsast.CondExpr:
		op := &ir.If{ID: id, Condition: v.Test, Once: c.inVOnce || IsConstant(v.Test)}
		op.Positive = c.branch(v.Cons)
		alt := unparen(v.Alt)
		switch {
		case rendersNothing(alt):
		case isCondChain(alt):
			op.NegativeIf = c.condIf(alt, ir.NoNode)
		default:
			op.Negative = c.branch(v.Alt)
		}
		return op
	case *jsast.BinaryExpr:
		return &ir.If{ID: id, Condition: v.X, Positive: c.branch(v.Y), Once: c.inVOnce || IsConstant(v.X)}
	}
	return &ir.If{ID: id, Condition: e, Positive: c.branch(e), Once: c.inVOnce}
}

func isCondChain(e jsast.Expr) bool {
	switch v := e.(type) {
	case *jsast.CondExpr:
		return jsxBranch(v)
	case *jsast.BinaryExpr:
		return v.Op == "&&" && jsxBranch(v)
	}
	return false
}

// branch transforms a conditional branch expression into its own block.
func (c *Context) branch(e jsast.Expr) *ir.Block {
	block := ir.NewBlock(e)
	exit := c.enterBlock(block, false)
	defer exit()

	var child jsast.Expr
	switch unparen(e).(type) {
	case *jsast.JSXElement, *jsast.JSXFragment:
		child = unparen(e)
	default:
		child = jsast.At(e.Span(), &jsast.JSXExprContainer{X: e})
	}
	saved := c.node
	c.node = &tnode{kind: kindFragment, span: e.Span(), children: c.st.normalizeChildren([]jsast.Expr{child})}
	defer func() { c.node = saved }()
	transformChildren(c)
	return block
}
