package printer

import "jsxc/internal/jsast"

// jsx печатает JSX в исходной форме; используется, когда Options.JSX не задан.
func (p *printer) jsx(e jsast.Expr) {
	switch x := e.(type) {
	case *jsast.JSXElement:
		p.print("<")
		p.jsx(x.Name)
		for _, a := range x.Attrs {
			p.print(" ")
			switch a := a.(type) {
			case *jsast.JSXAttr:
				p.jsx(a.Name)
				if a.Value != nil {
					p.print("=")
					p.expr(a.Value, lLowest)
				}
			case *jsast.JSXSpreadAttr:
				p.print("{...")
				p.expr(a.X, lAssign)
				p.print("}")
			}
		}
		if x.SelfClosing {
			p.print(" />")
			return
		}
		p.print(">")
		for _, c := range x.Children {
			p.jsx(c)
		}
		p.print("</")
		p.jsx(x.Name)
		p.print(">")
	case *jsast.JSXFragment:
		p.print("<>")
		for _, c := range x.Children {
			p.jsx(c)
		}
		p.print("</>")
	case *jsast.JSXText:
		p.print(x.Raw)
	case *jsast.JSXExprContainer:
		p.print("{")
		p.expr(x.X, lLowest)
		p.print("}")
	case *jsast.JSXSpreadChild:
		p.print("{...")
		p.expr(x.X, lAssign)
		p.print("}")
	case *jsast.JSXIdent:
		p.print(x.Name)
	case *jsast.JSXNamespacedName:
		p.print(x.Namespace.Name + ":" + x.Name.Name)
	case *jsast.JSXMemberExpr:
		p.jsx(x.Object)
		p.print("." + x.Property.Name)
	default:
		p.expr(e, lLowest)
	}
}
