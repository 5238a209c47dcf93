package parser

import (
	"jsxc/internal/diag"
	"jsxc/internal/jsast"
)

// toPattern переписывает выражение, прочитанное по cover grammar, в паттерн.
// binding=true — параметры и объявления: цели только идентификаторы.
func (p *Parser) toPattern(e jsast.Expr, binding bool) jsast.Expr {
	switch x := e.(type) {
	case *jsast.Ident:
		return x
	case *jsast.MemberExpr:
		if binding || x.Optional {
			p.errAt(diag.SynInvalidPattern, x.Span(), "member expression is not a valid binding target")
		}
		return x
	case *jsast.ObjectLit:
		pat := &jsast.ObjectPattern{Props: make([]*jsast.Property, 0, len(x.Props))}
		for i, prop := range x.Props {
			switch prop.Kind {
			case jsast.PropSpread:
				if i != len(x.Props)-1 {
					p.errAt(diag.SynInvalidPattern, prop.Span(), "rest element must be last")
				}
				pat.Rest = jsast.At(prop.Span(), &jsast.RestElem{Arg: p.toPattern(prop.Value, binding)})
			case jsast.PropInit:
				prop.Value = p.toPattern(prop.Value, binding)
				pat.Props = append(pat.Props, prop)
			default:
				p.errAt(diag.SynInvalidPattern, prop.Span(), "methods are not allowed in a pattern")
			}
		}
		return jsast.At(x.Span(), pat)
	case *jsast.ArrayLit:
		pat := &jsast.ArrayPattern{Elems: make([]jsast.Expr, 0, len(x.Elems))}
		for i, el := range x.Elems {
			switch el := el.(type) {
			case nil:
				pat.Elems = append(pat.Elems, nil)
			case *jsast.SpreadElem:
				if i != len(x.Elems)-1 {
					p.errAt(diag.SynInvalidPattern, el.Span(), "rest element must be last")
				}
				pat.Elems = append(pat.Elems, jsast.At(el.Span(), &jsast.RestElem{Arg: p.toPattern(el.X, binding)}))
			default:
				pat.Elems = append(pat.Elems, p.toPattern(el, binding))
			}
		}
		return jsast.At(x.Span(), pat)
	case *jsast.AssignExpr:
		if x.Op != "=" {
			break
		}
		return jsast.At(x.Span(), &jsast.AssignPattern{Left: p.toPattern(x.Target, binding), Right: x.Value})
	case *jsast.ObjectPattern, *jsast.ArrayPattern, *jsast.AssignPattern, *jsast.RestElem:
		return x
	}
	if binding {
		p.errAt(diag.SynInvalidPattern, e.Span(), "invalid destructuring pattern")
	} else {
		p.errAt(diag.SynInvalidAssignTarget, e.Span(), "invalid assignment target")
	}
	return e
}

// ToBindingPattern converts an expression read outside a binding position,
// such as the alias list of a v-for, into a binding pattern. ok is false when
// some part of e cannot bind a name.
func ToBindingPattern(e jsast.Expr) (jsast.Expr, bool) {
	p := &Parser{}
	pat := p.toPattern(e, true)
	return pat, p.opts.CurrentErrors == 0
}
