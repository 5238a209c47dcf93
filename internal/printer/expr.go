package printer

import (
	"fmt"

	"jsxc/internal/jsast"
)

func (p *printer) print(s string) { p.w.WriteString(s) }

// wrap открывает скобки, если cond; возвращает функцию закрытия.
func (p *printer) wrap(cond bool) func() {
	if !cond {
		return func() {}
	}
	p.print("(")
	return func() { p.print(")") }
}

func (p *printer) expr(e jsast.Expr, lvl level) {
	switch x := e.(type) {
	case nil:
	case *jsast.Ident:
		p.print(x.Name)
	case *jsast.PrivateName:
		p.print("#" + x.Name)
	case *jsast.NullLit:
		p.print("null")
	case *jsast.BoolLit:
		if x.Value {
			p.print("true")
		} else {
			p.print("false")
		}
	case *jsast.NumberLit:
		text := x.Raw
		if text == "" {
			text = Number(x.Value)
		}
		neg := text != "" && text[0] == '-'
		defer p.wrap(neg && lvl >= lPrefix)()
		p.print(text)
	case *jsast.BigIntLit:
		p.print(x.Raw)
	case *jsast.StringLit:
		if x.Raw != "" {
			p.print(x.Raw)
		} else {
			p.print(Quote(x.Value))
		}
	case *jsast.RegExpLit:
		p.print("/" + x.Pattern + "/" + x.Flags)
	case *jsast.TemplateLit:
		p.template(x)
	case *jsast.TaggedTemplate:
		p.expr(x.Tag, lCall)
		p.template(x.Quasi)
	case *jsast.ThisExpr:
		p.print("this")
	case *jsast.SuperExpr:
		p.print("super")
	case *jsast.ArrayLit:
		p.array(x.Elems)
	case *jsast.ArrayPattern:
		p.array(x.Elems)
	case *jsast.ObjectLit:
		p.object(x.Props, nil)
	case *jsast.ObjectPattern:
		p.object(x.Props, x.Rest)
	case *jsast.FuncExpr:
		p.function(x.Fn)
	case *jsast.ArrowFunc:
		defer p.wrap(lvl > lAssign)()
		p.arrow(x)
	case *jsast.ClassExpr:
		p.class(x.Class)
	case *jsast.UnaryExpr:
		defer p.wrap(lvl > lPrefix)()
		p.unary(x)
	case *jsast.UpdateExpr:
		if x.Prefix {
			defer p.wrap(lvl > lPrefix)()
			p.print(x.Op)
			p.expr(x.X, lPrefix)
		} else {
			defer p.wrap(lvl > lPostfix)()
			p.expr(x.X, lPostfix)
			p.print(x.Op)
		}
	case *jsast.AwaitExpr:
		defer p.wrap(lvl > lPrefix)()
		p.print("await ")
		p.expr(x.X, lPrefix)
	case *jsast.BinaryExpr:
		p.binary(x, lvl)
	case *jsast.AssignExpr:
		defer p.wrap(lvl > lAssign)()
		p.expr(x.Target, lAssign+1)
		p.print(" " + x.Op + " ")
		p.expr(x.Value, lAssign)
	case *jsast.AssignPattern:
		defer p.wrap(lvl > lAssign)()
		p.expr(x.Left, lAssign+1)
		p.print(" = ")
		p.expr(x.Right, lAssign)
	case *jsast.CondExpr:
		defer p.wrap(lvl > lConditional)()
		p.expr(x.Test, lNullish)
		p.print(" ? ")
		p.expr(x.Cons, lAssign)
		p.print(" : ")
		p.expr(x.Alt, lAssign)
	case *jsast.CallExpr:
		defer p.wrap(lvl > lCall)()
		p.expr(x.Callee, lPostfix)
		if x.Optional {
			p.print("?.")
		}
		p.args(x.Args)
	case *jsast.NewExpr:
		defer p.wrap(lvl > lNew)()
		p.print("new ")
		p.expr(x.Callee, calleeLevel(x.Callee))
		p.args(x.Args)
	case *jsast.MemberExpr:
		defer p.wrap(lvl > lMember)()
		p.memberObject(x.Object)
		switch {
		case x.Computed && x.Optional:
			p.print("?.[")
		case x.Computed:
			p.print("[")
		case x.Optional:
			p.print("?.")
		default:
			p.print(".")
		}
		p.expr(x.Property, lLowest)
		if x.Computed {
			p.print("]")
		}
	case *jsast.SeqExpr:
		defer p.wrap(lvl > lComma)()
		for i, item := range x.Exprs {
			if i > 0 {
				p.print(", ")
			}
			p.expr(item, lAssign)
		}
	case *jsast.SpreadElem:
		p.print("...")
		p.expr(x.X, lAssign)
	case *jsast.RestElem:
		p.print("...")
		p.expr(x.Arg, lAssign)
	case *jsast.YieldExpr:
		defer p.wrap(lvl > lYield)()
		p.print("yield")
		if x.Delegate {
			p.print("*")
		}
		if x.X != nil {
			p.print(" ")
			p.expr(x.X, lYield)
		}
	case *jsast.MetaProperty:
		p.print(x.Meta + "." + x.Property)
	case *jsast.ImportCall:
		p.print("import(")
		p.expr(x.Source, lAssign)
		p.print(")")
	case *jsast.ParenExpr:
		p.print("(")
		p.expr(x.X, lLowest)
		p.print(")")
	case *jsast.JSXElement, *jsast.JSXFragment:
		if p.opt.JSX != nil {
			p.print(p.opt.JSX(x))
			return
		}
		p.jsx(x)
	case *jsast.JSXEmptyExpr:
	case *jsast.JSXExprContainer, *jsast.JSXText, *jsast.JSXSpreadChild,
		*jsast.JSXIdent, *jsast.JSXMemberExpr, *jsast.JSXNamespacedName:
		p.jsx(x)
	default:
		panic(fmt.Sprintf("printer: unexpected expression %T", e))
	}
}

func (p *printer) unary(x *jsast.UnaryExpr) {
	p.print(x.Op)
	switch x.Op {
	case "typeof", "void", "delete":
		p.print(" ")
	case "+", "-":
		// `- -x`, `+ ++x`: без пробела получится другой токен
		switch inner := x.X.(type) {
		case *jsast.UnaryExpr:
			if inner.Op == x.Op {
				p.print(" ")
			}
		case *jsast.UpdateExpr:
			if inner.Prefix && inner.Op[:1] == x.Op {
				p.print(" ")
			}
		case *jsast.NumberLit:
			if inner.Raw == "" && inner.Value < 0 && x.Op == "-" {
				p.print(" ")
			}
		}
	}
	p.expr(x.X, lPrefix)
}

func (p *printer) binary(x *jsast.BinaryExpr, lvl level) {
	own := binaryLevel(x.Op)
	defer p.wrap(lvl > own)()

	leftLvl, rightLvl := own, own+1
	if x.Op == "**" {
		leftLvl, rightLvl = own+1, own
	}
	// `??` нельзя смешивать с || и && без скобок
	mixed := func(e jsast.Expr) bool {
		b, ok := e.(*jsast.BinaryExpr)
		if !ok {
			return false
		}
		return (x.Op == "??" && isLogical(b.Op)) || (isLogical(x.Op) && b.Op == "??")
	}
	switch {
	case mixed(x.X):
		leftLvl = lMember
	case x.Op == "**":
		switch x.X.(type) {
		case *jsast.UnaryExpr, *jsast.AwaitExpr:
			leftLvl = lMember
		}
	}
	if mixed(x.Y) {
		rightLvl = lMember
	}

	p.expr(x.X, leftLvl)
	p.print(" " + x.Op + " ")
	p.expr(x.Y, rightLvl)
}

// memberObject: `1..toString` и `new a().b` требуют скобок.
func (p *printer) memberObject(obj jsast.Expr) {
	if n, ok := obj.(*jsast.NumberLit); ok {
		text := n.Raw
		if text == "" {
			text = Number(n.Value)
		}
		simple := true
		for i := 0; i < len(text); i++ {
			if text[i] < '0' || text[i] > '9' {
				simple = false
			}
		}
		if simple {
			p.print("(" + text + ")")
			return
		}
	}
	p.expr(obj, lPostfix)
}

// calleeLevel: вызов внутри callee у new должен быть в скобках.
func calleeLevel(e jsast.Expr) level {
	for {
		switch x := e.(type) {
		case *jsast.CallExpr:
			return lMember + 1
		case *jsast.MemberExpr:
			if x.Optional {
				return lMember + 1
			}
			e = x.Object
		default:
			return lNew
		}
	}
}

func (p *printer) args(list []jsast.Expr) {
	p.print("(")
	for i, a := range list {
		if i > 0 {
			p.print(", ")
		}
		p.expr(a, lAssign)
	}
	p.print(")")
}

func (p *printer) array(elems []jsast.Expr) {
	p.print("[")
	for i, el := range elems {
		if i > 0 {
			p.print(", ")
		}
		if el != nil {
			p.expr(el, lAssign)
		}
	}
	if n := len(elems); n > 0 && elems[n-1] == nil {
		p.print(",")
	}
	p.print("]")
}

func (p *printer) object(props []*jsast.Property, rest *jsast.RestElem) {
	if len(props) == 0 && rest == nil {
		p.print("{}")
		return
	}
	p.print("{ ")
	for i, prop := range props {
		if i > 0 {
			p.print(", ")
		}
		p.property(prop)
	}
	if rest != nil {
		if len(props) > 0 {
			p.print(", ")
		}
		p.expr(rest, lAssign)
	}
	p.print(" }")
}

func (p *printer) property(prop *jsast.Property) {
	switch prop.Kind {
	case jsast.PropSpread:
		p.print("...")
		p.expr(prop.Value, lAssign)
		return
	case jsast.PropGet, jsast.PropSet, jsast.PropMethod:
		fn, _ := prop.Value.(*jsast.FuncExpr)
		if fn == nil {
			break
		}
		switch prop.Kind {
		case jsast.PropGet:
			p.print("get ")
		case jsast.PropSet:
			p.print("set ")
		default:
			if fn.Fn.Async {
				p.print("async ")
			}
			if fn.Fn.Generator {
				p.print("*")
			}
		}
		p.propertyKey(prop.Key, prop.Computed)
		p.functionTail(fn.Fn)
		return
	}
	if prop.Shorthand && shorthandHolds(prop) {
		p.expr(prop.Value, lAssign)
		return
	}
	p.propertyKey(prop.Key, prop.Computed)
	p.print(": ")
	p.expr(prop.Value, lAssign)
}

// shorthandHolds: `{ a }` остаётся коротким, только если значение всё ещё `a`.
func shorthandHolds(prop *jsast.Property) bool {
	key, ok := prop.Key.(*jsast.Ident)
	if !ok {
		return false
	}
	v := prop.Value
	switch d := v.(type) {
	case *jsast.AssignPattern:
		v = d.Left
	case *jsast.AssignExpr:
		v = d.Target
	}
	id, ok := v.(*jsast.Ident)
	return ok && id.Name == key.Name
}

func (p *printer) propertyKey(key jsast.Expr, computed bool) {
	if computed {
		p.print("[")
		p.expr(key, lAssign)
		p.print("]")
		return
	}
	p.expr(key, lMember)
}

func (p *printer) template(t *jsast.TemplateLit) {
	p.print("`")
	for i, q := range t.Quasis {
		p.print(q.Raw)
		if i < len(t.Exprs) {
			p.print("${")
			p.expr(t.Exprs[i], lLowest)
			p.print("}")
		}
	}
	p.print("`")
}

func (p *printer) arrow(a *jsast.ArrowFunc) {
	if a.Async {
		p.print("async ")
	}
	if id, ok := singleIdent(a.Params); ok && !a.Async {
		p.print(id.Name)
	} else {
		p.params(a.Params)
	}
	p.print(" => ")
	if a.Body != nil {
		p.block(a.Body)
		return
	}
	if startsWithBrace(a.Expr) {
		p.print("(")
		p.expr(a.Expr, lComma)
		p.print(")")
		return
	}
	p.expr(a.Expr, lComma)
}

func singleIdent(params []jsast.Expr) (*jsast.Ident, bool) {
	if len(params) != 1 {
		return nil, false
	}
	id, ok := params[0].(*jsast.Ident)
	return id, ok
}

func (p *printer) params(params []jsast.Expr) {
	p.print("(")
	for i, prm := range params {
		if i > 0 {
			p.print(", ")
		}
		p.expr(prm, lAssign)
	}
	p.print(")")
}

func (p *printer) function(fn *jsast.Function) {
	if fn.Async {
		p.print("async ")
	}
	p.print("function")
	if fn.Generator {
		p.print("*")
	}
	if fn.ID != nil {
		p.print(" " + fn.ID.Name)
	}
	p.functionTail(fn)
}

func (p *printer) functionTail(fn *jsast.Function) {
	p.params(fn.Params)
	p.print(" ")
	p.block(fn.Body)
}

func (p *printer) class(cl *jsast.Class) {
	p.print("class")
	if cl.ID != nil {
		p.print(" " + cl.ID.Name)
	}
	if cl.Super != nil {
		p.print(" extends ")
		p.expr(cl.Super, lNew)
	}
	if len(cl.Members) == 0 {
		p.print(" {}")
		return
	}
	p.print(" {")
	p.w.IndentPush()
	for _, m := range cl.Members {
		p.w.Newline()
		p.classMember(m)
	}
	p.w.IndentPop()
	p.w.Newline()
	p.print("}")
}

func (p *printer) classMember(m *jsast.ClassMember) {
	if m.Static {
		p.print("static ")
	}
	if m.Kind == jsast.MemberStaticBlock {
		p.block(m.Body)
		return
	}
	fn, _ := m.Value.(*jsast.FuncExpr)
	switch m.Kind {
	case jsast.MemberGetter:
		p.print("get ")
	case jsast.MemberSetter:
		p.print("set ")
	case jsast.MemberMethod:
		if fn != nil && fn.Fn.Async {
			p.print("async ")
		}
		if fn != nil && fn.Fn.Generator {
			p.print("*")
		}
	}
	p.propertyKey(m.Key, m.Computed)
	if m.Kind == jsast.MemberField {
		if m.Value != nil {
			p.print(" = ")
			p.expr(m.Value, lAssign)
		}
		p.print(";")
		return
	}
	if fn != nil {
		p.functionTail(fn.Fn)
	}
}

// startsWithBrace: крайний левый токен выражения — `{`.
func startsWithBrace(e jsast.Expr) bool {
	switch leftmost(e).(type) {
	case *jsast.ObjectLit, *jsast.ObjectPattern:
		return true
	}
	return false
}

// leftmost возвращает выражение, с которого начнётся печать e (без учёта скобок).
func leftmost(e jsast.Expr) jsast.Expr {
	for {
		switch x := e.(type) {
		case *jsast.BinaryExpr:
			e = x.X
		case *jsast.AssignExpr:
			e = x.Target
		case *jsast.AssignPattern:
			e = x.Left
		case *jsast.CondExpr:
			e = x.Test
		case *jsast.CallExpr:
			e = x.Callee
		case *jsast.MemberExpr:
			e = x.Object
		case *jsast.TaggedTemplate:
			e = x.Tag
		case *jsast.SeqExpr:
			if len(x.Exprs) == 0 {
				return x
			}
			e = x.Exprs[0]
		case *jsast.UpdateExpr:
			if x.Prefix {
				return x
			}
			e = x.X
		default:
			return e
		}
	}
}
