package printer

import (
	"fmt"

	"jsxc/internal/jsast"
)

func (p *printer) stmts(list []jsast.Stmt) {
	for i, s := range list {
		if i > 0 {
			p.w.Newline()
		}
		p.stmt(s)
	}
}

func (p *printer) block(b *jsast.BlockStmt) {
	if b == nil || len(b.Body) == 0 {
		p.print("{}")
		return
	}
	p.print("{")
	p.w.IndentPush()
	p.w.Newline()
	p.stmts(b.Body)
	p.w.IndentPop()
	p.w.Newline()
	p.print("}")
}

// body печатает тело if/for/while: блок в строку, прочее — с отступом.
func (p *printer) body(s jsast.Stmt) {
	if b, ok := s.(*jsast.BlockStmt); ok {
		p.print(" ")
		p.block(b)
		return
	}
	if _, ok := s.(*jsast.EmptyStmt); ok {
		p.print(";")
		return
	}
	p.w.IndentPush()
	p.w.Newline()
	p.stmt(s)
	p.w.IndentPop()
}

func (p *printer) stmt(s jsast.Stmt) {
	switch x := s.(type) {
	case *jsast.ExprStmt:
		p.exprStmt(x.X)
	case *jsast.VarDecl:
		p.varDecl(x)
		p.print(";")
	case *jsast.FuncDecl:
		p.function(x.Fn)
	case *jsast.ClassDecl:
		p.class(x.Class)
	case *jsast.ReturnStmt:
		p.print("return")
		if x.X != nil {
			p.print(" ")
			p.expr(x.X, lLowest)
		}
		p.print(";")
	case *jsast.IfStmt:
		p.print("if (")
		p.expr(x.Test, lLowest)
		p.print(")")
		cons := x.Cons
		// `if (a) if (b) x; else y` — else иначе прилипнет к внутреннему if
		if inner, ok := cons.(*jsast.IfStmt); ok && x.Alt != nil && inner.Alt == nil {
			cons = jsast.At(inner.Span(), &jsast.BlockStmt{Body: []jsast.Stmt{inner}})
		}
		p.body(cons)
		if x.Alt != nil {
			if _, ok := cons.(*jsast.BlockStmt); ok {
				p.print(" ")
			} else {
				p.w.Newline()
			}
			p.print("else")
			if _, ok := x.Alt.(*jsast.IfStmt); ok {
				p.print(" ")
				p.stmt(x.Alt)
			} else {
				p.body(x.Alt)
			}
		}
	case *jsast.ForStmt:
		p.print("for (")
		switch init := x.Init.(type) {
		case *jsast.VarDecl:
			p.varDecl(init)
		case jsast.Expr:
			p.expr(init, lLowest)
		}
		p.print(";")
		if x.Test != nil {
			p.print(" ")
			p.expr(x.Test, lLowest)
		}
		p.print(";")
		if x.Update != nil {
			p.print(" ")
			p.expr(x.Update, lLowest)
		}
		p.print(")")
		p.body(x.Body)
	case *jsast.ForInStmt:
		p.print("for ")
		if x.Await {
			p.print("await ")
		}
		p.print("(")
		switch left := x.Left.(type) {
		case *jsast.VarDecl:
			p.varDecl(left)
		case jsast.Expr:
			p.expr(left, lPostfix)
		}
		if x.Of {
			p.print(" of ")
			p.expr(x.Right, lAssign)
		} else {
			p.print(" in ")
			p.expr(x.Right, lLowest)
		}
		p.print(")")
		p.body(x.Body)
	case *jsast.WhileStmt:
		p.print("while (")
		p.expr(x.Test, lLowest)
		p.print(")")
		p.body(x.Body)
	case *jsast.DoWhileStmt:
		p.print("do")
		p.body(x.Body)
		if _, ok := x.Body.(*jsast.BlockStmt); ok {
			p.print(" ")
		} else {
			p.w.Newline()
		}
		p.print("while (")
		p.expr(x.Test, lLowest)
		p.print(");")
	case *jsast.BlockStmt:
		p.block(x)
	case *jsast.TryStmt:
		p.print("try ")
		p.block(x.Block)
		if h := x.Handler; h != nil {
			p.print(" catch ")
			if h.Param != nil {
				p.print("(")
				p.expr(h.Param, lLowest)
				p.print(") ")
			}
			p.block(h.Body)
		}
		if x.Finalizer != nil {
			p.print(" finally ")
			p.block(x.Finalizer)
		}
	case *jsast.ThrowStmt:
		p.print("throw ")
		p.expr(x.X, lLowest)
		p.print(";")
	case *jsast.BreakStmt:
		p.print("break")
		if x.Label != nil {
			p.print(" " + x.Label.Name)
		}
		p.print(";")
	case *jsast.ContinueStmt:
		p.print("continue")
		if x.Label != nil {
			p.print(" " + x.Label.Name)
		}
		p.print(";")
	case *jsast.LabeledStmt:
		p.print(x.Label.Name + ":")
		p.body(x.Body)
	case *jsast.SwitchStmt:
		p.print("switch (")
		p.expr(x.Disc, lLowest)
		p.print(") {")
		p.w.IndentPush()
		for _, c := range x.Cases {
			p.w.Newline()
			if c.Test != nil {
				p.print("case ")
				p.expr(c.Test, lLowest)
				p.print(":")
			} else {
				p.print("default:")
			}
			p.w.IndentPush()
			for _, s := range c.Body {
				p.w.Newline()
				p.stmt(s)
			}
			p.w.IndentPop()
		}
		p.w.IndentPop()
		p.w.Newline()
		p.print("}")
	case *jsast.EmptyStmt:
		p.print(";")
	case *jsast.DebuggerStmt:
		p.print("debugger;")
	case *jsast.ImportDecl:
		p.importDecl(x)
	case *jsast.ExportDecl:
		p.print("export ")
		p.stmt(x.Decl)
	case *jsast.ExportDefault:
		p.print("export default ")
		switch d := x.Decl.(type) {
		case jsast.Stmt:
			p.stmt(d)
		case jsast.Expr:
			p.exprStmt(d)
		}
	case *jsast.ExportNamed:
		p.print("export {")
		for i, spec := range x.Specs {
			if i > 0 {
				p.print(",")
			}
			p.print(" " + spec.Local)
			if spec.Exported != spec.Local {
				p.print(" as " + spec.Exported)
			}
		}
		if len(x.Specs) > 0 {
			p.print(" ")
		}
		p.print("}")
		if x.Source != nil {
			p.print(" from ")
			p.expr(x.Source, lLowest)
		}
		p.print(";")
	case *jsast.ExportAll:
		p.print("export *")
		if x.Exported != "" {
			p.print(" as " + x.Exported)
		}
		p.print(" from ")
		p.expr(x.Source, lLowest)
		p.print(";")
	default:
		panic(fmt.Sprintf("printer: unexpected statement %T", s))
	}
}

// exprStmt: выражение, начинающееся с `{`, `function` или `class`, берётся в скобки.
func (p *printer) exprStmt(e jsast.Expr) {
	switch leftmost(e).(type) {
	case *jsast.ObjectLit, *jsast.ObjectPattern, *jsast.FuncExpr, *jsast.ClassExpr:
		p.print("(")
		p.expr(e, lLowest)
		p.print(");")
		return
	}
	p.expr(e, lLowest)
	p.print(";")
}

func (p *printer) varDecl(d *jsast.VarDecl) {
	p.print(d.Kind + " ")
	for i, decl := range d.Decls {
		if i > 0 {
			p.print(", ")
		}
		p.expr(decl.Target, lAssign)
		if decl.Init != nil {
			p.print(" = ")
			p.expr(decl.Init, lAssign)
		}
	}
}

func (p *printer) importDecl(d *jsast.ImportDecl) {
	p.print("import ")
	var named []*jsast.ImportSpec
	wrote := false
	for _, spec := range d.Specs {
		switch spec.Kind {
		case jsast.ImportDefault:
			p.print(spec.Local.Name)
			wrote = true
		case jsast.ImportNamespace:
			if wrote {
				p.print(", ")
			}
			p.print("* as " + spec.Local.Name)
			wrote = true
		default:
			named = append(named, spec)
		}
	}
	if len(named) > 0 {
		if wrote {
			p.print(", ")
		}
		p.print("{ ")
		for i, spec := range named {
			if i > 0 {
				p.print(", ")
			}
			p.print(ImportSpecifier(spec.Imported, spec.Local.Name))
		}
		p.print(" }")
		wrote = true
	}
	if wrote {
		p.print(" from ")
	}
	p.expr(d.Source, lLowest)
	p.print(";")
}

// ImportSpecifier prints one named import: `a` or `a as b`.
func ImportSpecifier(imported, local string) string {
	if imported == local {
		return imported
	}
	return imported + " as " + local
}
