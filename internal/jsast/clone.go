package jsast

// CloneExpr returns a deep copy of e.
func CloneExpr(e Expr) Expr {
	if e == nil {
		return nil
	}
	c, _ := Clone(e).(Expr)
	return c
}

// Clone returns a deep copy of n. Spans are preserved.
func Clone(n Node) Node {
	if n == nil {
		return nil
	}
	switch n := n.(type) {
	case *Ident:
		c := *n
		return &c
	case *PrivateName:
		c := *n
		return &c
	case *NullLit:
		c := *n
		return &c
	case *BoolLit:
		c := *n
		return &c
	case *NumberLit:
		c := *n
		return &c
	case *BigIntLit:
		c := *n
		return &c
	case *StringLit:
		c := *n
		return &c
	case *RegExpLit:
		c := *n
		return &c
	case *TemplateElem:
		c := *n
		return &c
	case *ThisExpr:
		c := *n
		return &c
	case *SuperExpr:
		c := *n
		return &c
	case *MetaProperty:
		c := *n
		return &c
	case *JSXIdent:
		c := *n
		return &c
	case *JSXText:
		c := *n
		return &c
	case *JSXEmptyExpr:
		c := *n
		return &c
	case *EmptyStmt:
		c := *n
		return &c
	case *DebuggerStmt:
		c := *n
		return &c
	case *ExportSpec:
		c := *n
		return &c

	case *TemplateLit:
		c := *n
		c.Quasis = make([]*TemplateElem, len(n.Quasis))
		for i, q := range n.Quasis {
			qc := *q
			c.Quasis[i] = &qc
		}
		c.Exprs = cloneExprs(n.Exprs)
		return &c
	case *TaggedTemplate:
		c := *n
		c.Tag = CloneExpr(n.Tag)
		if n.Quasi != nil {
			c.Quasi = Clone(n.Quasi).(*TemplateLit)
		}
		return &c
	case *ArrayLit:
		c := *n
		c.Elems = cloneExprs(n.Elems)
		return &c
	case *ObjectLit:
		c := *n
		c.Props = cloneProps(n.Props)
		return &c
	case *Property:
		c := *n
		c.Key = CloneExpr(n.Key)
		c.Value = CloneExpr(n.Value)
		return &c
	case *FuncExpr:
		c := *n
		c.Fn = cloneFunction(n.Fn)
		return &c
	case *Function:
		return cloneFunction(n)
	case *ArrowFunc:
		c := *n
		c.Params = cloneExprs(n.Params)
		c.Body = cloneBlock(n.Body)
		c.Expr = CloneExpr(n.Expr)
		return &c
	case *ClassExpr:
		c := *n
		c.Class = cloneClass(n.Class)
		return &c
	case *Class:
		return cloneClass(n)
	case *ClassMember:
		c := *n
		c.Key = CloneExpr(n.Key)
		c.Value = CloneExpr(n.Value)
		c.Body = cloneBlock(n.Body)
		return &c
	case *UnaryExpr:
		c := *n
		c.X = CloneExpr(n.X)
		return &c
	case *UpdateExpr:
		c := *n
		c.X = CloneExpr(n.X)
		return &c
	case *BinaryExpr:
		c := *n
		c.X = CloneExpr(n.X)
		c.Y = CloneExpr(n.Y)
		return &c
	case *AssignExpr:
		c := *n
		c.Target = CloneExpr(n.Target)
		c.Value = CloneExpr(n.Value)
		return &c
	case *CondExpr:
		c := *n
		c.Test = CloneExpr(n.Test)
		c.Cons = CloneExpr(n.Cons)
		c.Alt = CloneExpr(n.Alt)
		return &c
	case *CallExpr:
		c := *n
		c.Callee = CloneExpr(n.Callee)
		c.Args = cloneExprs(n.Args)
		return &c
	case *NewExpr:
		c := *n
		c.Callee = CloneExpr(n.Callee)
		c.Args = cloneExprs(n.Args)
		return &c
	case *MemberExpr:
		c := *n
		c.Object = CloneExpr(n.Object)
		c.Property = CloneExpr(n.Property)
		return &c
	case *SeqExpr:
		c := *n
		c.Exprs = cloneExprs(n.Exprs)
		return &c
	case *SpreadElem:
		c := *n
		c.X = CloneExpr(n.X)
		return &c
	case *YieldExpr:
		c := *n
		c.X = CloneExpr(n.X)
		return &c
	case *AwaitExpr:
		c := *n
		c.X = CloneExpr(n.X)
		return &c
	case *ImportCall:
		c := *n
		c.Source = CloneExpr(n.Source)
		return &c
	case *ParenExpr:
		c := *n
		c.X = CloneExpr(n.X)
		return &c
	case *ObjectPattern:
		c := *n
		c.Props = cloneProps(n.Props)
		if n.Rest != nil {
			c.Rest = Clone(n.Rest).(*RestElem)
		}
		return &c
	case *ArrayPattern:
		c := *n
		c.Elems = cloneExprs(n.Elems)
		return &c
	case *AssignPattern:
		c := *n
		c.Left = CloneExpr(n.Left)
		c.Right = CloneExpr(n.Right)
		return &c
	case *RestElem:
		c := *n
		c.Arg = CloneExpr(n.Arg)
		return &c

	case *ExprStmt:
		c := *n
		c.X = CloneExpr(n.X)
		return &c
	case *VarDecl:
		c := *n
		c.Decls = make([]*Declarator, len(n.Decls))
		for i, d := range n.Decls {
			c.Decls[i] = Clone(d).(*Declarator)
		}
		return &c
	case *Declarator:
		c := *n
		c.Target = CloneExpr(n.Target)
		c.Init = CloneExpr(n.Init)
		return &c
	case *FuncDecl:
		c := *n
		c.Fn = cloneFunction(n.Fn)
		return &c
	case *ClassDecl:
		c := *n
		c.Class = cloneClass(n.Class)
		return &c
	case *ReturnStmt:
		c := *n
		c.X = CloneExpr(n.X)
		return &c
	case *IfStmt:
		c := *n
		c.Test = CloneExpr(n.Test)
		c.Cons = cloneStmt(n.Cons)
		c.Alt = cloneStmt(n.Alt)
		return &c
	case *ForStmt:
		c := *n
		c.Init = Clone(n.Init)
		c.Test = CloneExpr(n.Test)
		c.Update = CloneExpr(n.Update)
		c.Body = cloneStmt(n.Body)
		return &c
	case *ForInStmt:
		c := *n
		c.Left = Clone(n.Left)
		c.Right = CloneExpr(n.Right)
		c.Body = cloneStmt(n.Body)
		return &c
	case *WhileStmt:
		c := *n
		c.Test = CloneExpr(n.Test)
		c.Body = cloneStmt(n.Body)
		return &c
	case *DoWhileStmt:
		c := *n
		c.Body = cloneStmt(n.Body)
		c.Test = CloneExpr(n.Test)
		return &c
	case *BlockStmt:
		return cloneBlock(n)
	case *TryStmt:
		c := *n
		c.Block = cloneBlock(n.Block)
		if n.Handler != nil {
			c.Handler = Clone(n.Handler).(*CatchClause)
		}
		c.Finalizer = cloneBlock(n.Finalizer)
		return &c
	case *CatchClause:
		c := *n
		c.Param = CloneExpr(n.Param)
		c.Body = cloneBlock(n.Body)
		return &c
	case *ThrowStmt:
		c := *n
		c.X = CloneExpr(n.X)
		return &c
	case *BreakStmt:
		c := *n
		c.Label = cloneIdent(n.Label)
		return &c
	case *ContinueStmt:
		c := *n
		c.Label = cloneIdent(n.Label)
		return &c
	case *LabeledStmt:
		c := *n
		c.Label = cloneIdent(n.Label)
		c.Body = cloneStmt(n.Body)
		return &c
	case *SwitchStmt:
		c := *n
		c.Disc = CloneExpr(n.Disc)
		c.Cases = make([]*SwitchCase, len(n.Cases))
		for i, sc := range n.Cases {
			c.Cases[i] = Clone(sc).(*SwitchCase)
		}
		return &c
	case *SwitchCase:
		c := *n
		c.Test = CloneExpr(n.Test)
		c.Body = cloneStmts(n.Body)
		return &c
	case *ImportDecl:
		c := *n
		c.Specs = make([]*ImportSpec, len(n.Specs))
		for i, s := range n.Specs {
			c.Specs[i] = Clone(s).(*ImportSpec)
		}
		return &c
	case *ImportSpec:
		c := *n
		c.Local = cloneIdent(n.Local)
		return &c
	case *ExportDecl:
		c := *n
		c.Decl = cloneStmt(n.Decl)
		return &c
	case *ExportDefault:
		c := *n
		c.Decl = Clone(n.Decl)
		return &c
	case *ExportNamed:
		c := *n
		c.Specs = make([]*ExportSpec, len(n.Specs))
		for i, s := range n.Specs {
			sc := *s
			c.Specs[i] = &sc
		}
		return &c
	case *ExportAll:
		c := *n
		return &c
	case *Program:
		c := *n
		c.Body = cloneStmts(n.Body)
		return &c

	case *JSXElement:
		c := *n
		c.Name = CloneExpr(n.Name)
		c.Attrs = make([]Node, len(n.Attrs))
		for i, a := range n.Attrs {
			c.Attrs[i] = Clone(a)
		}
		c.Children = cloneExprs(n.Children)
		return &c
	case *JSXFragment:
		c := *n
		c.Children = cloneExprs(n.Children)
		return &c
	case *JSXNamespacedName:
		c := *n
		c.Namespace = Clone(n.Namespace).(*JSXIdent)
		c.Name = Clone(n.Name).(*JSXIdent)
		return &c
	case *JSXMemberExpr:
		c := *n
		c.Object = CloneExpr(n.Object)
		c.Property = Clone(n.Property).(*JSXIdent)
		return &c
	case *JSXAttr:
		c := *n
		c.Name = CloneExpr(n.Name)
		c.Value = CloneExpr(n.Value)
		return &c
	case *JSXSpreadAttr:
		c := *n
		c.X = CloneExpr(n.X)
		return &c
	case *JSXExprContainer:
		c := *n
		c.X = CloneExpr(n.X)
		return &c
	case *JSXSpreadChild:
		c := *n
		c.X = CloneExpr(n.X)
		return &c
	}
	panic("jsast: Clone of unknown node")
}

func cloneExprs(list []Expr) []Expr {
	if list == nil {
		return nil
	}
	out := make([]Expr, len(list))
	for i, e := range list {
		out[i] = CloneExpr(e)
	}
	return out
}

func cloneStmts(list []Stmt) []Stmt {
	if list == nil {
		return nil
	}
	out := make([]Stmt, len(list))
	for i, s := range list {
		out[i] = cloneStmt(s)
	}
	return out
}

func cloneStmt(s Stmt) Stmt {
	if s == nil {
		return nil
	}
	return Clone(s).(Stmt)
}

func cloneProps(list []*Property) []*Property {
	if list == nil {
		return nil
	}
	out := make([]*Property, len(list))
	for i, p := range list {
		out[i] = Clone(p).(*Property)
	}
	return out
}

func cloneIdent(id *Ident) *Ident {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func cloneBlock(b *BlockStmt) *BlockStmt {
	if b == nil {
		return nil
	}
	c := *b
	c.Body = cloneStmts(b.Body)
	return &c
}

func cloneFunction(fn *Function) *Function {
	if fn == nil {
		return nil
	}
	c := *fn
	c.ID = cloneIdent(fn.ID)
	c.Params = cloneExprs(fn.Params)
	c.Body = cloneBlock(fn.Body)
	return &c
}

func cloneClass(cl *Class) *Class {
	if cl == nil {
		return nil
	}
	c := *cl
	c.ID = cloneIdent(cl.ID)
	c.Super = CloneExpr(cl.Super)
	c.Members = make([]*ClassMember, len(cl.Members))
	for i, m := range cl.Members {
		c.Members[i] = Clone(m).(*ClassMember)
	}
	return &c
}
