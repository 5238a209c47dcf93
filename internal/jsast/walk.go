package jsast

// Cursor describes the node currently visited by Walk.
type Cursor struct {
	Node     Node
	Parent   Node
	slot     *Expr
	replaced bool
}

// CanReplace reports whether the node sits in an expression slot.
func (c *Cursor) CanReplace() bool { return c.slot != nil }

// Replace swaps the visited expression for e inside its parent.
// Children of the replacement are not visited.
func (c *Cursor) Replace(e Expr) {
	if c.slot == nil {
		panic("jsast: Replace on a node outside an expression slot")
	}
	*c.slot = e
	c.Node = e
	c.replaced = true
}

// Visitor hooks for Walk. Enter returning false skips the children.
type Visitor struct {
	Enter func(c *Cursor) bool
	Leave func(c *Cursor)
}

// Walk visits root and its descendants in source order.
func Walk(root Node, v Visitor) {
	if root == nil {
		return
	}
	w := walker{v: v}
	if e, ok := root.(Expr); ok {
		w.visit(e, &e, nil)
		return
	}
	w.visit(root, nil, nil)
}

// WalkExpr is Walk for the expression stored in *slot; a replaced root is
// written back to *slot.
func WalkExpr(slot *Expr, v Visitor) {
	if slot == nil || *slot == nil {
		return
	}
	w := walker{v: v}
	w.visit(*slot, slot, nil)
}

// Inspect calls fn for every node; returning false skips the node's children.
func Inspect(root Node, fn func(Node) bool) {
	Walk(root, Visitor{Enter: func(c *Cursor) bool { return fn(c.Node) }})
}

type walker struct {
	v Visitor
}

func (w *walker) expr(slot *Expr, parent Node) {
	if *slot == nil {
		return
	}
	w.visit(*slot, slot, parent)
}

func (w *walker) exprs(list []Expr, parent Node) {
	for i := range list {
		w.expr(&list[i], parent)
	}
}

// nodeField visits a Node-typed field that may hold an expression.
func (w *walker) nodeField(field *Node, parent Node) {
	if *field == nil {
		return
	}
	if e, ok := (*field).(Expr); ok {
		w.visit(e, &e, parent)
		*field = e
		return
	}
	w.visit(*field, nil, parent)
}

func (w *walker) stmts(list []Stmt, parent Node) {
	for _, s := range list {
		if s != nil {
			w.visit(s, nil, parent)
		}
	}
}

func (w *walker) block(b *BlockStmt, parent Node) {
	if b != nil {
		w.visit(b, nil, parent)
	}
}

func (w *walker) ident(id *Ident, parent Node) {
	if id != nil {
		w.visit(id, nil, parent)
	}
}

func (w *walker) visit(n Node, slot *Expr, parent Node) {
	c := &Cursor{Node: n, Parent: parent, slot: slot}
	descend := true
	if w.v.Enter != nil {
		descend = w.v.Enter(c)
	}
	if c.replaced {
		descend = false
	}
	if descend {
		w.children(n)
	}
	if w.v.Leave != nil {
		w.v.Leave(c)
	}
}

func (w *walker) children(n Node) {
	switch n := n.(type) {
	case *TemplateLit:
		w.exprs(n.Exprs, n)
	case *TaggedTemplate:
		w.expr(&n.Tag, n)
		if n.Quasi != nil {
			w.visit(n.Quasi, nil, n)
		}
	case *ArrayLit:
		w.exprs(n.Elems, n)
	case *ObjectLit:
		for _, p := range n.Props {
			w.visit(p, nil, n)
		}
	case *Property:
		if n.Key != nil {
			w.expr(&n.Key, n)
		}
		w.expr(&n.Value, n)
	case *FuncExpr:
		w.visit(n.Fn, nil, n)
	case *Function:
		w.ident(n.ID, n)
		w.exprs(n.Params, n)
		w.block(n.Body, n)
	case *ArrowFunc:
		w.exprs(n.Params, n)
		if n.Body != nil {
			w.block(n.Body, n)
		} else {
			w.expr(&n.Expr, n)
		}
	case *ClassExpr:
		w.visit(n.Class, nil, n)
	case *ClassDecl:
		w.visit(n.Class, nil, n)
	case *Class:
		w.ident(n.ID, n)
		w.expr(&n.Super, n)
		for _, m := range n.Members {
			w.visit(m, nil, n)
		}
	case *ClassMember:
		if n.Key != nil {
			w.expr(&n.Key, n)
		}
		w.expr(&n.Value, n)
		w.block(n.Body, n)
	case *UnaryExpr:
		w.expr(&n.X, n)
	case *UpdateExpr:
		w.expr(&n.X, n)
	case *BinaryExpr:
		w.expr(&n.X, n)
		w.expr(&n.Y, n)
	case *AssignExpr:
		w.expr(&n.Target, n)
		w.expr(&n.Value, n)
	case *CondExpr:
		w.expr(&n.Test, n)
		w.expr(&n.Cons, n)
		w.expr(&n.Alt, n)
	case *CallExpr:
		w.expr(&n.Callee, n)
		w.exprs(n.Args, n)
	case *NewExpr:
		w.expr(&n.Callee, n)
		w.exprs(n.Args, n)
	case *MemberExpr:
		w.expr(&n.Object, n)
		w.expr(&n.Property, n)
	case *SeqExpr:
		w.exprs(n.Exprs, n)
	case *SpreadElem:
		w.expr(&n.X, n)
	case *YieldExpr:
		w.expr(&n.X, n)
	case *AwaitExpr:
		w.expr(&n.X, n)
	case *ImportCall:
		w.expr(&n.Source, n)
	case *ParenExpr:
		w.expr(&n.X, n)
	case *ObjectPattern:
		for _, p := range n.Props {
			w.visit(p, nil, n)
		}
		if n.Rest != nil {
			w.visit(n.Rest, nil, n)
		}
	case *ArrayPattern:
		w.exprs(n.Elems, n)
	case *AssignPattern:
		w.expr(&n.Left, n)
		w.expr(&n.Right, n)
	case *RestElem:
		w.expr(&n.Arg, n)

	case *ExprStmt:
		w.expr(&n.X, n)
	case *VarDecl:
		for _, d := range n.Decls {
			w.visit(d, nil, n)
		}
	case *Declarator:
		w.expr(&n.Target, n)
		w.expr(&n.Init, n)
	case *FuncDecl:
		w.visit(n.Fn, nil, n)
	case *ReturnStmt:
		w.expr(&n.X, n)
	case *IfStmt:
		w.expr(&n.Test, n)
		w.visit(n.Cons, nil, n)
		if n.Alt != nil {
			w.visit(n.Alt, nil, n)
		}
	case *ForStmt:
		w.nodeField(&n.Init, n)
		w.expr(&n.Test, n)
		w.expr(&n.Update, n)
		w.visit(n.Body, nil, n)
	case *ForInStmt:
		w.nodeField(&n.Left, n)
		w.expr(&n.Right, n)
		w.visit(n.Body, nil, n)
	case *WhileStmt:
		w.expr(&n.Test, n)
		w.visit(n.Body, nil, n)
	case *DoWhileStmt:
		w.visit(n.Body, nil, n)
		w.expr(&n.Test, n)
	case *BlockStmt:
		w.stmts(n.Body, n)
	case *TryStmt:
		w.block(n.Block, n)
		if n.Handler != nil {
			w.visit(n.Handler, nil, n)
		}
		w.block(n.Finalizer, n)
	case *CatchClause:
		w.expr(&n.Param, n)
		w.block(n.Body, n)
	case *ThrowStmt:
		w.expr(&n.X, n)
	case *BreakStmt:
		w.ident(n.Label, n)
	case *ContinueStmt:
		w.ident(n.Label, n)
	case *LabeledStmt:
		w.ident(n.Label, n)
		w.visit(n.Body, nil, n)
	case *SwitchStmt:
		w.expr(&n.Disc, n)
		for _, c := range n.Cases {
			w.visit(c, nil, n)
		}
	case *SwitchCase:
		w.expr(&n.Test, n)
		w.stmts(n.Body, n)
	case *ImportDecl:
		for _, s := range n.Specs {
			w.visit(s, nil, n)
		}
	case *ImportSpec:
		w.ident(n.Local, n)
	case *ExportDecl:
		w.visit(n.Decl, nil, n)
	case *ExportDefault:
		w.nodeField(&n.Decl, n)
	case *Program:
		w.stmts(n.Body, n)

	case *JSXElement:
		w.expr(&n.Name, n)
		for _, a := range n.Attrs {
			w.visit(a, nil, n)
		}
		w.exprs(n.Children, n)
	case *JSXFragment:
		w.exprs(n.Children, n)
	case *JSXNamespacedName:
		w.visit(n.Namespace, nil, n)
		w.visit(n.Name, nil, n)
	case *JSXMemberExpr:
		w.expr(&n.Object, n)
		w.visit(n.Property, nil, n)
	case *JSXAttr:
		w.expr(&n.Name, n)
		w.expr(&n.Value, n)
	case *JSXSpreadAttr:
		w.expr(&n.X, n)
	case *JSXExprContainer:
		w.expr(&n.X, n)
	case *JSXSpreadChild:
		w.expr(&n.X, n)
	}
}
