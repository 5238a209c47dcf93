package transform

import (
	"jsxc/internal/diag"
	"jsxc/internal/htmltags"
	"jsxc/internal/ir"
	"jsxc/internal/jsast"
	"jsxc/internal/scope"
	"jsxc/internal/source"
)

// state is shared by every context of one program.
type state struct {
	opts   Options
	root   *ir.Root
	prog   *ir.Program
	nextID int
	// scopeVars are names bound by enclosing loops and slot props.
	scopeVars scope.Known
	hoisted   map[string]bool
}

func (st *state) increaseID() int {
	id := st.nextID
	st.nextID++
	return id
}

func (st *state) report(code diag.Code, sp source.Span) {
	if st.opts.Reporter == nil {
		return
	}
	diag.ReportError(st.opts.Reporter, code, sp, code.Title()).Emit()
}

// Context is the transform state of one node.
type Context struct {
	st     *state
	node   *tnode
	parent *Context
	index  int

	block            *ir.Block
	dynamic          *ir.DynamicInfo
	template         string
	childrenTemplate []string

	// slots collect the slots of the nearest component; shared with children.
	slots *[]*ir.Slot

	inVOnce      bool
	inVFor       int
	ns           htmltags.Namespace
	omit         OmitInfo
	omitEnd      bool
	singleRoot   bool
	skipChildren bool

	exits  []func()
	guards []*blockGuard
}

type blockGuard struct {
	done    bool
	restore func()
}

// create makes the context of child node n at position index.
func (c *Context) create(n *tnode, index int) *Context {
	cc := &Context{
		st:      c.st,
		node:    n,
		parent:  c,
		index:   index,
		block:   c.block,
		dynamic: ir.NewDynamic(),
		slots:   c.slots,
		inVOnce: c.inVOnce,
		inVFor:  c.inVFor,
	}
	if c.parent == nil && len(c.node.children) == 1 {
		cc.singleRoot = true
	}
	if n.kind != kindElement {
		return cc
	}

	parentEl := c.node.kind == kindElement
	info := OmitInfo{Tag: n.tag, Last: index == len(c.node.children)-1}
	if parentEl {
		info.ParentTag = c.node.tag
		info.Root = !htmltags.IsValidNesting(c.node.tag, n.tag)
		info.Rightmost = c.omit.Rightmost && info.Last
		info.InlineAncestorNeedsClose = c.omit.InlineAncestorNeedsClose ||
			(htmltags.IsInlineTag(c.node.tag) && !c.omitEnd)
	} else {
		info.Root = true
	}
	if info.Root {
		info.Rightmost = true
		info.InlineAncestorNeedsClose = false
	}
	cc.omit = info
	cc.omitEnd = c.st.opts.Abbreviate && !htmltags.IsVoidTag(n.tag) && CanOmitEndTag(info)

	switch {
	case n.tag == "svg":
		cc.ns = htmltags.NamespaceSVG
	case n.tag == "math":
		cc.ns = htmltags.NamespaceMathML
	case parentEl && c.node.tag == "foreignObject":
		cc.ns = htmltags.NamespaceHTML
	case parentEl && c.ns != htmltags.NamespaceHTML:
		cc.ns = c.ns
	case !parentEl:
		cc.ns = htmltags.NamespaceOf(n.tag)
	}
	return cc
}

// reference gives the current node an id.
func (c *Context) reference() int {
	if c.dynamic.ID != ir.NoNode {
		return c.dynamic.ID
	}
	c.dynamic.Add(ir.FlagReferenced)
	c.dynamic.ID = c.st.increaseID()
	return c.dynamic.ID
}

// registerTemplate stores the accumulated template of the node.
func (c *Context) registerTemplate(root bool) int {
	if c.template == "" {
		return ir.NoNode
	}
	idx := c.st.root.Templates.Add(ir.Template{Content: c.template, Root: root, Namespace: c.ns})
	c.dynamic.Template = idx
	return idx
}

func (c *Context) registerOperation(ops ...ir.Operation) {
	c.block.Operations = append(c.block.Operations, ops...)
}

// registerEffect adds op to an effect re-run when exprs change. Constant
// expressions and v-once subtrees run the operation once instead.
func (c *Context) registerEffect(exprs []jsast.Expr, op ir.Operation) {
	if c.inVOnce || c.constant(exprs...) {
		c.registerOperation(op)
		return
	}
	c.block.Effects = append(c.block.Effects, &ir.Effect{Expressions: exprs, Operations: []ir.Operation{op}})
}

func (c *Context) constant(exprs ...jsast.Expr) bool {
	for _, e := range exprs {
		if id, ok := e.(*jsast.Ident); ok && c.st.hoisted[id.Name] {
			continue
		}
		if !IsConstant(e) {
			return false
		}
	}
	return true
}

// hoist lifts a constant literal to module scope and returns its name.
func (c *Context) hoist(e jsast.Expr) jsast.Expr {
	name := c.st.root.Hoists.Add(e)
	c.st.hoisted[name] = true
	return jsast.At(e.Span(), &jsast.Ident{Name: name})
}

// enterBlock makes b the current block. The returned func restores the
// outer block; the node transform also runs it on unwind if a transform
// bails out before its exit.
func (c *Context) enterBlock(b *ir.Block, isFor bool) func() {
	block, dynamic := c.block, c.dynamic
	template, children := c.template, c.childrenTemplate
	slots := c.slots

	c.block = b
	c.dynamic = b.Dynamic
	c.template = ""
	c.childrenTemplate = nil
	c.slots = &[]*ir.Slot{}
	if isFor {
		c.inVFor++
	}

	g := &blockGuard{}
	g.restore = func() {
		if g.done {
			return
		}
		g.done = true
		c.block, c.dynamic = block, dynamic
		c.template, c.childrenTemplate = template, children
		c.slots = slots
		if isFor {
			c.inVFor--
		}
	}
	c.guards = append(c.guards, g)
	return g.restore
}

func (c *Context) unwind() {
	for i := len(c.guards) - 1; i >= 0; i-- {
		c.guards[i].restore()
	}
	c.guards = nil
}

// wrapBlock replaces the node with a fragment around a copy without the
// consumed attributes and enters a fresh block for it.
func (c *Context) wrapBlock(consumed []*attr, isFor bool) (*ir.Block, func()) {
	inner := c.node.without(consumed...)
	wrapper := &tnode{kind: kindFragment, span: c.node.span, children: []*tnode{inner}}
	if inner.kind == kindFragment && len(inner.attrs) == 0 {
		wrapper.children = inner.children
	}
	c.node = wrapper
	var src jsast.Node
	if inner.el != nil {
		src = inner.el
	}
	block := ir.NewBlock(src)
	return block, c.enterBlock(block, isFor)
}

// bindScope adds names bound by pattern to the scope and returns the undo.
func (c *Context) bindScope(patterns ...jsast.Expr) func() {
	var names []string
	for _, p := range patterns {
		if p != nil {
			names = append(names, scope.BoundNames(p)...)
		}
	}
	for _, n := range names {
		c.st.scopeVars.Add(n)
	}
	return func() {
		for _, n := range names {
			c.st.scopeVars.Remove(n)
		}
	}
}
