package transform

import (
	"jsxc/internal/diag"
	"jsxc/internal/directive"
	"jsxc/internal/ir"
	"jsxc/internal/jsast"
	"jsxc/internal/parser"
)

func transformFor(c *Context) func() {
	n := c.node
	if !n.elementLike() {
		return nil
	}
	a := n.find("for")
	if a == nil || c.slotTemplate() {
		return nil
	}
	loop, ok := c.parseFor(a.rec)
	if !ok {
		c.node = n.without(a)
		return nil
	}

	consumed := []*attr{a}
	if k := n.reserved("key"); k != nil {
		loop.KeyProp = k.rec.Exp
		consumed = append(consumed, k)
	}
	isComponent := n.kind == kindComponent
	onlyChild := c.parent != nil && c.parent.node.kind == kindElement && len(c.parent.node.children) == 1

	id := c.reference()
	d := c.dynamic
	d.Add(ir.FlagNonTemplate | ir.FlagInsert)
	block, exit := c.wrapBlock(consumed, true)
	unbind := c.bindScope(loop.Value, loop.Key, loop.Index)

	loop.ID = id
	loop.Render = block
	loop.Once = c.inVOnce || IsConstant(loop.Source)
	loop.Component = isComponent
	loop.OnlyChild = onlyChild
	d.Operation = loop
	return func() {
		unbind()
		exit()
	}
}

// parseFor reads `(item, key, index) in source`.
func (c *Context) parseFor(rec *directive.Record) (*ir.For, bool) {
	if rec.Exp == nil {
		c.st.report(diag.TplVForNoExpression, rec.Span)
		return nil, false
	}
	bin, ok := unparen(rec.Exp).(*jsast.BinaryExpr)
	if !ok || bin.Op != "in" {
		c.st.report(diag.TplVForMalformed, rec.Span)
		return nil, false
	}
	var aliases []jsast.Expr
	left := bin.X
	if p, ok := left.(*jsast.ParenExpr); ok {
		left = p.X
	}
	if seq, ok := left.(*jsast.SeqExpr); ok {
		aliases = seq.Exprs
	} else {
		aliases = []jsast.Expr{left}
	}
	if len(aliases) == 0 || len(aliases) > 3 {
		c.st.report(diag.TplVForMalformed, rec.Span)
		return nil, false
	}

	patterns := make([]jsast.Expr, 3)
	for i, al := range aliases {
		pat, ok := parser.ToBindingPattern(jsast.CloneExpr(al))
		if !ok || pat == nil {
			c.st.report(diag.TplVForMalformed, al.Span())
			return nil, false
		}
		patterns[i] = pat
	}
	return &ir.For{Source: bin.Y, Value: patterns[0], Key: patterns[1], Index: patterns[2]}, true
}

// transformKey turns a keyed element outside of a loop into a fragment
// re-created when the key changes.
func transformKey(c *Context) func() {
	n := c.node
	if !n.elementLike() {
		return nil
	}
	a := n.reserved("key")
	if a == nil || a.rec.Exp == nil {
		return nil
	}
	id := c.reference()
	d := c.dynamic
	d.Add(ir.FlagNonTemplate | ir.FlagInsert)
	block, exit := c.wrapBlock([]*attr{a}, false)
	d.Operation = &ir.Key{ID: id, Value: a.rec.Exp, Block: block}
	return exit
}

// transformOnce handles v-once and v-memo. v-memo is a keyed fragment over
// its dependency list whose content renders once.
func transformOnce(c *Context) func() {
	n := c.node
	if !n.elementLike() {
		return nil
	}
	if a := n.find("once"); a != nil {
		c.inVOnce = true
		n = n.without(a)
		c.node = n
	}
	a := n.find("memo")
	if a == nil {
		return nil
	}
	if a.rec.Exp == nil {
		c.st.report(diag.TplVMemoNoExpression, a.rec.Span)
		c.node = n.without(a)
		return nil
	}
	id := c.reference()
	d := c.dynamic
	d.Add(ir.FlagNonTemplate | ir.FlagInsert)
	block, exit := c.wrapBlock([]*attr{a}, false)
	d.Operation = &ir.Key{ID: id, Value: a.rec.Exp, Block: block}
	once := c.inVOnce
	c.inVOnce = true
	return func() {
		c.inVOnce = once
		exit()
	}
}
