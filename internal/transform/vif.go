package transform

import (
	"jsxc/internal/diag"
	"jsxc/internal/ir"
)

func transformIf(c *Context) func() {
	n := c.node
	if !n.elementLike() {
		return nil
	}
	a := n.find("if", "else-if", "else")
	if a == nil || c.slotTemplate() {
		return nil
	}
	name, exp := a.rec.Name, a.rec.Exp

	if name != "else" && exp == nil {
		c.st.report(diag.TplVIfNoExpression, a.rec.Span)
		c.node = n.without(a)
		return nil
	}

	if name == "if" {
		id := c.reference()
		d := c.dynamic
		d.Add(ir.FlagNonTemplate | ir.FlagInsert)
		block, exit := c.wrapBlock([]*attr{a}, false)
		op := &ir.If{ID: id, Condition: exp, Positive: block, Once: c.inVOnce || IsConstant(exp)}
		d.Operation = op
		d.IfHead = op
		return exit
	}

	head := c.prevIf()
	last := head
	for last != nil && last.NegativeIf != nil {
		last = last.NegativeIf
	}
	if last == nil || last.Negative != nil {
		c.st.report(diag.TplVElseNoAdjacentIf, a.rec.Span)
		c.node = n.without(a)
		return nil
	}

	d := c.dynamic
	d.Add(ir.FlagNonTemplate)
	block, exit := c.wrapBlock([]*attr{a}, false)
	if name == "else" {
		last.Negative = block
	} else {
		last.NegativeIf = &ir.If{ID: ir.NoNode, Condition: exp, Positive: block, Once: c.inVOnce || IsConstant(exp)}
		d.IfHead = head
	}
	return exit
}

// prevIf returns the open conditional of the previous sibling.
func (c *Context) prevIf() *ir.If {
	if c.parent == nil || c.index == 0 {
		return nil
	}
	siblings := c.parent.dynamic.Children
	if c.index > len(siblings) {
		return nil
	}
	return siblings[c.index-1].IfHead
}

// slotTemplate: a <template v-slot> directly under a component; its
// v-if and v-for build dynamic slots instead of blocks.
func (c *Context) slotTemplate() bool {
	return c.node.kind == kindFragment && c.node.el != nil && c.node.find("slot") != nil &&
		c.parent != nil && c.parent.node.kind == kindComponent
}
