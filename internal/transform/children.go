package transform

import (
	"jsxc/internal/ir"
)

func transformChildren(c *Context) func() {
	n := c.node
	switch n.kind {
	case kindFragment, kindElement, kindComponent:
	default:
		return nil
	}
	if c.skipChildren || len(n.children) == 0 {
		return nil
	}
	if n.kind == kindElement && c.textContainer() {
		return nil
	}

	isFragment := n.kind != kindElement
	for i, child := range n.children {
		cc := c.create(child, i)
		transformNode(cc)
		d := cc.dynamic

		if isFragment {
			if !d.Has(ir.FlagNonTemplate) || d.Has(ir.FlagInsert) {
				cc.reference()
				cc.registerTemplate(true)
				c.block.Returns = append(c.block.Returns, d.ID)
			}
		} else {
			c.childrenTemplate = append(c.childrenTemplate, cc.template)
		}

		if d.HasDynamicChild || d.ID != ir.NoNode || d.Has(ir.FlagNonTemplate) || d.Has(ir.FlagInsert) {
			c.dynamic.HasDynamicChild = true
		}
		c.dynamic.Children = append(c.dynamic.Children, d)
	}

	if !isFragment {
		processDynamicChildren(c)
	}
	return nil
}

// processDynamicChildren positions inserted children of an element. A run
// of inserted children before a template child is anchored on a `<!>`
// placeholder, or prepended when nothing static precedes it; a trailing run
// is appended.
func processDynamicChildren(c *Context) {
	var run []*ir.DynamicInfo
	var lastInsert *ir.DynamicInfo
	staticCount, dynamicCount := 0, 0

	for i, child := range c.dynamic.Children {
		if child.Has(ir.FlagInsert) {
			run = append(run, child)
			lastInsert = child
		}
		if child.Has(ir.FlagNonTemplate) {
			continue
		}
		if len(run) > 0 {
			if staticCount > 0 {
				c.childrenTemplate[i-len(run)] = "<!>"
				anchor := c.st.increaseID()
				run[0].Promote(anchor)
				registerInsertion(c, run, anchor, false, 0)
			} else {
				registerInsertion(c, run, ir.AnchorPrepend, false, 0)
			}
			dynamicCount += len(run)
			run = nil
		}
		staticCount++
	}
	if len(run) > 0 {
		registerInsertion(c, run, ir.NoNode, true, staticCount+dynamicCount)
	}
	if lastInsert != nil && lastInsert.Operation != nil {
		lastInsert.Operation.Insertion().Last = true
	}
}

func registerInsertion(c *Context, run []*ir.DynamicInfo, anchor int, appendRun bool, logical int) {
	for _, child := range run {
		switch {
		case child.Template != ir.NoNode:
			// шаблон, вынесенный из-за недопустимой вложенности
			op := &ir.InsertNode{Elements: []int{child.ID}, Parent: c.reference(), Anchor: anchor}
			if appendRun {
				op.Anchor = ir.NoNode
			}
			c.registerOperation(op)
		case child.Operation != nil:
			ins := child.Operation.Insertion()
			ins.Set = true
			ins.Parent = c.reference()
			ins.Anchor = anchor
			ins.Append = appendRun
			ins.LogicalIndex = logical
		}
	}
}
