package transform

import (
	"jsxc/internal/diag"
	"jsxc/internal/directive"
	"jsxc/internal/ir"
	"jsxc/internal/jsast"
	"jsxc/internal/parser"
)

func transformSlot(c *Context) func() {
	n := c.node
	dir := n.find("slot")
	switch {
	case n.kind == kindComponent:
		return transformComponentSlot(c, dir)
	case dir == nil:
		return nil
	case c.slotTemplate():
		return transformTemplateSlot(c, dir)
	}
	c.st.report(diag.TplVSlotMisplaced, dir.rec.Span)
	return nil
}

// transformComponentSlot collects the component children into the default
// slot (or the slot named by v-slot on the component).
func transformComponentSlot(c *Context, dir *attr) func() {
	n := c.node
	hasContent, hasTemplates := false, false
	for _, child := range n.children {
		if child.kind == kindFragment && child.el != nil && child.find("slot") != nil {
			hasTemplates = true
		} else {
			hasContent = true
		}
	}
	if dir != nil && hasTemplates {
		// слоты не строим вовсе, иначе их шаблоны останутся в прелюдии
		c.st.report(diag.TplVSlotMixedUsage, dir.rec.Span)
		c.skipChildren = true
		c.slots = &[]*ir.Slot{}
		return nil
	}

	var dirRec *directive.Record
	block := ir.NewBlock(n.el)
	if dir != nil {
		dirRec = dir.rec
		block.Props = slotProps(dirRec.Exp)
	}
	unbind := c.bindScope(block.Props)
	exit := c.enterBlock(block, false)
	collected := c.slots

	return func() {
		exit()
		unbind()
		slots := *collected
		if hasContent {
			name := slotName(dirRec)
			if s, ok := name.(*jsast.StringLit); ok && hasStaticSlot(slots, s.Value) {
				c.st.report(diag.TplVSlotExtraneousDefault, n.span)
			} else {
				registerSlot(&slots, name, block)
			}
		}
		if a := n.find("slots"); a != nil && a.rec.Exp != nil {
			slots = append(slots, &ir.Slot{Kind: ir.SlotExpression, Expr: a.rec.Exp})
		}
		c.slots = &slots
	}
}

// transformTemplateSlot handles `<template v-slot:name={props}>` under a
// component, including conditional and looped slot templates.
func transformTemplateSlot(c *Context, dir *attr) func() {
	n := c.node
	c.dynamic.Add(ir.FlagNonTemplate)
	slots := c.slots
	name := slotName(dir.rec)

	vFor := n.find("for")
	vIf := n.find("if", "else-if", "else")

	var loop *ir.For
	if vFor != nil {
		l, ok := c.parseFor(vFor.rec)
		if ok {
			loop = l
		}
	}

	block := ir.NewBlock(n.el)
	block.Props = slotProps(dir.rec.Exp)
	var unbind func()
	if loop != nil {
		unbind = c.bindScope(block.Props, loop.Value, loop.Key, loop.Index)
	} else {
		unbind = c.bindScope(block.Props)
	}
	drop := []*attr{dir}
	if vFor != nil {
		drop = append(drop, vFor)
	}
	if vIf != nil {
		drop = append(drop, vIf)
	}
	c.node = n.without(drop...)
	exit := c.enterBlock(block, loop != nil)
	done := func() {
		exit()
		unbind()
	}

	dynamic := &ir.Slot{Kind: ir.SlotDynamic, Name: name, Block: block}
	switch {
	case loop != nil:
		*slots = append(*slots, &ir.Slot{Kind: ir.SlotLoop, Name: name, Block: block, Loop: loop})
	case vIf != nil && vIf.rec.Name == "if":
		if vIf.rec.Exp == nil {
			c.st.report(diag.TplVIfNoExpression, vIf.rec.Span)
			registerSlot(slots, name, block)
			break
		}
		*slots = append(*slots, &ir.Slot{Kind: ir.SlotConditional, Condition: vIf.rec.Exp, Positive: dynamic})
	case vIf != nil:
		last := lastConditional(*slots)
		if last == nil {
			c.st.report(diag.TplVElseNoAdjacentIf, vIf.rec.Span)
			break
		}
		if vIf.rec.Name == "else" {
			last.Negative = dynamic
		} else if vIf.rec.Exp == nil {
			c.st.report(diag.TplVIfNoExpression, vIf.rec.Span)
		} else {
			last.Negative = &ir.Slot{Kind: ir.SlotConditional, Condition: vIf.rec.Exp, Positive: dynamic}
		}
	default:
		if s, ok := name.(*jsast.StringLit); ok && hasStaticSlot(*slots, s.Value) {
			c.st.report(diag.TplVSlotDuplicateNames, dir.rec.Span)
			c.skipChildren = true
			break
		}
		registerSlot(slots, name, block)
	}
	return done
}

// lastConditional returns the open end of the last conditional slot chain.
func lastConditional(slots []*ir.Slot) *ir.Slot {
	if len(slots) == 0 {
		return nil
	}
	s := slots[len(slots)-1]
	if s.Kind != ir.SlotConditional {
		return nil
	}
	for s.Negative != nil {
		if s.Negative.Kind != ir.SlotConditional {
			return nil
		}
		s = s.Negative
	}
	return s
}

func slotName(rec *directive.Record) jsast.Expr {
	if rec == nil || rec.Arg == nil {
		return &jsast.StringLit{Value: "default"}
	}
	if rec.Arg.IsStatic() {
		return jsast.At(rec.Arg.Span, &jsast.StringLit{Value: rec.Arg.Static})
	}
	return rec.Arg.Expr
}

// slotProps converts the v-slot value into a binding pattern.
func slotProps(e jsast.Expr) jsast.Expr {
	if e == nil {
		return nil
	}
	pat, ok := parser.ToBindingPattern(jsast.CloneExpr(e))
	if !ok {
		return nil
	}
	return pat
}

func hasStaticSlot(slots []*ir.Slot, name string) bool {
	for _, s := range slots {
		if s.Kind != ir.SlotStatic {
			continue
		}
		for _, ns := range s.Static {
			if ns.Name == name {
				return true
			}
		}
	}
	return false
}

func registerSlot(slots *[]*ir.Slot, name jsast.Expr, block *ir.Block) {
	s, ok := name.(*jsast.StringLit)
	if !ok {
		*slots = append(*slots, &ir.Slot{Kind: ir.SlotDynamic, Name: name, Block: block})
		return
	}
	for _, slot := range *slots {
		if slot.Kind == ir.SlotStatic {
			slot.Static = append(slot.Static, ir.NamedSlot{Name: s.Value, Block: block})
			return
		}
	}
	*slots = append(*slots, &ir.Slot{Kind: ir.SlotStatic, Static: []ir.NamedSlot{{Name: s.Value, Block: block}}})
}

// transformSlotOutlet compiles <slot name="x" {...props}>fallback</slot>.
func transformSlotOutlet(c *Context) func() {
	n := c.node
	if n.kind != kindSlotOutlet {
		return nil
	}
	id := c.reference()
	c.dynamic.Add(ir.FlagInsert | ir.FlagNonTemplate)

	var name jsast.Expr = &jsast.StringLit{Value: "default"}
	var rest []*attr
	for _, a := range n.attrs {
		if a.kind == directive.KindAttribute && a.rec.ArgName("") == "name" && a.rec.Exp != nil {
			name = a.rec.Exp
			continue
		}
		rest = append(rest, a)
	}
	props := c.componentProps(rest, id)

	op := &ir.SlotOutlet{ID: id, Name: name, Props: props, Once: c.inVOnce}
	c.dynamic.Operation = op
	if len(n.children) == 0 {
		c.node = &tnode{kind: kindFragment, span: n.span}
		return nil
	}
	op.Fallback = ir.NewBlock(n.el)
	c.node = &tnode{kind: kindFragment, span: n.span, children: n.children}
	return c.enterBlock(op.Fallback, false)
}
