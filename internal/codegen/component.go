package codegen

import (
	"strconv"
	"strings"

	"jsxc/internal/ir"
	"jsxc/internal/jsast"
	"jsxc/internal/printer"
)

func (g *generator) genComponent(op *ir.CreateComponent) string {
	var helper, tag string
	switch {
	case op.Dynamic:
		helper, tag = "createDynamicComponent", g.getter(op.TagExpr)
	case op.Asset:
		helper, tag = "createComponentWithFallback", componentVar(op.Tag)
	default:
		helper, tag = "createComponent", g.expr(op.TagExpr)
	}
	args := []string{tag, g.rawProps(op.Props), g.slots(op.Slots), "", ""}
	if op.Root {
		args[3] = "true"
	}
	if op.Once {
		args[4] = "true"
	}
	return call(g.helper(helper), args...)
}

// rawProps prints component props. The leading static group is a plain
// object of getters; spreads and later groups go to the `$` list in order.
func (g *generator) rawProps(sources []ir.PropsSource) string {
	if len(sources) == 0 {
		return ""
	}
	var entries, dynamic []string
	rest := sources
	if sources[0].Spread == nil {
		entries = g.propEntries(sources[0].Props)
		rest = sources[1:]
	}
	for _, s := range rest {
		switch {
		case s.Spread != nil && s.Handlers:
			dynamic = append(dynamic, "() => ("+call(g.helper("toHandlers"), g.expr(s.Spread))+")")
		case s.Spread != nil:
			dynamic = append(dynamic, g.getter(s.Spread))
		default:
			dynamic = append(dynamic, "{ "+strings.Join(g.propEntries(s.Props), ", ")+" }")
		}
	}
	if len(dynamic) > 0 {
		entries = append(entries, "$: ["+strings.Join(dynamic, ", ")+"]")
	}
	return "{ " + strings.Join(entries, ", ") + " }"
}

func (g *generator) propEntries(props []*ir.Prop) []string {
	out := make([]string, 0, len(props))
	for _, p := range props {
		key := propKey(p.Key)
		switch {
		case p.KeyExpr != nil && p.Handler && !p.Model:
			key = "[" + call(g.helper("toHandlerKey"), g.expr(p.KeyExpr)) + "]"
		case p.KeyExpr != nil:
			key = "[" + g.expr(p.KeyExpr) + "]"
		}
		out = append(out, key+": "+g.propGetter(p))
	}
	return out
}

func (g *generator) propGetter(p *ir.Prop) string {
	switch {
	case p.Handler && p.Model:
		return "() => " + g.modelSetter(p.Values[0])
	case p.Handler:
		hs := make([]string, len(p.Values))
		for i, v := range p.Values {
			h := g.expr(v)
			if len(p.HandlerModifiers.NonKeys) > 0 || len(p.HandlerModifiers.Keys) > 0 {
				h = g.handler(v, p.HandlerModifiers.NonKeys, p.HandlerModifiers.Keys)
			}
			hs[i] = h
		}
		if len(hs) == 1 {
			return "() => " + hs[0]
		}
		return "() => [" + strings.Join(hs, ", ") + "]"
	}
	return "() => (" + g.propValue(p) + ")"
}

// slots prints the slots object of a component: static names as
// properties, everything decided at runtime in the `$` list.
func (g *generator) slots(slots []*ir.Slot) string {
	if len(slots) == 0 {
		return ""
	}
	var entries, dynamic []string
	for _, s := range slots {
		switch s.Kind {
		case ir.SlotStatic:
			for _, ns := range s.Static {
				entries = append(entries, propKey(ns.Name)+": "+g.slotFn(ns.Block))
			}
		case ir.SlotDynamic:
			dynamic = append(dynamic, "() => ("+g.dynamicSlot(s)+")")
		case ir.SlotLoop:
			dynamic = append(dynamic, "() => ("+g.loopSlot(s)+")")
		case ir.SlotConditional:
			dynamic = append(dynamic, "() => ("+g.conditionalSlot(s)+")")
		case ir.SlotExpression:
			dynamic = append(dynamic, g.getter(s.Expr))
		}
	}
	if len(dynamic) > 0 {
		entries = append(entries, "$: ["+strings.Join(dynamic, ", ")+"]")
	}
	return "{ " + strings.Join(entries, ", ") + " }"
}

func (g *generator) dynamicSlot(s *ir.Slot) string {
	return "{ name: " + g.expr(s.Name) + ", fn: " + g.slotFn(s.Block) + " }"
}

func (g *generator) loopSlot(s *ir.Slot) string {
	loop := s.Loop
	var params []string
	for _, p := range []jsast.Expr{loop.Value, loop.Key, loop.Index} {
		if p == nil {
			break
		}
		params = append(params, printer.Expr(p, g.opts.Printer))
	}
	source := g.expr(loop.Source)
	pop := g.shadow(loop.Value, loop.Key, loop.Index)
	defer pop()
	render := "(" + strings.Join(params, ", ") + ") => (" + g.dynamicSlot(s) + ")"
	return call(g.helper("createForSlots"), source, render)
}

func (g *generator) conditionalSlot(s *ir.Slot) string {
	neg := "void 0"
	switch {
	case s.Negative == nil:
	case s.Negative.Kind == ir.SlotConditional:
		neg = g.conditionalSlot(s.Negative)
	default:
		neg = g.dynamicSlot(s.Negative)
	}
	return g.expr(s.Condition) + " ? " + g.dynamicSlot(s.Positive) + " : " + neg
}

// slotFn prints the render function of a slot. Destructured slot props
// are read through the props object so they stay reactive.
func (g *generator) slotFn(b *ir.Block) string {
	params := "()"
	m := make(map[string]jsast.Expr)
	if b.Props != nil {
		name := "_slotProps" + strconv.Itoa(g.slotDepth)
		g.bindPaths(m, b.Props, &jsast.Ident{Name: name})
		params = "(" + name + ")"
	}
	g.slotDepth++
	pop := g.pushScope(m)
	fn := g.fn(params, g.block(b))
	pop()
	g.slotDepth--
	if b.HasComponentOrSlot() {
		fn = call(g.helper("withVaporCtx"), fn)
	}
	return fn
}

func (g *generator) genSlotOutlet(op *ir.SlotOutlet) string {
	name := g.getter(op.Name)
	if s, ok := op.Name.(*jsast.StringLit); ok {
		name = printer.Quote(s.Value)
	}
	fallback := ""
	if op.Fallback != nil {
		fallback = g.fn("()", g.block(op.Fallback))
	}
	args := []string{name, g.rawProps(op.Props), fallback}
	if op.Once {
		args = append(args, "undefined", "true")
	}
	return call(g.helper("createSlot"), args...)
}
