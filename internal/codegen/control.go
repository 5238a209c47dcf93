package codegen

import (
	"strconv"
	"strings"

	"jsxc/internal/ir"
	"jsxc/internal/jsast"
	"jsxc/internal/printer"
)

// For flags understood by the runtime.
const (
	forFastRemove  = 1
	forIsComponent = 2
	forOnce        = 4
)

// blockOperation creates the nodes of a block operation, after the
// insertion state when the block is inserted into a parent.
func (g *generator) blockOperation(op ir.BlockOperation) []string {
	var out []string
	if ins := op.Insertion(); ins.Set {
		out = append(out, g.insertionState(ins))
	}
	var value string
	switch op := op.(type) {
	case *ir.If:
		value = g.genIf(op)
	case *ir.For:
		value = g.genFor(op)
	case *ir.Key:
		value = call(g.helper("createKeyedFragment"), g.getter(op.Value), g.fn("()", g.block(op.Block)))
	case *ir.CreateComponent:
		value = g.genComponent(op)
	case *ir.SlotOutlet:
		value = g.genSlotOutlet(op)
	case *ir.CreateNodes:
		args := make([]string, len(op.Values))
		for i, v := range op.Values {
			args[i] = g.nodeValue(v, op.Once)
		}
		value = call(g.helper("createNodes"), args...)
	}
	return append(out, "const "+nodeVar(op.NodeID())+" = "+value)
}

func (g *generator) genIf(op *ir.If) string {
	args := []string{g.getter(op.Condition), g.fn("()", g.block(op.Positive))}
	switch {
	case op.NegativeIf != nil:
		args = append(args, "() => "+g.genIf(op.NegativeIf))
	case op.Negative != nil:
		args = append(args, g.fn("()", g.block(op.Negative)))
	case op.Once:
		args = append(args, "undefined")
	}
	if op.Once {
		args = append(args, "true")
	}
	return call(g.helper("createIf"), args...)
}

// forParams names the render function parameters of loop depth d.
func forParams(d int) (item, key, index string) {
	s := strconv.Itoa(d)
	return "_for_item" + s, "_for_key" + s, "_for_index" + s
}

func (g *generator) genFor(op *ir.For) string {
	item, key, index := forParams(g.forDepth)
	m := make(map[string]jsast.Expr)
	g.bindPaths(m, op.Value, member(&jsast.Ident{Name: item}, "value"))
	g.bindPaths(m, op.Key, member(&jsast.Ident{Name: key}, "value"))
	g.bindPaths(m, op.Index, member(&jsast.Ident{Name: index}, "value"))

	params := item
	switch {
	case op.Index != nil:
		params = item + ", " + key + ", " + index
	case op.Key != nil:
		params = item + ", " + key
	}

	source := g.getter(op.Source)
	g.forDepth++
	pop := g.pushScope(m)
	render := g.fn("("+params+")", g.block(op.Render))
	pop()
	g.forDepth--

	keyFn := ""
	if op.KeyProp != nil {
		keyFn = g.keyFunc(op)
	}
	flags := 0
	if op.OnlyChild {
		flags |= forFastRemove
	}
	if op.Component {
		flags |= forIsComponent
	}
	if op.Once {
		flags |= forOnce
	}
	args := []string{source, render, keyFn}
	if flags != 0 {
		if keyFn == "" {
			args[2] = "undefined"
		}
		args = append(args, strconv.Itoa(flags))
	}
	return call(g.helper("createFor"), args...)
}

// keyFunc receives the raw item, key and index, so the key expression
// keeps the source binding names.
func (g *generator) keyFunc(op *ir.For) string {
	var params []string
	for _, p := range []jsast.Expr{op.Value, op.Key, op.Index} {
		if p == nil {
			break
		}
		params = append(params, printer.Expr(p, g.opts.Printer))
	}
	pop := g.shadow(op.Value, op.Key, op.Index)
	defer pop()
	if len(params) == 1 {
		if _, ok := op.Value.(*jsast.Ident); ok {
			return params[0] + " => (" + g.expr(op.KeyProp) + ")"
		}
	}
	return "(" + strings.Join(params, ", ") + ") => (" + g.expr(op.KeyProp) + ")"
}
