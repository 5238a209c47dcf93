package codegen

import (
	"strconv"
	"strings"

	"jsxc/internal/ir"
)

func nodeVar(id int) string      { return "n" + strconv.Itoa(id) }
func templateVar(idx int) string { return "t" + strconv.Itoa(idx) }

// block emits the body of a reactive scope: node creation, located
// children, operations, the render effect and the return.
func (g *generator) block(b *ir.Block) []string {
	var out []string
	for _, child := range b.Dynamic.Children {
		out = append(out, g.self(child)...)
	}
	for _, child := range b.Dynamic.Children {
		if child.ID != ir.NoNode && child.HasDynamicChild && child.Operation == nil {
			out = append(out, g.children(child, nodeVar(child.ID))...)
		}
	}
	out = append(out, g.operations(b.Operations)...)
	out = append(out, g.effects(b.Effects)...)
	return append(out, "return "+returns(b.Returns))
}

func returns(ids []int) string {
	if len(ids) == 1 {
		return nodeVar(ids[0])
	}
	vars := make([]string, len(ids))
	for i, id := range ids {
		vars[i] = nodeVar(id)
	}
	return "[" + strings.Join(vars, ", ") + "]"
}

// self creates a node that is not part of its parent template: a block
// operation or a template moved out because of nesting rules.
func (g *generator) self(d *ir.DynamicInfo) []string {
	var out []string
	if d.ID != ir.NoNode && d.Template != ir.NoNode {
		out = append(out, "const "+nodeVar(d.ID)+" = "+templateVar(d.Template)+"()")
	}
	if d.Operation != nil {
		out = append(out, g.blockOperation(d.Operation)...)
	}
	return out
}

type located struct {
	d    *ir.DynamicInfo
	from string
}

// children locates the referenced descendants of d starting at the node
// held by from. A node is reached from the previously located sibling
// when they are adjacent, otherwise from the parent.
func (g *generator) children(d *ir.DynamicInfo, from string) []string {
	var out, nested []string
	var pending []located
	elementIndex, logical := 0, 0
	prev, prevIndex := "", 0

	for _, child := range d.Children {
		if child.Has(ir.FlagNonTemplate) {
			if child.Has(ir.FlagInsert) {
				logical++
			}
			continue
		}
		idx, li := elementIndex, logical
		elementIndex++
		logical++

		id := ir.NoNode
		if child.Has(ir.FlagReferenced) {
			id = child.ID
			if child.Has(ir.FlagInsert) {
				id = child.Anchor
			}
		}
		if id == ir.NoNode && !child.HasDynamicChild {
			continue
		}

		v := nodeVar(id)
		if id == ir.NoNode {
			v = "p" + strconv.Itoa(g.temp)
			g.temp++
		}
		out = append(out, "const "+v+" = "+g.locate(from, prev, prevIndex, idx, li))
		prev, prevIndex = v, idx
		if child.HasDynamicChild && !child.Has(ir.FlagInsert) {
			pending = append(pending, located{child, v})
		}
	}

	for _, child := range d.Children {
		if !child.Has(ir.FlagInsert) {
			continue
		}
		out = append(out, g.self(child)...)
		if child.Template != ir.NoNode && child.HasDynamicChild {
			nested = append(nested, g.children(child, nodeVar(child.ID))...)
		}
	}
	out = append(out, nested...)
	for _, p := range pending {
		out = append(out, g.children(p.d, p.from)...)
	}
	return out
}

// locate picks the cheapest sibling walk to element index idx of from.
// The logical index is passed when it differs from the element index,
// and always to next.
func (g *generator) locate(from, prev string, prevIndex, idx, logical int) string {
	li := strconv.Itoa(logical)
	opt := ""
	if logical != idx {
		opt = li
	}
	switch {
	case prev != "" && idx-prevIndex == 1:
		return call(g.helper("next"), prev, li)
	case prev != "":
		return call(g.helper("nthChild"), from, strconv.Itoa(idx), opt)
	case idx == 0:
		return call(g.helper("child"), from, opt)
	case idx == 1:
		return call(g.helper("next"), call(g.helper("child"), from), li)
	}
	return call(g.helper("nthChild"), from, strconv.Itoa(idx), opt)
}

// insertionState positions the node created by the next block operation.
func (g *generator) insertionState(ins *ir.Insertion) string {
	args := []string{nodeVar(ins.Parent)}
	switch {
	case ins.Append:
		args = append(args, "null")
	case ins.Anchor == ir.AnchorPrepend:
		args = append(args, "0")
	default:
		args = append(args, nodeVar(ins.Anchor))
	}
	if ins.Append || ins.Last {
		args = append(args, strconv.Itoa(ins.LogicalIndex))
	}
	if ins.Last {
		args = append(args, "true")
	}
	return call(g.helper("setInsertionState"), args...)
}

func (g *generator) effects(effs []*ir.Effect) []string {
	var stmts []string
	for _, e := range effs {
		stmts = append(stmts, g.operations(e.Operations)...)
	}
	switch len(stmts) {
	case 0:
		return nil
	case 1:
		return []string{call(g.helper("renderEffect"), "() => "+stmts[0])}
	}
	return []string{call(g.helper("renderEffect"), g.fn("()", stmts))}
}
