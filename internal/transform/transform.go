// Package transform builds the IR of one JSX root.
//
// Every node gets a Context and runs the node transforms in a fixed order.
// A transform may return an exit func; exits run in reverse order after the
// children were transformed. Structural directives (v-if, v-for, key, v-memo)
// replace the node with a fragment around a copy of the element and enter a
// new block, so the element itself is transformed as a child of that block.
package transform

import (
	"jsxc/internal/diag"
	"jsxc/internal/ir"
	"jsxc/internal/jsast"
	"jsxc/internal/scope"
)

// Options configure a transform pass.
type Options struct {
	// IsCustomElement marks lowercase tags that are native custom elements.
	IsCustomElement func(tag string) bool
	// Reporter receives template errors; nil drops them.
	Reporter diag.Reporter
	// Abbreviate leaves out closing tags the HTML parser infers.
	Abbreviate bool
}

type nodeTransform func(c *Context) func()

// Заполняется в init: transformChildren сам вызывает transformNode.
var nodeTransforms []nodeTransform

func init() {
	nodeTransforms = []nodeTransform{
		transformOnce,
		transformIf,
		transformFor,
		transformKey,
		transformSlotOutlet,
		transformTemplateRef,
		transformElement,
		transformText,
		transformSlot,
		transformChildren,
	}
}

// Transform builds the program of JSX root node. Templates, helpers,
// hoists and delegated events go to the shared registries of root.
func Transform(node jsast.Expr, root *ir.Root, opts Options) *ir.Program {
	prog := ir.NewProgram(node)
	st := &state{
		opts:      opts,
		root:      root,
		prog:      prog,
		scopeVars: scope.Known{},
		hoisted:   make(map[string]bool),
	}
	for i := 0; i < root.Hoists.Len(); i++ {
		st.hoisted[ir.HoistName(i)] = true
	}

	var children []*tnode
	if frag, ok := node.(*jsast.JSXFragment); ok {
		children = st.normalizeChildren(frag.Children)
	} else {
		children = st.normalizeChildren([]jsast.Expr{node})
	}
	c := &Context{
		st:      st,
		node:    &tnode{kind: kindFragment, span: node.Span(), children: children},
		block:   prog.Block,
		dynamic: prog.Block.Dynamic,
		slots:   &[]*ir.Slot{},
	}
	transformNode(c)
	root.Programs = append(root.Programs, prog)
	return prog
}

func transformNode(c *Context) {
	defer c.unwind()
	for _, t := range nodeTransforms {
		if exit := t(c); exit != nil {
			c.exits = append(c.exits, exit)
		}
	}
	for i := len(c.exits) - 1; i >= 0; i-- {
		c.exits[i]()
	}
}
