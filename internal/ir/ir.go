// Package ir is the intermediate representation between the template
// transform and code generation.
//
// A template is split into static template strings and explicit operations.
// Each reactive scope is a Block: the operations it runs once, the effects it
// re-runs together and the nodes it returns. DynamicInfo mirrors the source
// tree and records which nodes need a variable, which ones live outside the
// template string and how inserted nodes are positioned.
package ir

import (
	"jsxc/internal/jsast"
)

// NoNode marks an absent node id.
const NoNode = -1

// DynamicFlag describes a child in DynamicInfo. Flags are only added.
type DynamicFlag uint8

const (
	// FlagReferenced: the node needs a variable in generated code.
	FlagReferenced DynamicFlag = 1 << iota
	// FlagNonTemplate: the node is not part of the parent's template string.
	FlagNonTemplate
	// FlagInsert: the node is created at runtime and inserted into the parent.
	FlagInsert
)

// DynamicInfo is per-node bookkeeping of a block.
type DynamicInfo struct {
	ID     int // NoNode until referenced
	Flags  DynamicFlag
	Anchor int // id of the `<!>` placeholder in front of an inserted run, NoNode otherwise

	Children []*DynamicInfo

	// Template is the registry index of the node's own template, NoNode when
	// the node is part of its parent's template or has none.
	Template        int
	HasDynamicChild bool

	// Operation is set when the node is a block (conditional, loop, component,
	// slot outlet, keyed fragment or created nodes).
	Operation BlockOperation

	// IfHead is the conditional this node starts; later else branches chain into it.
	IfHead *If
}

func NewDynamic() *DynamicInfo {
	return &DynamicInfo{ID: NoNode, Anchor: NoNode, Template: NoNode}
}

func (d *DynamicInfo) Has(f DynamicFlag) bool { return d.Flags&f != 0 }

// Add sets flags; nothing clears them during a transform pass.
func (d *DynamicInfo) Add(f DynamicFlag) { d.Flags |= f }

// Promote turns the first node of an inserted run into the template anchor
// that the run is inserted before.
func (d *DynamicInfo) Promote(anchor int) {
	d.Flags &^= FlagNonTemplate
	d.Anchor = anchor
}

// Effect is a group of operations re-run together when any of Expressions changes.
type Effect struct {
	Expressions []jsast.Expr
	Operations  []Operation
}

// Block is one reactive scope: a program root, a branch, a loop body or a slot.
type Block struct {
	Node       jsast.Node
	Dynamic    *DynamicInfo
	Operations []Operation
	Effects    []*Effect
	Returns    []int

	// Props is the slot-props binding of a slot block.
	Props jsast.Expr
}

func NewBlock(node jsast.Node) *Block {
	return &Block{Node: node, Dynamic: NewDynamic()}
}

// HasComponentOrSlot reports whether the block creates components or slot
// outlets at any depth that belongs to it.
func (b *Block) HasComponentOrSlot() bool {
	found := false
	var visit func(d *DynamicInfo)
	visit = func(d *DynamicInfo) {
		if found || d == nil {
			return
		}
		switch op := d.Operation.(type) {
		case *CreateComponent, *SlotOutlet:
			found = true
			return
		case *If:
			for cur := op; cur != nil && !found; cur = cur.NegativeIf {
				found = cur.Positive.HasComponentOrSlot() || (cur.Negative != nil && cur.Negative.HasComponentOrSlot())
			}
		case *Key:
			found = op.Block.HasComponentOrSlot()
		case *For:
			found = op.Render.HasComponentOrSlot()
		}
		for _, c := range d.Children {
			visit(c)
		}
	}
	visit(b.Dynamic)
	return found
}
