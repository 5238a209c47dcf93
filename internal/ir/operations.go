package ir

import (
	"jsxc/internal/directive"
	"jsxc/internal/jsast"
)

// Operation is the closed set of IR operations.
type Operation interface {
	operation()
}

// BlockOperation creates nodes that are inserted into a parent at runtime.
type BlockOperation interface {
	Operation
	Insertion() *Insertion
	NodeID() int
}

// AnchorPrepend is the Insertion.Anchor of a run inserted before the first child.
const AnchorPrepend = -1

// Insertion is where a block operation puts its nodes.
type Insertion struct {
	// Set is false for blocks created at block level, which are returned
	// instead of inserted.
	Set          bool
	Parent       int
	Anchor       int // AnchorPrepend or a node id; unused when Append
	Append       bool
	Last         bool
	LogicalIndex int // hydration position, meaningful with Append or Last
}

type insertion struct{ ins Insertion }

func (i *insertion) Insertion() *Insertion { return &i.ins }

type (
	// If is a conditional chain. Exactly one of Negative and NegativeIf may be set.
	If struct {
		insertion
		ID         int
		Condition  jsast.Expr
		Positive   *Block
		Negative   *Block
		NegativeIf *If
		Once       bool
	}

	// For renders Render once per item of Source.
	For struct {
		insertion
		ID     int
		Source jsast.Expr
		// Value, Key and Index are binding patterns; nil when absent.
		Value     jsast.Expr
		Key       jsast.Expr
		Index     jsast.Expr
		KeyProp   jsast.Expr
		Render    *Block
		Once      bool
		Component bool
		OnlyChild bool
	}

	// Key re-creates Block whenever Value changes (keyed fragments and v-memo).
	Key struct {
		insertion
		ID    int
		Value jsast.Expr
		Block *Block
	}

	CreateComponent struct {
		insertion
		ID  int
		Tag string
		// TagExpr is the component value for tags that are expressions
		// (Comp, ns.Comp) and the `is` value of dynamic components.
		TagExpr jsast.Expr
		Props   []PropsSource
		Slots   []*Slot
		Asset   bool
		Dynamic bool
		Root    bool
		Once    bool
	}

	SlotOutlet struct {
		insertion
		ID       int
		Name     jsast.Expr // *jsast.StringLit for static names
		Props    []PropsSource
		Fallback *Block
		Once     bool
	}

	// CreateNodes turns arbitrary expression values into nodes.
	CreateNodes struct {
		insertion
		ID     int
		Values []jsast.Expr
		Once   bool
	}
)

func (op *If) NodeID() int              { return op.ID }
func (op *For) NodeID() int             { return op.ID }
func (op *Key) NodeID() int             { return op.ID }
func (op *CreateComponent) NodeID() int { return op.ID }
func (op *SlotOutlet) NodeID() int      { return op.ID }
func (op *CreateNodes) NodeID() int     { return op.ID }

// Prop is one key with all its merged values.
type Prop struct {
	Key string
	// KeyExpr is a dynamic key. For a Handler that is not a Model prop it
	// is the event name and generated code derives the handler key.
	KeyExpr  jsast.Expr
	Values   []jsast.Expr
	Modifier byte // '.' DOM property, '^' attribute
	Handler  bool
	// HandlerModifiers are event modifiers of a component handler.
	HandlerModifiers directive.Modifiers
	// Model marks v-model generated props of a component.
	Model bool
}

func (p *Prop) IsStaticKey() bool { return p.KeyExpr == nil }

// PropsSource is either a group of props or a spread expression.
type PropsSource struct {
	Props  []*Prop
	Spread jsast.Expr
	// Handlers marks a `v-on={obj}` spread on a component.
	Handlers bool
}

type SlotKind uint8

const (
	SlotStatic SlotKind = iota
	SlotDynamic
	SlotExpression
	// SlotConditional is a slot template with v-if; Negative continues the chain.
	SlotConditional
	// SlotLoop is a slot template with v-for.
	SlotLoop
)

// NamedSlot is a slot with a static name.
type NamedSlot struct {
	Name  string
	Block *Block
}

type Slot struct {
	Kind   SlotKind
	Static []NamedSlot
	Name   jsast.Expr // SlotDynamic, SlotLoop
	Block  *Block     // SlotDynamic, SlotLoop
	Expr   jsast.Expr // SlotExpression

	Condition jsast.Expr
	Positive  *Slot
	Negative  *Slot
	// Loop carries source and aliases of a SlotLoop; Render is unused.
	Loop *For
}

type (
	SetProp struct {
		Element int
		Prop    *Prop
		Tag     string
		Root    bool
	}

	SetDynamicProps struct {
		Element int
		Props   []PropsSource
		Root    bool
	}

	SetEvent struct {
		Element   int
		Key       string
		KeyExpr   jsast.Expr
		Value     jsast.Expr
		Modifiers directive.Modifiers
		Delegate  bool
	}

	SetDynamicEvents struct {
		Element int
		Value   jsast.Expr
	}

	// SetText writes text; with Child set the target is the text node
	// returned by GetTextChild for Element.
	SetText struct {
		Element int
		Values  []jsast.Expr
		Child   bool
	}

	GetTextChild struct {
		Parent int
	}

	SetHTML struct {
		Element int
		Value   jsast.Expr
	}

	// SetNodes replaces the children of Element with the expression values.
	SetNodes struct {
		Element int
		Values  []jsast.Expr
		Once    bool
	}

	// InsertNode inserts template nodes that could not stay in the parent's
	// template because of HTML nesting rules.
	InsertNode struct {
		Elements []int
		Parent   int
		Anchor   int // AnchorPrepend, node id, or NoNode to append
	}

	// Directive applies v-show, v-model or a custom directive.
	Directive struct {
		Element int
		Name    string
		Builtin bool
		Dir     *directive.Record
		// ModelType is the runtime helper for v-model on elements.
		ModelType string
		// Var is the resolved local of a custom directive.
		Var  string
		Once bool
	}

	SetTemplateRef struct {
		Element int
		Value   jsast.Expr
		RefFor  bool
		Effect  bool
	}

	DeclareOldRef struct {
		ID int
	}
)

func (*If) operation()               {}
func (*For) operation()              {}
func (*Key) operation()              {}
func (*CreateComponent) operation()  {}
func (*SlotOutlet) operation()       {}
func (*CreateNodes) operation()      {}
func (*SetProp) operation()          {}
func (*SetDynamicProps) operation()  {}
func (*SetEvent) operation()         {}
func (*SetDynamicEvents) operation() {}
func (*SetText) operation()          {}
func (*GetTextChild) operation()     {}
func (*SetHTML) operation()          {}
func (*SetNodes) operation()         {}
func (*InsertNode) operation()       {}
func (*Directive) operation()        {}
func (*SetTemplateRef) operation()   {}
func (*DeclareOldRef) operation()    {}
