package ir

import "testing"

func TestTemplateRegistryDedup(t *testing.T) {
	r := NewTemplateRegistry()
	a := r.Add(Template{Content: "<div>hello", Root: true})
	b := r.Add(Template{Content: "<div>hello", Root: true})
	c := r.Add(Template{Content: "<div>hello", Root: false})
	if a != b {
		t.Fatalf("identical templates got %d and %d", a, b)
	}
	if c == a {
		t.Fatal("root-ness must be part of the key")
	}
	if r.Len() != 2 {
		t.Fatalf("len = %d", r.Len())
	}
}

func TestHelpersUse(t *testing.T) {
	h := NewHelpers()
	if got := h.Use("template"); got != "_template" {
		t.Fatalf("alias = %s", got)
	}
	h.Use("child")
	h.Use("template")
	if got := h.Names(); len(got) != 2 || got[0] != "template" || got[1] != "child" {
		t.Fatalf("names = %v", got)
	}
}

func TestDynamicFlags(t *testing.T) {
	d := NewDynamic()
	d.Add(FlagNonTemplate | FlagInsert)
	d.Promote(3)
	if d.Has(FlagNonTemplate) || !d.Has(FlagInsert) || d.Anchor != 3 {
		t.Fatalf("flags = %b anchor = %d", d.Flags, d.Anchor)
	}
	if d.ID != NoNode || d.Template != NoNode {
		t.Fatal("fresh dynamic must have no id and no template")
	}
}

func TestHasComponentOrSlot(t *testing.T) {
	b := NewBlock(nil)
	if b.HasComponentOrSlot() {
		t.Fatal("empty block")
	}
	inner := NewBlock(nil)
	child := NewDynamic()
	child.Operation = &CreateComponent{Tag: "Comp"}
	inner.Dynamic.Children = append(inner.Dynamic.Children, child)

	cond := NewDynamic()
	cond.Operation = &If{Positive: NewBlock(nil), NegativeIf: &If{Positive: inner}}
	b.Dynamic.Children = append(b.Dynamic.Children, cond)
	if !b.HasComponentOrSlot() {
		t.Fatal("component in else-if branch not found")
	}
}
