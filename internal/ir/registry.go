package ir

import (
	"fmt"

	"jsxc/internal/directive"
	"jsxc/internal/htmltags"
	"jsxc/internal/jsast"
)

// Template is one registered template string.
type Template struct {
	Content   string
	Root      bool
	Namespace htmltags.Namespace
}

type templateKey Template

// TemplateRegistry is the append-only, deduplicated list of templates of one compile.
type TemplateRegistry struct {
	list  []Template
	index map[templateKey]int
}

func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{index: make(map[templateKey]int)}
}

// Add returns the index of t, registering it on first use.
func (r *TemplateRegistry) Add(t Template) int {
	if idx, ok := r.index[templateKey(t)]; ok {
		return idx
	}
	idx := len(r.list)
	r.list = append(r.list, t)
	r.index[templateKey(t)] = idx
	return idx
}

func (r *TemplateRegistry) All() []Template { return r.list }
func (r *TemplateRegistry) Len() int        { return len(r.list) }

// NameSet keeps names in first-use order.
type NameSet struct {
	names []string
	seen  map[string]bool
}

func NewNameSet() *NameSet { return &NameSet{seen: make(map[string]bool)} }

// Add reports whether name was new.
func (s *NameSet) Add(name string) bool {
	if s.seen[name] {
		return false
	}
	s.seen[name] = true
	s.names = append(s.names, name)
	return true
}

func (s *NameSet) Has(name string) bool { return s.seen[name] }
func (s *NameSet) Names() []string     { return s.names }
func (s *NameSet) Len() int            { return len(s.names) }

// HelperPrefix is prepended to runtime helper names to form their local alias.
const HelperPrefix = "_"

// Helpers is the set of runtime helpers used by generated code.
type Helpers struct {
	NameSet
}

func NewHelpers() *Helpers { return &Helpers{NameSet: *NewNameSet()} }

// Use interns a helper and returns its local alias.
func (h *Helpers) Use(name string) string {
	h.Add(name)
	return HelperPrefix + name
}

// Hoists are constant expressions lifted to module level.
type Hoists struct {
	exprs []jsast.Expr
}

// Add hoists e and returns the name it is bound to.
func (h *Hoists) Add(e jsast.Expr) string {
	h.exprs = append(h.exprs, e)
	return HoistName(len(h.exprs) - 1)
}

func (h *Hoists) All() []jsast.Expr { return h.exprs }
func (h *Hoists) Len() int          { return len(h.exprs) }

func HoistName(i int) string { return fmt.Sprintf("_hoisted_%d", i) }

// Root holds the registries shared by every template of one compile.
type Root struct {
	Templates *TemplateRegistry
	Helpers   *Helpers
	Delegates *NameSet
	Hoists    *Hoists
	Programs  []*Program
}

func NewRoot() *Root {
	return &Root{
		Templates: NewTemplateRegistry(),
		Helpers:   NewHelpers(),
		Delegates: NewNameSet(),
		Hoists:    &Hoists{},
	}
}

// Program is one compiled JSX root.
type Program struct {
	Node  jsast.Expr
	Block *Block
	// Components are asset components resolved by name at runtime.
	Components *NameSet
	Directives *directive.Registry
	// HasTemplateRef: the program creates a template ref setter.
	HasTemplateRef bool
}

func NewProgram(node jsast.Expr) *Program {
	return &Program{
		Node:       node,
		Block:      NewBlock(node),
		Components: NewNameSet(),
		Directives: directive.NewRegistry(),
	}
}
