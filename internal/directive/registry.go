package directive

import (
	"fmt"
	"strings"

	"jsxc/internal/source"
)

// Usage is one custom directive referenced by a template.
type Usage struct {
	// Name is the directive name without the v- prefix, e.g. "focus".
	Name string
	// Span is the first attribute that used it.
	Span source.Span
	// Var is the local that holds the resolved directive.
	// Format: _directive_<name>
	Var string
}

// GenerateVarName creates the canonical local name for this directive.
func (u *Usage) GenerateVarName() string {
	return fmt.Sprintf("_directive_%s", strings.ReplaceAll(u.Name, "-", "_"))
}

// Registry collects the custom directives of one compile in first-use order.
// Builtin directives never reach it.
type Registry struct {
	usages []Usage
	byName map[string]int // name -> index into usages
}

// NewRegistry creates an empty directive registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Add registers name and returns its local variable. Repeated names share one entry.
func (r *Registry) Add(name string, sp source.Span) string {
	if idx, ok := r.byName[name]; ok {
		return r.usages[idx].Var
	}
	u := Usage{Name: name, Span: sp}
	u.Var = u.GenerateVarName()
	r.byName[name] = len(r.usages)
	r.usages = append(r.usages, u)
	return u.Var
}

// All returns all registered usages.
func (r *Registry) All() []Usage {
	return append([]Usage(nil), r.usages...)
}

// Lookup returns the usage registered for name.
func (r *Registry) Lookup(name string) (Usage, bool) {
	idx, ok := r.byName[name]
	if !ok {
		return Usage{}, false
	}
	return r.usages[idx], true
}

// Len returns the number of distinct directives.
func (r *Registry) Len() int {
	return len(r.usages)
}
