// Package directive normalizes JSX attributes into directive records.
//
// Attribute names follow `name_modifier_modifier`. Directives may take an
// argument after a colon: `v-model:value_trim`, or a dynamic one wrapped in
// dollars, `v-slot:$name$`, whose inner underscores become member access.
// Events are `on` followed by a capital letter, directives are `v-name` or
// `vName`, and everything else is a plain attribute.
package directive

import (
	"strings"

	"jsxc/internal/htmltags"
	"jsxc/internal/jsast"
	"jsxc/internal/source"
)

const ModifierSep = "_"

// Kind classifies a resolved attribute.
type Kind uint8

const (
	KindAttribute Kind = iota // plain prop, Name "bind"
	KindEvent                 // onX handler, Name "on"
	KindDirective             // v-x
	KindReserved              // key, ref and vnode hooks
	KindSpread                // {...props}
)

func (k Kind) String() string {
	switch k {
	case KindAttribute:
		return "attribute"
	case KindEvent:
		return "event"
	case KindDirective:
		return "directive"
	case KindReserved:
		return "reserved"
	case KindSpread:
		return "spread"
	}
	return "unknown"
}

// Arg is a directive argument: a static name or a dynamic expression.
type Arg struct {
	Static string
	Expr   jsast.Expr
	Span   source.Span
}

func (a *Arg) IsStatic() bool { return a != nil && a.Expr == nil }

// Record is the normalized form of one attribute.
type Record struct {
	Name      string
	RawName   string
	Arg       *Arg
	Exp       jsast.Expr
	Modifiers []string
	Span      source.Span
	Attr      *jsast.JSXAttr
}

// HasModifier reports whether m is among the record modifiers.
func (r *Record) HasModifier(m string) bool {
	for _, x := range r.Modifiers {
		if x == m {
			return true
		}
	}
	return false
}

// ArgName returns the static argument or def.
func (r *Record) ArgName(def string) string {
	if r.Arg == nil || !r.Arg.IsStatic() {
		return def
	}
	return r.Arg.Static
}

// Resolve converts one attribute node into a record.
func Resolve(node jsast.Node) (*Record, Kind) {
	switch a := node.(type) {
	case *jsast.JSXSpreadAttr:
		return &Record{Name: "bind", Exp: a.X, Span: a.Span()}, KindSpread
	case *jsast.JSXAttr:
		return resolveAttr(a)
	}
	return nil, KindAttribute
}

func resolveAttr(attr *jsast.JSXAttr) (*Record, Kind) {
	rec := &Record{RawName: jsast.JSXNameString(attr.Name), Exp: Value(attr), Span: attr.Span(), Attr: attr}

	var head string
	var argText string
	var argSpan source.Span
	switch n := attr.Name.(type) {
	case *jsast.JSXIdent:
		head = n.Name
	case *jsast.JSXNamespacedName:
		head = n.Namespace.Name
		argText = n.Name.Name
		argSpan = n.Name.Span()
	}

	base, mods := splitModifiers(head)

	if name, ok := htmltags.DirectiveName(base); ok {
		rec.Name = name
		rec.Modifiers = mods
		if argText != "" {
			arg, more := parseArg(argText, argSpan)
			rec.Arg = arg
			rec.Modifiers = append(rec.Modifiers, more...)
		}
		return rec, KindDirective
	}

	if htmltags.IsEventName(base) {
		rec.Name = "on"
		event := lowerFirst(base[2:])
		if argText != "" {
			// onUpdate:modelValue_once
			arg, more := splitModifiers(argText)
			event += ":" + arg
			mods = append(mods, more...)
		}
		rec.Arg = &Arg{Static: event, Span: attr.Name.Span()}
		rec.Modifiers = mods
		if htmltags.IsReservedProp(base) {
			return rec, KindReserved
		}
		return rec, KindEvent
	}

	if argText == "" && htmltags.IsReservedProp(base) && len(mods) == 0 {
		rec.Name = base
		return rec, KindReserved
	}

	// обычный атрибут: распознаём только модификаторы биндинга
	rec.Name = "bind"
	name := rec.RawName
	if argText == "" {
		name, rec.Modifiers = splitBindModifiers(head)
	}
	rec.Arg = &Arg{Static: name, Span: attr.Name.Span()}
	return rec, KindAttribute
}

// Value returns the bound expression of attr, nil for a bare attribute or an
// empty container. String values are returned as *jsast.StringLit.
func Value(attr *jsast.JSXAttr) jsast.Expr {
	switch v := attr.Value.(type) {
	case nil:
		return nil
	case *jsast.JSXExprContainer:
		if _, empty := v.X.(*jsast.JSXEmptyExpr); empty || v.X == nil {
			return nil
		}
		return v.X
	default:
		return v
	}
}

func splitModifiers(s string) (string, []string) {
	parts := strings.Split(s, ModifierSep)
	var mods []string
	for _, m := range parts[1:] {
		if m != "" {
			mods = append(mods, m)
		}
	}
	return parts[0], mods
}

var bindModifiers = map[string]bool{"prop": true, "attr": true, "camel": true}

// splitBindModifiers strips trailing prop/attr/camel modifiers from a plain
// attribute name; other underscores belong to the name.
func splitBindModifiers(name string) (string, []string) {
	var mods []string
	for {
		i := strings.LastIndex(name, ModifierSep)
		if i <= 0 || !bindModifiers[name[i+1:]] {
			break
		}
		mods = append([]string{name[i+1:]}, mods...)
		name = name[:i]
	}
	return name, mods
}

// parseArg reads a directive argument. `$a_b$_m` is the dynamic argument
// a.b with modifier m.
func parseArg(text string, sp source.Span) (*Arg, []string) {
	if strings.HasPrefix(text, "$") {
		if end := strings.Index(text[1:], "$"); end > 0 {
			inner := text[1 : end+1]
			rest := text[end+2:]
			_, mods := splitModifiers(rest)
			return &Arg{Expr: memberChain(inner, sp), Span: sp}, mods
		}
	}
	name, mods := splitModifiers(text)
	return &Arg{Static: name, Span: sp}, mods
}

func memberChain(path string, sp source.Span) jsast.Expr {
	parts := strings.Split(path, ModifierSep)
	var e jsast.Expr = jsast.At(sp, &jsast.Ident{Name: parts[0]})
	for _, p := range parts[1:] {
		e = jsast.At(sp, &jsast.MemberExpr{Object: e, Property: jsast.At(sp, &jsast.Ident{Name: p})})
	}
	return e
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
