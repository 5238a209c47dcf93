package transform

import (
	"jsxc/internal/diag"
	"jsxc/internal/directive"
	"jsxc/internal/ir"
	"jsxc/internal/jsast"
)

// modelTarget checks that a v-model value can be assigned to.
func (c *Context) modelTarget(rec *directive.Record) bool {
	if rec.Exp == nil {
		c.st.report(diag.TplVModelNoExpression, rec.Span)
		return false
	}
	switch v := unparen(rec.Exp).(type) {
	case *jsast.Ident:
		if c.st.scopeVars.Has(v.Name) {
			c.st.report(diag.TplVModelOnScopeVariable, rec.Exp.Span())
			return false
		}
	case *jsast.MemberExpr:
		if v.Optional {
			c.st.report(diag.TplVModelMalformed, rec.Exp.Span())
			return false
		}
	default:
		c.st.report(diag.TplVModelMalformed, rec.Exp.Span())
		return false
	}
	return true
}

// vModel picks the runtime helper for two-way binding on a native element.
func (c *Context) vModel(rec *directive.Record) {
	if !c.modelTarget(rec) {
		return
	}
	n := c.node
	if rec.Arg != nil {
		c.st.report(diag.TplVModelArgOnElement, rec.Arg.Span)
	}
	custom := c.st.opts.IsCustomElement != nil && c.st.opts.IsCustomElement(n.tag)

	checkValue := func() {
		if a := n.prop("value"); a != nil {
			c.st.report(diag.TplVModelUnnecessaryValue, a.rec.Span)
		}
	}

	helper := "applyTextModel"
	switch {
	case n.tag == "input" || custom:
		typ := n.prop("type")
		switch {
		case typ != nil:
			s, ok := staticString(typ.rec.Exp)
			switch {
			case !ok:
				helper = "applyDynamicModel"
			case s == "radio":
				helper = "applyRadioModel"
			case s == "checkbox":
				helper = "applyCheckboxModel"
			case s == "file":
				c.st.report(diag.TplVModelOnFileInput, rec.Span)
				return
			default:
				checkValue()
			}
		case n.dynamicKeys():
			helper = "applyDynamicModel"
		default:
			checkValue()
		}
	case n.tag == "select":
		helper = "applySelectModel"
	case n.tag == "textarea":
		checkValue()
	default:
		c.st.report(diag.TplVModelOnInvalidElement, rec.Span)
		return
	}

	c.registerOperation(&ir.Directive{
		Element:   c.reference(),
		Name:      "model",
		Builtin:   true,
		Dir:       rec,
		ModelType: helper,
	})
}

// modelProps expands v-model on a component into the value prop, its
// update handler and the modifiers object.
func (c *Context) modelProps(rec *directive.Record) []*ir.Prop {
	if !c.modelTarget(rec) {
		return nil
	}
	var out []*ir.Prop
	if rec.Arg != nil && !rec.Arg.IsStatic() {
		key := rec.Arg.Expr
		out = append(out,
			&ir.Prop{KeyExpr: key, Values: []jsast.Expr{rec.Exp}, Model: true},
			&ir.Prop{
				KeyExpr: &jsast.BinaryExpr{Op: "+", X: &jsast.StringLit{Value: "onUpdate:"}, Y: key},
				Values:  []jsast.Expr{rec.Exp}, Model: true, Handler: true,
			})
		if len(rec.Modifiers) > 0 {
			out = append(out, &ir.Prop{
				KeyExpr: &jsast.BinaryExpr{Op: "+", X: key, Y: &jsast.StringLit{Value: "Modifiers"}},
				Values:  []jsast.Expr{modifiersObject(rec.Modifiers)},
			})
		}
		return out
	}
	name := rec.ArgName("modelValue")
	out = append(out,
		&ir.Prop{Key: name, Values: []jsast.Expr{rec.Exp}, Model: true},
		&ir.Prop{Key: "onUpdate:" + name, Values: []jsast.Expr{rec.Exp}, Model: true, Handler: true})
	if len(rec.Modifiers) > 0 {
		key := name + "Modifiers"
		if name == "modelValue" {
			key = "modelModifiers"
		}
		out = append(out, &ir.Prop{Key: key, Values: []jsast.Expr{modifiersObject(rec.Modifiers)}})
	}
	return out
}

// modifiersObject builds `{ trim: true }`.
func modifiersObject(mods []string) jsast.Expr {
	obj := &jsast.ObjectLit{}
	for _, m := range mods {
		obj.Props = append(obj.Props, &jsast.Property{
			Kind:  jsast.PropInit,
			Key:   &jsast.Ident{Name: m},
			Value: &jsast.BoolLit{Value: true},
		})
	}
	return obj
}

// transformTemplateRef binds `ref` on elements and components.
func transformTemplateRef(c *Context) func() {
	n := c.node
	if n.kind != kindElement && n.kind != kindComponent {
		return nil
	}
	a := n.reserved("ref")
	if a == nil || a.rec.Exp == nil {
		return nil
	}
	c.st.prog.HasTemplateRef = true
	value := a.rec.Exp
	return func() {
		id := c.reference()
		op := &ir.SetTemplateRef{Element: id, Value: value, RefFor: c.inVFor > 0}
		if stableRef(value) || c.inVOnce {
			c.registerOperation(op)
			return
		}
		op.Effect = true
		c.registerOperation(&ir.DeclareOldRef{ID: id})
		c.block.Effects = append(c.block.Effects, &ir.Effect{Expressions: []jsast.Expr{value}, Operations: []ir.Operation{op}})
	}
}

// stableRef: the ref target is the same object on every render.
func stableRef(e jsast.Expr) bool {
	switch unparen(e).(type) {
	case *jsast.Ident, *jsast.MemberExpr, *jsast.StringLit, *jsast.ArrowFunc, *jsast.FuncExpr:
		return true
	}
	return false
}
