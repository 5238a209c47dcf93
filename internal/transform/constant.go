package transform

import "jsxc/internal/jsast"

// safeGlobals are free identifiers that never change between renders.
var safeGlobals = map[string]bool{
	"undefined": true, "Infinity": true, "NaN": true,
	"Math": true, "Number": true, "String": true, "Boolean": true, "JSON": true,
	"Date": true, "Array": true, "Object": true, "BigInt": true, "RegExp": true,
	"parseInt": true, "parseFloat": true, "isNaN": true, "isFinite": true,
	"encodeURI": true, "encodeURIComponent": true, "decodeURI": true, "decodeURIComponent": true,
	"Intl": true, "Map": true, "Set": true, "Symbol": true, "console": true,
}

// IsConstant reports whether e evaluates to the same value on every render:
// literals and operators over constants, plus allow-listed globals.
func IsConstant(e jsast.Expr) bool {
	switch e := e.(type) {
	case nil:
		return true
	case *jsast.NullLit, *jsast.BoolLit, *jsast.NumberLit, *jsast.BigIntLit,
		*jsast.StringLit, *jsast.RegExpLit:
		return true
	case *jsast.Ident:
		return safeGlobals[e.Name]
	case *jsast.TemplateLit:
		return allConstant(e.Exprs)
	case *jsast.ParenExpr:
		return IsConstant(e.X)
	case *jsast.UnaryExpr:
		return e.Op != "delete" && IsConstant(e.X)
	case *jsast.BinaryExpr:
		return IsConstant(e.X) && IsConstant(e.Y)
	case *jsast.CondExpr:
		return IsConstant(e.Test) && IsConstant(e.Cons) && IsConstant(e.Alt)
	case *jsast.SeqExpr:
		return allConstant(e.Exprs)
	case *jsast.MemberExpr:
		return !e.Optional && IsConstant(e.Object) && (!e.Computed || IsConstant(e.Property))
	case *jsast.SpreadElem:
		return IsConstant(e.X)
	case *jsast.ArrayLit:
		return allConstant(e.Elems)
	case *jsast.ObjectLit:
		for _, p := range e.Props {
			switch p.Kind {
			case jsast.PropInit:
				if p.Computed && !IsConstant(p.Key) {
					return false
				}
			case jsast.PropSpread:
			default:
				return false
			}
			if !IsConstant(p.Value) {
				return false
			}
		}
		return true
	}
	return false
}

func allConstant(list []jsast.Expr) bool {
	for _, x := range list {
		if x != nil && !IsConstant(x) {
			return false
		}
	}
	return true
}

// hoistable: constant object and array literals worth sharing across renders.
func hoistable(e jsast.Expr) bool {
	switch e.(type) {
	case *jsast.ObjectLit, *jsast.ArrayLit:
		return IsConstant(e)
	}
	return false
}

// staticString returns the string an attribute value renders as when it is
// known at compile time.
func staticString(e jsast.Expr) (string, bool) {
	switch v := e.(type) {
	case *jsast.StringLit:
		return v.Value, true
	case *jsast.NumberLit:
		return v.Raw, true
	case *jsast.TemplateLit:
		if len(v.Exprs) == 0 && len(v.Quasis) == 1 {
			return v.Quasis[0].Cooked, true
		}
	case *jsast.ParenExpr:
		return staticString(v.X)
	}
	return "", false
}

// containsJSX reports JSX anywhere under e.
func containsJSX(e jsast.Node) bool {
	found := false
	jsast.Inspect(e, func(n jsast.Node) bool {
		switch n.(type) {
		case *jsast.JSXElement, *jsast.JSXFragment:
			found = true
		}
		return !found
	})
	return found
}

// stringLike: the value is a primitive that renders as text.
func stringLike(e jsast.Expr) bool {
	if containsJSX(e) {
		return false
	}
	switch v := e.(type) {
	case *jsast.StringLit, *jsast.NumberLit, *jsast.BigIntLit, *jsast.TemplateLit:
		return true
	case *jsast.ParenExpr:
		return stringLike(v.X)
	case *jsast.UnaryExpr:
		return v.Op != "delete"
	case *jsast.UpdateExpr:
		return true
	case *jsast.BinaryExpr:
		switch v.Op {
		case "&&", "||", "??":
			return false
		}
		return true
	}
	return false
}

// rendersNothing: null, undefined and booleans produce no output as children.
func rendersNothing(e jsast.Expr) bool {
	switch v := e.(type) {
	case *jsast.NullLit, *jsast.BoolLit:
		return true
	case *jsast.Ident:
		return v.Name == "undefined"
	case *jsast.ParenExpr:
		return rendersNothing(v.X)
	}
	return false
}

func unparen(e jsast.Expr) jsast.Expr {
	for {
		p, ok := e.(*jsast.ParenExpr)
		if !ok {
			return e
		}
		e = p.X
	}
}

// jsxBranch: a conditional child whose branches render JSX.
func jsxBranch(e jsast.Expr) bool {
	switch v := unparen(e).(type) {
	case *jsast.JSXElement, *jsast.JSXFragment:
		return true
	case *jsast.CondExpr:
		return jsxBranch(v.Cons) || jsxBranch(v.Alt)
	case *jsast.BinaryExpr:
		return v.Op == "&&" && jsxBranch(v.Y)
	}
	return false
}
