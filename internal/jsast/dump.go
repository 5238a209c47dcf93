package jsast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Describe returns a one-line summary of n: its kind plus the fields that identify it.
func Describe(n Node) string {
	switch n := n.(type) {
	case *Ident:
		return "Ident " + n.Name
	case *PrivateName:
		return "PrivateName #" + n.Name
	case *NullLit:
		return "Null"
	case *BoolLit:
		return "Bool " + strconv.FormatBool(n.Value)
	case *NumberLit:
		return "Number " + n.Raw
	case *BigIntLit:
		return "BigInt " + n.Raw
	case *StringLit:
		return "String " + strconv.Quote(n.Value)
	case *RegExpLit:
		return "RegExp /" + n.Pattern + "/" + n.Flags
	case *TemplateLit:
		return fmt.Sprintf("Template quasis=%d", len(n.Quasis))
	case *UnaryExpr:
		return "Unary " + n.Op
	case *UpdateExpr:
		if n.Prefix {
			return "Update prefix " + n.Op
		}
		return "Update postfix " + n.Op
	case *BinaryExpr:
		return "Binary " + n.Op
	case *AssignExpr:
		return "Assign " + n.Op
	case *MemberExpr:
		switch {
		case n.Computed:
			return "Member computed"
		case n.Optional:
			return "Member optional"
		}
		return "Member"
	case *CallExpr:
		return fmt.Sprintf("Call args=%d", len(n.Args))
	case *ArrowFunc:
		if n.Async {
			return "Arrow async"
		}
		return "Arrow"
	case *Function:
		var b strings.Builder
		b.WriteString("Function")
		if n.Async {
			b.WriteString(" async")
		}
		if n.Generator {
			b.WriteString(" generator")
		}
		return b.String()
	case *Property:
		switch n.Kind {
		case PropSpread:
			return "Property spread"
		case PropGet:
			return "Property get"
		case PropSet:
			return "Property set"
		case PropMethod:
			return "Property method"
		}
		if n.Shorthand {
			return "Property shorthand"
		}
		return "Property"
	case *VarDecl:
		return "VarDecl " + n.Kind
	case *ImportDecl:
		if n.Source != nil {
			return "Import " + strconv.Quote(n.Source.Value)
		}
		return "Import"
	case *ImportSpec:
		local := ""
		if n.Local != nil {
			local = n.Local.Name
		}
		switch n.Kind {
		case ImportDefault:
			return "ImportDefault " + local
		case ImportNamespace:
			return "ImportNamespace " + local
		}
		return "ImportSpec " + n.Imported + " as " + local
	case *JSXElement:
		return "JSXElement <" + JSXNameString(n.Name) + ">"
	case *JSXFragment:
		return "JSXFragment"
	case *JSXIdent:
		return "JSXIdent " + n.Name
	case *JSXAttr:
		return "JSXAttr " + JSXNameString(n.Name)
	case *JSXSpreadAttr:
		return "JSXSpreadAttr"
	case *JSXExprContainer:
		return "JSXExprContainer"
	case *JSXText:
		return "JSXText " + strconv.Quote(n.Value)
	}
	name := fmt.Sprintf("%T", n)
	return strings.TrimPrefix(name, "*jsast.")
}

// JSXNameString renders a JSX tag or attribute name as written.
func JSXNameString(e Expr) string {
	switch n := e.(type) {
	case *JSXIdent:
		return n.Name
	case *JSXNamespacedName:
		return n.Namespace.Name + ":" + n.Name.Name
	case *JSXMemberExpr:
		return JSXNameString(n.Object) + "." + n.Property.Name
	}
	return ""
}

// Dump writes an indented tree of n to w, one node per line with its byte range.
func Dump(w io.Writer, n Node) error {
	var err error
	depth := 0
	Walk(n, Visitor{
		Enter: func(c *Cursor) bool {
			if err != nil {
				return false
			}
			sp := c.Node.Span()
			_, err = fmt.Fprintf(w, "%s%s [%d,%d)\n", strings.Repeat("  ", depth), Describe(c.Node), sp.Start, sp.End)
			depth++
			return true
		},
		Leave: func(*Cursor) { depth-- },
	})
	return err
}
