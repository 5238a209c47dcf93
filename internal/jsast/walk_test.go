package jsast

import (
	"bytes"
	"strings"
	"testing"
)

func ident(name string) *Ident { return &Ident{Name: name} }

func TestWalkReplace(t *testing.T) {
	// a + b(a)
	call := &CallExpr{Callee: ident("b"), Args: []Expr{ident("a")}}
	root := &BinaryExpr{Op: "+", X: ident("a"), Y: call}

	var seen []string
	Walk(root, Visitor{Enter: func(c *Cursor) bool {
		id, ok := c.Node.(*Ident)
		if !ok {
			return true
		}
		seen = append(seen, id.Name)
		if id.Name == "a" {
			c.Replace(&MemberExpr{Object: ident("ctx"), Property: ident("a")})
		}
		return true
	}})

	if got := strings.Join(seen, ","); got != "a,b,a" {
		t.Fatalf("visit order = %s", got)
	}
	m, ok := root.X.(*MemberExpr)
	if !ok || m.Object.(*Ident).Name != "ctx" {
		t.Fatalf("left operand not replaced: %#v", root.X)
	}
	if _, ok := call.Args[0].(*MemberExpr); !ok {
		t.Fatalf("call argument not replaced: %#v", call.Args[0])
	}
}

func TestWalkParentAndLeave(t *testing.T) {
	inner := ident("x")
	root := &ArrowFunc{Params: []Expr{ident("x")}, Expr: &UnaryExpr{Op: "!", X: inner}}

	var parent Node
	var enter, leave int
	Walk(root, Visitor{
		Enter: func(c *Cursor) bool {
			enter++
			if c.Node == Node(inner) {
				parent = c.Parent
			}
			return true
		},
		Leave: func(*Cursor) { leave++ },
	})
	if _, ok := parent.(*UnaryExpr); !ok {
		t.Fatalf("parent = %T, want *UnaryExpr", parent)
	}
	if enter != leave || enter != 4 {
		t.Fatalf("enter=%d leave=%d, want 4/4", enter, leave)
	}
}

func TestWalkSkipChildren(t *testing.T) {
	root := &ArrayLit{Elems: []Expr{&ArrowFunc{Expr: ident("hidden")}, nil, ident("shown")}}
	var names []string
	Walk(root, Visitor{Enter: func(c *Cursor) bool {
		if _, ok := c.Node.(*ArrowFunc); ok {
			return false
		}
		if id, ok := c.Node.(*Ident); ok {
			names = append(names, id.Name)
		}
		return true
	}})
	if len(names) != 1 || names[0] != "shown" {
		t.Fatalf("names = %v", names)
	}
}

func TestWalkForInitExprReplace(t *testing.T) {
	loop := &ForStmt{Init: &AssignExpr{Op: "=", Target: ident("i"), Value: &NumberLit{Raw: "0"}}, Body: &EmptyStmt{}}
	Walk(loop, Visitor{Enter: func(c *Cursor) bool {
		if _, ok := c.Node.(*AssignExpr); ok {
			c.Replace(ident("done"))
		}
		return true
	}})
	if id, ok := loop.Init.(*Ident); !ok || id.Name != "done" {
		t.Fatalf("Init = %#v", loop.Init)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := &ObjectLit{Props: []*Property{{Key: ident("a"), Value: &ArrayLit{Elems: []Expr{ident("b")}}}}}
	cp := CloneExpr(orig).(*ObjectLit)
	cp.Props[0].Value.(*ArrayLit).Elems[0].(*Ident).Name = "changed"
	if got := orig.Props[0].Value.(*ArrayLit).Elems[0].(*Ident).Name; got != "b" {
		t.Fatalf("original mutated: %s", got)
	}
	if CloneExpr(nil) != nil {
		t.Fatalf("CloneExpr(nil) != nil")
	}
}

func TestDump(t *testing.T) {
	el := &JSXElement{
		Name:     &JSXIdent{Name: "div"},
		Attrs:    []Node{&JSXAttr{Name: &JSXIdent{Name: "id"}, Value: &StringLit{Value: "x"}}},
		Children: []Expr{&JSXText{Value: "hi"}},
	}
	var buf bytes.Buffer
	if err := Dump(&buf, el); err != nil {
		t.Fatal(err)
	}
	want := "JSXElement <div> [0,0)\n" +
		"  JSXIdent div [0,0)\n" +
		"  JSXAttr id [0,0)\n" +
		"    JSXIdent id [0,0)\n" +
		"    String \"x\" [0,0)\n" +
		"  JSXText \"hi\" [0,0)\n"
	if buf.String() != want {
		t.Fatalf("Dump =\n%s\nwant\n%s", buf.String(), want)
	}
}
