package lexer

import (
	"testing"

	"jsxc/internal/source"
)

func newFile(content string) (*source.FileSet, *source.File) {
	fs := source.NewFileSet()
	return fs, fs.Get(fs.AddVirtual("test.jsx", []byte(content)))
}

func TestCursorBytes(t *testing.T) {
	_, f := newFile("a\nb")
	c := NewCursor(f)

	var got []byte
	for !c.EOF() {
		got = append(got, c.Bump())
	}
	if string(got) != "a\nb" {
		t.Fatalf("read %q", got)
	}
	if c.Peek() != 0 || c.Bump() != 0 || c.Off != 3 {
		t.Fatalf("past EOF: peek=%d off=%d", c.Peek(), c.Off)
	}
}

func TestCursorPeek2(t *testing.T) {
	tests := []struct {
		src    string
		off    uint32
		b0, b1 byte
		ok     bool
	}{
		{"abc", 0, 'a', 'b', true},
		{"abc", 1, 'b', 'c', true},
		{"abc", 2, 0, 0, false},
		{"", 0, 0, 0, false},
	}
	for _, tt := range tests {
		_, f := newFile(tt.src)
		c := NewCursor(f)
		c.Reset(Mark(tt.off))
		b0, b1, ok := c.Peek2()
		if b0 != tt.b0 || b1 != tt.b1 || ok != tt.ok {
			t.Errorf("%q@%d: Peek2 = %q %q %v", tt.src, tt.off, b0, b1, ok)
		}
	}
}

func TestCursorEat(t *testing.T) {
	_, f := newFile("<!-- x -->")
	c := NewCursor(f)
	if c.Eat('!') || c.Off != 0 {
		t.Fatal("Eat consumed a mismatch")
	}
	if c.EatString("<!--x") || c.Off != 0 {
		t.Fatal("EatString consumed a partial match")
	}
	if !c.EatString("<!--") || !c.Eat(' ') || c.Peek() != 'x' {
		t.Fatalf("off = %d", c.Off)
	}
	c.Reset(Mark(7))
	if c.EatString("-->x") || !c.EatString("-->") || !c.EOF() {
		t.Fatal("EatString at the end")
	}
}

func TestCursorRunesAndSpans(t *testing.T) {
	fs, f := newFile("α\nβ")
	c := NewCursor(f)

	m := c.Mark()
	if r, size := c.PeekRune(); r != 'α' || size != 2 {
		t.Fatalf("PeekRune = %q, %d", r, size)
	}
	c.BumpRune()
	span := c.SpanFrom(m)
	if span.Start != 0 || span.End != 2 {
		t.Fatalf("span = %v", span)
	}
	start, end := fs.Resolve(span)
	if start != (source.LineCol{Line: 1, Col: 1}) || end != (source.LineCol{Line: 1, Col: 3}) {
		t.Errorf("resolve = %+v %+v", start, end)
	}

	c.Bump()
	m = c.Mark()
	c.BumpRune()
	if start, _ := fs.Resolve(c.SpanFrom(m)); start != (source.LineCol{Line: 2, Col: 1}) {
		t.Errorf("β at %+v", start)
	}
	if _, size := c.PeekRune(); size != 0 {
		t.Errorf("PeekRune at EOF size = %d", size)
	}

	c.Reset(Mark(100))
	if !c.EOF() || c.Off != 5 {
		t.Errorf("Reset past end: off = %d", c.Off)
	}
}
