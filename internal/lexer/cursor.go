package lexer

import (
	"bytes"
	"unicode/utf8"

	"jsxc/internal/source"
)

// Cursor walks the bytes of one file. Off never passes len(src).
type Cursor struct {
	src  []byte
	file source.FileID
	Off  uint32
}

func NewCursor(f *source.File) Cursor {
	// длина файла уже проверена FileSet, uint32 хватает
	return Cursor{src: f.Content, file: f.ID}
}

func (c *Cursor) EOF() bool { return int(c.Off) >= len(c.src) }

// Peek returns the current byte, 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.src[c.Off]
}

// Peek2 returns the current and the next byte; ok is false when fewer remain.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if int(c.Off)+1 >= len(c.src) {
		return 0, 0, false
	}
	return c.src[c.Off], c.src[c.Off+1], true
}

// Bump consumes one byte and returns it, 0 at EOF.
func (c *Cursor) Bump() byte {
	b := c.Peek()
	if !c.EOF() {
		c.Off++
	}
	return b
}

// Eat consumes b if it is next.
func (c *Cursor) Eat(b byte) bool {
	if c.EOF() || c.src[c.Off] != b {
		return false
	}
	c.Off++
	return true
}

// EatString consumes s if the input continues with it.
func (c *Cursor) EatString(s string) bool {
	if !bytes.HasPrefix(c.src[c.Off:], []byte(s)) {
		return false
	}
	c.Off += uint32(len(s)) // #nosec G115 -- s короче файла
	return true
}

// PeekRune decodes the rune at Off; size is 0 at EOF.
func (c *Cursor) PeekRune() (r rune, size int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	if b := c.src[c.Off]; b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(c.src[c.Off:])
}

// BumpRune consumes one rune; invalid UTF-8 advances by a byte.
func (c *Cursor) BumpRune() {
	_, size := c.PeekRune()
	c.Off += uint32(size) // #nosec G115 -- size <= utf8.UTFMax
}

// Mark is a saved offset for SpanFrom and Reset.
type Mark uint32

func (c *Cursor) Mark() Mark { return Mark(c.Off) }

func (c *Cursor) Reset(m Mark) { c.Off = min(uint32(m), uint32(len(c.src))) } // #nosec G115

// SpanFrom covers the bytes consumed since m.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.file, Start: uint32(m), End: c.Off}
}
