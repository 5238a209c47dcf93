package printer

// Writer accumulates generated code and tracks indentation. Indentation is
// written lazily at the first byte of each line.
type Writer struct {
	opt         Options
	buf         []byte
	indentLevel int
	atLineStart bool
}

// NewWriter creates a writer with the given indentation options.
func NewWriter(opt Options) *Writer {
	return &Writer{opt: opt.withDefaults()}
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) String() string {
	return string(w.buf)
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	if w.opt.UseTabs {
		for range w.indentLevel {
			w.buf = append(w.buf, '\t')
		}
	} else {
		for range w.indentLevel * w.opt.IndentWidth {
			w.buf = append(w.buf, ' ')
		}
	}
	w.atLineStart = false
}

// WriteString writes s; embedded newlines re-indent the following lines.
func (w *Writer) WriteString(s string) {
	for s != "" {
		i := 0
		for i < len(s) && s[i] != '\n' {
			i++
		}
		if i > 0 {
			w.writeIndent()
			w.buf = append(w.buf, s[:i]...)
		}
		if i == len(s) {
			return
		}
		w.buf = append(w.buf, '\n')
		w.atLineStart = true
		s = s[i+1:]
	}
}

// WriteByte writes a single byte to the output.
func (w *Writer) WriteByte(b byte) error {
	if b == '\n' {
		w.buf = append(w.buf, '\n')
		w.atLineStart = true
		return nil
	}
	w.writeIndent()
	w.buf = append(w.buf, b)
	return nil
}

// Space writes a single space if the output doesn't already end with whitespace.
func (w *Writer) Space() {
	if len(w.buf) == 0 {
		return
	}
	last := w.buf[len(w.buf)-1]
	if last == ' ' || last == '\n' || last == '\t' {
		return
	}
	w.buf = append(w.buf, ' ')
}

// Newline writes a newline if the output doesn't already end with one.
func (w *Writer) Newline() {
	if len(w.buf) == 0 || w.buf[len(w.buf)-1] != '\n' {
		w.buf = append(w.buf, '\n')
	}
	w.atLineStart = true
}

// IndentPush increases the indentation level.
func (w *Writer) IndentPush() {
	w.indentLevel++
}

// IndentPop decreases the indentation level.
func (w *Writer) IndentPop() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}
