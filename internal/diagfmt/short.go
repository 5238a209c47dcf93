package diagfmt

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"jsxc/internal/diag"
	"jsxc/internal/source"
)

type shortLine struct {
	path      string
	line, col uint32
	text      string
}

// Short writes one line per diagnostic, `SEV CODE path:line:col message`,
// ordered by position. Multi-line messages keep their first line; notes
// follow as `  note path:line:col message` when withNotes is set. The
// output is stable, so tests compare it verbatim.
func Short(w io.Writer, items []diag.Diagnostic, fs *source.FileSet, mode PathMode, withNotes bool) error {
	lines := make([]shortLine, 0, len(items))
	for _, d := range items {
		l := shortAt(d.Primary, fs, mode)
		l.text = fmt.Sprintf("%s %s %s %s", d.Severity, d.Code.ID(), l.where(), firstLine(d.Message))
		if withNotes {
			for _, n := range d.Notes {
				nl := shortAt(n.Span, fs, mode)
				l.text += fmt.Sprintf("\n  note %s %s", nl.where(), firstLine(n.Msg))
			}
		}
		lines = append(lines, l)
	}
	slices.SortStableFunc(lines, func(a, b shortLine) int {
		return cmp.Or(
			cmp.Compare(a.path, b.path),
			cmp.Compare(a.line, b.line),
			cmp.Compare(a.col, b.col),
			strings.Compare(a.text, b.text),
		)
	})
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l.text); err != nil {
			return err
		}
	}
	return nil
}

func shortAt(span source.Span, fs *source.FileSet, mode PathMode) shortLine {
	if !knownFile(span, fs) {
		return shortLine{}
	}
	start, _ := fs.Resolve(span)
	return shortLine{path: formatPath(fs.Get(span.File), fs, mode), line: start.Line, col: start.Col}
}

func (l shortLine) where() string {
	if l.path == "" {
		return "-"
	}
	return fmt.Sprintf("%s:%d:%d", l.path, l.line, l.col)
}

func firstLine(s string) string {
	s, _, _ = strings.Cut(s, "\n")
	return s
}
