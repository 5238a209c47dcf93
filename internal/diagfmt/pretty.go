package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"jsxc/internal/diag"
	"jsxc/internal/source"
)

type palette struct {
	err, warn, info *color.Color
	path, gutter    *color.Color
	caret, note     *color.Color
	removed, added  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:     color.New(color.FgRed, color.Bold),
		warn:    color.New(color.FgYellow, color.Bold),
		info:    color.New(color.FgCyan, color.Bold),
		path:    color.New(color.Bold),
		gutter:  color.New(color.FgBlue),
		caret:   color.New(color.FgGreen, color.Bold),
		note:    color.New(color.FgCyan),
		removed: color.New(color.FgRed),
		added:   color.New(color.FgGreen),
	}
	// явная настройка, чтобы не зависеть от color.NoColor
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.path, p.gutter, p.caret, p.note, p.removed, p.added} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes и Fixes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, d, fs, opts, pal)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	sev := pal.severity(d.Severity)
	msg := clip(d.Message, opts.Width)
	if loc, ok := location(d.Primary, fs, opts.PathMode); ok {
		fmt.Fprintf(w, "%s: %s %s: %s\n", pal.path.Sprint(loc), sev.Sprint(d.Severity.String()), d.Code.ID(), msg)
		writeContext(w, d.Primary, fs, opts, pal)
	} else {
		fmt.Fprintf(w, "%s %s: %s\n", sev.Sprint(d.Severity.String()), d.Code.ID(), msg)
	}

	// тайминги без заметок бесполезны
	if opts.ShowNotes || d.Code == diag.ObsTimings {
		for _, n := range d.Notes {
			if loc, ok := location(n.Span, fs, opts.PathMode); ok {
				fmt.Fprintf(w, "  %s %s: %s\n", pal.note.Sprint("note:"), loc, n.Msg)
			} else {
				fmt.Fprintf(w, "  %s %s\n", pal.note.Sprint("note:"), n.Msg)
			}
		}
	}

	if !opts.ShowFixes {
		return
	}
	for i, fix := range d.Fixes {
		fmt.Fprintf(w, "  %s %s\n", pal.note.Sprintf("fix #%d:", i+1), fix.Title)
		for _, edit := range fix.Edits {
			if loc, ok := location(edit.Span, fs, opts.PathMode); ok {
				fmt.Fprintf(w, "    %s apply=%s\n", loc, strconv.Quote(edit.NewText))
			} else {
				fmt.Fprintf(w, "    apply=%s\n", strconv.Quote(edit.NewText))
			}
			if !opts.ShowPreview {
				continue
			}
			preview, err := buildFixEditPreview(fs, edit)
			if err != nil {
				continue
			}
			fmt.Fprintln(w, "    preview:")
			for _, line := range preview.before {
				fmt.Fprintf(w, "      %s\n", pal.removed.Sprint("- "+line))
			}
			for _, line := range preview.after {
				fmt.Fprintf(w, "      %s\n", pal.added.Sprint("+ "+line))
			}
		}
	}
}

// location печатает path:line:col; false для span без файла (IO, кэш).
func location(span source.Span, fs *source.FileSet, mode PathMode) (string, bool) {
	if !knownFile(span, fs) {
		return "", false
	}
	f := fs.Get(span.File)
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", formatPath(f, fs, mode), start.Line, start.Col), true
}

// writeContext печатает строки вокруг span и подчёркивает его на первой строке.
func writeContext(w io.Writer, span source.Span, fs *source.FileSet, opts PrettyOpts, pal palette) {
	f := fs.Get(span.File)
	start, end := fs.Resolve(span)
	ctx := uint32(max(opts.Context, 0))

	first := uint32(1)
	if start.Line > ctx {
		first = start.Line - ctx
	}
	last := start.Line + ctx
	gutterWidth := len(strconv.FormatUint(uint64(last), 10))

	for ln := first; ln <= last; ln++ {
		text := f.GetLine(ln)
		if text == "" && ln != start.Line {
			continue
		}
		text = strings.ReplaceAll(text, "\t", "    ")
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", gutterWidth, ln), clip(text, opts.Width))
		if ln != start.Line {
			continue
		}
		raw := f.GetLine(ln)
		col := int(start.Col) - 1
		col = min(max(col, 0), len(raw))
		pad := runewidth.StringWidth(strings.ReplaceAll(raw[:col], "\t", "    "))

		// подчёркивание до конца span, но не дальше конца строки
		stop := len(raw)
		if end.Line == start.Line {
			stop = min(max(int(end.Col)-1, col), len(raw))
		}
		width := runewidth.StringWidth(raw[col:stop])
		marker := "^"
		if width > 1 {
			marker += strings.Repeat("~", width-1)
		}
		fmt.Fprintf(w, "%s %s%s\n", pal.gutter.Sprintf("%*s |", gutterWidth, ""), strings.Repeat(" ", pad), pal.caret.Sprint(marker))
	}
}

func clip(s string, width uint8) string {
	if width == 0 || runewidth.StringWidth(s) <= int(width) {
		return s
	}
	return runewidth.Truncate(s, int(width), "...")
}
