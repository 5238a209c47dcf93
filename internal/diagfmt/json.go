package diagfmt

import (
	"encoding/json"
	"io"

	"jsxc/internal/diag"
	"jsxc/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// NoteJSON представляет дополнительную заметку для JSON
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// FixEditJSON представляет одно редактирование для JSON
type FixEditJSON struct {
	Location    LocationJSON `json:"location"`
	NewText     string       `json:"new_text"`
	OldText     string       `json:"old_text,omitempty"`
	BeforeLines []string     `json:"before_lines,omitempty"`
	AfterLines  []string     `json:"after_lines,omitempty"`
}

// FixJSON представляет предложение по исправлению для JSON
type FixJSON struct {
	Title string        `json:"title"`
	Edits []FixEditJSON `json:"edits,omitempty"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
	Fixes    []FixJSON    `json:"fixes,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// knownFile reports whether span points into fs. Spans of I/O and cache
// problems have no file behind them.
func knownFile(span source.Span, fs *source.FileSet) bool {
	return fs != nil && int(span.File) < fs.Len()
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeAbsolute, PathModeBasename, PathModeAuto:
		return f.FormatPath(mode.String(), "")
	default:
		return f.Path
	}
}

// makeLocation создаёт LocationJSON из Span
func makeLocation(span source.Span, fs *source.FileSet, pathMode PathMode, includePositions bool) LocationJSON {
	if !knownFile(span, fs) {
		return LocationJSON{}
	}
	f := fs.Get(span.File)
	loc := LocationJSON{
		File:      formatPath(f, fs, pathMode),
		StartByte: span.Start,
		EndByte:   span.End,
	}

	// Добавляем позиции строк/колонок если требуется
	if includePositions {
		startPos, endPos := fs.Resolve(span)
		loc.StartLine = startPos.Line
		loc.StartCol = startPos.Col
		loc.EndLine = endPos.Line
		loc.EndCol = endPos.Col
	}
	return loc
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(items []diag.Diagnostic, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}
	diagnostics := make([]DiagnosticJSON, 0, maxItems)

	for i := range maxItems {
		d := items[i]
		diagJSON := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Location: makeLocation(d.Primary, fs, opts.PathMode, opts.IncludePositions),
		}

		includeNotes := opts.IncludeNotes || d.Code == diag.ObsTimings
		if includeNotes && len(d.Notes) > 0 {
			diagJSON.Notes = make([]NoteJSON, len(d.Notes))
			for j, note := range d.Notes {
				diagJSON.Notes[j] = NoteJSON{
					Message:  note.Msg,
					Location: makeLocation(note.Span, fs, opts.PathMode, opts.IncludePositions),
				}
			}
		}

		if opts.IncludeFixes && len(d.Fixes) > 0 {
			diagJSON.Fixes = make([]FixJSON, 0, len(d.Fixes))
			for _, fix := range d.Fixes {
				fixJSON := FixJSON{Title: fix.Title}
				for _, edit := range fix.Edits {
					editJSON := FixEditJSON{
						Location: makeLocation(edit.Span, fs, opts.PathMode, opts.IncludePositions),
						NewText:  edit.NewText,
					}
					if knownFile(edit.Span, fs) {
						editJSON.OldText = edit.Span.Text(fs.Get(edit.Span.File).Content)
					}
					if opts.IncludePreviews {
						if preview, err := buildFixEditPreview(fs, edit); err == nil {
							editJSON.BeforeLines = preview.before
							editJSON.AfterLines = preview.after
						}
					}
					fixJSON.Edits = append(fixJSON.Edits, editJSON)
				}
				diagJSON.Fixes = append(diagJSON.Fixes, fixJSON)
			}
		}

		diagnostics = append(diagnostics, diagJSON)
	}

	return DiagnosticsOutput{
		Diagnostics: diagnostics,
		Count:       len(diagnostics),
	}
}

// JSON форматирует диагностики в JSON формат.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(bag.Items(), fs, opts))
}
