package diag

import "jsxc/internal/source"

// Severity orders diagnostics; comparisons like >= SevError are meaningful.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityNames = [...]string{"INFO", "WARNING", "ERROR"}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}

// Note points at a secondary location, e.g. the v-if a v-else failed to find.
type Note struct {
	Span source.Span
	Msg  string
}

// FixEdit replaces Span with NewText.
type FixEdit struct {
	Span    source.Span
	NewText string
}

// Fix is a titled group of edits applied together.
type Fix struct {
	Title string
	Edits []FixEdit
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Primary: primary, Message: msg}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// WithNote and WithFix return a copy; the receiver's slices are not shared.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes[:len(d.Notes):len(d.Notes)], Note{Span: sp, Msg: msg})
	return d
}

func (d Diagnostic) WithFix(title string, edits ...FixEdit) Diagnostic {
	d.Fixes = append(d.Fixes[:len(d.Fixes):len(d.Fixes)], Fix{Title: title, Edits: edits})
	return d
}
