package diag

import "jsxc/internal/source"

// Reporter receives diagnostics from the lexer, the parser and the transforms.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, notes []Note, fixes []Fix)
}

// Emit forwards a ready Diagnostic to r; a nil r drops it.
func Emit(r Reporter, d Diagnostic) {
	if r != nil {
		r.Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes, d.Fixes)
	}
}

// Pending is a diagnostic being assembled; Emit sends it at most once.
type Pending struct {
	r    Reporter
	d    Diagnostic
	sent bool
}

// ReportError starts an error diagnostic bound to r.
func ReportError(r Reporter, code Code, primary source.Span, msg string) *Pending {
	return &Pending{r: r, d: NewError(code, primary, msg)}
}

func (p *Pending) WithNote(sp source.Span, msg string) *Pending {
	p.d = p.d.WithNote(sp, msg)
	return p
}

func (p *Pending) WithFix(title string, edits ...FixEdit) *Pending {
	p.d = p.d.WithFix(title, edits...)
	return p
}

func (p *Pending) Emit() {
	if p.sent {
		return
	}
	p.sent = true
	Emit(p.r, p.d)
}

// BagReporter складывает всё в Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note, fixes []Fix) {
	if r.Bag != nil {
		r.Bag.Add(Diagnostic{Severity: sev, Code: code, Message: msg, Primary: primary, Notes: notes, Fixes: fixes})
	}
}

// MultiReporter fans a diagnostic out to every non-nil reporter.
type MultiReporter []Reporter

func (m MultiReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note, fixes []Fix) {
	for _, r := range m {
		if r != nil {
			r.Report(code, sev, primary, msg, notes, fixes)
		}
	}
}

// FuncReporter adapts an onError(code, span) callback.
type FuncReporter func(code Code, primary source.Span)

func (f FuncReporter) Report(code Code, _ Severity, primary source.Span, _ string, _ []Note, _ []Fix) {
	if f != nil {
		f(code, primary)
	}
}
