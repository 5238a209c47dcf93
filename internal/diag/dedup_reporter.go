package diag

import "jsxc/internal/source"

type reportKey struct {
	code Code
	span source.Span
	msg  string
}

// DedupReporter drops a report identical in code, span and message to one
// it already forwarded. Template errors can surface twice when a node is
// visited by more than one transform.
type DedupReporter struct {
	next Reporter
	seen map[reportKey]bool
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, seen: make(map[reportKey]bool)}
}

func (r *DedupReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note, fixes []Fix) {
	key := reportKey{code: code, span: primary, msg: msg}
	if r == nil || r.seen[key] {
		return
	}
	r.seen[key] = true
	if r.next != nil {
		r.next.Report(code, sev, primary, msg, notes, fixes)
	}
}
