package trace

import (
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

var seq, spanIDs atomic.Uint64

// NextSeq returns the next global event number.
func NextSeq() uint64 { return seq.Add(1) }

func nextSpanID() uint64 { return spanIDs.Add(1) }

// goroutineID читает номер горутины из заголовка стека
// ("goroutine 17 [running]:"), 0 если формат не распознан.
func goroutineID() uint64 {
	var buf [64]byte
	head := string(buf[:runtime.Stack(buf[:], false)])
	head, ok := strings.CutPrefix(head, "goroutine ")
	if !ok {
		return 0
	}
	num, _, _ := strings.Cut(head, " ")
	id, _ := strconv.ParseUint(num, 10, 64)
	return id
}

// Span is an open begin/end pair. A disabled span has a nil tracer and
// all its methods are no-ops.
type Span struct {
	tracer  Tracer
	ev      Event
	started time.Time
}

// Begin emits the begin event of a span under parent (0 for a root).
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return &Span{}
	}
	s := &Span{
		tracer:  t,
		started: time.Now(),
		ev: Event{
			Kind:     KindSpanBegin,
			Scope:    scope,
			SpanID:   nextSpanID(),
			ParentID: parent,
			GID:      goroutineID(),
			Name:     name,
		},
	}
	s.ev.Time, s.ev.Seq = s.started, NextSeq()
	t.Emit(&s.ev)
	return s
}

// WithExtra attaches key=value to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if s == nil || s.tracer == nil {
		return s
	}
	if s.ev.Extra == nil {
		s.ev.Extra = make(map[string]string, 2)
	}
	s.ev.Extra[key] = value
	return s
}

// End emits the end event and returns the span duration.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.tracer == nil {
		return 0
	}
	now := time.Now()
	end := s.ev
	end.Kind, end.Time, end.Seq, end.Detail = KindSpanEnd, now, NextSeq(), detail
	s.tracer.Emit(&end)
	return now.Sub(s.started)
}

func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.ev.SpanID
}

// Point emits an instant event under parent.
func Point(t Tracer, scope Scope, name, detail string, parent uint64) {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Seq:      NextSeq(),
		Kind:     KindPoint,
		Scope:    scope,
		ParentID: parent,
		GID:      goroutineID(),
		Name:     name,
		Detail:   detail,
	})
}
