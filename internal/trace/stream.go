package trace

import (
	"io"
	"sync"
)

// StreamTracer writes every accepted event to w as it arrives.
type StreamTracer struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer // только файл, открытый New
	level  Level
	format Format
	buf    []byte
}

func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	return &StreamTracer{w: w, level: level, format: format.resolve("")}
}

// Emit filters by level; heartbeats always pass.
func (t *StreamTracer) Emit(ev *Event) {
	if ev.Kind != KindHeartbeat && !t.level.ShouldEmit(ev.Scope) {
		return
	}
	stored := *ev
	stored.Seq = NextSeq()

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.format == FormatNDJSON {
		t.buf = appendJSON(t.buf[:0], &stored)
	} else {
		t.buf = appendText(t.buf[:0], &stored)
	}
	// сбой записи трассы не должен ронять компиляцию
	_, _ = t.w.Write(t.buf)
}

func (t *StreamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if f, ok := t.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close flushes and closes the output file if New opened it.
func (t *StreamTracer) Close() error {
	if err := t.Flush(); err != nil {
		return err
	}
	if t.closer == nil {
		return nil
	}
	return t.closer.Close()
}

func (t *StreamTracer) Level() Level  { return t.level }
func (t *StreamTracer) Enabled() bool { return t.level > LevelOff }
