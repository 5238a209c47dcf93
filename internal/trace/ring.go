package trace

import (
	"io"
	"sync"
)

// RingTracer keeps the most recent events in memory. The driver dumps it
// when a compile panics, so the last phases before the crash are visible.
type RingTracer struct {
	mu    sync.Mutex
	buf   []Event
	next  int // индекс следующей записи
	count int
	level Level
}

// NewRingTracer keeps up to capacity events; capacity <= 0 means 4096.
func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = 4096
	}
	return &RingTracer{buf: make([]Event, capacity), level: level}
}

// Emit stores ev, overwriting the oldest event when full. Heartbeats bypass
// the level filter.
func (t *RingTracer) Emit(ev *Event) {
	if ev.Kind != KindHeartbeat && !t.level.ShouldEmit(ev.Scope) {
		return
	}
	t.mu.Lock()
	t.buf[t.next] = *ev
	t.buf[t.next].Seq = NextSeq()
	t.next = (t.next + 1) % len(t.buf)
	t.count = min(t.count+1, len(t.buf))
	t.mu.Unlock()
}

// Snapshot returns the stored events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Event, 0, t.count)
	first := (t.next - t.count + len(t.buf)) % len(t.buf)
	for i := range t.count {
		out = append(out, t.buf[(first+i)%len(t.buf)])
	}
	return out
}

// Dump writes the snapshot to w in format.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	for _, ev := range t.Snapshot() {
		if _, err := w.Write(FormatEvent(&ev, format)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error  { return nil }
func (t *RingTracer) Close() error  { return nil }
func (t *RingTracer) Level() Level  { return t.level }
func (t *RingTracer) Enabled() bool { return t.level > LevelOff }
