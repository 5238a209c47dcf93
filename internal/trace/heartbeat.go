package trace

import (
	"context"
	"strconv"
	"time"
)

// StartHeartbeat emits a KindHeartbeat event every interval until ctx is done
// or the returned stop is called. A long build whose heartbeats keep coming
// while no span ends is stuck on one file. stop waits for the goroutine.
func StartHeartbeat(ctx context.Context, t Tracer, interval time.Duration) (stop func()) {
	if t == nil || !t.Enabled() || interval <= 0 {
		return func() {}
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		var beats uint64
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				beats++
				t.Emit(&Event{
					Time:   now,
					Seq:    NextSeq(),
					Kind:   KindHeartbeat,
					Scope:  ScopeDriver,
					GID:    goroutineID(),
					Name:   "heartbeat",
					Detail: "#" + strconv.FormatUint(beats, 10),
				})
			}
		}
	}()
	return func() {
		cancel()
		<-done
	}
}
