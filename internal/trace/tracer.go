package trace

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Tracer receives trace events. Implementations must be safe for
// concurrent use: the driver compiles files in parallel.
type Tracer interface {
	Emit(ev *Event)
	Flush() error
	Close() error
	Level() Level
	Enabled() bool
}

// nop discards everything.
type nop struct{}

func (nop) Emit(*Event)   {}
func (nop) Flush() error  { return nil }
func (nop) Close() error  { return nil }
func (nop) Level() Level  { return LevelOff }
func (nop) Enabled() bool { return false }

// Nop is the disabled tracer.
var Nop Tracer = nop{}

// StorageMode selects where events go.
type StorageMode uint8

const (
	ModeStream StorageMode = iota + 1 // сразу в вывод
	ModeRing                          // только в память, для дампа
	ModeBoth
)

var modeNames = [...]string{ModeStream: "stream", ModeRing: "ring", ModeBoth: "both"}

func (m StorageMode) String() string {
	if int(m) < len(modeNames) && modeNames[m] != "" {
		return modeNames[m]
	}
	return "unknown"
}

func ParseMode(s string) (StorageMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range modeNames {
		if n != "" && n == name {
			return StorageMode(m), nil
		}
	}
	return ModeStream, fmt.Errorf("invalid trace mode %q (want stream|ring|both)", s)
}

// Config describes a tracer built by New.
type Config struct {
	Level  Level
	Mode   StorageMode
	Format Format
	// Output wins over OutputPath; OutputPath "" or "-" means stderr.
	Output     io.Writer
	OutputPath string
	RingSize   int
}

// New builds the tracer for cfg. ring is non-nil in ring and both modes so
// the caller can dump it on exit or on a crash.
func New(cfg Config) (t Tracer, ring *RingTracer, err error) {
	if cfg.Level == LevelOff {
		return Nop, nil, nil
	}
	if cfg.Mode != ModeStream {
		ring = NewRingTracer(cfg.RingSize, cfg.Level)
		if cfg.Mode == ModeRing {
			return ring, ring, nil
		}
	}
	w, closer, err := openOutput(cfg)
	if err != nil {
		return nil, nil, err
	}
	stream := NewStreamTracer(w, cfg.Level, cfg.Format.resolve(cfg.OutputPath))
	stream.closer = closer
	if ring == nil {
		return stream, nil, nil
	}
	return Tee(stream, ring), ring, nil
}

func openOutput(cfg Config) (io.Writer, io.Closer, error) {
	switch {
	case cfg.Output != nil:
		return cfg.Output, nil, nil
	case cfg.OutputPath == "" || cfg.OutputPath == "-":
		return os.Stderr, nil, nil
	}
	f, err := os.Create(cfg.OutputPath) // #nosec G304 -- путь из --trace
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	return f, f, nil
}
