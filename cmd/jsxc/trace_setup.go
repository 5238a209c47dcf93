package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"jsxc/internal/trace"
)

// crashRing хранит последние события для дампа при панике.
var crashRing *trace.RingTracer

// setupTracing reads the --trace* flags, attaches the tracer to the command
// context and returns an idempotent cleanup.
func setupTracing(cmd *cobra.Command) (func(), error) {
	flags := cmd.Root().PersistentFlags()

	output, err := flags.GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	modeStr, err := flags.GetString("trace-mode")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	formatStr, err := flags.GetString("trace-format")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-format flag: %w", err)
	}
	ringSize, err := flags.GetInt("trace-ring-size")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}
	interval, err := flags.GetDuration("trace-heartbeat")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-heartbeat flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	// --trace без уровня включает фазы
	if level == trace.LevelOff && output != "" {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}
	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, err
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return nil, err
	}

	tracer, ring, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: output,
		RingSize:   ringSize,
	})
	if err != nil {
		return nil, err
	}
	crashRing = ring

	ctx := trace.WithTracer(cmd.Context(), tracer)
	cmd.SetContext(ctx)
	stopHeartbeat := trace.StartHeartbeat(ctx, tracer, interval)

	var once sync.Once
	return func() {
		once.Do(func() {
			stopHeartbeat()
			// кольцо без потока сбрасываем в --trace в конце команды
			if mode == trace.ModeRing && output != "" {
				if err := dumpRing(output, format); err != nil {
					fmt.Fprintf(os.Stderr, "trace: dump error: %v\n", err)
				}
			}
			if err := tracer.Flush(); err != nil {
				fmt.Fprintf(os.Stderr, "trace: flush error: %v\n", err)
			}
			if err := tracer.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "trace: close error: %v\n", err)
			}
		})
	}, nil
}

func dumpRing(output string, format trace.Format) error {
	if format == trace.FormatAuto {
		format = trace.FormatText
	}
	if output == "-" {
		return crashRing.Dump(os.Stderr, format)
	}
	f, err := os.Create(output) // #nosec G304 -- path comes from --trace
	if err != nil {
		return err
	}
	if err := crashRing.Dump(f, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// dumpTraceOnPanic печатает хвост трассы перед тем, как паника уронит процесс.
func dumpTraceOnPanic() {
	r := recover()
	if r == nil {
		return
	}
	if crashRing != nil {
		fmt.Fprintln(os.Stderr, "== last trace events ==")
		_ = crashRing.Dump(os.Stderr, trace.FormatText)
	}
	panic(r)
}
