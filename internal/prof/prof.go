// Package prof wraps runtime/pprof and runtime/trace for the CLI flags
// --cpu-profile, --mem-profile and --runtime-trace.
package prof

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	rtrace "runtime/trace"
	"sync"
)

// Options name the output files; empty paths disable that profiler.
type Options struct {
	CPU   string
	Mem   string
	Trace string
}

func (o Options) Enabled() bool {
	return o.CPU != "" || o.Mem != "" || o.Trace != ""
}

// Start enables the requested profilers. The returned stop finishes them in
// reverse order and writes the heap profile last; it is safe to call twice.
func Start(opts Options) (stop func() error, err error) {
	var (
		cpuFile, traceFile *os.File
		once               sync.Once
		stopErr            error
	)
	closeAll := func() error {
		var errs []error
		if traceFile != nil {
			rtrace.Stop()
			errs = append(errs, traceFile.Close())
		}
		if cpuFile != nil {
			pprof.StopCPUProfile()
			errs = append(errs, cpuFile.Close())
		}
		return errors.Join(errs...)
	}

	if opts.CPU != "" {
		if cpuFile, err = os.Create(opts.CPU); err != nil {
			return nil, fmt.Errorf("cpu profile: %w", err)
		}
		if err = pprof.StartCPUProfile(cpuFile); err != nil {
			_ = cpuFile.Close()
			return nil, fmt.Errorf("cpu profile: %w", err)
		}
	}
	if opts.Trace != "" {
		if traceFile, err = os.Create(opts.Trace); err != nil {
			_ = closeAll()
			return nil, fmt.Errorf("runtime trace: %w", err)
		}
		if err = rtrace.Start(traceFile); err != nil {
			_ = traceFile.Close()
			traceFile = nil
			_ = closeAll()
			return nil, fmt.Errorf("runtime trace: %w", err)
		}
	}

	return func() error {
		once.Do(func() {
			stopErr = closeAll()
			if opts.Mem != "" {
				stopErr = errors.Join(stopErr, writeHeap(opts.Mem))
			}
		})
		return stopErr
	}, nil
}

func writeHeap(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("heap profile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	runtime.GC()
	return pprof.WriteHeapProfile(f)
}
