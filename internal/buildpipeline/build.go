package buildpipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"jsxc/internal/diag"
	"jsxc/internal/driver"
	"jsxc/internal/observ"
	"jsxc/internal/project"
	"jsxc/internal/source"
	"jsxc/internal/trace"
)

// BuildRequest configures a directory or file-list build.
type BuildRequest struct {
	// Inputs are files or directories; directories are searched for the
	// configured extensions.
	Inputs []string
	// BaseDir anchors display names and output paths. Empty means the
	// single directory input or the working directory.
	BaseDir string
	// OutDir receives one .js file per input; empty skips writing.
	OutDir    string
	Config    project.Config
	Jobs      int
	Cache     *driver.DiskCache
	MaxErrors uint
	Tracer    trace.Tracer
	Progress  ProgressSink
	// Files are the display names already announced to Progress; Build
	// fills it when empty.
	Files []string
}

// BuildResult captures per-file outcomes and stage timings.
type BuildResult struct {
	Files []driver.FileResult
	// Outputs holds the written path of each file, "" when nothing was written.
	Outputs []string
	Timings Timings
	// Phases sums the compiler phases over all compiled files.
	Phases observ.Report
	// Failed counts files with error diagnostics.
	Failed int
	Cached int
}

// Discover expands the inputs of req into a sorted file list.
func Discover(req *BuildRequest) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	for _, in := range req.Inputs {
		list, err := driver.ListFiles(in, req.Config.Build.Extensions)
		if err != nil {
			return nil, fmt.Errorf("discover %s: %w", in, err)
		}
		for _, f := range list {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}
	return files, nil
}

// ResolveBaseDir picks the directory display names are relative to.
func ResolveBaseDir(req *BuildRequest) string {
	if req.BaseDir != "" {
		return req.BaseDir
	}
	if len(req.Inputs) == 1 {
		if info, err := os.Stat(req.Inputs[0]); err == nil {
			if info.IsDir() {
				return req.Inputs[0]
			}
			return filepath.Dir(req.Inputs[0])
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// Build discovers, compiles and writes the inputs. Files with diagnostics
// are reported in the result; the returned error is reserved for failures
// of the pipeline itself.
func Build(ctx context.Context, req *BuildRequest) (BuildResult, error) {
	var result BuildResult
	if ctx == nil {
		ctx = context.Background()
	}
	if req == nil {
		return result, fmt.Errorf("missing build request")
	}
	tracer := trace.Resolve(ctx, req.Tracer)
	span := trace.Begin(tracer, trace.ScopeDriver, "build", trace.ParentFrom(ctx))
	defer span.End("")
	ctx = trace.WithParent(ctx, span)

	start := time.Now()
	emitStage(req.Progress, StageDiscover, StatusWorking, nil, 0)
	paths, err := Discover(req)
	if err != nil {
		emitStage(req.Progress, StageDiscover, StatusError, err, time.Since(start))
		return result, err
	}
	base := ResolveBaseDir(req)
	result.Timings.Set(StageDiscover, time.Since(start))
	emitStage(req.Progress, StageDiscover, StatusDone, nil, time.Since(start))

	if len(req.Files) == 0 {
		emitQueued(req.Progress, NormalizeProgressFiles(paths, base))
	}

	start = time.Now()
	emitStage(req.Progress, StageCompile, StatusWorking, nil, 0)
	files, err := driver.CompileFiles(ctx, paths, driver.Options{
		Config:    req.Config,
		Jobs:      req.Jobs,
		Cache:     req.Cache,
		MaxErrors: req.MaxErrors,
		Tracer:    tracer,
		Observer:  progressObserver(req.Progress, base),
	})
	result.Files = files
	result.Timings.Set(StageCompile, time.Since(start))
	if err != nil {
		emitStage(req.Progress, StageCompile, StatusError, err, time.Since(start))
		return result, err
	}
	emitStage(req.Progress, StageCompile, StatusDone, nil, time.Since(start))
	result.Phases = driver.SumTimings(files)

	start = time.Now()
	result.Outputs = make([]string, len(files))
	for i := range files {
		f := &files[i]
		if f.Cached {
			result.Cached++
		}
		if f.HasErrors() {
			result.Failed++
			continue
		}
		if req.OutDir == "" {
			continue
		}
		out, werr := writeOutput(f, base, req.OutDir)
		name := DisplayName(f.Path, base)
		if werr != nil {
			f.Diagnostics = append(f.Diagnostics, diag.NewError(diag.IOWriteFileError, source.Span{}, werr.Error()))
			result.Failed++
			req.emit(Event{File: name, Stage: StageWrite, Status: StatusError, Err: werr})
			continue
		}
		result.Outputs[i] = out
		req.emit(Event{File: name, Stage: StageWrite, Status: StatusDone})
	}
	result.Timings.Set(StageWrite, time.Since(start))
	return result, nil
}

func (req *BuildRequest) emit(ev Event) {
	if req.Progress != nil {
		req.Progress.OnEvent(ev)
	}
}

func writeOutput(f *driver.FileResult, base, outDir string) (string, error) {
	out, err := driver.OutputPath(f.Path, base, outDir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", filepath.Dir(out), err)
	}
	if err := os.WriteFile(out, []byte(f.Code), 0o644); err != nil { // #nosec G306 -- build output is world-readable
		return "", fmt.Errorf("write %s: %w", out, err)
	}
	return out, nil
}

// progressObserver maps driver file events onto compile-stage progress.
func progressObserver(sink ProgressSink, base string) driver.Observer {
	if sink == nil {
		return nil
	}
	return func(ev driver.FileEvent) {
		out := Event{File: DisplayName(ev.File, base), Stage: StageCompile, Elapsed: ev.Elapsed, Err: ev.Err}
		switch ev.Status {
		case driver.FileStarted:
			out.Status = StatusWorking
		case driver.FileCached:
			out.Status = StatusCached
		case driver.FileFailed:
			out.Status = StatusError
		default:
			out.Status = StatusDone
		}
		sink.OnEvent(out)
	}
}
