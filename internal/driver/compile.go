package driver

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"jsxc/internal/compiler"
	"jsxc/internal/diag"
	"jsxc/internal/observ"
	"jsxc/internal/project"
	"jsxc/internal/source"
	"jsxc/internal/trace"
	"jsxc/internal/version"
)

// Options configure CompileFiles.
type Options struct {
	Config project.Config
	// Jobs bounds the number of files compiled at once; 0 is one per CPU.
	Jobs int
	// Cache is consulted before compiling and filled after clean compiles.
	Cache     *DiskCache
	MaxErrors uint
	Tracer    trace.Tracer
	Observer  Observer
}

// FileResult is the outcome of compiling one file.
type FileResult struct {
	Path        string
	Code        string
	Imports     []string
	Programs    int
	Diagnostics []diag.Diagnostic
	// Files resolves the spans of Diagnostics.
	Files  *source.FileSet
	Cached bool
	Timing observ.Report
}

func (r *FileResult) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity >= diag.SevError {
			return true
		}
	}
	return false
}

// CompilerOptions maps the project configuration onto one compile.
func CompilerOptions(cfg project.Config, filename string) compiler.Options {
	return compiler.Options{
		IsCustomElement: cfg.IsCustomElement(),
		SSR:             cfg.Compiler.SSR,
		Interop:         cfg.Compiler.Interop,
		Filename:        filename,
		Runtime:         cfg.Compiler.Runtime,
		InteropRuntime:  cfg.Compiler.InteropRuntime,
		NoAbbreviate:    !cfg.Compiler.Abbreviate,
	}
}

// CacheKey identifies the output of content compiled under cfg by this
// build of jsxc.
func CacheKey(content []byte, cfg *project.Config) project.Digest {
	return cfg.CacheKey(content, version.Version)
}

// CompileFiles компилирует модули параллельно, по одной сессии на файл.
// Results keep the order of paths. Per-file problems become diagnostics;
// the returned error is reserved for cancellation.
func CompileFiles(ctx context.Context, paths []string, opts Options) ([]FileResult, error) {
	results := make([]FileResult, len(paths))
	if len(paths) == 0 {
		return results, nil
	}
	tracer := trace.Resolve(ctx, opts.Tracer)
	span := trace.Begin(tracer, trace.ScopeDriver, "compile-files", trace.ParentFrom(ctx))
	defer span.End(fmt.Sprintf("%d files", len(paths)))

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = compileFile(path, &opts, tracer, span.ID())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func compileFile(path string, opts *Options, tracer trace.Tracer, parent uint64) FileResult {
	notify := func(ev FileEvent) {
		if opts.Observer != nil {
			ev.File = path
			opts.Observer(ev)
		}
	}
	start := time.Now()
	notify(FileEvent{Status: FileStarted})

	res := FileResult{Path: path, Files: source.NewFileSet()}
	raw, err := os.ReadFile(path) // #nosec G304 -- path is provided by the caller
	if err != nil {
		res.Diagnostics = []diag.Diagnostic{
			diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+err.Error()),
		}
		notify(FileEvent{Status: FileFailed, Elapsed: time.Since(start), Err: err})
		return res
	}

	key := CacheKey(raw, &opts.Config)
	if opts.Cache != nil {
		var payload Payload
		ok, err := opts.Cache.Get(key, &payload)
		switch {
		case err != nil:
			res.Diagnostics = append(res.Diagnostics,
				diag.New(diag.SevWarning, diag.IOCacheError, source.Span{}, "cache read failed: "+err.Error()))
		case ok && payload.Path == path:
			res.Code = payload.Code
			res.Imports = payload.Imports
			res.Programs = payload.Programs
			res.Cached = true
			trace.Point(tracer, trace.ScopeModule, "cache-hit", path, parent)
			notify(FileEvent{Status: FileCached, Elapsed: time.Since(start)})
			return res
		}
	}

	copts := CompilerOptions(opts.Config, path)
	copts.MaxErrors = opts.MaxErrors
	copts.Tracer = tracer
	copts.TraceParent = parent
	sess := compiler.NewSession(copts)
	out := sess.CompileModule(raw)

	res.Code = out.Code
	res.Imports = out.Imports
	res.Programs = out.Programs
	res.Diagnostics = append(res.Diagnostics, out.Diagnostics...)
	res.Files = sess.FileSet()
	res.Timing = sess.Timer().Report()

	if res.HasErrors() {
		notify(FileEvent{Status: FileFailed, Elapsed: time.Since(start)})
		return res
	}
	if opts.Cache != nil {
		err := opts.Cache.Put(key, &Payload{
			Path:        path,
			ContentHash: project.Digest(sha256.Sum256(raw)),
			Code:        out.Code,
			Imports:     out.Imports,
			Helpers:     out.Helpers,
			Templates:   len(out.Templates),
			Programs:    out.Programs,
		})
		if err != nil {
			res.Diagnostics = append(res.Diagnostics,
				diag.New(diag.SevWarning, diag.IOCacheError, source.Span{}, "cache write failed: "+err.Error()))
		}
	}
	notify(FileEvent{Status: FileCompiled, Elapsed: time.Since(start)})
	return res
}
