// Package trace provides structured tracing for the jsxc compiler.
//
// Tracing follows a compile through its phases (parse, transform, codegen,
// assemble), through each file of a directory build and, at debug level,
// through each JSX root.
//
// # Usage
//
//	jsxc compile --trace=- --trace-level=phase src/
//
// # Tracers
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate write to a file or stderr (text or NDJSON)
//   - RingTracer: circular buffer kept in memory for crash dumps
//   - Tee: fan-out, used by --trace-mode=both
//
// # Levels and scopes
//
// LevelPhase emits driver and pass spans, LevelDetail adds per-file spans and
// LevelDebug adds per-template events.
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "transform", parentID)
//	defer span.End("")
package trace
