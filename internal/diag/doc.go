// Package diag defines the diagnostic model shared by every compiler phase.
//
// # Purpose
//
//   - Provide deterministic, serialisable records for findings produced by the
//     lexer, the parser and the template transforms.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting.
//
// Package diag does no formatting or IO; rendering lives in internal/diagfmt.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity: Info, Warning or Error (diagnostic.go).
//   - Code: compact numeric identifier with a stable string form (codes.go).
//     Ranges: LEX 1xxx, SYN 2xxx, TPL 3xxx (template directives), IO 4xxx,
//     PRJ 5xxx (jsxc.toml), OBS 6xxx (timings).
//   - Message: short, actionable text.
//   - Primary: the source.Span pointing at the issue.
//   - Notes and Fixes: optional secondary spans and text edits.
//
// # Emitting diagnostics
//
// Phases report through a Reporter. Template errors are non-fatal: each one is
// reported exactly once at the point of detection and the transform degrades
// gracefully. The caller decides whether a Bag with errors becomes a failure.
package diag
