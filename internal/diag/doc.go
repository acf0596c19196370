// Package diag defines the core diagnostic model shared by all analysis
// phases.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     findings produced by lint rules.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//   - Model fix suggestions as structured edits that a driver or CLI can
//     render; applying them is out of scope for this repository.
//
// # Scope
//
// Package diag does not perform any formatting, IO, CLI integration, or
// interactive behaviour. Rendering responsibilities live in
// internal/diagfmt; orchestration lives in internal/driver.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//   - Fixes – optional Fix records describing how to address the problem.
//
// Notes should be used sparingly: each note must add new context (e.g.
// "value declared here") rather than repeating the diagnostic message.
//
// # Fix suggestions
//
// Fix represents a possible correction. Each fix carries:
//
//   - Title – short label used in UI listings.
//   - Kind – coarse classification (quick fix, refactor, rewrite).
//   - Applicability – confidence level: AlwaysSafe, SafeWithHeuristics,
//     ManualReview.
//   - IsPreferred – optionally mark the most relevant fix when several exist.
//   - Edits – concrete text edits (Span + new/old text).
//
// Fixes are intentionally data-only. TextEdit spans are in source
// coordinates; OldText acts as an optional guard that consumers can use to
// validate the context before trusting an edit.
//
// # Emitting diagnostics
//
// Rules use a diag.Reporter to decouple emission from storage: construct a
// ReportBuilder via NewReportBuilder (or ReportError/ReportWarning/
// ReportInfo) and chain WithNote / WithFixSuggestion before calling Emit.
// diag.BagReporter aggregates diagnostics into a Bag, which supports
// sorting, deduplication and merging.
//
// Keep the data model deterministic: new fields should avoid side effects so
// the CLI and future tooling can safely serialise diagnostics for caching
// and testing.
package diag
