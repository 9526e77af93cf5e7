// Package diag defines the diagnostic model shared by the scan and render
// phases.
//
// Diagnostic is the central record: Severity, a compact numeric Code with a
// stable string form, a short message, the primary source.Span and optional
// Notes. Producers emit through a Reporter so storage and formatting stay
// decoupled; BagReporter aggregates into a Bag, which supports capping,
// sorting and merging. Rendering lives in internal/diagfmt.
package diag
