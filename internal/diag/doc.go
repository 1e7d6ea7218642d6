// Package diag defines the diagnostic model shared by the scanner phases.
//
// Diagnostic is the central record: Severity, a compact numeric Code with a
// stable string ID, a short Message, the Primary span and optional Notes.
// Producers emit through a Reporter; Bag collects with a hard cap so one
// pathological file cannot flood the output. Rendering lives in
// internal/diagfmt.
package diag
