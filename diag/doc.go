// Package diag collects non-fatal diagnostics from a bind pass.
//
// The Aggregator batches identical warning messages and emits each
// distinct message once per flush, annotated with its repeat count.
// Timings accumulates bind-pass durations for coarse display. Neither
// has a failure mode; both are purely additive until read.
package diag
