// Package palesignal provides the core of a local-first daily-metrics
// journal: one entry per calendar day of self-reported signals (sleep,
// focus, mood, work hours, social interaction), with simple descriptive
// statistics computed over the recorded history.
//
// The package is organized around three responsibilities:
//   - Data model: Entry, the Social and Metric enumerations, and Journal,
//     the persisted collection of entries kept sorted newest first.
//   - Store: validated, durable persistence of the journal in a single
//     human-readable JSON file, with atomic writes.
//   - Analytics: pure, total functions over an entry slice: averages,
//     rolling averages, Pearson correlations, threshold flags, and the
//     textual summary report. Every degenerate input (empty data, too few
//     samples, zero variance) has a defined result instead of an error.
//
// This package serves as the foundational logic for the `pale` command-line
// tool; it knows nothing about terminals, prompts, or chart rendering.
package palesignal
