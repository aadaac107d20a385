// Package drain provides the Drain capability - the composition point
// of the logging pipeline - along with the built-in combinators and
// terminal sinks.
//
// Combinators wrap an inner drain and either short-circuit without
// touching the field view (Discard, Filter, FilterLevel) or forward to
// one or many children (Duplicate, AtomicSwitch, Async). Short-
// circuiting before any sink serializes the record is what guarantees
// that lazy field computations never run for filtered records.
//
//   - Discard accepts everything and does nothing.
//   - FilterLevel / Filter gate on severity or an arbitrary predicate.
//   - Duplicate fans out to every child unconditionally and aggregates
//     their errors with multierr, so one failing sink never suppresses
//     delivery to another.
//   - AtomicSwitch swaps the active sink at runtime with an atomic
//     pointer: readers never block and never observe a torn snapshot
//     mid-call.
//   - Async decouples producers from slow sinks with a bounded queue
//     and a single worker; its OverflowPolicy is Block by default (no
//     silent loss), with DropOldest and DropNewest offered. Close is a
//     guaranteed flush. Per-level Stats are queryable at runtime.
//
// Terminal sinks: Writer serializes through a formatter.Formatter into
// any io.Writer, NewTerm adds TTY detection and color, NewFile writes
// through a lumberjack rotating file.
package drain
